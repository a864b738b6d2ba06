// File: internal/concurrency/indexed_ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Cursor-published SPSC ring buffer.
//
// The write and read cursors are unbounded 32-bit counters; the physical slot
// is the cursor masked by size-1, so occupancy arithmetic stays exact across
// the uint32 wraparound. The producer keeps a private copy of the read cursor
// and reloads the shared one only when the copy says the ring is full,
// keeping the common-case hot path free of cross-core loads.

package concurrency

import "sync/atomic"

// cacheLinePad separates producer-side and consumer-side hot state.
const cacheLinePad = 64

// IndexedRing is an SPSC ring buffer synchronized by two shared atomic
// cursors. Each transfer is published by a single atomic store of the write
// cursor, so a ring placed in shared or persistent memory can never expose a
// half-written slot: the cursor publish is the sole availability signal and
// happens only after the payload write completes.
type IndexedRing[T any] struct {
	buf  []T
	mask uint32
	_    [cacheLinePad]byte

	// Producer side. readIdxCache is producer-private and never read by the
	// consumer.
	writeIdx     atomic.Uint32
	readIdxCache uint32
	_            [cacheLinePad]byte

	// Consumer side.
	readIdx atomic.Uint32
	_       [cacheLinePad]byte
}

// NewIndexedRing allocates a ring of power-of-two size.
func NewIndexedRing[T any](size uint32) *IndexedRing[T] {
	if size == 0 || size&(size-1) != 0 {
		panic("concurrency: ring size must be a power of two")
	}
	return &IndexedRing[T]{
		buf:  make([]T, size),
		mask: size - 1,
	}
}

// Allocate returns the next free slot, or (nil, false) if the ring is full.
// No cursor moves until Commit.
func (r *IndexedRing[T]) Allocate() (*T, bool) {
	w := r.writeIdx.Load()
	if w-r.readIdxCache == uint32(len(r.buf)) {
		// The cached read cursor says full; reload the shared one. This is
		// the only place the producer touches a consumer-written variable.
		r.readIdxCache = r.readIdx.Load()
		if w-r.readIdxCache == uint32(len(r.buf)) {
			return nil, false
		}
	}
	return &r.buf[w&r.mask], true
}

// Commit publishes the slot returned by the preceding Allocate. The atomic
// store orders every prior write to the slot before the cursor advance.
func (r *IndexedRing[T]) Commit() {
	r.writeIdx.Store(r.writeIdx.Load() + 1)
}

// TryPush allocates, runs writer on the slot, and commits. Returns false if
// the ring is full. The slot is published regardless of what writer did to it.
func (r *IndexedRing[T]) TryPush(writer func(*T)) bool {
	p, ok := r.Allocate()
	if !ok {
		return false
	}
	writer(p)
	r.Commit()
	return true
}

// BlockPush spins on TryPush until it succeeds.
func (r *IndexedRing[T]) BlockPush(writer func(*T)) {
	for !r.TryPush(writer) {
	}
}

// Peek returns the oldest committed slot, or (nil, false) if the ring is
// empty. No cursor moves until Advance.
func (r *IndexedRing[T]) Peek() (*T, bool) {
	rd := r.readIdx.Load()
	if rd == r.writeIdx.Load() {
		return nil, false
	}
	return &r.buf[rd&r.mask], true
}

// Advance releases the slot returned by the preceding Peek.
func (r *IndexedRing[T]) Advance() {
	r.readIdx.Store(r.readIdx.Load() + 1)
}

// TryPop peeks, runs reader on the slot, and advances. Returns false if the
// ring is empty.
func (r *IndexedRing[T]) TryPop(reader func(*T)) bool {
	p, ok := r.Peek()
	if !ok {
		return false
	}
	reader(p)
	r.Advance()
	return true
}

// BlockPop spins on TryPop until it succeeds.
func (r *IndexedRing[T]) BlockPop(reader func(*T)) {
	for !r.TryPop(reader) {
	}
}

// Len returns the number of committed, unconsumed elements. Exact only when
// called from the producer or consumer goroutine; a snapshot otherwise.
func (r *IndexedRing[T]) Len() int {
	return int(r.writeIdx.Load() - r.readIdx.Load())
}

// Cap returns the fixed slot count.
func (r *IndexedRing[T]) Cap() int {
	return len(r.buf)
}
