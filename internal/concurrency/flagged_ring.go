// File: internal/concurrency/flagged_ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Flag-published SPSC ring buffer.
//
// Availability is signaled through a per-slot atomic flag co-located with the
// payload, so the consumer never loads the write cursor. The producer tracks
// free slots through a private count and loads the shared read cursor only
// when that count is exhausted. Per transfer this costs two ordered stores
// (flag, then cursor) instead of IndexedRing's one, so a crash between them
// can leave a shared-memory-resident ring inconsistent; use IndexedRing for
// anything persisted.

package concurrency

import "sync/atomic"

// flaggedSlot keeps the avail flag adjacent to the payload so both land in
// the same cache line region.
type flaggedSlot[T any] struct {
	avail atomic.Bool
	data  T
}

// FlaggedRing is an SPSC ring buffer synchronized by per-slot flags.
//
// One slot is always kept free: the free count starts at size-1 and the
// refresh formula reserves a slot, so a ring of size N holds at most N-1
// elements. Cap still reports N.
type FlaggedRing[T any] struct {
	slots []flaggedSlot[T]
	mask  uint32
	_     [cacheLinePad]byte

	// Producer side. writeIdx stays masked into [0, size) and is never read
	// by the consumer, so neither field is atomic.
	writeIdx uint32
	freeCnt  uint32
	_        [cacheLinePad]byte

	// Consumer side. Shared so the producer's free-count refresh can load it.
	readIdx atomic.Uint32
	_       [cacheLinePad]byte
}

// NewFlaggedRing allocates a ring of power-of-two size.
func NewFlaggedRing[T any](size uint32) *FlaggedRing[T] {
	if size == 0 || size&(size-1) != 0 {
		panic("concurrency: ring size must be a power of two")
	}
	return &FlaggedRing[T]{
		slots:   make([]flaggedSlot[T], size),
		mask:    size - 1,
		freeCnt: size - 1,
	}
}

// Allocate returns the next free slot, or (nil, false) if the ring is full.
// The shared read cursor is loaded only when the cached free count hits zero.
func (r *FlaggedRing[T]) Allocate() (*T, bool) {
	if r.freeCnt == 0 {
		rd := r.readIdx.Load()
		r.freeCnt = (rd - r.writeIdx + uint32(len(r.slots)) - 1) & r.mask
		if r.freeCnt == 0 {
			return nil, false
		}
	}
	return &r.slots[r.writeIdx].data, true
}

// Commit publishes the slot returned by the preceding Allocate: the flag
// store orders the payload write before availability, then the producer-local
// cursor and free count move.
func (r *FlaggedRing[T]) Commit() {
	r.slots[r.writeIdx].avail.Store(true)
	r.writeIdx = (r.writeIdx + 1) & r.mask
	r.freeCnt--
}

// TryPush allocates, runs writer on the slot, and commits. Returns false if
// the ring is full.
func (r *FlaggedRing[T]) TryPush(writer func(*T)) bool {
	p, ok := r.Allocate()
	if !ok {
		return false
	}
	writer(p)
	r.Commit()
	return true
}

// BlockPush spins on TryPush until it succeeds.
func (r *FlaggedRing[T]) BlockPush(writer func(*T)) {
	for !r.TryPush(writer) {
	}
}

// Peek returns the oldest committed slot, or (nil, false) if the ring is
// empty. Emptiness is decided by the slot's flag alone; the write cursor is
// never loaded here.
func (r *FlaggedRing[T]) Peek() (*T, bool) {
	s := &r.slots[r.readIdx.Load()]
	if !s.avail.Load() {
		return nil, false
	}
	return &s.data, true
}

// Advance releases the slot returned by the preceding Peek: the flag clears
// first, then the shared read cursor moves so the producer's next free-count
// refresh observes it.
func (r *FlaggedRing[T]) Advance() {
	rd := r.readIdx.Load()
	r.slots[rd].avail.Store(false)
	r.readIdx.Store((rd + 1) & r.mask)
}

// TryPop peeks, runs reader on the slot, and advances. Returns false if the
// ring is empty.
func (r *FlaggedRing[T]) TryPop(reader func(*T)) bool {
	p, ok := r.Peek()
	if !ok {
		return false
	}
	reader(p)
	r.Advance()
	return true
}

// BlockPop spins on TryPop until it succeeds.
func (r *FlaggedRing[T]) BlockPop(reader func(*T)) {
	for !r.TryPop(reader) {
	}
}

// Cap returns the fixed slot count. Usable capacity is one less.
func (r *FlaggedRing[T]) Cap() int {
	return len(r.slots)
}
