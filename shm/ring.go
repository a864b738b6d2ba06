// File: shm/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Cursor-published SPSC operations over a mapped segment. The algorithm is
// the same as internal/concurrency.IndexedRing; the cursors live inside the
// mapping and are reached through unsafe pointers, the slots are byte views
// into the data area. Mapping and unmapping are platform files.

package shm

import (
	"sync/atomic"
	"unsafe"
)

// Ring is one side of a shared-memory SPSC ring. A process may use a Ring as
// producer or as consumer, never both sides from more than one thread.
type Ring struct {
	mem      []byte
	elemSize uint32
	mask     uint32

	// readIdxCache is producer-local process memory, never part of the
	// segment.
	readIdxCache uint32
}

func (r *Ring) u32(off uintptr) *atomic.Uint32 {
	return (*atomic.Uint32)(unsafe.Pointer(&r.mem[off]))
}

func (r *Ring) writeIdx() *atomic.Uint32 { return r.u32(writeIdxOff) }
func (r *Ring) readIdx() *atomic.Uint32  { return r.u32(readIdxOff) }

// slot returns the byte view of the physical slot for a logical cursor.
func (r *Ring) slot(cursor uint32) []byte {
	off := headerSize + int(cursor&r.mask)*int(r.elemSize)
	return r.mem[off : off+int(r.elemSize) : off+int(r.elemSize)]
}

// Allocate returns the next free slot as a writable byte view of ElemSize
// bytes, or (nil, false) if the ring is full.
func (r *Ring) Allocate() ([]byte, bool) {
	w := r.writeIdx().Load()
	if w-r.readIdxCache == r.mask+1 {
		r.readIdxCache = r.readIdx().Load()
		if w-r.readIdxCache == r.mask+1 {
			return nil, false
		}
	}
	return r.slot(w), true
}

// Commit publishes the slot returned by the preceding Allocate. This is the
// single atomic store the crash-consistency contract rests on: a peer either
// observes the old cursor or the new cursor with the payload fully visible.
func (r *Ring) Commit() {
	w := r.writeIdx()
	w.Store(w.Load() + 1)
}

// TryPush allocates, runs writer on the slot bytes, and commits. Returns
// false if the ring is full.
func (r *Ring) TryPush(writer func([]byte)) bool {
	b, ok := r.Allocate()
	if !ok {
		return false
	}
	writer(b)
	r.Commit()
	return true
}

// BlockPush spins on TryPush until it succeeds.
func (r *Ring) BlockPush(writer func([]byte)) {
	for !r.TryPush(writer) {
	}
}

// Peek returns the oldest committed slot as a readable byte view, or
// (nil, false) if the ring is empty.
func (r *Ring) Peek() ([]byte, bool) {
	rd := r.readIdx().Load()
	if rd == r.writeIdx().Load() {
		return nil, false
	}
	return r.slot(rd), true
}

// Advance releases the slot returned by the preceding Peek.
func (r *Ring) Advance() {
	rd := r.readIdx()
	rd.Store(rd.Load() + 1)
}

// TryPop peeks, runs reader on the slot bytes, and advances. Returns false
// if the ring is empty.
func (r *Ring) TryPop(reader func([]byte)) bool {
	b, ok := r.Peek()
	if !ok {
		return false
	}
	reader(b)
	r.Advance()
	return true
}

// BlockPop spins on TryPop until it succeeds.
func (r *Ring) BlockPop(reader func([]byte)) {
	for !r.TryPop(reader) {
	}
}

// Len returns the number of committed, unconsumed elements.
func (r *Ring) Len() int {
	return int(r.writeIdx().Load() - r.readIdx().Load())
}

// Cap returns the fixed slot count of the segment.
func (r *Ring) Cap() int { return int(r.mask) + 1 }

// ElemSize returns the fixed element size in bytes.
func (r *Ring) ElemSize() int { return int(r.elemSize) }
