//go:build linux
// +build linux

// File: shm/map_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Segment creation, attachment, and teardown on Linux via mmap.

package shm

import (
	"fmt"
	"os"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-spsc/api"
)

// Create formats path as a new ring segment of the given geometry and maps
// it. The file is truncated; any previous contents are lost. capacity must be
// a power of two.
func Create(path string, elemSize, capacity uint32) (*Ring, error) {
	if err := checkGeometry(elemSize, capacity); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("shm: create %s: %w", path, err)
	}
	defer f.Close()

	size := segmentSize(elemSize, capacity)
	if err := f.Truncate(0); err != nil {
		return nil, fmt.Errorf("shm: truncate %s: %w", path, err)
	}
	if err := f.Truncate(size); err != nil {
		return nil, fmt.Errorf("shm: truncate %s: %w", path, err)
	}

	mem, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("shm: mmap %s: %w", path, err)
	}

	r := &Ring{mem: mem, elemSize: elemSize, mask: capacity - 1}
	putU32(mem, versionOff, segVersion)
	putU32(mem, elemSizeOff, elemSize)
	putU32(mem, capacityOff, capacity)
	r.writeIdx().Store(0)
	r.readIdx().Store(0)
	// Magic goes in last so a crash during formatting leaves no valid header.
	(*atomic.Uint32)(unsafe.Pointer(&mem[magicOff])).Store(segMagic)
	return r, nil
}

// Open attaches to an existing segment, validating its header against the
// expected geometry. Cursors are left exactly as found, so a segment that
// survived a peer crash resumes with every committed element intact.
func Open(path string, elemSize, capacity uint32) (*Ring, error) {
	if err := checkGeometry(elemSize, capacity); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("shm: open %s: %w", path, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("shm: stat %s: %w", path, err)
	}
	size := segmentSize(elemSize, capacity)
	if st.Size() != size {
		return nil, api.ErrGeometryMismatch
	}

	mem, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("shm: mmap %s: %w", path, err)
	}

	if getU32(mem, magicOff) != segMagic || getU32(mem, versionOff) != segVersion {
		unix.Munmap(mem)
		return nil, api.ErrBadSegment
	}
	if getU32(mem, elemSizeOff) != elemSize || getU32(mem, capacityOff) != capacity {
		unix.Munmap(mem)
		return nil, api.ErrGeometryMismatch
	}
	return &Ring{mem: mem, elemSize: elemSize, mask: capacity - 1}, nil
}

// Close unmaps the segment. The file itself is left in place for a peer or a
// later reattach; removing it is the caller's call.
func (r *Ring) Close() error {
	if r.mem == nil {
		return nil
	}
	err := unix.Munmap(r.mem)
	r.mem = nil
	if err != nil {
		return fmt.Errorf("shm: munmap: %w", err)
	}
	return nil
}

// Sync flushes the mapping to the backing file synchronously. Only needed
// when the segment doubles as a durable queue.
func (r *Ring) Sync() error {
	if r.mem == nil {
		return nil
	}
	if err := unix.Msync(r.mem, unix.MS_SYNC); err != nil {
		return fmt.Errorf("shm: msync: %w", err)
	}
	return nil
}

func putU32(mem []byte, off uintptr, v uint32) {
	(*atomic.Uint32)(unsafe.Pointer(&mem[off])).Store(v)
}

func getU32(mem []byte, off uintptr) uint32 {
	return (*atomic.Uint32)(unsafe.Pointer(&mem[off])).Load()
}
