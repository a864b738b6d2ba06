//go:build !linux
// +build !linux

// File: shm/map_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Stub constructors for platforms without the mmap path.

package shm

import "github.com/momentics/hioload-spsc/api"

// Create is unsupported on this platform.
func Create(string, uint32, uint32) (*Ring, error) {
	return nil, api.ErrNotSupported
}

// Open is unsupported on this platform.
func Open(string, uint32, uint32) (*Ring, error) {
	return nil, api.ErrNotSupported
}

// Close is a no-op on platforms where no segment can exist.
func (r *Ring) Close() error { return nil }

// Sync is a no-op on platforms where no segment can exist.
func (r *Ring) Sync() error { return nil }
