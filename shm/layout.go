// File: shm/layout.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// On-disk layout of a ring segment.
//
// The header occupies three cache lines: immutable geometry, then the write
// cursor, then the read cursor, each on its own line so the producer's and
// consumer's hot stores never contend. Data slots follow the header
// back-to-back.

package shm

import (
	"github.com/momentics/hioload-spsc/api"
)

const (
	// segMagic spells "SPSC" and marks a formatted segment. It is written
	// last during Create so a crash mid-format leaves the file invalid.
	segMagic = 0x53505343

	segVersion = 1

	headerSize  = 192
	magicOff    = 0
	versionOff  = 4
	elemSizeOff = 8
	capacityOff = 12
	writeIdxOff = 64
	readIdxOff  = 128
)

// checkGeometry validates construction parameters shared by Create and Open.
func checkGeometry(elemSize, capacity uint32) error {
	if elemSize == 0 || capacity == 0 || capacity&(capacity-1) != 0 {
		return api.ErrInvalidGeometry
	}
	return nil
}

// segmentSize returns the file size for a given geometry.
func segmentSize(elemSize, capacity uint32) int64 {
	return int64(headerSize) + int64(elemSize)*int64(capacity)
}
