// File: api/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Common error values for hioload-spsc.
//
// Ring full and ring empty are not errors: the hot path reports them through
// boolean returns only. Errors here belong to construction and to the
// shared-memory attachment path.

package api

import "errors"

var (
	// ErrNotSupported indicates the requested facility is unavailable on this
	// platform (shared-memory rings outside Linux, CPU affinity on platforms
	// without sched_setaffinity).
	ErrNotSupported = errors.New("operation not supported on this platform")

	// ErrBadSegment indicates a shared-memory segment whose header failed
	// validation: wrong magic, wrong layout version, or a geometry that does
	// not match the file size.
	ErrBadSegment = errors.New("shared memory segment header is invalid")

	// ErrGeometryMismatch indicates an Open with an element size or capacity
	// different from the one the segment was created with.
	ErrGeometryMismatch = errors.New("ring geometry does not match segment")

	// ErrInvalidGeometry indicates a zero element size or a capacity that is
	// not a power of two.
	ErrInvalidGeometry = errors.New("element size must be nonzero and capacity a power of two")
)
