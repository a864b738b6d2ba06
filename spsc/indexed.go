// File: spsc/indexed.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Public wrapper over the cursor-published SPSC ring in internal/concurrency.

package spsc

import (
	"github.com/momentics/hioload-spsc/api"
	"github.com/momentics/hioload-spsc/internal/concurrency"
)

// Indexed is an SPSC ring buffer publishing each transfer through a single
// atomic cursor store. Implements api.Ring.
type Indexed[T any] struct {
	*concurrency.IndexedRing[T]
}

// NewIndexed creates an Indexed ring of `size` slots; size must be a power of
// two. Panics otherwise.
func NewIndexed[T any](size uint32) *Indexed[T] {
	return &Indexed[T]{IndexedRing: concurrency.NewIndexedRing[T](size)}
}

// Ensure compile-time compliance.
var _ api.Ring[any] = (*Indexed[any])(nil)
