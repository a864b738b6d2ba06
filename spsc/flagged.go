// File: spsc/flagged.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Public wrapper over the flag-published SPSC ring in internal/concurrency.

package spsc

import (
	"github.com/momentics/hioload-spsc/api"
	"github.com/momentics/hioload-spsc/internal/concurrency"
)

// Flagged is an SPSC ring buffer signaling availability through per-slot
// flags. One slot of `size` is always kept free. Implements api.Ring.
//
// Not crash-consistent: a transfer is two ordered stores, so a ring resident
// in durable shared memory can be left inconsistent by a crash between them.
// Use Indexed for persisted queues.
type Flagged[T any] struct {
	*concurrency.FlaggedRing[T]
}

// NewFlagged creates a Flagged ring of `size` slots; size must be a power of
// two. Panics otherwise.
func NewFlagged[T any](size uint32) *Flagged[T] {
	return &Flagged[T]{FlaggedRing: concurrency.NewFlaggedRing[T](size)}
}

// Ensure compile-time compliance.
var _ api.Ring[any] = (*Flagged[any])(nil)
