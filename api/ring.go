// File: api/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Lock-free single-producer/single-consumer ring buffer contracts.
//
// Exactly one goroutine (or OS thread, for shared-memory rings) may call the
// Producer side and exactly one may call the Consumer side. Violating this is
// undefined behavior, not a checked error: the hot path carries no ownership
// checks by design.

package api

// Producer is the writer half of an SPSC ring.
type Producer[T any] interface {
	// Allocate returns a pointer to the next free slot, or (nil, false) if the
	// ring is full. It has no side effect on cursors; the caller writes the
	// element through the returned pointer and then calls Commit.
	Allocate() (*T, bool)

	// Commit publishes the slot returned by the preceding Allocate. After
	// Commit returns, a consumer that observes the publication also observes
	// every write the producer made to the slot before calling Commit.
	Commit()

	// TryPush allocates a slot, invokes writer with it, and commits.
	// Returns false without invoking writer if the ring is full.
	TryPush(writer func(*T)) bool

	// BlockPush spins on TryPush until it succeeds. No backoff, no yielding;
	// bounding the wait is the caller's responsibility.
	BlockPush(writer func(*T))
}

// Consumer is the reader half of an SPSC ring.
type Consumer[T any] interface {
	// Peek returns a pointer to the oldest committed slot, or (nil, false) if
	// the ring is empty. It has no side effect on cursors; the caller reads
	// the element and then calls Advance.
	Peek() (*T, bool)

	// Advance releases the slot returned by the preceding Peek back to the
	// producer.
	Advance()

	// TryPop peeks at the oldest slot, invokes reader with it, and advances.
	// Returns false without invoking reader if the ring is empty.
	TryPop(reader func(*T)) bool

	// BlockPop spins on TryPop until it succeeds.
	BlockPop(reader func(*T))
}

// Ring is a complete SPSC ring buffer: one Producer, one Consumer, fixed
// power-of-two capacity.
type Ring[T any] interface {
	Producer[T]
	Consumer[T]

	// Cap returns the fixed slot count of the backing store. Depending on the
	// implementation, the number of usable slots may be one less.
	Cap() int
}
