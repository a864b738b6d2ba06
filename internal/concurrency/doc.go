// File: internal/concurrency/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Lock-free single-producer/single-consumer ring buffers for hioload-spsc.
//
// Two variants with identical contracts and different synchronization:
// IndexedRing publishes each transfer through a single atomic cursor store
// and is safe to recover from shared memory after a crash; FlaggedRing trades
// that property for one fewer shared-variable load per operation by signaling
// availability through a per-slot flag.
//
// Neither variant allocates, locks, or makes a system call after
// construction. All cross-thread state is cache-line padded to keep
// producer-only and consumer-only hot variables on separate lines.
package concurrency
