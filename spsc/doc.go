// Package spsc
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity, lock-free single-producer/single-consumer ring buffers for
// low-latency handoff between exactly two threads of control. No allocation,
// no locks, no system calls after construction; waiting is busy-spin only.
//
// Two variants share the contract in api.Ring:
//
//   - Indexed: one atomic cursor publish per transfer; crash-consistent when
//     the ring lives in shared or persistent memory.
//   - Flagged: per-slot availability flag; one fewer shared-variable load per
//     operation, usable capacity of size-1, process-private use only.
//
// See indexed.go and flagged.go for construction details.
package spsc
