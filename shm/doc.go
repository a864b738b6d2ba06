// File: shm/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// File-backed shared-memory SPSC ring for cross-process producer/consumer.
//
// The ring uses the cursor-published algorithm of spsc.Indexed laid out over
// an mmapped file: slots are fixed-size byte regions and each transfer is
// published by a single atomic store of the write cursor into the mapping.
// Because that store is the sole availability signal, a peer attaching to a
// segment after the other side crashed observes only fully written elements.
//
// The producer-side read-cursor cache lives in process memory, never in the
// segment, so it cannot be poisoned by a peer.
//
// Linux only; constructors return api.ErrNotSupported elsewhere.
package shm
