// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for CPU affinity. Platform-specific implementations are
// located in separate files (affinity_linux.go, affinity_stub.go) guarded by
// build tags.
//
// Pinning the producer and consumer threads of an SPSC ring to dedicated
// cores keeps the ring's cache lines bouncing between exactly two L1s, which
// is where its latency numbers come from.

package affinity

import "runtime"

// SetAffinity pins the current OS thread to a given logical CPU/core on
// supported platforms. On unsupported platforms returns an error.
func SetAffinity(cpuID int) error {
	return setAffinityPlatform(cpuID)
}

// PinCurrentGoroutine locks the calling goroutine to its OS thread and pins
// that thread to cpuID. Returns the unlock function; callers should defer it.
// If pinning is unsupported the goroutine is still locked and the error is
// returned alongside a valid unlock function.
func PinCurrentGoroutine(cpuID int) (func(), error) {
	runtime.LockOSThread()
	err := setAffinityPlatform(cpuID)
	return runtime.UnlockOSThread, err
}
