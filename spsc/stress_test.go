// File: spsc/stress_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Two-goroutine stress runs: one producer pushing a monotone sequence, one
// consumer checking it arrives gapless and in order. Run with -race; the
// release/acquire edges on the cursors and flags are the whole point.

package spsc_test

import (
	"runtime"
	"testing"

	"github.com/momentics/hioload-spsc/affinity"
	"github.com/momentics/hioload-spsc/api"
	"github.com/momentics/hioload-spsc/spsc"
)

func stressRun(t *testing.T, ring api.Ring[int], total int) {
	t.Helper()
	done := make(chan struct{})

	go func() {
		defer close(done)
		// Pinning is best-effort; restricted environments refuse it.
		if unpin, err := affinity.PinCurrentGoroutine(0); err == nil {
			defer unpin()
		}
		for i := 0; i < total; i++ {
			for !ring.TryPush(func(p *int) { *p = i }) {
				runtime.Gosched()
			}
		}
	}()

	if unpin, err := affinity.PinCurrentGoroutine(1); err == nil {
		defer unpin()
	}
	for i := 0; i < total; i++ {
		var got int
		for !ring.TryPop(func(p *int) { got = *p }) {
			runtime.Gosched()
		}
		if got != i {
			t.Fatalf("received %d at position %d", got, i)
		}
	}
	<-done

	if ring.TryPop(func(*int) {}) {
		t.Fatal("ring not empty after consuming the full sequence")
	}
}

func stressTotal() int {
	if testing.Short() {
		return 100_000
	}
	return 1_000_000
}

func TestIndexed_StressSequential(t *testing.T) {
	stressRun(t, spsc.NewIndexed[int](1024), stressTotal())
}

func TestFlagged_StressSequential(t *testing.T) {
	stressRun(t, spsc.NewFlagged[int](1024), stressTotal())
}

// Small rings force constant full/empty transitions, hammering the cache
// refresh paths on both sides.
func TestIndexed_StressTinyRing(t *testing.T) {
	stressRun(t, spsc.NewIndexed[int](2), 200_000)
}

func TestFlagged_StressTinyRing(t *testing.T) {
	stressRun(t, spsc.NewFlagged[int](2), 200_000)
}
