// Package benchmarks
// Author: momentics <momentics@gmail.com>
//
// Performance benchmarks for hioload-spsc rings: uncontended push/pop cost,
// two-goroutine handoff throughput, the shared-memory ring, and a baseline
// against the ecosystem's stock byte ring buffer.

package benchmarks

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/smallnest/ringbuffer"

	"github.com/momentics/hioload-spsc/shm"
	"github.com/momentics/hioload-spsc/spsc"
)

// BenchmarkIndexedPushPop measures the uncontended single-thread cost of one
// full transfer through the cursor-published ring.
func BenchmarkIndexedPushPop(b *testing.B) {
	r := spsc.NewIndexed[int](1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.TryPush(func(p *int) { *p = i })
		r.TryPop(func(*int) {})
	}
}

// BenchmarkFlaggedPushPop is the same measurement for the flag-published ring.
func BenchmarkFlaggedPushPop(b *testing.B) {
	r := spsc.NewFlagged[int](1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.TryPush(func(p *int) { *p = i })
		r.TryPop(func(*int) {})
	}
}

func benchPingPong(b *testing.B, push func(int) bool, pop func() bool) {
	b.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < b.N; i++ {
			for !pop() {
				runtime.Gosched()
			}
		}
	}()
	for i := 0; i < b.N; i++ {
		for !push(i) {
			runtime.Gosched()
		}
	}
	<-done
}

// BenchmarkIndexedHandoff measures cross-goroutine throughput, producer and
// consumer running concurrently.
func BenchmarkIndexedHandoff(b *testing.B) {
	r := spsc.NewIndexed[int](4096)
	b.ResetTimer()
	benchPingPong(b,
		func(i int) bool { return r.TryPush(func(p *int) { *p = i }) },
		func() bool { return r.TryPop(func(*int) {}) })
}

// BenchmarkFlaggedHandoff is the cross-goroutine measurement for the
// flag-published ring; the consumer side never loads the write cursor here.
func BenchmarkFlaggedHandoff(b *testing.B) {
	r := spsc.NewFlagged[int](4096)
	b.ResetTimer()
	benchPingPong(b,
		func(i int) bool { return r.TryPush(func(p *int) { *p = i }) },
		func() bool { return r.TryPop(func(*int) {}) })
}

// BenchmarkShmPushPop measures one transfer through the mmapped ring,
// element payloads written in place.
func BenchmarkShmPushPop(b *testing.B) {
	r, err := shm.Create(filepath.Join(b.TempDir(), "bench.seg"), 64, 1024)
	if err != nil {
		b.Skipf("shared-memory ring unavailable: %v", err)
	}
	defer r.Close()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.TryPush(func(s []byte) { s[0] = byte(i) })
		r.TryPop(func([]byte) {})
	}
}

// BenchmarkSmallnestBaseline pushes the same 64-byte payloads through
// smallnest/ringbuffer for an ecosystem reference point.
func BenchmarkSmallnestBaseline(b *testing.B) {
	r := ringbuffer.New(64 * 1024)
	var buf [64]byte
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.Write(buf[:]); err != nil {
			b.Fatal(err)
		}
		if _, err := r.Read(buf[:]); err != nil {
			b.Fatal(err)
		}
	}
}
