package utils

import (
	"sync"
	"testing"
	"time"
)

func TestMonotonicVersionSource_StrictlyIncreasing(t *testing.T) {
	src := NewMonotonicVersionSource()

	prev := src.Next()
	for i := 0; i < 10_000; i++ {
		v := src.Next()
		if v <= prev {
			t.Fatalf("version did not increase: prev=%d next=%d", prev, v)
		}
		prev = v
	}
}

func TestMonotonicVersionSource_SurvivesClockRetreat(t *testing.T) {
	now := time.Now()
	src := &MonotonicVersionSource{now: func() time.Time { return now }}

	first := src.Next()

	// the wall clock jumps back one minute
	now = now.Add(-time.Minute)
	second := src.Next()

	if second <= first {
		t.Fatalf("clock retreat produced non-increasing version: %d then %d", first, second)
	}
}

func TestMonotonicVersionSource_NextAfter(t *testing.T) {
	src := NewMonotonicVersionSource()

	floor := time.Now().Add(time.Hour).UnixMilli() // far ahead of the clock
	v := src.NextAfter(floor)
	if v <= floor {
		t.Fatalf("expected version above floor %d, got %d", floor, v)
	}

	// subsequent plain Next calls keep increasing past the floored value
	if next := src.Next(); next <= v {
		t.Fatalf("expected %d > %d", next, v)
	}
}

func TestMonotonicVersionSource_NextAfter_LowFloorIgnored(t *testing.T) {
	src := NewMonotonicVersionSource()

	v := src.NextAfter(1)
	if v <= 1 {
		t.Fatalf("expected realistic millis-based version, got %d", v)
	}
}

func TestMonotonicVersionSource_Concurrent(t *testing.T) {
	src := NewMonotonicVersionSource()

	const goroutines = 16
	const perGoroutine = 500

	var wg sync.WaitGroup
	out := make(chan int64, goroutines*perGoroutine)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				out <- src.Next()
			}
		}()
	}
	wg.Wait()
	close(out)

	seen := make(map[int64]struct{}, goroutines*perGoroutine)
	for v := range out {
		if _, dup := seen[v]; dup {
			t.Fatalf("duplicate version issued: %d", v)
		}
		seen[v] = struct{}{}
	}
}
