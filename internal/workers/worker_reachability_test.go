package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
)

// stubProbe returns a fixed ping outcome and counts calls.
type stubProbe struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (s *stubProbe) Ping(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++

	return s.err
}

func (s *stubProbe) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.calls
}

// stubMarker tracks the online flag and every MarkOnline call.
type stubMarker struct {
	mu     sync.Mutex
	online bool
	marks  []bool
}

func (s *stubMarker) IsOnline() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.online
}

func (s *stubMarker) MarkOnline(online bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.online = online
	s.marks = append(s.marks, online)
}

func (s *stubMarker) markCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.marks)
}

func newReachabilityWorkerForTest(probe ReachabilityProbe, marker OnlineMarker, interval time.Duration, wake chan<- struct{}) *reachabilityWorker {
	return &reachabilityWorker{
		remote:   probe,
		store:    marker,
		interval: interval,
		wake:     wake,
		logger:   logger.Nop(),
	}
}

func TestReachabilityWorker_MarksOnlineAndWakes(t *testing.T) {
	probe := &stubProbe{}
	marker := &stubMarker{online: false}
	wake := make(chan struct{}, 1)
	w := newReachabilityWorkerForTest(probe, marker, time.Hour, wake)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	waitFor(t, time.Second, func() bool { return marker.IsOnline() })

	select {
	case <-wake:
	case <-time.After(time.Second):
		t.Fatal("expected a wake signal on the offline-to-online edge")
	}
}

func TestReachabilityWorker_MarksOfflineOnFailedPing(t *testing.T) {
	probe := &stubProbe{err: errors.New("connection refused")}
	marker := &stubMarker{online: true}
	wake := make(chan struct{}, 1)
	w := newReachabilityWorkerForTest(probe, marker, time.Hour, wake)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	waitFor(t, time.Second, func() bool { return !marker.IsOnline() })

	select {
	case <-wake:
		t.Fatal("going offline must not wake the sync worker")
	default:
	}
}

func TestReachabilityWorker_NoWakeWithoutEdge(t *testing.T) {
	probe := &stubProbe{}
	marker := &stubMarker{online: true} // already online, ping keeps succeeding
	wake := make(chan struct{}, 1)
	w := newReachabilityWorkerForTest(probe, marker, 10*time.Millisecond, wake)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	waitFor(t, 2*time.Second, func() bool { return probe.callCount() >= 3 })

	select {
	case <-wake:
		t.Fatal("steady online state must not produce wake signals")
	default:
	}
}

func TestReachabilityWorker_ProbesAtInterval(t *testing.T) {
	probe := &stubProbe{}
	marker := &stubMarker{}
	w := newReachabilityWorkerForTest(probe, marker, 10*time.Millisecond, make(chan struct{}, 1))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	waitFor(t, 2*time.Second, func() bool { return probe.callCount() >= 3 })
}

func TestReachabilityWorker_DoesNotRecordDuringShutdown(t *testing.T) {
	probe := &stubProbe{err: context.Canceled}
	marker := &stubMarker{online: true}
	w := newReachabilityWorkerForTest(probe, marker, time.Hour, make(chan struct{}, 1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A ping failed by cancellation says nothing about reachability; the
	// online flag must survive shutdown untouched.
	w.probe(ctx)

	if marker.markCount() != 0 {
		t.Errorf("expected no MarkOnline calls during shutdown, got %d", marker.markCount())
	}
	if !marker.IsOnline() {
		t.Error("online flag must not be flipped by a cancelled probe")
	}
}

func TestReachabilityWorker_StopsOnContextCancel(t *testing.T) {
	probe := &stubProbe{}
	marker := &stubMarker{}
	w := newReachabilityWorkerForTest(probe, marker, 10*time.Millisecond, make(chan struct{}, 1))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	waitFor(t, time.Second, func() bool { return probe.callCount() >= 1 })
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("reachabilityWorker.Run did not return after context cancellation")
	}
}
