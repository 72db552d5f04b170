package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
)

// reachabilityWorker probes the authority between sync cycles and keeps
// the store's offline flag current. On the offline-to-online edge it wakes
// the sync worker so deferred pushes go out immediately.
type reachabilityWorker struct {
	remote   ReachabilityProbe
	store    OnlineMarker
	interval time.Duration
	wake     chan<- struct{}
	logger   *logger.Logger
}

// Run implements [Worker].
func (w *reachabilityWorker) Run(ctx context.Context) {
	w.probe(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.probe(ctx)
		}
	}
}

// probe pings the authority and records the outcome. The ping itself is
// bounded by the adapter's request timeout, so a dead network cannot stall
// the loop.
func (w *reachabilityWorker) probe(ctx context.Context) {
	wasOnline := w.store.IsOnline()

	err := w.remote.Ping(ctx)
	if ctx.Err() != nil {
		// Shutdown, not a reachability signal.
		return
	}

	online := err == nil
	w.store.MarkOnline(online)

	switch {
	case online && !wasOnline:
		w.logger.Info().
			Str("func", "reachabilityWorker.probe").
			Msg("authority reachable again, waking sync worker")
		select {
		case w.wake <- struct{}{}:
		default: // a wake is already pending
		}
	case !online && wasOnline:
		w.logger.Warn().Err(err).
			Str("func", "reachabilityWorker.probe").
			Msg("authority unreachable, staying on local envelope")
	}
}
