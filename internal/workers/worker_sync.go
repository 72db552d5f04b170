package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/service"
)

// syncWorker runs the sync engine on a fixed interval. A wake signal from
// the reachability worker triggers an extra cycle between ticks, which is
// how a deferred push gets retried as soon as the authority is back.
type syncWorker struct {
	engine   SyncRunner
	interval time.Duration
	wake     <-chan struct{}
	logger   *logger.Logger
}

// Run implements [Worker]. An initial cycle runs immediately so a freshly
// started client converges without waiting out the first tick.
func (w *syncWorker) Run(ctx context.Context) {
	w.syncOnce(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.syncOnce(ctx)
		case <-w.wake:
			w.syncOnce(ctx)
		}
	}
}

func (w *syncWorker) syncOnce(ctx context.Context) {
	report, err := w.engine.SyncOnce(ctx)
	if errors.Is(err, service.ErrSyncInProgress) {
		// A manually triggered cycle is still running; the tick is redundant.
		w.logger.Debug().
			Str("func", "syncWorker.syncOnce").
			Msg("cycle already in flight, skipping tick")
		return
	}
	if err != nil {
		w.logger.Warn().Err(err).
			Str("func", "syncWorker.syncOnce").
			Msg("scheduled sync failed")
		return
	}

	w.logger.Info().
		Str("func", "syncWorker.syncOnce").
		Str("decision", string(report.Decision)).
		Bool("push_deferred", report.PushDeferred).
		Msg("scheduled sync completed")
}
