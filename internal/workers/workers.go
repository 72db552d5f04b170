// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
)

// minProbeInterval floors the reachability probe period so an aggressive
// sync interval cannot turn the probe into a ping flood.
const minProbeInterval = 5 * time.Second

// Workers runs a set of background workers until the shared context is
// cancelled.
type Workers struct {
	workers []Worker
}

// NewWorkers builds an aggregate from the given workers.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// NewClientWorkers wires the standard client background set: the
// continuous sync loop and the reachability probe. The probe runs twice
// per sync interval (floored at minProbeInterval) and wakes the sync
// worker the moment the authority becomes reachable again, so a deferred
// push goes out without waiting out a full tick.
func NewClientWorkers(engine SyncRunner, store OnlineMarker, remote ReachabilityProbe, cfg config.ClientWorkers, log *logger.Logger) *Workers {
	wake := make(chan struct{}, 1)

	probeInterval := cfg.SyncInterval / 2
	if probeInterval < minProbeInterval {
		probeInterval = minProbeInterval
	}

	return NewWorkers(
		&syncWorker{
			engine:   engine,
			interval: cfg.SyncInterval,
			wake:     wake,
			logger:   log,
		},
		&reachabilityWorker{
			remote:   remote,
			store:    store,
			interval: probeInterval,
			wake:     wake,
			logger:   log,
		},
	)
}

// Run starts every worker in its own goroutine and blocks until all of
// them return, which happens once ctx is cancelled.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		worker := worker
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}
