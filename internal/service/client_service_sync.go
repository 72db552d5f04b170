// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-vault-sync/internal/adapter"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/models"
)

// syncEngine reconciles the single local envelope with the remote vault
// authority. Every client push goes through it, so at most one remote
// request sequence is in flight at a time and every outcome feeds the shared
// reachability hint.
type syncEngine struct {
	vaultStore store.LocalVaultStore
	remote     adapter.RemoteVault

	busy  atomic.Bool
	mu    sync.RWMutex
	state models.SyncState

	logger *logger.Logger
}

func NewSyncEngine(vaultStore store.LocalVaultStore, remote adapter.RemoteVault, logger *logger.Logger) SyncEngine {
	return &syncEngine{
		vaultStore: vaultStore,
		remote:     remote,
		state:      models.SyncStateIdle,
		logger:     logger,
	}
}

func (s *syncEngine) State() models.SyncState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

func (s *syncEngine) setState(state models.SyncState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

func (s *syncEngine) SyncOnce(ctx context.Context) (models.SyncReport, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return models.SyncReport{}, ErrSyncInProgress
	}
	defer s.busy.Store(false)

	s.setState(models.SyncStateSyncing)

	report, err := s.runCycle(ctx)
	report.SyncedAt = time.Now()

	if err != nil {
		s.setState(models.SyncStateError)
	} else {
		s.setState(models.SyncStateIdle)
	}

	// The cycle time is recorded whatever the outcome, so status can always
	// answer "when did we last try".
	if setErr := s.vaultStore.SetLastSyncedAt(ctx, report.SyncedAt); setErr != nil {
		s.logger.Warn().Err(setErr).
			Str("func", "syncEngine.SyncOnce").
			Msg("recording sync time failed")
	}

	s.logger.Debug().
		Str("func", "syncEngine.SyncOnce").
		Str("decision", string(report.Decision)).
		Bool("push_deferred", report.PushDeferred).
		Msg("sync cycle finished")

	return report, err
}

func (s *syncEngine) runCycle(ctx context.Context) (models.SyncReport, error) {
	local, err := s.vaultStore.Get(ctx)
	hasLocal := err == nil
	if err != nil && !errors.Is(err, store.ErrEnvelopeNotFound) {
		return models.SyncReport{}, fmt.Errorf("read local envelope: %w", err)
	}

	// A seal the authority has not acknowledged cannot trust the up-to-date
	// short-circuit: fetch the full envelope so versions and bytes can be
	// compared on this side.
	var sinceVersion int64
	if hasLocal && !local.IsOffline {
		sinceVersion = local.Version
	}

	fetched, err := s.remote.FetchLatest(ctx, sinceVersion)
	if err != nil {
		if adapter.IsUnavailable(err) {
			s.vaultStore.MarkOnline(false)
			if hasLocal {
				// Offline degradation: the local envelope keeps serving.
				return models.SyncReport{Decision: models.DecisionUseLocal, Local: &local}, nil
			}

			return models.SyncReport{Decision: models.DecisionUnavailable}, nil
		}
		s.vaultStore.MarkOnline(true)

		return models.SyncReport{}, fmt.Errorf("fetch remote envelope: %w", mapAdapterError(err))
	}
	s.vaultStore.MarkOnline(true)

	switch {
	case !fetched.Exists:
		if !hasLocal {
			// Nothing on either side: no vault has been created yet.
			return models.SyncReport{Decision: models.DecisionUnavailable}, nil
		}

		return s.pushLocal(ctx, local)

	case !hasLocal:
		// Fresh device: adopt the remote envelope verbatim.
		stored := fetched.Envelope.Clone()
		if err := s.vaultStore.Put(ctx, stored); err != nil {
			return models.SyncReport{}, fmt.Errorf("store fetched envelope: %w", err)
		}

		return models.SyncReport{Decision: models.DecisionUseRemote, Local: &stored, Remote: fetched.Envelope}, nil

	case fetched.UpToDate:
		return models.SyncReport{Decision: models.DecisionUpToDate, Local: &local}, nil
	}

	remote := *fetched.Envelope

	switch {
	case remote.Version > local.Version:
		if local.IsOffline {
			// Both replicas advanced past the last common version; neither
			// may win wholesale until records are reconciled.
			return models.SyncReport{Decision: models.DecisionNeedsResolution, Local: &local, Remote: &remote}, nil
		}

		stored := remote.Clone()
		if err := s.vaultStore.Put(ctx, stored); err != nil {
			return models.SyncReport{}, fmt.Errorf("store fetched envelope: %w", err)
		}

		return models.SyncReport{Decision: models.DecisionUseRemote, Local: &stored, Remote: &remote}, nil

	case remote.Version < local.Version:
		return s.pushLocal(ctx, local)

	default:
		if !local.EqualBytes(remote) {
			// Same version from independent writers.
			return models.SyncReport{Decision: models.DecisionNeedsResolution, Local: &local, Remote: &remote}, nil
		}
		if local.IsOffline {
			// The authority already holds this exact seal; settle without
			// pushing.
			settled, err := s.settleLocal(ctx, local)
			if err != nil {
				return models.SyncReport{}, err
			}
			local = settled
		}

		return models.SyncReport{Decision: models.DecisionUpToDate, Local: &local}, nil
	}
}

// pushLocal replaces the authority's envelope with the local one. An
// unreachable remote defers the push to the next cycle and is not an error;
// a rejection is surfaced while the local envelope stays authoritative.
func (s *syncEngine) pushLocal(ctx context.Context, local models.EncryptedEnvelope) (models.SyncReport, error) {
	resp, err := s.remote.Replace(ctx, local)
	if err != nil {
		report := models.SyncReport{
			Decision:     models.DecisionUseLocal,
			Local:        &local,
			PushDeferred: true,
		}
		if adapter.IsUnavailable(err) {
			s.vaultStore.MarkOnline(false)

			return report, nil
		}
		s.vaultStore.MarkOnline(true)

		return report, fmt.Errorf("push local envelope: %w", mapAdapterError(err))
	}
	s.vaultStore.MarkOnline(true)

	if local.IsOffline {
		settled, err := s.settleLocal(ctx, local)
		if err != nil {
			return models.SyncReport{}, err
		}
		local = settled
	}

	s.logger.Debug().
		Str("func", "syncEngine.pushLocal").
		Int64("stored_version", resp.StoredVersion).
		Msg("local envelope pushed")

	return models.SyncReport{Decision: models.DecisionUseLocal, Local: &local}, nil
}

// settleLocal clears the offline mark once the authority holds the envelope.
func (s *syncEngine) settleLocal(ctx context.Context, local models.EncryptedEnvelope) (models.EncryptedEnvelope, error) {
	settled := local.Clone()
	settled.IsOffline = false
	if err := s.vaultStore.Put(ctx, settled); err != nil {
		return models.EncryptedEnvelope{}, fmt.Errorf("settle pushed envelope: %w", err)
	}

	return settled, nil
}
