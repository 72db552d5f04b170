// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/models"
)

// Supported local store backend names, matched against
// [config.ClientStorage].Backend.
const (
	BackendSQLite = "sqlite"
	BackendBolt   = "bolt"
)

// lastSyncedAtKey is the sync_meta key holding the completion time of the
// last successful sync cycle, formatted as RFC 3339 with nanoseconds.
const lastSyncedAtKey = "last_synced_at"

// envelopeBackend is the persistence contract both storage engines satisfy.
// Implementations must make putEnvelope atomic with respect to crashes.
type envelopeBackend interface {
	putEnvelope(ctx context.Context, envelope models.EncryptedEnvelope) error
	getEnvelope(ctx context.Context) (models.EncryptedEnvelope, error)
	putMeta(ctx context.Context, key string, value []byte) error
	getMeta(ctx context.Context, key string) ([]byte, error)
	close() error
}

// localVaultStore is the default implementation of [LocalVaultStore]. It
// layers the online hint and version issuance over a pluggable persistence
// backend.
type localVaultStore struct {
	backend  envelopeBackend
	versions VersionSource
	online   atomic.Bool
	logger   *logger.Logger
}

// NewLocalVaultStore opens the client-side vault store using the backend
// selected in cfg. An empty backend name defaults to SQLite.
//
// The store starts in the online state: the first sync cycle corrects the
// hint either way, and an optimistic start means a freshly launched client
// attempts to reach the remote instead of silently staying local.
func NewLocalVaultStore(cfg config.ClientStorage, versions VersionSource, log *logger.Logger) (LocalVaultStore, error) {
	var backend envelopeBackend
	var err error

	switch cfg.Backend {
	case BackendBolt:
		backend, err = newBoltBackend(cfg.Path, log)
	case BackendSQLite, "":
		backend, err = newSQLiteBackend(cfg.Path, log)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
	if err != nil {
		return nil, err
	}

	store := &localVaultStore{
		backend:  backend,
		versions: versions,
		logger:   log,
	}
	store.online.Store(true)

	return store, nil
}

// Put persists the envelope as the current local copy, replacing whatever
// was stored before. Backend failures are wrapped in [ErrStorageFailure].
func (l *localVaultStore) Put(ctx context.Context, envelope models.EncryptedEnvelope) error {
	log := logger.FromContext(ctx)

	if err := l.backend.putEnvelope(ctx, envelope); err != nil {
		log.Err(err).
			Str("func", "localVaultStore.Put").
			Int64("version", envelope.Version).
			Msg("failed to persist envelope")
		return fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	return nil
}

// Get returns the current local envelope, [ErrEnvelopeNotFound] if none was
// ever stored, or a wrapped [ErrStorageFailure] if the backend cannot read.
func (l *localVaultStore) Get(ctx context.Context) (models.EncryptedEnvelope, error) {
	log := logger.FromContext(ctx)

	envelope, err := l.backend.getEnvelope(ctx)
	if err != nil {
		if errors.Is(err, ErrEnvelopeNotFound) {
			return models.EncryptedEnvelope{}, err
		}
		log.Err(err).
			Str("func", "localVaultStore.Get").
			Msg("failed to read envelope")
		return models.EncryptedEnvelope{}, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	return envelope, nil
}

// LastSyncedAt returns the completion time of the last successful sync
// cycle. The zero time means the vault has never completed one.
func (l *localVaultStore) LastSyncedAt(ctx context.Context) (time.Time, error) {
	log := logger.FromContext(ctx)

	value, err := l.backend.getMeta(ctx, lastSyncedAtKey)
	if err != nil {
		log.Err(err).
			Str("func", "localVaultStore.LastSyncedAt").
			Msg("failed to read sync meta")
		return time.Time{}, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}
	if len(value) == 0 {
		return time.Time{}, nil
	}

	at, parseErr := time.Parse(time.RFC3339Nano, string(value))
	if parseErr != nil {
		log.Err(parseErr).
			Str("func", "localVaultStore.LastSyncedAt").
			Msg("stored sync time is not parseable")
		return time.Time{}, fmt.Errorf("%w: %w", ErrStorageFailure, parseErr)
	}

	return at, nil
}

// SetLastSyncedAt records the completion time of a sync cycle.
func (l *localVaultStore) SetLastSyncedAt(ctx context.Context, at time.Time) error {
	log := logger.FromContext(ctx)

	value := []byte(at.UTC().Format(time.RFC3339Nano))
	if err := l.backend.putMeta(ctx, lastSyncedAtKey, value); err != nil {
		log.Err(err).
			Str("func", "localVaultStore.SetLastSyncedAt").
			Msg("failed to write sync meta")
		return fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	return nil
}

// IsOnline reports the client's current belief about remote reachability.
func (l *localVaultStore) IsOnline() bool {
	return l.online.Load()
}

// MarkOnline records the outcome of the most recent remote call and logs
// transitions between the two states.
func (l *localVaultStore) MarkOnline(online bool) {
	previous := l.online.Swap(online)
	if previous != online {
		l.logger.Info().
			Str("func", "localVaultStore.MarkOnline").
			Bool("online", online).
			Msg("connectivity state changed")
	}
}

// NextVersion issues the next envelope version.
func (l *localVaultStore) NextVersion() int64 {
	return l.versions.Next()
}

// NextVersionAfter issues the next envelope version, guaranteed to exceed
// floor even when floor comes from a writer whose clock runs ahead.
func (l *localVaultStore) NextVersionAfter(floor int64) int64 {
	return l.versions.NextAfter(floor)
}

// Close releases the backing file.
func (l *localVaultStore) Close() error {
	return l.backend.close()
}
