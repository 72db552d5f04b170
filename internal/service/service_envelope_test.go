// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/models"
)

// ─────────────────────────────────────────────
// Mock: store.EnvelopeStorage
// ─────────────────────────────────────────────

type mockEnvelopeStorage struct {
	getLatestFn func(ctx context.Context, accountID string) (models.EncryptedEnvelope, error)
	replaceFn   func(ctx context.Context, accountID string, envelope models.EncryptedEnvelope) (int64, error)
	getSaltFn   func(ctx context.Context, accountID string) ([]byte, error)
}

func (m *mockEnvelopeStorage) GetLatest(ctx context.Context, accountID string) (models.EncryptedEnvelope, error) {
	if m.getLatestFn != nil {
		return m.getLatestFn(ctx, accountID)
	}
	return models.EncryptedEnvelope{}, nil
}

func (m *mockEnvelopeStorage) Replace(ctx context.Context, accountID string, envelope models.EncryptedEnvelope) (int64, error) {
	if m.replaceFn != nil {
		return m.replaceFn(ctx, accountID, envelope)
	}
	return 0, nil
}

func (m *mockEnvelopeStorage) GetSalt(ctx context.Context, accountID string) ([]byte, error) {
	if m.getSaltFn != nil {
		return m.getSaltFn(ctx, accountID)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Helper
// ─────────────────────────────────────────────

// newRawEnvelopeService bypasses the validation wrapper and returns the bare
// *envelopeService so delegation is tested in isolation.
func newRawEnvelopeService(storage *mockEnvelopeStorage) *envelopeService {
	return &envelopeService{
		envelopeStorage: storage,
		logger:          logger.Nop(),
	}
}

var errStorage = errors.New("storage error")

// ─────────────────────────────────────────────
// FetchLatest
// ─────────────────────────────────────────────

func TestEnvelopeService_FetchLatest_ReturnsFullEnvelope(t *testing.T) {
	stored := settledEnvelope(42)
	storage := &mockEnvelopeStorage{
		getLatestFn: func(_ context.Context, accountID string) (models.EncryptedEnvelope, error) {
			assert.Equal(t, "acc-1", accountID)
			return stored, nil
		},
	}
	svc := newRawEnvelopeService(storage)

	resp, err := svc.FetchLatest(context.Background(), "acc-1", 0)

	require.NoError(t, err)
	assert.True(t, resp.Exists)
	assert.False(t, resp.UpToDate)
	require.NotNil(t, resp.Envelope)
	assert.Equal(t, int64(42), resp.Envelope.Version)
	assert.Equal(t, stored.Ciphertext, resp.Envelope.Ciphertext)
}

func TestEnvelopeService_FetchLatest_UpToDateOmitsBody(t *testing.T) {
	storage := &mockEnvelopeStorage{
		getLatestFn: func(_ context.Context, _ string) (models.EncryptedEnvelope, error) {
			return settledEnvelope(42), nil
		},
	}
	svc := newRawEnvelopeService(storage)

	resp, err := svc.FetchLatest(context.Background(), "acc-1", 42)

	require.NoError(t, err)
	assert.True(t, resp.Exists)
	assert.True(t, resp.UpToDate)
	assert.Nil(t, resp.Envelope, "an up-to-date answer must not carry the envelope body")
}

func TestEnvelopeService_FetchLatest_NewerThanSinceReturnsBody(t *testing.T) {
	storage := &mockEnvelopeStorage{
		getLatestFn: func(_ context.Context, _ string) (models.EncryptedEnvelope, error) {
			return settledEnvelope(42), nil
		},
	}
	svc := newRawEnvelopeService(storage)

	resp, err := svc.FetchLatest(context.Background(), "acc-1", 41)

	require.NoError(t, err)
	assert.False(t, resp.UpToDate)
	require.NotNil(t, resp.Envelope)
	assert.Equal(t, int64(42), resp.Envelope.Version)
}

func TestEnvelopeService_FetchLatest_NotFoundPropagated(t *testing.T) {
	storage := &mockEnvelopeStorage{
		getLatestFn: func(_ context.Context, _ string) (models.EncryptedEnvelope, error) {
			return models.EncryptedEnvelope{}, store.ErrEnvelopeNotFound
		},
	}
	svc := newRawEnvelopeService(storage)

	resp, err := svc.FetchLatest(context.Background(), "acc-1", 0)

	require.ErrorIs(t, err, store.ErrEnvelopeNotFound)
	assert.False(t, resp.Exists)
}

// ─────────────────────────────────────────────
// Replace
// ─────────────────────────────────────────────

func TestEnvelopeService_Replace_Success(t *testing.T) {
	pushed := offlineEnvelope(43)
	storage := &mockEnvelopeStorage{
		replaceFn: func(_ context.Context, accountID string, envelope models.EncryptedEnvelope) (int64, error) {
			assert.Equal(t, "acc-1", accountID)
			assert.Equal(t, pushed.Ciphertext, envelope.Ciphertext)
			return 43, nil
		},
	}
	svc := newRawEnvelopeService(storage)

	resp, err := svc.Replace(context.Background(), "acc-1", pushed)

	require.NoError(t, err)
	assert.True(t, resp.OK)
	assert.Equal(t, int64(43), resp.StoredVersion)
}

func TestEnvelopeService_Replace_VersionConflictPropagated(t *testing.T) {
	storage := &mockEnvelopeStorage{
		replaceFn: func(_ context.Context, _ string, _ models.EncryptedEnvelope) (int64, error) {
			return 0, store.ErrVersionConflict
		},
	}
	svc := newRawEnvelopeService(storage)

	resp, err := svc.Replace(context.Background(), "acc-1", offlineEnvelope(10))

	require.ErrorIs(t, err, store.ErrVersionConflict)
	assert.False(t, resp.OK)
}

func TestEnvelopeService_Replace_StorageError(t *testing.T) {
	storage := &mockEnvelopeStorage{
		replaceFn: func(_ context.Context, _ string, _ models.EncryptedEnvelope) (int64, error) {
			return 0, errStorage
		},
	}
	svc := newRawEnvelopeService(storage)

	_, err := svc.Replace(context.Background(), "acc-1", offlineEnvelope(10))

	require.ErrorIs(t, err, errStorage)
}

// ─────────────────────────────────────────────
// GetSalt
// ─────────────────────────────────────────────

func TestEnvelopeService_GetSalt_FromSaltRecord(t *testing.T) {
	want := []byte("salt-salt-salt-salt-salt-salt-32")
	storage := &mockEnvelopeStorage{
		getSaltFn: func(_ context.Context, accountID string) ([]byte, error) {
			assert.Equal(t, "acc-1", accountID)
			return want, nil
		},
	}
	svc := newRawEnvelopeService(storage)

	salt, err := svc.GetSalt(context.Background(), "acc-1")

	require.NoError(t, err)
	assert.Equal(t, want, salt)
}

func TestEnvelopeService_GetSalt_FallsBackToEnvelope(t *testing.T) {
	storage := &mockEnvelopeStorage{
		getSaltFn: func(_ context.Context, _ string) ([]byte, error) {
			return nil, store.ErrSaltNotFound
		},
		getLatestFn: func(_ context.Context, _ string) (models.EncryptedEnvelope, error) {
			return settledEnvelope(42), nil
		},
	}
	svc := newRawEnvelopeService(storage)

	salt, err := svc.GetSalt(context.Background(), "acc-1")

	require.NoError(t, err)
	assert.Equal(t, settledEnvelope(42).Salt, salt)
}

func TestEnvelopeService_GetSalt_NoSaltAnywhere(t *testing.T) {
	storage := &mockEnvelopeStorage{
		getSaltFn: func(_ context.Context, _ string) ([]byte, error) {
			return nil, store.ErrSaltNotFound
		},
		getLatestFn: func(_ context.Context, _ string) (models.EncryptedEnvelope, error) {
			return models.EncryptedEnvelope{}, store.ErrEnvelopeNotFound
		},
	}
	svc := newRawEnvelopeService(storage)

	_, err := svc.GetSalt(context.Background(), "acc-1")

	require.ErrorIs(t, err, store.ErrSaltNotFound)
}

func TestEnvelopeService_GetSalt_EnvelopeWithoutSalt(t *testing.T) {
	bare := settledEnvelope(42)
	bare.Salt = nil
	storage := &mockEnvelopeStorage{
		getSaltFn: func(_ context.Context, _ string) ([]byte, error) {
			return nil, store.ErrSaltNotFound
		},
		getLatestFn: func(_ context.Context, _ string) (models.EncryptedEnvelope, error) {
			return bare, nil
		},
	}
	svc := newRawEnvelopeService(storage)

	_, err := svc.GetSalt(context.Background(), "acc-1")

	require.ErrorIs(t, err, store.ErrSaltNotFound)
}

func TestEnvelopeService_GetSalt_UnexpectedErrorSkipsFallback(t *testing.T) {
	fallbackHit := false
	storage := &mockEnvelopeStorage{
		getSaltFn: func(_ context.Context, _ string) ([]byte, error) {
			return nil, errStorage
		},
		getLatestFn: func(_ context.Context, _ string) (models.EncryptedEnvelope, error) {
			fallbackHit = true
			return settledEnvelope(42), nil
		},
	}
	svc := newRawEnvelopeService(storage)

	_, err := svc.GetSalt(context.Background(), "acc-1")

	require.ErrorIs(t, err, errStorage)
	assert.False(t, fallbackHit, "only a missing salt record falls back to the envelope")
}
