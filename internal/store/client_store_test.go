package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/utils"
	"github.com/MKhiriev/go-vault-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// localBackends lists every engine the client store supports. Each test in
// this file runs against all of them: the LocalVaultStore contract must not
// depend on the storage engine.
var localBackends = []string{BackendSQLite, BackendBolt}

func testEnvelope(version int64) models.EncryptedEnvelope {
	return models.EncryptedEnvelope{
		Ciphertext:   []byte("sealed vault bytes"),
		IV:           []byte("nonce-123456"),
		Version:      version,
		LastModified: time.UnixMilli(1_700_000_000_000).UTC(),
	}
}

func newTestStore(t *testing.T, backend, path string) LocalVaultStore {
	t.Helper()

	cfg := config.ClientStorage{Backend: backend, Path: path}
	vaultStore, err := NewLocalVaultStore(cfg, utils.NewMonotonicVersionSource(), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { vaultStore.Close() })

	return vaultStore
}

func TestLocalVaultStorePutGet(t *testing.T) {
	for _, backend := range localBackends {
		t.Run(backend, func(t *testing.T) {
			ctx := context.Background()
			vaultStore := newTestStore(t, backend, filepath.Join(t.TempDir(), "vault.db"))

			// empty store reports not found, not an error
			_, err := vaultStore.Get(ctx)
			require.ErrorIs(t, err, ErrEnvelopeNotFound)

			envelope := testEnvelope(1)
			envelope.Salt = []byte("kdf-salt")
			envelope.IsOffline = true
			require.NoError(t, vaultStore.Put(ctx, envelope))

			got, err := vaultStore.Get(ctx)
			require.NoError(t, err)
			assert.Equal(t, envelope.Ciphertext, got.Ciphertext)
			assert.Equal(t, envelope.IV, got.IV)
			assert.Equal(t, envelope.Salt, got.Salt)
			assert.Equal(t, envelope.Version, got.Version)
			assert.True(t, envelope.LastModified.Equal(got.LastModified),
				"want %v, got %v", envelope.LastModified, got.LastModified)
			assert.True(t, got.IsOffline)
		})
	}
}

func TestLocalVaultStorePutReplacesWholesale(t *testing.T) {
	for _, backend := range localBackends {
		t.Run(backend, func(t *testing.T) {
			ctx := context.Background()
			vaultStore := newTestStore(t, backend, filepath.Join(t.TempDir(), "vault.db"))

			first := testEnvelope(1)
			first.Salt = []byte("kdf-salt")
			require.NoError(t, vaultStore.Put(ctx, first))

			// second envelope has no salt; the stored salt must not leak through
			second := testEnvelope(2)
			second.Ciphertext = []byte("reseal after change")
			require.NoError(t, vaultStore.Put(ctx, second))

			got, err := vaultStore.Get(ctx)
			require.NoError(t, err)
			assert.Equal(t, second.Ciphertext, got.Ciphertext)
			assert.Equal(t, int64(2), got.Version)
			assert.Empty(t, got.Salt)
		})
	}
}

func TestLocalVaultStoreSurvivesReopen(t *testing.T) {
	for _, backend := range localBackends {
		t.Run(backend, func(t *testing.T) {
			ctx := context.Background()
			path := filepath.Join(t.TempDir(), "vault.db")

			cfg := config.ClientStorage{Backend: backend, Path: path}
			vaultStore, err := NewLocalVaultStore(cfg, utils.NewMonotonicVersionSource(), logger.Nop())
			require.NoError(t, err)

			envelope := testEnvelope(3)
			require.NoError(t, vaultStore.Put(ctx, envelope))
			require.NoError(t, vaultStore.SetLastSyncedAt(ctx, time.UnixMilli(1_700_000_999_000).UTC()))
			require.NoError(t, vaultStore.Close())

			reopened := newTestStore(t, backend, path)

			got, err := reopened.Get(ctx)
			require.NoError(t, err)
			assert.Equal(t, envelope.Ciphertext, got.Ciphertext)
			assert.Equal(t, int64(3), got.Version)

			syncedAt, err := reopened.LastSyncedAt(ctx)
			require.NoError(t, err)
			assert.True(t, syncedAt.Equal(time.UnixMilli(1_700_000_999_000).UTC()))
		})
	}
}

func TestLocalVaultStoreLastSyncedAt(t *testing.T) {
	for _, backend := range localBackends {
		t.Run(backend, func(t *testing.T) {
			ctx := context.Background()
			vaultStore := newTestStore(t, backend, filepath.Join(t.TempDir(), "vault.db"))

			// never synced yet
			syncedAt, err := vaultStore.LastSyncedAt(ctx)
			require.NoError(t, err)
			assert.True(t, syncedAt.IsZero())

			at := time.Date(2026, 2, 14, 10, 30, 0, 123456789, time.UTC)
			require.NoError(t, vaultStore.SetLastSyncedAt(ctx, at))

			syncedAt, err = vaultStore.LastSyncedAt(ctx)
			require.NoError(t, err)
			assert.True(t, syncedAt.Equal(at), "want %v, got %v", at, syncedAt)
		})
	}
}

func TestLocalVaultStoreOnlineHint(t *testing.T) {
	vaultStore := newTestStore(t, BackendSQLite, filepath.Join(t.TempDir(), "vault.db"))

	// optimistic until the first remote call says otherwise
	assert.True(t, vaultStore.IsOnline())

	vaultStore.MarkOnline(false)
	assert.False(t, vaultStore.IsOnline())

	vaultStore.MarkOnline(true)
	assert.True(t, vaultStore.IsOnline())
}

func TestLocalVaultStoreVersions(t *testing.T) {
	vaultStore := newTestStore(t, BackendBolt, filepath.Join(t.TempDir(), "vault.db"))

	first := vaultStore.NextVersion()
	second := vaultStore.NextVersion()
	assert.Greater(t, second, first)

	// remote writer's clock may run arbitrarily far ahead
	floor := second + 1_000_000
	bumped := vaultStore.NextVersionAfter(floor)
	assert.Greater(t, bumped, floor)
	assert.Greater(t, vaultStore.NextVersion(), bumped)
}

func TestNewLocalVaultStoreUnknownBackend(t *testing.T) {
	cfg := config.ClientStorage{Backend: "cassandra", Path: filepath.Join(t.TempDir(), "vault.db")}

	_, err := NewLocalVaultStore(cfg, utils.NewMonotonicVersionSource(), logger.Nop())
	require.ErrorIs(t, err, ErrUnknownBackend)
}

func TestNewLocalVaultStoreDefaultsToSQLite(t *testing.T) {
	ctx := context.Background()
	cfg := config.ClientStorage{Path: filepath.Join(t.TempDir(), "vault.db")}

	vaultStore, err := NewLocalVaultStore(cfg, utils.NewMonotonicVersionSource(), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { vaultStore.Close() })

	require.NoError(t, vaultStore.Put(ctx, testEnvelope(1)))

	got, err := vaultStore.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Version)
}
