package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClientConfig_EnvMapping(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"APP_ACCOUNT_ID":          "acc-42",
		"APP_TOKEN":               "bearer-token",
		"APP_REMEMBER_UNLOCK":     "true",
		"ADAPTER_ADDRESS":         "https://vault.example.com",
		"ADAPTER_REQUEST_TIMEOUT": "5s",
		"STORAGE_LOCAL_BACKEND":   "bolt",
		"STORAGE_LOCAL_PATH":      filepath.Join(t.TempDir(), "vault.db"),
		"WORKERS_SYNC_INTERVAL":   "42s",
	})

	// Act
	cfg, err := GetClientConfig("")

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "acc-42", cfg.App.AccountID)
	assert.Equal(t, "bearer-token", cfg.App.Token)
	assert.True(t, cfg.App.RememberUnlock)

	assert.Equal(t, "https://vault.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "bolt", cfg.Storage.Backend)
	assert.Equal(t, 42*time.Second, cfg.Workers.SyncInterval)
}

func TestGetClientConfig_JSONFile(t *testing.T) {
	// Arrange
	path := writeTempFile(t, `{
		"app": {"account_id": "json-account"},
		"adapter": {"http_address": "https://json.example.com", "request_timeout": "7s"},
		"storage": {"local": {"path": "/tmp/json-vault.db"}}
	}`)

	// Act
	cfg, err := GetClientConfig(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "json-account", cfg.App.AccountID)
	assert.Equal(t, "https://json.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 7*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/json-vault.db", cfg.Storage.Path)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &ClientConfig{}

	cfg.applyDefaults()

	assert.Equal(t, DefaultRemoteAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultSyncInterval, cfg.Workers.SyncInterval)
	assert.NotEmpty(t, cfg.Storage.Path)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &ClientConfig{
		Adapter: ClientAdapter{HTTPAddress: "https://vault.example.com", RequestTimeout: 3 * time.Second},
		Storage: ClientStorage{Path: "/data/vault.db"},
		Workers: ClientWorkers{SyncInterval: time.Minute},
	}

	cfg.applyDefaults()

	assert.Equal(t, "https://vault.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/data/vault.db", cfg.Storage.Path)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
}

func TestClientConfigValidate(t *testing.T) {
	valid := func() *ClientConfig {
		return &ClientConfig{
			Adapter: ClientAdapter{HTTPAddress: DefaultRemoteAddress, RequestTimeout: DefaultRequestTimeout},
			Storage: ClientStorage{Backend: "sqlite", Path: "/data/vault.db"},
			Workers: ClientWorkers{SyncInterval: DefaultSyncInterval},
		}
	}

	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{
			name:   "valid config",
			mutate: func(cfg *ClientConfig) {},
		},
		{
			name:   "empty backend defaults later",
			mutate: func(cfg *ClientConfig) { cfg.Storage.Backend = "" },
		},
		{
			name:    "empty store path",
			mutate:  func(cfg *ClientConfig) { cfg.Storage.Path = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "in-memory store path",
			mutate:  func(cfg *ClientConfig) { cfg.Storage.Path = "file::memory:" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "unsupported backend",
			mutate:  func(cfg *ClientConfig) { cfg.Storage.Backend = "cassandra" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing remote address",
			mutate:  func(cfg *ClientConfig) { cfg.Adapter.HTTPAddress = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero request timeout",
			mutate:  func(cfg *ClientConfig) { cfg.Adapter.RequestTimeout = 0 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "negative sync interval",
			mutate:  func(cfg *ClientConfig) { cfg.Workers.SyncInterval = -time.Second },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
