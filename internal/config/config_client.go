package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Defaults applied by [GetClientConfig] for fields left unset by every
// configuration source.
const (
	// DefaultRemoteAddress points at a locally running vault authority.
	DefaultRemoteAddress = "http://localhost:8080"

	// DefaultRequestTimeout bounds every remote call. Ten seconds is the
	// budget after which a sync cycle treats the remote as unreachable.
	DefaultRequestTimeout = 10 * time.Second

	// DefaultSyncInterval is how often the continuous sync worker runs.
	DefaultSyncInterval = 30 * time.Second
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// AccountID identifies the vault account this client syncs.
	AccountID string
	// Token is the bearer token presented to the remote vault authority.
	Token string
	// RememberUnlock keeps the derived vault key in the OS keyring between
	// invocations.
	RememberUnlock bool
	// Version is the client application version.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the remote vault authority.
	HTTPAddress string
	// RequestTimeout is the budget for a single outbound remote call.
	RequestTimeout time.Duration
}

// ClientStorage groups client local store settings.
type ClientStorage struct {
	// Backend selects the local persistence engine: "sqlite" or "bolt".
	Backend string
	// Path is the local store file location.
	Path string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the continuous sync worker runs.
	SyncInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the remote vault authority address and timeout.
	Adapter ClientAdapter
	// Storage contains local store settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from
// environment variables and an optional JSON file.
//
// jsonPath, when non-empty, names the JSON file to merge; otherwise the path
// is resolved from the CONFIG environment variable. Command-line flags are
// deliberately not consulted here: the client's CLI layer owns the flag
// surface and overrides individual fields after loading.
//
// Fields left unset by every source receive workable defaults, so a client
// with no configuration at all starts in local-only mode against a default
// store path.
func GetClientConfig(jsonPath string) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSONFile(jsonPath).
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			AccountID:      cfg.App.AccountID,
			Token:          cfg.App.Token,
			RememberUnlock: cfg.App.RememberUnlock,
			Version:        cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			Backend: cfg.Storage.Local.Backend,
			Path:    cfg.Storage.Local.Path,
		},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

// applyDefaults fills the fields a working client cannot run without.
func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultRemoteAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Workers.SyncInterval == 0 {
		cfg.Workers.SyncInterval = DefaultSyncInterval
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = defaultLocalStorePath()
	}
}

// defaultLocalStorePath places the vault store under the user's home
// directory, falling back to the working directory when the home cannot be
// resolved.
func defaultLocalStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "vault-sync.db"
	}

	return filepath.Join(home, ".vault-sync", "vault.db")
}
