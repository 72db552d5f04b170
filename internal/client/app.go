package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vault-sync/internal/adapter"
	"github.com/MKhiriev/go-vault-sync/internal/cli"
	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/crypto"
	"github.com/MKhiriev/go-vault-sync/internal/keyring"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/service"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/internal/workers"
)

// App is the assembled client: configuration, storage, transport, services,
// background workers and the CLI on top, ready to run one invocation.
type App struct {
	cli    *cli.CLI
	logger *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp wires the whole client from configuration. buildVersion is the
// value stamped at link time; it backs the version surface when the config
// does not override it.
func NewApp(buildVersion string, log *logger.Logger) (*App, error) {
	cfg, err := config.GetClientConfig("")
	if err != nil {
		return nil, fmt.Errorf("load client config: %w", err)
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	remote, err := adapter.NewHTTPRemoteVault(cfg.Adapter, cfg.App, log)
	if err != nil {
		return nil, fmt.Errorf("create remote vault adapter: %w", err)
	}

	services := service.NewClientServices(
		storages,
		remote,
		crypto.NewEnvelopeCrypto(),
		keyring.NewSystemKeyring(),
		*cfg,
		log,
	)

	background := workers.NewClientWorkers(
		services.SyncEngine,
		storages.VaultStore,
		remote,
		cfg.Workers,
		log,
	)

	return &App{
		cli:    cli.New(services, background, *cfg, log),
		logger: log,
	}, nil
}

// Run executes the invoked command and blocks until it finishes.
func (a *App) Run() error {
	return a.cli.Execute(context.Background())
}
