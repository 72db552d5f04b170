package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
)

// Storages groups all server-side storage components into a single value
// that can be passed to the service layer.
type Storages struct {
	EnvelopeStorage EnvelopeStorage
}

// NewStorages initialises the server storage layer. It connects to
// PostgreSQL, runs pending schema migrations and wires the envelope
// repository into its storage facade.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	repository := NewEnvelopeRepository(db, logger)

	return &Storages{
		EnvelopeStorage: NewEnvelopeStorage(repository, logger),
	}, nil
}
