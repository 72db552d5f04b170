package store

import (
	"fmt"

	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/utils"
)

// ClientStorages groups all client-side storage components into a single
// value that can be passed around the service layer. Currently it holds only
// [LocalVaultStore]; additional stores can be added here as the feature set
// grows.
type ClientStorages struct {
	// VaultStore is the local persistence for the encrypted vault envelope.
	VaultStore LocalVaultStore
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens the local store file at cfg.Path with the engine selected by
//     cfg.Backend, creating the file if it does not yet exist.
//  2. Wires in a monotonic version source for locally sealed envelopes.
//
// Returns an error if the store file cannot be opened or the backend name is
// not recognised.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	versions := utils.NewMonotonicVersionSource()

	vaultStore, err := NewLocalVaultStore(cfg, versions, logger)
	if err != nil {
		return nil, fmt.Errorf("local vault store error: %w", err)
	}

	return &ClientStorages{
		VaultStore: vaultStore,
	}, nil
}
