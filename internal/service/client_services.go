package service

import (
	"github.com/MKhiriev/go-vault-sync/internal/adapter"
	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/crypto"
	"github.com/MKhiriev/go-vault-sync/internal/keyring"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/internal/utils"
)

// ClientServices groups the client-side services consumed by the CLI and the
// background workers.
type ClientServices struct {
	Session    VaultSession
	SyncEngine SyncEngine
	Conflicts  ConflictService
}

func NewClientServices(storages *store.ClientStorages, remote adapter.RemoteVault, envelopeCrypto crypto.EnvelopeCrypto, ring keyring.Keyring, cfg config.ClientConfig, logger *logger.Logger) *ClientServices {
	syncEngine := NewSyncEngine(storages.VaultStore, remote, logger)
	conflicts := NewConflictService(utils.NewUUIDGenerator(), logger)

	return &ClientServices{
		Session:    NewVaultSession(storages, remote, envelopeCrypto, conflicts, syncEngine, ring, cfg.App, logger),
		SyncEngine: syncEngine,
		Conflicts:  conflicts,
	}
}
