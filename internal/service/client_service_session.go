// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-vault-sync/internal/adapter"
	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/crypto"
	"github.com/MKhiriev/go-vault-sync/internal/keyring"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/internal/utils"
	"github.com/MKhiriev/go-vault-sync/models"
)

// vaultSession owns the decrypted vault and the derived key between Unlock
// and Lock. Both live only in this struct, only in memory: nothing below the
// session ever sees plaintext, and everything above it works with records the
// session hands out as copies.
type vaultSession struct {
	vaultStore store.LocalVaultStore
	remote     adapter.RemoteVault
	crypto     crypto.EnvelopeCrypto
	conflicts  ConflictService
	syncEngine SyncEngine
	ring       keyring.Keyring
	uuids      *utils.UUIDGenerator

	accountID      string
	rememberUnlock bool

	mu       sync.Mutex
	unlocked bool
	key      []byte
	salt     []byte
	vault    models.PlaintextVault

	logger *logger.Logger
}

func NewVaultSession(storages *store.ClientStorages, remote adapter.RemoteVault, envelopeCrypto crypto.EnvelopeCrypto, conflicts ConflictService, syncEngine SyncEngine, ring keyring.Keyring, cfg config.ClientApp, logger *logger.Logger) VaultSession {
	return &vaultSession{
		vaultStore:     storages.VaultStore,
		remote:         remote,
		crypto:         envelopeCrypto,
		conflicts:      conflicts,
		syncEngine:     syncEngine,
		ring:           ring,
		uuids:          utils.NewUUIDGenerator(),
		accountID:      cfg.AccountID,
		rememberUnlock: cfg.RememberUnlock,
		logger:         logger,
	}
}

func (s *vaultSession) Create(ctx context.Context, secret string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.vaultStore.Get(ctx)
	if err == nil {
		return ErrVaultExists
	}
	if !errors.Is(err, store.ErrEnvelopeNotFound) {
		return fmt.Errorf("read local envelope: %w", err)
	}

	salt, err := s.crypto.GenerateSalt()
	if err != nil {
		return err
	}
	key, err := s.crypto.DeriveKey(secret, salt)
	if err != nil {
		return err
	}

	vault := models.PlaintextVault{
		Records:   []models.VaultRecord{},
		UpdatedAt: time.Now().UnixMilli(),
	}
	version := s.vaultStore.NextVersion()
	envelope, err := s.seal(vault, key, salt, version)
	if err != nil {
		zeroize(key)
		return err
	}

	if err := s.vaultStore.Put(ctx, envelope); err != nil {
		zeroize(key)
		return fmt.Errorf("store envelope: %w", err)
	}

	vault.Version = version
	s.key = key
	s.salt = salt
	s.vault = vault
	s.unlocked = true
	s.rememberKey(key)

	s.logger.Info().
		Str("func", "vaultSession.Create").
		Int64("version", version).
		Msg("vault created")

	// A vault already living on the authority is not checked here: creation
	// works offline, and a collision surfaces as a conflict on the next sync.
	return s.pushAfterWrite(ctx)
}

func (s *vaultSession) Unlock(ctx context.Context, secret string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.unlocked {
		return nil
	}

	envelope, err := s.loadEnvelope(ctx)
	if err != nil {
		return err
	}

	salt := envelope.Salt
	var key []byte
	remembered := false

	if secret == "" {
		key = s.rememberedKey()
		remembered = key != nil
	}
	if key == nil {
		if len(salt) == 0 {
			salt, err = s.remote.GetSalt(ctx)
			if err != nil {
				return fmt.Errorf("fetch account salt: %w", mapAdapterError(err))
			}
		}
		key, err = s.crypto.DeriveKey(secret, salt)
		if err != nil {
			return err
		}
	}

	plaintext, err := s.crypto.Open(envelope.Ciphertext, envelope.IV, key)
	if err != nil {
		zeroize(key)
		if remembered {
			// The remembered key is stale, most likely after a rotation on
			// another device.
			_ = s.ring.Delete(s.accountID)
		}

		return err
	}
	defer zeroize(plaintext)

	var vault models.PlaintextVault
	if err := json.Unmarshal(plaintext, &vault); err != nil {
		zeroize(key)
		return crypto.ErrAuthenticationFailed
	}
	vault.Version = envelope.Version

	s.key = key
	s.salt = append([]byte(nil), salt...)
	s.vault = vault
	s.unlocked = true
	if !remembered {
		s.rememberKey(key)
	}

	s.logger.Debug().
		Str("func", "vaultSession.Unlock").
		Int64("version", envelope.Version).
		Int("records", vault.Len()).
		Msg("vault unlocked")

	return nil
}

func (s *vaultSession) Lock(ctx context.Context, forget bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	zeroize(s.key)
	s.key = nil
	s.salt = nil
	s.vault = models.PlaintextVault{}
	s.unlocked = false

	if forget {
		if err := s.ring.Delete(s.accountID); err != nil {
			return fmt.Errorf("forget remembered key: %w", err)
		}
	}

	return nil
}

func (s *vaultSession) Unlocked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.unlocked
}

func (s *vaultSession) Status(ctx context.Context) (models.VaultStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := models.VaultStatus{
		Unlocked:  s.unlocked,
		Online:    s.vaultStore.IsOnline(),
		SyncState: s.syncEngine.State(),
	}
	if s.unlocked {
		status.RecordCount = s.vault.Len()
	}

	envelope, err := s.vaultStore.Get(ctx)
	switch {
	case err == nil:
		status.LocalVersion = envelope.Version
		status.PendingPush = envelope.IsOffline
	case !errors.Is(err, store.ErrEnvelopeNotFound):
		return models.VaultStatus{}, fmt.Errorf("read local envelope: %w", err)
	}

	lastSynced, err := s.vaultStore.LastSyncedAt(ctx)
	if err != nil {
		return models.VaultStatus{}, fmt.Errorf("read last sync time: %w", err)
	}
	status.LastSyncedAt = lastSynced

	return status, nil
}

func (s *vaultSession) List(ctx context.Context) ([]models.VaultRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.unlocked {
		return nil, ErrVaultLocked
	}

	records := make([]models.VaultRecord, 0, s.vault.Len())
	for _, r := range s.vault.Records {
		records = append(records, r.Clone())
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Name < records[j].Name
	})

	return records, nil
}

func (s *vaultSession) Get(ctx context.Context, id string) (models.VaultRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.unlocked {
		return models.VaultRecord{}, ErrVaultLocked
	}

	record, ok := s.vault.Find(id)
	if !ok {
		return models.VaultRecord{}, fmt.Errorf("%w: %q", ErrRecordNotFound, id)
	}

	return record.Clone(), nil
}

func (s *vaultSession) Upsert(ctx context.Context, record models.VaultRecord) (models.VaultRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.unlocked {
		return models.VaultRecord{}, ErrVaultLocked
	}

	now := time.Now().UnixMilli()
	stored := record.Clone()
	switch existing, ok := s.vault.Find(stored.ID); {
	case stored.ID == "":
		stored.ID = s.uuids.Generate()
		stored.CreatedAt = now
	case ok:
		// Identity never changes; creation time travels with it.
		stored.CreatedAt = existing.CreatedAt
	case stored.CreatedAt == 0:
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now

	s.vault.Upsert(stored)
	s.vault.UpdatedAt = now

	return stored.Clone(), nil
}

func (s *vaultSession) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.unlocked {
		return ErrVaultLocked
	}

	if !s.vault.Remove(id) {
		return fmt.Errorf("%w: %q", ErrRecordNotFound, id)
	}
	s.vault.UpdatedAt = time.Now().UnixMilli()

	return nil
}

func (s *vaultSession) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.unlocked {
		return ErrVaultLocked
	}

	version := s.vaultStore.NextVersionAfter(s.vault.Version)
	envelope, err := s.seal(s.vault, s.key, s.salt, version)
	if err != nil {
		return err
	}

	if err := s.vaultStore.Put(ctx, envelope); err != nil {
		return fmt.Errorf("store envelope: %w", err)
	}
	s.vault.Version = version

	return s.pushAfterWrite(ctx)
}

func (s *vaultSession) Rotate(ctx context.Context, oldSecret, newSecret string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.unlocked {
		return ErrVaultLocked
	}

	salt := s.salt
	if len(salt) == 0 {
		var err error
		salt, err = s.remote.GetSalt(ctx)
		if err != nil {
			return fmt.Errorf("fetch account salt: %w", mapAdapterError(err))
		}
	}

	oldKey, err := s.crypto.DeriveKey(oldSecret, salt)
	if err != nil {
		return err
	}
	keysMatch := subtle.ConstantTimeCompare(oldKey, s.key) == 1
	zeroize(oldKey)
	if !keysMatch {
		return crypto.ErrAuthenticationFailed
	}

	version := s.vaultStore.NextVersionAfter(s.vault.Version)
	vault := s.vault.Clone()
	vault.Version = version
	plaintext, err := json.Marshal(vault)
	if err != nil {
		return fmt.Errorf("encode vault: %w", err)
	}

	rotated, err := s.crypto.Rotate(newSecret, plaintext)
	zeroize(plaintext)
	if err != nil {
		return err
	}

	envelope := models.EncryptedEnvelope{
		Ciphertext:   rotated.Sealed.Ciphertext,
		IV:           rotated.Sealed.IV,
		Salt:         rotated.Salt,
		Version:      version,
		LastModified: time.Now(),
		IsOffline:    true,
	}
	if err := s.vaultStore.Put(ctx, envelope); err != nil {
		return fmt.Errorf("store envelope: %w", err)
	}

	zeroize(s.key)
	s.key = rotated.Key
	s.salt = rotated.Salt
	s.vault.Version = version
	s.rememberKey(rotated.Key)

	s.logger.Info().
		Str("func", "vaultSession.Rotate").
		Int64("version", version).
		Msg("master secret rotated")

	return s.pushAfterWrite(ctx)
}

func (s *vaultSession) DetectConflicts(ctx context.Context) ([]models.ConflictRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.unlocked {
		return nil, ErrVaultLocked
	}

	remoteVault, exists, err := s.fetchRemoteVault(ctx)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}

	lastSyncedVersion, err := s.lastSyncedVersion(ctx)
	if err != nil {
		return nil, err
	}

	return s.conflicts.Detect(ctx, s.vault, *remoteVault, lastSyncedVersion)
}

func (s *vaultSession) Reconcile(ctx context.Context, choices []models.ResolutionChoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.unlocked {
		return ErrVaultLocked
	}

	remoteVault, exists, err := s.fetchRemoteVault(ctx)
	if err != nil {
		return err
	}
	if !exists {
		remoteVault = &models.PlaintextVault{}
	}

	lastSyncedVersion, err := s.lastSyncedVersion(ctx)
	if err != nil {
		return err
	}

	// Detection runs again against the envelope just fetched, so the choices
	// are checked against the remote state they will actually be applied to.
	conflicts, err := s.conflicts.Detect(ctx, s.vault, *remoteVault, lastSyncedVersion)
	if err != nil {
		return err
	}

	merged, err := s.conflicts.Resolve(ctx, s.vault, *remoteVault, conflicts, choices)
	if err != nil {
		return err
	}

	version := s.vaultStore.NextVersionAfter(maxVersion(s.vault.Version, remoteVault.Version))
	envelope, err := s.seal(merged, s.key, s.salt, version)
	if err != nil {
		return err
	}
	if err := s.vaultStore.Put(ctx, envelope); err != nil {
		return fmt.Errorf("store envelope: %w", err)
	}

	merged.Version = version
	s.vault = merged

	s.logger.Info().
		Str("func", "vaultSession.Reconcile").
		Int("conflicts", len(conflicts)).
		Int64("version", version).
		Msg("replicas reconciled")

	return s.pushAfterWrite(ctx)
}

// loadEnvelope returns the locally cached envelope, falling back to the
// authority on a fresh device. A fetched envelope is cached verbatim before
// any decryption is attempted.
func (s *vaultSession) loadEnvelope(ctx context.Context) (models.EncryptedEnvelope, error) {
	envelope, err := s.vaultStore.Get(ctx)
	if err == nil {
		return envelope, nil
	}
	if !errors.Is(err, store.ErrEnvelopeNotFound) {
		return models.EncryptedEnvelope{}, fmt.Errorf("read local envelope: %w", err)
	}

	fetched, fetchErr := s.remote.FetchLatest(ctx, 0)
	if fetchErr != nil {
		if adapter.IsUnavailable(fetchErr) {
			s.vaultStore.MarkOnline(false)
			return models.EncryptedEnvelope{}, fmt.Errorf("%w: nothing cached and remote unreachable", ErrVaultNotFound)
		}
		s.vaultStore.MarkOnline(true)

		return models.EncryptedEnvelope{}, fmt.Errorf("fetch remote envelope: %w", mapAdapterError(fetchErr))
	}
	s.vaultStore.MarkOnline(true)

	if !fetched.Exists {
		return models.EncryptedEnvelope{}, ErrVaultNotFound
	}

	envelope = fetched.Envelope.Clone()
	if putErr := s.vaultStore.Put(ctx, envelope); putErr != nil {
		return models.EncryptedEnvelope{}, fmt.Errorf("cache fetched envelope: %w", putErr)
	}

	return envelope, nil
}

// fetchRemoteVault pulls the authority's current envelope and decrypts it
// with the session key.
func (s *vaultSession) fetchRemoteVault(ctx context.Context) (*models.PlaintextVault, bool, error) {
	fetched, err := s.remote.FetchLatest(ctx, 0)
	if err != nil {
		if adapter.IsUnavailable(err) {
			s.vaultStore.MarkOnline(false)
			return nil, false, fmt.Errorf("fetch remote envelope: %w", err)
		}
		s.vaultStore.MarkOnline(true)

		return nil, false, fmt.Errorf("fetch remote envelope: %w", mapAdapterError(err))
	}
	s.vaultStore.MarkOnline(true)

	if !fetched.Exists {
		return nil, false, nil
	}

	vault, err := s.openRemote(fetched.Envelope)
	if err != nil {
		return nil, false, err
	}

	return vault, true, nil
}

// openRemote decrypts the authority's envelope with the session key.
func (s *vaultSession) openRemote(envelope *models.EncryptedEnvelope) (*models.PlaintextVault, error) {
	// A remote reseal under a different salt cannot be opened with this
	// session's key; only the master secret derives the matching one.
	if len(envelope.Salt) > 0 && len(s.salt) > 0 && !bytes.Equal(envelope.Salt, s.salt) {
		return nil, crypto.ErrAuthenticationFailed
	}

	plaintext, err := s.crypto.Open(envelope.Ciphertext, envelope.IV, s.key)
	if err != nil {
		return nil, err
	}
	defer zeroize(plaintext)

	var vault models.PlaintextVault
	if err := json.Unmarshal(plaintext, &vault); err != nil {
		return nil, crypto.ErrAuthenticationFailed
	}
	vault.Version = envelope.Version

	return &vault, nil
}

// seal marshals the vault under the given version and wraps it into a fresh
// envelope marked offline until the authority acknowledges it. The plaintext
// buffer is wiped before returning.
func (s *vaultSession) seal(vault models.PlaintextVault, key, salt []byte, version int64) (models.EncryptedEnvelope, error) {
	vault.Version = version
	plaintext, err := json.Marshal(vault)
	if err != nil {
		return models.EncryptedEnvelope{}, fmt.Errorf("encode vault: %w", err)
	}
	defer zeroize(plaintext)

	sealed, err := s.crypto.Seal(plaintext, key)
	if err != nil {
		return models.EncryptedEnvelope{}, err
	}

	return models.EncryptedEnvelope{
		Ciphertext:   sealed.Ciphertext,
		IV:           sealed.IV,
		Salt:         append([]byte(nil), salt...),
		Version:      version,
		LastModified: time.Now(),
		IsOffline:    true,
	}, nil
}

// pushAfterWrite runs one sync cycle so a fresh seal reaches the authority
// promptly. An unreachable remote is absorbed by the cycle itself; a busy
// engine means a cycle is already running and will pick the seal up.
func (s *vaultSession) pushAfterWrite(ctx context.Context) error {
	_, err := s.syncEngine.SyncOnce(ctx)
	if errors.Is(err, ErrSyncInProgress) {
		return nil
	}

	return err
}

// lastSyncedVersion is the version floor that separates additions from
// deletions during conflict detection. Envelope versions are wall-clock
// milliseconds, so the last sync time doubles as the last version both
// replicas commonly saw.
func (s *vaultSession) lastSyncedVersion(ctx context.Context) (int64, error) {
	lastSynced, err := s.vaultStore.LastSyncedAt(ctx)
	if err != nil {
		return 0, fmt.Errorf("read last sync time: %w", err)
	}
	if lastSynced.IsZero() {
		return 0, nil
	}

	return lastSynced.UnixMilli(), nil
}

// rememberedKey loads the vault key from the OS keyring, when enabled.
func (s *vaultSession) rememberedKey() []byte {
	if !s.rememberUnlock || s.accountID == "" {
		return nil
	}

	stored, err := s.ring.Get(s.accountID)
	if err != nil {
		if !errors.Is(err, keyring.ErrSecretNotFound) {
			s.logger.Warn().Err(err).
				Str("func", "vaultSession.rememberedKey").
				Msg("keyring read failed")
		}
		return nil
	}

	key, err := hex.DecodeString(stored)
	if err != nil || len(key) == 0 {
		return nil
	}

	return key
}

// rememberKey stores the derived vault key in the OS keyring, when enabled.
// The master secret itself is never stored anywhere.
func (s *vaultSession) rememberKey(key []byte) {
	if !s.rememberUnlock || s.accountID == "" {
		return
	}

	if err := s.ring.Set(s.accountID, hex.EncodeToString(key)); err != nil {
		s.logger.Warn().Err(err).
			Str("func", "vaultSession.rememberKey").
			Msg("keyring write failed")
	}
}

// zeroize wipes sensitive bytes in place.
func zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
