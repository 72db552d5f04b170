package service

import (
	"context"

	"github.com/MKhiriev/go-vault-sync/models"
)

// VaultSession is the client-side contract for working with one unlocked
// vault. The decrypted vault and the derived key live only inside the
// session, only between Unlock and Lock, and are never written anywhere.
type VaultSession interface {
	// Create initialises a brand-new vault: it generates a fresh salt,
	// derives the vault key from secret, seals an empty vault, persists it
	// locally and attempts a first push. The session is unlocked
	// afterwards. Returns [ErrVaultExists] if a vault is already stored
	// locally.
	Create(ctx context.Context, secret string) error

	// Unlock loads the envelope (locally, or from the remote authority on
	// a fresh device), derives the key from secret and decrypts the vault
	// into memory. An empty secret consults the OS keyring when
	// remember-unlock is enabled. A wrong secret and a corrupted envelope
	// fail identically with [crypto.ErrAuthenticationFailed].
	Unlock(ctx context.Context, secret string) error

	// Lock wipes the derived key and drops the decrypted vault from
	// memory. With forget set it also removes the secret remembered in the
	// OS keyring. Locking a locked session is a no-op.
	Lock(ctx context.Context, forget bool) error

	// Unlocked reports whether a decrypted vault is currently held.
	Unlocked() bool

	// Status assembles a point-in-time snapshot of the vault: lock state,
	// record count, local envelope version, pending-push flag, reachability
	// hint and last sync time.
	Status(ctx context.Context) (models.VaultStatus, error)

	// List returns all records of the unlocked vault.
	// Returns [ErrVaultLocked] while locked.
	List(ctx context.Context) ([]models.VaultRecord, error)

	// Get returns the record with the given id.
	// Returns [ErrRecordNotFound] when no such record exists.
	Get(ctx context.Context, id string) (models.VaultRecord, error)

	// Upsert adds or replaces a record in the in-memory vault and returns
	// the stored record. A record without an ID gets a freshly generated
	// one. The change is not durable until Save.
	Upsert(ctx context.Context, record models.VaultRecord) (models.VaultRecord, error)

	// Remove deletes the record with the given id from the in-memory
	// vault. Returns [ErrRecordNotFound] when no such record exists. The
	// change is not durable until Save.
	Remove(ctx context.Context, id string) error

	// Save seals the in-memory vault under a strictly increased version,
	// persists it locally and attempts to push it. An unreachable remote
	// is not an error: the envelope stays marked offline and the next sync
	// cycle retries the push.
	Save(ctx context.Context) error

	// Rotate verifies oldSecret, re-derives everything under a fresh salt
	// from newSecret, reseals the vault and pushes it. The previous salt
	// and key are unrecoverable afterwards.
	Rotate(ctx context.Context, oldSecret, newSecret string) error

	// DetectConflicts fetches the remote envelope, decrypts it with the
	// session key and reports the per-record divergence between the two
	// replicas. An empty result means the replicas can be reconciled
	// without choices.
	DetectConflicts(ctx context.Context) ([]models.ConflictRecord, error)

	// Reconcile merges the local and remote vaults, applying one
	// resolution choice per surfaced conflict, then reseals the merged
	// vault with a version above both sides and pushes it. Returns
	// [ErrUnresolvedConflict] unless every conflict has a matching choice;
	// nothing is persisted in that case.
	Reconcile(ctx context.Context, choices []models.ResolutionChoice) error
}

// SyncEngine runs the envelope-level synchronisation cycle between the
// local store and the remote vault authority.
type SyncEngine interface {
	// SyncOnce runs one sync cycle: fetch the remote state, compare
	// versions, pull or push as needed, and report the decision. At most
	// one cycle is in flight at a time; a second call while one is running
	// fails immediately with [ErrSyncInProgress]. An unreachable remote is
	// a normal outcome (offline degradation), not an error.
	SyncOnce(ctx context.Context) (models.SyncReport, error)

	// State reports the engine state: idle, syncing, or error after a
	// failed cycle.
	State() models.SyncState
}

// ConflictService detects and resolves record-level divergence between two
// decrypted vault replicas. It is purely in-memory: no storage, no network.
type ConflictService interface {
	// Detect compares the two replicas and returns one ConflictRecord per
	// divergent entry. lastSyncedVersion is the version the client last
	// synced from; records created after it count as simple additions, not
	// conflicts.
	Detect(ctx context.Context, local, remote models.PlaintextVault, lastSyncedVersion int64) ([]models.ConflictRecord, error)

	// Resolve builds the reconciled vault: the union of both replicas with
	// every conflict replaced by the outcome of its matching choice.
	// Resolution is all-or-nothing: a missing or malformed choice fails
	// the whole batch with [ErrUnresolvedConflict] and nothing is applied.
	Resolve(ctx context.Context, local, remote models.PlaintextVault, conflicts []models.ConflictRecord, choices []models.ResolutionChoice) (models.PlaintextVault, error)

	// DiffRecords renders a human-readable diff between two versions of a
	// record, for interactive conflict resolution. Secret fields appear as
	// fingerprints, never as values.
	DiffRecords(local, remote models.VaultRecord) string

	// SuggestMerge proposes a field-level combination of two divergent
	// versions of a record: the fresher side wins scalar fields, labels are
	// united, and diverging notes are joined under conflict markers. The
	// suggestion is advisory; callers may edit or discard it.
	SuggestMerge(local, remote models.VaultRecord) models.VaultRecord
}
