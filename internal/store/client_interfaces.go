package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-vault-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalVaultStore is the client-side persistence surface for the encrypted
// vault. It holds exactly one current envelope, an online hint maintained by
// the sync engine, and the version source used to stamp locally sealed
// envelopes.
type LocalVaultStore interface {
	// Put persists the envelope as the current local copy. The write is
	// atomic: after a crash mid-put, Get returns either the previous
	// envelope or the new one, never a mix of both.
	Put(ctx context.Context, envelope models.EncryptedEnvelope) error

	// Get returns the current local envelope.
	// Returns [ErrEnvelopeNotFound] when no envelope was ever stored.
	Get(ctx context.Context) (models.EncryptedEnvelope, error)

	// LastSyncedAt returns the time of the last successfully completed
	// sync cycle, or the zero time if the vault has never synced.
	LastSyncedAt(ctx context.Context) (time.Time, error)

	// SetLastSyncedAt records the completion time of a sync cycle.
	SetLastSyncedAt(ctx context.Context, at time.Time) error

	// IsOnline reports the client's current belief about remote
	// reachability. It is a hint, not a guarantee: the sync engine updates
	// it after each remote call and other components read it to decide
	// whether attempting a remote operation is worthwhile.
	IsOnline() bool

	// MarkOnline records the outcome of the most recent remote call.
	MarkOnline(online bool)

	// NextVersion issues a version number strictly larger than any this
	// store instance has issued before.
	NextVersion() int64

	// NextVersionAfter issues a version number strictly larger than both
	// floor and any previously issued version. Used when resealing on top
	// of an envelope fetched from the remote, whose version may exceed the
	// local clock.
	NextVersionAfter(floor int64) int64

	// Close releases the backing file.
	Close() error
}

// VersionSource issues strictly increasing version numbers for locally
// sealed envelopes. Injected into the local store so tests can substitute a
// deterministic sequence.
type VersionSource interface {
	Next() int64
	NextAfter(floor int64) int64
}
