package store

import (
	"context"

	"github.com/MKhiriev/go-vault-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// EnvelopeRepository is the relational persistence layer for encrypted vault
// envelopes on the server side. One envelope row exists per account: the
// whole vault travels as a single sealed blob, so replace semantics are
// last-writer-wins guarded by version comparison.
type EnvelopeRepository interface {
	// GetLatest returns the current envelope stored for the account.
	// Returns [ErrEnvelopeNotFound] if the account has never pushed.
	GetLatest(ctx context.Context, accountID string) (models.EncryptedEnvelope, error)

	// Replace atomically stores the supplied envelope as the account's
	// current one and returns the stored version. A re-push of the
	// bit-identical envelope is an idempotent no-op. An envelope whose
	// version does not supersede the stored one is rejected with
	// [ErrVersionConflict]. When the envelope carries a KDF salt, the
	// account salt record is updated in the same transaction.
	Replace(ctx context.Context, accountID string, envelope models.EncryptedEnvelope) (int64, error)

	// GetSalt returns the KDF salt registered for the account.
	// Returns [ErrSaltNotFound] if no envelope with a salt was ever pushed.
	GetSalt(ctx context.Context, accountID string) ([]byte, error)
}

// EnvelopeStorage is the high-level storage surface consumed by the service
// layer. It orchestrates the relational repository and is the single place
// to add caching or file offload later without touching services.
type EnvelopeStorage interface {
	GetLatest(ctx context.Context, accountID string) (models.EncryptedEnvelope, error)
	Replace(ctx context.Context, accountID string, envelope models.EncryptedEnvelope) (int64, error)
	GetSalt(ctx context.Context, accountID string) ([]byte, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Implementations inspect driver-specific error values.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
