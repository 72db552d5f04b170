package service

import (
	"context"

	"github.com/MKhiriev/go-vault-sync/models"
)

// EnvelopeService is the authority-side business surface for stored vault
// envelopes. The account is always explicit: handlers resolve it from the
// bearer token and pass it down.
type EnvelopeService interface {
	// FetchLatest returns the latest envelope stored for the account.
	// sinceVersion, when positive, is the version the caller already holds:
	// the answer is UpToDate without an envelope body when nothing newer is
	// stored. Returns [store.ErrEnvelopeNotFound] (wrapped) when the account
	// has no envelope at all.
	FetchLatest(ctx context.Context, accountID string, sinceVersion int64) (models.FetchVaultResponse, error)

	// Replace overwrites the stored envelope wholesale. Re-pushing the
	// envelope the authority already holds is acknowledged without a write.
	// Returns [store.ErrVersionConflict] (wrapped) when the envelope does
	// not advance the stored version.
	Replace(ctx context.Context, accountID string, envelope models.EncryptedEnvelope) (models.ReplaceVaultResponse, error)

	// GetSalt returns the key-derivation salt for the account, preferring
	// the dedicated salt record and falling back to the salt embedded in
	// the stored envelope. Returns [store.ErrSaltNotFound] (wrapped) when
	// neither exists.
	GetSalt(ctx context.Context, accountID string) ([]byte, error)
}

// AppInfoService reports application build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// EnvelopeServiceWrapper defines middleware composition for EnvelopeService.
// Implementations wrap an existing EnvelopeService to add behavior such as
// logging or validating.
type EnvelopeServiceWrapper interface {
	Wrap(EnvelopeService) EnvelopeService // returns a decorated EnvelopeService applying additional behavior
}
