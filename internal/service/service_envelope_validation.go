package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vault-sync/internal/validators"
	"github.com/MKhiriev/go-vault-sync/models"
)

// EnvelopeValidationService rejects malformed requests before they reach the
// storage-backed service: a missing account ID on any operation, and an
// envelope without ciphertext, IV or a positive version on Replace.
type EnvelopeValidationService struct {
	inner     EnvelopeService
	validator validators.Validator
}

func NewEnvelopeValidationService() EnvelopeServiceWrapper {
	return &EnvelopeValidationService{
		validator: validators.NewEnvelopeValidator(),
	}
}

func (v *EnvelopeValidationService) FetchLatest(ctx context.Context, accountID string, sinceVersion int64) (models.FetchVaultResponse, error) {
	if accountID == "" {
		return models.FetchVaultResponse{}, validators.ErrEmptyAccountID
	}

	return v.inner.FetchLatest(ctx, accountID, sinceVersion)
}

func (v *EnvelopeValidationService) Replace(ctx context.Context, accountID string, envelope models.EncryptedEnvelope) (models.ReplaceVaultResponse, error) {
	if accountID == "" {
		return models.ReplaceVaultResponse{}, validators.ErrEmptyAccountID
	}

	if err := v.validator.Validate(ctx, envelope); err != nil {
		return models.ReplaceVaultResponse{}, fmt.Errorf("error during envelope validation before replace: %w", err)
	}

	return v.inner.Replace(ctx, accountID, envelope)
}

func (v *EnvelopeValidationService) GetSalt(ctx context.Context, accountID string) ([]byte, error) {
	if accountID == "" {
		return nil, validators.ErrEmptyAccountID
	}

	return v.inner.GetSalt(ctx, accountID)
}

func (v *EnvelopeValidationService) Wrap(inner EnvelopeService) EnvelopeService {
	v.inner = inner
	return v
}
