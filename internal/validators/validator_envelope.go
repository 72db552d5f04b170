package validators

import (
	"context"

	"github.com/MKhiriev/go-vault-sync/models"
)

const (
	FieldCiphertext = "ciphertext"
	FieldIV         = "iv"
	FieldVersion    = "version"
)

// EnvelopeValidator enforces the authority's acceptance rules for encrypted
// envelopes: an envelope must carry ciphertext and an IV, and its version
// must be a positive integer. The envelope content itself is opaque to the
// server and is never inspected.
type EnvelopeValidator struct {
}

func NewEnvelopeValidator() Validator {
	return &EnvelopeValidator{}
}

func (v *EnvelopeValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.EncryptedEnvelope:
		return v.validateEnvelope(ctx, value, fields...)
	case *models.EncryptedEnvelope:
		return v.validateEnvelope(ctx, *value, fields...)

	case models.ReplaceVaultRequest:
		return v.validateEnvelope(ctx, value.Envelope, fields...)
	case *models.ReplaceVaultRequest:
		return v.validateEnvelope(ctx, value.Envelope, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *EnvelopeValidator) validateEnvelope(_ context.Context, envelope models.EncryptedEnvelope, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCiphertext, FieldIV, FieldVersion}
	}

	for _, f := range fields {
		switch f {
		case FieldCiphertext:
			if len(envelope.Ciphertext) == 0 {
				return ErrEmptyCiphertext
			}
		case FieldIV:
			if len(envelope.IV) == 0 {
				return ErrEmptyIV
			}
		case FieldVersion:
			if envelope.Version <= 0 {
				return ErrInvalidVersion
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
