package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/models"
)

type envelopeService struct {
	envelopeStorage store.EnvelopeStorage

	logger *logger.Logger
}

func NewEnvelopeService(envelopeStorage store.EnvelopeStorage, logger *logger.Logger) EnvelopeService {
	return &envelopeService{
		envelopeStorage: envelopeStorage,
		logger:          logger,
	}
}

func (s *envelopeService) FetchLatest(ctx context.Context, accountID string, sinceVersion int64) (models.FetchVaultResponse, error) {
	envelope, err := s.envelopeStorage.GetLatest(ctx, accountID)
	if err != nil {
		return models.FetchVaultResponse{}, err
	}

	if sinceVersion > 0 && envelope.Version <= sinceVersion {
		return models.FetchVaultResponse{Exists: true, UpToDate: true}, nil
	}

	return models.FetchVaultResponse{Exists: true, Envelope: &envelope}, nil
}

func (s *envelopeService) Replace(ctx context.Context, accountID string, envelope models.EncryptedEnvelope) (models.ReplaceVaultResponse, error) {
	storedVersion, err := s.envelopeStorage.Replace(ctx, accountID, envelope)
	if err != nil {
		return models.ReplaceVaultResponse{}, err
	}

	s.logger.Debug().
		Str("func", "envelopeService.Replace").
		Int64("stored_version", storedVersion).
		Msg("envelope replaced")

	return models.ReplaceVaultResponse{OK: true, StoredVersion: storedVersion}, nil
}

func (s *envelopeService) GetSalt(ctx context.Context, accountID string) ([]byte, error) {
	salt, err := s.envelopeStorage.GetSalt(ctx, accountID)
	if err == nil {
		return salt, nil
	}
	if !errors.Is(err, store.ErrSaltNotFound) {
		return nil, err
	}

	// Envelopes pushed before the dedicated salt record existed still carry
	// the salt inline; serve it from there.
	envelope, getErr := s.envelopeStorage.GetLatest(ctx, accountID)
	if getErr != nil || len(envelope.Salt) == 0 {
		return nil, err
	}

	return envelope.Salt, nil
}
