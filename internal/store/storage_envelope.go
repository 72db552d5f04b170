// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/models"
)

// envelopeStorage is the default implementation of [EnvelopeStorage].
//
// It acts as a high-level orchestration layer that delegates relational
// operations to an [EnvelopeRepository]. At present every operation maps
// one-to-one onto the repository; the extra layer exists so that caching or
// large-payload offload can be added later without touching the service
// layer.
type envelopeStorage struct {
	// repository provides all relational database operations against the
	// envelopes and account_salts tables.
	repository EnvelopeRepository

	// logger is used for structured diagnostic logging at the storage layer.
	logger *logger.Logger
}

// NewEnvelopeStorage constructs a fully configured implementation of
// [EnvelopeStorage] on top of the supplied repository.
func NewEnvelopeStorage(repository EnvelopeRepository, logger *logger.Logger) EnvelopeStorage {
	logger.Debug().Msg("creating envelope storage")

	return &envelopeStorage{
		repository: repository,
		logger:     logger,
	}
}

// GetLatest returns the current envelope stored for the account.
//
// Delegates to [EnvelopeRepository.GetLatest].
func (p *envelopeStorage) GetLatest(ctx context.Context, accountID string) (models.EncryptedEnvelope, error) {
	return p.repository.GetLatest(ctx, accountID)
}

// Replace stores the supplied envelope as the account's current one and
// returns the stored version.
//
// Version ordering, idempotent re-push handling and the in-transaction salt
// update are all enforced at the repository level; see
// [EnvelopeRepository.Replace].
func (p *envelopeStorage) Replace(ctx context.Context, accountID string, envelope models.EncryptedEnvelope) (int64, error) {
	return p.repository.Replace(ctx, accountID, envelope)
}

// GetSalt returns the KDF salt registered for the account.
//
// Delegates to [EnvelopeRepository.GetSalt].
func (p *envelopeStorage) GetSalt(ctx context.Context, accountID string) ([]byte, error) {
	return p.repository.GetSalt(ctx, accountID)
}
