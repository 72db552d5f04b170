// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/models"
)

type envelopeRepository struct {
	*DB
}

// NewEnvelopeRepository constructs the PostgreSQL-backed [EnvelopeRepository]
// on top of an already connected [DB].
func NewEnvelopeRepository(db *DB, log *logger.Logger) EnvelopeRepository {
	log.Debug().Msg("creating envelope repository")

	return &envelopeRepository{DB: db}
}

// GetLatest returns the current envelope stored for the account.
//
// The envelopes table holds at most one row per account, so no ordering is
// involved: the row either exists or the account has never pushed, in which
// case [ErrEnvelopeNotFound] is returned.
func (p *envelopeRepository) GetLatest(ctx context.Context, accountID string) (models.EncryptedEnvelope, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectLatestEnvelopeQuery(ctx, accountID)
	if err != nil {
		log.Err(err).
			Str("func", "envelopeRepository.GetLatest").
			Msg("failed to create query")
		return models.EncryptedEnvelope{}, err
	}

	row := p.DB.QueryRowContext(ctx, query, args...)
	if queryErr := row.Err(); queryErr != nil {
		log.Err(queryErr).
			Str("func", "envelopeRepository.GetLatest").
			Str("pg_code", postgresError(queryErr)).
			Msg("failed to execute query for getting envelope")
		return models.EncryptedEnvelope{}, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}

	envelope, scanErr := p.scanEnvelopeRow(row)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.EncryptedEnvelope{}, ErrEnvelopeNotFound
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "envelopeRepository.GetLatest").
			Msg("failed to read envelope row")
		return models.EncryptedEnvelope{}, scanErr
	}

	return envelope, nil
}

// Replace stores the supplied envelope as the account's current one.
//
// The whole operation runs in a single transaction with the existing row
// locked, so two devices pushing at the same time serialize and exactly one
// of them observes the other's version:
//
//   - No row yet: the envelope is inserted as the first one.
//   - Identical sealed payload already stored (same version, same IV, same
//     ciphertext): the push is a retry after a lost response; nothing is
//     written and the stored version is returned.
//   - Stored version >= incoming version otherwise: [ErrVersionConflict]
//     is returned together with the stored version, and the stored envelope
//     is left untouched.
//   - Stored version < incoming version: the row is overwritten.
//
// When the envelope carries a KDF salt, the account_salts record is updated
// in the same transaction, keeping salt lookups consistent with the envelope
// that produced them.
func (p *envelopeRepository) Replace(ctx context.Context, accountID string, envelope models.EncryptedEnvelope) (int64, error) {
	log := logger.FromContext(ctx)

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "envelopeRepository.Replace").
			Msg("error during opening transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := buildSelectEnvelopeForUpdateQuery(ctx, accountID)
	if err != nil {
		log.Err(err).
			Str("func", "envelopeRepository.Replace").
			Msg("failed to create query")
		return 0, err
	}

	row := tx.QueryRowContext(ctx, query, args...)
	if queryErr := row.Err(); queryErr != nil {
		log.Err(queryErr).
			Str("func", "envelopeRepository.Replace").
			Str("pg_code", postgresError(queryErr)).
			Msg("failed to execute query for locking stored envelope")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}

	stored, scanErr := p.scanEnvelopeRow(row)
	switch {
	case errors.Is(scanErr, sql.ErrNoRows):
		// First push for this account.
	case scanErr != nil:
		log.Err(scanErr).
			Str("func", "envelopeRepository.Replace").
			Msg("failed to read stored envelope row")
		return 0, scanErr
	case stored.EqualBytes(envelope):
		// Retry of an already accepted push. Idempotent no-op.
		log.Debug().
			Str("func", "envelopeRepository.Replace").
			Int64("version", stored.Version).
			Msg("envelope already stored, nothing to replace")
		return stored.Version, nil
	case stored.Version >= envelope.Version:
		log.Warn().
			Str("func", "envelopeRepository.Replace").
			Int64("stored_version", stored.Version).
			Int64("incoming_version", envelope.Version).
			Msg("rejecting replace: incoming envelope does not supersede stored one")
		return stored.Version, fmt.Errorf("%w: stored version %d, incoming version %d",
			ErrVersionConflict, stored.Version, envelope.Version)
	}

	query, args, err = buildUpsertEnvelopeQuery(ctx, accountID, envelope)
	if err != nil {
		log.Err(err).
			Str("func", "envelopeRepository.Replace").
			Msg("failed to create query")
		return 0, err
	}

	result, execErr := tx.ExecContext(ctx, query, args...)
	if execErr != nil {
		classification := p.errorClassificator.Classify(execErr)
		log.Err(execErr).
			Str("func", "envelopeRepository.Replace").
			Str("pg_code", postgresError(execErr)).
			Bool("retryable", classification == Retryable).
			Msg("failed to store envelope")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		log.Error().
			Str("func", "envelopeRepository.Replace").
			Msg("provided envelope was not saved")
		return 0, ErrEnvelopeNotSaved
	}

	if len(envelope.Salt) != 0 {
		query, args, err = buildUpsertSaltQuery(ctx, accountID, envelope.Salt)
		if err != nil {
			log.Err(err).
				Str("func", "envelopeRepository.Replace").
				Msg("failed to create query")
			return 0, err
		}

		if _, execErr := tx.ExecContext(ctx, query, args...); execErr != nil {
			log.Err(execErr).
				Str("func", "envelopeRepository.Replace").
				Str("pg_code", postgresError(execErr)).
				Msg("failed to store account salt")
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "envelopeRepository.Replace").
			Msg("failed to commit replace transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return envelope.Version, nil
}

// GetSalt returns the KDF salt registered for the account, or
// [ErrSaltNotFound] if the account never pushed an envelope with a salt.
func (p *envelopeRepository) GetSalt(ctx context.Context, accountID string) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSaltQuery(ctx, accountID)
	if err != nil {
		log.Err(err).
			Str("func", "envelopeRepository.GetSalt").
			Msg("failed to create query")
		return nil, err
	}

	row := p.DB.QueryRowContext(ctx, query, args...)
	if queryErr := row.Err(); queryErr != nil {
		log.Err(queryErr).
			Str("func", "envelopeRepository.GetSalt").
			Str("pg_code", postgresError(queryErr)).
			Msg("failed to execute query for getting account salt")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}

	var salt []byte
	scanErr := row.Scan(&salt)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return nil, ErrSaltNotFound
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "envelopeRepository.GetSalt").
			Msg("failed to read account salt row")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return salt, nil
}

// scanEnvelopeRow scans one envelopes row in [envelopeColumns] order.
// sql.ErrNoRows is passed through for the caller to interpret.
func (p *envelopeRepository) scanEnvelopeRow(row *sql.Row) (models.EncryptedEnvelope, error) {
	var envelope models.EncryptedEnvelope
	var lastModified int64

	scanErr := row.Scan(
		&envelope.Ciphertext,
		&envelope.IV,
		&envelope.Salt,
		&envelope.Version,
		&lastModified,
		&envelope.IsOffline,
	)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.EncryptedEnvelope{}, scanErr
		}
		return models.EncryptedEnvelope{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	envelope.LastModified = time.UnixMilli(lastModified).UTC()

	return envelope, nil
}
