package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/models"
)

// psql is the shared statement builder configured for PostgreSQL-style
// $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// envelopeColumns lists the payload columns of the envelopes table in the
// order repository methods scan them.
var envelopeColumns = []string{
	"ciphertext",
	"iv",
	"salt",
	"version",
	"last_modified",
	"is_offline",
}

// buildSelectLatestEnvelopeQuery builds the SELECT returning the single
// envelope row stored for the given account.
func buildSelectLatestEnvelopeQuery(ctx context.Context, accountID string) (string, []any, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Select(envelopeColumns...).
		From("envelopes").
		Where(sq.Eq{"account_id": accountID}).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "buildSelectLatestEnvelopeQuery").
			Msg("failed to build query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectEnvelopeForUpdateQuery builds the same SELECT as
// [buildSelectLatestEnvelopeQuery] but locks the row for the duration of the
// surrounding transaction, so concurrent replaces for one account serialize.
func buildSelectEnvelopeForUpdateQuery(ctx context.Context, accountID string) (string, []any, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Select(envelopeColumns...).
		From("envelopes").
		Where(sq.Eq{"account_id": accountID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "buildSelectEnvelopeForUpdateQuery").
			Msg("failed to build query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpsertEnvelopeQuery builds the INSERT .. ON CONFLICT statement that
// stores the envelope as the account's current one, overwriting any previous
// row. Version ordering is enforced by the caller, not by this statement.
func buildUpsertEnvelopeQuery(ctx context.Context, accountID string, envelope models.EncryptedEnvelope) (string, []any, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Insert("envelopes").
		Columns(
			"account_id",
			"ciphertext",
			"iv",
			"salt",
			"version",
			"last_modified",
			"is_offline",
		).
		Values(
			accountID,
			envelope.Ciphertext,
			envelope.IV,
			envelope.Salt,
			envelope.Version,
			envelope.LastModified.UnixMilli(),
			envelope.IsOffline,
		).
		Suffix(`ON CONFLICT (account_id) DO UPDATE SET
			ciphertext    = EXCLUDED.ciphertext,
			iv            = EXCLUDED.iv,
			salt          = EXCLUDED.salt,
			version       = EXCLUDED.version,
			last_modified = EXCLUDED.last_modified,
			is_offline    = EXCLUDED.is_offline,
			updated_at    = now()`).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "buildUpsertEnvelopeQuery").
			Msg("failed to build query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectSaltQuery builds the SELECT returning the KDF salt registered
// for the given account.
func buildSelectSaltQuery(ctx context.Context, accountID string) (string, []any, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Select("salt").
		From("account_salts").
		Where(sq.Eq{"account_id": accountID}).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "buildSelectSaltQuery").
			Msg("failed to build query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpsertSaltQuery builds the INSERT .. ON CONFLICT statement keeping
// the account_salts table in step with the salt embedded in the most
// recently pushed envelope.
func buildUpsertSaltQuery(ctx context.Context, accountID string, salt []byte) (string, []any, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Insert("account_salts").
		Columns("account_id", "salt").
		Values(accountID, salt).
		Suffix(`ON CONFLICT (account_id) DO UPDATE SET
			salt       = EXCLUDED.salt,
			updated_at = now()`).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "buildUpsertSaltQuery").
			Msg("failed to build query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
