package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/models"
)

// sqliteBackend persists the envelope in a local SQLite database file.
// A put is a single upsert statement, which SQLite executes atomically, so a
// crash mid-write leaves either the old row or the new one.
type sqliteBackend struct {
	db     *sql.DB
	logger *logger.Logger
}

func newSQLiteBackend(path string, log *logger.Logger) (*sqliteBackend, error) {
	// db will be in file
	if err := createLocalStoreFileIfNotExists(path); err != nil {
		log.Err(err).Str("func", "newSQLiteBackend").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		log.Err(err).Str("func", "newSQLiteBackend").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// ping database
	if err := conn.PingContext(context.Background()); err != nil {
		log.Err(err).Str("func", "newSQLiteBackend").Msg("error connecting database (ping)")
		return nil, err
	}

	if _, err := conn.ExecContext(context.Background(), createClientSchema); err != nil {
		log.Err(err).Str("func", "newSQLiteBackend").Msg("error creating local schema")
		return nil, fmt.Errorf("error creating local schema: %w", err)
	}
	log.Debug().Str("func", "newSQLiteBackend").Msg("connected to local database successfully")

	return &sqliteBackend{
		db:     conn,
		logger: log,
	}, nil
}

func (s *sqliteBackend) putEnvelope(ctx context.Context, envelope models.EncryptedEnvelope) error {
	log := logger.FromContext(ctx)

	result, err := s.db.ExecContext(ctx, putLocalEnvelope,
		envelope.Ciphertext,
		envelope.IV,
		envelope.Salt,
		envelope.Version,
		envelope.LastModified.UnixMilli(),
		envelope.IsOffline,
	)
	if err != nil {
		log.Err(err).Str("func", "sqliteBackend.putEnvelope").Msg("error executing envelope upsert")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		log.Error().Str("func", "sqliteBackend.putEnvelope").Msg("provided envelope was not saved")
		return ErrEnvelopeNotSaved
	}

	return nil
}

func (s *sqliteBackend) getEnvelope(ctx context.Context) (models.EncryptedEnvelope, error) {
	log := logger.FromContext(ctx)

	var envelope models.EncryptedEnvelope
	var lastModified int64

	scanErr := s.db.QueryRowContext(ctx, getLocalEnvelope).Scan(
		&envelope.Ciphertext,
		&envelope.IV,
		&envelope.Salt,
		&envelope.Version,
		&lastModified,
		&envelope.IsOffline,
	)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.EncryptedEnvelope{}, ErrEnvelopeNotFound
	}
	if scanErr != nil {
		log.Err(scanErr).Str("func", "sqliteBackend.getEnvelope").Msg("error scanning envelope row")
		return models.EncryptedEnvelope{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	envelope.LastModified = time.UnixMilli(lastModified).UTC()

	return envelope, nil
}

func (s *sqliteBackend) putMeta(ctx context.Context, key string, value []byte) error {
	log := logger.FromContext(ctx)

	if _, err := s.db.ExecContext(ctx, putSyncMeta, key, value); err != nil {
		log.Err(err).Str("func", "sqliteBackend.putMeta").Str("key", key).Msg("error executing meta upsert")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteBackend) getMeta(ctx context.Context, key string) ([]byte, error) {
	log := logger.FromContext(ctx)

	var value []byte
	scanErr := s.db.QueryRowContext(ctx, getSyncMeta, key).Scan(&value)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return nil, nil
	}
	if scanErr != nil {
		log.Err(scanErr).Str("func", "sqliteBackend.getMeta").Str("key", key).Msg("error scanning meta row")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return value, nil
}

func (s *sqliteBackend) close() error {
	return s.db.Close()
}

func createLocalStoreFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(dbFile), 0o700); err != nil {
			return fmt.Errorf("error creating DB directory: %w", err)
		}

		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
