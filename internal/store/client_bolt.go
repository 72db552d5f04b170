package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/models"
	bolt "go.etcd.io/bbolt"
)

// Bucket names for the bbolt backend.
var (
	envelopeBucket = []byte("envelope") // current sealed vault, stored as JSON
	metaBucket     = []byte("meta")     // sync bookkeeping (last synced time)
)

// envelopeKey is the single key under which the current envelope lives.
var envelopeKey = []byte("current")

// boltBackend persists the envelope in a bbolt database file. Every write
// runs inside a bbolt update transaction, which commits atomically.
type boltBackend struct {
	db     *bolt.DB
	logger *logger.Logger
}

func newBoltBackend(path string, log *logger.Logger) (*boltBackend, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		log.Err(err).Str("func", "newBoltBackend").Msg("error creating database directory")
		return nil, fmt.Errorf("error creating database directory: %w", err)
	}

	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		log.Err(err).Str("func", "newBoltBackend").Msg("error opening database")
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{envelopeBucket, metaBucket} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		log.Err(err).Str("func", "newBoltBackend").Msg("error initialising buckets")
		return nil, err
	}
	log.Debug().Str("func", "newBoltBackend").Msg("connected to local database successfully")

	return &boltBackend{
		db:     db,
		logger: log,
	}, nil
}

func (b *boltBackend) putEnvelope(ctx context.Context, envelope models.EncryptedEnvelope) error {
	log := logger.FromContext(ctx)

	data, err := json.Marshal(envelope)
	if err != nil {
		log.Err(err).Str("func", "boltBackend.putEnvelope").Msg("error marshalling envelope")
		return fmt.Errorf("error marshalling envelope: %w", err)
	}

	err = b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(envelopeBucket).Put(envelopeKey, data)
	})
	if err != nil {
		log.Err(err).Str("func", "boltBackend.putEnvelope").Msg("error writing envelope")
		return fmt.Errorf("error writing envelope: %w", err)
	}

	return nil
}

func (b *boltBackend) getEnvelope(ctx context.Context) (models.EncryptedEnvelope, error) {
	log := logger.FromContext(ctx)

	var envelope models.EncryptedEnvelope
	found := false

	err := b.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(envelopeBucket).Get(envelopeKey)
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &envelope)
	})
	if err != nil {
		log.Err(err).Str("func", "boltBackend.getEnvelope").Msg("error reading envelope")
		return models.EncryptedEnvelope{}, fmt.Errorf("error reading envelope: %w", err)
	}
	if !found {
		return models.EncryptedEnvelope{}, ErrEnvelopeNotFound
	}

	return envelope, nil
}

func (b *boltBackend) putMeta(ctx context.Context, key string, value []byte) error {
	log := logger.FromContext(ctx)

	err := b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(metaBucket).Put([]byte(key), value)
	})
	if err != nil {
		log.Err(err).Str("func", "boltBackend.putMeta").Str("key", key).Msg("error writing meta")
		return fmt.Errorf("error writing meta: %w", err)
	}

	return nil
}

func (b *boltBackend) getMeta(ctx context.Context, key string) ([]byte, error) {
	log := logger.FromContext(ctx)

	var value []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(metaBucket).Get([]byte(key))
		if data == nil {
			return nil
		}
		// Make a copy since the slice is only valid during the transaction
		value = append([]byte(nil), data...)
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "boltBackend.getMeta").Str("key", key).Msg("error reading meta")
		return nil, fmt.Errorf("error reading meta: %w", err)
	}

	return value, nil
}

func (b *boltBackend) close() error {
	return b.db.Close()
}
