// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/MKhiriev/go-vault-sync/models"
	"golang.org/x/crypto/argon2"
)

const (
	// KeySize is the AES-256 key length in bytes.
	KeySize = 32

	// IVSize is the GCM nonce length in bytes. One IV is used for exactly
	// one seal: reuse under the same key breaks AEAD confidentiality.
	IVSize = 12

	// SaltSize is the Argon2id salt length in bytes.
	SaltSize = 32

	// TagSize is the GCM authentication tag length in bytes, appended to
	// the ciphertext.
	TagSize = 16
)

// envelopeCrypto is the private implementation of [EnvelopeCrypto].
type envelopeCrypto struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewEnvelopeCrypto constructs an [EnvelopeCrypto] with memory-hard Argon2id
// parameters:
//   - time cost:   3 iterations
//   - memory cost: 64 MiB
//   - parallelism: 1 thread
//   - key length:  32 bytes (256 bits)
func NewEnvelopeCrypto() EnvelopeCrypto {
	return &envelopeCrypto{
		argonTime:    3,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 1,
		argonKeyLen:  KeySize,
	}
}

// GenerateSalt implements [EnvelopeCrypto]. It reads 32 random bytes from
// the OS CSPRNG.
func (c *envelopeCrypto) GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCryptoUnavailable, err)
	}
	return salt, nil
}

// DeriveKey implements [EnvelopeCrypto]. Argon2id over the master secret
// salted with salt; the parameters come from the receiver. The derived key
// never leaves client memory.
func (c *envelopeCrypto) DeriveKey(secret string, salt []byte) ([]byte, error) {
	if len(salt) != SaltSize {
		return nil, ErrInvalidSalt
	}

	key := argon2.IDKey(
		[]byte(secret),
		salt,
		c.argonTime,
		c.argonMemory,
		c.argonThreads,
		c.argonKeyLen,
	)
	return key, nil
}

// Seal implements [EnvelopeCrypto]. The IV is freshly drawn from the CSPRNG
// for every call; the 16-byte authentication tag is appended to the
// ciphertext by GCM.
func (c *envelopeCrypto) Seal(plaintext, key []byte) (models.SealedBlob, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return models.SealedBlob{}, err
	}

	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return models.SealedBlob{}, fmt.Errorf("%w: %w", ErrCryptoUnavailable, err)
	}

	return models.SealedBlob{
		Ciphertext: gcm.Seal(nil, iv, plaintext, nil),
		IV:         iv,
	}, nil
}

// Open implements [EnvelopeCrypto]. Every failure after cipher construction
// collapses into [ErrAuthenticationFailed]: the caller learns that the
// envelope did not open, not why. Distinguishing a wrong secret from a
// flipped ciphertext byte would hand an attacker a tamper-detection oracle.
func (c *envelopeCrypto) Open(ciphertext, iv, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	if len(iv) != gcm.NonceSize() {
		return nil, ErrAuthenticationFailed
	}
	if len(ciphertext) < TagSize {
		return nil, ErrAuthenticationFailed
	}

	plaintext, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	return plaintext, nil
}

// Rotate implements [EnvelopeCrypto].
func (c *envelopeCrypto) Rotate(newSecret string, plaintext []byte) (models.RotatedKeyMaterial, error) {
	salt, err := c.GenerateSalt()
	if err != nil {
		return models.RotatedKeyMaterial{}, err
	}

	key, err := c.DeriveKey(newSecret, salt)
	if err != nil {
		return models.RotatedKeyMaterial{}, err
	}

	sealed, err := c.Seal(plaintext, key)
	if err != nil {
		return models.RotatedKeyMaterial{}, err
	}

	return models.RotatedKeyMaterial{Salt: salt, Key: key, Sealed: sealed}, nil
}

// newGCM builds the AES-256-GCM AEAD for the given key. Construction fails
// only on an unusable key or missing primitives, both reported as
// [ErrCryptoUnavailable].
func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCryptoUnavailable, err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCryptoUnavailable, err)
	}

	return gcm, nil
}
