package crypto

import "github.com/MKhiriev/go-vault-sync/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/envelope_crypto_mock.go -package=mock

// EnvelopeCrypto is the whole client-side cryptography of the zero-knowledge
// scheme. It knows nothing about the network, storage, or accounts; its only
// job is deriving keys and sealing/opening vault plaintext.
//
// Scheme:
//
//	salt = GenerateSalt()                 (once per master secret)
//	key  = DeriveKey(secret, salt)        (every unlock, deterministic)
//	env  = Seal(plaintext, key)           (every persist, fresh IV)
//	pt   = Open(env.Ciphertext, env.IV, key)
type EnvelopeCrypto interface {
	// GenerateSalt returns a fresh random 32-byte KDF salt. The salt is
	// not a secret: it is embedded in envelopes and stored server-side.
	GenerateSalt() ([]byte, error)

	// DeriveKey derives the 32-byte vault key from the master secret and
	// salt. Identical (secret, salt) always yields the identical key;
	// every unlock relies on that. The key exists only in client memory
	// and is never transmitted.
	DeriveKey(secret string, salt []byte) ([]byte, error)

	// Seal encrypts plaintext under key with AES-256-GCM and a fresh
	// single-use 12-byte IV. Fails only when the cryptographic backend
	// is unavailable, never on plaintext content.
	Seal(plaintext, key []byte) (models.SealedBlob, error)

	// Open verifies the authentication tag and decrypts. A wrong key and
	// a tampered ciphertext/IV/tag are indistinguishable: both fail with
	// [ErrAuthenticationFailed].
	Open(ciphertext, iv, key []byte) ([]byte, error)

	// Rotate generates a fresh salt, derives a key from newSecret under
	// it, and reseals plaintext. It deliberately does not accept the old
	// envelope: the caller must already hold the decrypted plaintext,
	// and the previous salt and key are unrecoverable once the result is
	// persisted.
	Rotate(newSecret string, plaintext []byte) (models.RotatedKeyMaterial, error)
}
