package crypto

import (
	"bytes"
	"crypto/rand"
	"errors"
	"io"
	"testing"
)

// testKey returns a random 32-byte key without paying the Argon2 cost.
// Key-derivation behaviour has its own tests below.
func testKey(t *testing.T) []byte {
	t.Helper()
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		t.Fatalf("rand read error: %v", err)
	}
	return key
}

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	svc := NewEnvelopeCrypto()

	s1, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	s2, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}

	if len(s1) != SaltSize {
		t.Fatalf("salt length = %d, want %d", len(s1), SaltSize)
	}
	if len(s2) != SaltSize {
		t.Fatalf("salt length = %d, want %d", len(s2), SaltSize)
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestDeriveKey_DeterministicForSameInputs(t *testing.T) {
	svc := NewEnvelopeCrypto()

	secret := "correct horse battery staple"
	salt := bytes.Repeat([]byte{0xAB}, SaltSize)

	k1, err := svc.DeriveKey(secret, salt)
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}
	k2, err := svc.DeriveKey(secret, salt)
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}

	if len(k1) != KeySize {
		t.Fatalf("key length = %d, want %d", len(k1), KeySize)
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected keys to match for same secret+salt")
	}
}

func TestDeriveKey_DifferentSaltProducesDifferentKey(t *testing.T) {
	svc := NewEnvelopeCrypto()

	secret := "same password"
	salt1 := bytes.Repeat([]byte{0x01}, SaltSize)
	salt2 := bytes.Repeat([]byte{0x02}, SaltSize)

	k1, err := svc.DeriveKey(secret, salt1)
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}
	k2, err := svc.DeriveKey(secret, salt2)
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}

	if bytes.Equal(k1, k2) {
		t.Fatalf("expected different keys for different salts")
	}
}

func TestDeriveKey_RejectsShortSalt(t *testing.T) {
	svc := NewEnvelopeCrypto()

	_, err := svc.DeriveKey("secret", []byte("short"))
	if !errors.Is(err, ErrInvalidSalt) {
		t.Fatalf("expected ErrInvalidSalt, got %v", err)
	}
}

func TestSealOpen_RoundTrip(t *testing.T) {
	svc := NewEnvelopeCrypto()
	key := testKey(t)

	plaintext := []byte(`{"records":[{"id":"r1","name":"mail","secret":"hunter2"}]}`)

	sealed, err := svc.Seal(plaintext, key)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if len(sealed.IV) != IVSize {
		t.Fatalf("iv length = %d, want %d", len(sealed.IV), IVSize)
	}
	if len(sealed.Ciphertext) != len(plaintext)+TagSize {
		t.Fatalf("ciphertext length = %d, want %d", len(sealed.Ciphertext), len(plaintext)+TagSize)
	}

	opened, err := svc.Open(sealed.Ciphertext, sealed.IV, key)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if !bytes.Equal(opened, plaintext) {
		t.Fatalf("round trip mismatch:\nwant %q\ngot  %q", plaintext, opened)
	}
}

func TestSealOpen_RoundTripWithDerivedKey(t *testing.T) {
	svc := NewEnvelopeCrypto()

	salt, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	key, err := svc.DeriveKey("master secret", salt)
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}

	plaintext := []byte("vault content")
	sealed, err := svc.Seal(plaintext, key)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	// re-derive: identical inputs must unlock the envelope
	key2, err := svc.DeriveKey("master secret", salt)
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}
	opened, err := svc.Open(sealed.Ciphertext, sealed.IV, key2)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if !bytes.Equal(opened, plaintext) {
		t.Fatalf("round trip mismatch")
	}
}

func TestSeal_EmptyPlaintext(t *testing.T) {
	svc := NewEnvelopeCrypto()
	key := testKey(t)

	sealed, err := svc.Seal(nil, key)
	if err != nil {
		t.Fatalf("Seal error on empty plaintext: %v", err)
	}

	opened, err := svc.Open(sealed.Ciphertext, sealed.IV, key)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if len(opened) != 0 {
		t.Fatalf("expected empty plaintext, got %d bytes", len(opened))
	}
}

func TestSeal_IVUniqueness(t *testing.T) {
	svc := NewEnvelopeCrypto()
	key := testKey(t)

	seen := make(map[string]struct{}, 10_000)
	plaintext := []byte("same input every time")

	for i := 0; i < 10_000; i++ {
		sealed, err := svc.Seal(plaintext, key)
		if err != nil {
			t.Fatalf("Seal error at iteration %d: %v", i, err)
		}
		iv := string(sealed.IV)
		if _, dup := seen[iv]; dup {
			t.Fatalf("iv reused at iteration %d", i)
		}
		seen[iv] = struct{}{}
	}
}

func TestOpen_WrongKeyFailsClosed(t *testing.T) {
	svc := NewEnvelopeCrypto()
	key := testKey(t)
	wrongKey := testKey(t)

	sealed, err := svc.Seal([]byte("secret vault"), key)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	plaintext, err := svc.Open(sealed.Ciphertext, sealed.IV, wrongKey)
	if !errors.Is(err, ErrAuthenticationFailed) {
		t.Fatalf("expected ErrAuthenticationFailed, got %v", err)
	}
	if plaintext != nil {
		t.Fatalf("expected no plaintext on failure, got %d bytes", len(plaintext))
	}
}

func TestOpen_TamperingIsIndistinguishableFromWrongKey(t *testing.T) {
	svc := NewEnvelopeCrypto()
	key := testKey(t)

	sealed, err := svc.Seal([]byte("secret vault"), key)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	wrongKey := testKey(t)
	_, wrongKeyErr := svc.Open(sealed.Ciphertext, sealed.IV, wrongKey)

	cases := []struct {
		name   string
		mutate func(ct, iv []byte) ([]byte, []byte)
	}{
		{"flip ciphertext byte", func(ct, iv []byte) ([]byte, []byte) {
			ct[0] ^= 0x01
			return ct, iv
		}},
		{"flip tag byte", func(ct, iv []byte) ([]byte, []byte) {
			ct[len(ct)-1] ^= 0x01
			return ct, iv
		}},
		{"flip iv byte", func(ct, iv []byte) ([]byte, []byte) {
			iv[0] ^= 0x01
			return ct, iv
		}},
		{"truncated ciphertext", func(ct, iv []byte) ([]byte, []byte) {
			return ct[:TagSize-1], iv
		}},
		{"short iv", func(ct, iv []byte) ([]byte, []byte) {
			return ct, iv[:IVSize-1]
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ct := append([]byte(nil), sealed.Ciphertext...)
			iv := append([]byte(nil), sealed.IV...)
			ct, iv = tc.mutate(ct, iv)

			_, err := svc.Open(ct, iv, key)
			if !errors.Is(err, ErrAuthenticationFailed) {
				t.Fatalf("expected ErrAuthenticationFailed, got %v", err)
			}
			// same sentinel, same message as a wrong key: no oracle
			if err.Error() != wrongKeyErr.Error() {
				t.Fatalf("tampering error %q differs from wrong-key error %q", err, wrongKeyErr)
			}
		})
	}
}

func TestRotate_ProducesFreshSaltAndLocksOutOldKey(t *testing.T) {
	svc := NewEnvelopeCrypto()

	oldSalt := bytes.Repeat([]byte{0x0C}, SaltSize)
	oldKey, err := svc.DeriveKey("old secret", oldSalt)
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}

	plaintext := []byte("the real vault plaintext, already held by the caller")

	rotated, err := svc.Rotate("new secret", plaintext)
	if err != nil {
		t.Fatalf("Rotate error: %v", err)
	}

	if len(rotated.Salt) != SaltSize {
		t.Fatalf("rotated salt length = %d, want %d", len(rotated.Salt), SaltSize)
	}
	if bytes.Equal(rotated.Salt, oldSalt) {
		t.Fatalf("rotation must generate a fresh salt")
	}

	// the new envelope opens with the returned key
	opened, err := svc.Open(rotated.Sealed.Ciphertext, rotated.Sealed.IV, rotated.Key)
	if err != nil {
		t.Fatalf("Open error with rotated key: %v", err)
	}
	if !bytes.Equal(opened, plaintext) {
		t.Fatalf("rotated envelope does not round trip")
	}

	// and refuses the old key
	if _, err = svc.Open(rotated.Sealed.Ciphertext, rotated.Sealed.IV, oldKey); !errors.Is(err, ErrAuthenticationFailed) {
		t.Fatalf("expected ErrAuthenticationFailed with old key, got %v", err)
	}

	// the returned key is exactly DeriveKey(newSecret, newSalt)
	rederived, err := svc.DeriveKey("new secret", rotated.Salt)
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}
	if !bytes.Equal(rederived, rotated.Key) {
		t.Fatalf("rotated key does not match re-derivation from the new salt")
	}
}

func TestOpen_BadKeySizeIsBackendFailure(t *testing.T) {
	svc := NewEnvelopeCrypto()

	_, err := svc.Open([]byte("whatever whatever"), make([]byte, IVSize), []byte("short key"))
	if !errors.Is(err, ErrCryptoUnavailable) {
		t.Fatalf("expected ErrCryptoUnavailable for unusable key, got %v", err)
	}
}
