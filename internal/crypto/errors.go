package crypto

import "errors"

var (
	// ErrCryptoUnavailable reports that the underlying cryptographic
	// primitives could not be initialised or the OS randomness source
	// failed. Fatal, never retried.
	ErrCryptoUnavailable = errors.New("cryptographic backend unavailable")

	// ErrAuthenticationFailed reports that an envelope could not be
	// opened. A wrong secret and a tampered or corrupted envelope produce
	// this same error: callers and users get no signal which of the two
	// happened.
	ErrAuthenticationFailed = errors.New("incorrect password or corrupted vault")

	// ErrInvalidSalt reports a salt of the wrong size passed to key
	// derivation.
	ErrInvalidSalt = errors.New("salt must be 32 bytes")
)
