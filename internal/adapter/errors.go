package adapter

import "errors"

var (
	// ErrRemoteUnreachable covers connection failures, DNS errors, timeouts
	// and gateway-level unavailability. The sync engine treats it as a
	// signal to fall back to the last-known-good local envelope.
	ErrRemoteUnreachable = errors.New("remote vault authority unreachable")

	// ErrRemoteRejected is returned when the authority refuses a request as
	// malformed, such as an envelope missing ciphertext or IV.
	ErrRemoteRejected = errors.New("remote vault authority rejected request")

	// ErrVersionConflict is returned when a pushed envelope does not advance
	// the version the authority already holds.
	ErrVersionConflict = errors.New("remote version conflict")

	// ErrUnauthorized is returned when the bearer token is missing, expired
	// or signed with the wrong key.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrNotFound is returned when the authority holds no envelope or salt
	// for the account.
	ErrNotFound = errors.New("not found on remote")

	// ErrServerFailure is returned on authority-side 5xx failures.
	ErrServerFailure = errors.New("remote server failure")
)

// IsUnavailable reports whether err means the authority could not serve the
// call at all: transport failures, gateway errors, authority-side failures.
// Sync cycles pick the offline path when it returns true.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrRemoteUnreachable) || errors.Is(err, ErrServerFailure)
}
