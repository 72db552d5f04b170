package store

import "errors"

// Sentinel errors returned by store methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEnvelopeNotFound is returned when no encrypted envelope has been
	// persisted yet for the requested account, either locally or on the
	// server. For a fresh vault this is the expected state before the
	// first seal.
	ErrEnvelopeNotFound = errors.New("encrypted envelope was not found")

	// ErrSaltNotFound is returned when no KDF salt is registered for the
	// requested account. A salt appears server-side with the first
	// envelope push that carries one.
	ErrSaltNotFound = errors.New("account salt was not found")

	// ErrVersionConflict is returned when a replace carries a version that
	// does not supersede the stored envelope: the incoming version is lower
	// than the stored one, or equal but with a different sealed payload.
	// It means another device has pushed since the client last fetched.
	ErrVersionConflict = errors.New("envelope version conflict occurred")

	// ErrEnvelopeNotSaved is returned when a write completes without a
	// driver error but the number of affected rows is zero, indicating
	// that the envelope was not actually persisted.
	ErrEnvelopeNotSaved = errors.New("encrypted envelope was not saved")

	// ErrStorageFailure is returned (wrapped around the underlying cause)
	// when the client-side local store cannot read or write its backing
	// file. The vault content itself is not implicated: the envelope that
	// was last read successfully remains the client's source of truth.
	ErrStorageFailure = errors.New("local vault storage failure")

	// ErrUnknownBackend is returned when the configured local store
	// backend name is not one of the supported engines.
	ErrUnknownBackend = errors.New("unknown local store backend")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan envelope row")
)
