package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyCiphertext = errors.New("ciphertext is required")
	ErrEmptyIV         = errors.New("iv is required")
	ErrInvalidVersion  = errors.New("version must be a positive integer")
	ErrEmptyAccountID  = errors.New("account ID cannot be empty")
)
