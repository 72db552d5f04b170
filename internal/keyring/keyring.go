// Package keyring stores the master secret in the operating system's
// credential manager for the remember-unlock feature. It wraps
// zalando/go-keyring behind a small interface so services and tests do not
// depend on a real OS keychain.
package keyring

import (
	"errors"
	"fmt"

	zkeyring "github.com/zalando/go-keyring"
)

// serviceName namespaces vault secrets inside the OS credential store.
const serviceName = "go-vault-sync"

// ErrSecretNotFound is returned by Get when no secret is stored for the
// account.
var ErrSecretNotFound = errors.New("no secret stored in system keyring")

//go:generate mockgen -source=keyring.go -destination=../mock/keyring_mock.go -package=mock

// Keyring reads and writes the remembered master secret of one account.
type Keyring interface {
	// Set stores secret for accountID, replacing any previous value.
	Set(accountID, secret string) error

	// Get returns the secret remembered for accountID.
	// Returns [ErrSecretNotFound] when nothing is stored.
	Get(accountID string) (string, error)

	// Delete removes the remembered secret for accountID. Deleting an
	// absent secret is not an error.
	Delete(accountID string) error
}

type systemKeyring struct{}

// NewSystemKeyring returns a Keyring backed by the operating system's
// credential manager (Keychain, Secret Service, Credential Manager).
func NewSystemKeyring() Keyring {
	return &systemKeyring{}
}

func (k *systemKeyring) Set(accountID, secret string) error {
	if err := zkeyring.Set(serviceName, accountID, secret); err != nil {
		return fmt.Errorf("keyring set: %w", err)
	}
	return nil
}

func (k *systemKeyring) Get(accountID string) (string, error) {
	secret, err := zkeyring.Get(serviceName, accountID)
	if errors.Is(err, zkeyring.ErrNotFound) {
		return "", ErrSecretNotFound
	}
	if err != nil {
		return "", fmt.Errorf("keyring get: %w", err)
	}
	return secret, nil
}

func (k *systemKeyring) Delete(accountID string) error {
	err := zkeyring.Delete(serviceName, accountID)
	if err != nil && !errors.Is(err, zkeyring.ErrNotFound) {
		return fmt.Errorf("keyring delete: %w", err)
	}
	return nil
}
