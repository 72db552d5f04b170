// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer access to the remote vault
// authority.
//
// The primary abstraction is [RemoteVault], which decouples the sync engine
// and the vault session from the underlying protocol. The package ships an
// HTTP/REST implementation ([NewHTTPRemoteVault]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrVersionConflict] for 409, [ErrRemoteUnreachable]
// for connection failures and timeouts).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-vault-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_vault_mock.go -package=mock

// RemoteVault defines transport-agnostic communication with the remote vault
// authority. Implementations are responsible for serialisation, bearer-token
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
//
// The authority keys envelopes by account; the account is inferred
// server-side from the bearer token, so no method takes an account ID.
type RemoteVault interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent requests. Safe for concurrent use with in-flight calls.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// FetchLatest retrieves the latest envelope the authority holds for the
	// account. sinceVersion, when positive, is the version the caller
	// already has: the authority answers UpToDate without an envelope body
	// when nothing newer is stored. An account with no stored envelope is
	// reported as Exists=false, not as an error. Returns
	// [ErrRemoteUnreachable] (wrapped) on transport failure or timeout.
	FetchLatest(ctx context.Context, sinceVersion int64) (models.FetchVaultResponse, error)

	// Replace pushes an envelope to the authority, overwriting whatever it
	// holds. Returns [ErrVersionConflict] (wrapped) when the envelope does
	// not advance the stored version, [ErrRemoteRejected] (wrapped) when the
	// authority refuses it as malformed, and [ErrRemoteUnreachable]
	// (wrapped) on transport failure or timeout.
	Replace(ctx context.Context, envelope models.EncryptedEnvelope) (models.ReplaceVaultResponse, error)

	// GetSalt fetches the key-derivation salt stored for the account. It is
	// needed on first unlock, before any envelope with an embedded salt has
	// been cached locally.
	GetSalt(ctx context.Context) ([]byte, error)

	// Ping probes authority reachability without moving envelope data. The
	// reachability watcher uses it to detect offline-to-online transitions.
	Ping(ctx context.Context) error
}

// SaltProvider is the subset of [RemoteVault] needed by unlock flows that
// only have to resolve the account salt.
type SaltProvider interface {
	GetSalt(ctx context.Context) ([]byte, error)
}
