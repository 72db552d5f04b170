// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-vault-sync server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded as JSON at all.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidEnvelope is returned when a pushed envelope fails the
	// acceptance rules: missing ciphertext or IV, or a non-positive version.
	MsgInvalidEnvelope = "envelope is missing ciphertext, iv or a positive version"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoAccountIDProvided is returned when a handler requires an account
	// ID (extracted from the JWT claim) but none is present in the request
	// context.
	MsgNoAccountIDProvided = "no account ID provided"

	// MsgEnvelopeNotFound is returned when the authority holds no envelope
	// for the account.
	MsgEnvelopeNotFound = "no envelope stored"

	// MsgSaltNotFound is returned when the authority holds no key-derivation
	// salt for the account.
	MsgSaltNotFound = "no salt stored"

	// MsgVersionConflict is returned when the pushed envelope does not
	// advance the version the authority already holds. The client should
	// sync before retrying.
	MsgVersionConflict = "version conflict, please sync"
)
