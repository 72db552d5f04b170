// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Errors reported by the bearer-token middleware while picking the token out
// of the "Authorization" header. All of them turn into 401 responses; they
// exist as distinct values so tests and logs can tell the failure modes
// apart with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader: the request carried no "Authorization"
	// header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader: the header is present but has no
	// second space-separated part, so there is no token to extract.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken: the scheme prefix is there but the token itself is an
	// empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
