// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the acceptance rules the authority applies to
// incoming data before it reaches storage.
//
// The central abstraction is [Validator], a generic contract that services
// depend on instead of concrete rule sets. [EnvelopeValidator] is the one
// implementation that matters here: it rejects envelopes without ciphertext
// or IV and envelopes with a non-positive version, without ever decrypting
// anything. Keeping the rules behind an interface keeps them out of the
// transport and storage layers and makes them swappable in tests.
package validators

import "context"

// Validator checks a value against domain rules. The optional field names
// restrict the check to a subset of the rules, which lets callers validate
// partially populated values.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
