// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"time"
)

// EncryptedEnvelope is the at-rest representation of one vault: the AEAD
// ciphertext together with everything needed to decrypt and order it.
//
// Version is a monotonically increasing integer: it strictly increases
// across any sequence of seals produced by the same writer. Two envelopes
// carrying the same Version are either bit-identical or evidence of an
// unresolved conflict between independent writers.
type EncryptedEnvelope struct {
	// Ciphertext is the encrypted vault with the 16-byte authentication
	// tag appended.
	Ciphertext []byte `json:"ciphertext"`

	// IV is the 12-byte nonce used for this seal. Single use per key:
	// every seal generates a fresh one.
	IV []byte `json:"iv"`

	// Salt is the KDF salt the sealing key was derived with. Fixed for
	// the lifetime of a master secret, regenerated only on key rotation.
	// May be empty on envelopes predating embedded salts; the account
	// salt provider covers that case on first unlock.
	Salt []byte `json:"salt,omitempty"`

	// Version orders envelopes produced by one writer.
	Version int64 `json:"version"`

	// LastModified is the wall-clock time of the seal.
	LastModified time.Time `json:"last_modified"`

	// IsOffline marks an envelope sealed locally and not yet accepted by
	// the remote authority. Cleared on a successful push.
	IsOffline bool `json:"is_offline"`
}

// TableName returns the name of the database table
// associated with the EncryptedEnvelope model.
func (e EncryptedEnvelope) TableName() string {
	return "envelopes"
}

// EqualBytes reports whether two envelopes carry the identical sealed
// payload: same version, same IV, same ciphertext. Metadata fields that do
// not affect decryption (LastModified, IsOffline) are ignored.
func (e EncryptedEnvelope) EqualBytes(other EncryptedEnvelope) bool {
	return e.Version == other.Version &&
		bytes.Equal(e.IV, other.IV) &&
		bytes.Equal(e.Ciphertext, other.Ciphertext)
}

// Clone returns a deep copy of the envelope.
func (e EncryptedEnvelope) Clone() EncryptedEnvelope {
	out := e
	out.Ciphertext = append([]byte(nil), e.Ciphertext...)
	out.IV = append([]byte(nil), e.IV...)
	if e.Salt != nil {
		out.Salt = append([]byte(nil), e.Salt...)
	}
	return out
}

// SealedBlob is the raw output of one authenticated-encryption call:
// ciphertext (tag appended) plus the nonce it was produced under.
type SealedBlob struct {
	Ciphertext []byte
	IV         []byte
}

// RotatedKeyMaterial is the result of a key rotation: the fresh salt, the
// key derived from the new secret under that salt, and the plaintext
// resealed with it. The previous salt and key are unrecoverable once the
// caller persists this.
type RotatedKeyMaterial struct {
	Salt   []byte
	Key    []byte
	Sealed SealedBlob
}
