package models

// FetchVaultResponse is the authority's answer to a fetch-latest call.
//
// Exactly one of the three shapes is populated: nothing stored yet
// (Exists=false), stored but not newer than the client's version
// (UpToDate=true, no body), or the full envelope.
type FetchVaultResponse struct {
	// Exists reports whether the authority holds any envelope for the
	// account.
	Exists bool `json:"exists"`

	// UpToDate is set when the caller's since-version is already the
	// latest; the envelope body is omitted in that case.
	UpToDate bool `json:"up_to_date,omitempty"`

	// Envelope is the latest stored envelope, present only when it is
	// newer than the caller's since-version.
	Envelope *EncryptedEnvelope `json:"envelope,omitempty"`
}

// ReplaceVaultRequest asks the authority to replace the stored envelope.
// The authority rejects envelopes missing ciphertext or IV and envelopes
// whose version does not advance the stored one.
type ReplaceVaultRequest struct {
	Envelope EncryptedEnvelope `json:"envelope"`
}

// ReplaceVaultResponse acknowledges a replace call.
type ReplaceVaultResponse struct {
	// OK reports acceptance. Re-pushing the envelope the authority
	// already holds is acknowledged as OK without a write.
	OK bool `json:"ok"`

	// StoredVersion is the version the authority holds after the call.
	StoredVersion int64 `json:"stored_version"`
}

// SaltResponse carries the account KDF salt for first unlock, before any
// envelope with an embedded salt has been cached locally.
type SaltResponse struct {
	Salt []byte `json:"salt"`
}
