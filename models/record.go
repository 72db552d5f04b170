package models

// VaultRecord is one secret entry of the vault.
//
// ID is assigned once at creation and never changes afterwards: it is the
// sole identity used to match records across replicas during sync and
// conflict detection. All other fields are mutable.
type VaultRecord struct {
	// ID is an opaque identifier, unique within a vault.
	ID string `json:"id"`

	// Name is the human-readable title of the entry.
	Name string `json:"name"`

	// Login is the account identifier associated with the secret.
	Login string `json:"login,omitempty"`

	// Secret holds the protected value itself (password, key, phrase).
	Secret string `json:"secret,omitempty"`

	// URL points at the destination the credentials belong to.
	URL string `json:"url,omitempty"`

	// Notes is free-form text attached to the entry.
	Notes string `json:"notes,omitempty"`

	// Labels is an unordered set of user-assigned tags.
	Labels []string `json:"labels,omitempty"`

	// Category groups entries in listings (login, card, identity, ...).
	Category string `json:"category,omitempty"`

	// OTPSeed is an optional one-time-code seed (TOTP secret).
	OTPSeed string `json:"otp_seed,omitempty"`

	// Attachments holds optional file payloads embedded into the record.
	Attachments []Attachment `json:"attachments,omitempty"`

	// CreatedAt is the creation time in milliseconds since epoch.
	CreatedAt int64 `json:"created_at"`

	// UpdatedAt is the last-modification time in milliseconds since epoch.
	// Invariant: UpdatedAt >= CreatedAt.
	UpdatedAt int64 `json:"updated_at"`
}

// Attachment is a named binary payload stored inside a record.
type Attachment struct {
	Name    string `json:"name"`
	Content []byte `json:"content"`
}

// Clone returns a deep copy of the record. Slices are copied so that
// mutating the clone never aliases the original.
func (r VaultRecord) Clone() VaultRecord {
	out := r
	if r.Labels != nil {
		out.Labels = make([]string, len(r.Labels))
		copy(out.Labels, r.Labels)
	}
	if r.Attachments != nil {
		out.Attachments = make([]Attachment, len(r.Attachments))
		for i, a := range r.Attachments {
			out.Attachments[i] = a
			if a.Content != nil {
				out.Attachments[i].Content = make([]byte, len(a.Content))
				copy(out.Attachments[i].Content, a.Content)
			}
		}
	}
	return out
}

// PlaintextVault is the decrypted state of one vault: an order-irrelevant
// set of records plus replica metadata. It exists only in process memory;
// at rest it is always wrapped into an [EncryptedEnvelope].
//
// The sealed byte layout of a vault is its canonical JSON encoding.
type PlaintextVault struct {
	// Records is the set of secret entries. Order carries no meaning.
	Records []VaultRecord `json:"records"`

	// Version is the envelope version this vault was decrypted from,
	// zero for a vault that has never been sealed.
	Version int64 `json:"version"`

	// UpdatedAt is the last in-memory mutation time, milliseconds since epoch.
	UpdatedAt int64 `json:"updated_at,omitempty"`

	// LastSyncedAt is the last successful sync time, milliseconds since epoch.
	LastSyncedAt int64 `json:"last_synced_at,omitempty"`
}

// Len returns the number of records.
func (v PlaintextVault) Len() int {
	return len(v.Records)
}

// Find returns the record with the given id and true, or a zero record and
// false when no such record exists.
func (v PlaintextVault) Find(id string) (VaultRecord, bool) {
	for _, r := range v.Records {
		if r.ID == id {
			return r, true
		}
	}
	return VaultRecord{}, false
}

// Upsert replaces the record with the same id or appends it when absent.
func (v *PlaintextVault) Upsert(record VaultRecord) {
	for i, r := range v.Records {
		if r.ID == record.ID {
			v.Records[i] = record
			return
		}
	}
	v.Records = append(v.Records, record)
}

// Remove deletes the record with the given id and reports whether it existed.
func (v *PlaintextVault) Remove(id string) bool {
	for i, r := range v.Records {
		if r.ID == id {
			v.Records = append(v.Records[:i], v.Records[i+1:]...)
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the vault.
func (v PlaintextVault) Clone() PlaintextVault {
	out := v
	if v.Records != nil {
		out.Records = make([]VaultRecord, len(v.Records))
		for i, r := range v.Records {
			out.Records[i] = r.Clone()
		}
	}
	return out
}
