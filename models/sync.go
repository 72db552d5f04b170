package models

import "time"

// SyncDecision is the transient outcome of comparing the local and remote
// envelopes during one sync cycle. It is recomputed every cycle and never
// persisted.
type SyncDecision string

const (
	// DecisionUseLocal: the local envelope is authoritative for this
	// cycle; a push is attempted when the remote is behind.
	DecisionUseLocal SyncDecision = "use_local"

	// DecisionUseRemote: the remote envelope replaced the local one
	// wholesale.
	DecisionUseRemote SyncDecision = "use_remote"

	// DecisionUpToDate: both sides hold the same envelope; nothing moved.
	DecisionUpToDate SyncDecision = "up_to_date"

	// DecisionNeedsResolution: both sides changed independently; record
	// level reconciliation is required before either side may win.
	DecisionNeedsResolution SyncDecision = "needs_resolution"

	// DecisionUnavailable: the remote is unreachable and no local
	// envelope exists. Nothing to serve this cycle.
	DecisionUnavailable SyncDecision = "unavailable"
)

// SyncState is the sync engine state. Exactly one cycle is in flight at a
// time: Idle -> Syncing -> {Idle, Error}.
type SyncState string

const (
	SyncStateIdle    SyncState = "idle"
	SyncStateSyncing SyncState = "syncing"
	SyncStateError   SyncState = "error"
)

// SyncReport describes the outcome of one sync cycle.
type SyncReport struct {
	// Decision is the comparison outcome.
	Decision SyncDecision `json:"decision"`

	// Local is the envelope held locally after the cycle, nil when the
	// local store is still empty.
	Local *EncryptedEnvelope `json:"local,omitempty"`

	// Remote is the envelope the authority reported, nil when the remote
	// was unreachable, empty, or already up to date. Populated on
	// DecisionNeedsResolution so the caller can reconcile both sides.
	Remote *EncryptedEnvelope `json:"remote,omitempty"`

	// PushDeferred is set when the local side won but the push did not
	// reach the authority; the next cycle retries it.
	PushDeferred bool `json:"push_deferred,omitempty"`

	// SyncedAt is when the cycle finished.
	SyncedAt time.Time `json:"synced_at"`
}
