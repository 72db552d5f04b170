package models

import "time"

// VaultStatus is a point-in-time snapshot of the client vault, assembled
// for status reporting. It never carries secrets or key material.
type VaultStatus struct {
	// Unlocked reports whether a decrypted vault is held in memory.
	Unlocked bool `json:"unlocked"`

	// RecordCount is the number of records in the unlocked vault, zero
	// while locked.
	RecordCount int `json:"record_count"`

	// LocalVersion is the version of the envelope held locally, zero when
	// no envelope was ever stored.
	LocalVersion int64 `json:"local_version"`

	// PendingPush reports that the local envelope was sealed offline and
	// has not been accepted by the remote authority yet.
	PendingPush bool `json:"pending_push"`

	// Online is the client's current belief about remote reachability.
	Online bool `json:"online"`

	// LastSyncedAt is the completion time of the last sync cycle, zero if
	// the vault has never synced.
	LastSyncedAt time.Time `json:"last_synced_at"`

	// SyncState is the sync engine state at the time of the snapshot.
	SyncState SyncState `json:"sync_state"`
}
