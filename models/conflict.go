// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ConflictType classifies how a record diverged between replicas.
type ConflictType string

const (
	// ConflictBothModified: the record was changed independently on both
	// sides since the last common version.
	ConflictBothModified ConflictType = "both_modified"

	// ConflictDeletedLocally: the record exists on the remote side but
	// was deleted locally after the remote last saw it.
	ConflictDeletedLocally ConflictType = "deleted_locally"

	// ConflictDeletedOnRemote: the record exists locally but the remote
	// deleted it after the local replica last synced.
	ConflictDeletedOnRemote ConflictType = "deleted_on_remote"
)

// ConflictRecord is one divergent record surfaced during reconciliation.
// It is produced by the detector, consumed by the resolution step, and then
// discarded; it is never persisted.
type ConflictRecord struct {
	// EntryID is the id of the divergent record.
	EntryID string `json:"entry_id"`

	// Type classifies the divergence.
	Type ConflictType `json:"type"`

	// Local is the local copy of the record, nil for
	// [ConflictDeletedLocally].
	Local *VaultRecord `json:"local,omitempty"`

	// Remote is the remote copy of the record, nil for
	// [ConflictDeletedOnRemote].
	Remote *VaultRecord `json:"remote,omitempty"`
}

// Resolution is the caller-chosen strategy for one conflict.
type Resolution string

const (
	// ResolutionAcceptLocal: the local record (or local absence) wins.
	ResolutionAcceptLocal Resolution = "accept_local"

	// ResolutionAcceptRemote: the remote record (or remote absence) wins.
	ResolutionAcceptRemote Resolution = "accept_remote"

	// ResolutionMerge: a caller-supplied merged record replaces both
	// sides under the original id.
	ResolutionMerge Resolution = "merge"

	// ResolutionKeepBoth: the local record keeps its id, the remote
	// record is cloned under a freshly generated id, both persist.
	ResolutionKeepBoth Resolution = "keep_both"
)

// ResolutionChoice pairs one surfaced conflict with the strategy chosen for
// it. Reconciliation is all-or-nothing: every surfaced conflict needs a
// matching choice before any of them is applied.
type ResolutionChoice struct {
	// EntryID names the conflict this choice resolves.
	EntryID string `json:"entry_id"`

	// Resolution is the chosen strategy.
	Resolution Resolution `json:"resolution"`

	// MergedRecord is required for [ResolutionMerge] and ignored
	// otherwise.
	MergedRecord *VaultRecord `json:"merged_record,omitempty"`
}
