// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/utils"
	"github.com/MKhiriev/go-vault-sync/models"
)

// conflictService compares two decrypted vault replicas record by record.
// Records are matched by ID only; content equality is decided by a canonical
// content hash, so a record touched on both sides but carrying identical
// fields does not count as divergent.
type conflictService struct {
	uuids *utils.UUIDGenerator

	logger *logger.Logger
}

func NewConflictService(uuids *utils.UUIDGenerator, logger *logger.Logger) ConflictService {
	return &conflictService{
		uuids:  uuids,
		logger: logger,
	}
}

func (c *conflictService) Detect(ctx context.Context, local, remote models.PlaintextVault, lastSyncedVersion int64) ([]models.ConflictRecord, error) {
	remoteByID := make(map[string]models.VaultRecord, len(remote.Records))
	for _, r := range remote.Records {
		remoteByID[r.ID] = r
	}
	localByID := make(map[string]models.VaultRecord, len(local.Records))
	for _, r := range local.Records {
		localByID[r.ID] = r
	}

	var conflicts []models.ConflictRecord

	for _, lr := range local.Records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rr, onRemote := remoteByID[lr.ID]
		if onRemote {
			if utils.RecordContentHash(lr) != utils.RecordContentHash(rr) {
				conflicts = append(conflicts, models.ConflictRecord{
					EntryID: lr.ID,
					Type:    models.ConflictBothModified,
					Local:   clonePtr(lr),
					Remote:  clonePtr(rr),
				})
			}
			continue
		}

		// A record born after the last sync never reached the other side:
		// it is an addition, not a divergence.
		if lr.CreatedAt > lastSyncedVersion {
			continue
		}
		if remote.Version > lastSyncedVersion {
			conflicts = append(conflicts, models.ConflictRecord{
				EntryID: lr.ID,
				Type:    models.ConflictDeletedOnRemote,
				Local:   clonePtr(lr),
			})
		}
	}

	for _, rr := range remote.Records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if _, onLocal := localByID[rr.ID]; onLocal {
			continue
		}
		if rr.CreatedAt > lastSyncedVersion {
			continue
		}
		conflicts = append(conflicts, models.ConflictRecord{
			EntryID: rr.ID,
			Type:    models.ConflictDeletedLocally,
			Remote:  clonePtr(rr),
		})
	}

	c.logger.Debug().
		Str("func", "conflictService.Detect").
		Int("conflicts", len(conflicts)).
		Msg("replicas compared")

	return conflicts, nil
}

func (c *conflictService) Resolve(ctx context.Context, local, remote models.PlaintextVault, conflicts []models.ConflictRecord, choices []models.ResolutionChoice) (models.PlaintextVault, error) {
	choiceByID := make(map[string]models.ResolutionChoice, len(choices))
	for _, ch := range choices {
		choiceByID[ch.EntryID] = ch
	}

	// All-or-nothing: every surfaced conflict needs a well-formed choice
	// before anything is applied.
	for _, cf := range conflicts {
		ch, ok := choiceByID[cf.EntryID]
		if !ok {
			return models.PlaintextVault{}, fmt.Errorf("%w: no choice for record %q", ErrUnresolvedConflict, cf.EntryID)
		}
		switch ch.Resolution {
		case models.ResolutionAcceptLocal, models.ResolutionAcceptRemote, models.ResolutionKeepBoth:
		case models.ResolutionMerge:
			if ch.MergedRecord == nil {
				return models.PlaintextVault{}, fmt.Errorf("%w: merge for record %q carries no merged record", ErrUnresolvedConflict, cf.EntryID)
			}
		default:
			return models.PlaintextVault{}, fmt.Errorf("%w: unknown resolution %q for record %q", ErrUnresolvedConflict, ch.Resolution, cf.EntryID)
		}
	}

	conflicted := make(map[string]struct{}, len(conflicts))
	for _, cf := range conflicts {
		conflicted[cf.EntryID] = struct{}{}
	}

	merged := models.PlaintextVault{
		Records: make([]models.VaultRecord, 0, len(local.Records)+len(remote.Records)),
		Version: maxVersion(local.Version, remote.Version),
	}

	remoteByID := make(map[string]models.VaultRecord, len(remote.Records))
	for _, r := range remote.Records {
		remoteByID[r.ID] = r
	}

	// Union of the non-conflicted records: local copies first, the fresher
	// side winning when both replicas hold the same record.
	for _, lr := range local.Records {
		if err := ctx.Err(); err != nil {
			return models.PlaintextVault{}, err
		}
		if _, isConflicted := conflicted[lr.ID]; isConflicted {
			continue
		}

		if rr, onRemote := remoteByID[lr.ID]; onRemote && rr.UpdatedAt > lr.UpdatedAt {
			merged.Upsert(rr.Clone())
			continue
		}
		merged.Upsert(lr.Clone())
	}

	localByID := make(map[string]models.VaultRecord, len(local.Records))
	for _, r := range local.Records {
		localByID[r.ID] = r
	}
	for _, rr := range remote.Records {
		if err := ctx.Err(); err != nil {
			return models.PlaintextVault{}, err
		}
		if _, isConflicted := conflicted[rr.ID]; isConflicted {
			continue
		}
		if _, onLocal := localByID[rr.ID]; onLocal {
			continue
		}
		merged.Upsert(rr.Clone())
	}

	for _, cf := range conflicts {
		ch := choiceByID[cf.EntryID]

		switch ch.Resolution {
		case models.ResolutionAcceptLocal:
			// Absence wins for delete conflicts: a nil side adds nothing.
			if cf.Local != nil {
				merged.Upsert(cf.Local.Clone())
			}

		case models.ResolutionAcceptRemote:
			if cf.Remote != nil {
				merged.Upsert(cf.Remote.Clone())
			}

		case models.ResolutionMerge:
			m := ch.MergedRecord.Clone()
			m.ID = cf.EntryID
			merged.Upsert(m)

		case models.ResolutionKeepBoth:
			if cf.Local != nil {
				merged.Upsert(cf.Local.Clone())
			}
			if cf.Remote != nil {
				dup := cf.Remote.Clone()
				dup.ID = c.uuids.Generate()
				merged.Upsert(dup)
			}
		}
	}

	c.logger.Debug().
		Str("func", "conflictService.Resolve").
		Int("conflicts", len(conflicts)).
		Int("records", merged.Len()).
		Msg("replicas reconciled")

	return merged, nil
}

func (c *conflictService) DiffRecords(local, remote models.VaultRecord) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(renderRecord(local), renderRecord(remote), false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	return dmp.DiffPrettyText(diffs)
}

func (c *conflictService) SuggestMerge(local, remote models.VaultRecord) models.VaultRecord {
	newest := local
	if remote.UpdatedAt > local.UpdatedAt {
		newest = remote
	}

	merged := newest.Clone()
	merged.ID = local.ID
	merged.Labels = unionLabels(local.Labels, remote.Labels)
	merged.Notes = mergeNotes(local.Notes, remote.Notes)

	return merged
}

// mergeNotes joins two divergent free-text fields: text present on either
// side is kept, and passages where the replicas compete for the same spot
// are wrapped in conflict markers for the user to settle.
func mergeNotes(localNotes, remoteNotes string) string {
	if localNotes == remoteNotes {
		return localNotes
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(localNotes, remoteNotes, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var b, localRun, remoteRun strings.Builder
	flush := func() {
		switch {
		case localRun.Len() == 0 && remoteRun.Len() == 0:
		case remoteRun.Len() == 0:
			b.WriteString(localRun.String())
		case localRun.Len() == 0:
			b.WriteString(remoteRun.String())
		default:
			b.WriteString("<<<<<<< local\n")
			b.WriteString(localRun.String())
			b.WriteString("\n=======\n")
			b.WriteString(remoteRun.String())
			b.WriteString("\n>>>>>>> remote\n")
		}
		localRun.Reset()
		remoteRun.Reset()
	}

	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			flush()
			b.WriteString(d.Text)
		case diffmatchpatch.DiffDelete:
			localRun.WriteString(d.Text)
		case diffmatchpatch.DiffInsert:
			remoteRun.WriteString(d.Text)
		}
	}
	flush()

	return b.String()
}

func unionLabels(local, remote []string) []string {
	seen := make(map[string]struct{}, len(local)+len(remote))
	var union []string
	for _, l := range append(append([]string{}, local...), remote...) {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		union = append(union, l)
	}
	sort.Strings(union)

	return union
}

// renderRecord flattens the comparable record fields into one line per field
// so the diff stays readable in a terminal. Secret values never appear in
// the output: a change must be visible, so secret and OTP seed are replaced
// by short digest fingerprints that differ when the values do.
func renderRecord(r models.VaultRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "name: %s\n", r.Name)
	fmt.Fprintf(&b, "login: %s\n", r.Login)
	fmt.Fprintf(&b, "secret: %s\n", fingerprint(r.Secret))
	fmt.Fprintf(&b, "url: %s\n", r.URL)
	fmt.Fprintf(&b, "notes: %s\n", r.Notes)
	fmt.Fprintf(&b, "labels: %s\n", strings.Join(r.Labels, ", "))
	fmt.Fprintf(&b, "category: %s\n", r.Category)
	fmt.Fprintf(&b, "otp seed: %s\n", fingerprint(r.OTPSeed))
	for _, a := range r.Attachments {
		fmt.Fprintf(&b, "attachment: %s (%d bytes)\n", a.Name, len(a.Content))
	}

	return b.String()
}

func fingerprint(secret string) string {
	if secret == "" {
		return ""
	}
	sum := utils.Hash([]byte(secret))

	return "(hidden) " + hex.EncodeToString(sum[:4])
}

func clonePtr(r models.VaultRecord) *models.VaultRecord {
	clone := r.Clone()
	return &clone
}

func maxVersion(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
