package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-vault-sync/models"
)

func (c *CLI) resolveCmd() *cobra.Command {
	var strategy string

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Reconcile divergent replicas record by record",
		Long: `Resolve runs after sync reports that both replicas changed
independently. It fetches and decrypts the remote vault, walks every
divergent record, asks which side should win, and pushes the merged vault
under a version above both sides.

Records changed on only one side merge automatically; a choice is needed
only where both sides touched the same record, or one side deleted what
the other edited. For a record modified on both sides a field-level merge
suggestion is offered: the fresher side wins each field, labels are
united, and diverging notes are joined under conflict markers. Resolution
is all-or-nothing: aborting leaves both replicas exactly as they were.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := c.ensureUnlocked(ctx); err != nil {
				return err
			}

			s, cleanup := c.startSpinner("Comparing replicas...")
			conflicts, err := c.session.DetectConflicts(ctx)
			cleanup() // stop the spinner before any prompting
			if err != nil {
				return err
			}

			var choices []models.ResolutionChoice
			if len(conflicts) > 0 {
				if strategy != "" {
					choices, err = uniformChoices(conflicts, strategy)
				} else {
					choices, err = c.promptChoices(conflicts)
				}
				if err != nil {
					return err
				}
			}

			s, cleanup = c.startSpinner("Reconciling...")
			defer cleanup()

			if err := c.session.Reconcile(ctx, choices); err != nil {
				return err
			}

			if len(conflicts) == 0 {
				s.FinalMSG = success("no conflicting records; replicas merged and pushed")
			} else {
				s.FinalMSG = success(fmt.Sprintf("%d conflict(s) resolved; merged vault pushed", len(conflicts)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", "",
		"resolve every conflict the same way: local, remote or keep-both")

	return cmd
}

// uniformChoices applies one strategy to every conflict, for scripted use.
func uniformChoices(conflicts []models.ConflictRecord, strategy string) ([]models.ResolutionChoice, error) {
	var resolution models.Resolution
	switch strategy {
	case "local":
		resolution = models.ResolutionAcceptLocal
	case "remote":
		resolution = models.ResolutionAcceptRemote
	case "keep-both":
		resolution = models.ResolutionKeepBoth
	default:
		return nil, fmt.Errorf("unknown strategy %q: want local, remote or keep-both", strategy)
	}

	choices := make([]models.ResolutionChoice, 0, len(conflicts))
	for _, conflict := range conflicts {
		choices = append(choices, models.ResolutionChoice{
			EntryID:    conflict.EntryID,
			Resolution: resolution,
		})
	}

	return choices, nil
}

func (c *CLI) promptChoices(conflicts []models.ConflictRecord) ([]models.ResolutionChoice, error) {
	reader := bufio.NewReader(c.in)
	choices := make([]models.ResolutionChoice, 0, len(conflicts))

	fmt.Fprintln(c.out, caution(fmt.Sprintf("%d record(s) diverged since the last sync", len(conflicts))))

	for i, conflict := range conflicts {
		fmt.Fprintf(c.out, "\n[%d/%d] %s\n", i+1, len(conflicts), describeConflict(conflict))

		// The merge suggestion only makes sense when there are two versions
		// to combine; delete conflicts offer the side-picking choices only.
		canMerge := conflict.Local != nil && conflict.Remote != nil
		if canMerge {
			fmt.Fprintln(c.out, c.conflicts.DiffRecords(*conflict.Local, *conflict.Remote))
		}

		resolution, err := c.promptResolution(reader, canMerge)
		if err != nil {
			return nil, err
		}

		choice := models.ResolutionChoice{
			EntryID:    conflict.EntryID,
			Resolution: resolution,
		}
		if resolution == models.ResolutionMerge {
			suggestion := c.conflicts.SuggestMerge(*conflict.Local, *conflict.Remote)
			choice.MergedRecord = &suggestion
		}
		choices = append(choices, choice)
	}

	return choices, nil
}

func (c *CLI) promptResolution(reader *bufio.Reader, canMerge bool) (models.Resolution, error) {
	prompt := "keep [l]ocal, [r]emote, [b]oth, or [a]bort: "
	if canMerge {
		prompt = "keep [l]ocal, [r]emote, [b]oth, [m]erge fields, or [a]bort: "
	}

	for {
		fmt.Fprint(c.out, prompt)

		line, err := reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("read choice: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "l", "local":
			return models.ResolutionAcceptLocal, nil
		case "r", "remote":
			return models.ResolutionAcceptRemote, nil
		case "b", "both":
			return models.ResolutionKeepBoth, nil
		case "m", "merge":
			if canMerge {
				return models.ResolutionMerge, nil
			}
		case "a", "abort":
			return "", errors.New("resolution aborted; nothing was changed")
		}
	}
}

func describeConflict(conflict models.ConflictRecord) string {
	name := conflict.EntryID
	if conflict.Local != nil {
		name = conflict.Local.Name
	} else if conflict.Remote != nil {
		name = conflict.Remote.Name
	}

	switch conflict.Type {
	case models.ConflictDeletedLocally:
		return fmt.Sprintf("%q was deleted here but still exists on the remote", name)
	case models.ConflictDeletedOnRemote:
		return fmt.Sprintf("%q was deleted on the remote but still exists here", name)
	default:
		return fmt.Sprintf("%q was modified on both sides", name)
	}
}
