package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-vault-sync/models"
)

func (c *CLI) syncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Run one synchronization cycle",
		Long: `Sync compares the local and remote envelope versions and moves whole
envelopes in whichever direction is needed. It works on ciphertext only:
the vault does not have to be unlocked, and the authority never learns
what changed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cleanup := c.startSpinner("Syncing...")
			defer cleanup()

			report, err := c.engine.SyncOnce(cmd.Context())
			if err != nil {
				return err
			}

			s.FinalMSG = renderSyncReport(report)
			return nil
		},
	}
}

func renderSyncReport(report models.SyncReport) string {
	switch report.Decision {
	case models.DecisionUpToDate:
		return success("already up to date")

	case models.DecisionUseLocal:
		if report.PushDeferred {
			return caution("local envelope is ahead but the authority is unreachable; push deferred to the next cycle")
		}
		version := int64(0)
		if report.Local != nil {
			version = report.Local.Version
		}
		return success(fmt.Sprintf("local envelope pushed (version %d)", version))

	case models.DecisionUseRemote:
		version := int64(0)
		if report.Local != nil {
			version = report.Local.Version
		}
		return success(fmt.Sprintf("remote envelope pulled (version %d)", version))

	case models.DecisionNeedsResolution:
		return caution("both replicas changed independently") + "\n" +
			hint("run "+color.YellowString("vault-sync resolve")+" to reconcile them")

	case models.DecisionUnavailable:
		return caution("authority unreachable and nothing cached locally; nothing to sync")

	default:
		return fmt.Sprintf("sync finished: %s", report.Decision)
	}
}
