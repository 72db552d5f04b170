package cli

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-vault-sync/models"
)

func (c *CLI) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show vault and sync state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := c.session.Status(cmd.Context())
			if err != nil {
				return err
			}

			c.printStatus(status)
			return nil
		},
	}
}

func (c *CLI) printStatus(status models.VaultStatus) {
	lockState := color.YellowString("locked")
	if status.Unlocked {
		lockState = color.GreenString("unlocked")
	}
	reachability := color.RedString("offline")
	if status.Online {
		reachability = color.GreenString("online")
	}
	lastSynced := "never"
	if !status.LastSyncedAt.IsZero() {
		lastSynced = status.LastSyncedAt.Format(time.RFC3339)
	}

	fmt.Fprintf(c.out, "Vault:    %s\n", lockState)
	if status.Unlocked {
		fmt.Fprintf(c.out, "Records:  %d\n", status.RecordCount)
	}
	fmt.Fprintf(c.out, "Version:  %d\n", status.LocalVersion)
	fmt.Fprintf(c.out, "Remote:   %s\n", reachability)
	fmt.Fprintf(c.out, "Synced:   %s\n", lastSynced)
	fmt.Fprintf(c.out, "Engine:   %s\n", status.SyncState)

	if status.PendingPush {
		fmt.Fprintln(c.out, caution("local changes not yet pushed; they go out on the next successful sync"))
	}
}
