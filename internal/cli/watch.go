package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func (c *CLI) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Sync continuously in the foreground",
		Long: `Watch keeps the vault synchronized in the foreground: a sync cycle
runs at every interval, and a reachability probe brings the client back
online as soon as the authority answers again. Stop with Ctrl+C.

The interval comes from WORKERS_SYNC_INTERVAL (default 30s).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(),
				syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
			defer stop()

			fmt.Fprintln(c.out, hint(fmt.Sprintf("syncing every %s; Ctrl+C to stop", c.cfg.Workers.SyncInterval)))

			c.workers.Run(ctx)

			fmt.Fprintln(c.out, success("watch stopped"))
			return nil
		},
	}
}
