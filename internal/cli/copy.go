package cli

import (
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

func (c *CLI) copyCmd() *cobra.Command {
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "copy <id>",
		Short: "Copy a record's secret to the clipboard",
		Long: `Copy places the secret value of a record on the system clipboard
without ever printing it. The command stays in the foreground and clears
the clipboard after --ttl (Ctrl+C clears it immediately); --ttl=0 copies
and exits, leaving the clipboard as is.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.ensureUnlocked(cmd.Context()); err != nil {
				return err
			}

			record, err := c.session.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if record.Secret == "" {
				return errors.New("record has no secret value to copy")
			}

			if err := clipboard.WriteAll(record.Secret); err != nil {
				return fmt.Errorf("write clipboard: %w", err)
			}

			if ttl <= 0 {
				fmt.Fprintln(c.out, success("secret copied to clipboard"))
				return nil
			}

			fmt.Fprintln(c.out, success(fmt.Sprintf("secret copied to clipboard, clearing in %s", ttl)))

			ctx, stop := signal.NotifyContext(cmd.Context(),
				syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
			defer stop()

			select {
			case <-time.After(ttl):
			case <-ctx.Done():
			}

			if err := clipboard.WriteAll(""); err != nil {
				return fmt.Errorf("clear clipboard: %w", err)
			}
			fmt.Fprintln(c.out, success("clipboard cleared"))

			return nil
		},
	}

	cmd.Flags().DurationVar(&ttl, "ttl", 30*time.Second, "how long the secret stays on the clipboard")

	return cmd
}
