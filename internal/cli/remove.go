package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Delete a record",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := c.ensureUnlocked(ctx); err != nil {
				return err
			}

			if err := c.session.Remove(ctx, args[0]); err != nil {
				return err
			}
			if err := c.session.Save(ctx); err != nil {
				return err
			}

			fmt.Fprintln(c.out, success("record removed"))
			return nil
		},
	}
}
