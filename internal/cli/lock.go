package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) lockCmd() *cobra.Command {
	var forget bool

	cmd := &cobra.Command{
		Use:   "lock",
		Short: "Drop the decrypted vault and the derived key from memory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.session.Lock(cmd.Context(), forget); err != nil {
				return err
			}

			msg := "vault locked"
			if forget {
				msg += ", remembered key removed from the OS keyring"
			}
			fmt.Fprintln(c.out, success(msg))

			return nil
		},
	}

	cmd.Flags().BoolVar(&forget, "forget", false, "also remove the key remembered in the OS keyring")

	return cmd
}
