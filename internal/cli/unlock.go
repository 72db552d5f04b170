package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func (c *CLI) unlockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unlock",
		Short: "Verify the passphrase and unlock the vault",
		Long: `Unlock derives the vault key from your passphrase and decrypts the
vault with it. On a fresh device the encrypted vault is first fetched from
the remote authority.

With remember-unlock enabled (APP_REMEMBER_UNLOCK=true) the derived key is
kept in the OS keyring afterwards, so the commands that follow need no
passphrase until "vault-sync lock --forget".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := readSecret("Passphrase: ")
			if err != nil {
				return err
			}

			if err := c.session.Unlock(cmd.Context(), secret); err != nil {
				return err
			}

			fmt.Fprintln(c.out, success("vault unlocked"))
			if c.cfg.App.RememberUnlock {
				fmt.Fprintln(c.out, hint("vault key remembered in the OS keyring; drop it with "+
					color.YellowString("vault-sync lock --forget")))
			} else {
				fmt.Fprintln(c.out, hint("set APP_REMEMBER_UNLOCK=true to stay unlocked between commands"))
			}

			return nil
		},
	}
}
