package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func (c *CLI) initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a new encrypted vault",
		Long: `Init creates an empty vault sealed with a key derived from your
passphrase, stores it locally and pushes it to the remote authority when
one is reachable. Initialisation works fully offline; the first push then
happens on the next sync.

There is no passphrase recovery. A lost passphrase means a lost vault.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := readNewSecret("Passphrase: ", "Confirm passphrase: ")
			if err != nil {
				return err
			}

			s, cleanup := c.startSpinner("Creating vault...")
			defer cleanup()

			if err := c.session.Create(cmd.Context(), secret); err != nil {
				return err
			}

			s.FinalMSG = success("vault created at "+c.cfg.Storage.Path) + "\n" +
				hint("add your first record with " + color.YellowString("vault-sync put --name <name>"))
			return nil
		},
	}
}
