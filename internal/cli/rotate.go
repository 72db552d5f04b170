package cli

import (
	"github.com/spf13/cobra"
)

func (c *CLI) rotateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rotate",
		Short: "Change the vault passphrase",
		Long: `Rotate re-encrypts the vault under a key derived from a new
passphrase with a fresh salt, then pushes the resealed vault. The old
passphrase stops working everywhere; other devices unlock with the new
one on their next sync.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := c.ensureUnlocked(ctx); err != nil {
				return err
			}

			oldSecret, err := readSecret("Current passphrase: ")
			if err != nil {
				return err
			}
			newSecret, err := readNewSecret("New passphrase: ", "Confirm new passphrase: ")
			if err != nil {
				return err
			}

			s, cleanup := c.startSpinner("Rotating vault key...")
			defer cleanup()

			if err := c.session.Rotate(ctx, oldSecret, newSecret); err != nil {
				return err
			}

			s.FinalMSG = success("passphrase rotated, vault resealed under a fresh salt") + "\n" +
				caution("the old passphrase is gone for good; other devices need the new one")
			return nil
		},
	}
}
