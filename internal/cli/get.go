package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-vault-sync/models"
)

func (c *CLI) getCmd() *cobra.Command {
	var reveal bool

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one record",
		Long: `Get prints a single record. The secret value is masked unless
--reveal is given; prefer "vault-sync copy" to move a secret somewhere
without showing it on screen.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.ensureUnlocked(cmd.Context()); err != nil {
				return err
			}

			record, err := c.session.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			c.printRecord(record, reveal)
			return nil
		},
	}

	cmd.Flags().BoolVar(&reveal, "reveal", false, "print the secret value in the clear")

	return cmd
}

func (c *CLI) printRecord(record models.VaultRecord, reveal bool) {
	fmt.Fprintf(c.out, "ID:       %s\n", record.ID)
	fmt.Fprintf(c.out, "Name:     %s\n", record.Name)
	if record.Category != "" {
		fmt.Fprintf(c.out, "Category: %s\n", record.Category)
	}
	if record.Login != "" {
		fmt.Fprintf(c.out, "Login:    %s\n", record.Login)
	}
	if record.Secret != "" {
		secret := strings.Repeat("*", 8)
		if reveal {
			secret = record.Secret
		}
		fmt.Fprintf(c.out, "Secret:   %s\n", secret)
	}
	if record.URL != "" {
		fmt.Fprintf(c.out, "URL:      %s\n", record.URL)
	}
	if record.OTPSeed != "" {
		fmt.Fprintf(c.out, "OTP seed: %s\n", strings.Repeat("*", 8))
	}
	if len(record.Labels) > 0 {
		fmt.Fprintf(c.out, "Labels:   %s\n", strings.Join(record.Labels, ", "))
	}
	if record.Notes != "" {
		fmt.Fprintf(c.out, "Notes:    %s\n", record.Notes)
	}
	for _, a := range record.Attachments {
		fmt.Fprintf(c.out, "File:     %s (%d bytes)\n", a.Name, len(a.Content))
	}
	fmt.Fprintf(c.out, "Updated:  %s\n", time.UnixMilli(record.UpdatedAt).Format(time.RFC3339))
}
