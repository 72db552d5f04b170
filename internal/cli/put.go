package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-vault-sync/models"
)

func (c *CLI) putCmd() *cobra.Command {
	var (
		id       string
		name     string
		login    string
		secret   string
		url      string
		notes    string
		category string
		labels   []string
		otpSeed  string
		attach   []string
	)

	cmd := &cobra.Command{
		Use:   "put",
		Short: "Add or update a record",
		Long: `Put creates a record, or updates the one named by --id. On update
only the flags actually given change the record; everything else is kept.

Without --secret the command prompts for the value with echo disabled.
Passing --secret on the command line works for scripting but leaves the
value in the shell history; prefer the prompt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := c.ensureUnlocked(ctx); err != nil {
				return err
			}

			var record models.VaultRecord
			if id != "" {
				existing, err := c.session.Get(ctx, id)
				if err != nil {
					return err
				}
				record = existing
			}

			flags := cmd.Flags()
			if flags.Changed("name") {
				record.Name = name
			}
			if record.Name == "" {
				return errors.New("--name is required for a new record")
			}
			if flags.Changed("login") {
				record.Login = login
			}
			if flags.Changed("url") {
				record.URL = url
			}
			if flags.Changed("notes") {
				record.Notes = notes
			}
			if flags.Changed("category") {
				record.Category = category
			}
			if flags.Changed("label") {
				record.Labels = labels
			}
			if flags.Changed("otp-seed") {
				record.OTPSeed = otpSeed
			}
			if flags.Changed("attach") {
				attachments, err := loadAttachments(attach)
				if err != nil {
					return err
				}
				record.Attachments = attachments
			}

			switch {
			case flags.Changed("secret"):
				record.Secret = secret
			case id == "" && stdinIsTerminal():
				value, err := readSecret("Secret (empty for none): ")
				if err != nil {
					return err
				}
				record.Secret = value
			}

			stored, err := c.session.Upsert(ctx, record)
			if err != nil {
				return err
			}
			if err := c.session.Save(ctx); err != nil {
				return err
			}

			verb := "created"
			if id != "" {
				verb = "updated"
			}
			fmt.Fprintln(c.out, success("record "+verb))
			fmt.Fprintf(c.out, "ID: %s\n", stored.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "record to update; empty creates a new one")
	cmd.Flags().StringVar(&name, "name", "", "record title")
	cmd.Flags().StringVar(&login, "login", "", "account login")
	cmd.Flags().StringVar(&secret, "secret", "", "secret value (prompted when omitted)")
	cmd.Flags().StringVar(&url, "url", "", "destination URL")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	cmd.Flags().StringVar(&category, "category", "", "record category (login, card, ...)")
	cmd.Flags().StringArrayVar(&labels, "label", nil, "label, repeatable")
	cmd.Flags().StringVar(&otpSeed, "otp-seed", "", "TOTP secret seed")
	cmd.Flags().StringArrayVar(&attach, "attach", nil, "file to embed into the record, repeatable")

	return cmd
}

// loadAttachments reads each named file into an embedded attachment. The
// whole vault travels as one envelope, so attachments should stay small.
func loadAttachments(paths []string) ([]models.Attachment, error) {
	attachments := make([]models.Attachment, 0, len(paths))
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read attachment: %w", err)
		}
		attachments = append(attachments, models.Attachment{
			Name:    filepath.Base(path),
			Content: content,
		})
	}

	return attachments, nil
}
