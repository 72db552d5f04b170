package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-vault-sync/models"
)

func (c *CLI) listCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List vault records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.ensureUnlocked(cmd.Context()); err != nil {
				return err
			}

			records, err := c.session.List(cmd.Context())
			if err != nil {
				return err
			}
			if category != "" {
				records = filterByCategory(records, category)
			}

			if len(records) == 0 {
				fmt.Fprintln(c.out, hint("vault is empty; add a record with "+
					color.YellowString("vault-sync put --name <name>")))
				return nil
			}

			c.printRecords(records)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "show only records of this category")

	return cmd
}

func filterByCategory(records []models.VaultRecord, category string) []models.VaultRecord {
	filtered := records[:0]
	for _, r := range records {
		if strings.EqualFold(r.Category, category) {
			filtered = append(filtered, r)
		}
	}

	return filtered
}

// printRecords renders the listing. Secrets are never part of it.
func (c *CLI) printRecords(records []models.VaultRecord) {
	w := tabwriter.NewWriter(c.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tLOGIN\tUPDATED")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Name, r.Category, r.Login,
			time.UnixMilli(r.UpdatedAt).Format("2006-01-02 15:04"))
	}
	w.Flush()
}
