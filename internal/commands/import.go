package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ecotrack-dev/ecotrack/internal/importer"
	"github.com/ecotrack-dev/ecotrack/internal/store"
)

func newImportCommand(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Bulk-record measurements from a CSV export",
		Long:  "Bulk-record measurements from a CSV export with date,category,amount rows. Rows naming unknown categories are skipped.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := importer.DefaultRegistry().Get(format)
			if parser == nil {
				return fmt.Errorf("unknown import format %q", format)
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			readings, err := parser.Parse(f)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", args[0], err)
			}

			st, _, err := opts.open(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			imported, skipped := 0, 0
			for i, r := range readings {
				if _, err := st.RecordOn(r.Date, r.Category, r.Amount); err != nil {
					if errors.Is(err, store.ErrUnknownCategory) {
						fmt.Fprintf(cmd.ErrOrStderr(), "skipping row %d: %v\n", i+2, err)
						skipped++
						continue
					}
					return err
				}
				imported++
			}

			if err := st.Save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d records (%d skipped)\n", imported, skipped)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "readings", "CSV export format")

	return cmd
}
