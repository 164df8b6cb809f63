package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ecotrack-dev/ecotrack/internal/model"
)

func newLogCommand(opts *rootOptions) *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "log <category> <amount>",
		Short: "Record a consumption measurement",
		Long:  "Record a consumption measurement for energy (kWh), water (liters), or waste (kg).",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, amountStr := args[0], args[1]

			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("invalid amount %q: expected a numeric value", amountStr)
			}

			date := time.Now()
			if dateStr != "" {
				date, err = time.Parse(model.DateFormat, dateStr)
				if err != nil {
					return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", dateStr)
				}
			}

			st, _, err := opts.open(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			if _, err := st.RecordOn(date, category, amount); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s consumption logged: %s\n",
				model.Category(category).Label(), amount.String())

			return st.Save()
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "record date as YYYY-MM-DD (default: today)")

	return cmd
}
