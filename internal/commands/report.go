package commands

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ecotrack-dev/ecotrack/internal/advice"
	"github.com/ecotrack-dev/ecotrack/internal/report"
)

func newReportCommand(opts *rootOptions) *cobra.Command {
	var chart bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print consumption totals and recommendations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, cfg, err := opts.open(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			adv := advice.NewService(decimal.NewFromFloat(cfg.Threshold))
			report.Render(cmd.OutOrStdout(), st.Totals(), adv)

			if chart {
				for _, category := range st.Dataset().Categories() {
					report.RenderChart(cmd.OutOrStdout(), st.Dataset(), category)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&chart, "chart", false, "also draw a consumption history chart per category")

	return cmd
}
