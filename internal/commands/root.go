package commands

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ecotrack-dev/ecotrack/internal/advice"
	"github.com/ecotrack-dev/ecotrack/internal/buildinfo"
	"github.com/ecotrack-dev/ecotrack/internal/config"
	"github.com/ecotrack-dev/ecotrack/internal/store"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	dataPath   string
	configPath string
}

// NewRootCommand creates the root CLI command with all subcommands
// registered. Running it without a subcommand starts the interactive menu.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "ecotrack",
		Short:   "Household eco-consumption tracker",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		Args:    cobra.NoArgs,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, cfg, err := opts.open(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			adv := advice.NewService(decimal.NewFromFloat(cfg.Threshold))
			return NewSession(st, adv, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.dataPath, "data", "", "path to the consumption data file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "ecotrack.yaml", "path to the config file")

	rootCmd.AddCommand(
		newInitCommand(opts),
		newLogCommand(opts),
		newReportCommand(opts),
		newImportCommand(opts),
	)

	return rootCmd
}

// open loads the config, creates the store, loads persisted data, and
// prints the load status line.
func (o *rootOptions) open(out io.Writer) (*store.Store, *config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, nil, err
	}

	path := o.dataPath
	if path == "" {
		path = cfg.DataPath
	}

	st := store.New(path)
	printLoadOutcome(out, st.Load())
	return st, cfg, nil
}

func printLoadOutcome(w io.Writer, outcome store.LoadOutcome) {
	switch outcome {
	case store.OutcomeLoaded:
		fmt.Fprintln(w, "Data loaded successfully.")
	case store.OutcomeFreshStart:
		fmt.Fprintln(w, "No existing data found, starting with an empty dataset.")
	case store.OutcomeReset:
		fmt.Fprintln(w, "Error decoding data file, starting with an empty dataset.")
	}
}
