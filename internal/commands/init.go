package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ecotrack-dev/ecotrack/internal/config"
)

func newInitCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(opts.configPath); err == nil {
				return fmt.Errorf("%s already exists", opts.configPath)
			}

			if err := config.Save(opts.configPath, config.Default()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", opts.configPath)
			return nil
		},
	}
}
