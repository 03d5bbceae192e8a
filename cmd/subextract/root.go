package main

import (
	"github.com/spf13/cobra"

	"subextract/internal/config"
	"subextract/internal/logger"
)

// appContext carries the shared --config flag and lazily builds the config
// and logger for whichever subcommand runs.
type appContext struct {
	configPath *string
}

func (a *appContext) load() (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(*a.configPath)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger.New(cfg.Logging.Level), nil
}

func newRootCommand() *cobra.Command {
	var configFlag string

	app := &appContext{configPath: &configFlag}

	rootCmd := &cobra.Command{
		Use:           "subextract",
		Short:         "Extract embedded subtitle streams from video files",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newRunCommand(app))
	rootCmd.AddCommand(newScanCommand(app))
	rootCmd.AddCommand(newWatchCommand(app))
	rootCmd.AddCommand(newFormatsCommand())
	rootCmd.AddCommand(newCheckCommand(app))

	return rootCmd
}
