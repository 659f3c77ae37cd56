// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/pgdsn-tools/pgdsn/internal/config"
	"github.com/pgdsn-tools/pgdsn/internal/logger"
)

var (
	cfg        config.Config
	configPath string // Path to the configuration directory

	rootCmd = &cobra.Command{
		Use:   "pgdsn",
		Short: "pgdsn builds PDO-style PostgreSQL connection descriptors",
		Long: `pgdsn builds PDO-style PostgreSQL connection descriptors from a TOML
configuration and can open a session against the configured server to
verify a descriptor end to end.`,
		Args: cobra.OnlyValidArgs,
	}
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the configuration directory")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the configuration and initializes the global logger.
// Used by the subcommand PreRun hooks.
func loadConfig() {
	var err error

	if cfg, err = config.ReadConfig(configPath); err != nil {
		panic(err)
	}

	if err = logger.Init(cfg.Log); err != nil {
		panic(err)
	}
}
