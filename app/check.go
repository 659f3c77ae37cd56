package app

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pgdsn-tools/pgdsn/internal/db"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Open a session against the configured database and report",
	PreRun: func(_ *cobra.Command, _ []string) {
		loadConfig()
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		gdb, err := db.Open(&cfg)
		if err != nil {
			return err
		}

		sqlDB, err := gdb.DB()
		if err != nil {
			return err //nolint: wrapcheck
		}

		defer func() { _ = sqlDB.Close() }()

		if err = sqlDB.Ping(); err != nil {
			return err //nolint: wrapcheck
		}

		log.Info().Str("database", cfg.Connection.Database).Msg("connection check succeeded")

		return nil
	},
}
