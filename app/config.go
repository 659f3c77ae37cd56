package app

import (
	"github.com/spf13/cobra"

	"github.com/pgdsn-tools/pgdsn/internal/config"
)

func init() { //nolint: gochecknoinits
	configCmd.Flags().BoolVar(&asJSON, "json", false, "Dump the configuration as JSON instead of TOML")

	rootCmd.AddCommand(configCmd)
}

var (
	asJSON bool

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Dump the effective configuration with the password redacted",
		PreRun: func(_ *cobra.Command, _ []string) {
			loadConfig()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			dump := config.DumpConfig
			if asJSON {
				dump = config.DumpConfigJSON
			}

			out, err := dump(cfg)
			if err != nil {
				return err
			}

			cmd.Print(out)

			return nil
		},
	}
)
