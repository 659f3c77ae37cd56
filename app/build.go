package app

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/pgdsn-tools/pgdsn/internal/db"
	"github.com/pgdsn-tools/pgdsn/internal/db/dsn"
)

func init() { //nolint: gochecknoinits
	buildCmd.Flags().BoolVar(&showAttrs, "attrs", false, "Also print the driver session attributes")

	rootCmd.AddCommand(buildCmd)
}

var (
	showAttrs bool

	buildCmd = &cobra.Command{
		Use:   "build",
		Short: "Print the connection descriptor for the configured database",
		PreRun: func(_ *cobra.Command, _ []string) {
			loadConfig()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			descriptor, err := dsn.Build(&cfg.Connection)
			if err != nil {
				return err
			}

			cmd.Println(descriptor)

			if showAttrs {
				attrs := db.DriverOptions()

				names := make([]string, 0, len(attrs))
				for name := range attrs {
					names = append(names, name)
				}

				sort.Strings(names)

				for _, name := range names {
					cmd.Printf("%s=%s\n", name, attrs[name])
				}
			}

			return nil
		},
	}
)
