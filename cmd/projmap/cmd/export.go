package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chartops/projmap"
	"github.com/chartops/projmap/cmd/projmap/app"
	"github.com/chartops/projmap/pkg/export"
	"github.com/chartops/projmap/pkg/logging"
)

// exportCmd runs one snapshot export.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the reconciled project inventory",
	Long: `Export signs in with a personal access token, fetches the REST and
portal project collections, reconciles them into one enriched record
set, and writes it to the output file.

The run aborts without writing output if the two collections disagree:
a project missing from the REST collection, an unknown owner, or a
parent chain that never reaches a top-level project.`,
	RunE: runExport,
}

func init() {
	flags := exportCmd.Flags()

	flags.StringP("output", "o", "", "output file path (default output/projects.json)")
	flags.StringP("format", "f", "", "output format: json or yaml (default json)")
	flags.Bool("bare", false, "write the bare record list without the metadata envelope")

	for _, name := range []string{"output", "format", "bare"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	config, err := app.LoadConfig()
	if err != nil {
		return err
	}

	logger := app.NewLogger(config)
	logging.SetDefault(logger)

	format, err := export.ParseFormat(config.Format)
	if err != nil {
		logger.Error().Err(err).Msg("Invalid output format")
		return err
	}

	opts := []projmap.Option{
		projmap.WithServer(config.Server),
		projmap.WithSite(config.Site),
		projmap.WithToken(config.TokenName, config.TokenValue),
		projmap.WithOutputPath(config.Output),
		projmap.WithFormat(format),
		projmap.WithLogger(&logger),
	}
	if config.APIVersion != "" {
		opts = append(opts, projmap.WithAPIVersion(config.APIVersion))
	}
	if config.Bare {
		opts = append(opts, projmap.WithBare())
	}

	pipeline, err := projmap.New(opts...)
	if err != nil {
		logger.Error().Err(err).Msg("Invalid configuration")
		return err
	}

	result, err := pipeline.Run(cmd.Context())
	if err != nil {
		logger.Error().Err(err).Msg("Export failed")
		return err
	}

	logger.Info().
		Int("projects", result.Projects).
		Int("top_level", result.TopLevel).
		Int("max_level", result.MaxLevel).
		Str("output", config.Output).
		Msg("Done")

	return nil
}
