// Package cmd implements the projmap command tree.
package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "projmap",
	Short: "Tableau Server project inventory exporter",
	Long: `Projmap exports a denormalized, analytics-ready inventory of the
projects on a Tableau Server site.

It joins the documented REST API project collection (authoritative for
content permissions) with the internal portal API collection
(authoritative for hierarchy and ownership), computes each project's
depth and top-level ancestor, and writes the enriched record set to a
JSON or YAML file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with the given context and version info.
func Execute(ctx context.Context, version, commit, date string) error {
	Version = version
	Commit = commit
	Date = date

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	flags := rootCmd.PersistentFlags()

	flags.StringP("server", "s", "", "Tableau Server URL (env TABLEAU_SERVER)")
	flags.StringP("site", "t", "", "site content URL; empty for the default site (env TABLEAU_SITE)")
	flags.StringP("token-name", "n", "", "personal access token name (env TABLEAU_PAT_NAME)")
	flags.StringP("token-value", "v", "", "personal access token value (env TABLEAU_PAT_VALUE)")
	flags.String("api-version", "", "REST API version override")
	flags.String("config", "", "config file (default ~/.projmap.yaml)")
	flags.Bool("verbose", false, "enable debug logging")
	flags.BoolP("quiet", "q", false, "only log warnings and errors")
	flags.String("log-level", "", "explicit log level (trace, debug, info, warn, error)")

	// Bind flags into viper so flag > env > .env > config file > default
	// precedence holds.
	for _, name := range []string{
		"server", "site", "token-name", "token-value", "api-version",
		"config", "verbose", "quiet", "log-level",
	} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}
}
