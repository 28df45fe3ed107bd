package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fritzprix/fred-mcp/internal/exitcode"
	"github.com/fritzprix/fred-mcp/internal/jsonout"
)

// Version info, injected at build time via SetVersionInfo.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var (
	apiKeyFlag string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "fred-mcp",
	Short: "FRED economic data tools for AI agents",
	Long: `fred-mcp exposes the Federal Reserve Economic Data (FRED) web API as a set
of MCP tools and as plain CLI commands: search data series, fetch observations,
and browse categories, releases, sources and tags.

An API key is required for all data commands. Get a free key at
https://fred.stlouisfed.org/docs/api/api_key.html and export it:

  export FRED_API_KEY=abcdef...`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonout.Enabled, "json", false, "machine-readable JSON output")
	rootCmd.PersistentFlags().StringVar(&apiKeyFlag, "api-key", "", "FRED API key (overrides FRED_API_KEY)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
}

// SetVersionInfo records build-time version metadata on the root command.
func SetVersionInfo(version, commit, date string) {
	Version, Commit, Date = version, commit, date
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
}

// RootCommand exposes the root command for tests.
func RootCommand() *cobra.Command {
	return rootCmd
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		code, exit := exitcode.Classify(err)
		if jsonout.Enabled {
			jsonout.WriteError(code, err.Error(), exit)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(exit)
	}
}
