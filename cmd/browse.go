package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/fritzprix/fred-mcp/internal/jsonout"
	"github.com/fritzprix/fred-mcp/internal/tui"
)

var errBrowseJSON = errors.New("browse is interactive and cannot be used with --json")

func init() {
	rootCmd.AddCommand(browseCmd)
}

var browseCmd = &cobra.Command{
	Use:     "browse",
	Short:   "Interactive series browser",
	Example: `  fred-mcp browse`,
	Args:    cobra.NoArgs,
	RunE:    runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if jsonout.Enabled {
		return errBrowseJSON
	}

	client, _, err := newFredClient()
	if err != nil {
		return err
	}
	return tui.Run(client)
}
