package cmd

import "github.com/spf13/cobra"

func init() {
	rootCmd.AddCommand(mcpCmd)
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server for AI agent integration",
	Long: `MCP server for AI agent integration.

fred-mcp includes a built-in Model Context Protocol (MCP) server that lets AI
agents query FRED economic data programmatically.

SETUP

  Claude Code (recommended):

    claude mcp add fred -e FRED_API_KEY=<your-key> -- fred-mcp mcp serve

  Manual .mcp.json (Claude Code, Windsurf, etc.):

    {
      "mcpServers": {
        "fred": {
          "command": "fred-mcp",
          "args": ["mcp", "serve"],
          "env": { "FRED_API_KEY": "<your-key>" }
        }
      }
    }

AVAILABLE TOOLS

  search_series        Search series by text query
  get_series_info      Metadata for one series
  get_series_data      Observations for one series, optional JSON file export
  get_category_details Details for a category
  get_category_children Child categories of a category
  get_category_series  Series in a category
  get_releases         All releases of economic data
  get_release_series   Series in a release
  get_sources          All sources of economic data
  get_source           Details for one source
  search_related_tags  Tags related to a set of tags

All tools return Markdown text. Results are paginated with limit/offset
parameters where the FRED API supports it.`,
}
