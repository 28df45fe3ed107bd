package cmd

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fritzprix/fred-mcp/internal/jsonout"
	fredmcp "github.com/fritzprix/fred-mcp/internal/mcp"
)

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start MCP server on stdio",
	Args:  cobra.NoArgs,
	RunE:  runMCPServe,
}

func runMCPServe(cmd *cobra.Command, args []string) error {
	// Suppress all human progress messages — stdout is used by MCP protocol
	jsonout.SetMsgOut(io.Discard)

	logger := newLogger()
	defer func() { _ = logger.Sync() }()
	logger.Info("starting MCP server", zap.String("version", Version))

	s := fredmcp.NewServer(Version)
	registerMCPTools(s)
	return fredmcp.Serve(s)
}
