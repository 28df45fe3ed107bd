package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewServer creates a new fred-mcp MCP server.
func NewServer(version string) *server.MCPServer {
	return server.NewMCPServer(
		"fred-mcp-server",
		version,
		server.WithToolCapabilities(false),
	)
}

// Serve starts the MCP server on stdio.
func Serve(s *server.MCPServer) error {
	return server.ServeStdio(s)
}
