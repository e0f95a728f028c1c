// ABOUTME: MCP server setup for the macro calculator.
// ABOUTME: Wraps MCP server with the calculator's config store.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/macros/internal/config"
)

// Server wraps the MCP server with access to the stored profile and plan.
type Server struct {
	mcpServer *mcp.Server
	cfg       *config.Config
}

// NewServer creates a new MCP server backed by the given config.
func NewServer(cfg *config.Config) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "macros",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		cfg:       cfg,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
