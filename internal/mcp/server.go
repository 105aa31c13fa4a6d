// ABOUTME: MCP server setup for the calorie tracker.
// ABOUTME: Wraps the MCP server with an aggregator over the configured store.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sayalik/caltrack/internal/aggregate"
)

// Server wraps the MCP server with tracker access.
type Server struct {
	mcpServer *mcp.Server
	agg       *aggregate.Aggregator
}

// NewServer creates a new MCP server over the given aggregator.
func NewServer(agg *aggregate.Aggregator) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "caltrack",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		agg:       agg,
	}

	s.registerTools()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
