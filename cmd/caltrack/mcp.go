// ABOUTME: CLI command starting the MCP server over stdio.
// ABOUTME: Exposes logging and summary tools to AI assistants.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sayalik/caltrack/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start a Model Context Protocol server over stdio, exposing food,
exercise, and weight logging plus summaries to AI assistants.

Add to an MCP client config:
  {"command": "caltrack", "args": ["mcp"]}`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(tracker)
		if err != nil {
			return fmt.Errorf("failed to create MCP server: %w", err)
		}
		return server.Serve(cmd.Context())
	},
}
