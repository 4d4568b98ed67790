// ABOUTME: MCP server setup for the tennis event store.
// ABOUTME: Wraps MCP server with read-only query catalog access.
package mcp

import (
	"context"

	"github.com/harperreed/tennis/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with query catalog access. All tools are
// read-only; data gets into the store through sync, not through MCP.
type Server struct {
	mcpServer *mcp.Server
	queries   storage.Queries
}

// NewServer creates a new MCP server over the given query catalog.
func NewServer(queries storage.Queries) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "tennis",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		queries:   queries,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
