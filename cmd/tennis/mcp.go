// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/tennis/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant
integration. The server communicates via stdin/stdout and exposes the
query catalog read-only.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "tennis": {
        "command": "tennis",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  overview                  Headline stats
  list_competitions         Competitions, with type/category filters
  top_level_competitions    Competitions without a parent
  competition_hierarchy     Parent/child pairs
  venues_by_country         Venues in a country
  complex_venue_counts      Venue counts per complex
  top_competitors           Top-N ranked competitors
  latest_rankings           Points leaders on the latest date
  total_points_by_country   Points sum for a country
  competitors_per_country   Competitor counts per country

AVAILABLE RESOURCES:

  tennis://overview     Headline stats plus current leaders
  tennis://countries    Country breakdown
  tennis://schema       Database DDL`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
