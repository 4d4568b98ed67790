// ABOUTME: CLI command for the HTTP query API.
// ABOUTME: Serves the dashboard-facing read-only endpoints.
package main

import (
	"github.com/harperreed/tennis/internal/api"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP query API",
	Long: `Serve the read-only HTTP API used by the dashboard.

ENDPOINTS:

  GET /healthz                              Liveness check
  GET /metrics                              Prometheus metrics
  GET /api/overview                         Headline stats
  GET /api/competitions                     Competitions (?type=, ?category=)
  GET /api/competitions/top-level           No-parent competitions
  GET /api/competitions/hierarchy           Parent/child pairs
  GET /api/competitions/by-category         Counts per category
  GET /api/competitions/type-distribution   Type counts per category
  GET /api/venues                           Venues (?country=, ?complex=)
  GET /api/venues/timezones                 Timezone listing
  GET /api/venues/by-country                Venue counts per country
  GET /api/complexes/venue-counts           Venue counts per complex
  GET /api/complexes/multi-venue            Complexes with >1 venue
  GET /api/rankings                         Latest snapshot per competitor
  GET /api/rankings/top                     Top-N ranked (?n=)
  GET /api/rankings/stable                  Zero-movement snapshots
  GET /api/rankings/latest                  Points leaders, latest date (?n=)
  GET /api/countries/competitors            Competitor counts per country
  GET /api/countries/points                 Total points (?country= required)

EXAMPLES:

  tennis serve                  # Listen on :8080
  tennis serve --addr :9000     # Custom address`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := serveAddr
		if addr == "" {
			addr = cfg.Addr
		}
		server := api.New(repo, logger)
		return server.Run(addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, :8080)")
	rootCmd.AddCommand(serveCmd)
}
