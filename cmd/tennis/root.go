// ABOUTME: Root Cobra command for tennis CLI.
// ABOUTME: Loads config and opens storage via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/tennis/internal/config"
	"github.com/harperreed/tennis/internal/storage"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	repo   storage.Repository
	logger *logrus.Logger

	dbPathFlag string
)

var rootCmd = &cobra.Command{
	Use:   "tennis",
	Short: "Tennis competition and ranking explorer",
	Long: `Tennis is a CLI for exploring tennis competitions, venues, and
doubles rankings sourced from the SportRadar API.

WHAT IT STORES:

  Competitions   tournaments with category, type, gender, and parent links
  Venues         physical locations, grouped into complexes
  Rankings       dated doubles ranking snapshots per competitor

QUICK START:

  $ export TENNIS_API_KEY=your-key
  $ tennis sync                         # Pull all three feeds
  $ tennis overview                     # Headline stats
  $ tennis competitions --type doubles  # Filter competitions
  $ tennis rankings --top 5             # Current top-ranked competitors

SERVING:

  $ tennis serve                # HTTP API for the dashboard (default :8080)
  $ tennis mcp                  # MCP server for AI assistant integration

DATA STORAGE:

  Data lives in a SQLite database at ~/.local/share/tennis/tennis.db.
  Override with --db, TENNIS_DB_PATH, or a config file at
  ~/.config/tennis/config.yaml.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if dbPathFlag != "" {
			cfg.DBPath = dbPathFlag
		}
		logger = cfg.NewLogger()

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPathFlag, "db", "", "database path (default: XDG data dir)")
}
