// ABOUTME: CLI command for syncing the SportRadar feeds.
// ABOUTME: Runs the full ETL and prints a per-table report.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/tennis/internal/sportradar"
	"github.com/harperreed/tennis/internal/sync"
	"github.com/spf13/cobra"
)

var syncNoCache bool

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync data from the SportRadar API",
	Long: `Fetch the competitions, complexes, and doubles rankings feeds from the
SportRadar API and load them into the local database.

The sync is idempotent: competitions, venues, and competitors are
upserted by ID, while ranking snapshots are appended so history is
preserved across runs.

API responses are cached locally (default 60 minutes) so repeated syncs
don't burn through the trial API quota. Use --no-cache to force fresh
fetches.

REQUIREMENTS:

  TENNIS_API_KEY must be set (or api_key in the config file).

EXAMPLES:

  tennis sync              # Sync all feeds, using cached responses
  tennis sync --no-cache   # Force fresh fetches from the API`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.APIKey == "" {
			return fmt.Errorf("no API key configured (set TENNIS_API_KEY)")
		}

		opts := []sportradar.Option{
			sportradar.WithBaseURL(cfg.APIBaseURL),
			sportradar.WithLogger(logger),
		}
		if !syncNoCache {
			cacheDir, err := cfg.ResolveCacheDir()
			if err != nil {
				return err
			}
			cache, err := sportradar.OpenCache(cacheDir, time.Duration(cfg.CacheTTLMinutes)*time.Minute)
			if err != nil {
				return fmt.Errorf("failed to open cache: %w", err)
			}
			defer cache.Close()
			opts = append(opts, sportradar.WithCache(cache))
		}

		client := sportradar.NewClient(cfg.APIKey, opts...)
		syncer := sync.New(client, repo, logger)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		report, err := syncer.Run(ctx)
		if err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}

		color.Green("✓ Sync completed in %s", report.Duration.Round(time.Millisecond))
		fmt.Printf("  categories:   %d\n", report.Categories)
		fmt.Printf("  competitions: %d\n", report.Competitions)
		fmt.Printf("  complexes:    %d\n", report.Complexes)
		fmt.Printf("  venues:       %d\n", report.Venues)
		fmt.Printf("  competitors:  %d\n", report.Competitors)
		fmt.Printf("  rankings:     %d\n", report.Rankings)
		if report.Skipped > 0 {
			color.Yellow("  skipped:      %d", report.Skipped)
		}
		for _, e := range report.Errors {
			color.Red("  error: %s", e)
		}

		return nil
	},
}

func init() {
	syncCmd.Flags().BoolVar(&syncNoCache, "no-cache", false, "bypass the API response cache")
	rootCmd.AddCommand(syncCmd)
}
