// ABOUTME: CLI command for the dashboard headline stats.
// ABOUTME: Prints totals for competitors, countries, and highest points.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Headline stats",
	Long: `Show the dashboard headline numbers: total competitors, countries
represented, and the highest points on record.

EXAMPLES:

  tennis overview`,
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := repo.Overview()
		if err != nil {
			return fmt.Errorf("failed to compute overview: %w", err)
		}

		bold := color.New(color.Bold)
		fmt.Printf("%s %d\n", bold.Sprint(padRight("Competitors:", 16)), o.TotalCompetitors)
		fmt.Printf("%s %d\n", bold.Sprint(padRight("Countries:", 16)), o.Countries)
		fmt.Printf("%s %d\n", bold.Sprint(padRight("Highest points:", 16)), o.HighestPoints)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(overviewCmd)
}
