// ABOUTME: CLI commands for listing doubles rankings.
// ABOUTME: Supports top-N, stable movement, and latest-week views.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/tennis/internal/models"
	"github.com/spf13/cobra"
)

var (
	rankTop    int
	rankStable bool
	rankLatest bool
	rankLimit  int
)

var rankingsCmd = &cobra.Command{
	Use:     "rankings",
	Aliases: []string{"r"},
	Short:   "List doubles rankings",
	Long: `List competitors with their latest ranking snapshot.

OUTPUT FORMAT:

  Each line shows: RANK  NAME  COUNTRY  POINTS  MOVEMENT

  Competitors with no ranking rows show "-" in the ranking columns and
  sort to the bottom.

VIEWS:

  --top N     competitors whose latest rank is within the top N
  --stable    ranking snapshots with zero movement
  --latest    highest-points competitors on the most recent ranking date
  --limit N   cap the default listing (default 50)

EXAMPLES:

  tennis rankings               # Latest snapshot per competitor
  tennis rankings --top 5       # Current top 5
  tennis rankings --stable      # Zero-movement snapshots
  tennis rankings --latest      # Points leaders, most recent week`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var err error
		var ranks []*models.CompetitorRank

		switch {
		case rankTop > 0:
			ranks, err = repo.TopCompetitors(rankTop)
		case rankStable:
			ranks, err = repo.StableCompetitors()
		case rankLatest:
			ranks, err = repo.TopPointsLatest(rankLimit)
		default:
			ranks, err = repo.ListCompetitorRanks(rankLimit)
		}
		if err != nil {
			return fmt.Errorf("failed to list rankings: %w", err)
		}
		if len(ranks) == 0 {
			fmt.Println("No rankings found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, r := range ranks {
			rank, points, movement := "-", "-", "-"
			if r.Rank != nil {
				rank = fmt.Sprintf("%d", *r.Rank)
			}
			if r.Points != nil {
				points = fmt.Sprintf("%d", *r.Points)
			}
			if r.Movement != nil {
				movement = formatMovement(*r.Movement)
			}
			fmt.Printf("%s %s %s %s %s\n",
				padRight(rank, 4),
				padRight(r.Name, 36),
				faint.Sprint(padRight(r.Country, 20)),
				padRight(points, 6),
				movement)
		}
		return nil
	},
}

// formatMovement renders movement with an explicit sign, 0 as "=".
func formatMovement(m int) string {
	switch {
	case m > 0:
		return color.GreenString("+%d", m)
	case m < 0:
		return color.RedString("%d", m)
	default:
		return "="
	}
}

var countriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "Country-level competitor stats",
	Long: `Show competitor counts and average points per country.

With --points, show the total ranking points for one country instead.

EXAMPLES:

  tennis countries                     # Counts and averages per country
  tennis countries --points Croatia    # Total points for one country`,
	RunE: func(cmd *cobra.Command, args []string) error {
		country, _ := cmd.Flags().GetString("points")
		if country != "" {
			total, err := repo.TotalPointsByCountry(country)
			if err != nil {
				return fmt.Errorf("failed to sum points: %w", err)
			}
			fmt.Printf("%s: %d points\n", country, total)
			return nil
		}

		rows, err := repo.CompetitorsPerCountry()
		if err != nil {
			return fmt.Errorf("failed to count competitors: %w", err)
		}
		if len(rows) == 0 {
			fmt.Println("No competitors found.")
			return nil
		}
		for _, r := range rows {
			avg := "-"
			if r.AvgPoints != nil {
				avg = fmt.Sprintf("%.1f", *r.AvgPoints)
			}
			fmt.Printf("%s %s %s\n", padRight(r.Country, 24), padRight(fmt.Sprintf("%d", r.Competitors), 5), avg)
		}
		return nil
	},
}

func init() {
	rankingsCmd.Flags().IntVar(&rankTop, "top", 0, "competitors within the top N ranks")
	rankingsCmd.Flags().BoolVar(&rankStable, "stable", false, "competitors that never moved")
	rankingsCmd.Flags().BoolVar(&rankLatest, "latest", false, "points leaders on the latest ranking date")
	rankingsCmd.Flags().IntVarP(&rankLimit, "limit", "n", 50, "max number of results")
	countriesCmd.Flags().String("points", "", "total points for one country (name or code)")

	rootCmd.AddCommand(rankingsCmd)
	rootCmd.AddCommand(countriesCmd)
}
