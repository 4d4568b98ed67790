// ABOUTME: CLI commands for listing venues and complexes.
// ABOUTME: Supports country/complex filters, timezones, and venue counts.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/tennis/internal/models"
	"github.com/spf13/cobra"
)

var (
	venueCountry   string
	venueComplex   string
	venueTimezones bool
)

var venuesCmd = &cobra.Command{
	Use:     "venues",
	Aliases: []string{"v"},
	Short:   "List venues",
	Long: `List venues with their city, country, and complex.

OUTPUT FORMAT:

  Each line shows: NAME  CITY, COUNTRY  COMPLEX

  Venues outside any complex show "-".

FILTERING:

  --country      country name or ISO code (e.g. Croatia or HRV)
  --complex      exact complex name
  --timezones    show venue/city/timezone instead

EXAMPLES:

  tennis venues                       # All venues
  tennis venues --country Croatia     # One country, by name
  tennis venues --country HRV         # Same, by code
  tennis venues --complex "Melbourne Park"
  tennis venues --timezones           # Timezone listing`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if venueTimezones {
			rows, err := repo.ListTimezones()
			if err != nil {
				return fmt.Errorf("failed to list timezones: %w", err)
			}
			for _, r := range rows {
				fmt.Printf("%s %s %s\n", padRight(r.VenueName, 32), padRight(r.City, 20), r.Timezone)
			}
			return nil
		}

		venues, err := fetchVenues()
		if err != nil {
			return fmt.Errorf("failed to list venues: %w", err)
		}
		if len(venues) == 0 {
			fmt.Println("No venues found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, v := range venues {
			cx := "-"
			if v.ComplexName != nil {
				cx = *v.ComplexName
			}
			fmt.Printf("%s %s %s\n",
				padRight(v.Name, 32),
				faint.Sprint(padRight(v.City+", "+v.Country, 28)),
				cx)
		}
		return nil
	},
}

func fetchVenues() ([]*models.VenueWithComplex, error) {
	switch {
	case venueCountry != "":
		return repo.ListVenuesByCountry(venueCountry)
	case venueComplex != "":
		return repo.ListVenuesByComplexName(venueComplex)
	default:
		return repo.ListVenues()
	}
}

var complexesCmd = &cobra.Command{
	Use:   "complexes",
	Short: "Venue counts per complex",
	Long: `Show how many venues each complex holds. Complexes with no venues
are included with a count of zero.

EXAMPLES:

  tennis complexes               # All complexes with venue counts
  tennis complexes --multi       # Only complexes with more than one venue`,
	RunE: func(cmd *cobra.Command, args []string) error {
		multi, _ := cmd.Flags().GetBool("multi")

		var err error
		var counts []*models.ComplexVenueCount
		if multi {
			counts, err = repo.ComplexesWithMultipleVenues()
		} else {
			counts, err = repo.VenuesPerComplex()
		}
		if err != nil {
			return fmt.Errorf("failed to count venues: %w", err)
		}
		if len(counts) == 0 {
			fmt.Println("No complexes found.")
			return nil
		}

		for _, c := range counts {
			fmt.Printf("%s %d\n", padRight(c.ComplexName, 32), c.Venues)
		}
		return nil
	},
}

func init() {
	venuesCmd.Flags().StringVarP(&venueCountry, "country", "c", "", "filter by country name or code")
	venuesCmd.Flags().StringVar(&venueComplex, "complex", "", "filter by exact complex name")
	venuesCmd.Flags().BoolVar(&venueTimezones, "timezones", false, "show timezone listing")
	complexesCmd.Flags().Bool("multi", false, "only complexes with more than one venue")

	rootCmd.AddCommand(venuesCmd)
	rootCmd.AddCommand(complexesCmd)
}
