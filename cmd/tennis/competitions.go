// ABOUTME: CLI commands for listing and exploring competitions.
// ABOUTME: Supports type/category filters, hierarchy, and distributions.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/tennis/internal/models"
	"github.com/spf13/cobra"
)

var (
	compType     string
	compCategory string
	compTopLevel bool
	compTree     bool
)

var competitionsCmd = &cobra.Command{
	Use:     "competitions",
	Aliases: []string{"comps", "c"},
	Short:   "List competitions",
	Long: `List competitions with their categories.

OUTPUT FORMAT:

  Each line shows: NAME  TYPE/GENDER  CATEGORY

  Competitions without a category show "-".

FILTERING:

  --type         singles, doubles, or mixed (case-insensitive)
  --category     exact category name (e.g. ATP, WTA, ITF Men)
  --top-level    only competitions with no parent
  --tree         parent/child pairs instead of a flat list

EXAMPLES:

  tennis competitions                      # All competitions
  tennis competitions --type doubles       # Doubles only
  tennis competitions --category "ITF Men" # One category
  tennis competitions --top-level          # Roots of the hierarchy
  tennis competitions --tree               # Parent/child pairs`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if compTree {
			return printHierarchy()
		}

		comps, err := fetchCompetitions()
		if err != nil {
			return fmt.Errorf("failed to list competitions: %w", err)
		}
		if len(comps) == 0 {
			fmt.Println("No competitions found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, c := range comps {
			category := "-"
			if c.CategoryName != nil {
				category = *c.CategoryName
			}
			fmt.Printf("%s %s %s\n",
				padRight(c.Name, 40),
				faint.Sprint(padRight(c.Type+"/"+c.Gender, 16)),
				category)
		}
		return nil
	},
}

func fetchCompetitions() ([]*models.CompetitionWithCategory, error) {
	switch {
	case compTopLevel:
		return repo.ListTopLevelCompetitions()
	case compType != "":
		return repo.ListCompetitionsByType(compType)
	case compCategory != "":
		return repo.ListCompetitionsByCategoryName(compCategory)
	default:
		return repo.ListCompetitions()
	}
}

func printHierarchy() error {
	pairs, err := repo.ListParentChildCompetitions()
	if err != nil {
		return fmt.Errorf("failed to list hierarchy: %w", err)
	}
	if len(pairs) == 0 {
		fmt.Println("No parent/child competitions found.")
		return nil
	}
	for _, p := range pairs {
		fmt.Printf("%s -> %s\n", p.ParentName, p.ChildName)
	}
	return nil
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Competition counts per category",
	Long: `Show how many competitions each category holds, including the
bucket of competitions that have no category.

EXAMPLES:

  tennis categories                # Counts per category
  tennis categories --types        # Type breakdown within each category`,
	RunE: func(cmd *cobra.Command, args []string) error {
		showTypes, _ := cmd.Flags().GetBool("types")

		if showTypes {
			rows, err := repo.TypeDistributionPerCategory()
			if err != nil {
				return fmt.Errorf("failed to compute type distribution: %w", err)
			}
			for _, r := range rows {
				name := "(none)"
				if r.CategoryName != nil {
					name = *r.CategoryName
				}
				fmt.Printf("%s %s %d\n", padRight(name, 24), padRight(r.Type, 10), r.Count)
			}
			return nil
		}

		counts, err := repo.CompetitionsPerCategory()
		if err != nil {
			return fmt.Errorf("failed to count competitions: %w", err)
		}
		for _, c := range counts {
			name := "(none)"
			if c.CategoryName != nil {
				name = *c.CategoryName
			}
			fmt.Printf("%s %d\n", padRight(name, 24), c.Competitions)
		}
		return nil
	},
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	competitionsCmd.Flags().StringVarP(&compType, "type", "t", "", "filter by type (singles, doubles, mixed)")
	competitionsCmd.Flags().StringVarP(&compCategory, "category", "c", "", "filter by exact category name")
	competitionsCmd.Flags().BoolVar(&compTopLevel, "top-level", false, "only competitions without a parent")
	competitionsCmd.Flags().BoolVar(&compTree, "tree", false, "show parent/child pairs")
	categoriesCmd.Flags().Bool("types", false, "break counts down by competition type")

	rootCmd.AddCommand(competitionsCmd)
	rootCmd.AddCommand(categoriesCmd)
}
