// ABOUTME: Tests for competition storage: upserts, hierarchy, and queries.
// ABOUTME: Covers category joins, filters, distributions, and cycle rejection.
package storage

import (
	"errors"
	"testing"

	"github.com/harperreed/tennis/internal/models"
)

func TestUpsertCompetitionIdempotent(t *testing.T) {
	db := setupTestDB(t)

	mustUpsertCategory(t, db, "cat-1", "ATP")
	c := &models.Competition{
		ID: "comp-1", Name: "Wimbledon", Type: models.TypeSingles,
		Gender: models.GenderMen, CategoryID: strPtr("cat-1"),
	}
	mustUpsertCompetition(t, db, c)

	// Second upsert with a changed name must update, not duplicate.
	c.Name = "The Championships, Wimbledon"
	mustUpsertCompetition(t, db, c)

	comps, err := db.ListCompetitions()
	if err != nil {
		t.Fatalf("ListCompetitions failed: %v", err)
	}
	if len(comps) != 1 {
		t.Fatalf("Expected 1 competition, got %d", len(comps))
	}
	if comps[0].Name != "The Championships, Wimbledon" {
		t.Errorf("Name not updated: got %q", comps[0].Name)
	}
}

func TestListCompetitionsCategoryJoin(t *testing.T) {
	db := setupTestDB(t)

	mustUpsertCategory(t, db, "cat-itf", "ITF Men")
	mustUpsertCompetition(t, db, &models.Competition{
		ID: "comp-itf", Name: "ITF Croatia F1", Type: models.TypeSingles,
		Gender: models.GenderMen, CategoryID: strPtr("cat-itf"),
	})
	mustUpsertCompetition(t, db, &models.Competition{
		ID: "comp-none", Name: "Uncategorized Open", Type: models.TypeDoubles,
		Gender: models.GenderWomen,
	})

	comps, err := db.ListCompetitions()
	if err != nil {
		t.Fatalf("ListCompetitions failed: %v", err)
	}
	if len(comps) != 2 {
		t.Fatalf("Expected 2 competitions, got %d", len(comps))
	}

	byID := make(map[string]*models.CompetitionWithCategory)
	for _, c := range comps {
		byID[c.ID] = c
	}
	if got := byID["comp-itf"].CategoryName; got == nil || *got != "ITF Men" {
		t.Errorf("Expected category 'ITF Men', got %v", got)
	}
	if got := byID["comp-none"].CategoryName; got != nil {
		t.Errorf("Expected nil category for uncategorized competition, got %q", *got)
	}
}

func TestCompetitionsPerCategory(t *testing.T) {
	db := setupTestDB(t)

	mustUpsertCategory(t, db, "cat-atp", "ATP")
	mustUpsertCompetition(t, db, &models.Competition{
		ID: "c1", Name: "A", Type: models.TypeSingles, Gender: models.GenderMen, CategoryID: strPtr("cat-atp"),
	})
	mustUpsertCompetition(t, db, &models.Competition{
		ID: "c2", Name: "B", Type: models.TypeDoubles, Gender: models.GenderMen, CategoryID: strPtr("cat-atp"),
	})
	mustUpsertCompetition(t, db, &models.Competition{
		ID: "c3", Name: "C", Type: models.TypeSingles, Gender: models.GenderWomen,
	})

	counts, err := db.CompetitionsPerCategory()
	if err != nil {
		t.Fatalf("CompetitionsPerCategory failed: %v", err)
	}
	if len(counts) != 2 {
		t.Fatalf("Expected 2 buckets, got %d", len(counts))
	}

	// Descending count: ATP (2) first, the nil bucket (1) second.
	if counts[0].CategoryName == nil || *counts[0].CategoryName != "ATP" || counts[0].Competitions != 2 {
		t.Errorf("Unexpected first bucket: %+v", counts[0])
	}
	if counts[1].CategoryName != nil || counts[1].Competitions != 1 {
		t.Errorf("Expected nil bucket with 1 competition, got %+v", counts[1])
	}
}

func TestListCompetitionsByTypeCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)

	mustUpsertCompetition(t, db, &models.Competition{
		ID: "c1", Name: "Doubles Cup", Type: "Doubles", Gender: models.GenderMixed,
	})
	mustUpsertCompetition(t, db, &models.Competition{
		ID: "c2", Name: "Singles Cup", Type: models.TypeSingles, Gender: models.GenderMen,
	})

	comps, err := db.ListCompetitionsByType("doubles")
	if err != nil {
		t.Fatalf("ListCompetitionsByType failed: %v", err)
	}
	if len(comps) != 1 || comps[0].ID != "c1" {
		t.Fatalf("Expected only the doubles competition, got %d rows", len(comps))
	}
}

func TestListCompetitionsByCategoryName(t *testing.T) {
	db := setupTestDB(t)

	mustUpsertCategory(t, db, "cat-wta", "WTA")
	mustUpsertCompetition(t, db, &models.Competition{
		ID: "c1", Name: "WTA Finals", Type: models.TypeSingles, Gender: models.GenderWomen, CategoryID: strPtr("cat-wta"),
	})
	mustUpsertCompetition(t, db, &models.Competition{
		ID: "c2", Name: "No Category Open", Type: models.TypeSingles, Gender: models.GenderWomen,
	})

	comps, err := db.ListCompetitionsByCategoryName("WTA")
	if err != nil {
		t.Fatalf("ListCompetitionsByCategoryName failed: %v", err)
	}
	if len(comps) != 1 || comps[0].ID != "c1" {
		t.Fatalf("Expected 1 WTA competition, got %d", len(comps))
	}

	none, err := db.ListCompetitionsByCategoryName("Davis Cup")
	if err != nil {
		t.Fatalf("ListCompetitionsByCategoryName failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("Expected no rows for unknown category, got %d", len(none))
	}
}

func TestParentChildAndTopLevel(t *testing.T) {
	db := setupTestDB(t)

	mustUpsertCompetition(t, db, &models.Competition{
		ID: "parent", Name: "Grand Slam", Type: models.TypeSingles, Gender: models.GenderMen,
	})
	mustUpsertCompetition(t, db, &models.Competition{
		ID: "child", Name: "Qualifying", Type: models.TypeSingles, Gender: models.GenderMen,
		ParentID: strPtr("parent"),
	})

	pairs, err := db.ListParentChildCompetitions()
	if err != nil {
		t.Fatalf("ListParentChildCompetitions failed: %v", err)
	}
	if len(pairs) != 1 {
		t.Fatalf("Expected 1 pair, got %d", len(pairs))
	}
	if pairs[0].ParentID != "parent" || pairs[0].ChildID != "child" {
		t.Errorf("Unexpected pair: %+v", pairs[0])
	}

	top, err := db.ListTopLevelCompetitions()
	if err != nil {
		t.Fatalf("ListTopLevelCompetitions failed: %v", err)
	}
	if len(top) != 1 || top[0].ID != "parent" {
		t.Fatalf("Expected only the parent to be top-level, got %d rows", len(top))
	}

	// Top-level and child sets must be disjoint and cover everything.
	all, err := db.ListCompetitions()
	if err != nil {
		t.Fatalf("ListCompetitions failed: %v", err)
	}
	if len(top)+len(pairs) != len(all) {
		t.Errorf("Expected top-level + children to cover all %d competitions", len(all))
	}
}

func TestTypeDistributionPerCategory(t *testing.T) {
	db := setupTestDB(t)

	mustUpsertCategory(t, db, "cat", "ATP")
	for i, typ := range []string{models.TypeSingles, models.TypeSingles, models.TypeDoubles} {
		mustUpsertCompetition(t, db, &models.Competition{
			ID: string(rune('a' + i)), Name: string(rune('A' + i)), Type: typ,
			Gender: models.GenderMen, CategoryID: strPtr("cat"),
		})
	}

	dist, err := db.TypeDistributionPerCategory()
	if err != nil {
		t.Fatalf("TypeDistributionPerCategory failed: %v", err)
	}
	if len(dist) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(dist))
	}
	if dist[0].Type != models.TypeSingles || dist[0].Count != 2 {
		t.Errorf("Expected singles count 2 first, got %+v", dist[0])
	}
	if dist[1].Type != models.TypeDoubles || dist[1].Count != 1 {
		t.Errorf("Expected doubles count 1 second, got %+v", dist[1])
	}
}

func TestUpsertCompetitionRejectsCycle(t *testing.T) {
	db := setupTestDB(t)

	mustUpsertCompetition(t, db, &models.Competition{
		ID: "a", Name: "A", Type: models.TypeSingles, Gender: models.GenderMen,
	})
	mustUpsertCompetition(t, db, &models.Competition{
		ID: "b", Name: "B", Type: models.TypeSingles, Gender: models.GenderMen,
		ParentID: strPtr("a"),
	})

	// Making A a child of B would close the loop A -> B -> A.
	err := db.UpsertCompetition(&models.Competition{
		ID: "a", Name: "A", Type: models.TypeSingles, Gender: models.GenderMen,
		ParentID: strPtr("b"),
	})
	if !errors.Is(err, ErrParentCycle) {
		t.Fatalf("Expected ErrParentCycle, got %v", err)
	}

	// Self-reference is the degenerate cycle.
	err = db.UpsertCompetition(&models.Competition{
		ID: "a", Name: "A", Type: models.TypeSingles, Gender: models.GenderMen,
		ParentID: strPtr("a"),
	})
	if !errors.Is(err, ErrParentCycle) {
		t.Fatalf("Expected ErrParentCycle on self-reference, got %v", err)
	}
}
