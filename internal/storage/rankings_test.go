// ABOUTME: Tests for competitor and ranking storage.
// ABOUTME: Covers latest-snapshot selection, top-N, stability, and rollups.
package storage

import (
	"testing"

	"github.com/harperreed/tennis/internal/models"
)

func seedCompetitors(t *testing.T, db *DB) {
	t.Helper()

	mustUpsertCompetitor(t, db, &models.Competitor{
		ID: "p-1", Name: "Mate Pavic", Country: "Croatia", CountryCode: "HRV", Abbreviation: "PAV",
	})
	mustUpsertCompetitor(t, db, &models.Competitor{
		ID: "p-2", Name: "Nikola Mektic", Country: "Croatia", CountryCode: "HRV", Abbreviation: "MEK",
	})
	mustUpsertCompetitor(t, db, &models.Competitor{
		ID: "p-3", Name: "Wesley Koolhof", Country: "Netherlands", CountryCode: "NLD", Abbreviation: "KOO",
	})

	// Two dated snapshots for p-1: the later one is the latest.
	mustInsertRanking(t, db, &models.Ranking{
		Rank: 3, Movement: 1, Points: 6000, CompetitionsPlayed: 20,
		RankingDate: datePtr(t, "2024-06-03"), CompetitorID: strPtr("p-1"),
	})
	mustInsertRanking(t, db, &models.Ranking{
		Rank: 1, Movement: 2, Points: 7000, CompetitionsPlayed: 21,
		RankingDate: datePtr(t, "2024-06-10"), CompetitorID: strPtr("p-1"),
	})

	mustInsertRanking(t, db, &models.Ranking{
		Rank: 2, Movement: 0, Points: 6500, CompetitionsPlayed: 22,
		RankingDate: datePtr(t, "2024-06-10"), CompetitorID: strPtr("p-2"),
	})
	mustInsertRanking(t, db, &models.Ranking{
		Rank: 8, Movement: 0, Points: 4000, CompetitionsPlayed: 19,
		RankingDate: datePtr(t, "2024-06-03"), CompetitorID: strPtr("p-3"),
	})
}

func TestInsertRankingAssignsSurrogateKey(t *testing.T) {
	db := setupTestDB(t)

	mustUpsertCompetitor(t, db, &models.Competitor{ID: "p-1", Name: "A", Country: "X", CountryCode: "XXX"})

	r1 := &models.Ranking{Rank: 1, Points: 100, RankingDate: datePtr(t, "2024-01-01"), CompetitorID: strPtr("p-1")}
	r2 := &models.Ranking{Rank: 1, Points: 100, RankingDate: datePtr(t, "2024-01-01"), CompetitorID: strPtr("p-1")}
	mustInsertRanking(t, db, r1)
	mustInsertRanking(t, db, r2)

	if r1.RankID == 0 || r2.RankID == 0 {
		t.Fatalf("Expected assigned rank IDs, got %d and %d", r1.RankID, r2.RankID)
	}
	if r1.RankID == r2.RankID {
		t.Errorf("Expected distinct surrogate keys, both are %d", r1.RankID)
	}
}

func TestListCompetitorRanksUsesLatestSnapshot(t *testing.T) {
	db := setupTestDB(t)
	seedCompetitors(t, db)

	ranks, err := db.ListCompetitorRanks(0)
	if err != nil {
		t.Fatalf("ListCompetitorRanks failed: %v", err)
	}
	if len(ranks) != 3 {
		t.Fatalf("Expected 3 competitors, got %d", len(ranks))
	}

	// p-1's latest snapshot (rank 1) must win over the older rank 3.
	if ranks[0].ID != "p-1" {
		t.Fatalf("Expected p-1 first, got %s", ranks[0].ID)
	}
	if ranks[0].Rank == nil || *ranks[0].Rank != 1 {
		t.Errorf("Expected latest rank 1, got %v", ranks[0].Rank)
	}
	if ranks[0].Points == nil || *ranks[0].Points != 7000 {
		t.Errorf("Expected latest points 7000, got %v", ranks[0].Points)
	}
}

func TestListCompetitorRanksUnrankedSortLast(t *testing.T) {
	db := setupTestDB(t)
	seedCompetitors(t, db)

	mustUpsertCompetitor(t, db, &models.Competitor{
		ID: "p-new", Name: "Aaron Newcomer", Country: "USA", CountryCode: "USA",
	})

	ranks, err := db.ListCompetitorRanks(0)
	if err != nil {
		t.Fatalf("ListCompetitorRanks failed: %v", err)
	}
	if len(ranks) != 4 {
		t.Fatalf("Expected 4 competitors, got %d", len(ranks))
	}

	last := ranks[len(ranks)-1]
	if last.ID != "p-new" {
		t.Errorf("Expected unranked competitor last, got %s", last.ID)
	}
	if last.Rank != nil {
		t.Errorf("Expected nil rank for unranked competitor, got %d", *last.Rank)
	}
}

func TestTopCompetitorsBounded(t *testing.T) {
	db := setupTestDB(t)
	seedCompetitors(t, db)

	top, err := db.TopCompetitors(5)
	if err != nil {
		t.Fatalf("TopCompetitors failed: %v", err)
	}
	if len(top) > 5 {
		t.Fatalf("Expected at most 5 rows, got %d", len(top))
	}
	// p-3's latest rank is 8; it must not appear.
	for _, r := range top {
		if r.ID == "p-3" {
			t.Errorf("Competitor ranked 8 must not appear in top 5")
		}
		if r.Rank == nil || *r.Rank > 5 {
			t.Errorf("Rank out of bounds: %+v", r)
		}
	}
	if len(top) != 2 {
		t.Errorf("Expected p-1 and p-2, got %d rows", len(top))
	}
}

func TestStableCompetitors(t *testing.T) {
	db := setupTestDB(t)
	seedCompetitors(t, db)

	stable, err := db.StableCompetitors()
	if err != nil {
		t.Fatalf("StableCompetitors failed: %v", err)
	}

	// p-2 and p-3 have zero movement; p-1 moved in both snapshots.
	ids := make(map[string]bool)
	for _, r := range stable {
		ids[r.ID] = true
		if r.Movement == nil || *r.Movement != 0 {
			t.Errorf("Non-zero movement in stable set: %+v", r)
		}
	}
	if ids["p-1"] {
		t.Errorf("p-1 moved and must not be stable")
	}
	if !ids["p-2"] || !ids["p-3"] {
		t.Errorf("Expected p-2 and p-3 stable, got %v", ids)
	}
}

func TestTotalPointsByCountry(t *testing.T) {
	db := setupTestDB(t)
	seedCompetitors(t, db)

	// Croatia: p-1 (6000 + 7000) + p-2 (6500), all snapshots.
	total, err := db.TotalPointsByCountry("Croatia")
	if err != nil {
		t.Fatalf("TotalPointsByCountry failed: %v", err)
	}
	if total != 19500 {
		t.Errorf("Expected 19500 points for Croatia, got %d", total)
	}

	// Matching by code must agree.
	byCode, err := db.TotalPointsByCountry("HRV")
	if err != nil {
		t.Fatalf("TotalPointsByCountry failed: %v", err)
	}
	if byCode != total {
		t.Errorf("Code and name lookups disagree: %d vs %d", byCode, total)
	}

	// Unknown country sums to zero, not an error.
	zero, err := db.TotalPointsByCountry("Atlantis")
	if err != nil {
		t.Fatalf("TotalPointsByCountry failed: %v", err)
	}
	if zero != 0 {
		t.Errorf("Expected 0 for unknown country, got %d", zero)
	}
}

func TestCompetitorsPerCountry(t *testing.T) {
	db := setupTestDB(t)
	seedCompetitors(t, db)

	counts, err := db.CompetitorsPerCountry()
	if err != nil {
		t.Fatalf("CompetitorsPerCountry failed: %v", err)
	}
	if len(counts) != 2 {
		t.Fatalf("Expected 2 countries, got %d", len(counts))
	}
	if counts[0].Country != "Croatia" || counts[0].Competitors != 2 {
		t.Errorf("Expected Croatia with 2 competitors first, got %+v", counts[0])
	}
	if counts[0].AvgPoints == nil {
		t.Errorf("Expected an average for Croatia")
	}
}

func TestTopPointsLatest(t *testing.T) {
	db := setupTestDB(t)
	seedCompetitors(t, db)

	rows, err := db.TopPointsLatest(10)
	if err != nil {
		t.Fatalf("TopPointsLatest failed: %v", err)
	}

	// Only the 2024-06-10 snapshots qualify: p-1 (7000) and p-2 (6500).
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows on the latest date, got %d", len(rows))
	}
	if rows[0].ID != "p-1" || rows[1].ID != "p-2" {
		t.Errorf("Expected points-descending order p-1, p-2; got %s, %s", rows[0].ID, rows[1].ID)
	}
	for _, r := range rows {
		if r.RankingDate == nil || r.RankingDate.Format("2006-01-02") != "2024-06-10" {
			t.Errorf("Row not on the latest date: %+v", r)
		}
	}
}

func TestTopPointsLatestEmptyWithoutDates(t *testing.T) {
	db := setupTestDB(t)

	mustUpsertCompetitor(t, db, &models.Competitor{ID: "p-1", Name: "A", Country: "X", CountryCode: "XXX"})
	mustInsertRanking(t, db, &models.Ranking{Rank: 1, Points: 100, CompetitorID: strPtr("p-1")})

	rows, err := db.TopPointsLatest(10)
	if err != nil {
		t.Fatalf("TopPointsLatest failed: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("Expected no rows when no snapshot has a date, got %d", len(rows))
	}
}

func TestOverview(t *testing.T) {
	db := setupTestDB(t)

	// Empty store: all zeros, no error.
	o, err := db.Overview()
	if err != nil {
		t.Fatalf("Overview failed: %v", err)
	}
	if o.TotalCompetitors != 0 || o.Countries != 0 || o.HighestPoints != 0 {
		t.Errorf("Expected zeroed overview, got %+v", o)
	}

	seedCompetitors(t, db)

	o, err = db.Overview()
	if err != nil {
		t.Fatalf("Overview failed: %v", err)
	}
	if o.TotalCompetitors != 3 {
		t.Errorf("Expected 3 competitors, got %d", o.TotalCompetitors)
	}
	if o.Countries != 2 {
		t.Errorf("Expected 2 countries, got %d", o.Countries)
	}
	if o.HighestPoints != 7000 {
		t.Errorf("Expected highest points 7000, got %d", o.HighestPoints)
	}
}
