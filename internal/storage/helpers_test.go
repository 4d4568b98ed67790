// ABOUTME: Shared test helpers for the storage package.
// ABOUTME: Opens a throwaway database and seeds common fixtures.
package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/harperreed/tennis/internal/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "tennis-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(tmpDir) })

	dbPath := filepath.Join(tmpDir, "tennis.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func strPtr(s string) *string {
	return &s
}

func datePtr(t *testing.T, s string) *time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("Failed to parse date %q: %v", s, err)
	}
	return &d
}

func mustUpsertCategory(t *testing.T, db *DB, id, name string) {
	t.Helper()
	if err := db.UpsertCategory(&models.Category{ID: id, Name: name}); err != nil {
		t.Fatalf("UpsertCategory(%s) failed: %v", id, err)
	}
}

func mustUpsertCompetition(t *testing.T, db *DB, c *models.Competition) {
	t.Helper()
	if err := db.UpsertCompetition(c); err != nil {
		t.Fatalf("UpsertCompetition(%s) failed: %v", c.ID, err)
	}
}

func mustUpsertComplex(t *testing.T, db *DB, id, name string) {
	t.Helper()
	if err := db.UpsertComplex(&models.Complex{ID: id, Name: name}); err != nil {
		t.Fatalf("UpsertComplex(%s) failed: %v", id, err)
	}
}

func mustUpsertVenue(t *testing.T, db *DB, v *models.Venue) {
	t.Helper()
	if err := db.UpsertVenue(v); err != nil {
		t.Fatalf("UpsertVenue(%s) failed: %v", v.ID, err)
	}
}

func mustUpsertCompetitor(t *testing.T, db *DB, c *models.Competitor) {
	t.Helper()
	if err := db.UpsertCompetitor(c); err != nil {
		t.Fatalf("UpsertCompetitor(%s) failed: %v", c.ID, err)
	}
}

func mustInsertRanking(t *testing.T, db *DB, r *models.Ranking) {
	t.Helper()
	if err := db.InsertRanking(r); err != nil {
		t.Fatalf("InsertRanking failed: %v", err)
	}
}
