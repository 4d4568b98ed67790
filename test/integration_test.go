// ABOUTME: Integration tests for the tennis CLI.
// ABOUTME: Builds the binary, syncs from fake feeds, and checks the queries.
package test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

const competitionsFeed = `{
	"competitions": [
		{
			"id": "comp-parent",
			"name": "Halle Open",
			"type": "doubles",
			"gender": "men",
			"category": {"id": "cat-1", "name": "ATP"}
		},
		{
			"id": "comp-child",
			"name": "Halle Qualifying",
			"type": "doubles",
			"gender": "men",
			"parent_id": "comp-parent",
			"category": {"id": "cat-1", "name": "ATP"}
		}
	]
}`

const complexesFeed = `{
	"complexes": [
		{
			"id": "cx-1",
			"name": "Gerry Weber Stadion",
			"venues": [
				{"id": "v-1", "name": "Centre Court", "city_name": "Halle",
				 "country_name": "Germany", "country_code": "DEU", "timezone": "Europe/Berlin"}
			]
		}
	]
}`

const rankingsFeed = `{
	"rankings": [
		{
			"rank": 1, "movement": 0, "points": 7000, "competitions_played": 21,
			"ranking_date": "2024-06-10",
			"competitor": {"id": "p-1", "name": "Mate Pavic", "country": "Croatia",
				"country_code": "HRV", "abbreviation": "PAV"}
		}
	]
}`

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	tennisBinary := filepath.Join(projectRoot, "tennis-test-bin")

	buildCmd := exec.Command("go", "build", "-o", tennisBinary, "./cmd/tennis")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(tennisBinary)

	// Fake SportRadar feeds
	mux := http.NewServeMux()
	mux.HandleFunc("/competitions.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(competitionsFeed))
	})
	mux.HandleFunc("/complexes.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(complexesFeed))
	})
	mux.HandleFunc("/doubles_competitor_rankings.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(rankingsFeed))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	run := func(args ...string) (string, error) {
		fullArgs := append([]string{"--db", dbPath}, args...)
		cmd := exec.Command(tennisBinary, fullArgs...)
		cmd.Env = append(os.Environ(),
			"TENNIS_API_KEY=test-key",
			"TENNIS_API_BASE_URL="+srv.URL,
			"TENNIS_CONFIG=",
			"HOME="+tmpDir,
		)
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// Sync from the fake feeds
	output, err := run("sync", "--no-cache")
	if err != nil {
		t.Fatalf("Failed to sync: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Sync completed") {
		t.Errorf("Expected sync report, got: %s", output)
	}
	if !strings.Contains(output, "competitions: 2") {
		t.Errorf("Expected 2 competitions in report, got: %s", output)
	}

	// Competitions listing with category join
	output, err = run("competitions")
	if err != nil {
		t.Fatalf("Failed to list competitions: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Halle Open") || !strings.Contains(output, "ATP") {
		t.Errorf("Expected competition with category, got: %s", output)
	}

	// Hierarchy view
	output, err = run("competitions", "--tree")
	if err != nil {
		t.Fatalf("Failed to show hierarchy: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Halle Open -> Halle Qualifying") {
		t.Errorf("Expected parent/child pair, got: %s", output)
	}

	// Venues by country code
	output, err = run("venues", "--country", "DEU")
	if err != nil {
		t.Fatalf("Failed to list venues: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Centre Court") {
		t.Errorf("Expected the German venue, got: %s", output)
	}

	// Rankings
	output, err = run("rankings", "--top", "5")
	if err != nil {
		t.Fatalf("Failed to list rankings: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Mate Pavic") {
		t.Errorf("Expected ranked competitor, got: %s", output)
	}

	// Overview
	output, err = run("overview")
	if err != nil {
		t.Fatalf("Failed to show overview: %v\n%s", err, output)
	}
	if !strings.Contains(output, "7000") {
		t.Errorf("Expected highest points in overview, got: %s", output)
	}

	// Export
	output, err = run("export", "json")
	if err != nil {
		t.Fatalf("Failed to export: %v\n%s", err, output)
	}
	if !strings.Contains(output, "\"tool\": \"tennis\"") {
		t.Errorf("Expected JSON export header, got: %s", output)
	}

	// Country rollup
	output, err = run("countries", "--points", "Croatia")
	if err != nil {
		t.Fatalf("Failed to sum points: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Croatia: 7000 points") {
		t.Errorf("Expected Croatia points total, got: %s", output)
	}
}
