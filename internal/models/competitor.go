// ABOUTME: Competitor and Ranking models for the tennis event store.
// ABOUTME: Rankings are append-only dated snapshots, many per competitor.
package models

import "time"

// Competitor is a player or team entity tracked for ranking purposes.
type Competitor struct {
	ID           string `json:"competitor_id"`
	Name         string `json:"name"`
	Country      string `json:"country"`
	CountryCode  string `json:"country_code"`
	Abbreviation string `json:"abbreviation"`
}

// Ranking is a dated snapshot of a competitor's position, points, and
// movement. RankID is a surrogate key assigned by the database.
// CompetitorID is nullable; the feed occasionally delivers orphaned rows.
type Ranking struct {
	RankID             int64      `json:"rank_id"`
	Rank               int        `json:"rank_pos"`
	Movement           int        `json:"movement"`
	Points             int        `json:"points"`
	CompetitionsPlayed int        `json:"competitions_played"`
	RankingDate        *time.Time `json:"ranking_date,omitempty"`
	CompetitorID       *string    `json:"competitor_id,omitempty"`
}

// CompetitorRank is a competitor joined with their latest ranking snapshot.
// The ranking fields are nil for competitors with no ranking rows.
type CompetitorRank struct {
	Competitor
	Rank               *int       `json:"rank_pos"`
	Movement           *int       `json:"movement"`
	Points             *int       `json:"points"`
	CompetitionsPlayed *int       `json:"competitions_played"`
	RankingDate        *time.Time `json:"ranking_date,omitempty"`
}

// CountryCompetitors is the competitor count and average points per country.
type CountryCompetitors struct {
	Country     string   `json:"country"`
	Competitors int      `json:"competitor_count"`
	AvgPoints   *float64 `json:"avg_points,omitempty"`
}

// Overview holds the dashboard headline numbers.
type Overview struct {
	TotalCompetitors int `json:"total_competitors"`
	Countries        int `json:"countries_represented"`
	HighestPoints    int `json:"highest_points"`
}
