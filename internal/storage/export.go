// ABOUTME: Export functionality for the tennis event store.
// ABOUTME: Supports JSON and YAML snapshots of all six tables.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/tennis/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for the event store.
type ExportData struct {
	Version      string                `json:"version" yaml:"version"`
	ExportedAt   time.Time             `json:"exported_at" yaml:"exported_at"`
	Tool         string                `json:"tool" yaml:"tool"`
	Categories   []*models.Category    `json:"categories" yaml:"categories"`
	Competitions []*models.Competition `json:"competitions" yaml:"competitions"`
	Complexes    []*models.Complex     `json:"complexes" yaml:"complexes"`
	Venues       []*models.Venue       `json:"venues" yaml:"venues"`
	Competitors  []*models.Competitor  `json:"competitors" yaml:"competitors"`
	Rankings     []*models.Ranking     `json:"rankings" yaml:"rankings"`
}

// GetAllData retrieves the contents of all six tables for export.
func (d *DB) GetAllData() (*ExportData, error) {
	categories, err := d.ListCategories()
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	competitions, err := d.listCompetitionsRaw()
	if err != nil {
		return nil, fmt.Errorf("list competitions: %w", err)
	}

	complexes, err := d.ListComplexes()
	if err != nil {
		return nil, fmt.Errorf("list complexes: %w", err)
	}

	venues, err := d.listVenuesRaw()
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}

	competitors, err := d.ListCompetitors()
	if err != nil {
		return nil, fmt.Errorf("list competitors: %w", err)
	}

	rankings, err := d.ListRankings()
	if err != nil {
		return nil, fmt.Errorf("list rankings: %w", err)
	}

	return &ExportData{
		Version:      "1.0",
		ExportedAt:   time.Now(),
		Tool:         "tennis",
		Categories:   categories,
		Competitions: competitions,
		Complexes:    complexes,
		Venues:       venues,
		Competitors:  competitors,
		Rankings:     rankings,
	}, nil
}

// ExportJSON exports all data as JSON.
func (d *DB) ExportJSON() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML.
func (d *DB) ExportYAML() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(data)
}

// listCompetitionsRaw reads competitions without the category join.
func (d *DB) listCompetitionsRaw() ([]*models.Competition, error) {
	query := `
		SELECT competition_id, competition_name, type, gender, parent_id, category_id
		FROM competitions
		ORDER BY competition_id
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comps []*models.Competition
	for rows.Next() {
		c, err := scanCompetitionRaw(rows)
		if err != nil {
			return nil, err
		}
		comps = append(comps, c)
	}
	return comps, rows.Err()
}

// listVenuesRaw reads venues without the complex join.
func (d *DB) listVenuesRaw() ([]*models.Venue, error) {
	query := `
		SELECT venue_id, venue_name, city_name, country_name, country_code, timezone, complex_id
		FROM venues
		ORDER BY venue_id
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var venues []*models.Venue
	for rows.Next() {
		v, err := scanVenueRaw(rows)
		if err != nil {
			return nil, err
		}
		venues = append(venues, v)
	}
	return venues, rows.Err()
}

func scanCompetitionRaw(rows *sql.Rows) (*models.Competition, error) {
	var c models.Competition
	var parentID, categoryID sql.NullString

	if err := rows.Scan(&c.ID, &c.Name, &c.Type, &c.Gender, &parentID, &categoryID); err != nil {
		return nil, fmt.Errorf("scan competition: %w", err)
	}
	if parentID.Valid {
		c.ParentID = &parentID.String
	}
	if categoryID.Valid {
		c.CategoryID = &categoryID.String
	}
	return &c, nil
}

func scanVenueRaw(rows *sql.Rows) (*models.Venue, error) {
	var v models.Venue
	var complexID sql.NullString

	if err := rows.Scan(&v.ID, &v.Name, &v.City, &v.Country, &v.CountryCode, &v.Timezone, &complexID); err != nil {
		return nil, fmt.Errorf("scan venue: %w", err)
	}
	if complexID.Valid {
		v.ComplexID = &complexID.String
	}
	return &v, nil
}
