// ABOUTME: Complex and venue storage: loader upserts and queries.
// ABOUTME: Covers the venue half of the query catalog, incl. country rollups.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/harperreed/tennis/internal/models"
)

// UpsertComplex inserts or updates a venue complex.
func (d *DB) UpsertComplex(c *models.Complex) error {
	query := `
		INSERT INTO complexes (complex_id, complex_name)
		VALUES (?, ?)
		ON CONFLICT(complex_id) DO UPDATE SET
			complex_name = excluded.complex_name
	`
	if _, err := d.db.Exec(query, c.ID, c.Name); err != nil {
		return fmt.Errorf("upsert complex: %w", err)
	}
	return nil
}

// UpsertVenue inserts or updates a venue.
func (d *DB) UpsertVenue(v *models.Venue) error {
	query := `
		INSERT INTO venues (venue_id, venue_name, city_name, country_name, country_code, timezone, complex_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(venue_id) DO UPDATE SET
			venue_name = excluded.venue_name,
			city_name = excluded.city_name,
			country_name = excluded.country_name,
			country_code = excluded.country_code,
			timezone = excluded.timezone,
			complex_id = excluded.complex_id
	`
	if _, err := d.db.Exec(query, v.ID, v.Name, v.City, v.Country, v.CountryCode, v.Timezone, v.ComplexID); err != nil {
		return fmt.Errorf("upsert venue: %w", err)
	}
	return nil
}

// ListVenues returns all venues with their complex name. Venues outside a
// complex still appear (nil ComplexName).
func (d *DB) ListVenues() ([]*models.VenueWithComplex, error) {
	query := `
		SELECT v.venue_id, v.venue_name, v.city_name, v.country_name, v.country_code, v.timezone, v.complex_id, cx.complex_name
		FROM venues v
		LEFT JOIN complexes cx ON v.complex_id = cx.complex_id
		ORDER BY v.venue_name
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	defer rows.Close()

	return scanVenuesWithComplex(rows)
}

// VenuesPerComplex counts venues per complex, driven from the complex side
// so complexes with zero venues appear with count 0.
func (d *DB) VenuesPerComplex() ([]*models.ComplexVenueCount, error) {
	query := `
		SELECT cx.complex_id, cx.complex_name, COUNT(v.venue_id) AS venue_count
		FROM complexes cx
		LEFT JOIN venues v ON v.complex_id = cx.complex_id
		GROUP BY cx.complex_id, cx.complex_name
		ORDER BY venue_count DESC, cx.complex_name
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("venues per complex: %w", err)
	}
	defer rows.Close()

	return scanComplexVenueCounts(rows)
}

// ListVenuesByCountry returns venues whose country name or code matches.
func (d *DB) ListVenuesByCountry(country string) ([]*models.VenueWithComplex, error) {
	query := `
		SELECT v.venue_id, v.venue_name, v.city_name, v.country_name, v.country_code, v.timezone, v.complex_id, cx.complex_name
		FROM venues v
		LEFT JOIN complexes cx ON v.complex_id = cx.complex_id
		WHERE v.country_name = ? OR v.country_code = ?
		ORDER BY v.venue_name
	`
	rows, err := d.db.Query(query, country, country)
	if err != nil {
		return nil, fmt.Errorf("list venues by country: %w", err)
	}
	defer rows.Close()

	return scanVenuesWithComplex(rows)
}

// ListTimezones returns the venue/city/timezone projection for every venue.
func (d *DB) ListTimezones() ([]*models.VenueTimezone, error) {
	rows, err := d.db.Query(`SELECT venue_name, city_name, timezone FROM venues ORDER BY venue_name`)
	if err != nil {
		return nil, fmt.Errorf("list timezones: %w", err)
	}
	defer rows.Close()

	var tzs []*models.VenueTimezone
	for rows.Next() {
		var vt models.VenueTimezone
		if err := rows.Scan(&vt.VenueName, &vt.City, &vt.Timezone); err != nil {
			return nil, fmt.Errorf("scan timezone row: %w", err)
		}
		tzs = append(tzs, &vt)
	}
	return tzs, rows.Err()
}

// ComplexesWithMultipleVenues returns complexes holding more than one venue.
func (d *DB) ComplexesWithMultipleVenues() ([]*models.ComplexVenueCount, error) {
	query := `
		SELECT cx.complex_id, cx.complex_name, COUNT(v.venue_id) AS venue_count
		FROM complexes cx
		JOIN venues v ON v.complex_id = cx.complex_id
		GROUP BY cx.complex_id, cx.complex_name
		HAVING COUNT(v.venue_id) > 1
		ORDER BY venue_count DESC, cx.complex_name
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("complexes with multiple venues: %w", err)
	}
	defer rows.Close()

	return scanComplexVenueCounts(rows)
}

// VenuesPerCountry counts venues per country, descending.
func (d *DB) VenuesPerCountry() ([]*models.CountryVenueCount, error) {
	query := `
		SELECT country_name, COUNT(*) AS venue_count
		FROM venues
		GROUP BY country_name
		ORDER BY venue_count DESC, country_name
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("venues per country: %w", err)
	}
	defer rows.Close()

	var counts []*models.CountryVenueCount
	for rows.Next() {
		var cc models.CountryVenueCount
		if err := rows.Scan(&cc.Country, &cc.Venues); err != nil {
			return nil, fmt.Errorf("scan country venue count: %w", err)
		}
		counts = append(counts, &cc)
	}
	return counts, rows.Err()
}

// ListVenuesByComplexName returns the venues of the named complex
// (exact match).
func (d *DB) ListVenuesByComplexName(name string) ([]*models.VenueWithComplex, error) {
	query := `
		SELECT v.venue_id, v.venue_name, v.city_name, v.country_name, v.country_code, v.timezone, v.complex_id, cx.complex_name
		FROM venues v
		JOIN complexes cx ON v.complex_id = cx.complex_id
		WHERE cx.complex_name = ?
		ORDER BY v.venue_name
	`
	rows, err := d.db.Query(query, name)
	if err != nil {
		return nil, fmt.Errorf("list venues by complex: %w", err)
	}
	defer rows.Close()

	return scanVenuesWithComplex(rows)
}

// ListComplexes returns all complexes, for export.
func (d *DB) ListComplexes() ([]*models.Complex, error) {
	rows, err := d.db.Query(`SELECT complex_id, complex_name FROM complexes ORDER BY complex_name`)
	if err != nil {
		return nil, fmt.Errorf("list complexes: %w", err)
	}
	defer rows.Close()

	var cxs []*models.Complex
	for rows.Next() {
		var c models.Complex
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan complex: %w", err)
		}
		cxs = append(cxs, &c)
	}
	return cxs, rows.Err()
}

// scanVenuesWithComplex scans joined venue rows.
func scanVenuesWithComplex(rows *sql.Rows) ([]*models.VenueWithComplex, error) {
	var venues []*models.VenueWithComplex
	for rows.Next() {
		var v models.VenueWithComplex
		var complexID, complexName sql.NullString

		if err := rows.Scan(&v.ID, &v.Name, &v.City, &v.Country, &v.CountryCode, &v.Timezone, &complexID, &complexName); err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		if complexID.Valid {
			v.ComplexID = &complexID.String
		}
		if complexName.Valid {
			v.ComplexName = &complexName.String
		}
		venues = append(venues, &v)
	}
	return venues, rows.Err()
}

// scanComplexVenueCounts scans complex rollup rows.
func scanComplexVenueCounts(rows *sql.Rows) ([]*models.ComplexVenueCount, error) {
	var counts []*models.ComplexVenueCount
	for rows.Next() {
		var cc models.ComplexVenueCount
		if err := rows.Scan(&cc.ComplexID, &cc.ComplexName, &cc.Venues); err != nil {
			return nil, fmt.Errorf("scan complex venue count: %w", err)
		}
		counts = append(counts, &cc)
	}
	return counts, rows.Err()
}
