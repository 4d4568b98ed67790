// ABOUTME: Dashboard overview aggregates.
// ABOUTME: Headline numbers for the explorer landing page.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/harperreed/tennis/internal/models"
)

// Overview returns the dashboard headline numbers: competitor total,
// countries represented, and the highest points on record. MAX over an
// empty rankings table is NULL, reported as 0.
func (d *DB) Overview() (*models.Overview, error) {
	var o models.Overview

	if err := d.db.QueryRow(`SELECT COUNT(*) FROM competitors`).Scan(&o.TotalCompetitors); err != nil {
		return nil, fmt.Errorf("count competitors: %w", err)
	}

	if err := d.db.QueryRow(`SELECT COUNT(DISTINCT country) FROM competitors`).Scan(&o.Countries); err != nil {
		return nil, fmt.Errorf("count countries: %w", err)
	}

	var maxPoints sql.NullInt64
	if err := d.db.QueryRow(`SELECT MAX(points) FROM competitor_rankings`).Scan(&maxPoints); err != nil {
		return nil, fmt.Errorf("max points: %w", err)
	}
	if maxPoints.Valid {
		o.HighestPoints = int(maxPoints.Int64)
	}

	return &o, nil
}
