// ABOUTME: Category and competition storage: loader upserts and queries.
// ABOUTME: Covers the competition half of the query catalog, incl. hierarchy.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/harperreed/tennis/internal/models"
)

// UpsertCategory inserts or updates a category.
func (d *DB) UpsertCategory(c *models.Category) error {
	query := `
		INSERT INTO categories (category_id, category_name)
		VALUES (?, ?)
		ON CONFLICT(category_id) DO UPDATE SET
			category_name = excluded.category_name
	`
	if _, err := d.db.Exec(query, c.ID, c.Name); err != nil {
		return fmt.Errorf("upsert category: %w", err)
	}
	return nil
}

// UpsertCompetition inserts or updates a competition. When a parent is set,
// the ancestor chain is walked first and the write is rejected with
// ErrParentCycle if it would loop back to this competition.
func (d *DB) UpsertCompetition(c *models.Competition) error {
	if c.ParentID != nil {
		if err := d.checkParentCycle(c.ID, *c.ParentID); err != nil {
			return err
		}
	}

	query := `
		INSERT INTO competitions (competition_id, competition_name, parent_id, type, gender, category_id)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(competition_id) DO UPDATE SET
			competition_name = excluded.competition_name,
			parent_id = excluded.parent_id,
			type = excluded.type,
			gender = excluded.gender,
			category_id = excluded.category_id
	`
	if _, err := d.db.Exec(query, c.ID, c.Name, c.ParentID, c.Type, c.Gender, c.CategoryID); err != nil {
		return fmt.Errorf("upsert competition: %w", err)
	}
	return nil
}

// checkParentCycle walks up from parentID and fails if the chain reaches id.
// The existing graph is acyclic (every prior write was checked), so the walk
// terminates at a top-level competition or an unknown parent.
func (d *DB) checkParentCycle(id, parentID string) error {
	current := parentID
	for {
		if current == id {
			return fmt.Errorf("competition %s: %w", id, ErrParentCycle)
		}

		var next sql.NullString
		err := d.db.QueryRow(`SELECT parent_id FROM competitions WHERE competition_id = ?`, current).Scan(&next)
		if err == sql.ErrNoRows {
			// Parent not loaded yet; the FK constraint decides at insert time.
			return nil
		}
		if err != nil {
			return fmt.Errorf("walk parent chain: %w", err)
		}
		if !next.Valid {
			return nil
		}
		current = next.String
	}
}

// ListCompetitions returns all competitions with their category name.
// Competitions without a category still appear (nil CategoryName).
func (d *DB) ListCompetitions() ([]*models.CompetitionWithCategory, error) {
	query := `
		SELECT c.competition_id, c.competition_name, c.type, c.gender, c.parent_id, c.category_id, cat.category_name
		FROM competitions c
		LEFT JOIN categories cat ON c.category_id = cat.category_id
		ORDER BY c.competition_name
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list competitions: %w", err)
	}
	defer rows.Close()

	return scanCompetitionsWithCategory(rows)
}

// CompetitionsPerCategory counts competitions per category. Competitions
// without a category are grouped under a nil category bucket.
func (d *DB) CompetitionsPerCategory() ([]*models.CategoryCount, error) {
	query := `
		SELECT cat.category_name, COUNT(*) AS competition_count
		FROM competitions c
		LEFT JOIN categories cat ON c.category_id = cat.category_id
		GROUP BY cat.category_name
		ORDER BY competition_count DESC
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("competitions per category: %w", err)
	}
	defer rows.Close()

	var counts []*models.CategoryCount
	for rows.Next() {
		var cc models.CategoryCount
		var name sql.NullString
		if err := rows.Scan(&name, &cc.Competitions); err != nil {
			return nil, fmt.Errorf("scan category count: %w", err)
		}
		if name.Valid {
			cc.CategoryName = &name.String
		}
		counts = append(counts, &cc)
	}
	return counts, rows.Err()
}

// ListCompetitionsByType returns competitions matching a type
// (singles, doubles, mixed). The match is case-insensitive.
func (d *DB) ListCompetitionsByType(compType string) ([]*models.CompetitionWithCategory, error) {
	query := `
		SELECT c.competition_id, c.competition_name, c.type, c.gender, c.parent_id, c.category_id, cat.category_name
		FROM competitions c
		LEFT JOIN categories cat ON c.category_id = cat.category_id
		WHERE LOWER(c.type) = LOWER(?)
		ORDER BY c.competition_name
	`
	rows, err := d.db.Query(query, compType)
	if err != nil {
		return nil, fmt.Errorf("list competitions by type: %w", err)
	}
	defer rows.Close()

	return scanCompetitionsWithCategory(rows)
}

// ListCompetitionsByCategoryName returns competitions in the named category
// (exact match).
func (d *DB) ListCompetitionsByCategoryName(name string) ([]*models.CompetitionWithCategory, error) {
	query := `
		SELECT c.competition_id, c.competition_name, c.type, c.gender, c.parent_id, c.category_id, cat.category_name
		FROM competitions c
		JOIN categories cat ON c.category_id = cat.category_id
		WHERE cat.category_name = ?
		ORDER BY c.competition_name
	`
	rows, err := d.db.Query(query, name)
	if err != nil {
		return nil, fmt.Errorf("list competitions by category: %w", err)
	}
	defer rows.Close()

	return scanCompetitionsWithCategory(rows)
}

// ListParentChildCompetitions returns every parent/child pair in the
// hierarchy. Only competitions whose parent exists appear.
func (d *DB) ListParentChildCompetitions() ([]*models.ParentChild, error) {
	query := `
		SELECT p.competition_id, p.competition_name, c.competition_id, c.competition_name
		FROM competitions c
		JOIN competitions p ON c.parent_id = p.competition_id
		ORDER BY p.competition_name, c.competition_name
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list parent/child competitions: %w", err)
	}
	defer rows.Close()

	var pairs []*models.ParentChild
	for rows.Next() {
		var pc models.ParentChild
		if err := rows.Scan(&pc.ParentID, &pc.ParentName, &pc.ChildID, &pc.ChildName); err != nil {
			return nil, fmt.Errorf("scan parent/child pair: %w", err)
		}
		pairs = append(pairs, &pc)
	}
	return pairs, rows.Err()
}

// TypeDistributionPerCategory counts competitions per (category, type),
// ordered by category name then descending count.
func (d *DB) TypeDistributionPerCategory() ([]*models.TypeCount, error) {
	query := `
		SELECT cat.category_name, c.type, COUNT(*) AS cnt
		FROM competitions c
		LEFT JOIN categories cat ON c.category_id = cat.category_id
		GROUP BY cat.category_name, c.type
		ORDER BY cat.category_name, cnt DESC
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("type distribution per category: %w", err)
	}
	defer rows.Close()

	var dist []*models.TypeCount
	for rows.Next() {
		var tc models.TypeCount
		var name sql.NullString
		if err := rows.Scan(&name, &tc.Type, &tc.Count); err != nil {
			return nil, fmt.Errorf("scan type count: %w", err)
		}
		if name.Valid {
			tc.CategoryName = &name.String
		}
		dist = append(dist, &tc)
	}
	return dist, rows.Err()
}

// ListTopLevelCompetitions returns competitions with no parent.
func (d *DB) ListTopLevelCompetitions() ([]*models.CompetitionWithCategory, error) {
	query := `
		SELECT c.competition_id, c.competition_name, c.type, c.gender, c.parent_id, c.category_id, cat.category_name
		FROM competitions c
		LEFT JOIN categories cat ON c.category_id = cat.category_id
		WHERE c.parent_id IS NULL
		ORDER BY c.competition_name
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list top-level competitions: %w", err)
	}
	defer rows.Close()

	return scanCompetitionsWithCategory(rows)
}

// ListCategories returns all categories, for export.
func (d *DB) ListCategories() ([]*models.Category, error) {
	rows, err := d.db.Query(`SELECT category_id, category_name FROM categories ORDER BY category_name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var cats []*models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		cats = append(cats, &c)
	}
	return cats, rows.Err()
}

// scanCompetitionsWithCategory scans joined competition rows.
func scanCompetitionsWithCategory(rows *sql.Rows) ([]*models.CompetitionWithCategory, error) {
	var comps []*models.CompetitionWithCategory
	for rows.Next() {
		var c models.CompetitionWithCategory
		var parentID, categoryID, categoryName sql.NullString

		if err := rows.Scan(&c.ID, &c.Name, &c.Type, &c.Gender, &parentID, &categoryID, &categoryName); err != nil {
			return nil, fmt.Errorf("scan competition: %w", err)
		}
		if parentID.Valid {
			c.ParentID = &parentID.String
		}
		if categoryID.Valid {
			c.CategoryID = &categoryID.String
		}
		if categoryName.Valid {
			c.CategoryName = &categoryName.String
		}
		comps = append(comps, &c)
	}
	return comps, rows.Err()
}
