// ABOUTME: Competitor and ranking storage: loader upserts and queries.
// ABOUTME: Rankings are dated snapshots; reads pick per-competitor latest where noted.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/harperreed/tennis/internal/models"
)

// UpsertCompetitor inserts or updates a competitor.
func (d *DB) UpsertCompetitor(c *models.Competitor) error {
	query := `
		INSERT INTO competitors (competitor_id, name, country, country_code, abbreviation)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(competitor_id) DO UPDATE SET
			name = excluded.name,
			country = excluded.country,
			country_code = excluded.country_code,
			abbreviation = excluded.abbreviation
	`
	if _, err := d.db.Exec(query, c.ID, c.Name, c.Country, c.CountryCode, c.Abbreviation); err != nil {
		return fmt.Errorf("upsert competitor: %w", err)
	}
	return nil
}

// InsertRanking appends a ranking snapshot and fills in the surrogate key.
func (d *DB) InsertRanking(r *models.Ranking) error {
	var date interface{}
	if r.RankingDate != nil {
		date = r.RankingDate.Format(dateLayout)
	}

	query := `
		INSERT INTO competitor_rankings (rank_pos, movement, points, competitions_played, ranking_date, competitor_id)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	res, err := d.db.Exec(query, r.Rank, r.Movement, r.Points, r.CompetitionsPlayed, date, r.CompetitorID)
	if err != nil {
		return fmt.Errorf("insert ranking: %w", err)
	}

	r.RankID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert ranking: %w", err)
	}
	return nil
}

// latestRankingJoin picks each competitor's most recent snapshot. NULL dates
// sort after dated rows under DESC, so a dated snapshot always wins.
const latestRankingJoin = `
	competitor_rankings r ON r.rank_id = (
		SELECT r2.rank_id FROM competitor_rankings r2
		WHERE r2.competitor_id = c.competitor_id
		ORDER BY r2.ranking_date DESC, r2.rank_id DESC
		LIMIT 1
	)`

// ListCompetitorRanks returns competitors with their latest ranking
// snapshot, best rank first. Competitors without any ranking sort last.
func (d *DB) ListCompetitorRanks(limit int) ([]*models.CompetitorRank, error) {
	query := `
		SELECT c.competitor_id, c.name, c.country, c.country_code, c.abbreviation,
			r.rank_pos, r.movement, r.points, r.competitions_played, r.ranking_date
		FROM competitors c
		LEFT JOIN ` + latestRankingJoin + `
		ORDER BY r.rank_pos IS NULL, r.rank_pos, c.name
	`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list competitor ranks: %w", err)
	}
	defer rows.Close()

	return scanCompetitorRanks(rows)
}

// TopCompetitors returns competitors whose latest rank is maxRank or better.
// Competitors without a ranking row never appear.
func (d *DB) TopCompetitors(maxRank int) ([]*models.CompetitorRank, error) {
	if maxRank <= 0 {
		maxRank = 5
	}
	query := `
		SELECT c.competitor_id, c.name, c.country, c.country_code, c.abbreviation,
			r.rank_pos, r.movement, r.points, r.competitions_played, r.ranking_date
		FROM competitors c
		JOIN ` + latestRankingJoin + `
		WHERE r.rank_pos <= ?
		ORDER BY r.rank_pos
	`
	rows, err := d.db.Query(query, maxRank)
	if err != nil {
		return nil, fmt.Errorf("top competitors: %w", err)
	}
	defer rows.Close()

	return scanCompetitorRanks(rows)
}

// StableCompetitors returns every snapshot with zero movement, joined with
// its competitor, best rank first.
func (d *DB) StableCompetitors() ([]*models.CompetitorRank, error) {
	query := `
		SELECT c.competitor_id, c.name, c.country, c.country_code, c.abbreviation,
			r.rank_pos, r.movement, r.points, r.competitions_played, r.ranking_date
		FROM competitors c
		JOIN competitor_rankings r ON r.competitor_id = c.competitor_id
		WHERE r.movement = 0
		ORDER BY r.rank_pos
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("stable competitors: %w", err)
	}
	defer rows.Close()

	return scanCompetitorRanks(rows)
}

// TotalPointsByCountry sums ranking points for competitors whose country
// name or code matches. SUM over zero rows is NULL in SQLite; this reports 0.
func (d *DB) TotalPointsByCountry(country string) (int64, error) {
	query := `
		SELECT COALESCE(SUM(r.points), 0)
		FROM competitors c
		JOIN competitor_rankings r ON r.competitor_id = c.competitor_id
		WHERE c.country = ? OR c.country_code = ?
	`
	var total int64
	if err := d.db.QueryRow(query, country, country).Scan(&total); err != nil {
		return 0, fmt.Errorf("total points by country: %w", err)
	}
	return total, nil
}

// CompetitorsPerCountry counts ranked competitors per country, descending,
// with their average points.
func (d *DB) CompetitorsPerCountry() ([]*models.CountryCompetitors, error) {
	query := `
		SELECT c.country, COUNT(DISTINCT c.competitor_id) AS competitor_count, AVG(r.points) AS avg_points
		FROM competitors c
		JOIN competitor_rankings r ON r.competitor_id = c.competitor_id
		GROUP BY c.country
		ORDER BY competitor_count DESC, c.country
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("competitors per country: %w", err)
	}
	defer rows.Close()

	var counts []*models.CountryCompetitors
	for rows.Next() {
		var cc models.CountryCompetitors
		var avg sql.NullFloat64
		if err := rows.Scan(&cc.Country, &cc.Competitors, &avg); err != nil {
			return nil, fmt.Errorf("scan country competitors: %w", err)
		}
		if avg.Valid {
			cc.AvgPoints = &avg.Float64
		}
		counts = append(counts, &cc)
	}
	return counts, rows.Err()
}

// TopPointsLatest returns the top competitors by points among snapshots
// taken at the most recent ranking date on record. With no dated snapshots
// the result is empty.
func (d *DB) TopPointsLatest(limit int) ([]*models.CompetitorRank, error) {
	if limit <= 0 {
		limit = 10
	}
	query := `
		SELECT c.competitor_id, c.name, c.country, c.country_code, c.abbreviation,
			r.rank_pos, r.movement, r.points, r.competitions_played, r.ranking_date
		FROM competitors c
		JOIN competitor_rankings r ON r.competitor_id = c.competitor_id
		WHERE r.ranking_date = (SELECT MAX(ranking_date) FROM competitor_rankings)
		ORDER BY r.points DESC
		LIMIT ?
	`
	rows, err := d.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("top points latest: %w", err)
	}
	defer rows.Close()

	return scanCompetitorRanks(rows)
}

// ListCompetitors returns all competitors, for export.
func (d *DB) ListCompetitors() ([]*models.Competitor, error) {
	rows, err := d.db.Query(`SELECT competitor_id, name, country, country_code, abbreviation FROM competitors ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list competitors: %w", err)
	}
	defer rows.Close()

	var comps []*models.Competitor
	for rows.Next() {
		var c models.Competitor
		if err := rows.Scan(&c.ID, &c.Name, &c.Country, &c.CountryCode, &c.Abbreviation); err != nil {
			return nil, fmt.Errorf("scan competitor: %w", err)
		}
		comps = append(comps, &c)
	}
	return comps, rows.Err()
}

// ListRankings returns all ranking snapshots, for export.
func (d *DB) ListRankings() ([]*models.Ranking, error) {
	query := `
		SELECT rank_id, rank_pos, movement, points, competitions_played, ranking_date, competitor_id
		FROM competitor_rankings
		ORDER BY rank_id
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list rankings: %w", err)
	}
	defer rows.Close()

	var rankings []*models.Ranking
	for rows.Next() {
		var r models.Ranking
		var date, competitorID sql.NullString

		if err := rows.Scan(&r.RankID, &r.Rank, &r.Movement, &r.Points, &r.CompetitionsPlayed, &date, &competitorID); err != nil {
			return nil, fmt.Errorf("scan ranking: %w", err)
		}
		if date.Valid {
			t, err := time.Parse(dateLayout, date.String)
			if err == nil {
				r.RankingDate = &t
			}
		}
		if competitorID.Valid {
			r.CompetitorID = &competitorID.String
		}
		rankings = append(rankings, &r)
	}
	return rankings, rows.Err()
}

// scanCompetitorRanks scans joined competitor/ranking rows. The ranking
// columns may be NULL on the left-join paths.
func scanCompetitorRanks(rows *sql.Rows) ([]*models.CompetitorRank, error) {
	var ranks []*models.CompetitorRank
	for rows.Next() {
		var cr models.CompetitorRank
		var rank, movement, points, played sql.NullInt64
		var date sql.NullString

		err := rows.Scan(&cr.ID, &cr.Name, &cr.Country, &cr.CountryCode, &cr.Abbreviation,
			&rank, &movement, &points, &played, &date)
		if err != nil {
			return nil, fmt.Errorf("scan competitor rank: %w", err)
		}

		if rank.Valid {
			v := int(rank.Int64)
			cr.Rank = &v
		}
		if movement.Valid {
			v := int(movement.Int64)
			cr.Movement = &v
		}
		if points.Valid {
			v := int(points.Int64)
			cr.Points = &v
		}
		if played.Valid {
			v := int(played.Int64)
			cr.CompetitionsPlayed = &v
		}
		if date.Valid {
			if t, err := time.Parse(dateLayout, date.String); err == nil {
				cr.RankingDate = &t
			}
		}
		ranks = append(ranks, &cr)
	}
	return ranks, rows.Err()
}
