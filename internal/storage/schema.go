// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Six tables mirroring the SportRadar tennis feeds, plus indexes.
package storage

// Schema is the DDL for the six event-explorer tables. Rankings use a
// surrogate autoincrement key because the feed has no natural one; a
// competitor can have many dated snapshots.
const Schema = `
CREATE TABLE IF NOT EXISTS categories (
	category_id TEXT PRIMARY KEY,
	category_name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS competitions (
	competition_id TEXT PRIMARY KEY,
	competition_name TEXT NOT NULL,
	parent_id TEXT REFERENCES competitions(competition_id),
	type TEXT NOT NULL DEFAULT '',
	gender TEXT NOT NULL DEFAULT '',
	category_id TEXT REFERENCES categories(category_id)
);

CREATE TABLE IF NOT EXISTS complexes (
	complex_id TEXT PRIMARY KEY,
	complex_name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS venues (
	venue_id TEXT PRIMARY KEY,
	venue_name TEXT NOT NULL,
	city_name TEXT NOT NULL DEFAULT '',
	country_name TEXT NOT NULL DEFAULT '',
	country_code TEXT NOT NULL DEFAULT '',
	timezone TEXT NOT NULL DEFAULT '',
	complex_id TEXT REFERENCES complexes(complex_id)
);

CREATE TABLE IF NOT EXISTS competitors (
	competitor_id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	country TEXT NOT NULL DEFAULT '',
	country_code TEXT NOT NULL DEFAULT '',
	abbreviation TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS competitor_rankings (
	rank_id INTEGER PRIMARY KEY AUTOINCREMENT,
	rank_pos INTEGER NOT NULL,
	movement INTEGER NOT NULL DEFAULT 0,
	points INTEGER NOT NULL DEFAULT 0,
	competitions_played INTEGER NOT NULL DEFAULT 0,
	ranking_date TEXT,
	competitor_id TEXT REFERENCES competitors(competitor_id)
);

CREATE INDEX IF NOT EXISTS idx_competitions_category ON competitions(category_id);
CREATE INDEX IF NOT EXISTS idx_competitions_parent ON competitions(parent_id);
CREATE INDEX IF NOT EXISTS idx_venues_country_code ON venues(country_code);
CREATE INDEX IF NOT EXISTS idx_rankings_competitor ON competitor_rankings(competitor_id);
CREATE INDEX IF NOT EXISTS idx_rankings_date ON competitor_rankings(ranking_date DESC);
`

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	_, err := d.db.Exec(Schema)
	return err
}
