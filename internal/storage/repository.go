// ABOUTME: Repository interfaces for the tennis event store.
// ABOUTME: Splits the loader's write path from the read-only query catalog.
package storage

import "github.com/harperreed/tennis/internal/models"

// Queries is the read-only query catalog. The HTTP API and MCP server
// depend on this interface only; nothing behind it mutates state.
type Queries interface {
	// Competitions
	ListCompetitions() ([]*models.CompetitionWithCategory, error)
	CompetitionsPerCategory() ([]*models.CategoryCount, error)
	ListCompetitionsByType(compType string) ([]*models.CompetitionWithCategory, error)
	ListCompetitionsByCategoryName(name string) ([]*models.CompetitionWithCategory, error)
	ListParentChildCompetitions() ([]*models.ParentChild, error)
	TypeDistributionPerCategory() ([]*models.TypeCount, error)
	ListTopLevelCompetitions() ([]*models.CompetitionWithCategory, error)

	// Venues and complexes
	ListVenues() ([]*models.VenueWithComplex, error)
	VenuesPerComplex() ([]*models.ComplexVenueCount, error)
	ListVenuesByCountry(country string) ([]*models.VenueWithComplex, error)
	ListTimezones() ([]*models.VenueTimezone, error)
	ComplexesWithMultipleVenues() ([]*models.ComplexVenueCount, error)
	VenuesPerCountry() ([]*models.CountryVenueCount, error)
	ListVenuesByComplexName(name string) ([]*models.VenueWithComplex, error)

	// Competitors and rankings
	ListCompetitorRanks(limit int) ([]*models.CompetitorRank, error)
	TopCompetitors(maxRank int) ([]*models.CompetitorRank, error)
	StableCompetitors() ([]*models.CompetitorRank, error)
	TotalPointsByCountry(country string) (int64, error)
	CompetitorsPerCountry() ([]*models.CountryCompetitors, error)
	TopPointsLatest(limit int) ([]*models.CompetitorRank, error)

	// Dashboard
	Overview() (*models.Overview, error)
}

// Loader is the write path used by the sync process. All upserts are
// idempotent; rankings are append-only snapshots.
type Loader interface {
	UpsertCategory(c *models.Category) error
	UpsertCompetition(c *models.Competition) error
	UpsertComplex(c *models.Complex) error
	UpsertVenue(v *models.Venue) error
	UpsertCompetitor(c *models.Competitor) error
	InsertRanking(r *models.Ranking) error
}

// Repository is the full storage contract.
type Repository interface {
	Queries
	Loader

	GetAllData() (*ExportData, error)
	ExportJSON() ([]byte, error)
	ExportYAML() ([]byte, error)
	Close() error
}
