// ABOUTME: Wire types for the SportRadar tennis trial API.
// ABOUTME: Covers the subset of fields the loader consumes from each feed.
package sportradar

// CompetitionsResponse is the competitions.json payload.
type CompetitionsResponse struct {
	GeneratedAt  string        `json:"generated_at"`
	Competitions []Competition `json:"competitions"`
}

// Competition is one competition record. Category is embedded in the feed;
// ParentID links nested competitions (qualifiers, legs) to their parent.
type Competition struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Type     string    `json:"type"`
	Gender   string    `json:"gender"`
	ParentID string    `json:"parent_id,omitempty"`
	Category *Category `json:"category,omitempty"`
}

// Category is a competition's category object.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ComplexesResponse is the complexes.json payload.
type ComplexesResponse struct {
	GeneratedAt string    `json:"generated_at"`
	Complexes   []Complex `json:"complexes"`
}

// Complex is a venue complex with its nested venues.
type Complex struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Venues []Venue `json:"venues,omitempty"`
}

// Venue is one venue record inside a complex.
type Venue struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CityName    string `json:"city_name"`
	CountryName string `json:"country_name"`
	CountryCode string `json:"country_code"`
	Timezone    string `json:"timezone"`
}

// RankingsResponse is the doubles_competitor_rankings.json payload.
type RankingsResponse struct {
	GeneratedAt string    `json:"generated_at"`
	Rankings    []Ranking `json:"rankings"`
}

// Ranking is one ranking row with its embedded competitor.
type Ranking struct {
	Rank               int         `json:"rank"`
	Movement           int         `json:"movement"`
	Points             int         `json:"points"`
	CompetitionsPlayed int         `json:"competitions_played"`
	RankingDate        string      `json:"ranking_date,omitempty"`
	Competitor         *Competitor `json:"competitor,omitempty"`
}

// Competitor is a ranked player or doubles team.
type Competitor struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Country      string `json:"country"`
	CountryCode  string `json:"country_code"`
	Abbreviation string `json:"abbreviation"`
}
