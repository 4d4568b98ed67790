// ABOUTME: Complex and Venue models for the tennis event store.
// ABOUTME: Includes the row types returned by the venue query catalog.
package models

// Complex is a named grouping of venues (e.g., a sports center).
type Complex struct {
	ID   string `json:"complex_id"`
	Name string `json:"complex_name"`
}

// Venue is a physical location hosting competitions. ComplexID is a
// nullable foreign key; standalone venues have none.
type Venue struct {
	ID          string  `json:"venue_id"`
	Name        string  `json:"venue_name"`
	City        string  `json:"city_name"`
	Country     string  `json:"country_name"`
	CountryCode string  `json:"country_code"`
	Timezone    string  `json:"timezone"`
	ComplexID   *string `json:"complex_id,omitempty"`
}

// VenueWithComplex is a venue joined with its complex name.
// ComplexName is nil for venues that don't belong to a complex.
type VenueWithComplex struct {
	Venue
	ComplexName *string `json:"complex_name"`
}

// ComplexVenueCount is the number of venues inside one complex.
type ComplexVenueCount struct {
	ComplexID   string `json:"complex_id"`
	ComplexName string `json:"complex_name"`
	Venues      int    `json:"venue_count"`
}

// CountryVenueCount is the number of venues in one country.
type CountryVenueCount struct {
	Country string `json:"country_name"`
	Venues  int    `json:"venue_count"`
}

// VenueTimezone is the timezone listing projection.
type VenueTimezone struct {
	VenueName string `json:"venue_name"`
	City      string `json:"city_name"`
	Timezone  string `json:"timezone"`
}
