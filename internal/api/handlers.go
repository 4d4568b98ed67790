// ABOUTME: HTTP handlers mapping routes onto the query catalog.
// ABOUTME: Query params carry the filters; responses are count+data JSON.
package api

import (
	"net/http"
	"reflect"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleOverview(c *gin.Context) {
	o, err := s.queries.Overview()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// handleCompetitions lists competitions, optionally filtered by ?type= or
// ?category= (exact category name). With both set, type wins.
func (s *Server) handleCompetitions(c *gin.Context) {
	if t := c.Query("type"); t != "" {
		respondList(s, c, func() (any, error) { return s.queries.ListCompetitionsByType(t) })
		return
	}
	if cat := c.Query("category"); cat != "" {
		respondList(s, c, func() (any, error) { return s.queries.ListCompetitionsByCategoryName(cat) })
		return
	}
	respondList(s, c, func() (any, error) { return s.queries.ListCompetitions() })
}

func (s *Server) handleTopLevelCompetitions(c *gin.Context) {
	respondList(s, c, func() (any, error) { return s.queries.ListTopLevelCompetitions() })
}

func (s *Server) handleHierarchy(c *gin.Context) {
	respondList(s, c, func() (any, error) { return s.queries.ListParentChildCompetitions() })
}

func (s *Server) handleCategoryCounts(c *gin.Context) {
	respondList(s, c, func() (any, error) { return s.queries.CompetitionsPerCategory() })
}

func (s *Server) handleTypeDistribution(c *gin.Context) {
	respondList(s, c, func() (any, error) { return s.queries.TypeDistributionPerCategory() })
}

// handleVenues lists venues, optionally filtered by ?country= (name or
// code) or ?complex= (exact complex name).
func (s *Server) handleVenues(c *gin.Context) {
	if country := c.Query("country"); country != "" {
		respondList(s, c, func() (any, error) { return s.queries.ListVenuesByCountry(country) })
		return
	}
	if cx := c.Query("complex"); cx != "" {
		respondList(s, c, func() (any, error) { return s.queries.ListVenuesByComplexName(cx) })
		return
	}
	respondList(s, c, func() (any, error) { return s.queries.ListVenues() })
}

func (s *Server) handleTimezones(c *gin.Context) {
	respondList(s, c, func() (any, error) { return s.queries.ListTimezones() })
}

func (s *Server) handleVenuesPerCountry(c *gin.Context) {
	respondList(s, c, func() (any, error) { return s.queries.VenuesPerCountry() })
}

func (s *Server) handleVenuesPerComplex(c *gin.Context) {
	respondList(s, c, func() (any, error) { return s.queries.VenuesPerComplex() })
}

func (s *Server) handleMultiVenueComplexes(c *gin.Context) {
	respondList(s, c, func() (any, error) { return s.queries.ComplexesWithMultipleVenues() })
}

func (s *Server) handleRankings(c *gin.Context) {
	limit := intQuery(c, "limit", 50)
	respondList(s, c, func() (any, error) { return s.queries.ListCompetitorRanks(limit) })
}

func (s *Server) handleTopCompetitors(c *gin.Context) {
	n := intQuery(c, "n", 5)
	respondList(s, c, func() (any, error) { return s.queries.TopCompetitors(n) })
}

func (s *Server) handleStableCompetitors(c *gin.Context) {
	respondList(s, c, func() (any, error) { return s.queries.StableCompetitors() })
}

func (s *Server) handleLatestRankings(c *gin.Context) {
	n := intQuery(c, "n", 10)
	respondList(s, c, func() (any, error) { return s.queries.TopPointsLatest(n) })
}

func (s *Server) handleCountryCompetitors(c *gin.Context) {
	respondList(s, c, func() (any, error) { return s.queries.CompetitorsPerCountry() })
}

func (s *Server) handleCountryPoints(c *gin.Context) {
	country := c.Query("country")
	if country == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "country query parameter is required"})
		return
	}

	total, err := s.queries.TotalPointsByCountry(country)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"country": country, "total_points": total})
}

// respondList runs a catalog query and writes a count+data envelope. An
// empty result is a 200 with count 0, never an error.
func respondList(s *Server, c *gin.Context, query func() (any, error)) {
	data, err := query()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": listLen(data), "data": data})
}

func (s *Server) fail(c *gin.Context, err error) {
	s.log.WithError(err).Error("query failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// listLen reports the length of a slice-typed query result.
func listLen(data any) int {
	v := reflect.ValueOf(data)
	if v.Kind() == reflect.Slice {
		return v.Len()
	}
	return 0
}

func intQuery(c *gin.Context, key string, fallback int) int {
	v := c.Query(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
