// ABOUTME: Read-only HTTP API over the query catalog, for the dashboard.
// ABOUTME: gin router with request logging, recovery, and prometheus metrics.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/harperreed/tennis/internal/storage"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Server exposes the query catalog over HTTP. It holds no write path; the
// database is populated by the sync process only.
type Server struct {
	queries storage.Queries
	log     *logrus.Logger
	engine  *gin.Engine
}

// New creates the server and registers all routes.
func New(queries storage.Queries, log *logrus.Logger) *Server {
	s := &Server{queries: queries, log: log}

	r := gin.New()
	r.Use(requestLogger(log), trackMetrics(), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/overview", s.handleOverview)

		api.GET("/competitions", s.handleCompetitions)
		api.GET("/competitions/top-level", s.handleTopLevelCompetitions)
		api.GET("/competitions/hierarchy", s.handleHierarchy)
		api.GET("/competitions/by-category", s.handleCategoryCounts)
		api.GET("/competitions/type-distribution", s.handleTypeDistribution)

		api.GET("/venues", s.handleVenues)
		api.GET("/venues/timezones", s.handleTimezones)
		api.GET("/venues/by-country", s.handleVenuesPerCountry)
		api.GET("/complexes/venue-counts", s.handleVenuesPerComplex)
		api.GET("/complexes/multi-venue", s.handleMultiVenueComplexes)

		api.GET("/rankings", s.handleRankings)
		api.GET("/rankings/top", s.handleTopCompetitors)
		api.GET("/rankings/stable", s.handleStableCompetitors)
		api.GET("/rankings/latest", s.handleLatestRankings)

		api.GET("/countries/competitors", s.handleCountryCompetitors)
		api.GET("/countries/points", s.handleCountryPoints)
	}

	s.engine = r
	return s
}

// Handler returns the router, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until the listener fails.
func (s *Server) Run(addr string) error {
	s.log.WithField("addr", addr).Info("serving query API")
	return s.engine.Run(addr)
}

// requestLogger logs one line per request.
func requestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start),
		}).Info("request")
	}
}
