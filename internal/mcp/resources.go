// ABOUTME: MCP resource implementations for the tennis event store.
// ABOUTME: Provides tennis://overview, tennis://countries, and tennis://schema.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/tennis/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// tennis://overview - headline stats plus current leaders
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "tennis://overview",
		Name:        "Event Store Overview",
		Description: "Headline stats plus the current top-ranked competitors",
		MIMEType:    "application/json",
	}, s.handleOverviewResource)

	// tennis://countries - competitor distribution by country
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "tennis://countries",
		Name:        "Country Breakdown",
		Description: "Competitor counts and venue counts per country",
		MIMEType:    "application/json",
	}, s.handleCountriesResource)

	// tennis://schema - the SQLite DDL
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "tennis://schema",
		Name:        "Database Schema",
		Description: "SQLite DDL for the event store tables",
		MIMEType:    "text/plain",
	}, s.handleSchemaResource)
}

// Resource handlers

func (s *Server) handleOverviewResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	overview, err := s.queries.Overview()
	if err != nil {
		return nil, fmt.Errorf("failed to compute overview: %w", err)
	}

	leaders, err := s.queries.TopCompetitors(5)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaders: %w", err)
	}

	result := map[string]interface{}{
		"generated_at": time.Now().Format(time.RFC3339),
		"overview":     overview,
		"leaders":      leaders,
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "tennis://overview",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleCountriesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	competitors, err := s.queries.CompetitorsPerCountry()
	if err != nil {
		return nil, fmt.Errorf("failed to count competitors: %w", err)
	}

	venues, err := s.queries.VenuesPerCountry()
	if err != nil {
		return nil, fmt.Errorf("failed to count venues: %w", err)
	}

	result := map[string]interface{}{
		"competitors": competitors,
		"venues":      venues,
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "tennis://countries",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleSchemaResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "tennis://schema",
			MIMEType: "text/plain",
			Text:     storage.Schema,
		}},
	}, nil
}
