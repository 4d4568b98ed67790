// ABOUTME: MCP tool implementations for the tennis event store.
// ABOUTME: Exposes the query catalog as read-only tools.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// overview
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "overview",
		Description: "Headline stats: total competitors, countries represented, highest points",
	}, s.handleOverview)

	// list_competitions
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_competitions",
		Description: "List competitions with their category, optionally filtered by type or category name",
	}, s.handleListCompetitions)

	// top_level_competitions
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "top_level_competitions",
		Description: "List competitions that have no parent competition",
	}, s.handleTopLevelCompetitions)

	// competition_hierarchy
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "competition_hierarchy",
		Description: "List parent/child competition pairs",
	}, s.handleHierarchy)

	// venues_by_country
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "venues_by_country",
		Description: "List venues in a country, by name or country code",
	}, s.handleVenuesByCountry)

	// complex_venue_counts
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "complex_venue_counts",
		Description: "Venue counts per complex, including complexes with no venues",
	}, s.handleComplexVenueCounts)

	// top_competitors
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "top_competitors",
		Description: "Competitors whose latest rank is within the top N (default 5)",
	}, s.handleTopCompetitors)

	// latest_rankings
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "latest_rankings",
		Description: "Highest-points competitors on the most recent ranking date",
	}, s.handleLatestRankings)

	// total_points_by_country
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "total_points_by_country",
		Description: "Sum of ranking points across a country's competitors",
	}, s.handleTotalPointsByCountry)

	// competitors_per_country
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "competitors_per_country",
		Description: "Competitor counts and average points per country",
	}, s.handleCompetitorsPerCountry)
}

// Tool input/output types

type listCompetitionsInput struct {
	Type     string `json:"type,omitempty" jsonschema:"Filter by competition type (singles, doubles, mixed), case-insensitive"`
	Category string `json:"category,omitempty" jsonschema:"Filter by exact category name (e.g. ATP, WTA, ITF Men)"`
}

type countryInput struct {
	Country string `json:"country" jsonschema:"Country name or country code"`
}

type topNInput struct {
	N int `json:"n,omitempty" jsonschema:"Rank cutoff (default 5)"`
}

type limitInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 10)"`
}

type countryPointsOutput struct {
	Country     string `json:"country"`
	TotalPoints int64  `json:"total_points"`
}

// Tool handlers

func (s *Server) handleOverview(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	o, err := s.queries.Overview()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to compute overview: %w", err)
	}
	return nil, o, nil
}

func (s *Server) handleListCompetitions(ctx context.Context, req *mcp.CallToolRequest, input listCompetitionsInput) (*mcp.CallToolResult, any, error) {
	switch {
	case input.Type != "":
		comps, err := s.queries.ListCompetitionsByType(input.Type)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to list competitions: %w", err)
		}
		return nil, comps, nil
	case input.Category != "":
		comps, err := s.queries.ListCompetitionsByCategoryName(input.Category)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to list competitions: %w", err)
		}
		return nil, comps, nil
	default:
		comps, err := s.queries.ListCompetitions()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to list competitions: %w", err)
		}
		return nil, comps, nil
	}
}

func (s *Server) handleTopLevelCompetitions(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	comps, err := s.queries.ListTopLevelCompetitions()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list top-level competitions: %w", err)
	}
	return nil, comps, nil
}

func (s *Server) handleHierarchy(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	pairs, err := s.queries.ListParentChildCompetitions()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list hierarchy: %w", err)
	}
	if len(pairs) == 0 {
		return nil, map[string]interface{}{"message": "No parent/child competitions found."}, nil
	}
	return nil, pairs, nil
}

func (s *Server) handleVenuesByCountry(ctx context.Context, req *mcp.CallToolRequest, input countryInput) (*mcp.CallToolResult, any, error) {
	venues, err := s.queries.ListVenuesByCountry(input.Country)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list venues: %w", err)
	}
	if len(venues) == 0 {
		return nil, map[string]interface{}{"message": fmt.Sprintf("No venues found for %s.", input.Country)}, nil
	}
	return nil, venues, nil
}

func (s *Server) handleComplexVenueCounts(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	counts, err := s.queries.VenuesPerComplex()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to count venues: %w", err)
	}
	return nil, counts, nil
}

func (s *Server) handleTopCompetitors(ctx context.Context, req *mcp.CallToolRequest, input topNInput) (*mcp.CallToolResult, any, error) {
	ranks, err := s.queries.TopCompetitors(input.N)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list top competitors: %w", err)
	}
	if len(ranks) == 0 {
		return nil, map[string]interface{}{"message": "No ranked competitors found."}, nil
	}
	return nil, ranks, nil
}

func (s *Server) handleLatestRankings(ctx context.Context, req *mcp.CallToolRequest, input limitInput) (*mcp.CallToolResult, any, error) {
	ranks, err := s.queries.TopPointsLatest(input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list latest rankings: %w", err)
	}
	if len(ranks) == 0 {
		return nil, map[string]interface{}{"message": "No ranking snapshots found."}, nil
	}
	return nil, ranks, nil
}

func (s *Server) handleTotalPointsByCountry(ctx context.Context, req *mcp.CallToolRequest, input countryInput) (*mcp.CallToolResult, countryPointsOutput, error) {
	total, err := s.queries.TotalPointsByCountry(input.Country)
	if err != nil {
		return nil, countryPointsOutput{}, fmt.Errorf("failed to sum points: %w", err)
	}
	return nil, countryPointsOutput{Country: input.Country, TotalPoints: total}, nil
}

func (s *Server) handleCompetitorsPerCountry(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	counts, err := s.queries.CompetitorsPerCountry()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to count competitors: %w", err)
	}
	return nil, counts, nil
}
