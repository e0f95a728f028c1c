// ABOUTME: MCP resource implementations for the macro calculator.
// ABOUTME: Provides macros://profile, macros://plan, and macros://summary resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/macros/internal/calc"
)

func (s *Server) registerResources() {
	// macros://profile - Stored body metrics
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "macros://profile",
		Name:        "Body Metrics Profile",
		Description: "Stored height, weight, age, sex, and activity level",
		MIMEType:    "application/json",
	}, s.handleProfileResource)

	// macros://plan - Weekly training plan
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "macros://plan",
		Name:        "Weekly Plan",
		Description: "Per-day training tiers and carb cycling ranges",
		MIMEType:    "application/json",
	}, s.handlePlanResource)

	// macros://summary - Full derived-metrics dashboard
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "macros://summary",
		Name:        "Calculator Summary",
		Description: "RMR, TDEE, calorie targets, macros, and weekly aggregation",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

// Resource handlers

func (s *Server) handleProfileResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	profile, err := s.cfg.RequireProfile()
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "macros://profile",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handlePlanResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	plan := s.cfg.GetPlan()

	days := make([]map[string]interface{}, 0, len(plan.Days))
	for _, d := range plan.Days {
		carbs := d.Activity.Carbs()
		days = append(days, map[string]interface{}{
			"day":      d.Day,
			"activity": d.Activity,
			"carbs_per_kg": map[string]float64{
				"min":     carbs.Min,
				"max":     carbs.Max,
				"optimal": carbs.Optimal,
			},
		})
	}

	data, err := json.MarshalIndent(map[string]interface{}{"days": days}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal plan: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "macros://plan",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	profile, err := s.cfg.RequireProfile()
	if err != nil {
		return nil, err
	}

	rmr := calc.RMR(*profile)
	tdee := calc.TDEE(rmr.Average, profile.Activity, profile.Sex)
	protein := s.cfg.GetProteinPerKg()
	fat := s.cfg.GetFatPerKg()
	plan := s.cfg.GetPlan()
	deficit := calc.WeeklyDeficit(tdee, plan, profile.WeightKg, protein, fat)

	result := map[string]interface{}{
		"generated_at": time.Now().Format(time.RFC3339),
		"profile":      profile,
		"rmr":          rmr,
		"tdee":         tdee,
		"targets":      calc.Targets(tdee),
		"macros":       calc.Macros(profile.WeightKg, protein, fat, s.cfg.GetCarbsPerKg()),
		"weekly": map[string]interface{}{
			"deficit":          deficit,
			"estimated_change": calc.EstimateWeightChange(deficit),
		},
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "macros://summary",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
