// ABOUTME: MCP tool implementations for the macro calculator.
// ABOUTME: Pure calculation tools plus profile and weekly plan operations.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/macros/internal/calc"
	"github.com/harperreed/macros/internal/models"
)

func (s *Server) registerTools() {
	// compute_rmr
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "compute_rmr",
		Description: "Compute resting metabolic rate (Mifflin-St Jeor and Harris-Benedict)",
	}, s.handleComputeRmr)

	// compute_tdee
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "compute_tdee",
		Description: "Compute RMR, TDEE, and loss/maintain/gain calorie targets",
	}, s.handleComputeTdee)

	// compute_macros
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "compute_macros",
		Description: "Allocate protein/fat/carb grams and calories from per-kg sliders",
	}, s.handleComputeMacros)

	// day_macros
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "day_macros",
		Description: "Compute one day's macros for a training tier (carb cycling)",
	}, s.handleDayMacros)

	// weekly_summary
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "weekly_summary",
		Description: "Aggregate the stored weekly plan into a calorie deficit and weight-change estimate",
	}, s.handleWeeklySummary)

	// set_profile
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_profile",
		Description: "Store the body metrics profile used by weekly_summary",
	}, s.handleSetProfile)

	// get_profile
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_profile",
		Description: "Get the stored body metrics profile",
	}, s.handleGetProfile)

	// set_plan_day
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_plan_day",
		Description: "Assign a training tier to one day of the weekly plan",
	}, s.handleSetPlanDay)

	// copy_plan_day
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "copy_plan_day",
		Description: "Copy one day's training tier to every day of the week",
	}, s.handleCopyPlanDay)
}

// Tool input/output types

type profileInput struct {
	HeightCm float64 `json:"height_cm" jsonschema:"Height in centimeters"`
	WeightKg float64 `json:"weight_kg" jsonschema:"Weight in kilograms (30-350)"`
	AgeYears int     `json:"age_years" jsonschema:"Age in years"`
	Sex      string  `json:"sex" jsonschema:"Sex (male or female)"`
}

type tdeeInput struct {
	HeightCm float64 `json:"height_cm" jsonschema:"Height in centimeters"`
	WeightKg float64 `json:"weight_kg" jsonschema:"Weight in kilograms (30-350)"`
	AgeYears int     `json:"age_years" jsonschema:"Age in years"`
	Sex      string  `json:"sex" jsonschema:"Sex (male or female)"`
	Activity string  `json:"activity" jsonschema:"Activity level (bed-rest, very-sedentary, sedentary, light, light-moderate, moderate, heavy, very-heavy)"`
}

type tdeeOutput struct {
	Rmr     calc.RmrResult      `json:"rmr"`
	Tdee    int                 `json:"tdee"`
	Targets calc.CalorieTargets `json:"targets"`
}

type macrosInput struct {
	WeightKg     float64 `json:"weight_kg" jsonschema:"Weight in kilograms"`
	ProteinPerKg float64 `json:"protein_per_kg" jsonschema:"Protein grams per kg (1.3-3.3)"`
	FatPerKg     float64 `json:"fat_per_kg" jsonschema:"Fat grams per kg (0.8-1.2)"`
	CarbsPerKg   float64 `json:"carbs_per_kg" jsonschema:"Carb grams per kg"`
}

type dayMacrosInput struct {
	WeightKg     float64 `json:"weight_kg" jsonschema:"Weight in kilograms"`
	ProteinPerKg float64 `json:"protein_per_kg" jsonschema:"Protein grams per kg"`
	FatPerKg     float64 `json:"fat_per_kg" jsonschema:"Fat grams per kg"`
	Activity     string  `json:"activity" jsonschema:"Training tier (rest, light, moderate, hard)"`
}

type weeklySummaryInput struct{}

type weeklySummaryOutput struct {
	Tdee          int                    `json:"tdee"`
	Week          []calc.DayMacrosResult `json:"week"`
	WeeklyDeficit int                    `json:"weekly_deficit"`
	Change        calc.WeightChange      `json:"estimated_change"`
}

type setProfileInput struct {
	HeightCm float64 `json:"height_cm" jsonschema:"Height in centimeters"`
	WeightKg float64 `json:"weight_kg" jsonschema:"Weight in kilograms (30-350)"`
	AgeYears int     `json:"age_years" jsonschema:"Age in years"`
	Sex      string  `json:"sex" jsonschema:"Sex (male or female)"`
	Activity string  `json:"activity" jsonschema:"Activity level"`
}

type getProfileInput struct{}

type planDayInput struct {
	Day      string `json:"day" jsonschema:"Weekday name (Monday through Sunday)"`
	Activity string `json:"activity" jsonschema:"Training tier (rest, light, moderate, hard)"`
}

type copyDayInput struct {
	Day string `json:"day" jsonschema:"Weekday whose tier is copied to all days"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// profileFromInput validates the raw input into a Profile. The activity
// level may be empty for tools that only need the RMR formulas.
func profileFromInput(in profileInput, activity string) (models.Profile, error) {
	sex, err := models.ParseSex(in.Sex)
	if err != nil {
		return models.Profile{}, err
	}
	if activity == "" {
		activity = string(models.ActivitySedentary)
	}
	if !models.IsValidActivityLevel(activity) {
		return models.Profile{}, fmt.Errorf("unknown activity level: %s", activity)
	}
	p := models.Profile{
		HeightCm: in.HeightCm,
		WeightKg: in.WeightKg,
		AgeYears: in.AgeYears,
		Sex:      sex,
		Activity: models.ActivityLevel(activity),
	}
	if err := p.Validate(); err != nil {
		return models.Profile{}, err
	}
	return p, nil
}

// Tool handlers

func (s *Server) handleComputeRmr(ctx context.Context, req *mcp.CallToolRequest, input profileInput) (*mcp.CallToolResult, calc.RmrResult, error) {
	p, err := profileFromInput(input, "")
	if err != nil {
		return nil, calc.RmrResult{}, err
	}
	return nil, calc.RMR(p), nil
}

func (s *Server) handleComputeTdee(ctx context.Context, req *mcp.CallToolRequest, input tdeeInput) (*mcp.CallToolResult, tdeeOutput, error) {
	p, err := profileFromInput(profileInput{
		HeightCm: input.HeightCm,
		WeightKg: input.WeightKg,
		AgeYears: input.AgeYears,
		Sex:      input.Sex,
	}, input.Activity)
	if err != nil {
		return nil, tdeeOutput{}, err
	}

	rmr := calc.RMR(p)
	tdee := calc.TDEE(rmr.Average, p.Activity, p.Sex)
	return nil, tdeeOutput{
		Rmr:     rmr,
		Tdee:    tdee,
		Targets: calc.Targets(tdee),
	}, nil
}

func (s *Server) handleComputeMacros(ctx context.Context, req *mcp.CallToolRequest, input macrosInput) (*mcp.CallToolResult, calc.MacroTargets, error) {
	if input.WeightKg <= 0 {
		return nil, calc.MacroTargets{}, fmt.Errorf("weight must be positive, got %.1f", input.WeightKg)
	}
	return nil, calc.Macros(input.WeightKg, input.ProteinPerKg, input.FatPerKg, input.CarbsPerKg), nil
}

func (s *Server) handleDayMacros(ctx context.Context, req *mcp.CallToolRequest, input dayMacrosInput) (*mcp.CallToolResult, calc.DayMacrosResult, error) {
	if input.WeightKg <= 0 {
		return nil, calc.DayMacrosResult{}, fmt.Errorf("weight must be positive, got %.1f", input.WeightKg)
	}
	if !models.IsValidDayActivity(input.Activity) {
		return nil, calc.DayMacrosResult{}, fmt.Errorf("unknown day activity: %s (use rest, light, moderate, or hard)", input.Activity)
	}
	return nil, calc.DayMacros(input.WeightKg, input.ProteinPerKg, input.FatPerKg, models.DayActivity(input.Activity)), nil
}

func (s *Server) handleWeeklySummary(ctx context.Context, req *mcp.CallToolRequest, input weeklySummaryInput) (*mcp.CallToolResult, weeklySummaryOutput, error) {
	profile, err := s.cfg.RequireProfile()
	if err != nil {
		return nil, weeklySummaryOutput{}, err
	}

	rmr := calc.RMR(*profile)
	tdee := calc.TDEE(rmr.Average, profile.Activity, profile.Sex)
	protein := s.cfg.GetProteinPerKg()
	fat := s.cfg.GetFatPerKg()
	plan := s.cfg.GetPlan()

	week := make([]calc.DayMacrosResult, 0, len(plan.Days))
	for _, d := range plan.Days {
		dm := calc.DayMacros(profile.WeightKg, protein, fat, d.Activity)
		dm.Day = d.Day
		week = append(week, dm)
	}

	deficit := calc.WeeklyDeficit(tdee, plan, profile.WeightKg, protein, fat)
	return nil, weeklySummaryOutput{
		Tdee:          tdee,
		Week:          week,
		WeeklyDeficit: deficit,
		Change:        calc.EstimateWeightChange(deficit),
	}, nil
}

func (s *Server) handleSetProfile(ctx context.Context, req *mcp.CallToolRequest, input setProfileInput) (*mcp.CallToolResult, simpleOutput, error) {
	p, err := profileFromInput(profileInput{
		HeightCm: input.HeightCm,
		WeightKg: input.WeightKg,
		AgeYears: input.AgeYears,
		Sex:      input.Sex,
	}, input.Activity)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	s.cfg.Profile = &p
	if err := s.cfg.Save(); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save profile: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Profile saved: %.1f cm, %.1f kg, %d years, %s, %s", p.HeightCm, p.WeightKg, p.AgeYears, p.Sex, p.Activity),
	}, nil
}

func (s *Server) handleGetProfile(ctx context.Context, req *mcp.CallToolRequest, input getProfileInput) (*mcp.CallToolResult, models.Profile, error) {
	profile, err := s.cfg.RequireProfile()
	if err != nil {
		return nil, models.Profile{}, err
	}
	return nil, *profile, nil
}

func (s *Server) handleSetPlanDay(ctx context.Context, req *mcp.CallToolRequest, input planDayInput) (*mcp.CallToolResult, simpleOutput, error) {
	idx, err := models.DayIndex(input.Day)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	plan := s.cfg.GetPlan()
	if err := plan.SetDay(idx, models.DayActivity(input.Activity)); err != nil {
		return nil, simpleOutput{}, err
	}
	if err := s.cfg.Save(); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save plan: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Set %s to %s", plan.Days[idx].Day, input.Activity),
	}, nil
}

func (s *Server) handleCopyPlanDay(ctx context.Context, req *mcp.CallToolRequest, input copyDayInput) (*mcp.CallToolResult, simpleOutput, error) {
	idx, err := models.DayIndex(input.Day)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	plan := s.cfg.GetPlan()
	if err := plan.CopyDay(idx); err != nil {
		return nil, simpleOutput{}, err
	}
	if err := s.cfg.Save(); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save plan: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Copied %s (%s) to all days", plan.Days[idx].Day, plan.Days[idx].Activity),
	}, nil
}
