// ABOUTME: Assembles the full calculator report from stored settings.
// ABOUTME: Supports JSON and YAML serialization for export.
package report

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/harperreed/macros/internal/calc"
	"github.com/harperreed/macros/internal/config"
	"github.com/harperreed/macros/internal/models"
)

// Report is the full derived-metrics record for export. Everything here is
// recomputed from the profile and plan on each build; nothing is persisted.
type Report struct {
	ID          uuid.UUID              `json:"id" yaml:"id"`
	Version     string                 `json:"version" yaml:"version"`
	Tool        string                 `json:"tool" yaml:"tool"`
	GeneratedAt time.Time              `json:"generated_at" yaml:"generated_at"`
	Profile     models.Profile         `json:"profile" yaml:"profile"`
	Rmr         calc.RmrResult         `json:"rmr" yaml:"rmr"`
	Tdee        int                    `json:"tdee" yaml:"tdee"`
	Targets     calc.CalorieTargets    `json:"targets" yaml:"targets"`
	Macros      calc.MacroTargets      `json:"macros" yaml:"macros"`
	Week        []calc.DayMacrosResult `json:"week" yaml:"week"`
	WeeklyDef   int                    `json:"weekly_deficit" yaml:"weekly_deficit"`
	Change      calc.WeightChange      `json:"estimated_change" yaml:"estimated_change"`
}

// Build computes a report from the stored profile, sliders, and plan.
func Build(cfg *config.Config) (*Report, error) {
	profile, err := cfg.RequireProfile()
	if err != nil {
		return nil, err
	}

	rmr := calc.RMR(*profile)
	tdee := calc.TDEE(rmr.Average, profile.Activity, profile.Sex)
	protein := cfg.GetProteinPerKg()
	fat := cfg.GetFatPerKg()
	plan := cfg.GetPlan()

	week := make([]calc.DayMacrosResult, 0, len(plan.Days))
	for _, d := range plan.Days {
		dm := calc.DayMacros(profile.WeightKg, protein, fat, d.Activity)
		dm.Day = d.Day
		week = append(week, dm)
	}

	deficit := calc.WeeklyDeficit(tdee, plan, profile.WeightKg, protein, fat)

	return &Report{
		ID:          uuid.New(),
		Version:     "1.0",
		Tool:        "macros",
		GeneratedAt: time.Now(),
		Profile:     *profile,
		Rmr:         rmr,
		Tdee:        tdee,
		Targets:     calc.Targets(tdee),
		Macros:      calc.Macros(profile.WeightKg, protein, fat, cfg.GetCarbsPerKg()),
		Week:        week,
		WeeklyDef:   deficit,
		Change:      calc.EstimateWeightChange(deficit),
	}, nil
}

// JSON serializes the report as indented JSON.
func (r *Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// YAML serializes the report as YAML.
func (r *Report) YAML() ([]byte, error) {
	return yaml.Marshal(r)
}
