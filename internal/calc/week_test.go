// ABOUTME: Tests for weekly plan aggregation and weight-change estimation.
// ABOUTME: Covers per-tier day macros, deficit sign, and pound rounding.
package calc

import (
	"testing"

	"github.com/harperreed/macros/internal/models"
)

func TestDayMacrosPerTier(t *testing.T) {
	// 85.3 kg, protein 2.2, fat 1.0: protein 188 g, fat 85 g fixed; carbs
	// follow each tier's optimal g/kg.
	tests := []struct {
		activity     models.DayActivity
		wantCarbs    int
		wantCalories int
	}{
		{models.DayRest, 94, 1893},      // 85.3*1.1 = 93.83
		{models.DayLight, 188, 2269},    // 85.3*2.2 = 187.66
		{models.DayModerate, 281, 2641}, // 85.3*3.3 = 281.49
		{models.DayHard, 375, 3017},     // 85.3*4.4 = 375.32
	}

	for _, tt := range tests {
		t.Run(string(tt.activity), func(t *testing.T) {
			got := DayMacros(85.3, 2.2, 1.0, tt.activity)

			if got.Protein != 188 {
				t.Errorf("Protein = %d, want 188 regardless of tier", got.Protein)
			}
			if got.Fat != 85 {
				t.Errorf("Fat = %d, want 85 regardless of tier", got.Fat)
			}
			if got.Carbs != tt.wantCarbs {
				t.Errorf("Carbs = %d, want %d", got.Carbs, tt.wantCarbs)
			}
			if got.Calories != tt.wantCalories {
				t.Errorf("Calories = %d, want %d", got.Calories, tt.wantCalories)
			}
		})
	}
}

func TestWeeklyDeficit(t *testing.T) {
	plan := models.NewWeeklyPlan() // all moderate: 7 * 2641 = 18487

	got := WeeklyDeficit(2776, plan, 85.3, 2.2, 1.0)
	want := 2776*7 - 18487 // 945
	if got != want {
		t.Errorf("WeeklyDeficit = %d, want %d", got, want)
	}
}

func TestWeeklyDeficitAllRest(t *testing.T) {
	plan := models.NewWeeklyPlan()
	for i := range plan.Days {
		plan.Days[i].Activity = models.DayRest
	}

	// all rest: 7 * 1893 = 13251
	got := WeeklyDeficit(2776, plan, 85.3, 2.2, 1.0)
	want := 2776*7 - 13251 // 6181
	if got != want {
		t.Errorf("WeeklyDeficit = %d, want %d", got, want)
	}
}

func TestWeeklySurplus(t *testing.T) {
	plan := models.NewWeeklyPlan()
	for i := range plan.Days {
		plan.Days[i].Activity = models.DayHard
	}

	// all hard: 7 * 3017 = 21119 > 7 * 2776 = 19432
	got := WeeklyDeficit(2776, plan, 85.3, 2.2, 1.0)
	if got >= 0 {
		t.Errorf("WeeklyDeficit = %d, want negative (surplus)", got)
	}
	if got != 19432-21119 {
		t.Errorf("WeeklyDeficit = %d, want %d", got, 19432-21119)
	}
}

func TestEstimateWeightChange(t *testing.T) {
	tests := []struct {
		name          string
		deficit       int
		wantPounds    float64
		wantDirection Direction
	}{
		{"one pound loss", 3500, 1.0, DirectionLoss},
		{"half pound loss", 1750, 0.5, DirectionLoss},
		{"small deficit rounds to a tenth", 175, 0.1, DirectionLoss},
		{"zero deficit reads as gain", 0, 0.0, DirectionGain},
		{"one pound gain", -3500, 1.0, DirectionGain},
		{"large deficit", 6181, 1.8, DirectionLoss}, // 6181/3500 = 1.766
		{"surplus", -1687, 0.5, DirectionGain},      // 1687/3500 = 0.482
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateWeightChange(tt.deficit)
			if got.Pounds != tt.wantPounds {
				t.Errorf("Pounds = %.1f, want %.1f", got.Pounds, tt.wantPounds)
			}
			if got.Direction != tt.wantDirection {
				t.Errorf("Direction = %s, want %s", got.Direction, tt.wantDirection)
			}
		})
	}
}
