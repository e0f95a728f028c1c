// ABOUTME: Weekly plan aggregation: per-day macros and calorie deficit.
// ABOUTME: Estimates weight change from the 3500 kcal/lb fat constant.
package calc

import (
	"math"

	"github.com/harperreed/macros/internal/models"
)

// CaloriesPerPound is the fixed conversion between a calorie deficit and
// body fat weight.
const CaloriesPerPound = 3500

// DayMacrosResult is the macro allocation for one planned day. Protein and
// fat are fixed regardless of the day's tier; carbs follow the tier's
// optimal g/kg.
type DayMacrosResult struct {
	Day      string `json:"day,omitempty"`
	Activity string `json:"activity"`
	Protein  int    `json:"protein"`
	Carbs    int    `json:"carbs"`
	Fat      int    `json:"fat"`
	Calories int    `json:"calories"`
}

// DayMacros computes one day's macro grams and calories for an activity tier.
func DayMacros(weightKg, proteinPerKg, fatPerKg float64, activity models.DayActivity) DayMacrosResult {
	proteinG := int(math.Round(weightKg * proteinPerKg))
	fatG := int(math.Round(weightKg * fatPerKg))
	carbsG := int(math.Round(weightKg * activity.Carbs().Optimal))

	return DayMacrosResult{
		Activity: string(activity),
		Protein:  proteinG,
		Carbs:    carbsG,
		Fat:      fatG,
		Calories: proteinG*CaloriesPerGramProtein + fatG*CaloriesPerGramFat + carbsG*CaloriesPerGramCarbs,
	}
}

// WeeklyDeficit is the weekly calorie deficit (positive) or surplus
// (negative) implied by eating to the plan while expending TDEE daily.
func WeeklyDeficit(tdee int, plan *models.WeeklyPlan, weightKg, proteinPerKg, fatPerKg float64) int {
	planned := 0
	for _, d := range plan.Days {
		planned += DayMacros(weightKg, proteinPerKg, fatPerKg, d.Activity).Calories
	}
	return tdee*7 - planned
}

// Direction of the estimated weekly weight change.
type Direction string

const (
	DirectionLoss Direction = "loss"
	DirectionGain Direction = "gain"
)

// WeightChange is an estimated weekly body weight change.
type WeightChange struct {
	Pounds    float64   `json:"pounds"`
	Direction Direction `json:"direction"`
}

// EstimateWeightChange converts a weekly deficit into pounds per week,
// rounded to one decimal. A zero deficit reports as gain of 0.0 lbs.
func EstimateWeightChange(weeklyDeficit int) WeightChange {
	pounds := math.Round(math.Abs(float64(weeklyDeficit))/CaloriesPerPound*10) / 10
	direction := DirectionGain
	if weeklyDeficit > 0 {
		direction = DirectionLoss
	}
	return WeightChange{Pounds: pounds, Direction: direction}
}
