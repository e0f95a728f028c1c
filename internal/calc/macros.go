// ABOUTME: Macronutrient allocation from per-kg sliders.
// ABOUTME: Grams, calories, and independently-rounded percentages per macro.
package calc

import (
	"math"
)

// Calories per gram of each macronutrient.
const (
	CaloriesPerGramProtein = 4
	CaloriesPerGramFat     = 9
	CaloriesPerGramCarbs   = 4
)

// Slider bounds for the per-kg allocation inputs.
const (
	MinProteinPerKg = 1.3
	MaxProteinPerKg = 3.3
	MinFatPerKg     = 0.8
	MaxFatPerKg     = 1.2
)

// Macro is one macronutrient's allocation for a day.
type Macro struct {
	PerKg    float64 `json:"per_kg"`
	Grams    int     `json:"grams"`
	Calories int     `json:"calories"`
	Percent  int     `json:"percent"`
}

// MacroTargets is the full protein/fat/carb allocation for a day.
// Percentages are rounded independently and may not sum to exactly 100.
type MacroTargets struct {
	Protein       Macro `json:"protein"`
	Fat           Macro `json:"fat"`
	Carbs         Macro `json:"carbs"`
	TotalCalories int   `json:"total_calories"`
}

// Macros allocates macronutrients from body weight and per-kg sliders.
// When every slider is zero, total calories is zero and all percentages
// are reported as zero rather than dividing by zero.
func Macros(weightKg, proteinPerKg, fatPerKg, carbsPerKg float64) MacroTargets {
	proteinG := int(math.Round(weightKg * proteinPerKg))
	fatG := int(math.Round(weightKg * fatPerKg))
	carbsG := int(math.Round(weightKg * carbsPerKg))

	proteinCal := proteinG * CaloriesPerGramProtein
	fatCal := fatG * CaloriesPerGramFat
	carbsCal := carbsG * CaloriesPerGramCarbs
	total := proteinCal + fatCal + carbsCal

	return MacroTargets{
		Protein: Macro{
			PerKg:    proteinPerKg,
			Grams:    proteinG,
			Calories: proteinCal,
			Percent:  percentOf(proteinCal, total),
		},
		Fat: Macro{
			PerKg:    fatPerKg,
			Grams:    fatG,
			Calories: fatCal,
			Percent:  percentOf(fatCal, total),
		},
		Carbs: Macro{
			PerKg:    carbsPerKg,
			Grams:    carbsG,
			Calories: carbsCal,
			Percent:  percentOf(carbsCal, total),
		},
		TotalCalories: total,
	}
}

// percentOf rounds part/total to a whole percent, 0 when total is zero.
func percentOf(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
