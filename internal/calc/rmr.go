// ABOUTME: RMR estimation via Mifflin-St Jeor and Harris-Benedict formulas.
// ABOUTME: Derives TDEE and loss/maintain/gain calorie targets from RMR.
package calc

import (
	"math"

	"github.com/harperreed/macros/internal/models"
)

// RmrResult holds both RMR estimates and their average, in kcal/day.
// Each value is rounded independently; Average is computed from the
// already-rounded pair (round-then-store).
type RmrResult struct {
	Mifflin        int `json:"mifflin"`
	HarrisBenedict int `json:"harris_benedict"`
	Average        int `json:"average"`
}

// RMR computes resting metabolic rate from a profile using both formulas.
func RMR(p models.Profile) RmrResult {
	w, h, a := p.WeightKg, p.HeightCm, float64(p.AgeYears)

	mifflin := 10*w + 6.25*h - 5*a
	if p.Sex == models.SexMale {
		mifflin += 5
	} else {
		mifflin -= 161
	}

	var harris float64
	if p.Sex == models.SexMale {
		harris = 88.362 + 13.397*w + 4.799*h - 5.677*a
	} else {
		harris = 447.593 + 9.247*w + 3.098*h - 4.330*a
	}

	m := int(math.Round(mifflin))
	hb := int(math.Round(harris))
	return RmrResult{
		Mifflin:        m,
		HarrisBenedict: hb,
		Average:        int(math.Round(float64(m+hb) / 2)),
	}
}

// TDEE scales the rounded RMR average by the sex-dependent activity multiplier.
func TDEE(rmrAverage int, activity models.ActivityLevel, sex models.Sex) int {
	return int(math.Round(float64(rmrAverage) * activity.Multiplier(sex)))
}

// CalorieTargets are daily calorie goals around a TDEE.
type CalorieTargets struct {
	Loss     int `json:"loss"`
	Maintain int `json:"maintain"`
	Gain     int `json:"gain"`
}

// Targets derives calorie goals from TDEE using a fixed ±500 kcal offset.
func Targets(tdee int) CalorieTargets {
	return CalorieTargets{
		Loss:     tdee - 500,
		Maintain: tdee,
		Gain:     tdee + 500,
	}
}
