// ABOUTME: Profile model, Sex and ActivityLevel enums for calorie math.
// ABOUTME: Defines the 8-tier activity multiplier table (sex-dependent top tiers).
package models

import (
	"fmt"
)

// Sex selects the constant set used by the RMR formulas.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// ParseSex converts a string into a Sex value.
func ParseSex(s string) (Sex, error) {
	switch s {
	case "male", "m":
		return SexMale, nil
	case "female", "f":
		return SexFemale, nil
	default:
		return "", fmt.Errorf("unknown sex: %s (use male or female)", s)
	}
}

// ActivityLevel represents habitual daily activity used to scale RMR.
type ActivityLevel string

const (
	ActivityBedRest       ActivityLevel = "bed-rest"
	ActivityVerySedentary ActivityLevel = "very-sedentary"
	ActivitySedentary     ActivityLevel = "sedentary"
	ActivityLight         ActivityLevel = "light"
	ActivityLightModerate ActivityLevel = "light-moderate"
	ActivityModerate      ActivityLevel = "moderate"
	ActivityHeavy         ActivityLevel = "heavy"
	ActivityVeryHeavy     ActivityLevel = "very-heavy"
)

// AllActivityLevels returns all valid activity levels, least to most active.
var AllActivityLevels = []ActivityLevel{
	ActivityBedRest, ActivityVerySedentary, ActivitySedentary, ActivityLight,
	ActivityLightModerate, ActivityModerate, ActivityHeavy, ActivityVeryHeavy,
}

// activityMultiplier holds the TDEE multiplier per sex.
// The bottom four tiers share one value; the top four differ by sex.
type activityMultiplier struct {
	Male   float64
	Female float64
}

var activityMultipliers = map[ActivityLevel]activityMultiplier{
	ActivityBedRest:       {1.2, 1.2},
	ActivityVerySedentary: {1.3, 1.3},
	ActivitySedentary:     {1.4, 1.4},
	ActivityLight:         {1.5, 1.5},
	ActivityLightModerate: {1.7, 1.6},
	ActivityModerate:      {1.8, 1.7},
	ActivityHeavy:         {2.1, 1.9},
	ActivityVeryHeavy:     {2.3, 2.2},
}

// IsValidActivityLevel checks if a string is a valid activity level.
func IsValidActivityLevel(s string) bool {
	for _, a := range AllActivityLevels {
		if string(a) == s {
			return true
		}
	}
	return false
}

// Multiplier returns the TDEE multiplier for an activity level and sex.
func (a ActivityLevel) Multiplier(sex Sex) float64 {
	m, ok := activityMultipliers[a]
	if !ok {
		return 0
	}
	if sex == SexMale {
		return m.Male
	}
	return m.Female
}

// Weight bounds enforced at the data-entry boundary, matching the form's
// soft limits.
const (
	MinWeightKg = 30.0
	MaxWeightKg = 350.0
)

// Profile holds the body metrics the calculator derives everything from.
type Profile struct {
	HeightCm float64       `json:"height_cm"`
	WeightKg float64       `json:"weight_kg"`
	AgeYears int           `json:"age_years"`
	Sex      Sex           `json:"sex"`
	Activity ActivityLevel `json:"activity"`
}

// Validate checks the profile invariants. The calculator core assumes a
// valid profile, so every entry path goes through here.
func (p *Profile) Validate() error {
	if p.HeightCm <= 0 {
		return fmt.Errorf("height must be positive, got %.1f", p.HeightCm)
	}
	if p.WeightKg < MinWeightKg || p.WeightKg > MaxWeightKg {
		return fmt.Errorf("weight must be between %.0f and %.0f kg, got %.1f", MinWeightKg, MaxWeightKg, p.WeightKg)
	}
	if p.AgeYears <= 0 {
		return fmt.Errorf("age must be positive, got %d", p.AgeYears)
	}
	if p.Sex != SexMale && p.Sex != SexFemale {
		return fmt.Errorf("unknown sex: %s", p.Sex)
	}
	if !IsValidActivityLevel(string(p.Activity)) {
		return fmt.Errorf("unknown activity level: %s", p.Activity)
	}
	return nil
}
