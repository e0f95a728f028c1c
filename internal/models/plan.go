// ABOUTME: Weekly plan model with per-day training activity tiers.
// ABOUTME: Maps each tier to a carbohydrate g/kg range for carb cycling.
package models

import (
	"fmt"
	"strings"
	"time"
)

// DayActivity is the training tier assigned to a single day of the week.
// It drives only the carbohydrate allocation; protein and fat stay fixed.
type DayActivity string

const (
	DayRest     DayActivity = "rest"
	DayLight    DayActivity = "light"
	DayModerate DayActivity = "moderate"
	DayHard     DayActivity = "hard"
)

// AllDayActivities returns all valid day activity tiers, easiest first.
var AllDayActivities = []DayActivity{DayRest, DayLight, DayModerate, DayHard}

// IsValidDayActivity checks if a string is a valid day activity tier.
func IsValidDayActivity(s string) bool {
	for _, a := range AllDayActivities {
		if string(a) == s {
			return true
		}
	}
	return false
}

// CarbRange is a carbohydrate allocation band in g/kg of body weight.
type CarbRange struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Optimal float64 `json:"optimal"`
}

var carbRanges = map[DayActivity]CarbRange{
	DayRest:     {Min: 0, Max: 2.2, Optimal: 1.1},
	DayLight:    {Min: 1.1, Max: 3.3, Optimal: 2.2},
	DayModerate: {Min: 2.2, Max: 4.4, Optimal: 3.3},
	DayHard:     {Min: 3.3, Max: 5.5, Optimal: 4.4},
}

// Carbs returns the carbohydrate g/kg range for a day activity tier.
func (a DayActivity) Carbs() CarbRange {
	return carbRanges[a]
}

// Weekdays is the fixed day order of a weekly plan.
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// DayPlan assigns a training tier to one weekday.
type DayPlan struct {
	Day      string      `json:"day"`
	Activity DayActivity `json:"activity"`
}

// WeeklyPlan is an ordered sequence of 7 day entries, Monday through Sunday.
type WeeklyPlan struct {
	Days [7]DayPlan `json:"days"`
}

// NewWeeklyPlan creates a plan with every day set to moderate.
func NewWeeklyPlan() *WeeklyPlan {
	var p WeeklyPlan
	for i, day := range Weekdays {
		p.Days[i] = DayPlan{Day: day, Activity: DayModerate}
	}
	return &p
}

// SetDay assigns an activity tier to the day at the given index.
func (p *WeeklyPlan) SetDay(index int, activity DayActivity) error {
	if index < 0 || index >= len(p.Days) {
		return fmt.Errorf("day index out of range: %d", index)
	}
	if !IsValidDayActivity(string(activity)) {
		return fmt.Errorf("unknown day activity: %s", activity)
	}
	p.Days[index].Activity = activity
	return nil
}

// CopyDay overwrites every other day's activity with the source day's value.
func (p *WeeklyPlan) CopyDay(source int) error {
	if source < 0 || source >= len(p.Days) {
		return fmt.Errorf("day index out of range: %d", source)
	}
	activity := p.Days[source].Activity
	for i := range p.Days {
		p.Days[i].Activity = activity
	}
	return nil
}

// DayIndex resolves a weekday name or prefix ("tue", "Tuesday") to its index.
func DayIndex(name string) (int, error) {
	needle := strings.ToLower(name)
	if len(needle) < 3 {
		return 0, fmt.Errorf("unknown day: %s", name)
	}
	for i, day := range Weekdays {
		if strings.HasPrefix(strings.ToLower(day), needle) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown day: %s", name)
}

// IsToday reports whether the named weekday is the current wall-clock day.
func IsToday(dayName string) bool {
	return strings.EqualFold(time.Now().Weekday().String(), dayName)
}
