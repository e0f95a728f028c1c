// ABOUTME: Markdown rendering for calculator reports.
// ABOUTME: Pipe tables for RMR, calorie targets, macros, and the weekly plan.
package report

import (
	"fmt"
	"strings"
	"time"
)

// Markdown renders the report as a markdown document.
func (r *Report) Markdown() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Macro Report - %s\n\n", r.GeneratedAt.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))

	sb.WriteString("## Profile\n\n")
	sb.WriteString("| Height | Weight | Age | Sex | Activity |\n")
	sb.WriteString("|--------|--------|-----|-----|----------|\n")
	sb.WriteString(fmt.Sprintf("| %.1f cm | %.1f kg | %d | %s | %s |\n\n",
		r.Profile.HeightCm, r.Profile.WeightKg, r.Profile.AgeYears,
		r.Profile.Sex, r.Profile.Activity))

	sb.WriteString("## Energy\n\n")
	sb.WriteString("| Mifflin-St Jeor | Harris-Benedict | RMR Average | TDEE |\n")
	sb.WriteString("|-----------------|-----------------|-------------|------|\n")
	sb.WriteString(fmt.Sprintf("| %d kcal | %d kcal | %d kcal | %d kcal |\n\n",
		r.Rmr.Mifflin, r.Rmr.HarrisBenedict, r.Rmr.Average, r.Tdee))

	sb.WriteString("## Calorie Targets\n\n")
	sb.WriteString("| Loss | Maintain | Gain |\n")
	sb.WriteString("|------|----------|------|\n")
	sb.WriteString(fmt.Sprintf("| %d kcal | %d kcal | %d kcal |\n\n",
		r.Targets.Loss, r.Targets.Maintain, r.Targets.Gain))

	sb.WriteString("## Macros\n\n")
	sb.WriteString("| Macro | g/kg | Grams | Calories | % |\n")
	sb.WriteString("|-------|------|-------|----------|---|\n")
	sb.WriteString(fmt.Sprintf("| Protein | %.1f | %d g | %d kcal | %d%% |\n",
		r.Macros.Protein.PerKg, r.Macros.Protein.Grams, r.Macros.Protein.Calories, r.Macros.Protein.Percent))
	sb.WriteString(fmt.Sprintf("| Fat | %.1f | %d g | %d kcal | %d%% |\n",
		r.Macros.Fat.PerKg, r.Macros.Fat.Grams, r.Macros.Fat.Calories, r.Macros.Fat.Percent))
	sb.WriteString(fmt.Sprintf("| Carbs | %.1f | %d g | %d kcal | %d%% |\n",
		r.Macros.Carbs.PerKg, r.Macros.Carbs.Grams, r.Macros.Carbs.Calories, r.Macros.Carbs.Percent))
	sb.WriteString(fmt.Sprintf("| **Total** | | | %d kcal | |\n\n", r.Macros.TotalCalories))

	sb.WriteString("## Weekly Plan\n\n")
	sb.WriteString("| Day | Activity | Protein | Carbs | Fat | Calories |\n")
	sb.WriteString("|-----|----------|---------|-------|-----|----------|\n")
	for _, d := range r.Week {
		sb.WriteString(fmt.Sprintf("| %s | %s | %d g | %d g | %d g | %d kcal |\n",
			d.Day, d.Activity, d.Protein, d.Carbs, d.Fat, d.Calories))
	}
	sb.WriteString("\n")

	direction := "deficit"
	if r.WeeklyDef < 0 {
		direction = "surplus"
	}
	sb.WriteString(fmt.Sprintf("Weekly %s: %d kcal, estimated %s of %.1f lbs/week.\n",
		direction, abs(r.WeeklyDef), r.Change.Direction, r.Change.Pounds))

	return sb.String()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
