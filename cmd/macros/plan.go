// ABOUTME: CLI commands for the 7-day carb cycling plan.
// ABOUTME: Show, set day, copy day, and weekly deficit summary.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/macros/internal/calc"
	"github.com/harperreed/macros/internal/models"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage the weekly carb cycling plan",
	Long: `Manage the 7-day carbohydrate cycling plan.

Each day carries a training tier that sets its carb allocation; protein
and fat grams stay fixed across the week.

TIERS (carbs in g/kg):

  rest       0.0-2.2, optimal 1.1
  light      1.1-3.3, optimal 2.2
  moderate   2.2-4.4, optimal 3.3
  hard       3.3-5.5, optimal 4.4

EXAMPLES:

  macros plan                   # Show the week, today highlighted
  macros plan set tue hard      # Make Tuesday a hard day
  macros plan copy tue          # Copy Tuesday's tier to all days
  macros plan summary           # Weekly deficit + weight estimate`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := cfg.RequireProfile()
		if err != nil {
			return err
		}

		plan := cfg.GetPlan()
		protein := cfg.GetProteinPerKg()
		fat := cfg.GetFatPerKg()

		faint := color.New(color.Faint)
		today := color.New(color.FgCyan, color.Bold)
		fmt.Printf("%s  %s\n", padRight("Day", 11), faint.Sprint("tier       protein  carbs  fat    kcal"))
		for _, d := range plan.Days {
			dm := calc.DayMacros(p.WeightKg, protein, fat, d.Activity)
			line := fmt.Sprintf("%s  %s  %4d g  %4d g  %3d g  %4d",
				padRight(d.Day, 11), padRight(string(d.Activity), 9),
				dm.Protein, dm.Carbs, dm.Fat, dm.Calories)
			if models.IsToday(d.Day) {
				today.Println(line)
			} else {
				fmt.Println(line)
			}
		}
		return nil
	},
}

var planSetCmd = &cobra.Command{
	Use:   "set <day> <tier>",
	Short: "Assign a training tier to a day",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := models.DayIndex(args[0])
		if err != nil {
			return err
		}
		if !models.IsValidDayActivity(args[1]) {
			return fmt.Errorf("unknown tier: %s (use rest, light, moderate, or hard)", args[1])
		}

		plan := cfg.GetPlan()
		if err := plan.SetDay(idx, models.DayActivity(args[1])); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save plan: %w", err)
		}

		color.Green("✓ Set %s to %s", plan.Days[idx].Day, args[1])
		return nil
	},
}

var planCopyCmd = &cobra.Command{
	Use:   "copy <day>",
	Short: "Copy a day's tier to every day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := models.DayIndex(args[0])
		if err != nil {
			return err
		}

		plan := cfg.GetPlan()
		if err := plan.CopyDay(idx); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save plan: %w", err)
		}

		color.Green("✓ Copied %s (%s) to all days", plan.Days[idx].Day, plan.Days[idx].Activity)
		return nil
	},
}

var planSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Weekly deficit and weight-change estimate",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := cfg.RequireProfile()
		if err != nil {
			return err
		}

		rmr := calc.RMR(*p)
		tdee := calc.TDEE(rmr.Average, p.Activity, p.Sex)
		plan := cfg.GetPlan()
		deficit := calc.WeeklyDeficit(tdee, plan, p.WeightKg, cfg.GetProteinPerKg(), cfg.GetFatPerKg())
		change := calc.EstimateWeightChange(deficit)

		faint := color.New(color.Faint)
		fmt.Printf("  %s %d kcal\n", faint.Sprint("weekly expenditure"), tdee*7)
		fmt.Printf("  %s %d kcal\n", faint.Sprint("planned intake    "), tdee*7-deficit)
		if deficit >= 0 {
			fmt.Printf("  %s %d kcal\n", faint.Sprint("weekly deficit    "), deficit)
		} else {
			fmt.Printf("  %s %d kcal\n", faint.Sprint("weekly surplus    "), -deficit)
		}
		fmt.Printf("  %s %.1f lbs/week (%s)\n", faint.Sprint("estimated change  "), change.Pounds, change.Direction)

		return nil
	},
}

func init() {
	planCmd.AddCommand(planSetCmd)
	planCmd.AddCommand(planCopyCmd)
	planCmd.AddCommand(planSummaryCmd)
	rootCmd.AddCommand(planCmd)
}
