// ABOUTME: CLI command for macro allocation from per-kg sliders.
// ABOUTME: Prints grams, calories, and percentages per macronutrient.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/macros/internal/calc"
)

var (
	splitProtein float64
	splitFat     float64
	splitCarbs   float64
	splitSave    bool
)

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Allocate macros from per-kg sliders",
	Long: `Allocate protein, fat, and carbohydrate targets from g/kg sliders.

SLIDERS:

  --protein   1.3-3.3 g/kg (default 2.2)
  --fat       0.8-1.2 g/kg (default 1.0)
  --carbs     any g/kg; use the plan for carb cycling (default 3.3)

Unset sliders fall back to saved values. Pass --save to persist the
sliders for later runs and for the weekly plan.

Percentages are rounded per macro and may not sum to exactly 100.

EXAMPLES:

  macros split
  macros split --protein 2.5 --fat 0.9
  macros split --carbs 4.4 --save`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := cfg.RequireProfile()
		if err != nil {
			return err
		}

		protein := cfg.GetProteinPerKg()
		fat := cfg.GetFatPerKg()
		carbs := cfg.GetCarbsPerKg()

		if cmd.Flags().Changed("protein") {
			if splitProtein < calc.MinProteinPerKg || splitProtein > calc.MaxProteinPerKg {
				return fmt.Errorf("protein must be between %.1f and %.1f g/kg, got %.1f", calc.MinProteinPerKg, calc.MaxProteinPerKg, splitProtein)
			}
			protein = splitProtein
		}
		if cmd.Flags().Changed("fat") {
			if splitFat < calc.MinFatPerKg || splitFat > calc.MaxFatPerKg {
				return fmt.Errorf("fat must be between %.1f and %.1f g/kg, got %.1f", calc.MinFatPerKg, calc.MaxFatPerKg, splitFat)
			}
			fat = splitFat
		}
		if cmd.Flags().Changed("carbs") {
			if splitCarbs < 0 {
				return fmt.Errorf("carbs must not be negative, got %.1f", splitCarbs)
			}
			carbs = splitCarbs
		}

		m := calc.Macros(p.WeightKg, protein, fat, carbs)

		faint := color.New(color.Faint)
		fmt.Printf("%s  %s\n", padRight("Macro", 9), faint.Sprint("g/kg   grams   kcal   %"))
		printMacroRow("protein", m.Protein)
		printMacroRow("fat", m.Fat)
		printMacroRow("carbs", m.Carbs)
		fmt.Printf("%s  %s\n", padRight("total", 9), color.New(color.Bold).Sprintf("%d kcal", m.TotalCalories))

		if splitSave {
			cfg.Sliders.ProteinPerKg = protein
			cfg.Sliders.FatPerKg = fat
			cfg.Sliders.CarbsPerKg = carbs
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("failed to save sliders: %w", err)
			}
			color.Green("✓ Sliders saved")
		}

		return nil
	},
}

func printMacroRow(name string, m calc.Macro) {
	fmt.Printf("%s  %.1f    %4d g  %4d   %d%%\n",
		padRight(name, 9), m.PerKg, m.Grams, m.Calories, m.Percent)
}

func init() {
	splitCmd.Flags().Float64Var(&splitProtein, "protein", 0, "protein g/kg (1.3-3.3)")
	splitCmd.Flags().Float64Var(&splitFat, "fat", 0, "fat g/kg (0.8-1.2)")
	splitCmd.Flags().Float64Var(&splitCarbs, "carbs", 0, "carbs g/kg")
	splitCmd.Flags().BoolVar(&splitSave, "save", false, "persist sliders to config")
	rootCmd.AddCommand(splitCmd)
}
