// ABOUTME: CLI command for showing RMR, TDEE, and calorie targets.
// ABOUTME: Recomputes everything from the stored profile on each run.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/macros/internal/calc"
)

var showCmd = &cobra.Command{
	Use:     "show",
	Aliases: []string{"s"},
	Short:   "Show RMR, TDEE, and calorie targets",
	Long: `Show the derived energy numbers for the stored profile.

OUTPUT:

  RMR from both estimation formulas plus their average, the TDEE after
  applying the activity multiplier, and calorie targets for losing,
  maintaining, and gaining weight (±500 kcal around TDEE).

EXAMPLES:

  macros show`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := cfg.RequireProfile()
		if err != nil {
			return err
		}

		rmr := calc.RMR(*p)
		tdee := calc.TDEE(rmr.Average, p.Activity, p.Sex)
		targets := calc.Targets(tdee)

		faint := color.New(color.Faint)
		bold := color.New(color.Bold)

		fmt.Println("Resting metabolic rate")
		fmt.Printf("  %s %d kcal\n", faint.Sprint("mifflin-st jeor"), rmr.Mifflin)
		fmt.Printf("  %s %d kcal\n", faint.Sprint("harris-benedict"), rmr.HarrisBenedict)
		fmt.Printf("  %s %s\n", faint.Sprint("average        "), bold.Sprintf("%d kcal", rmr.Average))

		fmt.Printf("\nTDEE (%s ×%.2f)\n", p.Activity, p.Activity.Multiplier(p.Sex))
		fmt.Printf("  %s\n", bold.Sprintf("%d kcal", tdee))

		fmt.Println("\nCalorie targets")
		fmt.Printf("  %s %d kcal\n", faint.Sprint("loss     "), targets.Loss)
		fmt.Printf("  %s %d kcal\n", faint.Sprint("maintain "), targets.Maintain)
		fmt.Printf("  %s %d kcal\n", faint.Sprint("gain     "), targets.Gain)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
