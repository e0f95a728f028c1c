// ABOUTME: CLI commands for setting and showing the body metrics profile.
// ABOUTME: Validates inputs at the boundary before anything is persisted.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/macros/internal/models"
)

var (
	profileHeight   float64
	profileWeight   float64
	profileAge      int
	profileSex      string
	profileActivity string
)

var profileCmd = &cobra.Command{
	Use:     "profile",
	Aliases: []string{"p"},
	Short:   "Manage the body metrics profile",
	Long: `Manage the body metrics profile everything else derives from.

The profile holds height, weight, age, sex, and habitual activity level.
All derived values (RMR, TDEE, macros, weekly plan) are recomputed from it
on every run.

ACTIVITY LEVELS:

  bed-rest, very-sedentary, sedentary, light, light-moderate,
  moderate, heavy, very-heavy

EXAMPLES:

  macros profile set --height 182 --weight 85.3 --age 39 --sex female --activity moderate
  macros profile set --weight 84.1      # Update just the weight
  macros profile show`,
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set or update the profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := models.Profile{}
		if cfg.Profile != nil {
			p = *cfg.Profile
		}

		if cmd.Flags().Changed("height") {
			p.HeightCm = profileHeight
		}
		if cmd.Flags().Changed("weight") {
			p.WeightKg = profileWeight
		}
		if cmd.Flags().Changed("age") {
			p.AgeYears = profileAge
		}
		if cmd.Flags().Changed("sex") {
			sex, err := models.ParseSex(profileSex)
			if err != nil {
				return err
			}
			p.Sex = sex
		}
		if cmd.Flags().Changed("activity") {
			if !models.IsValidActivityLevel(profileActivity) {
				return fmt.Errorf("unknown activity level: %s\nValid levels: bed-rest, very-sedentary, sedentary, light, light-moderate, moderate, heavy, very-heavy", profileActivity)
			}
			p.Activity = models.ActivityLevel(profileActivity)
		}

		if err := p.Validate(); err != nil {
			return err
		}

		cfg.Profile = &p
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}

		color.Green("✓ Profile saved")
		printProfile(&p)
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := cfg.RequireProfile()
		if err != nil {
			return err
		}
		printProfile(p)
		return nil
	},
}

func printProfile(p *models.Profile) {
	faint := color.New(color.Faint)
	fmt.Printf("  %s %.1f cm\n", faint.Sprint("height  "), p.HeightCm)
	fmt.Printf("  %s %.1f kg\n", faint.Sprint("weight  "), p.WeightKg)
	fmt.Printf("  %s %d years\n", faint.Sprint("age     "), p.AgeYears)
	fmt.Printf("  %s %s\n", faint.Sprint("sex     "), p.Sex)
	fmt.Printf("  %s %s (×%.2f)\n", faint.Sprint("activity"), p.Activity, p.Activity.Multiplier(p.Sex))
}

func init() {
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "height in centimeters")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "weight in kilograms (30-350)")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "age in years")
	profileSetCmd.Flags().StringVar(&profileSex, "sex", "", "sex (male or female)")
	profileSetCmd.Flags().StringVar(&profileActivity, "activity", "", "activity level")

	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileShowCmd)
	rootCmd.AddCommand(profileCmd)
}
