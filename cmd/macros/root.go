// ABOUTME: Root Cobra command for macros CLI.
// ABOUTME: Loads the config store once via PersistentPreRunE.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/macros/internal/config"
)

var (
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "macros",
	Short: "Macronutrient and calorie-needs calculator",
	Long: `Macros is a CLI calculator for daily calorie and macronutrient targets.

WHAT IT COMPUTES:

  RMR            resting metabolic rate (Mifflin-St Jeor + Harris-Benedict)
  TDEE           total daily energy expenditure from an 8-tier activity table
  Targets        loss / maintain / gain calorie goals (fixed ±500 kcal)
  Macros         protein, fat, and carb grams from per-kg sliders
  Weekly plan    carb cycling across 7 days with a deficit estimate

QUICK START:

  $ macros profile set --height 182 --weight 85.3 --age 39 \
      --sex female --activity moderate
  $ macros show                       # RMR, TDEE, calorie targets
  $ macros split --protein 2.2        # Macro allocation table
  $ macros plan                       # Weekly carb cycling plan
  $ macros plan set tue hard          # Make Tuesday a hard training day
  $ macros plan summary               # Weekly deficit + weight estimate

MCP INTEGRATION:

  Run 'macros mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants. Add to your Claude
  config:

  {
    "mcpServers": {
      "macros": { "command": "macros", "args": ["mcp"] }
    }
  }

SETTINGS:

  Your profile, sliders, and plan live at ~/.config/macros/config.json.
  Override the location with MACROS_CONFIG; disable color with
  MACROS_NO_COLOR. All outputs are recomputed on every run.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config load for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		env, err := config.ParseEnv()
		if err != nil {
			return err
		}
		if env.NoColor {
			color.NoColor = true
		}

		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
}
