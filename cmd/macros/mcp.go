// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harperreed/macros/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP lets AI assistants like Claude use the calculator through a
standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "macros": {
        "command": "macros",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  compute_rmr      RMR from both estimation formulas
  compute_tdee     RMR, TDEE, and calorie targets
  compute_macros   Macro grams/calories/percentages from sliders
  day_macros       One day's macros for a training tier
  weekly_summary   Weekly deficit and weight-change estimate
  set_profile      Store the body metrics profile
  get_profile      Read the stored profile
  set_plan_day     Assign a tier to one weekday
  copy_plan_day    Copy a day's tier across the week

AVAILABLE RESOURCES:

  macros://profile    Stored body metrics
  macros://plan       Weekly plan with carb ranges
  macros://summary    Full derived-metrics dashboard`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(cfg)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
