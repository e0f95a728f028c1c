// ABOUTME: CLI command for exporting the calculator report.
// ABOUTME: Supports JSON, YAML, and Markdown output formats.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/macros/internal/report"
)

var (
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export the full calculator report",
	Long: `Export the full derived-metrics report in various formats.

The report is recomputed from the stored profile, sliders, and plan each
time; nothing is read back later. Each export carries a generated ID and
timestamp.

FORMATS:

  json       Full JSON report
  yaml       YAML report (human-readable)
  markdown   Markdown tables (for documentation/sharing)

EXAMPLES:

  macros export json                  # Print JSON report
  macros export yaml                  # Print YAML report
  macros export markdown -o plan.md   # Save Markdown to a file`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		r, err := report.Build(cfg)
		if err != nil {
			return err
		}

		var data []byte
		switch format {
		case "json":
			data, err = r.JSON()
		case "yaml":
			data, err = r.YAML()
		case "markdown":
			data = []byte(r.Markdown())
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", format)
		}

		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}

		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	rootCmd.AddCommand(exportCmd)
}
