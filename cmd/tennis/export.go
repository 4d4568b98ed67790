// ABOUTME: CLI command for exporting the event store.
// ABOUTME: Supports JSON and YAML snapshot formats.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export all data",
	Long: `Export the full contents of all six tables in one snapshot.

FORMATS:

  json       Full JSON export (suitable for backup)
  yaml       YAML export (human-readable)

OPTIONS:

  --output, -o   Write to file instead of stdout

EXAMPLES:

  tennis export json                    # Export all data as JSON
  tennis export json -o backup.json     # Save to file
  tennis export yaml                    # Export as YAML`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		var data []byte
		var err error

		switch format {
		case "json":
			data, err = repo.ExportJSON()
		case "yaml":
			data, err = repo.ExportYAML()
		default:
			return fmt.Errorf("unknown format: %s (use json or yaml)", format)
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
