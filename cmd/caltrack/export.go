// ABOUTME: CLI commands for exporting and importing all tracked data.
// ABOUTME: Snapshots are JSON or YAML; import upserts record by record.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sayalik/caltrack/internal/store"
)

var (
	exportFormat string
	exportOutput string
	importFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data",
	Long: `Export every record (food logs, weights, exercises, custom foods,
settings, profile) as JSON or YAML.

Examples:
  caltrack export
  caltrack export --format yaml -o backup.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := store.Export(dataStore)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		out, err := data.Marshal(exportFormat)
		if err != nil {
			return err
		}

		if exportOutput == "" {
			fmt.Println(string(out))
			return nil
		}
		if err := os.WriteFile(exportOutput, out, 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOutput, err)
		}
		color.Green("✓ Exported to %s", exportOutput)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import data from an export file",
	Long: `Import a previous export. Records in the file overwrite records with
the same key; everything else is left in place. The format is inferred
from the file extension unless --format is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		format := importFormat
		if !cmd.Flags().Changed("format") {
			switch strings.ToLower(filepath.Ext(args[0])) {
			case ".yaml", ".yml":
				format = "yaml"
			default:
				format = "json"
			}
		}

		data, err := store.ParseExport(raw, format)
		if err != nil {
			return err
		}
		if err := store.Import(dataStore, data); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		color.Green("✓ Imported %d daily logs, %d weight entries, %d custom foods",
			len(data.DailyLogs), len(data.WeightEntries), len(data.CustomFoods))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "export format (json or yaml)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	importCmd.Flags().StringVarP(&importFormat, "format", "f", "json", "import format (json or yaml)")
}
