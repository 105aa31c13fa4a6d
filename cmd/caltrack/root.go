// ABOUTME: Root Cobra command for caltrack CLI.
// ABOUTME: Opens the configured store in PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sayalik/caltrack/internal/aggregate"
	"github.com/sayalik/caltrack/internal/config"
	"github.com/sayalik/caltrack/internal/store"
)

var (
	dataStore store.Store
	tracker   *aggregate.Aggregator
)

var rootCmd = &cobra.Command{
	Use:   "caltrack",
	Short: "Calorie and fitness tracker",
	Long: `Caltrack is a CLI tool for tracking food, exercise, and weight.

QUICK START:

  $ caltrack log add "Chapati" 104 --unit piece --qty 2   # Log food eaten today
  $ caltrack exercise add walking 30                      # Log a walk (calories estimated)
  $ caltrack weight add 72.5                              # Record today's weight
  $ caltrack summary                                      # Today's calories vs goal
  $ caltrack history --period week                        # Last 7 days of totals

CALCULATIONS:

  $ caltrack bmi                       # BMI from your saved profile
  $ caltrack bmi 170 70                # BMI for explicit height/weight
  $ caltrack energy                    # BMR, TDEE, and this week's deficit

PROFILE & GOALS:

  $ caltrack profile set --height 170 --gender male --dob 1999-03-14 \
      --activity moderately_active
  $ caltrack settings set --daily-goal 2000 --exercise-goal 300

DATA STORAGE:

  Data lives in a local Badger store under ~/.local/share/caltrack by
  default. Edit ~/.config/caltrack/config.json to switch backends:
  "badger" (default), "sqlite", or "charm" (Charm Cloud sync, E2E
  encrypted with your SSH key).

MCP INTEGRATION:

  Run 'caltrack mcp' to start the Model Context Protocol server for use
  with MCP-compatible AI assistants:

  {
    "mcpServers": {
      "caltrack": { "command": "caltrack", "args": ["mcp"] }
    }
  }`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip store init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		dataStore, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}
		tracker = aggregate.New(dataStore)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if dataStore != nil {
			return dataStore.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(exerciseCmd)
	rootCmd.AddCommand(weightCmd)
	rootCmd.AddCommand(foodsCmd)
	rootCmd.AddCommand(bmiCmd)
	rootCmd.AddCommand(energyCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-1] + "…"
}
