// ABOUTME: CLI commands for weight tracking.
// ABOUTME: One entry per date; re-adding today overwrites.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sayalik/caltrack/internal/aggregate"
	"github.com/sayalik/caltrack/internal/metrics"
)

var weightPeriod string

var weightCmd = &cobra.Command{
	Use:     "weight",
	Aliases: []string{"w"},
	Short:   "Track body weight",
}

var weightAddCmd = &cobra.Command{
	Use:   "add <kg>",
	Short: "Record today's weight",
	Long: `Record today's weight in kg. Saving twice on the same day
overwrites. The first-ever save also becomes your initial weight, which
progress is measured against.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		weight, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid weight: %s", args[0])
		}
		entry, err := tracker.LogWeight(weight)
		if err != nil {
			return fmt.Errorf("failed to record weight: %w", err)
		}
		color.Green("✓ Recorded %.1f kg for %s", entry.Weight, entry.Date)

		u, err := dataStore.UserData()
		if err != nil {
			return nil
		}
		if delta := metrics.WeightChange(u); delta != nil && delta.Change != 0 {
			direction := "down"
			if delta.Change > 0 {
				direction = "up"
			}
			fmt.Printf("  %s %.1f kg (%.1f%%) since %s\n", direction, abs(delta.Change), abs(delta.Percentage), u.InitialWeightDate)
		}
		return nil
	},
}

var weightListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show weight history",
	Long: `Show recorded weights inside a trailing window.

Periods: week (7 days), 15days, month (30), 3months (90).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		period, err := aggregate.ParsePeriod(weightPeriod)
		if err != nil {
			return err
		}
		entries, err := tracker.WeightHistory(period)
		if err != nil {
			return fmt.Errorf("failed to load weight history: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("No weight entries in this period.")
			return nil
		}
		for _, e := range entries {
			fmt.Printf("  %s  %6.1f kg\n", e.Date, e.Weight)
		}
		return nil
	},
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func init() {
	weightCmd.AddCommand(weightAddCmd)
	weightCmd.AddCommand(weightListCmd)
	weightListCmd.Flags().StringVarP(&weightPeriod, "period", "p", "week", "window: week, 15days, month, 3months")
}
