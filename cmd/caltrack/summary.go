// ABOUTME: CLI command showing one day's calorie position against the goals.
// ABOUTME: Default date is today; --date overrides.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var summaryDate string

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show a day's calorie summary",
	Long: `Show consumed, burned, and net calories for a day against your goals.

Examples:
  caltrack summary
  caltrack summary --date 2026-08-30`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(summaryDate)
		if err != nil {
			return err
		}
		s, err := tracker.DaySummary(date)
		if err != nil {
			return fmt.Errorf("failed to build summary: %w", err)
		}

		fmt.Printf("Summary for %s\n", s.Date)
		fmt.Printf("  Consumed: %8.0f kcal\n", s.ConsumedCalories)
		fmt.Printf("  Burned:   %8d kcal\n", s.ExerciseCalories)
		fmt.Printf("  Net:      %8d kcal (goal %d)\n", s.NetCalories, s.GoalCalories)

		if s.OverGoal {
			color.Red("  %d kcal over goal", -s.RemainingCalories)
		} else {
			color.Green("  %d kcal remaining", s.RemainingCalories)
		}
		if s.ExerciseGoalMet {
			color.Green("  ✓ Exercise goal met")
		}
		return nil
	},
}

func init() {
	summaryCmd.Flags().StringVarP(&summaryDate, "date", "d", "", "date (YYYY-MM-DD, default today)")
}
