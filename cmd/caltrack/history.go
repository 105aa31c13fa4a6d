// ABOUTME: CLI command for trailing calorie history windows.
// ABOUTME: Renders a simple bar per day scaled against the daily goal.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sayalik/caltrack/internal/aggregate"
)

var historyPeriod string

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show calorie history",
	Long: `Show daily calorie totals over a trailing window ending today. Days
with nothing logged show as zero.

Examples:
  caltrack history
  caltrack history --period month`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := aggregate.ParsePeriod(historyPeriod)
		if err != nil {
			return err
		}
		days, err := tracker.CalorieHistory(p.Days(), tracker.Now())
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}
		settings, err := dataStore.Settings()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		goal := float64(settings.DailyCalorieGoal)
		faint := color.New(color.Faint)
		for _, d := range days {
			bar := calorieBar(d.Calories, goal, 30)
			if d.Calories == 0 {
				fmt.Printf("  %s  %s\n", d.Date, faint.Sprint("—"))
				continue
			}
			fmt.Printf("  %s  %s %.0f\n", d.Date, bar, d.Calories)
		}
		return nil
	},
}

// calorieBar scales calories against the goal into a fixed-width bar.
// Days over the goal fill the full width.
func calorieBar(calories, goal float64, width int) string {
	if goal <= 0 {
		goal = 2000
	}
	n := int(calories / goal * float64(width))
	if n > width {
		n = width
	}
	if n < 1 {
		n = 1
	}
	if calories > goal {
		return color.RedString(strings.Repeat("█", n))
	}
	return strings.Repeat("█", n)
}

func init() {
	historyCmd.Flags().StringVarP(&historyPeriod, "period", "p", "week", "window: week, 15days, month, 3months")
}
