// ABOUTME: CLI commands for exercise entries.
// ABOUTME: Calories are estimated from MET/distance unless overridden.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sayalik/caltrack/internal/exercise"
	"github.com/sayalik/caltrack/internal/models"
)

var (
	exDate     string
	exDistance float64
	exCalories int
)

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"ex"},
	Short:   "Manage exercise entries",
}

var exerciseAddCmd = &cobra.Command{
	Use:   "add <type> <duration-minutes>",
	Short: "Log an exercise session",
	Long: `Log an exercise session. Calories are estimated from the MET value
and your profile weight; distance-capable types (running, walking,
hiking) use the more accurate per-km estimate when --distance is given.
Use --calories to record a burn you measured yourself.

Types: running, walking, cycling, hiking, badminton, table_tennis, swimming

Examples:
  caltrack exercise add walking 30
  caltrack exercise add running 25 --distance 4.2
  caltrack exercise add swimming 45 --calories 380`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidExerciseType(args[0]) {
			return fmt.Errorf("unknown exercise type: %s\nValid types: running, walking, cycling, hiking, badminton, table_tennis, swimming", args[0])
		}
		duration, err := parsePositiveInt(args[1], "duration")
		if err != nil {
			return err
		}
		date, err := resolveDate(exDate)
		if err != nil {
			return err
		}

		entry := models.NewExerciseEntry(date, models.ExerciseType(args[0]), duration)
		if cmd.Flags().Changed("distance") {
			if !exercise.HasDistance(entry.ExerciseType) {
				return fmt.Errorf("%s does not track distance", args[0])
			}
			if exDistance <= 0 {
				return fmt.Errorf("distance must be > 0, got %g", exDistance)
			}
			entry.WithDistance(exDistance)
		} else if est := exercise.EstimateDistanceFromDuration(entry.ExerciseType, duration); est > 0 {
			entry.WithDistance(est)
		}
		if cmd.Flags().Changed("calories") {
			entry.WithCaloriesOverride(exCalories)
		}

		if err := tracker.SaveExercise(entry); err != nil {
			return fmt.Errorf("failed to log exercise: %w", err)
		}

		color.Green("✓ Logged %s", exercise.Name(entry.ExerciseType))
		line := fmt.Sprintf("  %s %d min", color.New(color.Faint).Sprint(entry.ID[:8]), entry.Duration)
		if entry.Distance != nil {
			line += fmt.Sprintf(" · %.1f km", *entry.Distance)
		}
		line += fmt.Sprintf(" · %d kcal", entry.CaloriesBurnt)
		if entry.CaloriesOverridden {
			line += " (your value)"
		}
		fmt.Println(line)
		return nil
	},
}

var exerciseListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List a day's exercise entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(exDate)
		if err != nil {
			return err
		}
		entries, err := tracker.ExercisesFor(date)
		if err != nil {
			return fmt.Errorf("failed to load exercise entries: %w", err)
		}
		if len(entries) == 0 {
			fmt.Printf("No exercise logged on %s.\n", date)
			return nil
		}

		faint := color.New(color.Faint)
		total := 0
		fmt.Printf("%s\n", date)
		for _, e := range entries {
			line := fmt.Sprintf("  %s  %-14s %4d min", faint.Sprint(e.ID[:8]), exercise.Name(e.ExerciseType), e.Duration)
			if e.Distance != nil {
				line += fmt.Sprintf(" %6.1f km", *e.Distance)
			} else {
				line += "          "
			}
			line += fmt.Sprintf(" %5d kcal", e.CaloriesBurnt)
			fmt.Println(line)
			total += e.CaloriesBurnt
		}
		fmt.Printf("  total burned: %d kcal\n", total)
		return nil
	},
}

var exerciseRemoveCmd = &cobra.Command{
	Use:     "remove <entry-id>",
	Aliases: []string{"rm"},
	Short:   "Remove an exercise entry",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(exDate)
		if err != nil {
			return err
		}
		entryID, err := resolveExerciseID(date, args[0])
		if err != nil {
			return err
		}
		if err := tracker.DeleteExercise(date, entryID); err != nil {
			return fmt.Errorf("failed to remove exercise entry: %w", err)
		}
		color.Green("✓ Removed exercise entry")
		return nil
	},
}

// resolveExerciseID expands an ID prefix to the full exercise entry ID.
func resolveExerciseID(date, idOrPrefix string) (string, error) {
	entries, err := tracker.ExercisesFor(date)
	if err != nil {
		return "", fmt.Errorf("failed to load exercise entries: %w", err)
	}
	var match string
	for _, e := range entries {
		if e.ID == idOrPrefix {
			return e.ID, nil
		}
		if len(idOrPrefix) >= 4 && len(e.ID) > len(idOrPrefix) && e.ID[:len(idOrPrefix)] == idOrPrefix {
			if match != "" {
				return "", fmt.Errorf("ambiguous prefix %s: matches multiple entries", idOrPrefix)
			}
			match = e.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("exercise entry %s not found on %s", idOrPrefix, date)
	}
	return match, nil
}

func parsePositiveInt(s, name string) (int, error) {
	var v int
	if _, err := fmt.Sscanf(s, "%d", &v); err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid %s: %s", name, s)
	}
	return v, nil
}

func init() {
	exerciseCmd.AddCommand(exerciseAddCmd)
	exerciseCmd.AddCommand(exerciseListCmd)
	exerciseCmd.AddCommand(exerciseRemoveCmd)

	exerciseCmd.PersistentFlags().StringVarP(&exDate, "date", "d", "", "date (YYYY-MM-DD), defaults to today")
	exerciseAddCmd.Flags().Float64Var(&exDistance, "distance", 0, "distance in km (distance-capable types)")
	exerciseAddCmd.Flags().IntVar(&exCalories, "calories", 0, "your own calorie burn, overrides the estimate")
}
