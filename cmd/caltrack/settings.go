// ABOUTME: CLI commands for viewing and updating app settings.
// ABOUTME: Settings are read-modify-write; unset flags leave fields untouched.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sayalik/caltrack/internal/models"
)

var (
	settingsDailyGoal    int
	settingsExerciseGoal int
	settingsWeightGoal   float64
	settingsNotify       bool
	settingsNotifyTime   string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "View and update settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return settingsShowCmd.RunE(cmd, args)
	},
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := dataStore.Settings()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		fmt.Printf("Daily calorie goal:    %d kcal\n", s.DailyCalorieGoal)
		fmt.Printf("Exercise calorie goal: %d kcal\n", s.ExerciseCalorieGoal)
		if s.WeightGoal != nil {
			fmt.Printf("Weight goal:           %.1f kg\n", *s.WeightGoal)
		} else {
			fmt.Printf("Weight goal:           not set\n")
		}
		state := "off"
		if s.NotificationEnabled {
			state = fmt.Sprintf("on at %02d:%02d", s.NotificationTime.Hour, s.NotificationTime.Minute)
		}
		fmt.Printf("Daily reminder:        %s\n", state)
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update settings",
	Long: `Update one or more settings. Only the flags you pass change; the rest
keep their current values.

Examples:
  caltrack settings set --daily-goal 1800
  caltrack settings set --weight-goal 68.5
  caltrack settings set --notify-time 21:30
  caltrack settings set --notify=false`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := dataStore.Settings()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		changed := false
		if cmd.Flags().Changed("daily-goal") {
			s.DailyCalorieGoal = settingsDailyGoal
			changed = true
		}
		if cmd.Flags().Changed("exercise-goal") {
			s.ExerciseCalorieGoal = settingsExerciseGoal
			changed = true
		}
		if cmd.Flags().Changed("weight-goal") {
			w := settingsWeightGoal
			s.WeightGoal = &w
			changed = true
		}
		if cmd.Flags().Changed("notify") {
			s.NotificationEnabled = settingsNotify
			changed = true
		}
		if cmd.Flags().Changed("notify-time") {
			t, err := parseClockTime(settingsNotifyTime)
			if err != nil {
				return err
			}
			s.NotificationTime = t
			changed = true
		}
		if !changed {
			return fmt.Errorf("nothing to change; pass at least one flag")
		}

		if err := s.Validate(); err != nil {
			return err
		}
		if err := dataStore.SaveSettings(s); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		color.Green("✓ Settings updated")
		return nil
	},
}

// parseClockTime parses HH:MM into a notification time.
func parseClockTime(s string) (models.NotificationTime, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return models.NotificationTime{}, fmt.Errorf("invalid time %q (use HH:MM)", s)
	}
	hour, err1 := strconv.Atoi(parts[0])
	minute, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return models.NotificationTime{}, fmt.Errorf("invalid time %q (use HH:MM)", s)
	}
	return models.NotificationTime{Hour: hour, Minute: minute}, nil
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)

	settingsSetCmd.Flags().IntVar(&settingsDailyGoal, "daily-goal", 0, "daily calorie goal (500-10000)")
	settingsSetCmd.Flags().IntVar(&settingsExerciseGoal, "exercise-goal", 0, "daily exercise calorie goal (0-5000)")
	settingsSetCmd.Flags().Float64Var(&settingsWeightGoal, "weight-goal", 0, "target weight in kg (30-300)")
	settingsSetCmd.Flags().BoolVar(&settingsNotify, "notify", true, "enable the daily reminder")
	settingsSetCmd.Flags().StringVar(&settingsNotifyTime, "notify-time", "", "reminder time (HH:MM)")
}
