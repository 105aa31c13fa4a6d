// ABOUTME: CLI commands for viewing and updating the user profile.
// ABOUTME: Profile feeds BMI and energy estimates; every field is optional.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sayalik/caltrack/internal/metrics"
	"github.com/sayalik/caltrack/internal/models"
)

var (
	profileHeight   float64
	profileGender   string
	profileDOB      string
	profileActivity string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and update your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return profileShowCmd.RunE(cmd, args)
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := dataStore.UserData()
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}

		if u.Height != nil {
			fmt.Printf("Height:         %.0f cm\n", *u.Height)
		}
		if u.Gender != nil {
			fmt.Printf("Gender:         %s\n", *u.Gender)
		}
		if u.DateOfBirth != "" {
			age := metrics.AgeAt(u.DateOfBirth, tracker.Now())
			fmt.Printf("Date of birth:  %s (age %d)\n", u.DateOfBirth, age)
		}
		if u.ActivityLevel != nil {
			fmt.Printf("Activity level: %s\n", *u.ActivityLevel)
		}
		if u.CurrentWeight != nil {
			fmt.Printf("Current weight: %.1f kg (on %s)\n", *u.CurrentWeight, u.CurrentWeightDate)
		}
		if u.InitialWeight != nil {
			fmt.Printf("Initial weight: %.1f kg (on %s)\n", *u.InitialWeight, u.InitialWeightDate)
		}
		if delta := metrics.WeightChange(u); delta != nil && delta.Change != 0 {
			direction := "gained"
			if delta.Change < 0 {
				direction = "lost"
			}
			fmt.Printf("Change:         %s %.1f kg (%.1f%%)\n", direction, abs(delta.Change), abs(delta.Percentage))
		}

		if u == (models.UserData{}) {
			fmt.Println("Profile is empty. Set fields with 'caltrack profile set'.")
		}
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	Long: `Update one or more profile fields. Weight is set through
'caltrack weight add' so it also lands in the weight history.

Examples:
  caltrack profile set --height 170 --gender female
  caltrack profile set --dob 1992-04-15 --activity moderately_active`,
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := dataStore.UserData()
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}

		changed := false
		if cmd.Flags().Changed("height") {
			if profileHeight <= 0 {
				return fmt.Errorf("height must be > 0, got %g", profileHeight)
			}
			h := profileHeight
			u.Height = &h
			changed = true
		}
		if cmd.Flags().Changed("gender") {
			if !models.IsValidGender(profileGender) {
				return fmt.Errorf("gender must be male or female, got %q", profileGender)
			}
			g := models.Gender(profileGender)
			u.Gender = &g
			changed = true
		}
		if cmd.Flags().Changed("dob") {
			if _, err := models.ParseDateKey(profileDOB); err != nil {
				return fmt.Errorf("invalid date of birth %q (use YYYY-MM-DD)", profileDOB)
			}
			u.DateOfBirth = profileDOB
			changed = true
		}
		if cmd.Flags().Changed("activity") {
			if !models.IsValidActivityLevel(profileActivity) {
				levels := make([]string, len(models.AllActivityLevels))
				for i, a := range models.AllActivityLevels {
					levels[i] = string(a)
				}
				return fmt.Errorf("activity level must be one of: %s", strings.Join(levels, ", "))
			}
			a := models.ActivityLevel(profileActivity)
			u.ActivityLevel = &a
			changed = true
		}
		if !changed {
			return fmt.Errorf("nothing to change; pass at least one flag")
		}

		if err := dataStore.SaveUserData(u); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}
		color.Green("✓ Profile updated")
		return nil
	},
}

func init() {
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)

	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "height in cm")
	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "male or female")
	profileSetCmd.Flags().StringVar(&profileDOB, "dob", "", "date of birth (YYYY-MM-DD)")
	profileSetCmd.Flags().StringVar(&profileActivity, "activity", "", "activity level")
}
