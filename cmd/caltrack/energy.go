// ABOUTME: CLI command for BMR/TDEE display and the weekly deficit report.
// ABOUTME: Degrades gracefully when the profile is incomplete.
package main

import (
	"fmt"
	"math"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sayalik/caltrack/internal/metrics"
)

var energyCmd = &cobra.Command{
	Use:   "energy",
	Short: "Show BMR, TDEE, and weekly deficit",
	Long: `Show your estimated daily energy needs (Mifflin-St Jeor) and how this
week's logged calories compare to them. Needs height, weight, gender,
date of birth, and activity level in your profile.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := dataStore.UserData()
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}

		bmr := metrics.BMRAt(u, tracker.Now())
		if bmr == 0 {
			fmt.Println("Profile is incomplete. Energy estimates need height, weight,")
			fmt.Println("gender, and date of birth. Set them with 'caltrack profile set'.")
			return nil
		}
		fmt.Printf("BMR:  %d kcal/day\n", int(math.Round(bmr)))

		tdee := metrics.TDEEAt(u, tracker.Now())
		if tdee == 0 {
			fmt.Println("Set your activity level to get a TDEE estimate:")
			fmt.Println("  caltrack profile set --activity moderately_active")
			return nil
		}
		fmt.Printf("TDEE: %d kcal/day (maintenance)\n", tdee)

		report, err := tracker.WeeklyDeficit()
		if err != nil {
			return fmt.Errorf("failed to compute weekly deficit: %w", err)
		}
		if report == nil {
			fmt.Println("\nLog some food to see your weekly deficit.")
			return nil
		}

		fmt.Printf("\nThis week: %.0f kcal consumed vs %d kcal needed\n", report.WeeklyConsumed, report.WeeklyNeeded)
		if report.WeeklyDeficit < 0 {
			color.Green("Deficit of %.0f kcal ≈ %.2f kg loss", -report.WeeklyDeficit, -report.EstWeightChangeKg)
		} else {
			fmt.Printf("Surplus of %.0f kcal ≈ %.2f kg gain\n", report.WeeklyDeficit, report.EstWeightChangeKg)
		}
		return nil
	},
}
