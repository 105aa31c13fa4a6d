// ABOUTME: CLI command for BMI calculation and categorization.
// ABOUTME: Uses explicit arguments or falls back to the stored profile.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sayalik/caltrack/internal/metrics"
)

var bmiCmd = &cobra.Command{
	Use:   "bmi [height-cm] [weight-kg]",
	Short: "Calculate BMI",
	Long: `Calculate body mass index. Pass height and weight explicitly, or run
without arguments to use your stored profile.

Examples:
  caltrack bmi 170 65
  caltrack bmi`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var heightCm, weightKg float64
		switch len(args) {
		case 2:
			var err error
			heightCm, err = strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid height: %s", args[0])
			}
			weightKg, err = strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid weight: %s", args[1])
			}
		case 0:
			u, err := dataStore.UserData()
			if err != nil {
				return fmt.Errorf("failed to load profile: %w", err)
			}
			if u.Height == nil || u.CurrentWeight == nil {
				return fmt.Errorf("profile is missing height or weight; set them with 'caltrack profile set' or pass both as arguments")
			}
			heightCm, weightKg = *u.Height, *u.CurrentWeight
		default:
			return fmt.Errorf("pass both height and weight, or neither")
		}

		result := metrics.CalculateBMI(heightCm, weightKg)
		if result == nil {
			return fmt.Errorf("height and weight must be positive")
		}

		info := metrics.CategoryDisplayInfo(result.Category)
		fmt.Printf("BMI: %.1f (%s)\n", result.BMI, info.Label)
		fmt.Printf("Healthy range for %.0f cm: %.1f – %.1f kg\n", heightCm, result.HealthyWeightRange.Min, result.HealthyWeightRange.Max)
		switch result.Category {
		case metrics.Normal:
			color.Green("You are within the healthy weight range.")
		case metrics.Underweight:
			fmt.Printf("You are %.1f kg below the healthy range.\n", result.HealthyWeightRange.Min-weightKg)
		default:
			fmt.Printf("You are %.1f kg above the healthy range.\n", weightKg-result.HealthyWeightRange.Max)
		}
		return nil
	},
}
