// ABOUTME: CLI commands for the custom food catalog and recent foods.
// ABOUTME: Custom foods are immutable; edit by remove + re-add.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sayalik/caltrack/internal/models"
)

var (
	foodUnit       string
	foodCategory   string
	foodUnitWeight float64
	foodsLimit     int
)

var foodsCmd = &cobra.Command{
	Use:   "foods",
	Short: "Manage custom foods",
}

var foodsAddCmd = &cobra.Command{
	Use:   "add <name> <calories-per-unit>",
	Short: "Save a custom food",
	Long: `Save a custom food for quick logging later. Foods are immutable
once created: to change one, remove it and add it again. Already-logged
history keeps the values it was logged with.

Examples:
  caltrack foods add "Poha" 180 --unit bowl
  caltrack foods add "Homemade Ladoo" 150 --unit piece --unit-weight 40`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		calories, err := strconv.ParseFloat(args[1], 64)
		if err != nil || calories <= 0 {
			return fmt.Errorf("invalid calories per unit: %s", args[1])
		}
		if !models.IsValidFoodUnit(foodUnit) {
			return fmt.Errorf("unknown unit %q", foodUnit)
		}
		category := models.CategoryCustom
		if foodCategory != "" {
			if !models.IsValidFoodCategory(foodCategory) {
				return fmt.Errorf("unknown category %q", foodCategory)
			}
			category = models.FoodCategory(foodCategory)
		}

		food := models.NewCustomFood(args[0], category, calories, models.FoodUnit(foodUnit))
		if cmd.Flags().Changed("unit-weight") {
			food.WithUnitWeight(foodUnitWeight)
		}
		if err := dataStore.SaveCustomFood(food); err != nil {
			return fmt.Errorf("failed to save food: %w", err)
		}
		color.Green("✓ Saved %s", food.Name)
		fmt.Printf("  %s %.0f kcal per %s\n", color.New(color.Faint).Sprint(food.ID[:8]), food.CaloriesPerUnit, food.Unit)
		return nil
	},
}

var foodsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List saved custom foods",
	RunE: func(cmd *cobra.Command, args []string) error {
		foods, err := dataStore.CustomFoods()
		if err != nil {
			return fmt.Errorf("failed to load custom foods: %w", err)
		}
		if len(foods) == 0 {
			fmt.Println("No custom foods saved.")
			return nil
		}
		faint := color.New(color.Faint)
		for _, f := range foods {
			fmt.Printf("  %s  %-28s %6.0f kcal / %s\n", faint.Sprint(f.ID[:8]), truncate(f.Name, 28), f.CaloriesPerUnit, f.Unit)
		}
		return nil
	},
}

var foodsRemoveCmd = &cobra.Command{
	Use:     "remove <id-or-name>",
	Aliases: []string{"rm"},
	Short:   "Remove a custom food",
	Long: `Remove a custom food from the catalog. Logged history is untouched:
entries embed the food's values at logging time.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		foods, err := dataStore.CustomFoods()
		if err != nil {
			return fmt.Errorf("failed to load custom foods: %w", err)
		}
		var match *models.FoodItem
		for i := range foods {
			f := &foods[i]
			if f.ID == args[0] || f.Name == args[0] || (len(args[0]) >= 4 && len(f.ID) >= len(args[0]) && f.ID[:len(args[0])] == args[0]) {
				if match != nil {
					return fmt.Errorf("ambiguous %q: matches multiple foods", args[0])
				}
				match = f
			}
		}
		if match == nil {
			return fmt.Errorf("no custom food matching %q", args[0])
		}
		if err := dataStore.DeleteCustomFood(match.ID); err != nil {
			return fmt.Errorf("failed to remove food: %w", err)
		}
		color.Green("✓ Removed %s", match.Name)
		return nil
	},
}

var foodsRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show recently logged foods",
	Long:  `Show the foods you logged most recently, newest first. Powers quick re-logging.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		foods, err := tracker.RecentFoods(foodsLimit)
		if err != nil {
			return fmt.Errorf("failed to load recent foods: %w", err)
		}
		if len(foods) == 0 {
			fmt.Println("No foods logged yet.")
			return nil
		}
		for _, f := range foods {
			fmt.Printf("  %-28s %6.0f kcal / %s\n", truncate(f.Name, 28), f.CaloriesPerUnit, f.Unit)
		}
		return nil
	},
}

func init() {
	foodsCmd.AddCommand(foodsAddCmd)
	foodsCmd.AddCommand(foodsListCmd)
	foodsCmd.AddCommand(foodsRemoveCmd)
	foodsCmd.AddCommand(foodsRecentCmd)

	foodsAddCmd.Flags().StringVarP(&foodUnit, "unit", "u", "serving", "measurement unit")
	foodsAddCmd.Flags().StringVarP(&foodCategory, "category", "c", "", "food category")
	foodsAddCmd.Flags().Float64Var(&foodUnitWeight, "unit-weight", 0, "grams per unit")
	foodsRecentCmd.Flags().IntVarP(&foodsLimit, "limit", "n", 10, "max foods to show")
}
