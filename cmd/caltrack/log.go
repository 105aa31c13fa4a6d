// ABOUTME: CLI commands for the daily food log.
// ABOUTME: Add, list, update, and remove entries for a date.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sayalik/caltrack/internal/models"
)

var (
	logDate string
	logUnit string
	logQty  float64
	logFood string
)

var logCmd = &cobra.Command{
	Use:     "log",
	Aliases: []string{"l"},
	Short:   "Manage the daily food log",
}

var logAddCmd = &cobra.Command{
	Use:   "add <name> [calories-per-unit]",
	Short: "Log a food",
	Long: `Log a food on a date (today by default).

Give calories per unit inline, or use --food to log a saved custom food
by name.

Examples:
  caltrack log add "Chapati" 104 --unit piece --qty 2
  caltrack log add "Masala Dosa" 387 --unit plate
  caltrack log add --food "Poha" --qty 1.5
  caltrack log add "Tea" 60 --unit cup --date 2026-08-30`,
	Args: cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(logDate)
		if err != nil {
			return err
		}

		var item models.FoodItem
		switch {
		case logFood != "":
			found, err := findCustomFood(logFood)
			if err != nil {
				return err
			}
			item = *found
		case len(args) == 2:
			calories, err := strconv.ParseFloat(args[1], 64)
			if err != nil || calories <= 0 {
				return fmt.Errorf("invalid calories per unit: %s", args[1])
			}
			unit := models.FoodUnit(logUnit)
			if !models.IsValidFoodUnit(logUnit) {
				return fmt.Errorf("unknown unit %q", logUnit)
			}
			item = *models.NewCustomFood(args[0], models.CategoryCustom, calories, unit)
		default:
			return fmt.Errorf("provide <name> <calories-per-unit> or --food <saved name>")
		}

		log, err := tracker.AddFood(date, item, logQty)
		if err != nil {
			return fmt.Errorf("failed to log food: %w", err)
		}

		entry := log.Entries[len(log.Entries)-1]
		color.Green("✓ Logged %s", item.Name)
		fmt.Printf("  %s %.1f %s · %.0f kcal · day total %.0f kcal\n",
			color.New(color.Faint).Sprint(entry.ID[:8]),
			entry.Quantity, entry.FoodItem.Unit, entry.Calories(), log.TotalCalories)
		return nil
	},
}

var logListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List a day's food entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(logDate)
		if err != nil {
			return err
		}
		log, err := dataStore.DailyLog(date)
		if err != nil {
			return fmt.Errorf("failed to load log: %w", err)
		}
		if log == nil || len(log.Entries) == 0 {
			fmt.Printf("No food logged on %s.\n", date)
			return nil
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s\n", date)
		for _, e := range log.Entries {
			fmt.Printf("  %s  %-28s %5.1f %-10s %6.0f kcal\n",
				faint.Sprint(e.ID[:8]), truncate(e.FoodItem.Name, 28),
				e.Quantity, e.FoodItem.Unit, e.Calories())
		}
		fmt.Printf("  total: %.0f kcal\n", log.TotalCalories)
		return nil
	},
}

var logUpdateCmd = &cobra.Command{
	Use:   "update <entry-id> <quantity>",
	Short: "Change a logged entry's quantity",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(logDate)
		if err != nil {
			return err
		}
		qty, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid quantity: %s", args[1])
		}
		entryID, err := resolveEntryID(date, args[0])
		if err != nil {
			return err
		}
		log, err := tracker.UpdateFoodQuantity(date, entryID, qty)
		if err != nil {
			return fmt.Errorf("failed to update entry: %w", err)
		}
		color.Green("✓ Updated entry")
		fmt.Printf("  day total %.0f kcal\n", log.TotalCalories)
		return nil
	},
}

var logRemoveCmd = &cobra.Command{
	Use:     "remove <entry-id>",
	Aliases: []string{"rm"},
	Short:   "Remove a logged entry",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(logDate)
		if err != nil {
			return err
		}
		entryID, err := resolveEntryID(date, args[0])
		if err != nil {
			return err
		}
		log, err := tracker.RemoveFood(date, entryID)
		if err != nil {
			return fmt.Errorf("failed to remove entry: %w", err)
		}
		color.Green("✓ Removed entry")
		fmt.Printf("  day total %.0f kcal\n", log.TotalCalories)
		return nil
	},
}

// resolveDate validates an explicit date flag or falls back to today.
func resolveDate(flag string) (string, error) {
	if flag == "" {
		return models.Today(), nil
	}
	if _, err := models.ParseDateKey(flag); err != nil {
		return "", err
	}
	return flag, nil
}

// resolveEntryID expands an 8-character ID prefix to the full entry ID.
func resolveEntryID(date, idOrPrefix string) (string, error) {
	log, err := dataStore.DailyLog(date)
	if err != nil {
		return "", fmt.Errorf("failed to load log: %w", err)
	}
	if log == nil {
		return "", fmt.Errorf("no log for %s", date)
	}
	var match string
	for _, e := range log.Entries {
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
		return "", fmt.Errorf("entry %s not found on %s", idOrPrefix, date)
	}
	return match, nil
}

// findCustomFood looks a saved food up by exact name.
func findCustomFood(name string) (*models.FoodItem, error) {
	foods, err := dataStore.CustomFoods()
	if err != nil {
		return nil, fmt.Errorf("failed to load custom foods: %w", err)
	}
	for i := range foods {
		if foods[i].Name == name {
			return &foods[i], nil
		}
	}
	return nil, fmt.Errorf("no saved food named %q (see 'caltrack foods list')", name)
}

func init() {
	logCmd.AddCommand(logAddCmd)
	logCmd.AddCommand(logListCmd)
	logCmd.AddCommand(logUpdateCmd)
	logCmd.AddCommand(logRemoveCmd)

	logCmd.PersistentFlags().StringVarP(&logDate, "date", "d", "", "date (YYYY-MM-DD), defaults to today")
	logAddCmd.Flags().StringVarP(&logUnit, "unit", "u", "serving", "measurement unit")
	logAddCmd.Flags().Float64VarP(&logQty, "qty", "q", 1, "quantity eaten")
	logAddCmd.Flags().StringVarP(&logFood, "food", "f", "", "log a saved custom food by name")
}
