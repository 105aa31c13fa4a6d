// ABOUTME: CLI command searching Open Food Facts for calorie data.
// ABOUTME: Results are per-100g; pick one and save it with 'foods add'.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sayalik/caltrack/internal/lookup"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <query...>",
	Short: "Search Open Food Facts",
	Long: `Search the Open Food Facts database for a food's calorie content.
Results are per 100 g. Save one as a custom food to log it:

  caltrack lookup oat milk
  caltrack foods add "Oat Milk" 47 --unit grams`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := &lookup.Client{}
		results, err := client.Search(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		if len(results) == 0 {
			fmt.Println("No results found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, r := range results {
			name := r.Name
			if r.Brand != "" {
				name = fmt.Sprintf("%s (%s)", r.Name, r.Brand)
			}
			fmt.Printf("  %-44s %5d kcal %s\n", truncate(name, 44), r.Calories, faint.Sprintf("/ %.0f %s", r.ServingSize, r.ServingUnit))
		}
		return nil
	},
}
