// ABOUTME: MCP tool implementations for calorie tracking.
// ABOUTME: Exposes logging, summaries, and metabolic calculations as typed tools.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sayalik/caltrack/internal/exercise"
	"github.com/sayalik/caltrack/internal/lookup"
	"github.com/sayalik/caltrack/internal/metrics"
	"github.com/sayalik/caltrack/internal/models"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_food",
		Description: "Log a food with its calories for a date",
	}, s.handleLogFood)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_exercise",
		Description: "Log an exercise session; calories are estimated unless supplied",
	}, s.handleLogExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_weight",
		Description: "Record today's body weight in kg",
	}, s.handleLogWeight)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_day_summary",
		Description: "Get consumed, burned, net, and remaining calories for a date",
	}, s.handleDaySummary)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_calorie_history",
		Description: "Get per-day calorie totals for a trailing window of days",
	}, s.handleCalorieHistory)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_recent_foods",
		Description: "Get recently logged foods for quick re-logging",
	}, s.handleRecentFoods)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "calculate_bmi",
		Description: "Calculate BMI, category, and healthy weight range",
	}, s.handleCalculateBMI)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_energy_budget",
		Description: "Get BMR/TDEE from the profile plus this week's deficit estimate",
	}, s.handleEnergyBudget)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "search_food",
		Description: "Search the online food catalog for calorie info (best effort)",
	}, s.handleSearchFood)
}

// Tool input/output types

type logFoodInput struct {
	Name     string  `json:"name" jsonschema:"description=Food name,required"`
	Calories float64 `json:"calories" jsonschema:"description=Calories per unit,required"`
	Unit     string  `json:"unit,omitempty" jsonschema:"description=Measurement unit (piece, cup, bowl, grams, ...), defaults to serving"`
	Quantity float64 `json:"quantity,omitempty" jsonschema:"description=Quantity eaten, defaults to 1"`
	Date     string  `json:"date,omitempty" jsonschema:"description=Date (YYYY-MM-DD), defaults to today"`
}

type logFoodOutput struct {
	EntryID       string  `json:"entry_id"`
	Date          string  `json:"date"`
	TotalCalories float64 `json:"total_calories"`
	Message       string  `json:"message"`
}

type logExerciseInput struct {
	ExerciseType string   `json:"exercise_type" jsonschema:"description=Type of exercise (running, walking, cycling, hiking, badminton, table_tennis, swimming),required"`
	DurationMins int      `json:"duration_minutes" jsonschema:"description=Duration in minutes,required"`
	DistanceKm   *float64 `json:"distance_km,omitempty" jsonschema:"description=Distance in km for distance-based exercises"`
	Calories     *int     `json:"calories,omitempty" jsonschema:"description=User-supplied calorie burn, overrides the estimate"`
	Date         string   `json:"date,omitempty" jsonschema:"description=Date (YYYY-MM-DD), defaults to today"`
}

type logExerciseOutput struct {
	EntryID       string `json:"entry_id"`
	CaloriesBurnt int    `json:"calories_burnt"`
	Estimated     bool   `json:"estimated"`
	Message       string `json:"message"`
}

type logWeightInput struct {
	WeightKg float64 `json:"weight_kg" jsonschema:"description=Body weight in kg,required"`
}

type dateInput struct {
	Date string `json:"date,omitempty" jsonschema:"description=Date (YYYY-MM-DD), defaults to today"`
}

type historyInput struct {
	Days int `json:"days,omitempty" jsonschema:"description=Window length in days (default 7)"`
}

type limitInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"description=Max results (default 10)"`
}

type bmiInput struct {
	HeightCm float64 `json:"height_cm" jsonschema:"description=Height in cm,required"`
	WeightKg float64 `json:"weight_kg" jsonschema:"description=Weight in kg,required"`
}

type searchFoodInput struct {
	Query string `json:"query" jsonschema:"description=Food name to search for,required"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleLogFood(ctx context.Context, req *mcp.CallToolRequest, input logFoodInput) (*mcp.CallToolResult, logFoodOutput, error) {
	if input.Calories <= 0 {
		return nil, logFoodOutput{}, fmt.Errorf("calories must be > 0")
	}
	unit := models.UnitServing
	if input.Unit != "" {
		if !models.IsValidFoodUnit(input.Unit) {
			return nil, logFoodOutput{}, fmt.Errorf("unknown unit: %s", input.Unit)
		}
		unit = models.FoodUnit(input.Unit)
	}
	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}
	date := input.Date
	if date == "" {
		date = models.Today()
	} else if _, err := models.ParseDateKey(date); err != nil {
		return nil, logFoodOutput{}, err
	}

	item := models.NewCustomFood(input.Name, models.CategoryCustom, input.Calories, unit)
	log, err := s.agg.AddFood(date, *item, quantity)
	if err != nil {
		return nil, logFoodOutput{}, fmt.Errorf("failed to log food: %w", err)
	}

	entry := log.Entries[len(log.Entries)-1]
	return nil, logFoodOutput{
		EntryID:       entry.ID,
		Date:          date,
		TotalCalories: log.TotalCalories,
		Message:       fmt.Sprintf("Logged %s (%.0f kcal). Day total: %.0f kcal", input.Name, entry.Calories(), log.TotalCalories),
	}, nil
}

func (s *Server) handleLogExercise(ctx context.Context, req *mcp.CallToolRequest, input logExerciseInput) (*mcp.CallToolResult, logExerciseOutput, error) {
	if !models.IsValidExerciseType(input.ExerciseType) {
		return nil, logExerciseOutput{}, fmt.Errorf("unknown exercise type: %s", input.ExerciseType)
	}
	date := input.Date
	if date == "" {
		date = models.Today()
	} else if _, err := models.ParseDateKey(date); err != nil {
		return nil, logExerciseOutput{}, err
	}

	entry := models.NewExerciseEntry(date, models.ExerciseType(input.ExerciseType), input.DurationMins)
	if input.DistanceKm != nil {
		entry.WithDistance(*input.DistanceKm)
	}
	if input.Calories != nil {
		entry.WithCaloriesOverride(*input.Calories)
	}
	if err := s.agg.SaveExercise(entry); err != nil {
		return nil, logExerciseOutput{}, fmt.Errorf("failed to log exercise: %w", err)
	}

	return nil, logExerciseOutput{
		EntryID:       entry.ID,
		CaloriesBurnt: entry.CaloriesBurnt,
		Estimated:     !entry.CaloriesOverridden,
		Message:       fmt.Sprintf("Logged %s for %d min: %d kcal", exercise.Name(entry.ExerciseType), entry.Duration, entry.CaloriesBurnt),
	}, nil
}

func (s *Server) handleLogWeight(ctx context.Context, req *mcp.CallToolRequest, input logWeightInput) (*mcp.CallToolResult, simpleOutput, error) {
	entry, err := s.agg.LogWeight(input.WeightKg)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log weight: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Recorded %.1f kg for %s", entry.Weight, entry.Date),
	}, nil
}

func (s *Server) handleDaySummary(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, any, error) {
	date := input.Date
	if date == "" {
		date = models.Today()
	} else if _, err := models.ParseDateKey(date); err != nil {
		return nil, nil, err
	}
	summary, err := s.agg.DaySummary(date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build day summary: %w", err)
	}
	return nil, summary, nil
}

func (s *Server) handleCalorieHistory(ctx context.Context, req *mcp.CallToolRequest, input historyInput) (*mcp.CallToolResult, any, error) {
	days := input.Days
	if days <= 0 {
		days = 7
	}
	history, err := s.agg.CalorieHistory(days, time.Now())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build calorie history: %w", err)
	}
	return nil, history, nil
}

func (s *Server) handleRecentFoods(ctx context.Context, req *mcp.CallToolRequest, input limitInput) (*mcp.CallToolResult, any, error) {
	foods, err := s.agg.RecentFoods(input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list recent foods: %w", err)
	}
	if len(foods) == 0 {
		return nil, map[string]any{"message": "No foods logged yet."}, nil
	}
	return nil, foods, nil
}

func (s *Server) handleCalculateBMI(ctx context.Context, req *mcp.CallToolRequest, input bmiInput) (*mcp.CallToolResult, any, error) {
	result := metrics.CalculateBMI(input.HeightCm, input.WeightKg)
	if result == nil {
		return nil, nil, fmt.Errorf("height and weight must both be > 0")
	}
	info := metrics.CategoryDisplayInfo(result.Category)
	return nil, map[string]any{
		"bmi":                  result.BMI,
		"category":             result.Category,
		"category_label":       info.Label,
		"category_description": info.Description,
		"healthy_weight_range": result.HealthyWeightRange,
	}, nil
}

func (s *Server) handleEnergyBudget(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	u, err := s.agg.Store().UserData()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load profile: %w", err)
	}
	now := time.Now()
	tdee := metrics.TDEEAt(u, now)
	if tdee == 0 {
		return nil, map[string]any{
			"message": "Profile incomplete: height, weight, gender, date of birth, and activity level are required for BMR/TDEE.",
		}, nil
	}

	out := map[string]any{
		"bmr":  int(metrics.BMRAt(u, now)),
		"tdee": tdee,
	}
	report, err := s.agg.WeeklyDeficit()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to compute weekly deficit: %w", err)
	}
	if report != nil {
		out["weekly_deficit"] = report
	}
	return nil, out, nil
}

func (s *Server) handleSearchFood(ctx context.Context, req *mcp.CallToolRequest, input searchFoodInput) (*mcp.CallToolResult, any, error) {
	client := &lookup.Client{}
	results := client.SearchBestEffort(ctx, input.Query)
	if len(results) == 0 {
		return nil, map[string]any{"message": "No results."}, nil
	}
	return nil, results, nil
}
