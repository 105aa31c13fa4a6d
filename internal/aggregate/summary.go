// ABOUTME: Day, period, and deficit summaries derived from stored logs.
// ABOUTME: Trailing windows always produce exactly N days, zero-filled for gaps.
package aggregate

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/sayalik/caltrack/internal/metrics"
	"github.com/sayalik/caltrack/internal/models"
)

// kcalPerKg is the physiological constant relating a calorie surplus or
// deficit to body weight change (7700 kcal ≈ 1 kg).
const kcalPerKg = 7700

// DaySummary is one day's calorie position against the goals.
type DaySummary struct {
	Date              string  `json:"date"`
	ConsumedCalories  float64 `json:"consumedCalories"`
	ExerciseCalories  int     `json:"exerciseCalories"`
	NetCalories       int     `json:"netCalories"`
	GoalCalories      int     `json:"goalCalories"`
	RemainingCalories int     `json:"remainingCalories"`
	OverGoal          bool    `json:"overGoal"`
	ExerciseGoalMet   bool    `json:"exerciseGoalMet"`
}

// DaySummary aggregates the date's food and exercise entries against
// the stored goals. Rounding of the consumed total happens before the
// subtraction, matching how the components are displayed.
func (a *Aggregator) DaySummary(date string) (*DaySummary, error) {
	log, err := a.store.DailyLog(date)
	if err != nil {
		return nil, fmt.Errorf("load log for %s: %w", date, err)
	}
	entries, err := a.store.ExerciseEntries(date)
	if err != nil {
		return nil, fmt.Errorf("load exercise entries for %s: %w", date, err)
	}
	settings, err := a.store.Settings()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	var consumed float64
	if log != nil {
		consumed = log.TotalCalories
	}
	burned := 0
	for i := range entries {
		burned += entries[i].CaloriesBurnt
	}

	net := int(math.Round(consumed)) - burned
	return &DaySummary{
		Date:              date,
		ConsumedCalories:  consumed,
		ExerciseCalories:  burned,
		NetCalories:       net,
		GoalCalories:      settings.DailyCalorieGoal,
		RemainingCalories: settings.DailyCalorieGoal - net,
		OverGoal:          net > settings.DailyCalorieGoal,
		ExerciseGoalMet:   burned >= settings.ExerciseCalorieGoal,
	}, nil
}

// DayCalories is one point in a calorie history window.
type DayCalories struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
}

// CalorieHistory returns exactly days {date, calories} pairs in
// ascending date order ending at the reference date inclusive, with 0
// calories for dates absent from storage.
func (a *Aggregator) CalorieHistory(days int, ref time.Time) ([]DayCalories, error) {
	if days <= 0 {
		return []DayCalories{}, nil
	}
	logs, err := a.store.AllDailyLogs()
	if err != nil {
		return nil, fmt.Errorf("load daily logs: %w", err)
	}

	history := make([]DayCalories, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := models.DateKey(ref.AddDate(0, 0, -i))
		var calories float64
		if log, ok := logs[date]; ok {
			calories = log.TotalCalories
		}
		history = append(history, DayCalories{Date: date, Calories: calories})
	}
	return history, nil
}

// WeeklySummary is the 7-day calorie history ending today.
func (a *Aggregator) WeeklySummary() ([]DayCalories, error) {
	return a.CalorieHistory(7, a.now())
}

// Period is a trailing history window length.
type Period string

const (
	PeriodWeek        Period = "week"
	PeriodFifteenDays Period = "15days"
	PeriodMonth       Period = "month"
	PeriodThreeMonths Period = "3months"
)

var periodDays = map[Period]int{
	PeriodWeek:        7,
	PeriodFifteenDays: 15,
	PeriodMonth:       30,
	PeriodThreeMonths: 90,
}

// ParsePeriod validates a period name.
func ParsePeriod(s string) (Period, error) {
	p := Period(s)
	if _, ok := periodDays[p]; !ok {
		return "", fmt.Errorf("invalid period %q (use week, 15days, month, or 3months)", s)
	}
	return p, nil
}

// Days returns the window length for the period.
func (p Period) Days() int {
	return periodDays[p]
}

// WeightHistory returns the weight entries recorded inside the trailing
// window, ascending by date. Days without an entry are omitted; weight
// charts connect the recorded points.
func (a *Aggregator) WeightHistory(p Period) ([]models.WeightEntry, error) {
	all, err := a.store.AllWeightEntries()
	if err != nil {
		return nil, fmt.Errorf("load weight entries: %w", err)
	}
	ref := a.now()
	days := p.Days()

	history := make([]models.WeightEntry, 0, len(all))
	for i := days - 1; i >= 0; i-- {
		date := models.DateKey(ref.AddDate(0, 0, -i))
		if e, ok := all[date]; ok {
			history = append(history, *e)
		}
	}
	return history, nil
}

// RecentFoods collapses all logged entries by food ID and returns up to
// limit foods ordered by most recent use, newest first. Used to power
// quick-add shortcuts.
func (a *Aggregator) RecentFoods(limit int) ([]models.FoodItem, error) {
	if limit <= 0 {
		limit = 10
	}
	logs, err := a.store.AllDailyLogs()
	if err != nil {
		return nil, fmt.Errorf("load daily logs: %w", err)
	}

	type usage struct {
		food     models.FoodItem
		lastUsed time.Time
	}
	byID := make(map[string]*usage)
	for _, log := range logs {
		for i := range log.Entries {
			entry := &log.Entries[i]
			u, ok := byID[entry.FoodItem.ID]
			if !ok {
				byID[entry.FoodItem.ID] = &usage{food: entry.FoodItem, lastUsed: entry.Timestamp}
				continue
			}
			if entry.Timestamp.After(u.lastUsed) {
				u.lastUsed = entry.Timestamp
				u.food = entry.FoodItem
			}
		}
	}

	ranked := make([]*usage, 0, len(byID))
	for _, u := range byID {
		ranked = append(ranked, u)
	}
	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].lastUsed.After(ranked[j].lastUsed)
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	foods := make([]models.FoodItem, len(ranked))
	for i, u := range ranked {
		foods[i] = u.food
	}
	return foods, nil
}

// DeficitReport relates a week of logged calories to the profile's
// energy needs. Negative deficit means a calorie deficit and expected
// weight loss.
type DeficitReport struct {
	TDEE              int           `json:"tdee"`
	WeeklyNeeded      int           `json:"weeklyNeeded"`
	WeeklyConsumed    float64       `json:"weeklyConsumed"`
	WeeklyDeficit     float64       `json:"weeklyDeficit"`
	EstWeightChangeKg float64       `json:"estimatedWeightChangeKg"`
	Days              []DayCalories `json:"days"`
}

// WeeklyDeficit estimates the week's calorie surplus or deficit and the
// implied weight change. Returns nil (not a misleading zero report)
// unless the TDEE is computable from the profile and at least one day in
// the window has non-zero logged calories.
func (a *Aggregator) WeeklyDeficit() (*DeficitReport, error) {
	u, err := a.store.UserData()
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	tdee := metrics.TDEEAt(u, a.now())
	if tdee == 0 {
		return nil, nil
	}

	days, err := a.WeeklySummary()
	if err != nil {
		return nil, err
	}
	var consumed float64
	anyLogged := false
	for _, d := range days {
		consumed += d.Calories
		if d.Calories > 0 {
			anyLogged = true
		}
	}
	if !anyLogged {
		return nil, nil
	}

	needed := tdee * 7
	deficit := consumed - float64(needed)
	return &DeficitReport{
		TDEE:              tdee,
		WeeklyNeeded:      needed,
		WeeklyConsumed:    consumed,
		WeeklyDeficit:     deficit,
		EstWeightChangeKg: deficit / kcalPerKg,
		Days:              days,
	}, nil
}
