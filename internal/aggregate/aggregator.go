// ABOUTME: LogAggregator combining stored entries into day-level state.
// ABOUTME: All mutations are read-modify-write of one date's record with totals recomputed.
package aggregate

import (
	"fmt"
	"time"

	"github.com/sayalik/caltrack/internal/exercise"
	"github.com/sayalik/caltrack/internal/models"
	"github.com/sayalik/caltrack/internal/store"
)

// Aggregator layers calculation and aggregation over an injected Store.
// No hidden globals: callers (CLI, MCP, tests) hand it the store handle.
type Aggregator struct {
	store store.Store
	now   func() time.Time
}

// New creates an aggregator over the given store.
func New(s store.Store) *Aggregator {
	return &Aggregator{store: s, now: time.Now}
}

// NewWithClock creates an aggregator with a fixed clock for tests.
func NewWithClock(s store.Store, now func() time.Time) *Aggregator {
	return &Aggregator{store: s, now: now}
}

// Store exposes the underlying store handle.
func (a *Aggregator) Store() store.Store {
	return a.store
}

// Now returns the aggregator's current time, honoring an injected clock.
func (a *Aggregator) Now() time.Time {
	return a.now()
}

// AddFood logs a food item on the given date and returns the updated log.
// The item is embedded by value into the entry.
func (a *Aggregator) AddFood(date string, item models.FoodItem, quantity float64) (*models.DailyLog, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be > 0, got %g", quantity)
	}
	log, err := a.store.DailyLog(date)
	if err != nil {
		return nil, fmt.Errorf("load log for %s: %w", date, err)
	}
	if log == nil {
		log = models.NewDailyLog(date)
	}
	log.AddEntry(*models.NewFoodLogEntry(item, quantity))
	if err := a.store.SaveDailyLog(log); err != nil {
		return nil, fmt.Errorf("save log for %s: %w", date, err)
	}
	return log, nil
}

// UpdateFoodQuantity changes a logged entry's quantity.
func (a *Aggregator) UpdateFoodQuantity(date, entryID string, quantity float64) (*models.DailyLog, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be > 0, got %g", quantity)
	}
	log, err := a.store.DailyLog(date)
	if err != nil {
		return nil, fmt.Errorf("load log for %s: %w", date, err)
	}
	if log == nil {
		return nil, fmt.Errorf("no log for %s", date)
	}
	if err := log.UpdateEntryQuantity(entryID, quantity); err != nil {
		return nil, err
	}
	if err := a.store.SaveDailyLog(log); err != nil {
		return nil, fmt.Errorf("save log for %s: %w", date, err)
	}
	return log, nil
}

// RemoveFood deletes a logged entry by ID.
func (a *Aggregator) RemoveFood(date, entryID string) (*models.DailyLog, error) {
	log, err := a.store.DailyLog(date)
	if err != nil {
		return nil, fmt.Errorf("load log for %s: %w", date, err)
	}
	if log == nil {
		return nil, fmt.Errorf("no log for %s", date)
	}
	if err := log.RemoveEntry(entryID); err != nil {
		return nil, err
	}
	if err := a.store.SaveDailyLog(log); err != nil {
		return nil, fmt.Errorf("save log for %s: %w", date, err)
	}
	return log, nil
}

// SaveExercise stores an exercise entry. When the calories are not
// user-overridden they are (re)estimated from the entry's duration and
// distance using the profile's current weight.
func (a *Aggregator) SaveExercise(e *models.ExerciseEntry) error {
	if !models.IsValidExerciseType(string(e.ExerciseType)) {
		return fmt.Errorf("unknown exercise type: %s", e.ExerciseType)
	}
	if e.Duration <= 0 {
		return fmt.Errorf("duration must be > 0, got %d", e.Duration)
	}
	if !e.CaloriesOverridden {
		weight := float64(exercise.DefaultBodyWeightKg)
		if u, err := a.store.UserData(); err == nil && u.CurrentWeight != nil {
			weight = *u.CurrentWeight
		}
		e.CaloriesBurnt = exercise.CaloriesBurnt(e.ExerciseType, e.Duration, weight, e.Distance)
	}
	if err := a.store.SaveExerciseEntry(e); err != nil {
		return fmt.Errorf("save exercise entry: %w", err)
	}
	return nil
}

// DeleteExercise removes an exercise entry by date and ID.
func (a *Aggregator) DeleteExercise(date, entryID string) error {
	return a.store.DeleteExerciseEntry(date, entryID)
}

// ExercisesFor returns the day's exercise entries.
func (a *Aggregator) ExercisesFor(date string) ([]models.ExerciseEntry, error) {
	return a.store.ExerciseEntries(date)
}

// LogWeight upserts today's weight entry and keeps the profile's
// initial/current weight in step: initial is set once on the first-ever
// save, current on every save.
func (a *Aggregator) LogWeight(weightKg float64) (*models.WeightEntry, error) {
	if weightKg <= 0 {
		return nil, fmt.Errorf("weight must be > 0, got %g", weightKg)
	}
	now := a.now()
	entry := &models.WeightEntry{
		Date:      models.DateKey(now),
		Weight:    weightKg,
		Timestamp: now,
	}
	if err := a.store.SaveWeightEntry(entry); err != nil {
		return nil, fmt.Errorf("save weight entry: %w", err)
	}

	u, err := a.store.UserData()
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	u.RecordWeight(weightKg, entry.Date)
	if err := a.store.SaveUserData(u); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return entry, nil
}
