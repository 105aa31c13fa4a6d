// ABOUTME: PersistenceStore contract for calorie tracking data.
// ABOUTME: Defines the Store interface all backends and the aggregator depend on.
package store

// Storage is logically a set of JSON records under namespaced keys, one
// key per calendar date (or per food/singleton). Backends differ only in
// where the bytes live; writing one date's record never touches another
// key. Reads with no prior data return empty/default values, not errors.

import "github.com/sayalik/caltrack/internal/models"

// Key prefixes. Date-keyed records append a YYYY-MM-DD local-timezone
// date key; custom foods append the food ID; settings and user data are
// singletons.
const (
	DailyLogPrefix   = "daily_log:"
	WeightPrefix     = "weight:"
	ExercisePrefix   = "exercise:"
	CustomFoodPrefix = "custom_food:"
	SettingsKey      = "settings"
	UserDataKey      = "user_data"
)

// Store is the persistence contract the calculation and aggregation
// layers depend on. Implementations must be safe to call with no prior
// data. Same-date concurrent writes are last-write-wins; there is no
// cross-key transaction.
type Store interface {
	// Daily food logs, upserted whole by date key.
	DailyLog(date string) (*models.DailyLog, error)
	SaveDailyLog(log *models.DailyLog) error
	AllDailyLogs() (map[string]*models.DailyLog, error)

	// Weight entries, one per date, last write wins.
	WeightEntry(date string) (*models.WeightEntry, error)
	SaveWeightEntry(e *models.WeightEntry) error
	DeleteWeightEntry(date string) error
	AllWeightEntries() (map[string]*models.WeightEntry, error)

	// Exercise entries, a list per date, upserted within the list by ID.
	ExerciseEntries(date string) ([]models.ExerciseEntry, error)
	SaveExerciseEntry(e *models.ExerciseEntry) error
	DeleteExerciseEntry(date, entryID string) error
	AllExerciseEntries() (map[string][]models.ExerciseEntry, error)

	// User-defined foods.
	CustomFoods() ([]models.FoodItem, error)
	SaveCustomFood(f *models.FoodItem) error
	DeleteCustomFood(id string) error

	// Settings singleton; reads merge stored JSON over the defaults.
	Settings() (models.AppSettings, error)
	SaveSettings(s models.AppSettings) error

	// User profile singleton, partial-field tolerant.
	UserData() (models.UserData, error)
	SaveUserData(u models.UserData) error

	Close() error
}
