// ABOUTME: Exercise entry model and exercise type enum.
// ABOUTME: Entries keep an override flag so user-supplied burns survive re-estimation.
package models

import (
	"time"

	"github.com/google/uuid"
)

// ExerciseType identifies a supported activity.
type ExerciseType string

const (
	ExerciseRunning     ExerciseType = "running"
	ExerciseWalking     ExerciseType = "walking"
	ExerciseCycling     ExerciseType = "cycling"
	ExerciseHiking      ExerciseType = "hiking"
	ExerciseBadminton   ExerciseType = "badminton"
	ExerciseTableTennis ExerciseType = "table_tennis"
	ExerciseSwimming    ExerciseType = "swimming"
)

// AllExerciseTypes returns all valid exercise types.
var AllExerciseTypes = []ExerciseType{
	ExerciseRunning, ExerciseWalking, ExerciseCycling, ExerciseHiking,
	ExerciseBadminton, ExerciseTableTennis, ExerciseSwimming,
}

// IsValidExerciseType checks if a string is a valid exercise type.
func IsValidExerciseType(s string) bool {
	for _, t := range AllExerciseTypes {
		if string(t) == s {
			return true
		}
	}
	return false
}

// ExerciseEntry records one bout of activity on a calendar date.
// Multiple entries per date are allowed.
type ExerciseEntry struct {
	ID                 string       `json:"id"`
	Date               string       `json:"date"` // YYYY-MM-DD, local time zone
	ExerciseType       ExerciseType `json:"exerciseType"`
	Duration           int          `json:"duration"`           // minutes
	Distance           *float64     `json:"distance,omitempty"` // km
	CaloriesBurnt      int          `json:"caloriesBurnt"`
	CaloriesOverridden bool         `json:"isCaloriesOverridden"`
	Timestamp          time.Time    `json:"timestamp"`
}

// NewExerciseEntry creates an entry for the given date, type, and duration.
func NewExerciseEntry(date string, exerciseType ExerciseType, durationMins int) *ExerciseEntry {
	return &ExerciseEntry{
		ID:           uuid.New().String(),
		Date:         date,
		ExerciseType: exerciseType,
		Duration:     durationMins,
		Timestamp:    time.Now(),
	}
}

// WithDistance sets the distance covered in km.
func (e *ExerciseEntry) WithDistance(km float64) *ExerciseEntry {
	e.Distance = &km
	return e
}

// WithCaloriesOverride sets a user-supplied burn value, marking the entry
// so estimators leave it alone.
func (e *ExerciseEntry) WithCaloriesOverride(calories int) *ExerciseEntry {
	e.CaloriesBurnt = calories
	e.CaloriesOverridden = true
	return e
}
