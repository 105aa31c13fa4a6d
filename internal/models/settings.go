// ABOUTME: Global app settings singleton with documented defaults.
// ABOUTME: Stored wholesale; reads merge stored JSON over the defaults.
package models

import "fmt"

// NotificationTime is the hour/minute of the daily logging reminder.
type NotificationTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// AppSettings is the single global settings record.
type AppSettings struct {
	NotificationEnabled bool             `json:"notificationEnabled"`
	NotificationTime    NotificationTime `json:"notificationTime"`
	DailyCalorieGoal    int              `json:"dailyCalorieGoal"`
	ExerciseCalorieGoal int              `json:"exerciseCalorieGoal"`
	WeightGoal          *float64         `json:"weightGoal,omitempty"` // kg
}

// DefaultSettings returns the settings used before the user saves any.
func DefaultSettings() AppSettings {
	return AppSettings{
		NotificationEnabled: true,
		NotificationTime:    NotificationTime{Hour: 22, Minute: 0},
		DailyCalorieGoal:    2000,
		ExerciseCalorieGoal: 300,
	}
}

// Validate rejects out-of-range goals before they reach storage.
func (s AppSettings) Validate() error {
	if s.DailyCalorieGoal < 500 || s.DailyCalorieGoal > 10000 {
		return fmt.Errorf("daily calorie goal must be between 500 and 10000, got %d", s.DailyCalorieGoal)
	}
	if s.ExerciseCalorieGoal < 0 || s.ExerciseCalorieGoal > 5000 {
		return fmt.Errorf("exercise calorie goal must be between 0 and 5000, got %d", s.ExerciseCalorieGoal)
	}
	if s.WeightGoal != nil && (*s.WeightGoal < 30 || *s.WeightGoal > 300) {
		return fmt.Errorf("weight goal must be between 30 and 300 kg, got %.1f", *s.WeightGoal)
	}
	if s.NotificationTime.Hour < 0 || s.NotificationTime.Hour > 23 {
		return fmt.Errorf("notification hour must be between 0 and 23, got %d", s.NotificationTime.Hour)
	}
	if s.NotificationTime.Minute < 0 || s.NotificationTime.Minute > 59 {
		return fmt.Errorf("notification minute must be between 0 and 59, got %d", s.NotificationTime.Minute)
	}
	return nil
}
