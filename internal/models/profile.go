// ABOUTME: Weight entry and user profile models.
// ABOUTME: Profiles are partial-field tolerant; downstream calculations degrade, never error.
package models

import "time"

// WeightEntry records the user's weight for one calendar date.
// One entry per date; saving again for the same date overwrites.
type WeightEntry struct {
	Date      string    `json:"date"` // YYYY-MM-DD, local time zone
	Weight    float64   `json:"weight"` // kg
	Timestamp time.Time `json:"timestamp"`
}

// Gender as used by the Mifflin-St Jeor equation.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// IsValidGender checks if a string is a valid gender value.
func IsValidGender(s string) bool {
	return s == string(GenderMale) || s == string(GenderFemale)
}

// ActivityLevel is the five-level scale feeding the TDEE multiplier.
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
	ActivityExtraActive      ActivityLevel = "extra_active"
)

// AllActivityLevels returns all valid activity levels.
var AllActivityLevels = []ActivityLevel{
	ActivitySedentary, ActivityLightlyActive, ActivityModeratelyActive,
	ActivityVeryActive, ActivityExtraActive,
}

// IsValidActivityLevel checks if a string is a valid activity level.
func IsValidActivityLevel(s string) bool {
	for _, a := range AllActivityLevels {
		if string(a) == s {
			return true
		}
	}
	return false
}

// UserData is the user profile singleton. Every field is optional; an
// empty profile is valid and calculations that need missing fields
// return their unavailable sentinel instead of failing.
type UserData struct {
	Height            *float64       `json:"height,omitempty"` // cm
	InitialWeight     *float64       `json:"initialWeight,omitempty"` // kg, set once on first save
	InitialWeightDate string         `json:"initialWeightDate,omitempty"`
	CurrentWeight     *float64       `json:"currentWeight,omitempty"` // kg, updated on every save
	CurrentWeightDate string         `json:"currentWeightDate,omitempty"`
	Gender            *Gender        `json:"gender,omitempty"`
	DateOfBirth       string         `json:"dateOfBirth,omitempty"` // YYYY-MM-DD
	ActivityLevel     *ActivityLevel `json:"activityLevel,omitempty"`
}

// RecordWeight applies a weight save to the profile: the initial weight
// is set only once, the current weight on every save.
func (u *UserData) RecordWeight(weightKg float64, date string) {
	if u.InitialWeight == nil {
		w := weightKg
		u.InitialWeight = &w
		u.InitialWeightDate = date
	}
	w := weightKg
	u.CurrentWeight = &w
	u.CurrentWeightDate = date
}
