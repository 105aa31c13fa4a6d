// ABOUTME: BMR/TDEE estimation via Mifflin-St Jeor with activity multipliers.
// ABOUTME: Returns 0 when any required profile field is missing, never errors.
package metrics

import (
	"math"
	"time"

	"github.com/sayalik/caltrack/internal/models"
)

// activityMultipliers maps activity levels to their TDEE multiplier.
// Unknown or missing levels fall back to sedentary (1.2).
var activityMultipliers = map[models.ActivityLevel]float64{
	models.ActivitySedentary:        1.2,
	models.ActivityLightlyActive:    1.375,
	models.ActivityModeratelyActive: 1.55,
	models.ActivityVeryActive:       1.725,
	models.ActivityExtraActive:      1.9,
}

// AgeAt returns full years between a YYYY-MM-DD date of birth and now,
// decremented by one if the birthday has not yet been reached this year.
// Returns -1 for an unparseable date of birth.
func AgeAt(dateOfBirth string, now time.Time) int {
	dob, err := models.ParseDateKey(dateOfBirth)
	if err != nil {
		return -1
	}
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age
}

// BMRAt computes basal metabolic rate (Mifflin-St Jeor) for the profile
// at the given reference time. Returns 0 unless height, current weight,
// gender, and date of birth are all present and plausible.
func BMRAt(u models.UserData, now time.Time) float64 {
	if u.Height == nil || u.CurrentWeight == nil || u.Gender == nil || u.DateOfBirth == "" {
		return 0
	}
	age := AgeAt(u.DateOfBirth, now)
	if age < 0 || age > 130 {
		return 0
	}

	bmr := 10**u.CurrentWeight + 6.25**u.Height - 5*float64(age)
	if *u.Gender == models.GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	return bmr
}

// TDEEAt computes total daily energy expenditure at the given reference
// time, rounded to the nearest integer. Returns 0 when the BMR cannot be
// computed or the activity level is missing.
func TDEEAt(u models.UserData, now time.Time) int {
	bmr := BMRAt(u, now)
	if bmr == 0 || u.ActivityLevel == nil {
		return 0
	}
	mult, ok := activityMultipliers[*u.ActivityLevel]
	if !ok {
		mult = 1.2
	}
	return int(math.Round(bmr * mult))
}

// TDEE computes total daily energy expenditure as of now.
func TDEE(u models.UserData) int {
	return TDEEAt(u, time.Now())
}

// WeightDelta is the kg and percentage change from the initial weight.
// Negative values mean loss.
type WeightDelta struct {
	Change     float64 `json:"change"` // kg, 1 decimal
	Percentage float64 `json:"percentage"` // %, 1 decimal
}

// WeightChange reports the change from initial to current weight.
// Returns nil unless both are recorded.
func WeightChange(u models.UserData) *WeightDelta {
	if u.InitialWeight == nil || u.CurrentWeight == nil {
		return nil
	}
	change := round1(*u.CurrentWeight - *u.InitialWeight)
	return &WeightDelta{
		Change:     change,
		Percentage: round1(change / *u.InitialWeight * 100),
	}
}
