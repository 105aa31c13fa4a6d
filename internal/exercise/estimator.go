// ABOUTME: Calorie, distance, and duration estimation for exercise entries.
// ABOUTME: Distance-based estimates win over MET-time when a distance is supplied.
package exercise

import (
	"math"

	"github.com/sayalik/caltrack/internal/models"
)

// CaloriesBurnt estimates calories for a bout of exercise.
// When the type supports distance and a positive distance is supplied,
// the per-km coefficient is used: round(caloriesPerKm × weight × km).
// Otherwise the universal MET-time fallback applies:
// round(MET × weight × duration/60). Unrecognized types return 0.
func CaloriesBurnt(t models.ExerciseType, durationMins int, weightKg float64, distanceKm *float64) int {
	ref, ok := referenceData[t]
	if !ok {
		return 0
	}
	if weightKg <= 0 {
		weightKg = DefaultBodyWeightKg
	}

	if ref.HasDistance && distanceKm != nil && *distanceKm > 0 && ref.CaloriesPerKm > 0 {
		return int(math.Round(ref.CaloriesPerKm * weightKg * *distanceKm))
	}

	hours := float64(durationMins) / 60
	return int(math.Round(ref.MET * weightKg * hours))
}

// EstimateDistanceFromDuration predicts km covered from duration using
// the type's average speed, rounded to one decimal. Returns 0 when the
// type has no distance or no average speed.
func EstimateDistanceFromDuration(t models.ExerciseType, durationMins int) float64 {
	ref, ok := referenceData[t]
	if !ok || !ref.HasDistance || ref.AvgSpeedKmh <= 0 {
		return 0
	}
	hours := float64(durationMins) / 60
	return math.Round(ref.AvgSpeedKmh*hours*10) / 10
}

// EstimateDurationFromDistance is the inverse: minutes to cover the
// distance at the type's average speed, rounded to the nearest minute.
func EstimateDurationFromDistance(t models.ExerciseType, distanceKm float64) int {
	ref, ok := referenceData[t]
	if !ok || !ref.HasDistance || ref.AvgSpeedKmh <= 0 {
		return 0
	}
	hours := distanceKm / ref.AvgSpeedKmh
	return int(math.Round(hours * 60))
}
