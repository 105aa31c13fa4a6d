// ABOUTME: Static reference data for exercise calorie estimation.
// ABOUTME: MET values from the Compendium of Physical Activities.
package exercise

import "github.com/sayalik/caltrack/internal/models"

// Reference holds the static estimation data for one exercise type.
// Calories burned = MET × weight (kg) × time (hours). Distance-capable
// types also carry an average speed and a per-km-per-kg coefficient.
type Reference struct {
	Name          string
	MET           float64
	HasDistance   bool
	AvgSpeedKmh   float64 // 0 when distance does not apply
	CaloriesPerKm float64 // kcal per kg body weight per km; 0 when unset
}

// DefaultBodyWeightKg is assumed when the profile has no weight.
const DefaultBodyWeightKg = 70

var referenceData = map[models.ExerciseType]Reference{
	models.ExerciseRunning: {
		Name:          "Running",
		MET:           9.8, // jogging ~8 km/h
		HasDistance:   true,
		AvgSpeedKmh:   8,
		CaloriesPerKm: 1.0,
	},
	models.ExerciseWalking: {
		Name:          "Walking",
		MET:           3.8, // moderate pace
		HasDistance:   true,
		AvgSpeedKmh:   4.8,
		CaloriesPerKm: 1.0,
	},
	models.ExerciseCycling: {
		Name:        "Cycling",
		MET:         7.5, // moderate effort
		AvgSpeedKmh: 15,
	},
	models.ExerciseHiking: {
		Name:          "Hiking",
		MET:           6.0,
		HasDistance:   true,
		AvgSpeedKmh:   3.5, // slower with elevation
		CaloriesPerKm: 0.7,
	},
	models.ExerciseBadminton: {
		Name: "Badminton",
		MET:  5.5, // casual play
	},
	models.ExerciseTableTennis: {
		Name: "Table Tennis",
		MET:  4.0,
	},
	models.ExerciseSwimming: {
		Name: "Swimming",
		MET:  6.0, // moderate effort
	},
}

// Lookup returns the reference data for an exercise type.
// The second return is false for unrecognized types.
func Lookup(t models.ExerciseType) (Reference, bool) {
	ref, ok := referenceData[t]
	return ref, ok
}

// Name returns the display name for an exercise type.
func Name(t models.ExerciseType) string {
	return referenceData[t].Name
}

// HasDistance reports whether distance tracking applies to the type.
func HasDistance(t models.ExerciseType) bool {
	return referenceData[t].HasDistance
}
