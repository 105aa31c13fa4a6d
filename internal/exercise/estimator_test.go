// ABOUTME: Tests for exercise calorie, distance, and duration estimation.
// ABOUTME: Reference values: 70kg walking 30min = 133 kcal (MET), 2.4km walk = 168 kcal (distance).
package exercise

import (
	"testing"

	"github.com/sayalik/caltrack/internal/models"
)

func km(v float64) *float64 { return &v }

func TestCaloriesBurntMETPath(t *testing.T) {
	tests := []struct {
		name     string
		typ      models.ExerciseType
		duration int
		weight   float64
		want     int
	}{
		{"walking 30min", models.ExerciseWalking, 30, 70, 133},    // 3.8*70*0.5
		{"running 20min", models.ExerciseRunning, 20, 70, 229},    // 9.8*70/3
		{"swimming 30min", models.ExerciseSwimming, 30, 70, 210},   // 6.0*70*0.5
		{"badminton 60min", models.ExerciseBadminton, 60, 70, 385}, // 5.5*70*1
		{"table tennis 45min", models.ExerciseTableTennis, 45, 60, 180},
		{"cycling 40min", models.ExerciseCycling, 40, 70, 350}, // 7.5*70*2/3
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CaloriesBurnt(tt.typ, tt.duration, tt.weight, nil)
			if got != tt.want {
				t.Errorf("CaloriesBurnt = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCaloriesBurntDistancePath(t *testing.T) {
	// Walking 2.4 km at 70 kg: 1.0 * 70 * 2.4 = 168. With distance supplied
	// the duration is irrelevant.
	got := CaloriesBurnt(models.ExerciseWalking, 999, 70, km(2.4))
	if got != 168 {
		t.Errorf("CaloriesBurnt = %d, want 168", got)
	}

	// Hiking uses the reduced 0.7 coefficient: 0.7 * 70 * 5 = 245.
	got = CaloriesBurnt(models.ExerciseHiking, 60, 70, km(5))
	if got != 245 {
		t.Errorf("hiking CaloriesBurnt = %d, want 245", got)
	}
}

func TestCaloriesBurntDistanceIgnoredForNonDistanceTypes(t *testing.T) {
	// Swimming has no distance support; a supplied distance must not
	// change the MET estimate.
	withDist := CaloriesBurnt(models.ExerciseSwimming, 30, 70, km(2))
	without := CaloriesBurnt(models.ExerciseSwimming, 30, 70, nil)
	if withDist != without {
		t.Errorf("distance changed a non-distance estimate: %d vs %d", withDist, without)
	}
}

func TestCaloriesBurntZeroDistanceFallsBack(t *testing.T) {
	got := CaloriesBurnt(models.ExerciseRunning, 20, 70, km(0))
	want := CaloriesBurnt(models.ExerciseRunning, 20, 70, nil)
	if got != want {
		t.Errorf("zero distance: got %d, want MET fallback %d", got, want)
	}
}

func TestCaloriesBurntDefaultWeight(t *testing.T) {
	// Missing weight substitutes 70 kg.
	got := CaloriesBurnt(models.ExerciseWalking, 30, 0, nil)
	want := CaloriesBurnt(models.ExerciseWalking, 30, DefaultBodyWeightKg, nil)
	if got != want {
		t.Errorf("default weight: got %d, want %d", got, want)
	}
}

func TestCaloriesBurntUnknownType(t *testing.T) {
	if got := CaloriesBurnt(models.ExerciseType("yoga"), 60, 70, nil); got != 0 {
		t.Errorf("unknown type: got %d, want 0", got)
	}
}

func TestEstimateDistanceFromDuration(t *testing.T) {
	tests := []struct {
		name     string
		typ      models.ExerciseType
		duration int
		want     float64
	}{
		{"running 30min", models.ExerciseRunning, 30, 4.0},   // 8 km/h * 0.5h
		{"running 20min", models.ExerciseRunning, 20, 2.7},   // 2.666 -> 2.7
		{"walking 60min", models.ExerciseWalking, 60, 4.8},
		{"hiking 90min", models.ExerciseHiking, 90, 5.3},     // 5.25 -> 5.3
		{"swimming has none", models.ExerciseSwimming, 30, 0},
		{"unknown type", models.ExerciseType("yoga"), 30, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateDistanceFromDuration(tt.typ, tt.duration)
			if got != tt.want {
				t.Errorf("distance = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEstimateDurationFromDistance(t *testing.T) {
	// 4 km at 8 km/h = 30 minutes.
	if got := EstimateDurationFromDistance(models.ExerciseRunning, 4); got != 30 {
		t.Errorf("duration = %d, want 30", got)
	}
	// 5 km at 4.8 km/h = 62.5 -> 63 minutes.
	if got := EstimateDurationFromDistance(models.ExerciseWalking, 5); got != 63 {
		t.Errorf("duration = %d, want 63", got)
	}
	if got := EstimateDurationFromDistance(models.ExerciseSwimming, 2); got != 0 {
		t.Errorf("duration = %d, want 0 for non-distance type", got)
	}
}

func TestLookup(t *testing.T) {
	ref, ok := Lookup(models.ExerciseRunning)
	if !ok {
		t.Fatal("expected running to be known")
	}
	if ref.MET != 9.8 || !ref.HasDistance || ref.AvgSpeedKmh != 8 {
		t.Errorf("unexpected running reference: %+v", ref)
	}
	if _, ok := Lookup(models.ExerciseType("yoga")); ok {
		t.Error("expected yoga to be unknown")
	}
}

func TestAllExerciseTypesHaveReferenceData(t *testing.T) {
	for _, typ := range models.AllExerciseTypes {
		ref, ok := Lookup(typ)
		if !ok {
			t.Errorf("no reference data for %s", typ)
			continue
		}
		if ref.MET <= 0 {
			t.Errorf("%s has non-positive MET %v", typ, ref.MET)
		}
		if ref.HasDistance && ref.AvgSpeedKmh <= 0 {
			t.Errorf("%s tracks distance but has no average speed", typ)
		}
	}
}
