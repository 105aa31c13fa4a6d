// ABOUTME: Tests for the tri-state distance field tracker.
// ABOUTME: Manual edits stick through duration changes; type changes reset.
package exercise

import (
	"testing"

	"github.com/sayalik/caltrack/internal/models"
)

func TestDistanceFieldStartsUnset(t *testing.T) {
	f := NewDistanceField(models.ExerciseRunning)
	if _, ok := f.Value(); ok {
		t.Error("expected no value before any edit")
	}
	if f.State() != DistanceUnset {
		t.Errorf("State = %v, want unset", f.State())
	}
}

func TestDistanceFieldAutoFill(t *testing.T) {
	f := NewDistanceField(models.ExerciseRunning)
	f.RecomputeFromDuration(30)

	v, ok := f.Value()
	if !ok || v != 4.0 {
		t.Errorf("Value = %v/%v, want 4.0/true", v, ok)
	}
	if f.State() != DistanceAuto {
		t.Errorf("State = %v, want auto", f.State())
	}

	// Duration edits keep refreshing an auto value.
	f.RecomputeFromDuration(60)
	if v, _ := f.Value(); v != 8.0 {
		t.Errorf("Value = %v, want 8.0 after duration change", v)
	}
}

func TestDistanceFieldManualSticks(t *testing.T) {
	f := NewDistanceField(models.ExerciseRunning)
	f.RecomputeFromDuration(30)
	f.SetManual(5.5)

	f.RecomputeFromDuration(60)
	v, _ := f.Value()
	if v != 5.5 {
		t.Errorf("Value = %v, want manual 5.5 preserved", v)
	}
	if f.State() != DistanceManual {
		t.Errorf("State = %v, want manual", f.State())
	}
}

func TestDistanceFieldTypeChangeResets(t *testing.T) {
	f := NewDistanceField(models.ExerciseRunning)
	f.SetManual(5.5)

	f.ChangeType(models.ExerciseWalking)
	if _, ok := f.Value(); ok {
		t.Error("expected value cleared after type change")
	}
	if f.State() != DistanceUnset {
		t.Errorf("State = %v, want unset", f.State())
	}

	// The manual flag is gone too: auto-fill works again.
	f.RecomputeFromDuration(60)
	if v, _ := f.Value(); v != 4.8 {
		t.Errorf("Value = %v, want 4.8 auto-filled", v)
	}
}

func TestDistanceFieldNonDistanceTypeClears(t *testing.T) {
	f := NewDistanceField(models.ExerciseRunning)
	f.RecomputeFromDuration(30)

	f.ChangeType(models.ExerciseSwimming)
	f.RecomputeFromDuration(30)
	if _, ok := f.Value(); ok {
		t.Error("expected no value for a non-distance type")
	}
}
