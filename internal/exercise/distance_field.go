// ABOUTME: Tri-state distance field tracker for interactive exercise forms.
// ABOUTME: Auto-fill is suppressed once the user edits; a type change resets everything.
package exercise

import "github.com/sayalik/caltrack/internal/models"

// DistanceState says where a distance value came from.
type DistanceState int

const (
	// DistanceUnset means no value yet.
	DistanceUnset DistanceState = iota
	// DistanceAuto means the value was estimated from duration.
	DistanceAuto
	// DistanceManual means the user typed the value; auto-recompute must
	// not overwrite it until the exercise type changes.
	DistanceManual
)

// DistanceField tracks a form's distance value across duration edits and
// exercise type changes. Switching type clears the value and the manual
// flag, since average speeds differ per activity and a stale distance
// would misrepresent the new one.
type DistanceField struct {
	exerciseType models.ExerciseType
	value        float64
	state        DistanceState
}

// NewDistanceField creates a tracker for the given exercise type.
func NewDistanceField(t models.ExerciseType) *DistanceField {
	return &DistanceField{exerciseType: t}
}

// Value returns the current distance in km and whether one is set.
func (f *DistanceField) Value() (float64, bool) {
	return f.value, f.state != DistanceUnset
}

// State returns where the current value came from.
func (f *DistanceField) State() DistanceState {
	return f.state
}

// SetManual records a user-typed distance, suppressing auto-recompute.
func (f *DistanceField) SetManual(km float64) {
	f.value = km
	f.state = DistanceManual
}

// RecomputeFromDuration refreshes the auto-estimated distance after a
// duration change. A manual value is left untouched; types without
// distance clear the field.
func (f *DistanceField) RecomputeFromDuration(durationMins int) {
	if f.state == DistanceManual {
		return
	}
	est := EstimateDistanceFromDuration(f.exerciseType, durationMins)
	if est == 0 {
		f.value = 0
		f.state = DistanceUnset
		return
	}
	f.value = est
	f.state = DistanceAuto
}

// ChangeType switches the exercise type, clearing the distance and the
// manual-edit flag.
func (f *DistanceField) ChangeType(t models.ExerciseType) {
	f.exerciseType = t
	f.value = 0
	f.state = DistanceUnset
}
