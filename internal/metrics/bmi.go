// ABOUTME: BMI calculation with category banding and healthy weight range.
// ABOUTME: Returns nil for non-positive inputs instead of erroring.
package metrics

import "math"

// BMICategory is the WHO weight band a BMI falls into.
type BMICategory string

const (
	Underweight BMICategory = "underweight"
	Normal      BMICategory = "normal"
	Overweight  BMICategory = "overweight"
	Obese       BMICategory = "obese"
)

// WeightRange is a healthy weight band in kg for a given height.
type WeightRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// BMIResult is the derived BMI value with its category and the healthy
// weight range for the height it was computed from. Never stored.
type BMIResult struct {
	BMI                float64     `json:"bmi"` // rounded to 1 decimal
	Category           BMICategory `json:"category"`
	HealthyWeightRange WeightRange `json:"healthyWeightRange"`
}

// CalculateBMI computes BMI from height in cm and weight in kg.
// Returns nil when either input is non-positive. The category bands are
// evaluated on the unrounded value; only the reported numbers are
// rounded to one decimal.
func CalculateBMI(heightCm, weightKg float64) *BMIResult {
	if heightCm <= 0 || weightKg <= 0 {
		return nil
	}

	heightM := heightCm / 100
	bmi := weightKg / (heightM * heightM)

	var category BMICategory
	switch {
	case bmi < 18.5:
		category = Underweight
	case bmi < 25:
		category = Normal
	case bmi < 30:
		category = Overweight
	default:
		category = Obese
	}

	// Healthy range is BMI 18.5–24.9 for this height
	return &BMIResult{
		BMI:      round1(bmi),
		Category: category,
		HealthyWeightRange: WeightRange{
			Min: round1(18.5 * heightM * heightM),
			Max: round1(24.9 * heightM * heightM),
		},
	}
}

// CategoryInfo is display metadata for a BMI category.
type CategoryInfo struct {
	Label       string `json:"label"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

var categoryInfo = map[BMICategory]CategoryInfo{
	Underweight: {Label: "Underweight", Color: "#3B82F6", Description: "Below normal weight range"},
	Normal:      {Label: "Normal", Color: "#10B981", Description: "Healthy weight range"},
	Overweight:  {Label: "Overweight", Color: "#F59E0B", Description: "Above normal weight range"},
	Obese:       {Label: "Obese", Color: "#EF4444", Description: "Significantly above normal range"},
}

// CategoryDisplayInfo returns the label, color, and description for a category.
func CategoryDisplayInfo(c BMICategory) CategoryInfo {
	return categoryInfo[c]
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
