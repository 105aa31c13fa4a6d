// ABOUTME: Food item and food log entry models.
// ABOUTME: Log entries embed the food item by value so history survives catalog edits.
package models

import (
	"time"

	"github.com/google/uuid"
)

// FoodCategory groups food items for browsing and filtering.
type FoodCategory string

const (
	CategoryBreads     FoodCategory = "breads"
	CategoryRice       FoodCategory = "rice"
	CategoryDal        FoodCategory = "dal"
	CategoryVegetables FoodCategory = "vegetables"
	CategorySnacks     FoodCategory = "snacks"
	CategorySweets     FoodCategory = "sweets"
	CategoryBeverages  FoodCategory = "beverages"
	CategoryDairy      FoodCategory = "dairy"
	CategoryFruits     FoodCategory = "fruits"
	CategoryChutneys   FoodCategory = "chutneys"
	CategoryPickles    FoodCategory = "pickles"
	CategoryCustom     FoodCategory = "custom"
)

// AllFoodCategories returns all valid food categories.
var AllFoodCategories = []FoodCategory{
	CategoryBreads, CategoryRice, CategoryDal, CategoryVegetables,
	CategorySnacks, CategorySweets, CategoryBeverages, CategoryDairy,
	CategoryFruits, CategoryChutneys, CategoryPickles, CategoryCustom,
}

// IsValidFoodCategory checks if a string is a valid food category.
func IsValidFoodCategory(s string) bool {
	for _, c := range AllFoodCategories {
		if string(c) == s {
			return true
		}
	}
	return false
}

// FoodUnit is the measurement kind a food's calories are expressed per.
type FoodUnit string

const (
	UnitPiece      FoodUnit = "piece"
	UnitCup        FoodUnit = "cup"
	UnitBowl       FoodUnit = "bowl"
	UnitPlate      FoodUnit = "plate"
	UnitGlass      FoodUnit = "glass"
	UnitTablespoon FoodUnit = "tablespoon"
	UnitTeaspoon   FoodUnit = "teaspoon"
	UnitGrams      FoodUnit = "grams"
	UnitMl         FoodUnit = "ml"
	UnitServing    FoodUnit = "serving"
	UnitSlice      FoodUnit = "slice"
	UnitPacket     FoodUnit = "packet"
	UnitScoop      FoodUnit = "scoop"
)

// AllFoodUnits returns all valid food units.
var AllFoodUnits = []FoodUnit{
	UnitPiece, UnitCup, UnitBowl, UnitPlate, UnitGlass,
	UnitTablespoon, UnitTeaspoon, UnitGrams, UnitMl,
	UnitServing, UnitSlice, UnitPacket, UnitScoop,
}

// IsValidFoodUnit checks if a string is a valid food unit.
func IsValidFoodUnit(s string) bool {
	for _, u := range AllFoodUnits {
		if string(u) == s {
			return true
		}
	}
	return false
}

// FoodItem describes a food and its calorie density per unit.
// Items are immutable once created; custom items are replaced via
// delete + recreate rather than edited in place.
type FoodItem struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Category        FoodCategory `json:"category"`
	CaloriesPerUnit float64      `json:"caloriesPerUnit"`
	Unit            FoodUnit     `json:"unit"`
	UnitWeight      *float64     `json:"unitWeight,omitempty"` // grams per unit
	IsCustom        bool         `json:"isCustom,omitempty"`
}

// NewCustomFood creates a user-defined food item with a generated ID.
func NewCustomFood(name string, category FoodCategory, caloriesPerUnit float64, unit FoodUnit) *FoodItem {
	return &FoodItem{
		ID:              uuid.New().String(),
		Name:            name,
		Category:        category,
		CaloriesPerUnit: caloriesPerUnit,
		Unit:            unit,
		IsCustom:        true,
	}
}

// WithUnitWeight sets the grams-per-unit weight on the item.
func (f *FoodItem) WithUnitWeight(grams float64) *FoodItem {
	f.UnitWeight = &grams
	return f
}

// FoodLogEntry records that a food was eaten on some day.
// The food item is embedded by value: editing or deleting a custom food
// later must not retroactively change logged history.
type FoodLogEntry struct {
	ID        string    `json:"id"`
	FoodItem  FoodItem  `json:"foodItem"`
	Quantity  float64   `json:"quantity"`
	Timestamp time.Time `json:"timestamp"`
}

// NewFoodLogEntry creates a log entry for the given food and quantity.
func NewFoodLogEntry(item FoodItem, quantity float64) *FoodLogEntry {
	return &FoodLogEntry{
		ID:        uuid.New().String(),
		FoodItem:  item,
		Quantity:  quantity,
		Timestamp: time.Now(),
	}
}

// Calories returns the calories this entry contributes to its day.
func (e *FoodLogEntry) Calories() float64 {
	return e.Quantity * e.FoodItem.CaloriesPerUnit
}
