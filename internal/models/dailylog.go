// ABOUTME: DailyLog model holding one day's food entries.
// ABOUTME: TotalCalories is recomputed on every mutation, never stored independently.
package models

import "fmt"

// DailyLog is the ordered set of food entries for one calendar date.
// TotalCalories always equals the live sum over Entries; every mutation
// goes through the methods below so the total cannot drift.
type DailyLog struct {
	Date          string         `json:"date"` // YYYY-MM-DD, local time zone
	Entries       []FoodLogEntry `json:"entries"`
	TotalCalories float64        `json:"totalCalories"`
}

// NewDailyLog creates an empty log for the given date key.
func NewDailyLog(date string) *DailyLog {
	return &DailyLog{Date: date, Entries: []FoodLogEntry{}}
}

// AddEntry appends an entry and recomputes the total.
func (l *DailyLog) AddEntry(e FoodLogEntry) {
	l.Entries = append(l.Entries, e)
	l.recompute()
}

// UpdateEntryQuantity changes an entry's quantity and recomputes the total.
func (l *DailyLog) UpdateEntryQuantity(entryID string, quantity float64) error {
	for i := range l.Entries {
		if l.Entries[i].ID == entryID {
			l.Entries[i].Quantity = quantity
			l.recompute()
			return nil
		}
	}
	return fmt.Errorf("entry %s not found in log for %s", entryID, l.Date)
}

// RemoveEntry deletes an entry by ID and recomputes the total.
func (l *DailyLog) RemoveEntry(entryID string) error {
	for i := range l.Entries {
		if l.Entries[i].ID == entryID {
			l.Entries = append(l.Entries[:i], l.Entries[i+1:]...)
			l.recompute()
			return nil
		}
	}
	return fmt.Errorf("entry %s not found in log for %s", entryID, l.Date)
}

func (l *DailyLog) recompute() {
	var total float64
	for i := range l.Entries {
		total += l.Entries[i].Calories()
	}
	l.TotalCalories = total
}
