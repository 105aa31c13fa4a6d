// ABOUTME: Export and import of all tracked data across namespaces.
// ABOUTME: Supports JSON and YAML formats.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sayalik/caltrack/internal/models"
)

// ExportData is the full portable snapshot of a store.
type ExportData struct {
	Version         string                            `json:"version" yaml:"version"`
	ExportedAt      time.Time                         `json:"exported_at" yaml:"exported_at"`
	Tool            string                            `json:"tool" yaml:"tool"`
	DailyLogs       map[string]*models.DailyLog       `json:"daily_logs" yaml:"daily_logs"`
	WeightEntries   map[string]*models.WeightEntry    `json:"weight_entries" yaml:"weight_entries"`
	ExerciseEntries map[string][]models.ExerciseEntry `json:"exercise_entries" yaml:"exercise_entries"`
	CustomFoods     []models.FoodItem                 `json:"custom_foods" yaml:"custom_foods"`
	Settings        models.AppSettings                `json:"settings" yaml:"settings"`
	UserData        models.UserData                   `json:"user_data" yaml:"user_data"`
}

// Export snapshots every record in the store.
func Export(s Store) (*ExportData, error) {
	logs, err := s.AllDailyLogs()
	if err != nil {
		return nil, fmt.Errorf("export daily logs: %w", err)
	}
	weights, err := s.AllWeightEntries()
	if err != nil {
		return nil, fmt.Errorf("export weight entries: %w", err)
	}
	exercises, err := s.AllExerciseEntries()
	if err != nil {
		return nil, fmt.Errorf("export exercise entries: %w", err)
	}
	foods, err := s.CustomFoods()
	if err != nil {
		return nil, fmt.Errorf("export custom foods: %w", err)
	}
	settings, err := s.Settings()
	if err != nil {
		return nil, fmt.Errorf("export settings: %w", err)
	}
	userData, err := s.UserData()
	if err != nil {
		return nil, fmt.Errorf("export user data: %w", err)
	}

	return &ExportData{
		Version:         "1.0",
		ExportedAt:      time.Now(),
		Tool:            "caltrack",
		DailyLogs:       logs,
		WeightEntries:   weights,
		ExerciseEntries: exercises,
		CustomFoods:     foods,
		Settings:        settings,
		UserData:        userData,
	}, nil
}

// Import writes a snapshot into the store, upserting record by record.
// Existing records under other keys are left in place.
func Import(s Store, data *ExportData) error {
	for _, log := range data.DailyLogs {
		if err := s.SaveDailyLog(log); err != nil {
			return fmt.Errorf("import daily log %s: %w", log.Date, err)
		}
	}
	for _, e := range data.WeightEntries {
		if err := s.SaveWeightEntry(e); err != nil {
			return fmt.Errorf("import weight entry %s: %w", e.Date, err)
		}
	}
	for date, list := range data.ExerciseEntries {
		for i := range list {
			if err := s.SaveExerciseEntry(&list[i]); err != nil {
				return fmt.Errorf("import exercise entry on %s: %w", date, err)
			}
		}
	}
	for i := range data.CustomFoods {
		if err := s.SaveCustomFood(&data.CustomFoods[i]); err != nil {
			return fmt.Errorf("import custom food %s: %w", data.CustomFoods[i].Name, err)
		}
	}
	if err := s.SaveSettings(data.Settings); err != nil {
		return fmt.Errorf("import settings: %w", err)
	}
	if err := s.SaveUserData(data.UserData); err != nil {
		return fmt.Errorf("import user data: %w", err)
	}
	return nil
}

// Marshal renders the snapshot in the given format ("json" or "yaml").
func (d *ExportData) Marshal(format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(d, "", "  ")
	case "yaml":
		return yaml.Marshal(d)
	default:
		return nil, fmt.Errorf("unsupported export format %q (use json or yaml)", format)
	}
}

// ParseExport decodes a snapshot in the given format.
func ParseExport(data []byte, format string) (*ExportData, error) {
	var d ExportData
	switch format {
	case "json":
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("parse json export: %w", err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("parse yaml export: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported export format %q (use json or yaml)", format)
	}
	return &d, nil
}
