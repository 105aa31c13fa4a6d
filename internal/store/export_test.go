// ABOUTME: Tests for full-store export and import.
// ABOUTME: A snapshot written into a fresh store must reproduce every record.
package store

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/sayalik/caltrack/internal/models"
)

func seedStore(t *testing.T, s Store) {
	t.Helper()

	log := models.NewDailyLog("2026-08-30")
	food := models.NewCustomFood("Dal", models.CategoryDal, 150, models.UnitBowl)
	log.AddEntry(*models.NewFoodLogEntry(*food, 2))
	if err := s.SaveDailyLog(log); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveCustomFood(food); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveWeightEntry(&models.WeightEntry{Date: "2026-08-30", Weight: 74.3}); err != nil {
		t.Fatal(err)
	}
	e := models.NewExerciseEntry("2026-08-30", models.ExerciseRunning, 30)
	e.CaloriesBurnt = 240
	if err := s.SaveExerciseEntry(e); err != nil {
		t.Fatal(err)
	}
	settings := models.DefaultSettings()
	settings.DailyCalorieGoal = 1800
	if err := s.SaveSettings(settings); err != nil {
		t.Fatal(err)
	}
	height := 170.0
	if err := s.SaveUserData(models.UserData{Height: &height}); err != nil {
		t.Fatal(err)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	for _, format := range []string{"json", "yaml"} {
		t.Run(format, func(t *testing.T) {
			src, err := OpenBadger(t.TempDir())
			if err != nil {
				t.Fatal(err)
			}
			defer src.Close()
			seedStore(t, src)

			data, err := Export(src)
			if err != nil {
				t.Fatalf("Export: %v", err)
			}
			raw, err := data.Marshal(format)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}

			parsed, err := ParseExport(raw, format)
			if err != nil {
				t.Fatalf("ParseExport: %v", err)
			}

			dst, err := OpenSQLite(filepath.Join(t.TempDir(), "caltrack.db"))
			if err != nil {
				t.Fatal(err)
			}
			defer dst.Close()
			if err := Import(dst, parsed); err != nil {
				t.Fatalf("Import: %v", err)
			}

			log, err := dst.DailyLog("2026-08-30")
			if err != nil || log == nil {
				t.Fatalf("DailyLog after import: %v, %v", log, err)
			}
			if log.TotalCalories != 300 {
				t.Errorf("TotalCalories = %v, want 300", log.TotalCalories)
			}
			weight, err := dst.WeightEntry("2026-08-30")
			if err != nil || weight == nil || weight.Weight != 74.3 {
				t.Errorf("WeightEntry = %+v, %v; want 74.3", weight, err)
			}
			exercises, err := dst.ExerciseEntries("2026-08-30")
			if err != nil || len(exercises) != 1 || exercises[0].CaloriesBurnt != 240 {
				t.Errorf("ExerciseEntries = %+v, %v; want one 240 kcal entry", exercises, err)
			}
			foods, _ := dst.CustomFoods()
			if len(foods) != 1 || foods[0].Name != "Dal" {
				t.Errorf("CustomFoods = %+v, want Dal", foods)
			}
			settings, _ := dst.Settings()
			if settings.DailyCalorieGoal != 1800 {
				t.Errorf("DailyCalorieGoal = %d, want 1800", settings.DailyCalorieGoal)
			}
			u, _ := dst.UserData()
			if u.Height == nil || *u.Height != 170 {
				t.Errorf("Height = %v, want 170", u.Height)
			}
		})
	}
}

func TestExportMetadata(t *testing.T) {
	s, err := OpenBadger(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	data, err := Export(s)
	if err != nil {
		t.Fatal(err)
	}
	if data.Version != "1.0" {
		t.Errorf("Version = %s, want 1.0", data.Version)
	}
	if data.Tool != "caltrack" {
		t.Errorf("Tool = %s, want caltrack", data.Tool)
	}
	if data.ExportedAt.IsZero() {
		t.Error("expected ExportedAt set")
	}
}

func TestMarshalUnsupportedFormat(t *testing.T) {
	d := &ExportData{}
	if _, err := d.Marshal("xml"); err == nil || !strings.Contains(err.Error(), "xml") {
		t.Errorf("expected unsupported-format error, got %v", err)
	}
	if _, err := ParseExport(nil, "xml"); err == nil {
		t.Error("expected unsupported-format error")
	}
}
