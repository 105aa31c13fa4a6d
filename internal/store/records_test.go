// ABOUTME: Tests for the record layer over real Badger and SQLite backends.
// ABOUTME: Every case runs against both backends via eachBackend.
package store

import (
	"path/filepath"
	"testing"

	"github.com/sayalik/caltrack/internal/models"
)

// eachBackend runs fn against a fresh store on every local backend.
func eachBackend(t *testing.T, fn func(t *testing.T, s Store)) {
	t.Helper()

	backends := map[string]func(t *testing.T) (Store, error){
		"badger": func(t *testing.T) (Store, error) {
			return OpenBadger(t.TempDir())
		},
		"sqlite": func(t *testing.T) (Store, error) {
			return OpenSQLite(filepath.Join(t.TempDir(), "caltrack.db"))
		},
	}

	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			s, err := open(t)
			if err != nil {
				t.Fatalf("open %s: %v", name, err)
			}
			defer s.Close()
			fn(t, s)
		})
	}
}

func TestEmptyStoreReads(t *testing.T) {
	eachBackend(t, func(t *testing.T, s Store) {
		log, err := s.DailyLog("2026-08-30")
		if err != nil || log != nil {
			t.Errorf("DailyLog = %v, %v; want nil, nil", log, err)
		}
		entries, err := s.ExerciseEntries("2026-08-30")
		if err != nil || len(entries) != 0 {
			t.Errorf("ExerciseEntries = %v, %v; want empty, nil", entries, err)
		}
		foods, err := s.CustomFoods()
		if err != nil || len(foods) != 0 {
			t.Errorf("CustomFoods = %v, %v; want empty, nil", foods, err)
		}
		settings, err := s.Settings()
		if err != nil {
			t.Fatalf("Settings: %v", err)
		}
		if settings != models.DefaultSettings() {
			t.Errorf("Settings = %+v, want defaults", settings)
		}
		u, err := s.UserData()
		if err != nil || u != (models.UserData{}) {
			t.Errorf("UserData = %+v, %v; want empty, nil", u, err)
		}
	})
}

func TestDailyLogRoundTrip(t *testing.T) {
	eachBackend(t, func(t *testing.T, s Store) {
		log := models.NewDailyLog("2026-08-30")
		food := models.NewCustomFood("Dal", models.CategoryDal, 150, models.UnitBowl)
		log.AddEntry(*models.NewFoodLogEntry(*food, 2))

		if err := s.SaveDailyLog(log); err != nil {
			t.Fatalf("SaveDailyLog: %v", err)
		}

		got, err := s.DailyLog("2026-08-30")
		if err != nil {
			t.Fatalf("DailyLog: %v", err)
		}
		if got == nil || got.TotalCalories != 300 || len(got.Entries) != 1 {
			t.Errorf("DailyLog = %+v, want total 300 with 1 entry", got)
		}
		if got.Entries[0].FoodItem.Name != "Dal" {
			t.Errorf("embedded food = %s, want Dal", got.Entries[0].FoodItem.Name)
		}
	})
}

// Writing one date's record must not touch another date.
func TestDailyLogPerDateIsolation(t *testing.T) {
	eachBackend(t, func(t *testing.T, s Store) {
		food := *models.NewCustomFood("Rice", models.CategoryRice, 200, models.UnitPlate)

		first := models.NewDailyLog("2026-08-29")
		first.AddEntry(*models.NewFoodLogEntry(food, 1))
		second := models.NewDailyLog("2026-08-30")
		second.AddEntry(*models.NewFoodLogEntry(food, 3))

		if err := s.SaveDailyLog(first); err != nil {
			t.Fatal(err)
		}
		if err := s.SaveDailyLog(second); err != nil {
			t.Fatal(err)
		}

		second.AddEntry(*models.NewFoodLogEntry(food, 1))
		if err := s.SaveDailyLog(second); err != nil {
			t.Fatal(err)
		}

		got, err := s.DailyLog("2026-08-29")
		if err != nil {
			t.Fatal(err)
		}
		if got.TotalCalories != 200 {
			t.Errorf("2026-08-29 total = %v, want 200 untouched", got.TotalCalories)
		}

		all, err := s.AllDailyLogs()
		if err != nil {
			t.Fatal(err)
		}
		if len(all) != 2 {
			t.Errorf("AllDailyLogs = %d entries, want 2", len(all))
		}
	})
}

func TestSaveDailyLogRequiresDate(t *testing.T) {
	eachBackend(t, func(t *testing.T, s Store) {
		if err := s.SaveDailyLog(&models.DailyLog{}); err == nil {
			t.Error("expected error for a dateless log")
		}
	})
}

func TestWeightEntryUpsert(t *testing.T) {
	eachBackend(t, func(t *testing.T, s Store) {
		e := &models.WeightEntry{Date: "2026-08-30", Weight: 74.3}
		if err := s.SaveWeightEntry(e); err != nil {
			t.Fatal(err)
		}

		// Same date, later save wins.
		e2 := &models.WeightEntry{Date: "2026-08-30", Weight: 74.0}
		if err := s.SaveWeightEntry(e2); err != nil {
			t.Fatal(err)
		}

		got, err := s.WeightEntry("2026-08-30")
		if err != nil {
			t.Fatal(err)
		}
		if got == nil || got.Weight != 74.0 {
			t.Errorf("WeightEntry = %+v, want weight 74.0", got)
		}

		if err := s.DeleteWeightEntry("2026-08-30"); err != nil {
			t.Fatal(err)
		}
		got, err = s.WeightEntry("2026-08-30")
		if err != nil || got != nil {
			t.Errorf("after delete: %+v, %v; want nil, nil", got, err)
		}
	})
}

func TestExerciseEntryUpsertByID(t *testing.T) {
	eachBackend(t, func(t *testing.T, s Store) {
		e := models.NewExerciseEntry("2026-08-30", models.ExerciseRunning, 30)
		e.CaloriesBurnt = 240
		if err := s.SaveExerciseEntry(e); err != nil {
			t.Fatal(err)
		}

		other := models.NewExerciseEntry("2026-08-30", models.ExerciseWalking, 60)
		if err := s.SaveExerciseEntry(other); err != nil {
			t.Fatal(err)
		}

		// Re-saving the first entry replaces it in place.
		e.Duration = 45
		if err := s.SaveExerciseEntry(e); err != nil {
			t.Fatal(err)
		}

		list, err := s.ExerciseEntries("2026-08-30")
		if err != nil {
			t.Fatal(err)
		}
		if len(list) != 2 {
			t.Fatalf("len = %d, want 2", len(list))
		}
		if list[0].ID != e.ID || list[0].Duration != 45 {
			t.Errorf("first entry = %+v, want updated duration 45", list[0])
		}
	})
}

func TestDeleteExerciseEntry(t *testing.T) {
	eachBackend(t, func(t *testing.T, s Store) {
		e := models.NewExerciseEntry("2026-08-30", models.ExerciseRunning, 30)
		if err := s.SaveExerciseEntry(e); err != nil {
			t.Fatal(err)
		}

		if err := s.DeleteExerciseEntry("2026-08-30", "nope"); err == nil {
			t.Error("expected error deleting an unknown entry")
		}

		if err := s.DeleteExerciseEntry("2026-08-30", e.ID); err != nil {
			t.Fatal(err)
		}

		// The date's record disappears entirely once the list empties.
		all, err := s.AllExerciseEntries()
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := all["2026-08-30"]; ok {
			t.Error("expected the date key removed after last entry deleted")
		}
	})
}

func TestCustomFoodsSortedByName(t *testing.T) {
	eachBackend(t, func(t *testing.T, s Store) {
		for _, name := range []string{"Poha", "Aloo Paratha", "Dal"} {
			if err := s.SaveCustomFood(models.NewCustomFood(name, models.CategoryCustom, 150, models.UnitServing)); err != nil {
				t.Fatal(err)
			}
		}

		foods, err := s.CustomFoods()
		if err != nil {
			t.Fatal(err)
		}
		want := []string{"Aloo Paratha", "Dal", "Poha"}
		if len(foods) != len(want) {
			t.Fatalf("len = %d, want %d", len(foods), len(want))
		}
		for i, f := range foods {
			if f.Name != want[i] {
				t.Errorf("foods[%d] = %s, want %s", i, f.Name, want[i])
			}
		}

		if err := s.DeleteCustomFood(foods[0].ID); err != nil {
			t.Fatal(err)
		}
		foods, _ = s.CustomFoods()
		if len(foods) != 2 {
			t.Errorf("len after delete = %d, want 2", len(foods))
		}
	})
}

func TestSettingsRoundTrip(t *testing.T) {
	eachBackend(t, func(t *testing.T, s Store) {
		settings := models.DefaultSettings()
		settings.DailyCalorieGoal = 1800
		if err := s.SaveSettings(settings); err != nil {
			t.Fatal(err)
		}

		got, err := s.Settings()
		if err != nil {
			t.Fatal(err)
		}
		if got.DailyCalorieGoal != 1800 {
			t.Errorf("DailyCalorieGoal = %d, want 1800", got.DailyCalorieGoal)
		}
		if got.ExerciseCalorieGoal != 300 {
			t.Errorf("ExerciseCalorieGoal = %d, want 300 preserved", got.ExerciseCalorieGoal)
		}
	})
}

// A stored record written before a settings field existed picks up the
// field's default on read instead of zeroing it.
func TestSettingsMergeOverDefaults(t *testing.T) {
	eachBackend(t, func(t *testing.T, s Store) {
		rs := s.(*recordStore)
		if err := rs.kv.set(SettingsKey, []byte(`{"dailyCalorieGoal": 1500}`)); err != nil {
			t.Fatal(err)
		}

		got, err := s.Settings()
		if err != nil {
			t.Fatal(err)
		}
		if got.DailyCalorieGoal != 1500 {
			t.Errorf("DailyCalorieGoal = %d, want 1500 from storage", got.DailyCalorieGoal)
		}
		if got.ExerciseCalorieGoal != 300 {
			t.Errorf("ExerciseCalorieGoal = %d, want default 300", got.ExerciseCalorieGoal)
		}
		if got.NotificationTime.Hour != 22 {
			t.Errorf("NotificationTime.Hour = %d, want default 22", got.NotificationTime.Hour)
		}
	})
}

// Corrupt records are skipped in listings rather than failing the read.
func TestCorruptRecordsSkipped(t *testing.T) {
	eachBackend(t, func(t *testing.T, s Store) {
		rs := s.(*recordStore)
		if err := rs.kv.set(CustomFoodPrefix+"bad", []byte("{not json")); err != nil {
			t.Fatal(err)
		}
		if err := s.SaveCustomFood(models.NewCustomFood("Good", models.CategoryCustom, 100, models.UnitServing)); err != nil {
			t.Fatal(err)
		}

		foods, err := s.CustomFoods()
		if err != nil {
			t.Fatalf("CustomFoods: %v", err)
		}
		if len(foods) != 1 || foods[0].Name != "Good" {
			t.Errorf("foods = %+v, want only the valid record", foods)
		}
	})
}

func TestUserDataRoundTrip(t *testing.T) {
	eachBackend(t, func(t *testing.T, s Store) {
		height := 170.0
		gender := models.GenderFemale
		u := models.UserData{Height: &height, Gender: &gender, DateOfBirth: "1992-04-15"}
		if err := s.SaveUserData(u); err != nil {
			t.Fatal(err)
		}

		got, err := s.UserData()
		if err != nil {
			t.Fatal(err)
		}
		if got.Height == nil || *got.Height != 170 {
			t.Errorf("Height = %v, want 170", got.Height)
		}
		if got.Gender == nil || *got.Gender != models.GenderFemale {
			t.Errorf("Gender = %v, want female", got.Gender)
		}
		if got.DateOfBirth != "1992-04-15" {
			t.Errorf("DateOfBirth = %s, want 1992-04-15", got.DateOfBirth)
		}
	})
}
