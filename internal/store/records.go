// ABOUTME: Record layer implementing Store over a minimal KV backend.
// ABOUTME: Marshals domain records to JSON under namespaced keys.
package store

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sayalik/caltrack/internal/models"
)

// kvBackend is the minimal primitive set a storage engine must provide.
// get returns (nil, nil) for a missing key.
type kvBackend interface {
	get(key string) ([]byte, error)
	set(key string, value []byte) error
	delete(key string) error
	listByPrefix(prefix string) (map[string][]byte, error)
	close() error
}

// recordStore implements Store over any kvBackend.
type recordStore struct {
	kv kvBackend
}

func (s *recordStore) DailyLog(date string) (*models.DailyLog, error) {
	return getRecord[models.DailyLog](s.kv, DailyLogPrefix+date)
}

func (s *recordStore) SaveDailyLog(log *models.DailyLog) error {
	if log.Date == "" {
		return fmt.Errorf("daily log has no date")
	}
	return setRecord(s.kv, DailyLogPrefix+log.Date, log)
}

func (s *recordStore) AllDailyLogs() (map[string]*models.DailyLog, error) {
	return allRecords[models.DailyLog](s.kv, DailyLogPrefix)
}

func (s *recordStore) WeightEntry(date string) (*models.WeightEntry, error) {
	return getRecord[models.WeightEntry](s.kv, WeightPrefix+date)
}

func (s *recordStore) SaveWeightEntry(e *models.WeightEntry) error {
	if e.Date == "" {
		return fmt.Errorf("weight entry has no date")
	}
	return setRecord(s.kv, WeightPrefix+e.Date, e)
}

func (s *recordStore) DeleteWeightEntry(date string) error {
	return s.kv.delete(WeightPrefix + date)
}

func (s *recordStore) AllWeightEntries() (map[string]*models.WeightEntry, error) {
	return allRecords[models.WeightEntry](s.kv, WeightPrefix)
}

func (s *recordStore) ExerciseEntries(date string) ([]models.ExerciseEntry, error) {
	list, err := getRecord[[]models.ExerciseEntry](s.kv, ExercisePrefix+date)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return []models.ExerciseEntry{}, nil
	}
	return *list, nil
}

func (s *recordStore) SaveExerciseEntry(e *models.ExerciseEntry) error {
	if e.Date == "" {
		return fmt.Errorf("exercise entry has no date")
	}
	list, err := s.ExerciseEntries(e.Date)
	if err != nil {
		return err
	}
	replaced := false
	for i := range list {
		if list[i].ID == e.ID {
			list[i] = *e
			replaced = true
			break
		}
	}
	if !replaced {
		list = append(list, *e)
	}
	return setRecord(s.kv, ExercisePrefix+e.Date, list)
}

func (s *recordStore) DeleteExerciseEntry(date, entryID string) error {
	list, err := s.ExerciseEntries(date)
	if err != nil {
		return err
	}
	kept := list[:0]
	for _, e := range list {
		if e.ID != entryID {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(list) {
		return fmt.Errorf("exercise entry %s not found on %s", entryID, date)
	}
	if len(kept) == 0 {
		return s.kv.delete(ExercisePrefix + date)
	}
	return setRecord(s.kv, ExercisePrefix+date, kept)
}

func (s *recordStore) AllExerciseEntries() (map[string][]models.ExerciseEntry, error) {
	raw, err := s.kv.listByPrefix(ExercisePrefix)
	if err != nil {
		return nil, fmt.Errorf("list exercise entries: %w", err)
	}
	result := make(map[string][]models.ExerciseEntry, len(raw))
	for key, data := range raw {
		list, err := unmarshalRecord[[]models.ExerciseEntry](data)
		if err != nil {
			continue // skip invalid entries
		}
		result[strings.TrimPrefix(key, ExercisePrefix)] = *list
	}
	return result, nil
}

func (s *recordStore) CustomFoods() ([]models.FoodItem, error) {
	raw, err := s.kv.listByPrefix(CustomFoodPrefix)
	if err != nil {
		return nil, fmt.Errorf("list custom foods: %w", err)
	}
	foods := make([]models.FoodItem, 0, len(raw))
	for _, data := range raw {
		f, err := unmarshalRecord[models.FoodItem](data)
		if err != nil {
			continue // skip invalid entries
		}
		foods = append(foods, *f)
	}
	sort.Slice(foods, func(i, j int) bool { return foods[i].Name < foods[j].Name })
	return foods, nil
}

func (s *recordStore) SaveCustomFood(f *models.FoodItem) error {
	if f.ID == "" {
		return fmt.Errorf("custom food has no id")
	}
	return setRecord(s.kv, CustomFoodPrefix+f.ID, f)
}

func (s *recordStore) DeleteCustomFood(id string) error {
	return s.kv.delete(CustomFoodPrefix + id)
}

func (s *recordStore) Settings() (models.AppSettings, error) {
	// Merge over defaults so new fields pick up default values when the
	// stored record predates them.
	settings := models.DefaultSettings()
	data, err := s.kv.get(SettingsKey)
	if err != nil {
		return settings, fmt.Errorf("get settings: %w", err)
	}
	if data == nil {
		return settings, nil
	}
	if err := unmarshalInto(data, &settings); err != nil {
		return models.DefaultSettings(), fmt.Errorf("decode settings: %w", err)
	}
	return settings, nil
}

func (s *recordStore) SaveSettings(settings models.AppSettings) error {
	return setRecord(s.kv, SettingsKey, settings)
}

func (s *recordStore) UserData() (models.UserData, error) {
	u, err := getRecord[models.UserData](s.kv, UserDataKey)
	if err != nil {
		return models.UserData{}, err
	}
	if u == nil {
		return models.UserData{}, nil
	}
	return *u, nil
}

func (s *recordStore) SaveUserData(u models.UserData) error {
	return setRecord(s.kv, UserDataKey, u)
}

func (s *recordStore) Close() error {
	return s.kv.close()
}
