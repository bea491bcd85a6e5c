package domain

import (
	"fmt"
	"sort"
	"strings"
)

// SchemaVersion is the persisted state layout version. State written with a
// different version is treated as corrupt and reset.
const SchemaVersion = 1

// minIDPrefix is the shortest ID prefix accepted for edit/delete lookups.
const minIDPrefix = 4

// AppState is the complete snapshot of the user's data.
type AppState struct {
	Version     int                `json:"version"`
	Workouts    []WorkoutEntry     `json:"workouts"`
	Meals       []MealEntry        `json:"meals"`
	CustomFoods []FoodCatalogEntry `json:"customFoods"`
	DailyGoal   int                `json:"dailyGoal"`
	Templates   []WorkoutTemplate  `json:"templates"`
}

// NewAppState returns an empty state at the current schema version.
func NewAppState() AppState {
	return AppState{
		Version:     SchemaVersion,
		Workouts:    []WorkoutEntry{},
		Meals:       []MealEntry{},
		CustomFoods: []FoodCatalogEntry{},
		DailyGoal:   DefaultDailyGoal,
		Templates:   []WorkoutTemplate{},
	}
}

// Normalize fills nil collections and a missing goal so callers never
// range over nil or divide by zero.
func (s AppState) Normalize() AppState {
	if s.Workouts == nil {
		s.Workouts = []WorkoutEntry{}
	}
	if s.Meals == nil {
		s.Meals = []MealEntry{}
	}
	if s.CustomFoods == nil {
		s.CustomFoods = []FoodCatalogEntry{}
	}
	if s.Templates == nil {
		s.Templates = []WorkoutTemplate{}
	}
	if s.DailyGoal <= 0 {
		s.DailyGoal = DefaultDailyGoal
	}
	return s
}

// Clone deep-copies the state so transitions never alias the caller's slices.
func (s AppState) Clone() AppState {
	out := s
	out.Workouts = make([]WorkoutEntry, len(s.Workouts))
	for i, w := range s.Workouts {
		w.BodyParts = append([]BodyPart(nil), w.BodyParts...)
		w.Sets = append([]Set(nil), w.Sets...)
		out.Workouts[i] = w
	}
	out.Meals = append([]MealEntry{}, s.Meals...)
	out.CustomFoods = append([]FoodCatalogEntry{}, s.CustomFoods...)
	out.Templates = make([]WorkoutTemplate, len(s.Templates))
	for i, t := range s.Templates {
		t.BodyParts = append([]BodyPart(nil), t.BodyParts...)
		t.Exercises = append([]TemplateExercise(nil), t.Exercises...)
		out.Templates[i] = t
	}
	return out
}

// CheckVersion reports ErrCorruptData when the state was written by another
// schema version.
func (s AppState) CheckVersion() error {
	if s.Version != SchemaVersion {
		return fmt.Errorf("schema version %d, want %d: %w", s.Version, SchemaVersion, ErrCorruptData)
	}
	return nil
}

// FindWorkout resolves a full ID or unique prefix to an index into Workouts.
func (s AppState) FindWorkout(id string) (int, error) {
	ids := make([]string, len(s.Workouts))
	for i, w := range s.Workouts {
		ids[i] = w.ID
	}
	return resolvePrefix("workout", ids, id)
}

// FindMeal resolves a full ID or unique prefix to an index into Meals.
func (s AppState) FindMeal(id string) (int, error) {
	ids := make([]string, len(s.Meals))
	for i, m := range s.Meals {
		ids[i] = m.ID
	}
	return resolvePrefix("meal", ids, id)
}

// FindTemplate looks a template up by case-insensitive name.
func (s AppState) FindTemplate(name string) (int, error) {
	for i, t := range s.Templates {
		if strings.EqualFold(t.Name, strings.TrimSpace(name)) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("template %q: %w", name, ErrNotFound)
}

// FindCustomFood looks a custom food up by normalized name.
func (s AppState) FindCustomFood(name string) (int, error) {
	key := NormalizeFoodName(name)
	for i, f := range s.CustomFoods {
		if NormalizeFoodName(f.Name) == key {
			return i, nil
		}
	}
	return -1, fmt.Errorf("custom food %q: %w", name, ErrNotFound)
}

// Exercises returns the distinct exercise names logged, sorted
// case-insensitively. The first spelling seen wins.
func (s AppState) Exercises() []string {
	seen := map[string]bool{}
	var out []string
	for _, w := range s.Workouts {
		key := strings.ToLower(strings.TrimSpace(w.Exercise))
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, w.Exercise)
	}
	sort.Slice(out, func(i, j int) bool { return strings.ToLower(out[i]) < strings.ToLower(out[j]) })
	return out
}

func resolvePrefix(kind string, ids []string, input string) (int, error) {
	input = strings.TrimSpace(input)
	for i, id := range ids {
		if id == input {
			return i, nil
		}
	}
	if len(input) < minIDPrefix {
		return -1, fmt.Errorf("%s %q: need at least %d characters of the ID: %w", kind, input, minIDPrefix, ErrInvalidInput)
	}
	match := -1
	for i, id := range ids {
		if strings.HasPrefix(id, input) {
			if match >= 0 {
				return -1, fmt.Errorf("%s %q matches several entries: %w", kind, input, ErrAmbiguousID)
			}
			match = i
		}
	}
	if match < 0 {
		return -1, fmt.Errorf("%s %q: %w", kind, input, ErrNotFound)
	}
	return match, nil
}
