package service

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/alexanderramin/liftlog/internal/nutrition"
	"github.com/alexanderramin/liftlog/internal/progress"
)

// The functions below are the pure state transitions behind every use case.
// Each takes the current state by value and returns the next one; the
// input is never modified.

// addWorkout validates entry, detects records against the existing history
// and appends it.
func addWorkout(s domain.AppState, entry domain.WorkoutEntry) (domain.AppState, domain.WorkoutEntry, []progress.PRResult, error) {
	entry.Exercise = strings.TrimSpace(entry.Exercise)
	if err := entry.Validate(); err != nil {
		return s, domain.WorkoutEntry{}, nil, err
	}
	prs := progress.DetectEntryPRs(s.Workouts, entry)
	next := s.Clone()
	next.Workouts = append(next.Workouts, entry)
	return next, entry, prs, nil
}

func editWorkout(s domain.AppState, id string, edit domain.WorkoutEdit) (domain.AppState, domain.WorkoutEntry, error) {
	if edit.IsEmpty() {
		return s, domain.WorkoutEntry{}, fmt.Errorf("nothing to change: %w", domain.ErrInvalidInput)
	}
	idx, err := s.FindWorkout(id)
	if err != nil {
		return s, domain.WorkoutEntry{}, err
	}
	updated := edit.Apply(s.Workouts[idx])
	if err := updated.Validate(); err != nil {
		return s, domain.WorkoutEntry{}, err
	}
	next := s.Clone()
	next.Workouts[idx] = updated
	return next, updated, nil
}

func removeWorkout(s domain.AppState, id string) (domain.AppState, domain.WorkoutEntry, error) {
	idx, err := s.FindWorkout(id)
	if err != nil {
		return s, domain.WorkoutEntry{}, err
	}
	next := s.Clone()
	removed := next.Workouts[idx]
	next.Workouts = append(next.Workouts[:idx], next.Workouts[idx+1:]...)
	return next, removed, nil
}

// addMeal appends meal and, when custom is non-nil, stores it as a custom
// food for later lookups.
func addMeal(s domain.AppState, meal domain.MealEntry, custom *domain.FoodCatalogEntry) (domain.AppState, error) {
	if err := meal.Validate(); err != nil {
		return s, err
	}
	next := s.Clone()
	if custom != nil {
		if err := custom.Validate(); err != nil {
			return s, err
		}
		next.CustomFoods, _ = nutrition.UpsertCustomFood(next.CustomFoods, *custom)
	}
	next.Meals = append(next.Meals, meal)
	return next, nil
}

func removeMeal(s domain.AppState, id string) (domain.AppState, domain.MealEntry, error) {
	idx, err := s.FindMeal(id)
	if err != nil {
		return s, domain.MealEntry{}, err
	}
	next := s.Clone()
	removed := next.Meals[idx]
	next.Meals = append(next.Meals[:idx], next.Meals[idx+1:]...)
	return next, removed, nil
}

func putCustomFood(s domain.AppState, food domain.FoodCatalogEntry) (domain.AppState, bool, error) {
	food.Name = strings.Join(strings.Fields(food.Name), " ")
	if err := food.Validate(); err != nil {
		return s, false, err
	}
	next := s.Clone()
	var replaced bool
	next.CustomFoods, replaced = nutrition.UpsertCustomFood(next.CustomFoods, food)
	return next, replaced, nil
}

func setDailyGoal(s domain.AppState, goal int) (domain.AppState, error) {
	if err := nutrition.ValidateGoal(goal); err != nil {
		return s, err
	}
	next := s.Clone()
	next.DailyGoal = goal
	return next, nil
}

// putTemplate stores t, replacing a template with the same name.
func putTemplate(s domain.AppState, t domain.WorkoutTemplate) (domain.AppState, bool, error) {
	t.Name = strings.TrimSpace(t.Name)
	if err := t.Validate(); err != nil {
		return s, false, err
	}
	next := s.Clone()
	if idx, err := next.FindTemplate(t.Name); err == nil {
		next.Templates[idx] = t
		return next, true, nil
	}
	next.Templates = append(next.Templates, t)
	return next, false, nil
}

func removeTemplate(s domain.AppState, name string) (domain.AppState, domain.WorkoutTemplate, error) {
	idx, err := s.FindTemplate(name)
	if err != nil {
		return s, domain.WorkoutTemplate{}, err
	}
	next := s.Clone()
	removed := next.Templates[idx]
	next.Templates = append(next.Templates[:idx], next.Templates[idx+1:]...)
	return next, removed, nil
}
