package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/liftlog/internal/domain"
)

// FixedNow is the reference clock used across tests.
var FixedNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

// Workout options
type WorkoutOption func(*domain.WorkoutEntry)

func WithBodyParts(parts ...domain.BodyPart) WorkoutOption {
	return func(w *domain.WorkoutEntry) {
		w.BodyParts = parts
	}
}

func WithSets(sets ...domain.Set) WorkoutOption {
	return func(w *domain.WorkoutEntry) {
		w.Sets = sets
	}
}

// WithDaysAgo dates the entry n days before FixedNow.
func WithDaysAgo(n int) WorkoutOption {
	return func(w *domain.WorkoutEntry) {
		w.Date = FixedNow.AddDate(0, 0, -n)
	}
}

func WithWorkoutDate(d time.Time) WorkoutOption {
	return func(w *domain.WorkoutEntry) {
		w.Date = d
	}
}

func WithNotes(n string) WorkoutOption {
	return func(w *domain.WorkoutEntry) {
		w.Notes = n
	}
}

func WithWorkoutID(id string) WorkoutOption {
	return func(w *domain.WorkoutEntry) {
		w.ID = id
	}
}

// NewTestWorkout returns a valid entry: 3x10 at 60kg, chest, at FixedNow.
func NewTestWorkout(exercise string, opts ...WorkoutOption) domain.WorkoutEntry {
	w := domain.WorkoutEntry{
		ID:        uuid.New().String(),
		Date:      FixedNow,
		BodyParts: []domain.BodyPart{domain.BodyChest},
		Exercise:  exercise,
		Sets:      []domain.Set{{Reps: 10, Weight: 60}, {Reps: 10, Weight: 60}, {Reps: 10, Weight: 60}},
	}
	for _, opt := range opts {
		opt(&w)
	}
	return w
}

// Meal options
type MealOption func(*domain.MealEntry)

func WithMealDaysAgo(n int) MealOption {
	return func(m *domain.MealEntry) {
		m.Date = FixedNow.AddDate(0, 0, -n)
	}
}

func WithServings(s float64) MealOption {
	return func(m *domain.MealEntry) {
		m.Servings = s
	}
}

func WithCustomFood() MealOption {
	return func(m *domain.MealEntry) {
		m.IsCustom = true
	}
}

func NewTestMeal(food string, calories int, opts ...MealOption) domain.MealEntry {
	m := domain.MealEntry{
		ID:       uuid.New().String(),
		Date:     FixedNow,
		Food:     food,
		Servings: 1,
		Calories: calories,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// NewTestTemplate builds a template from the given exercises, all filed
// under part.
func NewTestTemplate(name string, part domain.BodyPart, exercises ...string) domain.WorkoutTemplate {
	t := domain.WorkoutTemplate{
		Name:      name,
		BodyParts: []domain.BodyPart{part},
		CreatedAt: FixedNow,
	}
	for _, ex := range exercises {
		t.Exercises = append(t.Exercises, domain.TemplateExercise{Exercise: ex, BodyPart: part})
	}
	return t
}

// NewTestState returns a populated state covering every collection.
func NewTestState() domain.AppState {
	s := domain.NewAppState()
	s.DailyGoal = 2200
	s.Workouts = []domain.WorkoutEntry{
		NewTestWorkout("Bench Press", WithDaysAgo(2), WithSets(domain.Set{Reps: 10, Weight: 60}, domain.Set{Reps: 8, Weight: 65})),
		NewTestWorkout("Squat", WithDaysAgo(1), WithBodyParts(domain.BodyLegs, domain.BodyCore), WithNotes("felt strong")),
		NewTestWorkout("Push-ups", WithSets(domain.Set{Reps: 20})),
	}
	s.Meals = []domain.MealEntry{
		NewTestMeal("rice", 195, WithServings(1.5)),
		NewTestMeal("Protein Shake", 180, WithCustomFood()),
	}
	s.CustomFoods = []domain.FoodCatalogEntry{{Name: "Protein Shake", CaloriesPerServing: 180}}
	s.Templates = []domain.WorkoutTemplate{NewTestTemplate("Leg Day", domain.BodyLegs, "Squat", "Lunges")}
	return s
}
