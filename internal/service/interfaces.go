package service

import (
	"context"
	"time"

	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/alexanderramin/liftlog/internal/nutrition"
	"github.com/alexanderramin/liftlog/internal/progress"
)

// DefaultHistoryLimit is how many entries list views show by default.
const DefaultHistoryLimit = 10

type WorkoutFilter struct {
	BodyPart domain.BodyPart
	Exercise string
	// Limit caps the result; zero or less means no cap.
	Limit int
}

// LoggedWorkout is a saved entry with the record check for each of its sets.
type LoggedWorkout struct {
	Entry domain.WorkoutEntry
	PRs   []progress.PRResult
}

type WorkoutService interface {
	Log(ctx context.Context, entry domain.WorkoutEntry) (*LoggedWorkout, error)
	Edit(ctx context.Context, id string, edit domain.WorkoutEdit) (*domain.WorkoutEntry, error)
	Delete(ctx context.Context, id string) (*domain.WorkoutEntry, error)
	Get(ctx context.Context, id string) (*domain.WorkoutEntry, error)
	// List returns matching entries, newest first.
	List(ctx context.Context, filter WorkoutFilter) ([]domain.WorkoutEntry, error)
	// OnDay returns the entries logged on day's calendar date, oldest first.
	OnDay(ctx context.Context, day time.Time) ([]domain.WorkoutEntry, error)
	Exercises(ctx context.Context) ([]string, error)
}

// MealRequest describes a meal to log. Calories, when set, is the calorie
// count per serving and is required for foods missing from the catalog.
type MealRequest struct {
	Food     string
	Servings float64
	Calories *int
}

type LoggedMeal struct {
	Entry domain.MealEntry
	// SavedCustomFood is set when the food was new and has been added to
	// the custom catalog.
	SavedCustomFood bool
	Progress        nutrition.Progress
}

type MealService interface {
	Log(ctx context.Context, req MealRequest) (*LoggedMeal, error)
	Delete(ctx context.Context, id string) (*domain.MealEntry, error)
	// OnDay returns the meals logged on day's calendar date, oldest first.
	OnDay(ctx context.Context, day time.Time) ([]domain.MealEntry, error)
	Today(ctx context.Context) (*nutrition.Progress, error)
}

type FoodService interface {
	Lookup(ctx context.Context, name string) (*nutrition.CatalogItem, error)
	Catalog(ctx context.Context) ([]nutrition.CatalogItem, error)
	AddCustom(ctx context.Context, name string, caloriesPerServing int) (replaced bool, err error)
}

type GoalService interface {
	Get(ctx context.Context) (int, error)
	Set(ctx context.Context, goal int) error
}

type ProgressService interface {
	PersonalRecords(ctx context.Context) ([]progress.PersonalRecord, error)
	ExerciseHistory(ctx context.Context, exercise string) (*progress.ExerciseHistory, error)
	WeeklySummary(ctx context.Context) (*progress.WeeklySummary, error)
	Streak(ctx context.Context) (int, error)
}

type TemplateService interface {
	// SaveFromDay builds a template from the workouts logged on day.
	SaveFromDay(ctx context.Context, name string, day time.Time) (*domain.WorkoutTemplate, error)
	Save(ctx context.Context, name string, entries []domain.WorkoutEntry) (*domain.WorkoutTemplate, error)
	List(ctx context.Context) ([]domain.WorkoutTemplate, error)
	Get(ctx context.Context, name string) (*domain.WorkoutTemplate, error)
	Delete(ctx context.Context, name string) error
}
