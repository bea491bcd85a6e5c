package nutrition

import (
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/liftlog/internal/domain"
)

// Calories is perServing scaled by servings, rounded to the nearest whole
// calorie.
func Calories(perServing int, servings float64) int {
	return int(math.Round(float64(perServing) * servings))
}

// GramsToServings converts a gram amount to servings of ServingGrams.
func GramsToServings(grams float64) (float64, error) {
	if !(grams > 0 && grams <= domain.MaxServings*ServingGrams) {
		return 0, fmt.Errorf("grams must be more than 0 and at most %d: %w", domain.MaxServings*ServingGrams, domain.ErrInvalidInput)
	}
	return grams / ServingGrams, nil
}

// Progress is a day's intake measured against the calorie goal.
type Progress struct {
	Day      time.Time
	Meals    []domain.MealEntry
	Consumed int
	Goal     int
	// Ratio is consumed/goal, unclamped.
	Ratio float64
	// Percent is Ratio as a percentage, capped at 100.
	Percent   float64
	OverGoal  bool
	Remaining int
	Over      int
}

// MealsOn returns the meals logged on day's calendar date in day's location,
// in logged order.
func MealsOn(meals []domain.MealEntry, day time.Time) []domain.MealEntry {
	loc := day.Location()
	y, m, d := day.Date()
	var out []domain.MealEntry
	for _, meal := range meals {
		my, mm, md := meal.Date.In(loc).Date()
		if my == y && mm == m && md == d {
			out = append(out, meal)
		}
	}
	return out
}

// DailyProgress sums day's meals against goal. A non-positive goal falls
// back to domain.DefaultDailyGoal.
func DailyProgress(meals []domain.MealEntry, goal int, day time.Time) Progress {
	if goal <= 0 {
		goal = domain.DefaultDailyGoal
	}
	y, m, d := day.Date()
	p := Progress{
		Day:   time.Date(y, m, d, 0, 0, 0, 0, day.Location()),
		Meals: MealsOn(meals, day),
		Goal:  goal,
	}
	for _, meal := range p.Meals {
		p.Consumed += meal.Calories
	}
	p.Ratio = float64(p.Consumed) / float64(goal)
	p.Percent = math.Min(p.Ratio*100, 100)
	if p.Consumed > goal {
		p.OverGoal = true
		p.Over = p.Consumed - goal
	} else {
		p.Remaining = goal - p.Consumed
	}
	return p
}

// ValidateGoal accepts goals from 1 to domain.MaxCalories.
func ValidateGoal(goal int) error {
	if goal <= 0 || goal > domain.MaxCalories {
		return fmt.Errorf("daily goal must be between 1 and %d calories, got %d: %w", domain.MaxCalories, goal, domain.ErrInvalidInput)
	}
	return nil
}
