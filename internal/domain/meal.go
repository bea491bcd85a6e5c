package domain

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/multierr"
)

// DefaultDailyGoal is the calorie target used until the user sets one.
const DefaultDailyGoal = 2000

const (
	// MaxServings caps one meal at 10 kg of a 100 g serving.
	MaxServings = 100
	// MaxCalories caps calories per serving and the daily goal.
	MaxCalories = 10000
)

type MealEntry struct {
	ID       string    `json:"id"`
	Date     time.Time `json:"date"`
	Food     string    `json:"food"`
	Servings float64   `json:"servings"`
	Calories int       `json:"calories"`
	IsCustom bool      `json:"isCustom"`
}

func (m *MealEntry) Validate() error {
	var err error
	if strings.TrimSpace(m.Food) == "" {
		err = multierr.Append(err, fmt.Errorf("food name is required: %w", ErrInvalidInput))
	}
	if !(m.Servings > 0 && m.Servings <= MaxServings) {
		err = multierr.Append(err, fmt.Errorf("servings must be more than 0 and at most %d: %w", MaxServings, ErrInvalidInput))
	}
	if m.Calories < 0 || m.Calories > MaxServings*MaxCalories {
		err = multierr.Append(err, fmt.Errorf("calories must be between 0 and %d: %w", MaxServings*MaxCalories, ErrInvalidInput))
	}
	return err
}

// FoodCatalogEntry is a named food with its calories per serving. A serving
// of a built-in food is 100 g.
type FoodCatalogEntry struct {
	Name               string `json:"name"`
	CaloriesPerServing int    `json:"caloriesPerServing"`
}

func (f *FoodCatalogEntry) Validate() error {
	var err error
	if NormalizeFoodName(f.Name) == "" {
		err = multierr.Append(err, fmt.Errorf("food name is required: %w", ErrInvalidInput))
	}
	if f.CaloriesPerServing < 0 || f.CaloriesPerServing > MaxCalories {
		err = multierr.Append(err, fmt.Errorf("calories per serving must be between 0 and %d: %w", MaxCalories, ErrInvalidInput))
	}
	return err
}

// NormalizeFoodName is the lookup key for a food: trimmed, lower-cased, and
// with internal whitespace collapsed.
func NormalizeFoodName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
