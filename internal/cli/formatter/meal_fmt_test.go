package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/alexanderramin/liftlog/internal/nutrition"
	"github.com/alexanderramin/liftlog/internal/progress"
	"github.com/stretchr/testify/assert"
)

func TestServings(t *testing.T) {
	assert.Equal(t, "1", Servings(1))
	assert.Equal(t, "1.5", Servings(1.5))
	assert.Equal(t, "0.25", Servings(0.25))
}

func TestFormatCalorieLine(t *testing.T) {
	meals := []domain.MealEntry{{Date: testNow, Food: "Pizza", Servings: 1, Calories: 2500}}
	over := stripANSI(FormatCalorieLine(nutrition.DailyProgress(meals, 2000, testNow)))
	assert.Contains(t, over, "2,500 / 2,000 kcal")
	assert.Contains(t, over, "100%")
	assert.Contains(t, over, "500 kcal over goal")

	meals[0].Calories = 1500
	under := stripANSI(FormatCalorieLine(nutrition.DailyProgress(meals, 2000, testNow)))
	assert.Contains(t, under, "500 kcal left")
}

func TestFormatLoggedMeal_CustomFoodNotice(t *testing.T) {
	m := domain.MealEntry{ID: "m1", Date: testNow, Food: "Protein Shake", Servings: 2, Calories: 360, IsCustom: true}
	got := stripANSI(FormatLoggedMeal(m, true, nutrition.DailyProgress([]domain.MealEntry{m}, 2000, testNow)))
	assert.Contains(t, got, "2 x Protein Shake: 360 kcal")
	assert.Contains(t, got, `Saved "Protein Shake" as a custom food (180 kcal per serving).`)
}

func TestFormatMealList(t *testing.T) {
	meals := []domain.MealEntry{
		{ID: "m1", Date: testNow.Add(-24 * time.Hour), Food: "Oatmeal", Servings: 1, Calories: 68},
		{ID: "m2", Date: testNow, Food: "Protein Shake", Servings: 1, Calories: 180, IsCustom: true},
	}
	got := stripANSI(FormatMealList(meals, testNow))
	assert.Contains(t, got, "Yesterday")
	assert.Contains(t, got, "Protein Shake (custom)")
	assert.Contains(t, stripANSI(FormatMealList(nil, testNow)), "No meals logged.")
}

func TestFormatCatalog(t *testing.T) {
	got := stripANSI(FormatCatalog([]nutrition.CatalogItem{
		{FoodCatalogEntry: domain.FoodCatalogEntry{Name: "Rice", CaloriesPerServing: 130}},
		{FoodCatalogEntry: domain.FoodCatalogEntry{Name: "Protein Shake", CaloriesPerServing: 180}, Custom: true},
	}))
	assert.Contains(t, got, "built-in")
	assert.Contains(t, got, "custom")
}

func TestFormatWeeklySummary(t *testing.T) {
	empty := stripANSI(FormatWeeklySummary(progress.WeeklySummary{From: day(9), To: day(15)}))
	assert.Contains(t, empty, "WEEK OF JUN 9 TO JUN 15")
	assert.Contains(t, empty, "No workouts this week.")
	assert.Contains(t, empty, "No meals this week.")
	assert.Contains(t, empty, "0 days")

	full := stripANSI(FormatWeeklySummary(progress.WeeklySummary{
		From: day(9), To: day(15),
		WorkoutDays: 3, ExercisesLogged: 5,
		BodyParts:     []progress.BodyPartCount{{BodyPart: domain.BodyLegs, Count: 2}, {BodyPart: domain.BodyChest, Count: 1}},
		TotalCalories: 9000, MealDays: 4, AvgDailyCalories: 2250,
		TopFoods: []progress.FoodCount{{Food: "Rice", Count: 4}},
		Streak:   3,
	}))
	assert.Contains(t, full, "3 / 7")
	assert.Contains(t, full, "Legs 2 · Chest 1")
	assert.Contains(t, full, "9,000 kcal")
	assert.Contains(t, full, "2,250 kcal over 4 days")
	assert.Contains(t, full, "Rice x4")
	assert.Contains(t, full, "3 days")
}
