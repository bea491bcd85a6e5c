package progress

import (
	"sort"
	"time"

	"github.com/alexanderramin/liftlog/internal/domain"
)

// SummaryDays is the length of the summary window, today included.
const SummaryDays = 7

// topFoodCount is how many foods the summary lists.
const topFoodCount = 3

type BodyPartCount struct {
	BodyPart domain.BodyPart
	Count    int
}

type FoodCount struct {
	Food  string
	Count int
}

// WeeklySummary describes the last SummaryDays calendar days.
type WeeklySummary struct {
	From time.Time
	To   time.Time

	WorkoutDays     int
	ExercisesLogged int
	BodyParts       []BodyPartCount

	TotalCalories    int
	MealDays         int
	AvgDailyCalories float64
	TopFoods         []FoodCount

	Streak int
}

// HasWorkouts reports whether anything was trained in the window.
func (s WeeklySummary) HasWorkouts() bool { return s.ExercisesLogged > 0 }

// HasMeals reports whether any meal was logged in the window.
func (s WeeklySummary) HasMeals() bool { return s.MealDays > 0 }

// Summarize builds the weekly summary ending on now's calendar day.
func Summarize(state domain.AppState, now time.Time) WeeklySummary {
	loc := now.Location()
	today := dayOf(now, loc)
	from := addDays(today, -(SummaryDays - 1))
	inWindow := func(t time.Time) bool {
		d := dayOf(t, loc)
		return !d.Before(from) && !d.After(today)
	}

	sum := WeeklySummary{From: from, To: today}

	workoutDays := map[time.Time]bool{}
	partCounts := map[domain.BodyPart]int{}
	for i := range state.Workouts {
		w := &state.Workouts[i]
		if !inWindow(w.Date) {
			continue
		}
		sum.ExercisesLogged++
		workoutDays[dayOf(w.Date, loc)] = true
		for _, bp := range w.BodyParts {
			partCounts[bp]++
		}
	}
	sum.WorkoutDays = len(workoutDays)
	for _, bp := range domain.BodyParts {
		if c := partCounts[bp]; c > 0 {
			sum.BodyParts = append(sum.BodyParts, BodyPartCount{BodyPart: bp, Count: c})
		}
	}
	sort.SliceStable(sum.BodyParts, func(i, j int) bool {
		return sum.BodyParts[i].Count > sum.BodyParts[j].Count
	})

	mealDays := map[time.Time]bool{}
	foodIdx := map[string]int{}
	var foods []FoodCount
	for i := range state.Meals {
		m := &state.Meals[i]
		if !inWindow(m.Date) {
			continue
		}
		sum.TotalCalories += m.Calories
		mealDays[dayOf(m.Date, loc)] = true
		key := domain.NormalizeFoodName(m.Food)
		if idx, ok := foodIdx[key]; ok {
			foods[idx].Count++
			continue
		}
		foodIdx[key] = len(foods)
		foods = append(foods, FoodCount{Food: m.Food, Count: 1})
	}
	sum.MealDays = len(mealDays)
	if sum.MealDays > 0 {
		sum.AvgDailyCalories = float64(sum.TotalCalories) / float64(sum.MealDays)
	}
	// Stable sort keeps first-encountered order among equal counts.
	sort.SliceStable(foods, func(i, j int) bool { return foods[i].Count > foods[j].Count })
	if len(foods) > topFoodCount {
		foods = foods[:topFoodCount]
	}
	sum.TopFoods = foods

	sum.Streak = Streak(state.Workouts, now)
	return sum
}
