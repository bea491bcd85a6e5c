package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/alexanderramin/liftlog/internal/nutrition"
)

type mealService struct {
	store    *StateLoader
	observer UseCaseObserver
}

func NewMealService(store *StateLoader, observers ...UseCaseObserver) MealService {
	return &mealService{store: store, observer: useCaseObserverOrNoop(observers)}
}

// Log records a meal. A catalog hit prices the meal from the catalog unless
// Calories overrides it. A miss needs Calories and saves the food as a
// custom food so the next lookup finds it.
func (s *mealService) Log(ctx context.Context, req MealRequest) (logged *LoggedMeal, err error) {
	fields := map[string]any{"food": req.Food, "servings": req.Servings}
	defer observe(ctx, s.observer, "log-meal", time.Now(), fields, &err)

	if !(req.Servings > 0 && req.Servings <= domain.MaxServings) {
		return nil, fmt.Errorf("servings must be more than 0 and at most %d: %w", domain.MaxServings, domain.ErrInvalidInput)
	}
	if req.Calories != nil && (*req.Calories < 0 || *req.Calories > domain.MaxCalories) {
		return nil, fmt.Errorf("calories per serving must be between 0 and %d: %w", domain.MaxCalories, domain.ErrInvalidInput)
	}

	now := s.store.Now()
	out := &LoggedMeal{}
	err = s.store.Update(ctx, func(st domain.AppState) (domain.AppState, error) {
		meal := domain.MealEntry{
			ID:       uuid.New().String(),
			Date:     now,
			Food:     strings.Join(strings.Fields(req.Food), " "),
			Servings: req.Servings,
		}

		var newFood *domain.FoodCatalogEntry
		item, lookupErr := nutrition.Lookup(st.CustomFoods, req.Food)
		switch {
		case lookupErr == nil:
			perServing := item.CaloriesPerServing
			if req.Calories != nil {
				perServing = *req.Calories
			}
			meal.Calories = nutrition.Calories(perServing, req.Servings)
			meal.IsCustom = item.Custom
		case errors.Is(lookupErr, domain.ErrNotFound):
			if req.Calories == nil {
				return st, fmt.Errorf("%q is not in the food list; give its calories per serving: %w", meal.Food, domain.ErrNotFound)
			}
			meal.Calories = nutrition.Calories(*req.Calories, req.Servings)
			meal.IsCustom = true
			newFood = &domain.FoodCatalogEntry{Name: meal.Food, CaloriesPerServing: *req.Calories}
		default:
			return st, lookupErr
		}

		next, err := addMeal(st, meal, newFood)
		if err != nil {
			return st, err
		}
		out.Entry = meal
		out.SavedCustomFood = newFood != nil
		out.Progress = nutrition.DailyProgress(next.Meals, next.DailyGoal, now)
		return next, nil
	})
	if err != nil {
		return nil, err
	}
	fields["calories"] = out.Entry.Calories
	fields["custom"] = out.SavedCustomFood
	return out, nil
}

func (s *mealService) Delete(ctx context.Context, id string) (removed *domain.MealEntry, err error) {
	defer observe(ctx, s.observer, "delete-meal", time.Now(), map[string]any{"id": id}, &err)

	var out domain.MealEntry
	err = s.store.Update(ctx, func(st domain.AppState) (domain.AppState, error) {
		next, m, err := removeMeal(st, id)
		out = m
		return next, err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *mealService) OnDay(ctx context.Context, day time.Time) ([]domain.MealEntry, error) {
	st, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	meals := nutrition.MealsOn(st.Meals, day)
	sort.SliceStable(meals, func(i, j int) bool { return meals[i].Date.Before(meals[j].Date) })
	return meals, nil
}

func (s *mealService) Today(ctx context.Context) (*nutrition.Progress, error) {
	st, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	p := nutrition.DailyProgress(st.Meals, st.DailyGoal, s.store.Now())
	return &p, nil
}

type foodService struct {
	store    *StateLoader
	observer UseCaseObserver
}

func NewFoodService(store *StateLoader, observers ...UseCaseObserver) FoodService {
	return &foodService{store: store, observer: useCaseObserverOrNoop(observers)}
}

func (s *foodService) Lookup(ctx context.Context, name string) (*nutrition.CatalogItem, error) {
	st, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	item, err := nutrition.Lookup(st.CustomFoods, name)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *foodService) Catalog(ctx context.Context) ([]nutrition.CatalogItem, error) {
	st, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return nutrition.Catalog(st.CustomFoods), nil
}

func (s *foodService) AddCustom(ctx context.Context, name string, caloriesPerServing int) (replaced bool, err error) {
	defer observe(ctx, s.observer, "add-custom-food", time.Now(), map[string]any{"food": name}, &err)

	err = s.store.Update(ctx, func(st domain.AppState) (domain.AppState, error) {
		next, r, err := putCustomFood(st, domain.FoodCatalogEntry{Name: name, CaloriesPerServing: caloriesPerServing})
		replaced = r
		return next, err
	})
	return replaced, err
}

type goalService struct {
	store    *StateLoader
	observer UseCaseObserver
}

func NewGoalService(store *StateLoader, observers ...UseCaseObserver) GoalService {
	return &goalService{store: store, observer: useCaseObserverOrNoop(observers)}
}

func (s *goalService) Get(ctx context.Context) (int, error) {
	st, err := s.store.Load(ctx)
	if err != nil {
		return 0, err
	}
	return st.DailyGoal, nil
}

func (s *goalService) Set(ctx context.Context, goal int) (err error) {
	defer observe(ctx, s.observer, "set-goal", time.Now(), map[string]any{"goal": goal}, &err)

	return s.store.Update(ctx, func(st domain.AppState) (domain.AppState, error) {
		return setDailyGoal(st, goal)
	})
}
