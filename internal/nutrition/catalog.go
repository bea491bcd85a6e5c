// Package nutrition holds the built-in food catalog and the calorie math
// behind meal logging and daily goal progress.
package nutrition

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/liftlog/internal/domain"
)

// ServingGrams is the weight of one serving of a built-in food.
const ServingGrams = 100

// builtinFoods are calories per 100 g.
var builtinFoods = []domain.FoodCatalogEntry{
	// Proteins
	{Name: "chicken breast", CaloriesPerServing: 165},
	{Name: "chicken thigh", CaloriesPerServing: 209},
	{Name: "beef", CaloriesPerServing: 250},
	{Name: "ground beef", CaloriesPerServing: 332},
	{Name: "salmon", CaloriesPerServing: 208},
	{Name: "tuna", CaloriesPerServing: 132},
	{Name: "shrimp", CaloriesPerServing: 99},
	{Name: "eggs", CaloriesPerServing: 155},
	{Name: "egg whites", CaloriesPerServing: 52},
	{Name: "tofu", CaloriesPerServing: 76},
	{Name: "turkey", CaloriesPerServing: 135},
	{Name: "pork", CaloriesPerServing: 242},
	// Carbs
	{Name: "rice", CaloriesPerServing: 130},
	{Name: "brown rice", CaloriesPerServing: 123},
	{Name: "bread", CaloriesPerServing: 265},
	{Name: "whole wheat bread", CaloriesPerServing: 247},
	{Name: "pasta", CaloriesPerServing: 131},
	{Name: "oatmeal", CaloriesPerServing: 68},
	{Name: "potato", CaloriesPerServing: 77},
	{Name: "sweet potato", CaloriesPerServing: 86},
	{Name: "quinoa", CaloriesPerServing: 120},
	// Vegetables
	{Name: "broccoli", CaloriesPerServing: 34},
	{Name: "spinach", CaloriesPerServing: 23},
	{Name: "carrot", CaloriesPerServing: 41},
	{Name: "tomato", CaloriesPerServing: 18},
	{Name: "cucumber", CaloriesPerServing: 16},
	{Name: "bell pepper", CaloriesPerServing: 31},
	{Name: "lettuce", CaloriesPerServing: 15},
	{Name: "onion", CaloriesPerServing: 40},
	{Name: "mushroom", CaloriesPerServing: 22},
	{Name: "avocado", CaloriesPerServing: 160},
	// Fruits
	{Name: "banana", CaloriesPerServing: 89},
	{Name: "apple", CaloriesPerServing: 52},
	{Name: "orange", CaloriesPerServing: 47},
	{Name: "strawberry", CaloriesPerServing: 32},
	{Name: "blueberry", CaloriesPerServing: 57},
	{Name: "grapes", CaloriesPerServing: 69},
	{Name: "watermelon", CaloriesPerServing: 30},
	{Name: "mango", CaloriesPerServing: 60},
	// Dairy
	{Name: "milk", CaloriesPerServing: 42},
	{Name: "almond milk", CaloriesPerServing: 15},
	{Name: "yogurt", CaloriesPerServing: 59},
	{Name: "greek yogurt", CaloriesPerServing: 97},
	{Name: "cheese", CaloriesPerServing: 402},
	{Name: "cottage cheese", CaloriesPerServing: 98},
	// Other
	{Name: "protein shake", CaloriesPerServing: 120},
	{Name: "protein bar", CaloriesPerServing: 200},
	{Name: "almonds", CaloriesPerServing: 579},
	{Name: "peanut butter", CaloriesPerServing: 588},
	{Name: "honey", CaloriesPerServing: 304},
	{Name: "olive oil", CaloriesPerServing: 884},
}

// BuiltinFoods returns a copy of the built-in catalog in display order.
func BuiltinFoods() []domain.FoodCatalogEntry {
	return append([]domain.FoodCatalogEntry(nil), builtinFoods...)
}

// CatalogItem is one row of the merged catalog shown to the user.
type CatalogItem struct {
	domain.FoodCatalogEntry
	Custom bool
}

// Lookup finds a food by case-insensitive name. Custom foods shadow
// built-ins of the same name. A miss wraps domain.ErrNotFound so callers can
// fall back to asking for calories.
func Lookup(custom []domain.FoodCatalogEntry, name string) (CatalogItem, error) {
	key := domain.NormalizeFoodName(name)
	if key == "" {
		return CatalogItem{}, fmt.Errorf("food name is required: %w", domain.ErrInvalidInput)
	}
	for _, f := range custom {
		if domain.NormalizeFoodName(f.Name) == key {
			return CatalogItem{FoodCatalogEntry: f, Custom: true}, nil
		}
	}
	for _, f := range builtinFoods {
		if f.Name == key {
			return CatalogItem{FoodCatalogEntry: f}, nil
		}
	}
	return CatalogItem{}, fmt.Errorf("food %q: %w", name, domain.ErrNotFound)
}

// Catalog merges built-in and custom foods. Built-ins come first in their
// display order, then custom foods sorted by name. A custom food that shares
// a built-in's name replaces it in place.
func Catalog(custom []domain.FoodCatalogEntry) []CatalogItem {
	overrides := make(map[string]domain.FoodCatalogEntry, len(custom))
	for _, f := range custom {
		overrides[domain.NormalizeFoodName(f.Name)] = f
	}

	out := make([]CatalogItem, 0, len(builtinFoods)+len(custom))
	for _, f := range builtinFoods {
		if c, ok := overrides[f.Name]; ok {
			out = append(out, CatalogItem{FoodCatalogEntry: c, Custom: true})
			delete(overrides, f.Name)
			continue
		}
		out = append(out, CatalogItem{FoodCatalogEntry: f})
	}

	var extra []CatalogItem
	for _, f := range custom {
		if _, ok := overrides[domain.NormalizeFoodName(f.Name)]; ok {
			extra = append(extra, CatalogItem{FoodCatalogEntry: f, Custom: true})
		}
	}
	sort.SliceStable(extra, func(i, j int) bool {
		return domain.NormalizeFoodName(extra[i].Name) < domain.NormalizeFoodName(extra[j].Name)
	})
	return append(out, extra...)
}

// UpsertCustomFood adds food to custom, replacing an entry with the same
// normalized name. The input slice is not modified.
func UpsertCustomFood(custom []domain.FoodCatalogEntry, food domain.FoodCatalogEntry) ([]domain.FoodCatalogEntry, bool) {
	out := append([]domain.FoodCatalogEntry{}, custom...)
	key := domain.NormalizeFoodName(food.Name)
	for i := range out {
		if domain.NormalizeFoodName(out[i].Name) == key {
			out[i] = food
			return out, true
		}
	}
	return append(out, food), false
}
