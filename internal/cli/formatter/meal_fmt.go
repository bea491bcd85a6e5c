package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/alexanderramin/liftlog/internal/nutrition"
)

const calorieBarWidth = 24

// Servings formats a serving count without trailing zeros: 1, 1.5, 0.25.
func Servings(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatCalorieLine is the one-line intake summary used after logging.
func FormatCalorieLine(p nutrition.Progress) string {
	line := fmt.Sprintf("%s / %s  %s", Bold(groupThousands(p.Consumed)), Kcal(p.Goal), RenderCalorieBar(p, calorieBarWidth))
	if p.OverGoal {
		return line + "  " + StyleRed.Render(Kcal(p.Over)+" over goal")
	}
	return line + "  " + Dim(Kcal(p.Remaining)+" left")
}

// FormatCalorieProgress renders a day's intake with its meals.
func FormatCalorieProgress(p nutrition.Progress, now time.Time) string {
	var b strings.Builder
	b.WriteString(FormatCalorieLine(p) + "\n")
	if len(p.Meals) == 0 {
		b.WriteString("\n" + Dim("No meals logged.") + "\n")
	} else {
		b.WriteString("\n" + mealTable(p.Meals, now, false))
	}
	return RenderBox("Calories "+DayLabel(p.Day, now), strings.TrimRight(b.String(), "\n"))
}

// FormatMealList renders meals as a table in the given order.
func FormatMealList(meals []domain.MealEntry, now time.Time) string {
	if len(meals) == 0 {
		return Dim("No meals logged.") + "\n"
	}
	return mealTable(meals, now, true)
}

func mealTable(meals []domain.MealEntry, now time.Time, withDay bool) string {
	headers := []string{"ID", "TIME", "FOOD", "SERVINGS", "KCAL"}
	right := []int{3, 4}
	if withDay {
		headers = []string{"ID", "DAY", "TIME", "FOOD", "SERVINGS", "KCAL"}
		right = []int{4, 5}
	}
	rows := make([][]string, 0, len(meals))
	for _, m := range meals {
		food := m.Food
		if m.IsCustom {
			food += " " + StylePurple.Render("(custom)")
		}
		row := []string{ShortID(m.ID)}
		if withDay {
			row = append(row, DayLabel(m.Date, now))
		}
		row = append(row,
			Dim(m.Date.In(now.Location()).Format("15:04")),
			food,
			Servings(m.Servings),
			groupThousands(m.Calories),
		)
		rows = append(rows, row)
	}
	return RenderTable(headers, rows, right...)
}

// FormatLoggedMeal confirms a logged meal and shows where the day stands.
func FormatLoggedMeal(m domain.MealEntry, savedCustom bool, p nutrition.Progress) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s x %s: %s %s\n",
		StyleGreen.Render("✔ Logged"), Servings(m.Servings), Bold(m.Food), Kcal(m.Calories), ShortID(m.ID))
	if savedCustom {
		perServing := 0
		if m.Servings > 0 {
			perServing = int(float64(m.Calories)/m.Servings + 0.5)
		}
		fmt.Fprintf(&b, "%s\n", StylePurple.Render(fmt.Sprintf("Saved %q as a custom food (%s per serving).", m.Food, Kcal(perServing))))
	}
	b.WriteString(FormatCalorieLine(p) + "\n")
	return b.String()
}

// FormatCatalog lists foods with their calories per 100 g serving.
func FormatCatalog(items []nutrition.CatalogItem) string {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		source := Dim("built-in")
		if it.Custom {
			source = StylePurple.Render("custom")
		}
		rows = append(rows, []string{it.Name, groupThousands(it.CaloriesPerServing), source})
	}
	return RenderTable([]string{"FOOD", "KCAL/SERVING", "SOURCE"}, rows, 1)
}

// FormatGoal shows the current goal.
func FormatGoal(goal int) string {
	return fmt.Sprintf("Daily calorie goal: %s\n", Bold(Kcal(goal)))
}
