package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/liftlog/internal/progress"
)

// FormatWeeklySummary renders training and nutrition for the summary window.
func FormatWeeklySummary(s progress.WeeklySummary) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render("Training") + "\n")
	if !s.HasWorkouts() {
		b.WriteString(Dim("  No workouts this week.") + "\n")
	} else {
		fmt.Fprintf(&b, "  %s  %s\n", Dim("Days trained"), Bold(fmt.Sprintf("%d / %d", s.WorkoutDays, progress.SummaryDays)))
		fmt.Fprintf(&b, "  %s     %s\n", Dim("Exercises"), Bold(fmt.Sprintf("%d", s.ExercisesLogged)))
		parts := make([]string, 0, len(s.BodyParts))
		for _, bp := range s.BodyParts {
			parts = append(parts, fmt.Sprintf("%s %d", BodyPartColor(bp.BodyPart).Render(bp.BodyPart.Title()), bp.Count))
		}
		fmt.Fprintf(&b, "  %s    %s\n", Dim("Body parts"), strings.Join(parts, Dim(" · ")))
	}
	fmt.Fprintf(&b, "  %s        %s\n", Dim("Streak"), FormatStreak(s.Streak))

	b.WriteString("\n" + StyleHeader.Render("Nutrition") + "\n")
	if !s.HasMeals() {
		b.WriteString(Dim("  No meals this week.") + "\n")
	} else {
		fmt.Fprintf(&b, "  %s         %s\n", Dim("Total"), Bold(Kcal(s.TotalCalories)))
		fmt.Fprintf(&b, "  %s   %s %s\n", Dim("Daily avg"), Bold(Kcal(int(s.AvgDailyCalories+0.5))),
			Dim(fmt.Sprintf("over %s", Plural(s.MealDays, "day"))))
		foods := make([]string, 0, len(s.TopFoods))
		for _, f := range s.TopFoods {
			foods = append(foods, fmt.Sprintf("%s x%d", f.Food, f.Count))
		}
		fmt.Fprintf(&b, "  %s     %s\n", Dim("Top foods"), strings.Join(foods, Dim(", ")))
	}

	title := fmt.Sprintf("Week of %s to %s", s.From.Format("Jan 2"), s.To.Format("Jan 2"))
	return RenderBox(title, strings.TrimRight(b.String(), "\n"))
}

// FormatStreak renders a streak count, highlighted once it is running.
func FormatStreak(days int) string {
	if days == 0 {
		return Dim("0 days")
	}
	return StyleYellow.Bold(true).Render(Plural(days, "day"))
}
