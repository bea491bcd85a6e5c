package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/liftlog/internal/domain"
)

// FormatTemplateList renders saved templates in their saved order.
func FormatTemplateList(templates []domain.WorkoutTemplate, now time.Time) string {
	if len(templates) == 0 {
		return Dim("No templates saved. Save today's session with: liftlog template save NAME") + "\n"
	}
	rows := make([][]string, 0, len(templates))
	for _, t := range templates {
		rows = append(rows, []string{
			Bold(t.Name),
			BodyPartBadges(t.BodyParts),
			fmt.Sprintf("%d", len(t.Exercises)),
			DayLabel(t.CreatedAt, now),
		})
	}
	return RenderTable([]string{"NAME", "FOCUS", "EXERCISES", "CREATED"}, rows, 2)
}

// FormatTemplate renders a template's exercises in order.
func FormatTemplate(t domain.WorkoutTemplate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", Dim("Focus"), BodyPartBadges(t.BodyParts))
	for i, ex := range t.Exercises {
		fmt.Fprintf(&b, "  %s %s %s\n", Dim(fmt.Sprintf("%d.", i+1)), ex.Exercise,
			BodyPartColor(ex.BodyPart).Render("("+string(ex.BodyPart)+")"))
	}
	return RenderBox(t.Name, strings.TrimRight(b.String(), "\n"))
}
