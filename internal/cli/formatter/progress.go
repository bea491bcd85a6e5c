package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/liftlog/internal/nutrition"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

func bar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}

// RenderProgress renders a progress bar like [████░░░░] 45%.
// Green below 90%, yellow up to the goal.
func RenderProgress(pct float64, width int) string {
	style := StyleGreen
	if pct >= 0.9 {
		style = StyleYellow
	}
	shown := pct
	if shown > 1 {
		shown = 1
	}
	if shown < 0 {
		shown = 0
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar(pct, width)), shown*100)
}

// RenderCalorieBar shows intake against the goal. The percentage is capped
// at 100; going over turns the bar red and appends an OVER marker.
func RenderCalorieBar(p nutrition.Progress, width int) string {
	if !p.OverGoal {
		return RenderProgress(p.Ratio, width)
	}
	return fmt.Sprintf("[%s] %3.0f%% %s",
		StyleRed.Render(bar(1, width)), p.Percent, StyleRed.Bold(true).Render("▲ OVER"))
}
