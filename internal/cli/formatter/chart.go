package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/alexanderramin/liftlog/internal/progress"
)

const (
	// ChartDays is how many of the most recent sessions the chart shows.
	ChartDays = 10
	ChartRows = 8

	chartCol = 6
)

// RenderChart draws one vertical bar per value, scaled so the largest value
// fills rows. Zero values get no bar; any positive value gets at least one
// row. The tallest bars are highlighted.
func RenderChart(values []float64, labels []string, rows int) string {
	if len(values) == 0 {
		return ""
	}
	if rows < 2 {
		rows = 2
	}
	top := 0.0
	for _, v := range values {
		top = math.Max(top, v)
	}
	levels := make([]int, len(values))
	for i, v := range values {
		if top > 0 && v > 0 {
			levels[i] = int(math.Ceil(v / top * float64(rows)))
		}
	}

	topLabel := domain.FormatWeight(top)
	axisW := len(topLabel)
	var b strings.Builder
	for r := rows; r >= 1; r-- {
		label := ""
		if r == rows {
			label = topLabel
		}
		fmt.Fprintf(&b, "%*s %s", axisW, label, StyleDim.Render("│"))
		for i := range values {
			if levels[i] < r {
				b.WriteString(strings.Repeat(" ", chartCol))
				continue
			}
			style := StyleBlue
			if values[i] == top {
				style = StyleYellow
			}
			b.WriteString(" " + style.Render(strings.Repeat(filledBlock, chartCol-2)) + " ")
		}
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat(" ", axisW) + " " + StyleDim.Render("└"+strings.Repeat("─", chartCol*len(values))) + "\n")
	b.WriteString(strings.Repeat(" ", axisW+2))
	for i := range values {
		l := ""
		if i < len(labels) {
			l = labels[i]
		}
		if len(l) > chartCol-1 {
			l = l[:chartCol-1]
		}
		fmt.Fprintf(&b, " %-*s", chartCol-1, l)
	}
	return strings.TrimRight(b.String(), " ") + "\n"
}

// FormatExerciseHistory renders the max-weight chart for the last
// ChartDays sessions, a per-day table and the overall change.
func FormatExerciseHistory(h progress.ExerciseHistory) string {
	var b strings.Builder
	b.WriteString(Header("Progress: "+h.Exercise) + "\n\n")
	if len(h.Days) == 0 {
		b.WriteString(Dim("No sessions logged for this exercise.") + "\n")
		return b.String()
	}

	recent := h.Last(ChartDays)
	labels := make([]string, len(recent.Days))
	for i, d := range recent.Days {
		labels[i] = d.Day.Format("1/2")
	}
	if top := recent.MaxWeights(); anyPositive(top) {
		b.WriteString(RenderChart(top, labels, ChartRows) + "\n")
	}

	rows := make([][]string, 0, len(recent.Days))
	for _, d := range recent.Days {
		rows = append(rows, []string{
			d.Day.Format("Mon Jan 2"),
			weightOrBW(d.MaxWeight),
			weightOrBW(d.AvgWeight),
			fmt.Sprintf("%d", d.Sets),
			fmt.Sprintf("%d", d.Reps),
			weightOrBW(d.Volume),
		})
	}
	b.WriteString(RenderTable([]string{"DAY", "MAX", "AVG", "SETS", "REPS", "VOLUME"}, rows, 1, 2, 3, 4, 5))

	b.WriteString("\n" + FormatDelta(h) + "\n")
	return b.String()
}

// FormatDelta describes the change in max weight across the whole history.
func FormatDelta(h progress.ExerciseHistory) string {
	delta, ok := h.Delta()
	if !ok {
		return Dim("Log another session to see a trend.")
	}
	since := Dim(fmt.Sprintf(" since %s (%s)", h.Days[0].Day.Format("Jan 2"), Plural(len(h.Days), "session")))
	switch {
	case delta > 0:
		return StyleGreen.Render("▲ +"+domain.FormatWeight(delta)) + since
	case delta < 0:
		return StyleRed.Render("▼ -"+domain.FormatWeight(-delta)) + since
	default:
		return StyleFg.Render("● no change") + since
	}
}

func anyPositive(vals []float64) bool {
	for _, v := range vals {
		if v > 0 {
			return true
		}
	}
	return false
}

func weightOrBW(kg float64) string {
	if kg <= 0 {
		return "BW"
	}
	return domain.FormatWeight(kg)
}
