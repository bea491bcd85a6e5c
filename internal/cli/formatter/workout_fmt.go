package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/alexanderramin/liftlog/internal/progress"
)

// FormatWorkoutList renders entries as a table in the given order.
func FormatWorkoutList(entries []domain.WorkoutEntry, now time.Time) string {
	if len(entries) == 0 {
		return Dim("No workouts logged yet. Try: liftlog workout log \"Bench Press\" --part chest --set 3x10x60kg") + "\n"
	}
	rows := make([][]string, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		rows = append(rows, []string{
			ShortID(e.ID),
			DayLabel(e.Date, now),
			Bold(e.Exercise),
			BodyPartBadges(e.BodyParts),
			e.SetsLabel(),
			weightOrBW(e.TopWeight()),
		})
	}
	return RenderTable([]string{"ID", "DAY", "EXERCISE", "BODY", "SETS", "TOP"}, rows, 5)
}

// FormatWorkout renders one entry in full.
func FormatWorkout(e domain.WorkoutEntry, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", Dim("ID"), e.ID)
	fmt.Fprintf(&b, "%s  %s %s\n", Dim("When"), DayLabel(e.Date, now), Dim(e.Date.In(now.Location()).Format("15:04")))
	fmt.Fprintf(&b, "%s  %s\n\n", Dim("Body"), BodyPartBadges(e.BodyParts))
	for i, s := range e.Sets {
		fmt.Fprintf(&b, "  %s %s\n", Dim(fmt.Sprintf("%d.", i+1)), setLabel(s))
	}
	if v := e.Volume(); v > 0 {
		fmt.Fprintf(&b, "\n%s %s\n", Dim("Volume"), domain.FormatWeight(v))
	}
	if e.Notes != "" {
		fmt.Fprintf(&b, "%s %s\n", Dim("Notes"), e.Notes)
	}
	return RenderBox(e.Exercise, strings.TrimRight(b.String(), "\n"))
}

func setLabel(s domain.Set) string {
	if s.Weight <= 0 {
		return fmt.Sprintf("%s reps %s", Bold(fmt.Sprintf("%d", s.Reps)), Dim("bodyweight"))
	}
	return fmt.Sprintf("%s reps @ %s", Bold(fmt.Sprintf("%d", s.Reps)), Bold(domain.FormatWeight(s.Weight)))
}

// FormatLoggedWorkout confirms a logged entry and celebrates any record.
func FormatLoggedWorkout(e domain.WorkoutEntry, prs []progress.PRResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s %s\n", StyleGreen.Render("✔ Logged"), Bold(e.Exercise), e.SetsLabel(), ShortID(e.ID))
	if msg := FormatPRCelebration(prs); msg != "" {
		b.WriteString(msg + "\n")
	}
	return b.String()
}

// FormatPRCelebration announces the best record among prs, or returns ""
// when none of the sets set one.
func FormatPRCelebration(prs []progress.PRResult) string {
	best, ok := progress.BestPR(prs)
	if !ok {
		return ""
	}
	var line string
	if best.First {
		line = fmt.Sprintf("%s First record: %s for %s",
			PRBadge(), Bold(domain.FormatWeight(best.Set.Weight)), Plural(best.Set.Reps, "rep"))
	} else {
		line = fmt.Sprintf("%s NEW PERSONAL RECORD! %s for %s %s",
			PRBadge(), Bold(domain.FormatWeight(best.Set.Weight)), Plural(best.Set.Reps, "rep"),
			StyleGreen.Render(fmt.Sprintf("(+%s over %s)", domain.FormatWeight(best.Improvement()), domain.FormatWeight(best.PreviousBest))))
	}
	n := 0
	for _, r := range prs {
		if r.IsPR {
			n++
		}
	}
	if n > 1 {
		line += Dim(fmt.Sprintf(" and %d more record sets", n-1))
	}
	return line
}

// FormatPersonalRecords renders one row per exercise.
func FormatPersonalRecords(records []progress.PersonalRecord, now time.Time) string {
	if len(records) == 0 {
		return Dim("No personal records yet. Log a weighted set to set one.") + "\n"
	}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			Bold(r.Exercise),
			BodyPartColor(r.BodyPart).Render(r.BodyPart.Title()),
			StyleYellow.Render(domain.FormatWeight(r.Weight)),
			fmt.Sprintf("%d", r.Reps),
			domain.FormatWeight(roundTenth(r.Estimated1RM())),
			DayLabel(r.Date, now),
		})
	}
	return Header("Personal records") + "\n" +
		RenderTable([]string{"EXERCISE", "BODY", "BEST", "REPS", "EST 1RM", "SET ON"}, rows, 2, 3, 4)
}

func roundTenth(f float64) float64 {
	return float64(int(f*10+0.5)) / 10
}
