package progress

import (
	"time"

	"github.com/alexanderramin/liftlog/internal/domain"
)

// Streak counts consecutive calendar days with at least one workout, ending
// today. A streak that reached yesterday is still alive until today ends.
func Streak(workouts []domain.WorkoutEntry, now time.Time) int {
	loc := now.Location()
	days := make(map[time.Time]bool, len(workouts))
	for i := range workouts {
		days[dayOf(workouts[i].Date, loc)] = true
	}

	cursor := dayOf(now, loc)
	if !days[cursor] {
		cursor = addDays(cursor, -1)
		if !days[cursor] {
			return 0
		}
	}
	n := 0
	for days[cursor] {
		n++
		cursor = addDays(cursor, -1)
	}
	return n
}
