package progress

import (
	"sort"
	"time"

	"github.com/alexanderramin/liftlog/internal/domain"
)

// DayStats aggregates one exercise's sets on a single calendar day.
type DayStats struct {
	Day       time.Time
	MaxWeight float64
	AvgWeight float64
	Volume    float64
	Sets      int
	Reps      int
}

// ExerciseHistory is an exercise's per-day progression, oldest first.
type ExerciseHistory struct {
	Exercise string
	Days     []DayStats
}

// Delta is the change in max weight from the first day to the last.
func (h ExerciseHistory) Delta() (float64, bool) {
	if len(h.Days) < 2 {
		return 0, false
	}
	return h.Days[len(h.Days)-1].MaxWeight - h.Days[0].MaxWeight, true
}

// Last returns at most n of the most recent days.
func (h ExerciseHistory) Last(n int) ExerciseHistory {
	if n <= 0 || len(h.Days) <= n {
		return h
	}
	return ExerciseHistory{Exercise: h.Exercise, Days: h.Days[len(h.Days)-n:]}
}

// MaxWeights returns the per-day max weights, oldest first.
func (h ExerciseHistory) MaxWeights() []float64 {
	out := make([]float64, len(h.Days))
	for i, d := range h.Days {
		out[i] = d.MaxWeight
	}
	return out
}

// BuildExerciseHistory groups every set of exercise by calendar day in loc.
func BuildExerciseHistory(workouts []domain.WorkoutEntry, exercise string, loc *time.Location) ExerciseHistory {
	h := ExerciseHistory{Exercise: exercise}
	byDay := map[time.Time]*DayStats{}
	weightSum := map[time.Time]float64{}
	named := false

	for i := range workouts {
		w := &workouts[i]
		if !domain.SameExercise(w.Exercise, exercise) {
			continue
		}
		if !named {
			h.Exercise, named = w.Exercise, true
		}
		day := dayOf(w.Date, loc)
		ds, ok := byDay[day]
		if !ok {
			ds = &DayStats{Day: day}
			byDay[day] = ds
		}
		for _, s := range w.Sets {
			ds.Sets++
			ds.Reps += s.Reps
			ds.Volume += float64(s.Reps) * s.Weight
			weightSum[day] += s.Weight
			if s.Weight > ds.MaxWeight {
				ds.MaxWeight = s.Weight
			}
		}
	}

	for day, ds := range byDay {
		if ds.Sets > 0 {
			ds.AvgWeight = weightSum[day] / float64(ds.Sets)
		}
		h.Days = append(h.Days, *ds)
	}
	sort.Slice(h.Days, func(i, j int) bool { return h.Days[i].Day.Before(h.Days[j].Day) })
	return h
}
