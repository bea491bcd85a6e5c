package progress

import (
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/liftlog/internal/domain"
)

// PersonalRecord is the heaviest weighted set logged for an exercise.
type PersonalRecord struct {
	Exercise  string
	BodyPart  domain.BodyPart
	Weight    float64
	Reps      int
	Date      time.Time
	WorkoutID string
}

// Estimated1RM uses the Epley formula. A single rep is its own max.
func (r PersonalRecord) Estimated1RM() float64 {
	if r.Reps <= 1 {
		return r.Weight
	}
	return r.Weight * (1 + float64(r.Reps)/30)
}

// PersonalRecords returns one record per exercise, sorted by exercise name.
// Ties on weight go to the set with more reps, then to the earliest entry.
// Exercises that were only ever done with bodyweight have no record.
func PersonalRecords(workouts []domain.WorkoutEntry) []PersonalRecord {
	best := map[string]*PersonalRecord{}
	var order []string

	for i := range workouts {
		w := &workouts[i]
		key := strings.ToLower(strings.TrimSpace(w.Exercise))
		for _, s := range w.Sets {
			if s.Weight <= 0 {
				continue
			}
			cand := PersonalRecord{
				Exercise:  w.Exercise,
				BodyPart:  w.PrimaryBodyPart(),
				Weight:    s.Weight,
				Reps:      s.Reps,
				Date:      w.Date,
				WorkoutID: w.ID,
			}
			cur, ok := best[key]
			if !ok {
				order = append(order, key)
				best[key] = &cand
				continue
			}
			if beats(cand, *cur) {
				cand.Exercise = cur.Exercise
				*cur = cand
			}
		}
	}

	out := make([]PersonalRecord, 0, len(order))
	for _, k := range order {
		out = append(out, *best[k])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Exercise) < strings.ToLower(out[j].Exercise)
	})
	return out
}

// beats reports whether a should replace b as the record.
func beats(a, b PersonalRecord) bool {
	// 1. Heavier weight
	if a.Weight != b.Weight {
		return a.Weight > b.Weight
	}
	// 2. More reps at the same weight
	if a.Reps != b.Reps {
		return a.Reps > b.Reps
	}
	// 3. Earliest logged keeps the record
	return a.Date.Before(b.Date)
}

// RecordFor returns the record for a single exercise.
func RecordFor(workouts []domain.WorkoutEntry, exercise string) (PersonalRecord, bool) {
	for _, r := range PersonalRecords(workouts) {
		if domain.SameExercise(r.Exercise, exercise) {
			return r, true
		}
	}
	return PersonalRecord{}, false
}
