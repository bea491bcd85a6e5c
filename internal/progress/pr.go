package progress

import (
	"github.com/alexanderramin/liftlog/internal/domain"
)

// PRResult is the outcome of checking one set against an exercise's history.
type PRResult struct {
	SetIndex int
	Set      domain.Set
	IsPR     bool
	// First is set when no earlier weighted set at this rep count or higher
	// exists, so there is nothing to compare against.
	First bool
	// PreviousBest is the heaviest earlier weight lifted for at least as
	// many reps. Zero when First is set.
	PreviousBest float64
}

// Improvement is how much the set beat the previous best by.
func (r PRResult) Improvement() float64 {
	if !r.IsPR || r.First {
		return 0
	}
	return r.Set.Weight - r.PreviousBest
}

// PreviousBest returns the maximum weight among weighted sets of exercise
// performed for reps or more repetitions. ok is false when there are none.
func PreviousBest(history []domain.WorkoutEntry, exercise string, reps int) (best float64, ok bool) {
	for i := range history {
		w := &history[i]
		if !domain.SameExercise(w.Exercise, exercise) {
			continue
		}
		for _, s := range w.Sets {
			if s.Weight <= 0 || s.Reps < reps {
				continue
			}
			if !ok || s.Weight > best {
				best = s.Weight
				ok = true
			}
		}
	}
	return best, ok
}

// DetectPR checks a single set against history. A set is a record when its
// weight strictly exceeds every earlier weight lifted for at least as many
// reps. Bodyweight sets never count.
func DetectPR(history []domain.WorkoutEntry, exercise string, set domain.Set) PRResult {
	res := PRResult{Set: set}
	if set.Weight <= 0 || set.Reps <= 0 {
		return res
	}
	best, ok := PreviousBest(history, exercise, set.Reps)
	if !ok {
		res.IsPR = true
		res.First = true
		return res
	}
	res.PreviousBest = best
	res.IsPR = set.Weight > best
	return res
}

// DetectEntryPRs checks every set of entry in order. Each set is compared
// against history plus the entry's earlier sets, so repeating a new best in
// the same session is reported once.
func DetectEntryPRs(history []domain.WorkoutEntry, entry domain.WorkoutEntry) []PRResult {
	results := make([]PRResult, 0, len(entry.Sets))
	seen := append([]domain.WorkoutEntry(nil), history...)
	running := domain.WorkoutEntry{Exercise: entry.Exercise}
	seen = append(seen, running)
	last := len(seen) - 1

	for i, s := range entry.Sets {
		res := DetectPR(seen, entry.Exercise, s)
		res.SetIndex = i
		results = append(results, res)
		seen[last].Sets = append(seen[last].Sets, s)
	}
	return results
}

// AnyPR reports whether at least one result is a record.
func AnyPR(results []PRResult) bool {
	for _, r := range results {
		if r.IsPR {
			return true
		}
	}
	return false
}

// BestPR picks the record to celebrate: the heaviest new record, preferring
// records that beat an existing best over first-time lifts.
func BestPR(results []PRResult) (PRResult, bool) {
	var best PRResult
	found := false
	for _, r := range results {
		if !r.IsPR {
			continue
		}
		switch {
		case !found:
			best, found = r, true
		case best.First && !r.First:
			best = r
		case best.First == r.First && r.Set.Weight > best.Set.Weight:
			best = r
		}
	}
	return best, found
}
