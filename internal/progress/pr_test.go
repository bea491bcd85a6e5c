package progress

import (
	"strconv"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/liftlog/internal/domain"
)

var testNow = time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)

func entry(exercise string, daysAgo int, sets ...domain.Set) domain.WorkoutEntry {
	return domain.WorkoutEntry{
		ID:        exercise + "-" + strconv.Itoa(daysAgo),
		Date:      testNow.AddDate(0, 0, -daysAgo),
		BodyParts: []domain.BodyPart{domain.BodyChest},
		Exercise:  exercise,
		Sets:      sets,
	}
}

func TestDetectPR_BeatsHeavierLowerRepSetOnlyWhenRepsQualify(t *testing.T) {
	history := []domain.WorkoutEntry{
		entry("Bench Press", 7, domain.Set{Reps: 10, Weight: 60}),
		entry("Bench Press", 3, domain.Set{Reps: 5, Weight: 80}),
	}

	// 80x5 does not count against a 10-rep set.
	res := DetectPR(history, "bench press", domain.Set{Reps: 10, Weight: 65})
	assert.True(t, res.IsPR)
	assert.False(t, res.First)
	assert.Equal(t, 60.0, res.PreviousBest)
	assert.Equal(t, 5.0, res.Improvement())

	// Both prior sets count against a 5-rep set.
	res = DetectPR(history, "Bench Press", domain.Set{Reps: 5, Weight: 75})
	assert.False(t, res.IsPR)
	assert.Equal(t, 80.0, res.PreviousBest)
}

func TestDetectPR_EqualWeightIsNotARecord(t *testing.T) {
	history := []domain.WorkoutEntry{entry("Squat", 2, domain.Set{Reps: 5, Weight: 100})}
	res := DetectPR(history, "Squat", domain.Set{Reps: 5, Weight: 100})
	assert.False(t, res.IsPR)
}

func TestDetectPR_FirstRecordAndBodyweight(t *testing.T) {
	res := DetectPR(nil, "Deadlift", domain.Set{Reps: 5, Weight: 120})
	assert.True(t, res.IsPR)
	assert.True(t, res.First)
	assert.Zero(t, res.Improvement())

	res = DetectPR(nil, "Push-ups", domain.Set{Reps: 20})
	assert.False(t, res.IsPR)

	// Bodyweight history leaves nothing to compare against.
	history := []domain.WorkoutEntry{entry("Dips", 1, domain.Set{Reps: 12})}
	res = DetectPR(history, "Dips", domain.Set{Reps: 8, Weight: 10})
	assert.True(t, res.First)
}

func TestDetectPR_IgnoresOtherExercises(t *testing.T) {
	history := []domain.WorkoutEntry{entry("Squat", 1, domain.Set{Reps: 5, Weight: 140})}
	res := DetectPR(history, "Front Squat", domain.Set{Reps: 5, Weight: 80})
	assert.True(t, res.First)
}

func TestDetectEntryPRs_CumulativeWithinEntry(t *testing.T) {
	history := []domain.WorkoutEntry{entry("Bench Press", 7, domain.Set{Reps: 10, Weight: 60})}
	e := entry("Bench Press", 0,
		domain.Set{Reps: 10, Weight: 62.5},
		domain.Set{Reps: 10, Weight: 62.5},
		domain.Set{Reps: 8, Weight: 65},
	)

	results := DetectEntryPRs(history, e)
	require.Len(t, results, 3)
	assert.True(t, results[0].IsPR)
	assert.False(t, results[1].IsPR, "repeat of a best set in the same entry")
	// 62.5x10 qualifies against 8 reps, so 65 beats it.
	assert.True(t, results[2].IsPR)
	assert.Equal(t, 62.5, results[2].PreviousBest)
	assert.Equal(t, 2, results[2].SetIndex)
	assert.True(t, AnyPR(results))

	best, ok := BestPR(results)
	require.True(t, ok)
	assert.Equal(t, 65.0, best.Set.Weight)
}

func TestDetectEntryPRs_DoesNotMutateHistory(t *testing.T) {
	history := make([]domain.WorkoutEntry, 1, 4)
	history[0] = entry("Row", 3, domain.Set{Reps: 8, Weight: 50})
	DetectEntryPRs(history, entry("Row", 0, domain.Set{Reps: 8, Weight: 55}, domain.Set{Reps: 8, Weight: 57.5}))
	assert.Len(t, history, 1)
	assert.Len(t, history[0].Sets, 1)
}

func TestBestPR_PrefersBeatenRecordOverFirstLift(t *testing.T) {
	results := []PRResult{
		{IsPR: true, First: true, Set: domain.Set{Reps: 5, Weight: 100}},
		{IsPR: true, Set: domain.Set{Reps: 10, Weight: 70}, PreviousBest: 65},
		{Set: domain.Set{Reps: 10, Weight: 50}},
	}
	best, ok := BestPR(results)
	require.True(t, ok)
	assert.Equal(t, 70.0, best.Set.Weight)

	_, ok = BestPR(nil)
	assert.False(t, ok)
}

// Any reported record must outweigh every earlier set with at least as many
// reps, and any non-record must be matched or beaten by one.
func TestDetectPR_PropertyAgainstBruteForce(t *testing.T) {
	faker := gofakeit.New(20250615)
	for round := 0; round < 200; round++ {
		var history []domain.WorkoutEntry
		n := faker.IntRange(0, 6)
		for i := 0; i < n; i++ {
			history = append(history, entry("Press", n-i,
				domain.Set{Reps: faker.IntRange(1, 12), Weight: float64(faker.IntRange(0, 20)) * 2.5}))
		}
		set := domain.Set{Reps: faker.IntRange(1, 12), Weight: float64(faker.IntRange(1, 20)) * 2.5}

		res := DetectPR(history, "press", set)

		var qualifying []float64
		for _, h := range history {
			for _, s := range h.Sets {
				if s.Reps >= set.Reps && s.Weight > 0 {
					qualifying = append(qualifying, s.Weight)
				}
			}
		}
		if len(qualifying) == 0 {
			assert.True(t, res.IsPR && res.First, "round %d", round)
			continue
		}
		beatsAll := true
		for _, w := range qualifying {
			if set.Weight <= w {
				beatsAll = false
			}
		}
		assert.Equal(t, beatsAll, res.IsPR, "round %d: set=%v history=%v", round, set, history)
	}
}
