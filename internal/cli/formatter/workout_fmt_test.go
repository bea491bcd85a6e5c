package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/alexanderramin/liftlog/internal/progress"
	"github.com/stretchr/testify/assert"
)

func TestFormatPRCelebration(t *testing.T) {
	assert.Empty(t, FormatPRCelebration(nil))
	assert.Empty(t, FormatPRCelebration([]progress.PRResult{{Set: domain.Set{Reps: 5, Weight: 90}, PreviousBest: 100}}))

	first := stripANSI(FormatPRCelebration([]progress.PRResult{
		{Set: domain.Set{Reps: 10, Weight: 60}, IsPR: true, First: true},
	}))
	assert.Contains(t, first, "First record: 60kg for 10 reps")

	beat := stripANSI(FormatPRCelebration([]progress.PRResult{
		{Set: domain.Set{Reps: 5, Weight: 102.5}, IsPR: true, PreviousBest: 100},
		{Set: domain.Set{Reps: 3, Weight: 105}, IsPR: true, First: true},
	}))
	assert.Contains(t, beat, "NEW PERSONAL RECORD! 102.5kg for 5 reps (+2.5kg over 100kg)")
	assert.Contains(t, beat, "and 1 more record sets")
}

func TestFormatWorkoutList(t *testing.T) {
	assert.Contains(t, stripANSI(FormatWorkoutList(nil, testNow)), "No workouts logged yet")

	entries := []domain.WorkoutEntry{{
		ID:        "0f8fad5b-d9cb-469f-a165-70867728950e",
		Date:      testNow.Add(-time.Hour),
		BodyParts: []domain.BodyPart{domain.BodyChest, domain.BodyArms},
		Exercise:  "Bench Press",
		Sets:      []domain.Set{{Reps: 10, Weight: 60}, {Reps: 8, Weight: 70}},
	}}
	got := stripANSI(FormatWorkoutList(entries, testNow))
	assert.Contains(t, got, "0f8fad5b")
	assert.Contains(t, got, "Today")
	assert.Contains(t, got, "Chest + Arms")
	assert.Contains(t, got, "70kg")
}

func TestFormatWorkout_Bodyweight(t *testing.T) {
	e := domain.WorkoutEntry{
		ID: "abc", Date: testNow, Exercise: "Pull-ups",
		BodyParts: []domain.BodyPart{domain.BodyBack},
		Sets:      []domain.Set{{Reps: 8}}, Notes: "strict",
	}
	got := stripANSI(FormatWorkout(e, testNow))
	assert.Contains(t, got, "PULL-UPS")
	assert.Contains(t, got, "8 reps bodyweight")
	assert.Contains(t, got, "Notes strict")
	assert.NotContains(t, got, "Volume")
}

func TestFormatPersonalRecords(t *testing.T) {
	assert.Contains(t, stripANSI(FormatPersonalRecords(nil, testNow)), "No personal records yet")

	got := stripANSI(FormatPersonalRecords([]progress.PersonalRecord{
		{Exercise: "Squat", BodyPart: domain.BodyLegs, Weight: 140, Reps: 5, Date: testNow},
	}, testNow))
	assert.Contains(t, got, "Squat")
	assert.Contains(t, got, "140kg")
	assert.Contains(t, got, "163.3kg", "Epley estimate for 140x5")
}
