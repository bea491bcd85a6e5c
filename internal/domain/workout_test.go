package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func validEntry() WorkoutEntry {
	return WorkoutEntry{
		ID:        "w1",
		Date:      testNow,
		BodyParts: []BodyPart{BodyChest},
		Exercise:  "Bench Press",
		Sets:      []Set{{Reps: 10, Weight: 60}},
	}
}

func TestWorkoutEntry_Validate_OK(t *testing.T) {
	e := validEntry()
	assert.NoError(t, e.Validate())
}

func TestWorkoutEntry_Validate_ReportsEveryProblem(t *testing.T) {
	e := WorkoutEntry{
		Exercise:  "  ",
		BodyParts: []BodyPart{"wings", BodyLegs, BodyLegs},
		Sets:      []Set{{Reps: 0, Weight: 20}, {Reps: 5, Weight: -1}},
	}
	err := e.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)

	errs := multierr.Errors(err)
	assert.Len(t, errs, 5)
	assert.Contains(t, err.Error(), "exercise name is required")
	assert.Contains(t, err.Error(), `unknown body part "wings"`)
	assert.Contains(t, err.Error(), "listed twice")
	assert.Contains(t, err.Error(), "set 1: reps must be between 1 and 1000")
	assert.Contains(t, err.Error(), "set 2: weight cannot be negative")
}

func TestWorkoutEntry_Validate_NoSetsNoBodyParts(t *testing.T) {
	e := WorkoutEntry{Exercise: "Squat"}
	err := e.Validate()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
}

func TestWorkoutEntry_TopWeightAndVolume(t *testing.T) {
	e := validEntry()
	e.Sets = []Set{{10, 60}, {8, 70}, {6, 65}}
	assert.Equal(t, 70.0, e.TopWeight())
	assert.Equal(t, 600.0+560.0+390.0, e.Volume())
}

func TestWorkoutEntry_SetsLabel(t *testing.T) {
	e := validEntry()
	e.Sets = []Set{{10, 60}, {10, 60}, {8, 65}}
	assert.Equal(t, "2x10 @ 60kg, 1x8 @ 65kg", e.SetsLabel())

	e.Sets = []Set{{15, 0}, {15, 0}, {15, 0}}
	assert.Equal(t, "3x15", e.SetsLabel())
}

func TestWorkoutEdit_ApplyDoesNotAlias(t *testing.T) {
	orig := validEntry()
	name := "Incline Press"
	edit := WorkoutEdit{Exercise: &name, Sets: []Set{{8, 50}}}

	got := edit.Apply(orig)
	assert.Equal(t, "Incline Press", got.Exercise)
	assert.Equal(t, []Set{{8, 50}}, got.Sets)
	assert.Equal(t, "Bench Press", orig.Exercise)
	assert.Equal(t, []Set{{10, 60}}, orig.Sets)

	got.BodyParts[0] = BodyBack
	assert.Equal(t, BodyChest, orig.BodyParts[0])
}

func TestWorkoutEdit_IsEmpty(t *testing.T) {
	assert.True(t, WorkoutEdit{}.IsEmpty())
	notes := ""
	assert.False(t, WorkoutEdit{Notes: &notes}.IsEmpty())
}

func TestSameExercise(t *testing.T) {
	assert.True(t, SameExercise("bench press", " Bench Press "))
	assert.False(t, SameExercise("Bench Press", "Incline Press"))
}

func TestParseBodyPart(t *testing.T) {
	bp, err := ParseBodyPart(" Legs ")
	require.NoError(t, err)
	assert.Equal(t, BodyLegs, bp)
	assert.Equal(t, "Legs", bp.Title())

	_, err = ParseBodyPart("wings")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestComboCandidatesAndSuggestions(t *testing.T) {
	combos := ComboCandidates(BodyChest)
	assert.Len(t, combos, len(BodyParts)-1)
	assert.NotContains(t, combos, BodyChest)

	sugg := SuggestionsFor([]BodyPart{BodyChest, BodyArms})
	require.Len(t, sugg, 10)
	assert.Equal(t, TemplateExercise{Exercise: "Bench Press", BodyPart: BodyChest}, sugg[0])
	assert.Equal(t, TemplateExercise{Exercise: "Bicep Curl", BodyPart: BodyArms}, sugg[5])
	assert.Equal(t, "Chest + Arms", FocusLabel([]BodyPart{BodyChest, BodyArms}))
}

func TestTemplateFromEntries(t *testing.T) {
	entries := []WorkoutEntry{
		{Exercise: "Bench Press", BodyParts: []BodyPart{BodyChest, BodyArms}},
		{Exercise: "bench press", BodyParts: []BodyPart{BodyChest}},
		{Exercise: "Bicep Curl", BodyParts: []BodyPart{BodyArms}},
	}
	tmpl := TemplateFromEntries(" Push Day ", entries, testNow)
	assert.Equal(t, "Push Day", tmpl.Name)
	assert.Equal(t, []BodyPart{BodyChest, BodyArms}, tmpl.BodyParts)
	assert.Equal(t, []TemplateExercise{
		{Exercise: "Bench Press", BodyPart: BodyChest},
		{Exercise: "Bicep Curl", BodyPart: BodyArms},
	}, tmpl.Exercises)
	assert.NoError(t, tmpl.Validate())
}
