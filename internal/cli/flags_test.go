package cli

import (
	"testing"
	"time"

	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/alexanderramin/liftlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetsFlag_Repeats(t *testing.T) {
	var f setsFlag
	require.NoError(t, f.Set("2x10x60kg"))
	require.NoError(t, f.Set("8x135lb"))
	require.Len(t, f.sets, 3)
	assert.Equal(t, domain.Set{Reps: 10, Weight: 60}, f.sets[0])
	assert.InDelta(t, 61.23, f.sets[2].Weight, 0.01)
	assert.Equal(t, "sets", f.Type())

	assert.ErrorIs(t, f.Set("heavy"), domain.ErrInvalidInput)
}

func TestSetsFlag_RejectsOversizedSpecs(t *testing.T) {
	var f setsFlag
	assert.ErrorIs(t, f.Set("99999999999x5x60"), domain.ErrInvalidInput)
	assert.ErrorIs(t, f.Set("100000x5x60"), domain.ErrInvalidInput)
	assert.ErrorIs(t, f.Set("3x5000x60kg"), domain.ErrInvalidInput)
	assert.Empty(t, f.sets)

	assert.Error(t, validateSets("99999999999x5x60"))
}

func TestBodyPartsFlag(t *testing.T) {
	var f bodyPartsFlag
	require.NoError(t, f.Set("Chest+arms"))
	require.NoError(t, f.Set("chest,legs"))
	assert.Equal(t, []domain.BodyPart{domain.BodyChest, domain.BodyArms, domain.BodyLegs}, f.parts)
	assert.Equal(t, "chest,arms,legs", f.String())

	assert.ErrorIs(t, f.Set("neck"), domain.ErrInvalidInput)
	assert.ErrorIs(t, f.Set(","), domain.ErrInvalidInput)
}

func TestDayFlag(t *testing.T) {
	now := func() time.Time { return testutil.FixedNow }
	f := newDayFlag(now)
	assert.Equal(t, testutil.FixedNow, f.Value())
	assert.Equal(t, "today", f.String())

	require.NoError(t, f.Set("yesterday"))
	assert.Equal(t, 14, f.Value().Day())

	require.NoError(t, f.Set("2025-06-01"))
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), f.Value())
	assert.Equal(t, "2025-06-01", f.String())

	assert.ErrorIs(t, f.Set("last tuesday"), domain.ErrInvalidInput)
}

func TestGuessBodyPart(t *testing.T) {
	bp, ok := guessBodyPart("bench press")
	assert.True(t, ok)
	assert.Equal(t, domain.BodyChest, bp)

	_, ok = guessBodyPart("Turkish Get-up")
	assert.False(t, ok)
}

func TestParseServings(t *testing.T) {
	cases := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"1", 1, false},
		{"1.5", 1.5, false},
		{"150g", 1.5, false},
		{" 50 G ", 0.5, false},
		{"0", 0, true},
		{"-2", 0, true},
		{"0g", 0, true},
		{"lots", 0, true},
		{"xg", 0, true},
		{"NaN", 0, true},
		{"100", 100, false},
		{"10000g", 100, false},
		{"101", 0, true},
		{"20000g", 0, true},
		{"1e17", 0, true},
		{"1e17g", 0, true},
		{"Inf", 0, true},
	}
	for _, tc := range cases {
		got, err := parseServings(tc.in)
		if tc.wantErr {
			assert.ErrorIs(t, err, domain.ErrInvalidInput, "input=%q", tc.in)
			continue
		}
		require.NoError(t, err, "input=%q", tc.in)
		assert.InDelta(t, tc.want, got, 1e-9, "input=%q", tc.in)
	}
}
