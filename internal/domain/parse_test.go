package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCount(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"3", 3, false},
		{" 12 ", 12, false},
		{"three", 3, false},
		{"Twenty", 20, false},
		{"zero", 0, false},
		{"-1", 0, true},
		{"lots", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseCount(tc.in)
		if tc.wantErr {
			require.Error(t, err, "input=%q", tc.in)
			assert.ErrorIs(t, err, ErrInvalidInput)
			continue
		}
		require.NoError(t, err, "input=%q", tc.in)
		assert.Equal(t, tc.want, got, "input=%q", tc.in)
	}
}

func TestParseWeight(t *testing.T) {
	cases := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"", 0, false},
		{"60", 60, false},
		{"62.5kg", 62.5, false},
		{"100 KG", 100, false},
		{"135lb", 61.23, false},
		{"100lbs", 45.36, false},
		{"heavy", 0, true},
		{"-5kg", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseWeight(tc.in)
		if tc.wantErr {
			require.Error(t, err, "input=%q", tc.in)
			assert.ErrorIs(t, err, ErrInvalidInput)
			continue
		}
		require.NoError(t, err, "input=%q", tc.in)
		assert.InDelta(t, tc.want, got, 0.001, "input=%q", tc.in)
	}
}

func TestParseSets_Forms(t *testing.T) {
	sets, err := ParseSets("10")
	require.NoError(t, err)
	assert.Equal(t, []Set{{Reps: 10}}, sets)

	sets, err = ParseSets("5x100kg")
	require.NoError(t, err)
	assert.Equal(t, []Set{{Reps: 5, Weight: 100}}, sets)

	sets, err = ParseSets("3x10x60")
	require.NoError(t, err)
	assert.Equal(t, []Set{{10, 60}, {10, 60}, {10, 60}}, sets)

	sets, err = ParseSets("two x eight x 40kg")
	require.NoError(t, err)
	assert.Equal(t, []Set{{8, 40}, {8, 40}}, sets)

	sets, err = ParseSets("six")
	require.NoError(t, err)
	assert.Equal(t, []Set{{Reps: 6}}, sets)

	sets, err = ParseSets("six x 20kg")
	require.NoError(t, err)
	assert.Equal(t, []Set{{6, 20}}, sets)
}

func TestParseSets_Rejects(t *testing.T) {
	for _, spec := range []string{"", "0", "0x5", "3x0x50", "1x2x3x4", "5xheavy", "99999999999x5x60", "51x5x60", "1001", "3x1001x60"} {
		_, err := ParseSets(spec)
		require.Error(t, err, "spec=%q", spec)
		assert.ErrorIs(t, err, ErrInvalidInput, "spec=%q", spec)
	}
}

func TestParseSets_Bounds(t *testing.T) {
	sets, err := ParseSets("50x5x60")
	require.NoError(t, err)
	assert.Len(t, sets, MaxSetsPerSpec)

	sets, err = ParseSets("1000")
	require.NoError(t, err)
	assert.Equal(t, []Set{{Reps: MaxReps}}, sets)
}

func TestParseCalories(t *testing.T) {
	n, err := ParseCalories(" 180 ")
	require.NoError(t, err)
	assert.Equal(t, 180, n)

	_, err = ParseCalories("lots")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ParseCalories("-10")
	assert.ErrorIs(t, err, ErrInvalidInput)

	n, err = ParseCalories("10000")
	require.NoError(t, err)
	assert.Equal(t, MaxCalories, n)

	_, err = ParseCalories("10001")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ParseCalories("9223372036854775807")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFormatWeight(t *testing.T) {
	assert.Equal(t, "60kg", FormatWeight(60))
	assert.Equal(t, "62.5kg", FormatWeight(62.5))
	assert.Equal(t, "61.23kg", FormatWeight(61.23492))
}
