package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/liftlog/internal/domain"
)

var t0 = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func at(secs int) time.Time { return t0.Add(time.Duration(secs) * time.Second) }

func TestTimer_PauseResumeFinishesAtExactRunningTime(t *testing.T) {
	tm, err := New(90 * time.Second)
	require.NoError(t, err)
	require.Equal(t, Idle, tm.State())

	require.NoError(t, tm.Start(at(0)))
	require.NoError(t, tm.Pause(at(60)))
	assert.Equal(t, Paused, tm.State())

	// A long pause does not count.
	assert.Equal(t, 60*time.Second, tm.Elapsed(at(500)))
	assert.Equal(t, Paused, tm.Tick(at(500)))

	require.NoError(t, tm.Resume(at(500)))
	assert.Equal(t, Running, tm.Tick(at(529)))
	assert.Equal(t, time.Second, tm.Remaining(at(529)))

	assert.Equal(t, Finished, tm.Tick(at(530)))
	assert.Equal(t, 90*time.Second, tm.Elapsed(at(530)))
	assert.Equal(t, 90*time.Second, tm.Elapsed(at(900)), "capped at duration")
	assert.Equal(t, 1.0, tm.Fraction(at(900)))
}

func TestTimer_InvalidTransitions(t *testing.T) {
	tm, err := New(DefaultDuration)
	require.NoError(t, err)

	assert.ErrorIs(t, tm.Pause(at(0)), ErrInvalidTransition)
	assert.ErrorIs(t, tm.Resume(at(0)), ErrInvalidTransition)
	assert.ErrorIs(t, tm.Cancel(), ErrInvalidTransition)

	require.NoError(t, tm.Start(at(0)))
	assert.ErrorIs(t, tm.Start(at(1)), ErrInvalidTransition)
	assert.ErrorIs(t, tm.Resume(at(1)), ErrInvalidTransition)
}

func TestTimer_CancelAndRestart(t *testing.T) {
	tm, err := New(60 * time.Second)
	require.NoError(t, err)

	require.NoError(t, tm.Start(at(0)))
	require.NoError(t, tm.Pause(at(10)))
	require.NoError(t, tm.Cancel())
	assert.Equal(t, Idle, tm.State())
	assert.Zero(t, tm.Elapsed(at(20)))

	require.NoError(t, tm.Start(at(20)))
	assert.Equal(t, Finished, tm.Tick(at(80)))
	require.NoError(t, tm.Start(at(81)), "finished timers can start again")
	assert.Equal(t, Running, tm.State())
	assert.Zero(t, tm.Elapsed(at(81)))
}

func TestTimer_PauseAfterExpiryFinishes(t *testing.T) {
	tm, err := New(60 * time.Second)
	require.NoError(t, err)
	require.NoError(t, tm.Start(at(0)))
	require.NoError(t, tm.Pause(at(75)))
	assert.Equal(t, Finished, tm.State())
}

func TestTimer_Toggle(t *testing.T) {
	tm, err := New(60 * time.Second)
	require.NoError(t, err)
	require.NoError(t, tm.Start(at(0)))
	require.NoError(t, tm.Toggle(at(5)))
	assert.Equal(t, Paused, tm.State())
	require.NoError(t, tm.Toggle(at(9)))
	assert.Equal(t, Running, tm.State())
	assert.Equal(t, 6*time.Second, tm.Elapsed(at(10)))
}

func TestNew_RejectsNonPositive(t *testing.T) {
	_, err := New(0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = New(MaxDuration + time.Second)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseDuration(t *testing.T) {
	cases := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"", DefaultDuration, false},
		{"120", 120 * time.Second, false},
		{"2m", 2 * time.Minute, false},
		{"1m30s", 90 * time.Second, false},
		{"0", 0, true},
		{"-5s", 0, true},
		{"soon", 0, true},
		{"200ms", 0, true},
		{"1500ms", 2 * time.Second, false},
		{"3600", MaxDuration, false},
		{"1h", MaxDuration, false},
		{"3601", 0, true},
		{"1000h", 0, true},
		{"99999999999", 0, true},
		{"9223372036854775807", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseDuration(tc.in)
		if tc.wantErr {
			assert.ErrorIs(t, err, domain.ErrInvalidInput, "input=%q", tc.in)
			continue
		}
		require.NoError(t, err, "input=%q", tc.in)
		assert.Equal(t, tc.want, got, "input=%q", tc.in)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "1:30", FormatClock(90*time.Second))
	assert.Equal(t, "0:01", FormatClock(200*time.Millisecond))
	assert.Equal(t, "0:00", FormatClock(0))
	assert.Equal(t, "3:00", FormatClock(3*time.Minute))
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "paused", Paused.String())
	assert.Equal(t, "state(9)", State(9).String())
}
