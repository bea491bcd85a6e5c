// Package timer implements the rest timer as a countdown state machine.
// The machine never reads the clock; every transition takes the current
// time from the caller.
package timer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/liftlog/internal/domain"
)

// DefaultDuration is the rest period used when none is given.
const DefaultDuration = 90 * time.Second

// MaxDuration is the longest rest period accepted.
const MaxDuration = time.Hour

const maxSeconds = int(MaxDuration / time.Second)

// Presets are the rest periods offered in menus.
var Presets = []time.Duration{60 * time.Second, 90 * time.Second, 120 * time.Second, 180 * time.Second}

// ErrInvalidTransition is returned when an action does not apply to the
// current state.
var ErrInvalidTransition = errors.New("invalid timer transition")

type State int

const (
	Idle State = iota
	Running
	Paused
	Finished
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Finished:
		return "finished"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Timer counts down a fixed duration. Only time spent Running counts.
type Timer struct {
	duration time.Duration
	state    State
	// banked is running time accumulated before the current run.
	banked time.Duration
	since  time.Time
}

// New returns an idle timer. The duration must be positive and at most
// MaxDuration.
func New(d time.Duration) (*Timer, error) {
	if d <= 0 || d > MaxDuration {
		return nil, fmt.Errorf("rest duration must be between 1s and %s, got %s: %w", MaxDuration, d, domain.ErrInvalidInput)
	}
	return &Timer{duration: d}, nil
}

func (t *Timer) Duration() time.Duration { return t.duration }

func (t *Timer) State() State { return t.state }

// Start begins a fresh countdown from Idle or Finished.
func (t *Timer) Start(now time.Time) error {
	if t.state != Idle && t.state != Finished {
		return fmt.Errorf("start while %s: %w", t.state, ErrInvalidTransition)
	}
	t.banked = 0
	t.since = now
	t.state = Running
	return nil
}

// Pause stops the clock. If the duration already ran out the timer
// finishes instead.
func (t *Timer) Pause(now time.Time) error {
	if t.state != Running {
		return fmt.Errorf("pause while %s: %w", t.state, ErrInvalidTransition)
	}
	if t.Tick(now) == Finished {
		return nil
	}
	t.banked += now.Sub(t.since)
	t.state = Paused
	return nil
}

// Resume restarts the clock after a pause.
func (t *Timer) Resume(now time.Time) error {
	if t.state != Paused {
		return fmt.Errorf("resume while %s: %w", t.state, ErrInvalidTransition)
	}
	t.since = now
	t.state = Running
	return nil
}

// Toggle pauses a running timer or resumes a paused one.
func (t *Timer) Toggle(now time.Time) error {
	if t.state == Paused {
		return t.Resume(now)
	}
	return t.Pause(now)
}

// Cancel abandons a running or paused countdown.
func (t *Timer) Cancel() error {
	if t.state != Running && t.state != Paused {
		return fmt.Errorf("cancel while %s: %w", t.state, ErrInvalidTransition)
	}
	t.banked = 0
	t.state = Idle
	return nil
}

// Tick moves a running timer to Finished once its running time reaches
// the duration, and returns the resulting state.
func (t *Timer) Tick(now time.Time) State {
	if t.state == Running && t.banked+now.Sub(t.since) >= t.duration {
		t.banked = t.duration
		t.state = Finished
	}
	return t.state
}

// Elapsed is the running time so far, capped at the duration.
func (t *Timer) Elapsed(now time.Time) time.Duration {
	e := t.banked
	if t.state == Running {
		e += now.Sub(t.since)
	}
	if e > t.duration {
		e = t.duration
	}
	if e < 0 {
		e = 0
	}
	return e
}

func (t *Timer) Remaining(now time.Time) time.Duration {
	return t.duration - t.Elapsed(now)
}

// Fraction is elapsed/duration in [0, 1].
func (t *Timer) Fraction(now time.Time) float64 {
	return float64(t.Elapsed(now)) / float64(t.duration)
}

// ParseDuration accepts whole seconds ("90") or a Go duration ("2m",
// "90s"). Empty input yields DefaultDuration.
func ParseDuration(s string) (time.Duration, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return DefaultDuration, nil
	}
	if n, err := strconv.Atoi(v); err == nil {
		if n <= 0 || n > maxSeconds {
			return 0, fmt.Errorf("rest seconds must be between 1 and %d, got %d: %w", maxSeconds, n, domain.ErrInvalidInput)
		}
		return time.Duration(n) * time.Second, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%q is not a rest duration (e.g. 90 or 2m): %w", s, domain.ErrInvalidInput)
	}
	d = d.Round(time.Second)
	if d <= 0 {
		return 0, fmt.Errorf("rest duration must be at least a second: %w", domain.ErrInvalidInput)
	}
	if d > MaxDuration {
		return 0, fmt.Errorf("rest duration %s is longer than %s: %w", d, MaxDuration, domain.ErrInvalidInput)
	}
	return d, nil
}

// FormatClock renders d as M:SS, rounding partial seconds up so a countdown
// never shows 0:00 while time remains.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
