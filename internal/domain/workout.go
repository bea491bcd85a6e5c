package domain

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/multierr"
)

// Set is a single set of an exercise. Weight is in kilograms; zero means
// bodyweight.
type Set struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

func (s Set) String() string {
	if s.Weight == 0 {
		return fmt.Sprintf("%d reps", s.Reps)
	}
	return fmt.Sprintf("%dx%s", s.Reps, FormatWeight(s.Weight))
}

type WorkoutEntry struct {
	ID        string     `json:"id"`
	Date      time.Time  `json:"date"`
	BodyParts []BodyPart `json:"bodyParts"`
	Exercise  string     `json:"exercise"`
	Sets      []Set      `json:"sets"`
	Notes     string     `json:"notes,omitempty"`
}

// Validate reports every problem with the entry at once.
func (w *WorkoutEntry) Validate() error {
	var err error
	if strings.TrimSpace(w.Exercise) == "" {
		err = multierr.Append(err, fmt.Errorf("exercise name is required: %w", ErrInvalidInput))
	}
	if len(w.BodyParts) == 0 {
		err = multierr.Append(err, fmt.Errorf("at least one body part is required: %w", ErrInvalidInput))
	}
	seen := make(map[BodyPart]bool, len(w.BodyParts))
	for _, bp := range w.BodyParts {
		if _, ok := SuggestedExercises[bp]; !ok {
			err = multierr.Append(err, fmt.Errorf("unknown body part %q: %w", bp, ErrInvalidInput))
		}
		if seen[bp] {
			err = multierr.Append(err, fmt.Errorf("body part %q listed twice: %w", bp, ErrInvalidInput))
		}
		seen[bp] = true
	}
	if len(w.Sets) == 0 {
		err = multierr.Append(err, fmt.Errorf("at least one set is required: %w", ErrInvalidInput))
	}
	for i, s := range w.Sets {
		if s.Reps <= 0 || s.Reps > MaxReps {
			err = multierr.Append(err, fmt.Errorf("set %d: reps must be between 1 and %d, got %d: %w", i+1, MaxReps, s.Reps, ErrInvalidInput))
		}
		if s.Weight < 0 {
			err = multierr.Append(err, fmt.Errorf("set %d: weight cannot be negative: %w", i+1, ErrInvalidInput))
		}
	}
	return err
}

// PrimaryBodyPart is the body part the entry is filed under in history views.
func (w *WorkoutEntry) PrimaryBodyPart() BodyPart {
	if len(w.BodyParts) == 0 {
		return ""
	}
	return w.BodyParts[0]
}

func (w *WorkoutEntry) HasBodyPart(bp BodyPart) bool {
	for _, p := range w.BodyParts {
		if p == bp {
			return true
		}
	}
	return false
}

// TopWeight returns the heaviest weight across the entry's sets.
func (w *WorkoutEntry) TopWeight() float64 {
	var top float64
	for _, s := range w.Sets {
		if s.Weight > top {
			top = s.Weight
		}
	}
	return top
}

// Volume is the sum of reps x weight across all sets.
func (w *WorkoutEntry) Volume() float64 {
	var v float64
	for _, s := range w.Sets {
		v += float64(s.Reps) * s.Weight
	}
	return v
}

// SetsLabel renders sets compactly, collapsing identical sets: "3x10 @ 60kg, 1x8 @ 65kg".
func (w *WorkoutEntry) SetsLabel() string {
	if len(w.Sets) == 0 {
		return ""
	}
	var parts []string
	for i := 0; i < len(w.Sets); {
		j := i
		for j < len(w.Sets) && w.Sets[j] == w.Sets[i] {
			j++
		}
		s := w.Sets[i]
		label := fmt.Sprintf("%dx%d", j-i, s.Reps)
		if s.Weight > 0 {
			label += " @ " + FormatWeight(s.Weight)
		}
		parts = append(parts, label)
		i = j
	}
	return strings.Join(parts, ", ")
}

// SameExercise compares exercise names case-insensitively.
func SameExercise(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// WorkoutEdit carries optional replacements for an existing entry.
type WorkoutEdit struct {
	Exercise  *string
	BodyParts []BodyPart
	Sets      []Set
	Notes     *string
	Date      *time.Time
}

// Apply returns a copy of w with the edit applied. The receiver is not modified.
func (e WorkoutEdit) Apply(w WorkoutEntry) WorkoutEntry {
	out := w
	out.BodyParts = append([]BodyPart(nil), w.BodyParts...)
	out.Sets = append([]Set(nil), w.Sets...)
	if e.Exercise != nil {
		out.Exercise = strings.TrimSpace(*e.Exercise)
	}
	if len(e.BodyParts) > 0 {
		out.BodyParts = append([]BodyPart(nil), e.BodyParts...)
	}
	if len(e.Sets) > 0 {
		out.Sets = append([]Set(nil), e.Sets...)
	}
	if e.Notes != nil {
		out.Notes = *e.Notes
	}
	if e.Date != nil {
		out.Date = *e.Date
	}
	return out
}

func (e WorkoutEdit) IsEmpty() bool {
	return e.Exercise == nil && len(e.BodyParts) == 0 && len(e.Sets) == 0 && e.Notes == nil && e.Date == nil
}
