package domain

import (
	"fmt"
	"strings"
	"time"
)

type TemplateExercise struct {
	Exercise string   `json:"exercise"`
	BodyPart BodyPart `json:"bodyPart"`
}

// WorkoutTemplate is a saved session layout used to pre-fill a new workout.
type WorkoutTemplate struct {
	Name      string             `json:"name"`
	BodyParts []BodyPart         `json:"bodyParts"`
	Exercises []TemplateExercise `json:"exercises"`
	CreatedAt time.Time          `json:"createdAt"`
}

func (t *WorkoutTemplate) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("template name is required: %w", ErrInvalidInput)
	}
	if len(t.Exercises) == 0 {
		return fmt.Errorf("template %q has no exercises: %w", t.Name, ErrInvalidInput)
	}
	return nil
}

// TemplateFromEntries builds a template from a session's entries, keeping
// first-seen order of body parts and exercises.
func TemplateFromEntries(name string, entries []WorkoutEntry, now time.Time) WorkoutTemplate {
	t := WorkoutTemplate{Name: strings.TrimSpace(name), CreatedAt: now}
	seenPart := map[BodyPart]bool{}
	seenExercise := map[string]bool{}
	for _, e := range entries {
		for _, bp := range e.BodyParts {
			if !seenPart[bp] {
				seenPart[bp] = true
				t.BodyParts = append(t.BodyParts, bp)
			}
		}
		key := strings.ToLower(e.Exercise)
		if seenExercise[key] {
			continue
		}
		seenExercise[key] = true
		t.Exercises = append(t.Exercises, TemplateExercise{Exercise: e.Exercise, BodyPart: e.PrimaryBodyPart()})
	}
	return t
}
