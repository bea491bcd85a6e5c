package domain

import (
	"fmt"
	"strings"
)

type BodyPart string

const (
	BodyChest     BodyPart = "chest"
	BodyBack      BodyPart = "back"
	BodyShoulders BodyPart = "shoulders"
	BodyArms      BodyPart = "arms"
	BodyCore      BodyPart = "core"
	BodyLegs      BodyPart = "legs"
)

// BodyParts is the canonical display order.
var BodyParts = []BodyPart{BodyChest, BodyBack, BodyShoulders, BodyArms, BodyCore, BodyLegs}

// SuggestedExercises lists the exercises offered when a body part is selected.
var SuggestedExercises = map[BodyPart][]string{
	BodyChest:     {"Bench Press", "Push-ups", "Dumbbell Fly", "Incline Press", "Cable Crossover"},
	BodyBack:      {"Pull-ups", "Deadlift", "Barbell Row", "Lat Pulldown", "Seated Row"},
	BodyShoulders: {"Overhead Press", "Lateral Raise", "Front Raise", "Face Pull", "Shrugs"},
	BodyArms:      {"Bicep Curl", "Tricep Dip", "Hammer Curl", "Skull Crusher", "Cable Pushdown"},
	BodyCore:      {"Plank", "Crunches", "Leg Raise", "Russian Twist", "Mountain Climbers"},
	BodyLegs:      {"Squat", "Lunges", "Leg Press", "Calf Raise", "Romanian Deadlift"},
}

// ParseBodyPart accepts a body part name in any case.
func ParseBodyPart(s string) (BodyPart, error) {
	bp := BodyPart(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := SuggestedExercises[bp]; !ok {
		return "", fmt.Errorf("unknown body part %q (want one of %s): %w", s, joinBodyParts(BodyParts, ", "), ErrInvalidInput)
	}
	return bp, nil
}

func (b BodyPart) Title() string {
	if b == "" {
		return ""
	}
	return strings.ToUpper(string(b[:1])) + string(b[1:])
}

// ComboCandidates returns every body part other than selected, in display order.
func ComboCandidates(selected BodyPart) []BodyPart {
	out := make([]BodyPart, 0, len(BodyParts)-1)
	for _, bp := range BodyParts {
		if bp != selected {
			out = append(out, bp)
		}
	}
	return out
}

// SuggestionsFor returns the combined suggestion list for a session's body parts.
func SuggestionsFor(parts []BodyPart) []TemplateExercise {
	var out []TemplateExercise
	for _, bp := range parts {
		for _, ex := range SuggestedExercises[bp] {
			out = append(out, TemplateExercise{Exercise: ex, BodyPart: bp})
		}
	}
	return out
}

// FocusLabel renders body parts as "Chest + Arms".
func FocusLabel(parts []BodyPart) string {
	titles := make([]string, len(parts))
	for i, bp := range parts {
		titles[i] = bp.Title()
	}
	return strings.Join(titles, " + ")
}

func joinBodyParts(parts []BodyPart, sep string) string {
	s := make([]string, len(parts))
	for i, bp := range parts {
		s[i] = string(bp)
	}
	return strings.Join(s, sep)
}
