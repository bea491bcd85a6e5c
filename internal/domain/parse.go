package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PoundsToKilos converts pounds to kilograms.
const PoundsToKilos = 0.453592

// Upper bounds for a single set spec.
const (
	MaxSetsPerSpec = 50
	MaxReps        = 1000
)

var numberWords = map[string]int{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
	"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13,
	"fourteen": 14, "fifteen": 15, "sixteen": 16, "seventeen": 17,
	"eighteen": 18, "nineteen": 19, "twenty": 20,
}

// ParseCount parses a non-negative count given as digits or an English
// number word ("three").
func ParseCount(s string) (int, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(v); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("%q is negative: %w", s, ErrInvalidInput)
		}
		return n, nil
	}
	if n, ok := numberWords[v]; ok {
		return n, nil
	}
	return 0, fmt.Errorf("%q is not a number (e.g. 3 or 'three'): %w", s, ErrInvalidInput)
}

// ParseWeight parses a weight in kilograms. A "kg" suffix is accepted and
// "lb"/"lbs" values are converted. Empty input means bodyweight (0).
func ParseWeight(s string) (float64, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return 0, nil
	}
	factor := 1.0
	switch {
	case strings.HasSuffix(v, "kg"):
		v = strings.TrimSuffix(v, "kg")
	case strings.HasSuffix(v, "lbs"):
		v = strings.TrimSuffix(v, "lbs")
		factor = PoundsToKilos
	case strings.HasSuffix(v, "lb"):
		v = strings.TrimSuffix(v, "lb")
		factor = PoundsToKilos
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not a weight (e.g. 60, 60kg or 135lb): %w", s, ErrInvalidInput)
	}
	if f < 0 {
		return 0, fmt.Errorf("weight %q cannot be negative: %w", s, ErrInvalidInput)
	}
	return roundTo(f*factor, 2), nil
}

// ParseSets parses a set spec into one or more sets. Accepted forms:
//
//	10         one set of 10 bodyweight reps
//	10x60kg    one set of 10 reps at 60kg
//	3x10x60    three sets of 10 reps at 60kg
//	3x10x135lb three sets of 10 reps at 135lb
func ParseSets(spec string) ([]Set, error) {
	parts := splitSetSpec(strings.ToLower(strings.TrimSpace(spec)))
	var count, reps int
	var weight float64
	var err error

	switch len(parts) {
	case 1:
		count = 1
		if reps, err = ParseCount(parts[0]); err != nil {
			return nil, fmt.Errorf("set %q: %w", spec, err)
		}
	case 2:
		count = 1
		if reps, err = ParseCount(parts[0]); err != nil {
			return nil, fmt.Errorf("set %q: %w", spec, err)
		}
		if weight, err = ParseWeight(parts[1]); err != nil {
			return nil, fmt.Errorf("set %q: %w", spec, err)
		}
	case 3:
		if count, err = ParseCount(parts[0]); err != nil {
			return nil, fmt.Errorf("set %q: %w", spec, err)
		}
		if reps, err = ParseCount(parts[1]); err != nil {
			return nil, fmt.Errorf("set %q: %w", spec, err)
		}
		if weight, err = ParseWeight(parts[2]); err != nil {
			return nil, fmt.Errorf("set %q: %w", spec, err)
		}
	default:
		return nil, fmt.Errorf("set %q: want REPS, REPSxWEIGHT or SETSxREPSxWEIGHT: %w", spec, ErrInvalidInput)
	}

	if count <= 0 || count > MaxSetsPerSpec {
		return nil, fmt.Errorf("set %q: set count must be between 1 and %d: %w", spec, MaxSetsPerSpec, ErrInvalidInput)
	}
	if reps <= 0 || reps > MaxReps {
		return nil, fmt.Errorf("set %q: reps must be between 1 and %d: %w", spec, MaxReps, ErrInvalidInput)
	}

	sets := make([]Set, count)
	for i := range sets {
		sets[i] = Set{Reps: reps, Weight: weight}
	}
	return sets, nil
}

// splitSetSpec splits on "x" separators. An "x" only separates when it follows
// a digit or whitespace, so number words such as "six" stay intact.
func splitSetSpec(spec string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(spec); i++ {
		if spec[i] != 'x' || i == 0 {
			continue
		}
		prev := spec[i-1]
		if (prev >= '0' && prev <= '9') || prev == ' ' || prev == '\t' {
			parts = append(parts, spec[start:i])
			start = i + 1
		}
	}
	return append(parts, spec[start:])
}

// ParseCalories parses a whole calorie value from 0 to MaxCalories.
func ParseCalories(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q is not a calorie value: %w", s, ErrInvalidInput)
	}
	if n < 0 {
		return 0, fmt.Errorf("calories cannot be negative: %w", ErrInvalidInput)
	}
	if n > MaxCalories {
		return 0, fmt.Errorf("%d calories is more than the limit of %d: %w", n, MaxCalories, ErrInvalidInput)
	}
	return n, nil
}

// FormatWeight renders kilograms without trailing zeros: 60kg, 62.5kg.
func FormatWeight(kg float64) string {
	return strconv.FormatFloat(roundTo(kg, 2), 'f', -1, 64) + "kg"
}

func roundTo(f float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(f*p) / p
}
