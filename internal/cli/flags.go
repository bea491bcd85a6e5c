package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/alexanderramin/liftlog/internal/nutrition"
	"github.com/spf13/pflag"
)

// setsFlag is a repeatable flag of set specs: --set 3x10x60kg --set 8x70kg.
type setsFlag struct {
	sets []domain.Set
}

var _ pflag.Value = (*setsFlag)(nil)

func (f *setsFlag) String() string {
	parts := make([]string, len(f.sets))
	for i, s := range f.sets {
		parts[i] = s.String()
	}
	return strings.Join(parts, ",")
}

func (f *setsFlag) Set(v string) error {
	sets, err := domain.ParseSets(v)
	if err != nil {
		return err
	}
	f.sets = append(f.sets, sets...)
	return nil
}

func (f *setsFlag) Type() string { return "sets" }

// bodyPartsFlag accepts "chest", "chest,arms" or "chest+arms", and may be
// repeated. Duplicates are dropped.
type bodyPartsFlag struct {
	parts []domain.BodyPart
}

var _ pflag.Value = (*bodyPartsFlag)(nil)

func (f *bodyPartsFlag) String() string {
	ss := make([]string, len(f.parts))
	for i, bp := range f.parts {
		ss[i] = string(bp)
	}
	return strings.Join(ss, ",")
}

func (f *bodyPartsFlag) Set(v string) error {
	fields := strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == '+' })
	if len(fields) == 0 {
		return fmt.Errorf("no body part given: %w", domain.ErrInvalidInput)
	}
	for _, field := range fields {
		bp, err := domain.ParseBodyPart(field)
		if err != nil {
			return err
		}
		if !containsPart(f.parts, bp) {
			f.parts = append(f.parts, bp)
		}
	}
	return nil
}

func (f *bodyPartsFlag) Type() string { return "parts" }

func containsPart(parts []domain.BodyPart, bp domain.BodyPart) bool {
	for _, p := range parts {
		if p == bp {
			return true
		}
	}
	return false
}

// dayFlag names a calendar day: "today", "yesterday" or YYYY-MM-DD, taken
// in the location of the app clock.
type dayFlag struct {
	now func() time.Time
	day time.Time
	set bool
}

var _ pflag.Value = (*dayFlag)(nil)

func newDayFlag(now func() time.Time) *dayFlag {
	return &dayFlag{now: now}
}

func (f *dayFlag) String() string {
	if !f.set {
		return "today"
	}
	return f.day.Format("2006-01-02")
}

func (f *dayFlag) Set(v string) error {
	now := f.now()
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "today":
		f.day = now
	case "yesterday":
		f.day = now.AddDate(0, 0, -1)
	default:
		d, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(v), now.Location())
		if err != nil {
			return fmt.Errorf("date %q: use today, yesterday or YYYY-MM-DD: %w", v, domain.ErrInvalidInput)
		}
		f.day = d
	}
	f.set = true
	return nil
}

func (f *dayFlag) Type() string { return "date" }

// Value returns the chosen day, or now when the flag was not given.
func (f *dayFlag) Value() time.Time {
	if !f.set {
		return f.now()
	}
	return f.day
}

// guessBodyPart finds the body part an exercise is suggested under.
func guessBodyPart(exercise string) (domain.BodyPart, bool) {
	for _, bp := range domain.BodyParts {
		for _, ex := range domain.SuggestedExercises[bp] {
			if domain.SameExercise(ex, exercise) {
				return bp, true
			}
		}
	}
	return "", false
}

// servingsFlag is a serving count ("1.5") or a weight in grams ("150g"),
// converted at 100 g per serving.
type servingsFlag struct {
	servings float64
}

var _ pflag.Value = (*servingsFlag)(nil)

func (f *servingsFlag) String() string {
	return strconv.FormatFloat(f.servings, 'f', -1, 64)
}

func (f *servingsFlag) Set(v string) error {
	s, err := parseServings(v)
	if err != nil {
		return err
	}
	f.servings = s
	return nil
}

func (f *servingsFlag) Type() string { return "servings" }

func parseServings(v string) (float64, error) {
	s := strings.ToLower(strings.TrimSpace(v))
	if g, ok := strings.CutSuffix(s, "g"); ok {
		grams, err := strconv.ParseFloat(strings.TrimSpace(g), 64)
		if err != nil {
			return 0, fmt.Errorf("grams %q is not a number: %w", v, domain.ErrInvalidInput)
		}
		return nutrition.GramsToServings(grams)
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || n <= 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("servings %q must be a positive number or grams like 150g: %w", v, domain.ErrInvalidInput)
	}
	if n > domain.MaxServings {
		return 0, fmt.Errorf("servings %q is more than the limit of %d: %w", v, domain.MaxServings, domain.ErrInvalidInput)
	}
	return n, nil
}
