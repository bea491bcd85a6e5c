package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/liftlog/internal/cli/formatter"
	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// liftlogHuhTheme returns a huh theme using the Gruvbox palette.
func liftlogHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen).SetString("[x] ")
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func newForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithTheme(liftlogHuhTheme()).WithShowHelp(false)
}

// bodyPartOptions lists body parts in display order.
func bodyPartOptions(parts []domain.BodyPart) []huh.Option[domain.BodyPart] {
	opts := make([]huh.Option[domain.BodyPart], len(parts))
	for i, bp := range parts {
		opts[i] = huh.NewOption(bp.Title(), bp)
	}
	return opts
}

// otherExercise is the select value for typing a name in.
const otherExercise = "\x00other"

func exerciseOptions(parts []domain.BodyPart) []huh.Option[string] {
	var opts []huh.Option[string]
	for _, s := range domain.SuggestionsFor(parts) {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s (%s)", s.Exercise, s.BodyPart), s.Exercise))
	}
	return append(opts, huh.NewOption("Other…", otherExercise))
}

func setsInput(title string, value *string, optional bool) *huh.Input {
	return huh.NewInput().
		Title(title).
		Description("REPS, REPSxWEIGHT or SETSxREPSxWEIGHT, e.g. 3x10x60kg or 5x135lb").
		Placeholder("3x10x60kg").
		Value(value).
		Validate(func(s string) error {
			if optional && strings.TrimSpace(s) == "" {
				return nil
			}
			return validateSets(s)
		})
}

func validateSets(s string) error {
	if _, err := domain.ParseSets(s); err != nil {
		return fmt.Errorf("enter sets like 3x10x60kg")
	}
	return nil
}

func validateRequired(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", what)
		}
		return nil
	}
}

// validatePositiveInt accepts a positive whole number.
func validatePositiveInt(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

func validateServings(s string) error {
	if _, err := parseServings(s); err != nil {
		return fmt.Errorf("enter servings like 1.5 or grams like 150g")
	}
	return nil
}

// confirmForm creates a yes/no confirmation.
func confirmForm(title string, result *bool) *huh.Form {
	return newForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	)
}
