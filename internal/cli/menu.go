package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alexanderramin/liftlog/internal/cli/formatter"
	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/alexanderramin/liftlog/internal/service"
	"github.com/alexanderramin/liftlog/internal/timer"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

type menuItem struct {
	key   string
	label string
	// flow collects input and returns the commands to run, in order.
	flow func(ctx context.Context, app *App) ([][]string, error)
}

func menuItems() []menuItem {
	return []menuItem{
		{"workout", "Log workout", logWorkoutFlow},
		{"meal", "Log meal", logMealFlow},
		{"calories", "Today's calories", fixed("calories")},
		{"history", "Workout history", historyFlow},
		{"prs", "Personal records", fixed("prs")},
		{"progress", "Exercise progress", progressFlow},
		{"summary", "Weekly summary", fixed("summary")},
		{"timer", "Rest timer", timerFlow},
		{"templates", "Templates", templatesFlow},
		{"goal", "Set calorie goal", goalFlow},
		{"food", "Add custom food", customFoodFlow},
		{"delete-workout", "Delete a workout", deleteWorkoutFlow},
		{"delete-meal", "Delete a meal", deleteMealFlow},
	}
}

const menuQuit = "quit"

func fixed(args ...string) func(context.Context, *App) ([][]string, error) {
	return func(context.Context, *App) ([][]string, error) {
		return [][]string{args}, nil
	}
}

// runMenu shows the numbered main menu until the user quits. Each choice
// is turned into ordinary subcommand invocations.
func runMenu(cmd *cobra.Command, app *App) error {
	out := cmd.OutOrStdout()
	items := menuItems()
	byKey := make(map[string]menuItem, len(items))
	opts := make([]huh.Option[string], 0, len(items)+1)
	for i, it := range items {
		byKey[it.key] = it
		opts = append(opts, huh.NewOption(fmt.Sprintf("%2d. %s", i+1, it.label), it.key))
	}
	opts = append(opts, huh.NewOption(" 0. Quit", menuQuit))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	for {
		choice := ""
		form := newForm(huh.NewGroup(
			huh.NewSelect[string]().Title("liftlog").Options(opts...).Value(&choice),
		))
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
		if choice == menuQuit {
			return nil
		}

		commands, err := byKey[choice].flow(ctx, app)
		switch {
		case errors.Is(err, huh.ErrUserAborted):
			continue
		case err != nil:
			fmt.Fprintln(out, formatter.StyleRed.Render("Error: "+err.Error()))
			continue
		}
		for _, args := range commands {
			runMenuCommand(app, out, args)
		}
		fmt.Fprintln(out)
	}
}

// runMenuCommand executes args through a fresh command tree, printing any
// error instead of returning it so the menu keeps going.
func runMenuCommand(app *App, out io.Writer, args []string) {
	root := NewRootCmd(app)
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(out, formatter.StyleRed.Render("Error: "+err.Error()))
	}
}

func workoutLogArgs(exercise string, parts []domain.BodyPart, sets, notes string) []string {
	names := make([]string, len(parts))
	for i, bp := range parts {
		names[i] = string(bp)
	}
	args := []string{"workout", "log", exercise, "--part", strings.Join(names, ","), "--set", strings.TrimSpace(sets)}
	if strings.TrimSpace(notes) != "" {
		args = append(args, "--notes", strings.TrimSpace(notes))
	}
	return args
}

func mealLogArgs(food, servings, calories string) []string {
	args := []string{"meal", "log", strings.TrimSpace(food)}
	if s := strings.TrimSpace(servings); s != "" {
		args = append(args, "--servings", s)
	}
	if c := strings.TrimSpace(calories); c != "" {
		args = append(args, "--calories", c)
	}
	return args
}

const newSession = "\x00new"

func logWorkoutFlow(ctx context.Context, app *App) ([][]string, error) {
	templates, err := app.Templates.List(ctx)
	if err != nil {
		return nil, err
	}
	start := newSession
	if len(templates) > 0 {
		opts := []huh.Option[string]{huh.NewOption("New session", newSession)}
		for _, t := range templates {
			opts = append(opts, huh.NewOption(fmt.Sprintf("Template: %s (%s)", t.Name, domain.FocusLabel(t.BodyParts)), t.Name))
		}
		if err := newForm(huh.NewGroup(
			huh.NewSelect[string]().Title("Start from").Options(opts...).Value(&start),
		)).Run(); err != nil {
			return nil, err
		}
	}
	if start != newSession {
		return templateWorkoutFlow(ctx, app, start)
	}

	var (
		primary  domain.BodyPart
		combo    []domain.BodyPart
		exercise string
		other    string
		sets     string
		notes    string
	)
	if err := newForm(huh.NewGroup(
		huh.NewSelect[domain.BodyPart]().Title("Body part").Options(bodyPartOptions(domain.BodyParts)...).Value(&primary),
	)).Run(); err != nil {
		return nil, err
	}
	if err := newForm(huh.NewGroup(
		huh.NewMultiSelect[domain.BodyPart]().
			Title("Combine with (optional)").
			Options(bodyPartOptions(domain.ComboCandidates(primary))...).
			Value(&combo),
	)).Run(); err != nil {
		return nil, err
	}
	parts := append([]domain.BodyPart{primary}, combo...)

	if err := newForm(huh.NewGroup(
		huh.NewSelect[string]().Title("Exercise").Options(exerciseOptions(parts)...).Value(&exercise),
	)).Run(); err != nil {
		return nil, err
	}
	if exercise == otherExercise {
		if err := newForm(huh.NewGroup(
			huh.NewInput().Title("Exercise name").Value(&other).Validate(validateRequired("exercise name")),
		)).Run(); err != nil {
			return nil, err
		}
		exercise = strings.TrimSpace(other)
	}

	if err := newForm(huh.NewGroup(
		setsInput("Sets for "+exercise, &sets, false),
		huh.NewInput().Title("Notes (optional)").Value(&notes),
	)).Run(); err != nil {
		return nil, err
	}
	return [][]string{workoutLogArgs(exercise, parts, sets, notes)}, nil
}

// templateWorkoutFlow asks for sets for each exercise in the template.
// Exercises left blank are skipped.
func templateWorkoutFlow(ctx context.Context, app *App, name string) ([][]string, error) {
	tpl, err := app.Templates.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	sets := make([]string, len(tpl.Exercises))
	fields := make([]huh.Field, len(tpl.Exercises))
	for i, ex := range tpl.Exercises {
		fields[i] = setsInput(fmt.Sprintf("%s (%s)", ex.Exercise, ex.BodyPart), &sets[i], true)
	}
	if err := newForm(huh.NewGroup(fields...).Title(tpl.Name).Description("Leave blank to skip")).Run(); err != nil {
		return nil, err
	}

	var commands [][]string
	for i, ex := range tpl.Exercises {
		if strings.TrimSpace(sets[i]) == "" {
			continue
		}
		commands = append(commands, workoutLogArgs(ex.Exercise, []domain.BodyPart{ex.BodyPart}, sets[i], ""))
	}
	if len(commands) == 0 {
		return nil, fmt.Errorf("no sets entered for %s: %w", tpl.Name, domain.ErrInvalidInput)
	}
	return commands, nil
}

func logMealFlow(ctx context.Context, app *App) ([][]string, error) {
	catalog, err := app.Foods.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(catalog))
	for i, it := range catalog {
		names[i] = it.Name
	}

	var food, servings, calories string
	servings = "1"
	if err := newForm(huh.NewGroup(
		huh.NewInput().Title("Food").Suggestions(names).Value(&food).Validate(validateRequired("food")),
		huh.NewInput().Title("Servings").Description("A serving is 100 g; grams like 150g work too").Value(&servings).Validate(validateServings),
	)).Run(); err != nil {
		return nil, err
	}

	if _, err := app.Foods.Lookup(ctx, food); errors.Is(err, domain.ErrNotFound) {
		if err := newForm(huh.NewGroup(
			huh.NewInput().
				Title("Calories per serving").
				Description(fmt.Sprintf("%q is new; it will be saved as a custom food", strings.TrimSpace(food))).
				Value(&calories).
				Validate(validatePositiveInt),
		)).Run(); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}
	return [][]string{mealLogArgs(food, servings, calories)}, nil
}

const allParts = "all"

func historyFlow(ctx context.Context, app *App) ([][]string, error) {
	part := allParts
	opts := []huh.Option[string]{huh.NewOption("All", allParts)}
	for _, bp := range domain.BodyParts {
		opts = append(opts, huh.NewOption(bp.Title(), string(bp)))
	}
	if err := newForm(huh.NewGroup(
		huh.NewSelect[string]().Title("Filter by body part").Options(opts...).Value(&part),
	)).Run(); err != nil {
		return nil, err
	}
	if part == allParts {
		return [][]string{{"workout", "list"}}, nil
	}
	return [][]string{{"workout", "list", "--part", part}}, nil
}

func progressFlow(ctx context.Context, app *App) ([][]string, error) {
	exercises, err := app.Workouts.Exercises(ctx)
	if err != nil {
		return nil, err
	}
	if len(exercises) == 0 {
		return nil, fmt.Errorf("log a workout first: %w", domain.ErrNotFound)
	}
	var exercise string
	opts := make([]huh.Option[string], len(exercises))
	for i, ex := range exercises {
		opts[i] = huh.NewOption(ex, ex)
	}
	if err := newForm(huh.NewGroup(
		huh.NewSelect[string]().Title("Exercise").Options(opts...).Value(&exercise),
	)).Run(); err != nil {
		return nil, err
	}
	return [][]string{{"progress", exercise}}, nil
}

func timerFlow(_ context.Context, app *App) ([][]string, error) {
	def := restDefault(app)
	secs := strconv.Itoa(int(def.Seconds()))
	opts := make([]huh.Option[string], 0, len(timer.Presets)+1)
	for _, p := range timer.Presets {
		label := timer.FormatClock(p)
		if p == def {
			label += " (default)"
		}
		opts = append(opts, huh.NewOption(label, strconv.Itoa(int(p.Seconds()))))
	}
	opts = append(opts, huh.NewOption("Custom…", ""))
	if err := newForm(huh.NewGroup(
		huh.NewSelect[string]().Title("Rest for").Options(opts...).Value(&secs),
	)).Run(); err != nil {
		return nil, err
	}
	if secs == "" {
		if err := newForm(huh.NewGroup(
			huh.NewInput().Title("Seconds").Value(&secs).Validate(validatePositiveInt),
		)).Run(); err != nil {
			return nil, err
		}
	}
	return [][]string{{"timer", strings.TrimSpace(secs)}}, nil
}

func templatesFlow(ctx context.Context, app *App) ([][]string, error) {
	action := "list"
	if err := newForm(huh.NewGroup(
		huh.NewSelect[string]().Title("Templates").Options(
			huh.NewOption("List templates", "list"),
			huh.NewOption("Save today's session as a template", "save"),
			huh.NewOption("Show a template", "show"),
			huh.NewOption("Delete a template", "delete"),
		).Value(&action),
	)).Run(); err != nil {
		return nil, err
	}

	switch action {
	case "save":
		var name string
		if err := newForm(huh.NewGroup(
			huh.NewInput().Title("Template name").Value(&name).Validate(validateRequired("name")),
		)).Run(); err != nil {
			return nil, err
		}
		return [][]string{{"template", "save", strings.TrimSpace(name)}}, nil
	case "show", "delete":
		name, err := pickTemplate(ctx, app)
		if err != nil {
			return nil, err
		}
		if action == "show" {
			return [][]string{{"template", "show", name}}, nil
		}
		ok := false
		if err := confirmForm(fmt.Sprintf("Delete template %q?", name), &ok).Run(); err != nil || !ok {
			return nil, err
		}
		return [][]string{{"template", "delete", name, "--yes"}}, nil
	default:
		return [][]string{{"template", "list"}}, nil
	}
}

func pickTemplate(ctx context.Context, app *App) (string, error) {
	templates, err := app.Templates.List(ctx)
	if err != nil {
		return "", err
	}
	if len(templates) == 0 {
		return "", fmt.Errorf("no templates saved: %w", domain.ErrNotFound)
	}
	var name string
	opts := make([]huh.Option[string], len(templates))
	for i, t := range templates {
		opts[i] = huh.NewOption(t.Name, t.Name)
	}
	err = newForm(huh.NewGroup(
		huh.NewSelect[string]().Title("Template").Options(opts...).Value(&name),
	)).Run()
	return name, err
}

func goalFlow(ctx context.Context, app *App) ([][]string, error) {
	current, err := app.Goals.Get(ctx)
	if err != nil {
		return nil, err
	}
	goal := strconv.Itoa(current)
	if err := newForm(huh.NewGroup(
		huh.NewInput().Title("Daily calorie goal").Value(&goal).Validate(validatePositiveInt),
	)).Run(); err != nil {
		return nil, err
	}
	return [][]string{{"goal", "set", strings.TrimSpace(goal)}}, nil
}

func customFoodFlow(context.Context, *App) ([][]string, error) {
	var name, calories string
	if err := newForm(huh.NewGroup(
		huh.NewInput().Title("Food name").Value(&name).Validate(validateRequired("food name")),
		huh.NewInput().Title("Calories per serving").Value(&calories).Validate(validatePositiveInt),
	)).Run(); err != nil {
		return nil, err
	}
	return [][]string{{"food", "add", strings.TrimSpace(name), strings.TrimSpace(calories)}}, nil
}

func deleteWorkoutFlow(ctx context.Context, app *App) ([][]string, error) {
	entries, err := app.Workouts.List(ctx, service.WorkoutFilter{Limit: service.DefaultHistoryLimit})
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no workouts logged: %w", domain.ErrNotFound)
	}
	now := app.now()
	opts := make([]huh.Option[string], len(entries))
	for i, e := range entries {
		opts[i] = huh.NewOption(fmt.Sprintf("%s  %s %s", formatter.DayLabel(e.Date, now), e.Exercise, e.SetsLabel()), e.ID)
	}
	return pickAndConfirmDelete("Workout to delete", opts, "workout")
}

func deleteMealFlow(ctx context.Context, app *App) ([][]string, error) {
	meals, err := app.Meals.OnDay(ctx, app.now())
	if err != nil {
		return nil, err
	}
	if len(meals) == 0 {
		return nil, fmt.Errorf("no meals logged today: %w", domain.ErrNotFound)
	}
	opts := make([]huh.Option[string], len(meals))
	for i, m := range meals {
		opts[i] = huh.NewOption(fmt.Sprintf("%s x %s (%s)", formatter.Servings(m.Servings), m.Food, formatter.Kcal(m.Calories)), m.ID)
	}
	return pickAndConfirmDelete("Meal to delete", opts, "meal")
}

func pickAndConfirmDelete(title string, opts []huh.Option[string], noun string) ([][]string, error) {
	var id string
	ok := false
	if err := newForm(
		huh.NewGroup(huh.NewSelect[string]().Title(title).Options(opts...).Value(&id)),
		huh.NewGroup(huh.NewConfirm().Title("Delete it?").Affirmative("Yes").Negative("No").Value(&ok)),
	).Run(); err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return [][]string{{noun, "delete", id, "--yes"}}, nil
}
