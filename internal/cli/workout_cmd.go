package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/liftlog/internal/cli/formatter"
	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/alexanderramin/liftlog/internal/service"
	"github.com/spf13/cobra"
)

func newWorkoutCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "workout",
		Aliases: []string{"w"},
		Short:   "Log and review workouts",
	}

	cmd.AddCommand(
		newWorkoutLogCmd(app),
		newWorkoutListCmd(app),
		newWorkoutShowCmd(app),
		newWorkoutEditCmd(app),
		newWorkoutDeleteCmd(app),
	)

	return cmd
}

func newWorkoutLogCmd(app *App) *cobra.Command {
	var (
		parts bodyPartsFlag
		sets  setsFlag
		notes string
	)

	cmd := &cobra.Command{
		Use:   "log EXERCISE",
		Short: "Log an exercise with its sets",
		Example: `  liftlog workout log "Bench Press" --set 3x10x60kg
  liftlog workout log Squat --part legs --set 5x100kg --set 5x105kg
  liftlog workout log "Pull-ups" --set 3x8`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exercise := strings.Join(args, " ")
			bodyParts := parts.parts
			if len(bodyParts) == 0 {
				bp, ok := guessBodyPart(exercise)
				if !ok {
					return fmt.Errorf("no body part known for %q; pass --part: %w", exercise, domain.ErrInvalidInput)
				}
				bodyParts = []domain.BodyPart{bp}
			}

			logged, err := app.Workouts.Log(context.Background(), domain.WorkoutEntry{
				Exercise:  exercise,
				BodyParts: bodyParts,
				Sets:      sets.sets,
				Notes:     notes,
			})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLoggedWorkout(logged.Entry, logged.PRs))
			return nil
		},
	}

	cmd.Flags().VarP(&parts, "part", "p", "Body part(s) trained: chest, back, shoulders, arms, core, legs")
	cmd.Flags().VarP(&sets, "set", "s", "Set spec REPS, REPSxWEIGHT or SETSxREPSxWEIGHT (repeatable)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	_ = cmd.MarkFlagRequired("set")

	return cmd
}

func newWorkoutListCmd(app *App) *cobra.Command {
	var (
		part     string
		exercise string
		limit    int
		all      bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent workouts, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := service.WorkoutFilter{Exercise: exercise, Limit: limit}
			if !cmd.Flags().Changed("limit") {
				filter.Limit = app.Config.HistoryLimit
			}
			if all {
				filter.Limit = 0
			}
			if part != "" {
				bp, err := domain.ParseBodyPart(part)
				if err != nil {
					return err
				}
				filter.BodyPart = bp
			}

			entries, err := app.Workouts.List(context.Background(), filter)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWorkoutList(entries, app.now()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&part, "part", "p", "", "Only entries that trained this body part")
	cmd.Flags().StringVarP(&exercise, "exercise", "e", "", "Only entries of this exercise")
	cmd.Flags().IntVarP(&limit, "limit", "n", service.DefaultHistoryLimit, "Maximum entries to show")
	cmd.Flags().BoolVar(&all, "all", false, "Show every entry")

	return cmd
}

func newWorkoutShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one workout entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := app.Workouts.Get(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatWorkout(*entry, app.now()))
			return nil
		},
	}
}

func newWorkoutEditCmd(app *App) *cobra.Command {
	var (
		exercise string
		parts    bodyPartsFlag
		sets     setsFlag
		notes    string
	)
	day := newDayFlag(app.now)

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change an entry's exercise, body parts, sets, notes or date",
		Example: `  liftlog workout edit 0f8f --set 5x102.5kg
  liftlog workout edit 0f8f --notes "felt easy" --date yesterday`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var edit domain.WorkoutEdit
			if cmd.Flags().Changed("exercise") {
				edit.Exercise = &exercise
			}
			if cmd.Flags().Changed("notes") {
				edit.Notes = &notes
			}
			if cmd.Flags().Changed("date") {
				d := day.Value()
				edit.Date = &d
			}
			edit.BodyParts = parts.parts
			edit.Sets = sets.sets

			entry, err := app.Workouts.Edit(context.Background(), args[0], edit)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
				formatter.StyleGreen.Render("✔ Updated"), formatter.Bold(entry.Exercise), entry.SetsLabel(), formatter.ShortID(entry.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&exercise, "exercise", "", "New exercise name")
	cmd.Flags().VarP(&parts, "part", "p", "Replace the body parts")
	cmd.Flags().VarP(&sets, "set", "s", "Replace the sets (repeatable)")
	cmd.Flags().StringVar(&notes, "notes", "", "Replace the notes")
	cmd.Flags().Var(day, "date", "Move the entry to another day (today, yesterday, YYYY-MM-DD)")

	return cmd
}

func newWorkoutDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   "Delete a workout entry",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			entry, err := app.Workouts.Get(ctx, args[0])
			if err != nil {
				return err
			}
			if !yes && !confirm(cmd, app, fmt.Sprintf("Delete %s %s from %s? [y/N] ",
				entry.Exercise, entry.SetsLabel(), formatter.DayLabel(entry.Date, app.now()))) {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
			if _, err := app.Workouts.Delete(ctx, entry.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %s\n", entry.Exercise, formatter.ShortID(entry.ID))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
