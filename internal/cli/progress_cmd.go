package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/liftlog/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPRsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "prs",
		Aliases: []string{"records"},
		Short:   "Show the personal record for every exercise",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := app.Progress.PersonalRecords(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPersonalRecords(records, app.now()))
			return nil
		},
	}
}

func newProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress EXERCISE",
		Short: "Chart an exercise's max weight over its recent sessions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := app.Progress.ExerciseHistory(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatExerciseHistory(*h))
			return nil
		},
	}
}

func newSummaryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "summary",
		Aliases: []string{"week"},
		Short:   "Summarize the last seven days of training and eating",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Progress.WeeklySummary(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatWeeklySummary(*s))
			return nil
		},
	}
}
