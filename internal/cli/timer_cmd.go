package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/liftlog/internal/cli/formatter"
	"github.com/alexanderramin/liftlog/internal/timer"
	"github.com/spf13/cobra"
)

func newTimerCmd(app *App) *cobra.Command {
	var presets bool

	cmd := &cobra.Command{
		Use:   "timer [SECONDS|DURATION]",
		Short: "Count down a rest period between sets",
		Example: `  liftlog timer
  liftlog timer 120
  liftlog timer 2m30s`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if presets {
				fmt.Fprintln(cmd.OutOrStdout(), formatPresets(restDefault(app)))
				return nil
			}

			d := restDefault(app)
			if len(args) == 1 {
				var err error
				if d, err = timer.ParseDuration(args[0]); err != nil {
					return err
				}
			}
			if !app.interactive() {
				return errors.New("the rest timer needs an interactive terminal")
			}
			return runRestTimer(cmd, app, d)
		},
	}

	cmd.Flags().BoolVar(&presets, "presets", false, "List the preset rest periods")

	return cmd
}

func restDefault(app *App) time.Duration {
	if app.Config.RestSeconds > 0 {
		return time.Duration(app.Config.RestSeconds) * time.Second
	}
	return timer.DefaultDuration
}

func runRestTimer(cmd *cobra.Command, app *App, d time.Duration) error {
	m, err := newTimerModel(d, app.now, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	final, err := app.runProgram(m, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("running rest timer: %w", err)
	}
	if tm, ok := final.(*timerModel); ok && tm.timer.State() == timer.Finished {
		fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("✔ Rest over."))
	}
	return nil
}

func formatPresets(def time.Duration) string {
	parts := make([]string, len(timer.Presets))
	for i, p := range timer.Presets {
		label := timer.FormatClock(p)
		if p == def {
			label += formatter.Dim(" (default)")
		}
		parts[i] = label
	}
	return "Rest presets: " + strings.Join(parts, ", ")
}
