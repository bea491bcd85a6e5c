package cli

import (
	"io"
	"os"
	"time"

	"github.com/alexanderramin/liftlog/internal/config"
	"github.com/alexanderramin/liftlog/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds the services and settings used by CLI commands.
type App struct {
	Workouts  service.WorkoutService
	Meals     service.MealService
	Foods     service.FoodService
	Goals     service.GoalService
	Progress  service.ProgressService
	Templates service.TemplateService

	Config config.Config

	// Now is the clock used to resolve "today" and to label dates.
	Now func() time.Time
	// IsInteractive reports whether stdin is a terminal. The menu and the
	// full-screen timer only run when it returns true.
	IsInteractive func() bool
	// In answers confirmation prompts. Defaults to os.Stdin.
	In io.Reader
	// RunProgram runs a bubbletea model to completion. Tests replace it.
	RunProgram func(m tea.Model, in io.Reader, out io.Writer) (tea.Model, error)
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) input() io.Reader {
	if a.In != nil {
		return a.In
	}
	return os.Stdin
}

func (a *App) runProgram(m tea.Model, in io.Reader, out io.Writer) (tea.Model, error) {
	if a.RunProgram != nil {
		return a.RunProgram(m, in, out)
	}
	return tea.NewProgram(m, tea.WithInput(in), tea.WithOutput(out)).Run()
}

// NewRootCmd creates the top-level "liftlog" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "liftlog",
		Short:         "Track workouts, personal records and calories",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return cmd.Help()
			}
			return runMenu(cmd, app)
		},
	}

	root.AddCommand(
		newWorkoutCmd(app),
		newTemplateCmd(app),
		newMealCmd(app),
		newFoodCmd(app),
		newGoalCmd(app),
		newCaloriesCmd(app),
		newPRsCmd(app),
		newProgressCmd(app),
		newSummaryCmd(app),
		newTimerCmd(app),
	)

	return root
}
