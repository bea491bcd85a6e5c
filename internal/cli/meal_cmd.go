package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/liftlog/internal/cli/formatter"
	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/alexanderramin/liftlog/internal/nutrition"
	"github.com/alexanderramin/liftlog/internal/service"
	"github.com/spf13/cobra"
)

func newMealCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "meal",
		Aliases: []string{"m"},
		Short:   "Log and review meals",
	}

	cmd.AddCommand(
		newMealLogCmd(app),
		newMealListCmd(app),
		newMealDeleteCmd(app),
	)

	return cmd
}

func newMealLogCmd(app *App) *cobra.Command {
	servings := servingsFlag{servings: 1}
	var calories int

	cmd := &cobra.Command{
		Use:   "log FOOD",
		Short: "Log a meal from the food list, or a new food with --calories",
		Example: `  liftlog meal log "Chicken Breast" --servings 150g
  liftlog meal log "Overnight Oats" --calories 180
  liftlog meal log Banana --servings 2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := service.MealRequest{Food: strings.Join(args, " "), Servings: servings.servings}
			if cmd.Flags().Changed("calories") {
				req.Calories = &calories
			}

			logged, err := app.Meals.Log(context.Background(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLoggedMeal(logged.Entry, logged.SavedCustomFood, logged.Progress))
			return nil
		},
	}

	cmd.Flags().Var(&servings, "servings", "Servings eaten, or grams like 150g (100 g per serving)")
	cmd.Flags().IntVar(&calories, "calories", 0, "Calories per serving; required for foods not in the list")

	return cmd
}

func newMealListCmd(app *App) *cobra.Command {
	day := newDayFlag(app.now)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a day's meals",
		RunE: func(cmd *cobra.Command, args []string) error {
			meals, err := app.Meals.OnDay(context.Background(), day.Value())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMealList(meals, app.now()))
			return nil
		},
	}

	cmd.Flags().Var(day, "date", "Day to list (today, yesterday, YYYY-MM-DD)")

	return cmd
}

func newMealDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   "Delete a meal entry",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !confirm(cmd, app, fmt.Sprintf("Delete meal %s? [y/N] ", args[0])) {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
			meal, err := app.Meals.Delete(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s x %s (%s)\n",
				formatter.Servings(meal.Servings), meal.Food, formatter.Kcal(meal.Calories))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func newFoodCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "food",
		Short: "Browse the food list and add custom foods",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List built-in and custom foods",
			RunE: func(cmd *cobra.Command, args []string) error {
				items, err := app.Foods.Catalog(context.Background())
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCatalog(items))
				return nil
			},
		},
		&cobra.Command{
			Use:     "add NAME CALORIES",
			Short:   "Add or replace a custom food (calories per serving)",
			Example: `  liftlog food add "Protein Shake" 180`,
			Args:    cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				name := strings.Join(args[:len(args)-1], " ")
				cal, err := domain.ParseCalories(args[len(args)-1])
				if err != nil {
					return err
				}
				replaced, err := app.Foods.AddCustom(context.Background(), name, cal)
				if err != nil {
					return err
				}
				verb := "Added"
				if replaced {
					verb = "Updated"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s per serving\n",
					formatter.StyleGreen.Render("✔ "+verb), formatter.Bold(name), formatter.Kcal(cal))
				return nil
			},
		},
	)

	return cmd
}

func newGoalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Show or set the daily calorie goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showGoal(cmd, app)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the daily calorie goal",
			RunE: func(cmd *cobra.Command, args []string) error {
				return showGoal(cmd, app)
			},
		},
		&cobra.Command{
			Use:   "set CALORIES",
			Short: "Set the daily calorie goal",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				goal, err := domain.ParseCalories(args[0])
				if err != nil {
					return err
				}
				if err := app.Goals.Set(context.Background(), goal); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s daily goal: %s\n", formatter.StyleGreen.Render("✔ Set"), formatter.Kcal(goal))
				return nil
			},
		},
	)

	return cmd
}

func showGoal(cmd *cobra.Command, app *App) error {
	goal, err := app.Goals.Get(context.Background())
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGoal(goal))
	return nil
}

func newCaloriesCmd(app *App) *cobra.Command {
	day := newDayFlag(app.now)

	cmd := &cobra.Command{
		Use:     "calories",
		Aliases: []string{"cal"},
		Short:   "Show calories eaten against the daily goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			var p *nutrition.Progress
			if !cmd.Flags().Changed("date") {
				var err error
				if p, err = app.Meals.Today(ctx); err != nil {
					return err
				}
			} else {
				meals, err := app.Meals.OnDay(ctx, day.Value())
				if err != nil {
					return err
				}
				goal, err := app.Goals.Get(ctx)
				if err != nil {
					return err
				}
				dp := nutrition.DailyProgress(meals, goal, day.Value())
				p = &dp
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCalorieProgress(*p, app.now()))
			return nil
		},
	}

	cmd.Flags().Var(day, "date", "Day to show (today, yesterday, YYYY-MM-DD)")

	return cmd
}
