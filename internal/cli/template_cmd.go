package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/liftlog/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTemplateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "template",
		Aliases: []string{"t"},
		Short:   "Save and reuse workout layouts",
	}

	cmd.AddCommand(
		newTemplateListCmd(app),
		newTemplateShowCmd(app),
		newTemplateSaveCmd(app),
		newTemplateDeleteCmd(app),
	)

	return cmd
}

func newTemplateListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			templates, err := app.Templates.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTemplateList(templates, app.now()))
			return nil
		},
	}
}

func newTemplateShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Show a template's exercises",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tpl, err := app.Templates.Get(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTemplate(*tpl))
			return nil
		},
	}
}

func newTemplateSaveCmd(app *App) *cobra.Command {
	day := newDayFlag(app.now)

	cmd := &cobra.Command{
		Use:   "save NAME",
		Short: "Save a day's workouts as a template (replaces one with the same name)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tpl, err := app.Templates.SaveFromDay(context.Background(), strings.Join(args, " "), day.Value())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s template %s with %s\n",
				formatter.StyleGreen.Render("✔ Saved"), formatter.Bold(tpl.Name), formatter.Plural(len(tpl.Exercises), "exercise"))
			return nil
		},
	}

	cmd.Flags().Var(day, "date", "Day to copy (today, yesterday, YYYY-MM-DD)")

	return cmd
}

func newTemplateDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete NAME",
		Aliases: []string{"rm"},
		Short:   "Delete a template",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			if !yes && !confirm(cmd, app, fmt.Sprintf("Delete template %q? [y/N] ", name)) {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
			if err := app.Templates.Delete(context.Background(), name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted template %s\n", name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
