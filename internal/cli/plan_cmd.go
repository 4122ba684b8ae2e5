package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/optistudy/internal/cli/formatter"
	"github.com/alexanderramin/optistudy/internal/contract"
	"github.com/alexanderramin/optistudy/internal/repository"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Split today's study hours across subjects",
	}

	cmd.AddCommand(
		newPlanGenerateCmd(app),
		newPlanShowCmd(app),
		newPlanHistoryCmd(app),
	)

	return cmd
}

func newPlanGenerateCmd(app *App) *cobra.Command {
	var hours, maxPerSubject float64
	var today string
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Allocate hours by exam urgency, weakness and workload",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewPlanRequest()
			req.DryRun = dryRun

			now := app.now()
			if today != "" {
				t, err := parseDate(today)
				if err != nil {
					return err
				}
				now = t
			}
			req.Now = &now

			flags := cmd.Flags()
			switch {
			case flags.Changed("hours"):
				req.TotalHours = &hours
			case app.Planner.TotalHours > 0:
				req.TotalHours = &app.Planner.TotalHours
			}
			switch {
			case flags.Changed("max-per-subject"):
				req.MaxPerSubject = &maxPerSubject
			case app.Planner.MaxPerSubject > 0:
				req.MaxPerSubject = &app.Planner.MaxPerSubject
			}

			resp, err := app.Plans.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlan(resp))
			return nil
		},
	}

	cmd.Flags().Float64Var(&hours, "hours", 0, "Daily study hours (saved as the new default)")
	cmd.Flags().Float64Var(&maxPerSubject, "max-per-subject", 0, "Cap per subject in hours, 0 for 40% of the budget")
	cmd.Flags().StringVar(&today, "today", "", "Plan as of this date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the plan without saving it")

	return cmd
}

func newPlanShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the last saved plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Plans.Latest(cmd.Context())
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("no saved plan, run `optistudy plan generate` first: %w", err)
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlan(resp))
			return nil
		},
	}
}

func newPlanHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List previously saved plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := app.Plans.History(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No saved plans.")
				return nil
			}
			rows := make([][]string, 0, len(records))
			for _, r := range records {
				top := "--"
				if len(r.Allocations) > 0 {
					top = fmt.Sprintf("%s (%s)", r.Allocations[0].Name, formatter.FormatHours(r.Allocations[0].Hours))
				}
				rows = append(rows, []string{
					formatter.TruncID(r.ID),
					r.CreatedAt.Local().Format("Jan 2 15:04"),
					formatter.FormatHours(r.TotalHours),
					fmt.Sprintf("%d", len(r.Allocations)),
					top,
				})
			}
			fmt.Fprint(out, formatter.RenderTable([]string{"ID", "CREATED", "BUDGET", "SUBJECTS", "TOP"}, rows))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "How many plans to show, 0 for all")
	return cmd
}
