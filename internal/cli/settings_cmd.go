package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/optistudy/internal/cli/formatter"
	"github.com/alexanderramin/optistudy/internal/domain"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "View or change the planner defaults",
	}
	cmd.AddCommand(newSettingsShowCmd(app), newSettingsSetCmd(app))
	return cmd
}

func formatSettings(s *domain.Settings) string {
	maxPer := "40% of budget"
	if s.MaxPerSubject > 0 {
		maxPer = formatter.FormatHours(s.MaxPerSubject)
	}
	start := "today"
	if s.StartDate != nil {
		start = s.StartDate.Format(dateLayout)
	}
	return formatter.RenderTable(
		[]string{"SETTING", "VALUE"},
		[][]string{
			{"Daily hours", formatter.FormatHours(s.TotalHours)},
			{"Max per subject", maxPer},
			{"Calendar start", start},
		},
	)
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the planner defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Settings.Get(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatSettings(s))
			return nil
		},
	}
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var hours, maxPerSubject float64
	var start string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change the planner defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			flags := cmd.Flags()
			if !flags.Changed("hours") && !flags.Changed("max-per-subject") && !flags.Changed("start") {
				return fmt.Errorf("nothing to change; pass --hours, --max-per-subject or --start")
			}
			s, err := app.Settings.Get(ctx)
			if err != nil {
				return err
			}
			if flags.Changed("hours") {
				s.TotalHours = hours
			}
			if flags.Changed("max-per-subject") {
				s.MaxPerSubject = maxPerSubject
			}
			if flags.Changed("start") {
				if strings.TrimSpace(start) == "" {
					s.StartDate = nil
				} else {
					t, err := parseDate(start)
					if err != nil {
						return err
					}
					s.StartDate = &t
				}
			}
			if err := app.Settings.Update(ctx, s); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatSettings(s))
			return nil
		},
	}

	cmd.Flags().Float64Var(&hours, "hours", 0, "Daily study hours")
	cmd.Flags().Float64Var(&maxPerSubject, "max-per-subject", 0, "Cap per subject in hours, 0 for 40% of the budget")
	cmd.Flags().StringVar(&start, "start", "", "First day of planned study sessions (YYYY-MM-DD, empty for today)")
	return cmd
}
