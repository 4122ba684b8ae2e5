package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/optistudy/internal/cli/formatter"
	"github.com/alexanderramin/optistudy/internal/contract"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"status"},
		Short:   "Overview: countdowns, preparedness, today's sessions and alerts",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewDashboardRequest()
			now := app.now()
			req.Now = &now
			resp, err := app.Dashboard.Dashboard(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDashboard(resp))
			return nil
		},
	}
}

func newNotificationsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"alerts"},
		Short:   "List exam alerts, most pressing first",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewDashboardRequest()
			now := app.now()
			req.Now = &now
			resp, err := app.Dashboard.Dashboard(cmd.Context(), req)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(resp.Notifications) == 0 {
				fmt.Fprintln(out, "All clear, no exam alerts.")
				return nil
			}
			fmt.Fprint(out, formatter.FormatNotifications(resp.Notifications))
			return nil
		},
	}
}

func newCalendarCmd(app *App) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Show exams and planned study sessions for a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.now()
			year, mon := now.Year(), now.Month()
			if month != "" {
				t, err := time.Parse("2006-01", month)
				if err != nil {
					return fmt.Errorf("invalid --month %q (want YYYY-MM)", month)
				}
				year, mon = t.Year(), t.Month()
			}
			m, err := app.Calendar.Month(cmd.Context(), year, mon, now)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMonth(m))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month to show (YYYY-MM, default current)")
	return cmd
}
