package cli

import (
	"time"

	"github.com/alexanderramin/optistudy/internal/config"
	"github.com/alexanderramin/optistudy/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Subjects  service.SubjectService
	Chapters  service.ChapterService
	Resources service.ResourceService
	Plans     service.PlanService
	Settings  service.SettingsService
	Dashboard service.DashboardService
	Advisor   service.AdvisorService
	Calendar  service.CalendarService

	// Planner supplies budget overrides when plan flags are not given.
	Planner config.PlannerConfig

	// Bootstrap wires the services from the parsed persistent flags. Tests
	// leave it nil and set the services directly.
	Bootstrap func(flags *pflag.FlagSet) error

	// Now and IsInteractive are swappable for tests.
	Now           func() time.Time
	IsInteractive func() bool
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

// NewRootCmd creates the top-level "optistudy" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "optistudy",
		Short:         "Exam-driven study planner",
		Long:          "OptiStudy scores your subjects by exam urgency, weakness and workload and splits your daily study hours between them.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Bootstrap == nil {
				return nil
			}
			return app.Bootstrap(cmd.Root().PersistentFlags())
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "Config file (default ./optistudy.yaml or ~/.optistudy/optistudy.yaml)")
	flags.String("db", "", "SQLite database path (default ~/.optistudy/optistudy.db)")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.String("log-format", "", "Log format: text or json")
	flags.BoolP("verbose", "v", false, "Log every use case to stderr")

	root.AddCommand(
		newSubjectCmd(app),
		newDemoCmd(app),
		newChapterCmd(app),
		newResourceCmd(app),
		newPlanCmd(app),
		newDashboardCmd(app),
		newNotificationsCmd(app),
		newCalendarCmd(app),
		newAskCmd(app),
		newChatCmd(app),
		newSettingsCmd(app),
	)

	return root
}
