package main

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/optistudy/internal/cli"
	"github.com/alexanderramin/optistudy/internal/config"
	"github.com/alexanderramin/optistudy/internal/db"
	"github.com/alexanderramin/optistudy/internal/repository"
	"github.com/alexanderramin/optistudy/internal/service"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var database *sql.DB
	defer func() {
		if database != nil {
			database.Close()
		}
	}()

	app := &cli.App{
		Now: time.Now,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	app.Bootstrap = func(flags *pflag.FlagSet) error {
		configFile, _ := flags.GetString("config")
		cfg, err := config.Load(configFile, flags)
		if err != nil {
			return err
		}

		logger, err := config.NewLogger(cfg.Log, os.Stderr)
		if err != nil {
			return err
		}
		verbose, _ := flags.GetBool("verbose")
		if verbose {
			logger.SetLevel(logrus.DebugLevel)
		}
		var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
		if logger.IsLevelEnabled(logrus.InfoLevel) {
			observer = service.NewLogUseCaseObserver(logger)
		}

		database, err = db.OpenDB(cfg.DB)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		logger.WithField("path", cfg.DB).Debug("database opened")

		// Wire repositories
		subjectRepo := repository.NewSQLiteSubjectRepo(database)
		chapterRepo := repository.NewSQLiteChapterRepo(database)
		resourceRepo := repository.NewSQLiteResourceRepo(database)
		scheduleRepo := repository.NewSQLiteScheduleRepo(database)
		settingsRepo := repository.NewSQLiteSettingsRepo(database)

		uow := db.NewSQLiteUnitOfWork(database)

		// Wire services
		app.Subjects = service.NewSubjectService(subjectRepo, uow, observer)
		app.Chapters = service.NewChapterService(subjectRepo, chapterRepo, uow, observer)
		app.Resources = service.NewResourceService(chapterRepo, resourceRepo)
		app.Plans = service.NewPlanService(subjectRepo, scheduleRepo, settingsRepo, uow, cfg.Allocator(), observer)
		app.Settings = service.NewSettingsService(settingsRepo)
		app.Dashboard = service.NewDashboardService(subjectRepo, scheduleRepo, settingsRepo, cfg.Planner.DayStartHour)
		app.Advisor = service.NewAdvisorService(subjectRepo, scheduleRepo, settingsRepo, observer)
		app.Calendar = service.NewCalendarService(subjectRepo, scheduleRepo, settingsRepo)
		app.Planner = cfg.Planner
		return nil
	}

	return cli.NewRootCmd(app).Execute()
}
