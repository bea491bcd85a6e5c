package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/liftlog/internal/cli"
	"github.com/alexanderramin/liftlog/internal/config"
	"github.com/alexanderramin/liftlog/internal/db"
	"github.com/alexanderramin/liftlog/internal/logging"
	"github.com/alexanderramin/liftlog/internal/repository"
	"github.com/alexanderramin/liftlog/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(logging.Options{File: cfg.LogFile, Level: cfg.LogLevel})
	if err != nil {
		return err
	}
	defer closer.Close()

	// Pick the storage backend
	var repo repository.StateRepo
	switch cfg.Store {
	case config.StoreSQLite:
		database, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()
		repo = repository.NewSQLiteStateRepo(database, db.NewSQLiteUnitOfWork(database), cfg.DBPath)
	default:
		repo = repository.NewJSONStateRepo(cfg.DataPath)
	}
	logger.Debug("store_opened", "store", string(cfg.Store), "location", repo.Location())

	loader := service.NewStateLoader(repo,
		service.WithLogger(logger),
		service.WithWarnings(os.Stderr),
	)
	observer := service.NewLogUseCaseObserver(logger)

	app := &cli.App{
		Workouts:  service.NewWorkoutService(loader, observer),
		Meals:     service.NewMealService(loader, observer),
		Foods:     service.NewFoodService(loader, observer),
		Goals:     service.NewGoalService(loader, observer),
		Progress:  service.NewProgressService(loader),
		Templates: service.NewTemplateService(loader, observer),
		Config:    cfg,
	}

	// The menu and the rest timer only run on a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
