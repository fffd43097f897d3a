package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/stagehand/internal/chat"
	"github.com/alexanderramin/stagehand/internal/cli"
	"github.com/alexanderramin/stagehand/internal/config"
	"github.com/alexanderramin/stagehand/internal/db"
	"github.com/alexanderramin/stagehand/internal/repository"
	"github.com/alexanderramin/stagehand/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("STAGEHAND_CONFIG"))
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	eventRepo := repository.NewSQLiteEventRepo(database)
	defaultTaskRepo := repository.NewSQLiteDefaultTaskRepo(database)
	holdingRepo := repository.NewSQLiteHoldingRepo(database)
	holdingTaskRepo := repository.NewSQLiteHoldingTaskRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	chatClient := chat.New(cfg.Traq.BaseURL, cfg.Traq.Token,
		cfg.Traq.ChannelFreshFor, cfg.Traq.ChannelStaleFor)

	app := &cli.App{
		Events:       service.NewEventService(eventRepo),
		DefaultTasks: service.NewDefaultTaskService(defaultTaskRepo, eventRepo),
		Holdings:     service.NewHoldingService(holdingRepo, defaultTaskRepo, eventRepo, uow),
		HoldingTasks: service.NewHoldingTaskService(holdingTaskRepo, holdingRepo),
		Channels:     chatClient,
		Config:       cfg,
		Logger:       logger,
	}

	// Reminders need a bot token to post with.
	if cfg.Traq.Token != "" {
		app.Reminder = service.NewReminderService(holdingTaskRepo, chatClient, logger, cfg.RemindCron)
	}

	// Detect interactive terminal for wizard and picker entrypoints.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
