package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/stagehand/internal/repository"
	"github.com/robfig/cron/v3"
)

// ReminderService periodically sweeps for holding tasks whose due date has
// arrived and posts a reminder to the holding's channel. Each task is
// reminded once; failures are logged and retried on the next sweep.
type ReminderService struct {
	tasks    repository.HoldingTaskRepo
	notifier Notifier
	logger   *slog.Logger
	schedule string
	cron     *cron.Cron
}

func NewReminderService(tasks repository.HoldingTaskRepo, notifier Notifier, logger *slog.Logger, schedule string) *ReminderService {
	return &ReminderService{
		tasks:    tasks,
		notifier: notifier,
		logger:   logger,
		schedule: schedule,
	}
}

// Start registers the sweep on the cron schedule and begins running it in
// the background. Call Stop to halt.
func (s *ReminderService) Start() error {
	c := cron.New()
	_, err := c.AddFunc(s.schedule, func() {
		if err := s.RunOnce(context.Background()); err != nil {
			s.logger.Error("reminder sweep failed", slog.String("err", err.Error()))
		}
	})
	if err != nil {
		return fmt.Errorf("registering reminder schedule %q: %w", s.schedule, err)
	}
	c.Start()
	s.cron = c
	return nil
}

func (s *ReminderService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// RunOnce performs a single sweep: list due tasks, post each reminder, mark
// the task reminded. A failed post skips the mark so the task is retried on
// the next sweep.
func (s *ReminderService) RunOnce(ctx context.Context) error {
	due, err := s.tasks.ListDue(ctx, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("listing due tasks: %w", err)
	}

	for _, d := range due {
		content := fmt.Sprintf("%s %s", d.Mention, d.Task.Name)
		if err := s.notifier.Post(ctx, d.ChannelID, content); err != nil {
			s.logger.Error("failed to send reminder",
				slog.String("task_id", d.Task.ID),
				slog.String("channel_id", d.ChannelID),
				slog.String("err", err.Error()))
			continue
		}
		if err := s.tasks.MarkReminded(ctx, d.Task.ID); err != nil {
			s.logger.Error("failed to mark task reminded",
				slog.String("task_id", d.Task.ID),
				slog.String("err", err.Error()))
			continue
		}
	}
	return nil
}
