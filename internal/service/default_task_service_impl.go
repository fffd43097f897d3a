package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/stagehand/internal/domain"
	"github.com/alexanderramin/stagehand/internal/repository"
	"github.com/google/uuid"
)

type defaultTaskService struct {
	tasks  repository.DefaultTaskRepo
	events repository.EventRepo
}

func NewDefaultTaskService(tasks repository.DefaultTaskRepo, events repository.EventRepo) DefaultTaskService {
	return &defaultTaskService{tasks: tasks, events: events}
}

func (s *defaultTaskService) Create(ctx context.Context, t *domain.DefaultTask) error {
	if err := t.Validate(); err != nil {
		return err
	}
	// Templates only exist through their owning event's edit surface.
	if _, err := s.events.GetByID(ctx, t.EventID); err != nil {
		return fmt.Errorf("resolving owning event: %w", err)
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	return s.tasks.Create(ctx, t)
}

func (s *defaultTaskService) GetByID(ctx context.Context, id string) (*domain.DefaultTask, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *defaultTaskService) ListByEvent(ctx context.Context, eventID string) ([]*domain.DefaultTask, error) {
	return s.tasks.ListByEvent(ctx, eventID)
}

func (s *defaultTaskService) Update(ctx context.Context, t *domain.DefaultTask) error {
	if err := t.Validate(); err != nil {
		return err
	}
	t.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, t)
}

func (s *defaultTaskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}
