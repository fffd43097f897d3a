package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/stagehand/internal/domain"
	"github.com/alexanderramin/stagehand/internal/repository"
	"github.com/google/uuid"
)

type holdingTaskService struct {
	tasks    repository.HoldingTaskRepo
	holdings repository.HoldingRepo
}

func NewHoldingTaskService(tasks repository.HoldingTaskRepo, holdings repository.HoldingRepo) HoldingTaskService {
	return &holdingTaskService{tasks: tasks, holdings: holdings}
}

func (s *holdingTaskService) Create(ctx context.Context, t *domain.HoldingTask) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if _, err := s.holdings.GetByID(ctx, t.HoldingID); err != nil {
		return fmt.Errorf("resolving owning holding: %w", err)
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	return s.tasks.Create(ctx, t)
}

func (s *holdingTaskService) GetByID(ctx context.Context, id string) (*domain.HoldingTask, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *holdingTaskService) ListByHolding(ctx context.Context, holdingID string) ([]*domain.HoldingTask, error) {
	return s.tasks.ListByHolding(ctx, holdingID)
}

func (s *holdingTaskService) Update(ctx context.Context, t *domain.HoldingTask) error {
	if err := t.Validate(); err != nil {
		return err
	}
	t.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, t)
}

func (s *holdingTaskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}
