package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/stagehand/internal/db"
	"github.com/alexanderramin/stagehand/internal/domain"
	"github.com/alexanderramin/stagehand/internal/repository"
	"github.com/google/uuid"
)

type holdingService struct {
	holdings     repository.HoldingRepo
	defaultTasks repository.DefaultTaskRepo
	events       repository.EventRepo
	uow          db.UnitOfWork
}

func NewHoldingService(
	holdings repository.HoldingRepo,
	defaultTasks repository.DefaultTaskRepo,
	events repository.EventRepo,
	uow db.UnitOfWork,
) HoldingService {
	return &holdingService{
		holdings:     holdings,
		defaultTasks: defaultTasks,
		events:       events,
		uow:          uow,
	}
}

func (s *holdingService) CreateWithTasks(ctx context.Context, h *domain.Holding) ([]*domain.HoldingTask, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	h.CreatedAt = now
	h.UpdatedAt = now

	// Resolve the origin's templates up front. A freestanding holding (no
	// origin event) clones nothing; an origin that doesn't resolve is a
	// caller error.
	var templates []*domain.DefaultTask
	if h.EventID != nil {
		if _, err := s.events.GetByID(ctx, *h.EventID); err != nil {
			return nil, fmt.Errorf("resolving origin event: %w", err)
		}
		var err error
		templates, err = s.defaultTasks.ListByEvent(ctx, *h.EventID)
		if err != nil {
			return nil, fmt.Errorf("loading default tasks: %w", err)
		}
	}

	// Each clone gets a fresh id; name, lead time and description are
	// copied verbatim, in the template list's stored order.
	cloned := make([]*domain.HoldingTask, 0, len(templates))
	for _, tpl := range templates {
		cloned = append(cloned, &domain.HoldingTask{
			ID:          uuid.New().String(),
			HoldingID:   h.ID,
			Name:        tpl.Name,
			DaysBefore:  tpl.DaysBefore,
			Description: tpl.Description,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	// The holding and all clones land atomically: a failure partway leaves
	// nothing behind.
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txHoldings := repository.NewSQLiteHoldingRepo(tx)
		txTasks := repository.NewSQLiteHoldingTaskRepo(tx)

		if err := txHoldings.Create(ctx, h); err != nil {
			return fmt.Errorf("creating holding: %w", err)
		}
		for _, task := range cloned {
			if err := txTasks.Create(ctx, task); err != nil {
				return fmt.Errorf("cloning task '%s': %w", task.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cloned, nil
}

func (s *holdingService) GetByID(ctx context.Context, id string) (*domain.Holding, error) {
	return s.holdings.GetByID(ctx, id)
}

func (s *holdingService) List(ctx context.Context) ([]*domain.Holding, error) {
	return s.holdings.List(ctx)
}

func (s *holdingService) ListByEvent(ctx context.Context, eventID string) ([]*domain.Holding, error) {
	return s.holdings.ListByEvent(ctx, eventID)
}

func (s *holdingService) Update(ctx context.Context, h *domain.Holding) error {
	if err := h.Validate(); err != nil {
		return err
	}
	h.UpdatedAt = time.Now().UTC()
	return s.holdings.Update(ctx, h)
}

func (s *holdingService) Delete(ctx context.Context, id string) error {
	return s.holdings.Delete(ctx, id)
}
