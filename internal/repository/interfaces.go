package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/stagehand/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	// List returns all events, newest first. A non-empty query narrows the
	// result to events whose name contains it, case-insensitively.
	List(ctx context.Context, query string) ([]*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id string) error
}

type DefaultTaskRepo interface {
	Create(ctx context.Context, t *domain.DefaultTask) error
	GetByID(ctx context.Context, id string) (*domain.DefaultTask, error)
	// ListByEvent returns the event's templates in their stored order:
	// longest lead time first, id as tiebreak. The clone step copies tasks
	// in exactly this order.
	ListByEvent(ctx context.Context, eventID string) ([]*domain.DefaultTask, error)
	Update(ctx context.Context, t *domain.DefaultTask) error
	Delete(ctx context.Context, id string) error
}

type HoldingRepo interface {
	Create(ctx context.Context, h *domain.Holding) error
	GetByID(ctx context.Context, id string) (*domain.Holding, error)
	List(ctx context.Context) ([]*domain.Holding, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Holding, error)
	Update(ctx context.Context, h *domain.Holding) error
	Delete(ctx context.Context, id string) error
}

// DueTask pairs a holding task with the holding context the reminder sweep
// needs to post a message.
type DueTask struct {
	Task      domain.HoldingTask
	ChannelID string
	Mention   string
}

type HoldingTaskRepo interface {
	Create(ctx context.Context, t *domain.HoldingTask) error
	GetByID(ctx context.Context, id string) (*domain.HoldingTask, error)
	ListByHolding(ctx context.Context, holdingID string) ([]*domain.HoldingTask, error)
	// ListDue returns un-reminded tasks whose due date (holding date minus
	// lead time) falls on or before the given day.
	ListDue(ctx context.Context, now time.Time) ([]DueTask, error)
	Update(ctx context.Context, t *domain.HoldingTask) error
	MarkReminded(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
