package service

import (
	"context"

	"github.com/alexanderramin/stagehand/internal/domain"
)

type EventService interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, query string) ([]*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id string) error
}

type DefaultTaskService interface {
	Create(ctx context.Context, t *domain.DefaultTask) error
	GetByID(ctx context.Context, id string) (*domain.DefaultTask, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.DefaultTask, error)
	Update(ctx context.Context, t *domain.DefaultTask) error
	Delete(ctx context.Context, id string) error
}

type HoldingService interface {
	// CreateWithTasks persists the holding and, when it has an origin event,
	// clones that event's default tasks into holding tasks. The holding and
	// all clones are written in one transaction. Returns the cloned tasks.
	CreateWithTasks(ctx context.Context, h *domain.Holding) ([]*domain.HoldingTask, error)
	GetByID(ctx context.Context, id string) (*domain.Holding, error)
	List(ctx context.Context) ([]*domain.Holding, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Holding, error)
	Update(ctx context.Context, h *domain.Holding) error
	Delete(ctx context.Context, id string) error
}

type HoldingTaskService interface {
	Create(ctx context.Context, t *domain.HoldingTask) error
	GetByID(ctx context.Context, id string) (*domain.HoldingTask, error)
	ListByHolding(ctx context.Context, holdingID string) ([]*domain.HoldingTask, error)
	Update(ctx context.Context, t *domain.HoldingTask) error
	Delete(ctx context.Context, id string) error
}

// ChannelDirectory resolves the chat service's channel list. Channels are
// read-only here; they are created and owned by the chat service.
type ChannelDirectory interface {
	List(ctx context.Context) ([]domain.Channel, error)
}

// Notifier posts a reminder message to a chat channel.
type Notifier interface {
	Post(ctx context.Context, channelID, content string) error
}
