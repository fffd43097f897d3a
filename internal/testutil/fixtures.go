package testutil

import (
	"time"

	"github.com/alexanderramin/stagehand/internal/domain"
	"github.com/google/uuid"
)

// Event options
type EventOption func(*domain.Event)

func NewTestEvent(name string, opts ...EventOption) *domain.Event {
	now := time.Now().UTC()
	e := &domain.Event{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// DefaultTask options
type DefaultTaskOption func(*domain.DefaultTask)

func WithTemplateLeadDays(d int) DefaultTaskOption {
	return func(t *domain.DefaultTask) {
		t.DaysBefore = d
	}
}

func WithTemplateDescription(desc string) DefaultTaskOption {
	return func(t *domain.DefaultTask) {
		t.Description = desc
	}
}

func NewTestDefaultTask(eventID, name string, opts ...DefaultTaskOption) *domain.DefaultTask {
	now := time.Now().UTC()
	t := &domain.DefaultTask{
		ID:         uuid.New().String(),
		EventID:    eventID,
		Name:       name,
		DaysBefore: 7,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Holding options
type HoldingOption func(*domain.Holding)

func WithOriginEvent(eventID string) HoldingOption {
	return func(h *domain.Holding) {
		h.EventID = &eventID
	}
}

func WithHoldingDate(d time.Time) HoldingOption {
	return func(h *domain.Holding) {
		h.Date = d
	}
}

func WithChannel(channelID string) HoldingOption {
	return func(h *domain.Holding) {
		h.ChannelID = channelID
	}
}

func WithMention(mention string) HoldingOption {
	return func(h *domain.Holding) {
		h.Mention = mention
	}
}

func NewTestHolding(name string, opts ...HoldingOption) *domain.Holding {
	now := time.Now().UTC()
	h := &domain.Holding{
		ID:        uuid.New().String(),
		Name:      name,
		Date:      now.AddDate(0, 1, 0),
		ChannelID: "ch-test",
		Mention:   "@staff",
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// HoldingTask options
type HoldingTaskOption func(*domain.HoldingTask)

func WithLeadDays(d int) HoldingTaskOption {
	return func(t *domain.HoldingTask) {
		t.DaysBefore = d
	}
}

func WithReminded() HoldingTaskOption {
	return func(t *domain.HoldingTask) {
		t.Reminded = true
	}
}

func NewTestHoldingTask(holdingID, name string, opts ...HoldingTaskOption) *domain.HoldingTask {
	now := time.Now().UTC()
	t := &domain.HoldingTask{
		ID:         uuid.New().String(),
		HoldingID:  holdingID,
		Name:       name,
		DaysBefore: 7,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
