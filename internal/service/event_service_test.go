package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/stagehand/internal/domain"
	"github.com/alexanderramin/stagehand/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventService_Create(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	svc := NewEventService(r.events)

	event := &domain.Event{Name: "Game Exhibition"}
	require.NoError(t, svc.Create(ctx, event))
	assert.NotEmpty(t, event.ID, "id should be generated")
	assert.False(t, event.CreatedAt.IsZero())

	fetched, err := svc.GetByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, "Game Exhibition", fetched.Name)
}

func TestEventService_Create_RejectsEmptyName(t *testing.T) {
	r := setupRepos(t)
	svc := NewEventService(r.events)

	err := svc.Create(context.Background(), &domain.Event{})
	assert.ErrorIs(t, err, domain.ErrInvalid)
}

func TestEventService_List_Search(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	svc := NewEventService(r.events)

	for _, name := range []string{"Game Exhibition", "Summer Camp"} {
		require.NoError(t, svc.Create(ctx, &domain.Event{Name: name}))
	}

	matched, err := svc.List(ctx, "camp")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Summer Camp", matched[0].Name)
}

func TestEventService_Update(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	svc := NewEventService(r.events)

	event := &domain.Event{Name: "Game Exhibition"}
	require.NoError(t, svc.Create(ctx, event))

	before := event.UpdatedAt
	event.Name = "Game Showcase"
	require.NoError(t, svc.Update(ctx, event))
	assert.False(t, event.UpdatedAt.Before(before))

	fetched, err := svc.GetByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, "Game Showcase", fetched.Name)
}

func TestEventService_Delete(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	svc := NewEventService(r.events)

	event := &domain.Event{Name: "Game Exhibition"}
	require.NoError(t, svc.Create(ctx, event))
	require.NoError(t, svc.Delete(ctx, event.ID))

	_, err := svc.GetByID(ctx, event.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDefaultTaskService_RequiresOwningEvent(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	svc := NewDefaultTaskService(r.defaultTasks, r.events)

	task := &domain.DefaultTask{EventID: "no-such-event", Name: "Book the venue", DaysBefore: 30}
	err := svc.Create(ctx, task)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDefaultTaskService_CreateAndList(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	eventSvc := NewEventService(r.events)
	taskSvc := NewDefaultTaskService(r.defaultTasks, r.events)

	event := &domain.Event{Name: "Game Exhibition"}
	require.NoError(t, eventSvc.Create(ctx, event))

	task := &domain.DefaultTask{EventID: event.ID, Name: "Book the venue", DaysBefore: 30}
	require.NoError(t, taskSvc.Create(ctx, task))
	assert.NotEmpty(t, task.ID)

	tasks, err := taskSvc.ListByEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestDefaultTaskService_RejectsZeroLeadTime(t *testing.T) {
	r := setupRepos(t)
	svc := NewDefaultTaskService(r.defaultTasks, r.events)

	task := &domain.DefaultTask{EventID: "e", Name: "Book the venue", DaysBefore: 0}
	assert.ErrorIs(t, svc.Create(context.Background(), task), domain.ErrInvalid)
}

func TestHoldingTaskService_RequiresOwningHolding(t *testing.T) {
	r := setupRepos(t)
	svc := NewHoldingTaskService(r.holdingTasks, r.holdings)

	task := &domain.HoldingTask{HoldingID: "no-such-holding", Name: "Ad-hoc"}
	err := svc.Create(context.Background(), task)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHoldingTaskService_ManualTaskAfterClone(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	holdingSvc := newHoldingService(r)
	taskSvc := NewHoldingTaskService(r.holdingTasks, r.holdings)

	holding := testutil.NewTestHolding("One-off meetup")
	_, err := holdingSvc.CreateWithTasks(ctx, holding)
	require.NoError(t, err)

	task := &domain.HoldingTask{HoldingID: holding.ID, Name: "Order pizza", DaysBefore: 0}
	require.NoError(t, taskSvc.Create(ctx, task))

	tasks, err := taskSvc.ListByHolding(ctx, holding.ID)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}
