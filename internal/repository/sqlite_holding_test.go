package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/stagehand/internal/domain"
	"github.com/alexanderramin/stagehand/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHoldingRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	eventRepo := NewSQLiteEventRepo(db)
	holdingRepo := NewSQLiteHoldingRepo(db)

	event := testutil.NewTestEvent("Game Exhibition")
	require.NoError(t, eventRepo.Create(ctx, event))

	date := time.Date(2026, time.April, 18, 0, 0, 0, 0, time.UTC)
	holding := testutil.NewTestHolding("21st Game Exhibition",
		testutil.WithOriginEvent(event.ID),
		testutil.WithHoldingDate(date),
		testutil.WithChannel("ch-event"),
		testutil.WithMention("@staff"))
	require.NoError(t, holdingRepo.Create(ctx, holding))

	fetched, err := holdingRepo.GetByID(ctx, holding.ID)
	require.NoError(t, err)
	assert.Equal(t, "21st Game Exhibition", fetched.Name)
	assert.True(t, fetched.Date.Equal(date))
	assert.Equal(t, "ch-event", fetched.ChannelID)
	assert.Equal(t, "@staff", fetched.Mention)
	require.NotNil(t, fetched.EventID)
	assert.Equal(t, event.ID, *fetched.EventID)
}

func TestHoldingRepo_Create_Freestanding(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	holdingRepo := NewSQLiteHoldingRepo(db)

	holding := testutil.NewTestHolding("One-off meetup")
	require.NoError(t, holdingRepo.Create(ctx, holding))

	fetched, err := holdingRepo.GetByID(ctx, holding.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.EventID)
}

func TestHoldingRepo_ListByEvent(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	eventRepo := NewSQLiteEventRepo(db)
	holdingRepo := NewSQLiteHoldingRepo(db)

	event := testutil.NewTestEvent("Game Exhibition")
	require.NoError(t, eventRepo.Create(ctx, event))

	require.NoError(t, holdingRepo.Create(ctx,
		testutil.NewTestHolding("20th", testutil.WithOriginEvent(event.ID),
			testutil.WithHoldingDate(time.Date(2025, time.December, 20, 0, 0, 0, 0, time.UTC)))))
	require.NoError(t, holdingRepo.Create(ctx,
		testutil.NewTestHolding("21st", testutil.WithOriginEvent(event.ID),
			testutil.WithHoldingDate(time.Date(2026, time.April, 18, 0, 0, 0, 0, time.UTC)))))
	require.NoError(t, holdingRepo.Create(ctx, testutil.NewTestHolding("Unrelated")))

	holdings, err := holdingRepo.ListByEvent(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, holdings, 2)
	assert.Equal(t, "21st", holdings[0].Name, "newest date first")
	assert.Equal(t, "20th", holdings[1].Name)
}

func TestHoldingRepo_DeletingOriginEventKeepsHolding(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	eventRepo := NewSQLiteEventRepo(db)
	holdingRepo := NewSQLiteHoldingRepo(db)

	event := testutil.NewTestEvent("Game Exhibition")
	require.NoError(t, eventRepo.Create(ctx, event))

	holding := testutil.NewTestHolding("21st", testutil.WithOriginEvent(event.ID))
	require.NoError(t, holdingRepo.Create(ctx, holding))

	require.NoError(t, eventRepo.Delete(ctx, event.ID))

	fetched, err := holdingRepo.GetByID(ctx, holding.ID)
	require.NoError(t, err, "holding survives origin event deletion")
	assert.Nil(t, fetched.EventID, "origin link is cleared")
}

func TestHoldingRepo_UpdateAndDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	holdingRepo := NewSQLiteHoldingRepo(db)

	holding := testutil.NewTestHolding("21st Game Exhibition")
	require.NoError(t, holdingRepo.Create(ctx, holding))

	holding.Name = "21st Game Exhibition (rescheduled)"
	holding.Date = time.Date(2026, time.May, 9, 0, 0, 0, 0, time.UTC)
	require.NoError(t, holdingRepo.Update(ctx, holding))

	fetched, err := holdingRepo.GetByID(ctx, holding.ID)
	require.NoError(t, err)
	assert.Equal(t, "21st Game Exhibition (rescheduled)", fetched.Name)
	assert.Equal(t, time.May, fetched.Date.Month())

	require.NoError(t, holdingRepo.Delete(ctx, holding.ID))
	_, err = holdingRepo.GetByID(ctx, holding.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
