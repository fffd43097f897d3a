package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexanderramin/stagehand/internal/domain"
	"github.com/alexanderramin/stagehand/internal/repository"
	"github.com/alexanderramin/stagehand/internal/service"
	"github.com/alexanderramin/stagehand/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	events := repository.NewSQLiteEventRepo(database)
	defaultTasks := repository.NewSQLiteDefaultTaskRepo(database)
	holdings := repository.NewSQLiteHoldingRepo(database)
	holdingTasks := repository.NewSQLiteHoldingTaskRepo(database)

	channels := &testutil.FakeChannelDirectory{Channels: []domain.Channel{
		{ID: "ch-1", Name: "event"},
		{ID: "ch-2", Name: "event/exhibition"},
	}}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := New(
		service.NewEventService(events),
		service.NewDefaultTaskService(defaultTasks, events),
		service.NewHoldingService(holdings, defaultTasks, events, uow),
		service.NewHoldingTaskService(holdingTasks, holdings),
		channels,
		logger,
	)
	return srv.Router()
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeInto[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

func TestEventLifecycle(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/events", map[string]string{"name": "Game Exhibition"})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeInto[eventResponse](t, rec)
	require.NotEmpty(t, created.ID)

	rec = doJSON(t, h, http.MethodGet, "/api/v1/events/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Game Exhibition", decodeInto[eventResponse](t, rec).Name)

	rec = doJSON(t, h, http.MethodPut, "/api/v1/events/"+created.ID, map[string]string{"name": "Game Showcase"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Game Showcase", decodeInto[eventResponse](t, rec).Name)

	rec = doJSON(t, h, http.MethodDelete, "/api/v1/events/"+created.ID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/v1/events/"+created.ID, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, decodeInto[map[string]string](t, rec)["error"])
}

func TestListEvents_Search(t *testing.T) {
	h := newTestServer(t)

	for _, name := range []string{"Game Exhibition", "Summer Camp", "Winter Camp"} {
		rec := doJSON(t, h, http.MethodPost, "/api/v1/events", map[string]string{"name": name})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, h, http.MethodGet, "/api/v1/events?q=camp", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeInto[[]eventResponse](t, rec), 2)

	rec = doJSON(t, h, http.MethodGet, "/api/v1/events", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeInto[[]eventResponse](t, rec), 3)
}

func TestCreateEvent_Validation(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/events", map[string]string{"name": ""})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeInto[map[string]string](t, rec)["error"], "name")
}

func TestCreateEvent_MalformedBody(t *testing.T) {
	h := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDefaultTaskLifecycle(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/events", map[string]string{"name": "Game Exhibition"})
	event := decodeInto[eventResponse](t, rec)

	rec = doJSON(t, h, http.MethodPost, "/api/v1/events/"+event.ID+"/default-tasks", map[string]any{
		"name": "Book the venue", "daysBefore": 30, "description": "call the hall",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	task := decodeInto[defaultTaskResponse](t, rec)
	assert.Equal(t, event.ID, task.EventID)

	// Lead time below one day is rejected for templates.
	rec = doJSON(t, h, http.MethodPost, "/api/v1/events/"+event.ID+"/default-tasks", map[string]any{
		"name": "Same-day task", "daysBefore": 0,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, http.MethodPatch, "/api/v1/default-tasks/"+task.ID, map[string]any{"daysBefore": 14})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 14, decodeInto[defaultTaskResponse](t, rec).DaysBefore)

	rec = doJSON(t, h, http.MethodGet, "/api/v1/events/"+event.ID+"/default-tasks", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeInto[[]defaultTaskResponse](t, rec), 1)

	rec = doJSON(t, h, http.MethodDelete, "/api/v1/default-tasks/"+task.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCreateHolding_ClonesDefaultTasks(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/events", map[string]string{"name": "Game Exhibition"})
	event := decodeInto[eventResponse](t, rec)

	for i, name := range []string{"Book the venue", "Announce the date"} {
		rec = doJSON(t, h, http.MethodPost, "/api/v1/events/"+event.ID+"/default-tasks", map[string]any{
			"name": name, "daysBefore": 30 - i*10,
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec = doJSON(t, h, http.MethodPost, "/api/v1/holdings", map[string]string{
		"name":      "Game Exhibition 2026",
		"date":      "2026-04-18",
		"channelId": "ch-2",
		"mention":   "@staff",
		"eventId":   event.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	holding := decodeInto[holdingResponse](t, rec)
	assert.Equal(t, event.ID, holding.EventID)
	assert.Equal(t, "2026-04-18", holding.Date)

	rec = doJSON(t, h, http.MethodGet, "/api/v1/holdings/"+holding.ID+"/tasks", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	tasks := decodeInto[[]holdingTaskResponse](t, rec)
	require.Len(t, tasks, 2)
	for _, task := range tasks {
		assert.Equal(t, holding.ID, task.HoldingID)
		assert.False(t, task.Reminded)
	}
}

func TestCreateHolding_WithoutOrigin(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/holdings", map[string]string{
		"name":      "One-off meetup",
		"date":      "2026-06-01",
		"channelId": "ch-1",
		"mention":   "@staff",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	holding := decodeInto[holdingResponse](t, rec)
	assert.Empty(t, holding.EventID)

	rec = doJSON(t, h, http.MethodGet, "/api/v1/holdings/"+holding.ID+"/tasks", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeInto[[]holdingTaskResponse](t, rec))
}

func TestCreateHolding_UnknownOrigin(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/holdings", map[string]string{
		"name":      "Orphan",
		"date":      "2026-06-01",
		"channelId": "ch-1",
		"mention":   "@staff",
		"eventId":   "no-such-event",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateHolding_BadDate(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/holdings", map[string]string{
		"name":      "Game Exhibition 2026",
		"date":      "18/04/2026",
		"channelId": "ch-1",
		"mention":   "@staff",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeInto[map[string]string](t, rec)["error"], "YYYY-MM-DD")
}

func TestListHoldings_FilterBySourceEvent(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/events", map[string]string{"name": "Game Exhibition"})
	event := decodeInto[eventResponse](t, rec)

	for i := range 2 {
		rec = doJSON(t, h, http.MethodPost, "/api/v1/holdings", map[string]string{
			"name": fmt.Sprintf("Exhibition #%d", i), "date": "2026-04-18",
			"channelId": "ch-1", "mention": "@staff", "eventId": event.ID,
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}
	rec = doJSON(t, h, http.MethodPost, "/api/v1/holdings", map[string]string{
		"name": "Freestanding", "date": "2026-05-01", "channelId": "ch-1", "mention": "@staff",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/v1/holdings?source_event_id="+event.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeInto[[]holdingResponse](t, rec), 2)

	rec = doJSON(t, h, http.MethodGet, "/api/v1/holdings", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeInto[[]holdingResponse](t, rec), 3)
}

func TestPatchHolding_PartialUpdate(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/holdings", map[string]string{
		"name": "Game Exhibition 2026", "date": "2026-04-18", "channelId": "ch-1", "mention": "@staff",
	})
	holding := decodeInto[holdingResponse](t, rec)

	rec = doJSON(t, h, http.MethodPatch, "/api/v1/holdings/"+holding.ID, map[string]string{"date": "2026-04-25"})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeInto[holdingResponse](t, rec)
	assert.Equal(t, "2026-04-25", updated.Date)
	assert.Equal(t, "Game Exhibition 2026", updated.Name, "absent fields keep their values")
	assert.Equal(t, "ch-1", updated.ChannelID)
}

func TestHoldingTaskLifecycle(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/holdings", map[string]string{
		"name": "Game Exhibition 2026", "date": "2026-04-18", "channelId": "ch-1", "mention": "@staff",
	})
	holding := decodeInto[holdingResponse](t, rec)

	rec = doJSON(t, h, http.MethodPost, "/api/v1/holdings/"+holding.ID+"/tasks", map[string]any{
		"name": "Open the doors", "daysBefore": 0,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	task := decodeInto[holdingTaskResponse](t, rec)

	rec = doJSON(t, h, http.MethodPatch, "/api/v1/holding-tasks/"+task.ID, map[string]string{"name": "Open the doors at 9"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Open the doors at 9", decodeInto[holdingTaskResponse](t, rec).Name)

	rec = doJSON(t, h, http.MethodDelete, "/api/v1/holding-tasks/"+task.ID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/v1/holdings/"+holding.ID+"/tasks", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeInto[[]holdingTaskResponse](t, rec))
}

func TestDeleteHolding_Missing(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodDelete, "/api/v1/holdings/no-such-holding", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListChannels(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodGet, "/api/v1/channels", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	channels := decodeInto[[]domain.Channel](t, rec)
	require.Len(t, channels, 2)
	assert.Equal(t, "event/exhibition", channels[1].Name)
}
