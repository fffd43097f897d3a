// Package server exposes the admin API over HTTP. Routes live under
// /api/v1 and speak JSON; errors come back as {"error": "..."} with the
// status mapped from the domain error.
package server

import (
	"compress/gzip"
	"log/slog"
	"net/http"

	"github.com/alexanderramin/stagehand/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	slogchi "github.com/samber/slog-chi"
)

type Server struct {
	events       service.EventService
	defaultTasks service.DefaultTaskService
	holdings     service.HoldingService
	holdingTasks service.HoldingTaskService
	channels     service.ChannelDirectory
	logger       *slog.Logger
}

func New(
	events service.EventService,
	defaultTasks service.DefaultTaskService,
	holdings service.HoldingService,
	holdingTasks service.HoldingTaskService,
	channels service.ChannelDirectory,
	logger *slog.Logger,
) *Server {
	return &Server{
		events:       events,
		defaultTasks: defaultTasks,
		holdings:     holdings,
		holdingTasks: holdingTasks,
		channels:     channels,
		logger:       logger,
	}
}

// Router builds the HTTP handler with the full /api/v1 surface mounted.
func (s *Server) Router() http.Handler {
	root := chi.NewRouter()

	api := chi.NewRouter()
	api.Use(slogchi.New(s.logger))
	api.Use(middleware.Recoverer)
	api.Use(middleware.Compress(gzip.BestSpeed))

	api.Post("/events", s.createEvent)
	api.Get("/events", s.listEvents)
	api.Get("/events/{eventID}", s.getEvent)
	api.Put("/events/{eventID}", s.updateEvent)
	api.Delete("/events/{eventID}", s.deleteEvent)

	api.Get("/events/{eventID}/default-tasks", s.listDefaultTasks)
	api.Post("/events/{eventID}/default-tasks", s.createDefaultTask)
	api.Patch("/default-tasks/{taskID}", s.updateDefaultTask)
	api.Delete("/default-tasks/{taskID}", s.deleteDefaultTask)

	api.Post("/holdings", s.createHolding)
	api.Get("/holdings", s.listHoldings)
	api.Get("/holdings/{holdingID}", s.getHolding)
	api.Patch("/holdings/{holdingID}", s.updateHolding)
	api.Delete("/holdings/{holdingID}", s.deleteHolding)

	api.Get("/holdings/{holdingID}/tasks", s.listHoldingTasks)
	api.Post("/holdings/{holdingID}/tasks", s.createHoldingTask)
	api.Patch("/holding-tasks/{taskID}", s.updateHoldingTask)
	api.Delete("/holding-tasks/{taskID}", s.deleteHoldingTask)

	api.Get("/channels", s.listChannels)

	root.Mount("/api/v1", api)
	return root
}
