package server

import (
	"net/http"

	"github.com/alexanderramin/stagehand/internal/domain"
	"github.com/go-chi/chi/v5"
)

type eventRequest struct {
	Name string `json:"name"`
}

type eventResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func toEventResponse(e *domain.Event) eventResponse {
	return eventResponse{ID: e.ID, Name: e.Name}
}

func (s *Server) createEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	event := &domain.Event{Name: req.Name}
	if err := s.events.Create(r.Context(), event); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toEventResponse(event))
}

// listEvents returns every event, or only the ones whose name contains
// the q parameter (case-insensitive).
func (s *Server) listEvents(w http.ResponseWriter, r *http.Request) {
	events, err := s.events.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	res := make([]eventResponse, len(events))
	for i, e := range events {
		res[i] = toEventResponse(e)
	}
	s.writeJSON(w, http.StatusOK, res)
}

func (s *Server) getEvent(w http.ResponseWriter, r *http.Request) {
	event, err := s.events.GetByID(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toEventResponse(event))
}

func (s *Server) updateEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	event, err := s.events.GetByID(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	event.Name = req.Name

	if err := s.events.Update(r.Context(), event); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toEventResponse(event))
}

func (s *Server) deleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := s.events.Delete(r.Context(), chi.URLParam(r, "eventID")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
