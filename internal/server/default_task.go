package server

import (
	"net/http"

	"github.com/alexanderramin/stagehand/internal/domain"
	"github.com/go-chi/chi/v5"
)

type createDefaultTaskRequest struct {
	Name        string `json:"name"`
	DaysBefore  int    `json:"daysBefore"`
	Description string `json:"description"`
}

type updateDefaultTaskRequest struct {
	Name        *string `json:"name,omitempty"`
	DaysBefore  *int    `json:"daysBefore,omitempty"`
	Description *string `json:"description,omitempty"`
}

type defaultTaskResponse struct {
	ID          string `json:"id"`
	EventID     string `json:"eventId"`
	Name        string `json:"name"`
	DaysBefore  int    `json:"daysBefore"`
	Description string `json:"description"`
}

func toDefaultTaskResponse(t *domain.DefaultTask) defaultTaskResponse {
	return defaultTaskResponse{
		ID:          t.ID,
		EventID:     t.EventID,
		Name:        t.Name,
		DaysBefore:  t.DaysBefore,
		Description: t.Description,
	}
}

func (s *Server) listDefaultTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.defaultTasks.ListByEvent(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	res := make([]defaultTaskResponse, len(tasks))
	for i, t := range tasks {
		res[i] = toDefaultTaskResponse(t)
	}
	s.writeJSON(w, http.StatusOK, res)
}

func (s *Server) createDefaultTask(w http.ResponseWriter, r *http.Request) {
	var req createDefaultTaskRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	task := &domain.DefaultTask{
		EventID:     chi.URLParam(r, "eventID"),
		Name:        req.Name,
		DaysBefore:  req.DaysBefore,
		Description: req.Description,
	}
	if err := s.defaultTasks.Create(r.Context(), task); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toDefaultTaskResponse(task))
}

func (s *Server) updateDefaultTask(w http.ResponseWriter, r *http.Request) {
	var req updateDefaultTaskRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	task, err := s.defaultTasks.GetByID(r.Context(), chi.URLParam(r, "taskID"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	if req.Name != nil {
		task.Name = *req.Name
	}
	if req.DaysBefore != nil {
		task.DaysBefore = *req.DaysBefore
	}
	if req.Description != nil {
		task.Description = *req.Description
	}

	if err := s.defaultTasks.Update(r.Context(), task); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toDefaultTaskResponse(task))
}

func (s *Server) deleteDefaultTask(w http.ResponseWriter, r *http.Request) {
	if err := s.defaultTasks.Delete(r.Context(), chi.URLParam(r, "taskID")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
