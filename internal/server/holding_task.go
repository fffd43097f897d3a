package server

import (
	"net/http"

	"github.com/alexanderramin/stagehand/internal/domain"
	"github.com/go-chi/chi/v5"
)

type createHoldingTaskRequest struct {
	Name        string `json:"name"`
	DaysBefore  int    `json:"daysBefore"`
	Description string `json:"description"`
}

type updateHoldingTaskRequest struct {
	Name        *string `json:"name,omitempty"`
	DaysBefore  *int    `json:"daysBefore,omitempty"`
	Description *string `json:"description,omitempty"`
}

type holdingTaskResponse struct {
	ID          string `json:"id"`
	HoldingID   string `json:"holdingId"`
	Name        string `json:"name"`
	DaysBefore  int    `json:"daysBefore"`
	Description string `json:"description"`
	Reminded    bool   `json:"reminded"`
}

func toHoldingTaskResponse(t *domain.HoldingTask) holdingTaskResponse {
	return holdingTaskResponse{
		ID:          t.ID,
		HoldingID:   t.HoldingID,
		Name:        t.Name,
		DaysBefore:  t.DaysBefore,
		Description: t.Description,
		Reminded:    t.Reminded,
	}
}

func (s *Server) listHoldingTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.holdingTasks.ListByHolding(r.Context(), chi.URLParam(r, "holdingID"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	res := make([]holdingTaskResponse, len(tasks))
	for i, t := range tasks {
		res[i] = toHoldingTaskResponse(t)
	}
	s.writeJSON(w, http.StatusOK, res)
}

// createHoldingTask adds a manual task to an existing holding. Unlike the
// clone at creation time, these can be due on the day itself.
func (s *Server) createHoldingTask(w http.ResponseWriter, r *http.Request) {
	var req createHoldingTaskRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	task := &domain.HoldingTask{
		HoldingID:   chi.URLParam(r, "holdingID"),
		Name:        req.Name,
		DaysBefore:  req.DaysBefore,
		Description: req.Description,
	}
	if err := s.holdingTasks.Create(r.Context(), task); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toHoldingTaskResponse(task))
}

func (s *Server) updateHoldingTask(w http.ResponseWriter, r *http.Request) {
	var req updateHoldingTaskRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	task, err := s.holdingTasks.GetByID(r.Context(), chi.URLParam(r, "taskID"))
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

	if err := s.holdingTasks.Update(r.Context(), task); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toHoldingTaskResponse(task))
}

func (s *Server) deleteHoldingTask(w http.ResponseWriter, r *http.Request) {
	if err := s.holdingTasks.Delete(r.Context(), chi.URLParam(r, "taskID")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
