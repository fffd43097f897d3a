package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/alexanderramin/stagehand/internal/domain"
	"github.com/go-chi/chi/v5"
)

type createHoldingRequest struct {
	Name      string `json:"name"`
	Date      string `json:"date"`
	ChannelID string `json:"channelId"`
	Mention   string `json:"mention"`
	EventID   string `json:"eventId"`
}

type updateHoldingRequest struct {
	Name      *string `json:"name,omitempty"`
	Date      *string `json:"date,omitempty"`
	ChannelID *string `json:"channelId,omitempty"`
	Mention   *string `json:"mention,omitempty"`
}

type holdingResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Date      string `json:"date"`
	ChannelID string `json:"channelId"`
	Mention   string `json:"mention"`
	EventID   string `json:"eventId,omitempty"`
}

func toHoldingResponse(h *domain.Holding) holdingResponse {
	res := holdingResponse{
		ID:        h.ID,
		Name:      h.Name,
		Date:      h.Date.Format(time.DateOnly),
		ChannelID: h.ChannelID,
		Mention:   h.Mention,
	}
	if h.EventID != nil {
		res.EventID = *h.EventID
	}
	return res
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be in YYYY-MM-DD format", domain.ErrInvalid)
	}
	return d, nil
}

// createHolding writes the holding and clones the origin event's default
// tasks into it, all in one transaction.
func (s *Server) createHolding(w http.ResponseWriter, r *http.Request) {
	var req createHoldingRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	holding := &domain.Holding{
		Name:      req.Name,
		ChannelID: req.ChannelID,
		Mention:   req.Mention,
	}
	if req.EventID != "" {
		holding.EventID = &req.EventID
	}
	if req.Date != "" {
		date, err := parseDate(req.Date)
		if err != nil {
			s.writeError(w, err)
			return
		}
		holding.Date = date
	}

	if _, err := s.holdings.CreateWithTasks(r.Context(), holding); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toHoldingResponse(holding))
}

func (s *Server) listHoldings(w http.ResponseWriter, r *http.Request) {
	var (
		holdings []*domain.Holding
		err      error
	)
	if sourceEventID := r.URL.Query().Get("source_event_id"); sourceEventID != "" {
		holdings, err = s.holdings.ListByEvent(r.Context(), sourceEventID)
	} else {
		holdings, err = s.holdings.List(r.Context())
	}
	if err != nil {
		s.writeError(w, err)
		return
	}

	res := make([]holdingResponse, len(holdings))
	for i, h := range holdings {
		res[i] = toHoldingResponse(h)
	}
	s.writeJSON(w, http.StatusOK, res)
}

func (s *Server) getHolding(w http.ResponseWriter, r *http.Request) {
	holding, err := s.holdings.GetByID(r.Context(), chi.URLParam(r, "holdingID"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toHoldingResponse(holding))
}

// updateHolding applies a partial update. Absent fields keep their current
// values; the origin event link is fixed at creation and cannot change.
func (s *Server) updateHolding(w http.ResponseWriter, r *http.Request) {
	var req updateHoldingRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	holding, err := s.holdings.GetByID(r.Context(), chi.URLParam(r, "holdingID"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	if req.Name != nil {
		holding.Name = *req.Name
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			s.writeError(w, err)
			return
		}
		holding.Date = date
	}
	if req.ChannelID != nil {
		holding.ChannelID = *req.ChannelID
	}
	if req.Mention != nil {
		holding.Mention = *req.Mention
	}

	if err := s.holdings.Update(r.Context(), holding); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toHoldingResponse(holding))
}

func (s *Server) deleteHolding(w http.ResponseWriter, r *http.Request) {
	if err := s.holdings.Delete(r.Context(), chi.URLParam(r, "holdingID")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
