package server

import (
	"net/http"
)

// listChannels serves the chat service's channel directory for pickers.
func (s *Server) listChannels(w http.ResponseWriter, r *http.Request) {
	channels, err := s.channels.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, channels)
}
