package attransit

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleSearchStop(w http.ResponseWriter, r *http.Request) {
	name, err := normalizeName(r.URL.Query().Get("name"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	res, err := s.svc.SearchStop(r.Context(), name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleStopTrips(w http.ResponseWriter, r *http.Request) {
	stopID, err := normalizeStopID(chi.URLParam(r, "stopID"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	res, err := s.svc.GetStopTripsByStopID(r.Context(), stopID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleStopRealtime(w http.ResponseWriter, r *http.Request) {
	stopID, err := normalizeStopID(chi.URLParam(r, "stopID"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	res, err := s.svc.GetStopRealtimeUpdates(r.Context(), stopID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
