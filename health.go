package attransit

import (
	"net/http"

	"github.com/theoremus-urban-solutions/auckland-transport/utils"
)

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Realtime  bool   `json:"realtime"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Timestamp: utils.Iso8601Now(),
		Realtime:  s.svc.realtime != nil,
	})
}
