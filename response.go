package attransit

import (
	"encoding/json"
	"errors"
	"net/http"
)

type errorPayload struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Kind           string `json:"kind"`
	Description    string `json:"description"`
	UpstreamStatus int    `json:"upstream_status,omitempty"`
	RequestID      string `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusFor maps a Service error to the HTTP status and error kind reported
// to API callers.
func statusFor(err error) (int, errorBody) {
	var (
		qe  *QueryError
		ce  *ConfigurationError
		re  *RemoteAPIError
		te  *TransportError
		pe  *ParseError
		out errorBody
	)
	out.Description = err.Error()
	switch {
	case errors.As(err, &qe):
		out.Kind = "query"
		return http.StatusBadRequest, out
	case errors.As(err, &re):
		out.Kind = "remote_api"
		out.UpstreamStatus = re.StatusCode
		return http.StatusBadGateway, out
	case errors.As(err, &te):
		out.Kind = "transport"
		return http.StatusGatewayTimeout, out
	case errors.As(err, &pe):
		out.Kind = "parse"
		return http.StatusBadGateway, out
	case errors.As(err, &ce):
		out.Kind = "configuration"
		return http.StatusInternalServerError, out
	default:
		out.Kind = "internal"
		return http.StatusInternalServerError, out
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := statusFor(err)
	body.RequestID = RequestIDFrom(r.Context())
	s.logger.Warn().
		Err(err).
		Str("request_id", body.RequestID).
		Str("kind", body.Kind).
		Int("status", status).
		Msg("request failed")
	writeJSON(w, status, errorPayload{Error: body})
}
