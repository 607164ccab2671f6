package attransit

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

const maxQueryLen = 256

// QueryError reports an unusable request parameter.
type QueryError struct{ Msg string }

func (e *QueryError) Error() string { return e.Msg }

func normalizeName(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !utf8.ValidString(s) {
		return "", &QueryError{Msg: "name must be valid UTF-8."}
	}
	if len(s) > maxQueryLen {
		return "", &QueryError{Msg: "name is too long."}
	}
	return s, nil
}

func normalizeStopID(s string) (string, error) {
	// chi leaves percent-encoding in path params
	if u, err := url.PathUnescape(s); err == nil {
		s = u
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", &QueryError{Msg: "You must provide a stop id."}
	}
	if len(s) > maxQueryLen {
		return "", &QueryError{Msg: "stop id is too long."}
	}
	return s, nil
}
