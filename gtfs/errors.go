package gtfs

import "fmt"

// ParseError reports a response that does not match the expected envelope.
// Index is the position of the offending resource in data, or -1 when the
// envelope itself is malformed.
type ParseError struct {
	Resource string
	Index    int
	ID       string
	Field    string
	Err      error
}

func (e *ParseError) Error() string {
	msg := "parse " + e.Resource + " response"
	if e.Index >= 0 {
		msg += fmt.Sprintf(": resource %d", e.Index)
		if e.ID != "" {
			msg += fmt.Sprintf(" (id %q)", e.ID)
		}
	}
	if e.Field != "" {
		msg += ": field " + e.Field
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }
