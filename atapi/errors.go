package atapi

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// TransportError reports a request that never produced a response: DNS,
// connection, timeout or cancellation failures.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Timeout reports whether the request hit the client timeout or a context deadline.
func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var nerr net.Error
	return errors.As(e.Err, &nerr) && nerr.Timeout()
}

// RemoteAPIError reports a non-2xx response. Body is kept for diagnostics.
type RemoteAPIError struct {
	StatusCode int
	Body       string
	URL        string
}

const maxErrorBody = 512

func (e *RemoteAPIError) Error() string {
	body := e.Body
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody] + "..."
	}
	if body == "" {
		return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("HTTP %d from %s: %s", e.StatusCode, e.URL, body)
}
