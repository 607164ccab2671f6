package atapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/theoremus-urban-solutions/auckland-transport/config"
)

const (
	// APIKeyHeader carries the subscription key on every request.
	APIKeyHeader = "Ocp-Apim-Subscription-Key"

	DefaultTimeout = 10 * time.Second

	acceptJSON = "application/json"
)

// Client issues authenticated GET requests against the Auckland Transport
// GTFS API. It holds no mutable state and is safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
	logger     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client. A client without a
// timeout gets the Client's timeout applied to a copy.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout bounds every request. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a client for baseURL authenticated with apiKey.
func NewClient(baseURL, apiKey string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, &config.ConfigurationError{Field: "transit.baseURL", Msg: "base URL is required"}
	}
	u, err := url.Parse(baseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, &config.ConfigurationError{Field: "transit.baseURL", Msg: "base URL must be an absolute http(s) URL", Err: err}
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, &config.ConfigurationError{Field: "transit.apiKey", Msg: "API key is required"}
	}

	c := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		timeout: DefaultTimeout,
		logger:  log.Logger,
	}
	for _, opt := range opts {
		opt(c)
	}

	switch {
	case c.httpClient == nil:
		c.httpClient = &http.Client{Timeout: c.timeout}
	case c.httpClient.Timeout == 0:
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c, nil
}

// BaseURL returns the configured API root without a trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// FetchStops fetches the full stop collection for a service date. The API
// has no substring search, so name filtering is left to the caller.
func (c *Client) FetchStops(ctx context.Context, date string) ([]byte, error) {
	u := fmt.Sprintf("%s/stops?filter[date]=%s", c.baseURL, url.QueryEscape(date))
	return c.Get(ctx, u, acceptJSON)
}

// FetchStopTrips fetches the trips calling at stopID on date from hour onwards.
func (c *Client) FetchStopTrips(ctx context.Context, stopID, date, hour string) ([]byte, error) {
	u := fmt.Sprintf("%s/stops/%s/stoptrips?filter[date]=%s&filter[start_hour]=%s",
		c.baseURL, url.PathEscape(stopID), url.QueryEscape(date), url.QueryEscape(hour))
	return c.Get(ctx, u, acceptJSON)
}

// Get performs one authenticated GET and returns the raw body.
// Non-2xx responses fail with *RemoteAPIError, everything else that stops
// a response from being read fails with *TransportError. There are no retries.
func (c *Client) Get(ctx context.Context, rawURL, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &TransportError{URL: rawURL, Err: err}
	}
	req.Header.Set(APIKeyHeader, c.apiKey)
	req.Header.Set("Cache-Control", "no-cache")
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Err(err).Str("url", rawURL).Dur("elapsed", time.Since(start)).Msg("upstream request failed")
		return nil, &TransportError{URL: rawURL, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: rawURL, Err: err}
	}

	c.logger.Debug().
		Str("url", rawURL).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Dur("elapsed", time.Since(start)).
		Msg("upstream request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RemoteAPIError{StatusCode: resp.StatusCode, Body: string(body), URL: rawURL}
	}
	return body, nil
}
