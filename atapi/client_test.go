package atapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/auckland-transport/config"
)

func TestNewClient_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		apiKey  string
		field   string
	}{
		{"empty base url", "", "key", "transit.baseURL"},
		{"relative base url", "api.at.govt.nz/gtfs/v3", "key", "transit.baseURL"},
		{"unsupported scheme", "ftp://api.at.govt.nz", "key", "transit.baseURL"},
		{"empty key", "https://api.at.govt.nz/gtfs/v3", "  ", "transit.apiKey"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClient(tt.baseURL, tt.apiKey)
			assert.Nil(t, c)
			var cfgErr *config.ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestNewClient_AppliesBoundedTimeout(t *testing.T) {
	c, err := NewClient("https://api.at.govt.nz/gtfs/v3/", "key")
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeout, c.httpClient.Timeout)
	assert.Equal(t, "https://api.at.govt.nz/gtfs/v3", c.BaseURL())

	shared := &http.Client{}
	c, err = NewClient("https://api.at.govt.nz", "key", WithHTTPClient(shared), WithTimeout(3*time.Second))
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, c.httpClient.Timeout)
	assert.Zero(t, shared.Timeout, "caller's client must not be mutated")
}

func TestFetchStops_RequestShape(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": []}`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, "secret-key")
	require.NoError(t, err)

	body, err := c.FetchStops(context.Background(), "2025-10-16")
	require.NoError(t, err)
	assert.JSONEq(t, `{"data": []}`, string(body))

	require.NotNil(t, got)
	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "/stops", got.URL.Path)
	assert.Equal(t, "2025-10-16", got.URL.Query().Get("filter[date]"))
	assert.Equal(t, "secret-key", got.Header.Get(APIKeyHeader))
	assert.Equal(t, "no-cache", got.Header.Get("Cache-Control"))
	assert.Equal(t, "application/json", got.Header.Get("Accept"))
}

func TestFetchStopTrips_RequestShape(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		_, _ = w.Write([]byte(`{"data": []}`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL+"/gtfs/v3", "k")
	require.NoError(t, err)

	_, err = c.FetchStopTrips(context.Background(), "1001-1d3b6e3a", "2025-10-16", "07")
	require.NoError(t, err)

	assert.Equal(t, "/gtfs/v3/stops/1001-1d3b6e3a/stoptrips", got.URL.Path)
	assert.Equal(t, "2025-10-16", got.URL.Query().Get("filter[date]"))
	assert.Equal(t, "07", got.URL.Query().Get("filter[start_hour]"))
}

func TestFetchStopTrips_EscapesStopID(t *testing.T) {
	var rawPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`{"data": []}`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, "k")
	require.NoError(t, err)

	_, err = c.FetchStopTrips(context.Background(), "a/b c", "2025-10-16", "07")
	require.NoError(t, err)
	assert.Equal(t, "/stops/a%2Fb%20c/stoptrips", rawPath)
}

func TestGet_RemoteAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"statusCode": 401, "message": "Access denied due to missing subscription key."}`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, "k")
	require.NoError(t, err)

	body, err := c.FetchStops(context.Background(), "2025-10-16")
	assert.Nil(t, body)

	var apiErr *RemoteAPIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "missing subscription key")
	assert.Contains(t, err.Error(), "HTTP 401")
}

func TestGet_TransportErrorOnTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c, err := NewClient(srv.URL, "k", WithTimeout(50*time.Millisecond))
	require.NoError(t, err)

	_, err = c.FetchStops(context.Background(), "2025-10-16")

	var tErr *TransportError
	require.ErrorAs(t, err, &tErr)
	assert.True(t, tErr.Timeout())
}

func TestGet_TransportErrorOnCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": []}`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, "k")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = c.FetchStops(ctx, "2025-10-16")
	var tErr *TransportError
	require.ErrorAs(t, err, &tErr)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestGet_TransportErrorOnConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c, err := NewClient(url, "k")
	require.NoError(t, err)

	_, err = c.FetchStops(context.Background(), "2025-10-16")
	var tErr *TransportError
	require.ErrorAs(t, err, &tErr)
	assert.False(t, tErr.Timeout())
}

func TestRemoteAPIError_TruncatesBody(t *testing.T) {
	long := make([]byte, 2*maxErrorBody)
	for i := range long {
		long[i] = 'x'
	}
	err := &RemoteAPIError{StatusCode: 500, Body: string(long), URL: "http://x"}
	assert.Less(t, len(err.Error()), maxErrorBody+64)
}
