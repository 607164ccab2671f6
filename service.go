package attransit

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"

	"github.com/theoremus-urban-solutions/auckland-transport/atapi"
	"github.com/theoremus-urban-solutions/auckland-transport/config"
	"github.com/theoremus-urban-solutions/auckland-transport/gtfs"
	"github.com/theoremus-urban-solutions/auckland-transport/realtime"
	"github.com/theoremus-urban-solutions/auckland-transport/utils"
)

// Service answers stop and stop-trip queries against the Auckland Transport
// API. Each call is a single fetch, parse and filter round trip; a Service is
// immutable after NewService and safe for concurrent use.
type Service struct {
	client   *atapi.Client
	realtime *realtime.Feed
	clock    utils.Clock
	loc      *time.Location
	logger   zerolog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	clock      utils.Clock
	httpClient *http.Client
	logger     *zerolog.Logger
}

// WithClock replaces the wall clock used to derive the service window.
func WithClock(c utils.Clock) ServiceOption {
	return func(o *serviceOptions) { o.clock = c }
}

// WithHTTPClient replaces the transport used for upstream requests.
func WithHTTPClient(hc *http.Client) ServiceOption {
	return func(o *serviceOptions) { o.httpClient = hc }
}

func WithLogger(l zerolog.Logger) ServiceOption {
	return func(o *serviceOptions) { o.logger = &l }
}

// NewService validates cfg and builds a Service. Invalid or missing
// credentials fail here with *config.ConfigurationError.
func NewService(cfg config.Config, opts ...ServiceOption) (*Service, error) {
	o := serviceOptions{clock: utils.SystemClock{}}
	for _, opt := range opts {
		opt(&o)
	}
	logger := log.Logger
	if o.logger != nil {
		logger = *o.logger
	}

	cfg = cfg.WithDefaults()
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	clientOpts := []atapi.Option{atapi.WithTimeout(cfg.Timeout()), atapi.WithLogger(logger)}
	if o.httpClient != nil {
		clientOpts = append(clientOpts, atapi.WithHTTPClient(o.httpClient))
	}
	client, err := atapi.NewClient(cfg.Transit.BaseURL, cfg.Transit.APIKey, clientOpts...)
	if err != nil {
		return nil, err
	}

	s := &Service{
		client: client,
		clock:  o.clock,
		loc:    loc,
		logger: logger,
	}
	if cfg.Transit.RealtimeURL != "" {
		s.realtime = realtime.NewFeed(client, cfg.Transit.RealtimeURL).WithLogger(logger)
	}
	return s, nil
}

// SearchStop returns the stops whose name contains name, compared with
// Unicode case folding. An empty name returns every stop. Upstream order is
// preserved and no match is an empty, non-nil collection.
func (s *Service) SearchStop(ctx context.Context, name string) (gtfs.StopResponse, error) {
	window := utils.CurrentServiceWindow(s.clock, s.loc)

	body, err := s.client.FetchStops(ctx, window.Date)
	if err != nil {
		return gtfs.StopResponse{}, err
	}
	all, err := gtfs.ParseStopResponse(body)
	if err != nil {
		return gtfs.StopResponse{}, err
	}

	res := FilterStopsByName(all, name)
	s.logger.Debug().
		Str("name", name).
		Str("date", window.Date).
		Int("total", len(all.Data)).
		Int("matched", len(res.Data)).
		Msg("search stop")
	return res, nil
}

// GetStopTripsByStopID returns the trips calling at stopID on the current
// service date from the current hour. An empty upstream data array, or an
// empty stopID, is an empty collection rather than an error.
func (s *Service) GetStopTripsByStopID(ctx context.Context, stopID string) (gtfs.StopTripResponse, error) {
	stopID = strings.TrimSpace(stopID)
	if stopID == "" {
		return gtfs.StopTripResponse{Data: []gtfs.StopTrip{}}, nil
	}

	window := utils.CurrentServiceWindow(s.clock, s.loc)
	body, err := s.client.FetchStopTrips(ctx, stopID, window.Date, window.Hour)
	if err != nil {
		return gtfs.StopTripResponse{}, err
	}
	res, err := gtfs.ParseStopTripResponse(body)
	if err != nil {
		return gtfs.StopTripResponse{}, err
	}

	s.logger.Debug().
		Str("stop_id", stopID).
		Str("date", window.Date).
		Str("hour", window.Hour).
		Int("trips", len(res.Data)).
		Msg("stop trips")
	return res, nil
}

// GetStopRealtimeUpdates returns the live predictions for stopID from the
// GTFS-Realtime trip updates feed.
func (s *Service) GetStopRealtimeUpdates(ctx context.Context, stopID string) (realtime.StopUpdates, error) {
	if s.realtime == nil {
		return realtime.StopUpdates{}, &config.ConfigurationError{Field: "transit.realtimeURL", Msg: "realtime feed is not configured"}
	}
	stopID = strings.TrimSpace(stopID)
	if stopID == "" {
		return realtime.StopUpdates{Data: []realtime.StopTimeUpdate{}}, nil
	}
	return s.realtime.StopUpdates(ctx, stopID)
}

// FilterStopsByName keeps the stops whose stop_name contains name under
// Unicode case folding, in their original order. Surrounding whitespace in
// name is ignored and an empty name keeps everything.
func FilterStopsByName(stops gtfs.StopResponse, name string) gtfs.StopResponse {
	name = strings.TrimSpace(name)
	out := gtfs.StopResponse{Data: make([]gtfs.Stop, 0, len(stops.Data))}
	if name == "" {
		out.Data = append(out.Data, stops.Data...)
		return out
	}

	fold := cases.Fold()
	needle := fold.String(name)
	for _, stop := range stops.Data {
		if strings.Contains(fold.String(stop.Attributes.StopName), needle) {
			out.Data = append(out.Data, stop)
		}
	}
	return out
}
