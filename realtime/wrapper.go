package realtime

import (
	"context"
	"errors"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/protobuf/proto"

	"github.com/theoremus-urban-solutions/auckland-transport/gtfs"
	"github.com/theoremus-urban-solutions/auckland-transport/utils"
)

const acceptProtobuf = "application/x-protobuf"

// Fetcher performs an authenticated GET. *atapi.Client satisfies it.
type Fetcher interface {
	Get(ctx context.Context, rawURL, accept string) ([]byte, error)
}

// Feed reads a GTFS-Realtime trip updates endpoint.
type Feed struct {
	fetcher        Fetcher
	tripUpdatesURL string
	logger         zerolog.Logger
}

// NewFeed creates a feed for tripUpdatesURL fetched through f.
func NewFeed(f Fetcher, tripUpdatesURL string) *Feed {
	return &Feed{fetcher: f, tripUpdatesURL: tripUpdatesURL, logger: log.Logger}
}

// WithLogger returns a copy of the feed logging to l.
func (fd *Feed) WithLogger(l zerolog.Logger) *Feed {
	c := *fd
	c.logger = l
	return &c
}

// Fetch downloads and indexes the current trip updates. Nothing is kept
// between calls.
func (fd *Feed) Fetch(ctx context.Context) (*Snapshot, error) {
	b, err := fd.fetcher.Get(ctx, fd.tripUpdatesURL, acceptProtobuf)
	if err != nil {
		return nil, err
	}
	snap, err := Decode(b)
	if err != nil {
		return nil, err
	}
	fd.logger.Debug().Int("stops", len(snap.byStop)).Int64("timestamp", snap.timestamp).Msg("decoded trip updates")
	return snap, nil
}

// StopUpdates fetches the feed and returns the predictions for one stop.
func (fd *Feed) StopUpdates(ctx context.Context, stopID string) (StopUpdates, error) {
	snap, err := fd.Fetch(ctx)
	if err != nil {
		return StopUpdates{}, err
	}
	return StopUpdates{
		StopID:    stopID,
		Timestamp: utils.Iso8601FromUnixSeconds(snap.Timestamp()),
		Data:      snap.ForStop(stopID),
	}, nil
}

// Snapshot indexes one decoded FeedMessage by stop.
type Snapshot struct {
	timestamp int64
	byStop    map[string][]StopTimeUpdate
}

var errNoHeader = errors.New("feed message has no header")

// Decode parses a protobuf FeedMessage. Entities without a trip id and stop
// time updates without a stop id are skipped, as they cannot be addressed.
func Decode(b []byte) (*Snapshot, error) {
	var fm gtfsrtpb.FeedMessage
	if err := proto.Unmarshal(b, &fm); err != nil {
		return nil, &gtfs.ParseError{Resource: "tripupdate", Index: -1, Err: err}
	}
	if fm.Header == nil {
		return nil, &gtfs.ParseError{Resource: "tripupdate", Index: -1, Field: "header", Err: errNoHeader}
	}

	s := &Snapshot{byStop: map[string][]StopTimeUpdate{}}
	if fm.Header.Timestamp != nil {
		s.timestamp = int64(*fm.Header.Timestamp)
	}

	for _, e := range fm.Entity {
		tu := e.TripUpdate
		if tu == nil || tu.Trip == nil || tu.Trip.TripId == nil {
			continue
		}
		base := StopTimeUpdate{TripID: *tu.Trip.TripId}
		if tu.Trip.RouteId != nil {
			base.RouteID = *tu.Trip.RouteId
		}
		if tu.Trip.StartDate != nil {
			base.StartDate = *tu.Trip.StartDate
		}
		if tu.Vehicle != nil && tu.Vehicle.Id != nil {
			base.VehicleID = *tu.Vehicle.Id
		}

		for _, stu := range tu.StopTimeUpdate {
			if stu.StopId == nil {
				continue
			}
			u := base
			u.StopID = *stu.StopId
			if stu.StopSequence != nil {
				u.StopSequence = *stu.StopSequence
			}
			if stu.Arrival != nil {
				if stu.Arrival.Delay != nil {
					d := *stu.Arrival.Delay
					u.ArrivalDelay = &d
				}
				if stu.Arrival.Time != nil {
					u.ArrivalTime = int64(*stu.Arrival.Time)
				}
			}
			if stu.Departure != nil {
				if stu.Departure.Delay != nil {
					d := *stu.Departure.Delay
					u.DepartureDelay = &d
				}
				if stu.Departure.Time != nil {
					u.DepartureTime = int64(*stu.Departure.Time)
				}
			}
			// GetScheduleRelationship falls back to the proto default, SCHEDULED.
			u.ScheduleRelationship = stu.GetScheduleRelationship().String()
			s.byStop[u.StopID] = append(s.byStop[u.StopID], u)
		}
	}
	return s, nil
}

// Timestamp is the feed header timestamp in Unix seconds.
func (s *Snapshot) Timestamp() int64 { return s.timestamp }

// ForStop returns the updates for stopID in feed order. The result is never nil.
func (s *Snapshot) ForStop(stopID string) []StopTimeUpdate {
	src := s.byStop[stopID]
	out := make([]StopTimeUpdate, len(src))
	copy(out, src)
	return out
}
