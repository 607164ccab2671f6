package realtime

// StopTimeUpdate is one GTFS-Realtime prediction for a trip calling at a stop.
// Delays are nil when the feed does not carry them; times are Unix seconds,
// 0 when unknown.
type StopTimeUpdate struct {
	TripID               string `json:"trip_id"`
	RouteID              string `json:"route_id,omitempty"`
	StartDate            string `json:"start_date,omitempty"`
	VehicleID            string `json:"vehicle_id,omitempty"`
	StopID               string `json:"stop_id"`
	StopSequence         uint32 `json:"stop_sequence"`
	ArrivalDelay         *int32 `json:"arrival_delay,omitempty"`
	DepartureDelay       *int32 `json:"departure_delay,omitempty"`
	ArrivalTime          int64  `json:"arrival_time,omitempty"`
	DepartureTime        int64  `json:"departure_time,omitempty"`
	ScheduleRelationship string `json:"schedule_relationship"`
}

// StopUpdates is the realtime view of a single stop.
type StopUpdates struct {
	StopID    string           `json:"stop_id"`
	Timestamp string           `json:"timestamp"`
	Data      []StopTimeUpdate `json:"data"`
}
