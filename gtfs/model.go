package gtfs

import (
	"fmt"
	"strconv"
	"strings"
)

// LocationType is the GTFS stops.txt location_type. Values outside the
// documented range are kept as-is.
type LocationType int

const (
	LocationStop         LocationType = 0
	LocationStation      LocationType = 1
	LocationEntrance     LocationType = 2
	LocationGenericNode  LocationType = 3
	LocationBoardingArea LocationType = 4
)

func (t LocationType) String() string {
	switch t {
	case LocationStop:
		return "stop"
	case LocationStation:
		return "station"
	case LocationEntrance:
		return "entrance"
	case LocationGenericNode:
		return "generic_node"
	case LocationBoardingArea:
		return "boarding_area"
	}
	return fmt.Sprintf("unknown(%d)", int(t))
}

// WheelchairBoarding is the GTFS stops.txt wheelchair_boarding.
type WheelchairBoarding int

const (
	WheelchairUnknown       WheelchairBoarding = 0
	WheelchairAccessible    WheelchairBoarding = 1
	WheelchairNotAccessible WheelchairBoarding = 2
)

func (w WheelchairBoarding) String() string {
	switch w {
	case WheelchairUnknown:
		return "unknown"
	case WheelchairAccessible:
		return "accessible"
	case WheelchairNotAccessible:
		return "not_accessible"
	}
	return fmt.Sprintf("unknown(%d)", int(w))
}

// PickupDropOffType is the GTFS stop_times.txt pickup_type / drop_off_type.
type PickupDropOffType int

const (
	PickupDropOffRegular          PickupDropOffType = 0
	PickupDropOffNone             PickupDropOffType = 1
	PickupDropOffPhoneAgency      PickupDropOffType = 2
	PickupDropOffCoordinateDriver PickupDropOffType = 3
)

func (p PickupDropOffType) String() string {
	switch p {
	case PickupDropOffRegular:
		return "regular"
	case PickupDropOffNone:
		return "none"
	case PickupDropOffPhoneAgency:
		return "phone_agency"
	case PickupDropOffCoordinateDriver:
		return "coordinate_with_driver"
	}
	return fmt.Sprintf("unknown(%d)", int(p))
}

// GTFSTime is a stop_times clock value (HH:MM:SS). Hours run past 24 for
// trips that continue after midnight, so it is never a time.Time.
type GTFSTime string

// Seconds returns the offset from the start of the service day.
func (t GTFSTime) Seconds() (int, error) {
	parts := strings.Split(string(t), ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid GTFS time %q", string(t))
	}
	var hms [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid GTFS time %q", string(t))
		}
		if i > 0 && n > 59 {
			return 0, fmt.Errorf("invalid GTFS time %q", string(t))
		}
		hms[i] = n
	}
	return hms[0]*3600 + hms[1]*60 + hms[2], nil
}

// StopAttributes are the GTFS attributes of one stop resource.
type StopAttributes struct {
	LocationType       LocationType       `json:"location_type"`
	StopCode           string             `json:"stop_code"`
	StopID             string             `json:"stop_id"`
	StopLat            float64            `json:"stop_lat"`
	StopLon            float64            `json:"stop_lon"`
	StopName           string             `json:"stop_name"`
	WheelchairBoarding WheelchairBoarding `json:"wheelchair_boarding"`
}

// Stop is a stop resource as returned by the API. ID mirrors the stop_id.
type Stop struct {
	Type       string         `json:"type"`
	ID         string         `json:"id"`
	Attributes StopAttributes `json:"attributes"`
}

// StopResponse holds stops in upstream order.
type StopResponse struct {
	Data []Stop `json:"data"`
}

// StopTripAttributes describe one scheduled call of a trip at a stop.
type StopTripAttributes struct {
	ArrivalTime   GTFSTime          `json:"arrival_time"`
	DepartureTime GTFSTime          `json:"departure_time"`
	DirectionID   int               `json:"direction_id"`
	DropOffType   PickupDropOffType `json:"drop_off_type"`
	PickupType    PickupDropOffType `json:"pickup_type"`
	RouteID       string            `json:"route_id"`
	ServiceDate   string            `json:"service_date"`
	ShapeID       *string           `json:"shape_id"`
	StopHeadsign  *string           `json:"stop_headsign"`
	StopID        string            `json:"stop_id"`
	StopSequence  int               `json:"stop_sequence"`
	TripHeadsign  string            `json:"trip_headsign"`
}

// StopTrip is a stop trip resource as returned by the API.
type StopTrip struct {
	Type       string             `json:"type"`
	ID         string             `json:"id"`
	Attributes StopTripAttributes `json:"attributes"`
}

// StopTripResponse holds the stop trips of one service window.
type StopTripResponse struct {
	Data []StopTrip `json:"data"`
}
