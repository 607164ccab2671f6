package gtfs

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	errMissingData = errors.New("missing top-level data array")
	errMissing     = errors.New("missing required attribute")
	errInvalid     = errors.New("invalid attribute value")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})
	return v
}

// resource is the JSON:API {type, id, attributes} shape. Pointer fields let
// validation tell an absent key from a zero value.
type resource[A any] struct {
	Type       *string `json:"type" validate:"required"`
	ID         *string `json:"id" validate:"required"`
	Attributes *A      `json:"attributes" validate:"required"`
}

type envelope struct {
	Data *[]json.RawMessage `json:"data"`
}

type stopAttributesWire struct {
	LocationType       *int     `json:"location_type" validate:"required"`
	StopCode           *string  `json:"stop_code" validate:"required"`
	StopID             *string  `json:"stop_id" validate:"required"`
	StopLat            *float64 `json:"stop_lat" validate:"required"`
	StopLon            *float64 `json:"stop_lon" validate:"required"`
	StopName           *string  `json:"stop_name" validate:"required"`
	WheelchairBoarding *int     `json:"wheelchair_boarding" validate:"required"`
}

type stopTripAttributesWire struct {
	ArrivalTime   *string `json:"arrival_time" validate:"required"`
	DepartureTime *string `json:"departure_time" validate:"required"`
	DirectionID   *int    `json:"direction_id" validate:"required"`
	DropOffType   *int    `json:"drop_off_type" validate:"required"`
	PickupType    *int    `json:"pickup_type" validate:"required"`
	RouteID       *string `json:"route_id" validate:"required"`
	ServiceDate   *string `json:"service_date" validate:"required"`
	ShapeID       *string `json:"shape_id"`
	StopHeadsign  *string `json:"stop_headsign"`
	StopID        *string `json:"stop_id" validate:"required"`
	StopSequence  *int    `json:"stop_sequence" validate:"required,gte=0"`
	TripHeadsign  *string `json:"trip_headsign" validate:"required"`
}

// ParseStopResponse decodes a stops collection. Any malformed resource fails
// the whole response.
func ParseStopResponse(body []byte) (StopResponse, error) {
	items, err := parseResources[stopAttributesWire]("stop", body)
	if err != nil {
		return StopResponse{}, err
	}

	res := StopResponse{Data: make([]Stop, 0, len(items))}
	for _, r := range items {
		a := r.Attributes
		res.Data = append(res.Data, Stop{
			Type: *r.Type,
			ID:   *r.ID,
			Attributes: StopAttributes{
				LocationType:       LocationType(*a.LocationType),
				StopCode:           *a.StopCode,
				StopID:             *a.StopID,
				StopLat:            *a.StopLat,
				StopLon:            *a.StopLon,
				StopName:           *a.StopName,
				WheelchairBoarding: WheelchairBoarding(*a.WheelchairBoarding),
			},
		})
	}
	return res, nil
}

// ParseStopTripResponse decodes the stop trips of one stop.
func ParseStopTripResponse(body []byte) (StopTripResponse, error) {
	items, err := parseResources[stopTripAttributesWire]("stoptrip", body)
	if err != nil {
		return StopTripResponse{}, err
	}

	res := StopTripResponse{Data: make([]StopTrip, 0, len(items))}
	for _, r := range items {
		a := r.Attributes
		res.Data = append(res.Data, StopTrip{
			Type: *r.Type,
			ID:   *r.ID,
			Attributes: StopTripAttributes{
				ArrivalTime:   GTFSTime(*a.ArrivalTime),
				DepartureTime: GTFSTime(*a.DepartureTime),
				DirectionID:   *a.DirectionID,
				DropOffType:   PickupDropOffType(*a.DropOffType),
				PickupType:    PickupDropOffType(*a.PickupType),
				RouteID:       *a.RouteID,
				ServiceDate:   *a.ServiceDate,
				ShapeID:       a.ShapeID,
				StopHeadsign:  a.StopHeadsign,
				StopID:        *a.StopID,
				StopSequence:  *a.StopSequence,
				TripHeadsign:  *a.TripHeadsign,
			},
		})
	}
	return res, nil
}

func parseResources[A any](kind string, body []byte) ([]resource[A], error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &ParseError{Resource: kind, Index: -1, Field: "data", Err: err}
	}
	if env.Data == nil {
		return nil, &ParseError{Resource: kind, Index: -1, Field: "data", Err: errMissingData}
	}

	out := make([]resource[A], 0, len(*env.Data))
	for i, raw := range *env.Data {
		var r resource[A]
		if err := json.Unmarshal(raw, &r); err != nil {
			perr := &ParseError{Resource: kind, Index: i, ID: resourceID(raw), Err: err}
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) {
				perr.Field = typeErr.Field
				perr.Err = errInvalid
			}
			return nil, perr
		}
		if err := validate.Struct(r); err != nil {
			return nil, validationError(kind, i, raw, err)
		}
		out = append(out, r)
	}
	return out, nil
}

func validationError(kind string, index int, raw json.RawMessage, err error) error {
	perr := &ParseError{Resource: kind, Index: index, ID: resourceID(raw), Err: err}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		perr.Field = fe.Field()
		switch fe.Field() {
		case "type", "id", "attributes":
		default:
			perr.Field = "attributes." + fe.Field()
		}
		perr.Err = errMissing
		if fe.Tag() != "required" {
			perr.Err = errInvalid
		}
	}
	return perr
}

// resourceID recovers the id of a resource that failed to decode, if any.
func resourceID(raw json.RawMessage) string {
	var probe struct {
		ID any `json:"id"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return ""
	}
	if s, ok := probe.ID.(string); ok {
		return s
	}
	return ""
}
