/*
Package gtfs holds the typed GTFS records returned by the Auckland Transport
API and the strict parser that produces them.

The API wraps every entity in a JSON:API resource inside a top-level data
array:

	{
	  "data": [
	    {
	      "type": "stop",
	      "id": "100-56c57897",
	      "attributes": { "stop_id": "100-56c57897", "stop_name": "Papatoetoe Train Station", ... }
	    }
	  ]
	}

# Parsing

ParseStopResponse and ParseStopTripResponse decode such envelopes:

	stops, err := gtfs.ParseStopResponse(body)
	if err != nil {
	    var perr *gtfs.ParseError
	    if errors.As(err, &perr) {
	        log.Printf("resource %d (%s) is malformed: %s", perr.Index, perr.ID, perr.Field)
	    }
	}

Parsing is all-or-nothing. A missing data array, a resource without type, id
or attributes, a missing required attribute, or a JSON type mismatch fails
the whole response with a *ParseError naming the resource index and id.
Resources are never silently dropped.

# Enumerations

location_type, wheelchair_boarding, pickup_type and drop_off_type decode into
small integer types with String methods. Values outside the GTFS range are
not rejected; they pass through unchanged and print as "unknown(N)".

# Times

arrival_time and departure_time are GTFSTime strings. GTFS allows hours past
24 for trips running after midnight ("25:10:00"), so they are kept as text
and GTFSTime.Seconds gives the offset from the start of the service day.
*/
package gtfs
