// Package atapi is the HTTP client for the Auckland Transport GTFS API.
//
// It knows two JSON:API endpoints:
//   - GET {base}/stops?filter[date]=YYYY-MM-DD: every stop in the feed
//   - GET {base}/stops/{stop_id}/stoptrips?filter[date]=...&filter[start_hour]=HH:
//     the trips calling at one stop
//
// Every request carries the subscription key in the Ocp-Apim-Subscription-Key
// header and runs under a bounded timeout. Responses are returned as raw
// bytes; decoding lives in package gtfs.
package atapi
