// Package attransit queries the Auckland Transport GTFS API.
//
// A Service finds stops by name and lists the trips calling at a stop from
// the current hour of the current service date, both computed in the
// Pacific/Auckland zone by default. Server exposes the same operations as a
// small JSON HTTP API.
//
// Basic usage:
//
//	cfg, err := config.Load("")
//	if err != nil {
//		return err
//	}
//	svc, err := attransit.NewService(cfg)
//	if err != nil {
//		return err
//	}
//	stops, err := svc.SearchStop(ctx, "university")
package attransit
