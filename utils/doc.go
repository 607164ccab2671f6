// Package utils provides internal utility functions for the Auckland
// Transport client.
//
// It contains:
//   - The Clock abstraction used instead of calling time.Now directly
//   - Service window computation (GTFS date and start hour in a fixed zone)
//   - Timestamp formatting
package utils
