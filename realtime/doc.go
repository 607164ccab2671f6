// Package realtime reads the GTFS-Realtime trip updates feed published
// alongside the Auckland Transport GTFS API.
//
// The feed is requested as protobuf through the same authenticated client
// used for the JSON:API endpoints, decoded with the MobilityData bindings and
// indexed by stop_id. Each call fetches a fresh snapshot; nothing is cached.
package realtime
