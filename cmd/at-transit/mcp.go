package main

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"

	attransit "github.com/theoremus-urban-solutions/auckland-transport"
	"github.com/theoremus-urban-solutions/auckland-transport/gtfs"
)

type searchStopArgs struct {
	Name string `json:"name" jsonschema:"the stop name to search for"`
}

type stopTripsArgs struct {
	StopID string `json:"stop_id" jsonschema:"the stop id to get the trips for"`
}

func newMCPServer(svc *attransit.Service, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "auckland-transport", Version: version}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_stop",
		Description: "Search for Auckland Transport stops by name (case-insensitive substring match).",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in searchStopArgs) (*mcp.CallToolResult, gtfs.StopResponse, error) {
		res, err := svc.SearchStop(ctx, in.Name)
		return nil, res, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_stop_trips_by_stop_id",
		Description: "Get the trips calling at a stop from the current hour of today's service date.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in stopTripsArgs) (*mcp.CallToolResult, gtfs.StopTripResponse, error) {
		res, err := svc.GetStopTripsByStopID(ctx, in.StopID)
		return nil, res, err
	})

	return server
}

func runMCP(ctx context.Context, svc *attransit.Service, version string) error {
	log.Info().Str("version", version).Msg("mcp server on stdio")
	return newMCPServer(svc, version).Run(ctx, &mcp.StdioTransport{})
}
