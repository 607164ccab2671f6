package main

import (
	"encoding/json"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	attransit "github.com/theoremus-urban-solutions/auckland-transport"
	"github.com/theoremus-urban-solutions/auckland-transport/config"
	"github.com/theoremus-urban-solutions/auckland-transport/internal"

	_ "time/tzdata"
)

var version = "dev"

func main() {
	internal.InitLogging(os.Stderr)

	app := &cli.App{
		Name:    "at-transit",
		Usage:   "Query Auckland Transport stops and stop trips",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a YAML config file",
				EnvVars: []string{"AT_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "search-stop",
				Usage: "list stops whose name contains --name",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "stop name fragment, empty lists every stop"},
				},
				Action: func(c *cli.Context) error {
					svc, _, err := newService(c)
					if err != nil {
						return err
					}
					res, err := svc.SearchStop(c.Context, c.String("name"))
					if err != nil {
						return err
					}
					return printJSON(c.App.Writer, res)
				},
			},
			{
				Name:  "stop-trips",
				Usage: "list trips calling at a stop from the current hour",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "stop-id", Aliases: []string{"s"}, Required: true},
				},
				Action: func(c *cli.Context) error {
					svc, _, err := newService(c)
					if err != nil {
						return err
					}
					res, err := svc.GetStopTripsByStopID(c.Context, c.String("stop-id"))
					if err != nil {
						return err
					}
					return printJSON(c.App.Writer, res)
				},
			},
			{
				Name:  "realtime",
				Usage: "show live trip updates for a stop",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "stop-id", Aliases: []string{"s"}, Required: true},
				},
				Action: func(c *cli.Context) error {
					svc, _, err := newService(c)
					if err != nil {
						return err
					}
					res, err := svc.GetStopRealtimeUpdates(c.Context, c.String("stop-id"))
					if err != nil {
						return err
					}
					return printJSON(c.App.Writer, res)
				},
			},
			{
				Name:  "serve",
				Usage: "run the HTTP API",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Usage: "overrides server.port"},
				},
				Action: func(c *cli.Context) error {
					svc, cfg, err := newService(c)
					if err != nil {
						return err
					}
					port := cfg.Server.Port
					if c.IsSet("port") {
						port = c.Int("port")
					}
					ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
					defer stop()
					return attransit.NewServer(svc, port).ListenAndServe(ctx)
				},
			},
			{
				Name:  "mcp",
				Usage: "serve the stop tools over MCP on stdio",
				Action: func(c *cli.Context) error {
					svc, _, err := newService(c)
					if err != nil {
						return err
					}
					ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
					defer stop()
					return runMCP(ctx, svc, c.App.Version)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}

func newService(c *cli.Context) (*attransit.Service, config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, cfg, err
	}
	svc, err := attransit.NewService(cfg)
	if err != nil {
		return nil, cfg, err
	}
	return svc, cfg.WithDefaults(), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
