package attransit

import (
	"github.com/theoremus-urban-solutions/auckland-transport/atapi"
	"github.com/theoremus-urban-solutions/auckland-transport/config"
	"github.com/theoremus-urban-solutions/auckland-transport/gtfs"
)

// Error kinds returned by Service, re-exported so callers need a single import.
type (
	ConfigurationError = config.ConfigurationError
	TransportError     = atapi.TransportError
	RemoteAPIError     = atapi.RemoteAPIError
	ParseError         = gtfs.ParseError
)
