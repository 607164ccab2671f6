package internal

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvLogFormat = "AT_LOG_FORMAT"
	EnvDebug     = "AT_DEBUG"
)

// InitLogging configures the global zerolog logger. Output is human readable
// unless AT_LOG_FORMAT=JSON; AT_DEBUG=YES lowers the level to debug.
func InitLogging(out io.Writer) {
	if out == nil {
		out = os.Stderr
	}
	if os.Getenv(EnvLogFormat) == "JSON" {
		log.Logger = zerolog.New(out).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
	}

	if os.Getenv(EnvDebug) == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}
}
