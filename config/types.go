package config

import (
	"time"

	_ "time/tzdata"
)

const (
	DefaultTimezone   = "Pacific/Auckland"
	DefaultTimeoutMS  = 10000
	DefaultServerPort = 16181
)

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0,lte=65535"`
}

// TransitConfig contains the upstream Auckland Transport API configuration
type TransitConfig struct {
	BaseURL     string `yaml:"baseURL" validate:"required,url"`
	APIKey      string `yaml:"apiKey" validate:"required"`
	Timezone    string `yaml:"timezone" validate:"required"`
	TimeoutMS   int    `yaml:"timeoutMS" validate:"gt=0"`
	RealtimeURL string `yaml:"realtimeURL" validate:"omitempty,url"`
}

// Config is the root configuration structure
type Config struct {
	Transit TransitConfig `yaml:"transit" validate:"required"`
	Server  ServerConfig  `yaml:"server"`
}

// WithDefaults returns a copy of c with unset optional values filled in.
func (c Config) WithDefaults() Config {
	if c.Transit.Timezone == "" {
		c.Transit.Timezone = DefaultTimezone
	}
	if c.Transit.TimeoutMS == 0 {
		c.Transit.TimeoutMS = DefaultTimeoutMS
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultServerPort
	}
	return c
}

// Timeout is the bounded per-request timeout for upstream calls.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.Transit.TimeoutMS) * time.Millisecond
}

// Location resolves the configured timezone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Transit.Timezone)
	if err != nil {
		return nil, &ConfigurationError{Field: "transit.timezone", Msg: "unknown timezone " + c.Transit.Timezone, Err: err}
	}
	return loc, nil
}
