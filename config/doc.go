// Package config handles application configuration loading and validation.
//
// Configuration is read from an optional config.yml, then overridden by the
// process environment (after loading a .env file when present), defaulted,
// and validated using struct tags. The resulting Config is a plain value:
// nothing in this package keeps process-wide state.
package config
