package config

import (
	"errors"
	"io/fs"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load. They take precedence over config.yml.
const (
	EnvBaseURL     = "AT_BASE_URL"
	EnvAPIKey      = "AT_API_KEY"
	EnvTimezone    = "AT_TIMEZONE"
	EnvTimeoutMS   = "AT_TIMEOUT_MS"
	EnvRealtimeURL = "AT_REALTIME_URL"
	EnvServerPort  = "AT_SERVER_PORT"
)

var defaultPaths = []string{"config.yml", "./config/config.yml"}

// Load builds a validated Config.
//
// When path is empty the default locations are tried and a missing file is
// not an error; an explicit path must exist. envFiles are loaded with
// godotenv before the environment is read (".env" when none are given);
// variables already set in the process are never overwritten.
func Load(path string, envFiles ...string) (Config, error) {
	if err := loadDotEnv(envFiles); err != nil {
		return Config{}, err
	}

	cfg, err := readFile(path)
	if err != nil {
		return Config{}, err
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	cfg = cfg.WithDefaults()
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks struct tags and that the timezone resolves.
func Validate(cfg Config) error {
	v := validator.New()
	v.RegisterTagNameFunc(yamlFieldName)
	if err := v.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return &ConfigurationError{
				Field: strings.TrimPrefix(fe.Namespace(), "Config."),
				Msg:   "failed on '" + fe.Tag() + "' validation",
				Err:   err,
			}
		}
		return &ConfigurationError{Msg: err.Error(), Err: err}
	}
	if _, err := cfg.Location(); err != nil {
		return err
	}
	return nil
}

func loadDotEnv(files []string) error {
	if len(files) == 0 {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
		files = []string{".env"}
	}
	if err := godotenv.Load(files...); err != nil {
		return &ConfigurationError{Msg: "failed to load env file", Err: err}
	}
	return nil
}

func readFile(path string) (Config, error) {
	var cfg Config
	paths := defaultPaths
	if path != "" {
		paths = []string{path}
	}

	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		if path == "" && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, &ConfigurationError{Field: "file", Msg: "cannot read " + path, Err: err}
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, &ConfigurationError{Field: "file", Msg: "invalid yaml", Err: err}
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.Transit.BaseURL = strings.TrimRight(v, "/")
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.Transit.APIKey = v
	}
	if v := os.Getenv(EnvTimezone); v != "" {
		cfg.Transit.Timezone = v
	}
	if v := os.Getenv(EnvRealtimeURL); v != "" {
		cfg.Transit.RealtimeURL = v
	}
	if v := os.Getenv(EnvTimeoutMS); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return &ConfigurationError{Field: EnvTimeoutMS, Msg: "must be an integer", Err: err}
		}
		cfg.Transit.TimeoutMS = n
	}
	if v := os.Getenv(EnvServerPort); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return &ConfigurationError{Field: EnvServerPort, Msg: "must be an integer", Err: err}
		}
		cfg.Server.Port = n
	}
	return nil
}

// yamlFieldName reports validation failures with the yaml key rather than the Go field.
func yamlFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}
