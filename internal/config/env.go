package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvHome            = "FACTSVIEW_HOME"
	EnvAPIURL          = "FACTSVIEW_API_URL"
	EnvAutocompleteURL = "FACTSVIEW_AUTOCOMPLETE_URL"
	EnvRateLimit       = "FACTSVIEW_RATE_LIMIT"
	EnvLogLevel        = "FACTSVIEW_LOG_LEVEL"
	EnvLogFormat       = "FACTSVIEW_LOG_FORMAT"
	EnvStalePolicy     = "FACTSVIEW_STALE_POLICY"
)

// LoadDotEnv loads variables from a .env file into the process environment.
// Variables already set are left alone. A missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("loading %s: %w", path, err)
}

// ApplyEnv overrides config values from environment variables.
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) error {
	if v, ok := lookupEnv(EnvAPIURL); ok && v != "" {
		c.API.RecordsURL = v
	}
	if v, ok := lookupEnv(EnvAutocompleteURL); ok && v != "" {
		c.API.AutocompleteURL = v
	}
	if v, ok := lookupEnv(EnvRateLimit); ok && v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvRateLimit, v, err)
		}
		c.API.RateLimit = rps
	}
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
	if v, ok := lookupEnv(EnvStalePolicy); ok && v != "" {
		c.View.StalePolicy = v
	}
	return nil
}
