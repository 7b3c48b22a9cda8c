package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Stale-response policies for the interactive view.
const (
	StalePolicyLastArrival = "last-arrival"
	StalePolicyLastRequest = "last-request"
)

// Default endpoint locations.
const (
	DefaultRecordsURL      = "http://cat-facts-api.std-900.ist.mospolytech.ru/facts"
	DefaultAutocompleteURL = "http://cat-facts-api.std-900.ist.mospolytech.ru/autocomplete"
)

// Config is the complete factsview configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	View    ViewConfig    `yaml:"view"`
	Logging LoggingConfig `yaml:"logging"`

	configPath string
}

// APIConfig locates and paces the remote API.
type APIConfig struct {
	RecordsURL      string        `yaml:"records_url"      validate:"required,url"`
	AutocompleteURL string        `yaml:"autocomplete_url" validate:"required,url"`
	Timeout         time.Duration `yaml:"timeout"          validate:"gte=0"`
	// RateLimit is requests per second; 0 disables pacing.
	RateLimit float64 `yaml:"rate_limit" validate:"gte=0"`
	UserAgent string  `yaml:"user_agent"`
}

// ViewConfig controls the list view.
type ViewConfig struct {
	PageSizes       []int `yaml:"page_sizes"        validate:"required,min=1,dive,gt=0"`
	DefaultPageSize int   `yaml:"default_page_size" validate:"gt=0"`
	// StalePolicy may be empty, which means last-arrival.
	StalePolicy string `yaml:"stale_policy" validate:"omitempty,oneof=last-arrival last-request"`
}

// fillDefaults sets the fields a partial view section may leave out: the
// default page size becomes the first offered size.
func (v *ViewConfig) fillDefaults() {
	if v.DefaultPageSize == 0 && len(v.PageSizes) > 0 {
		v.DefaultPageSize = v.PageSizes[0]
	}
}

// LoggingConfig controls diagnostic logging.
type LoggingConfig struct {
	Level  string `yaml:"level"  validate:"omitempty,oneof=trace debug info warn error"`
	Format string `yaml:"format" validate:"omitempty,oneof=json console"`
	File   string `yaml:"file"`
}

// ErrPageSizeNotOffered is returned when the default page size is not one of the selectable sizes.
var ErrPageSizeNotOffered = errors.New("view.default_page_size must be one of view.page_sizes")

// Default returns the built-in configuration.
func Default() *Config {
	logFile := ""
	if dir, err := GetConfigDir(); err == nil {
		logFile = filepath.Join(dir, "logs", "factsview.log")
	}

	return &Config{
		API: APIConfig{
			RecordsURL:      DefaultRecordsURL,
			AutocompleteURL: DefaultAutocompleteURL,
			Timeout:         10 * time.Second, //nolint:mnd // Default request timeout.
			UserAgent:       "factsview",
		},
		View: ViewConfig{
			PageSizes:       []int{10, 25, 50, 100},
			DefaultPageSize: 10, //nolint:mnd // Smallest offered size.
			StalePolicy:     StalePolicyLastArrival,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			File:   logFile,
		},
	}
}

// Load reads the YAML file at path on top of the defaults. A missing file is
// not an error. The result is not validated; call Validate after applying
// any overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.configPath = path

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads the config from the default location.
func LoadDefault() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// ConfigPath returns the file this config is loaded from and saved to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes where Save writes.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Save writes the config as YAML to its config path.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path not set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", c.configPath, err)
	}
	return nil
}

// Validate checks field constraints and cross-field consistency.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("config validation error: %w", err)
	}
	if !slices.Contains(c.View.PageSizes, c.View.DefaultPageSize) {
		return fmt.Errorf("%w: %d not in %v", ErrPageSizeNotOffered, c.View.DefaultPageSize, c.View.PageSizes)
	}
	return nil
}
