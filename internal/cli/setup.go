package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/rshade/factsview/internal/config"
	"github.com/rshade/factsview/internal/facts"
)

// dotEnvFile is loaded from the working directory before env overrides are read.
const dotEnvFile = ".env"

// loadConfig resolves the effective configuration. Precedence, lowest first:
// defaults, config file, --config overlay, environment, flags.
func loadConfig(cmd *cobra.Command, lookupEnv func(string) (string, bool)) (*config.Config, error) {
	if err := config.LoadDotEnv(dotEnvFile); err != nil {
		return nil, err
	}

	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if overlay, _ := cmd.Flags().GetString("config"); overlay != "" {
		if err = config.ShallowMergeYAML(cfg, overlay); err != nil {
			return nil, err
		}
	}

	if err = cfg.ApplyEnv(lookupEnv); err != nil {
		return nil, err
	}

	applyFlagOverrides(cmd, cfg)

	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if v, _ := cmd.Flags().GetString("api-url"); v != "" {
		cfg.API.RecordsURL = v
	}
	if v, _ := cmd.Flags().GetString("autocomplete-url"); v != "" {
		cfg.API.AutocompleteURL = v
	}
	if v, _ := cmd.Flags().GetInt("per-page"); v > 0 {
		cfg.View.DefaultPageSize = v
		if !slices.Contains(cfg.View.PageSizes, v) {
			cfg.View.PageSizes = append(slices.Clone(cfg.View.PageSizes), v)
			slices.Sort(cfg.View.PageSizes)
		}
	}
}

// newClient builds the API client from the api section.
func newClient(cfg *config.Config) *facts.Client {
	return facts.NewClient(
		cfg.API.RecordsURL,
		cfg.API.AutocompleteURL,
		facts.WithTimeout(cfg.API.Timeout),
		facts.WithRateLimit(cfg.API.RateLimit),
		facts.WithUserAgent(cfg.API.UserAgent),
	)
}
