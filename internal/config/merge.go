package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML keys that can be overlaid.
const (
	keyAPI     = "api"
	keyView    = "view"
	keyLogging = "logging"
)

// ShallowMergeYAML loads a YAML file and merges its top-level sections onto
// target. A section present in the overlay replaces the whole section in
// target; absent sections are left unchanged. Unknown keys are ignored.
func ShallowMergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading overlay file %s: %w", overlayPath, err)
	}

	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing overlay YAML from %s: %w", overlayPath, err)
	}

	for key, node := range overlay {
		if err = decodeSection(target, key, &node); err != nil {
			return fmt.Errorf("applying overlay section %q: %w", key, err)
		}
	}

	return nil
}

// decodeSection decodes node into a fresh zero value of the section named by
// key so the overlay replaces the section rather than merging into it.
func decodeSection(target *Config, key string, node *yaml.Node) error {
	switch key {
	case keyAPI:
		var v APIConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.API = v
	case keyView:
		var v ViewConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		v.fillDefaults()
		target.View = v
	case keyLogging:
		var v LoggingConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Logging = v
	}
	return nil
}
