package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/factsview/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management commands",
	}
	cmd.AddCommand(newConfigInitCmd(), newConfigShowCmd(a))
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Example: `  # Create ~/.factsview/config.yaml
  factsview config init

  # Overwrite an existing file
  factsview config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := config.DefaultConfigPath()
			if err != nil {
				return err
			}

			if !force {
				_, statErr := os.Stat(configPath)
				if statErr == nil {
					return errors.New("configuration file already exists, use --force to overwrite")
				}
				if !errors.Is(statErr, os.ErrNotExist) {
					return fmt.Errorf("cannot access config path %s: %w", configPath, statErr)
				}
			}

			cfg := config.Default()
			cfg.SetConfigPath(configPath)
			if err = cfg.Save(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			cmd.Printf("Configuration initialized at %s\n", configPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

func newConfigShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Prints the configuration after the config file, --config overlay,
environment variables, and flags have been applied.

Each section present in the --config overlay replaces that whole section.
In a partial view section, default_page_size falls back to the first of
page_sizes and an empty stale_policy means last-arrival.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := yaml.Marshal(a.cfg)
			if err != nil {
				return fmt.Errorf("marshalling config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
