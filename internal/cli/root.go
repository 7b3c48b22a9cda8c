package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/factsview/internal/config"
	"github.com/rshade/factsview/internal/logging"
	"github.com/rshade/factsview/internal/tui"
	"github.com/rshade/factsview/pkg/version"
)

// logger is the package-level logger for CLI operations.
var logger = zerolog.Nop() //nolint:gochecknoglobals // Required for zerolog context integration

// app carries state resolved once per invocation in PersistentPreRunE.
type app struct {
	cfg       *config.Config
	logResult *logging.LogPathResult
}

// NewRootCmd creates the root Cobra command for the factsview CLI.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithEnv(ver, os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit env lookup for testability.
func NewRootCmdWithEnv(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:     "factsview",
		Short:   "Browse and search cat facts",
		Long:    "factsview: a paginated, searchable list of cat facts with autocomplete",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, lookupEnv)
			if err != nil {
				return err
			}
			a.cfg = cfg

			result := setupLogging(cmd, cfg)
			a.logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, a.logResult)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if outputMode(cmd) == tui.OutputModeInteractive {
				return runBrowse(cmd, a)
			}
			return runList(cmd, a, listOptions{page: 1, output: outputTable})
		},
		SilenceUsage: true,
	}

	cmd.SetVersionTemplate(fmt.Sprintf("factsview {{.Version}} (commit %s)\n", version.GetCommit()))

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging to stderr")
	cmd.PersistentFlags().String("config", "", "overlay configuration file (merged section by section)")
	cmd.PersistentFlags().String("api-url", "", "records endpoint URL (overrides config and env)")
	cmd.PersistentFlags().String("autocomplete-url", "", "autocomplete endpoint URL (overrides config and env)")
	cmd.PersistentFlags().Int("per-page", 0, "records per page (0 = use config default)")
	cmd.PersistentFlags().Bool("plain", false, "print unstyled text")

	cmd.AddCommand(
		newBrowseCmd(a),
		newListCmd(a),
		newSearchCmd(a),
		newSuggestCmd(a),
		newConfigCmd(a),
	)

	return cmd
}

// outputMode detects the output mode, honoring --plain.
func outputMode(cmd *cobra.Command) tui.OutputMode {
	plain, _ := cmd.Flags().GetBool("plain")
	return tui.DetectOutputMode(plain, false, false)
}

const rootCmdExample = `  # Browse interactively
  factsview

  # Print page 2 with 25 facts per page
  factsview list --page 2 --per-page 25

  # Search and show autocomplete suggestions
  factsview search "sleep"

  # Print the effective configuration
  factsview config show`
