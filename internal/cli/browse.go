package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/factsview/internal/logging"
	"github.com/rshade/factsview/internal/tui"
)

func newBrowseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse facts interactively",
		Long: `Opens the interactive list view: a search field with autocomplete,
a page-size selector, record cards, and a pagination bar.

Keys: tab/shift+tab cycle focus, / jumps to search, enter opens a record,
esc goes back, q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd, a)
		},
	}
}

func runBrowse(cmd *cobra.Command, a *app) error {
	ctx := cmd.Context()

	policy, err := tui.ParseStalePolicy(a.cfg.View.StalePolicy)
	if err != nil {
		return err
	}

	if a.logResult != nil && a.logResult.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), a.logResult.FilePath)
	}

	model := tui.NewListViewModel(ctx, newClient(a.cfg), tui.ListViewOptions{
		PageSizes:       a.cfg.View.PageSizes,
		DefaultPageSize: a.cfg.View.DefaultPageSize,
		StalePolicy:     policy,
		Renderer:        tui.StyledRenderer{},
	})

	logger.Debug().Ctx(ctx).Str("stale_policy", policy.String()).Msg("starting interactive view")

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err = p.Run(); err != nil {
		return fmt.Errorf("failed to run interactive TUI: %w", err)
	}
	return nil
}
