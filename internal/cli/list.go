package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rshade/factsview/internal/facts"
	"github.com/rshade/factsview/internal/tui"
)

// Output formats for one-shot commands.
const (
	outputTable = "table"
	outputJSON  = "json"
)

type listOptions struct {
	page   int
	query  string
	output string
}

func newListCmd(a *app) *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of facts",
		Example: `  # First page with the configured page size
  factsview list

  # Third page of facts matching "sleep", as JSON
  factsview list --page 3 --query sleep --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, a, opts)
		},
	}

	cmd.Flags().IntVar(&opts.page, "page", 1, "page number (1-based)")
	cmd.Flags().StringVar(&opts.query, "query", "", "search text (trimmed; empty lists everything)")
	cmd.Flags().StringVar(&opts.output, "output", outputTable, "output format: table or json")

	return cmd
}

func runList(cmd *cobra.Command, a *app, opts listOptions) error {
	if opts.output != outputTable && opts.output != outputJSON {
		return fmt.Errorf("unsupported output format: %s", opts.output)
	}
	if opts.page < 1 {
		return fmt.Errorf("page must be >= 1, got %d", opts.page)
	}

	q := tui.NewQuery(a.cfg.View.DefaultPageSize).
		Apply(tui.SubmitSearch{Text: opts.query}).
		Apply(tui.GoToPage{Page: opts.page})

	page, err := newClient(a.cfg).FetchPage(cmd.Context(), q.Facts())
	if err != nil {
		return fmt.Errorf("fetching page %d: %w", q.Page, err)
	}

	if opts.output == outputJSON {
		return writeJSON(cmd.OutOrStdout(), page)
	}
	return writePage(cmd, page)
}

// writePage prints a page in the detected output mode.
func writePage(cmd *cobra.Command, page *facts.Page) error {
	r := tui.NewRenderer(outputMode(cmd))
	_, err := fmt.Fprintln(cmd.OutOrStdout(), tui.RenderPage(r, page, tui.TerminalWidth()))
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}
