package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/factsview/internal/facts"
	"github.com/rshade/factsview/internal/tui"
)

// searchResult is the JSON shape of the search command.
type searchResult struct {
	Query       string      `json:"query"`
	Page        *facts.Page `json:"page"`
	Suggestions []string    `json:"suggestions"`
}

func newSearchCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "search <text>",
		Short: "Search facts and show autocomplete suggestions",
		Long: `Trims the text, then fetches the first page of matching facts and the
autocomplete suggestions for it concurrently.`,
		Example: `  factsview search "  sleep "`,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, a, strings.Join(args, " "), output)
		},
	}

	cmd.Flags().StringVar(&output, "output", outputTable, "output format: table or json")

	return cmd
}

func runSearch(cmd *cobra.Command, a *app, text, output string) error {
	if output != outputTable && output != outputJSON {
		return fmt.Errorf("unsupported output format: %s", output)
	}

	ctx := cmd.Context()
	client := newClient(a.cfg)
	q := tui.NewQuery(a.cfg.View.DefaultPageSize).Apply(tui.SubmitSearch{Text: text})

	result := searchResult{Query: q.Text, Suggestions: []string{}}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		page, err := client.FetchPage(gctx, q.Facts())
		if err != nil {
			return fmt.Errorf("fetching records: %w", err)
		}
		result.Page = page
		return nil
	})
	g.Go(func() error {
		items, err := client.Suggest(gctx, q.Text)
		if err != nil {
			// Suggestions are optional; the page is still printed.
			logger.Warn().Ctx(ctx).Err(err).Str("query", q.Text).Msg("autocomplete fetch error")
			return nil
		}
		if items != nil {
			result.Suggestions = items
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	logger.Debug().Ctx(ctx).
		Str("query", q.Text).
		Int("records", len(result.Page.Records)).
		Int("suggestions", len(result.Suggestions)).
		Msg("search complete")

	if output == outputJSON {
		return writeJSON(cmd.OutOrStdout(), result)
	}

	if err := writePage(cmd, result.Page); err != nil {
		return err
	}
	if len(result.Suggestions) == 0 {
		return nil
	}
	r := tui.NewRenderer(outputMode(cmd))
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "\nSuggestions:\n%s\n", r.Suggestions(result.Suggestions, -1))
	return err
}
