package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newSuggestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <text>",
		Short: "Print autocomplete suggestions for text",
		Long: `Prints one suggestion per line. The text is sent as typed, without
trimming. Empty text prints nothing and makes no request.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := newClient(a.cfg).Suggest(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("fetching suggestions: %w", err)
			}
			for _, item := range items {
				if _, err = fmt.Fprintln(cmd.OutOrStdout(), item); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
