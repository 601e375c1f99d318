package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newSearchCmd(a *app) *cobra.Command {
	var open bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Suggest Pokémon names containing the query",
		Example: `  pokedex search char
  pokedex search --open pika`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			ix, err := a.index(cmd.Context())
			if err != nil {
				return err
			}

			suggestions := ix.Suggest(query)
			if open {
				// free text without a suggestion is submitted as typed
				choice := query
				if len(suggestions) > 0 {
					choice = suggestions[0]
				}
				return a.showSelector(cmd.Context(), cmd.OutOrStdout()).Submit(choice)
			}

			if len(suggestions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render(fmt.Sprintf("No Pokémon found for %q", query)))
				return nil
			}
			for _, s := range suggestions {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&open, "open", false, "show the profile of the first suggestion, or of the query itself when nothing matches")
	return cmd
}
