package main

import (
	"github.com/spf13/cobra"
)

func newRandomCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Show a random Pokémon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ix, err := a.index(cmd.Context())
			if err != nil {
				return err
			}
			name, err := ix.Random(nil)
			if err != nil {
				return err
			}
			return a.showSelector(cmd.Context(), cmd.OutOrStdout()).Submit(name)
		},
	}
}
