package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Sternrassler/pokedex-client/pkg/aggregator"
	"github.com/Sternrassler/pokedex-client/pkg/catalog"
)

func newListCmd(a *app) *cobra.Command {
	var (
		types []string
		gens  []string
		page  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List Pokémon, optionally filtered by type and generation",
		Long: `List Pokémon in pages of 100.

Up to 3 types (any of them matches) and up to 2 generations (any of them
matches) can be selected; with both, a Pokémon must match a type and a
generation. Filtered listings are not paged.`,
		Example: `  pokedex list --page 2
  pokedex list --type fire --type water
  pokedex list --type dragon --generation iv`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := filterState(types, gens, page)
			if err != nil {
				return err
			}

			session := aggregator.NewSession(aggregator.New(a.client, aggregator.DefaultConfig()))
			result, err := session.Update(cmd.Context(), state)
			if err != nil {
				return fmt.Errorf("load pokédex: %w", err)
			}

			renderPage(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&types, "type", "t", nil, "type filter (repeatable, max 3)")
	cmd.Flags().StringSliceVarP(&gens, "generation", "g", nil, "generation filter: tag, roman numeral, number or region (repeatable, max 2)")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "page of the unfiltered list")
	return cmd
}

func filterState(types, gens []string, page int) (aggregator.FilterState, error) {
	tags := make([]catalog.TypeTag, 0, len(types))
	for _, t := range types {
		tag, err := catalog.ParseTypeTag(t)
		if err != nil {
			return aggregator.FilterState{}, err
		}
		tags = append(tags, tag)
	}

	genTags := make([]catalog.GenerationTag, 0, len(gens))
	for _, g := range gens {
		tag, err := catalog.ParseGenerationTag(g)
		if err != nil {
			return aggregator.FilterState{}, err
		}
		genTags = append(genTags, tag)
	}

	state, err := aggregator.NewFilterState().WithTypes(tags...)
	if err != nil {
		return state, err
	}
	if state, err = state.WithGenerations(genTags...); err != nil {
		return state, err
	}
	return state.WithPage(page)
}

func renderPage(w io.Writer, p *aggregator.Page) {
	if len(p.Entities) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No Pokémon match the selected filters."))
		return
	}

	for _, e := range p.Entities {
		fmt.Fprintf(w, "%s  %-24s %s\n", idStyle.Render(formatID(e.ID)), displayName(e.Name), typeBadges(e.Types))
	}

	if p.Strategy == aggregator.StrategyAll {
		fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("Page %d of %d · %d Pokémon", p.Filter.Page, p.TotalPages, p.TotalCount)))
		return
	}
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("%d matching Pokémon", p.TotalCount)))
}
