package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sternrassler/pokedex-client/pkg/compare"
	"github.com/Sternrassler/pokedex-client/pkg/search"
)

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "compare <name> <name> [name]",
		Short:   "Compare the base stats of two or three Pokémon",
		Example: "  pokedex compare charizard blastoise venusaur",
		Args:    cobra.RangeArgs(compare.MinForChart, compare.Slots),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmp := compare.New(a.client)

			for slot, name := range args {
				sel := search.Selector{
					OnSelect: func(selected string) error {
						_, err := cmp.Select(cmd.Context(), slot, selected)
						return err
					},
				}
				if err := sel.Submit(name); err != nil {
					return err
				}
			}

			chart, err := cmp.Chart()
			if err != nil {
				return err
			}
			renderChart(cmd.OutOrStdout(), chart)
			return nil
		},
	}
}

func renderChart(w io.Writer, chart *compare.Chart) {
	header := []string{fmt.Sprintf("%-8s", "")}
	for _, s := range chart.Series {
		header = append(header, seriesStyle(s.Color).Render(fmt.Sprintf("%-14s", displayName(s.Name))))
	}
	fmt.Fprintln(w, strings.Join(header, " "))

	for _, axis := range chart.Axes {
		row := []string{fmt.Sprintf("%-8s", axis.Label)}
		best := 0
		for _, v := range axis.Values {
			best = max(best, v)
		}
		for i, v := range axis.Values {
			cell := fmt.Sprintf("%3d %s", v, statBarScaled(v, axis.FullMark, 10))
			style := seriesStyle(chart.Series[i].Color)
			if v == best {
				style = style.Bold(true)
			}
			row = append(row, style.Render(fmt.Sprintf("%-14s", cell)))
		}
		fmt.Fprintln(w, strings.Join(row, " "))
	}
}
