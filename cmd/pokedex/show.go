package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sternrassler/pokedex-client/pkg/catalog"
	"github.com/Sternrassler/pokedex-client/pkg/profile"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "show <name-or-id>",
		Short:   "Show a Pokémon's profile",
		Example: "  pokedex show pikachu\n  pokedex show 6",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.show(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}
}

func (a *app) show(ctx context.Context, w io.Writer, nameOrID string) error {
	p, err := profile.NewService(a.client).Get(ctx, nameOrID)
	if err != nil {
		return fmt.Errorf("load %s: %w", nameOrID, err)
	}
	renderProfile(w, p)
	return nil
}

func renderProfile(w io.Writer, p *profile.Profile) {
	d := p.Detail

	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s %s", displayName(d.Name), formatID(d.ID))))
	fmt.Fprintln(w, typeBadges(d.Types))
	if p.Generation.Valid() {
		fmt.Fprintln(w, generationBadge(p.Generation))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, p.Description)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s %.1f m   %s %.1f kg\n",
		labelStyle.Render("Height"), d.HeightMeters(),
		labelStyle.Render("Weight"), d.WeightKilograms())

	var abilities []string
	for _, ab := range d.RegularAbilities() {
		abilities = append(abilities, displayName(ab.Name))
	}
	if hidden, ok := d.HiddenAbility(); ok {
		abilities = append(abilities, displayName(hidden.Name)+mutedStyle.Render(" (hidden)"))
	}
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Abilities"), strings.Join(abilities, ", "))
	if art := d.Artwork(); art != "" {
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Artwork"), mutedStyle.Render(art))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, sectionStyle.Render("Base stats"))
	for _, s := range d.Stats {
		fmt.Fprintf(w, "%-8s %3d %s\n", s.Name.Label(), s.Value, statBar(s.Value, 30))
	}

	if len(p.Evolution) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, sectionStyle.Render("Evolution"))
		for _, step := range p.Evolution {
			fmt.Fprintf(w, "%s%s%s\n", strings.Repeat("  ", step.Stage), displayName(step.Name), mutedStyle.Render(evolutionCondition(step)))
		}
	}

	groups := p.Effectiveness.Groups()
	if len(groups) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, sectionStyle.Render("Damage taken"))
		for _, g := range groups {
			fmt.Fprintf(w, "%-6s %s\n", formatMultiplier(g.Multiplier), typeBadges(g.Types))
		}
	}
}

func evolutionCondition(s profile.Step) string {
	if s.Stage == 0 {
		return ""
	}
	switch {
	case s.MinLevel != nil:
		return fmt.Sprintf(" (level %d)", *s.MinLevel)
	case s.Item != "":
		return fmt.Sprintf(" (%s)", displayName(s.Item))
	case s.Trigger != "":
		return fmt.Sprintf(" (%s)", strings.ReplaceAll(s.Trigger, "-", " "))
	default:
		return ""
	}
}

func formatMultiplier(m float64) string {
	switch m {
	case 0.5:
		return "×½"
	case 0.25:
		return "×¼"
	default:
		return fmt.Sprintf("×%g", m)
	}
}

func formatID(id catalog.EntityID) string {
	return fmt.Sprintf("#%03d", int(id))
}
