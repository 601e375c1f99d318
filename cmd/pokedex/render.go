package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Sternrassler/pokedex-client/pkg/catalog"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle   = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
	idStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ca3af"))
	barStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#10b981"))
)

// displayName turns an API name into a title: "mr-mime" -> "Mr Mime".
func displayName(name string) string {
	parts := strings.Split(name, "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

func typeBadge(t catalog.TypeTag) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color(t.Color())).
		Padding(0, 1).
		Render(t.Label())
}

func typeBadges(tags []catalog.TypeTag) string {
	badges := make([]string, len(tags))
	for i, t := range tags {
		badges[i] = typeBadge(t)
	}
	return strings.Join(badges, " ")
}

func generationBadge(g catalog.GenerationTag) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(g.Color())).
		Render(g.Label() + " · " + g.Region())
}

func seriesStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

func statBar(value, width int) string {
	return statBarScaled(value, catalog.MaxBaseStat, width)
}

func statBarScaled(value, fullMark, width int) string {
	if fullMark <= 0 {
		return ""
	}
	n := value * width / fullMark
	n = max(0, min(n, width))
	return barStyle.Render(strings.Repeat("█", n)) + strings.Repeat("░", width-n)
}
