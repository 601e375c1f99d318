package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// GenerationTag is one of the fixed historical release groupings.
type GenerationTag string

const (
	GenerationI    GenerationTag = "generation-i"
	GenerationII   GenerationTag = "generation-ii"
	GenerationIII  GenerationTag = "generation-iii"
	GenerationIV   GenerationTag = "generation-iv"
	GenerationV    GenerationTag = "generation-v"
	GenerationVI   GenerationTag = "generation-vi"
	GenerationVII  GenerationTag = "generation-vii"
	GenerationVIII GenerationTag = "generation-viii"
	GenerationIX   GenerationTag = "generation-ix"
)

type generationInfo struct {
	Number int
	Roman  string
	Region string
	Color  string
}

var allGenerations = []GenerationTag{
	GenerationI, GenerationII, GenerationIII, GenerationIV, GenerationV,
	GenerationVI, GenerationVII, GenerationVIII, GenerationIX,
}

var generationInfos = map[GenerationTag]generationInfo{
	GenerationI:    {1, "I", "Kanto", "#ef4444"},
	GenerationII:   {2, "II", "Johto", "#f59e0b"},
	GenerationIII:  {3, "III", "Hoenn", "#10b981"},
	GenerationIV:   {4, "IV", "Sinnoh", "#3b82f6"},
	GenerationV:    {5, "V", "Unova", "#6b7280"},
	GenerationVI:   {6, "VI", "Kalos", "#ec4899"},
	GenerationVII:  {7, "VII", "Alola", "#f97316"},
	GenerationVIII: {8, "VIII", "Galar", "#8b5cf6"},
	GenerationIX:   {9, "IX", "Paldea", "#dc2626"},
}

// AllGenerations returns every generation tag in release order.
func AllGenerations() []GenerationTag {
	out := make([]GenerationTag, len(allGenerations))
	copy(out, allGenerations)
	return out
}

// ParseGenerationTag accepts the canonical tag ("generation-iv"), the roman
// numeral ("iv"), the number ("4") or the region name ("sinnoh").
func ParseGenerationTag(s string) (GenerationTag, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	if in == "" {
		return "", fmt.Errorf("empty generation")
	}

	if _, ok := generationInfos[GenerationTag(in)]; ok {
		return GenerationTag(in), nil
	}

	n, numErr := strconv.Atoi(in)
	for _, g := range allGenerations {
		info := generationInfos[g]
		switch {
		case numErr == nil && n == info.Number:
			return g, nil
		case in == strings.ToLower(info.Roman):
			return g, nil
		case in == strings.ToLower(info.Region):
			return g, nil
		}
	}

	return "", fmt.Errorf("unknown generation %q", s)
}

// Valid reports whether g is a known generation.
func (g GenerationTag) Valid() bool {
	_, ok := generationInfos[g]
	return ok
}

// Number returns the 1-based generation number, or 0 if unknown.
func (g GenerationTag) Number() int {
	return generationInfos[g].Number
}

// Region returns the region introduced by the generation.
func (g GenerationTag) Region() string {
	return generationInfos[g].Region
}

// Color returns the static display color (hex) of the generation.
func (g GenerationTag) Color() string {
	if info, ok := generationInfos[g]; ok {
		return info.Color
	}
	return "#6b7280"
}

// Label returns e.g. "Generation IV".
func (g GenerationTag) Label() string {
	info, ok := generationInfos[g]
	if !ok {
		return string(g)
	}
	return "Generation " + info.Roman
}
