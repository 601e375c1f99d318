package profile

import (
	"math/rand/v2"
	"strings"

	"github.com/Sternrassler/pokedex-client/pkg/catalog"
)

// NoDescription is shown when a species has no entry in the requested
// language.
const NoDescription = "No description available."

var controlChars = strings.NewReplacer("\n", " ", "\f", " ")

// Description picks a random flavor text in lang and replaces the line and
// form feeds the API embeds with spaces. A nil rng uses the global source.
func Description(entries []catalog.FlavorText, lang string, rng *rand.Rand) string {
	var matching []string
	for _, e := range entries {
		if e.Language == lang {
			matching = append(matching, e.Text)
		}
	}
	if len(matching) == 0 {
		return NoDescription
	}

	var i int
	if rng == nil {
		i = rand.IntN(len(matching))
	} else {
		i = rng.IntN(len(matching))
	}
	return controlChars.Replace(matching[i])
}
