package catalog

import "strings"

// ValidHyphenatedNames lists species whose canonical name contains a hyphen.
// Any other hyphenated name in the list endpoints is a form or variant whose
// spelling does not resolve consistently against the detail endpoint.
var ValidHyphenatedNames = []string{
	"nidoran-f", "nidoran-m", "mr-mime", "ho-oh", "mime-jr", "porygon-z",
	"type-null", "jangmo-o", "hakamo-o", "kommo-o",
	"tapu-koko", "tapu-lele", "tapu-bulu", "tapu-fini",
	"mr-rime", "great-tusk", "scream-tail", "brute-bonnet", "flutter-mane",
	"slither-wing", "sandy-shocks", "iron-treads", "iron-bundle", "iron-hands",
	"iron-jugulis", "iron-moth", "iron-thorns", "roaring-moon", "iron-valiant",
	"wo-chien", "chien-pao", "ting-lu", "chi-yu",
	"walking-wake", "iron-leaves", "gouging-fire", "raging-bolt",
	"iron-boulder", "iron-crown",
}

// AllowList is a set of hyphenated names that are accepted as-is.
type AllowList map[string]struct{}

// NewAllowList builds an AllowList from names (case-insensitive).
func NewAllowList(names []string) AllowList {
	al := make(AllowList, len(names))
	for _, n := range names {
		al[strings.ToLower(n)] = struct{}{}
	}
	return al
}

// DefaultAllowList returns the allow-list built from ValidHyphenatedNames.
func DefaultAllowList() AllowList {
	return NewAllowList(ValidHyphenatedNames)
}

// Accepts reports whether name should be kept: unhyphenated names always are,
// hyphenated ones only when allow-listed.
func (al AllowList) Accepts(name string) bool {
	if !strings.Contains(name, "-") {
		return true
	}
	_, ok := al[strings.ToLower(name)]
	return ok
}
