package profile

import (
	"math/rand/v2"
	"testing"

	"github.com/Sternrassler/pokedex-client/pkg/catalog"
)

func TestDescription(t *testing.T) {
	entries := []catalog.FlavorText{
		{Text: "Texte en français.", Language: "fr"},
		{Text: "A strange seed was\nplanted on its\fback at birth.", Language: "en"},
	}

	tests := []struct {
		name    string
		entries []catalog.FlavorText
		lang    string
		want    string
	}{
		{"english cleaned", entries, "en", "A strange seed was planted on its back at birth."},
		{"other language", entries, "fr", "Texte en français."},
		{"missing language", entries, "de", NoDescription},
		{"no entries", nil, "en", NoDescription},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Description(tt.entries, tt.lang, rand.New(rand.NewPCG(7, 7))); got != tt.want {
				t.Errorf("Description() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDescription_RandomAmongMatching(t *testing.T) {
	entries := []catalog.FlavorText{
		{Text: "one", Language: "en"},
		{Text: "zwei", Language: "de"},
		{Text: "two", Language: "en"},
	}

	rng := rand.New(rand.NewPCG(1, 1))
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		seen[Description(entries, "en", rng)] = true
	}

	if len(seen) != 2 || !seen["one"] || !seen["two"] {
		t.Errorf("expected both english entries to be picked, got %v", seen)
	}

	if got := Description(entries, "de", nil); got != "zwei" {
		t.Errorf("Description(nil rng) = %q", got)
	}
}
