// Package search provides the in-memory name index behind search
// autocomplete and the random Pokémon pick.
package search

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/Sternrassler/pokedex-client/pkg/catalog"
	"github.com/Sternrassler/pokedex-client/pkg/logging"
)

const (
	// CatalogLimit bounds the species list fetched by Build.
	CatalogLimit = 1500

	// MaxSuggestions caps the number of names Suggest returns.
	MaxSuggestions = 5
)

// ErrEmptyIndex is returned by Random when the index holds no names.
var ErrEmptyIndex = errors.New("search index is empty")

// Lister lists species names.
type Lister interface {
	ListSpecies(ctx context.Context, limit, offset int) (*catalog.EntityPage, error)
}

// Index is an immutable, ordered list of species names.
type Index struct {
	names []string
	set   map[string]struct{}
}

// Build fetches the species catalog once and indexes every name accepted by
// allow. Hyphenated names missing from the allow-list are dropped: the list
// endpoint hyphenates some forms that the detail endpoint does not resolve.
func Build(ctx context.Context, l Lister, allow catalog.AllowList) (*Index, error) {
	logger := logging.NewLogger(logging.ComponentSearch)

	page, err := l.ListSpecies(ctx, CatalogLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("list species: %w", err)
	}

	names := make([]string, 0, len(page.Results))
	for _, r := range page.Results {
		names = append(names, r.Name)
	}
	ix := NewIndex(names, allow)

	logger.Info().
		Int("listed", len(page.Results)).
		Int("indexed", ix.Len()).
		Msg("Search index built")

	return ix, nil
}

// NewIndex builds an index from names in catalog order. A nil allow-list
// accepts only unhyphenated names.
func NewIndex(names []string, allow catalog.AllowList) *Index {
	ix := &Index{set: make(map[string]struct{}, len(names))}
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" || !allow.Accepts(n) {
			continue
		}
		if _, dup := ix.set[n]; dup {
			continue
		}
		ix.set[n] = struct{}{}
		ix.names = append(ix.names, n)
	}
	return ix
}

// Suggest returns up to MaxSuggestions names containing query, in catalog
// order. Matching is case-insensitive; an empty query yields nothing.
func (ix *Index) Suggest(query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []string
	for _, n := range ix.names {
		if strings.Contains(n, q) {
			out = append(out, n)
			if len(out) == MaxSuggestions {
				break
			}
		}
	}
	return out
}

// Contains reports whether name is indexed.
func (ix *Index) Contains(name string) bool {
	_, ok := ix.set[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// Len returns the number of indexed names.
func (ix *Index) Len() int {
	return len(ix.names)
}

// Names returns a copy of the indexed names.
func (ix *Index) Names() []string {
	return append([]string(nil), ix.names...)
}

// Random picks a name uniformly. A nil rng uses the global source.
func (ix *Index) Random(rng *rand.Rand) (string, error) {
	if len(ix.names) == 0 {
		return "", ErrEmptyIndex
	}
	if rng == nil {
		return ix.names[rand.IntN(len(ix.names))], nil
	}
	return ix.names[rng.IntN(len(ix.names))], nil
}
