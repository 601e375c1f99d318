package aggregator

import (
	"fmt"
	"sort"

	"github.com/Sternrassler/pokedex-client/pkg/catalog"
)

// Candidate is a matched entity with its resolved numeric id.
type Candidate struct {
	Name string
	ID   catalog.EntityID
}

// unionByName merges member lists (OR). The first reference seen for a name
// wins.
func unionByName(lists ...[]catalog.EntitySummary) map[string]catalog.EntitySummary {
	out := make(map[string]catalog.EntitySummary)
	for _, list := range lists {
		for _, s := range list {
			if _, ok := out[s.Name]; !ok {
				out[s.Name] = s
			}
		}
	}
	return out
}

// intersect keeps the type members that belong to one of the generation
// species (AND). A member belongs to a species when the names are equal or
// when its id equals the species id; the latter covers default varieties
// whose name differs from the species name (deoxys-normal → deoxys).
// Alternate forms carry their own ids and never match.
func intersect(types, generations map[string]catalog.EntitySummary) (map[string]catalog.EntitySummary, error) {
	speciesIDs := make(map[catalog.EntityID]bool, len(generations))
	for _, s := range generations {
		id, err := s.ID()
		if err != nil {
			return nil, fmt.Errorf("species %q: %w", s.Name, err)
		}
		speciesIDs[id] = true
	}

	out := make(map[string]catalog.EntitySummary)
	for name, member := range types {
		if _, ok := generations[name]; ok {
			out[name] = member
			continue
		}
		id, err := member.ID()
		if err != nil {
			return nil, fmt.Errorf("pokemon %q: %w", name, err)
		}
		if speciesIDs[id] {
			out[name] = member
		}
	}
	return out, nil
}

// resolve extracts each member's id from its reference URL and sorts the
// result by ascending id. Names break ties so the order never depends on map
// iteration.
func resolve(members map[string]catalog.EntitySummary) ([]Candidate, error) {
	out := make([]Candidate, 0, len(members))
	for name, s := range members {
		id, err := s.ID()
		if err != nil {
			return nil, fmt.Errorf("resolve %q: %w", name, err)
		}
		out = append(out, Candidate{Name: name, ID: id})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].ID != out[j].ID {
			return out[i].ID < out[j].ID
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func keys(candidates []Candidate) []string {
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.ID.String()
	}
	return out
}
