package profile

import "github.com/Sternrassler/pokedex-client/pkg/catalog"

// Step is one species of a flattened evolution chain.
type Step struct {
	Name      string
	SpeciesID catalog.EntityID

	// Stage is 0 for the base species, 1 for its evolutions and so on.
	Stage int

	// From is the species this one evolves from; empty for the base.
	From string

	Trigger  string
	MinLevel *int
	Item     string
}

// FlattenChain walks the chain in pre-order: each species precedes its
// evolutions, siblings keep API order.
func FlattenChain(root catalog.ChainLink) []Step {
	var out []Step
	var walk func(link catalog.ChainLink, stage int, from string)
	walk = func(link catalog.ChainLink, stage int, from string) {
		step := Step{
			Name:  link.Species.Name,
			Stage: stage,
			From:  from,
		}
		if id, err := link.Species.ID(); err == nil {
			step.SpeciesID = id
		}
		if len(link.Details) > 0 {
			d := link.Details[0]
			step.Trigger = d.Trigger
			step.MinLevel = d.MinLevel
			step.Item = d.Item
		}
		out = append(out, step)

		for _, next := range link.EvolvesTo {
			walk(next, stage+1, link.Species.Name)
		}
	}
	walk(root, 0, "")
	return out
}

// Names returns the species names of steps in order.
func Names(steps []Step) []string {
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = s.Name
	}
	return out
}
