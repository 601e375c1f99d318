package profile

import "github.com/Sternrassler/pokedex-client/pkg/catalog"

// GroupMultipliers are the multipliers reported by Groups, in display order.
var GroupMultipliers = []float64{4, 2, 0.5, 0.25, 0}

// Effectiveness maps each attacking type to its damage multiplier against
// a defender.
type Effectiveness map[catalog.TypeTag]float64

// Group is the set of attacking types sharing one multiplier.
type Group struct {
	Multiplier float64
	Types      []catalog.TypeTag
}

// ComputeEffectiveness combines the damage relations of a defender's types.
// Every type starts at ×1; per defending type, double damage doubles, half
// damage halves and no damage sets the multiplier to 0.
func ComputeEffectiveness(relations []*catalog.DamageRelations) Effectiveness {
	eff := make(Effectiveness, len(catalog.AllTypes()))
	for _, t := range catalog.AllTypes() {
		eff[t] = 1
	}

	for _, rel := range relations {
		if rel == nil {
			continue
		}
		for _, t := range rel.DoubleDamageFrom {
			if _, ok := eff[t]; ok {
				eff[t] *= 2
			}
		}
		for _, t := range rel.HalfDamageFrom {
			if _, ok := eff[t]; ok {
				eff[t] *= 0.5
			}
		}
		for _, t := range rel.NoDamageFrom {
			if _, ok := eff[t]; ok {
				eff[t] = 0
			}
		}
	}
	return eff
}

// Multiplier returns the multiplier of an attacking type (1 if unknown).
func (e Effectiveness) Multiplier(t catalog.TypeTag) float64 {
	if m, ok := e[t]; ok {
		return m
	}
	return 1
}

// Groups buckets the attacking types by multiplier in GroupMultipliers order.
// Neutral types are omitted, as are empty groups.
func (e Effectiveness) Groups() []Group {
	var out []Group
	for _, m := range GroupMultipliers {
		var types []catalog.TypeTag
		for _, t := range catalog.AllTypes() {
			if v, ok := e[t]; ok && v == m {
				types = append(types, t)
			}
		}
		if len(types) > 0 {
			out = append(out, Group{Multiplier: m, Types: types})
		}
	}
	return out
}

// Weaknesses returns the types dealing more than normal damage.
func (e Effectiveness) Weaknesses() []catalog.TypeTag {
	var out []catalog.TypeTag
	for _, t := range catalog.AllTypes() {
		if e.Multiplier(t) > 1 {
			out = append(out, t)
		}
	}
	return out
}
