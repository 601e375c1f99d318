package catalog

// StatName is the PokeAPI name of a base stat.
type StatName string

const (
	StatHP             StatName = "hp"
	StatAttack         StatName = "attack"
	StatDefense        StatName = "defense"
	StatSpecialAttack  StatName = "special-attack"
	StatSpecialDefense StatName = "special-defense"
	StatSpeed          StatName = "speed"
)

// MaxBaseStat is the upper bound of any base stat, used as the chart full mark.
const MaxBaseStat = 255

// StatOrder is the fixed display order of the six base stats.
var StatOrder = []StatName{
	StatHP,
	StatAttack,
	StatDefense,
	StatSpecialAttack,
	StatSpecialDefense,
	StatSpeed,
}

var statLabels = map[StatName]string{
	StatHP:             "HP",
	StatAttack:         "Attack",
	StatDefense:        "Defense",
	StatSpecialAttack:  "Sp. Atk",
	StatSpecialDefense: "Sp. Def",
	StatSpeed:          "Speed",
}

// Label returns the short display label of the stat.
func (s StatName) Label() string {
	if l, ok := statLabels[s]; ok {
		return l
	}
	return string(s)
}

// Stat is a single named base stat value.
type Stat struct {
	Name  StatName `json:"name"`
	Value int      `json:"value"`
}

// OrderStats returns exactly six stats in StatOrder. Missing stats are zero
// and unknown stat names are dropped.
func OrderStats(in []Stat) []Stat {
	byName := make(map[StatName]int, len(in))
	for _, s := range in {
		byName[s.Name] = s.Value
	}

	out := make([]Stat, len(StatOrder))
	for i, name := range StatOrder {
		out[i] = Stat{Name: name, Value: byName[name]}
	}
	return out
}
