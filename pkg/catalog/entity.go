package catalog

// EntitySummary is a named reference as returned by list, type and generation
// endpoints.
type EntitySummary struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ID resolves the numeric id from the summary's reference URL.
func (s EntitySummary) ID() (EntityID, error) {
	return IDFromURL(s.URL)
}

// EntityPage is one page of the paginated list endpoints.
type EntityPage struct {
	Count    int             `json:"count"`
	Next     string          `json:"next,omitempty"`
	Previous string          `json:"previous,omitempty"`
	Results  []EntitySummary `json:"results"`
}

// Ability is a named ability of a Pokémon.
type Ability struct {
	Name   string `json:"name"`
	Hidden bool   `json:"hidden"`
}

// Sprites holds the image references of a Pokémon.
type Sprites struct {
	Front   string `json:"front,omitempty"`
	Artwork string `json:"artwork,omitempty"`
}

// EntityDetail is the full record of a single Pokémon.
type EntityDetail struct {
	ID             EntityID  `json:"id"`
	Name           string    `json:"name"`
	BaseExperience int       `json:"base_experience"`
	Height         int       `json:"height"` // decimetres
	Weight         int       `json:"weight"` // hectograms
	Types          []TypeTag `json:"types"`
	Stats          []Stat    `json:"stats"`
	Abilities      []Ability `json:"abilities"`
	Sprites        Sprites   `json:"sprites"`

	// Species references the species this Pokémon is a variety of.
	Species EntitySummary `json:"species"`
}

// HasAnyType reports whether the Pokémon carries at least one of tags.
func (d EntityDetail) HasAnyType(tags ...TypeTag) bool {
	for _, own := range d.Types {
		for _, t := range tags {
			if own == t {
				return true
			}
		}
	}
	return false
}

// Artwork returns the official artwork, falling back to the front sprite.
func (d EntityDetail) Artwork() string {
	if d.Sprites.Artwork != "" {
		return d.Sprites.Artwork
	}
	return d.Sprites.Front
}

// HeightMeters converts the API height (decimetres) to metres.
func (d EntityDetail) HeightMeters() float64 {
	return float64(d.Height) / 10
}

// WeightKilograms converts the API weight (hectograms) to kilograms.
func (d EntityDetail) WeightKilograms() float64 {
	return float64(d.Weight) / 10
}

// Stat returns the base value of the named stat, or 0 if absent.
func (d EntityDetail) Stat(name StatName) int {
	for _, s := range d.Stats {
		if s.Name == name {
			return s.Value
		}
	}
	return 0
}

// RegularAbilities returns the non-hidden abilities.
func (d EntityDetail) RegularAbilities() []Ability {
	var out []Ability
	for _, a := range d.Abilities {
		if !a.Hidden {
			out = append(out, a)
		}
	}
	return out
}

// HiddenAbility returns the hidden ability, if the Pokémon has one.
func (d EntityDetail) HiddenAbility() (Ability, bool) {
	for _, a := range d.Abilities {
		if a.Hidden {
			return a, true
		}
	}
	return Ability{}, false
}
