package catalog

// FlavorText is a localized description entry of a species.
type FlavorText struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Version  string `json:"version,omitempty"`
}

// Species is the species-level record: generation, descriptions and the
// evolution chain reference.
type Species struct {
	ID                EntityID      `json:"id"`
	Name              string        `json:"name"`
	Generation        GenerationTag `json:"generation"`
	FlavorTexts       []FlavorText  `json:"flavor_texts"`
	EvolutionChainURL string        `json:"evolution_chain_url"`
}

// EvolutionDetail is the trigger and condition of a single evolution step.
type EvolutionDetail struct {
	Trigger  string `json:"trigger"`
	MinLevel *int   `json:"min_level,omitempty"`
	Item     string `json:"item,omitempty"`
}

// ChainLink is a node of the recursive evolution tree.
type ChainLink struct {
	Species   EntitySummary     `json:"species"`
	IsBaby    bool              `json:"is_baby"`
	Details   []EvolutionDetail `json:"details,omitempty"`
	EvolvesTo []ChainLink       `json:"evolves_to,omitempty"`
}

// EvolutionChain is the evolution tree rooted at its base species.
type EvolutionChain struct {
	ID    EntityID  `json:"id"`
	Chain ChainLink `json:"chain"`
}

// DamageRelations lists, for one defending type, the attacking types that
// deal double, half or no damage to it.
type DamageRelations struct {
	Type             TypeTag   `json:"type"`
	DoubleDamageFrom []TypeTag `json:"double_damage_from"`
	HalfDamageFrom   []TypeTag `json:"half_damage_from"`
	NoDamageFrom     []TypeTag `json:"no_damage_from"`
}
