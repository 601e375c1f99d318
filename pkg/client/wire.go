package client

import (
	"sort"
	"strings"

	"github.com/Sternrassler/pokedex-client/pkg/catalog"
)

// JSON shapes of the PokeAPI responses we consume. They are converted to
// catalog records immediately after decoding.

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

func (r namedResource) summary() catalog.EntitySummary {
	return catalog.EntitySummary{Name: r.Name, URL: r.URL}
}

type listResponse struct {
	Count    int             `json:"count"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Results  []namedResource `json:"results"`
}

func (r listResponse) page() *catalog.EntityPage {
	p := &catalog.EntityPage{
		Count:   r.Count,
		Results: make([]catalog.EntitySummary, 0, len(r.Results)),
	}
	if r.Next != nil {
		p.Next = *r.Next
	}
	if r.Previous != nil {
		p.Previous = *r.Previous
	}
	for _, res := range r.Results {
		p.Results = append(p.Results, res.summary())
	}
	return p
}

type pokemonResponse struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	BaseExperience int    `json:"base_experience"`
	Height         int    `json:"height"`
	Weight         int    `json:"weight"`
	Types          []struct {
		Slot int           `json:"slot"`
		Type namedResource `json:"type"`
	} `json:"types"`
	Stats []struct {
		BaseStat int           `json:"base_stat"`
		Stat     namedResource `json:"stat"`
	} `json:"stats"`
	Abilities []struct {
		IsHidden bool          `json:"is_hidden"`
		Ability  namedResource `json:"ability"`
	} `json:"abilities"`
	Species namedResource `json:"species"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
		Other        struct {
			OfficialArtwork struct {
				FrontDefault string `json:"front_default"`
			} `json:"official-artwork"`
		} `json:"other"`
	} `json:"sprites"`
}

func (r pokemonResponse) detail() *catalog.EntityDetail {
	d := &catalog.EntityDetail{
		ID:             catalog.EntityID(r.ID),
		Name:           r.Name,
		BaseExperience: r.BaseExperience,
		Height:         r.Height,
		Weight:         r.Weight,
		Sprites: catalog.Sprites{
			Front:   r.Sprites.FrontDefault,
			Artwork: r.Sprites.Other.OfficialArtwork.FrontDefault,
		},
		Species: r.Species.summary(),
	}

	slots := r.Types
	sort.SliceStable(slots, func(i, j int) bool { return slots[i].Slot < slots[j].Slot })
	for _, t := range slots {
		d.Types = append(d.Types, catalog.TypeTag(t.Type.Name))
	}

	stats := make([]catalog.Stat, 0, len(r.Stats))
	for _, s := range r.Stats {
		stats = append(stats, catalog.Stat{Name: catalog.StatName(s.Stat.Name), Value: s.BaseStat})
	}
	d.Stats = catalog.OrderStats(stats)

	for _, a := range r.Abilities {
		d.Abilities = append(d.Abilities, catalog.Ability{Name: a.Ability.Name, Hidden: a.IsHidden})
	}

	return d
}

type typeResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Pokemon []struct {
		Slot    int           `json:"slot"`
		Pokemon namedResource `json:"pokemon"`
	} `json:"pokemon"`
	DamageRelations struct {
		DoubleDamageFrom []namedResource `json:"double_damage_from"`
		HalfDamageFrom   []namedResource `json:"half_damage_from"`
		NoDamageFrom     []namedResource `json:"no_damage_from"`
	} `json:"damage_relations"`
}

func (r typeResponse) members() []catalog.EntitySummary {
	out := make([]catalog.EntitySummary, 0, len(r.Pokemon))
	for _, p := range r.Pokemon {
		out = append(out, p.Pokemon.summary())
	}
	return out
}

func (r typeResponse) relations() *catalog.DamageRelations {
	return &catalog.DamageRelations{
		Type:             catalog.TypeTag(r.Name),
		DoubleDamageFrom: typeTags(r.DamageRelations.DoubleDamageFrom),
		HalfDamageFrom:   typeTags(r.DamageRelations.HalfDamageFrom),
		NoDamageFrom:     typeTags(r.DamageRelations.NoDamageFrom),
	}
}

func typeTags(in []namedResource) []catalog.TypeTag {
	out := make([]catalog.TypeTag, 0, len(in))
	for _, r := range in {
		out = append(out, catalog.TypeTag(r.Name))
	}
	return out
}

type generationResponse struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	PokemonSpecies []namedResource `json:"pokemon_species"`
}

func (r generationResponse) members() []catalog.EntitySummary {
	out := make([]catalog.EntitySummary, 0, len(r.PokemonSpecies))
	for _, s := range r.PokemonSpecies {
		out = append(out, s.summary())
	}
	return out
}

type speciesResponse struct {
	ID             int           `json:"id"`
	Name           string        `json:"name"`
	Generation     namedResource `json:"generation"`
	EvolutionChain struct {
		URL string `json:"url"`
	} `json:"evolution_chain"`
	FlavorTextEntries []struct {
		FlavorText string        `json:"flavor_text"`
		Language   namedResource `json:"language"`
		Version    namedResource `json:"version"`
	} `json:"flavor_text_entries"`
}

func (r speciesResponse) species() *catalog.Species {
	s := &catalog.Species{
		ID:                catalog.EntityID(r.ID),
		Name:              r.Name,
		Generation:        catalog.GenerationTag(r.Generation.Name),
		EvolutionChainURL: r.EvolutionChain.URL,
	}
	for _, ft := range r.FlavorTextEntries {
		s.FlavorTexts = append(s.FlavorTexts, catalog.FlavorText{
			Text:     ft.FlavorText,
			Language: ft.Language.Name,
			Version:  ft.Version.Name,
		})
	}
	return s
}

type chainLinkResponse struct {
	IsBaby           bool          `json:"is_baby"`
	Species          namedResource `json:"species"`
	EvolutionDetails []struct {
		Trigger  namedResource  `json:"trigger"`
		MinLevel *int           `json:"min_level"`
		Item     *namedResource `json:"item"`
	} `json:"evolution_details"`
	EvolvesTo []chainLinkResponse `json:"evolves_to"`
}

func (r chainLinkResponse) link() catalog.ChainLink {
	l := catalog.ChainLink{
		Species: r.Species.summary(),
		IsBaby:  r.IsBaby,
	}
	for _, d := range r.EvolutionDetails {
		detail := catalog.EvolutionDetail{
			Trigger:  strings.TrimSpace(d.Trigger.Name),
			MinLevel: d.MinLevel,
		}
		if d.Item != nil {
			detail.Item = d.Item.Name
		}
		l.Details = append(l.Details, detail)
	}
	for _, next := range r.EvolvesTo {
		l.EvolvesTo = append(l.EvolvesTo, next.link())
	}
	return l
}

type evolutionChainResponse struct {
	ID    int               `json:"id"`
	Chain chainLinkResponse `json:"chain"`
}
