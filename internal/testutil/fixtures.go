package testutil

// Starter returns a small Kanto/Johto fixture set covering single and dual
// types, a three-stage chain and a cross-generation evolution.
func Starter() []MockPokemon {
	return []MockPokemon{
		{ID: 1, Name: "bulbasaur", Types: []string{"grass", "poison"}, Generation: "generation-i", Stats: []int{45, 49, 49, 65, 65, 45}, Abilities: []string{"overgrow"}, Hidden: "chlorophyll", Height: 7, Weight: 69, ChainID: 1,
			FlavorTexts: []string{"A strange seed was\nplanted on its\fback at birth."}},
		{ID: 4, Name: "charmander", Types: []string{"fire"}, Generation: "generation-i", Stats: []int{39, 52, 43, 60, 50, 65}, Abilities: []string{"blaze"}, Hidden: "solar-power", ChainID: 2},
		{ID: 5, Name: "charmeleon", Types: []string{"fire"}, Generation: "generation-i", Stats: []int{58, 64, 58, 80, 65, 80}, Abilities: []string{"blaze"}, ChainID: 2},
		{ID: 6, Name: "charizard", Types: []string{"fire", "flying"}, Generation: "generation-i", Stats: []int{78, 84, 78, 109, 85, 100}, Abilities: []string{"blaze"}, ChainID: 2},
		{ID: 7, Name: "squirtle", Types: []string{"water"}, Generation: "generation-i", Stats: []int{44, 48, 65, 50, 64, 43}, Abilities: []string{"torrent"}},
		{ID: 25, Name: "pikachu", Types: []string{"electric"}, Generation: "generation-i", Stats: []int{35, 55, 40, 50, 50, 90}, Abilities: []string{"static"}, ChainID: 10},
		{ID: 122, Name: "mr-mime", Types: []string{"psychic", "fairy"}, Generation: "generation-i", Stats: []int{40, 45, 65, 100, 120, 90}},
		{ID: 155, Name: "cyndaquil", Types: []string{"fire"}, Generation: "generation-ii", Stats: []int{39, 52, 43, 60, 50, 65}},
		{ID: 158, Name: "totodile", Types: []string{"water"}, Generation: "generation-ii", Stats: []int{50, 65, 64, 44, 48, 43}},
		{ID: 172, Name: "pichu", Types: []string{"electric"}, Generation: "generation-ii", Stats: []int{20, 40, 15, 35, 35, 60}, ChainID: 10},
		{ID: 386, Name: "deoxys-normal", SpeciesName: "deoxys", Types: []string{"psychic"}, Generation: "generation-iii", Stats: []int{50, 150, 50, 150, 50, 150}},
		{ID: 10034, Name: "charizard-mega-x", SpeciesID: 6, SpeciesName: "charizard", Types: []string{"fire", "dragon"}, Generation: "generation-i", Stats: []int{78, 130, 111, 130, 85, 100}},
	}
}

// BulbasaurChain returns the bulbasaur evolution chain fixture.
func BulbasaurChain() MockChainLink {
	return MockChainLink{
		Species: "bulbasaur", SpeciesID: 1,
		EvolvesTo: []MockChainLink{{
			Species: "ivysaur", SpeciesID: 2, MinLevel: 16,
			EvolvesTo: []MockChainLink{{Species: "venusaur", SpeciesID: 3, MinLevel: 32}},
		}},
	}
}

// CharmanderChain returns the charmander evolution chain fixture.
func CharmanderChain() MockChainLink {
	return MockChainLink{
		Species: "charmander", SpeciesID: 4,
		EvolvesTo: []MockChainLink{{
			Species: "charmeleon", SpeciesID: 5, MinLevel: 16,
			EvolvesTo: []MockChainLink{{Species: "charizard", SpeciesID: 6, MinLevel: 36}},
		}},
	}
}

// PikachuChain returns the pichu → pikachu → raichu chain fixture.
func PikachuChain() MockChainLink {
	return MockChainLink{
		Species: "pichu", SpeciesID: 172,
		EvolvesTo: []MockChainLink{{
			Species: "pikachu", SpeciesID: 25, Trigger: "level-up",
			EvolvesTo: []MockChainLink{{Species: "raichu", SpeciesID: 26, Trigger: "use-item", Item: "thunder-stone"}},
		}},
	}
}

// NewStarterAPI returns a started fake API loaded with Starter, its chains
// and the damage relations of fire, flying and electric.
func NewStarterAPI() *MockPokeAPI {
	m := NewMockPokeAPI()
	m.AddPokemon(Starter()...)
	m.AddEvolutionChain(1, BulbasaurChain())
	m.AddEvolutionChain(2, CharmanderChain())
	m.AddEvolutionChain(10, PikachuChain())
	m.SetDamageRelations("fire", MockRelations{
		DoubleFrom: []string{"ground", "rock", "water"},
		HalfFrom:   []string{"bug", "steel", "fire", "grass", "ice", "fairy"},
	})
	m.SetDamageRelations("flying", MockRelations{
		DoubleFrom: []string{"rock", "electric", "ice"},
		HalfFrom:   []string{"fighting", "bug", "grass"},
		NoFrom:     []string{"ground"},
	})
	m.SetDamageRelations("electric", MockRelations{
		DoubleFrom: []string{"ground"},
		HalfFrom:   []string{"flying", "steel", "electric"},
	})
	return m
}
