// Package testutil provides a fixture-driven fake PokeAPI server for tests.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// APIPrefix is the path under which the fake API is served.
const APIPrefix = "/api/v2"

// MockResponse defines a canned response for a path.
type MockResponse struct {
	StatusCode int
	Body       string
	Headers    map[string]string
	Delay      time.Duration
}

// MockPokemon is a fixture Pokémon. Species fields default to the Pokémon's
// own id and name when empty.
type MockPokemon struct {
	ID          int
	Name        string
	Types       []string
	Stats       []int // hp, attack, defense, sp. atk, sp. def, speed
	Abilities   []string
	Hidden      string
	Height      int
	Weight      int
	Generation  string
	SpeciesID   int
	SpeciesName string
	FlavorTexts []string // english entries
	ChainID     int
}

func (p MockPokemon) speciesID() int {
	if p.SpeciesID != 0 {
		return p.SpeciesID
	}
	return p.ID
}

func (p MockPokemon) speciesName() string {
	if p.SpeciesName != "" {
		return p.SpeciesName
	}
	return p.Name
}

// MockChainLink is a fixture evolution-chain node.
type MockChainLink struct {
	Species   string
	SpeciesID int
	MinLevel  int
	Item      string
	Trigger   string
	EvolvesTo []MockChainLink
}

// MockRelations is a fixture set of defensive damage relations.
type MockRelations struct {
	DoubleFrom []string
	HalfFrom   []string
	NoFrom     []string
}

// MockPokeAPI is a configurable fake PokeAPI server.
type MockPokeAPI struct {
	server    *httptest.Server
	mu        sync.RWMutex
	handlers  map[string]http.HandlerFunc
	pokemon   []MockPokemon
	chains    map[int]MockChainLink
	relations map[string]MockRelations

	requestCount int
	requests     []string
}

// NewMockPokeAPI creates and starts a fake PokeAPI server.
func NewMockPokeAPI() *MockPokeAPI {
	mock := &MockPokeAPI{
		handlers:  make(map[string]http.HandlerFunc),
		chains:    make(map[int]MockChainLink),
		relations: make(map[string]MockRelations),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.Lock()
		mock.requestCount++
		mock.requests = append(mock.requests, r.URL.RequestURI())
		handler, exists := mock.handlers[strings.TrimRight(r.URL.Path, "/")]
		mock.mu.Unlock()

		if exists {
			handler(w, r)
			return
		}
		mock.defaultHandler(w, r)
	}))

	return mock
}

// URL returns the API root of the fake server (including /api/v2).
func (m *MockPokeAPI) URL() string {
	return m.server.URL + APIPrefix
}

// Close shuts down the mock server.
func (m *MockPokeAPI) Close() {
	m.server.Close()
}

// Reset clears the request log.
func (m *MockPokeAPI) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount = 0
	m.requests = nil
}

// RequestCount returns the number of requests served.
func (m *MockPokeAPI) RequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.requestCount
}

// Requests returns the request URIs served, in arrival order.
func (m *MockPokeAPI) Requests() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.requests))
	copy(out, m.requests)
	return out
}

// CountRequests returns how many served request URIs start with prefix
// (relative to the API root, e.g. "/pokemon/").
func (m *MockPokeAPI) CountRequests(prefix string) int {
	n := 0
	for _, r := range m.Requests() {
		if strings.HasPrefix(r, APIPrefix+prefix) {
			n++
		}
	}
	return n
}

// SetHandler overrides the handler for a path relative to the API root,
// e.g. "/type/fire".
func (m *MockPokeAPI) SetHandler(path string, handler http.HandlerFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[strings.TrimRight(APIPrefix+path, "/")] = handler
}

// SetResponse configures a canned response for a path relative to the API root.
func (m *MockPokeAPI) SetResponse(path string, resp MockResponse) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		if resp.Delay > 0 {
			time.Sleep(resp.Delay)
		}
		for key, value := range resp.Headers {
			w.Header().Set(key, value)
		}
		w.WriteHeader(resp.StatusCode)
		if resp.Body != "" {
			_, _ = w.Write([]byte(resp.Body))
		}
	})
}

// AddPokemon registers fixture Pokémon.
func (m *MockPokeAPI) AddPokemon(p ...MockPokemon) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pokemon = append(m.pokemon, p...)
}

// AddEvolutionChain registers an evolution chain fixture.
func (m *MockPokeAPI) AddEvolutionChain(id int, root MockChainLink) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chains[id] = root
}

// SetDamageRelations registers the damage relations of a type.
func (m *MockPokeAPI) SetDamageRelations(typeName string, rel MockRelations) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.relations[typeName] = rel
}

func (m *MockPokeAPI) defaultHandler(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, APIPrefix), "/")
	parts := strings.Split(rest, "/")

	m.mu.RLock()
	defer m.mu.RUnlock()

	switch {
	case len(parts) == 1 && parts[0] == "pokemon":
		m.writeList(w, r, "pokemon", m.pokemonRefs())
	case len(parts) == 1 && parts[0] == "pokemon-species":
		m.writeList(w, r, "pokemon-species", m.speciesRefs())
	case len(parts) == 2 && parts[0] == "pokemon":
		m.writePokemon(w, parts[1])
	case len(parts) == 2 && parts[0] == "pokemon-species":
		m.writeSpecies(w, parts[1])
	case len(parts) == 2 && parts[0] == "type":
		m.writeType(w, parts[1])
	case len(parts) == 2 && parts[0] == "generation":
		m.writeGeneration(w, parts[1])
	case len(parts) == 2 && parts[0] == "evolution-chain":
		m.writeChain(w, parts[1])
	default:
		http.NotFound(w, r)
	}
}

type ref struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	id   int
}

func (m *MockPokeAPI) refURL(resource string, id int) string {
	return fmt.Sprintf("%s/%s/%d/", m.URL(), resource, id)
}

func (m *MockPokeAPI) pokemonRefs() []ref {
	out := make([]ref, 0, len(m.pokemon))
	for _, p := range m.pokemon {
		out = append(out, ref{Name: p.Name, URL: m.refURL("pokemon", p.ID), id: p.ID})
	}
	return out
}

func (m *MockPokeAPI) speciesRefs() []ref {
	seen := make(map[int]bool)
	var out []ref
	for _, p := range m.pokemon {
		if seen[p.speciesID()] {
			continue
		}
		seen[p.speciesID()] = true
		out = append(out, ref{Name: p.speciesName(), URL: m.refURL("pokemon-species", p.speciesID()), id: p.speciesID()})
	}
	return out
}

func (m *MockPokeAPI) writeList(w http.ResponseWriter, r *http.Request, resource string, refs []ref) {
	sort.SliceStable(refs, func(i, j int) bool { return refs[i].id < refs[j].id })

	limit := atoiDefault(r.URL.Query().Get("limit"), 20)
	offset := atoiDefault(r.URL.Query().Get("offset"), 0)

	start := min(offset, len(refs))
	end := min(offset+limit, len(refs))

	var next, previous *string
	if end < len(refs) {
		s := fmt.Sprintf("%s/%s?offset=%d&limit=%d", m.URL(), resource, end, limit)
		next = &s
	}
	if start > 0 {
		s := fmt.Sprintf("%s/%s?offset=%d&limit=%d", m.URL(), resource, max(0, start-limit), limit)
		previous = &s
	}

	writeJSON(w, map[string]any{
		"count":    len(refs),
		"next":     next,
		"previous": previous,
		"results":  refs[start:end],
	})
}

func (m *MockPokeAPI) findPokemon(nameOrID string) (MockPokemon, bool) {
	id, err := strconv.Atoi(nameOrID)
	for _, p := range m.pokemon {
		if (err == nil && p.ID == id) || p.Name == nameOrID {
			return p, true
		}
	}
	return MockPokemon{}, false
}

func (m *MockPokeAPI) writePokemon(w http.ResponseWriter, nameOrID string) {
	p, ok := m.findPokemon(nameOrID)
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	statNames := []string{"hp", "attack", "defense", "special-attack", "special-defense", "speed"}
	stats := make([]map[string]any, 0, len(p.Stats))
	// PokeAPI order is already hp..speed; reverse it to prove the client reorders
	for i := len(p.Stats) - 1; i >= 0; i-- {
		stats = append(stats, map[string]any{
			"base_stat": p.Stats[i],
			"stat":      ref{Name: statNames[i], URL: m.refURL("stat", i+1)},
		})
	}

	types := make([]map[string]any, 0, len(p.Types))
	for i, t := range p.Types {
		types = append(types, map[string]any{"slot": i + 1, "type": ref{Name: t, URL: m.URL() + "/type/" + t + "/"}})
	}

	abilities := make([]map[string]any, 0, len(p.Abilities)+1)
	for _, a := range p.Abilities {
		abilities = append(abilities, map[string]any{"is_hidden": false, "ability": ref{Name: a}})
	}
	if p.Hidden != "" {
		abilities = append(abilities, map[string]any{"is_hidden": true, "ability": ref{Name: p.Hidden}})
	}

	writeJSON(w, map[string]any{
		"id":              p.ID,
		"name":            p.Name,
		"base_experience": 64,
		"height":          p.Height,
		"weight":          p.Weight,
		"types":           types,
		"stats":           stats,
		"abilities":       abilities,
		"species":         ref{Name: p.speciesName(), URL: m.refURL("pokemon-species", p.speciesID())},
		"sprites": map[string]any{
			"front_default": fmt.Sprintf("https://sprites.example/%d.png", p.ID),
			"other": map[string]any{
				"official-artwork": map[string]any{
					"front_default": fmt.Sprintf("https://artwork.example/%d.png", p.ID),
				},
			},
		},
	})
}

func (m *MockPokeAPI) writeSpecies(w http.ResponseWriter, nameOrID string) {
	id, err := strconv.Atoi(nameOrID)
	for _, p := range m.pokemon {
		if (err == nil && p.speciesID() == id) || p.speciesName() == nameOrID {
			entries := make([]map[string]any, 0, len(p.FlavorTexts)+1)
			for _, text := range p.FlavorTexts {
				entries = append(entries, map[string]any{
					"flavor_text": text,
					"language":    ref{Name: "en"},
					"version":     ref{Name: "red"},
				})
			}
			entries = append(entries, map[string]any{
				"flavor_text": "Texte en français.",
				"language":    ref{Name: "fr"},
				"version":     ref{Name: "x"},
			})

			body := map[string]any{
				"id":                  p.speciesID(),
				"name":                p.speciesName(),
				"generation":          ref{Name: p.Generation},
				"flavor_text_entries": entries,
			}
			if p.ChainID != 0 {
				body["evolution_chain"] = map[string]any{"url": m.refURL("evolution-chain", p.ChainID)}
			}
			writeJSON(w, body)
			return
		}
	}
	http.Error(w, "Not Found", http.StatusNotFound)
}

func (m *MockPokeAPI) writeType(w http.ResponseWriter, name string) {
	var members []map[string]any
	found := false
	for _, p := range m.pokemon {
		for slot, t := range p.Types {
			if t == name {
				found = true
				members = append(members, map[string]any{
					"slot":    slot + 1,
					"pokemon": ref{Name: p.Name, URL: m.refURL("pokemon", p.ID)},
				})
			}
		}
	}

	rel, hasRel := m.relations[name]
	if !found && !hasRel {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	// Reverse insertion order so callers cannot rely on API ordering.
	for i, j := 0, len(members)-1; i < j; i, j = i+1, j-1 {
		members[i], members[j] = members[j], members[i]
	}

	writeJSON(w, map[string]any{
		"name":    name,
		"pokemon": members,
		"damage_relations": map[string]any{
			"double_damage_from": typeRefs(rel.DoubleFrom),
			"half_damage_from":   typeRefs(rel.HalfFrom),
			"no_damage_from":     typeRefs(rel.NoFrom),
		},
	})
}

func (m *MockPokeAPI) writeGeneration(w http.ResponseWriter, name string) {
	seen := make(map[int]bool)
	species := []ref{}
	for _, p := range m.pokemon {
		if p.Generation != name || seen[p.speciesID()] {
			continue
		}
		seen[p.speciesID()] = true
		species = append(species, ref{Name: p.speciesName(), URL: m.refURL("pokemon-species", p.speciesID())})
	}
	if len(species) == 0 {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	writeJSON(w, map[string]any{"name": name, "pokemon_species": species})
}

func (m *MockPokeAPI) writeChain(w http.ResponseWriter, idStr string) {
	id, err := strconv.Atoi(idStr)
	root, ok := m.chains[id]
	if err != nil || !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	writeJSON(w, map[string]any{"id": id, "chain": m.chainJSON(root, true)})
}

func (m *MockPokeAPI) chainJSON(l MockChainLink, root bool) map[string]any {
	details := []map[string]any{}
	if !root {
		trigger := l.Trigger
		if trigger == "" {
			trigger = "level-up"
		}
		d := map[string]any{"trigger": ref{Name: trigger}, "min_level": nil, "item": nil}
		if l.MinLevel > 0 {
			d["min_level"] = l.MinLevel
		}
		if l.Item != "" {
			d["item"] = ref{Name: l.Item}
		}
		details = append(details, d)
	}

	next := []map[string]any{}
	for _, child := range l.EvolvesTo {
		next = append(next, m.chainJSON(child, false))
	}

	return map[string]any{
		"is_baby":           false,
		"species":           ref{Name: l.Species, URL: m.refURL("pokemon-species", l.SpeciesID)},
		"evolution_details": details,
		"evolves_to":        next,
	}
}

func typeRefs(names []string) []ref {
	out := make([]ref, 0, len(names))
	for _, n := range names {
		out = append(out, ref{Name: n})
	}
	return out
}

func writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_ = json.NewEncoder(w).Encode(body)
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
