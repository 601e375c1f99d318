package aggregator

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Sternrassler/pokedex-client/pkg/catalog"
)

const fakeBase = "https://pokeapi.test/api/v2"

// fakeCatalog is an in-memory Catalog.
type fakeCatalog struct {
	mu          sync.Mutex
	pokemon     map[catalog.EntityID]*catalog.EntityDetail
	generations map[catalog.GenerationTag][]catalog.EntitySummary

	// typeHook runs before GetEntitiesByType returns.
	typeHook   func(ctx context.Context, tag catalog.TypeTag)
	failDetail catalog.EntityID

	detailCalls int
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		pokemon:     make(map[catalog.EntityID]*catalog.EntityDetail),
		generations: make(map[catalog.GenerationTag][]catalog.EntitySummary),
	}
}

func (f *fakeCatalog) add(id int, name string, types ...catalog.TypeTag) {
	f.pokemon[catalog.EntityID(id)] = &catalog.EntityDetail{ID: catalog.EntityID(id), Name: name, Types: types}
}

func (f *fakeCatalog) addSpecies(gen catalog.GenerationTag, id int, name string) {
	f.generations[gen] = append(f.generations[gen], catalog.EntitySummary{
		Name: name,
		URL:  fmt.Sprintf("%s/pokemon-species/%d/", fakeBase, id),
	})
}

func (f *fakeCatalog) sortedIDs() []catalog.EntityID {
	ids := make([]catalog.EntityID, 0, len(f.pokemon))
	for id := range f.pokemon {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func summary(d *catalog.EntityDetail) catalog.EntitySummary {
	return catalog.EntitySummary{Name: d.Name, URL: fmt.Sprintf("%s/pokemon/%d/", fakeBase, d.ID)}
}

func (f *fakeCatalog) ListEntities(_ context.Context, limit, offset int) (*catalog.EntityPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ids := f.sortedIDs()
	page := &catalog.EntityPage{Count: len(ids)}
	for i := offset; i < len(ids) && i < offset+limit; i++ {
		page.Results = append(page.Results, summary(f.pokemon[ids[i]]))
	}
	return page, nil
}

func (f *fakeCatalog) GetEntityDetail(ctx context.Context, nameOrID string) (*catalog.EntityDetail, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.detailCalls++

	var id int
	if _, err := fmt.Sscanf(nameOrID, "%d", &id); err != nil {
		return nil, fmt.Errorf("fake catalog expects ids, got %q", nameOrID)
	}
	if catalog.EntityID(id) == f.failDetail {
		return nil, fmt.Errorf("detail %d unavailable", id)
	}
	d, ok := f.pokemon[catalog.EntityID(id)]
	if !ok {
		return nil, fmt.Errorf("pokemon %d not found", id)
	}
	return d, nil
}

func (f *fakeCatalog) GetEntitiesByType(ctx context.Context, tag catalog.TypeTag) ([]catalog.EntitySummary, error) {
	if f.typeHook != nil {
		f.typeHook(ctx, tag)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	var out []catalog.EntitySummary
	// reverse id order, API ordering is not guaranteed
	ids := f.sortedIDs()
	for i := len(ids) - 1; i >= 0; i-- {
		if d := f.pokemon[ids[i]]; d.HasAnyType(tag) {
			out = append(out, summary(d))
		}
	}
	return out, nil
}

func (f *fakeCatalog) GetEntitiesByGeneration(_ context.Context, tag catalog.GenerationTag) ([]catalog.EntitySummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	members, ok := f.generations[tag]
	if !ok {
		return nil, fmt.Errorf("generation %s not found", tag)
	}
	return members, nil
}

// kanto returns a small fixture with fire, water and grass entities across
// two generations.
func kanto() *fakeCatalog {
	f := newFakeCatalog()
	f.add(1, "bulbasaur", catalog.TypeGrass, catalog.TypePoison)
	f.add(4, "charmander", catalog.TypeFire)
	f.add(6, "charizard", catalog.TypeFire, catalog.TypeFlying)
	f.add(7, "squirtle", catalog.TypeWater)
	f.add(146, "moltres", catalog.TypeFire, catalog.TypeFlying)
	f.add(155, "cyndaquil", catalog.TypeFire)
	f.add(158, "totodile", catalog.TypeWater)
	f.add(10034, "charizard-mega-x", catalog.TypeFire, catalog.TypeDragon)

	for _, s := range []struct {
		id   int
		name string
	}{{1, "bulbasaur"}, {4, "charmander"}, {6, "charizard"}, {7, "squirtle"}, {146, "moltres"}} {
		f.addSpecies(catalog.GenerationI, s.id, s.name)
	}
	f.addSpecies(catalog.GenerationII, 155, "cyndaquil")
	f.addSpecies(catalog.GenerationII, 158, "totodile")
	return f
}

func ids(entities []*catalog.EntityDetail) []catalog.EntityID {
	out := make([]catalog.EntityID, len(entities))
	for i, e := range entities {
		out[i] = e.ID
	}
	return out
}
