package search

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sternrassler/pokedex-client/internal/testutil"
	"github.com/Sternrassler/pokedex-client/pkg/catalog"
	"github.com/Sternrassler/pokedex-client/pkg/client"
)

func TestSuggest(t *testing.T) {
	ix := NewIndex([]string{"charmander", "charmeleon", "charizard", "pikachu"}, nil)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"prefix", "char", []string{"charmander", "charmeleon", "charizard"}},
		{"case-insensitive", "CHAR", []string{"charmander", "charmeleon", "charizard"}},
		{"substring", "zard", []string{"charizard"}},
		{"trimmed", "  pika ", []string{"pikachu"}},
		{"no match", "mew", nil},
		{"empty", "", nil},
		{"blank", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ix.Suggest(tt.query))
		})
	}
}

func TestSuggest_CappedInCatalogOrder(t *testing.T) {
	ix := NewIndex([]string{"abra", "kadabra", "alakazam", "arbok", "rattata", "raticate", "pidgey", "spearow"}, nil)

	got := ix.Suggest("a")
	assert.Len(t, got, MaxSuggestions)
	assert.Equal(t, []string{"abra", "kadabra", "alakazam", "arbok", "rattata"}, got)
}

func TestNewIndex_HyphenatedNames(t *testing.T) {
	names := []string{"mr-mime", "ho-oh", "deoxys", "charizard-mega-x", "Pikachu", "pikachu", ""}

	ix := NewIndex(names, catalog.DefaultAllowList())
	assert.Equal(t, []string{"mr-mime", "ho-oh", "deoxys", "pikachu"}, ix.Names())
	assert.True(t, ix.Contains("Mr-Mime"))
	assert.False(t, ix.Contains("charizard-mega-x"))

	bare := NewIndex(names, nil)
	assert.Equal(t, []string{"deoxys", "pikachu"}, bare.Names())
}

func TestRandom(t *testing.T) {
	ix := NewIndex([]string{"bulbasaur", "charmander", "squirtle"}, nil)
	rng := rand.New(rand.NewPCG(1, 2))

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		name, err := ix.Random(rng)
		require.NoError(t, err)
		require.True(t, ix.Contains(name))
		seen[name] = true
	}
	assert.Len(t, seen, 3)

	name, err := ix.Random(nil)
	require.NoError(t, err)
	assert.True(t, ix.Contains(name))

	_, err = NewIndex(nil, nil).Random(rng)
	assert.ErrorIs(t, err, ErrEmptyIndex)
}

type failingLister struct{}

func (failingLister) ListSpecies(context.Context, int, int) (*catalog.EntityPage, error) {
	return nil, errors.New("offline")
}

func TestBuild_Error(t *testing.T) {
	_, err := Build(context.Background(), failingLister{}, catalog.DefaultAllowList())
	assert.Error(t, err)
}

func TestBuild_AgainstMockAPI(t *testing.T) {
	mock := testutil.NewStarterAPI()
	defer mock.Close()

	cfg := client.DefaultConfig()
	cfg.BaseURL = mock.URL()
	c, err := client.New(cfg)
	require.NoError(t, err)
	defer c.Close()

	ix, err := Build(context.Background(), c, catalog.DefaultAllowList())
	require.NoError(t, err)

	assert.Equal(t, 1, mock.CountRequests("/pokemon-species"))
	assert.Contains(t, mock.Requests()[0], "limit=1500")

	assert.Equal(t, []string{"charmander", "charmeleon", "charizard"}, ix.Suggest("char"))
	assert.True(t, ix.Contains("mr-mime"))
	assert.True(t, ix.Contains("deoxys"))
	assert.Equal(t, 11, ix.Len())
}
