package compare

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sternrassler/pokedex-client/internal/testutil"
	"github.com/Sternrassler/pokedex-client/pkg/catalog"
	"github.com/Sternrassler/pokedex-client/pkg/client"
)

func newComparator(t *testing.T) *Comparator {
	t.Helper()
	mock := testutil.NewStarterAPI()
	t.Cleanup(mock.Close)

	cfg := client.DefaultConfig()
	cfg.BaseURL = mock.URL()
	c, err := client.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	return New(c)
}

func TestComparator_SelectAndChart(t *testing.T) {
	cmp := newComparator(t)
	ctx := context.Background()

	_, err := cmp.Chart()
	assert.ErrorIs(t, err, ErrNotEnoughSelected)

	d, err := cmp.Select(ctx, 0, "Pikachu")
	require.NoError(t, err)
	assert.Equal(t, "pikachu", d.Name)

	_, err = cmp.Chart()
	assert.ErrorIs(t, err, ErrNotEnoughSelected, "one slot is not enough")

	_, err = cmp.Select(ctx, 2, "charizard")
	require.NoError(t, err)
	assert.Equal(t, 2, cmp.Filled())

	chart, err := cmp.Chart()
	require.NoError(t, err)

	assert.Equal(t, []Series{
		{Slot: 0, Name: "pikachu", Color: SlotColors[0]},
		{Slot: 2, Name: "charizard", Color: SlotColors[2]},
	}, chart.Series)

	require.Len(t, chart.Axes, 6)
	labels := make([]string, len(chart.Axes))
	for i, a := range chart.Axes {
		labels[i] = a.Label
		assert.Equal(t, catalog.MaxBaseStat, a.FullMark)
		assert.Len(t, a.Values, 2)
	}
	assert.Equal(t, []string{"HP", "Attack", "Defense", "Sp. Atk", "Sp. Def", "Speed"}, labels)

	assert.Equal(t, []int{35, 78}, chart.Axes[0].Values)
	assert.Equal(t, []int{90, 100}, chart.Axes[5].Values)
}

func TestComparator_SelectFailureKeepsSlot(t *testing.T) {
	cmp := newComparator(t)
	ctx := context.Background()

	_, err := cmp.Select(ctx, 1, "squirtle")
	require.NoError(t, err)

	_, err = cmp.Select(ctx, 1, "MissingNo")
	require.Error(t, err)
	assert.EqualError(t, err, "could not find Pokémon: MissingNo")

	var lookup *LookupError
	require.True(t, errors.As(err, &lookup))
	assert.True(t, client.IsNotFound(err))

	assert.Equal(t, "squirtle", cmp.Slot(1).Name)
}

func TestComparator_SelectSpeciesName(t *testing.T) {
	cmp := newComparator(t)

	d, err := cmp.Select(context.Background(), 0, "Deoxys")
	require.NoError(t, err)
	assert.Equal(t, "deoxys-normal", d.Name)
	assert.Equal(t, 150, d.Stat(catalog.StatAttack))
}

func TestComparator_Clear(t *testing.T) {
	cmp := newComparator(t)
	ctx := context.Background()

	for i, name := range []string{"bulbasaur", "charmander", "squirtle"} {
		_, err := cmp.Select(ctx, i, name)
		require.NoError(t, err)
	}
	require.Equal(t, 3, cmp.Filled())

	require.NoError(t, cmp.Clear(0))
	require.NoError(t, cmp.Clear(1))
	assert.Nil(t, cmp.Slot(0))
	assert.Equal(t, 1, cmp.Filled())

	_, err := cmp.Chart()
	assert.ErrorIs(t, err, ErrNotEnoughSelected)
}

func TestComparator_InvalidSlot(t *testing.T) {
	cmp := newComparator(t)

	for _, slot := range []int{-1, Slots} {
		_, err := cmp.Select(context.Background(), slot, "pikachu")
		assert.ErrorIs(t, err, ErrInvalidSlot)
		assert.ErrorIs(t, cmp.Clear(slot), ErrInvalidSlot)
		assert.Nil(t, cmp.Slot(slot))
	}
}
