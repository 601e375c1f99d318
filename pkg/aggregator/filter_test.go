package aggregator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sternrassler/pokedex-client/pkg/catalog"
)

func TestFilterState_Validate(t *testing.T) {
	tests := []struct {
		name    string
		state   FilterState
		wantErr error
	}{
		{"empty first page", NewFilterState(), nil},
		{"page zero", FilterState{Page: 0}, ErrInvalidPage},
		{"three types", FilterState{Types: []catalog.TypeTag{"fire", "water", "grass"}, Page: 1}, nil},
		{"four types", FilterState{Types: []catalog.TypeTag{"fire", "water", "grass", "ice"}, Page: 1}, ErrTooManyTypes},
		{"three generations", FilterState{Generations: []catalog.GenerationTag{"generation-i", "generation-ii", "generation-iii"}, Page: 1}, ErrTooManyGenerations},
		{"duplicate type", FilterState{Types: []catalog.TypeTag{"fire", "fire"}, Page: 1}, ErrDuplicateFilter},
		{"duplicate generation", FilterState{Generations: []catalog.GenerationTag{"generation-i", "generation-i"}, Page: 1}, ErrDuplicateFilter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.state.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFilterState_Validate_UnknownTags(t *testing.T) {
	assert.Error(t, FilterState{Types: []catalog.TypeTag{"shadow"}, Page: 1}.Validate())
	assert.Error(t, FilterState{Generations: []catalog.GenerationTag{"generation-x"}, Page: 1}.Validate())
}

func TestFilterState_ChangingFiltersResetsPage(t *testing.T) {
	base := FilterState{Page: 4}

	withTypes, err := base.WithTypes(catalog.TypeFire)
	require.NoError(t, err)
	assert.Equal(t, 1, withTypes.Page)

	withGens, err := base.WithGenerations(catalog.GenerationII)
	require.NoError(t, err)
	assert.Equal(t, 1, withGens.Page)

	paged, err := withTypes.WithPage(3)
	require.NoError(t, err)
	toggled, err := paged.ToggleType(catalog.TypeWater)
	require.NoError(t, err)
	assert.Equal(t, 1, toggled.Page)

	paged, err = toggled.WithPage(2)
	require.NoError(t, err)
	toggled, err = paged.ToggleGeneration(catalog.GenerationI)
	require.NoError(t, err)
	assert.Equal(t, 1, toggled.Page)

	// page changes keep the selection
	assert.Equal(t, []catalog.TypeTag{catalog.TypeFire, catalog.TypeWater}, paged.Types)
}

func TestFilterState_ToggleType(t *testing.T) {
	state := NewFilterState()

	var err error
	for _, tag := range []catalog.TypeTag{catalog.TypeFire, catalog.TypeWater, catalog.TypeGrass} {
		state, err = state.ToggleType(tag)
		require.NoError(t, err)
	}
	assert.Len(t, state.Types, 3)

	full, err := state.ToggleType(catalog.TypeIce)
	assert.True(t, errors.Is(err, ErrTooManyTypes))
	assert.Equal(t, state.Types, full.Types, "rejected toggle must not change the selection")

	state, err = state.ToggleType(catalog.TypeWater)
	require.NoError(t, err)
	assert.Equal(t, []catalog.TypeTag{catalog.TypeFire, catalog.TypeGrass}, state.Types)
}

func TestFilterState_ToggleGeneration_Limit(t *testing.T) {
	state, err := NewFilterState().WithGenerations(catalog.GenerationI, catalog.GenerationII)
	require.NoError(t, err)

	_, err = state.ToggleGeneration(catalog.GenerationIII)
	assert.ErrorIs(t, err, ErrTooManyGenerations)

	_, err = state.WithGenerations(catalog.GenerationI, catalog.GenerationII, catalog.GenerationIII)
	assert.ErrorIs(t, err, ErrTooManyGenerations)
}

func TestFilterState_IsValueType(t *testing.T) {
	original, err := NewFilterState().WithTypes(catalog.TypeFire)
	require.NoError(t, err)

	modified, err := original.ToggleType(catalog.TypeWater)
	require.NoError(t, err)
	modified.Types[0] = catalog.TypeIce

	assert.Equal(t, []catalog.TypeTag{catalog.TypeFire}, original.Types)
}

func TestFilterState_WithPage_Invalid(t *testing.T) {
	_, err := NewFilterState().WithPage(0)
	assert.ErrorIs(t, err, ErrInvalidPage)
}

func TestStrategyFor(t *testing.T) {
	tests := []struct {
		state FilterState
		want  Strategy
	}{
		{FilterState{Page: 1}, StrategyAll},
		{FilterState{Types: []catalog.TypeTag{"fire"}, Page: 1}, StrategyTypes},
		{FilterState{Types: []catalog.TypeTag{"fire"}, Generations: []catalog.GenerationTag{"generation-i"}, Page: 1}, StrategyTypesGenerations},
		{FilterState{Generations: []catalog.GenerationTag{"generation-i"}, Page: 1}, StrategyGenerations},
	}

	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			assert.Equal(t, tt.want, StrategyFor(tt.state))
		})
	}
}
