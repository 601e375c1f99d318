package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sternrassler/pokedex-client/internal/config"
	"github.com/Sternrassler/pokedex-client/internal/testutil"
	"github.com/Sternrassler/pokedex-client/pkg/aggregator"
)

func run(t *testing.T, mock *testutil.MockPokeAPI, args ...string) (string, string, error) {
	t.Helper()
	for _, k := range []string{config.EnvBaseURL, config.EnvRedisAddr, config.EnvTimeout, config.EnvLogLevel} {
		t.Setenv(k, "")
	}

	base := []string{
		"--env-file", filepath.Join(t.TempDir(), "none.env"),
		"--base-url", mock.URL(),
		"--log-level", "disabled",
	}

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(base, args...))

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestList(t *testing.T) {
	mock := testutil.NewStarterAPI()
	defer mock.Close()

	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
	}{
		{
			name: "unfiltered",
			args: []string{"list"},
			want: []string{"#001", "Bulbasaur", "Mr Mime", "Page 1 of 1 · 12 Pokémon"},
		},
		{
			name:    "types and generation",
			args:    []string{"list", "--type", "fire", "--generation", "i"},
			want:    []string{"Charmander", "Charmeleon", "Charizard", "3 matching Pokémon"},
			notWant: []string{"Cyndaquil", "Mega"},
		},
		{
			name:    "generation by region",
			args:    []string{"list", "-g", "johto"},
			want:    []string{"Cyndaquil", "Totodile", "Pichu"},
			notWant: []string{"Bulbasaur"},
		},
		{
			name: "no match",
			args: []string{"list", "--type", "grass", "--generation", "ii"},
			want: []string{"No Pokémon match"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, mock, tt.args...)
			require.NoError(t, err)
			for _, s := range tt.want {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.notWant {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestList_InvalidFilters(t *testing.T) {
	mock := testutil.NewStarterAPI()
	defer mock.Close()

	_, _, err := run(t, mock, "list", "-t", "fire", "-t", "water", "-t", "grass", "-t", "ice")
	assert.ErrorIs(t, err, aggregator.ErrTooManyTypes)

	_, _, err = run(t, mock, "list", "-g", "i", "-g", "ii", "-g", "iii")
	assert.ErrorIs(t, err, aggregator.ErrTooManyGenerations)

	_, _, err = run(t, mock, "list", "--type", "shadow")
	assert.Error(t, err)

	_, _, err = run(t, mock, "list", "--page", "0")
	assert.ErrorIs(t, err, aggregator.ErrInvalidPage)
}

func TestShow(t *testing.T) {
	mock := testutil.NewStarterAPI()
	defer mock.Close()

	out, _, err := run(t, mock, "show", "Charizard")
	require.NoError(t, err)

	for _, s := range []string{
		"Charizard #006",
		"Generation I · Kanto",
		"No description available.",
		"Base stats",
		"Sp. Atk",
		"Charmeleon (level 16)",
		"Damage taken",
		"×4",
	} {
		assert.Contains(t, out, s)
	}

	out, _, err = run(t, mock, "show", "pikachu")
	require.NoError(t, err)
	assert.Contains(t, out, "Raichu (Thunder Stone)")

	_, _, err = run(t, mock, "show", "missingno")
	assert.Error(t, err)
}

func TestSearch(t *testing.T) {
	mock := testutil.NewStarterAPI()
	defer mock.Close()

	out, _, err := run(t, mock, "search", "char")
	require.NoError(t, err)
	assert.Equal(t, "charmander\ncharmeleon\ncharizard\n", out)

	out, _, err = run(t, mock, "search", "zzz")
	require.NoError(t, err)
	assert.Contains(t, out, "No Pokémon found")

	out, _, err = run(t, mock, "search", "--open", "PIKA")
	require.NoError(t, err)
	assert.Contains(t, out, "Pikachu #025")

	_, _, err = run(t, mock, "search")
	assert.Error(t, err)
}

func TestSearch_OpenSpeciesName(t *testing.T) {
	mock := testutil.NewStarterAPI()
	defer mock.Close()

	out, _, err := run(t, mock, "search", "deox")
	require.NoError(t, err)
	assert.Equal(t, "deoxys\n", out)

	out, _, err = run(t, mock, "search", "--open", "deox")
	require.NoError(t, err)
	assert.Contains(t, out, "Deoxys Normal #386")
	assert.Contains(t, out, "Generation III")
}

func TestSearch_OpenFreeText(t *testing.T) {
	mock := testutil.NewStarterAPI()
	defer mock.Close()

	// an id matches no name but still navigates
	out, _, err := run(t, mock, "search", "--open", "25")
	require.NoError(t, err)
	assert.Contains(t, out, "Pikachu #025")

	out, _, err = run(t, mock, "search", "--open", "zzz")
	require.Error(t, err)
	assert.NotContains(t, out, "No Pokémon found")
	assert.Contains(t, err.Error(), "load zzz")
}

func TestCompare(t *testing.T) {
	mock := testutil.NewStarterAPI()
	defer mock.Close()

	out, _, err := run(t, mock, "compare", "pikachu", "Charizard")
	require.NoError(t, err)
	for _, s := range []string{"Pikachu", "Charizard", "HP", "Sp. Def", "Speed"} {
		assert.Contains(t, out, s)
	}

	_, _, err = run(t, mock, "compare", "pikachu", "missingno")
	assert.EqualError(t, err, "could not find Pokémon: missingno")

	_, _, err = run(t, mock, "compare", "pikachu")
	assert.Error(t, err)
}

func TestRandom(t *testing.T) {
	mock := testutil.NewStarterAPI()
	defer mock.Close()

	out, _, err := run(t, mock, "random")
	require.NoError(t, err)
	assert.Contains(t, out, "Base stats")
}

func TestResponseCache(t *testing.T) {
	mr := miniredis.RunT(t)
	mock := testutil.NewStarterAPI()
	defer mock.Close()

	for i := 0; i < 2; i++ {
		_, _, err := run(t, mock, "--redis-addr", mr.Addr(), "compare", "pikachu", "charizard")
		require.NoError(t, err)
	}

	assert.Equal(t, 2, mock.CountRequests("/pokemon/"), "second run should be served from redis")
}

func TestResponseCache_Unreachable(t *testing.T) {
	mock := testutil.NewStarterAPI()
	defer mock.Close()

	_, _, err := run(t, mock, "--redis-addr", "127.0.0.1:1", "show", "pikachu")
	assert.ErrorContains(t, err, "connect to redis")
}

func TestMetricsFlag(t *testing.T) {
	mock := testutil.NewStarterAPI()
	defer mock.Close()

	_, stderr, err := run(t, mock, "--metrics", "list", "--type", "electric")
	require.NoError(t, err)

	assert.Contains(t, stderr, "pokeapi_requests_total")
	assert.Contains(t, stderr, "pokedex_aggregations_total")
	assert.NotContains(t, stderr, "go_goroutines")
}
