// Package catalog defines the read-only Pokémon records returned by PokeAPI
// and the static type/generation configuration used to filter them.
package catalog

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// EntityID is the stable numeric PokeAPI identifier of a Pokémon or species.
type EntityID int

// String returns the decimal form used in API paths.
func (id EntityID) String() string {
	return strconv.Itoa(int(id))
}

// IDFromURL extracts the numeric id from the trailing path segment of a
// PokeAPI reference URL.
//
// Example:
//
//	IDFromURL("https://pokeapi.co/api/v2/pokemon/25/") // 25
func IDFromURL(ref string) (EntityID, error) {
	path := ref
	if u, err := url.Parse(ref); err == nil && u.Path != "" {
		path = u.Path
	}

	path = strings.TrimRight(path, "/")
	idx := strings.LastIndex(path, "/")
	segment := path[idx+1:]
	if segment == "" {
		return 0, fmt.Errorf("reference %q has no trailing id", ref)
	}

	n, err := strconv.Atoi(segment)
	if err != nil {
		return 0, fmt.Errorf("reference %q: trailing segment %q is not numeric", ref, segment)
	}
	if n <= 0 {
		return 0, fmt.Errorf("reference %q: id must be positive (got %d)", ref, n)
	}

	return EntityID(n), nil
}

// NormalizeIdentifier lowercases and trims a name-or-id so that lookups are
// case-insensitive.
func NormalizeIdentifier(nameOrID string) string {
	return strings.ToLower(strings.TrimSpace(nameOrID))
}
