package cache

import (
	"net/url"
	"sort"
	"strings"
)

// KeyPrefix namespaces every cache key in Redis.
const KeyPrefix = "pokeapi"

// CacheKey identifies a cached PokeAPI response.
type CacheKey struct {
	// Path is the request path (e.g. "/api/v2/pokemon/25/")
	Path string

	// Query holds the query parameters (e.g. limit/offset)
	Query url.Values
}

// KeyFromURL builds the key for a request URL.
func KeyFromURL(u *url.URL) CacheKey {
	if u == nil {
		return CacheKey{}
	}
	return CacheKey{Path: u.Path, Query: u.Query()}
}

// String generates a deterministic cache key string.
// Format: pokeapi:path:query1=val1:query2=val2
//
// Example:
//
//	pokeapi:api/v2/pokemon:limit=100:offset=200
func (k CacheKey) String() string {
	parts := []string{KeyPrefix}

	if p := strings.Trim(k.Path, "/"); p != "" {
		parts = append(parts, strings.ToLower(p))
	}

	keys := make([]string, 0, len(k.Query))
	for key := range k.Query {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		parts = append(parts, key+"="+k.Query.Get(key))
	}

	return strings.Join(parts, ":")
}
