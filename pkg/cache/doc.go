// Package cache provides an optional Redis-backed response cache for the
// PokeAPI client.
//
// Caching is off unless a Manager is handed to the client. PokeAPI resources
// are static and idempotent per identifier, so a cached 200 response is
// served until the lifetime advertised by the API ends:
//
//   - Cache-Control max-age (preferred; PokeAPI sends max-age=86400)
//   - Expires header
//   - DefaultTTL when neither is present
//
// # Basic Usage
//
//	redisClient := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
//	manager := cache.NewManager(redisClient)
//
//	key := cache.KeyFromURL(req.URL)
//	entry, err := manager.Get(ctx, key)
//	if errors.Is(err, cache.ErrCacheMiss) {
//		// fetch from PokeAPI, then
//		entry, _ = cache.ResponseToEntry(resp)
//		_ = manager.Set(ctx, key, entry)
//	}
//	resp = cache.EntryToResponse(entry, req)
//
// # Metrics
//
//   - pokeapi_cache_hits_total
//   - pokeapi_cache_misses_total
//   - pokeapi_cache_stored_bytes
//   - pokeapi_cache_errors_total{operation}
package cache
