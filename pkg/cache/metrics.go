package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheHits tracks responses served from Redis
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pokeapi_cache_hits_total",
		Help: "Total number of PokeAPI responses served from cache",
	})

	// CacheMisses tracks lookups that fell through to the API
	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pokeapi_cache_misses_total",
		Help: "Total number of PokeAPI cache misses",
	})

	// CacheStoredBytes tracks bytes written to the cache
	CacheStoredBytes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pokeapi_cache_stored_bytes",
		Help: "Total bytes of PokeAPI responses written to cache",
	})

	// CacheErrors tracks cache operation errors
	CacheErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pokeapi_cache_errors_total",
		Help: "Total number of cache operation errors",
	}, []string{"operation"}) // "get", "set", "delete"
)
