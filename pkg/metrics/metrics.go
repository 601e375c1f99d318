// Package metrics documents the Prometheus metrics of the pokedex client and
// exposes them for one-shot inspection.
//
// All metrics are defined in their respective packages (client, cache,
// pagination, aggregator) and registered via promauto, which keeps the
// packages independent of each other.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Registry is the registerer all packages register their metrics with.
var Registry = prometheus.DefaultRegisterer

// Gatherer is the gatherer Dump reads from.
var Gatherer prometheus.Gatherer = prometheus.DefaultGatherer

// Metrics Documentation
//
// Request Metrics (pkg/client):
//   - pokeapi_requests_total{endpoint, status} (Counter): Requests by resource and HTTP status ("cached" for cache hits)
//   - pokeapi_request_duration_seconds{endpoint} (Histogram): Request duration by resource
//   - pokeapi_errors_total{class} (Counter): Failures by class (not_found, client, server, network)
//
// Cache Metrics (pkg/cache):
//   - pokeapi_cache_hits_total (Counter): Responses served from Redis
//   - pokeapi_cache_misses_total (Counter): Lookups that fell through to the API
//   - pokeapi_cache_stored_bytes (Counter): Bytes written to Redis
//   - pokeapi_cache_errors_total{operation} (Counter): Cache operation errors
//
// Batch Metrics (pkg/pagination):
//   - pokedex_batches_total{outcome} (Counter): Detail batches by outcome (ok, error)
//   - pokedex_batch_items_total (Counter): Records fetched through batches
//
// Aggregation Metrics (pkg/aggregator):
//   - pokedex_aggregations_total{strategy, outcome} (Counter): Aggregations by strategy and outcome
//   - pokedex_aggregation_duration_seconds{strategy} (Histogram): Aggregation duration by strategy
//   - pokedex_superseded_runs_total (Counter): Runs discarded because a newer run started
//
// Example Prometheus Queries:
//
//   # Cache Hit Rate
//   sum(rate(pokeapi_cache_hits_total[5m])) /
//   (sum(rate(pokeapi_cache_hits_total[5m])) + sum(rate(pokeapi_cache_misses_total[5m])))
//
//   # Not-found Rate
//   rate(pokeapi_errors_total{class="not_found"}[5m])
//
//   # P95 Request Latency
//   histogram_quantile(0.95, rate(pokeapi_request_duration_seconds_bucket[5m]))

// Dump writes every gathered metric family in the Prometheus text format.
// Families whose name starts with one of prefixes are kept; no prefix keeps
// all.
func Dump(w io.Writer, prefixes ...string) error {
	families, err := Gatherer.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if !hasPrefix(mf.GetName(), prefixes) {
			continue
		}
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

func hasPrefix(name string, prefixes []string) bool {
	if len(prefixes) == 0 {
		return true
	}
	for _, p := range prefixes {
		if len(name) >= len(p) && name[:len(p)] == p {
			return true
		}
	}
	return false
}
