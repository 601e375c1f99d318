package pagination

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/errgroup"

	"github.com/Sternrassler/pokedex-client/pkg/logging"
)

// DefaultBatchSize is the number of fetches in flight per batch.
const DefaultBatchSize = 50

var (
	batchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pokedex_batches_total",
		Help: "Total detail batches fetched by outcome",
	}, []string{"outcome"}) // "ok", "error"

	batchItemsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pokedex_batch_items_total",
		Help: "Total records fetched through the batch fetcher",
	})
)

// Config holds batch fetcher configuration
type Config struct {
	// BatchSize is the number of keys fetched concurrently per batch
	BatchSize int
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{BatchSize: DefaultBatchSize}
}

// FetchFunc fetches the record identified by key.
type FetchFunc[T any] func(ctx context.Context, key string) (T, error)

// BatchFetcher fetches records in sequential batches of parallel requests.
type BatchFetcher[T any] struct {
	fetch  FetchFunc[T]
	config Config
}

// NewBatchFetcher creates a new batch fetcher
func NewBatchFetcher[T any](fetch FetchFunc[T], config Config) *BatchFetcher[T] {
	if config.BatchSize <= 0 {
		config.BatchSize = DefaultBatchSize
	}

	return &BatchFetcher[T]{
		fetch:  fetch,
		config: config,
	}
}

// BatchSize returns the effective batch size.
func (bf *BatchFetcher[T]) BatchSize() int {
	return bf.config.BatchSize
}

// FetchAll fetches every key and returns the results in key order. The first
// failure cancels the remaining fetches of its batch and is returned; no
// partial results are returned.
func (bf *BatchFetcher[T]) FetchAll(ctx context.Context, keys []string) ([]T, error) {
	logger := logging.NewLogger(logging.ComponentBatch)
	start := time.Now()

	results := make([]T, len(keys))
	if len(keys) == 0 {
		return results, nil
	}

	totalBatches := (len(keys) + bf.config.BatchSize - 1) / bf.config.BatchSize
	logger.Debug().
		Int("keys", len(keys)).
		Int("batches", totalBatches).
		Int("batch_size", bf.config.BatchSize).
		Msg("Starting batch fetch")

	for batch := 0; batch < totalBatches; batch++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		lo := batch * bf.config.BatchSize
		hi := min(lo+bf.config.BatchSize, len(keys))

		g, gctx := errgroup.WithContext(ctx)
		for i := lo; i < hi; i++ {
			g.Go(func() error {
				v, err := bf.fetch(gctx, keys[i])
				if err != nil {
					return fmt.Errorf("fetch %q: %w", keys[i], err)
				}
				results[i] = v
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			batchesTotal.WithLabelValues("error").Inc()
			logger.Warn().
				Err(err).
				Int("batch", batch+1).
				Int("batches", totalBatches).
				Msg("Batch fetch failed")
			return nil, err
		}

		batchesTotal.WithLabelValues("ok").Inc()
		batchItemsTotal.Add(float64(hi - lo))
		logger.Debug().
			Int("batch", batch+1).
			Int("batches", totalBatches).
			Int("fetched", hi).
			Int("total", len(keys)).
			Msg("Batch complete")
	}

	logger.Debug().
		Int("records", len(keys)).
		Dur("duration", time.Since(start)).
		Msg("Fetch complete")

	return results, nil
}
