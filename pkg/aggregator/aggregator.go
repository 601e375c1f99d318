// Package aggregator resolves a filter selection into a page of Pokémon
// detail records.
//
// Four strategies are tried in priority order: the unfiltered list is paged
// directly; a types-only selection is the union of the type members; types
// and generations are intersected; a generations-only selection is the union
// of the generation species. Candidates are always sorted by ascending id and
// their details fetched in batches.
package aggregator

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/Sternrassler/pokedex-client/pkg/catalog"
	"github.com/Sternrassler/pokedex-client/pkg/logging"
	"github.com/Sternrassler/pokedex-client/pkg/pagination"
)

// PageSize is the number of entities per page of the unfiltered list.
const PageSize = 100

var (
	aggregationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pokedex_aggregations_total",
		Help: "Total aggregations by strategy and outcome",
	}, []string{"strategy", "outcome"}) // outcome: "ok", "error"

	aggregationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pokedex_aggregation_duration_seconds",
		Help:    "Aggregation duration in seconds by strategy",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"strategy"})
)

// Strategy identifies how a FilterState was resolved.
type Strategy string

const (
	StrategyAll              Strategy = "all"
	StrategyTypes            Strategy = "types"
	StrategyTypesGenerations Strategy = "types+generations"
	StrategyGenerations      Strategy = "generations"
)

// StrategyFor returns the strategy used for a filter state.
func StrategyFor(f FilterState) Strategy {
	switch {
	case f.IsUnfiltered():
		return StrategyAll
	case len(f.Generations) == 0:
		return StrategyTypes
	case len(f.Types) > 0:
		return StrategyTypesGenerations
	default:
		return StrategyGenerations
	}
}

// Catalog is the subset of the PokeAPI client the aggregator needs.
type Catalog interface {
	ListEntities(ctx context.Context, limit, offset int) (*catalog.EntityPage, error)
	GetEntityDetail(ctx context.Context, nameOrID string) (*catalog.EntityDetail, error)
	GetEntitiesByType(ctx context.Context, tag catalog.TypeTag) ([]catalog.EntitySummary, error)
	GetEntitiesByGeneration(ctx context.Context, tag catalog.GenerationTag) ([]catalog.EntitySummary, error)
}

// Page is one aggregation result.
type Page struct {
	Filter   FilterState
	Strategy Strategy
	Entities []*catalog.EntityDetail

	// TotalCount is the API total when unfiltered, otherwise the number of
	// matches.
	TotalCount int

	// TotalPages is ceil(TotalCount/PageSize) when unfiltered. Filtered
	// results are never split, so it is 1 (0 when nothing matched).
	TotalPages int
}

// Config holds aggregator configuration.
type Config struct {
	// BatchSize is the number of detail fetches in flight per batch
	BatchSize int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{BatchSize: pagination.DefaultBatchSize}
}

// Aggregator resolves filter states against a Catalog.
type Aggregator struct {
	catalog Catalog
	details *pagination.BatchFetcher[*catalog.EntityDetail]
	logger  zerolog.Logger
}

// New creates an aggregator.
func New(c Catalog, cfg Config) *Aggregator {
	return &Aggregator{
		catalog: c,
		details: pagination.NewBatchFetcher[*catalog.EntityDetail](c.GetEntityDetail, pagination.Config{BatchSize: cfg.BatchSize}),
		logger:  logging.NewLogger(logging.ComponentAggregator),
	}
}

// Aggregate resolves f into a page. Any failure aborts the aggregation and no
// partial page is returned.
func (a *Aggregator) Aggregate(ctx context.Context, f FilterState) (*Page, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	strategy := StrategyFor(f)
	start := time.Now()

	page, err := a.run(ctx, strategy, f)

	aggregationDuration.WithLabelValues(string(strategy)).Observe(time.Since(start).Seconds())
	if err != nil {
		aggregationsTotal.WithLabelValues(string(strategy), "error").Inc()
		a.logger.Error().
			Err(err).
			Str("strategy", string(strategy)).
			Str("filter", f.String()).
			Msg("Aggregation failed")
		return nil, err
	}
	aggregationsTotal.WithLabelValues(string(strategy), "ok").Inc()

	a.logger.Debug().
		Str("strategy", string(strategy)).
		Str("filter", f.String()).
		Int("entities", len(page.Entities)).
		Int("total", page.TotalCount).
		Dur("duration", time.Since(start)).
		Msg("Aggregation complete")

	return page, nil
}

func (a *Aggregator) run(ctx context.Context, strategy Strategy, f FilterState) (*Page, error) {
	if strategy == StrategyAll {
		return a.unfiltered(ctx, f)
	}

	candidates, err := a.Candidates(ctx, f)
	if err != nil {
		return nil, err
	}

	entities, err := a.details.FetchAll(ctx, keys(candidates))
	if err != nil {
		return nil, fmt.Errorf("fetch details: %w", err)
	}

	page := &Page{
		Filter:     f,
		Strategy:   strategy,
		Entities:   entities,
		TotalCount: len(entities),
	}
	if len(entities) > 0 {
		page.TotalPages = 1
	}
	return page, nil
}

func (a *Aggregator) unfiltered(ctx context.Context, f FilterState) (*Page, error) {
	list, err := a.catalog.ListEntities(ctx, PageSize, (f.Page-1)*PageSize)
	if err != nil {
		return nil, fmt.Errorf("list pokemon: %w", err)
	}

	candidates, err := resolve(unionByName(list.Results))
	if err != nil {
		return nil, err
	}

	entities, err := a.details.FetchAll(ctx, keys(candidates))
	if err != nil {
		return nil, fmt.Errorf("fetch details: %w", err)
	}

	return &Page{
		Filter:     f,
		Strategy:   StrategyAll,
		Entities:   entities,
		TotalCount: list.Count,
		TotalPages: (list.Count + PageSize - 1) / PageSize,
	}, nil
}

// Candidates returns the sorted candidates of a filtered state without
// fetching their details. It returns nil for the unfiltered state.
func (a *Aggregator) Candidates(ctx context.Context, f FilterState) ([]Candidate, error) {
	var byType, byGeneration map[string]catalog.EntitySummary

	g, gctx := errgroup.WithContext(ctx)
	if len(f.Types) > 0 {
		g.Go(func() error {
			var err error
			byType, err = a.typeUnion(gctx, f.Types)
			return err
		})
	}
	if len(f.Generations) > 0 {
		g.Go(func() error {
			var err error
			byGeneration, err = a.generationUnion(gctx, f.Generations)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	switch StrategyFor(f) {
	case StrategyTypes:
		return resolve(byType)
	case StrategyGenerations:
		return resolve(byGeneration)
	case StrategyTypesGenerations:
		matched, err := intersect(byType, byGeneration)
		if err != nil {
			return nil, err
		}
		return resolve(matched)
	default:
		return nil, nil
	}
}

func (a *Aggregator) typeUnion(ctx context.Context, tags []catalog.TypeTag) (map[string]catalog.EntitySummary, error) {
	lists := make([][]catalog.EntitySummary, len(tags))
	g, gctx := errgroup.WithContext(ctx)
	for i, tag := range tags {
		g.Go(func() error {
			members, err := a.catalog.GetEntitiesByType(gctx, tag)
			if err != nil {
				return fmt.Errorf("type %s: %w", tag, err)
			}
			lists[i] = members
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return unionByName(lists...), nil
}

func (a *Aggregator) generationUnion(ctx context.Context, tags []catalog.GenerationTag) (map[string]catalog.EntitySummary, error) {
	lists := make([][]catalog.EntitySummary, len(tags))
	g, gctx := errgroup.WithContext(ctx)
	for i, tag := range tags {
		g.Go(func() error {
			members, err := a.catalog.GetEntitiesByGeneration(gctx, tag)
			if err != nil {
				return fmt.Errorf("generation %s: %w", tag, err)
			}
			lists[i] = members
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return unionByName(lists...), nil
}
