package aggregator

import (
	"context"
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ErrSuperseded is returned by a run that was overtaken by a newer Update.
var ErrSuperseded = errors.New("aggregation superseded by a newer request")

var supersededRuns = promauto.NewCounter(prometheus.CounterOpts{
	Name: "pokedex_superseded_runs_total",
	Help: "Total aggregation runs discarded because a newer run started",
})

// Session owns the currently displayed page. Each Update gets a sequence
// number and cancels the run before it; only the run holding the latest
// sequence number may publish.
type Session struct {
	agg *Aggregator

	mu        sync.Mutex
	seq       uint64
	cancel    context.CancelFunc
	current   *Page
	published uint64
}

// NewSession creates a session with nothing published yet.
func NewSession(agg *Aggregator) *Session {
	return &Session{agg: agg}
}

// Update aggregates f and publishes the result unless another Update was
// started in the meantime. A superseded run returns ErrSuperseded, whether it
// failed, was cancelled or completed late.
func (s *Session) Update(ctx context.Context, f FilterState) (*Page, error) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	s.seq++
	seq := s.seq
	if s.cancel != nil {
		s.cancel()
	}
	s.cancel = cancel
	s.mu.Unlock()

	page, err := s.agg.Aggregate(runCtx, f)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		supersededRuns.Inc()
		s.agg.logger.Warn().
			Uint64("seq", seq).
			Uint64("latest", s.seq).
			Str("filter", f.String()).
			Msg("Discarding superseded aggregation")
		return nil, ErrSuperseded
	}
	s.cancel = nil
	if err != nil {
		return nil, err
	}

	s.current = page
	s.published = seq

	s.agg.logger.Info().
		Uint64("seq", seq).
		Str("strategy", string(page.Strategy)).
		Int("entities", len(page.Entities)).
		Msg("Aggregation published")

	return page, nil
}

// Current returns the last published page, or nil.
func (s *Session) Current() *Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Published returns the sequence number of the current page (0 when none).
func (s *Session) Published() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.published
}
