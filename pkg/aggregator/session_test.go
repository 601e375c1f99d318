package aggregator

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/Sternrassler/pokedex-client/pkg/catalog"
)

func TestSession_PublishesLatest(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := NewSession(New(kanto(), DefaultConfig()))
	assert.Nil(t, s.Current())

	page, err := s.Update(context.Background(), state(t, []catalog.TypeTag{catalog.TypeWater}, nil))
	require.NoError(t, err)
	assert.Same(t, page, s.Current())
	assert.Equal(t, uint64(1), s.Published())

	page, err = s.Update(context.Background(), NewFilterState())
	require.NoError(t, err)
	assert.Same(t, page, s.Current())
	assert.Equal(t, uint64(2), s.Published())
}

// A slow fire-only run is overtaken by fire+water; the fire-only result must
// never be published, even though it arrives last.
func TestSession_SupersededRunNeverSurfaces(t *testing.T) {
	defer goleak.VerifyNone(t)

	fake := kanto()
	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	fake.typeHook = func(_ context.Context, tag catalog.TypeTag) {
		if tag != catalog.TypeFire {
			return
		}
		first := false
		once.Do(func() { first = true })
		if first {
			close(started)
			// ignores cancellation so the stale response really arrives late
			<-release
		}
	}

	s := NewSession(New(fake, DefaultConfig()))
	fireOnly := state(t, []catalog.TypeTag{catalog.TypeFire}, nil)
	fireWater, err := fireOnly.ToggleType(catalog.TypeWater)
	require.NoError(t, err)

	staleErr := make(chan error, 1)
	go func() {
		_, err := s.Update(context.Background(), fireOnly)
		staleErr <- err
	}()
	<-started

	latest, err := s.Update(context.Background(), fireWater)
	require.NoError(t, err)

	close(release)
	assert.ErrorIs(t, <-staleErr, ErrSuperseded)

	current := s.Current()
	require.NotNil(t, current)
	assert.Same(t, latest, current)
	assert.Equal(t, []catalog.EntityID{4, 6, 7, 146, 155, 158, 10034}, ids(current.Entities))
	assert.Equal(t, uint64(2), s.Published())
}

func TestSession_FailureKeepsPreviousPage(t *testing.T) {
	fake := kanto()
	s := NewSession(New(fake, DefaultConfig()))

	first, err := s.Update(context.Background(), state(t, []catalog.TypeTag{catalog.TypeWater}, nil))
	require.NoError(t, err)

	fake.failDetail = 4
	_, err = s.Update(context.Background(), state(t, []catalog.TypeTag{catalog.TypeFire}, nil))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSuperseded)

	assert.Same(t, first, s.Current())
}

func TestSession_ParentCancellation(t *testing.T) {
	s := NewSession(New(kanto(), DefaultConfig()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Update(ctx, state(t, []catalog.TypeTag{catalog.TypeFire}, nil))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, s.Current())
}
