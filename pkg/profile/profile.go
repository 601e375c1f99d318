// Package profile assembles the detail view of a single Pokémon: its record,
// a description, its generation, its evolution line and how other types
// damage it.
package profile

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/Sternrassler/pokedex-client/pkg/catalog"
	"github.com/Sternrassler/pokedex-client/pkg/logging"
)

// DefaultLanguage is the flavor text language used for descriptions.
const DefaultLanguage = "en"

// Catalog is the subset of the PokeAPI client the profile service needs.
// ResolveEntityDetail accepts species names as well as Pokémon names.
type Catalog interface {
	ResolveEntityDetail(ctx context.Context, nameOrID string) (*catalog.EntityDetail, error)
	GetSpecies(ctx context.Context, nameOrID string) (*catalog.Species, error)
	GetEvolutionChain(ctx context.Context, ref string) (*catalog.EvolutionChain, error)
	GetDamageRelations(ctx context.Context, tag catalog.TypeTag) (*catalog.DamageRelations, error)
}

// Profile is the assembled detail view.
type Profile struct {
	Detail        *catalog.EntityDetail
	Species       *catalog.Species
	Description   string
	Generation    catalog.GenerationTag
	Evolution     []Step
	Effectiveness Effectiveness
}

// Service builds profiles.
type Service struct {
	catalog  Catalog
	language string
	rng      *rand.Rand
	logger   zerolog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLanguage selects the description language.
func WithLanguage(lang string) Option {
	return func(s *Service) { s.language = lang }
}

// WithRand sets the random source used to pick descriptions.
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) { s.rng = rng }
}

// NewService creates a profile service.
func NewService(c Catalog, opts ...Option) *Service {
	s := &Service{
		catalog:  c,
		language: DefaultLanguage,
		logger:   logging.NewLogger(logging.ComponentProfile),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get fetches the Pokémon, then its species, evolution chain and type
// relations in parallel. Any failure aborts.
func (s *Service) Get(ctx context.Context, nameOrID string) (*Profile, error) {
	start := time.Now()

	detail, err := s.catalog.ResolveEntityDetail(ctx, nameOrID)
	if err != nil {
		return nil, err
	}

	p := &Profile{Detail: detail}
	relations := make([]*catalog.DamageRelations, len(detail.Types))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		species, err := s.catalog.GetSpecies(gctx, speciesRef(detail))
		if err != nil {
			return fmt.Errorf("species of %s: %w", detail.Name, err)
		}
		p.Species = species
		p.Generation = species.Generation
		p.Description = Description(species.FlavorTexts, s.language, s.rng)

		if species.EvolutionChainURL == "" {
			return nil
		}
		chain, err := s.catalog.GetEvolutionChain(gctx, species.EvolutionChainURL)
		if err != nil {
			return fmt.Errorf("evolution chain of %s: %w", detail.Name, err)
		}
		p.Evolution = FlattenChain(chain.Chain)
		return nil
	})
	for i, t := range detail.Types {
		g.Go(func() error {
			rel, err := s.catalog.GetDamageRelations(gctx, t)
			if err != nil {
				return fmt.Errorf("damage relations of %s: %w", t, err)
			}
			relations[i] = rel
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Warn().Err(err).Str("pokemon", nameOrID).Msg("Profile fetch failed")
		return nil, err
	}

	p.Effectiveness = ComputeEffectiveness(relations)

	s.logger.Debug().
		Str("pokemon", detail.Name).
		Int("evolution_steps", len(p.Evolution)).
		Dur("duration", time.Since(start)).
		Msg("Profile assembled")

	return p, nil
}

// speciesRef prefers the species id from the detail's reference; varieties
// such as deoxys-normal do not share the species name.
func speciesRef(d *catalog.EntityDetail) string {
	if id, err := d.Species.ID(); err == nil {
		return id.String()
	}
	if d.Species.Name != "" {
		return d.Species.Name
	}
	return d.Name
}
