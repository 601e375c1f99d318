package aggregator

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/Sternrassler/pokedex-client/pkg/catalog"
)

// Filter limits.
const (
	MaxTypes       = 3
	MaxGenerations = 2
)

var (
	// ErrTooManyTypes is returned when more than MaxTypes types are selected.
	ErrTooManyTypes = fmt.Errorf("at most %d types can be selected", MaxTypes)

	// ErrTooManyGenerations is returned when more than MaxGenerations
	// generations are selected.
	ErrTooManyGenerations = fmt.Errorf("at most %d generations can be selected", MaxGenerations)

	// ErrInvalidPage is returned for page numbers below 1.
	ErrInvalidPage = errors.New("page must be >= 1")

	// ErrDuplicateFilter is returned when a tag is selected twice.
	ErrDuplicateFilter = errors.New("duplicate filter selection")
)

// FilterState is the user's current selection. It is a value type; every
// modifier returns a new state and leaves the receiver untouched. Changing
// types or generations always resets Page to 1.
type FilterState struct {
	Types       []catalog.TypeTag
	Generations []catalog.GenerationTag
	Page        int
}

// NewFilterState returns the unfiltered first page.
func NewFilterState() FilterState {
	return FilterState{Page: 1}
}

// Validate checks limits, tags and page number.
func (f FilterState) Validate() error {
	if f.Page < 1 {
		return fmt.Errorf("%w (got %d)", ErrInvalidPage, f.Page)
	}
	if len(f.Types) > MaxTypes {
		return ErrTooManyTypes
	}
	if len(f.Generations) > MaxGenerations {
		return ErrTooManyGenerations
	}

	seenTypes := make(map[catalog.TypeTag]bool, len(f.Types))
	for _, t := range f.Types {
		if !t.Valid() {
			return fmt.Errorf("unknown type %q", t)
		}
		if seenTypes[t] {
			return fmt.Errorf("%w: type %q", ErrDuplicateFilter, t)
		}
		seenTypes[t] = true
	}

	seenGens := make(map[catalog.GenerationTag]bool, len(f.Generations))
	for _, g := range f.Generations {
		if !g.Valid() {
			return fmt.Errorf("unknown generation %q", g)
		}
		if seenGens[g] {
			return fmt.Errorf("%w: generation %q", ErrDuplicateFilter, g)
		}
		seenGens[g] = true
	}

	return nil
}

// IsUnfiltered reports whether neither types nor generations are selected.
func (f FilterState) IsUnfiltered() bool {
	return len(f.Types) == 0 && len(f.Generations) == 0
}

// WithTypes replaces the type selection and resets the page.
func (f FilterState) WithTypes(tags ...catalog.TypeTag) (FilterState, error) {
	if len(tags) > MaxTypes {
		return f, ErrTooManyTypes
	}
	next := f.clone()
	next.Types = slices.Clone(tags)
	next.Page = 1
	return next, next.Validate()
}

// WithGenerations replaces the generation selection and resets the page.
func (f FilterState) WithGenerations(tags ...catalog.GenerationTag) (FilterState, error) {
	if len(tags) > MaxGenerations {
		return f, ErrTooManyGenerations
	}
	next := f.clone()
	next.Generations = slices.Clone(tags)
	next.Page = 1
	return next, next.Validate()
}

// ToggleType adds the tag when absent and removes it when present.
func (f FilterState) ToggleType(tag catalog.TypeTag) (FilterState, error) {
	if i := slices.Index(f.Types, tag); i >= 0 {
		return f.WithTypes(slices.Delete(slices.Clone(f.Types), i, i+1)...)
	}
	if len(f.Types) >= MaxTypes {
		return f, ErrTooManyTypes
	}
	return f.WithTypes(append(slices.Clone(f.Types), tag)...)
}

// ToggleGeneration adds the tag when absent and removes it when present.
func (f FilterState) ToggleGeneration(tag catalog.GenerationTag) (FilterState, error) {
	if i := slices.Index(f.Generations, tag); i >= 0 {
		return f.WithGenerations(slices.Delete(slices.Clone(f.Generations), i, i+1)...)
	}
	if len(f.Generations) >= MaxGenerations {
		return f, ErrTooManyGenerations
	}
	return f.WithGenerations(append(slices.Clone(f.Generations), tag)...)
}

// WithPage moves to another page, keeping the filters.
func (f FilterState) WithPage(page int) (FilterState, error) {
	if page < 1 {
		return f, fmt.Errorf("%w (got %d)", ErrInvalidPage, page)
	}
	next := f.clone()
	next.Page = page
	return next, nil
}

// String renders the state for logs.
func (f FilterState) String() string {
	types := make([]string, len(f.Types))
	for i, t := range f.Types {
		types[i] = string(t)
	}
	gens := make([]string, len(f.Generations))
	for i, g := range f.Generations {
		gens[i] = string(g)
	}
	return fmt.Sprintf("types=[%s] generations=[%s] page=%d",
		strings.Join(types, ","), strings.Join(gens, ","), f.Page)
}

func (f FilterState) clone() FilterState {
	return FilterState{
		Types:       slices.Clone(f.Types),
		Generations: slices.Clone(f.Generations),
		Page:        f.Page,
	}
}
