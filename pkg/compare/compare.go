// Package compare holds the side-by-side stat comparison of up to three
// Pokémon and derives the radar chart data from it.
package compare

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Sternrassler/pokedex-client/pkg/catalog"
	"github.com/Sternrassler/pokedex-client/pkg/logging"
)

// Slots is the number of comparison slots.
const Slots = 3

// MinForChart is the number of filled slots needed to draw a chart.
const MinForChart = 2

// SlotColors are the series colors of the chart, one per slot.
var SlotColors = [Slots]string{"#ef4444", "#3b82f6", "#10b981"}

var (
	// ErrNotEnoughSelected is returned by Chart with fewer than MinForChart
	// filled slots.
	ErrNotEnoughSelected = fmt.Errorf("select at least %d Pokémon to compare", MinForChart)

	// ErrInvalidSlot is returned for slot indexes outside [0, Slots).
	ErrInvalidSlot = errors.New("invalid comparison slot")
)

// LookupError reports a name that could not be loaded into a slot.
type LookupError struct {
	Name string
	Err  error
}

func (e *LookupError) Error() string {
	return "could not find Pokémon: " + e.Name
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// Fetcher loads a Pokémon by Pokémon or species name.
type Fetcher interface {
	ResolveEntityDetail(ctx context.Context, nameOrID string) (*catalog.EntityDetail, error)
}

// Comparator holds the comparison slots. It is safe for concurrent use.
type Comparator struct {
	fetcher Fetcher
	logger  zerolog.Logger

	mu    sync.RWMutex
	slots [Slots]*catalog.EntityDetail
}

// New creates an empty comparator.
func New(f Fetcher) *Comparator {
	return &Comparator{
		fetcher: f,
		logger:  logging.NewLogger(logging.ComponentCompare),
	}
}

// Select loads name into slot. On failure the slot keeps its previous
// content and a *LookupError is returned.
func (c *Comparator) Select(ctx context.Context, slot int, name string) (*catalog.EntityDetail, error) {
	if err := checkSlot(slot); err != nil {
		return nil, err
	}

	detail, err := c.fetcher.ResolveEntityDetail(ctx, strings.ToLower(name))
	if err != nil {
		c.logger.Debug().Err(err).Int("slot", slot).Str("name", name).Msg("Comparison lookup failed")
		return nil, &LookupError{Name: name, Err: err}
	}

	c.mu.Lock()
	c.slots[slot] = detail
	c.mu.Unlock()

	return detail, nil
}

// Clear empties a slot.
func (c *Comparator) Clear(slot int) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	c.mu.Lock()
	c.slots[slot] = nil
	c.mu.Unlock()
	return nil
}

// Slot returns the Pokémon in slot, or nil.
func (c *Comparator) Slot(slot int) *catalog.EntityDetail {
	if checkSlot(slot) != nil {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.slots[slot]
}

// Filled returns the number of non-empty slots.
func (c *Comparator) Filled() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, d := range c.slots {
		if d != nil {
			n++
		}
	}
	return n
}

// Series is one filled slot of a chart.
type Series struct {
	Slot  int
	Name  string
	Color string
}

// Axis is one stat of the radar chart. Values has one entry per series.
type Axis struct {
	Stat     catalog.StatName
	Label    string
	FullMark int
	Values   []int
}

// Chart is the radar chart of the filled slots.
type Chart struct {
	Series []Series
	Axes   []Axis
}

// Chart builds the radar chart: six axes in stat order, each scaled to
// catalog.MaxBaseStat, and one series per filled slot in slot order.
func (c *Comparator) Chart() (*Chart, error) {
	c.mu.RLock()
	slots := c.slots
	c.mu.RUnlock()

	chart := &Chart{}
	var filled []*catalog.EntityDetail
	for i, d := range slots {
		if d == nil {
			continue
		}
		filled = append(filled, d)
		chart.Series = append(chart.Series, Series{Slot: i, Name: d.Name, Color: SlotColors[i]})
	}
	if len(filled) < MinForChart {
		return nil, ErrNotEnoughSelected
	}

	for _, stat := range catalog.StatOrder {
		axis := Axis{
			Stat:     stat,
			Label:    stat.Label(),
			FullMark: catalog.MaxBaseStat,
			Values:   make([]int, len(filled)),
		}
		for i, d := range filled {
			axis.Values[i] = d.Stat(stat)
		}
		chart.Axes = append(chart.Axes, axis)
	}
	return chart, nil
}

func checkSlot(slot int) error {
	if slot < 0 || slot >= Slots {
		return fmt.Errorf("%w: %d", ErrInvalidSlot, slot)
	}
	return nil
}
