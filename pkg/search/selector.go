package search

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyQuery is returned when submitting blank input.
	ErrEmptyQuery = errors.New("empty search query")

	// ErrNoHandler is returned when a Selector has neither callback.
	ErrNoHandler = errors.New("selector has no handler")
)

// Selector dispatches a chosen name. When embedded in another view it calls
// OnSelect; otherwise it navigates to the name's detail view.
type Selector struct {
	OnSelect func(name string) error
	Navigate func(name string) error
}

// Submit dispatches a suggestion or free text, trimmed and lowercased.
func (s Selector) Submit(input string) error {
	name := strings.ToLower(strings.TrimSpace(input))
	if name == "" {
		return ErrEmptyQuery
	}

	switch {
	case s.OnSelect != nil:
		return s.OnSelect(name)
	case s.Navigate != nil:
		return s.Navigate(name)
	default:
		return ErrNoHandler
	}
}
