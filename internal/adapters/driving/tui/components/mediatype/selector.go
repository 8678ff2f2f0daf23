// Package mediatype provides the media type radio group of the search form.
package mediatype

import (
	"strings"

	"github.com/custodia-labs/medley/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/medley/internal/core/domain"
)

// Selector is a radio group over the offered media types.
// It starts with nothing selected, like an unchecked radio group.
type Selector struct {
	styles   *styles.Styles
	types    []domain.MediaType
	selected int
}

// NewSelector creates a selector over types.
func NewSelector(s *styles.Styles, types []domain.MediaType) *Selector {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Selector{
		styles:   s,
		types:    types,
		selected: -1,
	}
}

// Next selects the following type, wrapping around.
func (m *Selector) Next() {
	if len(m.types) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.types)
}

// Prev selects the preceding type, wrapping around.
func (m *Selector) Prev() {
	if len(m.types) == 0 {
		return
	}
	if m.selected <= 0 {
		m.selected = len(m.types) - 1
		return
	}
	m.selected--
}

// Select picks t if it is offered and reports whether it was.
func (m *Selector) Select(t domain.MediaType) bool {
	for i, candidate := range m.types {
		if candidate == t {
			m.selected = i
			return true
		}
	}
	return false
}

// Selected returns the chosen type, or "" when none is chosen.
func (m *Selector) Selected() domain.MediaType {
	if m.selected < 0 || m.selected >= len(m.types) {
		return ""
	}
	return m.types[m.selected]
}

// Types returns the offered types.
func (m *Selector) Types() []domain.MediaType {
	return m.types
}

// Clear removes the selection.
func (m *Selector) Clear() {
	m.selected = -1
}

// View renders "(•) movie  ( ) tv ...".
func (m *Selector) View() string {
	parts := make([]string, 0, len(m.types))
	for i, t := range m.types {
		if i == m.selected {
			parts = append(parts, m.styles.BadgeFor(t).Render("(•) "+t.String()))
			continue
		}
		parts = append(parts, m.styles.Muted.Render("( ) "+t.String()))
	}
	return m.styles.Subtitle.Render("Type ") + strings.Join(parts, "  ")
}
