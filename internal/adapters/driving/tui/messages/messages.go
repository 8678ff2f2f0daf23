// Package messages defines Bubbletea message types for the TUI.
// User actions are dispatched as typed messages keyed by what they act on,
// and network answers come back tagged with the generation that issued them.
package messages

import (
	"github.com/custodia-labs/medley/internal/core/domain"
)

// SearchSubmitted is sent when the search form is submitted.
type SearchSubmitted struct {
	Query string
	Type  domain.MediaType
}

// ItemSelected asks for recommendations for the item with this id.
type ItemSelected struct {
	ItemID string
}

// BackToSearch clears the region and returns to the idle form.
type BackToSearch struct{}

// SearchCompleted carries search results back to the model.
type SearchCompleted struct {
	Generation uint64
	Query      domain.SearchQuery
	Items      []domain.ResultItem
	Err        error
}

// RecommendationsLoaded carries recommendations back to the model.
// Chained is set when the request was made from a recommendation card.
type RecommendationsLoaded struct {
	Generation uint64
	ItemID     string
	Chained    bool
	Recs       *domain.Recommendations
	Err        error
}

// FocusChanged moves keyboard focus between the form and the region.
type FocusChanged struct {
	Focus Focus
}

// Focus identifies which part of the screen receives keys.
type Focus int

const (
	// FocusForm sends keys to the search form.
	FocusForm Focus = iota
	// FocusRegion sends keys to the cards below the form.
	FocusRegion
)

// String returns the string representation of the focus.
func (f Focus) String() string {
	switch f {
	case FocusForm:
		return "form"
	case FocusRegion:
		return "region"
	default:
		return "unknown"
	}
}

// Quit signals the application should exit.
type Quit struct{}
