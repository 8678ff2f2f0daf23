package domain

import (
	"fmt"
	"strings"
)

// SearchQuery is a free-text query scoped to one media type.
type SearchQuery struct {
	// Text is the trimmed query text.
	Text string

	// Type is the selected media type. Empty means none was selected.
	Type MediaType
}

// NewSearchQuery builds a query, trimming surrounding whitespace from text.
func NewSearchQuery(text string, mediaType MediaType) SearchQuery {
	return SearchQuery{
		Text: strings.TrimSpace(text),
		Type: MediaType(strings.TrimSpace(string(mediaType))),
	}
}

// Validate checks the query against the media types on offer.
// An empty allowed list accepts any non-empty media type.
func (q SearchQuery) Validate(allowed []MediaType) error {
	if strings.TrimSpace(q.Text) == "" {
		return ErrEmptyQuery
	}
	if q.Type == "" {
		return ErrNoMediaType
	}
	if len(allowed) > 0 && !ContainsMediaType(allowed, q.Type) {
		return fmt.Errorf("%w: %q", ErrUnknownMediaType, q.Type)
	}
	return nil
}
