package driven

import (
	"context"

	"github.com/custodia-labs/medley/internal/core/domain"
)

// CatalogClient talks to the media catalog.
// The catalog's matching and ranking logic is opaque to medley.
type CatalogClient interface {
	// Search returns the items matching the query, in catalog order.
	// An empty result is not an error.
	Search(ctx context.Context, query domain.SearchQuery) ([]domain.ResultItem, error)

	// Recommend returns the item with the given id and its recommendations.
	Recommend(ctx context.Context, itemID string) (*domain.Recommendations, error)
}
