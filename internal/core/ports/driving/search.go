package driving

import (
	"context"

	"github.com/custodia-labs/medley/internal/core/domain"
)

// CatalogService provides search and recommendations to external actors.
type CatalogService interface {
	// MediaTypes returns the media types a query may be scoped to.
	MediaTypes() []domain.MediaType

	// Search validates the query and searches the catalog.
	// Validation failures wrap domain.ErrInvalidInput and make no request.
	Search(ctx context.Context, query domain.SearchQuery) ([]domain.ResultItem, error)

	// Recommend fetches recommendations for a previously returned item.
	Recommend(ctx context.Context, itemID string) (*domain.Recommendations, error)
}
