package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/custodia-labs/medley/internal/core/domain"
	"github.com/custodia-labs/medley/internal/core/ports/driven"
	"github.com/custodia-labs/medley/internal/core/ports/driving"
	"github.com/custodia-labs/medley/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService validates user input and forwards it to the catalog.
type CatalogService struct {
	client     driven.CatalogClient
	mediaTypes []domain.MediaType
}

// NewCatalogService creates a new catalog service offering the given media types.
// A nil or empty list falls back to domain.DefaultMediaTypes.
func NewCatalogService(client driven.CatalogClient, mediaTypes []domain.MediaType) *CatalogService {
	if len(mediaTypes) == 0 {
		mediaTypes = domain.DefaultMediaTypes()
	}
	return &CatalogService{
		client:     client,
		mediaTypes: mediaTypes,
	}
}

// MediaTypes returns the media types a query may be scoped to.
func (s *CatalogService) MediaTypes() []domain.MediaType {
	out := make([]domain.MediaType, len(s.mediaTypes))
	copy(out, s.mediaTypes)
	return out
}

// Search validates the query and searches the catalog.
func (s *CatalogService) Search(ctx context.Context, query domain.SearchQuery) ([]domain.ResultItem, error) {
	logger.Section("Search")
	query = domain.NewSearchQuery(query.Text, query.Type)
	logger.Debug("Query: %q, type: %s", query.Text, query.Type)

	if err := query.Validate(s.mediaTypes); err != nil {
		logger.Debug("Rejected query: %v", err)
		return nil, err
	}
	if s.client == nil {
		return nil, domain.ErrCatalogUnavailable
	}

	items, err := s.client.Search(ctx, query)
	if err != nil {
		logFailure("Search", err)
		return nil, fmt.Errorf("search: %w", err)
	}

	logger.Info("Found %d results", len(items))
	return items, nil
}

// Recommend fetches recommendations for an item.
func (s *CatalogService) Recommend(ctx context.Context, itemID string) (*domain.Recommendations, error) {
	logger.Section("Recommendations")
	itemID = strings.TrimSpace(itemID)
	logger.Debug("Item: %q", itemID)

	if itemID == "" {
		return nil, domain.ErrEmptyItemID
	}
	if s.client == nil {
		return nil, domain.ErrCatalogUnavailable
	}

	recs, err := s.client.Recommend(ctx, itemID)
	if err != nil {
		logFailure("Recommendation", err)
		return nil, fmt.Errorf("recommendations: %w", err)
	}
	if recs == nil {
		recs = &domain.Recommendations{}
	}

	logger.Info("Found %d recommendations for %q", recs.Count(), itemID)
	return recs, nil
}

// logFailure records a catalog failure. Requests superseded by a newer
// action are cancelled on purpose and only logged at debug level.
func logFailure(op string, err error) {
	if errors.Is(err, context.Canceled) {
		logger.Debug("%s cancelled", op)
		return
	}
	logger.Error("%s error: %v", op, err)
}
