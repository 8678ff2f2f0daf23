package mcp

import (
	"context"

	"github.com/custodia-labs/medley/internal/core/domain"
)

// mockCatalogService is a mock implementation of driving.CatalogService.
type mockCatalogService struct {
	items []domain.ResultItem
	recs  *domain.Recommendations
	err   error

	lastQuery  domain.SearchQuery
	lastItemID string
}

func (m *mockCatalogService) MediaTypes() []domain.MediaType {
	return domain.DefaultMediaTypes()
}

func (m *mockCatalogService) Search(_ context.Context, query domain.SearchQuery) ([]domain.ResultItem, error) {
	m.lastQuery = query
	return m.items, m.err
}

func (m *mockCatalogService) Recommend(_ context.Context, itemID string) (*domain.Recommendations, error) {
	m.lastItemID = itemID
	return m.recs, m.err
}

func inceptionRecs() *domain.Recommendations {
	return &domain.Recommendations{
		Selected: domain.ResultItem{
			ID: "42", Title: "Inception", Creator: "Christopher Nolan", Year: "2010",
			Type: domain.MediaMovie, Description: "A thief who steals secrets.",
		},
		Edges: []domain.RecommendationEdge{
			{
				Item:             domain.ResultItem{ID: "43", Title: "Interstellar", Type: domain.MediaMovie},
				RelationshipType: "Same director",
			},
			{
				Item:             domain.ResultItem{ID: "b1", Title: "Neuromancer", Type: domain.MediaBook},
				RelationshipType: "Similar themes",
			},
		},
	}
}
