package tui

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/medley/internal/core/domain"
)

// MockCatalogService implements driving.CatalogService for testing.
type MockCatalogService struct {
	MediaTypesFunc func() []domain.MediaType
	SearchFunc     func(ctx context.Context, query domain.SearchQuery) ([]domain.ResultItem, error)
	RecommendFunc  func(ctx context.Context, itemID string) (*domain.Recommendations, error)

	mu             sync.Mutex
	searchCalls    []domain.SearchQuery
	recommendCalls []string
}

func (m *MockCatalogService) MediaTypes() []domain.MediaType {
	if m.MediaTypesFunc != nil {
		return m.MediaTypesFunc()
	}
	return domain.DefaultMediaTypes()
}

func (m *MockCatalogService) Search(ctx context.Context, query domain.SearchQuery) ([]domain.ResultItem, error) {
	m.mu.Lock()
	m.searchCalls = append(m.searchCalls, query)
	m.mu.Unlock()
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query)
	}
	return []domain.ResultItem{}, nil
}

func (m *MockCatalogService) Recommend(ctx context.Context, itemID string) (*domain.Recommendations, error) {
	m.mu.Lock()
	m.recommendCalls = append(m.recommendCalls, itemID)
	m.mu.Unlock()
	if m.RecommendFunc != nil {
		return m.RecommendFunc(ctx, itemID)
	}
	return &domain.Recommendations{}, nil
}

func (m *MockCatalogService) SearchCalls() []domain.SearchQuery {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.SearchQuery(nil), m.searchCalls...)
}

func (m *MockCatalogService) RecommendCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.recommendCalls...)
}

// MockSettingsService implements driving.SettingsService for testing.
type MockSettingsService struct {
	GetFunc func() (domain.Settings, error)
}

func (m *MockSettingsService) Get() (domain.Settings, error) {
	if m.GetFunc != nil {
		return m.GetFunc()
	}
	return domain.DefaultSettings(), nil
}

func (m *MockSettingsService) Set(string, string) error {
	return nil
}

func (m *MockSettingsService) Path() string {
	return "/tmp/medley/config.toml"
}

func TestNewPorts(t *testing.T) {
	catalog := &MockCatalogService{}
	settings := &MockSettingsService{}

	ports := NewPorts(catalog, settings)

	require.NotNil(t, ports)
	assert.Equal(t, catalog, ports.Catalog)
	assert.Equal(t, settings, ports.Settings)
}

func TestPorts_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, NewPorts(&MockCatalogService{}, nil).Validate())
	})

	t.Run("nil ports", func(t *testing.T) {
		var ports *Ports
		assert.ErrorIs(t, ports.Validate(), ErrMissingCatalogService)
	})

	t.Run("missing catalog", func(t *testing.T) {
		assert.ErrorIs(t, NewPorts(nil, nil).Validate(), ErrMissingCatalogService)
	})

	t.Run("no media types", func(t *testing.T) {
		catalog := &MockCatalogService{
			MediaTypesFunc: func() []domain.MediaType { return nil },
		}
		assert.ErrorIs(t, NewPorts(catalog, nil).Validate(), ErrNoMediaTypes)
	})
}
