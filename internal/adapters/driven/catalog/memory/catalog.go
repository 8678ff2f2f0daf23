// Package memory provides an in-process driven.CatalogClient.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/custodia-labs/medley/internal/core/domain"
	"github.com/custodia-labs/medley/internal/core/ports/driven"
)

// Ensure Catalog implements the interface.
var _ driven.CatalogClient = (*Catalog)(nil)

// Catalog is an in-memory implementation of driven.CatalogClient.
// Items and edges are returned in insertion order.
type Catalog struct {
	mu    sync.RWMutex
	order []string
	items map[string]domain.ResultItem
	edges map[string][]domain.RecommendationEdge
}

// NewCatalog creates an empty in-memory catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		items: make(map[string]domain.ResultItem),
		edges: make(map[string][]domain.RecommendationEdge),
	}
}

// AddItem stores or replaces an item.
func (c *Catalog) AddItem(item domain.ResultItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[item.ID]; !ok {
		c.order = append(c.order, item.ID)
	}
	c.items[item.ID] = item
}

// Relate records that to is recommended for from, with a label.
// Both items must already be stored.
func (c *Catalog) Relate(fromID, toID, relationship string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[fromID]; !ok {
		return domain.ErrNotFound
	}
	to, ok := c.items[toID]
	if !ok {
		return domain.ErrNotFound
	}
	c.edges[fromID] = append(c.edges[fromID], domain.RecommendationEdge{
		Item:             to,
		RelationshipType: relationship,
	})
	return nil
}

// Search matches the query text case-insensitively against title and creator
// within the query's media type.
func (c *Catalog) Search(ctx context.Context, query domain.SearchQuery) ([]domain.ResultItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(query.Text))
	results := make([]domain.ResultItem, 0)
	for _, id := range c.order {
		item := c.items[id]
		if query.Type != "" && item.Type != query.Type {
			continue
		}
		if strings.Contains(strings.ToLower(item.Title), needle) ||
			strings.Contains(strings.ToLower(item.Creator), needle) {
			item.Description = ""
			results = append(results, item)
		}
	}
	return results, nil
}

// Recommend returns the item and its recorded edges.
func (c *Catalog) Recommend(ctx context.Context, itemID string) (*domain.Recommendations, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[itemID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	edges := make([]domain.RecommendationEdge, len(c.edges[itemID]))
	copy(edges, c.edges[itemID])
	return &domain.Recommendations{Selected: item, Edges: edges}, nil
}

// Len returns the number of stored items.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
