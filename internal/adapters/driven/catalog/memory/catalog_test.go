package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/medley/internal/core/domain"
)

func TestNewCatalog(t *testing.T) {
	c := NewCatalog()

	require.NotNil(t, c)
	assert.Equal(t, 0, c.Len())
}

func TestCatalog_AddItem_Replace(t *testing.T) {
	c := NewCatalog()
	c.AddItem(domain.ResultItem{ID: "1", Title: "Old", Type: domain.MediaBook})
	c.AddItem(domain.ResultItem{ID: "1", Title: "New", Type: domain.MediaBook})

	items, err := c.Search(context.Background(), domain.NewSearchQuery("new", domain.MediaBook))

	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
	require.Len(t, items, 1)
	assert.Equal(t, "New", items[0].Title)
}

func TestCatalog_Search(t *testing.T) {
	c := NewDemoCatalog()
	ctx := context.Background()

	t.Run("matches title case-insensitively within type", func(t *testing.T) {
		items, err := c.Search(ctx, domain.NewSearchQuery("inception", domain.MediaMovie))

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "42", items[0].ID)
		assert.Empty(t, items[0].Description)
	})

	t.Run("matches creator in insertion order", func(t *testing.T) {
		items, err := c.Search(ctx, domain.NewSearchQuery("nolan", domain.MediaMovie))

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "42", items[0].ID)
		assert.Equal(t, "43", items[1].ID)
	})

	t.Run("type filter excludes other media", func(t *testing.T) {
		items, err := c.Search(ctx, domain.NewSearchQuery("dune", domain.MediaBook))

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "b2", items[0].ID)
	})

	t.Run("no match is empty, not nil", func(t *testing.T) {
		items, err := c.Search(ctx, domain.NewSearchQuery("zzz", domain.MediaMovie))

		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := c.Search(cctx, domain.NewSearchQuery("inception", domain.MediaMovie))

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCatalog_Recommend(t *testing.T) {
	c := NewDemoCatalog()

	recs, err := c.Recommend(context.Background(), "42")

	require.NoError(t, err)
	assert.Equal(t, "Inception", recs.Selected.Title)
	assert.NotEmpty(t, recs.Selected.Description)
	require.Len(t, recs.Edges, 4)
	assert.Equal(t, "43", recs.Edges[0].Item.ID)
	assert.Equal(t, "Same director", recs.Edges[0].RelationshipType)
	assert.Equal(t, "b1", recs.Edges[3].Item.ID)
	assert.True(t, recs.Edges[2].CrossMedia(recs.Selected))
}

func TestCatalog_Recommend_NotFound(t *testing.T) {
	_, err := NewCatalog().Recommend(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalog_Recommend_ReturnsCopy(t *testing.T) {
	c := NewDemoCatalog()
	recs, err := c.Recommend(context.Background(), "42")
	require.NoError(t, err)

	recs.Edges[0].RelationshipType = "changed"

	again, err := c.Recommend(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "Same director", again.Edges[0].RelationshipType)
}

func TestCatalog_Relate_Unknown(t *testing.T) {
	c := NewCatalog()
	c.AddItem(domain.ResultItem{ID: "1"})

	assert.ErrorIs(t, c.Relate("1", "2", "x"), domain.ErrNotFound)
	assert.ErrorIs(t, c.Relate("2", "1", "x"), domain.ErrNotFound)
}

func TestDemoCatalog_EveryItemHasRecommendations(t *testing.T) {
	c := NewDemoCatalog()

	for _, id := range c.order {
		recs, err := c.Recommend(context.Background(), id)
		require.NoError(t, err)
		assert.NotEmpty(t, recs.Edges, id)
	}
}

func TestCatalog_ConcurrentAccess(t *testing.T) {
	c := NewDemoCatalog()
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = c.Search(context.Background(), domain.NewSearchQuery("a", domain.MediaMovie))
		}()
		go func() {
			defer wg.Done()
			c.AddItem(domain.ResultItem{ID: "x", Title: "Extra", Type: domain.MediaMovie})
		}()
	}
	wg.Wait()
}
