package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/medley/internal/core/domain"
	"github.com/custodia-labs/medley/internal/core/services"
)

// stubCatalogClient implements driven.CatalogClient with canned answers.
type stubCatalogClient struct {
	items []domain.ResultItem
	recs  *domain.Recommendations
	err   error
}

func (s *stubCatalogClient) Search(context.Context, domain.SearchQuery) ([]domain.ResultItem, error) {
	return s.items, s.err
}

func (s *stubCatalogClient) Recommend(context.Context, string) (*domain.Recommendations, error) {
	return s.recs, s.err
}

func TestSearchCmd_Use(t *testing.T) {
	assert.Equal(t, "search [query]", searchCmd.Use)
}

func TestSearchCmd_HasTypeFlag(t *testing.T) {
	flag := searchCmd.Flags().Lookup("type")
	require.NotNil(t, flag, "type flag should exist")
	assert.Equal(t, "t", flag.Shorthand)
	assert.Equal(t, "movie", flag.DefValue)
}

func TestSearchCmd_RequiresQuery(t *testing.T) {
	setupDemoServices(t)

	_, err := execute(t, "search")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg(s)")
}

func TestSearchCmd_PrintsResults(t *testing.T) {
	setupDemoServices(t)

	out, err := execute(t, "search", "Inception")

	require.NoError(t, err)
	assert.Contains(t, out, "Found 1 results:")
	assert.Contains(t, out, "[1] Inception (2010)")
	assert.Contains(t, out, "Christopher Nolan · movie · id 42")
}

func TestSearchCmd_JoinsArgsAndUsesType(t *testing.T) {
	setupDemoServices(t)

	out, err := execute(t, "search", "-t", "book", "Philip", "K.")

	require.NoError(t, err)
	assert.Contains(t, out, "Do Androids Dream of Electric Sheep?")
	assert.NotContains(t, out, "Inception")
}

func TestSearchCmd_JSONOutput(t *testing.T) {
	setupDemoServices(t)

	out, err := execute(t, "search", "--json", "Inception")

	require.NoError(t, err)
	assert.Contains(t, out, `"id": "42"`)
	assert.Contains(t, out, `"title": "Inception"`)
	assert.Contains(t, out, `"type": "movie"`)
}

func TestSearchCmd_NoResults(t *testing.T) {
	setupDemoServices(t)

	out, err := execute(t, "search", "--type", "tv", "zzzz")

	require.NoError(t, err)
	assert.Contains(t, out, "No results found.")
	assert.Contains(t, out, "Try searching for a more popular tv title.")
}

func TestSearchCmd_NoResultsJSONIsEmptyList(t *testing.T) {
	setupDemoServices(t)

	out, err := execute(t, "search", "--json", "zzzz")

	require.NoError(t, err)
	assert.Contains(t, out, "[]")
}

func TestSearchCmd_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"blank query", []string{"search", "   "}, domain.ErrEmptyQuery},
		{"unknown type", []string{"search", "--type", "podcast", "Inception"}, domain.ErrUnknownMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupDemoServices(t)

			_, err := execute(t, tt.args...)

			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestSearchCmd_CatalogFailure(t *testing.T) {
	client := &stubCatalogClient{err: &domain.HTTPStatusError{StatusCode: 500, Endpoint: "/search"}}
	setServices(t, services.NewCatalogService(client, nil), nil)

	_, err := execute(t, "search", "Inception")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "search failed")
	var statusErr *domain.HTTPStatusError
	assert.True(t, errors.As(err, &statusErr))
}

func TestSearchCmd_ServiceNotConfigured(t *testing.T) {
	setServices(t, nil, nil)

	_, err := execute(t, "search", "Inception")

	assert.ErrorIs(t, err, errCatalogNotConfigured)
}
