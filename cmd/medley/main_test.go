package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/medley/internal/adapters/driving/cli"
	"github.com/custodia-labs/medley/internal/core/domain"
)

func TestOpenSettings(t *testing.T) {
	svc, err := openSettings(cli.Options{ConfigDir: t.TempDir()})

	require.NoError(t, err)
	s, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings().BaseURL, s.BaseURL)
}

func TestNewCatalog_Demo(t *testing.T) {
	svc, err := newCatalog(cli.Options{Demo: true}, domain.DefaultSettings())
	require.NoError(t, err)

	items, err := svc.Search(context.Background(), domain.NewSearchQuery("Inception", domain.MediaMovie))

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "42", items[0].ID)
}

func TestNewCatalog_HTTP(t *testing.T) {
	s := domain.DefaultSettings()
	s.Profile = domain.ProfileExperimental

	svc, err := newCatalog(cli.Options{}, s)

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultMediaTypes(), svc.MediaTypes())
}

func TestNewCatalog_InvalidBaseURL(t *testing.T) {
	s := domain.DefaultSettings()
	s.BaseURL = "not a url"

	_, err := newCatalog(cli.Options{}, s)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
