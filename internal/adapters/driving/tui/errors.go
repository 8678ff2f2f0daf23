package tui

import "errors"

// ErrMissingCatalogService is returned when the catalog service is not provided.
var ErrMissingCatalogService = errors.New("tui: catalog service is required")

// ErrNoMediaTypes is returned when the catalog offers no media types to search.
var ErrNoMediaTypes = errors.New("tui: at least one media type is required")
