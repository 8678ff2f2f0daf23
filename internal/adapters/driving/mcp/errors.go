// Package mcp provides an MCP (Model Context Protocol) server adapter for medley.
// It lets AI assistants search the media catalog and ask for recommendations.
package mcp

import "errors"

// ErrMissingCatalogService is returned when the catalog service is not provided.
var ErrMissingCatalogService = errors.New("mcp: catalog service is required")
