// Package tui provides the interactive terminal interface of medley: a
// search form above a region showing results, recommendations, loading
// skeletons or a message. It is a driving adapter in the hexagonal layout.
package tui

import (
	"github.com/custodia-labs/medley/internal/core/ports/driving"
)

// Ports aggregates the driving ports the TUI needs.
type Ports struct {
	// Catalog searches and fetches recommendations.
	Catalog driving.CatalogService

	// Settings supplies display settings. Optional; defaults are used
	// when nil.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate.
func NewPorts(catalog driving.CatalogService, settings driving.SettingsService) *Ports {
	return &Ports{
		Catalog:  catalog,
		Settings: settings,
	}
}

// Validate ensures the required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Catalog == nil {
		return ErrMissingCatalogService
	}
	if len(p.Catalog.MediaTypes()) == 0 {
		return ErrNoMediaTypes
	}
	return nil
}
