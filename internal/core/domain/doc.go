// Package domain defines the core entities for medley.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SearchQuery: Free text plus the media type to search in
//   - ResultItem: A single catalog entry
//   - RecommendationEdge: A ResultItem with the reason it was recommended
//   - Recommendations: The selected item and its ordered edges
//   - UIState: The interaction state of the search-and-recommend flow
//   - Settings: Catalog endpoint and display configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
