package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for medley resources.
	uriScheme = "medley://"

	mimeJSON = "application/json"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "media-types",
		Name:        "media-types",
		Description: "Media types a search can be scoped to",
		MIMEType:    mimeJSON,
	}, s.handleMediaTypesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "items/{itemId}/recommendations",
		Name:        "item-recommendations",
		Description: "Recommendations for a catalog item",
		MIMEType:    mimeJSON,
	}, s.handleRecommendationsResource)
}

// handleMediaTypesResource lists the configured media types.
func (s *Server) handleMediaTypesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	types := s.ports.Catalog.MediaTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return jsonResource(req.Params.URI, names)
}

// handleRecommendationsResource returns recommendations for an item.
func (s *Server) handleRecommendationsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// medley://items/{itemId}/recommendations
	itemID := extractItemID(req.Params.URI)
	if itemID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	recs, err := s.ports.Catalog.Recommend(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("getting recommendations: %w", err)
	}
	return jsonResource(req.Params.URI, toRecommendOutput(recs))
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: mimeJSON,
			Text:     string(data),
		}},
	}, nil
}

// extractItemID extracts the item ID from a URI like medley://items/{itemId}/recommendations.
func extractItemID(uri string) string {
	const prefix = uriScheme + "items/"
	const suffix = "/recommendations"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}
	id := strings.TrimSuffix(uri, suffix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
