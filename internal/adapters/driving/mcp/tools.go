package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/medley/internal/core/domain"
)

// Tool names.
const (
	toolSearch          = "search_catalog"
	toolRecommendations = "get_recommendations"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the title or creator to search for"`
	Type  string `json:"type" jsonschema:"the media type to search, e.g. movie, tv, book or music"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []ItemOutput `json:"results"`
	Count   int          `json:"count"`
}

// ItemOutput is a catalog item.
type ItemOutput struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Creator     string `json:"creator,omitempty"`
	Year        string `json:"year,omitempty"`
	Type        string `json:"type"`
	ImageURL    string `json:"image_url,omitempty"`
	Description string `json:"description,omitempty"`
}

// RecommendInput is the input schema for the recommendations tool.
type RecommendInput struct {
	ItemID string `json:"item_id" jsonschema:"the id of an item returned by search_catalog"`
}

// RecommendOutput is the output schema for the recommendations tool.
type RecommendOutput struct {
	Selected        ItemOutput             `json:"selected_item"`
	Recommendations []RecommendationOutput `json:"recommendations"`
	Count           int                    `json:"count"`
}

// RecommendationOutput is a recommended item and why it was recommended.
type RecommendationOutput struct {
	Item             ItemOutput `json:"item"`
	RelationshipType string     `json:"relationship_type"`
	CrossMedia       bool       `json:"cross_media"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	types := make([]string, 0, len(s.ports.Catalog.MediaTypes()))
	for _, t := range s.ports.Catalog.MediaTypes() {
		types = append(types, t.String())
	}

	mcp.AddTool(s.server, &mcp.Tool{
		Name: toolSearch,
		Description: fmt.Sprintf(
			"Search the media catalog by title or creator. type must be one of: %s",
			strings.Join(types, ", "),
		),
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        toolRecommendations,
		Description: "Get recommendations related to a catalog item, across media types",
	}, s.handleRecommend)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	query := domain.NewSearchQuery(input.Query, domain.MediaType(strings.TrimSpace(input.Type)))
	items, err := s.ports.Catalog.Search(ctx, query)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]ItemOutput, len(items)),
		Count:   len(items),
	}
	for i := range items {
		output.Results[i] = toItemOutput(items[i])
	}

	return nil, output, nil
}

// handleRecommend handles the recommendations tool invocation.
func (s *Server) handleRecommend(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RecommendInput,
) (*mcp.CallToolResult, RecommendOutput, error) {
	recs, err := s.ports.Catalog.Recommend(ctx, input.ItemID)
	if err != nil {
		return nil, RecommendOutput{}, err
	}
	return nil, toRecommendOutput(recs), nil
}

func toItemOutput(item domain.ResultItem) ItemOutput {
	return ItemOutput{
		ID:          item.ID,
		Title:       item.Title,
		Creator:     item.Creator,
		Year:        item.Year,
		Type:        item.Type.String(),
		ImageURL:    item.ImageURL,
		Description: item.Description,
	}
}

func toRecommendOutput(recs *domain.Recommendations) RecommendOutput {
	if recs == nil {
		return RecommendOutput{Recommendations: []RecommendationOutput{}}
	}
	output := RecommendOutput{
		Selected:        toItemOutput(recs.Selected),
		Recommendations: make([]RecommendationOutput, len(recs.Edges)),
		Count:           len(recs.Edges),
	}
	for i, edge := range recs.Edges {
		output.Recommendations[i] = RecommendationOutput{
			Item:             toItemOutput(edge.Item),
			RelationshipType: edge.RelationshipType,
			CrossMedia:       edge.CrossMedia(recs.Selected),
		}
	}
	return output
}
