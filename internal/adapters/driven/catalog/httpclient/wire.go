package httpclient

import (
	"bytes"
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/custodia-labs/medley/internal/core/domain"
)

// searchRequest is the body of the search endpoint.
type searchRequest struct {
	Query string `json:"query"`
	Type  string `json:"type"`
}

// searchResponse is the search endpoint's answer. Results may be null.
type searchResponse struct {
	Results []wireItem `json:"results"`
}

// recommendRequest is the body of the recommendation endpoint.
type recommendRequest struct {
	ItemID string `json:"item_id"`
}

// recommendResponse is the recommendation endpoint's answer.
type recommendResponse struct {
	SelectedItem    wireItem   `json:"selected_item"`
	Recommendations []wireEdge `json:"recommendations"`
}

type wireEdge struct {
	Item             wireItem `json:"item"`
	RelationshipType string   `json:"relationship_type"`
}

type wireItem struct {
	ID          flexString `json:"id"`
	Title       string     `json:"title"`
	Creator     string     `json:"creator"`
	Year        flexString `json:"year"`
	ImageURL    string     `json:"image_url,omitempty"`
	Type        string     `json:"type"`
	Description string     `json:"description,omitempty"`
}

func (w wireItem) toDomain() domain.ResultItem {
	return domain.ResultItem{
		ID:          string(w.ID),
		Title:       w.Title,
		Creator:     w.Creator,
		Year:        string(w.Year),
		ImageURL:    w.ImageURL,
		Type:        domain.MediaType(w.Type),
		Description: w.Description,
	}
}

func (r recommendResponse) toDomain() *domain.Recommendations {
	edges := make([]domain.RecommendationEdge, 0, len(r.Recommendations))
	for _, e := range r.Recommendations {
		edges = append(edges, domain.RecommendationEdge{
			Item:             e.Item.toDomain(),
			RelationshipType: e.RelationshipType,
		})
	}
	return &domain.Recommendations{
		Selected: r.SelectedItem.toDomain(),
		Edges:    edges,
	}
}

// flexString decodes a JSON string or number into a string.
// Catalog ids and years arrive as either.
type flexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	if _, err := strconv.ParseFloat(string(data), 64); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*f = flexString(data)
	return nil
}
