package cli

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/medley/internal/core/domain"
)

// itemJSON is the JSON form of a catalog item, using the catalog's field names.
type itemJSON struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Creator     string `json:"creator,omitempty"`
	Year        string `json:"year,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

type recommendationJSON struct {
	Item             itemJSON `json:"item"`
	RelationshipType string   `json:"relationship_type"`
}

type recommendationsJSON struct {
	Selected        itemJSON             `json:"selected_item"`
	Recommendations []recommendationJSON `json:"recommendations"`
}

func toItemJSON(item domain.ResultItem) itemJSON {
	return itemJSON{
		ID:          item.ID,
		Title:       item.Title,
		Creator:     item.Creator,
		Year:        item.Year,
		ImageURL:    item.ImageURL,
		Type:        item.Type.String(),
		Description: item.Description,
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// itemLine formats an item as "Title (year)".
func itemLine(item domain.ResultItem) string {
	if label := item.YearLabel(); label != "" {
		return item.Title + " " + label
	}
	return item.Title
}

// itemDetail formats the creator, type and id of an item.
func itemDetail(item domain.ResultItem) string {
	if item.Creator == "" {
		return fmt.Sprintf("%s · id %s", item.Type, item.ID)
	}
	return fmt.Sprintf("%s · %s · id %s", item.Creator, item.Type, item.ID)
}
