package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/medley/internal/core/domain"
)

var recommendJSON bool

var recommendCmd = &cobra.Command{
	Use:   "recommend [item-id]",
	Short: "Show recommendations for a catalog item",
	Long: `Fetches recommendations for an item id printed by 'medley search'.
Recommendations may be of a different media type than the item.`,
	Args: cobra.ExactArgs(1),
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().BoolVar(&recommendJSON, "json", false, "output recommendations as JSON")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	svc, err := catalog()
	if err != nil {
		return err
	}

	recs, err := svc.Recommend(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("recommendations failed: %w", err)
	}
	if recs == nil {
		recs = &domain.Recommendations{}
	}

	if recommendJSON {
		out := recommendationsJSON{
			Selected:        toItemJSON(recs.Selected),
			Recommendations: make([]recommendationJSON, len(recs.Edges)),
		}
		for i, edge := range recs.Edges {
			out.Recommendations[i] = recommendationJSON{
				Item:             toItemJSON(edge.Item),
				RelationshipType: edge.RelationshipType,
			}
		}
		return printJSON(cmd, out)
	}

	outputRecommendations(cmd, recs)
	return nil
}

func outputRecommendations(cmd *cobra.Command, recs *domain.Recommendations) {
	cmd.Println("Based on your selection:")
	cmd.Printf("  %s\n", itemLine(recs.Selected))
	cmd.Printf("  %s\n", itemDetail(recs.Selected))
	cmd.Printf("  %s\n", recs.Selected.DescriptionOrDefault())
	cmd.Println()

	if len(recs.Edges) == 0 {
		cmd.Println("No recommendations found for this selection.")
		return
	}

	cmd.Println("You might also like:")
	for i, edge := range recs.Edges {
		cmd.Printf("[%d] %s\n", i+1, itemLine(edge.Item))
		cmd.Printf("    %s\n", itemDetail(edge.Item))
		cmd.Printf("    %s\n", edge.RelationshipType)
	}
}
