package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/medley/internal/core/domain"
)

var (
	searchType string
	searchJSON bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the media catalog",
	Long: `Searches the catalog for titles or creators of one media type and
prints the matches. Use the printed id with 'medley recommend'.`,
	Example: `  medley search Inception
  medley search --type book "Philip K. Dick"
  medley search --json Dune`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchType, "type", "t", string(domain.MediaMovie), "media type to search")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	svc, err := catalog()
	if err != nil {
		return err
	}

	query := domain.NewSearchQuery(strings.Join(args, " "), domain.MediaType(strings.ToLower(searchType)))
	items, err := svc.Search(cmd.Context(), query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		out := make([]itemJSON, len(items))
		for i := range items {
			out[i] = toItemJSON(items[i])
		}
		return printJSON(cmd, out)
	}

	outputSearchTable(cmd, query, items)
	return nil
}

func outputSearchTable(cmd *cobra.Command, query domain.SearchQuery, items []domain.ResultItem) {
	if len(items) == 0 {
		cmd.Println("No results found.")
		cmd.Printf("Try searching for a more popular %s title.\n", query.Type)
		return
	}

	cmd.Printf("Found %d results:\n", len(items))
	cmd.Println()
	for i := range items {
		cmd.Printf("[%d] %s\n", i+1, itemLine(items[i]))
		cmd.Printf("    %s\n", itemDetail(items[i]))
	}
}
