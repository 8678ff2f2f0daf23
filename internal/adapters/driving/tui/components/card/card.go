// Package card renders catalog items as bordered cards.
package card

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/custodia-labs/medley/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/medley/internal/core/domain"
)

// Action labels.
const (
	GetRecommendations = "Get Recommendations"
	SelectInstead      = "Select This Instead"
	BackToSearch       = "Back to Search"
)

const minWidth = 24

// Result renders a search result card with its "Get Recommendations" action.
func Result(s *styles.Styles, item domain.ResultItem, placeholder string, focused bool, width int) string {
	lines := []string{
		s.BadgeFor(item.Type).Render(item.Type.String()),
		s.Normal.Bold(true).Render(truncate(item.Title, width-4)),
		s.Muted.Render(truncate(item.Byline(), width-4)),
		s.Muted.Render(truncate("image: "+item.Image(placeholder), width-4)),
		button(s, GetRecommendations, focused),
	}
	return frame(s, focused, width).Render(strings.Join(lines, "\n"))
}

// Recommendation renders a recommended item. The type badge is highlighted
// when the item's media type differs from the selected item's.
func Recommendation(
	s *styles.Styles,
	edge domain.RecommendationEdge,
	selected domain.ResultItem,
	placeholder string,
	focused bool,
	width int,
) string {
	lines := []string{
		RecommendationBadge(s, edge, selected).Render(edge.Item.Type.String()),
		s.Normal.Bold(true).Render(truncate(edge.Item.Title, width-4)),
		s.Muted.Render(truncate(edge.Item.Byline(), width-4)),
		s.Relationship.Render(truncate(edge.RelationshipType, width-4)),
		s.Muted.Render(truncate("image: "+edge.Item.Image(placeholder), width-4)),
		button(s, SelectInstead, focused),
	}
	return frame(s, focused, width).Render(strings.Join(lines, "\n"))
}

// RecommendationBadge returns the highlighted badge for cross-media edges and
// the media type's own badge otherwise.
func RecommendationBadge(s *styles.Styles, edge domain.RecommendationEdge, selected domain.ResultItem) lipgloss.Style {
	if edge.CrossMedia(selected) {
		return s.HighlightBadge
	}
	return s.BadgeFor(edge.Item.Type)
}

// Selected renders the item recommendations were requested for.
func Selected(s *styles.Styles, item domain.ResultItem, placeholder string, width int) string {
	inner := width - 4
	lines := []string{
		s.Title.Render(truncate(item.Title, inner)) + "  " + s.BadgeFor(item.Type).Render(item.Type.String()),
		s.Normal.Render(truncate(item.Byline(), inner)),
		s.Muted.Render(truncate("image: "+item.Image(placeholder), inner)),
		"",
		s.Normal.Width(inner).Render(item.DescriptionOrDefault()),
	}
	return frame(s, false, width).Render(strings.Join(lines, "\n"))
}

// Button renders a standalone action such as "Back to Search".
func Button(s *styles.Styles, label string, focused bool) string {
	return button(s, label, focused)
}

func button(s *styles.Styles, label string, focused bool) string {
	if focused {
		return s.ButtonFocused.Render("▶ " + label)
	}
	return s.Button.Render("[ " + label + " ]")
}

func frame(s *styles.Styles, focused bool, width int) lipgloss.Style {
	if width < minWidth {
		width = minWidth
	}
	if focused {
		return s.CardFocused.Width(width - 2)
	}
	return s.Card.Width(width - 2)
}

// truncate shortens text to max cells, ending in "...".
func truncate(text string, max int) string {
	if max < 4 {
		max = 4
	}
	return ansi.Truncate(text, max, "...")
}
