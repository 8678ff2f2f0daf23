// Package skeleton renders loading placeholders shaped like the cards they
// stand in for.
package skeleton

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/custodia-labs/medley/internal/adapters/driving/tui/styles"
)

// Counts of placeholder cards.
const (
	ResultCards         = 6
	RecommendationCards = 3
)

// Marker is the glyph skeleton bars are drawn with.
const Marker = "░"

// Results renders ResultCards placeholder result cards.
func Results(s *styles.Styles, width int) string {
	cards := make([]string, 0, ResultCards)
	for i := 0; i < ResultCards; i++ {
		cards = append(cards, Card(s, width, 0.3, 0.8, 0.5, 0.4))
	}
	return strings.Join(cards, "\n")
}

// Recommendations renders one selected-item placeholder followed by
// RecommendationCards recommendation placeholders.
func Recommendations(s *styles.Styles, width int) string {
	sections := []string{
		s.Subtitle.Render("Based on your selection:"),
		Card(s, width, 0.9, 0.5, 1, 1, 0.7),
		"",
		s.Subtitle.Render("Finding recommendations..."),
	}
	for i := 0; i < RecommendationCards; i++ {
		sections = append(sections, Card(s, width, 0.3, 0.8, 0.6, 0.5, 0.4))
	}
	return strings.Join(sections, "\n")
}

// Card renders one placeholder card with a bar per fraction of the inner width.
func Card(s *styles.Styles, width int, bars ...float64) string {
	if width < 24 {
		width = 24
	}
	inner := width - 4
	lines := make([]string, 0, len(bars))
	for _, f := range bars {
		n := int(float64(inner) * f)
		if n < 1 {
			n = 1
		}
		lines = append(lines, s.Skeleton.Render(strings.Repeat(Marker, n)))
	}
	return s.Card.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// Count returns how many placeholder cards a rendered block contains.
func Count(rendered string) int {
	n := 0
	for _, line := range strings.Split(rendered, "\n") {
		// Each card has a single top border line.
		if strings.HasPrefix(strings.TrimSpace(ansi.Strip(line)), lipgloss.RoundedBorder().TopLeft) {
			n++
		}
	}
	return n
}
