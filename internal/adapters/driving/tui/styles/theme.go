// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/medley/internal/core/domain"
)

// Theme defines the colour palette and styling for the TUI.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Success indicates positive outcomes.
	Success lipgloss.Color

	// Warning indicates caution and highlighted badges.
	Warning lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color

	// Skeleton fills loading placeholders.
	Skeleton lipgloss.Color

	// MediaColours maps a media type to its badge colour.
	MediaColours map[domain.MediaType]lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#7C3AED"), // Purple
		Secondary:  lipgloss.Color("#06B6D4"), // Cyan
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Success:    lipgloss.Color("#A6E3A1"), // Green
		Warning:    lipgloss.Color("#F9E2AF"), // Yellow
		Error:      lipgloss.Color("#F38BA8"), // Red
		Border:     lipgloss.Color("#45475A"), // Border gray
		Skeleton:   lipgloss.Color("#313244"),
		MediaColours: map[domain.MediaType]lipgloss.Color{
			domain.MediaMovie: lipgloss.Color("#F38BA8"),
			domain.MediaTV:    lipgloss.Color("#89B4FA"),
			domain.MediaBook:  lipgloss.Color("#A6E3A1"),
			domain.MediaMusic: lipgloss.Color("#CBA6F7"),
		},
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style

	// InputField style for input areas.
	InputField lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Help style for key hints.
	Help lipgloss.Style

	// Card frames a result or recommendation.
	Card lipgloss.Style

	// CardFocused frames the card that enter acts on.
	CardFocused lipgloss.Style

	// Badge is the base media type badge; see BadgeFor.
	Badge lipgloss.Style

	// HighlightBadge marks a recommendation of a different media type.
	HighlightBadge lipgloss.Style

	// Button renders a card action.
	Button lipgloss.Style

	// ButtonFocused renders the action of the focused card.
	ButtonFocused lipgloss.Style

	// Relationship renders a recommendation's relationship label.
	Relationship lipgloss.Style

	// Skeleton renders loading placeholder bars.
	Skeleton lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	card := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(lipgloss.Color("#181825")).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Card: card,

		CardFocused: card.
			BorderForeground(theme.Primary),

		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1E1E2E")).
			Background(theme.Muted).
			Padding(0, 1),

		HighlightBadge: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1E1E2E")).
			Background(theme.Warning).
			Padding(0, 1),

		Button: lipgloss.NewStyle().
			Foreground(theme.Secondary),

		ButtonFocused: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary).
			Padding(0, 1),

		Relationship: lipgloss.NewStyle().
			Italic(true).
			Foreground(theme.Secondary),

		Skeleton: lipgloss.NewStyle().
			Foreground(theme.Skeleton),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// BadgeFor returns the badge style for a media type. Unknown types keep the
// muted base badge.
func (s *Styles) BadgeFor(t domain.MediaType) lipgloss.Style {
	if c, ok := s.theme.MediaColours[t]; ok {
		return s.Badge.Background(c)
	}
	return s.Badge
}
