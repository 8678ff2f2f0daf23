// Package search provides the search form: a query input and a media type
// radio group.
package search

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/medley/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/medley/internal/adapters/driving/tui/components/mediatype"
	"github.com/custodia-labs/medley/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/medley/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/medley/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/medley/internal/core/domain"
)

// View is the search form. It never validates; submitting always emits
// messages.SearchSubmitted with whatever was entered.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	input  *input.SearchInput
	types  *mediatype.Selector

	width  int
	height int
}

// NewView creates a search form offering types.
func NewView(s *styles.Styles, km *keymap.KeyMap, types []domain.MediaType) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles: s,
		keymap: km,
		input:  input.NewSearchInput(s),
		types:  mediatype.NewSelector(s, types),
		width:  80,
		height: 24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the form.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keymap.Matches(msg.String(), v.keymap.Submit):
			return v, v.submit()
		case keymap.Matches(msg.String(), v.keymap.PrevType):
			v.types.Prev()
			return v, nil
		case keymap.Matches(msg.String(), v.keymap.NextType):
			v.types.Next()
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) submit() tea.Cmd {
	query, mediaType := v.input.Value(), v.types.Selected()
	return func() tea.Msg {
		return messages.SearchSubmitted{Query: query, Type: mediaType}
	}
}

// View renders the form.
func (v *View) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, v.input.View(), v.types.View())
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.input.SetWidth(width)
}

// Focus gives the form keyboard focus.
func (v *View) Focus() tea.Cmd {
	return v.input.Focus()
}

// Blur removes keyboard focus.
func (v *View) Blur() {
	v.input.Blur()
}

// Focused returns whether the form has focus.
func (v *View) Focused() bool {
	return v.input.Focused()
}

// Query returns the raw query text.
func (v *View) Query() string {
	return v.input.Value()
}

// SetQuery sets the query text.
func (v *View) SetQuery(query string) {
	v.input.SetValue(query)
}

// MediaType returns the selected media type, or "" if none.
func (v *View) MediaType() domain.MediaType {
	return v.types.Selected()
}

// SelectMediaType selects t if it is offered.
func (v *View) SelectMediaType(t domain.MediaType) bool {
	return v.types.Select(t)
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}
