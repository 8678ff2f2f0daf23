// Package recommendations shows a selected item and the items recommended
// for it, ending with a "Back to Search" action.
package recommendations

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/medley/internal/adapters/driving/tui/components/card"
	"github.com/custodia-labs/medley/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/medley/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/medley/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/medley/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/medley/internal/core/domain"
)

// Section texts.
const (
	SelectedHeading = "Based on your selection:"
	ListHeading     = "You might also like:"
	NoneFound       = "No recommendations found for this selection."
)

const (
	cardLines     = 8
	selectedLines = 9
)

// entry is one focusable row: a recommendation or the back action.
type entry struct {
	edge domain.RecommendationEdge
	back bool
}

// View renders recommendations in the order the catalog returned them.
type View struct {
	styles      *styles.Styles
	keymap      *keymap.KeyMap
	recs        *domain.Recommendations
	list        *list.CardList[entry]
	placeholder string
	width       int
}

// NewView creates an empty recommendations view.
func NewView(s *styles.Styles, km *keymap.KeyMap, placeholder string) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:      s,
		keymap:      km,
		placeholder: placeholder,
		width:       80,
	}
	v.list = list.NewCardList(v.renderEntry, cardLines)
	return v
}

func (v *View) renderEntry(e entry, focused bool) string {
	if e.back {
		return "\n" + card.Button(v.styles, card.BackToSearch, focused)
	}
	return card.Recommendation(v.styles, e.edge, v.recs.Selected, v.placeholder, focused, v.width)
}

// Update handles navigation, "Select This Instead" and going back.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch {
	case keymap.Matches(key.String(), v.keymap.Back):
		return v, backToSearch
	case keymap.Matches(key.String(), v.keymap.Select):
		e, ok := v.list.SelectedEntry()
		if !ok {
			return v, nil
		}
		if e.back {
			return v, backToSearch
		}
		id := e.edge.Item.ID
		return v, func() tea.Msg {
			return messages.ItemSelected{ItemID: id}
		}
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

func backToSearch() tea.Msg {
	return messages.BackToSearch{}
}

// View renders the selected item followed by its recommendations.
func (v *View) View() string {
	if v.recs == nil {
		return ""
	}

	sections := []string{
		v.styles.Subtitle.Render(SelectedHeading),
		card.Selected(v.styles, v.recs.Selected, v.placeholder, v.width),
		"",
		v.styles.Subtitle.Render(ListHeading),
	}
	if v.recs.Count() == 0 {
		sections = append(sections, v.styles.Muted.Render(NoneFound))
	}
	sections = append(sections, v.list.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetRecommendations replaces the content and puts the cursor on the first
// recommendation.
func (v *View) SetRecommendations(recs *domain.Recommendations) {
	if recs == nil {
		recs = &domain.Recommendations{}
	}
	v.recs = recs

	entries := make([]entry, 0, len(recs.Edges)+1)
	for _, edge := range recs.Edges {
		entries = append(entries, entry{edge: edge})
	}
	entries = append(entries, entry{back: true})
	v.list.SetEntries(entries)
}

// Recommendations returns what is shown.
func (v *View) Recommendations() *domain.Recommendations {
	return v.recs
}

// Count returns the number of recommendation cards.
func (v *View) Count() int {
	return v.recs.Count()
}

// SelectedIndex returns the cursor index; Count() is the back action.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// SetSelected moves the cursor.
func (v *View) SetSelected(index int) {
	v.list.SetSelected(index)
}

// SetFocused controls whether the cursor card is highlighted.
func (v *View) SetFocused(focused bool) {
	v.list.SetFocused(focused)
}

// SetDimensions sets the area available to the view.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.list.SetHeight(height - selectedLines - 3)
}

// Clear removes all content.
func (v *View) Clear() {
	v.recs = nil
	v.list.SetEntries(nil)
}
