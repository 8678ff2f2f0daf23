// Package results provides the grid of search result cards.
package results

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/medley/internal/adapters/driving/tui/components/card"
	"github.com/custodia-labs/medley/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/medley/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/medley/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/medley/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/medley/internal/core/domain"
)

// Empty-state texts.
const (
	NoResults        = "No results found. Try a different search or check your spelling."
	suggestionFormat = "Try searching for a more popular %s title."
)

// Rendered height of one result card.
const cardLines = 7

// View shows one card per result. Enter on a card emits
// messages.ItemSelected for that card's item.
type View struct {
	styles      *styles.Styles
	keymap      *keymap.KeyMap
	list        *list.CardList[domain.ResultItem]
	placeholder string
	width       int
}

// NewView creates an empty results view.
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
	v.list = list.NewCardList(v.renderCard, cardLines)
	return v
}

func (v *View) renderCard(item domain.ResultItem, focused bool) string {
	return card.Result(v.styles, item, v.placeholder, focused, v.width)
}

// Update handles navigation and the card action.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && keymap.Matches(msg.String(), v.keymap.Select) {
		item, ok := v.list.SelectedEntry()
		if !ok {
			return v, nil
		}
		id := item.ID
		return v, func() tea.Msg {
			return messages.ItemSelected{ItemID: id}
		}
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// View renders the cards.
func (v *View) View() string {
	return v.list.View()
}

// EmptyView renders the no-results state for a search of type t.
func (v *View) EmptyView(t domain.MediaType) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		v.styles.Warning.Render(NoResults),
		v.styles.Muted.Render(Suggestion(t)),
	)
}

// Suggestion returns the hint shown under NoResults.
func Suggestion(t domain.MediaType) string {
	return fmt.Sprintf(suggestionFormat, t)
}

// SetItems replaces the results.
func (v *View) SetItems(items []domain.ResultItem) {
	v.list.SetEntries(items)
}

// Items returns the current results.
func (v *View) Items() []domain.ResultItem {
	return v.list.Entries()
}

// Count returns the number of cards.
func (v *View) Count() int {
	return v.list.Count()
}

// SelectedIndex returns the cursor index.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// SetFocused controls whether the cursor card is highlighted.
func (v *View) SetFocused(focused bool) {
	v.list.SetFocused(focused)
}

// SetDimensions sets the area available to the cards.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.list.SetHeight(height)
}

// Clear removes all results.
func (v *View) Clear() {
	v.list.SetEntries(nil)
}
