// Package list provides a navigable list of cards for the TUI.
package list

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/medley/internal/adapters/driving/tui/keymap"
)

// RenderFunc renders one entry; focused is set for the cursor entry.
type RenderFunc[T any] func(entry T, focused bool) string

// CardList keeps a cursor over entries and renders the window around it.
type CardList[T any] struct {
	entries      []T
	selected     int
	render       RenderFunc[T]
	keymap       *keymap.KeyMap
	focused      bool
	height       int
	linesPerCard int
}

// NewCardList creates a list rendering each entry with render.
// linesPerCard is the rendered height of one entry, used for scrolling.
func NewCardList[T any](render RenderFunc[T], linesPerCard int) *CardList[T] {
	if linesPerCard < 1 {
		linesPerCard = 1
	}
	return &CardList[T]{
		render:       render,
		keymap:       keymap.DefaultKeyMap(),
		focused:      true,
		height:       24,
		linesPerCard: linesPerCard,
	}
}

// Update moves the cursor on up/down keys.
func (l *CardList[T]) Update(msg tea.Msg) (*CardList[T], tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keymap.Matches(msg.String(), l.keymap.Up):
			l.MoveUp()
		case keymap.Matches(msg.String(), l.keymap.Down):
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the visible window of entries.
func (l *CardList[T]) View() string {
	if len(l.entries) == 0 || l.render == nil {
		return ""
	}
	start, end := l.window()
	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		cards = append(cards, l.render(l.entries[i], l.focused && i == l.selected))
	}
	return strings.Join(cards, "\n")
}

// window returns the half-open range of entries that fit the height,
// keeping the cursor in view.
func (l *CardList[T]) window() (int, int) {
	visible := l.height / l.linesPerCard
	if visible < 1 {
		visible = 1
	}
	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := start + visible
	if end > len(l.entries) {
		end = len(l.entries)
	}
	return start, end
}

// SetEntries replaces the entries and resets the cursor.
func (l *CardList[T]) SetEntries(entries []T) {
	l.entries = entries
	l.selected = 0
}

// Entries returns the current entries.
func (l *CardList[T]) Entries() []T {
	return l.entries
}

// Selected returns the cursor index.
func (l *CardList[T]) Selected() int {
	return l.selected
}

// SetSelected moves the cursor if index is in range.
func (l *CardList[T]) SetSelected(index int) {
	if index >= 0 && index < len(l.entries) {
		l.selected = index
	}
}

// SelectedEntry returns the entry under the cursor.
func (l *CardList[T]) SelectedEntry() (T, bool) {
	var zero T
	if l.selected < 0 || l.selected >= len(l.entries) {
		return zero, false
	}
	return l.entries[l.selected], true
}

// MoveUp moves the cursor up.
func (l *CardList[T]) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves the cursor down.
func (l *CardList[T]) MoveDown() {
	if l.selected < len(l.entries)-1 {
		l.selected++
	}
}

// SetFocused controls whether the cursor entry is drawn focused.
func (l *CardList[T]) SetFocused(focused bool) {
	l.focused = focused
}

// SetHeight sets the number of lines available to the list.
func (l *CardList[T]) SetHeight(height int) {
	l.height = height
}

// Count returns the number of entries.
func (l *CardList[T]) Count() int {
	return len(l.entries)
}

// IsEmpty returns whether the list has no entries.
func (l *CardList[T]) IsEmpty() bool {
	return len(l.entries) == 0
}
