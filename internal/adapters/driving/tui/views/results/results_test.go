package results

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/medley/internal/adapters/driving/tui/components/card"
	"github.com/custodia-labs/medley/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/medley/internal/core/domain"
)

func sampleItems() []domain.ResultItem {
	return []domain.ResultItem{
		{ID: "42", Title: "Inception", Creator: "Christopher Nolan", Year: "2010", Type: domain.MediaMovie},
		{ID: "43", Title: "Interstellar", Creator: "Christopher Nolan", Year: "2014", Type: domain.MediaMovie},
		{ID: "44", Title: "Paprika", Creator: "Satoshi Kon", Year: "2006", Type: domain.MediaMovie},
	}
}

func newView(items []domain.ResultItem) *View {
	v := NewView(nil, nil, "/ph.png")
	v.SetDimensions(80, 100)
	v.SetItems(items)
	return v
}

func selectCurrent(t *testing.T, v *View) messages.ItemSelected {
	t.Helper()
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.ItemSelected)
	require.True(t, ok)
	return msg
}

func TestView_RendersOneCardPerItem(t *testing.T) {
	v := newView(sampleItems())

	out := v.View()

	assert.Equal(t, 3, v.Count())
	assert.Equal(t, 3, strings.Count(out, card.GetRecommendations))
	assert.Contains(t, out, "Inception")
	assert.Contains(t, out, "Paprika")
}

func TestView_EachCardBoundToItsOwnID(t *testing.T) {
	v := newView(sampleItems())

	for i, item := range sampleItems() {
		v.list.SetSelected(i)
		assert.Equal(t, messages.ItemSelected{ItemID: item.ID}, selectCurrent(t, v))
	}
}

func TestView_NavigationThenSelect(t *testing.T) {
	v := newView(sampleItems())

	v.Update(tea.KeyMsg{Type: tea.KeyDown})
	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})

	assert.Equal(t, 2, v.SelectedIndex())
	assert.Equal(t, "44", selectCurrent(t, v).ItemID)
}

func TestView_SelectWithNoItems(t *testing.T) {
	v := newView(nil)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
}

func TestView_EmptyView(t *testing.T) {
	v := newView(nil)

	out := v.EmptyView(domain.MediaBook)

	assert.Contains(t, out, NoResults)
	assert.Contains(t, out, "Try searching for a more popular book title.")
}

func TestView_Clear(t *testing.T) {
	v := newView(sampleItems())

	v.Clear()

	assert.Equal(t, 0, v.Count())
	assert.Equal(t, "", v.View())
}

func TestView_Focus(t *testing.T) {
	v := newView(sampleItems())

	v.SetFocused(false)
	assert.NotContains(t, v.View(), "▶")

	v.SetFocused(true)
	assert.Equal(t, 1, strings.Count(v.View(), "▶ "+card.GetRecommendations))
}
