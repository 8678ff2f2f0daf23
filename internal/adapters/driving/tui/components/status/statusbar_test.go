package status

import (
	"errors"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/medley/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/medley/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, 80, bar.Width())
}

func TestNewBar_NilArgs(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.Contains(t, bar.View(), "enter: search")
}

func TestBar_StartLoading(t *testing.T) {
	bar := NewBar(nil, nil)

	cmd := bar.StartLoading(`Searching for movie: "Inception"`)

	assert.NotNil(t, cmd)
	assert.Equal(t, StateLoading, bar.State())
	assert.Contains(t, bar.View(), `Searching for movie: "Inception"`)
}

func TestBar_Update_TicksOnlyWhileLoading(t *testing.T) {
	bar := NewBar(nil, nil)
	tick := spinner.TickMsg{ID: bar.spinner.ID()}

	_, cmd := bar.Update(tick)
	assert.Nil(t, cmd)

	bar.StartLoading("Finding perfect matches")
	_, cmd = bar.Update(tick)
	assert.NotNil(t, cmd)

	bar.SetInfo("Found 2 recommendations based on your selection")
	_, cmd = bar.Update(tick)
	assert.Nil(t, cmd)
}

func TestBar_Update_IgnoresOtherMessages(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.StartLoading("x")

	_, cmd := bar.Update("not a tick")

	assert.Nil(t, cmd)
}

func TestBar_SetInfo(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetInfo("Found 3 results")

	assert.Equal(t, StateInfo, bar.State())
	assert.Contains(t, bar.View(), "Found 3 results")
}

func TestBar_SetError(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetError(errors.New("HTTP error! Status: 500"))

	assert.Equal(t, StateError, bar.State())
	assert.Equal(t, "Error: HTTP error! Status: 500", bar.Message())
}

func TestBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetInfo("Found 3 results")

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.NotContains(t, bar.View(), "Found 3 results")
}

func TestBar_SetHints(t *testing.T) {
	km := keymap.DefaultKeyMap()
	bar := NewBar(nil, km)

	bar.SetHints(km.RecommendationsHelp())

	assert.Contains(t, bar.View(), "b: back to search")
}

func TestBar_SetWidth(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetWidth(120)

	assert.Equal(t, 120, bar.Width())
}

func TestBar_View_DropsHintsWhenNarrow(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(40)

	bar.SetInfo("Found 12 recommendations based on your selection")

	view := bar.View()
	assert.Contains(t, view, "Found 12")
	assert.NotContains(t, view, "ctrl+c")
}
