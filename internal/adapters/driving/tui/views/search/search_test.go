package search

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/medley/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/medley/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/medley/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/medley/internal/core/domain"
)

func newView() *View {
	return NewView(styles.DefaultStyles(), keymap.DefaultKeyMap(), domain.DefaultMediaTypes())
}

func typeText(v *View, text string) {
	for _, r := range text {
		v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func submit(t *testing.T, v *View) messages.SearchSubmitted {
	t.Helper()
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.SearchSubmitted)
	require.True(t, ok)
	return msg
}

func TestNewView(t *testing.T) {
	v := newView()

	require.NotNil(t, v)
	assert.True(t, v.Focused())
	assert.Equal(t, "", v.Query())
	assert.Equal(t, domain.MediaType(""), v.MediaType())
}

func TestNewView_NilArgs(t *testing.T) {
	v := NewView(nil, nil, nil)

	require.NotNil(t, v)
	assert.NotNil(t, v.styles)
	assert.NotNil(t, v.keymap)
}

func TestView_Init(t *testing.T) {
	assert.NotNil(t, newView().Init())
}

func TestView_TypingAndSubmit(t *testing.T) {
	v := newView()
	typeText(v, "Inception")
	v.Update(tea.KeyMsg{Type: tea.KeyRight})

	msg := submit(t, v)

	assert.Equal(t, "Inception", msg.Query)
	assert.Equal(t, domain.MediaMovie, msg.Type)
}

func TestView_SubmitDoesNotValidate(t *testing.T) {
	v := newView()

	msg := submit(t, v)

	assert.Equal(t, "", msg.Query)
	assert.Equal(t, domain.MediaType(""), msg.Type)
}

func TestView_SubmitKeepsRawQuery(t *testing.T) {
	v := newView()
	v.SetQuery("  Dune ")

	msg := submit(t, v)

	assert.Equal(t, "  Dune ", msg.Query)
}

func TestView_MediaTypeKeys(t *testing.T) {
	v := newView()

	v.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, domain.MediaMovie, v.MediaType())

	v.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, domain.MediaTV, v.MediaType())

	v.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, domain.MediaMovie, v.MediaType())

	assert.Equal(t, "", v.Query(), "type keys must not reach the input")
}

func TestView_SelectMediaType(t *testing.T) {
	v := newView()

	assert.True(t, v.SelectMediaType(domain.MediaBook))
	assert.False(t, v.SelectMediaType("podcast"))
	assert.Equal(t, domain.MediaBook, v.MediaType())
}

func TestView_View(t *testing.T) {
	v := newView()
	v.SetQuery("Dune")
	v.SelectMediaType(domain.MediaBook)

	out := v.View()

	assert.Contains(t, out, "Dune")
	assert.Contains(t, out, "(•) book")
	assert.Contains(t, out, "( ) movie")
}

func TestView_FocusBlur(t *testing.T) {
	v := newView()

	v.Blur()
	assert.False(t, v.Focused())
	typeText(v, "x")
	assert.Equal(t, "", v.Query())

	v.Focus()
	assert.True(t, v.Focused())
}

func TestView_SetDimensions(t *testing.T) {
	v := newView()

	v.SetDimensions(100, 40)

	assert.Equal(t, 100, v.Width())
}
