// Package status provides the status line of the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/medley/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/medley/internal/adapters/driving/tui/styles"
)

// State represents what the status line is reporting.
type State string

const (
	StateReady   State = "ready"
	StateLoading State = "loading"
	StateInfo    State = "info"
	StateError   State = "error"
)

// Bar displays the status line, a spinner while loading, and key hints.
type Bar struct {
	styles  *styles.Styles
	spinner spinner.Model
	hints   []key.Binding
	state   State
	message string
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(s.Theme().Primary)

	return &Bar{
		styles:  s,
		spinner: sp,
		hints:   km.FormHelp(),
		state:   StateReady,
		width:   80,
	}
}

// Update advances the spinner while loading.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	if _, ok := msg.(spinner.TickMsg); !ok || s.state != StateLoading {
		return s, nil
	}
	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	return s, cmd
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	// Hints give way to the message on narrow terminals.
	if lipgloss.Width(left)+lipgloss.Width(right)+3 > s.width {
		right = ""
	}
	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	switch s.state {
	case StateLoading:
		return s.styles.Normal.Render(s.message) + " " + s.spinner.View()
	case StateInfo:
		return s.styles.Normal.Render(s.message)
	case StateError:
		return s.styles.Error.Render(s.message)
	case StateReady:
	}
	return ""
}

func (s *Bar) renderRight() string {
	hints := make([]string, 0, len(s.hints))
	for _, b := range s.hints {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Help.Render(strings.Join(hints, " | "))
}

// StartLoading shows message with a spinner and returns the first tick.
func (s *Bar) StartLoading(message string) tea.Cmd {
	s.state = StateLoading
	s.message = message
	return s.spinner.Tick
}

// SetInfo shows a plain message.
func (s *Bar) SetInfo(message string) {
	s.state = StateInfo
	s.message = message
}

// SetError shows "Error: <err>".
func (s *Bar) SetError(err error) {
	s.state = StateError
	s.message = "Error: " + err.Error()
}

// SetHints replaces the key hints shown on the right.
func (s *Bar) SetHints(bindings []key.Binding) {
	s.hints = bindings
}

// Clear empties the status line.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// Message returns the current status text.
func (s *Bar) Message() string {
	return s.message
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}
