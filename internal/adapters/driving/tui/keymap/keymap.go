// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// ToggleFocus moves focus between the search form and the cards.
	ToggleFocus key.Binding

	// Submit sends the search form.
	Submit key.Binding

	// PrevType selects the previous media type.
	PrevType key.Binding

	// NextType selects the next media type.
	NextType key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Select triggers the focused card's action.
	Select key.Binding

	// Back returns from recommendations to the search form.
	Back key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		ToggleFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch focus"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		PrevType: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "prev type"),
		),
		NextType: key.NewBinding(
			key.WithKeys("right", "ctrl+t"),
			key.WithHelp("→", "next type"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("b", "back to search"),
		),
	}
}

// FormHelp returns keybindings shown while the form has focus.
func (k *KeyMap) FormHelp() []key.Binding {
	return []key.Binding{k.Submit, k.NextType, k.ToggleFocus, k.Quit}
}

// ResultsHelp returns keybindings for the results grid.
func (k *KeyMap) ResultsHelp() []key.Binding {
	return []key.Binding{k.Up, k.Select, k.ToggleFocus, k.Quit}
}

// RecommendationsHelp returns keybindings for the recommendations view.
func (k *KeyMap) RecommendationsHelp() []key.Binding {
	return []key.Binding{k.Up, k.Select, k.Back, k.ToggleFocus}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
