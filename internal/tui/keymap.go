package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the animation.
type KeyMap struct {
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "abort"),
		),
	}
}
