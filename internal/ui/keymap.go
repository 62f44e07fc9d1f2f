package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the interactive key bindings.
type KeyMap struct {
	NextPalette key.Binding
	NextScheme  key.Binding
	FastMode    key.Binding
	SlowMode    key.Binding
	ToggleBar   key.Binding
	Repaint     key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextPalette: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "next palette"),
		),
		NextScheme: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "next color scheme"),
		),
		FastMode: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fast refresh"),
		),
		SlowMode: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "slow refresh"),
		),
		ToggleBar: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle status bar"),
		),
		Repaint: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "repaint / retry camera"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
