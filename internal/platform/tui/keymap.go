package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the runner.
type KeyMap struct {
	Action     key.Binding
	PrevPlanet key.Binding
	NextPlanet key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the one-line help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Action, k.PrevPlanet, k.NextPlanet, k.Help, k.Quit}
}

// FullHelp returns key bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Action, k.PrevPlanet, k.NextPlanet},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Action: key.NewBinding(
			key.WithKeys(" ", "up", "enter", "w"),
			key.WithHelp("space", "start/jump/restart"),
		),
		PrevPlanet: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "prev planet"),
		),
		NextPlanet: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "next planet"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
