package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Roll    key.Binding
	Hold    key.Binding
	Up      key.Binding
	Down    key.Binding
	Score   key.Binding
	NewGame key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Roll: key.NewBinding(
			key.WithKeys("r", " "),
			key.WithHelp("r", "roll"),
		),
		Hold: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "hold die"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Score: key.NewBinding(
			key.WithKeys("enter", "s"),
			key.WithHelp("enter", "score"),
		),
		NewGame: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new game"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Roll, k.Hold, k.Up, k.Down, k.Score, k.NewGame, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
