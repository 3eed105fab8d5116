package ui

import (
	"github.com/Mshel/gridsnake/internal/game"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap holds the in-game bindings. It doubles as the help.KeyMap for the
// status panel.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Pause key.Binding
	Quit  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓/s", "down")),
		Left:  key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "left")),
		Right: key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "right")),
		Pause: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Pause, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Left, k.Right}, {k.Pause, k.Quit}}
}

// GameKey translates a terminal key press into engine input.
func (k KeyMap) GameKey(msg tea.KeyMsg) game.Key {
	switch {
	case key.Matches(msg, k.Up):
		return game.KeyUp
	case key.Matches(msg, k.Down):
		return game.KeyDown
	case key.Matches(msg, k.Left):
		return game.KeyLeft
	case key.Matches(msg, k.Right):
		return game.KeyRight
	case key.Matches(msg, k.Pause):
		return game.KeySpace
	}
	return game.KeyOther
}
