package ui

import (
	"testing"

	"github.com/Mshel/gridsnake/internal/game"
	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestGameKey(t *testing.T) {
	cases := []struct {
		name string
		msg  tea.KeyMsg
		want game.Key
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, game.KeyUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, game.KeyDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, game.KeyLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, game.KeyRight},
		{"w", runeKey('w'), game.KeyUp},
		{"s", runeKey('s'), game.KeyDown},
		{"a", runeKey('a'), game.KeyLeft},
		{"d", runeKey('d'), game.KeyRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, game.KeySpace},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, game.KeyOther},
		{"x", runeKey('x'), game.KeyOther},
	}

	keys := DefaultKeyMap()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.GameKey(tc.msg); got != tc.want {
				t.Fatalf("GameKey(%q) = %d, want %d", tc.msg.String(), got, tc.want)
			}
		})
	}
}
