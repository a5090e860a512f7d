package game

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap binds key names to game actions. Key names follow bubbletea, so
// both tea.KeyMsg and term.Key can be matched against it.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Left, km.Right, km.Quit}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{km.ShortHelp()}
}

// Apply performs the action bound to k. It reports false for unbound keys.
func (km KeyMap) Apply(g *Game, k fmt.Stringer) bool {
	switch {
	case key.Matches(k, km.Up):
		g.Snake.ChangeDirection(Up)
	case key.Matches(k, km.Down):
		g.Snake.ChangeDirection(Down)
	case key.Matches(k, km.Left):
		g.Snake.ChangeDirection(Left)
	case key.Matches(k, km.Right):
		g.Snake.ChangeDirection(Right)
	case key.Matches(k, km.Quit):
		g.Quit()
	default:
		return false
	}
	return true
}
