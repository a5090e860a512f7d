package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/Mshel/termsnake/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func newTestModel(t *testing.T) GameModel {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)

	cfg := game.DefaultConfig()
	cfg.Seed = 3
	g, err := game.NewGame(cfg)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	g.Food = game.Position{X: 5, Y: 5}

	m := NewGameModel(g, cfg)
	m.lastTick = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return m
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Expected GameModel, got %T", next)
	}
	return model, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestGameModelKeyTurnsSnake(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyUp})

	if cmd != nil {
		t.Error("Expected no command for a turn")
	}
	if m.Game().Snake.Direction != game.Up {
		t.Errorf("Expected up, got %v", m.Game().Snake.Direction)
	}
}

func TestGameModelFrameTicksAfterInterval(t *testing.T) {
	m := newTestModel(t)
	start := m.lastTick

	m, cmd := update(t, m, frameMsg(start.Add(50*time.Millisecond)))
	if m.Game().Snake.Head() != (game.Position{X: 20, Y: 10}) {
		t.Errorf("Expected no tick after 50ms, got head %v", m.Game().Snake.Head())
	}
	if cmd == nil || isQuit(cmd) {
		t.Error("Expected the next frame to be scheduled")
	}

	m, _ = update(t, m, frameMsg(start.Add(100*time.Millisecond)))
	if m.Game().Snake.Head() != (game.Position{X: 21, Y: 10}) {
		t.Errorf("Expected one tick after 100ms, got head %v", m.Game().Snake.Head())
	}
	if m.canvas.Flushes() != 2 {
		t.Errorf("Expected a draw per frame, got %d", m.canvas.Flushes())
	}
}

func TestGameModelQuitKeyEndsOnNextFrame(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if isQuit(cmd) {
		t.Error("Expected the current frame to finish before quitting")
	}
	if !m.Game().GameOver {
		t.Error("Expected q to end the game")
	}

	m, cmd = update(t, m, frameMsg(m.lastTick.Add(10*time.Millisecond)))
	if !isQuit(cmd) {
		t.Error("Expected the frame after quitting to quit the program")
	}
	if m.Err() != nil {
		t.Errorf("Expected no error, got %v", m.Err())
	}
}

func TestGameModelTickHook(t *testing.T) {
	m := newTestModel(t)
	var outcomes []game.TickOutcome
	m = m.WithTickHook(func(o game.TickOutcome) { outcomes = append(outcomes, o) })
	m.Game().Food = game.Position{X: 21, Y: 10}

	m, _ = update(t, m, frameMsg(m.lastTick.Add(time.Second)))

	if len(outcomes) != 1 || !outcomes[0].Fed {
		t.Errorf("Expected one feeding tick, got %+v", outcomes)
	}
	if m.Game().Score != 1 {
		t.Errorf("Expected score 1, got %d", m.Game().Score)
	}
}

type stubPilot struct{ dir game.Direction }

func (p stubPilot) Steer(*game.Game) (game.Direction, error) { return p.dir, nil }

func TestGameModelPilotSteers(t *testing.T) {
	m := newTestModel(t).WithPilot(stubPilot{dir: game.Down})

	m, _ = update(t, m, frameMsg(m.lastTick.Add(time.Second)))

	if m.Game().Snake.Head() != (game.Position{X: 20, Y: 11}) {
		t.Errorf("Expected the pilot to turn down, got head %v", m.Game().Snake.Head())
	}
	if !strings.Contains(m.View(), "Autopilot engaged") {
		t.Error("Expected the status panel to show the autopilot")
	}
}

func TestGameModelView(t *testing.T) {
	m := newTestModel(t)
	if m.View() != "Game Loading..." {
		t.Errorf("Expected loading text before the first frame, got %q", m.View())
	}

	m, _ = update(t, m, frameMsg(m.lastTick.Add(10*time.Millisecond)))
	view := m.View()

	for _, expected := range []string{"Score:", "Length: 3", "┌", "┘", game.BodyRune, game.FoodRune, "quit"} {
		if !strings.Contains(view, expected) {
			t.Errorf("Expected view to contain %q", expected)
		}
	}
}

func TestGameModelWindowSize(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.ScreenWidth != 120 || m.ScreenHeight != 40 {
		t.Errorf("Expected 120x40, got %dx%d", m.ScreenWidth, m.ScreenHeight)
	}
}
