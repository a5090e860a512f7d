package term

import (
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func newSimulatedTerminal(t *testing.T) (*TcellTerminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	terminal := NewTcellTerminalWithScreen(screen)
	if err := terminal.Open(); err != nil {
		t.Fatalf("Expected terminal to open, got %v", err)
	}
	t.Cleanup(func() { terminal.Close() })
	screen.SetSize(20, 10)
	return terminal, screen
}

func TestTcellTerminalWritesGlyphs(t *testing.T) {
	terminal, screen := newSimulatedTerminal(t)

	terminal.MoveCursor(3, 2)
	if err := terminal.WriteGlyph(Glyph{Text: "■●", Fg: "9"}); err != nil {
		t.Fatalf("Expected write to succeed, got %v", err)
	}
	terminal.Flush()

	if mainc, _, _, _ := screen.GetContent(3, 2); mainc != '■' {
		t.Errorf("Expected '■' at (3,2), got %q", mainc)
	}
	mainc, _, style, _ := screen.GetContent(4, 2)
	if mainc != '●' {
		t.Errorf("Expected '●' at (4,2), got %q", mainc)
	}
	if fg, _, _ := style.Decompose(); fg != tcell.PaletteColor(9) {
		t.Errorf("Expected palette color 9, got %v", fg)
	}
}

func TestTcellTerminalRejectsBadColor(t *testing.T) {
	terminal, _ := newSimulatedTerminal(t)

	if err := terminal.WriteGlyph(Glyph{Text: "x", Fg: "red"}); err == nil {
		t.Error("Expected an error for a non-numeric color")
	}
}

func TestTcellTerminalPollKey(t *testing.T) {
	terminal, screen := newSimulatedTerminal(t)

	tests := []struct {
		key      tcell.Key
		r        rune
		expected string
	}{
		{tcell.KeyUp, 0, "up"},
		{tcell.KeyLeft, 0, "left"},
		{tcell.KeyEscape, 0, "esc"},
		{tcell.KeyCtrlC, 0, "ctrl+c"},
		{tcell.KeyRune, 'q', "q"},
	}

	for _, tt := range tests {
		screen.InjectKey(tt.key, tt.r, tcell.ModNone)
		key, ok, err := terminal.PollKey(time.Second)
		if err != nil || !ok {
			t.Fatalf("Expected a key for %s, got ok=%v err=%v", tt.expected, ok, err)
		}
		if key.String() != tt.expected {
			t.Errorf("Expected key %q, got %q", tt.expected, key.String())
		}
	}
}

func TestTcellTerminalPollKeyTimesOut(t *testing.T) {
	terminal, _ := newSimulatedTerminal(t)

	_, ok, err := terminal.PollKey(10 * time.Millisecond)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if ok {
		t.Error("Expected no key before the timeout")
	}
}

func TestTcellTerminalClosed(t *testing.T) {
	terminal := NewTcellTerminalWithScreen(tcell.NewSimulationScreen("UTF-8"))

	if err := terminal.Flush(); !errors.Is(err, ErrClosed) {
		t.Errorf("Expected ErrClosed before Open, got %v", err)
	}
	if _, _, err := terminal.PollKey(time.Millisecond); !errors.Is(err, ErrClosed) {
		t.Errorf("Expected ErrClosed from PollKey, got %v", err)
	}

	terminal.Open()
	terminal.Close()
	if err := terminal.Close(); err != nil {
		t.Errorf("Expected second Close to be a no-op, got %v", err)
	}
	if err := terminal.MoveCursor(0, 0); !errors.Is(err, ErrClosed) {
		t.Errorf("Expected ErrClosed after Close, got %v", err)
	}
}

func TestKeyString(t *testing.T) {
	if got := (Key{Code: KeyRune, Rune: 'w'}).String(); got != "w" {
		t.Errorf("Expected %q, got %q", "w", got)
	}
	if got := (Key{Code: KeyOther}).String(); got != "unknown" {
		t.Errorf("Expected %q, got %q", "unknown", got)
	}
}
