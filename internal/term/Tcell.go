package term

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// TcellTerminal drives a real terminal through tcell. Init puts the terminal
// into raw mode on the alternate screen; Fini undoes all of it.
type TcellTerminal struct {
	screen  tcell.Screen
	events  chan tcell.Event
	quit    chan struct{}
	cursorX int
	cursorY int
	open    bool
}

func NewTcellTerminal() (*TcellTerminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal screen: %w", err)
	}
	return NewTcellTerminalWithScreen(screen), nil
}

// NewTcellTerminalWithScreen wraps an existing screen, e.g. a
// tcell.SimulationScreen.
func NewTcellTerminalWithScreen(screen tcell.Screen) *TcellTerminal {
	return &TcellTerminal{screen: screen}
}

func (t *TcellTerminal) Open() error {
	if t.open {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("failed to init terminal: %w", err)
	}
	t.screen.HideCursor()
	t.screen.Clear()

	t.events = make(chan tcell.Event, 32)
	t.quit = make(chan struct{})
	t.open = true
	go t.pumpEvents(t.events, t.quit)
	return nil
}

func (t *TcellTerminal) pumpEvents(events chan<- tcell.Event, quit <-chan struct{}) {
	for {
		event := t.screen.PollEvent()
		if event == nil {
			return
		}
		select {
		case events <- event:
		case <-quit:
			return
		}
	}
}

// Close restores the terminal. It is safe to call more than once.
func (t *TcellTerminal) Close() error {
	if !t.open {
		return nil
	}
	t.open = false
	close(t.quit)
	t.screen.Fini()
	return nil
}

func (t *TcellTerminal) MoveCursor(x, y int) error {
	if !t.open {
		return ErrClosed
	}
	t.cursorX, t.cursorY = x, y
	return nil
}

func (t *TcellTerminal) WriteGlyph(glyph Glyph) error {
	if !t.open {
		return ErrClosed
	}
	style := tcell.StyleDefault
	if glyph.Fg != "" {
		colorIndex, err := strconv.Atoi(glyph.Fg)
		if err != nil {
			return fmt.Errorf("invalid glyph color %q: %w", glyph.Fg, err)
		}
		style = style.Foreground(tcell.PaletteColor(colorIndex))
	}
	for _, r := range glyph.Text {
		t.screen.SetContent(t.cursorX, t.cursorY, r, nil, style)
		t.cursorX += max(1, runewidth.RuneWidth(r))
	}
	return nil
}

func (t *TcellTerminal) Flush() error {
	if !t.open {
		return ErrClosed
	}
	t.screen.Show()
	return nil
}

// PollKey waits up to timeout for a key press. Resize events are handled
// in place and do not end the wait.
func (t *TcellTerminal) PollKey(timeout time.Duration) (Key, bool, error) {
	if !t.open {
		return Key{}, false, ErrClosed
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case event := <-t.events:
			switch ev := event.(type) {
			case *tcell.EventKey:
				return keyFromEvent(ev), true, nil
			case *tcell.EventResize:
				t.screen.Sync()
			}
		case <-timer.C:
			return Key{}, false, nil
		}
	}
}

func keyFromEvent(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return Key{Code: KeyUp}
	case tcell.KeyDown:
		return Key{Code: KeyDown}
	case tcell.KeyLeft:
		return Key{Code: KeyLeft}
	case tcell.KeyRight:
		return Key{Code: KeyRight}
	case tcell.KeyEscape:
		return Key{Code: KeyEsc}
	case tcell.KeyEnter:
		return Key{Code: KeyEnter}
	case tcell.KeyCtrlC:
		return Key{Code: KeyCtrlC}
	case tcell.KeyRune:
		return Key{Code: KeyRune, Rune: ev.Rune()}
	default:
		return Key{Code: KeyOther}
	}
}
