package term

import (
	"errors"
	"time"
)

// ErrClosed is returned by a terminal that is used outside of an open session.
var ErrClosed = errors.New("terminal session is closed")

type KeyCode int

const (
	KeyOther KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEsc
	KeyEnter
	KeyCtrlC
	KeyRune
)

// Key is a single key press. Rune is only set for KeyRune.
type Key struct {
	Code KeyCode
	Rune rune
}

// String names the key the way bubbletea names its key messages, so one set
// of key bindings serves every backend.
func (k Key) String() string {
	switch k.Code {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyEsc:
		return "esc"
	case KeyEnter:
		return "enter"
	case KeyCtrlC:
		return "ctrl+c"
	case KeyRune:
		return string(k.Rune)
	default:
		return "unknown"
	}
}

// Glyph is the text written into one screen position. Fg is an ANSI-256
// colour code, empty for the terminal default.
type Glyph struct {
	Text string
	Fg   string
}

// Screen is the cursor addressed output side of a terminal.
type Screen interface {
	MoveCursor(x, y int) error
	WriteGlyph(glyph Glyph) error
	Flush() error
}

// Keyboard is the input side of a terminal. PollKey waits at most timeout
// and reports false when no key arrived.
type Keyboard interface {
	PollKey(timeout time.Duration) (Key, bool, error)
}

// Session brackets raw input, the alternate screen and the hidden cursor.
// Every successful Open must be paired with Close.
type Session interface {
	Open() error
	Close() error
}

type Terminal interface {
	Session
	Screen
	Keyboard
}
