package game

import (
	"context"
	"fmt"
	"time"

	"github.com/Mshel/termsnake/internal/term"
	"github.com/charmbracelet/log"
)

// Pilot steers the snake in place of the keyboard.
type Pilot interface {
	Steer(g *Game) (Direction, error)
}

// Advance runs one tick, letting the pilot turn the snake first. Pilot
// failures are logged and the snake keeps its direction.
func Advance(g *Game, pilot Pilot) TickOutcome {
	if pilot != nil && !g.GameOver {
		dir, err := pilot.Steer(g)
		if err != nil {
			log.Warn("Autopilot failed, keeping direction", "error", err)
		} else {
			g.Snake.ChangeDirection(dir)
		}
	}

	outcome := g.Update()
	if outcome.Fed {
		log.Debug("Food eaten", "score", g.Score, "length", g.Snake.Len(), "next_food", g.Food)
	}
	if outcome.Collided {
		log.Debug("Snake crashed", "head", g.Snake.Head())
	}
	return outcome
}

// Loop is the single-threaded driver: poll input, tick when the interval
// has elapsed, draw. Run owns the game until it ends.
type Loop struct {
	Game     *Game
	Screen   term.Screen
	Keyboard term.Keyboard
	KeyMap   KeyMap
	Pilot    Pilot
	// OnTick, when set, sees every tick's outcome.
	OnTick func(TickOutcome)

	TickInterval time.Duration
	PollTimeout  time.Duration
	Now          func() time.Time
}

func NewLoop(g *Game, screen term.Screen, keyboard term.Keyboard, cfg Config) *Loop {
	return &Loop{
		Game:         g,
		Screen:       screen,
		Keyboard:     keyboard,
		KeyMap:       DefaultKeyMap(),
		TickInterval: cfg.TickInterval,
		PollTimeout:  cfg.PollTimeout,
		Now:          time.Now,
	}
}

// Run loops until the game is over. The iteration that ends the game still
// ticks and draws. Terminal errors abort the loop immediately.
func (l *Loop) Run(ctx context.Context) error {
	g := l.Game
	prevBody := g.Snake.BodyCopy()
	prevFood := g.Food
	lastTick := l.Now()

	log.Info("Game loop started.", "board", fmt.Sprintf("%dx%d", g.Board.Width, g.Board.Height), "tick", l.TickInterval)

	for !g.GameOver {
		if err := ctx.Err(); err != nil {
			return err
		}

		pressed, ok, err := l.Keyboard.PollKey(l.PollTimeout)
		if err != nil {
			return fmt.Errorf("failed to poll keyboard: %w", err)
		}
		if ok && !l.KeyMap.Apply(g, pressed) {
			log.Debug("Ignoring key", "key", pressed.String())
		}

		if now := l.Now(); now.Sub(lastTick) >= l.TickInterval {
			outcome := Advance(g, l.Pilot)
			lastTick = now
			if l.OnTick != nil {
				l.OnTick(outcome)
			}
		}

		if err := g.Draw(l.Screen, prevBody, prevFood); err != nil {
			return fmt.Errorf("failed to draw frame: %w", err)
		}
		prevBody = g.Snake.BodyCopy()
		prevFood = g.Food
	}

	log.Info("Game loop stopped.", "score", g.Score, "length", g.Snake.Len())
	return nil
}
