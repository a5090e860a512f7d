package ui

import (
	"time"

	"github.com/Mshel/termsnake/internal/game"
	"github.com/Mshel/termsnake/internal/term"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// frameMsg ends one poll window. It carries the time the frame fired.
type frameMsg time.Time

// GameModel runs one game inside a bubbletea program. Key messages are
// applied as they arrive; every frame ticks the game when the tick interval
// has passed and redraws the board canvas.
type GameModel struct {
	game   *game.Game
	canvas *term.Canvas
	keys   game.KeyMap
	help   help.Model
	pilot  game.Pilot
	onTick func(game.TickOutcome)

	tickInterval  time.Duration
	frameInterval time.Duration
	lastTick      time.Time
	prevBody      []game.Position
	prevFood      game.Position

	ScreenWidth  int
	ScreenHeight int
	err          error
}

func NewGameModel(g *game.Game, cfg game.Config) GameModel {
	return GameModel{
		game:          g,
		canvas:        term.NewCanvas(g.Board.Width+1, g.Board.Height+1),
		keys:          game.DefaultKeyMap(),
		help:          help.New(),
		tickInterval:  cfg.TickInterval,
		frameInterval: cfg.PollTimeout,
		lastTick:      time.Now(),
		prevBody:      g.Snake.BodyCopy(),
		prevFood:      g.Food,
	}
}

// WithPilot lets pilot steer before every tick.
func (m GameModel) WithPilot(pilot game.Pilot) GameModel {
	m.pilot = pilot
	return m
}

// WithTickHook calls hook with the outcome of every tick.
func (m GameModel) WithTickHook(hook func(game.TickOutcome)) GameModel {
	m.onTick = hook
	return m
}

func (m GameModel) Game() *game.Game {
	return m.game
}

// Err is the terminal error that ended the program, if any.
func (m GameModel) Err() error {
	return m.err
}

func (m GameModel) Init() tea.Cmd {
	return m.nextFrame()
}

func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		return m, nil

	case tea.KeyMsg:
		if !m.keys.Apply(m.game, msg) {
			log.Debug("Ignoring key", "key", msg.String())
		}
		return m, nil

	case frameMsg:
		now := time.Time(msg)
		if now.Sub(m.lastTick) >= m.tickInterval {
			outcome := game.Advance(m.game, m.pilot)
			m.lastTick = now
			if m.onTick != nil {
				m.onTick(outcome)
			}
		}

		if err := m.game.Draw(m.canvas, m.prevBody, m.prevFood); err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.prevBody = m.game.Snake.BodyCopy()
		m.prevFood = m.game.Food

		if m.game.GameOver {
			log.Info("Current game over.", "score", m.game.Score, "length", m.game.Snake.Len())
			return m, tea.Quit
		}
		return m, m.nextFrame()
	}

	return m, nil
}

func (m GameModel) View() string {
	if m.canvas.Flushes() == 0 {
		return "Game Loading..."
	}

	view := lipgloss.JoinHorizontal(lipgloss.Top,
		boardStyle.Render(m.canvas.Render()),
		m.renderStatusPanel(),
	)

	if m.ScreenWidth == 0 || m.ScreenHeight == 0 {
		return view
	}
	return lipgloss.Place(m.ScreenWidth, m.ScreenHeight, lipgloss.Center, lipgloss.Center, view)
}

func (m GameModel) nextFrame() tea.Cmd {
	return tea.Tick(m.frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
