package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/Mshel/termsnake/internal/game"
	"github.com/Mshel/termsnake/internal/sound"
	"github.com/Mshel/termsnake/internal/term"
	"github.com/Mshel/termsnake/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

const (
	frontendTea   = "tea"
	frontendTcell = "tcell"
)

type settings struct {
	frontend  string
	seed      int64
	autopilot string
	sound     bool
	logFile   string
	logLevel  string
}

func loadSettings() (settings, error) {
	s := settings{
		frontend:  os.Getenv("SNAKE_FRONTEND"),
		autopilot: os.Getenv("SNAKE_AUTOPILOT"),
		sound:     os.Getenv("SNAKE_SOUND") == "1",
		logFile:   os.Getenv("SNAKE_LOG_FILE"),
		logLevel:  os.Getenv("SNAKE_LOG_LEVEL"),
	}
	if s.frontend == "" {
		s.frontend = frontendTea
	}
	if s.frontend != frontendTea && s.frontend != frontendTcell {
		return s, fmt.Errorf("unknown SNAKE_FRONTEND %q", s.frontend)
	}
	if s.logLevel == "" {
		s.logLevel = "info"
	}
	if seed := os.Getenv("SNAKE_SEED"); seed != "" {
		parsed, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return s, fmt.Errorf("invalid SNAKE_SEED: %w", err)
		}
		s.seed = parsed
	}
	return s, nil
}

// setupLogging keeps log output off the game screen: it goes to the log file
// when one is configured and nowhere otherwise.
func setupLogging(s settings) (func(), error) {
	level, err := log.ParseLevel(s.logLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid SNAKE_LOG_LEVEL: %w", err)
	}
	log.SetLevel(level)

	if s.logFile == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile(s.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	log.SetReportTimestamp(true)
	return func() { f.Close() }, nil
}

func main() {
	s, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error %v\n", err)
		os.Exit(1)
	}

	closeLog, err := setupLogging(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error %v\n", err)
		os.Exit(1)
	}

	score, err := run(s)
	if err != nil {
		log.Error("Session aborted", "error", err)
		closeLog()
		fmt.Fprintf(os.Stderr, "error %v\n", err)
		os.Exit(1)
	}
	closeLog()

	fmt.Printf("Game Over! Score: %d\n", score)
}

func run(s settings) (int, error) {
	cfg := game.DefaultConfig()
	cfg.Seed = s.seed

	g, err := game.NewGame(cfg)
	if err != nil {
		return 0, err
	}

	var pilot game.Pilot
	if s.autopilot != "" {
		autopilot, err := game.LoadAutopilot(s.autopilot)
		if err != nil {
			return 0, err
		}
		defer autopilot.Close()
		pilot = autopilot
		log.Info("Autopilot engaged", "strategy", autopilot.Name())
	}

	onTick := func(game.TickOutcome) {}
	if s.sound {
		chime, err := sound.NewChime()
		if err != nil {
			log.Warn("Sound disabled", "error", err)
		} else {
			defer chime.Close()
			onTick = func(outcome game.TickOutcome) {
				if outcome.Fed {
					chime.Play()
				}
			}
		}
	}

	log.Info("Starting game", "frontend", s.frontend, "seed", s.seed)
	if s.frontend == frontendTcell {
		err = runTcell(g, cfg, pilot, onTick)
	} else {
		err = runTea(g, cfg, pilot, onTick)
	}
	if err != nil {
		return g.Score, err
	}

	log.Info("Game finished", "score", g.Score)
	return g.Score, nil
}

func runTcell(g *game.Game, cfg game.Config, pilot game.Pilot, onTick func(game.TickOutcome)) error {
	terminal, err := term.NewTcellTerminal()
	if err != nil {
		return err
	}
	if err := terminal.Open(); err != nil {
		return err
	}
	defer terminal.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := game.NewLoop(g, terminal, terminal, cfg)
	loop.Pilot = pilot
	loop.OnTick = onTick

	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func runTea(g *game.Game, cfg game.Config, pilot game.Pilot, onTick func(game.TickOutcome)) error {
	model := ui.NewGameModel(g, cfg).WithTickHook(onTick)
	if pilot != nil {
		model = model.WithPilot(pilot)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("program failed: %w", err)
	}
	if m, ok := final.(ui.GameModel); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
