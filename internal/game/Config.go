package game

import (
	"fmt"
	"time"
)

const (
	DefaultBoardWidth   = 40
	DefaultBoardHeight  = 20
	DefaultTickInterval = 75 * time.Millisecond
	DefaultPollTimeout  = 50 * time.Millisecond

	// the starting snake needs three interior cells left of the centre
	minBoardSize = 6
	// random samples tried before SpawnFood falls back to the free-cell list
	maxFoodSamples = 64
)

const (
	BodyRune = "■"
	FoodRune = "●"
	// ANSI-256 red
	FoodColor = "9"
)

type Config struct {
	Width        int
	Height       int
	TickInterval time.Duration
	PollTimeout  time.Duration
	// Seed for food placement. Zero seeds from the clock.
	Seed int64
}

func DefaultConfig() Config {
	return Config{
		Width:        DefaultBoardWidth,
		Height:       DefaultBoardHeight,
		TickInterval: DefaultTickInterval,
		PollTimeout:  DefaultPollTimeout,
	}
}

func (c Config) Validate() error {
	if c.Width < minBoardSize || c.Height < minBoardSize {
		return fmt.Errorf("board %dx%d is smaller than %dx%d", c.Width, c.Height, minBoardSize, minBoardSize)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %v", c.TickInterval)
	}
	if c.PollTimeout <= 0 {
		return fmt.Errorf("poll timeout must be positive, got %v", c.PollTimeout)
	}
	return nil
}
