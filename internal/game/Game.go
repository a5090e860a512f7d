package game

import (
	"fmt"
	"math/rand"
	"time"
)

// TickOutcome reports what happened during one Update.
type TickOutcome struct {
	Fed      bool
	Collided bool
}

type Game struct {
	Snake    *Snake
	Food     Position
	Score    int
	GameOver bool
	Board    Board

	rng *rand.Rand
}

// NewGame places the snake in the middle of the board and spawns the first
// food.
func NewGame(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		Snake: NewSnake(cfg.Width/2, cfg.Height/2),
		Board: Board{Width: cfg.Width, Height: cfg.Height},
		rng:   rand.New(rand.NewSource(seed)),
	}
	g.SpawnFood()

	return g, nil
}

// Update advances the game by one tick: move, then feed, then check for
// collisions. Collision is checked last, so a move that both feeds and
// collides still ends the game.
func (g *Game) Update() TickOutcome {
	var outcome TickOutcome
	if g.GameOver {
		return outcome
	}

	g.Snake.MoveForward()

	if g.Snake.Head() == g.Food {
		g.Score++
		g.Snake.Grow()
		outcome.Fed = true
		if !g.SpawnFood() {
			g.GameOver = true
		}
	}

	if g.CheckCollision() {
		g.GameOver = true
		outcome.Collided = true
	}

	return outcome
}

// CheckCollision reports whether the head is on the border ring or on
// another body segment.
func (g *Game) CheckCollision() bool {
	head := g.Snake.Head()

	if g.Board.IsWall(head) {
		return true
	}

	for _, segment := range g.Snake.Body[1:] {
		if segment == head {
			return true
		}
	}
	return false
}

// SpawnFood moves the food to a uniformly random interior cell the snake
// does not occupy. It samples a bounded number of times and then picks from
// the list of free cells. It returns false, leaving the food in place, when
// no cell is free.
func (g *Game) SpawnFood() bool {
	for sample := 0; sample < maxFoodSamples; sample++ {
		candidate := Position{
			X: 1 + g.rng.Intn(g.Board.Width-1),
			Y: 1 + g.rng.Intn(g.Board.Height-1),
		}
		if !g.Snake.Occupies(candidate) {
			g.Food = candidate
			return true
		}
	}

	free := g.Board.FreeCells(g.Snake.Occupies)
	if len(free) == 0 {
		return false
	}
	g.Food = free[g.rng.Intn(len(free))]
	return true
}

// Quit ends the game as if the snake had crashed.
func (g *Game) Quit() {
	g.GameOver = true
}
