package game

import (
	"fmt"

	"github.com/Mshel/termsnake/internal/term"
)

var (
	bodyGlyph  = term.Glyph{Text: BodyRune}
	foodGlyph  = term.Glyph{Text: FoodRune, Fg: FoodColor}
	blankGlyph = term.Glyph{Text: " "}

	horizontalWall = term.Glyph{Text: "─"}
	verticalWall   = term.Glyph{Text: "│"}
	topLeft        = term.Glyph{Text: "┌"}
	topRight       = term.Glyph{Text: "┐"}
	bottomLeft     = term.Glyph{Text: "└"}
	bottomRight    = term.Glyph{Text: "┘"}
)

// Draw paints the frame that differs from the previous one. Only the cell
// the tail left and the old food cell are erased; the body, food and border
// are redrawn in full and flushed once.
func (g *Game) Draw(screen term.Screen, prevBody []Position, prevFood Position) error {
	if len(prevBody) > 0 {
		if err := putGlyph(screen, prevBody[len(prevBody)-1], blankGlyph); err != nil {
			return err
		}
	}

	for _, segment := range g.Snake.Body {
		if err := putGlyph(screen, segment, bodyGlyph); err != nil {
			return err
		}
	}

	// after a feeding tick the head sits on the old food cell
	if !g.Snake.Occupies(prevFood) {
		if err := putGlyph(screen, prevFood, blankGlyph); err != nil {
			return err
		}
	}

	if err := putGlyph(screen, g.Food, foodGlyph); err != nil {
		return err
	}

	if err := drawBorder(screen, g.Board); err != nil {
		return err
	}

	if err := screen.Flush(); err != nil {
		return fmt.Errorf("failed to flush frame: %w", err)
	}
	return nil
}

func drawBorder(screen term.Screen, board Board) error {
	for x := 1; x < board.Width; x++ {
		if err := putGlyph(screen, Position{X: x, Y: 0}, horizontalWall); err != nil {
			return err
		}
		if err := putGlyph(screen, Position{X: x, Y: board.Height}, horizontalWall); err != nil {
			return err
		}
	}
	for y := 1; y < board.Height; y++ {
		if err := putGlyph(screen, Position{X: 0, Y: y}, verticalWall); err != nil {
			return err
		}
		if err := putGlyph(screen, Position{X: board.Width, Y: y}, verticalWall); err != nil {
			return err
		}
	}

	corners := []struct {
		pos   Position
		glyph term.Glyph
	}{
		{Position{X: 0, Y: 0}, topLeft},
		{Position{X: board.Width, Y: 0}, topRight},
		{Position{X: 0, Y: board.Height}, bottomLeft},
		{Position{X: board.Width, Y: board.Height}, bottomRight},
	}
	for _, corner := range corners {
		if err := putGlyph(screen, corner.pos, corner.glyph); err != nil {
			return err
		}
	}
	return nil
}

func putGlyph(screen term.Screen, p Position, glyph term.Glyph) error {
	if err := screen.MoveCursor(p.X, p.Y); err != nil {
		return fmt.Errorf("failed to move cursor to %v: %w", p, err)
	}
	if err := screen.WriteGlyph(glyph); err != nil {
		return fmt.Errorf("failed to write %q at %v: %w", glyph.Text, p, err)
	}
	return nil
}
