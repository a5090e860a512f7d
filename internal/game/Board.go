package game

import "fmt"

type Position struct {
	X, Y int
}

func (p Position) Add(d Direction) Position {
	return Position{X: p.X + d.Dx, Y: p.Y + d.Dy}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func ManhattanDistance(p1, p2 Position) int {
	return abs(p1.X-p2.X) + abs(p1.Y-p2.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Board is the playing field. Columns 0 and Width and rows 0 and Height form
// the border ring; everything strictly inside is playable.
type Board struct {
	Width  int
	Height int
}

func (b Board) IsWall(p Position) bool {
	if p.X <= 0 || p.Y <= 0 {
		return true
	}

	if p.X >= b.Width || p.Y >= b.Height {
		return true
	}

	return false
}

func (b Board) InteriorCellCount() int {
	return max(0, b.Width-1) * max(0, b.Height-1)
}

// FreeCells lists the interior cells for which occupied reports false, row
// by row.
func (b Board) FreeCells(occupied func(Position) bool) []Position {
	free := make([]Position, 0, b.InteriorCellCount())
	for y := 1; y < b.Height; y++ {
		for x := 1; x < b.Width; x++ {
			cell := Position{X: x, Y: y}
			if !occupied(cell) {
				free = append(free, cell)
			}
		}
	}
	return free
}
