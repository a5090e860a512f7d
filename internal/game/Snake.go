package game

import "slices"

// Snake is an ordered body, head first, and the direction the head moves.
type Snake struct {
	Body      []Position
	Direction Direction
}

// NewSnake lays out three segments in a row ending at (x, y), heading right.
func NewSnake(x, y int) *Snake {
	return &Snake{
		Body:      []Position{{X: x, Y: y}, {X: x - 1, Y: y}, {X: x - 2, Y: y}},
		Direction: Right,
	}
}

func (s *Snake) Head() Position {
	return s.Body[0]
}

func (s *Snake) Tail() Position {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// MoveForward shifts the whole body one cell in the current direction.
// Positions outside the board are left for collision checking.
func (s *Snake) MoveForward() {
	newHead := s.Head().Add(s.Direction)
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = newHead
}

// ChangeDirection turns the snake unless newDir would reverse it onto its
// own neck. It reports whether the direction was accepted.
func (s *Snake) ChangeDirection(newDir Direction) bool {
	if newDir.IsOpposite(s.Direction) {
		return false
	}
	s.Direction = newDir
	return true
}

// Grow appends a copy of the tail; the copy separates from the tail on the
// next move.
func (s *Snake) Grow() {
	s.Body = append(s.Body, s.Tail())
}

func (s *Snake) Occupies(p Position) bool {
	return slices.Contains(s.Body, p)
}

func (s *Snake) BodyCopy() []Position {
	return slices.Clone(s.Body)
}
