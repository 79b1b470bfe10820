package entity

import (
	"snake-classic/game/types"
)

// Snake is a single-cell snake: a position and a heading
type Snake struct {
	Pos       types.Point
	Direction types.Direction
	// Committed is the heading used by the last completed move. Reversal checks
	// compare against it, so two quick presses within one tick cannot turn the
	// snake back onto itself.
	Committed types.Direction
	Color     types.Color
}

func NewSnake(startPos types.Point, dir types.Direction, color types.Color) *Snake {
	return &Snake{
		Pos:       startPos,
		Direction: dir,
		Committed: dir,
		Color:     color,
	}
}

// Advance moves the snake one cell along its heading. The boundary is checked
// against the current position before moving: a snake already on the edge of
// the grid does not move and Advance returns false.
func (s *Snake) Advance(grid types.Grid) bool {
	if grid.OnEdge(s.Pos) {
		return false
	}
	s.Pos = s.Pos.Add(s.Direction.Vector())
	s.Committed = s.Direction
	return true
}

// SetDirection turns the snake unless dir would reverse the committed heading.
// It reports whether the heading was accepted.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if dir == s.Committed.Opposite() {
		return false
	}
	s.Direction = dir
	return true
}

func (s *Snake) GetHead() types.Point {
	return s.Pos
}

func (s *Snake) Render(surface types.Surface) {
	surface.FillRect(s.Pos.X*types.CellSize, s.Pos.Y*types.CellSize, types.CellSize, types.CellSize, s.Color)
}
