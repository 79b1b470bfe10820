package entity

import (
	"snake-classic/game/types"
)

// Intner is the slice of a random source that food placement needs.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Intner interface {
	Intn(n int) int
}

type Food struct {
	Pos   types.Point
	Color types.Color
}

func NewFood(pos types.Point, color types.Color) *Food {
	return &Food{Pos: pos, Color: color}
}

// Relocate draws a new position with both axes uniform in [FoodMin, FoodMax].
// Draws landing on avoid are repeated so the pellet never respawns under the snake.
func (f *Food) Relocate(rng Intner, avoid types.Point) types.Point {
	span := types.FoodMax - types.FoodMin + 1
	for {
		p := types.Point{
			X: types.FoodMin + rng.Intn(span),
			Y: types.FoodMin + rng.Intn(span),
		}
		if p != avoid {
			f.Pos = p
			return p
		}
	}
}

func (f *Food) Render(surface types.Surface) {
	surface.FillRect(f.Pos.X*types.CellSize, f.Pos.Y*types.CellSize, types.CellSize, types.CellSize, f.Color)
}
