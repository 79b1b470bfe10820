package manager

import (
	"snake-classic/game/entity"
	"snake-classic/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Grid returns the playfield the manager checks against
func (cm *CollisionManager) Grid() types.Grid {
	return cm.grid
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}

// HandleMovement advances the snake and reports whether it survived the
// move and whether it landed on the food.
func (cm *CollisionManager) HandleMovement(snake *entity.Snake, food *entity.Food) (alive, ate bool) {
	if !snake.Advance(cm.grid) {
		return false, false
	}
	return true, cm.IsFoodCollision(snake.GetHead(), food.Pos)
}
