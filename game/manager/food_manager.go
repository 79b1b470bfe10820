package manager

import (
	"github.com/rs/zerolog"

	"snake-classic/game/entity"
	"snake-classic/game/types"
)

type FoodManager struct {
	rng    entity.Intner
	food   *entity.Food
	spawns int
	log    zerolog.Logger
}

func NewFoodManager(food *entity.Food, rng entity.Intner, log zerolog.Logger) *FoodManager {
	return &FoodManager{
		rng:  rng,
		food: food,
		log:  log,
	}
}

// Respawn moves the pellet to a fresh cell away from the snake head
func (fm *FoodManager) Respawn(snakeHead types.Point) types.Point {
	p := fm.food.Relocate(fm.rng, snakeHead)
	fm.spawns++
	fm.log.Info().Int("x", p.X).Int("y", p.Y).Msg("food relocated")
	return p
}

// Spawns counts relocations since the session started
func (fm *FoodManager) Spawns() int {
	return fm.spawns
}
