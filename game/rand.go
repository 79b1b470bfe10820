package game

import (
	"golang.org/x/exp/rand"

	"snake-classic/game/entity"
)

// NewRand returns a seeded PCG source for food placement. Sessions built with
// the same seed place food identically.
func NewRand(seed uint64) entity.Intner {
	return rand.New(rand.NewSource(seed))
}
