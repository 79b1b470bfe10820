package game

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"snake-classic/game/entity"
	"snake-classic/game/manager"
	"snake-classic/game/types"
)

// Sounds receives gameplay cues. Implementations must not block.
type Sounds interface {
	PlayEat()
	PlayGameOver()
}

type silent struct{}

func (silent) PlayEat()      {}
func (silent) PlayGameOver() {}

// Options tunes a session. Zero values pick the defaults.
type Options struct {
	Grid   types.Grid
	Rand   entity.Intner
	Logger *zerolog.Logger
	Sounds Sounds
	Now    func() time.Time
}

// Game is one session: a snake, a pellet and a score. It is not safe for
// concurrent use; the loop driver calls it from a single goroutine.
type Game struct {
	UUID string

	snake        *entity.Snake
	food         *entity.Food
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
	sounds       Sounds
	log          zerolog.Logger
}

func NewGame(opts Options) *Game {
	if opts.Grid == (types.Grid{}) {
		opts.Grid = types.DefaultGrid
	}
	if opts.Sounds == nil {
		opts.Sounds = silent{}
	}
	if opts.Rand == nil {
		opts.Rand = NewRand(uint64(time.Now().UnixNano()))
	}

	base := zerolog.Nop()
	if opts.Logger != nil {
		base = *opts.Logger
	}

	id := uuid.New().String()
	log := base.With().Str("session", id).Logger()

	snake := entity.NewSnake(types.SnakeStart, types.SnakeStartDir, types.SnakeTint)
	food := entity.NewFood(types.FoodStart, types.FoodTint)

	g := &Game{
		UUID:         id,
		snake:        snake,
		food:         food,
		collisionMgr: manager.NewCollisionManager(opts.Grid),
		foodMgr:      manager.NewFoodManager(food, opts.Rand, log),
		stateMgr:     manager.NewStateManager(opts.Now),
		sounds:       opts.Sounds,
		log:          log,
	}
	log.Info().
		Int("snake_x", snake.Pos.X).Int("snake_y", snake.Pos.Y).
		Int("food_x", food.Pos.X).Int("food_y", food.Pos.Y).
		Msg("session started")
	return g
}

// Render clears the surface and draws the snake, then the food on top
func (g *Game) Render(surface types.Surface) {
	surface.Clear(types.BackgroundTint)
	g.snake.Render(surface)
	g.food.Render(surface)
}

// Update runs one tick. It returns false once the session has ended.
func (g *Game) Update() bool {
	if !g.stateMgr.Running() {
		return false
	}

	g.stateMgr.Tick()
	head := g.snake.GetHead()
	g.log.Debug().Int("x", head.X).Int("y", head.Y).Str("dir", g.snake.Direction.String()).Msg("tick")

	alive, ate := g.collisionMgr.HandleMovement(g.snake, g.food)
	if !alive {
		g.end(manager.HitWall)
		g.sounds.PlayGameOver()
		return false
	}

	if ate {
		g.foodMgr.Respawn(g.snake.GetHead())
		g.stateMgr.AddPoint()
		g.sounds.PlayEat()
	}
	return true
}

// HandleInput turns an arrow key into a new heading. Reversals and any other
// key are ignored.
func (g *Game) HandleInput(key types.Key) {
	if !g.stateMgr.Running() {
		return
	}
	dir, ok := key.Direction()
	if !ok {
		return
	}
	if !g.snake.SetDirection(dir) {
		g.log.Debug().Str("dir", dir.String()).Str("heading", g.snake.Committed.String()).Msg("reversal ignored")
	}
}

// Abort ends the session on user request (Escape, window close)
func (g *Game) Abort() {
	g.end(manager.Aborted)
}

func (g *Game) end(reason manager.EndReason) {
	if !g.stateMgr.End(reason) {
		return
	}
	g.log.Info().
		Int("score", g.stateMgr.GetScore()).
		Int("ticks", g.stateMgr.Ticks()).
		Int("food_spawns", g.foodMgr.Spawns()).
		Dur("elapsed", g.stateMgr.Elapsed()).
		Str("reason", reason.String()).
		Msg("final score")
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() *entity.Food {
	return g.food
}

func (g *Game) Score() int {
	return g.stateMgr.GetScore()
}

func (g *Game) State() manager.State {
	return g.stateMgr.State()
}

func (g *Game) EndReason() manager.EndReason {
	return g.stateMgr.Reason()
}

func (g *Game) Ticks() int {
	return g.stateMgr.Ticks()
}

func (g *Game) Grid() types.Grid {
	return g.collisionMgr.Grid()
}
