package ui

import (
	"errors"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"snake-classic/game/manager"
	"snake-classic/game/types"
)

const title = "Snake Game"

// Session is the part of game.Game the window loop drives
type Session interface {
	Render(surface types.Surface)
	Update() bool
	HandleInput(key types.Key)
	Abort()
}

// Surface draws through raylib. It is only valid between BeginDrawing and EndDrawing.
type Surface struct{}

func (Surface) Clear(c types.Color) {
	rl.ClearBackground(toColor(c))
}

func (Surface) FillRect(x, y, w, h int, c types.Color) {
	rl.DrawRectangle(int32(x), int32(y), int32(w), int32(h), toColor(c))
}

func toColor(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Renderer owns the raylib window and pumps render, update and input events
// into a Session.
type Renderer struct {
	ticks *manager.TickManager
	log   zerolog.Logger
}

func NewRenderer(log zerolog.Logger) *Renderer {
	return &Renderer{
		ticks: manager.NewTickManager(types.TicksPerSecond),
		log:   log,
	}
}

// Run opens a fixed 700x700 window and blocks until the session ends, the
// window is closed or Escape is pressed.
func (r *Renderer) Run(s Session) error {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(types.WindowWidth, types.WindowHeight, title)
	if !rl.IsWindowReady() {
		return errors.New("raylib window could not be created")
	}
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyEscape)
	rl.SetTargetFPS(60)
	r.log.Debug().Int("width", types.WindowWidth).Int("height", types.WindowHeight).Msg("window open")

	r.ticks.Reset()
	var surface Surface
	for !rl.WindowShouldClose() {
		for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
			s.HandleInput(translateKey(key))
		}

		frame := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
		for n := r.ticks.Advance(frame); n > 0; n-- {
			if !s.Update() {
				return nil
			}
		}

		rl.BeginDrawing()
		s.Render(surface)
		rl.EndDrawing()
	}

	s.Abort()
	return nil
}

func translateKey(key int32) types.Key {
	switch key {
	case rl.KeyUp:
		return types.KeyUp
	case rl.KeyDown:
		return types.KeyDown
	case rl.KeyLeft:
		return types.KeyLeft
	case rl.KeyRight:
		return types.KeyRight
	case rl.KeyEscape:
		return types.KeyEscape
	default:
		return types.KeyOther
	}
}
