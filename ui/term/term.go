// Package term runs a session in a terminal through tcell. Each grid cell is
// drawn two columns wide so the board stays roughly square.
package term

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"snake-classic/game/types"
)

const colsPerCell = 2

// Session is the part of game.Game the terminal loop drives
type Session interface {
	Render(surface types.Surface)
	Update() bool
	HandleInput(key types.Key)
	Abort()
}

// Surface maps drawing units back onto terminal cells
type Surface struct {
	screen tcell.Screen
}

func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{screen: screen}
}

func (s *Surface) Clear(c types.Color) {
	s.screen.Fill(' ', tcell.StyleDefault.Background(toColor(c)))
}

func (s *Surface) FillRect(x, y, w, h int, c types.Color) {
	style := tcell.StyleDefault.Background(toColor(c))
	col0 := x / types.CellSize * colsPerCell
	row0 := y / types.CellSize
	cols := (w + types.CellSize - 1) / types.CellSize * colsPerCell
	rows := (h + types.CellSize - 1) / types.CellSize
	for row := row0; row < row0+rows; row++ {
		for col := col0; col < col0+cols; col++ {
			s.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

func toColor(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Driver pumps terminal events and a fixed-rate ticker into a Session
type Driver struct {
	screen   tcell.Screen
	surface  *Surface
	interval time.Duration
	log      zerolog.Logger
}

// NewScreen opens the real terminal
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return screen, nil
}

func NewDriver(screen tcell.Screen, ticksPerSecond int, log zerolog.Logger) *Driver {
	if ticksPerSecond <= 0 {
		ticksPerSecond = types.TicksPerSecond
	}
	return &Driver{
		screen:   screen,
		surface:  NewSurface(screen),
		interval: time.Second / time.Duration(ticksPerSecond),
		log:      log,
	}
}

// Run blocks until the session ends or the player quits with Escape or Ctrl-C.
// The screen is left open; the caller calls Fini.
func (d *Driver) Run(s Session) error {
	w, h := d.screen.Size()
	if w < types.GridWidth*colsPerCell || h < types.GridHeight {
		d.log.Warn().Int("cols", w).Int("rows", h).Msg("terminal smaller than the board, edges are clipped")
	}

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.draw(s)
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				key := translateKey(ev)
				if key == types.KeyEscape {
					s.Abort()
					return nil
				}
				s.HandleInput(key)
			case *tcell.EventResize:
				d.screen.Sync()
				d.draw(s)
			}

		case <-ticker.C:
			if !s.Update() {
				d.draw(s)
				return nil
			}
			d.draw(s)
		}
	}
}

func (d *Driver) draw(s Session) {
	s.Render(d.surface)
	d.screen.Show()
}

func translateKey(ev *tcell.EventKey) types.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return types.KeyUp
	case tcell.KeyDown:
		return types.KeyDown
	case tcell.KeyLeft:
		return types.KeyLeft
	case tcell.KeyRight:
		return types.KeyRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return types.KeyEscape
	default:
		return types.KeyOther
	}
}
