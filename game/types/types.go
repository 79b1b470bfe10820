package types

// Point is a cell address on the grid, independent of drawing scale
type Point struct {
	X, Y int
}

// Add returns p moved by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// MaxX is the largest valid column
func (g Grid) MaxX() int {
	return g.Width - 1
}

// MaxY is the largest valid row
func (g Grid) MaxY() int {
	return g.Height - 1
}

// OnEdge reports whether p lies on the outermost ring of cells
func (g Grid) OnEdge(p Point) bool {
	return p.X == 0 || p.Y == 0 || p.X == g.MaxX() || p.Y == g.MaxY()
}

type Color struct {
	R, G, B, A uint8
}

var (
	White = Color{R: 255, G: 255, B: 255, A: 255}
	Black = Color{R: 0, G: 0, B: 0, A: 255}
	Blue  = Color{R: 0, G: 0, B: 255, A: 255}
)

// Surface is what the entities draw on. Coordinates are drawing units, not cells.
type Surface interface {
	Clear(c Color)
	FillRect(x, y, w, h int, c Color)
}

// Game constants
const (
	WindowWidth  = 700
	WindowHeight = 700
	CellSize     = 20

	GridWidth  = WindowWidth / CellSize  // 35
	GridHeight = WindowHeight / CellSize // 35

	FoodMin = 1
	FoodMax = 29

	TicksPerSecond = 8
)

// Initial session layout
var (
	SnakeStart     = Point{X: 2, Y: 2}
	SnakeStartDir  = Right
	FoodStart      = Point{X: 4, Y: 10}
	DefaultGrid    = Grid{Width: GridWidth, Height: GridHeight}
	BackgroundTint = White
	SnakeTint      = Black
	FoodTint       = Blue
)
