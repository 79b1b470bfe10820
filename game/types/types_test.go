package types

import "testing"

func TestOppositeIsInvolution(t *testing.T) {
	pairs := map[Direction]Direction{Up: Down, Down: Up, Left: Right, Right: Left}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, want %v", d, got, want)
		}
		if got := d.Opposite().Opposite(); got != d {
			t.Errorf("%v.Opposite().Opposite() = %v", d, got)
		}
	}
}

func TestVectorIsUnitStep(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Point
	}{
		{Right, Point{X: 1, Y: 0}},
		{Left, Point{X: -1, Y: 0}},
		{Up, Point{X: 0, Y: -1}},
		{Down, Point{X: 0, Y: 1}},
	}
	for _, tt := range tests {
		if got := tt.dir.Vector(); got != tt.want {
			t.Errorf("%v.Vector() = %+v, want %+v", tt.dir, got, tt.want)
		}
		v := tt.dir.Vector()
		o := tt.dir.Opposite().Vector()
		if v.X+o.X != 0 || v.Y+o.Y != 0 {
			t.Errorf("%v and its opposite do not cancel", tt.dir)
		}
	}
}

func TestKeyDirection(t *testing.T) {
	tests := []struct {
		key    Key
		want   Direction
		wantOK bool
	}{
		{KeyUp, Up, true},
		{KeyDown, Down, true},
		{KeyLeft, Left, true},
		{KeyRight, Right, true},
		{KeyEscape, 0, false},
		{KeyOther, 0, false},
		{KeyNone, 0, false},
	}
	for _, tt := range tests {
		got, ok := tt.key.Direction()
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("Key(%d).Direction() = %v, %v; want %v, %v", tt.key, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestGridEdges(t *testing.T) {
	g := DefaultGrid
	if g.MaxX() != 34 || g.MaxY() != 34 {
		t.Fatalf("default grid max = (%d,%d), want (34,34)", g.MaxX(), g.MaxY())
	}
	edge := []Point{{0, 5}, {5, 0}, {34, 5}, {5, 34}, {0, 0}, {34, 34}}
	for _, p := range edge {
		if !g.OnEdge(p) {
			t.Errorf("OnEdge(%+v) = false, want true", p)
		}
	}
	inner := []Point{{1, 1}, {2, 2}, {33, 33}, {17, 4}}
	for _, p := range inner {
		if g.OnEdge(p) {
			t.Errorf("OnEdge(%+v) = true, want false", p)
		}
	}
	if FoodMin <= 0 || FoodMax >= g.MaxX() || FoodMax >= g.MaxY() {
		t.Error("food range must lie inside the edge ring")
	}
}
