package gfx

import "github.com/kjkrol/rectdemo/internal/platform"

// Rect is an axis-aligned rectangle in window coordinates.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether the point lies within the closed bounds of r.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

func (r Rect) convert() platform.Rect {
	return platform.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}
