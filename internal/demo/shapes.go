package demo

import (
	"image/color"

	"github.com/kjkrol/rectdemo/pkg/gfx"
)

var (
	selectedFill = color.RGBA{255, 255, 255, 128}
	outlineColor = color.RGBA{0, 0, 0, 255}
	gridColor    = color.RGBA{64, 64, 64, 255}
)

type ColoredRect struct {
	Rect     gfx.Rect
	Color    color.RGBA
	Selected bool
}

// Shapes is a fixed, ordered set of rectangles. Only the Selected flags change.
type Shapes struct {
	items []ColoredRect
}

// DefaultShapes returns a fresh copy of the five demo rectangles, none selected.
func DefaultShapes() *Shapes {
	return &Shapes{items: []ColoredRect{
		{Rect: gfx.Rect{X: 100, Y: 100, W: 50, H: 50}, Color: color.RGBA{255, 0, 0, 255}},
		{Rect: gfx.Rect{X: 150, Y: 150, W: 75, H: 75}, Color: color.RGBA{0, 255, 0, 255}},
		{Rect: gfx.Rect{X: 300, Y: 100, W: 120, H: 80}, Color: color.RGBA{0, 0, 255, 255}},
		{Rect: gfx.Rect{X: 350, Y: 150, W: 100, H: 100}, Color: color.RGBA{255, 255, 0, 255}},
		{Rect: gfx.Rect{X: 500, Y: 300, W: 150, H: 100}, Color: color.RGBA{255, 0, 255, 255}},
	}}
}

func (s *Shapes) Len() int {
	return len(s.items)
}

func (s *Shapes) At(i int) ColoredRect {
	return s.items[i]
}

// ToggleAt flips Selected on every rectangle containing the point, overlapping
// ones included, and returns how many were toggled.
func (s *Shapes) ToggleAt(x, y float32) int {
	toggled := 0
	for i := range s.items {
		if s.items[i].Rect.Contains(x, y) {
			s.items[i].Selected = !s.items[i].Selected
			toggled++
		}
	}
	return toggled
}

// IndexesAt returns the indexes of the rectangles containing the point.
func (s *Shapes) IndexesAt(x, y float32) []int {
	var out []int
	for i := range s.items {
		if s.items[i].Rect.Contains(x, y) {
			out = append(out, i)
		}
	}
	return out
}

// Draw fills each rectangle, white-washed when selected, then outlines it.
func (s *Shapes) Draw(c gfx.Canvas) {
	for _, item := range s.items {
		fill := item.Color
		if item.Selected {
			fill = selectedFill
		}
		c.SetDrawColor(fill)
		c.FillRect(item.Rect)
		c.SetDrawColor(outlineColor)
		c.DrawRect(item.Rect)
	}
}
