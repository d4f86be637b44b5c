package gfx

import "image/color"

// Canvas is the drawing context applications render a frame into.
type Canvas interface {
	Size() (int, int)
	SetDrawColor(c color.RGBA)
	Clear()
	FillRect(r Rect)
	DrawRect(r Rect)
	DrawLine(x1, y1, x2, y2 float32)
	Present()
}
