package gfx

import "image/color"

const DefaultGridCellSize = 50

type GridConfig struct {
	CellSize int
	Color    color.RGBA
}

func normalizeGridConfig(conf GridConfig) GridConfig {
	if conf.CellSize <= 0 {
		conf.CellSize = DefaultGridCellSize
	}
	return conf
}

// GridLines returns line offsets 0, cell, 2*cell, ... up to the first multiple of cell
// that reaches the edge, i.e. ceil(size/cell)+1 lines per axis.
func GridLines(width, height, cell int) (vertical, horizontal []float32) {
	if cell <= 0 {
		cell = DefaultGridCellSize
	}
	return gridAxis(width, cell), gridAxis(height, cell)
}

func gridAxis(size, cell int) []float32 {
	if size < 0 {
		size = 0
	}
	count := (size+cell-1)/cell + 1
	out := make([]float32, count)
	for i := range out {
		out[i] = float32(i * cell)
	}
	return out
}

// DrawGrid strokes the grid over the canvas' current size.
func DrawGrid(c Canvas, conf GridConfig) {
	conf = normalizeGridConfig(conf)
	width, height := c.Size()
	vertical, horizontal := GridLines(width, height, conf.CellSize)
	c.SetDrawColor(conf.Color)
	for _, x := range vertical {
		c.DrawLine(x, 0, x, float32(height))
	}
	for _, y := range horizontal {
		c.DrawLine(0, y, float32(width), y)
	}
}
