package demo

import (
	"log"

	"github.com/kjkrol/rectdemo/pkg/gfx"
)

const ShapesTitle = "SDL via Go ( shapes )"

// ShapesApp renders a grid and a set of rectangles that toggle on click.
type ShapesApp struct {
	opts   Options
	shapes *Shapes
	grid   gfx.GridConfig
	state  *AppState
	logger *log.Logger
}

func NewShapesApp(opts Options, shapes *Shapes) *ShapesApp {
	if shapes == nil {
		shapes = DefaultShapes()
	}
	return &ShapesApp{
		opts:   normalizeOptions(opts, ShapesTitle),
		shapes: shapes,
		grid:   gfx.GridConfig{CellSize: gfx.DefaultGridCellSize, Color: gridColor},
	}
}

func (a *ShapesApp) State() *AppState { return a.state }
func (a *ShapesApp) Shapes() *Shapes  { return a.shapes }

func (a *ShapesApp) Init(rt *gfx.Runtime) gfx.Result {
	a.logger = rt.Logger()
	state, err := openState(rt, a.opts.Window)
	if err != nil {
		a.logger.Printf("Couldn't initialize: %v", err)
		return gfx.Failure
	}
	a.state = state
	return gfx.Continue
}

func (a *ShapesApp) Iterate() gfx.Result {
	c := a.state.window
	c.SetDrawColor(backgroundColor)
	c.Clear()
	gfx.DrawGrid(c, a.grid)
	a.shapes.Draw(c)
	c.Present()
	return gfx.Continue
}

func (a *ShapesApp) Event(event gfx.Event) gfx.Result {
	switch e := event.(type) {
	case gfx.ButtonPress:
		n := a.shapes.ToggleAt(e.X, e.Y)
		a.logger.Printf("mouse button %d pressed at (%.1f, %.1f), %d rectangle(s) toggled", e.Button, e.X, e.Y, n)
		return gfx.Continue
	case gfx.ButtonRelease:
		a.logger.Printf("mouse button %d released at (%.1f, %.1f)", e.Button, e.X, e.Y)
		return gfx.Continue
	case gfx.MotionNotify:
		if a.opts.Verbose {
			a.logger.Printf("mouse moved to (%.1f, %.1f), over rectangles %v", e.X, e.Y, a.shapes.IndexesAt(e.X, e.Y))
		} else {
			a.logger.Printf("mouse moved to (%.1f, %.1f)", e.X, e.Y)
		}
		return gfx.Continue
	}
	return a.state.handleCommon(event, a.logger)
}

func (a *ShapesApp) Quit(gfx.Result) {
	if a.state == nil {
		return
	}
	a.state.close(a.logger, a.opts.SnapshotPath)
	a.state = nil
}
