package demo

import (
	"image/color"
	"log"

	"github.com/kjkrol/rectdemo/pkg/gfx"
)

const RectTitle = "SDL via Go ( libsdl.org app )"

var (
	backgroundColor = color.RGBA{0, 0, 0, 255}
	staticRect      = gfx.Rect{X: 50, Y: 50, W: 200, H: 100}
	staticRectColor = color.RGBA{255, 0, 0, 255}
)

// RectApp renders a single static rectangle.
type RectApp struct {
	opts   Options
	state  *AppState
	logger *log.Logger
}

func NewRectApp(opts Options) *RectApp {
	return &RectApp{opts: normalizeOptions(opts, RectTitle)}
}

func (a *RectApp) State() *AppState { return a.state }

func (a *RectApp) Init(rt *gfx.Runtime) gfx.Result {
	a.logger = rt.Logger()
	state, err := openState(rt, a.opts.Window)
	if err != nil {
		a.logger.Printf("Couldn't initialize: %v", err)
		return gfx.Failure
	}
	a.state = state
	return gfx.Continue
}

func (a *RectApp) Iterate() gfx.Result {
	c := a.state.window
	c.SetDrawColor(backgroundColor)
	c.Clear()
	c.SetDrawColor(staticRectColor)
	c.FillRect(staticRect)
	c.Present()
	return gfx.Continue
}

func (a *RectApp) Event(event gfx.Event) gfx.Result {
	return a.state.handleCommon(event, a.logger)
}

func (a *RectApp) Quit(gfx.Result) {
	if a.state == nil {
		return
	}
	a.state.close(a.logger, a.opts.SnapshotPath)
	a.state = nil
}
