package gfx

import (
	"image"
	"image/color"

	"github.com/kjkrol/rectdemo/internal/platform"
)

type WindowConfig struct {
	Width     int
	Height    int
	Title     string
	Resizable bool
}

func (w WindowConfig) convert() platform.WindowConfig {
	return platform.WindowConfig{Width: w.Width, Height: w.Height, Title: w.Title, Resizable: w.Resizable}
}

// Window owns one platform surface together with its drawing context.
type Window struct {
	platformWinWrapper platform.PlatformWindowWrapper
	backend            string
	emitted            []Event
	closed             bool
}

// NewWindow opens a window on the named backend ("sdl", "term" or "headless").
func NewWindow(backend string, conf WindowConfig) (*Window, error) {
	wrapper, err := platform.Open(backend, conf.convert())
	if err != nil {
		return nil, &InitError{Op: "create window", Backend: backend, Err: err}
	}
	return &Window{platformWinWrapper: wrapper, backend: backend}, nil
}

func (w *Window) Backend() string {
	return w.backend
}

func (w *Window) Show() {
	w.platformWinWrapper.Show()
}

// Close releases the drawing context and the surface. Subsequent calls are no-ops.
func (w *Window) Close() {
	if w == nil || w.closed {
		return
	}
	w.closed = true
	w.emitted = nil
	w.platformWinWrapper.Close()
}

func (w *Window) Closed() bool {
	return w == nil || w.closed
}

func (w *Window) Size() (int, int) {
	if w.Closed() {
		return 0, 0
	}
	return w.platformWinWrapper.Size()
}

func (w *Window) SetFullscreen(fullscreen bool) error {
	return w.platformWinWrapper.SetFullscreen(fullscreen)
}

// Fullscreen reports the fullscreen state the backend applied; ok is false
// when the backend cannot tell.
func (w *Window) Fullscreen() (fullscreen, ok bool) {
	if w.Closed() {
		return false, false
	}
	f, ok := w.platformWinWrapper.(platform.Fullscreener)
	if !ok {
		return false, false
	}
	return f.Fullscreen(), true
}

func (w *Window) SetDrawColor(c color.RGBA) {
	w.platformWinWrapper.SetDrawColor(c)
}

func (w *Window) Clear() {
	w.platformWinWrapper.Clear()
}

func (w *Window) FillRect(r Rect) {
	w.platformWinWrapper.FillRect(r.convert())
}

func (w *Window) DrawRect(r Rect) {
	w.platformWinWrapper.DrawRect(r.convert())
}

func (w *Window) DrawLine(x1, y1, x2, y2 float32) {
	w.platformWinWrapper.DrawLine(x1, y1, x2, y2)
}

func (w *Window) Present() {
	w.platformWinWrapper.Present()
}

// EmitEvent queues a synthetic event; it is delivered before pending platform events.
func (w *Window) EmitEvent(event Event) {
	if w.Closed() || event == nil {
		return
	}
	w.emitted = append(w.emitted, event)
}

// Snapshot returns the last presented frame for backends that keep one in memory.
func (w *Window) Snapshot() (*image.RGBA, bool) {
	if w.Closed() {
		return nil, false
	}
	snap, ok := w.platformWinWrapper.(platform.Snapshotter)
	if !ok {
		return nil, false
	}
	img := snap.Snapshot()
	return img, img != nil
}

func (w *Window) nextEvent(timeoutMs int) (Event, bool) {
	if w.Closed() {
		return nil, false
	}
	if len(w.emitted) > 0 {
		event := w.emitted[0]
		w.emitted[0] = nil
		w.emitted = w.emitted[1:]
		return event, true
	}
	platformEvent := w.platformWinWrapper.NextEventTimeout(timeoutMs)
	if _, ok := platformEvent.(platform.TimeoutEvent); ok {
		return nil, false
	}
	return convert(platformEvent), true
}
