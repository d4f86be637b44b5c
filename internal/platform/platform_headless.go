package platform

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"time"
)

func init() {
	register("headless", func(conf WindowConfig) (PlatformWindowWrapper, error) {
		return NewHeadlessWindowWrapper(conf), nil
	})
}

// HeadlessWindowWrapper rasterizes into an image.RGBA and serves events from an in-memory queue.
type HeadlessWindowWrapper struct {
	back       *image.RGBA
	front      *image.RGBA
	drawColor  color.RGBA
	events     []Event
	fullscreen bool
	shown      bool
	closed     bool
	title      string
}

func NewHeadlessWindowWrapper(conf WindowConfig) *HeadlessWindowWrapper {
	return &HeadlessWindowWrapper{
		back:      image.NewRGBA(image.Rect(0, 0, conf.Width, conf.Height)),
		drawColor: color.RGBA{0, 0, 0, 255},
		title:     conf.Title,
	}
}

func (w *HeadlessWindowWrapper) Show()  { w.shown = true }
func (w *HeadlessWindowWrapper) Close() { w.closed = true }

func (w *HeadlessWindowWrapper) Closed() bool     { return w.closed }
func (w *HeadlessWindowWrapper) Shown() bool      { return w.shown }
func (w *HeadlessWindowWrapper) Title() string    { return w.title }
func (w *HeadlessWindowWrapper) Fullscreen() bool { return w.fullscreen }

// Inject queues an event for NextEventTimeout.
func (w *HeadlessWindowWrapper) Inject(event Event) {
	w.events = append(w.events, event)
}

// Resize reallocates the back buffer and queues a Resize event.
func (w *HeadlessWindowWrapper) Resize(width, height int) {
	w.back = image.NewRGBA(image.Rect(0, 0, width, height))
	w.Inject(Resize{Width: width, Height: height})
}

func (w *HeadlessWindowWrapper) NextEventTimeout(timeoutMs int) Event {
	if len(w.events) == 0 {
		if timeoutMs > 0 {
			time.Sleep(time.Duration(timeoutMs) * time.Millisecond)
		}
		return TimeoutEvent{}
	}
	event := w.events[0]
	w.events[0] = nil
	w.events = w.events[1:]
	return event
}

func (w *HeadlessWindowWrapper) Size() (int, int) {
	b := w.back.Bounds()
	return b.Dx(), b.Dy()
}

func (w *HeadlessWindowWrapper) SetFullscreen(fullscreen bool) error {
	w.fullscreen = fullscreen
	return nil
}

func (w *HeadlessWindowWrapper) SetDrawColor(c color.RGBA) {
	w.drawColor = c
}

// Clear replaces every pixel with the draw color, alpha included.
func (w *HeadlessWindowWrapper) Clear() {
	draw.Draw(w.back, w.back.Bounds(), &image.Uniform{C: w.drawColor}, image.Point{}, draw.Src)
}

func (w *HeadlessWindowWrapper) FillRect(r Rect) {
	bounds := pixelBounds(r).Intersect(w.back.Bounds())
	if w.drawColor.A == 255 {
		draw.Draw(w.back, bounds, &image.Uniform{C: w.drawColor}, image.Point{}, draw.Src)
		return
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			w.blend(x, y)
		}
	}
}

func (w *HeadlessWindowWrapper) DrawRect(r Rect) {
	b := pixelBounds(r)
	if b.Empty() {
		return
	}
	for x := b.Min.X; x < b.Max.X; x++ {
		w.blend(x, b.Min.Y)
		if b.Max.Y-1 != b.Min.Y {
			w.blend(x, b.Max.Y-1)
		}
	}
	for y := b.Min.Y + 1; y < b.Max.Y-1; y++ {
		w.blend(b.Min.X, y)
		if b.Max.X-1 != b.Min.X {
			w.blend(b.Max.X-1, y)
		}
	}
}

func (w *HeadlessWindowWrapper) DrawLine(x1, y1, x2, y2 float32) {
	// Bresenham
	x0, y0 := int(math.Floor(float64(x1))), int(math.Floor(float64(y1)))
	xe, ye := int(math.Floor(float64(x2))), int(math.Floor(float64(y2)))
	dx := abs(xe - x0)
	dy := -abs(ye - y0)
	sx, sy := 1, 1
	if x0 > xe {
		sx = -1
	}
	if y0 > ye {
		sy = -1
	}
	e := dx + dy
	for {
		w.blend(x0, y0)
		if x0 == xe && y0 == ye {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (w *HeadlessWindowWrapper) Present() {
	if w.front == nil || w.front.Bounds() != w.back.Bounds() {
		w.front = image.NewRGBA(w.back.Bounds())
	}
	copy(w.front.Pix, w.back.Pix)
}

// Snapshot returns the last presented frame, or nil before the first Present.
func (w *HeadlessWindowWrapper) Snapshot() *image.RGBA {
	return w.front
}

func (w *HeadlessWindowWrapper) blend(x, y int) {
	if !(image.Point{X: x, Y: y}).In(w.back.Rect) {
		return
	}
	src := w.drawColor
	if src.A == 255 {
		w.back.SetRGBA(x, y, src)
		return
	}
	dst := w.back.RGBAAt(x, y)
	a := uint32(src.A)
	mix := func(s, d uint8) uint8 {
		return uint8((uint32(s)*a + uint32(d)*(255-a) + 127) / 255)
	}
	w.back.SetRGBA(x, y, color.RGBA{
		R: mix(src.R, dst.R),
		G: mix(src.G, dst.G),
		B: mix(src.B, dst.B),
		A: uint8(a + uint32(dst.A)*(255-a)/255),
	})
}

// pixelBounds covers the pixels whose centers fall inside r.
func pixelBounds(r Rect) image.Rectangle {
	return image.Rect(
		int(math.Round(float64(r.X))),
		int(math.Round(float64(r.Y))),
		int(math.Round(float64(r.X+r.W))),
		int(math.Round(float64(r.Y+r.H))),
	)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
