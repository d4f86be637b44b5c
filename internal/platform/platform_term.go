package platform

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Terminal cells are mapped onto a pixel grid so applications can keep
// working in window coordinates.
const (
	TermCellWidth  = 8
	TermCellHeight = 16
)

func init() {
	register("term", NewTermWindowWrapper)
}

type termCell struct {
	ch rune
	fg color.RGBA
	bg color.RGBA
}

type termWindowWrapper struct {
	screen    tcell.Screen
	events    chan tcell.Event
	quit      chan struct{}
	cells     []termCell
	cols      int
	rows      int
	drawColor color.RGBA
	buttons   tcell.ButtonMask
	closed    bool
}

func NewTermWindowWrapper(conf WindowConfig) (PlatformWindowWrapper, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcell screen: %w", err)
	}
	w, err := newTermWindowWrapper(screen)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func newTermWindowWrapper(screen tcell.Screen) (*termWindowWrapper, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("tcell init: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	w := &termWindowWrapper{
		screen:    screen,
		events:    make(chan tcell.Event, 64),
		quit:      make(chan struct{}),
		drawColor: color.RGBA{0, 0, 0, 255},
	}
	w.resize(screen.Size())
	go screen.ChannelEvents(w.events, w.quit)
	return w, nil
}

func (w *termWindowWrapper) resize(cols, rows int) {
	w.cols, w.rows = cols, rows
	w.cells = make([]termCell, cols*rows)
	for i := range w.cells {
		w.cells[i] = termCell{ch: ' ', bg: color.RGBA{0, 0, 0, 255}}
	}
}

func (w *termWindowWrapper) Show() {
	w.Present()
}

func (w *termWindowWrapper) Close() {
	if w.closed {
		return
	}
	w.closed = true
	close(w.quit)
	w.screen.Fini()
}

func (w *termWindowWrapper) Size() (int, int) {
	return w.cols * TermCellWidth, w.rows * TermCellHeight
}

// SetFullscreen is a no-op, the terminal always owns the whole screen.
func (w *termWindowWrapper) SetFullscreen(bool) error {
	return nil
}

func (w *termWindowWrapper) NextEventTimeout(timeoutMs int) Event {
	if timeoutMs <= 0 {
		select {
		case ev := <-w.events:
			return w.convert(ev)
		default:
			return TimeoutEvent{}
		}
	}
	timer := time.NewTimer(time.Duration(timeoutMs) * time.Millisecond)
	defer timer.Stop()
	select {
	case ev := <-w.events:
		return w.convert(ev)
	case <-timer.C:
		return TimeoutEvent{}
	}
}

func (w *termWindowWrapper) convert(event tcell.Event) Event {
	switch e := event.(type) {
	case *tcell.EventKey:
		switch e.Key() {
		case tcell.KeyEscape:
			return KeyPress{Code: ScancodeEscape, Label: "Escape"}
		case tcell.KeyCtrlC:
			return DestroyNotify{}
		case tcell.KeyRune:
			if e.Modifiers()&tcell.ModCtrl != 0 && (e.Rune() == 'c' || e.Rune() == 'C') {
				return DestroyNotify{}
			}
			switch e.Rune() {
			case 'q', 'Q':
				return KeyPress{Code: ScancodeQ, Label: "Q"}
			case 'f', 'F':
				return KeyPress{Code: ScancodeF, Label: "F"}
			}
		}
		return KeyPress{Code: ScancodeUnknown, Label: e.Name()}
	case *tcell.EventMouse:
		col, row := e.Position()
		x := float32(col*TermCellWidth + TermCellWidth/2)
		y := float32(row*TermCellHeight + TermCellHeight/2)
		pressed := e.Buttons() & (tcell.Button1 | tcell.Button2 | tcell.Button3)
		previous := w.buttons
		w.buttons = pressed
		switch {
		case pressed != 0 && previous == 0:
			return ButtonPress{Button: termButton(pressed), X: x, Y: y}
		case pressed == 0 && previous != 0:
			return ButtonRelease{Button: termButton(previous), X: x, Y: y}
		default:
			return MotionNotify{X: x, Y: y}
		}
	case *tcell.EventResize:
		w.screen.Sync()
		w.resize(e.Size())
		width, height := w.Size()
		return Resize{Width: width, Height: height}
	}
	return UnexpectedEvent{}
}

// termButton maps tcell buttons onto SDL numbering (1 left, 2 middle, 3 right).
func termButton(mask tcell.ButtonMask) uint32 {
	switch {
	case mask&tcell.Button1 != 0:
		return 1
	case mask&tcell.Button3 != 0:
		return 2
	case mask&tcell.Button2 != 0:
		return 3
	}
	return 0
}

func (w *termWindowWrapper) SetDrawColor(c color.RGBA) {
	w.drawColor = c
}

func (w *termWindowWrapper) Clear() {
	for i := range w.cells {
		w.cells[i] = termCell{ch: ' ', fg: w.drawColor, bg: w.drawColor}
	}
}

func (w *termWindowWrapper) FillRect(r Rect) {
	c0, r0, c1, r1 := w.cellBounds(r)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			cell := &w.cells[row*w.cols+col]
			if w.drawColor.A == 255 {
				*cell = termCell{ch: ' ', fg: w.drawColor, bg: w.drawColor}
				continue
			}
			cell.bg = blendRGBA(cell.bg, w.drawColor)
			cell.fg = blendRGBA(cell.fg, w.drawColor)
		}
	}
}

func (w *termWindowWrapper) DrawRect(r Rect) {
	c0, r0, c1, r1 := w.cellBounds(r)
	if c0 >= c1 || r0 >= r1 {
		return
	}
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			top, bottom := row == r0, row == r1-1
			left, right := col == c0, col == c1-1
			var ch rune
			switch {
			case top && left:
				ch = '┌'
			case top && right:
				ch = '┐'
			case bottom && left:
				ch = '└'
			case bottom && right:
				ch = '┘'
			case top || bottom:
				ch = '─'
			case left || right:
				ch = '│'
			default:
				continue
			}
			w.stroke(col, row, ch)
		}
	}
}

func (w *termWindowWrapper) DrawLine(x1, y1, x2, y2 float32) {
	c0, r0 := cellOf(x1, TermCellWidth), cellOf(y1, TermCellHeight)
	c1, r1 := cellOf(x2, TermCellWidth), cellOf(y2, TermCellHeight)
	switch {
	case c0 == c1:
		for row := min(r0, r1); row <= max(r0, r1); row++ {
			w.stroke(c0, row, '│')
		}
	case r0 == r1:
		for col := min(c0, c1); col <= max(c0, c1); col++ {
			w.stroke(col, r0, '─')
		}
	default:
		steps := max(abs(c1-c0), abs(r1-r0))
		for i := 0; i <= steps; i++ {
			col := c0 + (c1-c0)*i/steps
			row := r0 + (r1-r0)*i/steps
			w.stroke(col, row, '·')
		}
	}
}

func (w *termWindowWrapper) stroke(col, row int, ch rune) {
	if col < 0 || row < 0 || col >= w.cols || row >= w.rows {
		return
	}
	cell := &w.cells[row*w.cols+col]
	if (ch == '│' && cell.ch == '─') || (ch == '─' && cell.ch == '│') {
		ch = '┼'
	}
	cell.ch = ch
	cell.fg = blendRGBA(cell.fg, w.drawColor)
}

func (w *termWindowWrapper) Present() {
	for row := 0; row < w.rows; row++ {
		for col := 0; col < w.cols; col++ {
			cell := w.cells[row*w.cols+col]
			style := tcell.StyleDefault.
				Foreground(tcellColor(cell.fg)).
				Background(tcellColor(cell.bg))
			w.screen.SetContent(col, row, cell.ch, nil, style)
		}
	}
	w.screen.Show()
}

// cellBounds returns the half-open cell range whose centers fall inside r.
func (w *termWindowWrapper) cellBounds(r Rect) (c0, r0, c1, r1 int) {
	c0 = clamp(int(math.Ceil(float64(r.X)/TermCellWidth-0.5)), 0, w.cols)
	r0 = clamp(int(math.Ceil(float64(r.Y)/TermCellHeight-0.5)), 0, w.rows)
	c1 = clamp(int(math.Ceil(float64(r.X+r.W)/TermCellWidth-0.5)), 0, w.cols)
	r1 = clamp(int(math.Ceil(float64(r.Y+r.H)/TermCellHeight-0.5)), 0, w.rows)
	return c0, r0, c1, r1
}

func cellOf(v float32, size int) int {
	return int(math.Floor(float64(v) / float64(size)))
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func blendRGBA(dst, src color.RGBA) color.RGBA {
	if src.A == 255 {
		return src
	}
	d := colorful.Color{R: float64(dst.R) / 255, G: float64(dst.G) / 255, B: float64(dst.B) / 255}
	s := colorful.Color{R: float64(src.R) / 255, G: float64(src.G) / 255, B: float64(src.B) / 255}
	r, g, b := d.BlendRgb(s, float64(src.A)/255).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
