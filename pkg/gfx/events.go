package gfx

import "github.com/kjkrol/rectdemo/internal/platform"

// Scancode identifies a physical key independent of keyboard layout.
type Scancode uint32

const (
	ScancodeUnknown = Scancode(platform.ScancodeUnknown)
	ScancodeF       = Scancode(platform.ScancodeF)
	ScancodeQ       = Scancode(platform.ScancodeQ)
	ScancodeEscape  = Scancode(platform.ScancodeEscape)
)

type Event interface{}

type Expose struct{}
type KeyPress struct {
	Code  Scancode
	Label string
}
type KeyRelease struct {
	Code  Scancode
	Label string
}
type ButtonPress struct {
	Button uint32
	X, Y   float32
}
type ButtonRelease struct {
	Button uint32
	X, Y   float32
}
type MotionNotify struct {
	X, Y float32
}
type EnterNotify struct{}
type LeaveNotify struct{}

// QuitRequest is delivered when the user asks to close the application.
type QuitRequest struct{}
type Resize struct {
	Width, Height int
}
type UnexpectedEvent struct{}

func convert(event platform.Event) Event {
	switch e := event.(type) {
	case platform.KeyPress:
		return KeyPress{Code: Scancode(e.Code), Label: e.Label}
	case platform.KeyRelease:
		return KeyRelease{Code: Scancode(e.Code), Label: e.Label}
	case platform.ButtonPress:
		return ButtonPress{Button: e.Button, X: e.X, Y: e.Y}
	case platform.ButtonRelease:
		return ButtonRelease{Button: e.Button, X: e.X, Y: e.Y}
	case platform.MotionNotify:
		return MotionNotify{X: e.X, Y: e.Y}
	case platform.EnterNotify:
		return EnterNotify{}
	case platform.LeaveNotify:
		return LeaveNotify{}
	case platform.Expose:
		return Expose{}
	case platform.DestroyNotify:
		return QuitRequest{}
	case platform.Resize:
		return Resize{Width: e.Width, Height: e.Height}
	default:
		return UnexpectedEvent{}
	}
}
