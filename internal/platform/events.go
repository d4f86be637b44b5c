package platform

// Scancode identifies a physical key, numbered like SDL scancodes.
type Scancode uint32

const (
	ScancodeUnknown Scancode = 0
	ScancodeF       Scancode = 9
	ScancodeQ       Scancode = 20
	ScancodeEscape  Scancode = 41
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
type DestroyNotify struct{}
type Resize struct {
	Width, Height int
}
type UnexpectedEvent struct{}
type TimeoutEvent struct{}
