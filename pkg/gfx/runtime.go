package gfx

import (
	"errors"
	"io"
	"log"
	"runtime"
	"time"
)

// Result is what each lifecycle callback reports back to the Runtime.
type Result int

const (
	Continue Result = iota
	Success
	Failure
)

func (r Result) String() string {
	switch r {
	case Continue:
		return "continue"
	case Success:
		return "success"
	case Failure:
		return "failure"
	}
	return "unknown"
}

// ExitCode maps a result onto a process exit status.
func (r Result) ExitCode() int {
	if r == Failure {
		return 1
	}
	return 0
}

// Application is driven by Runtime.Run: Init once, then Event and Iterate
// until one of them stops returning Continue, then Quit once.
type Application interface {
	Init(rt *Runtime) Result
	Iterate() Result
	Event(event Event) Result
	Quit(result Result)
}

type RuntimeConfig struct {
	Backend   string
	FPS       int
	MaxFrames int
	Strategy  EventsConsumerStrategy
	Logger    *log.Logger
}

var ErrWindowOpen = errors.New("runtime already owns a window")

const (
	DefaultBackend = "sdl"
	maxEventWait   = 50 * time.Millisecond
)

func normalizeRuntimeConfig(conf RuntimeConfig) RuntimeConfig {
	if conf.Backend == "" {
		conf.Backend = DefaultBackend
	}
	if conf.FPS <= 0 {
		conf.FPS = 60
	}
	if conf.Strategy == nil {
		conf.Strategy = DrainAll()
	}
	if conf.Logger == nil {
		conf.Logger = log.New(io.Discard, "", 0)
	}
	return conf
}

type Runtime struct {
	conf       RuntimeConfig
	frameDelay time.Duration
	window     *Window
	frames     int
}

func NewRuntime(conf RuntimeConfig) *Runtime {
	conf = normalizeRuntimeConfig(conf)
	return &Runtime{
		conf:       conf,
		frameDelay: time.Second / time.Duration(conf.FPS),
	}
}

func (rt *Runtime) Logger() *log.Logger {
	return rt.conf.Logger
}

// Frames is the number of frames iterated so far.
func (rt *Runtime) Frames() int {
	return rt.frames
}

// CreateWindow opens the window whose events the runtime will deliver.
func (rt *Runtime) CreateWindow(conf WindowConfig) (*Window, error) {
	if rt.window != nil && !rt.window.Closed() {
		return nil, &InitError{Op: "create window", Backend: rt.conf.Backend, Err: ErrWindowOpen}
	}
	window, err := NewWindow(rt.conf.Backend, conf)
	if err != nil {
		return nil, err
	}
	rt.window = window
	return window, nil
}

func (rt *Runtime) Run(app Application) Result {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	result := app.Init(rt)
	if result != Continue {
		rt.conf.Logger.Printf("init finished with %s", result)
		app.Quit(result)
		rt.window = nil
		return result
	}

	handle := func(event Event) bool {
		result = app.Event(event)
		return result == Continue
	}

	nextRender := time.Now()
	for result == Continue {
		rt.conf.Strategy.Consume(rt.poll, handle, eventWaitTimeout(nextRender, time.Now()))
		if result != Continue {
			break
		}

		now := time.Now()
		if now.Before(nextRender) {
			continue
		}
		result = app.Iterate()
		rt.frames++
		nextRender = now.Add(rt.frameDelay)
		if result == Continue && rt.conf.MaxFrames > 0 && rt.frames >= rt.conf.MaxFrames {
			rt.conf.Logger.Printf("frame limit %d reached", rt.conf.MaxFrames)
			result = Success
		}
	}

	app.Quit(result)
	rt.window = nil
	return result
}

func (rt *Runtime) poll(timeoutMs int) (Event, bool) {
	if rt.window.Closed() {
		if timeoutMs > 0 {
			time.Sleep(time.Duration(timeoutMs) * time.Millisecond)
		}
		return nil, false
	}
	return rt.window.nextEvent(timeoutMs)
}

func eventWaitTimeout(nextRender, now time.Time) int {
	timeout := nextRender.Sub(now)
	if timeout <= 0 {
		return 0
	}
	if timeout > maxEventWait {
		timeout = maxEventWait
	}
	timeoutMs := int(timeout / time.Millisecond)
	if timeoutMs == 0 {
		timeoutMs = 1
	}
	return timeoutMs
}
