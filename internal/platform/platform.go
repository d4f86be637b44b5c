package platform

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"sort"
)

var (
	ErrUnknownBackend     = errors.New("unknown platform backend")
	ErrBackendUnavailable = errors.New("platform backend not available in this build")
)

type WindowConfig struct {
	Width     int
	Height    int
	Title     string
	Resizable bool
}

// Rect is a float rectangle in window coordinates.
type Rect struct {
	X, Y, W, H float32
}

type PlatformWindowWrapper interface {
	Show()
	Close()
	NextEventTimeout(timeoutMs int) Event
	Size() (int, int)
	SetFullscreen(fullscreen bool) error

	SetDrawColor(c color.RGBA)
	Clear()
	FillRect(r Rect)
	DrawRect(r Rect)
	DrawLine(x1, y1, x2, y2 float32)
	Present()
}

// Snapshotter is implemented by backends that keep the last presented frame in memory.
type Snapshotter interface {
	Snapshot() *image.RGBA
}

// Fullscreener is implemented by backends that can report the applied fullscreen state.
type Fullscreener interface {
	Fullscreen() bool
}

type Opener func(conf WindowConfig) (PlatformWindowWrapper, error)

var backends = map[string]Opener{}

func register(name string, open Opener) {
	backends[name] = open
}

func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Open(backend string, conf WindowConfig) (PlatformWindowWrapper, error) {
	open, ok := backends[backend]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
	return open(conf)
}
