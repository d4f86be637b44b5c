package demo

import (
	"log"

	"github.com/kjkrol/rectdemo/pkg/gfx"
)

const (
	DefaultWidth  = 700
	DefaultHeight = 500
)

type Options struct {
	Window       gfx.WindowConfig
	SnapshotPath string
	// Verbose adds hit-test detail to mouse motion logs.
	Verbose      bool
}

func normalizeOptions(opts Options, title string) Options {
	if opts.Window.Width <= 0 {
		opts.Window.Width = DefaultWidth
	}
	if opts.Window.Height <= 0 {
		opts.Window.Height = DefaultHeight
	}
	if opts.Window.Title == "" {
		opts.Window.Title = title
	}
	opts.Window.Resizable = true
	return opts
}

// AppState is created by Init and torn down by Quit.
type AppState struct {
	window     *gfx.Window
	fullscreen bool
}

func (s *AppState) Window() *gfx.Window { return s.window }
func (s *AppState) Fullscreen() bool    { return s.fullscreen }

func openState(rt *gfx.Runtime, conf gfx.WindowConfig) (*AppState, error) {
	window, err := rt.CreateWindow(conf)
	if err != nil {
		return nil, err
	}
	window.Show()
	return &AppState{window: window}, nil
}

func (s *AppState) close(logger *log.Logger, snapshotPath string) {
	if snapshotPath != "" {
		if err := gfx.SaveSnapshot(s.window, snapshotPath); err != nil {
			logger.Printf("snapshot: %v", err)
		} else {
			logger.Printf("snapshot written to %s", snapshotPath)
		}
	}
	s.window.Close()
}

// handleCommon implements the keyboard and quit transitions shared by both applications.
func (s *AppState) handleCommon(event gfx.Event, logger *log.Logger) gfx.Result {
	switch e := event.(type) {
	case gfx.QuitRequest:
		logger.Println("Quit event received.")
		return gfx.Success
	case gfx.KeyPress:
		switch e.Code {
		case gfx.ScancodeEscape, gfx.ScancodeQ:
			return gfx.Success
		case gfx.ScancodeF:
			s.toggleFullscreen(logger)
		}
	}
	return gfx.Continue
}

func (s *AppState) toggleFullscreen(logger *log.Logger) {
	s.fullscreen = !s.fullscreen
	if err := s.window.SetFullscreen(s.fullscreen); err != nil {
		logger.Printf("set fullscreen %t: %v", s.fullscreen, err)
	}
}
