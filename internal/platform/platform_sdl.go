//go:build cgo

package platform

import (
	"fmt"
	"image/color"
	"log"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	register("sdl", NewSDLWindowWrapper)
}

type sdlWindowWrapper struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	title    string
}

// NewSDLWindowWrapper initializes SDL video and creates a window with its renderer.
// The calling goroutine stays locked to its OS thread until Close.
func NewSDLWindowWrapper(conf WindowConfig) (PlatformWindowWrapper, error) {
	runtime.LockOSThread()
	if err := sdl.Init(uint32(sdl.INIT_VIDEO | sdl.INIT_EVENTS)); err != nil {
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("SDL_Init: %w", err)
	}

	flags := uint32(sdl.WINDOW_HIDDEN)
	if conf.Resizable {
		flags |= uint32(sdl.WINDOW_RESIZABLE)
	}
	window, err := sdl.CreateWindow(conf.Title,
		int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED),
		int32(conf.Width), int32(conf.Height), flags)
	if err != nil {
		sdl.Quit()
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("SDL_CreateWindow: %w", err)
	}

	renderer, err := createRendererWithProbe(window)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("SDL_CreateRenderer: %w", err)
	}
	// translucent fills need blending; SDL defaults to BLENDMODE_NONE
	if err := renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		log.Printf("SDL_SetRenderDrawBlendMode: %v", err)
	}

	return &sdlWindowWrapper{
		window:   window,
		renderer: renderer,
		title:    conf.Title,
	}, nil
}

func createRendererWithProbe(window *sdl.Window) (*sdl.Renderer, error) {
	renderer, err := sdl.CreateRenderer(window, -1, uint32(sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC))
	if err == nil {
		logRendererInfo(renderer)
		return renderer, nil
	}
	renderer, err = sdl.CreateRenderer(window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err == nil {
		logRendererInfo(renderer)
		return renderer, nil
	}
	// software as the last resort
	renderer, err = sdl.CreateRenderer(window, -1, uint32(sdl.RENDERER_SOFTWARE))
	if err != nil {
		return nil, err
	}
	logRendererInfo(renderer)
	return renderer, nil
}

func logRendererInfo(r *sdl.Renderer) {
	info, err := r.GetInfo()
	if err != nil {
		log.Printf("SDL_GetRendererInfo: %v", err)
		return
	}
	log.Printf("SDL renderer backend: %s (accelerated=%t vsync=%t)",
		info.Name,
		info.Flags&uint32(sdl.RENDERER_ACCELERATED) != 0,
		info.Flags&uint32(sdl.RENDERER_PRESENTVSYNC) != 0)
}

func (w *sdlWindowWrapper) Show() {
	w.window.Show()
	// first frame, so the compositor has real content
	w.SetDrawColor(color.RGBA{0, 0, 0, 255})
	w.Clear()
	w.Present()
}

func (w *sdlWindowWrapper) Close() {
	if w.renderer != nil {
		w.renderer.Destroy()
		w.renderer = nil
	}
	if w.window != nil {
		w.window.Destroy()
		w.window = nil
	}
	sdl.Quit()
	runtime.UnlockOSThread()
}

func (w *sdlWindowWrapper) Size() (int, int) {
	width, height := w.window.GetSize()
	return int(width), int(height)
}

func (w *sdlWindowWrapper) SetFullscreen(fullscreen bool) error {
	var flags uint32
	if fullscreen {
		flags = uint32(sdl.WINDOW_FULLSCREEN_DESKTOP)
	}
	return w.window.SetFullscreen(flags)
}

func (w *sdlWindowWrapper) SetDrawColor(c color.RGBA) {
	w.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
}

func (w *sdlWindowWrapper) Clear() {
	w.renderer.Clear()
}

func (w *sdlWindowWrapper) FillRect(r Rect) {
	w.renderer.FillRectF(&sdl.FRect{X: r.X, Y: r.Y, W: r.W, H: r.H})
}

func (w *sdlWindowWrapper) DrawRect(r Rect) {
	w.renderer.DrawRectF(&sdl.FRect{X: r.X, Y: r.Y, W: r.W, H: r.H})
}

func (w *sdlWindowWrapper) DrawLine(x1, y1, x2, y2 float32) {
	w.renderer.DrawLineF(x1, y1, x2, y2)
}

func (w *sdlWindowWrapper) Present() {
	w.renderer.Present()
}

func (w *sdlWindowWrapper) NextEventTimeout(timeoutMs int) Event {
	event := sdl.WaitEventTimeout(timeoutMs)
	if event == nil {
		return TimeoutEvent{} // timeout, no event
	}
	return convertSDL(event)
}

func convertSDL(event sdl.Event) Event {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return DestroyNotify{}
	case *sdl.KeyboardEvent:
		code := Scancode(e.Keysym.Scancode)
		label := sdl.GetKeyName(e.Keysym.Sym)
		if e.Type == sdl.KEYDOWN {
			return KeyPress{Code: code, Label: label}
		}
		return KeyRelease{Code: code, Label: label}
	case *sdl.MouseButtonEvent:
		if e.Type == sdl.MOUSEBUTTONDOWN {
			return ButtonPress{Button: uint32(e.Button), X: float32(e.X), Y: float32(e.Y)}
		}
		return ButtonRelease{Button: uint32(e.Button), X: float32(e.X), Y: float32(e.Y)}
	case *sdl.MouseMotionEvent:
		return MotionNotify{X: float32(e.X), Y: float32(e.Y)}
	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_EXPOSED:
			return Expose{}
		case sdl.WINDOWEVENT_ENTER:
			return EnterNotify{}
		case sdl.WINDOWEVENT_LEAVE:
			return LeaveNotify{}
		case sdl.WINDOWEVENT_SIZE_CHANGED:
			return Resize{Width: int(e.Data1), Height: int(e.Data2)}
		}
	}
	return UnexpectedEvent{}
}
