package main

import (
	"flag"
	"io"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/kjkrol/rectdemo/internal/demo"
	"github.com/kjkrol/rectdemo/internal/platform"
	"github.com/kjkrol/rectdemo/pkg/gfx"
)

// SDL must run on the main OS thread (required on macOS), so pin it before main starts.
func init() {
	runtime.LockOSThread()
}

func main() {
	backend := flag.String("backend", gfx.DefaultBackend, "platform backend: "+strings.Join(platform.Backends(), ", "))
	width := flag.Int("width", demo.DefaultWidth, "initial window width")
	height := flag.Int("height", demo.DefaultHeight, "initial window height")
	fps := flag.Int("fps", 60, "frames per second")
	frames := flag.Int("frames", 0, "stop after this many frames (0 = run until quit)")
	snapshot := flag.String("snapshot", "", "write the last frame to this PNG file on quit (headless backend)")
	verbose := flag.Bool("v", false, "log the rectangles under the cursor with each mouse motion")
	flag.Parse()

	logger := log.New(os.Stderr, "shapes: ", log.LstdFlags)
	if *backend == "term" {
		// tcell owns the terminal
		logger.SetOutput(io.Discard)
	}
	rt := gfx.NewRuntime(gfx.RuntimeConfig{
		Backend:   *backend,
		FPS:       *fps,
		MaxFrames: *frames,
		Logger:    logger,
	})
	app := demo.NewShapesApp(demo.Options{
		Window:       gfx.WindowConfig{Width: *width, Height: *height},
		SnapshotPath: *snapshot,
		Verbose:      *verbose,
	}, demo.DefaultShapes())

	result := rt.Run(app)
	logger.Printf("exited with %s after %d frames", result, rt.Frames())
	os.Exit(result.ExitCode())
}
