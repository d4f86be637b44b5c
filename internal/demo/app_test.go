package demo

import (
	"bytes"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kjkrol/rectdemo/pkg/gfx"
)

func headlessRuntime() *gfx.Runtime {
	return gfx.NewRuntime(gfx.RuntimeConfig{Backend: "headless", FPS: 1000})
}

func initShapes(t *testing.T, opts Options) *ShapesApp {
	t.Helper()
	app := NewShapesApp(opts, DefaultShapes())
	if r := app.Init(headlessRuntime()); r != gfx.Continue {
		t.Fatalf("Init = %s", r)
	}
	t.Cleanup(func() { app.Quit(gfx.Success) })
	return app
}

func frame(t *testing.T, app interface {
	Iterate() gfx.Result
	State() *AppState
}) func(x, y int) color.RGBA {
	t.Helper()
	if r := app.Iterate(); r != gfx.Continue {
		t.Fatalf("Iterate = %s", r)
	}
	img, ok := app.State().Window().Snapshot()
	if !ok {
		t.Fatal("no snapshot")
	}
	return img.RGBAAt
}

func TestShapesApp_ClickScenario(t *testing.T) {
	app := initShapes(t, Options{})
	if r := app.Event(gfx.ButtonPress{Button: 1, X: 125, Y: 125}); r != gfx.Continue {
		t.Fatalf("click result = %s", r)
	}
	if sel := selectedIndexes(app.Shapes()); !equalInts(sel, []int{0}) {
		t.Fatalf("selected = %v, want [0]", sel)
	}
}

func TestShapesApp_ReleaseAndMotionChangeNothing(t *testing.T) {
	app := initShapes(t, Options{Verbose: true})
	for _, e := range []gfx.Event{
		gfx.ButtonRelease{Button: 1, X: 125, Y: 125},
		gfx.MotionNotify{X: 125, Y: 125},
		gfx.Expose{},
		gfx.KeyRelease{Code: gfx.ScancodeQ},
	} {
		if r := app.Event(e); r != gfx.Continue {
			t.Fatalf("%#v: result = %s", e, r)
		}
	}
	if sel := selectedIndexes(app.Shapes()); len(sel) != 0 {
		t.Fatalf("selected = %v", sel)
	}
}

// assertFullscreen checks both the app flag and the state the window applied.
func assertFullscreen(t *testing.T, state *AppState, want bool) {
	t.Helper()
	if state.Fullscreen() != want {
		t.Fatalf("app fullscreen = %t, want %t", state.Fullscreen(), want)
	}
	applied, ok := state.Window().Fullscreen()
	if !ok {
		t.Fatal("backend does not report fullscreen state")
	}
	if applied != want {
		t.Fatalf("window fullscreen = %t, want %t", applied, want)
	}
}

func TestShapesApp_FullscreenToggle(t *testing.T) {
	app := initShapes(t, Options{})
	assertFullscreen(t, app.State(), false)
	f := gfx.KeyPress{Code: gfx.ScancodeF}
	app.Event(f)
	assertFullscreen(t, app.State(), true)
	app.Event(f)
	assertFullscreen(t, app.State(), false)
}

func TestShapesApp_LogsMouseMotion(t *testing.T) {
	cases := []struct {
		name    string
		verbose bool
		want    string
	}{
		{"default", false, "mouse moved to (125.0, 125.0)\n"},
		{"verbose", true, "mouse moved to (125.0, 125.0), over rectangles [0]"},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		rt := gfx.NewRuntime(gfx.RuntimeConfig{Backend: "headless", Logger: log.New(&buf, "", 0)})
		app := NewShapesApp(Options{Verbose: tc.verbose}, nil)
		if r := app.Init(rt); r != gfx.Continue {
			t.Fatalf("%s: Init = %s", tc.name, r)
		}
		app.Event(gfx.MotionNotify{X: 125, Y: 125})
		app.Quit(gfx.Success)
		if !strings.Contains(buf.String(), tc.want) {
			t.Errorf("%s: log = %q, want it to contain %q", tc.name, buf.String(), tc.want)
		}
	}
}

func TestShapesApp_Terminates(t *testing.T) {
	events := []gfx.Event{
		gfx.KeyPress{Code: gfx.ScancodeEscape},
		gfx.KeyPress{Code: gfx.ScancodeQ},
		gfx.QuitRequest{},
	}
	for _, quit := range events {
		app := initShapes(t, Options{})
		// reach a non-initial state first
		app.Event(gfx.KeyPress{Code: gfx.ScancodeF})
		app.Event(gfx.ButtonPress{Button: 1, X: 125, Y: 125})
		if r := app.Event(quit); r != gfx.Success {
			t.Errorf("%#v: result = %s, want success", quit, r)
		}
	}
}

func TestShapesApp_OtherKeysIgnored(t *testing.T) {
	app := initShapes(t, Options{})
	if r := app.Event(gfx.KeyPress{Code: gfx.ScancodeUnknown, Label: "x"}); r != gfx.Continue {
		t.Fatalf("result = %s", r)
	}
}

func TestShapesApp_RendersFrame(t *testing.T) {
	app := initShapes(t, Options{})
	at := frame(t, app)

	checks := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"background", 25, 25, backgroundColor},
		{"grid origin", 0, 10, gridColor},
		{"grid line", 50, 25, gridColor},
		{"first rect", 125, 125, color.RGBA{255, 0, 0, 255}},
		{"first outline", 100, 120, outlineColor},
		{"second rect", 180, 180, color.RGBA{0, 255, 0, 255}},
		{"fourth over third", 380, 170, color.RGBA{255, 255, 0, 255}},
	}
	for _, c := range checks {
		if got := at(c.x, c.y); got != c.want {
			t.Errorf("%s (%d,%d) = %v, want %v", c.name, c.x, c.y, got, c.want)
		}
	}

	app.Event(gfx.ButtonPress{Button: 1, X: 125, Y: 125})
	at = frame(t, app)
	// the selected fill replaces the rectangle color and blends over the black background
	if got := at(125, 125); got != (color.RGBA{128, 128, 128, 255}) {
		t.Errorf("selected rect = %v, want translucent white over black", got)
	}
}

func TestShapesApp_SnapshotOnQuit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shapes.png")
	app := NewShapesApp(Options{SnapshotPath: path}, nil)
	if r := app.Init(headlessRuntime()); r != gfx.Continue {
		t.Fatalf("Init = %s", r)
	}
	app.Iterate()
	app.Quit(gfx.Success)

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("snapshot not written: %v", err)
	}
	if app.State() != nil {
		t.Fatal("state kept after Quit")
	}
}

func TestShapesApp_InitFailure(t *testing.T) {
	rt := gfx.NewRuntime(gfx.RuntimeConfig{Backend: "missing"})
	app := NewShapesApp(Options{}, nil)
	if r := app.Init(rt); r != gfx.Failure {
		t.Fatalf("Init = %s, want failure", r)
	}
	app.Quit(gfx.Failure)
}

func TestQuitWithoutInit(t *testing.T) {
	NewRectApp(Options{}).Quit(gfx.Failure)
	NewShapesApp(Options{}, nil).Quit(gfx.Failure)
}

func TestRectApp_RendersStaticRect(t *testing.T) {
	app := NewRectApp(Options{})
	if r := app.Init(headlessRuntime()); r != gfx.Continue {
		t.Fatalf("Init = %s", r)
	}
	defer app.Quit(gfx.Success)

	if w, h := app.State().Window().Size(); w != DefaultWidth || h != DefaultHeight {
		t.Fatalf("window = %dx%d, want %dx%d", w, h, DefaultWidth, DefaultHeight)
	}
	at := frame(t, app)
	if got := at(100, 100); got != staticRectColor {
		t.Errorf("inside = %v, want red", got)
	}
	for _, p := range [][2]int{{10, 10}, {260, 100}, {100, 160}} {
		if got := at(p[0], p[1]); got != backgroundColor {
			t.Errorf("outside %v = %v, want black", p, got)
		}
	}
}

func TestRectApp_Events(t *testing.T) {
	app := NewRectApp(Options{})
	app.Init(headlessRuntime())
	defer app.Quit(gfx.Success)

	app.Event(gfx.KeyPress{Code: gfx.ScancodeF})
	assertFullscreen(t, app.State(), true)
	app.Event(gfx.KeyPress{Code: gfx.ScancodeF})
	assertFullscreen(t, app.State(), false)
	if r := app.Event(gfx.ButtonPress{Button: 1, X: 100, Y: 100}); r != gfx.Continue {
		t.Fatalf("click result = %s", r)
	}
	if r := app.Event(gfx.KeyPress{Code: gfx.ScancodeQ}); r != gfx.Success {
		t.Fatalf("q result = %s", r)
	}
}

func TestShapesApp_RunsUnderRuntime(t *testing.T) {
	rt := gfx.NewRuntime(gfx.RuntimeConfig{Backend: "headless", FPS: 1000, MaxFrames: 5})
	app := NewShapesApp(Options{}, nil)
	if r := rt.Run(app); r != gfx.Success {
		t.Fatalf("Run = %s", r)
	}
	if rt.Frames() != 5 {
		t.Fatalf("frames = %d", rt.Frames())
	}
}
