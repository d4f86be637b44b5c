package demo

import (
	"image/color"
	"testing"

	"github.com/kjkrol/rectdemo/pkg/gfx"
)

func selectedIndexes(s *Shapes) []int {
	var out []int
	for i := 0; i < s.Len(); i++ {
		if s.At(i).Selected {
			out = append(out, i)
		}
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDefaultShapes_FiveUnselected(t *testing.T) {
	s := DefaultShapes()
	if s.Len() != 5 {
		t.Fatalf("len = %d, want 5", s.Len())
	}
	if sel := selectedIndexes(s); len(sel) != 0 {
		t.Fatalf("selected after creation: %v", sel)
	}
}

func TestDefaultShapes_FreshCopies(t *testing.T) {
	a := DefaultShapes()
	a.ToggleAt(125, 125)
	if b := DefaultShapes(); b.At(0).Selected {
		t.Fatal("DefaultShapes shares state between calls")
	}
}

func TestShapesToggleAt(t *testing.T) {
	cases := []struct {
		name    string
		x, y    float32
		want    []int
		toggled int
	}{
		{"inside first only", 125, 125, []int{0}, 1},
		{"inside second", 200, 200, []int{1}, 1},
		{"shared corner", 150, 150, []int{0, 1}, 2},
		{"overlap of third and fourth", 380, 170, []int{2, 3}, 2},
		{"outside all", 20, 20, nil, 0},
		{"just past first edge", 150.5, 120, nil, 0},
	}
	for _, tc := range cases {
		s := DefaultShapes()
		if n := s.ToggleAt(tc.x, tc.y); n != tc.toggled {
			t.Errorf("%s: toggled %d, want %d", tc.name, n, tc.toggled)
		}
		if got := selectedIndexes(s); !equalInts(got, tc.want) {
			t.Errorf("%s: selected %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestShapesIndexesAt(t *testing.T) {
	s := DefaultShapes()
	if got := s.IndexesAt(380, 170); !equalInts(got, []int{2, 3}) {
		t.Fatalf("IndexesAt overlap = %v, want [2 3]", got)
	}
	if got := s.IndexesAt(20, 20); len(got) != 0 {
		t.Fatalf("IndexesAt outside = %v", got)
	}
	if sel := selectedIndexes(s); len(sel) != 0 {
		t.Fatalf("IndexesAt changed selection: %v", sel)
	}
}

func TestShapesToggleTwiceRestores(t *testing.T) {
	s := DefaultShapes()
	s.ToggleAt(125, 125)
	s.ToggleAt(125, 125)
	if sel := selectedIndexes(s); len(sel) != 0 {
		t.Fatalf("selected after double toggle: %v", sel)
	}
}

type drawCall struct {
	op    string
	color color.RGBA
	rect  gfx.Rect
}

type recordingCanvas struct {
	color color.RGBA
	calls []drawCall
}

func (c *recordingCanvas) Size() (int, int)            { return 700, 500 }
func (c *recordingCanvas) SetDrawColor(col color.RGBA) { c.color = col }
func (c *recordingCanvas) Clear()                      {}
func (c *recordingCanvas) FillRect(r gfx.Rect) {
	c.calls = append(c.calls, drawCall{"fill", c.color, r})
}
func (c *recordingCanvas) DrawRect(r gfx.Rect) {
	c.calls = append(c.calls, drawCall{"outline", c.color, r})
}
func (c *recordingCanvas) DrawLine(x1, y1, x2, y2 float32) {}
func (c *recordingCanvas) Present()                        {}

func TestShapesDraw_FillThenOutline(t *testing.T) {
	s := DefaultShapes()
	s.ToggleAt(125, 125)
	c := &recordingCanvas{}
	s.Draw(c)

	if len(c.calls) != 10 {
		t.Fatalf("calls = %d, want 10", len(c.calls))
	}
	for i := 0; i < s.Len(); i++ {
		fill, outline := c.calls[2*i], c.calls[2*i+1]
		item := s.At(i)
		wantFill := item.Color
		if item.Selected {
			wantFill = selectedFill
		}
		if fill.op != "fill" || fill.color != wantFill || fill.rect != item.Rect {
			t.Errorf("rect %d fill = %+v", i, fill)
		}
		if outline.op != "outline" || outline.color != outlineColor || outline.rect != item.Rect {
			t.Errorf("rect %d outline = %+v", i, outline)
		}
	}
}
