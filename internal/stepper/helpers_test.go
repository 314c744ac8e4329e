package stepper

import (
	"fmt"
	"strings"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
)

// fakeWidget is a content widget with a fixed intrinsic size.
type fakeWidget struct {
	BaseWidget
	intrinsic Size
	label     string
	value     string
	clicks    int

	lastWidth  Constraint
	lastHeight Constraint
}

func newFakeWidget(id string, w, h int) *fakeWidget {
	return &fakeWidget{
		BaseWidget: NewBaseWidget(id, WrapParams()),
		intrinsic:  Size{Width: w, Height: h},
		label:      id,
	}
}

func (f *fakeWidget) Measure(width, height Constraint) Size {
	f.lastWidth, f.lastHeight = width, height
	return f.SetMeasured(f.intrinsic, width, height)
}

func (f *fakeWidget) Draw(scr uv.Screen, area uv.Rectangle) {
	uv.NewStyledString(f.label).Draw(scr, area)
}

func (f *fakeWidget) Value() string { return f.value }

func (f *fakeWidget) HandleClick(x, y int) bool {
	f.clicks++
	return true
}

// countingHost records redraw requests.
type countingHost struct {
	layouts     int
	invalidates int
}

func (h *countingHost) RequestLayout() { h.layouts++ }
func (h *countingHost) Invalidate() { h.invalidates++ }

func testCommon() *Common {
	return NewCommon(DefaultPalette())
}

// children builds n steps titled "Step 1".."Step n" with 10x3 content.
func children(n int) []Child {
	out := make([]Child, n)
	for i := range out {
		out[i] = Child{
			Content: newFakeWidget(fmt.Sprintf("content-%d", i+1), 10, 3),
			Title:   fmt.Sprintf("Step %d", i+1),
		}
	}
	return out
}

func newAttached(n int, opts ...Option) *Stepper {
	s := New(testCommon(), opts...)
	if err := s.Attach(children(n), nil); err != nil {
		panic(err)
	}
	return s
}

func activeCount(s *Stepper) int {
	n := 0
	for i := range s.Steps() {
		if s.IsActive(i) {
			n++
		}
	}
	return n
}

// renderPlain draws the stepper into a buffer and returns its rows without
// styling.
func renderPlain(s *Stepper, m *Measurement) []string {
	canvas := uv.NewScreenBuffer(m.Width, m.Height)
	s.Draw(canvas, m)
	plain := strings.ReplaceAll(ansi.Strip(canvas.Render()), "\r", "")
	return strings.Split(plain, "\n")
}
