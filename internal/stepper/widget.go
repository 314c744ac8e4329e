package stepper

import (
	uv "github.com/charmbracelet/ultraviolet"
)

// Size is a width and height in cells.
type Size struct {
	Width  int
	Height int
}

// Margins is the space a widget keeps around itself.
type Margins struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// Horizontal returns Left + Right.
func (m Margins) Horizontal() int {
	return m.Left + m.Right
}

// Vertical returns Top + Bottom.
func (m Margins) Vertical() int {
	return m.Top + m.Bottom
}

// LayoutParams is a widget's requested size and margins.
type LayoutParams struct {
	Width   Dimension
	Height  Dimension
	Margins Margins
}

// WrapParams returns params that wrap content in both directions.
func WrapParams() LayoutParams {
	return LayoutParams{Width: WrapContent, Height: WrapContent}
}

// Widget is a host-owned view placed by the stepper: step content and
// continue controls. The stepper measures it, positions it and toggles its
// visibility; the widget's intrinsic size is its own business.
type Widget interface {
	// ID identifies the widget. Steps are looked up by their content ID.
	ID() string
	LayoutParams() LayoutParams
	// Measure records and returns the widget's size under the constraints.
	Measure(width, height Constraint) Size
	// MeasuredSize returns the result of the last Measure.
	MeasuredSize() Size
	SetBounds(r uv.Rectangle)
	Bounds() uv.Rectangle
	// SetVisible shows or hides the widget. Hidden widgets are not drawn
	// or hit-tested but keep their last geometry.
	SetVisible(visible bool)
	Visible() bool
	Draw(scr uv.Screen, area uv.Rectangle)
}

// Clickable widgets receive clicks that land inside their bounds.
type Clickable interface {
	HandleClick(x, y int) bool
}

// Valuer exposes the current value of a content widget.
type Valuer interface {
	Value() string
}

// BaseWidget carries the bookkeeping every Widget needs. Embed it and
// implement Measure and Draw.
type BaseWidget struct {
	id       string
	params   LayoutParams
	measured Size
	bounds   uv.Rectangle
	visible  bool
}

// NewBaseWidget creates a visible base widget.
func NewBaseWidget(id string, params LayoutParams) BaseWidget {
	return BaseWidget{id: id, params: params, visible: true}
}

func (b *BaseWidget) ID() string { return b.id }
func (b *BaseWidget) LayoutParams() LayoutParams { return b.params }
func (b *BaseWidget) SetLayoutParams(lp LayoutParams) { b.params = lp }
func (b *BaseWidget) MeasuredSize() Size { return b.measured }
func (b *BaseWidget) SetBounds(r uv.Rectangle) { b.bounds = r }
func (b *BaseWidget) Bounds() uv.Rectangle { return b.bounds }
func (b *BaseWidget) SetVisible(visible bool) { b.visible = visible }
func (b *BaseWidget) Visible() bool { return b.visible }

// SetMeasured resolves a desired size against the constraints and records
// it. Widgets call it at the end of Measure.
func (b *BaseWidget) SetMeasured(desired Size, width, height Constraint) Size {
	if b.params.Width >= 0 {
		desired.Width = int(b.params.Width)
	}
	if b.params.Height >= 0 {
		desired.Height = int(b.params.Height)
	}
	b.measured = Size{
		Width:  ResolveSize(desired.Width, width),
		Height: ResolveSize(desired.Height, height),
	}
	return b.measured
}

// contains reports whether (x, y) lies inside r.
func contains(r uv.Rectangle, x, y int) bool {
	return x >= r.Min.X && x < r.Max.X && y >= r.Min.Y && y < r.Max.Y
}
