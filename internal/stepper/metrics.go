package stepper

// StepMetrics is the geometry of one step computed by a measurement pass.
// Rows are relative to the step's top.
type StepMetrics struct {
	// Active records whether the step was expanded when measured.
	Active bool

	DecoratorHeight int
	DecoratorWidth  int
	IconWidth       int
	IconHeight      int
	// IconColumn is the icon width plus the icon/text spacing.
	IconColumn int

	TitleSize     Size
	TitleBaseline int
	TitleBottom   int

	Subtitle         string
	SubtitleSize     Size
	SubtitleBaseline int // relative to TitleBottom

	ContentSize  Size
	ContinueSize Size
	// ActiveHeight is content plus continue control, margins included.
	// Zero unless Active.
	ActiveHeight int

	BottomMargin int
	TouchSize    Size

	hasError bool
}

// YDistanceToNextStep is the distance from this step's top to the next's.
func (m StepMetrics) YDistanceToNextStep() int {
	d := m.DecoratorHeight + m.BottomMargin
	if m.Active {
		d += m.ActiveHeight
	}
	return d
}

// YDistanceToTextBottom is the distance from the step's top to the bottom
// of its title/subtitle block. Active content starts there.
func (m StepMetrics) YDistanceToTextBottom() int {
	d := m.TitleBottom
	if m.Subtitle != "" {
		d += m.SubtitleBaseline + m.SubtitleSize.Height
	}
	return d
}

// TouchHeight is the height of the step's touch target: decorator plus the
// margin below it.
func (m StepMetrics) TouchHeight() int {
	return m.DecoratorHeight + m.BottomMargin
}

// Measurement is the output of Stepper.Measure. Layout and Draw take it as
// input, so they cannot run against geometry that was never measured.
type Measurement struct {
	Width  int
	Height int
	Steps  []StepMetrics
}

// Size returns the resolved size of the stepper.
func (m *Measurement) Size() Size {
	return Size{Width: m.Width, Height: m.Height}
}
