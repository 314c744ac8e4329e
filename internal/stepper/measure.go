package stepper

// Measure runs the measurement pass under the parent's constraints and
// returns the geometry that Layout and Draw consume.
//
// Decorators are measured first, independent of the constraints. Content
// and continue controls are then measured in order against what remains of
// the parent's space after padding, margins and every row above them.
func (s *Stepper) Measure(width, height Constraint) *Measurement {
	m := &Measurement{Steps: make([]StepMetrics, len(s.steps))}

	s.measureDecorators(m)
	s.measureBottomMargins(m)
	s.measureActiveWidgets(m, width, height)

	w := max(s.calculateWidth(m), s.minSize.Width)
	h := max(s.calculateHeight(m), s.minSize.Height)
	m.Width = ResolveSize(w, width)
	m.Height = ResolveSize(h, height)

	s.measureTouchTargets(m)
	return m
}

func (s *Stepper) measureDecorators(m *Measurement) {
	for i, step := range s.steps {
		m.Steps[i] = step.measureDecorator(s.IsActive(i))
	}
}

// measureBottomMargins reserves the gap before the next step. The last step
// has none.
func (s *Stepper) measureBottomMargins(m *Measurement) {
	for i := 0; i < len(m.Steps)-1; i++ {
		m.Steps[i].BottomMargin = s.common.StepBottomMargin
	}
}

// measureActiveWidgets measures every step's content and continue control so
// widths stay stable across expansion, but only expanded steps add height.
func (s *Stepper) measureActiveWidgets(m *Measurement, width, height Constraint) {
	current := s.verticalPadding()
	for i, step := range s.steps {
		sm := &m.Steps[i]
		current += sm.DecoratorHeight

		sm.ContentSize = s.measureActiveWidget(step, step.content, width, height, current)
		contentHeight := s.activeHeight(sm, step, step.content, sm.ContentSize)
		current += contentHeight

		sm.ContinueSize = s.measureActiveWidget(step, step.cont, width, height, current)
		continueHeight := s.activeHeight(sm, step, step.cont, sm.ContinueSize)
		current += continueHeight

		sm.ActiveHeight = contentHeight + continueHeight
		current += sm.BottomMargin
	}
}

func (s *Stepper) measureActiveWidget(step *Step, w Widget, width, height Constraint, usedHeight int) Size {
	lp := w.LayoutParams()
	usedW := s.horizontalPadding() + step.HorizontalUsedSpace(w)
	usedH := step.VerticalUsedSpace(w) + usedHeight
	return w.Measure(
		ChildConstraint(width, usedW, lp.Width),
		ChildConstraint(height, usedH, lp.Height),
	)
}

func (s *Stepper) activeHeight(sm *StepMetrics, step *Step, w Widget, measured Size) int {
	if !sm.Active {
		return 0
	}
	return measured.Height + step.VerticalUsedSpace(w)
}

func (s *Stepper) calculateWidth(m *Measurement) int {
	return s.horizontalPadding() + s.calculateMaxStepWidth(m)
}

func (s *Stepper) calculateMaxStepWidth(m *Measurement) int {
	width := 0
	for i, step := range s.steps {
		sm := m.Steps[i]
		width = max(width, sm.DecoratorWidth)
		width = max(width, sm.ContentSize.Width+step.HorizontalUsedSpace(step.content))
		width = max(width, sm.ContinueSize.Width+step.HorizontalUsedSpace(step.cont))
	}
	return width
}

func (s *Stepper) calculateHeight(m *Measurement) int {
	height := s.verticalPadding()
	for _, sm := range m.Steps {
		height += sm.DecoratorHeight
		height += sm.ActiveHeight
		height += sm.BottomMargin
	}
	return height
}

// measureTouchTargets sizes each touch target exactly: full resolved width,
// decorator plus bottom margin high.
func (s *Stepper) measureTouchTargets(m *Measurement) {
	for i := range m.Steps {
		m.Steps[i].TouchSize = Size{Width: m.Width, Height: m.Steps[i].TouchHeight()}
	}
}
