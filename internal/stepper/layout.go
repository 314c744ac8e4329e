package stepper

import (
	uv "github.com/charmbracelet/ultraviolet"
)

// Layout positions touch targets and the expanded step's widgets, with the
// stepper's top-left corner at origin. m must come from Measure with no
// transition in between.
func (s *Stepper) Layout(m *Measurement, origin uv.Position) {
	s.origin = origin
	if len(s.steps) == 0 {
		return
	}

	rect := s.contentRect(m)
	for i, step := range s.steps {
		sm := m.Steps[i]
		step.origin = rect.Min
		step.touch = s.touchTargetRect(rect, sm)

		if sm.Active {
			s.layoutActiveWidgets(rect, step, sm)
		}
		rect.Min.Y += sm.YDistanceToNextStep()
	}
}

// contentRect is the stepper's area inside insets and outer padding.
func (s *Stepper) contentRect(m *Measurement) uv.Rectangle {
	return uv.Rectangle{
		Min: uv.Position{
			X: s.origin.X + s.insets.Left + s.outerH,
			Y: s.origin.Y + s.insets.Top + s.outerV,
		},
		Max: uv.Position{
			X: s.origin.X + m.Width - s.insets.Right - s.outerH,
			Y: s.origin.Y + m.Height - s.insets.Bottom - s.outerV,
		},
	}
}

// touchTargetRect spans the full width and bleeds into the outer padding so
// taps just outside the inset still land, but never past the padding.
func (s *Stepper) touchTargetRect(rect uv.Rectangle, sm StepMetrics) uv.Rectangle {
	left := rect.Min.X - s.outerH
	top := rect.Min.Y - s.outerV
	right := rect.Max.X + s.outerH

	bottomMax := rect.Max.Y + s.outerV
	bottom := min(top+sm.TouchSize.Height, bottomMax)

	return uv.Rectangle{
		Min: uv.Position{X: left, Y: top},
		Max: uv.Position{X: right, Y: max(bottom, top)},
	}
}

// layoutActiveWidgets places content below the text block and right of the
// icon column, then the continue control below the content.
func (s *Stepper) layoutActiveWidgets(rect uv.Rectangle, step *Step, sm StepMetrics) {
	r := rect
	r.Min.X += sm.IconColumn
	r.Min.Y += sm.YDistanceToTextBottom()

	layoutActiveWidget(r, step.content, sm.ContentSize)

	contentMargins := step.content.LayoutParams().Margins
	r.Min.Y += contentMargins.Top + step.content.Bounds().Dy() + contentMargins.Bottom
	layoutActiveWidget(r, step.cont, sm.ContinueSize)
}

// layoutActiveWidget places w at the top-left of r after its margins,
// clipped so it never leaves r.
func layoutActiveWidget(r uv.Rectangle, w Widget, measured Size) {
	margins := w.LayoutParams().Margins

	left := r.Min.X + margins.Left
	top := r.Min.Y + margins.Top

	right := min(left+measured.Width, r.Max.X-margins.Right)
	bottom := min(top+measured.Height, r.Max.Y-margins.Bottom)

	w.SetBounds(uv.Rectangle{
		Min: uv.Position{X: left, Y: top},
		Max: uv.Position{X: max(right, left), Y: max(bottom, top)},
	})
}

// Bounds returns the area the stepper occupied at the last layout.
func (s *Stepper) Bounds(m *Measurement) uv.Rectangle {
	return uv.Rectangle{
		Min: s.origin,
		Max: uv.Position{X: s.origin.X + m.Width, Y: s.origin.Y + m.Height},
	}
}
