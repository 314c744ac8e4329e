package stepper

// HitKind says what a click landed on.
type HitKind int

const (
	HitNone HitKind = iota
	HitDecorator
	HitContinue
	HitContent
)

// Hit is the target of a click.
type Hit struct {
	Kind HitKind
	Step int
}

// HitTest finds what lies under (x, y) using the last layout. Hidden
// widgets are skipped; touch targets win over content.
func (s *Stepper) HitTest(x, y int) Hit {
	for i, step := range s.steps {
		if contains(step.touch, x, y) {
			return Hit{Kind: HitDecorator, Step: i}
		}
	}
	if i, ok := s.Expanded(); ok {
		step := s.steps[i]
		if step.cont.Visible() && contains(step.cont.Bounds(), x, y) {
			return Hit{Kind: HitContinue, Step: i}
		}
		if step.content.Visible() && contains(step.content.Bounds(), x, y) {
			return Hit{Kind: HitContent, Step: i}
		}
	}
	return Hit{Kind: HitNone, Step: noStep}
}

// HandleClick routes a click: decorators tap, the continue control attempts
// completion, clickable content gets the click. It reports whether the click
// was consumed.
func (s *Stepper) HandleClick(x, y int) bool {
	hit := s.HitTest(x, y)
	switch hit.Kind {
	case HitDecorator:
		s.Tap(hit.Step)
		return true
	case HitContinue:
		s.AttemptStepCompletion(hit.Step)
		return true
	case HitContent:
		if c, ok := s.steps[hit.Step].content.(Clickable); ok {
			return c.HandleClick(x, y)
		}
	}
	return false
}
