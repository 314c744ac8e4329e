// Package stepper implements a vertical, collapsible multi-step wizard
// control for cell-based terminal surfaces.
//
// A Stepper owns an ordered list of steps, each drawn as a numbered icon with
// a title and subtitle. At most one step is expanded at a time to reveal its
// content widget and a continue control. The host drives three passes in
// order: Measure, Layout, Draw. Transitions never touch geometry directly;
// they ask the Host for a new layout or draw pass instead.
package stepper

import (
	"errors"
	"fmt"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/vstepper/internal/logger"
)

// noStep is the expanded index when every step is collapsed.
const noStep = -1

// ErrAlreadyAttached is returned when Attach is called twice.
var ErrAlreadyAttached = errors.New("stepper already attached")

// Host receives redraw requests from the stepper.
type Host interface {
	// RequestLayout asks for a new measure, layout and draw pass.
	RequestLayout()
	// Invalidate asks for a new draw pass.
	Invalidate()
}

type nopHost struct{}

func (nopHost) RequestLayout() {}
func (nopHost) Invalidate() {}

// Option configures a Stepper.
type Option func(*Stepper)

// WithHost sets the receiver of layout and redraw requests.
func WithHost(h Host) Option {
	return func(s *Stepper) {
		if h != nil {
			s.host = h
		}
	}
}

// WithOuterPadding sets the padding kept around the steps. Touch targets
// bleed into it.
func WithOuterPadding(horizontal, vertical int) Option {
	return func(s *Stepper) {
		s.outerH = horizontal
		s.outerV = vertical
	}
}

// WithInsets sets the stepper's own padding, applied outside the outer
// padding.
func WithInsets(m Margins) Option {
	return func(s *Stepper) {
		s.insets = m
	}
}

// WithMinimumSize sets the smallest size the stepper reports.
func WithMinimumSize(width, height int) Option {
	return func(s *Stepper) {
		s.minSize = Size{Width: width, Height: height}
	}
}

// WithAutoExpandFirst expands the first step on attach when no restored
// state marks a step active.
func WithAutoExpandFirst(expand bool) Option {
	return func(s *Stepper) {
		s.autoExpandFirst = expand
	}
}

// WithValidator installs a validator at construction.
func WithValidator(v Validator) Option {
	return func(s *Stepper) {
		s.SetStepValidator(v)
	}
}

// WithContinueFactory replaces the default continue control.
func WithContinueFactory(f func(i int) Widget) Option {
	return func(s *Stepper) {
		if f != nil {
			s.newContinue = f
		}
	}
}

// WithOnStepCompleted registers a callback invoked after a step passes
// validation and the stepper advanced.
func WithOnStepCompleted(f func(i int, r Result)) Option {
	return func(s *Stepper) {
		s.onStepCompleted = f
	}
}

// WithOnFinish registers a callback invoked when the last step passes
// validation.
func WithOnFinish(f func()) Option {
	return func(s *Stepper) {
		s.onFinish = f
	}
}

// Stepper is the wizard container.
type Stepper struct {
	common    *Common
	steps     []*Step
	expanded  int
	validator Validator
	host      Host

	outerH, outerV  int
	insets          Margins
	minSize         Size
	autoExpandFirst bool
	attached        bool

	newContinue     func(i int) Widget
	onStepCompleted func(i int, r Result)
	onFinish        func()

	origin uv.Position
}

// New creates an empty stepper. Steps are added with Attach.
func New(common *Common, opts ...Option) *Stepper {
	s := &Stepper{
		common:    common,
		expanded:  noStep,
		validator: AlwaysValid{},
		host:      nopHost{},
		outerH:    1,
		outerV:    1,
	}
	s.newContinue = continueButtonFactory(common)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Attach creates one step per child in order. saved, when non-nil, holds one
// snapshot per child from a previous SaveState; snapshots must match the
// children's count and order. A snapshot's active flag wins over the
// auto-expand policy; if several are active the first one is expanded.
func (s *Stepper) Attach(children []Child, saved []State) error {
	if s.attached {
		return ErrAlreadyAttached
	}

	steps := make([]*Step, 0, len(children))
	expanded := noStep
	for i, child := range children {
		var initial *State
		if i < len(saved) {
			initial = &saved[i]
		}
		step, err := NewStep(child, s.newContinue(i), s.common, initial)
		if err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		if initial != nil && initial.Active && expanded == noStep {
			expanded = i
		}
		steps = append(steps, step)
	}

	if expanded == noStep && s.autoExpandFirst && len(steps) > 0 {
		expanded = 0
	}

	s.steps = steps
	s.expanded = expanded
	s.attached = true
	for i := range s.steps {
		s.syncVisibility(i)
	}

	logger.Debug("Stepper attached with %d steps (expanded=%d, restored=%t)", len(steps), expanded, saved != nil)
	s.host.RequestLayout()
	return nil
}

// Steps returns the steps in order.
func (s *Stepper) Steps() []*Step {
	return s.steps
}

// Len returns the number of steps.
func (s *Stepper) Len() int {
	return len(s.steps)
}

// Common returns the shared step configuration.
func (s *Stepper) Common() *Common {
	return s.common
}

// Expanded returns the index of the expanded step and whether one is.
func (s *Stepper) Expanded() (int, bool) {
	return s.expanded, s.expanded != noStep
}

// IsActive reports whether step i is expanded.
func (s *Stepper) IsActive(i int) bool {
	return s.expanded != noStep && s.expanded == i
}

// Status returns the display status of step i.
func (s *Stepper) Status(i int) Status {
	switch {
	case s.IsActive(i):
		return StatusActive
	case s.steps[i].IsComplete():
		return StatusComplete
	default:
		return StatusInactive
	}
}

// SetStepValidator installs v. A nil v restores the default.
func (s *Stepper) SetStepValidator(v Validator) {
	if v == nil {
		v = AlwaysValid{}
	}
	s.validator = v
}

// RemoveStepValidator restores the default always-valid validator.
func (s *Stepper) RemoveStepValidator() {
	s.validator = AlwaysValid{}
}

// SetStepSummary sets the summary of the step whose content widget has the
// given ID and requests one redraw. It returns false, and requests nothing,
// when no step matches.
func (s *Stepper) SetStepSummary(contentID, summary string) bool {
	for _, step := range s.steps {
		if step.content.ID() == contentID {
			step.SetSummary(summary)
			s.host.Invalidate()
			return true
		}
	}
	return false
}

// toggled is the expansion transition for step i: an expanded step
// collapses, any other step becomes the expanded one.
func toggled(expanded, i int) int {
	if expanded == i {
		return noStep
	}
	return i
}

// ToggleStepExpandedState expands or collapses step i and syncs the
// visibility of its content and continue control. Completion and errors are
// untouched. Because only one step can be expanded, expanding i collapses
// whichever step was open.
func (s *Stepper) ToggleStepExpandedState(i int) {
	prev := s.expanded
	s.expanded = toggled(s.expanded, i)
	if prev != noStep && prev != i {
		s.syncVisibility(prev)
	}
	s.syncVisibility(i)
	logger.Debug("Step %d toggled (expanded %d -> %d)", i+1, prev, s.expanded)
	s.host.RequestLayout()
}

// CollapseOtherSteps collapses the expanded step unless it is except.
func (s *Stepper) CollapseOtherSteps(except int) {
	if s.expanded != noStep && s.expanded != except {
		s.ToggleStepExpandedState(s.expanded)
	}
}

// Tap handles a tap on step i's decorator: tapping the open step closes it,
// tapping a closed step opens it and closes the previous one.
func (s *Stepper) Tap(i int) {
	s.CollapseOtherSteps(i)
	s.ToggleStepExpandedState(i)
}

// AttemptStepCompletion validates step i. An invalid step gets the error
// and stays as it is. A valid step has its error cleared, is marked
// complete on ValidComplete, collapses, and the next step expands.
func (s *Stepper) AttemptStepCompletion(i int) Result {
	step := s.steps[i]
	res := s.validator.Validate(step.content, step.optional)

	if !res.IsValid() {
		logger.Debug("Step %d invalid: %s", i+1, res.Message())
		step.SetError(res.Message())
		s.host.RequestLayout()
		return res
	}

	step.ClearError()
	if res.Kind() == ValidComplete {
		step.MarkComplete()
	}
	s.ToggleStepExpandedState(i)

	if s.onStepCompleted != nil {
		s.onStepCompleted(i, res)
	}

	if next := i + 1; next < len(s.steps) {
		s.ToggleStepExpandedState(next)
		return res
	}

	logger.Info("Last step passed validation (%s)", res.Kind())
	if s.onFinish != nil {
		s.onFinish()
	}
	return res
}

// SaveState snapshots every step in order.
func (s *Stepper) SaveState() []State {
	states := make([]State, len(s.steps))
	for i, step := range s.steps {
		states[i] = step.State(s.IsActive(i))
	}
	return states
}

func (s *Stepper) syncVisibility(i int) {
	if i < 0 || i >= len(s.steps) {
		return
	}
	visible := s.IsActive(i)
	s.steps[i].content.SetVisible(visible)
	s.steps[i].cont.SetVisible(visible)
}

func (s *Stepper) horizontalPadding() int {
	return s.outerH + s.outerH + s.insets.Left + s.insets.Right
}

func (s *Stepper) verticalPadding() int {
	return s.outerV + s.outerV + s.insets.Top + s.insets.Bottom
}
