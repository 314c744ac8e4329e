package stepper

import (
	"errors"
	"strings"

	uv "github.com/charmbracelet/ultraviolet"
)

// ErrEmptyTitle is returned when a step is declared without a title.
var ErrEmptyTitle = errors.New("step title cannot be empty")

// optionalLabel is shown under the title of optional steps that have no
// summary to show.
const optionalLabel = "Optional"

// Status is the display status of a step. Errors overlay any status.
type Status int

const (
	StatusInactive Status = iota
	StatusActive
	StatusComplete
)

// String returns the string representation of a status
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusComplete:
		return "complete"
	default:
		return "inactive"
	}
}

// State is the persisted snapshot of one step. It carries no geometry.
type State struct {
	Active   bool    `json:"active"`
	Complete bool    `json:"complete"`
	Error    *string `json:"error,omitempty"`
	Summary  *string `json:"summary,omitempty"`
}

// Child declares one step: its content widget and display data.
type Child struct {
	Content  Widget
	Title    string
	Summary  string
	Optional bool
}

// Step is one wizard step. Whether it is expanded is owned by the Stepper;
// the step holds display data, completion and the error overlay.
type Step struct {
	common   *Common
	content  Widget
	cont     Widget
	title    string
	summary  string
	errText  string
	optional bool
	complete bool

	origin uv.Position
	touch  uv.Rectangle
}

// NewStep creates a step. initial, when non-nil, restores a saved snapshot.
func NewStep(child Child, continueControl Widget, common *Common, initial *State) (*Step, error) {
	if strings.TrimSpace(child.Title) == "" {
		return nil, ErrEmptyTitle
	}

	s := &Step{
		common:   common,
		content:  child.Content,
		cont:     continueControl,
		title:    child.Title,
		summary:  child.Summary,
		optional: child.Optional,
	}
	if initial != nil {
		s.restore(*initial)
	}
	return s, nil
}

func (s *Step) Title() string { return s.title }
func (s *Step) Summary() string { return s.summary }
func (s *Step) Error() string { return s.errText }
func (s *Step) HasError() bool { return s.errText != "" }
func (s *Step) IsOptional() bool { return s.optional }
func (s *Step) IsComplete() bool { return s.complete }
func (s *Step) Content() Widget { return s.content }
func (s *Step) ContinueControl() Widget { return s.cont }

// Origin returns the top-left cell of the step's icon at the last layout.
func (s *Step) Origin() uv.Position { return s.origin }

// TouchTarget returns the hit region assigned by the last layout pass.
func (s *Step) TouchTarget() uv.Rectangle { return s.touch }

func (s *Step) SetSummary(summary string) { s.summary = summary }
func (s *Step) MarkComplete() { s.complete = true }
func (s *Step) SetError(msg string) { s.errText = msg }
func (s *Step) ClearError() { s.errText = "" }

// Subtitle returns the line shown under the title: the error if any, else
// the summary while collapsed, else the optional marker.
func (s *Step) Subtitle(active bool) string {
	if s.errText != "" {
		return s.errText
	}
	if !active && s.summary != "" {
		return s.summary
	}
	if s.optional {
		return optionalLabel
	}
	return ""
}

// State snapshots the step for persistence.
func (s *Step) State(active bool) State {
	st := State{Active: active, Complete: s.complete}
	if s.errText != "" {
		msg := s.errText
		st.Error = &msg
	}
	if s.summary != "" {
		summary := s.summary
		st.Summary = &summary
	}
	return st
}

func (s *Step) restore(st State) {
	s.complete = st.Complete
	s.errText = ""
	if st.Error != nil {
		s.errText = *st.Error
	}
	s.summary = ""
	if st.Summary != nil {
		s.summary = *st.Summary
	}
}

// HorizontalUsedSpace is the width an active widget cannot use: the icon
// column plus its own horizontal margins.
func (s *Step) HorizontalUsedSpace(w Widget) int {
	return s.common.DecoratorIconWidth() + w.LayoutParams().Margins.Horizontal()
}

// VerticalUsedSpace is the height of an active widget's own margins.
func (s *Step) VerticalUsedSpace(w Widget) int {
	return w.LayoutParams().Margins.Vertical()
}

// measureDecorator computes the decorator metrics from the text metrics of
// the title and subtitle.
func (s *Step) measureDecorator(active bool) StepMetrics {
	c := s.common
	title := textSize(c.TitleStyle(active), s.title)

	m := StepMetrics{
		Active:     active,
		IconWidth:  c.IconWidth,
		IconHeight: c.IconHeight,
		IconColumn: c.DecoratorIconWidth(),
		TitleSize:  title,
		Subtitle:   s.Subtitle(active),
		hasError:   s.HasError(),
	}

	// Center a short title block on the icon.
	if c.IconHeight > title.Height {
		m.TitleBaseline = (c.IconHeight - title.Height) / 2
	}
	m.TitleBottom = m.TitleBaseline + title.Height

	textHeight := title.Height + c.TitleSubtitleSpacing
	if m.Subtitle != "" {
		m.SubtitleSize = textSize(c.SubtitleStyle(m.hasError), m.Subtitle)
		m.SubtitleBaseline = c.TitleSubtitleSpacing
		textHeight += m.SubtitleSize.Height
	}

	m.DecoratorHeight = max(c.IconHeight, m.TitleBaseline+textHeight)
	m.DecoratorWidth = c.IconWidth + max(title.Width, m.SubtitleSize.Width) + c.IconTextSpacing
	return m
}

// DecoratorWidth is the width of the icon, title and subtitle block.
func (s *Step) DecoratorWidth(active bool) int {
	return s.measureDecorator(active).DecoratorWidth
}
