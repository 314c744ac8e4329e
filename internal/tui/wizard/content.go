package wizard

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/mark3labs/vstepper/internal/config"
	"github.com/mark3labs/vstepper/internal/stepper"
)

// summaryWidth caps the summary shown under a completed step's title.
const summaryWidth = 40

// Content is a step body hosted by the wizard. The stepper sees it as a
// plain Widget; the wizard forwards input to it while its step is
// expanded.
type Content interface {
	stepper.Widget
	Update(msg tea.Msg) tea.Cmd
	// Focus is called when the step expands, Blur when it collapses.
	Focus() tea.Cmd
	Blur()
	// Summary is shown under the title once the step is completed.
	// Empty keeps the declared summary.
	Summary() string
	// Bindings are extra hints shown while the step is expanded.
	Bindings() []key.Binding
}

// NewContent builds the content for step i of the given kind.
func NewContent(i int, sc config.StepConfig) (Content, error) {
	id := fmt.Sprintf("step-%d", i+1)
	switch sc.Kind {
	case config.KindInput, "":
		return NewInputContent(id, sc), nil
	case config.KindMarkdown:
		return NewMarkdownContent(id, sc.Body), nil
	case config.KindNotes:
		return NewNotesContent(id, sc.Body), nil
	default:
		return nil, fmt.Errorf("step %d: unknown kind %q", i+1, sc.Kind)
	}
}

// summarize returns the first non-empty line of s, truncated.
func summarize(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return ansi.Truncate(line, summaryWidth, "…")
		}
	}
	return ""
}

// availableWidth is the width a content widget may fill, or fallback when
// the constraint leaves it open.
func availableWidth(c stepper.Constraint, fallback int) int {
	if c.Mode == stepper.Unspecified {
		return fallback
	}
	return c.Size
}
