package wizard

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/glamour/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/vstepper/internal/logger"
	"github.com/mark3labs/vstepper/internal/stepper"
)

// markdownMaxWidth is the widest wrap used for markdown pages.
const markdownMaxWidth = 80

// MarkdownContent is a read-only markdown page rendered with glamour.
type MarkdownContent struct {
	stepper.BaseWidget
	body string

	// Rendered output for renderedWidth.
	rendered      []string
	renderedWidth int
}

// NewMarkdownContent creates a page for body.
func NewMarkdownContent(id, body string) *MarkdownContent {
	return &MarkdownContent{
		BaseWidget: stepper.NewBaseWidget(id, stepper.WrapParams()),
		body:       body,
	}
}

func (c *MarkdownContent) render(width int) []string {
	if width == c.renderedWidth && c.rendered != nil {
		return c.rendered
	}

	out := c.body
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		out, err = r.Render(c.body)
	}
	if err != nil {
		logger.Warn("markdown render failed for %s: %v", c.ID(), err)
		out = c.body
	}

	// Glamour pads the document with blank lines.
	out = strings.Trim(out, "\n")
	c.rendered = strings.Split(out, "\n")
	c.renderedWidth = width
	return c.rendered
}

// Measure wraps the page to the available width and reports its extent.
func (c *MarkdownContent) Measure(width, height stepper.Constraint) stepper.Size {
	wrap := min(availableWidth(width, markdownMaxWidth), markdownMaxWidth)
	lines := c.render(max(wrap, 1))

	desired := stepper.Size{Height: len(lines)}
	for _, line := range lines {
		desired.Width = max(desired.Width, lipgloss.Width(line))
	}
	return c.SetMeasured(desired, width, height)
}

// Draw paints as many lines as fit.
func (c *MarkdownContent) Draw(scr uv.Screen, area uv.Rectangle) {
	lines := c.rendered
	if len(lines) > area.Dy() {
		lines = lines[:max(area.Dy(), 0)]
	}
	for i, line := range lines {
		row := uv.Rect(area.Min.X, area.Min.Y+i, area.Dx(), 1)
		uv.NewStyledString(line).Draw(scr, row)
	}
}

func (c *MarkdownContent) Update(tea.Msg) tea.Cmd { return nil }
func (c *MarkdownContent) Focus() tea.Cmd { return nil }
func (c *MarkdownContent) Blur() {}

// Summary marks the page as read.
func (c *MarkdownContent) Summary() string { return "Read" }

func (c *MarkdownContent) Bindings() []key.Binding { return nil }
