package wizard

import (
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/vstepper/internal/config"
	"github.com/mark3labs/vstepper/internal/stepper"
	"github.com/mark3labs/vstepper/internal/tui/theme"
)

// inputMaxWidth caps single-line inputs on wide terminals.
const inputMaxWidth = 60

// InputContent is a single-line text field.
type InputContent struct {
	stepper.BaseWidget
	input textinput.Model
}

// NewInputContent creates a text field with the step's placeholder and
// any saved body as its initial value.
func NewInputContent(id string, sc config.StepConfig) *InputContent {
	input := textinput.New()
	input.Placeholder = sc.Placeholder
	input.Prompt = ""

	t := theme.Current()
	s := t.S()
	input.SetStyles(textinput.Styles{
		Focused: textinput.StyleState{
			Text:        s.InputText,
			Placeholder: s.InputPlaceholder,
			Prompt:      s.InputPlaceholder,
		},
		Blurred: textinput.StyleState{
			Text:        s.InputPlaceholder,
			Placeholder: s.InputPlaceholder,
			Prompt:      s.InputPlaceholder,
		},
		Cursor: textinput.CursorStyle{
			Color: theme.HexToColor(t.Primary),
			Shape: tea.CursorBar,
			Blink: true,
		},
	})
	input.SetWidth(inputMaxWidth)
	input.SetValue(sc.Body)

	lp := stepper.LayoutParams{Width: stepper.WrapContent, Height: 1}
	return &InputContent{
		BaseWidget: stepper.NewBaseWidget(id, lp),
		input:      input,
	}
}

// Measure fills the available width up to inputMaxWidth.
func (c *InputContent) Measure(width, height stepper.Constraint) stepper.Size {
	w := min(availableWidth(width, inputMaxWidth), inputMaxWidth)
	size := c.SetMeasured(stepper.Size{Width: w, Height: 1}, width, height)
	// Keep a cell for the cursor.
	c.input.SetWidth(max(size.Width-1, 1))
	return size
}

func (c *InputContent) Draw(scr uv.Screen, area uv.Rectangle) {
	if area.Dx() <= 0 || area.Dy() <= 0 {
		return
	}
	view := lipgloss.NewStyle().MaxWidth(area.Dx()).Render(c.input.View())
	uv.NewStyledString(view).Draw(scr, area)
}

// HandleClick moves the cursor to the end of the value.
func (c *InputContent) HandleClick(_, _ int) bool {
	c.input.CursorEnd()
	return true
}

func (c *InputContent) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

func (c *InputContent) Focus() tea.Cmd { return c.input.Focus() }
func (c *InputContent) Blur() { c.input.Blur() }

// Value returns the typed text.
func (c *InputContent) Value() string { return c.input.Value() }

// SetValue replaces the typed text.
func (c *InputContent) SetValue(v string) { c.input.SetValue(v) }

func (c *InputContent) Summary() string { return summarize(c.input.Value()) }

func (c *InputContent) Bindings() []key.Binding { return nil }
