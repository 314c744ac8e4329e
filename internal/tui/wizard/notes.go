package wizard

import (
	"os"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/editor"
	"github.com/mark3labs/vstepper/internal/logger"
	"github.com/mark3labs/vstepper/internal/stepper"
	"github.com/mark3labs/vstepper/internal/tui/theme"
)

// Notes viewport bounds in rows.
const (
	notesMinHeight = 3
	notesMaxHeight = 8
	notesMaxWidth  = 72
)

// NotesEditedMsg carries the content saved from the external editor.
type NotesEditedMsg struct {
	ID      string
	Content string
}

// NotesContent is free text shown in a scrollable viewport and edited in
// the user's $EDITOR.
type NotesContent struct {
	stepper.BaseWidget
	viewport viewport.Model
	content  string
	tmpFile  string
	edit     key.Binding
}

// NewNotesContent creates a notes page with initial content.
func NewNotesContent(id, content string) *NotesContent {
	vp := viewport.New(
		viewport.WithWidth(notesMaxWidth),
		viewport.WithHeight(notesMinHeight),
	)
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	c := &NotesContent{
		BaseWidget: stepper.NewBaseWidget(id, stepper.WrapParams()),
		viewport:   vp,
		edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
	}
	c.setContent(content)
	return c
}

func (c *NotesContent) setContent(content string) {
	c.content = strings.TrimRight(content, "\n")
	if c.content == "" {
		placeholder := theme.Current().S().InputPlaceholder.Render("No notes yet. Press e to edit.")
		c.viewport.SetContent(placeholder)
	} else {
		c.viewport.SetContent(c.content)
	}
	c.viewport.GotoTop()
}

// Measure sizes the viewport to the content, between notesMinHeight and
// notesMaxHeight rows.
func (c *NotesContent) Measure(width, height stepper.Constraint) stepper.Size {
	rows := strings.Count(c.content, "\n") + 1
	desired := stepper.Size{
		Width:  min(availableWidth(width, notesMaxWidth), notesMaxWidth),
		Height: min(max(rows, notesMinHeight), notesMaxHeight),
	}
	size := c.SetMeasured(desired, width, height)
	c.viewport.SetWidth(size.Width)
	c.viewport.SetHeight(size.Height)
	return size
}

func (c *NotesContent) Draw(scr uv.Screen, area uv.Rectangle) {
	if area.Dx() <= 0 || area.Dy() <= 0 {
		return
	}
	uv.NewStyledString(c.viewport.View()).Draw(scr, area)
}

func (c *NotesContent) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if key.Matches(msg, c.edit) {
			return c.openEditor()
		}
	case NotesEditedMsg:
		if msg.ID != c.ID() {
			return nil
		}
		c.setContent(msg.Content)
		if c.tmpFile != "" {
			_ = os.Remove(c.tmpFile)
			c.tmpFile = ""
		}
		return nil
	}

	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	return cmd
}

// openEditor launches the user's $EDITOR on a temp copy of the notes.
func (c *NotesContent) openEditor() tea.Cmd {
	tmpfile, err := os.CreateTemp("", "vstepper_notes_*.md")
	if err != nil {
		logger.Warn("create notes temp file: %v", err)
		return nil
	}
	if _, err := tmpfile.WriteString(c.content); err != nil {
		_ = tmpfile.Close()
		_ = os.Remove(tmpfile.Name())
		return nil
	}
	_ = tmpfile.Close()
	c.tmpFile = tmpfile.Name()

	cmd, err := editor.Command("vstepper", tmpfile.Name())
	if err != nil {
		logger.Warn("no editor available: %v", err)
		_ = os.Remove(tmpfile.Name())
		c.tmpFile = ""
		return nil
	}

	id, path := c.ID(), tmpfile.Name()
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		if err != nil {
			logger.Warn("editor exited: %v", err)
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		return NotesEditedMsg{ID: id, Content: string(content)}
	})
}

func (c *NotesContent) Focus() tea.Cmd { return nil }
func (c *NotesContent) Blur() {}

// Value returns the notes text.
func (c *NotesContent) Value() string { return c.content }

func (c *NotesContent) Summary() string { return summarize(c.content) }

func (c *NotesContent) Bindings() []key.Binding { return []key.Binding{c.edit} }

// SetValue replaces the notes text.
func (c *NotesContent) SetValue(v string) { c.setContent(v) }
