package wizard

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/vstepper/internal/tui/testfixtures"
	"github.com/stretchr/testify/require"
)

func TestDraw_Layout(t *testing.T) {
	m, _ := newTestModel(t)
	rows := testfixtures.RenderLines(testfixtures.TestTermWidth, testfixtures.TestTermHeight, m.Draw)

	require.Contains(t, rows[0], testfixtures.FixedWizardTitle)
	require.Contains(t, rows[1], "───")

	name := testfixtures.RowContaining(rows, "Name")
	require.Equal(t, m.Stepper().Steps()[0].Origin().Y, name)
	require.Equal(t, "›", string([]rune(rows[name])[0]))

	cont := testfixtures.RowContaining(rows, "Continue")
	require.Greater(t, cont, name)
	require.Greater(t, testfixtures.RowContaining(rows, "Read me"), cont)
	require.Greater(t, testfixtures.RowContaining(rows, "Optional"), cont)

	hints := testfixtures.RowContaining(rows, "esc quit")
	require.Equal(t, testfixtures.TestTermHeight-1, hints)
	require.Contains(t, rows[hints], "ctrl+n next")
	require.Contains(t, rows[hints], "↑↓ move")
}

func TestDraw_FocusMarkerFollowsKeys(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(keyDown)

	rows := testfixtures.RenderLines(testfixtures.TestTermWidth, testfixtures.TestTermHeight, m.Draw)
	y := m.Stepper().Steps()[1].Origin().Y
	require.Equal(t, "›", string([]rune(rows[y])[0]))
	require.Contains(t, rows[y], "Read me")
}

func TestDraw_NotesHints(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(keyDown)
	m.Update(keyDown)
	m.Update(keyDown)
	m.Update(keyEnter)

	rows := testfixtures.RenderLines(testfixtures.TestTermWidth, testfixtures.TestTermHeight, m.Draw)
	hints := testfixtures.RowContaining(rows, "esc quit")
	require.Contains(t, rows[hints], "e edit")
	require.GreaterOrEqual(t, testfixtures.RowContaining(rows, "No notes yet"), 0)
}

func TestDraw_Finished(t *testing.T) {
	m, _ := newTestModel(t)
	typeText(m, "ivy")
	for range 4 {
		m.Update(keyEnter)
	}

	rows := testfixtures.RenderLines(testfixtures.TestTermWidth, testfixtures.TestTermHeight, m.Draw)
	require.Equal(t, testfixtures.TestTermHeight-1, testfixtures.RowContaining(rows, "All steps complete"))
	require.Equal(t, -1, testfixtures.RowContaining(rows, "›"))
	require.GreaterOrEqual(t, testfixtures.RowContaining(rows, "ivy"), 0, "summary replaces the value")
}

func TestView(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	require.True(t, view.AltScreen)
	require.Equal(t, tea.MouseModeCellMotion, view.MouseMode)

	m.Update(keyEsc)
	view = m.View()
	require.False(t, view.AltScreen)
}
