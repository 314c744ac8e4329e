package stepper

import (
	"strconv"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
)

// Draw paints every step's icon, text and connector, then the expanded
// step's visible widgets. Layout must have run with the same m.
func (s *Stepper) Draw(scr uv.Screen, m *Measurement) {
	x := s.origin.X + s.insets.Left + s.outerH
	y := s.origin.Y + s.insets.Top + s.outerV

	dyToNextStep := 0
	for i, step := range s.steps {
		y += dyToNextStep
		sm := m.Steps[i]
		stepNumber := i + 1

		s.drawIcon(scr, step, sm, s.Status(i), stepNumber, x, y)
		s.drawText(scr, step, sm, x, y)

		if stepNumber < len(s.steps) {
			dyToNextStep = sm.YDistanceToNextStep()
			s.drawConnector(scr, sm, x, y, dyToNextStep)
		}

		if sm.Active {
			drawWidget(scr, step.content)
			drawWidget(scr, step.cont)
		}
	}
}

func (s *Stepper) drawIcon(scr uv.Screen, step *Step, sm StepMetrics, status Status, stepNumber, x, y int) {
	area := uv.Rect(x, y, sm.IconWidth, sm.IconHeight)
	if step.HasError() {
		s.drawIconError(scr, area)
		return
	}
	fillArea(scr, area, s.common.IconStyle(status))
	s.drawIconText(scr, area, status, stepNumber)
}

// drawIconError draws the error glyph in place of the icon.
func (s *Stepper) drawIconError(scr uv.Screen, area uv.Rectangle) {
	style := s.common.iconError.Align(lipgloss.Center, lipgloss.Center)
	drawStyled(scr, area, style, s.common.ErrorGlyph)
}

// drawIconText centers the step number on the icon.
func (s *Stepper) drawIconText(scr uv.Screen, area uv.Rectangle, status Status, stepNumber int) {
	text := strconv.Itoa(stepNumber)
	style := s.common.IconTextStyle(status)

	cx, cy := CenterStart(text, area.Dx(), area.Dy(), style)
	sz := textSize(style, text)
	cx, cy = max(cx, 0), max(cy, 0)
	w := min(sz.Width, area.Dx()-cx)
	h := min(sz.Height, area.Dy()-cy)
	drawText(scr, uv.Rect(area.Min.X+cx, area.Min.Y+cy, w, h), style.Render(text))
}

func (s *Stepper) drawText(scr uv.Screen, step *Step, sm StepMetrics, x, y int) {
	tx := x + sm.IconColumn
	active := sm.Active

	titleStyle := s.common.TitleStyle(active)
	titleArea := uv.Rect(tx, y+sm.TitleBaseline, sm.TitleSize.Width, sm.TitleSize.Height)
	drawText(scr, titleArea, titleStyle.Render(step.title))

	if sm.Subtitle == "" {
		return
	}
	ty := y + sm.TitleBottom
	subtitleStyle := s.common.SubtitleStyle(sm.hasError)
	subtitleArea := uv.Rect(tx, ty+sm.SubtitleBaseline, sm.SubtitleSize.Width, sm.SubtitleSize.Height)
	drawText(scr, subtitleArea, subtitleStyle.Render(sm.Subtitle))
}

// drawConnector draws the vertical line under the icon, from the icon's
// bottom edge to the next icon's center.
func (s *Stepper) drawConnector(scr uv.Screen, sm StepMetrics, x, y, dyToNextStep int) {
	glyph := s.common.ConnectorGlyph
	width := lipgloss.Width(glyph)
	cx := x + (sm.IconWidth-width)/2

	startY := y + s.common.ConnectorStartY()
	stopY := y + s.common.ConnectorStopY(dyToNextStep)
	drawVerticalLine(scr, uv.Rect(cx, startY, width, stopY-startY), s.common.connector, glyph)
}

func drawWidget(scr uv.Screen, w Widget) {
	if !w.Visible() {
		return
	}
	b := w.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return
	}
	w.Draw(scr, b)
}

// drawText renders pre-styled text at a position.
func drawText(scr uv.Screen, area uv.Rectangle, text string) {
	if area.Dx() <= 0 || area.Dy() <= 0 {
		return
	}
	uv.NewStyledString(text).Draw(scr, area)
}

// drawStyled renders lipgloss-styled content sized to the area.
func drawStyled(scr uv.Screen, area uv.Rectangle, style lipgloss.Style, text string) {
	if area.Dx() <= 0 || area.Dy() <= 0 {
		return
	}
	content := style.Width(area.Dx()).Height(area.Dy()).Render(text)
	uv.NewStyledString(content).Draw(scr, area)
}

// fillArea paints an area with a styled background.
func fillArea(scr uv.Screen, area uv.Rectangle, style lipgloss.Style) {
	drawStyled(scr, area, style, "")
}

// drawVerticalLine repeats glyph down the area one row at a time.
func drawVerticalLine(scr uv.Screen, area uv.Rectangle, style lipgloss.Style, glyph string) {
	line := style.Render(glyph)
	for i := 0; i < area.Dy(); i++ {
		row := uv.Rectangle{
			Min: uv.Position{X: area.Min.X, Y: area.Min.Y + i},
			Max: uv.Position{X: area.Max.X, Y: area.Min.Y + i + 1},
		}
		uv.NewStyledString(line).Draw(scr, row)
	}
}
