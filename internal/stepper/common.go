package stepper

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette holds the configurable colors. IconComplete falls back to
// IconActive when nil.
type Palette struct {
	IconActive   color.Color
	IconInactive color.Color
	IconComplete color.Color

	IconText  color.Color
	Title     color.Color
	Subtitle  color.Color
	Error     color.Color
	Connector color.Color

	// Continue is the style of the continue control.
	Continue lipgloss.Style
}

// DefaultPalette returns the Catppuccin Mocha palette.
func DefaultPalette() Palette {
	return Palette{
		IconActive:   lipgloss.Color("#cba6f7"), // Mauve
		IconInactive: lipgloss.Color("#585b70"), // Surface2
		IconText:     lipgloss.Color("#1e1e2e"), // Base
		Title:        lipgloss.Color("#cdd6f4"), // Text
		Subtitle:     lipgloss.Color("#a6adc8"), // Subtext0
		Error:        lipgloss.Color("#f38ba8"), // Red
		Connector:    lipgloss.Color("#45475a"), // Surface1
		Continue: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1e1e2e")).
			Background(lipgloss.Color("#b4befe")).
			Bold(true).
			Padding(0, 2),
	}
}

// Common is the configuration shared by every step of one stepper. It is
// built once and never mutated afterwards.
type Common struct {
	// Icon badge size in cells.
	IconWidth  int
	IconHeight int
	// Columns between the icon and the title/subtitle block.
	IconTextSpacing int
	// Rows between the title and the subtitle.
	TitleSubtitleSpacing int
	// Rows kept between a step and the next one.
	StepBottomMargin int

	NavButtonHeight    int
	NavButtonTopMargin int
	ContinueLabel      string

	ErrorGlyph     string
	ConnectorGlyph string

	iconActive   lipgloss.Style
	iconInactive lipgloss.Style
	iconComplete lipgloss.Style
	iconError    lipgloss.Style
	iconText     lipgloss.Style

	titleActive   lipgloss.Style
	titleInactive lipgloss.Style
	subtitle      lipgloss.Style
	errorText     lipgloss.Style
	connector     lipgloss.Style
	continueStyle lipgloss.Style
}

// NewCommon builds the shared step configuration from a palette.
func NewCommon(p Palette) *Common {
	complete := p.IconComplete
	if complete == nil {
		complete = p.IconActive
	}

	badge := lipgloss.NewStyle()
	return &Common{
		IconWidth:            3,
		IconHeight:           1,
		IconTextSpacing:      1,
		TitleSubtitleSpacing: 0,
		StepBottomMargin:     1,
		NavButtonHeight:      1,
		NavButtonTopMargin:   1,
		ContinueLabel:        "Continue",
		ErrorGlyph:           "!",
		ConnectorGlyph:       "│",

		iconActive:   badge.Background(p.IconActive),
		iconInactive: badge.Background(p.IconInactive),
		iconComplete: badge.Background(complete),
		iconError:    badge.Foreground(p.IconText).Background(p.Error).Bold(true),
		iconText:     lipgloss.NewStyle().Foreground(p.IconText).Bold(true),

		titleActive:   lipgloss.NewStyle().Foreground(p.Title).Bold(true),
		titleInactive: lipgloss.NewStyle().Foreground(p.Subtitle),
		subtitle:      lipgloss.NewStyle().Foreground(p.Subtitle).Italic(true),
		errorText:     lipgloss.NewStyle().Foreground(p.Error),
		connector:     lipgloss.NewStyle().Foreground(p.Connector),
		continueStyle: p.Continue,
	}
}

// IconStyle returns the badge style for a status.
func (c *Common) IconStyle(s Status) lipgloss.Style {
	switch s {
	case StatusActive:
		return c.iconActive
	case StatusComplete:
		return c.iconComplete
	default:
		return c.iconInactive
	}
}

// IconTextStyle returns the style of the step number drawn on a badge.
func (c *Common) IconTextStyle(s Status) lipgloss.Style {
	return c.iconText.Background(c.IconStyle(s).GetBackground())
}

// TitleStyle returns the title style; active titles are emphasized.
func (c *Common) TitleStyle(active bool) lipgloss.Style {
	if active {
		return c.titleActive
	}
	return c.titleInactive
}

// SubtitleStyle returns the subtitle style; errors use the error color.
func (c *Common) SubtitleStyle(hasError bool) lipgloss.Style {
	if hasError {
		return c.errorText
	}
	return c.subtitle
}

// ContinueStyle returns the continue control style.
func (c *Common) ContinueStyle() lipgloss.Style {
	return c.continueStyle
}

// DecoratorIconWidth is the icon column width: icon plus spacing. Text and
// active content are offset by it.
func (c *Common) DecoratorIconWidth() int {
	return c.IconWidth + c.IconTextSpacing
}

// ConnectorStartY is the row below the icon where a connector begins.
func (c *Common) ConnectorStartY() int {
	return c.IconHeight
}

// ConnectorStopY is the row, exclusive, at which a connector to the next
// step ends: the next icon's center.
func (c *Common) ConnectorStopY(dyToNextStep int) int {
	return dyToNextStep + c.IconHeight/2
}

// textSize measures s rendered with style.
func textSize(style lipgloss.Style, s string) Size {
	rendered := style.Render(s)
	return Size{Width: lipgloss.Width(rendered), Height: lipgloss.Height(rendered)}
}

// CenterStart returns the offset at which text rendered with style must be
// drawn so that its center matches the center of a w x h box.
func CenterStart(text string, w, h int, style lipgloss.Style) (x, y int) {
	sz := textSize(style, text)
	return (w - sz.Width) / 2, (h - sz.Height) / 2
}
