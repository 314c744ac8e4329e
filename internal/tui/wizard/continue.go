package wizard

import (
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/vstepper/internal/config"
	"github.com/mark3labs/vstepper/internal/stepper"
	"github.com/mark3labs/vstepper/internal/tui/theme"
)

// ContinueStyle returns the lipgloss style of the continue control for a
// continue_button_style value. Unknown names fall back to primary.
func ContinueStyle(name string) lipgloss.Style {
	t := theme.Current()
	switch name {
	case config.ButtonSubtle:
		return lipgloss.NewStyle().
			Foreground(theme.HexToColor(t.FgBase)).
			Background(theme.HexToColor(t.BgSurface0)).
			Padding(0, 2)
	case config.ButtonOutline:
		return lipgloss.NewStyle().
			Foreground(theme.HexToColor(t.Secondary)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.HexToColor(t.Secondary)).
			Padding(0, 1)
	default:
		return lipgloss.NewStyle().
			Foreground(theme.HexToColor(t.BgBase)).
			Background(theme.HexToColor(t.Secondary)).
			Bold(true).
			Padding(0, 2)
	}
}

// NewPalette builds the stepper palette from the configured icon colors
// and button style.
func NewPalette(cfg *config.Config) stepper.Palette {
	p := stepper.DefaultPalette()
	if c := theme.HexToColor(cfg.IconColorActive); c != nil {
		p.IconActive = c
	}
	if c := theme.HexToColor(cfg.IconColorInactive); c != nil {
		p.IconInactive = c
	}
	p.IconComplete = theme.HexToColor(cfg.CompleteColor())
	p.Continue = ContinueStyle(cfg.ContinueButtonStyle)
	return p
}

// NewCommon builds the shared step configuration for cfg. The outline
// button is three rows tall.
func NewCommon(cfg *config.Config) *stepper.Common {
	common := stepper.NewCommon(NewPalette(cfg))
	if cfg.ContinueButtonStyle == config.ButtonOutline {
		common.NavButtonHeight = 3
	}
	return common
}
