package theme

import (
	"image/color"
	"sync"

	"charm.land/lipgloss/v2"
)

// Theme defines the color palette for the TUI.
type Theme struct {
	Name   string
	IsDark bool

	// Semantic colors
	Primary   string
	Secondary string

	// Background hierarchy (dark→light)
	BgBase     string
	BgSurface0 string
	BgSurface1 string
	BgSurface2 string

	// Foreground hierarchy (dim→bright)
	FgMuted  string
	FgSubtle string
	FgBase   string

	// Status colors
	Success string
	Error   string

	// Lazy-built styles
	styles     *Styles
	stylesOnce sync.Once
}

// S returns the pre-built styles for this theme.
// Styles are lazily initialized on first call.
func (t *Theme) S() *Styles {
	t.stylesOnce.Do(func() {
		t.styles = t.buildStyles()
	})
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	return &Styles{
		HeaderTitle: lipgloss.NewStyle().
			Foreground(HexToColor(t.Primary)).
			Bold(true),
		HeaderRule: lipgloss.NewStyle().
			Foreground(HexToColor(t.BgSurface1)),
		FocusMarker: lipgloss.NewStyle().
			Foreground(HexToColor(t.Secondary)).
			Bold(true),
		HintKey: lipgloss.NewStyle().
			Foreground(HexToColor(t.FgSubtle)).
			Bold(true),
		HintDesc: lipgloss.NewStyle().
			Foreground(HexToColor(t.FgMuted)),
		HintSeparator: lipgloss.NewStyle().
			Foreground(HexToColor(t.BgSurface2)),
		InputText: lipgloss.NewStyle().
			Foreground(HexToColor(t.FgBase)),
		InputPlaceholder: lipgloss.NewStyle().
			Foreground(HexToColor(t.FgMuted)),
		Finished: lipgloss.NewStyle().
			Foreground(HexToColor(t.Success)).
			Bold(true),
	}
}

// HexToColor converts a "#rrggbb" string to a color. Empty strings map to
// nil so callers can fall back to defaults.
func HexToColor(hex string) color.Color {
	if hex == "" {
		return nil
	}
	return lipgloss.Color(hex)
}
