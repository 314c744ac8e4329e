package theme

import "charm.land/lipgloss/v2"

// Styles contains all pre-built lipgloss styles for the TUI.
type Styles struct {
	HeaderTitle lipgloss.Style
	HeaderRule  lipgloss.Style
	FocusMarker lipgloss.Style

	HintKey       lipgloss.Style
	HintDesc      lipgloss.Style
	HintSeparator lipgloss.Style

	InputText        lipgloss.Style
	InputPlaceholder lipgloss.Style

	Finished lipgloss.Style
}
