package testfixtures

import (
	"time"

	"github.com/mark3labs/vstepper/internal/config"
)

// Fixed test values for consistent golden files
const (
	FixedWizardTitle = "Test Wizard"
)

var (
	FixedTime = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
)

// FixedSteps returns one step of every kind: a required input, a markdown
// page, an optional input and optional notes.
func FixedSteps() []config.StepConfig {
	return []config.StepConfig{
		{Title: "Name", Kind: config.KindInput, Placeholder: "name", Required: true},
		{Title: "Read me", Kind: config.KindMarkdown, Body: "Hello **there**."},
		{Title: "Email", Kind: config.KindInput, Optional: true, Required: true},
		{Title: "Notes", Kind: config.KindNotes, Optional: true},
	}
}

// FixedConfig returns a configuration using FixedSteps and the defaults the
// loader would apply.
func FixedConfig() *config.Config {
	return &config.Config{
		Title:               FixedWizardTitle,
		IconColorActive:     "#cba6f7",
		IconColorInactive:   "#585b70",
		ContinueButtonStyle: config.ButtonPrimary,
		AutoExpandFirst:     true,
		DataDir:             ".vstepper",
		StateBackend:        config.BackendFile,
		LogLevel:            "info",
		Steps:               FixedSteps(),
	}
}
