package hooks

// Config is the top-level configuration loaded from .vstepper.hooks.yml.
type Config struct {
	Version int         `yaml:"version"`
	Hooks   HooksConfig `yaml:"hooks"`
}

// HooksConfig contains all hook configurations.
type HooksConfig struct {
	// OnStepComplete runs after a step passes validation.
	OnStepComplete []*HookConfig `yaml:"on_step_complete"`
	// OnFinish runs once after the last step passes validation.
	OnFinish []*HookConfig `yaml:"on_finish"`
}

// HookConfig defines a single hook's configuration.
type HookConfig struct {
	Command string `yaml:"command"`
	Timeout int    `yaml:"timeout"` // seconds, default 30
}

// DefaultTimeout is the default timeout for hook execution in seconds.
const DefaultTimeout = 30
