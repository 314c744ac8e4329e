// Package config provides centralized configuration management using Viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Step kinds.
const (
	KindInput    = "input"
	KindMarkdown = "markdown"
	KindNotes    = "notes"
)

// Continue button styles.
const (
	ButtonPrimary = "primary"
	ButtonSubtle  = "subtle"
	ButtonOutline = "outline"
)

// State backends.
const (
	BackendFile = "file"
	BackendNATS = "nats"
)

// Config holds all configuration values for vstepper.
type Config struct {
	Title               string       `mapstructure:"title" yaml:"title"`
	IconColorActive     string       `mapstructure:"icon_color_active" yaml:"icon_color_active"`
	IconColorInactive   string       `mapstructure:"icon_color_inactive" yaml:"icon_color_inactive"`
	IconColorComplete   string       `mapstructure:"icon_color_complete" yaml:"icon_color_complete,omitempty"`
	ContinueButtonStyle string       `mapstructure:"continue_button_style" yaml:"continue_button_style"`
	AutoExpandFirst     bool         `mapstructure:"auto_expand_first" yaml:"auto_expand_first"`
	DataDir             string       `mapstructure:"data_dir" yaml:"data_dir"`
	StateBackend        string       `mapstructure:"state_backend" yaml:"state_backend"`
	LogLevel            string       `mapstructure:"log_level" yaml:"log_level"`
	LogFile             string       `mapstructure:"log_file" yaml:"log_file"`
	Steps               []StepConfig `mapstructure:"steps" yaml:"steps"`
}

// StepConfig declares one wizard step.
type StepConfig struct {
	Title       string `mapstructure:"title" yaml:"title"`
	Summary     string `mapstructure:"summary" yaml:"summary,omitempty"`
	Optional    bool   `mapstructure:"optional" yaml:"optional,omitempty"`
	Kind        string `mapstructure:"kind" yaml:"kind"`
	Body        string `mapstructure:"body" yaml:"body,omitempty"`
	Placeholder string `mapstructure:"placeholder" yaml:"placeholder,omitempty"`
	Required    bool   `mapstructure:"required" yaml:"required,omitempty"`
}

// envKeys are the scalar keys bound to VSTEPPER_* variables.
var envKeys = []string{
	"title",
	"icon_color_active",
	"icon_color_inactive",
	"icon_color_complete",
	"continue_button_style",
	"auto_expand_first",
	"data_dir",
	"state_backend",
	"log_level",
	"log_file",
}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("vstepper")

	v.SetDefault("title", "Setup")
	v.SetDefault("icon_color_active", "#cba6f7")
	v.SetDefault("icon_color_inactive", "#585b70")
	v.SetDefault("icon_color_complete", "")
	v.SetDefault("continue_button_style", ButtonPrimary)
	v.SetDefault("auto_expand_first", true)
	v.SetDefault("data_dir", ".vstepper")
	v.SetDefault("state_backend", BackendFile)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")

	v.SetEnvPrefix("VSTEPPER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Explicit bindings so Unmarshal sees env-only values.
	for _, key := range envKeys {
		if err := v.BindEnv(key, "VSTEPPER_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if len(cfg.Steps) == 0 {
		cfg.Steps = DefaultSteps()
	}
	for i := range cfg.Steps {
		if cfg.Steps[i].Kind == "" {
			cfg.Steps[i].Kind = KindInput
		}
	}

	return &cfg, nil
}

// DefaultSteps is the demo wizard used when no steps are configured.
func DefaultSteps() []StepConfig {
	return []StepConfig{
		{
			Title:       "Project name",
			Kind:        KindInput,
			Placeholder: "my-project",
			Required:    true,
		},
		{
			Title: "Read the guidelines",
			Kind:  KindMarkdown,
			Body:  "# Guidelines\n\n- Keep steps short.\n- Press **ctrl+n** to continue.\n",
		},
		{
			Title:       "Contact email",
			Kind:        KindInput,
			Placeholder: "you@example.com",
			Optional:    true,
			Required:    true,
		},
		{
			Title:    "Notes",
			Kind:     KindNotes,
			Optional: true,
		},
	}
}

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Validate reports every problem found in cfg.
func (c *Config) Validate() error {
	var errs []error

	for name, color := range map[string]string{
		"icon_color_active":   c.IconColorActive,
		"icon_color_inactive": c.IconColorInactive,
	} {
		if !hexColor.MatchString(color) {
			errs = append(errs, fmt.Errorf("%s: invalid color %q", name, color))
		}
	}
	if c.IconColorComplete != "" && !hexColor.MatchString(c.IconColorComplete) {
		errs = append(errs, fmt.Errorf("icon_color_complete: invalid color %q", c.IconColorComplete))
	}

	switch c.ContinueButtonStyle {
	case ButtonPrimary, ButtonSubtle, ButtonOutline:
	default:
		errs = append(errs, fmt.Errorf("continue_button_style: unknown style %q", c.ContinueButtonStyle))
	}

	switch c.StateBackend {
	case BackendFile, BackendNATS:
	default:
		errs = append(errs, fmt.Errorf("state_backend: unknown backend %q", c.StateBackend))
	}

	for i, s := range c.Steps {
		if strings.TrimSpace(s.Title) == "" {
			errs = append(errs, fmt.Errorf("steps[%d]: title is required", i))
		}
		switch s.Kind {
		case KindInput, KindMarkdown, KindNotes:
		default:
			errs = append(errs, fmt.Errorf("steps[%d]: unknown kind %q", i, s.Kind))
		}
	}

	return errors.Join(errs...)
}

// CompleteColor returns the complete icon color, falling back to the active
// color.
func (c *Config) CompleteColor() string {
	if c.IconColorComplete != "" {
		return c.IconColorComplete
	}
	return c.IconColorActive
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/vstepper/vstepper.yml or $XDG_CONFIG_HOME/vstepper/vstepper.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "vstepper", "vstepper.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "vstepper", "vstepper.yml")
}

// ProjectPath returns the project-local config path.
func ProjectPath() string {
	return "vstepper.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return write(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

func write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
