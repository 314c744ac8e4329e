package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/vstepper/internal/config"
	"github.com/spf13/cobra"
)

var setupFlags struct {
	global bool
	force  bool
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create a vstepper configuration file",
	Long: `Create a vstepper configuration file with a demo wizard.

By default, creates vstepper.yml in the current directory.
Use --global to create ~/.config/vstepper/vstepper.yml instead.`,
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().BoolVarP(&setupFlags.global, "global", "g", false, "Create config in the global location instead of the current directory")
	setupCmd.Flags().BoolVarP(&setupFlags.force, "force", "f", false, "Overwrite existing config file")
}

// defaultConfig is what setup writes: the loader defaults plus the demo
// steps.
func defaultConfig() *config.Config {
	return &config.Config{
		Title:               "Setup",
		IconColorActive:     "#cba6f7",
		IconColorInactive:   "#585b70",
		ContinueButtonStyle: config.ButtonPrimary,
		AutoExpandFirst:     true,
		DataDir:             ".vstepper",
		StateBackend:        config.BackendFile,
		LogLevel:            "info",
		Steps:               config.DefaultSteps(),
	}
}

func runSetup(cmd *cobra.Command, args []string) error {
	targetPath := config.ProjectPath()
	if setupFlags.global {
		targetPath = config.GlobalPath()
	}

	if !setupFlags.force && fileExists(targetPath) {
		return fmt.Errorf("config file already exists at %s\n\nUse --force to overwrite", targetPath)
	}

	var err error
	if setupFlags.global {
		err = config.WriteGlobal(defaultConfig())
	} else {
		err = config.WriteProject(defaultConfig())
	}
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config written to: %s\n\n", targetPath)
	fmt.Fprintln(out, "Run 'vstepper run' to get started.")
	return nil
}

// fileExists checks if a file exists (helper for setup command).
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
