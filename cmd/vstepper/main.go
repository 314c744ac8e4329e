package main

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/mark3labs/vstepper/internal/logger"
	"github.com/mark3labs/vstepper/internal/tui/theme"
	"github.com/spf13/cobra"
)

const (
	logoText1 = "█ █ █▀▀ ▀█▀ █▀▀ █▀█ █▀█ █▀▀ █▀█"
	logoText2 = "▀▄▀ ▄▄█  █  ██▄ █▀▀ █▀▀ ██▄ █▀▄"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "vstepper",
	Short: "Vertical multi-step wizard for the terminal",
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	// Set Long description with logo
	rootCmd.Long = renderLogo() + `

vstepper walks you through a list of steps, one expanded at a time.
Steps are declared in vstepper.yml. Each one holds a text input, a
markdown page or free-form notes, and must validate before the next
one opens. Progress is saved on every step so an interrupted wizard
resumes where it stopped.`

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(stateCmd)
}
