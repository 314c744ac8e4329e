package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/vstepper/internal/config"
	"github.com/mark3labs/vstepper/internal/hooks"
	"github.com/mark3labs/vstepper/internal/logger"
	"github.com/mark3labs/vstepper/internal/state"
	"github.com/mark3labs/vstepper/internal/tui/wizard"
	"github.com/spf13/cobra"
)

var runFlags struct {
	dataDir      string
	backend      string
	logLevel     string
	noAutoExpand bool
	reset        bool
	noHooks      bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the configured wizard",
	Long: `Run the wizard declared in vstepper.yml (or the global config).

Progress is restored from the state backend when the steps have not
changed since it was saved. Hooks from .vstepper.hooks.yml run after
each completed step and once the wizard finishes.`,
	RunE: runWizard,
}

func init() {
	runCmd.Flags().StringVar(&runFlags.dataDir, "data-dir", "", "Data directory for saved state (default: from config)")
	runCmd.Flags().StringVar(&runFlags.backend, "backend", "", "State backend: file or nats (default: from config)")
	runCmd.Flags().StringVar(&runFlags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	runCmd.Flags().BoolVar(&runFlags.noAutoExpand, "no-auto-expand", false, "Start with every step collapsed")
	runCmd.Flags().BoolVar(&runFlags.reset, "reset", false, "Discard saved progress before starting")
	runCmd.Flags().BoolVar(&runFlags.noHooks, "no-hooks", false, "Skip hooks from .vstepper.hooks.yml")
}

// loadConfig loads the config and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		cfg.DataDir = runFlags.dataDir
	}
	if flags.Changed("backend") {
		cfg.StateBackend = runFlags.backend
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = runFlags.logLevel
	}
	if flags.Changed("no-auto-expand") {
		cfg.AutoExpandFirst = !runFlags.noAutoExpand
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func runWizard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return fmt.Errorf("failed to configure logger: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := state.Open(ctx, cfg.StateBackend, cfg.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open state: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing state: %v\n", err)
		}
	}()

	if runFlags.reset {
		if err := store.Delete(ctx, state.Key(cfg.Title)); err != nil {
			return fmt.Errorf("failed to reset state: %w", err)
		}
	}

	opts := []wizard.Option{wizard.WithStore(store)}
	if !runFlags.noHooks {
		workDir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		hooksCfg, err := hooks.LoadConfig(workDir)
		if err != nil {
			return fmt.Errorf("failed to load hooks: %w", err)
		}
		opts = append(opts, wizard.WithHooks(hooksCfg, workDir))
	}

	res, err := wizard.Run(ctx, cfg, opts...)
	if err != nil {
		return err
	}
	printResult(cmd, res)
	return nil
}

func printResult(cmd *cobra.Command, res *wizard.Result) {
	out := cmd.OutOrStdout()
	if !res.Finished {
		fmt.Fprintln(out, "Progress saved. Run 'vstepper run' to continue.")
		return
	}
	for _, s := range res.Steps {
		mark := "✓"
		if !s.Complete {
			mark = "-"
		}
		if s.Value != "" {
			fmt.Fprintf(out, "%s %s: %s\n", mark, s.Title, s.Value)
		} else {
			fmt.Fprintf(out, "%s %s\n", mark, s.Title)
		}
	}
}
