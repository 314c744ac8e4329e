package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/vstepper/internal/state"
	"github.com/spf13/cobra"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Inspect or reset saved wizard progress",
}

var stateShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved snapshot as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(store state.Store, key string) error {
			snap, err := store.Load(cmd.Context(), key)
			if errors.Is(err, state.ErrNotFound) {
				fmt.Fprintf(cmd.OutOrStdout(), "No saved state for %q\n", key)
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to load state: %w", err)
			}
			data, err := json.MarshalIndent(snap, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		})
	},
}

var stateResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the saved snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(store state.Store, key string) error {
			if err := store.Delete(cmd.Context(), key); err != nil {
				return fmt.Errorf("failed to reset state: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared saved state for %q\n", key)
			return nil
		})
	},
}

func init() {
	stateCmd.PersistentFlags().StringVar(&runFlags.dataDir, "data-dir", "", "Data directory for saved state (default: from config)")
	stateCmd.PersistentFlags().StringVar(&runFlags.backend, "backend", "", "State backend: file or nats (default: from config)")

	stateCmd.AddCommand(stateShowCmd)
	stateCmd.AddCommand(stateResetCmd)
}

// withStore opens the configured store for the wizard's key and closes it
// after fn returns.
func withStore(cmd *cobra.Command, fn func(store state.Store, key string) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	store, err := state.Open(cmd.Context(), cfg.StateBackend, cfg.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open state: %w", err)
	}
	defer func() { _ = store.Close() }()

	return fn(store, state.Key(cfg.Title))
}
