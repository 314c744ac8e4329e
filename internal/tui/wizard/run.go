package wizard

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/vstepper/internal/config"
)

// Run is the entry point for the wizard. It creates a standalone Bubble Tea
// program, runs it until the last step completes or the user quits, and
// returns what was collected.
func Run(ctx context.Context, cfg *config.Config, opts ...Option) (*Result, error) {
	m, err := New(cfg, append(opts, WithContext(ctx))...)
	if err != nil {
		return nil, err
	}

	p := tea.NewProgram(m, tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	wizModel, ok := finalModel.(*Model)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}
	return wizModel.Result(), nil
}
