// Package state persists stepper snapshots between runs.
package state

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/gosimple/slug"
	"github.com/mark3labs/vstepper/internal/logger"
	"github.com/mark3labs/vstepper/internal/stepper"
)

// ErrNotFound is returned by Load when no snapshot exists for a key.
var ErrNotFound = errors.New("state not found")

// Snapshot is what gets persisted for one wizard. Values holds each step's
// content value, empty for content without one.
type Snapshot struct {
	Wizard  string          `json:"wizard"`
	Titles  []string        `json:"titles"`
	Steps   []stepper.State `json:"steps"`
	Values  []string        `json:"values,omitempty"`
	SavedAt time.Time       `json:"saved_at"`
}

// Matches reports whether the snapshot was taken from steps with these
// titles, in this order.
func (s *Snapshot) Matches(titles []string) bool {
	return s != nil && len(s.Steps) == len(titles) && slices.Equal(s.Titles, titles)
}

// Store loads and saves snapshots by key.
type Store interface {
	Load(ctx context.Context, key string) (*Snapshot, error)
	Save(ctx context.Context, key string, snap *Snapshot) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Key derives a storage key from a wizard title.
func Key(title string) string {
	if k := slug.Make(title); k != "" {
		return k
	}
	return "default"
}

// Restore loads the snapshot for key if it still matches titles. Any
// failure returns nil so the wizard starts fresh.
func Restore(ctx context.Context, store Store, key string, titles []string) *Snapshot {
	snap, err := store.Load(ctx, key)
	switch {
	case errors.Is(err, ErrNotFound):
		return nil
	case err != nil:
		logger.Warn("Failed to load state %q: %v", key, err)
		return nil
	case !snap.Matches(titles):
		logger.Warn("Discarding state %q: steps changed since it was saved", key)
		return nil
	}
	logger.Debug("Restored state %q saved at %s", key, snap.SavedAt.Format(time.RFC3339))
	return snap
}

// Value returns the saved value of step i, or "".
func (s *Snapshot) Value(i int) string {
	if s == nil || i < 0 || i >= len(s.Values) {
		return ""
	}
	return s.Values[i]
}
