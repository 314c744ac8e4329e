// Package testfixtures provides mock implementations and test utilities for
// TUI testing.
//
// MockStore is an in-memory state.Store with call counters:
//
//	store := testfixtures.NewMockStore()
//	m := wizard.New(cfg, wizard.WithStore(store))
//	...
//	require.Equal(t, 1, store.SaveCalls())
package testfixtures

import (
	"context"
	"sync"

	"github.com/mark3labs/vstepper/internal/state"
)

// MockStore is a thread-safe in-memory state.Store.
type MockStore struct {
	mu        sync.Mutex
	snapshots map[string]*state.Snapshot

	loadCalls   int
	saveCalls   int
	deleteCalls int

	// LoadErr and SaveErr, when set, are returned by Load and Save.
	LoadErr error
	SaveErr error
}

// NewMockStore creates an empty store.
func NewMockStore() *MockStore {
	return &MockStore{snapshots: make(map[string]*state.Snapshot)}
}

// Load returns the stored snapshot for key.
func (m *MockStore) Load(_ context.Context, key string) (*state.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadCalls++

	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	snap, ok := m.snapshots[key]
	if !ok {
		return nil, state.ErrNotFound
	}
	cp := *snap
	return &cp, nil
}

// Save stores snap under key.
func (m *MockStore) Save(_ context.Context, key string, snap *state.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveCalls++

	if m.SaveErr != nil {
		return m.SaveErr
	}
	cp := *snap
	m.snapshots[key] = &cp
	return nil
}

// Delete removes key.
func (m *MockStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteCalls++
	delete(m.snapshots, key)
	return nil
}

// Close is a no-op.
func (m *MockStore) Close() error { return nil }

// Snapshot returns the stored snapshot for key, or nil.
func (m *MockStore) Snapshot(key string) *state.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshots[key]
}

// Put seeds a snapshot without counting a save.
func (m *MockStore) Put(key string, snap *state.Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots[key] = snap
}

func (m *MockStore) LoadCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loadCalls
}

func (m *MockStore) SaveCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveCalls
}

func (m *MockStore) DeleteCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.deleteCalls
}
