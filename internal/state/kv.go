package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/mark3labs/vstepper/internal/logger"
	"github.com/mark3labs/vstepper/internal/nats"
	"github.com/nats-io/nats.go/jetstream"
)

// KVStore keeps snapshots in a JetStream key-value bucket.
type KVStore struct {
	kv     jetstream.KeyValue
	closer func() error
}

// NewKVStore wraps an existing bucket.
func NewKVStore(kv jetstream.KeyValue) *KVStore {
	return &KVStore{kv: kv}
}

// OpenKVStore starts an embedded NATS server under dataDir/nats and opens
// the state bucket. Close stops the server.
func OpenKVStore(ctx context.Context, dataDir string) (*KVStore, error) {
	e, err := nats.Start(filepath.Join(dataDir, "nats"))
	if err != nil {
		return nil, err
	}

	kv, err := nats.SetupStateBucket(ctx, e.JS)
	if err != nil {
		_ = e.Close()
		return nil, err
	}

	return &KVStore{kv: kv, closer: e.Close}, nil
}

// Load reads the latest revision for key.
func (s *KVStore) Load(ctx context.Context, key string) (*Snapshot, error) {
	entry, err := s.kv.Get(ctx, key)
	if errors.Is(err, jetstream.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting state %q: %w", key, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(entry.Value(), &snap); err != nil {
		return nil, fmt.Errorf("parsing state %q: %w", key, err)
	}
	return &snap, nil
}

// Save puts a new revision for key.
func (s *KVStore) Save(ctx context.Context, key string, snap *Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshaling state: %w", err)
	}

	rev, err := s.kv.Put(ctx, key, data)
	if err != nil {
		return fmt.Errorf("putting state %q: %w", key, err)
	}

	logger.Debug("State %q saved at revision %d", key, rev)
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *KVStore) Delete(ctx context.Context, key string) error {
	err := s.kv.Delete(ctx, key)
	if err != nil && !errors.Is(err, jetstream.ErrKeyNotFound) {
		return fmt.Errorf("deleting state %q: %w", key, err)
	}
	return nil
}

// Close stops the embedded server if the store started one.
func (s *KVStore) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}
