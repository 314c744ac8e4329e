package state

import (
	"context"
	"fmt"
)

// Backend names accepted by Open.
const (
	BackendFile = "file"
	BackendNATS = "nats"
)

// Open returns the store for backend rooted at dataDir.
func Open(ctx context.Context, backend, dataDir string) (Store, error) {
	switch backend {
	case BackendFile, "":
		return NewFileStore(dataDir), nil
	case BackendNATS:
		return OpenKVStore(ctx, dataDir)
	default:
		return nil, fmt.Errorf("unknown state backend %q", backend)
	}
}
