package nats

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"
)

// StateBucket is the key-value bucket holding wizard snapshots.
const StateBucket = "vstepper_state"

// stateHistory is how many revisions of each snapshot the bucket keeps.
const stateHistory = 5

// SetupStateBucket creates or updates the state bucket.
func SetupStateBucket(ctx context.Context, js jetstream.JetStream) (jetstream.KeyValue, error) {
	kv, err := js.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:      StateBucket,
		Description: "vstepper wizard snapshots",
		History:     stateHistory,
		Storage:     jetstream.FileStorage,
	})
	if err != nil {
		return nil, fmt.Errorf("setup state bucket: %w", err)
	}
	return kv, nil
}
