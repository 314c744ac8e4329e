package nats

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStart(t *testing.T) {
	e, err := Start(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, e.Close()) })

	require.True(t, e.Conn.IsConnected())

	ctx := context.Background()
	kv, err := SetupStateBucket(ctx, e.JS)
	require.NoError(t, err)
	require.Equal(t, StateBucket, kv.Bucket())

	_, err = kv.Put(ctx, "onboarding", []byte(`{"steps":[]}`))
	require.NoError(t, err)

	entry, err := kv.Get(ctx, "onboarding")
	require.NoError(t, err)
	require.JSONEq(t, `{"steps":[]}`, string(entry.Value()))
}

func TestSetupStateBucket_Idempotent(t *testing.T) {
	e, err := Start(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = e.Close() })

	ctx := context.Background()
	_, err = SetupStateBucket(ctx, e.JS)
	require.NoError(t, err)
	_, err = SetupStateBucket(ctx, e.JS)
	require.NoError(t, err)
}

func TestEmbeddedClose_Nil(t *testing.T) {
	var e *Embedded
	require.NoError(t, e.Close())
}
