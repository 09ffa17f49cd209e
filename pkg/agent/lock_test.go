package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLocker(t *testing.T) {
	locker := NewMemoryLocker()
	ctx := context.Background()

	release, ok, err := locker.TryAcquire(ctx, "conv-1")
	require.NoError(t, err)
	require.True(t, ok)

	// Held: a second acquire on the same conversation fails.
	_, ok, err = locker.TryAcquire(ctx, "conv-1")
	require.NoError(t, err)
	assert.False(t, ok)

	// Independent conversations do not contend.
	release2, ok, err := locker.TryAcquire(ctx, "conv-2")
	require.NoError(t, err)
	assert.True(t, ok)
	release2(ctx)

	release(ctx)
	release3, ok, err := locker.TryAcquire(ctx, "conv-1")
	require.NoError(t, err)
	assert.True(t, ok)
	release3(ctx)
}

func TestMemoryLockerReleaseIsIdempotent(t *testing.T) {
	locker := NewMemoryLocker()
	ctx := context.Background()

	release, ok, err := locker.TryAcquire(ctx, "conv-1")
	require.NoError(t, err)
	require.True(t, ok)

	release(ctx)
	release(ctx)

	_, ok, err = locker.TryAcquire(ctx, "conv-1")
	require.NoError(t, err)
	assert.True(t, ok)
}
