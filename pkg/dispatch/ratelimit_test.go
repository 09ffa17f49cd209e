package dispatch

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRateLimitStore_SlidingWindow(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryRateLimitStore()
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.Record(ctx, "t1", "old", base.Add(-25*time.Hour)))
	require.NoError(t, store.Record(ctx, "t1", "recent", base.Add(-time.Hour)))
	require.NoError(t, store.Record(ctx, "t1", "now", base))

	n, err := store.Count(ctx, "t1", base)
	require.NoError(t, err)
	assert.Equal(t, 2, n, "entries older than 24h are pruned")

	// A different tenant has its own window.
	n, err = store.Count(ctx, "t2", base)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestMemoryRateLimitStore_Refund(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryRateLimitStore()
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.Record(ctx, "t1", "a", base))
	require.NoError(t, store.Record(ctx, "t1", "b", base))
	require.NoError(t, store.Refund(ctx, "t1", "a"))

	n, err := store.Count(ctx, "t1", base)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMemoryRateLimitStore_WarnOncePerDay(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryRateLimitStore()
	noon := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	first, err := store.WarnOnce(ctx, "t1", noon)
	require.NoError(t, err)
	assert.True(t, first)

	again, err := store.WarnOnce(ctx, "t1", noon.Add(2*time.Hour))
	require.NoError(t, err)
	assert.False(t, again, "second warning the same day is suppressed")

	nextDay, err := store.WarnOnce(ctx, "t1", noon.Add(24*time.Hour))
	require.NoError(t, err)
	assert.True(t, nextDay, "flag resets at midnight")
}
