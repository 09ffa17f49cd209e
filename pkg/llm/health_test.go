package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokochat/sokochat/pkg/config"
)

func testPolicy() *config.FailoverPolicy {
	return &config.FailoverPolicy{
		FailureRateThreshold: 0.5,
		MinSamples:           4,
		HealthWindow:         2 * time.Minute,
		CooldownPeriod:       30 * time.Second,
		MaxAttempts:          3,
		RetryBaseDelay:       time.Millisecond,
		RetryMaxDelay:        4 * time.Millisecond,
	}
}

func TestHealthTracker_BreakerOpensAtThreshold(t *testing.T) {
	ctx := context.Background()
	tracker := NewHealthTracker(NewMemoryHealthStore(), testPolicy())
	now := time.Now()

	// Two successes, two failures: 50% failure rate at the minimum sample
	// count opens the breaker.
	tracker.RecordSuccess(ctx, "primary", now)
	tracker.RecordSuccess(ctx, "primary", now)
	tracker.RecordFailure(ctx, "primary", now)
	assert.True(t, tracker.Available(ctx, "primary", now), "below min samples, breaker stays closed")

	tracker.RecordFailure(ctx, "primary", now)
	assert.False(t, tracker.Available(ctx, "primary", now), "breaker should open at threshold")
}

func TestHealthTracker_BelowThresholdStaysClosed(t *testing.T) {
	ctx := context.Background()
	tracker := NewHealthTracker(NewMemoryHealthStore(), testPolicy())
	now := time.Now()

	tracker.RecordSuccess(ctx, "primary", now)
	tracker.RecordSuccess(ctx, "primary", now)
	tracker.RecordSuccess(ctx, "primary", now)
	tracker.RecordFailure(ctx, "primary", now)

	assert.True(t, tracker.Available(ctx, "primary", now))
}

func TestHealthTracker_CooldownExpiryAllowsProbe(t *testing.T) {
	ctx := context.Background()
	policy := testPolicy()
	tracker := NewHealthTracker(NewMemoryHealthStore(), policy)
	now := time.Now()

	for i := 0; i < policy.MinSamples; i++ {
		tracker.RecordFailure(ctx, "primary", now)
	}
	require.False(t, tracker.Available(ctx, "primary", now))

	afterCooldown := now.Add(policy.CooldownPeriod + time.Second)
	assert.True(t, tracker.Available(ctx, "primary", afterCooldown), "probe allowed after cooldown")
}

func TestHealthTracker_SuccessfulProbeClosesBreaker(t *testing.T) {
	ctx := context.Background()
	policy := testPolicy()
	store := NewMemoryHealthStore()
	tracker := NewHealthTracker(store, policy)
	now := time.Now()

	for i := 0; i < policy.MinSamples; i++ {
		tracker.RecordFailure(ctx, "primary", now)
	}
	require.False(t, tracker.Available(ctx, "primary", now))

	// Probe succeeds: window cleared, breaker closed.
	tracker.RecordSuccess(ctx, "primary", now.Add(policy.CooldownPeriod+time.Second))
	assert.True(t, tracker.Available(ctx, "primary", now.Add(policy.CooldownPeriod+2*time.Second)))

	// The cleared window means a single new failure does not re-open it.
	tracker.RecordFailure(ctx, "primary", now.Add(policy.CooldownPeriod+3*time.Second))
	assert.True(t, tracker.Available(ctx, "primary", now.Add(policy.CooldownPeriod+4*time.Second)))
}

func TestHealthTracker_WindowExcludesOldOutcomes(t *testing.T) {
	ctx := context.Background()
	policy := testPolicy()
	tracker := NewHealthTracker(NewMemoryHealthStore(), policy)
	start := time.Now()

	// Failures outside the trailing window must not count toward the rate.
	old := start.Add(-policy.HealthWindow - time.Minute)
	tracker.RecordFailure(ctx, "primary", old)
	tracker.RecordFailure(ctx, "primary", old)
	tracker.RecordFailure(ctx, "primary", old)

	tracker.RecordFailure(ctx, "primary", start)
	assert.True(t, tracker.Available(ctx, "primary", start), "old failures aged out of the window")
}

func TestMemoryHealthStore_Outcomes(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryHealthStore()
	now := time.Now()

	require.NoError(t, store.RecordOutcome(ctx, "p", true, now))
	require.NoError(t, store.RecordOutcome(ctx, "p", false, now))
	require.NoError(t, store.RecordOutcome(ctx, "p", false, now.Add(-time.Hour)))

	successes, failures, err := store.Outcomes(ctx, "p", now.Add(-time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, failures)
}
