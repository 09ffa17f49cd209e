package llm

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sokochat/sokochat/pkg/config"
)

// HealthStore persists per-provider call outcomes and breaker cooldowns.
// All workers share one store so no replica has a private view of provider
// health.
type HealthStore interface {
	// RecordOutcome appends one call outcome for the provider.
	RecordOutcome(ctx context.Context, provider string, success bool, at time.Time) error

	// Outcomes returns the success/failure counts since the given time.
	Outcomes(ctx context.Context, provider string, since time.Time) (successes, failures int, err error)

	// SetCooldown opens the provider's breaker until the given time.
	SetCooldown(ctx context.Context, provider string, until time.Time) error

	// Cooldown returns the breaker-open deadline, or the zero time when the
	// breaker is closed.
	Cooldown(ctx context.Context, provider string) (time.Time, error)

	// ClearWindow drops recorded outcomes for the provider (used when the
	// breaker closes after a successful probe).
	ClearWindow(ctx context.Context, provider string) error
}

// HealthTracker applies the failover policy to a HealthStore: it decides
// whether a provider may be called and records outcomes, opening the breaker
// when the failure rate crosses the threshold.
type HealthTracker struct {
	store  HealthStore
	policy *config.FailoverPolicy
}

// NewHealthTracker creates a tracker over the given store and policy.
func NewHealthTracker(store HealthStore, policy *config.FailoverPolicy) *HealthTracker {
	return &HealthTracker{store: store, policy: policy}
}

// Available reports whether the provider may be called now. After a cooldown
// expires the breaker half-opens: the first caller gets through as the probe.
func (t *HealthTracker) Available(ctx context.Context, provider string, now time.Time) bool {
	until, err := t.store.Cooldown(ctx, provider)
	if err != nil {
		// Health state being unreachable must not take all providers down.
		slog.Warn("provider health check failed, assuming available", "provider", provider, "error", err)
		return true
	}
	return until.IsZero() || !now.Before(until)
}

// RecordSuccess records a successful call. A success while the breaker was
// cooling down is the probe succeeding: the window is cleared and the breaker
// closes.
func (t *HealthTracker) RecordSuccess(ctx context.Context, provider string, now time.Time) {
	until, err := t.store.Cooldown(ctx, provider)
	if err == nil && !until.IsZero() {
		if err := t.store.ClearWindow(ctx, provider); err != nil {
			slog.Warn("failed to clear provider health window", "provider", provider, "error", err)
		}
		if err := t.store.SetCooldown(ctx, provider, time.Time{}); err != nil {
			slog.Warn("failed to close provider breaker", "provider", provider, "error", err)
		}
		slog.Info("provider breaker closed after successful probe", "provider", provider)
	}
	if err := t.store.RecordOutcome(ctx, provider, true, now); err != nil {
		slog.Warn("failed to record provider success", "provider", provider, "error", err)
	}
}

// RecordFailure records a failed call and opens the breaker when the failure
// rate over the trailing window crosses the policy threshold.
func (t *HealthTracker) RecordFailure(ctx context.Context, provider string, now time.Time) {
	if err := t.store.RecordOutcome(ctx, provider, false, now); err != nil {
		slog.Warn("failed to record provider failure", "provider", provider, "error", err)
		return
	}

	successes, failures, err := t.store.Outcomes(ctx, provider, now.Add(-t.policy.HealthWindow))
	if err != nil {
		slog.Warn("failed to read provider health window", "provider", provider, "error", err)
		return
	}

	total := successes + failures
	if total < t.policy.MinSamples {
		return
	}
	rate := float64(failures) / float64(total)
	if rate >= t.policy.FailureRateThreshold {
		until := now.Add(t.policy.CooldownPeriod)
		if err := t.store.SetCooldown(ctx, provider, until); err != nil {
			slog.Warn("failed to open provider breaker", "provider", provider, "error", err)
			return
		}
		slog.Warn("provider breaker opened",
			"provider", provider,
			"failure_rate", rate,
			"samples", total,
			"cooldown_until", until)
	}
}

// redisHealthStore keeps outcomes in a per-provider sorted set scored by
// arrival time, and the cooldown deadline in a plain key with TTL.
type redisHealthStore struct {
	client redis.UniversalClient
}

// NewRedisHealthStore creates a HealthStore backed by redis.
func NewRedisHealthStore(client redis.UniversalClient) HealthStore {
	return &redisHealthStore{client: client}
}

func healthOutcomesKey(provider string) string { return "llm:health:" + provider }
func healthCooldownKey(provider string) string { return "llm:cooldown:" + provider }

func (s *redisHealthStore) RecordOutcome(ctx context.Context, provider string, success bool, at time.Time) error {
	marker := "f:"
	if success {
		marker = "s:"
	}
	key := healthOutcomesKey(provider)
	pipe := s.client.TxPipeline()
	pipe.ZAdd(ctx, key, redis.Z{
		Score:  float64(at.UnixNano()),
		Member: marker + uuid.New().String(),
	})
	// Prune anything older than an hour; the policy window is far shorter.
	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", at.Add(-time.Hour).UnixNano()))
	pipe.Expire(ctx, key, time.Hour)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *redisHealthStore) Outcomes(ctx context.Context, provider string, since time.Time) (int, int, error) {
	members, err := s.client.ZRangeByScore(ctx, healthOutcomesKey(provider), &redis.ZRangeBy{
		Min: fmt.Sprintf("%d", since.UnixNano()),
		Max: "+inf",
	}).Result()
	if err != nil {
		return 0, 0, err
	}
	var successes, failures int
	for _, m := range members {
		if len(m) > 1 && m[0] == 's' {
			successes++
		} else {
			failures++
		}
	}
	return successes, failures, nil
}

func (s *redisHealthStore) SetCooldown(ctx context.Context, provider string, until time.Time) error {
	key := healthCooldownKey(provider)
	if until.IsZero() {
		return s.client.Del(ctx, key).Err()
	}
	ttl := time.Until(until)
	if ttl <= 0 {
		ttl = time.Second
	}
	return s.client.Set(ctx, key, until.UnixNano(), ttl).Err()
}

func (s *redisHealthStore) Cooldown(ctx context.Context, provider string) (time.Time, error) {
	nanos, err := s.client.Get(ctx, healthCooldownKey(provider)).Int64()
	if err != nil {
		if err == redis.Nil {
			return time.Time{}, nil
		}
		return time.Time{}, err
	}
	return time.Unix(0, nanos), nil
}

func (s *redisHealthStore) ClearWindow(ctx context.Context, provider string) error {
	return s.client.Del(ctx, healthOutcomesKey(provider)).Err()
}

// memoryHealthStore is an in-process HealthStore for tests and single-replica
// deployments without redis.
type memoryHealthStore struct {
	mu        sync.Mutex
	outcomes  map[string][]outcome
	cooldowns map[string]time.Time
}

type outcome struct {
	success bool
	at      time.Time
}

// NewMemoryHealthStore creates an in-process HealthStore.
func NewMemoryHealthStore() HealthStore {
	return &memoryHealthStore{
		outcomes:  make(map[string][]outcome),
		cooldowns: make(map[string]time.Time),
	}
}

func (s *memoryHealthStore) RecordOutcome(_ context.Context, provider string, success bool, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outcomes[provider] = append(s.outcomes[provider], outcome{success: success, at: at})
	return nil
}

func (s *memoryHealthStore) Outcomes(_ context.Context, provider string, since time.Time) (int, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var successes, failures int
	for _, o := range s.outcomes[provider] {
		if o.at.Before(since) {
			continue
		}
		if o.success {
			successes++
		} else {
			failures++
		}
	}
	return successes, failures, nil
}

func (s *memoryHealthStore) SetCooldown(_ context.Context, provider string, until time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if until.IsZero() {
		delete(s.cooldowns, provider)
		return nil
	}
	s.cooldowns[provider] = until
	return nil
}

func (s *memoryHealthStore) Cooldown(_ context.Context, provider string) (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cooldowns[provider], nil
}

func (s *memoryHealthStore) ClearWindow(_ context.Context, provider string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.outcomes, provider)
	return nil
}
