package dispatch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// rateWindow is the sliding window over which sends count against the
// tenant's daily quota.
const rateWindow = 24 * time.Hour

// RateLimitStore tracks per-tenant outbound sends in a sliding 24h window.
// Shared across replicas; entries older than the window are pruned on read.
type RateLimitStore interface {
	// Record counts one send. The id must be unique per send so a later
	// refund can remove exactly this entry.
	Record(ctx context.Context, tenantID, id string, at time.Time) error

	// Count returns sends within the trailing window, pruning older entries.
	Count(ctx context.Context, tenantID string, now time.Time) (int, error)

	// Refund removes a previously recorded send (permanent delivery
	// failures do not count against the quota).
	Refund(ctx context.Context, tenantID, id string) error

	// WarnOnce reports whether the 80%-utilization warning may fire now.
	// It returns true at most once per tenant per day.
	WarnOnce(ctx context.Context, tenantID string, now time.Time) (bool, error)
}

// redisRateLimitStore keeps one ZSET per tenant scored by send time, plus a
// SetNX key with TTL to the next midnight for the daily warning.
type redisRateLimitStore struct {
	client redis.UniversalClient
}

// NewRedisRateLimitStore creates a redis-backed RateLimitStore.
func NewRedisRateLimitStore(client redis.UniversalClient) RateLimitStore {
	return &redisRateLimitStore{client: client}
}

func rateKey(tenantID string) string { return "dispatch:rate:" + tenantID }
func warnKey(tenantID string) string { return "dispatch:ratewarn:" + tenantID }

func (s *redisRateLimitStore) Record(ctx context.Context, tenantID, id string, at time.Time) error {
	pipe := s.client.TxPipeline()
	pipe.ZAdd(ctx, rateKey(tenantID), redis.Z{
		Score:  float64(at.UnixMilli()),
		Member: id,
	})
	pipe.Expire(ctx, rateKey(tenantID), rateWindow+time.Hour)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record send: %w", err)
	}
	return nil
}

func (s *redisRateLimitStore) Count(ctx context.Context, tenantID string, now time.Time) (int, error) {
	key := rateKey(tenantID)
	cutoff := now.Add(-rateWindow).UnixMilli()

	pipe := s.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", cutoff))
	card := pipe.ZCard(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to count sends: %w", err)
	}
	return int(card.Val()), nil
}

func (s *redisRateLimitStore) Refund(ctx context.Context, tenantID, id string) error {
	if err := s.client.ZRem(ctx, rateKey(tenantID), id).Err(); err != nil {
		return fmt.Errorf("failed to refund send: %w", err)
	}
	return nil
}

func (s *redisRateLimitStore) WarnOnce(ctx context.Context, tenantID string, now time.Time) (bool, error) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).Add(24 * time.Hour)
	ok, err := s.client.SetNX(ctx, warnKey(tenantID), 1, midnight.Sub(now)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check warning flag: %w", err)
	}
	return ok, nil
}

// memoryRateLimitStore is an in-process RateLimitStore for tests and
// single-replica deployments without redis.
type memoryRateLimitStore struct {
	mu     sync.Mutex
	sends  map[string]map[string]time.Time
	warned map[string]time.Time
}

// NewMemoryRateLimitStore creates an in-process RateLimitStore.
func NewMemoryRateLimitStore() RateLimitStore {
	return &memoryRateLimitStore{
		sends:  make(map[string]map[string]time.Time),
		warned: make(map[string]time.Time),
	}
}

func (s *memoryRateLimitStore) Record(_ context.Context, tenantID, id string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sends[tenantID] == nil {
		s.sends[tenantID] = make(map[string]time.Time)
	}
	s.sends[tenantID][id] = at
	return nil
}

func (s *memoryRateLimitStore) Count(_ context.Context, tenantID string, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := now.Add(-rateWindow)
	n := 0
	for id, at := range s.sends[tenantID] {
		if at.Before(cutoff) {
			delete(s.sends[tenantID], id)
			continue
		}
		n++
	}
	return n, nil
}

func (s *memoryRateLimitStore) Refund(_ context.Context, tenantID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sends[tenantID], id)
	return nil
}

func (s *memoryRateLimitStore) WarnOnce(_ context.Context, tenantID string, now time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if last, ok := s.warned[tenantID]; ok && sameDay(last, now) {
		return false, nil
	}
	s.warned[tenantID] = now
	return true, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
