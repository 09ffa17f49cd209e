package agent

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// lockTTL bounds how long a turn may hold the conversation lock. A crashed
// worker's lock expires rather than wedging the conversation.
const lockTTL = 2 * time.Minute

// ConversationLocker serializes turns: at most one turn per conversation is
// in flight across all replicas.
type ConversationLocker interface {
	// TryAcquire attempts to take the conversation lock. On success the
	// returned release function frees it.
	TryAcquire(ctx context.Context, conversationID string) (release func(ctx context.Context), ok bool, err error)
}

func lockKey(conversationID string) string { return "agent:turn:" + conversationID }

// releaseScript deletes the lock only when the caller still owns it, so a
// slow turn cannot release a successor's lock after its TTL expired.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type redisLocker struct {
	client redis.UniversalClient
}

// NewRedisLocker creates a redis-backed ConversationLocker shared by all
// replicas.
func NewRedisLocker(client redis.UniversalClient) ConversationLocker {
	return &redisLocker{client: client}
}

func (l *redisLocker) TryAcquire(ctx context.Context, conversationID string) (func(ctx context.Context), bool, error) {
	token := uuid.New().String()
	ok, err := l.client.SetNX(ctx, lockKey(conversationID), token, lockTTL).Result()
	if err != nil {
		return nil, false, fmt.Errorf("failed to acquire conversation lock: %w", err)
	}
	if !ok {
		return nil, false, nil
	}
	release := func(ctx context.Context) {
		_ = releaseScript.Run(ctx, l.client, []string{lockKey(conversationID)}, token).Err()
	}
	return release, true, nil
}

type memoryLocker struct {
	mu    sync.Mutex
	locks map[string]bool
}

// NewMemoryLocker creates an in-process ConversationLocker for tests and
// single-node development.
func NewMemoryLocker() ConversationLocker {
	return &memoryLocker{locks: make(map[string]bool)}
}

func (l *memoryLocker) TryAcquire(_ context.Context, conversationID string) (func(ctx context.Context), bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.locks[conversationID] {
		return nil, false, nil
	}
	l.locks[conversationID] = true
	release := func(context.Context) {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.locks, conversationID)
	}
	return release, true, nil
}
