package harmonizer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// idempotencyTTL is how long a provider message id claim is remembered.
// Provider retries arrive within minutes; 24h comfortably covers them.
const idempotencyTTL = 24 * time.Hour

// BufferedMessage is one inbound message waiting in a conversation's burst
// buffer.
type BufferedMessage struct {
	ProviderMessageID string    `json:"provider_message_id"`
	CustomerID        string    `json:"customer_id"`
	TenantID          string    `json:"tenant_id"`
	Text              string    `json:"text"`
	MediaURL          string    `json:"media_url,omitempty"`
	ReceivedAt        time.Time `json:"received_at"`
}

// Store is the shared burst-buffer state. All replicas see the same buffers
// so a restart loses nothing.
type Store interface {
	// ClaimMessage records the provider message id and reports whether this
	// call was the first claim. Duplicates return false.
	ClaimMessage(ctx context.Context, providerMessageID string) (bool, error)

	// ReleaseMessage drops a claim so a provider redelivery can land after a
	// buffering failure.
	ReleaseMessage(ctx context.Context, providerMessageID string) error

	// Append adds the message to the conversation's buffer and moves the
	// flush deadline to dueAt.
	Append(ctx context.Context, conversationID string, msg BufferedMessage, dueAt time.Time) (buffered int, err error)

	// Due returns conversation ids whose flush deadline has passed.
	Due(ctx context.Context, now time.Time, limit int) ([]string, error)

	// Drain atomically removes and returns the conversation's buffered
	// messages in arrival order and clears its deadline.
	Drain(ctx context.Context, conversationID string) ([]BufferedMessage, error)
}

// redisStore implements Store on redis: a SetNX key per provider message id,
// an RPUSH list per conversation, and one ZSET indexing flush deadlines.
type redisStore struct {
	client redis.UniversalClient
}

// NewRedisStore creates a redis-backed Store.
func NewRedisStore(client redis.UniversalClient) Store {
	return &redisStore{client: client}
}

func claimKey(providerMessageID string) string { return "harmonizer:seen:" + providerMessageID }
func bufferKey(conversationID string) string   { return "harmonizer:buffer:" + conversationID }

const dueKey = "harmonizer:due"

func (s *redisStore) ClaimMessage(ctx context.Context, providerMessageID string) (bool, error) {
	ok, err := s.client.SetNX(ctx, claimKey(providerMessageID), 1, idempotencyTTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to claim provider message id: %w", err)
	}
	return ok, nil
}

func (s *redisStore) ReleaseMessage(ctx context.Context, providerMessageID string) error {
	if err := s.client.Del(ctx, claimKey(providerMessageID)).Err(); err != nil {
		return fmt.Errorf("failed to release message claim: %w", err)
	}
	return nil
}

func (s *redisStore) Append(ctx context.Context, conversationID string, msg BufferedMessage, dueAt time.Time) (int, error) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal buffered message: %w", err)
	}

	pipe := s.client.TxPipeline()
	lenCmd := pipe.RPush(ctx, bufferKey(conversationID), payload)
	pipe.Expire(ctx, bufferKey(conversationID), time.Hour)
	pipe.ZAdd(ctx, dueKey, redis.Z{
		Score:  float64(dueAt.UnixMilli()),
		Member: conversationID,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to append to burst buffer: %w", err)
	}
	return int(lenCmd.Val()), nil
}

func (s *redisStore) Due(ctx context.Context, now time.Time, limit int) ([]string, error) {
	ids, err := s.client.ZRangeByScore(ctx, dueKey, &redis.ZRangeBy{
		Min:   "0",
		Max:   fmt.Sprintf("%d", now.UnixMilli()),
		Count: int64(limit),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to query due buffers: %w", err)
	}
	return ids, nil
}

// drainScript atomically reads and deletes a conversation's buffer and its
// deadline so two pollers cannot both flush the same burst.
var drainScript = redis.NewScript(`
local items = redis.call('LRANGE', KEYS[1], 0, -1)
redis.call('DEL', KEYS[1])
redis.call('ZREM', KEYS[2], ARGV[1])
return items
`)

func (s *redisStore) Drain(ctx context.Context, conversationID string) ([]BufferedMessage, error) {
	raw, err := drainScript.Run(ctx, s.client,
		[]string{bufferKey(conversationID), dueKey},
		conversationID).StringSlice()
	if err != nil {
		return nil, fmt.Errorf("failed to drain burst buffer: %w", err)
	}

	msgs := make([]BufferedMessage, 0, len(raw))
	for _, item := range raw {
		var msg BufferedMessage
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal buffered message: %w", err)
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}
