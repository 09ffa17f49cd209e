package harmonizer

import (
	"context"
	"sync"
	"time"
)

// memoryStore is an in-process Store for tests and single-replica
// deployments without redis.
type memoryStore struct {
	mu      sync.Mutex
	claimed map[string]time.Time
	buffers map[string][]BufferedMessage
	due     map[string]time.Time
}

// NewMemoryStore creates an in-process Store.
func NewMemoryStore() Store {
	return &memoryStore{
		claimed: make(map[string]time.Time),
		buffers: make(map[string][]BufferedMessage),
		due:     make(map[string]time.Time),
	}
}

func (s *memoryStore) ClaimMessage(_ context.Context, providerMessageID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if at, ok := s.claimed[providerMessageID]; ok && time.Since(at) < idempotencyTTL {
		return false, nil
	}
	s.claimed[providerMessageID] = time.Now()
	return true, nil
}

func (s *memoryStore) ReleaseMessage(_ context.Context, providerMessageID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.claimed, providerMessageID)
	return nil
}

func (s *memoryStore) Append(_ context.Context, conversationID string, msg BufferedMessage, dueAt time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buffers[conversationID] = append(s.buffers[conversationID], msg)
	s.due[conversationID] = dueAt
	return len(s.buffers[conversationID]), nil
}

func (s *memoryStore) Due(_ context.Context, now time.Time, limit int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []string
	for id, at := range s.due {
		if !at.After(now) {
			ids = append(ids, id)
			if len(ids) == limit {
				break
			}
		}
	}
	return ids, nil
}

func (s *memoryStore) Drain(_ context.Context, conversationID string) ([]BufferedMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msgs := s.buffers[conversationID]
	delete(s.buffers, conversationID)
	delete(s.due, conversationID)
	return msgs, nil
}
