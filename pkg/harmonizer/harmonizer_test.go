package harmonizer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokochat/sokochat/pkg/config"
)

type recordingHandler struct {
	mu    sync.Mutex
	turns []Turn
}

func (r *recordingHandler) HandleTurn(_ context.Context, turn Turn) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.turns = append(r.turns, turn)
	return nil
}

func (r *recordingHandler) all() []Turn {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Turn(nil), r.turns...)
}

func newTestHarmonizer(handler TurnHandler) *Harmonizer {
	return New(NewMemoryStore(), config.DefaultHarmonizerConfig(), handler)
}

func msg(id, text string) BufferedMessage {
	return BufferedMessage{
		ProviderMessageID: id,
		TenantID:          "tenant-1",
		CustomerID:        "cust-1",
		Text:              text,
		ReceivedAt:        time.Now(),
	}
}

func TestIngest_BuffersWithinWindow(t *testing.T) {
	handler := &recordingHandler{}
	h := newTestHarmonizer(handler)
	ctx := context.Background()

	d, err := h.Ingest(ctx, "conv-1", msg("m1", "hi"), false)
	require.NoError(t, err)
	assert.Equal(t, DispositionBuffered, d)

	d, err = h.Ingest(ctx, "conv-1", msg("m2", "do you have dresses?"), false)
	require.NoError(t, err)
	assert.Equal(t, DispositionBuffered, d)

	assert.Empty(t, handler.all(), "nothing flushes before the window elapses")
}

func TestIngest_DuplicateProviderMessageID(t *testing.T) {
	handler := &recordingHandler{}
	h := newTestHarmonizer(handler)
	ctx := context.Background()

	_, err := h.Ingest(ctx, "conv-1", msg("m1", "hi"), false)
	require.NoError(t, err)

	d, err := h.Ingest(ctx, "conv-1", msg("m1", "hi"), false)
	require.NoError(t, err)
	assert.Equal(t, DispositionDuplicate, d)

	// Flush and confirm the duplicate was not buffered.
	base := time.Now()
	h.now = func() time.Time { return base.Add(time.Minute) }
	h.flushDue(ctx)

	turns := handler.all()
	require.Len(t, turns, 1)
	assert.Len(t, turns[0].Messages, 1)
}

// appendFailingStore fails the first Append calls to simulate a store
// outage between the idempotency claim and the buffer write.
type appendFailingStore struct {
	Store
	failures int
}

func (s *appendFailingStore) Append(ctx context.Context, conversationID string, m BufferedMessage, dueAt time.Time) (int, error) {
	if s.failures > 0 {
		s.failures--
		return 0, errors.New("store unavailable")
	}
	return s.Store.Append(ctx, conversationID, m, dueAt)
}

func TestIngest_BufferFailureReleasesClaim(t *testing.T) {
	handler := &recordingHandler{}
	store := &appendFailingStore{Store: NewMemoryStore(), failures: 1}
	h := New(store, config.DefaultHarmonizerConfig(), handler)
	ctx := context.Background()

	_, err := h.Ingest(ctx, "conv-1", msg("m1", "hi"), false)
	require.Error(t, err)

	// The provider's redelivery lands instead of reading as a duplicate.
	d, err := h.Ingest(ctx, "conv-1", msg("m1", "hi"), false)
	require.NoError(t, err)
	assert.Equal(t, DispositionBuffered, d)
}

func TestFlush_MergesBurstIntoOneTurn(t *testing.T) {
	handler := &recordingHandler{}
	h := newTestHarmonizer(handler)
	ctx := context.Background()

	_, err := h.Ingest(ctx, "conv-1", msg("m1", "hi"), false)
	require.NoError(t, err)
	_, err = h.Ingest(ctx, "conv-1", msg("m2", "do you have dresses"), false)
	require.NoError(t, err)
	_, err = h.Ingest(ctx, "conv-1", msg("m3", "in blue"), false)
	require.NoError(t, err)

	base := time.Now()
	h.now = func() time.Time { return base.Add(time.Minute) }
	h.flushDue(ctx)

	turns := handler.all()
	require.Len(t, turns, 1, "one burst produces exactly one turn")
	assert.Equal(t, "conv-1", turns[0].ConversationID)
	assert.Equal(t, "tenant-1", turns[0].TenantID)
	assert.Len(t, turns[0].Messages, 3)
	assert.Equal(t, "hi\ndo you have dresses\nin blue", turns[0].CombinedText)

	// A second poll finds nothing.
	h.flushDue(ctx)
	assert.Len(t, handler.all(), 1)
}

func TestFlush_PreservesArrivalOrder(t *testing.T) {
	handler := &recordingHandler{}
	h := newTestHarmonizer(handler)
	ctx := context.Background()

	for _, m := range []BufferedMessage{msg("m1", "one"), msg("m2", "two"), msg("m3", "three")} {
		_, err := h.Ingest(ctx, "conv-1", m, false)
		require.NoError(t, err)
	}

	base := time.Now()
	h.now = func() time.Time { return base.Add(time.Minute) }
	h.flushDue(ctx)

	turns := handler.all()
	require.Len(t, turns, 1)
	ids := make([]string, 0, 3)
	for _, m := range turns[0].Messages {
		ids = append(ids, m.ProviderMessageID)
	}
	assert.Equal(t, []string{"m1", "m2", "m3"}, ids)
}

func TestIngest_TimeSensitiveBypassesWindow(t *testing.T) {
	handler := &recordingHandler{}
	h := newTestHarmonizer(handler)
	ctx := context.Background()

	_, err := h.Ingest(ctx, "conv-1", msg("m1", "earlier message"), false)
	require.NoError(t, err)

	d, err := h.Ingest(ctx, "conv-1", msg("m2", "STOP"), true)
	require.NoError(t, err)
	assert.Equal(t, DispositionFlushed, d)

	turns := handler.all()
	require.Len(t, turns, 1, "time-sensitive message flushes immediately")
	assert.Len(t, turns[0].Messages, 2, "buffered messages flush with it, preserving order")
	assert.Equal(t, "m1", turns[0].Messages[0].ProviderMessageID)
}

func TestIngest_BufferCapForcesFlush(t *testing.T) {
	handler := &recordingHandler{}
	cfg := config.DefaultHarmonizerConfig()
	cfg.MaxBuffered = 3
	h := New(NewMemoryStore(), cfg, handler)
	ctx := context.Background()

	_, err := h.Ingest(ctx, "conv-1", msg("m1", "a"), false)
	require.NoError(t, err)
	_, err = h.Ingest(ctx, "conv-1", msg("m2", "b"), false)
	require.NoError(t, err)

	d, err := h.Ingest(ctx, "conv-1", msg("m3", "c"), false)
	require.NoError(t, err)
	assert.Equal(t, DispositionFlushed, d)

	turns := handler.all()
	require.Len(t, turns, 1)
	assert.Len(t, turns[0].Messages, 3)
}

func TestFlushDue_IndependentConversations(t *testing.T) {
	handler := &recordingHandler{}
	h := newTestHarmonizer(handler)
	ctx := context.Background()

	_, err := h.Ingest(ctx, "conv-1", msg("m1", "first"), false)
	require.NoError(t, err)
	_, err = h.Ingest(ctx, "conv-2", msg("m2", "second"), false)
	require.NoError(t, err)

	base := time.Now()
	h.now = func() time.Time { return base.Add(time.Minute) }
	h.flushDue(ctx)

	turns := handler.all()
	require.Len(t, turns, 2, "each conversation flushes as its own turn")
	convs := map[string]bool{}
	for _, turn := range turns {
		convs[turn.ConversationID] = true
	}
	assert.True(t, convs["conv-1"])
	assert.True(t, convs["conv-2"])
}
