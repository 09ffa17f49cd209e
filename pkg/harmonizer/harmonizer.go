// Package harmonizer collects bursts of rapidly-arriving inbound messages
// into a single conversational turn. A conversation's buffer flushes once the
// configured window has elapsed since its latest message; time-sensitive
// messages bypass buffering entirely. Duplicate provider message ids are
// dropped idempotently.
package harmonizer

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/sokochat/sokochat/pkg/config"
)

// drainBatchLimit caps how many due conversations one poll cycle flushes.
const drainBatchLimit = 64

// Turn is one harmonized agent input: all buffered messages of a burst in
// arrival order plus their concatenation.
type Turn struct {
	ConversationID string
	TenantID       string
	CustomerID     string
	Messages       []BufferedMessage
	CombinedText   string
}

// TurnHandler receives harmonized turns. Implemented by the agent
// orchestrator.
type TurnHandler interface {
	HandleTurn(ctx context.Context, turn Turn) error
}

// TurnHandlerFunc adapts a function to TurnHandler.
type TurnHandlerFunc func(ctx context.Context, turn Turn) error

// HandleTurn calls f.
func (f TurnHandlerFunc) HandleTurn(ctx context.Context, turn Turn) error { return f(ctx, turn) }

// Disposition reports what Ingest did with an inbound message.
type Disposition string

const (
	// DispositionBuffered means the message joined the conversation's burst
	// buffer and will flush when the window elapses.
	DispositionBuffered Disposition = "buffered"
	// DispositionFlushed means the message caused an immediate flush
	// (buffer cap reached or time-sensitive bypass).
	DispositionFlushed Disposition = "flushed"
	// DispositionDuplicate means the provider message id was already seen.
	DispositionDuplicate Disposition = "duplicate"
)

// Harmonizer buffers inbound messages and flushes due bursts to the handler.
type Harmonizer struct {
	store   Store
	config  *config.HarmonizerConfig
	handler TurnHandler

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool

	now func() time.Time
}

// New creates a Harmonizer. The handler is invoked once per flushed burst.
func New(store Store, cfg *config.HarmonizerConfig, handler TurnHandler) *Harmonizer {
	return &Harmonizer{
		store:   store,
		config:  cfg,
		handler: handler,
		stopCh:  make(chan struct{}),
		now:     time.Now,
	}
}

// Ingest handles one inbound message. Time-sensitive messages flush
// immediately together with anything already buffered so per-conversation
// order is preserved.
func (h *Harmonizer) Ingest(ctx context.Context, conversationID string, msg BufferedMessage, timeSensitive bool) (Disposition, error) {
	fresh, err := h.store.ClaimMessage(ctx, msg.ProviderMessageID)
	if err != nil {
		return "", fmt.Errorf("failed to check message idempotency: %w", err)
	}
	if !fresh {
		slog.Debug("dropping duplicate inbound message",
			"conversation_id", conversationID,
			"provider_message_id", msg.ProviderMessageID)
		return DispositionDuplicate, nil
	}

	dueAt := h.now().Add(h.config.Window)
	buffered, err := h.store.Append(ctx, conversationID, msg, dueAt)
	if err != nil {
		// The claim must not outlive a failed buffer write, or the provider's
		// redelivery would be dropped as a duplicate.
		if relErr := h.store.ReleaseMessage(ctx, msg.ProviderMessageID); relErr != nil {
			slog.Error("failed to release message claim after buffer failure",
				"provider_message_id", msg.ProviderMessageID, "error", relErr)
		}
		return "", fmt.Errorf("failed to buffer inbound message: %w", err)
	}

	if timeSensitive || buffered >= h.config.MaxBuffered {
		if err := h.flush(ctx, conversationID); err != nil {
			return "", err
		}
		return DispositionFlushed, nil
	}
	return DispositionBuffered, nil
}

// Start begins the background poller that flushes due bursts.
// It is safe to call multiple times; subsequent calls are no-ops.
func (h *Harmonizer) Start(ctx context.Context) {
	if h.started {
		slog.Warn("Harmonizer already started, ignoring duplicate Start call")
		return
	}
	h.started = true

	slog.Info("Starting harmonizer",
		"window", h.config.Window,
		"poll_interval", h.config.PollInterval)

	h.wg.Add(1)
	go h.run(ctx)
}

// Stop signals the poller to stop and waits for in-flight flushes to finish.
func (h *Harmonizer) Stop() {
	h.stopOnce.Do(func() { close(h.stopCh) })
	h.wg.Wait()
	slog.Info("Harmonizer stopped")
}

func (h *Harmonizer) run(ctx context.Context) {
	defer h.wg.Done()
	for {
		select {
		case <-h.stopCh:
			return
		case <-ctx.Done():
			return
		case <-time.After(h.pollDelay()):
			h.flushDue(ctx)
		}
	}
}

// pollDelay jitters the poll interval so replicas do not poll in lockstep.
func (h *Harmonizer) pollDelay() time.Duration {
	delay := h.config.PollInterval
	if h.config.PollIntervalJitter > 0 {
		delay += time.Duration(rand.Int64N(int64(h.config.PollIntervalJitter)))
	}
	return delay
}

func (h *Harmonizer) flushDue(ctx context.Context) {
	ids, err := h.store.Due(ctx, h.now(), drainBatchLimit)
	if err != nil {
		slog.Error("failed to query due burst buffers", "error", err)
		return
	}
	for _, id := range ids {
		if err := h.flush(ctx, id); err != nil {
			slog.Error("failed to flush burst buffer", "conversation_id", id, "error", err)
		}
	}
}

// flush drains one conversation's buffer into a single turn. The drain is
// atomic in the store, so concurrent pollers never double-process a burst.
func (h *Harmonizer) flush(ctx context.Context, conversationID string) error {
	msgs, err := h.store.Drain(ctx, conversationID)
	if err != nil {
		return fmt.Errorf("failed to drain burst buffer: %w", err)
	}
	if len(msgs) == 0 {
		return nil
	}

	turn := Turn{
		ConversationID: conversationID,
		TenantID:       msgs[0].TenantID,
		CustomerID:     msgs[0].CustomerID,
		Messages:       msgs,
		CombinedText:   combine(msgs),
	}

	slog.Debug("flushing harmonized turn",
		"conversation_id", conversationID,
		"message_count", len(msgs))

	if err := h.handler.HandleTurn(ctx, turn); err != nil {
		return fmt.Errorf("failed to handle harmonized turn: %w", err)
	}
	return nil
}

func combine(msgs []BufferedMessage) string {
	parts := make([]string, 0, len(msgs))
	for _, m := range msgs {
		if text := strings.TrimSpace(m.Text); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n")
}
