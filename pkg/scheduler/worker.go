package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/sokochat/sokochat/ent"
	"github.com/sokochat/sokochat/ent/conversation"
	"github.com/sokochat/sokochat/ent/message"
	"github.com/sokochat/sokochat/ent/scheduledmessage"
	"github.com/sokochat/sokochat/pkg/config"
	"github.com/sokochat/sokochat/pkg/dispatch"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and dispatches due
// scheduled messages.
type Worker struct {
	id         string
	podID      string
	client     *ent.Client
	config     *config.QueueConfig
	dispatcher MessageDispatcher
	stopCh     chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup

	// Health tracking
	mu                 sync.RWMutex
	status             WorkerStatus
	currentMessageID   string
	messagesDispatched int
	lastActivity       time.Time
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, dispatcher MessageDispatcher) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		dispatcher:   dispatcher,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:                 w.id,
		Status:             string(w.status),
		CurrentMessageID:   w.currentMessageID,
		MessagesDispatched: w.messagesDispatched,
		LastActivity:       w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Scheduler worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndDispatch(ctx); err != nil {
				if errors.Is(err, ErrNoMessagesDue) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error dispatching scheduled message", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndDispatch checks capacity, claims a due message, and dispatches it.
func (w *Worker) pollAndDispatch(ctx context.Context) error {
	// Best-effort global capacity check; racy with concurrent workers but
	// bounded by WorkerCount and mitigated by poll jitter.
	inFlight, err := w.client.ScheduledMessage.Query().
		Where(
			scheduledmessage.StatusEQ(scheduledmessage.StatusPending),
			scheduledmessage.ClaimedByNotNil(),
		).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking in-flight dispatches: %w", err)
	}
	if inFlight >= w.config.MaxConcurrentDispatches {
		return ErrAtCapacity
	}

	row, err := w.claimNext(ctx)
	if err != nil {
		return err
	}

	log := slog.With("scheduled_message_id", row.ID, "worker_id", w.id)
	log.Info("Scheduled message claimed", "message_type", row.MessageType)

	w.setStatus(WorkerStatusWorking, row.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	dispatchCtx, cancel := context.WithTimeout(ctx, w.config.DispatchTimeout)
	defer cancel()

	if err := w.dispatch(dispatchCtx, row); err != nil {
		log.Error("Scheduled dispatch failed", "error", err)
	}

	w.mu.Lock()
	w.messagesDispatched++
	w.mu.Unlock()
	return nil
}

// claimNext atomically claims the oldest due message using FOR UPDATE SKIP
// LOCKED. The row stays pending; the claim marks it invisible to other
// workers until it reaches a terminal status or the claim is released.
func (w *Worker) claimNext(ctx context.Context) (*ent.ScheduledMessage, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row, err := tx.ScheduledMessage.Query().
		Where(
			scheduledmessage.StatusEQ(scheduledmessage.StatusPending),
			scheduledmessage.ClaimedByIsNil(),
			scheduledmessage.ScheduledAtLTE(time.Now()),
		).
		Order(ent.Asc(scheduledmessage.FieldScheduledAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoMessagesDue
		}
		return nil, fmt.Errorf("failed to query due messages: %w", err)
	}

	row, err = row.Update().
		SetClaimedBy(w.podID).
		SetClaimedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim scheduled message: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return row, nil
}

// dispatch runs a claimed row through the outbound pipeline and records the
// terminal status on the row.
func (w *Worker) dispatch(ctx context.Context, row *ent.ScheduledMessage) error {
	if row.CustomerID == nil || *row.CustomerID == "" {
		return w.finishFailed(ctx, row, "no recipient customer")
	}

	conversationID, err := w.resolveConversation(ctx, row)
	if err != nil {
		return w.finishFailed(ctx, row, fmt.Sprintf("failed to resolve conversation: %v", err))
	}

	in := dispatch.Input{
		TenantID:       row.TenantID,
		ConversationID: conversationID,
		CustomerID:     *row.CustomerID,
		MessageType:    message.MessageType(row.MessageType),
		Content:        row.Content,
	}
	if row.TemplateID != nil {
		in.TemplateID = *row.TemplateID
		in.TemplateContext = row.TemplateContext
	}
	if mediaURL, ok := row.Metadata["media_url"].(string); ok {
		in.MediaURL = mediaURL
	}

	res, err := w.dispatcher.Send(ctx, in)
	if err != nil {
		return w.finishFailed(ctx, row, err.Error())
	}

	switch res.Outcome {
	case dispatch.OutcomeSent:
		if _, err := w.client.ScheduledMessage.UpdateOneID(row.ID).
			SetStatus(scheduledmessage.StatusSent).
			SetSentMessageID(res.Message.ID).
			Save(ctx); err != nil {
			return fmt.Errorf("failed to mark scheduled message sent: %w", err)
		}
		return nil

	case dispatch.OutcomeSkippedNoConsent:
		if _, err := w.client.ScheduledMessage.UpdateOneID(row.ID).
			SetStatus(scheduledmessage.StatusCanceled).
			SetFailureReason("customer has not consented to this message type").
			Save(ctx); err != nil {
			return fmt.Errorf("failed to cancel scheduled message: %w", err)
		}
		return nil

	case dispatch.OutcomeDeferredQuiet, dispatch.OutcomeDeferredRateLimit:
		// The pipeline created a replacement row at the new time; retire this
		// one so the send is not duplicated.
		reason := fmt.Sprintf("deferred (%s), rescheduled as %s", res.Outcome, res.Scheduled.ID)
		if _, err := w.client.ScheduledMessage.UpdateOneID(row.ID).
			SetStatus(scheduledmessage.StatusCanceled).
			SetFailureReason(reason).
			Save(ctx); err != nil {
			return fmt.Errorf("failed to retire deferred scheduled message: %w", err)
		}
		return nil

	default: // OutcomeFailed
		reason := "send failed"
		if res.Message != nil && res.Message.FailureReason != nil {
			reason = *res.Message.FailureReason
		}
		return w.finishFailed(ctx, row, reason)
	}
}

// resolveConversation returns the conversation to attach the outbound
// message to: the one recorded at deferral time, else the customer's most
// recent, else a fresh one.
func (w *Worker) resolveConversation(ctx context.Context, row *ent.ScheduledMessage) (string, error) {
	if id, ok := row.Metadata["conversation_id"].(string); ok && id != "" {
		return id, nil
	}

	conv, err := w.client.Conversation.Query().
		Where(
			conversation.TenantID(row.TenantID),
			conversation.CustomerID(*row.CustomerID),
			conversation.DeletedAtIsNil(),
		).
		Order(ent.Desc(conversation.FieldCreatedAt)).
		First(ctx)
	if err == nil {
		return conv.ID, nil
	}
	if !ent.IsNotFound(err) {
		return "", err
	}

	conv, err = w.client.Conversation.Create().
		SetID(uuid.NewString()).
		SetTenantID(row.TenantID).
		SetCustomerID(*row.CustomerID).
		Save(ctx)
	if err != nil {
		return "", err
	}
	return conv.ID, nil
}

func (w *Worker) finishFailed(ctx context.Context, row *ent.ScheduledMessage, reason string) error {
	if _, err := w.client.ScheduledMessage.UpdateOneID(row.ID).
		SetStatus(scheduledmessage.StatusFailed).
		SetFailureReason(reason).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to mark scheduled message failed: %w", err)
	}
	slog.Warn("Scheduled message failed",
		"scheduled_message_id", row.ID, "reason", reason)
	return nil
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, messageID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentMessageID = messageID
	w.lastActivity = time.Now()
}
