package outbox

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sokochat/sokochat/ent"
	"github.com/sokochat/sokochat/ent/message"
	"github.com/sokochat/sokochat/pkg/dispatch"
)

// MessageDispatcher is the dispatch capability the notification handler
// needs.
type MessageDispatcher interface {
	Send(ctx context.Context, in dispatch.Input) (*dispatch.Result, error)
}

// NotificationHandler turns outbox events into transactional customer
// notifications. The payload must carry customer_id, conversation_id, and
// text; transactional sends bypass consent and rate limiting in the
// pipeline, and the telephony provider deduplicates on its side, so
// redelivery after a crash is harmless.
type NotificationHandler struct {
	dispatcher MessageDispatcher
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(dispatcher MessageDispatcher) *NotificationHandler {
	return &NotificationHandler{dispatcher: dispatcher}
}

// Handle delivers one event. Malformed payloads are logged and swallowed so
// a bad row cannot wedge the queue.
func (h *NotificationHandler) Handle(ctx context.Context, ev *ent.OutboxEvent) error {
	customerID, _ := ev.Payload["customer_id"].(string)
	conversationID, _ := ev.Payload["conversation_id"].(string)
	text, _ := ev.Payload["text"].(string)

	if customerID == "" || conversationID == "" || text == "" {
		slog.Error("Outbox event payload missing notification fields, skipping",
			"event_id", ev.ID, "topic", ev.Topic)
		return nil
	}

	res, err := h.dispatcher.Send(ctx, dispatch.Input{
		TenantID:       ev.TenantID,
		ConversationID: conversationID,
		CustomerID:     customerID,
		MessageType:    message.MessageTypeAutomatedTransactional,
		Content:        text,
	})
	if err != nil {
		return fmt.Errorf("failed to dispatch notification: %w", err)
	}

	slog.Info("Outbox notification dispatched",
		"event_id", ev.ID, "topic", ev.Topic, "outcome", res.Outcome)
	return nil
}
