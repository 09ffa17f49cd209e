// Package outbox implements the transactional outbox: domain changes write
// an OutboxEvent row in the same transaction, a drainer delivers rows at
// least once, and pg_notify wakes the drainer so delivery is prompt without
// tight polling.
package outbox

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/sokochat/sokochat/ent"
)

// Channel is the NOTIFY channel the drainer listens on.
const Channel = "outbox_events"

// Publisher writes outbox rows and wakes the drainer.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a Publisher. The db parameter should be the *sql.DB
// from database.Client.DB(); it is used only for pg_notify.
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// Publish writes an outbox row inside the caller's transaction. The row
// becomes visible to the drainer when the caller commits; call Wake after a
// successful commit so delivery does not wait for the fallback poll.
func (p *Publisher) Publish(ctx context.Context, tx *ent.Tx, tenantID, topic string, payload map[string]interface{}) (*ent.OutboxEvent, error) {
	ev, err := tx.OutboxEvent.Create().
		SetTenantID(tenantID).
		SetTopic(topic).
		SetPayload(payload).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to write outbox event: %w", err)
	}
	return ev, nil
}

// Wake nudges the drainer via pg_notify. Best-effort: if the notify is lost
// (or the process dies before sending it), the fallback poll picks the row
// up within one interval.
func (p *Publisher) Wake(ctx context.Context) {
	if p.db == nil {
		return
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, '')", Channel); err != nil {
		slog.Warn("Failed to notify outbox drainer", "error", err)
	}
}
