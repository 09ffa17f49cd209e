// Package refcontext manages short-lived enumerated lists a customer may
// refer back to ("1", "the first one", "the blue one"). Lists expire after a
// bounded TTL and only the most recent live lists per conversation are
// consulted.
package refcontext

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sokochat/sokochat/ent"
	"github.com/sokochat/sokochat/ent/referencecontext"
	"github.com/sokochat/sokochat/ent/schema"
)

// maxLiveLists caps how many live lists per conversation are kept and
// consulted during resolution.
const maxLiveLists = 5

// Item is one entry of a registered list.
type Item = schema.ReferenceItem

// List is a live reference list loaded for resolution.
type List struct {
	ID        string
	ListType  string
	Items     []Item
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Manager registers and loads reference lists for conversations.
type Manager struct {
	client *ent.Client
	ttl    time.Duration
}

// NewManager creates a Manager. ttl is the list lifetime, already clamped by
// configuration to at most five minutes.
func NewManager(client *ent.Client, ttl time.Duration) *Manager {
	return &Manager{client: client, ttl: ttl}
}

// Register stores a new enumerated list for the conversation and prunes rows
// beyond the live cap so stale lists cannot accumulate.
func (m *Manager) Register(ctx context.Context, tenantID, conversationID, listType string, items []Item) (*ent.ReferenceContext, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("reference list requires at least one item")
	}

	now := time.Now()
	row, err := m.client.ReferenceContext.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetConversationID(conversationID).
		SetListType(listType).
		SetItems(items).
		SetExpiresAt(now.Add(m.ttl)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to register reference list: %w", err)
	}

	// Keep only the newest maxLiveLists rows for the conversation.
	stale, err := m.client.ReferenceContext.Query().
		Where(referencecontext.ConversationID(conversationID)).
		Order(ent.Desc(referencecontext.FieldCreatedAt)).
		Offset(maxLiveLists).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query stale reference lists: %w", err)
	}
	if len(stale) > 0 {
		if _, err := m.client.ReferenceContext.Delete().
			Where(referencecontext.IDIn(stale...)).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to prune stale reference lists: %w", err)
		}
	}
	return row, nil
}

// Live returns the conversation's unexpired lists, newest first, capped at
// the live limit.
func (m *Manager) Live(ctx context.Context, conversationID string, now time.Time) ([]List, error) {
	rows, err := m.client.ReferenceContext.Query().
		Where(
			referencecontext.ConversationID(conversationID),
			referencecontext.ExpiresAtGT(now),
		).
		Order(ent.Desc(referencecontext.FieldCreatedAt)).
		Limit(maxLiveLists).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load reference lists: %w", err)
	}

	lists := make([]List, 0, len(rows))
	for _, row := range rows {
		lists = append(lists, List{
			ID:        row.ID,
			ListType:  row.ListType,
			Items:     row.Items,
			ExpiresAt: row.ExpiresAt,
			CreatedAt: row.CreatedAt,
		})
	}
	return lists, nil
}

// HadRecentLists reports whether the conversation registered any list that
// has since expired. Used to distinguish "expired, treat as new inquiry"
// from "never saw a list, ask to specify".
func (m *Manager) HadRecentLists(ctx context.Context, conversationID string, now time.Time) (bool, error) {
	n, err := m.client.ReferenceContext.Query().
		Where(
			referencecontext.ConversationID(conversationID),
			referencecontext.ExpiresAtLTE(now),
		).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count expired reference lists: %w", err)
	}
	return n > 0, nil
}

// DeleteExpired removes lists that expired before the cutoff. Called by the
// retention job.
func (m *Manager) DeleteExpired(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := m.client.ReferenceContext.Delete().
		Where(referencecontext.ExpiresAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired reference lists: %w", err)
	}
	return n, nil
}
