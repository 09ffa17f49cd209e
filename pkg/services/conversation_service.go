package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sokochat/sokochat/ent"
	"github.com/sokochat/sokochat/ent/conversation"
	"github.com/sokochat/sokochat/ent/message"
)

// ConversationService exposes the conversation views and the human handoff
// controls used by the dashboard.
type ConversationService struct {
	client *ent.Client
	audit  *AuditService
}

// NewConversationService creates a ConversationService.
func NewConversationService(client *ent.Client, audit *AuditService) *ConversationService {
	return &ConversationService{client: client, audit: audit}
}

// GetOrCreate returns the customer's conversation, creating one on first
// contact. One conversation per (tenant, customer).
func (s *ConversationService) GetOrCreate(ctx context.Context, tenantID, customerID string) (*ent.Conversation, error) {
	conv, err := s.client.Conversation.Query().
		Where(
			conversation.TenantID(tenantID),
			conversation.CustomerID(customerID),
			conversation.DeletedAtIsNil(),
		).
		Order(ent.Desc(conversation.FieldCreatedAt)).
		First(ctx)
	if err == nil {
		return conv, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}

	conv, err = s.client.Conversation.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetCustomerID(customerID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}
	return conv, nil
}

// List returns the tenant's conversations, most recently active first.
func (s *ConversationService) List(ctx context.Context, tenantID string, limit, offset int) ([]*ent.Conversation, int, error) {
	q := s.client.Conversation.Query().
		Where(
			conversation.TenantID(tenantID),
			conversation.DeletedAtIsNil(),
		)
	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count conversations: %w", err)
	}
	rows, err := q.
		Order(ent.Desc(conversation.FieldLastMessageAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list conversations: %w", err)
	}
	return rows, total, nil
}

// Messages returns a conversation's messages, oldest first.
func (s *ConversationService) Messages(ctx context.Context, tenantID, conversationID string, limit, offset int) ([]*ent.Message, int, error) {
	if _, err := s.get(ctx, tenantID, conversationID); err != nil {
		return nil, 0, err
	}

	q := s.client.Message.Query().
		Where(message.ConversationID(conversationID))
	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count messages: %w", err)
	}
	rows, err := q.
		Order(ent.Asc(message.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list messages: %w", err)
	}
	return rows, total, nil
}

// Handoff flips the conversation to human control; the agent stays quiet
// until Release.
func (s *ConversationService) Handoff(ctx context.Context, tenantID, conversationID, actorUserID string) (*ent.Conversation, error) {
	conv, err := s.get(ctx, tenantID, conversationID)
	if err != nil {
		return nil, err
	}
	if conv.Status == conversation.StatusHandoff {
		return conv, nil
	}

	updated, err := conv.Update().SetStatus(conversation.StatusHandoff).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to hand off conversation: %w", err)
	}

	s.audit.Record(ctx, AuditEntry{
		TenantID:    tenantID,
		ActorUserID: actorUserID,
		Action:      "conversation.handoff",
		TargetType:  "conversation",
		TargetID:    conversationID,
		Before:      map[string]interface{}{"status": string(conv.Status)},
		After:       map[string]interface{}{"status": string(conversation.StatusHandoff)},
	})
	slog.Info("conversation handed off",
		"conversation_id", conversationID, "tenant_id", tenantID, "actor_user_id", actorUserID)
	return updated, nil
}

// Release returns a handed-off conversation to the agent.
func (s *ConversationService) Release(ctx context.Context, tenantID, conversationID, actorUserID string) (*ent.Conversation, error) {
	conv, err := s.get(ctx, tenantID, conversationID)
	if err != nil {
		return nil, err
	}
	if conv.Status != conversation.StatusHandoff {
		return nil, fmt.Errorf("%w: conversation is %s", ErrInvalidTransition, conv.Status)
	}

	updated, err := conv.Update().SetStatus(conversation.StatusBot).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to release conversation: %w", err)
	}

	s.audit.Record(ctx, AuditEntry{
		TenantID:    tenantID,
		ActorUserID: actorUserID,
		Action:      "conversation.release",
		TargetType:  "conversation",
		TargetID:    conversationID,
	})
	return updated, nil
}

func (s *ConversationService) get(ctx context.Context, tenantID, conversationID string) (*ent.Conversation, error) {
	conv, err := s.client.Conversation.Query().
		Where(
			conversation.ID(conversationID),
			conversation.TenantID(tenantID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("conversation %s: %w", conversationID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}
	return conv, nil
}
