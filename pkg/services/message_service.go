package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sokochat/sokochat/ent"
	"github.com/sokochat/sokochat/ent/message"
	"github.com/sokochat/sokochat/ent/messagetemplate"
	"github.com/sokochat/sokochat/ent/scheduledmessage"
	"github.com/sokochat/sokochat/pkg/dispatch"
)

// MessageDispatcher is the outbound pipeline surface the service needs.
type MessageDispatcher interface {
	Send(ctx context.Context, in dispatch.Input) (*dispatch.Result, error)
	Status(ctx context.Context, tenantID string) (*dispatch.RateLimitStatus, error)
}

// MessageService handles operator-initiated sends and future-dated
// schedules. Inbound and agent sends go through their own paths.
type MessageService struct {
	client     *ent.Client
	dispatcher MessageDispatcher
	customers  *CustomerService
	convos     *ConversationService
}

// NewMessageService creates a MessageService.
func NewMessageService(client *ent.Client, dispatcher MessageDispatcher, customers *CustomerService, convos *ConversationService) *MessageService {
	return &MessageService{
		client:     client,
		dispatcher: dispatcher,
		customers:  customers,
		convos:     convos,
	}
}

// SendInput is one operator-initiated outbound message. Exactly one of
// Content or TemplateID must be set.
type SendInput struct {
	TenantID        string
	CustomerID      string
	Content         string
	TemplateID      string
	TemplateContext map[string]string
}

// Send dispatches a manual outbound message immediately. Manual sends count
// against the tenant's daily quota and a blocked send surfaces the rate
// limit to the caller.
func (s *MessageService) Send(ctx context.Context, in SendInput) (*dispatch.Result, error) {
	if err := s.validateContent(ctx, in.TenantID, in.Content, in.TemplateID); err != nil {
		return nil, err
	}
	if _, err := s.customers.Get(ctx, in.TenantID, in.CustomerID); err != nil {
		return nil, err
	}
	conv, err := s.convos.GetOrCreate(ctx, in.TenantID, in.CustomerID)
	if err != nil {
		return nil, err
	}

	result, err := s.dispatcher.Send(ctx, dispatch.Input{
		TenantID:        in.TenantID,
		ConversationID:  conv.ID,
		CustomerID:      in.CustomerID,
		MessageType:     message.MessageTypeManualOutbound,
		Content:         in.Content,
		TemplateID:      in.TemplateID,
		TemplateContext: in.TemplateContext,
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ScheduleInput is one future-dated outbound message.
type ScheduleInput struct {
	TenantID        string
	CustomerID      string
	Content         string
	TemplateID      string
	TemplateContext map[string]string
	ScheduledAt     time.Time
}

// Schedule records a pending scheduled message for the workers to pick up
// at its due time.
func (s *MessageService) Schedule(ctx context.Context, in ScheduleInput) (*ent.ScheduledMessage, error) {
	if err := s.validateContent(ctx, in.TenantID, in.Content, in.TemplateID); err != nil {
		return nil, err
	}
	if !in.ScheduledAt.After(time.Now()) {
		return nil, NewValidationError("scheduled_at", "must be in the future")
	}
	if _, err := s.customers.Get(ctx, in.TenantID, in.CustomerID); err != nil {
		return nil, err
	}

	create := s.client.ScheduledMessage.Create().
		SetID(uuid.New().String()).
		SetTenantID(in.TenantID).
		SetCustomerID(in.CustomerID).
		SetMessageType(scheduledmessage.MessageTypeManualOutbound).
		SetScheduledAt(in.ScheduledAt)
	if in.Content != "" {
		create.SetContent(in.Content)
	}
	if in.TemplateID != "" {
		create.SetTemplateID(in.TemplateID)
		if in.TemplateContext != nil {
			create.SetTemplateContext(in.TemplateContext)
		}
	}
	sm, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule message: %w", err)
	}
	return sm, nil
}

// CancelScheduled cancels a pending scheduled message. Already sent or
// claimed rows cannot be canceled.
func (s *MessageService) CancelScheduled(ctx context.Context, tenantID, scheduledID string) error {
	n, err := s.client.ScheduledMessage.Update().
		Where(
			scheduledmessage.ID(scheduledID),
			scheduledmessage.TenantID(tenantID),
			scheduledmessage.StatusEQ(scheduledmessage.StatusPending),
			scheduledmessage.ClaimedByIsNil(),
		).
		SetStatus(scheduledmessage.StatusCanceled).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel scheduled message: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("scheduled message %s is not pending: %w", scheduledID, ErrInvalidTransition)
	}
	return nil
}

// RateLimitStatus reports the tenant's current daily quota utilization.
func (s *MessageService) RateLimitStatus(ctx context.Context, tenantID string) (*dispatch.RateLimitStatus, error) {
	return s.dispatcher.Status(ctx, tenantID)
}

// validateContent enforces content XOR template, and that a referenced
// template belongs to the tenant.
func (s *MessageService) validateContent(ctx context.Context, tenantID, content, templateID string) error {
	if (content == "") == (templateID == "") {
		return NewValidationError("content", "exactly one of content or template_id is required")
	}
	if templateID == "" {
		return nil
	}
	exists, err := s.client.MessageTemplate.Query().
		Where(
			messagetemplate.ID(templateID),
			messagetemplate.TenantID(tenantID),
			messagetemplate.DeletedAtIsNil(),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check template: %w", err)
	}
	if !exists {
		return fmt.Errorf("template %s: %w", templateID, ErrNotFound)
	}
	return nil
}
