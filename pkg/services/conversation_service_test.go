package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokochat/sokochat/ent"
	"github.com/sokochat/sokochat/ent/conversation"
	"github.com/sokochat/sokochat/ent/message"
)

func seedChatCustomer(t *testing.T, f *fixture, phone string) *ent.Customer {
	t.Helper()
	c, err := NewCustomerService(f.client, f.audit).Create(context.Background(), CreateCustomerInput{
		TenantID:  f.tenant.ID,
		PhoneE164: phone,
	})
	require.NoError(t, err)
	return c
}

func TestConversationService_GetOrCreate(t *testing.T) {
	f := newFixture(t)
	svc := NewConversationService(f.client, f.audit)
	ctx := context.Background()
	cust := seedChatCustomer(t, f, "+254700000001")

	first, err := svc.GetOrCreate(ctx, f.tenant.ID, cust.ID)
	require.NoError(t, err)
	assert.Equal(t, conversation.StatusBot, first.Status)

	second, err := svc.GetOrCreate(ctx, f.tenant.ID, cust.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestConversationService_HandoffAndRelease(t *testing.T) {
	f := newFixture(t)
	svc := NewConversationService(f.client, f.audit)
	ctx := context.Background()
	cust := seedChatCustomer(t, f, "+254700000001")

	conv, err := svc.GetOrCreate(ctx, f.tenant.ID, cust.ID)
	require.NoError(t, err)

	handed, err := svc.Handoff(ctx, f.tenant.ID, conv.ID, f.owner.ID)
	require.NoError(t, err)
	assert.Equal(t, conversation.StatusHandoff, handed.Status)

	// Idempotent: a second handoff is a no-op, not an error.
	again, err := svc.Handoff(ctx, f.tenant.ID, conv.ID, f.owner.ID)
	require.NoError(t, err)
	assert.Equal(t, conversation.StatusHandoff, again.Status)

	released, err := svc.Release(ctx, f.tenant.ID, conv.ID, f.owner.ID)
	require.NoError(t, err)
	assert.Equal(t, conversation.StatusBot, released.Status)

	_, err = svc.Release(ctx, f.tenant.ID, conv.ID, f.owner.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	logs, _, err := f.audit.List(ctx, f.tenant.ID, 10, 0)
	require.NoError(t, err)
	actions := make([]string, 0, len(logs))
	for _, l := range logs {
		actions = append(actions, l.Action)
	}
	assert.Contains(t, actions, "conversation.handoff")
	assert.Contains(t, actions, "conversation.release")
}

func TestConversationService_MessagesPaged(t *testing.T) {
	f := newFixture(t)
	svc := NewConversationService(f.client, f.audit)
	ctx := context.Background()
	cust := seedChatCustomer(t, f, "+254700000001")

	conv, err := svc.GetOrCreate(ctx, f.tenant.ID, cust.ID)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := f.client.Message.Create().
			SetID(uuid.New().String()).
			SetTenantID(f.tenant.ID).
			SetConversationID(conv.ID).
			SetDirection(message.DirectionInbound).
			SetMessageType(message.MessageTypeCustomerInbound).
			SetContent("habari").
			Save(ctx)
		require.NoError(t, err)
	}

	rows, total, err := svc.Messages(ctx, f.tenant.ID, conv.ID, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, rows, 2)

	_, _, err = svc.Messages(ctx, "other-tenant", conv.ID, 10, 0)
	assert.ErrorIs(t, err, ErrNotFound)
}
