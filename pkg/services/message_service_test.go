package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokochat/sokochat/ent/scheduledmessage"
	"github.com/sokochat/sokochat/pkg/dispatch"
)

type stubMessageDispatcher struct {
	inputs []dispatch.Input
	err    error
}

func (s *stubMessageDispatcher) Send(_ context.Context, in dispatch.Input) (*dispatch.Result, error) {
	s.inputs = append(s.inputs, in)
	if s.err != nil {
		return nil, s.err
	}
	return &dispatch.Result{Outcome: dispatch.OutcomeSent}, nil
}

func (s *stubMessageDispatcher) Status(context.Context, string) (*dispatch.RateLimitStatus, error) {
	return &dispatch.RateLimitStatus{Limit: 100, Used: 3, Remaining: 97, Usage: 0.03}, nil
}

func newMessageService(f *fixture, d MessageDispatcher) *MessageService {
	customers := NewCustomerService(f.client, f.audit)
	convos := NewConversationService(f.client, f.audit)
	return NewMessageService(f.client, d, customers, convos)
}

func TestMessageService_SendManual(t *testing.T) {
	f := newFixture(t)
	d := &stubMessageDispatcher{}
	svc := newMessageService(f, d)
	ctx := context.Background()
	cust := seedChatCustomer(t, f, "+254700000001")

	res, err := svc.Send(ctx, SendInput{
		TenantID:   f.tenant.ID,
		CustomerID: cust.ID,
		Content:    "Habari! Your order is ready for pickup.",
	})
	require.NoError(t, err)
	assert.Equal(t, dispatch.OutcomeSent, res.Outcome)

	require.Len(t, d.inputs, 1)
	in := d.inputs[0]
	assert.Equal(t, f.tenant.ID, in.TenantID)
	assert.Equal(t, cust.ID, in.CustomerID)
	assert.NotEmpty(t, in.ConversationID, "conversation created on first send")
	assert.Equal(t, "manual_outbound", string(in.MessageType))
}

func TestMessageService_ContentXORTemplate(t *testing.T) {
	f := newFixture(t)
	svc := newMessageService(f, &stubMessageDispatcher{})
	ctx := context.Background()
	cust := seedChatCustomer(t, f, "+254700000001")

	_, err := svc.Send(ctx, SendInput{TenantID: f.tenant.ID, CustomerID: cust.ID})
	assert.True(t, IsValidationError(err), "neither content nor template")

	tpl, err := NewTemplateService(f.client).Create(ctx, f.tenant.ID, "greeting", "Habari {{name}}!")
	require.NoError(t, err)

	_, err = svc.Send(ctx, SendInput{
		TenantID:   f.tenant.ID,
		CustomerID: cust.ID,
		Content:    "text",
		TemplateID: tpl.ID,
	})
	assert.True(t, IsValidationError(err), "both content and template")

	_, err = svc.Send(ctx, SendInput{
		TenantID:   f.tenant.ID,
		CustomerID: cust.ID,
		TemplateID: "no-such-template",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMessageService_Schedule(t *testing.T) {
	f := newFixture(t)
	svc := newMessageService(f, &stubMessageDispatcher{})
	ctx := context.Background()
	cust := seedChatCustomer(t, f, "+254700000001")

	dueAt := time.Now().Add(2 * time.Hour)
	sm, err := svc.Schedule(ctx, ScheduleInput{
		TenantID:    f.tenant.ID,
		CustomerID:  cust.ID,
		Content:     "Pickup reminder",
		ScheduledAt: dueAt,
	})
	require.NoError(t, err)
	assert.Equal(t, scheduledmessage.StatusPending, sm.Status)
	assert.Equal(t, scheduledmessage.MessageTypeManualOutbound, sm.MessageType)
	assert.WithinDuration(t, dueAt, sm.ScheduledAt, time.Second)

	_, err = svc.Schedule(ctx, ScheduleInput{
		TenantID:    f.tenant.ID,
		CustomerID:  cust.ID,
		Content:     "too late",
		ScheduledAt: time.Now().Add(-time.Minute),
	})
	assert.True(t, IsValidationError(err), "past schedule rejected")
}

func TestMessageService_CancelScheduled(t *testing.T) {
	f := newFixture(t)
	svc := newMessageService(f, &stubMessageDispatcher{})
	ctx := context.Background()
	cust := seedChatCustomer(t, f, "+254700000001")

	sm, err := svc.Schedule(ctx, ScheduleInput{
		TenantID:    f.tenant.ID,
		CustomerID:  cust.ID,
		Content:     "Pickup reminder",
		ScheduledAt: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	require.NoError(t, svc.CancelScheduled(ctx, f.tenant.ID, sm.ID))

	got, err := f.client.ScheduledMessage.Get(ctx, sm.ID)
	require.NoError(t, err)
	assert.Equal(t, scheduledmessage.StatusCanceled, got.Status)

	err = svc.CancelScheduled(ctx, f.tenant.ID, sm.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition, "already canceled")
}

func TestMessageService_RateLimitStatus(t *testing.T) {
	f := newFixture(t)
	svc := newMessageService(f, &stubMessageDispatcher{})

	status, err := svc.RateLimitStatus(context.Background(), f.tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, 97, status.Remaining)
}
