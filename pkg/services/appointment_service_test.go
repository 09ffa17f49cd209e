package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokochat/sokochat/ent"
	"github.com/sokochat/sokochat/ent/appointment"
	"github.com/sokochat/sokochat/ent/scheduledmessage"
)

func seedBookingCustomer(t *testing.T, f *fixture) *ent.Customer {
	t.Helper()
	c, err := NewCustomerService(f.client, f.audit).Create(context.Background(), CreateCustomerInput{
		TenantID:  f.tenant.ID,
		PhoneE164: "+254700000001",
	})
	require.NoError(t, err)
	return c
}

func TestAppointmentService_CreateSchedulesReminders(t *testing.T) {
	f := newFixture(t)
	svc := NewAppointmentService(f.client, f.audit)
	ctx := context.Background()
	cust := seedBookingCustomer(t, f)

	startsAt := time.Now().Add(48 * time.Hour)
	appt, err := svc.Create(ctx, CreateAppointmentInput{
		TenantID:    f.tenant.ID,
		CustomerID:  cust.ID,
		ServiceName: "Braiding",
		StartsAt:    startsAt,
	})
	require.NoError(t, err)
	assert.Equal(t, appointment.StatusScheduled, appt.Status)

	reminders, err := f.client.ScheduledMessage.Query().
		Where(scheduledmessage.AppointmentID(appt.ID)).
		Order(ent.Asc(scheduledmessage.FieldScheduledAt)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, reminders, 2)

	assert.WithinDuration(t, startsAt.Add(-24*time.Hour), reminders[0].ScheduledAt, time.Second)
	assert.WithinDuration(t, startsAt.Add(-2*time.Hour), reminders[1].ScheduledAt, time.Second)
	for _, r := range reminders {
		assert.Equal(t, scheduledmessage.MessageTypeReminder, r.MessageType)
		assert.Equal(t, scheduledmessage.StatusPending, r.Status)
		assert.Contains(t, r.Content, "Braiding")
	}
}

func TestAppointmentService_NearTermSkipsPastReminder(t *testing.T) {
	f := newFixture(t)
	svc := NewAppointmentService(f.client, f.audit)
	ctx := context.Background()
	cust := seedBookingCustomer(t, f)

	// 3 hours out: the 24h slot is already past, only the 2h reminder fits.
	appt, err := svc.Create(ctx, CreateAppointmentInput{
		TenantID:    f.tenant.ID,
		CustomerID:  cust.ID,
		ServiceName: "Braiding",
		StartsAt:    time.Now().Add(3 * time.Hour),
	})
	require.NoError(t, err)

	count, err := f.client.ScheduledMessage.Query().
		Where(scheduledmessage.AppointmentID(appt.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestAppointmentService_CancelCancelsPendingReminders(t *testing.T) {
	f := newFixture(t)
	svc := NewAppointmentService(f.client, f.audit)
	ctx := context.Background()
	cust := seedBookingCustomer(t, f)

	appt, err := svc.Create(ctx, CreateAppointmentInput{
		TenantID:    f.tenant.ID,
		CustomerID:  cust.ID,
		ServiceName: "Braiding",
		StartsAt:    time.Now().Add(48 * time.Hour),
	})
	require.NoError(t, err)

	// One reminder already went out before the cancellation.
	sent, err := f.client.ScheduledMessage.Query().
		Where(scheduledmessage.AppointmentID(appt.ID)).
		First(ctx)
	require.NoError(t, err)
	require.NoError(t, sent.Update().SetStatus(scheduledmessage.StatusSent).Exec(ctx))

	canceled, err := svc.Cancel(ctx, f.tenant.ID, appt.ID, f.owner.ID)
	require.NoError(t, err)
	assert.Equal(t, appointment.StatusCanceled, canceled.Status)

	rows, err := f.client.ScheduledMessage.Query().
		Where(scheduledmessage.AppointmentID(appt.ID)).
		All(ctx)
	require.NoError(t, err)
	statuses := map[scheduledmessage.Status]int{}
	for _, r := range rows {
		statuses[r.Status]++
	}
	assert.Equal(t, 1, statuses[scheduledmessage.StatusSent], "dispatched reminder stays sent")
	assert.Equal(t, 1, statuses[scheduledmessage.StatusCanceled])

	_, err = svc.Cancel(ctx, f.tenant.ID, appt.ID, f.owner.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestAppointmentService_Validation(t *testing.T) {
	f := newFixture(t)
	svc := NewAppointmentService(f.client, f.audit)
	ctx := context.Background()
	cust := seedBookingCustomer(t, f)

	_, err := svc.Create(ctx, CreateAppointmentInput{
		TenantID:   f.tenant.ID,
		CustomerID: cust.ID,
		StartsAt:   time.Now().Add(time.Hour),
	})
	assert.True(t, IsValidationError(err), "service name required")

	_, err = svc.Create(ctx, CreateAppointmentInput{
		TenantID:    f.tenant.ID,
		CustomerID:  cust.ID,
		ServiceName: "Braiding",
		StartsAt:    time.Now().Add(-time.Hour),
	})
	assert.True(t, IsValidationError(err), "past start rejected")
}

func TestAppointmentService_Complete(t *testing.T) {
	f := newFixture(t)
	svc := NewAppointmentService(f.client, f.audit)
	ctx := context.Background()
	cust := seedBookingCustomer(t, f)

	appt, err := svc.Create(ctx, CreateAppointmentInput{
		TenantID:    f.tenant.ID,
		CustomerID:  cust.ID,
		ServiceName: "Braiding",
		StartsAt:    time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	done, err := svc.Complete(ctx, f.tenant.ID, appt.ID)
	require.NoError(t, err)
	assert.Equal(t, appointment.StatusCompleted, done.Status)

	_, err = svc.Cancel(ctx, f.tenant.ID, appt.ID, f.owner.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}
