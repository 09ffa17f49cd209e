package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sokochat/sokochat/ent"
	"github.com/sokochat/sokochat/ent/appointment"
	"github.com/sokochat/sokochat/ent/scheduledmessage"
)

// Reminder lead times before an appointment starts.
var reminderOffsets = []time.Duration{24 * time.Hour, 2 * time.Hour}

// AppointmentService manages bookings. Creating an appointment pre-schedules
// reminder messages; canceling it cancels the reminders that have not been
// dispatched yet.
type AppointmentService struct {
	client *ent.Client
	audit  *AuditService
}

// NewAppointmentService creates an AppointmentService.
func NewAppointmentService(client *ent.Client, audit *AuditService) *AppointmentService {
	return &AppointmentService{client: client, audit: audit}
}

// CreateAppointmentInput describes a new booking.
type CreateAppointmentInput struct {
	TenantID    string
	CustomerID  string
	ServiceName string
	StartsAt    time.Time
}

// Create books the appointment and schedules its reminders in one
// transaction. Reminder slots already in the past are skipped.
func (s *AppointmentService) Create(ctx context.Context, in CreateAppointmentInput) (*ent.Appointment, error) {
	if strings.TrimSpace(in.ServiceName) == "" {
		return nil, NewValidationError("service_name", "is required")
	}
	if !in.StartsAt.After(time.Now()) {
		return nil, NewValidationError("starts_at", "must be in the future")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	appt, err := tx.Appointment.Create().
		SetID(uuid.New().String()).
		SetTenantID(in.TenantID).
		SetCustomerID(in.CustomerID).
		SetServiceName(in.ServiceName).
		SetStartsAt(in.StartsAt).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	now := time.Now()
	for _, offset := range reminderOffsets {
		dueAt := in.StartsAt.Add(-offset)
		if !dueAt.After(now) {
			continue
		}
		if err := tx.ScheduledMessage.Create().
			SetID(uuid.New().String()).
			SetTenantID(in.TenantID).
			SetCustomerID(in.CustomerID).
			SetMessageType(scheduledmessage.MessageTypeReminder).
			SetContent(reminderText(in.ServiceName, in.StartsAt, offset)).
			SetScheduledAt(dueAt).
			SetAppointmentID(appt.ID).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to schedule reminder: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit appointment: %w", err)
	}

	s.audit.Record(ctx, AuditEntry{
		TenantID:   in.TenantID,
		Action:     "appointment.create",
		TargetType: "appointment",
		TargetID:   appt.ID,
		After: map[string]interface{}{
			"service_name": in.ServiceName,
			"starts_at":    in.StartsAt,
		},
	})
	return appt, nil
}

func reminderText(serviceName string, startsAt time.Time, offset time.Duration) string {
	when := startsAt.Format("Mon 2 Jan at 15:04")
	if offset <= 2*time.Hour {
		return fmt.Sprintf("Reminder: your %s appointment is coming up soon, %s. See you then!", serviceName, when)
	}
	return fmt.Sprintf("Reminder: your %s appointment is tomorrow, %s. Reply here if you need to reschedule.", serviceName, when)
}

// Get loads one appointment within the tenant.
func (s *AppointmentService) Get(ctx context.Context, tenantID, appointmentID string) (*ent.Appointment, error) {
	appt, err := s.client.Appointment.Query().
		Where(
			appointment.ID(appointmentID),
			appointment.TenantID(tenantID),
			appointment.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("appointment %s: %w", appointmentID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load appointment: %w", err)
	}
	return appt, nil
}

// List returns the tenant's appointments by start time.
func (s *AppointmentService) List(ctx context.Context, tenantID string, limit, offset int) ([]*ent.Appointment, int, error) {
	q := s.client.Appointment.Query().
		Where(
			appointment.TenantID(tenantID),
			appointment.DeletedAtIsNil(),
		)
	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count appointments: %w", err)
	}
	rows, err := q.
		Order(ent.Asc(appointment.FieldStartsAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list appointments: %w", err)
	}
	return rows, total, nil
}

// Cancel cancels a scheduled appointment and its pending reminders in one
// transaction. Reminders already sent stay sent.
func (s *AppointmentService) Cancel(ctx context.Context, tenantID, appointmentID, actorUserID string) (*ent.Appointment, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	appt, err := tx.Appointment.Query().
		Where(
			appointment.ID(appointmentID),
			appointment.TenantID(tenantID),
			appointment.DeletedAtIsNil(),
		).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("appointment %s: %w", appointmentID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load appointment: %w", err)
	}
	if appt.Status != appointment.StatusScheduled {
		return nil, fmt.Errorf("%w: appointment is %s", ErrInvalidTransition, appt.Status)
	}

	updated, err := tx.Appointment.UpdateOneID(appt.ID).
		SetStatus(appointment.StatusCanceled).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel appointment: %w", err)
	}

	if _, err := tx.ScheduledMessage.Update().
		Where(
			scheduledmessage.TenantID(tenantID),
			scheduledmessage.AppointmentID(appointmentID),
			scheduledmessage.StatusEQ(scheduledmessage.StatusPending),
		).
		SetStatus(scheduledmessage.StatusCanceled).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to cancel reminders: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit cancellation: %w", err)
	}

	s.audit.Record(ctx, AuditEntry{
		TenantID:    tenantID,
		ActorUserID: actorUserID,
		Action:      "appointment.cancel",
		TargetType:  "appointment",
		TargetID:    appointmentID,
		Before:      map[string]interface{}{"status": "scheduled"},
		After:       map[string]interface{}{"status": "canceled"},
	})
	return updated, nil
}

// Complete marks a past appointment done.
func (s *AppointmentService) Complete(ctx context.Context, tenantID, appointmentID string) (*ent.Appointment, error) {
	appt, err := s.Get(ctx, tenantID, appointmentID)
	if err != nil {
		return nil, err
	}
	if appt.Status != appointment.StatusScheduled {
		return nil, fmt.Errorf("%w: appointment is %s", ErrInvalidTransition, appt.Status)
	}
	updated, err := appt.Update().SetStatus(appointment.StatusCompleted).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to complete appointment: %w", err)
	}
	return updated, nil
}
