package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/sokochat/sokochat/ent"
	"github.com/sokochat/sokochat/ent/customer"
)

var phoneE164Re = regexp.MustCompile(`^\+[1-9]\d{6,14}$`)

// CustomerService manages tenant customer records. Identity is
// (tenant_id, phone_e164); the same phone in two tenants is two unrelated
// rows.
type CustomerService struct {
	client *ent.Client
	audit  *AuditService
}

// NewCustomerService creates a CustomerService.
func NewCustomerService(client *ent.Client, audit *AuditService) *CustomerService {
	return &CustomerService{client: client, audit: audit}
}

// CreateCustomerInput describes a new customer.
type CreateCustomerInput struct {
	TenantID    string
	PhoneE164   string
	DisplayName string
	Tags        []string
	Language    string
	Timezone    string
}

// Create adds a customer to the tenant.
func (s *CustomerService) Create(ctx context.Context, in CreateCustomerInput) (*ent.Customer, error) {
	phone := strings.TrimSpace(in.PhoneE164)
	if !phoneE164Re.MatchString(phone) {
		return nil, NewValidationError("phone_e164", "must be an E.164 phone number")
	}

	create := s.client.Customer.Create().
		SetID(uuid.New().String()).
		SetTenantID(in.TenantID).
		SetPhoneE164(phone).
		SetDisplayName(in.DisplayName)
	if len(in.Tags) > 0 {
		create.SetTags(in.Tags)
	}
	if in.Language != "" {
		create.SetLanguage(in.Language)
	}
	if in.Timezone != "" {
		create.SetTimezone(in.Timezone)
	}
	c, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("customer %s: %w", phone, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return c, nil
}

// GetOrCreateByPhone returns the tenant's customer for the phone, creating
// a bare record on first contact. Used by the inbound webhook path.
func (s *CustomerService) GetOrCreateByPhone(ctx context.Context, tenantID, phone string) (*ent.Customer, error) {
	c, err := s.client.Customer.Query().
		Where(
			customer.TenantID(tenantID),
			customer.PhoneE164(phone),
			customer.DeletedAtIsNil(),
		).
		Only(ctx)
	if err == nil {
		return c, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}
	return s.Create(ctx, CreateCustomerInput{TenantID: tenantID, PhoneE164: phone})
}

// Get loads one customer within the tenant.
func (s *CustomerService) Get(ctx context.Context, tenantID, customerID string) (*ent.Customer, error) {
	c, err := s.client.Customer.Query().
		Where(
			customer.ID(customerID),
			customer.TenantID(tenantID),
			customer.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("customer %s: %w", customerID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}
	return c, nil
}

// List returns the tenant's customers, most recently active first.
func (s *CustomerService) List(ctx context.Context, tenantID string, limit, offset int) ([]*ent.Customer, int, error) {
	q := s.client.Customer.Query().
		Where(
			customer.TenantID(tenantID),
			customer.DeletedAtIsNil(),
		)
	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}
	rows, err := q.
		Order(ent.Desc(customer.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}
	return rows, total, nil
}

// ConsentUpdate carries consent changes; nil fields are left untouched.
type ConsentUpdate struct {
	Promotional *bool
	Reminder    *bool
}

// UpdateConsent records a consent change. Transactional consent is fixed
// true and cannot be updated.
func (s *CustomerService) UpdateConsent(ctx context.Context, tenantID, customerID, actorUserID string, update ConsentUpdate) (*ent.Customer, error) {
	c, err := s.Get(ctx, tenantID, customerID)
	if err != nil {
		return nil, err
	}

	before := map[string]interface{}{
		"promotional_messages": c.PromotionalMessages,
		"reminder_messages":    c.ReminderMessages,
	}

	mut := c.Update()
	if update.Promotional != nil {
		mut.SetPromotionalMessages(*update.Promotional)
	}
	if update.Reminder != nil {
		mut.SetReminderMessages(*update.Reminder)
	}
	updated, err := mut.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update consent: %w", err)
	}

	s.audit.Record(ctx, AuditEntry{
		TenantID:    tenantID,
		ActorUserID: actorUserID,
		Action:      "customer.consent.update",
		TargetType:  "customer",
		TargetID:    customerID,
		Before:      before,
		After: map[string]interface{}{
			"promotional_messages": updated.PromotionalMessages,
			"reminder_messages":    updated.ReminderMessages,
		},
	})
	return updated, nil
}

// SetTags replaces the customer's tag set.
func (s *CustomerService) SetTags(ctx context.Context, tenantID, customerID string, tags []string) (*ent.Customer, error) {
	c, err := s.Get(ctx, tenantID, customerID)
	if err != nil {
		return nil, err
	}
	updated, err := c.Update().SetTags(tags).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update tags: %w", err)
	}
	return updated, nil
}
