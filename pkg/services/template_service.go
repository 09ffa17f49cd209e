package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sokochat/sokochat/ent"
	"github.com/sokochat/sokochat/ent/messagetemplate"
)

// TemplateService manages reusable message templates. Names are unique per
// tenant; soft delete keeps sent-message history intact.
type TemplateService struct {
	client *ent.Client
}

// NewTemplateService creates a TemplateService.
func NewTemplateService(client *ent.Client) *TemplateService {
	return &TemplateService{client: client}
}

// Create adds a template. Duplicate names within a tenant get
// ErrAlreadyExists.
func (s *TemplateService) Create(ctx context.Context, tenantID, name, content string) (*ent.MessageTemplate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewValidationError("name", "is required")
	}
	if strings.TrimSpace(content) == "" {
		return nil, NewValidationError("content", "is required")
	}

	tpl, err := s.client.MessageTemplate.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetName(name).
		SetContent(content).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("template %q: %w", name, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create template: %w", err)
	}
	return tpl, nil
}

// Get loads one template within the tenant.
func (s *TemplateService) Get(ctx context.Context, tenantID, templateID string) (*ent.MessageTemplate, error) {
	tpl, err := s.client.MessageTemplate.Query().
		Where(
			messagetemplate.ID(templateID),
			messagetemplate.TenantID(tenantID),
			messagetemplate.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("template %s: %w", templateID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load template: %w", err)
	}
	return tpl, nil
}

// List returns the tenant's templates by name.
func (s *TemplateService) List(ctx context.Context, tenantID string, limit, offset int) ([]*ent.MessageTemplate, int, error) {
	q := s.client.MessageTemplate.Query().
		Where(
			messagetemplate.TenantID(tenantID),
			messagetemplate.DeletedAtIsNil(),
		)
	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count templates: %w", err)
	}
	rows, err := q.
		Order(ent.Asc(messagetemplate.FieldName)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list templates: %w", err)
	}
	return rows, total, nil
}

// Update replaces a template's content.
func (s *TemplateService) Update(ctx context.Context, tenantID, templateID, content string) (*ent.MessageTemplate, error) {
	if strings.TrimSpace(content) == "" {
		return nil, NewValidationError("content", "is required")
	}
	tpl, err := s.Get(ctx, tenantID, templateID)
	if err != nil {
		return nil, err
	}
	updated, err := tpl.Update().SetContent(content).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update template: %w", err)
	}
	return updated, nil
}

// Delete soft-deletes a template. Scheduled messages referencing it keep
// their template_id but fail at render time.
func (s *TemplateService) Delete(ctx context.Context, tenantID, templateID string) error {
	tpl, err := s.Get(ctx, tenantID, templateID)
	if err != nil {
		return err
	}
	if err := tpl.Update().SetDeletedAt(time.Now()).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	return nil
}

// RecordUsage bumps the usage counter best-effort.
func (s *TemplateService) RecordUsage(ctx context.Context, tenantID, templateID string) {
	_, _ = s.client.MessageTemplate.Update().
		Where(
			messagetemplate.ID(templateID),
			messagetemplate.TenantID(tenantID),
		).
		AddUsageCount(1).
		Save(ctx)
}
