package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sokochat/sokochat/ent"
	"github.com/sokochat/sokochat/ent/knowledgeentry"
	"github.com/sokochat/sokochat/ent/product"
	"github.com/sokochat/sokochat/ent/productvariant"
)

// CatalogService manages the tenant's products, sellable variants, and
// knowledge-base entries. Checkout and retrieval read these rows; this
// service is the write path behind the catalog API.
type CatalogService struct {
	client *ent.Client
	audit  *AuditService
}

// NewCatalogService creates a CatalogService.
func NewCatalogService(client *ent.Client, audit *AuditService) *CatalogService {
	return &CatalogService{client: client, audit: audit}
}

// VariantInput is one sellable unit of a new product.
type VariantInput struct {
	Label      string
	PriceCents int
	Currency   string
	Stock      int
	Attributes map[string]string
}

// CreateProductInput describes a new catalog item and its variants.
type CreateProductInput struct {
	TenantID    string
	Name        string
	Description string
	Tags        []string
	Variants    []VariantInput
}

// CreateProduct adds a product and its variants in one transaction. A
// product needs at least one variant to be sellable.
func (s *CatalogService) CreateProduct(ctx context.Context, actorUserID string, in CreateProductInput) (*ent.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, NewValidationError("name", "is required")
	}
	if len(in.Variants) == 0 {
		return nil, NewValidationError("variants", "at least one variant is required")
	}
	for _, v := range in.Variants {
		if strings.TrimSpace(v.Label) == "" {
			return nil, NewValidationError("variants", "variant label is required")
		}
		if v.PriceCents < 0 {
			return nil, NewValidationError("variants", "price must not be negative")
		}
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	productID := uuid.New().String()
	create := tx.Product.Create().
		SetID(productID).
		SetTenantID(in.TenantID).
		SetName(strings.TrimSpace(in.Name))
	if in.Description != "" {
		create.SetDescription(in.Description)
	}
	if len(in.Tags) > 0 {
		create.SetTags(in.Tags)
	}
	p, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	for _, v := range in.Variants {
		vc := tx.ProductVariant.Create().
			SetID(uuid.New().String()).
			SetTenantID(in.TenantID).
			SetProductID(productID).
			SetLabel(strings.TrimSpace(v.Label)).
			SetPriceCents(v.PriceCents).
			SetStock(v.Stock)
		if v.Currency != "" {
			vc.SetCurrency(v.Currency)
		}
		if len(v.Attributes) > 0 {
			vc.SetAttributes(v.Attributes)
		}
		if _, err := vc.Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to create variant %q: %w", v.Label, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit product: %w", err)
	}

	s.audit.Record(ctx, AuditEntry{
		TenantID:    in.TenantID,
		ActorUserID: actorUserID,
		Action:      "catalog.product.create",
		TargetType:  "product",
		TargetID:    productID,
		After:       map[string]interface{}{"name": p.Name, "variants": len(in.Variants)},
	})

	return s.GetProduct(ctx, in.TenantID, productID)
}

// GetProduct loads one product with its variants.
func (s *CatalogService) GetProduct(ctx context.Context, tenantID, productID string) (*ent.Product, error) {
	p, err := s.client.Product.Query().
		Where(
			product.ID(productID),
			product.TenantID(tenantID),
			product.DeletedAtIsNil(),
		).
		WithVariants().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("product %s: %w", productID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	return p, nil
}

// ListProducts returns the tenant's live products with variants, newest
// first.
func (s *CatalogService) ListProducts(ctx context.Context, tenantID string, limit, offset int) ([]*ent.Product, int, error) {
	q := s.client.Product.Query().
		Where(
			product.TenantID(tenantID),
			product.DeletedAtIsNil(),
		)
	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}
	rows, err := q.
		WithVariants().
		Order(ent.Desc(product.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	return rows, total, nil
}

// SetStock replaces one variant's stock level. Checkout decrements stock
// under a row lock; restocks go through here.
func (s *CatalogService) SetStock(ctx context.Context, tenantID, variantID string, stock int) (*ent.ProductVariant, error) {
	if stock < 0 {
		return nil, NewValidationError("stock", "must not be negative")
	}

	n, err := s.client.ProductVariant.Update().
		Where(
			productvariant.ID(variantID),
			productvariant.TenantID(tenantID),
		).
		SetStock(stock).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update stock: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("variant %s: %w", variantID, ErrNotFound)
	}
	v, err := s.client.ProductVariant.Get(ctx, variantID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload variant: %w", err)
	}
	return v, nil
}

// ArchiveProduct soft-deletes a product and deactivates it so checkout and
// retrieval stop offering it. Order history keeps referencing the row.
func (s *CatalogService) ArchiveProduct(ctx context.Context, tenantID, productID, actorUserID string) error {
	n, err := s.client.Product.Update().
		Where(
			product.ID(productID),
			product.TenantID(tenantID),
			product.DeletedAtIsNil(),
		).
		SetActive(false).
		SetDeletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to archive product: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("product %s: %w", productID, ErrNotFound)
	}

	s.audit.Record(ctx, AuditEntry{
		TenantID:    tenantID,
		ActorUserID: actorUserID,
		Action:      "catalog.product.archive",
		TargetType:  "product",
		TargetID:    productID,
	})
	return nil
}

// CreateKnowledgeEntry adds one knowledge-base item for retrieval and
// grounding.
func (s *CatalogService) CreateKnowledgeEntry(ctx context.Context, tenantID, title, body string, tags []string) (*ent.KnowledgeEntry, error) {
	if strings.TrimSpace(title) == "" {
		return nil, NewValidationError("title", "is required")
	}
	if strings.TrimSpace(body) == "" {
		return nil, NewValidationError("body", "is required")
	}

	create := s.client.KnowledgeEntry.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetTitle(strings.TrimSpace(title)).
		SetBody(body)
	if len(tags) > 0 {
		create.SetTags(tags)
	}
	entry, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create knowledge entry: %w", err)
	}
	return entry, nil
}

// ListKnowledgeEntries returns the tenant's live knowledge-base items,
// newest first.
func (s *CatalogService) ListKnowledgeEntries(ctx context.Context, tenantID string, limit, offset int) ([]*ent.KnowledgeEntry, int, error) {
	q := s.client.KnowledgeEntry.Query().
		Where(
			knowledgeentry.TenantID(tenantID),
			knowledgeentry.DeletedAtIsNil(),
		)
	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count knowledge entries: %w", err)
	}
	rows, err := q.
		Order(ent.Desc(knowledgeentry.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list knowledge entries: %w", err)
	}
	return rows, total, nil
}

// DeleteKnowledgeEntry soft-deletes one knowledge-base item.
func (s *CatalogService) DeleteKnowledgeEntry(ctx context.Context, tenantID, entryID string) error {
	n, err := s.client.KnowledgeEntry.Update().
		Where(
			knowledgeentry.ID(entryID),
			knowledgeentry.TenantID(tenantID),
			knowledgeentry.DeletedAtIsNil(),
		).
		SetDeletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete knowledge entry: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("knowledge entry %s: %w", entryID, ErrNotFound)
	}
	return nil
}
