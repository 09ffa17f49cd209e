// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sokochat/sokochat/ent/campaign"
	"github.com/sokochat/sokochat/ent/schema"
	"github.com/sokochat/sokochat/ent/tenant"
)

// CampaignCreate is the builder for creating a Campaign entity.
type CampaignCreate struct {
	config
	mutation *CampaignMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *CampaignCreate) SetTenantID(v string) *CampaignCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *CampaignCreate) SetName(v string) *CampaignCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetTargeting sets the "targeting" field.
func (_c *CampaignCreate) SetTargeting(v *schema.CampaignTargeting) *CampaignCreate {
	_c.mutation.SetTargeting(v)
	return _c
}

// SetIsAbTest sets the "is_ab_test" field.
func (_c *CampaignCreate) SetIsAbTest(v bool) *CampaignCreate {
	_c.mutation.SetIsAbTest(v)
	return _c
}

// SetNillableIsAbTest sets the "is_ab_test" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableIsAbTest(v *bool) *CampaignCreate {
	if v != nil {
		_c.SetIsAbTest(*v)
	}
	return _c
}

// SetVariants sets the "variants" field.
func (_c *CampaignCreate) SetVariants(v []schema.CampaignVariant) *CampaignCreate {
	_c.mutation.SetVariants(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *CampaignCreate) SetContent(v string) *CampaignCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableContent(v *string) *CampaignCreate {
	if v != nil {
		_c.SetContent(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CampaignCreate) SetStatus(v campaign.Status) *CampaignCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableStatus(v *campaign.Status) *CampaignCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetScheduledAt sets the "scheduled_at" field.
func (_c *CampaignCreate) SetScheduledAt(v time.Time) *CampaignCreate {
	_c.mutation.SetScheduledAt(v)
	return _c
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableScheduledAt(v *time.Time) *CampaignCreate {
	if v != nil {
		_c.SetScheduledAt(*v)
	}
	return _c
}

// SetTargetedCount sets the "targeted_count" field.
func (_c *CampaignCreate) SetTargetedCount(v int) *CampaignCreate {
	_c.mutation.SetTargetedCount(v)
	return _c
}

// SetNillableTargetedCount sets the "targeted_count" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableTargetedCount(v *int) *CampaignCreate {
	if v != nil {
		_c.SetTargetedCount(*v)
	}
	return _c
}

// SetDeliveredCount sets the "delivered_count" field.
func (_c *CampaignCreate) SetDeliveredCount(v int) *CampaignCreate {
	_c.mutation.SetDeliveredCount(v)
	return _c
}

// SetNillableDeliveredCount sets the "delivered_count" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableDeliveredCount(v *int) *CampaignCreate {
	if v != nil {
		_c.SetDeliveredCount(*v)
	}
	return _c
}

// SetFailedCount sets the "failed_count" field.
func (_c *CampaignCreate) SetFailedCount(v int) *CampaignCreate {
	_c.mutation.SetFailedCount(v)
	return _c
}

// SetNillableFailedCount sets the "failed_count" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableFailedCount(v *int) *CampaignCreate {
	if v != nil {
		_c.SetFailedCount(*v)
	}
	return _c
}

// SetReadCount sets the "read_count" field.
func (_c *CampaignCreate) SetReadCount(v int) *CampaignCreate {
	_c.mutation.SetReadCount(v)
	return _c
}

// SetNillableReadCount sets the "read_count" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableReadCount(v *int) *CampaignCreate {
	if v != nil {
		_c.SetReadCount(*v)
	}
	return _c
}

// SetResponseCount sets the "response_count" field.
func (_c *CampaignCreate) SetResponseCount(v int) *CampaignCreate {
	_c.mutation.SetResponseCount(v)
	return _c
}

// SetNillableResponseCount sets the "response_count" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableResponseCount(v *int) *CampaignCreate {
	if v != nil {
		_c.SetResponseCount(*v)
	}
	return _c
}

// SetConversionCount sets the "conversion_count" field.
func (_c *CampaignCreate) SetConversionCount(v int) *CampaignCreate {
	_c.mutation.SetConversionCount(v)
	return _c
}

// SetNillableConversionCount sets the "conversion_count" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableConversionCount(v *int) *CampaignCreate {
	if v != nil {
		_c.SetConversionCount(*v)
	}
	return _c
}

// SetSkippedNoConsentCount sets the "skipped_no_consent_count" field.
func (_c *CampaignCreate) SetSkippedNoConsentCount(v int) *CampaignCreate {
	_c.mutation.SetSkippedNoConsentCount(v)
	return _c
}

// SetNillableSkippedNoConsentCount sets the "skipped_no_consent_count" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableSkippedNoConsentCount(v *int) *CampaignCreate {
	if v != nil {
		_c.SetSkippedNoConsentCount(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *CampaignCreate) SetMetadata(v map[string]interface{}) *CampaignCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CampaignCreate) SetCreatedAt(v time.Time) *CampaignCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableCreatedAt(v *time.Time) *CampaignCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CampaignCreate) SetUpdatedAt(v time.Time) *CampaignCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableUpdatedAt(v *time.Time) *CampaignCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *CampaignCreate) SetDeletedAt(v time.Time) *CampaignCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableDeletedAt(v *time.Time) *CampaignCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CampaignCreate) SetID(v string) *CampaignCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (_c *CampaignCreate) SetTenant(v *Tenant) *CampaignCreate {
	return _c.SetTenantID(v.ID)
}

// Mutation returns the CampaignMutation object of the builder.
func (_c *CampaignCreate) Mutation() *CampaignMutation {
	return _c.mutation
}

// Save creates the Campaign in the database.
func (_c *CampaignCreate) Save(ctx context.Context) (*Campaign, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CampaignCreate) SaveX(ctx context.Context) *Campaign {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CampaignCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CampaignCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CampaignCreate) defaults() {
	if _, ok := _c.mutation.IsAbTest(); !ok {
		v := campaign.DefaultIsAbTest
		_c.mutation.SetIsAbTest(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := campaign.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TargetedCount(); !ok {
		v := campaign.DefaultTargetedCount
		_c.mutation.SetTargetedCount(v)
	}
	if _, ok := _c.mutation.DeliveredCount(); !ok {
		v := campaign.DefaultDeliveredCount
		_c.mutation.SetDeliveredCount(v)
	}
	if _, ok := _c.mutation.FailedCount(); !ok {
		v := campaign.DefaultFailedCount
		_c.mutation.SetFailedCount(v)
	}
	if _, ok := _c.mutation.ReadCount(); !ok {
		v := campaign.DefaultReadCount
		_c.mutation.SetReadCount(v)
	}
	if _, ok := _c.mutation.ResponseCount(); !ok {
		v := campaign.DefaultResponseCount
		_c.mutation.SetResponseCount(v)
	}
	if _, ok := _c.mutation.ConversionCount(); !ok {
		v := campaign.DefaultConversionCount
		_c.mutation.SetConversionCount(v)
	}
	if _, ok := _c.mutation.SkippedNoConsentCount(); !ok {
		v := campaign.DefaultSkippedNoConsentCount
		_c.mutation.SetSkippedNoConsentCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := campaign.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := campaign.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CampaignCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Campaign.tenant_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Campaign.name"`)}
	}
	if _, ok := _c.mutation.IsAbTest(); !ok {
		return &ValidationError{Name: "is_ab_test", err: errors.New(`ent: missing required field "Campaign.is_ab_test"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Campaign.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := campaign.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Campaign.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TargetedCount(); !ok {
		return &ValidationError{Name: "targeted_count", err: errors.New(`ent: missing required field "Campaign.targeted_count"`)}
	}
	if _, ok := _c.mutation.DeliveredCount(); !ok {
		return &ValidationError{Name: "delivered_count", err: errors.New(`ent: missing required field "Campaign.delivered_count"`)}
	}
	if _, ok := _c.mutation.FailedCount(); !ok {
		return &ValidationError{Name: "failed_count", err: errors.New(`ent: missing required field "Campaign.failed_count"`)}
	}
	if _, ok := _c.mutation.ReadCount(); !ok {
		return &ValidationError{Name: "read_count", err: errors.New(`ent: missing required field "Campaign.read_count"`)}
	}
	if _, ok := _c.mutation.ResponseCount(); !ok {
		return &ValidationError{Name: "response_count", err: errors.New(`ent: missing required field "Campaign.response_count"`)}
	}
	if _, ok := _c.mutation.ConversionCount(); !ok {
		return &ValidationError{Name: "conversion_count", err: errors.New(`ent: missing required field "Campaign.conversion_count"`)}
	}
	if _, ok := _c.mutation.SkippedNoConsentCount(); !ok {
		return &ValidationError{Name: "skipped_no_consent_count", err: errors.New(`ent: missing required field "Campaign.skipped_no_consent_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Campaign.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Campaign.updated_at"`)}
	}
	if len(_c.mutation.TenantIDs()) == 0 {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required edge "Campaign.tenant"`)}
	}
	return nil
}

func (_c *CampaignCreate) sqlSave(ctx context.Context) (*Campaign, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Campaign.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CampaignCreate) createSpec() (*Campaign, *sqlgraph.CreateSpec) {
	var (
		_node = &Campaign{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(campaign.Table, sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(campaign.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Targeting(); ok {
		_spec.SetField(campaign.FieldTargeting, field.TypeJSON, value)
		_node.Targeting = value
	}
	if value, ok := _c.mutation.IsAbTest(); ok {
		_spec.SetField(campaign.FieldIsAbTest, field.TypeBool, value)
		_node.IsAbTest = value
	}
	if value, ok := _c.mutation.Variants(); ok {
		_spec.SetField(campaign.FieldVariants, field.TypeJSON, value)
		_node.Variants = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(campaign.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(campaign.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ScheduledAt(); ok {
		_spec.SetField(campaign.FieldScheduledAt, field.TypeTime, value)
		_node.ScheduledAt = &value
	}
	if value, ok := _c.mutation.TargetedCount(); ok {
		_spec.SetField(campaign.FieldTargetedCount, field.TypeInt, value)
		_node.TargetedCount = value
	}
	if value, ok := _c.mutation.DeliveredCount(); ok {
		_spec.SetField(campaign.FieldDeliveredCount, field.TypeInt, value)
		_node.DeliveredCount = value
	}
	if value, ok := _c.mutation.FailedCount(); ok {
		_spec.SetField(campaign.FieldFailedCount, field.TypeInt, value)
		_node.FailedCount = value
	}
	if value, ok := _c.mutation.ReadCount(); ok {
		_spec.SetField(campaign.FieldReadCount, field.TypeInt, value)
		_node.ReadCount = value
	}
	if value, ok := _c.mutation.ResponseCount(); ok {
		_spec.SetField(campaign.FieldResponseCount, field.TypeInt, value)
		_node.ResponseCount = value
	}
	if value, ok := _c.mutation.ConversionCount(); ok {
		_spec.SetField(campaign.FieldConversionCount, field.TypeInt, value)
		_node.ConversionCount = value
	}
	if value, ok := _c.mutation.SkippedNoConsentCount(); ok {
		_spec.SetField(campaign.FieldSkippedNoConsentCount, field.TypeInt, value)
		_node.SkippedNoConsentCount = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(campaign.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(campaign.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(campaign.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(campaign.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.TenantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   campaign.TenantTable,
			Columns: []string{campaign.TenantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TenantID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CampaignCreateBulk is the builder for creating many Campaign entities in bulk.
type CampaignCreateBulk struct {
	config
	err      error
	builders []*CampaignCreate
}

// Save creates the Campaign entities in the database.
func (_c *CampaignCreateBulk) Save(ctx context.Context) ([]*Campaign, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Campaign, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CampaignMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CampaignCreateBulk) SaveX(ctx context.Context) []*Campaign {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CampaignCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CampaignCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
