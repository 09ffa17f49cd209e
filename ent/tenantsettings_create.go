// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sokochat/sokochat/ent/schema"
	"github.com/sokochat/sokochat/ent/tenant"
	"github.com/sokochat/sokochat/ent/tenantsettings"
)

// TenantSettingsCreate is the builder for creating a TenantSettings entity.
type TenantSettingsCreate struct {
	config
	mutation *TenantSettingsMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *TenantSettingsCreate) SetTenantID(v string) *TenantSettingsCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetTelephonyCredentials sets the "telephony_credentials" field.
func (_c *TenantSettingsCreate) SetTelephonyCredentials(v []byte) *TenantSettingsCreate {
	_c.mutation.SetTelephonyCredentials(v)
	return _c
}

// SetCommerceCredentials sets the "commerce_credentials" field.
func (_c *TenantSettingsCreate) SetCommerceCredentials(v []byte) *TenantSettingsCreate {
	_c.mutation.SetCommerceCredentials(v)
	return _c
}

// SetLlmCredentials sets the "llm_credentials" field.
func (_c *TenantSettingsCreate) SetLlmCredentials(v []byte) *TenantSettingsCreate {
	_c.mutation.SetLlmCredentials(v)
	return _c
}

// SetPaymentCredentials sets the "payment_credentials" field.
func (_c *TenantSettingsCreate) SetPaymentCredentials(v []byte) *TenantSettingsCreate {
	_c.mutation.SetPaymentCredentials(v)
	return _c
}

// SetStoreURL sets the "store_url" field.
func (_c *TenantSettingsCreate) SetStoreURL(v string) *TenantSettingsCreate {
	_c.mutation.SetStoreURL(v)
	return _c
}

// SetNillableStoreURL sets the "store_url" field if the given value is not nil.
func (_c *TenantSettingsCreate) SetNillableStoreURL(v *string) *TenantSettingsCreate {
	if v != nil {
		_c.SetStoreURL(*v)
	}
	return _c
}

// SetFeatureFlags sets the "feature_flags" field.
func (_c *TenantSettingsCreate) SetFeatureFlags(v map[string]bool) *TenantSettingsCreate {
	_c.mutation.SetFeatureFlags(v)
	return _c
}

// SetBusinessHours sets the "business_hours" field.
func (_c *TenantSettingsCreate) SetBusinessHours(v map[string]schema.DayWindow) *TenantSettingsCreate {
	_c.mutation.SetBusinessHours(v)
	return _c
}

// SetNotificationPreferences sets the "notification_preferences" field.
func (_c *TenantSettingsCreate) SetNotificationPreferences(v map[string]bool) *TenantSettingsCreate {
	_c.mutation.SetNotificationPreferences(v)
	return _c
}

// SetBranding sets the "branding" field.
func (_c *TenantSettingsCreate) SetBranding(v *schema.Branding) *TenantSettingsCreate {
	_c.mutation.SetBranding(v)
	return _c
}

// SetOnboardingSteps sets the "onboarding_steps" field.
func (_c *TenantSettingsCreate) SetOnboardingSteps(v map[string]bool) *TenantSettingsCreate {
	_c.mutation.SetOnboardingSteps(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TenantSettingsCreate) SetCreatedAt(v time.Time) *TenantSettingsCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TenantSettingsCreate) SetNillableCreatedAt(v *time.Time) *TenantSettingsCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TenantSettingsCreate) SetUpdatedAt(v time.Time) *TenantSettingsCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TenantSettingsCreate) SetNillableUpdatedAt(v *time.Time) *TenantSettingsCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TenantSettingsCreate) SetID(v string) *TenantSettingsCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (_c *TenantSettingsCreate) SetTenant(v *Tenant) *TenantSettingsCreate {
	return _c.SetTenantID(v.ID)
}

// Mutation returns the TenantSettingsMutation object of the builder.
func (_c *TenantSettingsCreate) Mutation() *TenantSettingsMutation {
	return _c.mutation
}

// Save creates the TenantSettings in the database.
func (_c *TenantSettingsCreate) Save(ctx context.Context) (*TenantSettings, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TenantSettingsCreate) SaveX(ctx context.Context) *TenantSettings {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TenantSettingsCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TenantSettingsCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TenantSettingsCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tenantsettings.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := tenantsettings.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TenantSettingsCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "TenantSettings.tenant_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TenantSettings.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TenantSettings.updated_at"`)}
	}
	if len(_c.mutation.TenantIDs()) == 0 {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required edge "TenantSettings.tenant"`)}
	}
	return nil
}

func (_c *TenantSettingsCreate) sqlSave(ctx context.Context) (*TenantSettings, error) {
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
			return nil, fmt.Errorf("unexpected TenantSettings.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TenantSettingsCreate) createSpec() (*TenantSettings, *sqlgraph.CreateSpec) {
	var (
		_node = &TenantSettings{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tenantsettings.Table, sqlgraph.NewFieldSpec(tenantsettings.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TelephonyCredentials(); ok {
		_spec.SetField(tenantsettings.FieldTelephonyCredentials, field.TypeBytes, value)
		_node.TelephonyCredentials = value
	}
	if value, ok := _c.mutation.CommerceCredentials(); ok {
		_spec.SetField(tenantsettings.FieldCommerceCredentials, field.TypeBytes, value)
		_node.CommerceCredentials = value
	}
	if value, ok := _c.mutation.LlmCredentials(); ok {
		_spec.SetField(tenantsettings.FieldLlmCredentials, field.TypeBytes, value)
		_node.LlmCredentials = value
	}
	if value, ok := _c.mutation.PaymentCredentials(); ok {
		_spec.SetField(tenantsettings.FieldPaymentCredentials, field.TypeBytes, value)
		_node.PaymentCredentials = value
	}
	if value, ok := _c.mutation.StoreURL(); ok {
		_spec.SetField(tenantsettings.FieldStoreURL, field.TypeString, value)
		_node.StoreURL = value
	}
	if value, ok := _c.mutation.FeatureFlags(); ok {
		_spec.SetField(tenantsettings.FieldFeatureFlags, field.TypeJSON, value)
		_node.FeatureFlags = value
	}
	if value, ok := _c.mutation.BusinessHours(); ok {
		_spec.SetField(tenantsettings.FieldBusinessHours, field.TypeJSON, value)
		_node.BusinessHours = value
	}
	if value, ok := _c.mutation.NotificationPreferences(); ok {
		_spec.SetField(tenantsettings.FieldNotificationPreferences, field.TypeJSON, value)
		_node.NotificationPreferences = value
	}
	if value, ok := _c.mutation.Branding(); ok {
		_spec.SetField(tenantsettings.FieldBranding, field.TypeJSON, value)
		_node.Branding = value
	}
	if value, ok := _c.mutation.OnboardingSteps(); ok {
		_spec.SetField(tenantsettings.FieldOnboardingSteps, field.TypeJSON, value)
		_node.OnboardingSteps = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tenantsettings.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(tenantsettings.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TenantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   tenantsettings.TenantTable,
			Columns: []string{tenantsettings.TenantColumn},
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

// TenantSettingsCreateBulk is the builder for creating many TenantSettings entities in bulk.
type TenantSettingsCreateBulk struct {
	config
	err      error
	builders []*TenantSettingsCreate
}

// Save creates the TenantSettings entities in the database.
func (_c *TenantSettingsCreateBulk) Save(ctx context.Context) ([]*TenantSettings, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TenantSettings, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TenantSettingsMutation)
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
func (_c *TenantSettingsCreateBulk) SaveX(ctx context.Context) []*TenantSettings {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TenantSettingsCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TenantSettingsCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
