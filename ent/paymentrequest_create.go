// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sokochat/sokochat/ent/order"
	"github.com/sokochat/sokochat/ent/paymentrequest"
)

// PaymentRequestCreate is the builder for creating a PaymentRequest entity.
type PaymentRequestCreate struct {
	config
	mutation *PaymentRequestMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *PaymentRequestCreate) SetTenantID(v string) *PaymentRequestCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetOrderID sets the "order_id" field.
func (_c *PaymentRequestCreate) SetOrderID(v string) *PaymentRequestCreate {
	_c.mutation.SetOrderID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PaymentRequestCreate) SetStatus(v paymentrequest.Status) *PaymentRequestCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PaymentRequestCreate) SetNillableStatus(v *paymentrequest.Status) *PaymentRequestCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetProvider sets the "provider" field.
func (_c *PaymentRequestCreate) SetProvider(v string) *PaymentRequestCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetProviderRef sets the "provider_ref" field.
func (_c *PaymentRequestCreate) SetProviderRef(v string) *PaymentRequestCreate {
	_c.mutation.SetProviderRef(v)
	return _c
}

// SetNillableProviderRef sets the "provider_ref" field if the given value is not nil.
func (_c *PaymentRequestCreate) SetNillableProviderRef(v *string) *PaymentRequestCreate {
	if v != nil {
		_c.SetProviderRef(*v)
	}
	return _c
}

// SetAmountCents sets the "amount_cents" field.
func (_c *PaymentRequestCreate) SetAmountCents(v int) *PaymentRequestCreate {
	_c.mutation.SetAmountCents(v)
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *PaymentRequestCreate) SetCurrency(v string) *PaymentRequestCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_c *PaymentRequestCreate) SetNillableCurrency(v *string) *PaymentRequestCreate {
	if v != nil {
		_c.SetCurrency(*v)
	}
	return _c
}

// SetFailureReason sets the "failure_reason" field.
func (_c *PaymentRequestCreate) SetFailureReason(v string) *PaymentRequestCreate {
	_c.mutation.SetFailureReason(v)
	return _c
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_c *PaymentRequestCreate) SetNillableFailureReason(v *string) *PaymentRequestCreate {
	if v != nil {
		_c.SetFailureReason(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PaymentRequestCreate) SetCreatedAt(v time.Time) *PaymentRequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PaymentRequestCreate) SetNillableCreatedAt(v *time.Time) *PaymentRequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PaymentRequestCreate) SetUpdatedAt(v time.Time) *PaymentRequestCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PaymentRequestCreate) SetNillableUpdatedAt(v *time.Time) *PaymentRequestCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PaymentRequestCreate) SetID(v string) *PaymentRequestCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetOrder sets the "order" edge to the Order entity.
func (_c *PaymentRequestCreate) SetOrder(v *Order) *PaymentRequestCreate {
	return _c.SetOrderID(v.ID)
}

// Mutation returns the PaymentRequestMutation object of the builder.
func (_c *PaymentRequestCreate) Mutation() *PaymentRequestMutation {
	return _c.mutation
}

// Save creates the PaymentRequest in the database.
func (_c *PaymentRequestCreate) Save(ctx context.Context) (*PaymentRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PaymentRequestCreate) SaveX(ctx context.Context) *PaymentRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaymentRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaymentRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PaymentRequestCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := paymentrequest.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Currency(); !ok {
		v := paymentrequest.DefaultCurrency
		_c.mutation.SetCurrency(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := paymentrequest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := paymentrequest.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PaymentRequestCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "PaymentRequest.tenant_id"`)}
	}
	if _, ok := _c.mutation.OrderID(); !ok {
		return &ValidationError{Name: "order_id", err: errors.New(`ent: missing required field "PaymentRequest.order_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PaymentRequest.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := paymentrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PaymentRequest.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "PaymentRequest.provider"`)}
	}
	if _, ok := _c.mutation.AmountCents(); !ok {
		return &ValidationError{Name: "amount_cents", err: errors.New(`ent: missing required field "PaymentRequest.amount_cents"`)}
	}
	if v, ok := _c.mutation.AmountCents(); ok {
		if err := paymentrequest.AmountCentsValidator(v); err != nil {
			return &ValidationError{Name: "amount_cents", err: fmt.Errorf(`ent: validator failed for field "PaymentRequest.amount_cents": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`ent: missing required field "PaymentRequest.currency"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PaymentRequest.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PaymentRequest.updated_at"`)}
	}
	if len(_c.mutation.OrderIDs()) == 0 {
		return &ValidationError{Name: "order", err: errors.New(`ent: missing required edge "PaymentRequest.order"`)}
	}
	return nil
}

func (_c *PaymentRequestCreate) sqlSave(ctx context.Context) (*PaymentRequest, error) {
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
			return nil, fmt.Errorf("unexpected PaymentRequest.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PaymentRequestCreate) createSpec() (*PaymentRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &PaymentRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(paymentrequest.Table, sqlgraph.NewFieldSpec(paymentrequest.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(paymentrequest.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(paymentrequest.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(paymentrequest.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.ProviderRef(); ok {
		_spec.SetField(paymentrequest.FieldProviderRef, field.TypeString, value)
		_node.ProviderRef = &value
	}
	if value, ok := _c.mutation.AmountCents(); ok {
		_spec.SetField(paymentrequest.FieldAmountCents, field.TypeInt, value)
		_node.AmountCents = value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(paymentrequest.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.FailureReason(); ok {
		_spec.SetField(paymentrequest.FieldFailureReason, field.TypeString, value)
		_node.FailureReason = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(paymentrequest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(paymentrequest.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.OrderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   paymentrequest.OrderTable,
			Columns: []string{paymentrequest.OrderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(order.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.OrderID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PaymentRequestCreateBulk is the builder for creating many PaymentRequest entities in bulk.
type PaymentRequestCreateBulk struct {
	config
	err      error
	builders []*PaymentRequestCreate
}

// Save creates the PaymentRequest entities in the database.
func (_c *PaymentRequestCreateBulk) Save(ctx context.Context) ([]*PaymentRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PaymentRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PaymentRequestMutation)
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
func (_c *PaymentRequestCreateBulk) SaveX(ctx context.Context) []*PaymentRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaymentRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaymentRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
