// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sokochat/sokochat/ent/product"
	"github.com/sokochat/sokochat/ent/productvariant"
)

// ProductVariantCreate is the builder for creating a ProductVariant entity.
type ProductVariantCreate struct {
	config
	mutation *ProductVariantMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *ProductVariantCreate) SetTenantID(v string) *ProductVariantCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetProductID sets the "product_id" field.
func (_c *ProductVariantCreate) SetProductID(v string) *ProductVariantCreate {
	_c.mutation.SetProductID(v)
	return _c
}

// SetLabel sets the "label" field.
func (_c *ProductVariantCreate) SetLabel(v string) *ProductVariantCreate {
	_c.mutation.SetLabel(v)
	return _c
}

// SetPriceCents sets the "price_cents" field.
func (_c *ProductVariantCreate) SetPriceCents(v int) *ProductVariantCreate {
	_c.mutation.SetPriceCents(v)
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *ProductVariantCreate) SetCurrency(v string) *ProductVariantCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_c *ProductVariantCreate) SetNillableCurrency(v *string) *ProductVariantCreate {
	if v != nil {
		_c.SetCurrency(*v)
	}
	return _c
}

// SetStock sets the "stock" field.
func (_c *ProductVariantCreate) SetStock(v int) *ProductVariantCreate {
	_c.mutation.SetStock(v)
	return _c
}

// SetNillableStock sets the "stock" field if the given value is not nil.
func (_c *ProductVariantCreate) SetNillableStock(v *int) *ProductVariantCreate {
	if v != nil {
		_c.SetStock(*v)
	}
	return _c
}

// SetAttributes sets the "attributes" field.
func (_c *ProductVariantCreate) SetAttributes(v map[string]string) *ProductVariantCreate {
	_c.mutation.SetAttributes(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProductVariantCreate) SetCreatedAt(v time.Time) *ProductVariantCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProductVariantCreate) SetNillableCreatedAt(v *time.Time) *ProductVariantCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProductVariantCreate) SetUpdatedAt(v time.Time) *ProductVariantCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProductVariantCreate) SetNillableUpdatedAt(v *time.Time) *ProductVariantCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProductVariantCreate) SetID(v string) *ProductVariantCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProduct sets the "product" edge to the Product entity.
func (_c *ProductVariantCreate) SetProduct(v *Product) *ProductVariantCreate {
	return _c.SetProductID(v.ID)
}

// Mutation returns the ProductVariantMutation object of the builder.
func (_c *ProductVariantCreate) Mutation() *ProductVariantMutation {
	return _c.mutation
}

// Save creates the ProductVariant in the database.
func (_c *ProductVariantCreate) Save(ctx context.Context) (*ProductVariant, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProductVariantCreate) SaveX(ctx context.Context) *ProductVariant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProductVariantCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProductVariantCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProductVariantCreate) defaults() {
	if _, ok := _c.mutation.Currency(); !ok {
		v := productvariant.DefaultCurrency
		_c.mutation.SetCurrency(v)
	}
	if _, ok := _c.mutation.Stock(); !ok {
		v := productvariant.DefaultStock
		_c.mutation.SetStock(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := productvariant.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := productvariant.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProductVariantCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "ProductVariant.tenant_id"`)}
	}
	if _, ok := _c.mutation.ProductID(); !ok {
		return &ValidationError{Name: "product_id", err: errors.New(`ent: missing required field "ProductVariant.product_id"`)}
	}
	if _, ok := _c.mutation.Label(); !ok {
		return &ValidationError{Name: "label", err: errors.New(`ent: missing required field "ProductVariant.label"`)}
	}
	if _, ok := _c.mutation.PriceCents(); !ok {
		return &ValidationError{Name: "price_cents", err: errors.New(`ent: missing required field "ProductVariant.price_cents"`)}
	}
	if v, ok := _c.mutation.PriceCents(); ok {
		if err := productvariant.PriceCentsValidator(v); err != nil {
			return &ValidationError{Name: "price_cents", err: fmt.Errorf(`ent: validator failed for field "ProductVariant.price_cents": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`ent: missing required field "ProductVariant.currency"`)}
	}
	if _, ok := _c.mutation.Stock(); !ok {
		return &ValidationError{Name: "stock", err: errors.New(`ent: missing required field "ProductVariant.stock"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProductVariant.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProductVariant.updated_at"`)}
	}
	if len(_c.mutation.ProductIDs()) == 0 {
		return &ValidationError{Name: "product", err: errors.New(`ent: missing required edge "ProductVariant.product"`)}
	}
	return nil
}

func (_c *ProductVariantCreate) sqlSave(ctx context.Context) (*ProductVariant, error) {
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
			return nil, fmt.Errorf("unexpected ProductVariant.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProductVariantCreate) createSpec() (*ProductVariant, *sqlgraph.CreateSpec) {
	var (
		_node = &ProductVariant{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(productvariant.Table, sqlgraph.NewFieldSpec(productvariant.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(productvariant.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Label(); ok {
		_spec.SetField(productvariant.FieldLabel, field.TypeString, value)
		_node.Label = value
	}
	if value, ok := _c.mutation.PriceCents(); ok {
		_spec.SetField(productvariant.FieldPriceCents, field.TypeInt, value)
		_node.PriceCents = value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(productvariant.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.Stock(); ok {
		_spec.SetField(productvariant.FieldStock, field.TypeInt, value)
		_node.Stock = value
	}
	if value, ok := _c.mutation.Attributes(); ok {
		_spec.SetField(productvariant.FieldAttributes, field.TypeJSON, value)
		_node.Attributes = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(productvariant.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(productvariant.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProductIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   productvariant.ProductTable,
			Columns: []string{productvariant.ProductColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(product.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProductID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProductVariantCreateBulk is the builder for creating many ProductVariant entities in bulk.
type ProductVariantCreateBulk struct {
	config
	err      error
	builders []*ProductVariantCreate
}

// Save creates the ProductVariant entities in the database.
func (_c *ProductVariantCreateBulk) Save(ctx context.Context) ([]*ProductVariant, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProductVariant, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProductVariantMutation)
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
func (_c *ProductVariantCreateBulk) SaveX(ctx context.Context) []*ProductVariant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProductVariantCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProductVariantCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
