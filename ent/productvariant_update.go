// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sokochat/sokochat/ent/predicate"
	"github.com/sokochat/sokochat/ent/productvariant"
)

// ProductVariantUpdate is the builder for updating ProductVariant entities.
type ProductVariantUpdate struct {
	config
	hooks    []Hook
	mutation *ProductVariantMutation
}

// Where appends a list predicates to the ProductVariantUpdate builder.
func (_u *ProductVariantUpdate) Where(ps ...predicate.ProductVariant) *ProductVariantUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLabel sets the "label" field.
func (_u *ProductVariantUpdate) SetLabel(v string) *ProductVariantUpdate {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *ProductVariantUpdate) SetNillableLabel(v *string) *ProductVariantUpdate {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetPriceCents sets the "price_cents" field.
func (_u *ProductVariantUpdate) SetPriceCents(v int) *ProductVariantUpdate {
	_u.mutation.ResetPriceCents()
	_u.mutation.SetPriceCents(v)
	return _u
}

// SetNillablePriceCents sets the "price_cents" field if the given value is not nil.
func (_u *ProductVariantUpdate) SetNillablePriceCents(v *int) *ProductVariantUpdate {
	if v != nil {
		_u.SetPriceCents(*v)
	}
	return _u
}

// AddPriceCents adds value to the "price_cents" field.
func (_u *ProductVariantUpdate) AddPriceCents(v int) *ProductVariantUpdate {
	_u.mutation.AddPriceCents(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *ProductVariantUpdate) SetCurrency(v string) *ProductVariantUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *ProductVariantUpdate) SetNillableCurrency(v *string) *ProductVariantUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetStock sets the "stock" field.
func (_u *ProductVariantUpdate) SetStock(v int) *ProductVariantUpdate {
	_u.mutation.ResetStock()
	_u.mutation.SetStock(v)
	return _u
}

// SetNillableStock sets the "stock" field if the given value is not nil.
func (_u *ProductVariantUpdate) SetNillableStock(v *int) *ProductVariantUpdate {
	if v != nil {
		_u.SetStock(*v)
	}
	return _u
}

// AddStock adds value to the "stock" field.
func (_u *ProductVariantUpdate) AddStock(v int) *ProductVariantUpdate {
	_u.mutation.AddStock(v)
	return _u
}

// SetAttributes sets the "attributes" field.
func (_u *ProductVariantUpdate) SetAttributes(v map[string]string) *ProductVariantUpdate {
	_u.mutation.SetAttributes(v)
	return _u
}

// ClearAttributes clears the value of the "attributes" field.
func (_u *ProductVariantUpdate) ClearAttributes() *ProductVariantUpdate {
	_u.mutation.ClearAttributes()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProductVariantUpdate) SetUpdatedAt(v time.Time) *ProductVariantUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProductVariantMutation object of the builder.
func (_u *ProductVariantUpdate) Mutation() *ProductVariantMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProductVariantUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProductVariantUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProductVariantUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProductVariantUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProductVariantUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := productvariant.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProductVariantUpdate) check() error {
	if v, ok := _u.mutation.PriceCents(); ok {
		if err := productvariant.PriceCentsValidator(v); err != nil {
			return &ValidationError{Name: "price_cents", err: fmt.Errorf(`ent: validator failed for field "ProductVariant.price_cents": %w`, err)}
		}
	}
	if _u.mutation.ProductCleared() && len(_u.mutation.ProductIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProductVariant.product"`)
	}
	return nil
}

func (_u *ProductVariantUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(productvariant.Table, productvariant.Columns, sqlgraph.NewFieldSpec(productvariant.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(productvariant.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.PriceCents(); ok {
		_spec.SetField(productvariant.FieldPriceCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriceCents(); ok {
		_spec.AddField(productvariant.FieldPriceCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(productvariant.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stock(); ok {
		_spec.SetField(productvariant.FieldStock, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStock(); ok {
		_spec.AddField(productvariant.FieldStock, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attributes(); ok {
		_spec.SetField(productvariant.FieldAttributes, field.TypeJSON, value)
	}
	if _u.mutation.AttributesCleared() {
		_spec.ClearField(productvariant.FieldAttributes, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(productvariant.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{productvariant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProductVariantUpdateOne is the builder for updating a single ProductVariant entity.
type ProductVariantUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProductVariantMutation
}

// SetLabel sets the "label" field.
func (_u *ProductVariantUpdateOne) SetLabel(v string) *ProductVariantUpdateOne {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *ProductVariantUpdateOne) SetNillableLabel(v *string) *ProductVariantUpdateOne {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetPriceCents sets the "price_cents" field.
func (_u *ProductVariantUpdateOne) SetPriceCents(v int) *ProductVariantUpdateOne {
	_u.mutation.ResetPriceCents()
	_u.mutation.SetPriceCents(v)
	return _u
}

// SetNillablePriceCents sets the "price_cents" field if the given value is not nil.
func (_u *ProductVariantUpdateOne) SetNillablePriceCents(v *int) *ProductVariantUpdateOne {
	if v != nil {
		_u.SetPriceCents(*v)
	}
	return _u
}

// AddPriceCents adds value to the "price_cents" field.
func (_u *ProductVariantUpdateOne) AddPriceCents(v int) *ProductVariantUpdateOne {
	_u.mutation.AddPriceCents(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *ProductVariantUpdateOne) SetCurrency(v string) *ProductVariantUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *ProductVariantUpdateOne) SetNillableCurrency(v *string) *ProductVariantUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetStock sets the "stock" field.
func (_u *ProductVariantUpdateOne) SetStock(v int) *ProductVariantUpdateOne {
	_u.mutation.ResetStock()
	_u.mutation.SetStock(v)
	return _u
}

// SetNillableStock sets the "stock" field if the given value is not nil.
func (_u *ProductVariantUpdateOne) SetNillableStock(v *int) *ProductVariantUpdateOne {
	if v != nil {
		_u.SetStock(*v)
	}
	return _u
}

// AddStock adds value to the "stock" field.
func (_u *ProductVariantUpdateOne) AddStock(v int) *ProductVariantUpdateOne {
	_u.mutation.AddStock(v)
	return _u
}

// SetAttributes sets the "attributes" field.
func (_u *ProductVariantUpdateOne) SetAttributes(v map[string]string) *ProductVariantUpdateOne {
	_u.mutation.SetAttributes(v)
	return _u
}

// ClearAttributes clears the value of the "attributes" field.
func (_u *ProductVariantUpdateOne) ClearAttributes() *ProductVariantUpdateOne {
	_u.mutation.ClearAttributes()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProductVariantUpdateOne) SetUpdatedAt(v time.Time) *ProductVariantUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProductVariantMutation object of the builder.
func (_u *ProductVariantUpdateOne) Mutation() *ProductVariantMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProductVariantUpdate builder.
func (_u *ProductVariantUpdateOne) Where(ps ...predicate.ProductVariant) *ProductVariantUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProductVariantUpdateOne) Select(field string, fields ...string) *ProductVariantUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProductVariant entity.
func (_u *ProductVariantUpdateOne) Save(ctx context.Context) (*ProductVariant, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProductVariantUpdateOne) SaveX(ctx context.Context) *ProductVariant {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProductVariantUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProductVariantUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProductVariantUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := productvariant.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProductVariantUpdateOne) check() error {
	if v, ok := _u.mutation.PriceCents(); ok {
		if err := productvariant.PriceCentsValidator(v); err != nil {
			return &ValidationError{Name: "price_cents", err: fmt.Errorf(`ent: validator failed for field "ProductVariant.price_cents": %w`, err)}
		}
	}
	if _u.mutation.ProductCleared() && len(_u.mutation.ProductIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProductVariant.product"`)
	}
	return nil
}

func (_u *ProductVariantUpdateOne) sqlSave(ctx context.Context) (_node *ProductVariant, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(productvariant.Table, productvariant.Columns, sqlgraph.NewFieldSpec(productvariant.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProductVariant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, productvariant.FieldID)
		for _, f := range fields {
			if !productvariant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != productvariant.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(productvariant.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.PriceCents(); ok {
		_spec.SetField(productvariant.FieldPriceCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriceCents(); ok {
		_spec.AddField(productvariant.FieldPriceCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(productvariant.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stock(); ok {
		_spec.SetField(productvariant.FieldStock, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStock(); ok {
		_spec.AddField(productvariant.FieldStock, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attributes(); ok {
		_spec.SetField(productvariant.FieldAttributes, field.TypeJSON, value)
	}
	if _u.mutation.AttributesCleared() {
		_spec.ClearField(productvariant.FieldAttributes, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(productvariant.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ProductVariant{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{productvariant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
