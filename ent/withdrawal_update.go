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
	"github.com/sokochat/sokochat/ent/withdrawal"
)

// WithdrawalUpdate is the builder for updating Withdrawal entities.
type WithdrawalUpdate struct {
	config
	hooks    []Hook
	mutation *WithdrawalMutation
}

// Where appends a list predicates to the WithdrawalUpdate builder.
func (_u *WithdrawalUpdate) Where(ps ...predicate.Withdrawal) *WithdrawalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAmountCents sets the "amount_cents" field.
func (_u *WithdrawalUpdate) SetAmountCents(v int) *WithdrawalUpdate {
	_u.mutation.ResetAmountCents()
	_u.mutation.SetAmountCents(v)
	return _u
}

// SetNillableAmountCents sets the "amount_cents" field if the given value is not nil.
func (_u *WithdrawalUpdate) SetNillableAmountCents(v *int) *WithdrawalUpdate {
	if v != nil {
		_u.SetAmountCents(*v)
	}
	return _u
}

// AddAmountCents adds value to the "amount_cents" field.
func (_u *WithdrawalUpdate) AddAmountCents(v int) *WithdrawalUpdate {
	_u.mutation.AddAmountCents(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *WithdrawalUpdate) SetCurrency(v string) *WithdrawalUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *WithdrawalUpdate) SetNillableCurrency(v *string) *WithdrawalUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WithdrawalUpdate) SetStatus(v withdrawal.Status) *WithdrawalUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WithdrawalUpdate) SetNillableStatus(v *withdrawal.Status) *WithdrawalUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetApprovedBy sets the "approved_by" field.
func (_u *WithdrawalUpdate) SetApprovedBy(v string) *WithdrawalUpdate {
	_u.mutation.SetApprovedBy(v)
	return _u
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_u *WithdrawalUpdate) SetNillableApprovedBy(v *string) *WithdrawalUpdate {
	if v != nil {
		_u.SetApprovedBy(*v)
	}
	return _u
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (_u *WithdrawalUpdate) ClearApprovedBy() *WithdrawalUpdate {
	_u.mutation.ClearApprovedBy()
	return _u
}

// SetApprovedAt sets the "approved_at" field.
func (_u *WithdrawalUpdate) SetApprovedAt(v time.Time) *WithdrawalUpdate {
	_u.mutation.SetApprovedAt(v)
	return _u
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_u *WithdrawalUpdate) SetNillableApprovedAt(v *time.Time) *WithdrawalUpdate {
	if v != nil {
		_u.SetApprovedAt(*v)
	}
	return _u
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (_u *WithdrawalUpdate) ClearApprovedAt() *WithdrawalUpdate {
	_u.mutation.ClearApprovedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WithdrawalUpdate) SetUpdatedAt(v time.Time) *WithdrawalUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WithdrawalMutation object of the builder.
func (_u *WithdrawalUpdate) Mutation() *WithdrawalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WithdrawalUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WithdrawalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WithdrawalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WithdrawalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WithdrawalUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := withdrawal.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WithdrawalUpdate) check() error {
	if v, ok := _u.mutation.AmountCents(); ok {
		if err := withdrawal.AmountCentsValidator(v); err != nil {
			return &ValidationError{Name: "amount_cents", err: fmt.Errorf(`ent: validator failed for field "Withdrawal.amount_cents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := withdrawal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Withdrawal.status": %w`, err)}
		}
	}
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Withdrawal.tenant"`)
	}
	return nil
}

func (_u *WithdrawalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(withdrawal.Table, withdrawal.Columns, sqlgraph.NewFieldSpec(withdrawal.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AmountCents(); ok {
		_spec.SetField(withdrawal.FieldAmountCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAmountCents(); ok {
		_spec.AddField(withdrawal.FieldAmountCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(withdrawal.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(withdrawal.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ApprovedBy(); ok {
		_spec.SetField(withdrawal.FieldApprovedBy, field.TypeString, value)
	}
	if _u.mutation.ApprovedByCleared() {
		_spec.ClearField(withdrawal.FieldApprovedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ApprovedAt(); ok {
		_spec.SetField(withdrawal.FieldApprovedAt, field.TypeTime, value)
	}
	if _u.mutation.ApprovedAtCleared() {
		_spec.ClearField(withdrawal.FieldApprovedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(withdrawal.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{withdrawal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WithdrawalUpdateOne is the builder for updating a single Withdrawal entity.
type WithdrawalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WithdrawalMutation
}

// SetAmountCents sets the "amount_cents" field.
func (_u *WithdrawalUpdateOne) SetAmountCents(v int) *WithdrawalUpdateOne {
	_u.mutation.ResetAmountCents()
	_u.mutation.SetAmountCents(v)
	return _u
}

// SetNillableAmountCents sets the "amount_cents" field if the given value is not nil.
func (_u *WithdrawalUpdateOne) SetNillableAmountCents(v *int) *WithdrawalUpdateOne {
	if v != nil {
		_u.SetAmountCents(*v)
	}
	return _u
}

// AddAmountCents adds value to the "amount_cents" field.
func (_u *WithdrawalUpdateOne) AddAmountCents(v int) *WithdrawalUpdateOne {
	_u.mutation.AddAmountCents(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *WithdrawalUpdateOne) SetCurrency(v string) *WithdrawalUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *WithdrawalUpdateOne) SetNillableCurrency(v *string) *WithdrawalUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WithdrawalUpdateOne) SetStatus(v withdrawal.Status) *WithdrawalUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WithdrawalUpdateOne) SetNillableStatus(v *withdrawal.Status) *WithdrawalUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetApprovedBy sets the "approved_by" field.
func (_u *WithdrawalUpdateOne) SetApprovedBy(v string) *WithdrawalUpdateOne {
	_u.mutation.SetApprovedBy(v)
	return _u
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_u *WithdrawalUpdateOne) SetNillableApprovedBy(v *string) *WithdrawalUpdateOne {
	if v != nil {
		_u.SetApprovedBy(*v)
	}
	return _u
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (_u *WithdrawalUpdateOne) ClearApprovedBy() *WithdrawalUpdateOne {
	_u.mutation.ClearApprovedBy()
	return _u
}

// SetApprovedAt sets the "approved_at" field.
func (_u *WithdrawalUpdateOne) SetApprovedAt(v time.Time) *WithdrawalUpdateOne {
	_u.mutation.SetApprovedAt(v)
	return _u
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_u *WithdrawalUpdateOne) SetNillableApprovedAt(v *time.Time) *WithdrawalUpdateOne {
	if v != nil {
		_u.SetApprovedAt(*v)
	}
	return _u
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (_u *WithdrawalUpdateOne) ClearApprovedAt() *WithdrawalUpdateOne {
	_u.mutation.ClearApprovedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WithdrawalUpdateOne) SetUpdatedAt(v time.Time) *WithdrawalUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WithdrawalMutation object of the builder.
func (_u *WithdrawalUpdateOne) Mutation() *WithdrawalMutation {
	return _u.mutation
}

// Where appends a list predicates to the WithdrawalUpdate builder.
func (_u *WithdrawalUpdateOne) Where(ps ...predicate.Withdrawal) *WithdrawalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WithdrawalUpdateOne) Select(field string, fields ...string) *WithdrawalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Withdrawal entity.
func (_u *WithdrawalUpdateOne) Save(ctx context.Context) (*Withdrawal, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WithdrawalUpdateOne) SaveX(ctx context.Context) *Withdrawal {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WithdrawalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WithdrawalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WithdrawalUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := withdrawal.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WithdrawalUpdateOne) check() error {
	if v, ok := _u.mutation.AmountCents(); ok {
		if err := withdrawal.AmountCentsValidator(v); err != nil {
			return &ValidationError{Name: "amount_cents", err: fmt.Errorf(`ent: validator failed for field "Withdrawal.amount_cents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := withdrawal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Withdrawal.status": %w`, err)}
		}
	}
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Withdrawal.tenant"`)
	}
	return nil
}

func (_u *WithdrawalUpdateOne) sqlSave(ctx context.Context) (_node *Withdrawal, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(withdrawal.Table, withdrawal.Columns, sqlgraph.NewFieldSpec(withdrawal.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Withdrawal.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, withdrawal.FieldID)
		for _, f := range fields {
			if !withdrawal.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != withdrawal.FieldID {
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
	if value, ok := _u.mutation.AmountCents(); ok {
		_spec.SetField(withdrawal.FieldAmountCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAmountCents(); ok {
		_spec.AddField(withdrawal.FieldAmountCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(withdrawal.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(withdrawal.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ApprovedBy(); ok {
		_spec.SetField(withdrawal.FieldApprovedBy, field.TypeString, value)
	}
	if _u.mutation.ApprovedByCleared() {
		_spec.ClearField(withdrawal.FieldApprovedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ApprovedAt(); ok {
		_spec.SetField(withdrawal.FieldApprovedAt, field.TypeTime, value)
	}
	if _u.mutation.ApprovedAtCleared() {
		_spec.ClearField(withdrawal.FieldApprovedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(withdrawal.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Withdrawal{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{withdrawal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
