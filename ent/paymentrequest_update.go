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
	"github.com/sokochat/sokochat/ent/paymentrequest"
	"github.com/sokochat/sokochat/ent/predicate"
)

// PaymentRequestUpdate is the builder for updating PaymentRequest entities.
type PaymentRequestUpdate struct {
	config
	hooks    []Hook
	mutation *PaymentRequestMutation
}

// Where appends a list predicates to the PaymentRequestUpdate builder.
func (_u *PaymentRequestUpdate) Where(ps ...predicate.PaymentRequest) *PaymentRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *PaymentRequestUpdate) SetStatus(v paymentrequest.Status) *PaymentRequestUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PaymentRequestUpdate) SetNillableStatus(v *paymentrequest.Status) *PaymentRequestUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *PaymentRequestUpdate) SetProvider(v string) *PaymentRequestUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *PaymentRequestUpdate) SetNillableProvider(v *string) *PaymentRequestUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetProviderRef sets the "provider_ref" field.
func (_u *PaymentRequestUpdate) SetProviderRef(v string) *PaymentRequestUpdate {
	_u.mutation.SetProviderRef(v)
	return _u
}

// SetNillableProviderRef sets the "provider_ref" field if the given value is not nil.
func (_u *PaymentRequestUpdate) SetNillableProviderRef(v *string) *PaymentRequestUpdate {
	if v != nil {
		_u.SetProviderRef(*v)
	}
	return _u
}

// ClearProviderRef clears the value of the "provider_ref" field.
func (_u *PaymentRequestUpdate) ClearProviderRef() *PaymentRequestUpdate {
	_u.mutation.ClearProviderRef()
	return _u
}

// SetAmountCents sets the "amount_cents" field.
func (_u *PaymentRequestUpdate) SetAmountCents(v int) *PaymentRequestUpdate {
	_u.mutation.ResetAmountCents()
	_u.mutation.SetAmountCents(v)
	return _u
}

// SetNillableAmountCents sets the "amount_cents" field if the given value is not nil.
func (_u *PaymentRequestUpdate) SetNillableAmountCents(v *int) *PaymentRequestUpdate {
	if v != nil {
		_u.SetAmountCents(*v)
	}
	return _u
}

// AddAmountCents adds value to the "amount_cents" field.
func (_u *PaymentRequestUpdate) AddAmountCents(v int) *PaymentRequestUpdate {
	_u.mutation.AddAmountCents(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *PaymentRequestUpdate) SetCurrency(v string) *PaymentRequestUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *PaymentRequestUpdate) SetNillableCurrency(v *string) *PaymentRequestUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *PaymentRequestUpdate) SetFailureReason(v string) *PaymentRequestUpdate {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *PaymentRequestUpdate) SetNillableFailureReason(v *string) *PaymentRequestUpdate {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *PaymentRequestUpdate) ClearFailureReason() *PaymentRequestUpdate {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PaymentRequestUpdate) SetUpdatedAt(v time.Time) *PaymentRequestUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PaymentRequestMutation object of the builder.
func (_u *PaymentRequestUpdate) Mutation() *PaymentRequestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PaymentRequestUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaymentRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PaymentRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaymentRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PaymentRequestUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := paymentrequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PaymentRequestUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := paymentrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PaymentRequest.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AmountCents(); ok {
		if err := paymentrequest.AmountCentsValidator(v); err != nil {
			return &ValidationError{Name: "amount_cents", err: fmt.Errorf(`ent: validator failed for field "PaymentRequest.amount_cents": %w`, err)}
		}
	}
	if _u.mutation.OrderCleared() && len(_u.mutation.OrderIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PaymentRequest.order"`)
	}
	return nil
}

func (_u *PaymentRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(paymentrequest.Table, paymentrequest.Columns, sqlgraph.NewFieldSpec(paymentrequest.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(paymentrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(paymentrequest.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProviderRef(); ok {
		_spec.SetField(paymentrequest.FieldProviderRef, field.TypeString, value)
	}
	if _u.mutation.ProviderRefCleared() {
		_spec.ClearField(paymentrequest.FieldProviderRef, field.TypeString)
	}
	if value, ok := _u.mutation.AmountCents(); ok {
		_spec.SetField(paymentrequest.FieldAmountCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAmountCents(); ok {
		_spec.AddField(paymentrequest.FieldAmountCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(paymentrequest.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(paymentrequest.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(paymentrequest.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(paymentrequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paymentrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PaymentRequestUpdateOne is the builder for updating a single PaymentRequest entity.
type PaymentRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PaymentRequestMutation
}

// SetStatus sets the "status" field.
func (_u *PaymentRequestUpdateOne) SetStatus(v paymentrequest.Status) *PaymentRequestUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PaymentRequestUpdateOne) SetNillableStatus(v *paymentrequest.Status) *PaymentRequestUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *PaymentRequestUpdateOne) SetProvider(v string) *PaymentRequestUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *PaymentRequestUpdateOne) SetNillableProvider(v *string) *PaymentRequestUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetProviderRef sets the "provider_ref" field.
func (_u *PaymentRequestUpdateOne) SetProviderRef(v string) *PaymentRequestUpdateOne {
	_u.mutation.SetProviderRef(v)
	return _u
}

// SetNillableProviderRef sets the "provider_ref" field if the given value is not nil.
func (_u *PaymentRequestUpdateOne) SetNillableProviderRef(v *string) *PaymentRequestUpdateOne {
	if v != nil {
		_u.SetProviderRef(*v)
	}
	return _u
}

// ClearProviderRef clears the value of the "provider_ref" field.
func (_u *PaymentRequestUpdateOne) ClearProviderRef() *PaymentRequestUpdateOne {
	_u.mutation.ClearProviderRef()
	return _u
}

// SetAmountCents sets the "amount_cents" field.
func (_u *PaymentRequestUpdateOne) SetAmountCents(v int) *PaymentRequestUpdateOne {
	_u.mutation.ResetAmountCents()
	_u.mutation.SetAmountCents(v)
	return _u
}

// SetNillableAmountCents sets the "amount_cents" field if the given value is not nil.
func (_u *PaymentRequestUpdateOne) SetNillableAmountCents(v *int) *PaymentRequestUpdateOne {
	if v != nil {
		_u.SetAmountCents(*v)
	}
	return _u
}

// AddAmountCents adds value to the "amount_cents" field.
func (_u *PaymentRequestUpdateOne) AddAmountCents(v int) *PaymentRequestUpdateOne {
	_u.mutation.AddAmountCents(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *PaymentRequestUpdateOne) SetCurrency(v string) *PaymentRequestUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *PaymentRequestUpdateOne) SetNillableCurrency(v *string) *PaymentRequestUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *PaymentRequestUpdateOne) SetFailureReason(v string) *PaymentRequestUpdateOne {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *PaymentRequestUpdateOne) SetNillableFailureReason(v *string) *PaymentRequestUpdateOne {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *PaymentRequestUpdateOne) ClearFailureReason() *PaymentRequestUpdateOne {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PaymentRequestUpdateOne) SetUpdatedAt(v time.Time) *PaymentRequestUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PaymentRequestMutation object of the builder.
func (_u *PaymentRequestUpdateOne) Mutation() *PaymentRequestMutation {
	return _u.mutation
}

// Where appends a list predicates to the PaymentRequestUpdate builder.
func (_u *PaymentRequestUpdateOne) Where(ps ...predicate.PaymentRequest) *PaymentRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PaymentRequestUpdateOne) Select(field string, fields ...string) *PaymentRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PaymentRequest entity.
func (_u *PaymentRequestUpdateOne) Save(ctx context.Context) (*PaymentRequest, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaymentRequestUpdateOne) SaveX(ctx context.Context) *PaymentRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PaymentRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaymentRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PaymentRequestUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := paymentrequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PaymentRequestUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := paymentrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PaymentRequest.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AmountCents(); ok {
		if err := paymentrequest.AmountCentsValidator(v); err != nil {
			return &ValidationError{Name: "amount_cents", err: fmt.Errorf(`ent: validator failed for field "PaymentRequest.amount_cents": %w`, err)}
		}
	}
	if _u.mutation.OrderCleared() && len(_u.mutation.OrderIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PaymentRequest.order"`)
	}
	return nil
}

func (_u *PaymentRequestUpdateOne) sqlSave(ctx context.Context) (_node *PaymentRequest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(paymentrequest.Table, paymentrequest.Columns, sqlgraph.NewFieldSpec(paymentrequest.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PaymentRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, paymentrequest.FieldID)
		for _, f := range fields {
			if !paymentrequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != paymentrequest.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(paymentrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(paymentrequest.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProviderRef(); ok {
		_spec.SetField(paymentrequest.FieldProviderRef, field.TypeString, value)
	}
	if _u.mutation.ProviderRefCleared() {
		_spec.ClearField(paymentrequest.FieldProviderRef, field.TypeString)
	}
	if value, ok := _u.mutation.AmountCents(); ok {
		_spec.SetField(paymentrequest.FieldAmountCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAmountCents(); ok {
		_spec.AddField(paymentrequest.FieldAmountCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(paymentrequest.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(paymentrequest.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(paymentrequest.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(paymentrequest.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &PaymentRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paymentrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
