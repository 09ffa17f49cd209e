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
	"github.com/sokochat/sokochat/ent/checkoutsession"
	"github.com/sokochat/sokochat/ent/predicate"
)

// CheckoutSessionUpdate is the builder for updating CheckoutSession entities.
type CheckoutSessionUpdate struct {
	config
	hooks    []Hook
	mutation *CheckoutSessionMutation
}

// Where appends a list predicates to the CheckoutSessionUpdate builder.
func (_u *CheckoutSessionUpdate) Where(ps ...predicate.CheckoutSession) *CheckoutSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetState sets the "state" field.
func (_u *CheckoutSessionUpdate) SetState(v checkoutsession.State) *CheckoutSessionUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *CheckoutSessionUpdate) SetNillableState(v *checkoutsession.State) *CheckoutSessionUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetVariantID sets the "variant_id" field.
func (_u *CheckoutSessionUpdate) SetVariantID(v string) *CheckoutSessionUpdate {
	_u.mutation.SetVariantID(v)
	return _u
}

// SetNillableVariantID sets the "variant_id" field if the given value is not nil.
func (_u *CheckoutSessionUpdate) SetNillableVariantID(v *string) *CheckoutSessionUpdate {
	if v != nil {
		_u.SetVariantID(*v)
	}
	return _u
}

// ClearVariantID clears the value of the "variant_id" field.
func (_u *CheckoutSessionUpdate) ClearVariantID() *CheckoutSessionUpdate {
	_u.mutation.ClearVariantID()
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *CheckoutSessionUpdate) SetQuantity(v int) *CheckoutSessionUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *CheckoutSessionUpdate) SetNillableQuantity(v *int) *CheckoutSessionUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *CheckoutSessionUpdate) AddQuantity(v int) *CheckoutSessionUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// ClearQuantity clears the value of the "quantity" field.
func (_u *CheckoutSessionUpdate) ClearQuantity() *CheckoutSessionUpdate {
	_u.mutation.ClearQuantity()
	return _u
}

// SetOrderID sets the "order_id" field.
func (_u *CheckoutSessionUpdate) SetOrderID(v string) *CheckoutSessionUpdate {
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *CheckoutSessionUpdate) SetNillableOrderID(v *string) *CheckoutSessionUpdate {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// ClearOrderID clears the value of the "order_id" field.
func (_u *CheckoutSessionUpdate) ClearOrderID() *CheckoutSessionUpdate {
	_u.mutation.ClearOrderID()
	return _u
}

// SetPaymentRequestID sets the "payment_request_id" field.
func (_u *CheckoutSessionUpdate) SetPaymentRequestID(v string) *CheckoutSessionUpdate {
	_u.mutation.SetPaymentRequestID(v)
	return _u
}

// SetNillablePaymentRequestID sets the "payment_request_id" field if the given value is not nil.
func (_u *CheckoutSessionUpdate) SetNillablePaymentRequestID(v *string) *CheckoutSessionUpdate {
	if v != nil {
		_u.SetPaymentRequestID(*v)
	}
	return _u
}

// ClearPaymentRequestID clears the value of the "payment_request_id" field.
func (_u *CheckoutSessionUpdate) ClearPaymentRequestID() *CheckoutSessionUpdate {
	_u.mutation.ClearPaymentRequestID()
	return _u
}

// SetMessageCount sets the "message_count" field.
func (_u *CheckoutSessionUpdate) SetMessageCount(v int) *CheckoutSessionUpdate {
	_u.mutation.ResetMessageCount()
	_u.mutation.SetMessageCount(v)
	return _u
}

// SetNillableMessageCount sets the "message_count" field if the given value is not nil.
func (_u *CheckoutSessionUpdate) SetNillableMessageCount(v *int) *CheckoutSessionUpdate {
	if v != nil {
		_u.SetMessageCount(*v)
	}
	return _u
}

// AddMessageCount adds value to the "message_count" field.
func (_u *CheckoutSessionUpdate) AddMessageCount(v int) *CheckoutSessionUpdate {
	_u.mutation.AddMessageCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CheckoutSessionUpdate) SetUpdatedAt(v time.Time) *CheckoutSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CheckoutSessionMutation object of the builder.
func (_u *CheckoutSessionUpdate) Mutation() *CheckoutSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CheckoutSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckoutSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CheckoutSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckoutSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CheckoutSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := checkoutsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckoutSessionUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := checkoutsession.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "CheckoutSession.state": %w`, err)}
		}
	}
	if _u.mutation.ConversationCleared() && len(_u.mutation.ConversationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CheckoutSession.conversation"`)
	}
	return nil
}

func (_u *CheckoutSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkoutsession.Table, checkoutsession.Columns, sqlgraph.NewFieldSpec(checkoutsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(checkoutsession.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.VariantID(); ok {
		_spec.SetField(checkoutsession.FieldVariantID, field.TypeString, value)
	}
	if _u.mutation.VariantIDCleared() {
		_spec.ClearField(checkoutsession.FieldVariantID, field.TypeString)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(checkoutsession.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(checkoutsession.FieldQuantity, field.TypeInt, value)
	}
	if _u.mutation.QuantityCleared() {
		_spec.ClearField(checkoutsession.FieldQuantity, field.TypeInt)
	}
	if value, ok := _u.mutation.OrderID(); ok {
		_spec.SetField(checkoutsession.FieldOrderID, field.TypeString, value)
	}
	if _u.mutation.OrderIDCleared() {
		_spec.ClearField(checkoutsession.FieldOrderID, field.TypeString)
	}
	if value, ok := _u.mutation.PaymentRequestID(); ok {
		_spec.SetField(checkoutsession.FieldPaymentRequestID, field.TypeString, value)
	}
	if _u.mutation.PaymentRequestIDCleared() {
		_spec.ClearField(checkoutsession.FieldPaymentRequestID, field.TypeString)
	}
	if value, ok := _u.mutation.MessageCount(); ok {
		_spec.SetField(checkoutsession.FieldMessageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMessageCount(); ok {
		_spec.AddField(checkoutsession.FieldMessageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(checkoutsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkoutsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CheckoutSessionUpdateOne is the builder for updating a single CheckoutSession entity.
type CheckoutSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CheckoutSessionMutation
}

// SetState sets the "state" field.
func (_u *CheckoutSessionUpdateOne) SetState(v checkoutsession.State) *CheckoutSessionUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *CheckoutSessionUpdateOne) SetNillableState(v *checkoutsession.State) *CheckoutSessionUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetVariantID sets the "variant_id" field.
func (_u *CheckoutSessionUpdateOne) SetVariantID(v string) *CheckoutSessionUpdateOne {
	_u.mutation.SetVariantID(v)
	return _u
}

// SetNillableVariantID sets the "variant_id" field if the given value is not nil.
func (_u *CheckoutSessionUpdateOne) SetNillableVariantID(v *string) *CheckoutSessionUpdateOne {
	if v != nil {
		_u.SetVariantID(*v)
	}
	return _u
}

// ClearVariantID clears the value of the "variant_id" field.
func (_u *CheckoutSessionUpdateOne) ClearVariantID() *CheckoutSessionUpdateOne {
	_u.mutation.ClearVariantID()
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *CheckoutSessionUpdateOne) SetQuantity(v int) *CheckoutSessionUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *CheckoutSessionUpdateOne) SetNillableQuantity(v *int) *CheckoutSessionUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *CheckoutSessionUpdateOne) AddQuantity(v int) *CheckoutSessionUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// ClearQuantity clears the value of the "quantity" field.
func (_u *CheckoutSessionUpdateOne) ClearQuantity() *CheckoutSessionUpdateOne {
	_u.mutation.ClearQuantity()
	return _u
}

// SetOrderID sets the "order_id" field.
func (_u *CheckoutSessionUpdateOne) SetOrderID(v string) *CheckoutSessionUpdateOne {
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *CheckoutSessionUpdateOne) SetNillableOrderID(v *string) *CheckoutSessionUpdateOne {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// ClearOrderID clears the value of the "order_id" field.
func (_u *CheckoutSessionUpdateOne) ClearOrderID() *CheckoutSessionUpdateOne {
	_u.mutation.ClearOrderID()
	return _u
}

// SetPaymentRequestID sets the "payment_request_id" field.
func (_u *CheckoutSessionUpdateOne) SetPaymentRequestID(v string) *CheckoutSessionUpdateOne {
	_u.mutation.SetPaymentRequestID(v)
	return _u
}

// SetNillablePaymentRequestID sets the "payment_request_id" field if the given value is not nil.
func (_u *CheckoutSessionUpdateOne) SetNillablePaymentRequestID(v *string) *CheckoutSessionUpdateOne {
	if v != nil {
		_u.SetPaymentRequestID(*v)
	}
	return _u
}

// ClearPaymentRequestID clears the value of the "payment_request_id" field.
func (_u *CheckoutSessionUpdateOne) ClearPaymentRequestID() *CheckoutSessionUpdateOne {
	_u.mutation.ClearPaymentRequestID()
	return _u
}

// SetMessageCount sets the "message_count" field.
func (_u *CheckoutSessionUpdateOne) SetMessageCount(v int) *CheckoutSessionUpdateOne {
	_u.mutation.ResetMessageCount()
	_u.mutation.SetMessageCount(v)
	return _u
}

// SetNillableMessageCount sets the "message_count" field if the given value is not nil.
func (_u *CheckoutSessionUpdateOne) SetNillableMessageCount(v *int) *CheckoutSessionUpdateOne {
	if v != nil {
		_u.SetMessageCount(*v)
	}
	return _u
}

// AddMessageCount adds value to the "message_count" field.
func (_u *CheckoutSessionUpdateOne) AddMessageCount(v int) *CheckoutSessionUpdateOne {
	_u.mutation.AddMessageCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CheckoutSessionUpdateOne) SetUpdatedAt(v time.Time) *CheckoutSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CheckoutSessionMutation object of the builder.
func (_u *CheckoutSessionUpdateOne) Mutation() *CheckoutSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the CheckoutSessionUpdate builder.
func (_u *CheckoutSessionUpdateOne) Where(ps ...predicate.CheckoutSession) *CheckoutSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CheckoutSessionUpdateOne) Select(field string, fields ...string) *CheckoutSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CheckoutSession entity.
func (_u *CheckoutSessionUpdateOne) Save(ctx context.Context) (*CheckoutSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckoutSessionUpdateOne) SaveX(ctx context.Context) *CheckoutSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CheckoutSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckoutSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CheckoutSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := checkoutsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckoutSessionUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := checkoutsession.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "CheckoutSession.state": %w`, err)}
		}
	}
	if _u.mutation.ConversationCleared() && len(_u.mutation.ConversationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CheckoutSession.conversation"`)
	}
	return nil
}

func (_u *CheckoutSessionUpdateOne) sqlSave(ctx context.Context) (_node *CheckoutSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkoutsession.Table, checkoutsession.Columns, sqlgraph.NewFieldSpec(checkoutsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CheckoutSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, checkoutsession.FieldID)
		for _, f := range fields {
			if !checkoutsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != checkoutsession.FieldID {
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
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(checkoutsession.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.VariantID(); ok {
		_spec.SetField(checkoutsession.FieldVariantID, field.TypeString, value)
	}
	if _u.mutation.VariantIDCleared() {
		_spec.ClearField(checkoutsession.FieldVariantID, field.TypeString)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(checkoutsession.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(checkoutsession.FieldQuantity, field.TypeInt, value)
	}
	if _u.mutation.QuantityCleared() {
		_spec.ClearField(checkoutsession.FieldQuantity, field.TypeInt)
	}
	if value, ok := _u.mutation.OrderID(); ok {
		_spec.SetField(checkoutsession.FieldOrderID, field.TypeString, value)
	}
	if _u.mutation.OrderIDCleared() {
		_spec.ClearField(checkoutsession.FieldOrderID, field.TypeString)
	}
	if value, ok := _u.mutation.PaymentRequestID(); ok {
		_spec.SetField(checkoutsession.FieldPaymentRequestID, field.TypeString, value)
	}
	if _u.mutation.PaymentRequestIDCleared() {
		_spec.ClearField(checkoutsession.FieldPaymentRequestID, field.TypeString)
	}
	if value, ok := _u.mutation.MessageCount(); ok {
		_spec.SetField(checkoutsession.FieldMessageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMessageCount(); ok {
		_spec.AddField(checkoutsession.FieldMessageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(checkoutsession.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &CheckoutSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkoutsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
