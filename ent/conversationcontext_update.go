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
	"github.com/sokochat/sokochat/ent/conversationcontext"
	"github.com/sokochat/sokochat/ent/predicate"
)

// ConversationContextUpdate is the builder for updating ConversationContext entities.
type ConversationContextUpdate struct {
	config
	hooks    []Hook
	mutation *ConversationContextMutation
}

// Where appends a list predicates to the ConversationContextUpdate builder.
func (_u *ConversationContextUpdate) Where(ps ...predicate.ConversationContext) *ConversationContextUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLastCustomerMessage sets the "last_customer_message" field.
func (_u *ConversationContextUpdate) SetLastCustomerMessage(v string) *ConversationContextUpdate {
	_u.mutation.SetLastCustomerMessage(v)
	return _u
}

// SetNillableLastCustomerMessage sets the "last_customer_message" field if the given value is not nil.
func (_u *ConversationContextUpdate) SetNillableLastCustomerMessage(v *string) *ConversationContextUpdate {
	if v != nil {
		_u.SetLastCustomerMessage(*v)
	}
	return _u
}

// ClearLastCustomerMessage clears the value of the "last_customer_message" field.
func (_u *ConversationContextUpdate) ClearLastCustomerMessage() *ConversationContextUpdate {
	_u.mutation.ClearLastCustomerMessage()
	return _u
}

// SetLastBotMessage sets the "last_bot_message" field.
func (_u *ConversationContextUpdate) SetLastBotMessage(v string) *ConversationContextUpdate {
	_u.mutation.SetLastBotMessage(v)
	return _u
}

// SetNillableLastBotMessage sets the "last_bot_message" field if the given value is not nil.
func (_u *ConversationContextUpdate) SetNillableLastBotMessage(v *string) *ConversationContextUpdate {
	if v != nil {
		_u.SetLastBotMessage(*v)
	}
	return _u
}

// ClearLastBotMessage clears the value of the "last_bot_message" field.
func (_u *ConversationContextUpdate) ClearLastBotMessage() *ConversationContextUpdate {
	_u.mutation.ClearLastBotMessage()
	return _u
}

// SetCheckoutState sets the "checkout_state" field.
func (_u *ConversationContextUpdate) SetCheckoutState(v conversationcontext.CheckoutState) *ConversationContextUpdate {
	_u.mutation.SetCheckoutState(v)
	return _u
}

// SetNillableCheckoutState sets the "checkout_state" field if the given value is not nil.
func (_u *ConversationContextUpdate) SetNillableCheckoutState(v *conversationcontext.CheckoutState) *ConversationContextUpdate {
	if v != nil {
		_u.SetCheckoutState(*v)
	}
	return _u
}

// SetSelectedVariantID sets the "selected_variant_id" field.
func (_u *ConversationContextUpdate) SetSelectedVariantID(v string) *ConversationContextUpdate {
	_u.mutation.SetSelectedVariantID(v)
	return _u
}

// SetNillableSelectedVariantID sets the "selected_variant_id" field if the given value is not nil.
func (_u *ConversationContextUpdate) SetNillableSelectedVariantID(v *string) *ConversationContextUpdate {
	if v != nil {
		_u.SetSelectedVariantID(*v)
	}
	return _u
}

// ClearSelectedVariantID clears the value of the "selected_variant_id" field.
func (_u *ConversationContextUpdate) ClearSelectedVariantID() *ConversationContextUpdate {
	_u.mutation.ClearSelectedVariantID()
	return _u
}

// SetSelectedQuantity sets the "selected_quantity" field.
func (_u *ConversationContextUpdate) SetSelectedQuantity(v int) *ConversationContextUpdate {
	_u.mutation.ResetSelectedQuantity()
	_u.mutation.SetSelectedQuantity(v)
	return _u
}

// SetNillableSelectedQuantity sets the "selected_quantity" field if the given value is not nil.
func (_u *ConversationContextUpdate) SetNillableSelectedQuantity(v *int) *ConversationContextUpdate {
	if v != nil {
		_u.SetSelectedQuantity(*v)
	}
	return _u
}

// AddSelectedQuantity adds value to the "selected_quantity" field.
func (_u *ConversationContextUpdate) AddSelectedQuantity(v int) *ConversationContextUpdate {
	_u.mutation.AddSelectedQuantity(v)
	return _u
}

// ClearSelectedQuantity clears the value of the "selected_quantity" field.
func (_u *ConversationContextUpdate) ClearSelectedQuantity() *ConversationContextUpdate {
	_u.mutation.ClearSelectedQuantity()
	return _u
}

// SetLockedLanguage sets the "locked_language" field.
func (_u *ConversationContextUpdate) SetLockedLanguage(v string) *ConversationContextUpdate {
	_u.mutation.SetLockedLanguage(v)
	return _u
}

// SetNillableLockedLanguage sets the "locked_language" field if the given value is not nil.
func (_u *ConversationContextUpdate) SetNillableLockedLanguage(v *string) *ConversationContextUpdate {
	if v != nil {
		_u.SetLockedLanguage(*v)
	}
	return _u
}

// ClearLockedLanguage clears the value of the "locked_language" field.
func (_u *ConversationContextUpdate) ClearLockedLanguage() *ConversationContextUpdate {
	_u.mutation.ClearLockedLanguage()
	return _u
}

// SetLowConfidenceTurns sets the "low_confidence_turns" field.
func (_u *ConversationContextUpdate) SetLowConfidenceTurns(v int) *ConversationContextUpdate {
	_u.mutation.ResetLowConfidenceTurns()
	_u.mutation.SetLowConfidenceTurns(v)
	return _u
}

// SetNillableLowConfidenceTurns sets the "low_confidence_turns" field if the given value is not nil.
func (_u *ConversationContextUpdate) SetNillableLowConfidenceTurns(v *int) *ConversationContextUpdate {
	if v != nil {
		_u.SetLowConfidenceTurns(*v)
	}
	return _u
}

// AddLowConfidenceTurns adds value to the "low_confidence_turns" field.
func (_u *ConversationContextUpdate) AddLowConfidenceTurns(v int) *ConversationContextUpdate {
	_u.mutation.AddLowConfidenceTurns(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ConversationContextUpdate) SetMetadata(v map[string]interface{}) *ConversationContextUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ConversationContextUpdate) ClearMetadata() *ConversationContextUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConversationContextUpdate) SetUpdatedAt(v time.Time) *ConversationContextUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ConversationContextMutation object of the builder.
func (_u *ConversationContextUpdate) Mutation() *ConversationContextMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConversationContextUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationContextUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConversationContextUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationContextUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConversationContextUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := conversationcontext.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationContextUpdate) check() error {
	if v, ok := _u.mutation.CheckoutState(); ok {
		if err := conversationcontext.CheckoutStateValidator(v); err != nil {
			return &ValidationError{Name: "checkout_state", err: fmt.Errorf(`ent: validator failed for field "ConversationContext.checkout_state": %w`, err)}
		}
	}
	if _u.mutation.ConversationCleared() && len(_u.mutation.ConversationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ConversationContext.conversation"`)
	}
	return nil
}

func (_u *ConversationContextUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversationcontext.Table, conversationcontext.Columns, sqlgraph.NewFieldSpec(conversationcontext.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LastCustomerMessage(); ok {
		_spec.SetField(conversationcontext.FieldLastCustomerMessage, field.TypeString, value)
	}
	if _u.mutation.LastCustomerMessageCleared() {
		_spec.ClearField(conversationcontext.FieldLastCustomerMessage, field.TypeString)
	}
	if value, ok := _u.mutation.LastBotMessage(); ok {
		_spec.SetField(conversationcontext.FieldLastBotMessage, field.TypeString, value)
	}
	if _u.mutation.LastBotMessageCleared() {
		_spec.ClearField(conversationcontext.FieldLastBotMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CheckoutState(); ok {
		_spec.SetField(conversationcontext.FieldCheckoutState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SelectedVariantID(); ok {
		_spec.SetField(conversationcontext.FieldSelectedVariantID, field.TypeString, value)
	}
	if _u.mutation.SelectedVariantIDCleared() {
		_spec.ClearField(conversationcontext.FieldSelectedVariantID, field.TypeString)
	}
	if value, ok := _u.mutation.SelectedQuantity(); ok {
		_spec.SetField(conversationcontext.FieldSelectedQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSelectedQuantity(); ok {
		_spec.AddField(conversationcontext.FieldSelectedQuantity, field.TypeInt, value)
	}
	if _u.mutation.SelectedQuantityCleared() {
		_spec.ClearField(conversationcontext.FieldSelectedQuantity, field.TypeInt)
	}
	if value, ok := _u.mutation.LockedLanguage(); ok {
		_spec.SetField(conversationcontext.FieldLockedLanguage, field.TypeString, value)
	}
	if _u.mutation.LockedLanguageCleared() {
		_spec.ClearField(conversationcontext.FieldLockedLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.LowConfidenceTurns(); ok {
		_spec.SetField(conversationcontext.FieldLowConfidenceTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLowConfidenceTurns(); ok {
		_spec.AddField(conversationcontext.FieldLowConfidenceTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(conversationcontext.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(conversationcontext.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(conversationcontext.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversationcontext.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConversationContextUpdateOne is the builder for updating a single ConversationContext entity.
type ConversationContextUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConversationContextMutation
}

// SetLastCustomerMessage sets the "last_customer_message" field.
func (_u *ConversationContextUpdateOne) SetLastCustomerMessage(v string) *ConversationContextUpdateOne {
	_u.mutation.SetLastCustomerMessage(v)
	return _u
}

// SetNillableLastCustomerMessage sets the "last_customer_message" field if the given value is not nil.
func (_u *ConversationContextUpdateOne) SetNillableLastCustomerMessage(v *string) *ConversationContextUpdateOne {
	if v != nil {
		_u.SetLastCustomerMessage(*v)
	}
	return _u
}

// ClearLastCustomerMessage clears the value of the "last_customer_message" field.
func (_u *ConversationContextUpdateOne) ClearLastCustomerMessage() *ConversationContextUpdateOne {
	_u.mutation.ClearLastCustomerMessage()
	return _u
}

// SetLastBotMessage sets the "last_bot_message" field.
func (_u *ConversationContextUpdateOne) SetLastBotMessage(v string) *ConversationContextUpdateOne {
	_u.mutation.SetLastBotMessage(v)
	return _u
}

// SetNillableLastBotMessage sets the "last_bot_message" field if the given value is not nil.
func (_u *ConversationContextUpdateOne) SetNillableLastBotMessage(v *string) *ConversationContextUpdateOne {
	if v != nil {
		_u.SetLastBotMessage(*v)
	}
	return _u
}

// ClearLastBotMessage clears the value of the "last_bot_message" field.
func (_u *ConversationContextUpdateOne) ClearLastBotMessage() *ConversationContextUpdateOne {
	_u.mutation.ClearLastBotMessage()
	return _u
}

// SetCheckoutState sets the "checkout_state" field.
func (_u *ConversationContextUpdateOne) SetCheckoutState(v conversationcontext.CheckoutState) *ConversationContextUpdateOne {
	_u.mutation.SetCheckoutState(v)
	return _u
}

// SetNillableCheckoutState sets the "checkout_state" field if the given value is not nil.
func (_u *ConversationContextUpdateOne) SetNillableCheckoutState(v *conversationcontext.CheckoutState) *ConversationContextUpdateOne {
	if v != nil {
		_u.SetCheckoutState(*v)
	}
	return _u
}

// SetSelectedVariantID sets the "selected_variant_id" field.
func (_u *ConversationContextUpdateOne) SetSelectedVariantID(v string) *ConversationContextUpdateOne {
	_u.mutation.SetSelectedVariantID(v)
	return _u
}

// SetNillableSelectedVariantID sets the "selected_variant_id" field if the given value is not nil.
func (_u *ConversationContextUpdateOne) SetNillableSelectedVariantID(v *string) *ConversationContextUpdateOne {
	if v != nil {
		_u.SetSelectedVariantID(*v)
	}
	return _u
}

// ClearSelectedVariantID clears the value of the "selected_variant_id" field.
func (_u *ConversationContextUpdateOne) ClearSelectedVariantID() *ConversationContextUpdateOne {
	_u.mutation.ClearSelectedVariantID()
	return _u
}

// SetSelectedQuantity sets the "selected_quantity" field.
func (_u *ConversationContextUpdateOne) SetSelectedQuantity(v int) *ConversationContextUpdateOne {
	_u.mutation.ResetSelectedQuantity()
	_u.mutation.SetSelectedQuantity(v)
	return _u
}

// SetNillableSelectedQuantity sets the "selected_quantity" field if the given value is not nil.
func (_u *ConversationContextUpdateOne) SetNillableSelectedQuantity(v *int) *ConversationContextUpdateOne {
	if v != nil {
		_u.SetSelectedQuantity(*v)
	}
	return _u
}

// AddSelectedQuantity adds value to the "selected_quantity" field.
func (_u *ConversationContextUpdateOne) AddSelectedQuantity(v int) *ConversationContextUpdateOne {
	_u.mutation.AddSelectedQuantity(v)
	return _u
}

// ClearSelectedQuantity clears the value of the "selected_quantity" field.
func (_u *ConversationContextUpdateOne) ClearSelectedQuantity() *ConversationContextUpdateOne {
	_u.mutation.ClearSelectedQuantity()
	return _u
}

// SetLockedLanguage sets the "locked_language" field.
func (_u *ConversationContextUpdateOne) SetLockedLanguage(v string) *ConversationContextUpdateOne {
	_u.mutation.SetLockedLanguage(v)
	return _u
}

// SetNillableLockedLanguage sets the "locked_language" field if the given value is not nil.
func (_u *ConversationContextUpdateOne) SetNillableLockedLanguage(v *string) *ConversationContextUpdateOne {
	if v != nil {
		_u.SetLockedLanguage(*v)
	}
	return _u
}

// ClearLockedLanguage clears the value of the "locked_language" field.
func (_u *ConversationContextUpdateOne) ClearLockedLanguage() *ConversationContextUpdateOne {
	_u.mutation.ClearLockedLanguage()
	return _u
}

// SetLowConfidenceTurns sets the "low_confidence_turns" field.
func (_u *ConversationContextUpdateOne) SetLowConfidenceTurns(v int) *ConversationContextUpdateOne {
	_u.mutation.ResetLowConfidenceTurns()
	_u.mutation.SetLowConfidenceTurns(v)
	return _u
}

// SetNillableLowConfidenceTurns sets the "low_confidence_turns" field if the given value is not nil.
func (_u *ConversationContextUpdateOne) SetNillableLowConfidenceTurns(v *int) *ConversationContextUpdateOne {
	if v != nil {
		_u.SetLowConfidenceTurns(*v)
	}
	return _u
}

// AddLowConfidenceTurns adds value to the "low_confidence_turns" field.
func (_u *ConversationContextUpdateOne) AddLowConfidenceTurns(v int) *ConversationContextUpdateOne {
	_u.mutation.AddLowConfidenceTurns(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ConversationContextUpdateOne) SetMetadata(v map[string]interface{}) *ConversationContextUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ConversationContextUpdateOne) ClearMetadata() *ConversationContextUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConversationContextUpdateOne) SetUpdatedAt(v time.Time) *ConversationContextUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ConversationContextMutation object of the builder.
func (_u *ConversationContextUpdateOne) Mutation() *ConversationContextMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConversationContextUpdate builder.
func (_u *ConversationContextUpdateOne) Where(ps ...predicate.ConversationContext) *ConversationContextUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConversationContextUpdateOne) Select(field string, fields ...string) *ConversationContextUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConversationContext entity.
func (_u *ConversationContextUpdateOne) Save(ctx context.Context) (*ConversationContext, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationContextUpdateOne) SaveX(ctx context.Context) *ConversationContext {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConversationContextUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationContextUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConversationContextUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := conversationcontext.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationContextUpdateOne) check() error {
	if v, ok := _u.mutation.CheckoutState(); ok {
		if err := conversationcontext.CheckoutStateValidator(v); err != nil {
			return &ValidationError{Name: "checkout_state", err: fmt.Errorf(`ent: validator failed for field "ConversationContext.checkout_state": %w`, err)}
		}
	}
	if _u.mutation.ConversationCleared() && len(_u.mutation.ConversationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ConversationContext.conversation"`)
	}
	return nil
}

func (_u *ConversationContextUpdateOne) sqlSave(ctx context.Context) (_node *ConversationContext, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversationcontext.Table, conversationcontext.Columns, sqlgraph.NewFieldSpec(conversationcontext.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConversationContext.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conversationcontext.FieldID)
		for _, f := range fields {
			if !conversationcontext.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conversationcontext.FieldID {
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
	if value, ok := _u.mutation.LastCustomerMessage(); ok {
		_spec.SetField(conversationcontext.FieldLastCustomerMessage, field.TypeString, value)
	}
	if _u.mutation.LastCustomerMessageCleared() {
		_spec.ClearField(conversationcontext.FieldLastCustomerMessage, field.TypeString)
	}
	if value, ok := _u.mutation.LastBotMessage(); ok {
		_spec.SetField(conversationcontext.FieldLastBotMessage, field.TypeString, value)
	}
	if _u.mutation.LastBotMessageCleared() {
		_spec.ClearField(conversationcontext.FieldLastBotMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CheckoutState(); ok {
		_spec.SetField(conversationcontext.FieldCheckoutState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SelectedVariantID(); ok {
		_spec.SetField(conversationcontext.FieldSelectedVariantID, field.TypeString, value)
	}
	if _u.mutation.SelectedVariantIDCleared() {
		_spec.ClearField(conversationcontext.FieldSelectedVariantID, field.TypeString)
	}
	if value, ok := _u.mutation.SelectedQuantity(); ok {
		_spec.SetField(conversationcontext.FieldSelectedQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSelectedQuantity(); ok {
		_spec.AddField(conversationcontext.FieldSelectedQuantity, field.TypeInt, value)
	}
	if _u.mutation.SelectedQuantityCleared() {
		_spec.ClearField(conversationcontext.FieldSelectedQuantity, field.TypeInt)
	}
	if value, ok := _u.mutation.LockedLanguage(); ok {
		_spec.SetField(conversationcontext.FieldLockedLanguage, field.TypeString, value)
	}
	if _u.mutation.LockedLanguageCleared() {
		_spec.ClearField(conversationcontext.FieldLockedLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.LowConfidenceTurns(); ok {
		_spec.SetField(conversationcontext.FieldLowConfidenceTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLowConfidenceTurns(); ok {
		_spec.AddField(conversationcontext.FieldLowConfidenceTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(conversationcontext.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(conversationcontext.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(conversationcontext.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ConversationContext{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversationcontext.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
