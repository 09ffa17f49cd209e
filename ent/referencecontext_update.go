// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/sokochat/sokochat/ent/predicate"
	"github.com/sokochat/sokochat/ent/referencecontext"
	"github.com/sokochat/sokochat/ent/schema"
)

// ReferenceContextUpdate is the builder for updating ReferenceContext entities.
type ReferenceContextUpdate struct {
	config
	hooks    []Hook
	mutation *ReferenceContextMutation
}

// Where appends a list predicates to the ReferenceContextUpdate builder.
func (_u *ReferenceContextUpdate) Where(ps ...predicate.ReferenceContext) *ReferenceContextUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetListType sets the "list_type" field.
func (_u *ReferenceContextUpdate) SetListType(v string) *ReferenceContextUpdate {
	_u.mutation.SetListType(v)
	return _u
}

// SetNillableListType sets the "list_type" field if the given value is not nil.
func (_u *ReferenceContextUpdate) SetNillableListType(v *string) *ReferenceContextUpdate {
	if v != nil {
		_u.SetListType(*v)
	}
	return _u
}

// SetItems sets the "items" field.
func (_u *ReferenceContextUpdate) SetItems(v []schema.ReferenceItem) *ReferenceContextUpdate {
	_u.mutation.SetItems(v)
	return _u
}

// AppendItems appends value to the "items" field.
func (_u *ReferenceContextUpdate) AppendItems(v []schema.ReferenceItem) *ReferenceContextUpdate {
	_u.mutation.AppendItems(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ReferenceContextUpdate) SetExpiresAt(v time.Time) *ReferenceContextUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ReferenceContextUpdate) SetNillableExpiresAt(v *time.Time) *ReferenceContextUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the ReferenceContextMutation object of the builder.
func (_u *ReferenceContextUpdate) Mutation() *ReferenceContextMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReferenceContextUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReferenceContextUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReferenceContextUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReferenceContextUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReferenceContextUpdate) check() error {
	if _u.mutation.ConversationCleared() && len(_u.mutation.ConversationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReferenceContext.conversation"`)
	}
	return nil
}

func (_u *ReferenceContextUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(referencecontext.Table, referencecontext.Columns, sqlgraph.NewFieldSpec(referencecontext.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ListType(); ok {
		_spec.SetField(referencecontext.FieldListType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Items(); ok {
		_spec.SetField(referencecontext.FieldItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, referencecontext.FieldItems, value)
		})
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(referencecontext.FieldExpiresAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{referencecontext.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReferenceContextUpdateOne is the builder for updating a single ReferenceContext entity.
type ReferenceContextUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReferenceContextMutation
}

// SetListType sets the "list_type" field.
func (_u *ReferenceContextUpdateOne) SetListType(v string) *ReferenceContextUpdateOne {
	_u.mutation.SetListType(v)
	return _u
}

// SetNillableListType sets the "list_type" field if the given value is not nil.
func (_u *ReferenceContextUpdateOne) SetNillableListType(v *string) *ReferenceContextUpdateOne {
	if v != nil {
		_u.SetListType(*v)
	}
	return _u
}

// SetItems sets the "items" field.
func (_u *ReferenceContextUpdateOne) SetItems(v []schema.ReferenceItem) *ReferenceContextUpdateOne {
	_u.mutation.SetItems(v)
	return _u
}

// AppendItems appends value to the "items" field.
func (_u *ReferenceContextUpdateOne) AppendItems(v []schema.ReferenceItem) *ReferenceContextUpdateOne {
	_u.mutation.AppendItems(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ReferenceContextUpdateOne) SetExpiresAt(v time.Time) *ReferenceContextUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ReferenceContextUpdateOne) SetNillableExpiresAt(v *time.Time) *ReferenceContextUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the ReferenceContextMutation object of the builder.
func (_u *ReferenceContextUpdateOne) Mutation() *ReferenceContextMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReferenceContextUpdate builder.
func (_u *ReferenceContextUpdateOne) Where(ps ...predicate.ReferenceContext) *ReferenceContextUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReferenceContextUpdateOne) Select(field string, fields ...string) *ReferenceContextUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReferenceContext entity.
func (_u *ReferenceContextUpdateOne) Save(ctx context.Context) (*ReferenceContext, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReferenceContextUpdateOne) SaveX(ctx context.Context) *ReferenceContext {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReferenceContextUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReferenceContextUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReferenceContextUpdateOne) check() error {
	if _u.mutation.ConversationCleared() && len(_u.mutation.ConversationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReferenceContext.conversation"`)
	}
	return nil
}

func (_u *ReferenceContextUpdateOne) sqlSave(ctx context.Context) (_node *ReferenceContext, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(referencecontext.Table, referencecontext.Columns, sqlgraph.NewFieldSpec(referencecontext.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReferenceContext.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, referencecontext.FieldID)
		for _, f := range fields {
			if !referencecontext.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != referencecontext.FieldID {
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
	if value, ok := _u.mutation.ListType(); ok {
		_spec.SetField(referencecontext.FieldListType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Items(); ok {
		_spec.SetField(referencecontext.FieldItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, referencecontext.FieldItems, value)
		})
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(referencecontext.FieldExpiresAt, field.TypeTime, value)
	}
	_node = &ReferenceContext{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{referencecontext.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
