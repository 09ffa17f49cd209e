// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sokochat/sokochat/ent/predicate"
	"github.com/sokochat/sokochat/ent/userpermission"
)

// UserPermissionUpdate is the builder for updating UserPermission entities.
type UserPermissionUpdate struct {
	config
	hooks    []Hook
	mutation *UserPermissionMutation
}

// Where appends a list predicates to the UserPermissionUpdate builder.
func (_u *UserPermissionUpdate) Where(ps ...predicate.UserPermission) *UserPermissionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPermissionCode sets the "permission_code" field.
func (_u *UserPermissionUpdate) SetPermissionCode(v string) *UserPermissionUpdate {
	_u.mutation.SetPermissionCode(v)
	return _u
}

// SetNillablePermissionCode sets the "permission_code" field if the given value is not nil.
func (_u *UserPermissionUpdate) SetNillablePermissionCode(v *string) *UserPermissionUpdate {
	if v != nil {
		_u.SetPermissionCode(*v)
	}
	return _u
}

// SetGranted sets the "granted" field.
func (_u *UserPermissionUpdate) SetGranted(v bool) *UserPermissionUpdate {
	_u.mutation.SetGranted(v)
	return _u
}

// SetNillableGranted sets the "granted" field if the given value is not nil.
func (_u *UserPermissionUpdate) SetNillableGranted(v *bool) *UserPermissionUpdate {
	if v != nil {
		_u.SetGranted(*v)
	}
	return _u
}

// Mutation returns the UserPermissionMutation object of the builder.
func (_u *UserPermissionUpdate) Mutation() *UserPermissionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserPermissionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserPermissionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserPermissionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserPermissionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserPermissionUpdate) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UserPermission.user"`)
	}
	return nil
}

func (_u *UserPermissionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userpermission.Table, userpermission.Columns, sqlgraph.NewFieldSpec(userpermission.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PermissionCode(); ok {
		_spec.SetField(userpermission.FieldPermissionCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Granted(); ok {
		_spec.SetField(userpermission.FieldGranted, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userpermission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserPermissionUpdateOne is the builder for updating a single UserPermission entity.
type UserPermissionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserPermissionMutation
}

// SetPermissionCode sets the "permission_code" field.
func (_u *UserPermissionUpdateOne) SetPermissionCode(v string) *UserPermissionUpdateOne {
	_u.mutation.SetPermissionCode(v)
	return _u
}

// SetNillablePermissionCode sets the "permission_code" field if the given value is not nil.
func (_u *UserPermissionUpdateOne) SetNillablePermissionCode(v *string) *UserPermissionUpdateOne {
	if v != nil {
		_u.SetPermissionCode(*v)
	}
	return _u
}

// SetGranted sets the "granted" field.
func (_u *UserPermissionUpdateOne) SetGranted(v bool) *UserPermissionUpdateOne {
	_u.mutation.SetGranted(v)
	return _u
}

// SetNillableGranted sets the "granted" field if the given value is not nil.
func (_u *UserPermissionUpdateOne) SetNillableGranted(v *bool) *UserPermissionUpdateOne {
	if v != nil {
		_u.SetGranted(*v)
	}
	return _u
}

// Mutation returns the UserPermissionMutation object of the builder.
func (_u *UserPermissionUpdateOne) Mutation() *UserPermissionMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserPermissionUpdate builder.
func (_u *UserPermissionUpdateOne) Where(ps ...predicate.UserPermission) *UserPermissionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserPermissionUpdateOne) Select(field string, fields ...string) *UserPermissionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserPermission entity.
func (_u *UserPermissionUpdateOne) Save(ctx context.Context) (*UserPermission, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserPermissionUpdateOne) SaveX(ctx context.Context) *UserPermission {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserPermissionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserPermissionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserPermissionUpdateOne) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UserPermission.user"`)
	}
	return nil
}

func (_u *UserPermissionUpdateOne) sqlSave(ctx context.Context) (_node *UserPermission, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userpermission.Table, userpermission.Columns, sqlgraph.NewFieldSpec(userpermission.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserPermission.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userpermission.FieldID)
		for _, f := range fields {
			if !userpermission.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userpermission.FieldID {
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
	if value, ok := _u.mutation.PermissionCode(); ok {
		_spec.SetField(userpermission.FieldPermissionCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Granted(); ok {
		_spec.SetField(userpermission.FieldGranted, field.TypeBool, value)
	}
	_node = &UserPermission{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userpermission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
