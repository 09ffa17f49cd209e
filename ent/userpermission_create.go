// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sokochat/sokochat/ent/user"
	"github.com/sokochat/sokochat/ent/userpermission"
)

// UserPermissionCreate is the builder for creating a UserPermission entity.
type UserPermissionCreate struct {
	config
	mutation *UserPermissionMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *UserPermissionCreate) SetTenantID(v string) *UserPermissionCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *UserPermissionCreate) SetUserID(v string) *UserPermissionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetPermissionCode sets the "permission_code" field.
func (_c *UserPermissionCreate) SetPermissionCode(v string) *UserPermissionCreate {
	_c.mutation.SetPermissionCode(v)
	return _c
}

// SetGranted sets the "granted" field.
func (_c *UserPermissionCreate) SetGranted(v bool) *UserPermissionCreate {
	_c.mutation.SetGranted(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UserPermissionCreate) SetCreatedAt(v time.Time) *UserPermissionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UserPermissionCreate) SetNillableCreatedAt(v *time.Time) *UserPermissionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UserPermissionCreate) SetID(v string) *UserPermissionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *UserPermissionCreate) SetUser(v *User) *UserPermissionCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the UserPermissionMutation object of the builder.
func (_c *UserPermissionCreate) Mutation() *UserPermissionMutation {
	return _c.mutation
}

// Save creates the UserPermission in the database.
func (_c *UserPermissionCreate) Save(ctx context.Context) (*UserPermission, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserPermissionCreate) SaveX(ctx context.Context) *UserPermission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserPermissionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserPermissionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserPermissionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := userpermission.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserPermissionCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "UserPermission.tenant_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UserPermission.user_id"`)}
	}
	if _, ok := _c.mutation.PermissionCode(); !ok {
		return &ValidationError{Name: "permission_code", err: errors.New(`ent: missing required field "UserPermission.permission_code"`)}
	}
	if _, ok := _c.mutation.Granted(); !ok {
		return &ValidationError{Name: "granted", err: errors.New(`ent: missing required field "UserPermission.granted"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UserPermission.created_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "UserPermission.user"`)}
	}
	return nil
}

func (_c *UserPermissionCreate) sqlSave(ctx context.Context) (*UserPermission, error) {
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
			return nil, fmt.Errorf("unexpected UserPermission.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UserPermissionCreate) createSpec() (*UserPermission, *sqlgraph.CreateSpec) {
	var (
		_node = &UserPermission{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(userpermission.Table, sqlgraph.NewFieldSpec(userpermission.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(userpermission.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.PermissionCode(); ok {
		_spec.SetField(userpermission.FieldPermissionCode, field.TypeString, value)
		_node.PermissionCode = value
	}
	if value, ok := _c.mutation.Granted(); ok {
		_spec.SetField(userpermission.FieldGranted, field.TypeBool, value)
		_node.Granted = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(userpermission.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   userpermission.UserTable,
			Columns: []string{userpermission.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// UserPermissionCreateBulk is the builder for creating many UserPermission entities in bulk.
type UserPermissionCreateBulk struct {
	config
	err      error
	builders []*UserPermissionCreate
}

// Save creates the UserPermission entities in the database.
func (_c *UserPermissionCreateBulk) Save(ctx context.Context) ([]*UserPermission, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserPermission, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserPermissionMutation)
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
func (_c *UserPermissionCreateBulk) SaveX(ctx context.Context) []*UserPermission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserPermissionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserPermissionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
