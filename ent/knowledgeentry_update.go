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
	"github.com/sokochat/sokochat/ent/knowledgeentry"
	"github.com/sokochat/sokochat/ent/predicate"
)

// KnowledgeEntryUpdate is the builder for updating KnowledgeEntry entities.
type KnowledgeEntryUpdate struct {
	config
	hooks    []Hook
	mutation *KnowledgeEntryMutation
}

// Where appends a list predicates to the KnowledgeEntryUpdate builder.
func (_u *KnowledgeEntryUpdate) Where(ps ...predicate.KnowledgeEntry) *KnowledgeEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *KnowledgeEntryUpdate) SetTitle(v string) *KnowledgeEntryUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *KnowledgeEntryUpdate) SetNillableTitle(v *string) *KnowledgeEntryUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *KnowledgeEntryUpdate) SetBody(v string) *KnowledgeEntryUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *KnowledgeEntryUpdate) SetNillableBody(v *string) *KnowledgeEntryUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *KnowledgeEntryUpdate) SetTags(v []string) *KnowledgeEntryUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *KnowledgeEntryUpdate) AppendTags(v []string) *KnowledgeEntryUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *KnowledgeEntryUpdate) ClearTags() *KnowledgeEntryUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetVectorPointID sets the "vector_point_id" field.
func (_u *KnowledgeEntryUpdate) SetVectorPointID(v string) *KnowledgeEntryUpdate {
	_u.mutation.SetVectorPointID(v)
	return _u
}

// SetNillableVectorPointID sets the "vector_point_id" field if the given value is not nil.
func (_u *KnowledgeEntryUpdate) SetNillableVectorPointID(v *string) *KnowledgeEntryUpdate {
	if v != nil {
		_u.SetVectorPointID(*v)
	}
	return _u
}

// ClearVectorPointID clears the value of the "vector_point_id" field.
func (_u *KnowledgeEntryUpdate) ClearVectorPointID() *KnowledgeEntryUpdate {
	_u.mutation.ClearVectorPointID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *KnowledgeEntryUpdate) SetUpdatedAt(v time.Time) *KnowledgeEntryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *KnowledgeEntryUpdate) SetDeletedAt(v time.Time) *KnowledgeEntryUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *KnowledgeEntryUpdate) SetNillableDeletedAt(v *time.Time) *KnowledgeEntryUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *KnowledgeEntryUpdate) ClearDeletedAt() *KnowledgeEntryUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// Mutation returns the KnowledgeEntryMutation object of the builder.
func (_u *KnowledgeEntryUpdate) Mutation() *KnowledgeEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *KnowledgeEntryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnowledgeEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *KnowledgeEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnowledgeEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *KnowledgeEntryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := knowledgeentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnowledgeEntryUpdate) check() error {
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "KnowledgeEntry.tenant"`)
	}
	return nil
}

func (_u *KnowledgeEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knowledgeentry.Table, knowledgeentry.Columns, sqlgraph.NewFieldSpec(knowledgeentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(knowledgeentry.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(knowledgeentry.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(knowledgeentry.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, knowledgeentry.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(knowledgeentry.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.VectorPointID(); ok {
		_spec.SetField(knowledgeentry.FieldVectorPointID, field.TypeString, value)
	}
	if _u.mutation.VectorPointIDCleared() {
		_spec.ClearField(knowledgeentry.FieldVectorPointID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(knowledgeentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(knowledgeentry.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(knowledgeentry.FieldDeletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knowledgeentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// KnowledgeEntryUpdateOne is the builder for updating a single KnowledgeEntry entity.
type KnowledgeEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *KnowledgeEntryMutation
}

// SetTitle sets the "title" field.
func (_u *KnowledgeEntryUpdateOne) SetTitle(v string) *KnowledgeEntryUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *KnowledgeEntryUpdateOne) SetNillableTitle(v *string) *KnowledgeEntryUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *KnowledgeEntryUpdateOne) SetBody(v string) *KnowledgeEntryUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *KnowledgeEntryUpdateOne) SetNillableBody(v *string) *KnowledgeEntryUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *KnowledgeEntryUpdateOne) SetTags(v []string) *KnowledgeEntryUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *KnowledgeEntryUpdateOne) AppendTags(v []string) *KnowledgeEntryUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *KnowledgeEntryUpdateOne) ClearTags() *KnowledgeEntryUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetVectorPointID sets the "vector_point_id" field.
func (_u *KnowledgeEntryUpdateOne) SetVectorPointID(v string) *KnowledgeEntryUpdateOne {
	_u.mutation.SetVectorPointID(v)
	return _u
}

// SetNillableVectorPointID sets the "vector_point_id" field if the given value is not nil.
func (_u *KnowledgeEntryUpdateOne) SetNillableVectorPointID(v *string) *KnowledgeEntryUpdateOne {
	if v != nil {
		_u.SetVectorPointID(*v)
	}
	return _u
}

// ClearVectorPointID clears the value of the "vector_point_id" field.
func (_u *KnowledgeEntryUpdateOne) ClearVectorPointID() *KnowledgeEntryUpdateOne {
	_u.mutation.ClearVectorPointID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *KnowledgeEntryUpdateOne) SetUpdatedAt(v time.Time) *KnowledgeEntryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *KnowledgeEntryUpdateOne) SetDeletedAt(v time.Time) *KnowledgeEntryUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *KnowledgeEntryUpdateOne) SetNillableDeletedAt(v *time.Time) *KnowledgeEntryUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *KnowledgeEntryUpdateOne) ClearDeletedAt() *KnowledgeEntryUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// Mutation returns the KnowledgeEntryMutation object of the builder.
func (_u *KnowledgeEntryUpdateOne) Mutation() *KnowledgeEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the KnowledgeEntryUpdate builder.
func (_u *KnowledgeEntryUpdateOne) Where(ps ...predicate.KnowledgeEntry) *KnowledgeEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *KnowledgeEntryUpdateOne) Select(field string, fields ...string) *KnowledgeEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated KnowledgeEntry entity.
func (_u *KnowledgeEntryUpdateOne) Save(ctx context.Context) (*KnowledgeEntry, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnowledgeEntryUpdateOne) SaveX(ctx context.Context) *KnowledgeEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *KnowledgeEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnowledgeEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *KnowledgeEntryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := knowledgeentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnowledgeEntryUpdateOne) check() error {
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "KnowledgeEntry.tenant"`)
	}
	return nil
}

func (_u *KnowledgeEntryUpdateOne) sqlSave(ctx context.Context) (_node *KnowledgeEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knowledgeentry.Table, knowledgeentry.Columns, sqlgraph.NewFieldSpec(knowledgeentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "KnowledgeEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, knowledgeentry.FieldID)
		for _, f := range fields {
			if !knowledgeentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != knowledgeentry.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(knowledgeentry.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(knowledgeentry.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(knowledgeentry.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, knowledgeentry.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(knowledgeentry.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.VectorPointID(); ok {
		_spec.SetField(knowledgeentry.FieldVectorPointID, field.TypeString, value)
	}
	if _u.mutation.VectorPointIDCleared() {
		_spec.ClearField(knowledgeentry.FieldVectorPointID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(knowledgeentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(knowledgeentry.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(knowledgeentry.FieldDeletedAt, field.TypeTime)
	}
	_node = &KnowledgeEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knowledgeentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
