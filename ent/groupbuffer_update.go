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
	"github.com/casemine/casemine/ent/groupbuffer"
	"github.com/casemine/casemine/ent/predicate"
)

// GroupBufferUpdate is the builder for updating GroupBuffer entities.
type GroupBufferUpdate struct {
	config
	hooks    []Hook
	mutation *GroupBufferMutation
}

// Where appends a list predicates to the GroupBufferUpdate builder.
func (_u *GroupBufferUpdate) Where(ps ...predicate.GroupBuffer) *GroupBufferUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBufferText sets the "buffer_text" field.
func (_u *GroupBufferUpdate) SetBufferText(v string) *GroupBufferUpdate {
	_u.mutation.SetBufferText(v)
	return _u
}

// SetNillableBufferText sets the "buffer_text" field if the given value is not nil.
func (_u *GroupBufferUpdate) SetNillableBufferText(v *string) *GroupBufferUpdate {
	if v != nil {
		_u.SetBufferText(*v)
	}
	return _u
}

// SetDocUrls sets the "doc_urls" field.
func (_u *GroupBufferUpdate) SetDocUrls(v []string) *GroupBufferUpdate {
	_u.mutation.SetDocUrls(v)
	return _u
}

// AppendDocUrls appends value to the "doc_urls" field.
func (_u *GroupBufferUpdate) AppendDocUrls(v []string) *GroupBufferUpdate {
	_u.mutation.AppendDocUrls(v)
	return _u
}

// ClearDocUrls clears the value of the "doc_urls" field.
func (_u *GroupBufferUpdate) ClearDocUrls() *GroupBufferUpdate {
	_u.mutation.ClearDocUrls()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GroupBufferUpdate) SetUpdatedAt(v time.Time) *GroupBufferUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the GroupBufferMutation object of the builder.
func (_u *GroupBufferUpdate) Mutation() *GroupBufferMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GroupBufferUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GroupBufferUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GroupBufferUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GroupBufferUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GroupBufferUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := groupbuffer.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *GroupBufferUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(groupbuffer.Table, groupbuffer.Columns, sqlgraph.NewFieldSpec(groupbuffer.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BufferText(); ok {
		_spec.SetField(groupbuffer.FieldBufferText, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocUrls(); ok {
		_spec.SetField(groupbuffer.FieldDocUrls, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDocUrls(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, groupbuffer.FieldDocUrls, value)
		})
	}
	if _u.mutation.DocUrlsCleared() {
		_spec.ClearField(groupbuffer.FieldDocUrls, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(groupbuffer.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{groupbuffer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GroupBufferUpdateOne is the builder for updating a single GroupBuffer entity.
type GroupBufferUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GroupBufferMutation
}

// SetBufferText sets the "buffer_text" field.
func (_u *GroupBufferUpdateOne) SetBufferText(v string) *GroupBufferUpdateOne {
	_u.mutation.SetBufferText(v)
	return _u
}

// SetNillableBufferText sets the "buffer_text" field if the given value is not nil.
func (_u *GroupBufferUpdateOne) SetNillableBufferText(v *string) *GroupBufferUpdateOne {
	if v != nil {
		_u.SetBufferText(*v)
	}
	return _u
}

// SetDocUrls sets the "doc_urls" field.
func (_u *GroupBufferUpdateOne) SetDocUrls(v []string) *GroupBufferUpdateOne {
	_u.mutation.SetDocUrls(v)
	return _u
}

// AppendDocUrls appends value to the "doc_urls" field.
func (_u *GroupBufferUpdateOne) AppendDocUrls(v []string) *GroupBufferUpdateOne {
	_u.mutation.AppendDocUrls(v)
	return _u
}

// ClearDocUrls clears the value of the "doc_urls" field.
func (_u *GroupBufferUpdateOne) ClearDocUrls() *GroupBufferUpdateOne {
	_u.mutation.ClearDocUrls()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GroupBufferUpdateOne) SetUpdatedAt(v time.Time) *GroupBufferUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the GroupBufferMutation object of the builder.
func (_u *GroupBufferUpdateOne) Mutation() *GroupBufferMutation {
	return _u.mutation
}

// Where appends a list predicates to the GroupBufferUpdate builder.
func (_u *GroupBufferUpdateOne) Where(ps ...predicate.GroupBuffer) *GroupBufferUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GroupBufferUpdateOne) Select(field string, fields ...string) *GroupBufferUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GroupBuffer entity.
func (_u *GroupBufferUpdateOne) Save(ctx context.Context) (*GroupBuffer, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GroupBufferUpdateOne) SaveX(ctx context.Context) *GroupBuffer {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GroupBufferUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GroupBufferUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GroupBufferUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := groupbuffer.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *GroupBufferUpdateOne) sqlSave(ctx context.Context) (_node *GroupBuffer, err error) {
	_spec := sqlgraph.NewUpdateSpec(groupbuffer.Table, groupbuffer.Columns, sqlgraph.NewFieldSpec(groupbuffer.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GroupBuffer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, groupbuffer.FieldID)
		for _, f := range fields {
			if !groupbuffer.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != groupbuffer.FieldID {
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
	if value, ok := _u.mutation.BufferText(); ok {
		_spec.SetField(groupbuffer.FieldBufferText, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocUrls(); ok {
		_spec.SetField(groupbuffer.FieldDocUrls, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDocUrls(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, groupbuffer.FieldDocUrls, value)
		})
	}
	if _u.mutation.DocUrlsCleared() {
		_spec.ClearField(groupbuffer.FieldDocUrls, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(groupbuffer.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &GroupBuffer{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{groupbuffer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
