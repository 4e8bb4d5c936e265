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
	"github.com/casemine/casemine/ent/predicate"
	"github.com/casemine/casemine/ent/reaction"
)

// ReactionUpdate is the builder for updating Reaction entities.
type ReactionUpdate struct {
	config
	hooks    []Hook
	mutation *ReactionMutation
}

// Where appends a list predicates to the ReactionUpdate builder.
func (_u *ReactionUpdate) Where(ps ...predicate.Reaction) *ReactionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *ReactionUpdate) SetGroupID(v string) *ReactionUpdate {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *ReactionUpdate) SetNillableGroupID(v *string) *ReactionUpdate {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// SetTargetTs sets the "target_ts" field.
func (_u *ReactionUpdate) SetTargetTs(v int64) *ReactionUpdate {
	_u.mutation.ResetTargetTs()
	_u.mutation.SetTargetTs(v)
	return _u
}

// SetNillableTargetTs sets the "target_ts" field if the given value is not nil.
func (_u *ReactionUpdate) SetNillableTargetTs(v *int64) *ReactionUpdate {
	if v != nil {
		_u.SetTargetTs(*v)
	}
	return _u
}

// AddTargetTs adds value to the "target_ts" field.
func (_u *ReactionUpdate) AddTargetTs(v int64) *ReactionUpdate {
	_u.mutation.AddTargetTs(v)
	return _u
}

// SetTargetAuthor sets the "target_author" field.
func (_u *ReactionUpdate) SetTargetAuthor(v string) *ReactionUpdate {
	_u.mutation.SetTargetAuthor(v)
	return _u
}

// SetNillableTargetAuthor sets the "target_author" field if the given value is not nil.
func (_u *ReactionUpdate) SetNillableTargetAuthor(v *string) *ReactionUpdate {
	if v != nil {
		_u.SetTargetAuthor(*v)
	}
	return _u
}

// SetSenderHash sets the "sender_hash" field.
func (_u *ReactionUpdate) SetSenderHash(v string) *ReactionUpdate {
	_u.mutation.SetSenderHash(v)
	return _u
}

// SetNillableSenderHash sets the "sender_hash" field if the given value is not nil.
func (_u *ReactionUpdate) SetNillableSenderHash(v *string) *ReactionUpdate {
	if v != nil {
		_u.SetSenderHash(*v)
	}
	return _u
}

// SetEmoji sets the "emoji" field.
func (_u *ReactionUpdate) SetEmoji(v string) *ReactionUpdate {
	_u.mutation.SetEmoji(v)
	return _u
}

// SetNillableEmoji sets the "emoji" field if the given value is not nil.
func (_u *ReactionUpdate) SetNillableEmoji(v *string) *ReactionUpdate {
	if v != nil {
		_u.SetEmoji(*v)
	}
	return _u
}

// SetIsPositive sets the "is_positive" field.
func (_u *ReactionUpdate) SetIsPositive(v bool) *ReactionUpdate {
	_u.mutation.SetIsPositive(v)
	return _u
}

// SetNillableIsPositive sets the "is_positive" field if the given value is not nil.
func (_u *ReactionUpdate) SetNillableIsPositive(v *bool) *ReactionUpdate {
	if v != nil {
		_u.SetIsPositive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReactionUpdate) SetCreatedAt(v time.Time) *ReactionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReactionUpdate) SetNillableCreatedAt(v *time.Time) *ReactionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the ReactionMutation object of the builder.
func (_u *ReactionUpdate) Mutation() *ReactionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReactionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReactionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReactionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReactionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ReactionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(reaction.Table, reaction.Columns, sqlgraph.NewFieldSpec(reaction.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(reaction.FieldGroupID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetTs(); ok {
		_spec.SetField(reaction.FieldTargetTs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTargetTs(); ok {
		_spec.AddField(reaction.FieldTargetTs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TargetAuthor(); ok {
		_spec.SetField(reaction.FieldTargetAuthor, field.TypeString, value)
	}
	if value, ok := _u.mutation.SenderHash(); ok {
		_spec.SetField(reaction.FieldSenderHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Emoji(); ok {
		_spec.SetField(reaction.FieldEmoji, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsPositive(); ok {
		_spec.SetField(reaction.FieldIsPositive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(reaction.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReactionUpdateOne is the builder for updating a single Reaction entity.
type ReactionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReactionMutation
}

// SetGroupID sets the "group_id" field.
func (_u *ReactionUpdateOne) SetGroupID(v string) *ReactionUpdateOne {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *ReactionUpdateOne) SetNillableGroupID(v *string) *ReactionUpdateOne {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// SetTargetTs sets the "target_ts" field.
func (_u *ReactionUpdateOne) SetTargetTs(v int64) *ReactionUpdateOne {
	_u.mutation.ResetTargetTs()
	_u.mutation.SetTargetTs(v)
	return _u
}

// SetNillableTargetTs sets the "target_ts" field if the given value is not nil.
func (_u *ReactionUpdateOne) SetNillableTargetTs(v *int64) *ReactionUpdateOne {
	if v != nil {
		_u.SetTargetTs(*v)
	}
	return _u
}

// AddTargetTs adds value to the "target_ts" field.
func (_u *ReactionUpdateOne) AddTargetTs(v int64) *ReactionUpdateOne {
	_u.mutation.AddTargetTs(v)
	return _u
}

// SetTargetAuthor sets the "target_author" field.
func (_u *ReactionUpdateOne) SetTargetAuthor(v string) *ReactionUpdateOne {
	_u.mutation.SetTargetAuthor(v)
	return _u
}

// SetNillableTargetAuthor sets the "target_author" field if the given value is not nil.
func (_u *ReactionUpdateOne) SetNillableTargetAuthor(v *string) *ReactionUpdateOne {
	if v != nil {
		_u.SetTargetAuthor(*v)
	}
	return _u
}

// SetSenderHash sets the "sender_hash" field.
func (_u *ReactionUpdateOne) SetSenderHash(v string) *ReactionUpdateOne {
	_u.mutation.SetSenderHash(v)
	return _u
}

// SetNillableSenderHash sets the "sender_hash" field if the given value is not nil.
func (_u *ReactionUpdateOne) SetNillableSenderHash(v *string) *ReactionUpdateOne {
	if v != nil {
		_u.SetSenderHash(*v)
	}
	return _u
}

// SetEmoji sets the "emoji" field.
func (_u *ReactionUpdateOne) SetEmoji(v string) *ReactionUpdateOne {
	_u.mutation.SetEmoji(v)
	return _u
}

// SetNillableEmoji sets the "emoji" field if the given value is not nil.
func (_u *ReactionUpdateOne) SetNillableEmoji(v *string) *ReactionUpdateOne {
	if v != nil {
		_u.SetEmoji(*v)
	}
	return _u
}

// SetIsPositive sets the "is_positive" field.
func (_u *ReactionUpdateOne) SetIsPositive(v bool) *ReactionUpdateOne {
	_u.mutation.SetIsPositive(v)
	return _u
}

// SetNillableIsPositive sets the "is_positive" field if the given value is not nil.
func (_u *ReactionUpdateOne) SetNillableIsPositive(v *bool) *ReactionUpdateOne {
	if v != nil {
		_u.SetIsPositive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReactionUpdateOne) SetCreatedAt(v time.Time) *ReactionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReactionUpdateOne) SetNillableCreatedAt(v *time.Time) *ReactionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the ReactionMutation object of the builder.
func (_u *ReactionUpdateOne) Mutation() *ReactionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReactionUpdate builder.
func (_u *ReactionUpdateOne) Where(ps ...predicate.Reaction) *ReactionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReactionUpdateOne) Select(field string, fields ...string) *ReactionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Reaction entity.
func (_u *ReactionUpdateOne) Save(ctx context.Context) (*Reaction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReactionUpdateOne) SaveX(ctx context.Context) *Reaction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReactionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReactionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ReactionUpdateOne) sqlSave(ctx context.Context) (_node *Reaction, err error) {
	_spec := sqlgraph.NewUpdateSpec(reaction.Table, reaction.Columns, sqlgraph.NewFieldSpec(reaction.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Reaction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reaction.FieldID)
		for _, f := range fields {
			if !reaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reaction.FieldID {
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
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(reaction.FieldGroupID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetTs(); ok {
		_spec.SetField(reaction.FieldTargetTs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTargetTs(); ok {
		_spec.AddField(reaction.FieldTargetTs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TargetAuthor(); ok {
		_spec.SetField(reaction.FieldTargetAuthor, field.TypeString, value)
	}
	if value, ok := _u.mutation.SenderHash(); ok {
		_spec.SetField(reaction.FieldSenderHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Emoji(); ok {
		_spec.SetField(reaction.FieldEmoji, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsPositive(); ok {
		_spec.SetField(reaction.FieldIsPositive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(reaction.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &Reaction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
