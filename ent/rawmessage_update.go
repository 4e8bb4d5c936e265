// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/casemine/casemine/ent/predicate"
	"github.com/casemine/casemine/ent/rawmessage"
)

// RawMessageUpdate is the builder for updating RawMessage entities.
type RawMessageUpdate struct {
	config
	hooks    []Hook
	mutation *RawMessageMutation
}

// Where appends a list predicates to the RawMessageUpdate builder.
func (_u *RawMessageUpdate) Where(ps ...predicate.RawMessage) *RawMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSenderName sets the "sender_name" field.
func (_u *RawMessageUpdate) SetSenderName(v string) *RawMessageUpdate {
	_u.mutation.SetSenderName(v)
	return _u
}

// SetNillableSenderName sets the "sender_name" field if the given value is not nil.
func (_u *RawMessageUpdate) SetNillableSenderName(v *string) *RawMessageUpdate {
	if v != nil {
		_u.SetSenderName(*v)
	}
	return _u
}

// ClearSenderName clears the value of the "sender_name" field.
func (_u *RawMessageUpdate) ClearSenderName() *RawMessageUpdate {
	_u.mutation.ClearSenderName()
	return _u
}

// SetContentText sets the "content_text" field.
func (_u *RawMessageUpdate) SetContentText(v string) *RawMessageUpdate {
	_u.mutation.SetContentText(v)
	return _u
}

// SetNillableContentText sets the "content_text" field if the given value is not nil.
func (_u *RawMessageUpdate) SetNillableContentText(v *string) *RawMessageUpdate {
	if v != nil {
		_u.SetContentText(*v)
	}
	return _u
}

// SetImagePaths sets the "image_paths" field.
func (_u *RawMessageUpdate) SetImagePaths(v []string) *RawMessageUpdate {
	_u.mutation.SetImagePaths(v)
	return _u
}

// AppendImagePaths appends value to the "image_paths" field.
func (_u *RawMessageUpdate) AppendImagePaths(v []string) *RawMessageUpdate {
	_u.mutation.AppendImagePaths(v)
	return _u
}

// ClearImagePaths clears the value of the "image_paths" field.
func (_u *RawMessageUpdate) ClearImagePaths() *RawMessageUpdate {
	_u.mutation.ClearImagePaths()
	return _u
}

// SetReplyToID sets the "reply_to_id" field.
func (_u *RawMessageUpdate) SetReplyToID(v string) *RawMessageUpdate {
	_u.mutation.SetReplyToID(v)
	return _u
}

// SetNillableReplyToID sets the "reply_to_id" field if the given value is not nil.
func (_u *RawMessageUpdate) SetNillableReplyToID(v *string) *RawMessageUpdate {
	if v != nil {
		_u.SetReplyToID(*v)
	}
	return _u
}

// ClearReplyToID clears the value of the "reply_to_id" field.
func (_u *RawMessageUpdate) ClearReplyToID() *RawMessageUpdate {
	_u.mutation.ClearReplyToID()
	return _u
}

// SetReactionCount sets the "reaction_count" field.
func (_u *RawMessageUpdate) SetReactionCount(v int) *RawMessageUpdate {
	_u.mutation.ResetReactionCount()
	_u.mutation.SetReactionCount(v)
	return _u
}

// SetNillableReactionCount sets the "reaction_count" field if the given value is not nil.
func (_u *RawMessageUpdate) SetNillableReactionCount(v *int) *RawMessageUpdate {
	if v != nil {
		_u.SetReactionCount(*v)
	}
	return _u
}

// AddReactionCount adds value to the "reaction_count" field.
func (_u *RawMessageUpdate) AddReactionCount(v int) *RawMessageUpdate {
	_u.mutation.AddReactionCount(v)
	return _u
}

// SetFromBot sets the "from_bot" field.
func (_u *RawMessageUpdate) SetFromBot(v bool) *RawMessageUpdate {
	_u.mutation.SetFromBot(v)
	return _u
}

// SetNillableFromBot sets the "from_bot" field if the given value is not nil.
func (_u *RawMessageUpdate) SetNillableFromBot(v *bool) *RawMessageUpdate {
	if v != nil {
		_u.SetFromBot(*v)
	}
	return _u
}

// Mutation returns the RawMessageMutation object of the builder.
func (_u *RawMessageUpdate) Mutation() *RawMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RawMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RawMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RawMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RawMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RawMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(rawmessage.Table, rawmessage.Columns, sqlgraph.NewFieldSpec(rawmessage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SenderName(); ok {
		_spec.SetField(rawmessage.FieldSenderName, field.TypeString, value)
	}
	if _u.mutation.SenderNameCleared() {
		_spec.ClearField(rawmessage.FieldSenderName, field.TypeString)
	}
	if value, ok := _u.mutation.ContentText(); ok {
		_spec.SetField(rawmessage.FieldContentText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImagePaths(); ok {
		_spec.SetField(rawmessage.FieldImagePaths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedImagePaths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, rawmessage.FieldImagePaths, value)
		})
	}
	if _u.mutation.ImagePathsCleared() {
		_spec.ClearField(rawmessage.FieldImagePaths, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReplyToID(); ok {
		_spec.SetField(rawmessage.FieldReplyToID, field.TypeString, value)
	}
	if _u.mutation.ReplyToIDCleared() {
		_spec.ClearField(rawmessage.FieldReplyToID, field.TypeString)
	}
	if value, ok := _u.mutation.ReactionCount(); ok {
		_spec.SetField(rawmessage.FieldReactionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReactionCount(); ok {
		_spec.AddField(rawmessage.FieldReactionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FromBot(); ok {
		_spec.SetField(rawmessage.FieldFromBot, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rawmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RawMessageUpdateOne is the builder for updating a single RawMessage entity.
type RawMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RawMessageMutation
}

// SetSenderName sets the "sender_name" field.
func (_u *RawMessageUpdateOne) SetSenderName(v string) *RawMessageUpdateOne {
	_u.mutation.SetSenderName(v)
	return _u
}

// SetNillableSenderName sets the "sender_name" field if the given value is not nil.
func (_u *RawMessageUpdateOne) SetNillableSenderName(v *string) *RawMessageUpdateOne {
	if v != nil {
		_u.SetSenderName(*v)
	}
	return _u
}

// ClearSenderName clears the value of the "sender_name" field.
func (_u *RawMessageUpdateOne) ClearSenderName() *RawMessageUpdateOne {
	_u.mutation.ClearSenderName()
	return _u
}

// SetContentText sets the "content_text" field.
func (_u *RawMessageUpdateOne) SetContentText(v string) *RawMessageUpdateOne {
	_u.mutation.SetContentText(v)
	return _u
}

// SetNillableContentText sets the "content_text" field if the given value is not nil.
func (_u *RawMessageUpdateOne) SetNillableContentText(v *string) *RawMessageUpdateOne {
	if v != nil {
		_u.SetContentText(*v)
	}
	return _u
}

// SetImagePaths sets the "image_paths" field.
func (_u *RawMessageUpdateOne) SetImagePaths(v []string) *RawMessageUpdateOne {
	_u.mutation.SetImagePaths(v)
	return _u
}

// AppendImagePaths appends value to the "image_paths" field.
func (_u *RawMessageUpdateOne) AppendImagePaths(v []string) *RawMessageUpdateOne {
	_u.mutation.AppendImagePaths(v)
	return _u
}

// ClearImagePaths clears the value of the "image_paths" field.
func (_u *RawMessageUpdateOne) ClearImagePaths() *RawMessageUpdateOne {
	_u.mutation.ClearImagePaths()
	return _u
}

// SetReplyToID sets the "reply_to_id" field.
func (_u *RawMessageUpdateOne) SetReplyToID(v string) *RawMessageUpdateOne {
	_u.mutation.SetReplyToID(v)
	return _u
}

// SetNillableReplyToID sets the "reply_to_id" field if the given value is not nil.
func (_u *RawMessageUpdateOne) SetNillableReplyToID(v *string) *RawMessageUpdateOne {
	if v != nil {
		_u.SetReplyToID(*v)
	}
	return _u
}

// ClearReplyToID clears the value of the "reply_to_id" field.
func (_u *RawMessageUpdateOne) ClearReplyToID() *RawMessageUpdateOne {
	_u.mutation.ClearReplyToID()
	return _u
}

// SetReactionCount sets the "reaction_count" field.
func (_u *RawMessageUpdateOne) SetReactionCount(v int) *RawMessageUpdateOne {
	_u.mutation.ResetReactionCount()
	_u.mutation.SetReactionCount(v)
	return _u
}

// SetNillableReactionCount sets the "reaction_count" field if the given value is not nil.
func (_u *RawMessageUpdateOne) SetNillableReactionCount(v *int) *RawMessageUpdateOne {
	if v != nil {
		_u.SetReactionCount(*v)
	}
	return _u
}

// AddReactionCount adds value to the "reaction_count" field.
func (_u *RawMessageUpdateOne) AddReactionCount(v int) *RawMessageUpdateOne {
	_u.mutation.AddReactionCount(v)
	return _u
}

// SetFromBot sets the "from_bot" field.
func (_u *RawMessageUpdateOne) SetFromBot(v bool) *RawMessageUpdateOne {
	_u.mutation.SetFromBot(v)
	return _u
}

// SetNillableFromBot sets the "from_bot" field if the given value is not nil.
func (_u *RawMessageUpdateOne) SetNillableFromBot(v *bool) *RawMessageUpdateOne {
	if v != nil {
		_u.SetFromBot(*v)
	}
	return _u
}

// Mutation returns the RawMessageMutation object of the builder.
func (_u *RawMessageUpdateOne) Mutation() *RawMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the RawMessageUpdate builder.
func (_u *RawMessageUpdateOne) Where(ps ...predicate.RawMessage) *RawMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RawMessageUpdateOne) Select(field string, fields ...string) *RawMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RawMessage entity.
func (_u *RawMessageUpdateOne) Save(ctx context.Context) (*RawMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RawMessageUpdateOne) SaveX(ctx context.Context) *RawMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RawMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RawMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RawMessageUpdateOne) sqlSave(ctx context.Context) (_node *RawMessage, err error) {
	_spec := sqlgraph.NewUpdateSpec(rawmessage.Table, rawmessage.Columns, sqlgraph.NewFieldSpec(rawmessage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RawMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rawmessage.FieldID)
		for _, f := range fields {
			if !rawmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != rawmessage.FieldID {
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
	if value, ok := _u.mutation.SenderName(); ok {
		_spec.SetField(rawmessage.FieldSenderName, field.TypeString, value)
	}
	if _u.mutation.SenderNameCleared() {
		_spec.ClearField(rawmessage.FieldSenderName, field.TypeString)
	}
	if value, ok := _u.mutation.ContentText(); ok {
		_spec.SetField(rawmessage.FieldContentText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImagePaths(); ok {
		_spec.SetField(rawmessage.FieldImagePaths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedImagePaths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, rawmessage.FieldImagePaths, value)
		})
	}
	if _u.mutation.ImagePathsCleared() {
		_spec.ClearField(rawmessage.FieldImagePaths, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReplyToID(); ok {
		_spec.SetField(rawmessage.FieldReplyToID, field.TypeString, value)
	}
	if _u.mutation.ReplyToIDCleared() {
		_spec.ClearField(rawmessage.FieldReplyToID, field.TypeString)
	}
	if value, ok := _u.mutation.ReactionCount(); ok {
		_spec.SetField(rawmessage.FieldReactionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReactionCount(); ok {
		_spec.AddField(rawmessage.FieldReactionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FromBot(); ok {
		_spec.SetField(rawmessage.FieldFromBot, field.TypeBool, value)
	}
	_node = &RawMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rawmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
