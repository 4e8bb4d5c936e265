// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/casemine/casemine/ent/rawmessage"
)

// RawMessageCreate is the builder for creating a RawMessage entity.
type RawMessageCreate struct {
	config
	mutation *RawMessageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetGroupID sets the "group_id" field.
func (_c *RawMessageCreate) SetGroupID(v string) *RawMessageCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetMessageID sets the "message_id" field.
func (_c *RawMessageCreate) SetMessageID(v string) *RawMessageCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetTs sets the "ts" field.
func (_c *RawMessageCreate) SetTs(v int64) *RawMessageCreate {
	_c.mutation.SetTs(v)
	return _c
}

// SetSenderHash sets the "sender_hash" field.
func (_c *RawMessageCreate) SetSenderHash(v string) *RawMessageCreate {
	_c.mutation.SetSenderHash(v)
	return _c
}

// SetSenderName sets the "sender_name" field.
func (_c *RawMessageCreate) SetSenderName(v string) *RawMessageCreate {
	_c.mutation.SetSenderName(v)
	return _c
}

// SetNillableSenderName sets the "sender_name" field if the given value is not nil.
func (_c *RawMessageCreate) SetNillableSenderName(v *string) *RawMessageCreate {
	if v != nil {
		_c.SetSenderName(*v)
	}
	return _c
}

// SetContentText sets the "content_text" field.
func (_c *RawMessageCreate) SetContentText(v string) *RawMessageCreate {
	_c.mutation.SetContentText(v)
	return _c
}

// SetImagePaths sets the "image_paths" field.
func (_c *RawMessageCreate) SetImagePaths(v []string) *RawMessageCreate {
	_c.mutation.SetImagePaths(v)
	return _c
}

// SetReplyToID sets the "reply_to_id" field.
func (_c *RawMessageCreate) SetReplyToID(v string) *RawMessageCreate {
	_c.mutation.SetReplyToID(v)
	return _c
}

// SetNillableReplyToID sets the "reply_to_id" field if the given value is not nil.
func (_c *RawMessageCreate) SetNillableReplyToID(v *string) *RawMessageCreate {
	if v != nil {
		_c.SetReplyToID(*v)
	}
	return _c
}

// SetReactionCount sets the "reaction_count" field.
func (_c *RawMessageCreate) SetReactionCount(v int) *RawMessageCreate {
	_c.mutation.SetReactionCount(v)
	return _c
}

// SetNillableReactionCount sets the "reaction_count" field if the given value is not nil.
func (_c *RawMessageCreate) SetNillableReactionCount(v *int) *RawMessageCreate {
	if v != nil {
		_c.SetReactionCount(*v)
	}
	return _c
}

// SetFromBot sets the "from_bot" field.
func (_c *RawMessageCreate) SetFromBot(v bool) *RawMessageCreate {
	_c.mutation.SetFromBot(v)
	return _c
}

// SetNillableFromBot sets the "from_bot" field if the given value is not nil.
func (_c *RawMessageCreate) SetNillableFromBot(v *bool) *RawMessageCreate {
	if v != nil {
		_c.SetFromBot(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RawMessageCreate) SetCreatedAt(v time.Time) *RawMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RawMessageCreate) SetNillableCreatedAt(v *time.Time) *RawMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RawMessageCreate) SetID(v string) *RawMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RawMessageMutation object of the builder.
func (_c *RawMessageCreate) Mutation() *RawMessageMutation {
	return _c.mutation
}

// Save creates the RawMessage in the database.
func (_c *RawMessageCreate) Save(ctx context.Context) (*RawMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RawMessageCreate) SaveX(ctx context.Context) *RawMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RawMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RawMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RawMessageCreate) defaults() {
	if _, ok := _c.mutation.ReactionCount(); !ok {
		v := rawmessage.DefaultReactionCount
		_c.mutation.SetReactionCount(v)
	}
	if _, ok := _c.mutation.FromBot(); !ok {
		v := rawmessage.DefaultFromBot
		_c.mutation.SetFromBot(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := rawmessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RawMessageCreate) check() error {
	if _, ok := _c.mutation.GroupID(); !ok {
		return &ValidationError{Name: "group_id", err: errors.New(`ent: missing required field "RawMessage.group_id"`)}
	}
	if _, ok := _c.mutation.MessageID(); !ok {
		return &ValidationError{Name: "message_id", err: errors.New(`ent: missing required field "RawMessage.message_id"`)}
	}
	if _, ok := _c.mutation.Ts(); !ok {
		return &ValidationError{Name: "ts", err: errors.New(`ent: missing required field "RawMessage.ts"`)}
	}
	if _, ok := _c.mutation.SenderHash(); !ok {
		return &ValidationError{Name: "sender_hash", err: errors.New(`ent: missing required field "RawMessage.sender_hash"`)}
	}
	if _, ok := _c.mutation.ContentText(); !ok {
		return &ValidationError{Name: "content_text", err: errors.New(`ent: missing required field "RawMessage.content_text"`)}
	}
	if _, ok := _c.mutation.ReactionCount(); !ok {
		return &ValidationError{Name: "reaction_count", err: errors.New(`ent: missing required field "RawMessage.reaction_count"`)}
	}
	if _, ok := _c.mutation.FromBot(); !ok {
		return &ValidationError{Name: "from_bot", err: errors.New(`ent: missing required field "RawMessage.from_bot"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RawMessage.created_at"`)}
	}
	return nil
}

func (_c *RawMessageCreate) sqlSave(ctx context.Context) (*RawMessage, error) {
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
			return nil, fmt.Errorf("unexpected RawMessage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RawMessageCreate) createSpec() (*RawMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &RawMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rawmessage.Table, sqlgraph.NewFieldSpec(rawmessage.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.GroupID(); ok {
		_spec.SetField(rawmessage.FieldGroupID, field.TypeString, value)
		_node.GroupID = value
	}
	if value, ok := _c.mutation.MessageID(); ok {
		_spec.SetField(rawmessage.FieldMessageID, field.TypeString, value)
		_node.MessageID = value
	}
	if value, ok := _c.mutation.Ts(); ok {
		_spec.SetField(rawmessage.FieldTs, field.TypeInt64, value)
		_node.Ts = value
	}
	if value, ok := _c.mutation.SenderHash(); ok {
		_spec.SetField(rawmessage.FieldSenderHash, field.TypeString, value)
		_node.SenderHash = value
	}
	if value, ok := _c.mutation.SenderName(); ok {
		_spec.SetField(rawmessage.FieldSenderName, field.TypeString, value)
		_node.SenderName = &value
	}
	if value, ok := _c.mutation.ContentText(); ok {
		_spec.SetField(rawmessage.FieldContentText, field.TypeString, value)
		_node.ContentText = value
	}
	if value, ok := _c.mutation.ImagePaths(); ok {
		_spec.SetField(rawmessage.FieldImagePaths, field.TypeJSON, value)
		_node.ImagePaths = value
	}
	if value, ok := _c.mutation.ReplyToID(); ok {
		_spec.SetField(rawmessage.FieldReplyToID, field.TypeString, value)
		_node.ReplyToID = &value
	}
	if value, ok := _c.mutation.ReactionCount(); ok {
		_spec.SetField(rawmessage.FieldReactionCount, field.TypeInt, value)
		_node.ReactionCount = value
	}
	if value, ok := _c.mutation.FromBot(); ok {
		_spec.SetField(rawmessage.FieldFromBot, field.TypeBool, value)
		_node.FromBot = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(rawmessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RawMessage.Create().
//		SetGroupID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RawMessageUpsert) {
//			SetGroupID(v+v).
//		}).
//		Exec(ctx)
func (_c *RawMessageCreate) OnConflict(opts ...sql.ConflictOption) *RawMessageUpsertOne {
	_c.conflict = opts
	return &RawMessageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RawMessage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RawMessageCreate) OnConflictColumns(columns ...string) *RawMessageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RawMessageUpsertOne{
		create: _c,
	}
}

type (
	// RawMessageUpsertOne is the builder for "upsert"-ing
	//  one RawMessage node.
	RawMessageUpsertOne struct {
		create *RawMessageCreate
	}

	// RawMessageUpsert is the "OnConflict" setter.
	RawMessageUpsert struct {
		*sql.UpdateSet
	}
)

// SetSenderName sets the "sender_name" field.
func (u *RawMessageUpsert) SetSenderName(v string) *RawMessageUpsert {
	u.Set(rawmessage.FieldSenderName, v)
	return u
}

// UpdateSenderName sets the "sender_name" field to the value that was provided on create.
func (u *RawMessageUpsert) UpdateSenderName() *RawMessageUpsert {
	u.SetExcluded(rawmessage.FieldSenderName)
	return u
}

// ClearSenderName clears the value of the "sender_name" field.
func (u *RawMessageUpsert) ClearSenderName() *RawMessageUpsert {
	u.SetNull(rawmessage.FieldSenderName)
	return u
}

// SetContentText sets the "content_text" field.
func (u *RawMessageUpsert) SetContentText(v string) *RawMessageUpsert {
	u.Set(rawmessage.FieldContentText, v)
	return u
}

// UpdateContentText sets the "content_text" field to the value that was provided on create.
func (u *RawMessageUpsert) UpdateContentText() *RawMessageUpsert {
	u.SetExcluded(rawmessage.FieldContentText)
	return u
}

// SetImagePaths sets the "image_paths" field.
func (u *RawMessageUpsert) SetImagePaths(v []string) *RawMessageUpsert {
	u.Set(rawmessage.FieldImagePaths, v)
	return u
}

// UpdateImagePaths sets the "image_paths" field to the value that was provided on create.
func (u *RawMessageUpsert) UpdateImagePaths() *RawMessageUpsert {
	u.SetExcluded(rawmessage.FieldImagePaths)
	return u
}

// ClearImagePaths clears the value of the "image_paths" field.
func (u *RawMessageUpsert) ClearImagePaths() *RawMessageUpsert {
	u.SetNull(rawmessage.FieldImagePaths)
	return u
}

// SetReplyToID sets the "reply_to_id" field.
func (u *RawMessageUpsert) SetReplyToID(v string) *RawMessageUpsert {
	u.Set(rawmessage.FieldReplyToID, v)
	return u
}

// UpdateReplyToID sets the "reply_to_id" field to the value that was provided on create.
func (u *RawMessageUpsert) UpdateReplyToID() *RawMessageUpsert {
	u.SetExcluded(rawmessage.FieldReplyToID)
	return u
}

// ClearReplyToID clears the value of the "reply_to_id" field.
func (u *RawMessageUpsert) ClearReplyToID() *RawMessageUpsert {
	u.SetNull(rawmessage.FieldReplyToID)
	return u
}

// SetReactionCount sets the "reaction_count" field.
func (u *RawMessageUpsert) SetReactionCount(v int) *RawMessageUpsert {
	u.Set(rawmessage.FieldReactionCount, v)
	return u
}

// UpdateReactionCount sets the "reaction_count" field to the value that was provided on create.
func (u *RawMessageUpsert) UpdateReactionCount() *RawMessageUpsert {
	u.SetExcluded(rawmessage.FieldReactionCount)
	return u
}

// AddReactionCount adds v to the "reaction_count" field.
func (u *RawMessageUpsert) AddReactionCount(v int) *RawMessageUpsert {
	u.Add(rawmessage.FieldReactionCount, v)
	return u
}

// SetFromBot sets the "from_bot" field.
func (u *RawMessageUpsert) SetFromBot(v bool) *RawMessageUpsert {
	u.Set(rawmessage.FieldFromBot, v)
	return u
}

// UpdateFromBot sets the "from_bot" field to the value that was provided on create.
func (u *RawMessageUpsert) UpdateFromBot() *RawMessageUpsert {
	u.SetExcluded(rawmessage.FieldFromBot)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.RawMessage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(rawmessage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RawMessageUpsertOne) UpdateNewValues() *RawMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(rawmessage.FieldID)
		}
		if _, exists := u.create.mutation.GroupID(); exists {
			s.SetIgnore(rawmessage.FieldGroupID)
		}
		if _, exists := u.create.mutation.MessageID(); exists {
			s.SetIgnore(rawmessage.FieldMessageID)
		}
		if _, exists := u.create.mutation.Ts(); exists {
			s.SetIgnore(rawmessage.FieldTs)
		}
		if _, exists := u.create.mutation.SenderHash(); exists {
			s.SetIgnore(rawmessage.FieldSenderHash)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(rawmessage.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RawMessage.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RawMessageUpsertOne) Ignore() *RawMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RawMessageUpsertOne) DoNothing() *RawMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RawMessageCreate.OnConflict
// documentation for more info.
func (u *RawMessageUpsertOne) Update(set func(*RawMessageUpsert)) *RawMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RawMessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetSenderName sets the "sender_name" field.
func (u *RawMessageUpsertOne) SetSenderName(v string) *RawMessageUpsertOne {
	return u.Update(func(s *RawMessageUpsert) {
		s.SetSenderName(v)
	})
}

// UpdateSenderName sets the "sender_name" field to the value that was provided on create.
func (u *RawMessageUpsertOne) UpdateSenderName() *RawMessageUpsertOne {
	return u.Update(func(s *RawMessageUpsert) {
		s.UpdateSenderName()
	})
}

// ClearSenderName clears the value of the "sender_name" field.
func (u *RawMessageUpsertOne) ClearSenderName() *RawMessageUpsertOne {
	return u.Update(func(s *RawMessageUpsert) {
		s.ClearSenderName()
	})
}

// SetContentText sets the "content_text" field.
func (u *RawMessageUpsertOne) SetContentText(v string) *RawMessageUpsertOne {
	return u.Update(func(s *RawMessageUpsert) {
		s.SetContentText(v)
	})
}

// UpdateContentText sets the "content_text" field to the value that was provided on create.
func (u *RawMessageUpsertOne) UpdateContentText() *RawMessageUpsertOne {
	return u.Update(func(s *RawMessageUpsert) {
		s.UpdateContentText()
	})
}

// SetImagePaths sets the "image_paths" field.
func (u *RawMessageUpsertOne) SetImagePaths(v []string) *RawMessageUpsertOne {
	return u.Update(func(s *RawMessageUpsert) {
		s.SetImagePaths(v)
	})
}

// UpdateImagePaths sets the "image_paths" field to the value that was provided on create.
func (u *RawMessageUpsertOne) UpdateImagePaths() *RawMessageUpsertOne {
	return u.Update(func(s *RawMessageUpsert) {
		s.UpdateImagePaths()
	})
}

// ClearImagePaths clears the value of the "image_paths" field.
func (u *RawMessageUpsertOne) ClearImagePaths() *RawMessageUpsertOne {
	return u.Update(func(s *RawMessageUpsert) {
		s.ClearImagePaths()
	})
}

// SetReplyToID sets the "reply_to_id" field.
func (u *RawMessageUpsertOne) SetReplyToID(v string) *RawMessageUpsertOne {
	return u.Update(func(s *RawMessageUpsert) {
		s.SetReplyToID(v)
	})
}

// UpdateReplyToID sets the "reply_to_id" field to the value that was provided on create.
func (u *RawMessageUpsertOne) UpdateReplyToID() *RawMessageUpsertOne {
	return u.Update(func(s *RawMessageUpsert) {
		s.UpdateReplyToID()
	})
}

// ClearReplyToID clears the value of the "reply_to_id" field.
func (u *RawMessageUpsertOne) ClearReplyToID() *RawMessageUpsertOne {
	return u.Update(func(s *RawMessageUpsert) {
		s.ClearReplyToID()
	})
}

// SetReactionCount sets the "reaction_count" field.
func (u *RawMessageUpsertOne) SetReactionCount(v int) *RawMessageUpsertOne {
	return u.Update(func(s *RawMessageUpsert) {
		s.SetReactionCount(v)
	})
}

// AddReactionCount adds v to the "reaction_count" field.
func (u *RawMessageUpsertOne) AddReactionCount(v int) *RawMessageUpsertOne {
	return u.Update(func(s *RawMessageUpsert) {
		s.AddReactionCount(v)
	})
}

// UpdateReactionCount sets the "reaction_count" field to the value that was provided on create.
func (u *RawMessageUpsertOne) UpdateReactionCount() *RawMessageUpsertOne {
	return u.Update(func(s *RawMessageUpsert) {
		s.UpdateReactionCount()
	})
}

// SetFromBot sets the "from_bot" field.
func (u *RawMessageUpsertOne) SetFromBot(v bool) *RawMessageUpsertOne {
	return u.Update(func(s *RawMessageUpsert) {
		s.SetFromBot(v)
	})
}

// UpdateFromBot sets the "from_bot" field to the value that was provided on create.
func (u *RawMessageUpsertOne) UpdateFromBot() *RawMessageUpsertOne {
	return u.Update(func(s *RawMessageUpsert) {
		s.UpdateFromBot()
	})
}

// Exec executes the query.
func (u *RawMessageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RawMessageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RawMessageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RawMessageUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RawMessageUpsertOne.ID is not supported by MySQL driver. Use RawMessageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RawMessageUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RawMessageCreateBulk is the builder for creating many RawMessage entities in bulk.
type RawMessageCreateBulk struct {
	config
	err      error
	builders []*RawMessageCreate
	conflict []sql.ConflictOption
}

// Save creates the RawMessage entities in the database.
func (_c *RawMessageCreateBulk) Save(ctx context.Context) ([]*RawMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RawMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RawMessageMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *RawMessageCreateBulk) SaveX(ctx context.Context) []*RawMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RawMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RawMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RawMessage.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RawMessageUpsert) {
//			SetGroupID(v+v).
//		}).
//		Exec(ctx)
func (_c *RawMessageCreateBulk) OnConflict(opts ...sql.ConflictOption) *RawMessageUpsertBulk {
	_c.conflict = opts
	return &RawMessageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RawMessage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RawMessageCreateBulk) OnConflictColumns(columns ...string) *RawMessageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RawMessageUpsertBulk{
		create: _c,
	}
}

// RawMessageUpsertBulk is the builder for "upsert"-ing
// a bulk of RawMessage nodes.
type RawMessageUpsertBulk struct {
	create *RawMessageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RawMessage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(rawmessage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RawMessageUpsertBulk) UpdateNewValues() *RawMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(rawmessage.FieldID)
			}
			if _, exists := b.mutation.GroupID(); exists {
				s.SetIgnore(rawmessage.FieldGroupID)
			}
			if _, exists := b.mutation.MessageID(); exists {
				s.SetIgnore(rawmessage.FieldMessageID)
			}
			if _, exists := b.mutation.Ts(); exists {
				s.SetIgnore(rawmessage.FieldTs)
			}
			if _, exists := b.mutation.SenderHash(); exists {
				s.SetIgnore(rawmessage.FieldSenderHash)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(rawmessage.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RawMessage.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RawMessageUpsertBulk) Ignore() *RawMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RawMessageUpsertBulk) DoNothing() *RawMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RawMessageCreateBulk.OnConflict
// documentation for more info.
func (u *RawMessageUpsertBulk) Update(set func(*RawMessageUpsert)) *RawMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RawMessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetSenderName sets the "sender_name" field.
func (u *RawMessageUpsertBulk) SetSenderName(v string) *RawMessageUpsertBulk {
	return u.Update(func(s *RawMessageUpsert) {
		s.SetSenderName(v)
	})
}

// UpdateSenderName sets the "sender_name" field to the value that was provided on create.
func (u *RawMessageUpsertBulk) UpdateSenderName() *RawMessageUpsertBulk {
	return u.Update(func(s *RawMessageUpsert) {
		s.UpdateSenderName()
	})
}

// ClearSenderName clears the value of the "sender_name" field.
func (u *RawMessageUpsertBulk) ClearSenderName() *RawMessageUpsertBulk {
	return u.Update(func(s *RawMessageUpsert) {
		s.ClearSenderName()
	})
}

// SetContentText sets the "content_text" field.
func (u *RawMessageUpsertBulk) SetContentText(v string) *RawMessageUpsertBulk {
	return u.Update(func(s *RawMessageUpsert) {
		s.SetContentText(v)
	})
}

// UpdateContentText sets the "content_text" field to the value that was provided on create.
func (u *RawMessageUpsertBulk) UpdateContentText() *RawMessageUpsertBulk {
	return u.Update(func(s *RawMessageUpsert) {
		s.UpdateContentText()
	})
}

// SetImagePaths sets the "image_paths" field.
func (u *RawMessageUpsertBulk) SetImagePaths(v []string) *RawMessageUpsertBulk {
	return u.Update(func(s *RawMessageUpsert) {
		s.SetImagePaths(v)
	})
}

// UpdateImagePaths sets the "image_paths" field to the value that was provided on create.
func (u *RawMessageUpsertBulk) UpdateImagePaths() *RawMessageUpsertBulk {
	return u.Update(func(s *RawMessageUpsert) {
		s.UpdateImagePaths()
	})
}

// ClearImagePaths clears the value of the "image_paths" field.
func (u *RawMessageUpsertBulk) ClearImagePaths() *RawMessageUpsertBulk {
	return u.Update(func(s *RawMessageUpsert) {
		s.ClearImagePaths()
	})
}

// SetReplyToID sets the "reply_to_id" field.
func (u *RawMessageUpsertBulk) SetReplyToID(v string) *RawMessageUpsertBulk {
	return u.Update(func(s *RawMessageUpsert) {
		s.SetReplyToID(v)
	})
}

// UpdateReplyToID sets the "reply_to_id" field to the value that was provided on create.
func (u *RawMessageUpsertBulk) UpdateReplyToID() *RawMessageUpsertBulk {
	return u.Update(func(s *RawMessageUpsert) {
		s.UpdateReplyToID()
	})
}

// ClearReplyToID clears the value of the "reply_to_id" field.
func (u *RawMessageUpsertBulk) ClearReplyToID() *RawMessageUpsertBulk {
	return u.Update(func(s *RawMessageUpsert) {
		s.ClearReplyToID()
	})
}

// SetReactionCount sets the "reaction_count" field.
func (u *RawMessageUpsertBulk) SetReactionCount(v int) *RawMessageUpsertBulk {
	return u.Update(func(s *RawMessageUpsert) {
		s.SetReactionCount(v)
	})
}

// AddReactionCount adds v to the "reaction_count" field.
func (u *RawMessageUpsertBulk) AddReactionCount(v int) *RawMessageUpsertBulk {
	return u.Update(func(s *RawMessageUpsert) {
		s.AddReactionCount(v)
	})
}

// UpdateReactionCount sets the "reaction_count" field to the value that was provided on create.
func (u *RawMessageUpsertBulk) UpdateReactionCount() *RawMessageUpsertBulk {
	return u.Update(func(s *RawMessageUpsert) {
		s.UpdateReactionCount()
	})
}

// SetFromBot sets the "from_bot" field.
func (u *RawMessageUpsertBulk) SetFromBot(v bool) *RawMessageUpsertBulk {
	return u.Update(func(s *RawMessageUpsert) {
		s.SetFromBot(v)
	})
}

// UpdateFromBot sets the "from_bot" field to the value that was provided on create.
func (u *RawMessageUpsertBulk) UpdateFromBot() *RawMessageUpsertBulk {
	return u.Update(func(s *RawMessageUpsert) {
		s.UpdateFromBot()
	})
}

// Exec executes the query.
func (u *RawMessageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RawMessageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RawMessageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RawMessageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
