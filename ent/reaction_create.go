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
	"github.com/casemine/casemine/ent/reaction"
)

// ReactionCreate is the builder for creating a Reaction entity.
type ReactionCreate struct {
	config
	mutation *ReactionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetGroupID sets the "group_id" field.
func (_c *ReactionCreate) SetGroupID(v string) *ReactionCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetTargetTs sets the "target_ts" field.
func (_c *ReactionCreate) SetTargetTs(v int64) *ReactionCreate {
	_c.mutation.SetTargetTs(v)
	return _c
}

// SetTargetAuthor sets the "target_author" field.
func (_c *ReactionCreate) SetTargetAuthor(v string) *ReactionCreate {
	_c.mutation.SetTargetAuthor(v)
	return _c
}

// SetSenderHash sets the "sender_hash" field.
func (_c *ReactionCreate) SetSenderHash(v string) *ReactionCreate {
	_c.mutation.SetSenderHash(v)
	return _c
}

// SetEmoji sets the "emoji" field.
func (_c *ReactionCreate) SetEmoji(v string) *ReactionCreate {
	_c.mutation.SetEmoji(v)
	return _c
}

// SetIsPositive sets the "is_positive" field.
func (_c *ReactionCreate) SetIsPositive(v bool) *ReactionCreate {
	_c.mutation.SetIsPositive(v)
	return _c
}

// SetNillableIsPositive sets the "is_positive" field if the given value is not nil.
func (_c *ReactionCreate) SetNillableIsPositive(v *bool) *ReactionCreate {
	if v != nil {
		_c.SetIsPositive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReactionCreate) SetCreatedAt(v time.Time) *ReactionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReactionCreate) SetNillableCreatedAt(v *time.Time) *ReactionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the ReactionMutation object of the builder.
func (_c *ReactionCreate) Mutation() *ReactionMutation {
	return _c.mutation
}

// Save creates the Reaction in the database.
func (_c *ReactionCreate) Save(ctx context.Context) (*Reaction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReactionCreate) SaveX(ctx context.Context) *Reaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReactionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReactionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReactionCreate) defaults() {
	if _, ok := _c.mutation.IsPositive(); !ok {
		v := reaction.DefaultIsPositive
		_c.mutation.SetIsPositive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reaction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReactionCreate) check() error {
	if _, ok := _c.mutation.GroupID(); !ok {
		return &ValidationError{Name: "group_id", err: errors.New(`ent: missing required field "Reaction.group_id"`)}
	}
	if _, ok := _c.mutation.TargetTs(); !ok {
		return &ValidationError{Name: "target_ts", err: errors.New(`ent: missing required field "Reaction.target_ts"`)}
	}
	if _, ok := _c.mutation.TargetAuthor(); !ok {
		return &ValidationError{Name: "target_author", err: errors.New(`ent: missing required field "Reaction.target_author"`)}
	}
	if _, ok := _c.mutation.SenderHash(); !ok {
		return &ValidationError{Name: "sender_hash", err: errors.New(`ent: missing required field "Reaction.sender_hash"`)}
	}
	if _, ok := _c.mutation.Emoji(); !ok {
		return &ValidationError{Name: "emoji", err: errors.New(`ent: missing required field "Reaction.emoji"`)}
	}
	if _, ok := _c.mutation.IsPositive(); !ok {
		return &ValidationError{Name: "is_positive", err: errors.New(`ent: missing required field "Reaction.is_positive"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Reaction.created_at"`)}
	}
	return nil
}

func (_c *ReactionCreate) sqlSave(ctx context.Context) (*Reaction, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReactionCreate) createSpec() (*Reaction, *sqlgraph.CreateSpec) {
	var (
		_node = &Reaction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reaction.Table, sqlgraph.NewFieldSpec(reaction.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.GroupID(); ok {
		_spec.SetField(reaction.FieldGroupID, field.TypeString, value)
		_node.GroupID = value
	}
	if value, ok := _c.mutation.TargetTs(); ok {
		_spec.SetField(reaction.FieldTargetTs, field.TypeInt64, value)
		_node.TargetTs = value
	}
	if value, ok := _c.mutation.TargetAuthor(); ok {
		_spec.SetField(reaction.FieldTargetAuthor, field.TypeString, value)
		_node.TargetAuthor = value
	}
	if value, ok := _c.mutation.SenderHash(); ok {
		_spec.SetField(reaction.FieldSenderHash, field.TypeString, value)
		_node.SenderHash = value
	}
	if value, ok := _c.mutation.Emoji(); ok {
		_spec.SetField(reaction.FieldEmoji, field.TypeString, value)
		_node.Emoji = value
	}
	if value, ok := _c.mutation.IsPositive(); ok {
		_spec.SetField(reaction.FieldIsPositive, field.TypeBool, value)
		_node.IsPositive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reaction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Reaction.Create().
//		SetGroupID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReactionUpsert) {
//			SetGroupID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReactionCreate) OnConflict(opts ...sql.ConflictOption) *ReactionUpsertOne {
	_c.conflict = opts
	return &ReactionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Reaction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReactionCreate) OnConflictColumns(columns ...string) *ReactionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReactionUpsertOne{
		create: _c,
	}
}

type (
	// ReactionUpsertOne is the builder for "upsert"-ing
	//  one Reaction node.
	ReactionUpsertOne struct {
		create *ReactionCreate
	}

	// ReactionUpsert is the "OnConflict" setter.
	ReactionUpsert struct {
		*sql.UpdateSet
	}
)

// SetGroupID sets the "group_id" field.
func (u *ReactionUpsert) SetGroupID(v string) *ReactionUpsert {
	u.Set(reaction.FieldGroupID, v)
	return u
}

// UpdateGroupID sets the "group_id" field to the value that was provided on create.
func (u *ReactionUpsert) UpdateGroupID() *ReactionUpsert {
	u.SetExcluded(reaction.FieldGroupID)
	return u
}

// SetTargetTs sets the "target_ts" field.
func (u *ReactionUpsert) SetTargetTs(v int64) *ReactionUpsert {
	u.Set(reaction.FieldTargetTs, v)
	return u
}

// UpdateTargetTs sets the "target_ts" field to the value that was provided on create.
func (u *ReactionUpsert) UpdateTargetTs() *ReactionUpsert {
	u.SetExcluded(reaction.FieldTargetTs)
	return u
}

// AddTargetTs adds v to the "target_ts" field.
func (u *ReactionUpsert) AddTargetTs(v int64) *ReactionUpsert {
	u.Add(reaction.FieldTargetTs, v)
	return u
}

// SetTargetAuthor sets the "target_author" field.
func (u *ReactionUpsert) SetTargetAuthor(v string) *ReactionUpsert {
	u.Set(reaction.FieldTargetAuthor, v)
	return u
}

// UpdateTargetAuthor sets the "target_author" field to the value that was provided on create.
func (u *ReactionUpsert) UpdateTargetAuthor() *ReactionUpsert {
	u.SetExcluded(reaction.FieldTargetAuthor)
	return u
}

// SetSenderHash sets the "sender_hash" field.
func (u *ReactionUpsert) SetSenderHash(v string) *ReactionUpsert {
	u.Set(reaction.FieldSenderHash, v)
	return u
}

// UpdateSenderHash sets the "sender_hash" field to the value that was provided on create.
func (u *ReactionUpsert) UpdateSenderHash() *ReactionUpsert {
	u.SetExcluded(reaction.FieldSenderHash)
	return u
}

// SetEmoji sets the "emoji" field.
func (u *ReactionUpsert) SetEmoji(v string) *ReactionUpsert {
	u.Set(reaction.FieldEmoji, v)
	return u
}

// UpdateEmoji sets the "emoji" field to the value that was provided on create.
func (u *ReactionUpsert) UpdateEmoji() *ReactionUpsert {
	u.SetExcluded(reaction.FieldEmoji)
	return u
}

// SetIsPositive sets the "is_positive" field.
func (u *ReactionUpsert) SetIsPositive(v bool) *ReactionUpsert {
	u.Set(reaction.FieldIsPositive, v)
	return u
}

// UpdateIsPositive sets the "is_positive" field to the value that was provided on create.
func (u *ReactionUpsert) UpdateIsPositive() *ReactionUpsert {
	u.SetExcluded(reaction.FieldIsPositive)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *ReactionUpsert) SetCreatedAt(v time.Time) *ReactionUpsert {
	u.Set(reaction.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ReactionUpsert) UpdateCreatedAt() *ReactionUpsert {
	u.SetExcluded(reaction.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Reaction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ReactionUpsertOne) UpdateNewValues() *ReactionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Reaction.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ReactionUpsertOne) Ignore() *ReactionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReactionUpsertOne) DoNothing() *ReactionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReactionCreate.OnConflict
// documentation for more info.
func (u *ReactionUpsertOne) Update(set func(*ReactionUpsert)) *ReactionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReactionUpsert{UpdateSet: update})
	}))
	return u
}

// SetGroupID sets the "group_id" field.
func (u *ReactionUpsertOne) SetGroupID(v string) *ReactionUpsertOne {
	return u.Update(func(s *ReactionUpsert) {
		s.SetGroupID(v)
	})
}

// UpdateGroupID sets the "group_id" field to the value that was provided on create.
func (u *ReactionUpsertOne) UpdateGroupID() *ReactionUpsertOne {
	return u.Update(func(s *ReactionUpsert) {
		s.UpdateGroupID()
	})
}

// SetTargetTs sets the "target_ts" field.
func (u *ReactionUpsertOne) SetTargetTs(v int64) *ReactionUpsertOne {
	return u.Update(func(s *ReactionUpsert) {
		s.SetTargetTs(v)
	})
}

// AddTargetTs adds v to the "target_ts" field.
func (u *ReactionUpsertOne) AddTargetTs(v int64) *ReactionUpsertOne {
	return u.Update(func(s *ReactionUpsert) {
		s.AddTargetTs(v)
	})
}

// UpdateTargetTs sets the "target_ts" field to the value that was provided on create.
func (u *ReactionUpsertOne) UpdateTargetTs() *ReactionUpsertOne {
	return u.Update(func(s *ReactionUpsert) {
		s.UpdateTargetTs()
	})
}

// SetTargetAuthor sets the "target_author" field.
func (u *ReactionUpsertOne) SetTargetAuthor(v string) *ReactionUpsertOne {
	return u.Update(func(s *ReactionUpsert) {
		s.SetTargetAuthor(v)
	})
}

// UpdateTargetAuthor sets the "target_author" field to the value that was provided on create.
func (u *ReactionUpsertOne) UpdateTargetAuthor() *ReactionUpsertOne {
	return u.Update(func(s *ReactionUpsert) {
		s.UpdateTargetAuthor()
	})
}

// SetSenderHash sets the "sender_hash" field.
func (u *ReactionUpsertOne) SetSenderHash(v string) *ReactionUpsertOne {
	return u.Update(func(s *ReactionUpsert) {
		s.SetSenderHash(v)
	})
}

// UpdateSenderHash sets the "sender_hash" field to the value that was provided on create.
func (u *ReactionUpsertOne) UpdateSenderHash() *ReactionUpsertOne {
	return u.Update(func(s *ReactionUpsert) {
		s.UpdateSenderHash()
	})
}

// SetEmoji sets the "emoji" field.
func (u *ReactionUpsertOne) SetEmoji(v string) *ReactionUpsertOne {
	return u.Update(func(s *ReactionUpsert) {
		s.SetEmoji(v)
	})
}

// UpdateEmoji sets the "emoji" field to the value that was provided on create.
func (u *ReactionUpsertOne) UpdateEmoji() *ReactionUpsertOne {
	return u.Update(func(s *ReactionUpsert) {
		s.UpdateEmoji()
	})
}

// SetIsPositive sets the "is_positive" field.
func (u *ReactionUpsertOne) SetIsPositive(v bool) *ReactionUpsertOne {
	return u.Update(func(s *ReactionUpsert) {
		s.SetIsPositive(v)
	})
}

// UpdateIsPositive sets the "is_positive" field to the value that was provided on create.
func (u *ReactionUpsertOne) UpdateIsPositive() *ReactionUpsertOne {
	return u.Update(func(s *ReactionUpsert) {
		s.UpdateIsPositive()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ReactionUpsertOne) SetCreatedAt(v time.Time) *ReactionUpsertOne {
	return u.Update(func(s *ReactionUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ReactionUpsertOne) UpdateCreatedAt() *ReactionUpsertOne {
	return u.Update(func(s *ReactionUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *ReactionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReactionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReactionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ReactionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ReactionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ReactionCreateBulk is the builder for creating many Reaction entities in bulk.
type ReactionCreateBulk struct {
	config
	err      error
	builders []*ReactionCreate
	conflict []sql.ConflictOption
}

// Save creates the Reaction entities in the database.
func (_c *ReactionCreateBulk) Save(ctx context.Context) ([]*Reaction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Reaction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReactionMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *ReactionCreateBulk) SaveX(ctx context.Context) []*Reaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReactionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReactionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Reaction.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReactionUpsert) {
//			SetGroupID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReactionCreateBulk) OnConflict(opts ...sql.ConflictOption) *ReactionUpsertBulk {
	_c.conflict = opts
	return &ReactionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Reaction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReactionCreateBulk) OnConflictColumns(columns ...string) *ReactionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReactionUpsertBulk{
		create: _c,
	}
}

// ReactionUpsertBulk is the builder for "upsert"-ing
// a bulk of Reaction nodes.
type ReactionUpsertBulk struct {
	create *ReactionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Reaction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ReactionUpsertBulk) UpdateNewValues() *ReactionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Reaction.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ReactionUpsertBulk) Ignore() *ReactionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReactionUpsertBulk) DoNothing() *ReactionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReactionCreateBulk.OnConflict
// documentation for more info.
func (u *ReactionUpsertBulk) Update(set func(*ReactionUpsert)) *ReactionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReactionUpsert{UpdateSet: update})
	}))
	return u
}

// SetGroupID sets the "group_id" field.
func (u *ReactionUpsertBulk) SetGroupID(v string) *ReactionUpsertBulk {
	return u.Update(func(s *ReactionUpsert) {
		s.SetGroupID(v)
	})
}

// UpdateGroupID sets the "group_id" field to the value that was provided on create.
func (u *ReactionUpsertBulk) UpdateGroupID() *ReactionUpsertBulk {
	return u.Update(func(s *ReactionUpsert) {
		s.UpdateGroupID()
	})
}

// SetTargetTs sets the "target_ts" field.
func (u *ReactionUpsertBulk) SetTargetTs(v int64) *ReactionUpsertBulk {
	return u.Update(func(s *ReactionUpsert) {
		s.SetTargetTs(v)
	})
}

// AddTargetTs adds v to the "target_ts" field.
func (u *ReactionUpsertBulk) AddTargetTs(v int64) *ReactionUpsertBulk {
	return u.Update(func(s *ReactionUpsert) {
		s.AddTargetTs(v)
	})
}

// UpdateTargetTs sets the "target_ts" field to the value that was provided on create.
func (u *ReactionUpsertBulk) UpdateTargetTs() *ReactionUpsertBulk {
	return u.Update(func(s *ReactionUpsert) {
		s.UpdateTargetTs()
	})
}

// SetTargetAuthor sets the "target_author" field.
func (u *ReactionUpsertBulk) SetTargetAuthor(v string) *ReactionUpsertBulk {
	return u.Update(func(s *ReactionUpsert) {
		s.SetTargetAuthor(v)
	})
}

// UpdateTargetAuthor sets the "target_author" field to the value that was provided on create.
func (u *ReactionUpsertBulk) UpdateTargetAuthor() *ReactionUpsertBulk {
	return u.Update(func(s *ReactionUpsert) {
		s.UpdateTargetAuthor()
	})
}

// SetSenderHash sets the "sender_hash" field.
func (u *ReactionUpsertBulk) SetSenderHash(v string) *ReactionUpsertBulk {
	return u.Update(func(s *ReactionUpsert) {
		s.SetSenderHash(v)
	})
}

// UpdateSenderHash sets the "sender_hash" field to the value that was provided on create.
func (u *ReactionUpsertBulk) UpdateSenderHash() *ReactionUpsertBulk {
	return u.Update(func(s *ReactionUpsert) {
		s.UpdateSenderHash()
	})
}

// SetEmoji sets the "emoji" field.
func (u *ReactionUpsertBulk) SetEmoji(v string) *ReactionUpsertBulk {
	return u.Update(func(s *ReactionUpsert) {
		s.SetEmoji(v)
	})
}

// UpdateEmoji sets the "emoji" field to the value that was provided on create.
func (u *ReactionUpsertBulk) UpdateEmoji() *ReactionUpsertBulk {
	return u.Update(func(s *ReactionUpsert) {
		s.UpdateEmoji()
	})
}

// SetIsPositive sets the "is_positive" field.
func (u *ReactionUpsertBulk) SetIsPositive(v bool) *ReactionUpsertBulk {
	return u.Update(func(s *ReactionUpsert) {
		s.SetIsPositive(v)
	})
}

// UpdateIsPositive sets the "is_positive" field to the value that was provided on create.
func (u *ReactionUpsertBulk) UpdateIsPositive() *ReactionUpsertBulk {
	return u.Update(func(s *ReactionUpsert) {
		s.UpdateIsPositive()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ReactionUpsertBulk) SetCreatedAt(v time.Time) *ReactionUpsertBulk {
	return u.Update(func(s *ReactionUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ReactionUpsertBulk) UpdateCreatedAt() *ReactionUpsertBulk {
	return u.Update(func(s *ReactionUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *ReactionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ReactionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReactionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReactionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
