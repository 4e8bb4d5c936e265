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
	"github.com/casemine/casemine/ent/groupbuffer"
)

// GroupBufferCreate is the builder for creating a GroupBuffer entity.
type GroupBufferCreate struct {
	config
	mutation *GroupBufferMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetBufferText sets the "buffer_text" field.
func (_c *GroupBufferCreate) SetBufferText(v string) *GroupBufferCreate {
	_c.mutation.SetBufferText(v)
	return _c
}

// SetNillableBufferText sets the "buffer_text" field if the given value is not nil.
func (_c *GroupBufferCreate) SetNillableBufferText(v *string) *GroupBufferCreate {
	if v != nil {
		_c.SetBufferText(*v)
	}
	return _c
}

// SetDocUrls sets the "doc_urls" field.
func (_c *GroupBufferCreate) SetDocUrls(v []string) *GroupBufferCreate {
	_c.mutation.SetDocUrls(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *GroupBufferCreate) SetUpdatedAt(v time.Time) *GroupBufferCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *GroupBufferCreate) SetNillableUpdatedAt(v *time.Time) *GroupBufferCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GroupBufferCreate) SetID(v string) *GroupBufferCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the GroupBufferMutation object of the builder.
func (_c *GroupBufferCreate) Mutation() *GroupBufferMutation {
	return _c.mutation
}

// Save creates the GroupBuffer in the database.
func (_c *GroupBufferCreate) Save(ctx context.Context) (*GroupBuffer, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GroupBufferCreate) SaveX(ctx context.Context) *GroupBuffer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GroupBufferCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GroupBufferCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GroupBufferCreate) defaults() {
	if _, ok := _c.mutation.BufferText(); !ok {
		v := groupbuffer.DefaultBufferText
		_c.mutation.SetBufferText(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := groupbuffer.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GroupBufferCreate) check() error {
	if _, ok := _c.mutation.BufferText(); !ok {
		return &ValidationError{Name: "buffer_text", err: errors.New(`ent: missing required field "GroupBuffer.buffer_text"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "GroupBuffer.updated_at"`)}
	}
	return nil
}

func (_c *GroupBufferCreate) sqlSave(ctx context.Context) (*GroupBuffer, error) {
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
			return nil, fmt.Errorf("unexpected GroupBuffer.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GroupBufferCreate) createSpec() (*GroupBuffer, *sqlgraph.CreateSpec) {
	var (
		_node = &GroupBuffer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(groupbuffer.Table, sqlgraph.NewFieldSpec(groupbuffer.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.BufferText(); ok {
		_spec.SetField(groupbuffer.FieldBufferText, field.TypeString, value)
		_node.BufferText = value
	}
	if value, ok := _c.mutation.DocUrls(); ok {
		_spec.SetField(groupbuffer.FieldDocUrls, field.TypeJSON, value)
		_node.DocUrls = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(groupbuffer.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GroupBuffer.Create().
//		SetBufferText(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GroupBufferUpsert) {
//			SetBufferText(v+v).
//		}).
//		Exec(ctx)
func (_c *GroupBufferCreate) OnConflict(opts ...sql.ConflictOption) *GroupBufferUpsertOne {
	_c.conflict = opts
	return &GroupBufferUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GroupBuffer.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GroupBufferCreate) OnConflictColumns(columns ...string) *GroupBufferUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GroupBufferUpsertOne{
		create: _c,
	}
}

type (
	// GroupBufferUpsertOne is the builder for "upsert"-ing
	//  one GroupBuffer node.
	GroupBufferUpsertOne struct {
		create *GroupBufferCreate
	}

	// GroupBufferUpsert is the "OnConflict" setter.
	GroupBufferUpsert struct {
		*sql.UpdateSet
	}
)

// SetBufferText sets the "buffer_text" field.
func (u *GroupBufferUpsert) SetBufferText(v string) *GroupBufferUpsert {
	u.Set(groupbuffer.FieldBufferText, v)
	return u
}

// UpdateBufferText sets the "buffer_text" field to the value that was provided on create.
func (u *GroupBufferUpsert) UpdateBufferText() *GroupBufferUpsert {
	u.SetExcluded(groupbuffer.FieldBufferText)
	return u
}

// SetDocUrls sets the "doc_urls" field.
func (u *GroupBufferUpsert) SetDocUrls(v []string) *GroupBufferUpsert {
	u.Set(groupbuffer.FieldDocUrls, v)
	return u
}

// UpdateDocUrls sets the "doc_urls" field to the value that was provided on create.
func (u *GroupBufferUpsert) UpdateDocUrls() *GroupBufferUpsert {
	u.SetExcluded(groupbuffer.FieldDocUrls)
	return u
}

// ClearDocUrls clears the value of the "doc_urls" field.
func (u *GroupBufferUpsert) ClearDocUrls() *GroupBufferUpsert {
	u.SetNull(groupbuffer.FieldDocUrls)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GroupBufferUpsert) SetUpdatedAt(v time.Time) *GroupBufferUpsert {
	u.Set(groupbuffer.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GroupBufferUpsert) UpdateUpdatedAt() *GroupBufferUpsert {
	u.SetExcluded(groupbuffer.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.GroupBuffer.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(groupbuffer.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GroupBufferUpsertOne) UpdateNewValues() *GroupBufferUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(groupbuffer.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GroupBuffer.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *GroupBufferUpsertOne) Ignore() *GroupBufferUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GroupBufferUpsertOne) DoNothing() *GroupBufferUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GroupBufferCreate.OnConflict
// documentation for more info.
func (u *GroupBufferUpsertOne) Update(set func(*GroupBufferUpsert)) *GroupBufferUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GroupBufferUpsert{UpdateSet: update})
	}))
	return u
}

// SetBufferText sets the "buffer_text" field.
func (u *GroupBufferUpsertOne) SetBufferText(v string) *GroupBufferUpsertOne {
	return u.Update(func(s *GroupBufferUpsert) {
		s.SetBufferText(v)
	})
}

// UpdateBufferText sets the "buffer_text" field to the value that was provided on create.
func (u *GroupBufferUpsertOne) UpdateBufferText() *GroupBufferUpsertOne {
	return u.Update(func(s *GroupBufferUpsert) {
		s.UpdateBufferText()
	})
}

// SetDocUrls sets the "doc_urls" field.
func (u *GroupBufferUpsertOne) SetDocUrls(v []string) *GroupBufferUpsertOne {
	return u.Update(func(s *GroupBufferUpsert) {
		s.SetDocUrls(v)
	})
}

// UpdateDocUrls sets the "doc_urls" field to the value that was provided on create.
func (u *GroupBufferUpsertOne) UpdateDocUrls() *GroupBufferUpsertOne {
	return u.Update(func(s *GroupBufferUpsert) {
		s.UpdateDocUrls()
	})
}

// ClearDocUrls clears the value of the "doc_urls" field.
func (u *GroupBufferUpsertOne) ClearDocUrls() *GroupBufferUpsertOne {
	return u.Update(func(s *GroupBufferUpsert) {
		s.ClearDocUrls()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GroupBufferUpsertOne) SetUpdatedAt(v time.Time) *GroupBufferUpsertOne {
	return u.Update(func(s *GroupBufferUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GroupBufferUpsertOne) UpdateUpdatedAt() *GroupBufferUpsertOne {
	return u.Update(func(s *GroupBufferUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *GroupBufferUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GroupBufferCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GroupBufferUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *GroupBufferUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: GroupBufferUpsertOne.ID is not supported by MySQL driver. Use GroupBufferUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *GroupBufferUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// GroupBufferCreateBulk is the builder for creating many GroupBuffer entities in bulk.
type GroupBufferCreateBulk struct {
	config
	err      error
	builders []*GroupBufferCreate
	conflict []sql.ConflictOption
}

// Save creates the GroupBuffer entities in the database.
func (_c *GroupBufferCreateBulk) Save(ctx context.Context) ([]*GroupBuffer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GroupBuffer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GroupBufferMutation)
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
func (_c *GroupBufferCreateBulk) SaveX(ctx context.Context) []*GroupBuffer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GroupBufferCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GroupBufferCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GroupBuffer.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GroupBufferUpsert) {
//			SetBufferText(v+v).
//		}).
//		Exec(ctx)
func (_c *GroupBufferCreateBulk) OnConflict(opts ...sql.ConflictOption) *GroupBufferUpsertBulk {
	_c.conflict = opts
	return &GroupBufferUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GroupBuffer.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GroupBufferCreateBulk) OnConflictColumns(columns ...string) *GroupBufferUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GroupBufferUpsertBulk{
		create: _c,
	}
}

// GroupBufferUpsertBulk is the builder for "upsert"-ing
// a bulk of GroupBuffer nodes.
type GroupBufferUpsertBulk struct {
	create *GroupBufferCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.GroupBuffer.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(groupbuffer.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GroupBufferUpsertBulk) UpdateNewValues() *GroupBufferUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(groupbuffer.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GroupBuffer.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *GroupBufferUpsertBulk) Ignore() *GroupBufferUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GroupBufferUpsertBulk) DoNothing() *GroupBufferUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GroupBufferCreateBulk.OnConflict
// documentation for more info.
func (u *GroupBufferUpsertBulk) Update(set func(*GroupBufferUpsert)) *GroupBufferUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GroupBufferUpsert{UpdateSet: update})
	}))
	return u
}

// SetBufferText sets the "buffer_text" field.
func (u *GroupBufferUpsertBulk) SetBufferText(v string) *GroupBufferUpsertBulk {
	return u.Update(func(s *GroupBufferUpsert) {
		s.SetBufferText(v)
	})
}

// UpdateBufferText sets the "buffer_text" field to the value that was provided on create.
func (u *GroupBufferUpsertBulk) UpdateBufferText() *GroupBufferUpsertBulk {
	return u.Update(func(s *GroupBufferUpsert) {
		s.UpdateBufferText()
	})
}

// SetDocUrls sets the "doc_urls" field.
func (u *GroupBufferUpsertBulk) SetDocUrls(v []string) *GroupBufferUpsertBulk {
	return u.Update(func(s *GroupBufferUpsert) {
		s.SetDocUrls(v)
	})
}

// UpdateDocUrls sets the "doc_urls" field to the value that was provided on create.
func (u *GroupBufferUpsertBulk) UpdateDocUrls() *GroupBufferUpsertBulk {
	return u.Update(func(s *GroupBufferUpsert) {
		s.UpdateDocUrls()
	})
}

// ClearDocUrls clears the value of the "doc_urls" field.
func (u *GroupBufferUpsertBulk) ClearDocUrls() *GroupBufferUpsertBulk {
	return u.Update(func(s *GroupBufferUpsert) {
		s.ClearDocUrls()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GroupBufferUpsertBulk) SetUpdatedAt(v time.Time) *GroupBufferUpsertBulk {
	return u.Update(func(s *GroupBufferUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GroupBufferUpsertBulk) UpdateUpdatedAt() *GroupBufferUpsertBulk {
	return u.Update(func(s *GroupBufferUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *GroupBufferUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the GroupBufferCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GroupBufferCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GroupBufferUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
