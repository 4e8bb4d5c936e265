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
	"github.com/casemine/casemine/ent/historytoken"
)

// HistoryTokenCreate is the builder for creating a HistoryToken entity.
type HistoryTokenCreate struct {
	config
	mutation *HistoryTokenMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAdminID sets the "admin_id" field.
func (_c *HistoryTokenCreate) SetAdminID(v string) *HistoryTokenCreate {
	_c.mutation.SetAdminID(v)
	return _c
}

// SetGroupID sets the "group_id" field.
func (_c *HistoryTokenCreate) SetGroupID(v string) *HistoryTokenCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *HistoryTokenCreate) SetExpiresAt(v time.Time) *HistoryTokenCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetConsumed sets the "consumed" field.
func (_c *HistoryTokenCreate) SetConsumed(v bool) *HistoryTokenCreate {
	_c.mutation.SetConsumed(v)
	return _c
}

// SetNillableConsumed sets the "consumed" field if the given value is not nil.
func (_c *HistoryTokenCreate) SetNillableConsumed(v *bool) *HistoryTokenCreate {
	if v != nil {
		_c.SetConsumed(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *HistoryTokenCreate) SetCreatedAt(v time.Time) *HistoryTokenCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *HistoryTokenCreate) SetNillableCreatedAt(v *time.Time) *HistoryTokenCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *HistoryTokenCreate) SetID(v string) *HistoryTokenCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the HistoryTokenMutation object of the builder.
func (_c *HistoryTokenCreate) Mutation() *HistoryTokenMutation {
	return _c.mutation
}

// Save creates the HistoryToken in the database.
func (_c *HistoryTokenCreate) Save(ctx context.Context) (*HistoryToken, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HistoryTokenCreate) SaveX(ctx context.Context) *HistoryToken {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HistoryTokenCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HistoryTokenCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HistoryTokenCreate) defaults() {
	if _, ok := _c.mutation.Consumed(); !ok {
		v := historytoken.DefaultConsumed
		_c.mutation.SetConsumed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := historytoken.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HistoryTokenCreate) check() error {
	if _, ok := _c.mutation.AdminID(); !ok {
		return &ValidationError{Name: "admin_id", err: errors.New(`ent: missing required field "HistoryToken.admin_id"`)}
	}
	if _, ok := _c.mutation.GroupID(); !ok {
		return &ValidationError{Name: "group_id", err: errors.New(`ent: missing required field "HistoryToken.group_id"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "HistoryToken.expires_at"`)}
	}
	if _, ok := _c.mutation.Consumed(); !ok {
		return &ValidationError{Name: "consumed", err: errors.New(`ent: missing required field "HistoryToken.consumed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "HistoryToken.created_at"`)}
	}
	return nil
}

func (_c *HistoryTokenCreate) sqlSave(ctx context.Context) (*HistoryToken, error) {
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
			return nil, fmt.Errorf("unexpected HistoryToken.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *HistoryTokenCreate) createSpec() (*HistoryToken, *sqlgraph.CreateSpec) {
	var (
		_node = &HistoryToken{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(historytoken.Table, sqlgraph.NewFieldSpec(historytoken.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AdminID(); ok {
		_spec.SetField(historytoken.FieldAdminID, field.TypeString, value)
		_node.AdminID = value
	}
	if value, ok := _c.mutation.GroupID(); ok {
		_spec.SetField(historytoken.FieldGroupID, field.TypeString, value)
		_node.GroupID = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(historytoken.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.Consumed(); ok {
		_spec.SetField(historytoken.FieldConsumed, field.TypeBool, value)
		_node.Consumed = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(historytoken.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.HistoryToken.Create().
//		SetAdminID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HistoryTokenUpsert) {
//			SetAdminID(v+v).
//		}).
//		Exec(ctx)
func (_c *HistoryTokenCreate) OnConflict(opts ...sql.ConflictOption) *HistoryTokenUpsertOne {
	_c.conflict = opts
	return &HistoryTokenUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.HistoryToken.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HistoryTokenCreate) OnConflictColumns(columns ...string) *HistoryTokenUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HistoryTokenUpsertOne{
		create: _c,
	}
}

type (
	// HistoryTokenUpsertOne is the builder for "upsert"-ing
	//  one HistoryToken node.
	HistoryTokenUpsertOne struct {
		create *HistoryTokenCreate
	}

	// HistoryTokenUpsert is the "OnConflict" setter.
	HistoryTokenUpsert struct {
		*sql.UpdateSet
	}
)

// SetExpiresAt sets the "expires_at" field.
func (u *HistoryTokenUpsert) SetExpiresAt(v time.Time) *HistoryTokenUpsert {
	u.Set(historytoken.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *HistoryTokenUpsert) UpdateExpiresAt() *HistoryTokenUpsert {
	u.SetExcluded(historytoken.FieldExpiresAt)
	return u
}

// SetConsumed sets the "consumed" field.
func (u *HistoryTokenUpsert) SetConsumed(v bool) *HistoryTokenUpsert {
	u.Set(historytoken.FieldConsumed, v)
	return u
}

// UpdateConsumed sets the "consumed" field to the value that was provided on create.
func (u *HistoryTokenUpsert) UpdateConsumed() *HistoryTokenUpsert {
	u.SetExcluded(historytoken.FieldConsumed)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.HistoryToken.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(historytoken.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *HistoryTokenUpsertOne) UpdateNewValues() *HistoryTokenUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(historytoken.FieldID)
		}
		if _, exists := u.create.mutation.AdminID(); exists {
			s.SetIgnore(historytoken.FieldAdminID)
		}
		if _, exists := u.create.mutation.GroupID(); exists {
			s.SetIgnore(historytoken.FieldGroupID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(historytoken.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.HistoryToken.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *HistoryTokenUpsertOne) Ignore() *HistoryTokenUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HistoryTokenUpsertOne) DoNothing() *HistoryTokenUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HistoryTokenCreate.OnConflict
// documentation for more info.
func (u *HistoryTokenUpsertOne) Update(set func(*HistoryTokenUpsert)) *HistoryTokenUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HistoryTokenUpsert{UpdateSet: update})
	}))
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *HistoryTokenUpsertOne) SetExpiresAt(v time.Time) *HistoryTokenUpsertOne {
	return u.Update(func(s *HistoryTokenUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *HistoryTokenUpsertOne) UpdateExpiresAt() *HistoryTokenUpsertOne {
	return u.Update(func(s *HistoryTokenUpsert) {
		s.UpdateExpiresAt()
	})
}

// SetConsumed sets the "consumed" field.
func (u *HistoryTokenUpsertOne) SetConsumed(v bool) *HistoryTokenUpsertOne {
	return u.Update(func(s *HistoryTokenUpsert) {
		s.SetConsumed(v)
	})
}

// UpdateConsumed sets the "consumed" field to the value that was provided on create.
func (u *HistoryTokenUpsertOne) UpdateConsumed() *HistoryTokenUpsertOne {
	return u.Update(func(s *HistoryTokenUpsert) {
		s.UpdateConsumed()
	})
}

// Exec executes the query.
func (u *HistoryTokenUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for HistoryTokenCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HistoryTokenUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *HistoryTokenUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: HistoryTokenUpsertOne.ID is not supported by MySQL driver. Use HistoryTokenUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *HistoryTokenUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// HistoryTokenCreateBulk is the builder for creating many HistoryToken entities in bulk.
type HistoryTokenCreateBulk struct {
	config
	err      error
	builders []*HistoryTokenCreate
	conflict []sql.ConflictOption
}

// Save creates the HistoryToken entities in the database.
func (_c *HistoryTokenCreateBulk) Save(ctx context.Context) ([]*HistoryToken, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HistoryToken, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HistoryTokenMutation)
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
func (_c *HistoryTokenCreateBulk) SaveX(ctx context.Context) []*HistoryToken {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HistoryTokenCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HistoryTokenCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.HistoryToken.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HistoryTokenUpsert) {
//			SetAdminID(v+v).
//		}).
//		Exec(ctx)
func (_c *HistoryTokenCreateBulk) OnConflict(opts ...sql.ConflictOption) *HistoryTokenUpsertBulk {
	_c.conflict = opts
	return &HistoryTokenUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.HistoryToken.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HistoryTokenCreateBulk) OnConflictColumns(columns ...string) *HistoryTokenUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HistoryTokenUpsertBulk{
		create: _c,
	}
}

// HistoryTokenUpsertBulk is the builder for "upsert"-ing
// a bulk of HistoryToken nodes.
type HistoryTokenUpsertBulk struct {
	create *HistoryTokenCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.HistoryToken.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(historytoken.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *HistoryTokenUpsertBulk) UpdateNewValues() *HistoryTokenUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(historytoken.FieldID)
			}
			if _, exists := b.mutation.AdminID(); exists {
				s.SetIgnore(historytoken.FieldAdminID)
			}
			if _, exists := b.mutation.GroupID(); exists {
				s.SetIgnore(historytoken.FieldGroupID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(historytoken.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.HistoryToken.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *HistoryTokenUpsertBulk) Ignore() *HistoryTokenUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HistoryTokenUpsertBulk) DoNothing() *HistoryTokenUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HistoryTokenCreateBulk.OnConflict
// documentation for more info.
func (u *HistoryTokenUpsertBulk) Update(set func(*HistoryTokenUpsert)) *HistoryTokenUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HistoryTokenUpsert{UpdateSet: update})
	}))
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *HistoryTokenUpsertBulk) SetExpiresAt(v time.Time) *HistoryTokenUpsertBulk {
	return u.Update(func(s *HistoryTokenUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *HistoryTokenUpsertBulk) UpdateExpiresAt() *HistoryTokenUpsertBulk {
	return u.Update(func(s *HistoryTokenUpsert) {
		s.UpdateExpiresAt()
	})
}

// SetConsumed sets the "consumed" field.
func (u *HistoryTokenUpsertBulk) SetConsumed(v bool) *HistoryTokenUpsertBulk {
	return u.Update(func(s *HistoryTokenUpsert) {
		s.SetConsumed(v)
	})
}

// UpdateConsumed sets the "consumed" field to the value that was provided on create.
func (u *HistoryTokenUpsertBulk) UpdateConsumed() *HistoryTokenUpsertBulk {
	return u.Update(func(s *HistoryTokenUpsert) {
		s.UpdateConsumed()
	})
}

// Exec executes the query.
func (u *HistoryTokenUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the HistoryTokenCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for HistoryTokenCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HistoryTokenUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
