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
	"github.com/casemine/casemine/ent/adminsession"
)

// AdminSessionCreate is the builder for creating a AdminSession entity.
type AdminSessionCreate struct {
	config
	mutation *AdminSessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetState sets the "state" field.
func (_c *AdminSessionCreate) SetState(v adminsession.State) *AdminSessionCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *AdminSessionCreate) SetNillableState(v *adminsession.State) *AdminSessionCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetPendingGroupID sets the "pending_group_id" field.
func (_c *AdminSessionCreate) SetPendingGroupID(v string) *AdminSessionCreate {
	_c.mutation.SetPendingGroupID(v)
	return _c
}

// SetNillablePendingGroupID sets the "pending_group_id" field if the given value is not nil.
func (_c *AdminSessionCreate) SetNillablePendingGroupID(v *string) *AdminSessionCreate {
	if v != nil {
		_c.SetPendingGroupID(*v)
	}
	return _c
}

// SetPendingGroupName sets the "pending_group_name" field.
func (_c *AdminSessionCreate) SetPendingGroupName(v string) *AdminSessionCreate {
	_c.mutation.SetPendingGroupName(v)
	return _c
}

// SetNillablePendingGroupName sets the "pending_group_name" field if the given value is not nil.
func (_c *AdminSessionCreate) SetNillablePendingGroupName(v *string) *AdminSessionCreate {
	if v != nil {
		_c.SetPendingGroupName(*v)
	}
	return _c
}

// SetPendingToken sets the "pending_token" field.
func (_c *AdminSessionCreate) SetPendingToken(v string) *AdminSessionCreate {
	_c.mutation.SetPendingToken(v)
	return _c
}

// SetNillablePendingToken sets the "pending_token" field if the given value is not nil.
func (_c *AdminSessionCreate) SetNillablePendingToken(v *string) *AdminSessionCreate {
	if v != nil {
		_c.SetPendingToken(*v)
	}
	return _c
}

// SetLang sets the "lang" field.
func (_c *AdminSessionCreate) SetLang(v adminsession.Lang) *AdminSessionCreate {
	_c.mutation.SetLang(v)
	return _c
}

// SetNillableLang sets the "lang" field if the given value is not nil.
func (_c *AdminSessionCreate) SetNillableLang(v *adminsession.Lang) *AdminSessionCreate {
	if v != nil {
		_c.SetLang(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AdminSessionCreate) SetCreatedAt(v time.Time) *AdminSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AdminSessionCreate) SetNillableCreatedAt(v *time.Time) *AdminSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AdminSessionCreate) SetUpdatedAt(v time.Time) *AdminSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AdminSessionCreate) SetNillableUpdatedAt(v *time.Time) *AdminSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AdminSessionCreate) SetID(v string) *AdminSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AdminSessionMutation object of the builder.
func (_c *AdminSessionCreate) Mutation() *AdminSessionMutation {
	return _c.mutation
}

// Save creates the AdminSession in the database.
func (_c *AdminSessionCreate) Save(ctx context.Context) (*AdminSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AdminSessionCreate) SaveX(ctx context.Context) *AdminSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdminSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdminSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AdminSessionCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := adminsession.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.Lang(); !ok {
		v := adminsession.DefaultLang
		_c.mutation.SetLang(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := adminsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := adminsession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AdminSessionCreate) check() error {
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "AdminSession.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := adminsession.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "AdminSession.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Lang(); !ok {
		return &ValidationError{Name: "lang", err: errors.New(`ent: missing required field "AdminSession.lang"`)}
	}
	if v, ok := _c.mutation.Lang(); ok {
		if err := adminsession.LangValidator(v); err != nil {
			return &ValidationError{Name: "lang", err: fmt.Errorf(`ent: validator failed for field "AdminSession.lang": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AdminSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AdminSession.updated_at"`)}
	}
	return nil
}

func (_c *AdminSessionCreate) sqlSave(ctx context.Context) (*AdminSession, error) {
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
			return nil, fmt.Errorf("unexpected AdminSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AdminSessionCreate) createSpec() (*AdminSession, *sqlgraph.CreateSpec) {
	var (
		_node = &AdminSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(adminsession.Table, sqlgraph.NewFieldSpec(adminsession.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(adminsession.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.PendingGroupID(); ok {
		_spec.SetField(adminsession.FieldPendingGroupID, field.TypeString, value)
		_node.PendingGroupID = &value
	}
	if value, ok := _c.mutation.PendingGroupName(); ok {
		_spec.SetField(adminsession.FieldPendingGroupName, field.TypeString, value)
		_node.PendingGroupName = &value
	}
	if value, ok := _c.mutation.PendingToken(); ok {
		_spec.SetField(adminsession.FieldPendingToken, field.TypeString, value)
		_node.PendingToken = &value
	}
	if value, ok := _c.mutation.Lang(); ok {
		_spec.SetField(adminsession.FieldLang, field.TypeEnum, value)
		_node.Lang = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(adminsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(adminsession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AdminSession.Create().
//		SetState(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AdminSessionUpsert) {
//			SetState(v+v).
//		}).
//		Exec(ctx)
func (_c *AdminSessionCreate) OnConflict(opts ...sql.ConflictOption) *AdminSessionUpsertOne {
	_c.conflict = opts
	return &AdminSessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AdminSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AdminSessionCreate) OnConflictColumns(columns ...string) *AdminSessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AdminSessionUpsertOne{
		create: _c,
	}
}

type (
	// AdminSessionUpsertOne is the builder for "upsert"-ing
	//  one AdminSession node.
	AdminSessionUpsertOne struct {
		create *AdminSessionCreate
	}

	// AdminSessionUpsert is the "OnConflict" setter.
	AdminSessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetState sets the "state" field.
func (u *AdminSessionUpsert) SetState(v adminsession.State) *AdminSessionUpsert {
	u.Set(adminsession.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *AdminSessionUpsert) UpdateState() *AdminSessionUpsert {
	u.SetExcluded(adminsession.FieldState)
	return u
}

// SetPendingGroupID sets the "pending_group_id" field.
func (u *AdminSessionUpsert) SetPendingGroupID(v string) *AdminSessionUpsert {
	u.Set(adminsession.FieldPendingGroupID, v)
	return u
}

// UpdatePendingGroupID sets the "pending_group_id" field to the value that was provided on create.
func (u *AdminSessionUpsert) UpdatePendingGroupID() *AdminSessionUpsert {
	u.SetExcluded(adminsession.FieldPendingGroupID)
	return u
}

// ClearPendingGroupID clears the value of the "pending_group_id" field.
func (u *AdminSessionUpsert) ClearPendingGroupID() *AdminSessionUpsert {
	u.SetNull(adminsession.FieldPendingGroupID)
	return u
}

// SetPendingGroupName sets the "pending_group_name" field.
func (u *AdminSessionUpsert) SetPendingGroupName(v string) *AdminSessionUpsert {
	u.Set(adminsession.FieldPendingGroupName, v)
	return u
}

// UpdatePendingGroupName sets the "pending_group_name" field to the value that was provided on create.
func (u *AdminSessionUpsert) UpdatePendingGroupName() *AdminSessionUpsert {
	u.SetExcluded(adminsession.FieldPendingGroupName)
	return u
}

// ClearPendingGroupName clears the value of the "pending_group_name" field.
func (u *AdminSessionUpsert) ClearPendingGroupName() *AdminSessionUpsert {
	u.SetNull(adminsession.FieldPendingGroupName)
	return u
}

// SetPendingToken sets the "pending_token" field.
func (u *AdminSessionUpsert) SetPendingToken(v string) *AdminSessionUpsert {
	u.Set(adminsession.FieldPendingToken, v)
	return u
}

// UpdatePendingToken sets the "pending_token" field to the value that was provided on create.
func (u *AdminSessionUpsert) UpdatePendingToken() *AdminSessionUpsert {
	u.SetExcluded(adminsession.FieldPendingToken)
	return u
}

// ClearPendingToken clears the value of the "pending_token" field.
func (u *AdminSessionUpsert) ClearPendingToken() *AdminSessionUpsert {
	u.SetNull(adminsession.FieldPendingToken)
	return u
}

// SetLang sets the "lang" field.
func (u *AdminSessionUpsert) SetLang(v adminsession.Lang) *AdminSessionUpsert {
	u.Set(adminsession.FieldLang, v)
	return u
}

// UpdateLang sets the "lang" field to the value that was provided on create.
func (u *AdminSessionUpsert) UpdateLang() *AdminSessionUpsert {
	u.SetExcluded(adminsession.FieldLang)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AdminSessionUpsert) SetUpdatedAt(v time.Time) *AdminSessionUpsert {
	u.Set(adminsession.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AdminSessionUpsert) UpdateUpdatedAt() *AdminSessionUpsert {
	u.SetExcluded(adminsession.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AdminSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(adminsession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AdminSessionUpsertOne) UpdateNewValues() *AdminSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(adminsession.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(adminsession.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AdminSession.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AdminSessionUpsertOne) Ignore() *AdminSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AdminSessionUpsertOne) DoNothing() *AdminSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AdminSessionCreate.OnConflict
// documentation for more info.
func (u *AdminSessionUpsertOne) Update(set func(*AdminSessionUpsert)) *AdminSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AdminSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetState sets the "state" field.
func (u *AdminSessionUpsertOne) SetState(v adminsession.State) *AdminSessionUpsertOne {
	return u.Update(func(s *AdminSessionUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *AdminSessionUpsertOne) UpdateState() *AdminSessionUpsertOne {
	return u.Update(func(s *AdminSessionUpsert) {
		s.UpdateState()
	})
}

// SetPendingGroupID sets the "pending_group_id" field.
func (u *AdminSessionUpsertOne) SetPendingGroupID(v string) *AdminSessionUpsertOne {
	return u.Update(func(s *AdminSessionUpsert) {
		s.SetPendingGroupID(v)
	})
}

// UpdatePendingGroupID sets the "pending_group_id" field to the value that was provided on create.
func (u *AdminSessionUpsertOne) UpdatePendingGroupID() *AdminSessionUpsertOne {
	return u.Update(func(s *AdminSessionUpsert) {
		s.UpdatePendingGroupID()
	})
}

// ClearPendingGroupID clears the value of the "pending_group_id" field.
func (u *AdminSessionUpsertOne) ClearPendingGroupID() *AdminSessionUpsertOne {
	return u.Update(func(s *AdminSessionUpsert) {
		s.ClearPendingGroupID()
	})
}

// SetPendingGroupName sets the "pending_group_name" field.
func (u *AdminSessionUpsertOne) SetPendingGroupName(v string) *AdminSessionUpsertOne {
	return u.Update(func(s *AdminSessionUpsert) {
		s.SetPendingGroupName(v)
	})
}

// UpdatePendingGroupName sets the "pending_group_name" field to the value that was provided on create.
func (u *AdminSessionUpsertOne) UpdatePendingGroupName() *AdminSessionUpsertOne {
	return u.Update(func(s *AdminSessionUpsert) {
		s.UpdatePendingGroupName()
	})
}

// ClearPendingGroupName clears the value of the "pending_group_name" field.
func (u *AdminSessionUpsertOne) ClearPendingGroupName() *AdminSessionUpsertOne {
	return u.Update(func(s *AdminSessionUpsert) {
		s.ClearPendingGroupName()
	})
}

// SetPendingToken sets the "pending_token" field.
func (u *AdminSessionUpsertOne) SetPendingToken(v string) *AdminSessionUpsertOne {
	return u.Update(func(s *AdminSessionUpsert) {
		s.SetPendingToken(v)
	})
}

// UpdatePendingToken sets the "pending_token" field to the value that was provided on create.
func (u *AdminSessionUpsertOne) UpdatePendingToken() *AdminSessionUpsertOne {
	return u.Update(func(s *AdminSessionUpsert) {
		s.UpdatePendingToken()
	})
}

// ClearPendingToken clears the value of the "pending_token" field.
func (u *AdminSessionUpsertOne) ClearPendingToken() *AdminSessionUpsertOne {
	return u.Update(func(s *AdminSessionUpsert) {
		s.ClearPendingToken()
	})
}

// SetLang sets the "lang" field.
func (u *AdminSessionUpsertOne) SetLang(v adminsession.Lang) *AdminSessionUpsertOne {
	return u.Update(func(s *AdminSessionUpsert) {
		s.SetLang(v)
	})
}

// UpdateLang sets the "lang" field to the value that was provided on create.
func (u *AdminSessionUpsertOne) UpdateLang() *AdminSessionUpsertOne {
	return u.Update(func(s *AdminSessionUpsert) {
		s.UpdateLang()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AdminSessionUpsertOne) SetUpdatedAt(v time.Time) *AdminSessionUpsertOne {
	return u.Update(func(s *AdminSessionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AdminSessionUpsertOne) UpdateUpdatedAt() *AdminSessionUpsertOne {
	return u.Update(func(s *AdminSessionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AdminSessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AdminSessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AdminSessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AdminSessionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AdminSessionUpsertOne.ID is not supported by MySQL driver. Use AdminSessionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AdminSessionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AdminSessionCreateBulk is the builder for creating many AdminSession entities in bulk.
type AdminSessionCreateBulk struct {
	config
	err      error
	builders []*AdminSessionCreate
	conflict []sql.ConflictOption
}

// Save creates the AdminSession entities in the database.
func (_c *AdminSessionCreateBulk) Save(ctx context.Context) ([]*AdminSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AdminSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AdminSessionMutation)
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
func (_c *AdminSessionCreateBulk) SaveX(ctx context.Context) []*AdminSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdminSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdminSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AdminSession.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AdminSessionUpsert) {
//			SetState(v+v).
//		}).
//		Exec(ctx)
func (_c *AdminSessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *AdminSessionUpsertBulk {
	_c.conflict = opts
	return &AdminSessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AdminSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AdminSessionCreateBulk) OnConflictColumns(columns ...string) *AdminSessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AdminSessionUpsertBulk{
		create: _c,
	}
}

// AdminSessionUpsertBulk is the builder for "upsert"-ing
// a bulk of AdminSession nodes.
type AdminSessionUpsertBulk struct {
	create *AdminSessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AdminSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(adminsession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AdminSessionUpsertBulk) UpdateNewValues() *AdminSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(adminsession.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(adminsession.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AdminSession.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AdminSessionUpsertBulk) Ignore() *AdminSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AdminSessionUpsertBulk) DoNothing() *AdminSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AdminSessionCreateBulk.OnConflict
// documentation for more info.
func (u *AdminSessionUpsertBulk) Update(set func(*AdminSessionUpsert)) *AdminSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AdminSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetState sets the "state" field.
func (u *AdminSessionUpsertBulk) SetState(v adminsession.State) *AdminSessionUpsertBulk {
	return u.Update(func(s *AdminSessionUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *AdminSessionUpsertBulk) UpdateState() *AdminSessionUpsertBulk {
	return u.Update(func(s *AdminSessionUpsert) {
		s.UpdateState()
	})
}

// SetPendingGroupID sets the "pending_group_id" field.
func (u *AdminSessionUpsertBulk) SetPendingGroupID(v string) *AdminSessionUpsertBulk {
	return u.Update(func(s *AdminSessionUpsert) {
		s.SetPendingGroupID(v)
	})
}

// UpdatePendingGroupID sets the "pending_group_id" field to the value that was provided on create.
func (u *AdminSessionUpsertBulk) UpdatePendingGroupID() *AdminSessionUpsertBulk {
	return u.Update(func(s *AdminSessionUpsert) {
		s.UpdatePendingGroupID()
	})
}

// ClearPendingGroupID clears the value of the "pending_group_id" field.
func (u *AdminSessionUpsertBulk) ClearPendingGroupID() *AdminSessionUpsertBulk {
	return u.Update(func(s *AdminSessionUpsert) {
		s.ClearPendingGroupID()
	})
}

// SetPendingGroupName sets the "pending_group_name" field.
func (u *AdminSessionUpsertBulk) SetPendingGroupName(v string) *AdminSessionUpsertBulk {
	return u.Update(func(s *AdminSessionUpsert) {
		s.SetPendingGroupName(v)
	})
}

// UpdatePendingGroupName sets the "pending_group_name" field to the value that was provided on create.
func (u *AdminSessionUpsertBulk) UpdatePendingGroupName() *AdminSessionUpsertBulk {
	return u.Update(func(s *AdminSessionUpsert) {
		s.UpdatePendingGroupName()
	})
}

// ClearPendingGroupName clears the value of the "pending_group_name" field.
func (u *AdminSessionUpsertBulk) ClearPendingGroupName() *AdminSessionUpsertBulk {
	return u.Update(func(s *AdminSessionUpsert) {
		s.ClearPendingGroupName()
	})
}

// SetPendingToken sets the "pending_token" field.
func (u *AdminSessionUpsertBulk) SetPendingToken(v string) *AdminSessionUpsertBulk {
	return u.Update(func(s *AdminSessionUpsert) {
		s.SetPendingToken(v)
	})
}

// UpdatePendingToken sets the "pending_token" field to the value that was provided on create.
func (u *AdminSessionUpsertBulk) UpdatePendingToken() *AdminSessionUpsertBulk {
	return u.Update(func(s *AdminSessionUpsert) {
		s.UpdatePendingToken()
	})
}

// ClearPendingToken clears the value of the "pending_token" field.
func (u *AdminSessionUpsertBulk) ClearPendingToken() *AdminSessionUpsertBulk {
	return u.Update(func(s *AdminSessionUpsert) {
		s.ClearPendingToken()
	})
}

// SetLang sets the "lang" field.
func (u *AdminSessionUpsertBulk) SetLang(v adminsession.Lang) *AdminSessionUpsertBulk {
	return u.Update(func(s *AdminSessionUpsert) {
		s.SetLang(v)
	})
}

// UpdateLang sets the "lang" field to the value that was provided on create.
func (u *AdminSessionUpsertBulk) UpdateLang() *AdminSessionUpsertBulk {
	return u.Update(func(s *AdminSessionUpsert) {
		s.UpdateLang()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AdminSessionUpsertBulk) SetUpdatedAt(v time.Time) *AdminSessionUpsertBulk {
	return u.Update(func(s *AdminSessionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AdminSessionUpsertBulk) UpdateUpdatedAt() *AdminSessionUpsertBulk {
	return u.Update(func(s *AdminSessionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AdminSessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AdminSessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AdminSessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AdminSessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
