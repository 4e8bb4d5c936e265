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
	"github.com/casemine/casemine/ent/admingrouplink"
)

// AdminGroupLinkCreate is the builder for creating a AdminGroupLink entity.
type AdminGroupLinkCreate struct {
	config
	mutation *AdminGroupLinkMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAdminID sets the "admin_id" field.
func (_c *AdminGroupLinkCreate) SetAdminID(v string) *AdminGroupLinkCreate {
	_c.mutation.SetAdminID(v)
	return _c
}

// SetGroupID sets the "group_id" field.
func (_c *AdminGroupLinkCreate) SetGroupID(v string) *AdminGroupLinkCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AdminGroupLinkCreate) SetCreatedAt(v time.Time) *AdminGroupLinkCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AdminGroupLinkCreate) SetNillableCreatedAt(v *time.Time) *AdminGroupLinkCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the AdminGroupLinkMutation object of the builder.
func (_c *AdminGroupLinkCreate) Mutation() *AdminGroupLinkMutation {
	return _c.mutation
}

// Save creates the AdminGroupLink in the database.
func (_c *AdminGroupLinkCreate) Save(ctx context.Context) (*AdminGroupLink, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AdminGroupLinkCreate) SaveX(ctx context.Context) *AdminGroupLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdminGroupLinkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdminGroupLinkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AdminGroupLinkCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := admingrouplink.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AdminGroupLinkCreate) check() error {
	if _, ok := _c.mutation.AdminID(); !ok {
		return &ValidationError{Name: "admin_id", err: errors.New(`ent: missing required field "AdminGroupLink.admin_id"`)}
	}
	if _, ok := _c.mutation.GroupID(); !ok {
		return &ValidationError{Name: "group_id", err: errors.New(`ent: missing required field "AdminGroupLink.group_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AdminGroupLink.created_at"`)}
	}
	return nil
}

func (_c *AdminGroupLinkCreate) sqlSave(ctx context.Context) (*AdminGroupLink, error) {
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

func (_c *AdminGroupLinkCreate) createSpec() (*AdminGroupLink, *sqlgraph.CreateSpec) {
	var (
		_node = &AdminGroupLink{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(admingrouplink.Table, sqlgraph.NewFieldSpec(admingrouplink.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.AdminID(); ok {
		_spec.SetField(admingrouplink.FieldAdminID, field.TypeString, value)
		_node.AdminID = value
	}
	if value, ok := _c.mutation.GroupID(); ok {
		_spec.SetField(admingrouplink.FieldGroupID, field.TypeString, value)
		_node.GroupID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(admingrouplink.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AdminGroupLink.Create().
//		SetAdminID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AdminGroupLinkUpsert) {
//			SetAdminID(v+v).
//		}).
//		Exec(ctx)
func (_c *AdminGroupLinkCreate) OnConflict(opts ...sql.ConflictOption) *AdminGroupLinkUpsertOne {
	_c.conflict = opts
	return &AdminGroupLinkUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AdminGroupLink.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AdminGroupLinkCreate) OnConflictColumns(columns ...string) *AdminGroupLinkUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AdminGroupLinkUpsertOne{
		create: _c,
	}
}

type (
	// AdminGroupLinkUpsertOne is the builder for "upsert"-ing
	//  one AdminGroupLink node.
	AdminGroupLinkUpsertOne struct {
		create *AdminGroupLinkCreate
	}

	// AdminGroupLinkUpsert is the "OnConflict" setter.
	AdminGroupLinkUpsert struct {
		*sql.UpdateSet
	}
)

// SetAdminID sets the "admin_id" field.
func (u *AdminGroupLinkUpsert) SetAdminID(v string) *AdminGroupLinkUpsert {
	u.Set(admingrouplink.FieldAdminID, v)
	return u
}

// UpdateAdminID sets the "admin_id" field to the value that was provided on create.
func (u *AdminGroupLinkUpsert) UpdateAdminID() *AdminGroupLinkUpsert {
	u.SetExcluded(admingrouplink.FieldAdminID)
	return u
}

// SetGroupID sets the "group_id" field.
func (u *AdminGroupLinkUpsert) SetGroupID(v string) *AdminGroupLinkUpsert {
	u.Set(admingrouplink.FieldGroupID, v)
	return u
}

// UpdateGroupID sets the "group_id" field to the value that was provided on create.
func (u *AdminGroupLinkUpsert) UpdateGroupID() *AdminGroupLinkUpsert {
	u.SetExcluded(admingrouplink.FieldGroupID)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *AdminGroupLinkUpsert) SetCreatedAt(v time.Time) *AdminGroupLinkUpsert {
	u.Set(admingrouplink.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *AdminGroupLinkUpsert) UpdateCreatedAt() *AdminGroupLinkUpsert {
	u.SetExcluded(admingrouplink.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.AdminGroupLink.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AdminGroupLinkUpsertOne) UpdateNewValues() *AdminGroupLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AdminGroupLink.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AdminGroupLinkUpsertOne) Ignore() *AdminGroupLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AdminGroupLinkUpsertOne) DoNothing() *AdminGroupLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AdminGroupLinkCreate.OnConflict
// documentation for more info.
func (u *AdminGroupLinkUpsertOne) Update(set func(*AdminGroupLinkUpsert)) *AdminGroupLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AdminGroupLinkUpsert{UpdateSet: update})
	}))
	return u
}

// SetAdminID sets the "admin_id" field.
func (u *AdminGroupLinkUpsertOne) SetAdminID(v string) *AdminGroupLinkUpsertOne {
	return u.Update(func(s *AdminGroupLinkUpsert) {
		s.SetAdminID(v)
	})
}

// UpdateAdminID sets the "admin_id" field to the value that was provided on create.
func (u *AdminGroupLinkUpsertOne) UpdateAdminID() *AdminGroupLinkUpsertOne {
	return u.Update(func(s *AdminGroupLinkUpsert) {
		s.UpdateAdminID()
	})
}

// SetGroupID sets the "group_id" field.
func (u *AdminGroupLinkUpsertOne) SetGroupID(v string) *AdminGroupLinkUpsertOne {
	return u.Update(func(s *AdminGroupLinkUpsert) {
		s.SetGroupID(v)
	})
}

// UpdateGroupID sets the "group_id" field to the value that was provided on create.
func (u *AdminGroupLinkUpsertOne) UpdateGroupID() *AdminGroupLinkUpsertOne {
	return u.Update(func(s *AdminGroupLinkUpsert) {
		s.UpdateGroupID()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *AdminGroupLinkUpsertOne) SetCreatedAt(v time.Time) *AdminGroupLinkUpsertOne {
	return u.Update(func(s *AdminGroupLinkUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *AdminGroupLinkUpsertOne) UpdateCreatedAt() *AdminGroupLinkUpsertOne {
	return u.Update(func(s *AdminGroupLinkUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *AdminGroupLinkUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AdminGroupLinkCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AdminGroupLinkUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AdminGroupLinkUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AdminGroupLinkUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AdminGroupLinkCreateBulk is the builder for creating many AdminGroupLink entities in bulk.
type AdminGroupLinkCreateBulk struct {
	config
	err      error
	builders []*AdminGroupLinkCreate
	conflict []sql.ConflictOption
}

// Save creates the AdminGroupLink entities in the database.
func (_c *AdminGroupLinkCreateBulk) Save(ctx context.Context) ([]*AdminGroupLink, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AdminGroupLink, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AdminGroupLinkMutation)
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
func (_c *AdminGroupLinkCreateBulk) SaveX(ctx context.Context) []*AdminGroupLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdminGroupLinkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdminGroupLinkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AdminGroupLink.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AdminGroupLinkUpsert) {
//			SetAdminID(v+v).
//		}).
//		Exec(ctx)
func (_c *AdminGroupLinkCreateBulk) OnConflict(opts ...sql.ConflictOption) *AdminGroupLinkUpsertBulk {
	_c.conflict = opts
	return &AdminGroupLinkUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AdminGroupLink.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AdminGroupLinkCreateBulk) OnConflictColumns(columns ...string) *AdminGroupLinkUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AdminGroupLinkUpsertBulk{
		create: _c,
	}
}

// AdminGroupLinkUpsertBulk is the builder for "upsert"-ing
// a bulk of AdminGroupLink nodes.
type AdminGroupLinkUpsertBulk struct {
	create *AdminGroupLinkCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AdminGroupLink.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AdminGroupLinkUpsertBulk) UpdateNewValues() *AdminGroupLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AdminGroupLink.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AdminGroupLinkUpsertBulk) Ignore() *AdminGroupLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AdminGroupLinkUpsertBulk) DoNothing() *AdminGroupLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AdminGroupLinkCreateBulk.OnConflict
// documentation for more info.
func (u *AdminGroupLinkUpsertBulk) Update(set func(*AdminGroupLinkUpsert)) *AdminGroupLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AdminGroupLinkUpsert{UpdateSet: update})
	}))
	return u
}

// SetAdminID sets the "admin_id" field.
func (u *AdminGroupLinkUpsertBulk) SetAdminID(v string) *AdminGroupLinkUpsertBulk {
	return u.Update(func(s *AdminGroupLinkUpsert) {
		s.SetAdminID(v)
	})
}

// UpdateAdminID sets the "admin_id" field to the value that was provided on create.
func (u *AdminGroupLinkUpsertBulk) UpdateAdminID() *AdminGroupLinkUpsertBulk {
	return u.Update(func(s *AdminGroupLinkUpsert) {
		s.UpdateAdminID()
	})
}

// SetGroupID sets the "group_id" field.
func (u *AdminGroupLinkUpsertBulk) SetGroupID(v string) *AdminGroupLinkUpsertBulk {
	return u.Update(func(s *AdminGroupLinkUpsert) {
		s.SetGroupID(v)
	})
}

// UpdateGroupID sets the "group_id" field to the value that was provided on create.
func (u *AdminGroupLinkUpsertBulk) UpdateGroupID() *AdminGroupLinkUpsertBulk {
	return u.Update(func(s *AdminGroupLinkUpsert) {
		s.UpdateGroupID()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *AdminGroupLinkUpsertBulk) SetCreatedAt(v time.Time) *AdminGroupLinkUpsertBulk {
	return u.Update(func(s *AdminGroupLinkUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *AdminGroupLinkUpsertBulk) UpdateCreatedAt() *AdminGroupLinkUpsertBulk {
	return u.Update(func(s *AdminGroupLinkUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *AdminGroupLinkUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AdminGroupLinkCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AdminGroupLinkCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AdminGroupLinkUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
