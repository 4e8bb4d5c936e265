// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/casemine/casemine/ent/caseevidence"
	"github.com/casemine/casemine/ent/supportcase"
)

// CaseEvidenceCreate is the builder for creating a CaseEvidence entity.
type CaseEvidenceCreate struct {
	config
	mutation *CaseEvidenceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCaseID sets the "case_id" field.
func (_c *CaseEvidenceCreate) SetCaseID(v string) *CaseEvidenceCreate {
	_c.mutation.SetCaseID(v)
	return _c
}

// SetMessageID sets the "message_id" field.
func (_c *CaseEvidenceCreate) SetMessageID(v string) *CaseEvidenceCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetMessageTs sets the "message_ts" field.
func (_c *CaseEvidenceCreate) SetMessageTs(v int64) *CaseEvidenceCreate {
	_c.mutation.SetMessageTs(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *CaseEvidenceCreate) SetPosition(v int) *CaseEvidenceCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetSupportCaseID sets the "support_case" edge to the SupportCase entity by ID.
func (_c *CaseEvidenceCreate) SetSupportCaseID(id string) *CaseEvidenceCreate {
	_c.mutation.SetSupportCaseID(id)
	return _c
}

// SetSupportCase sets the "support_case" edge to the SupportCase entity.
func (_c *CaseEvidenceCreate) SetSupportCase(v *SupportCase) *CaseEvidenceCreate {
	return _c.SetSupportCaseID(v.ID)
}

// Mutation returns the CaseEvidenceMutation object of the builder.
func (_c *CaseEvidenceCreate) Mutation() *CaseEvidenceMutation {
	return _c.mutation
}

// Save creates the CaseEvidence in the database.
func (_c *CaseEvidenceCreate) Save(ctx context.Context) (*CaseEvidence, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CaseEvidenceCreate) SaveX(ctx context.Context) *CaseEvidence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CaseEvidenceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CaseEvidenceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CaseEvidenceCreate) check() error {
	if _, ok := _c.mutation.CaseID(); !ok {
		return &ValidationError{Name: "case_id", err: errors.New(`ent: missing required field "CaseEvidence.case_id"`)}
	}
	if _, ok := _c.mutation.MessageID(); !ok {
		return &ValidationError{Name: "message_id", err: errors.New(`ent: missing required field "CaseEvidence.message_id"`)}
	}
	if _, ok := _c.mutation.MessageTs(); !ok {
		return &ValidationError{Name: "message_ts", err: errors.New(`ent: missing required field "CaseEvidence.message_ts"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "CaseEvidence.position"`)}
	}
	if len(_c.mutation.SupportCaseIDs()) == 0 {
		return &ValidationError{Name: "support_case", err: errors.New(`ent: missing required edge "CaseEvidence.support_case"`)}
	}
	return nil
}

func (_c *CaseEvidenceCreate) sqlSave(ctx context.Context) (*CaseEvidence, error) {
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

func (_c *CaseEvidenceCreate) createSpec() (*CaseEvidence, *sqlgraph.CreateSpec) {
	var (
		_node = &CaseEvidence{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(caseevidence.Table, sqlgraph.NewFieldSpec(caseevidence.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.MessageID(); ok {
		_spec.SetField(caseevidence.FieldMessageID, field.TypeString, value)
		_node.MessageID = value
	}
	if value, ok := _c.mutation.MessageTs(); ok {
		_spec.SetField(caseevidence.FieldMessageTs, field.TypeInt64, value)
		_node.MessageTs = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(caseevidence.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if nodes := _c.mutation.SupportCaseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   caseevidence.SupportCaseTable,
			Columns: []string{caseevidence.SupportCaseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(supportcase.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CaseID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CaseEvidence.Create().
//		SetCaseID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CaseEvidenceUpsert) {
//			SetCaseID(v+v).
//		}).
//		Exec(ctx)
func (_c *CaseEvidenceCreate) OnConflict(opts ...sql.ConflictOption) *CaseEvidenceUpsertOne {
	_c.conflict = opts
	return &CaseEvidenceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CaseEvidence.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CaseEvidenceCreate) OnConflictColumns(columns ...string) *CaseEvidenceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CaseEvidenceUpsertOne{
		create: _c,
	}
}

type (
	// CaseEvidenceUpsertOne is the builder for "upsert"-ing
	//  one CaseEvidence node.
	CaseEvidenceUpsertOne struct {
		create *CaseEvidenceCreate
	}

	// CaseEvidenceUpsert is the "OnConflict" setter.
	CaseEvidenceUpsert struct {
		*sql.UpdateSet
	}
)

// SetPosition sets the "position" field.
func (u *CaseEvidenceUpsert) SetPosition(v int) *CaseEvidenceUpsert {
	u.Set(caseevidence.FieldPosition, v)
	return u
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *CaseEvidenceUpsert) UpdatePosition() *CaseEvidenceUpsert {
	u.SetExcluded(caseevidence.FieldPosition)
	return u
}

// AddPosition adds v to the "position" field.
func (u *CaseEvidenceUpsert) AddPosition(v int) *CaseEvidenceUpsert {
	u.Add(caseevidence.FieldPosition, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.CaseEvidence.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CaseEvidenceUpsertOne) UpdateNewValues() *CaseEvidenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CaseID(); exists {
			s.SetIgnore(caseevidence.FieldCaseID)
		}
		if _, exists := u.create.mutation.MessageID(); exists {
			s.SetIgnore(caseevidence.FieldMessageID)
		}
		if _, exists := u.create.mutation.MessageTs(); exists {
			s.SetIgnore(caseevidence.FieldMessageTs)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CaseEvidence.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CaseEvidenceUpsertOne) Ignore() *CaseEvidenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CaseEvidenceUpsertOne) DoNothing() *CaseEvidenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CaseEvidenceCreate.OnConflict
// documentation for more info.
func (u *CaseEvidenceUpsertOne) Update(set func(*CaseEvidenceUpsert)) *CaseEvidenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CaseEvidenceUpsert{UpdateSet: update})
	}))
	return u
}

// SetPosition sets the "position" field.
func (u *CaseEvidenceUpsertOne) SetPosition(v int) *CaseEvidenceUpsertOne {
	return u.Update(func(s *CaseEvidenceUpsert) {
		s.SetPosition(v)
	})
}

// AddPosition adds v to the "position" field.
func (u *CaseEvidenceUpsertOne) AddPosition(v int) *CaseEvidenceUpsertOne {
	return u.Update(func(s *CaseEvidenceUpsert) {
		s.AddPosition(v)
	})
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *CaseEvidenceUpsertOne) UpdatePosition() *CaseEvidenceUpsertOne {
	return u.Update(func(s *CaseEvidenceUpsert) {
		s.UpdatePosition()
	})
}

// Exec executes the query.
func (u *CaseEvidenceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CaseEvidenceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CaseEvidenceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CaseEvidenceUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CaseEvidenceUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CaseEvidenceCreateBulk is the builder for creating many CaseEvidence entities in bulk.
type CaseEvidenceCreateBulk struct {
	config
	err      error
	builders []*CaseEvidenceCreate
	conflict []sql.ConflictOption
}

// Save creates the CaseEvidence entities in the database.
func (_c *CaseEvidenceCreateBulk) Save(ctx context.Context) ([]*CaseEvidence, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CaseEvidence, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CaseEvidenceMutation)
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
func (_c *CaseEvidenceCreateBulk) SaveX(ctx context.Context) []*CaseEvidence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CaseEvidenceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CaseEvidenceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CaseEvidence.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CaseEvidenceUpsert) {
//			SetCaseID(v+v).
//		}).
//		Exec(ctx)
func (_c *CaseEvidenceCreateBulk) OnConflict(opts ...sql.ConflictOption) *CaseEvidenceUpsertBulk {
	_c.conflict = opts
	return &CaseEvidenceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CaseEvidence.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CaseEvidenceCreateBulk) OnConflictColumns(columns ...string) *CaseEvidenceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CaseEvidenceUpsertBulk{
		create: _c,
	}
}

// CaseEvidenceUpsertBulk is the builder for "upsert"-ing
// a bulk of CaseEvidence nodes.
type CaseEvidenceUpsertBulk struct {
	create *CaseEvidenceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CaseEvidence.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CaseEvidenceUpsertBulk) UpdateNewValues() *CaseEvidenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CaseID(); exists {
				s.SetIgnore(caseevidence.FieldCaseID)
			}
			if _, exists := b.mutation.MessageID(); exists {
				s.SetIgnore(caseevidence.FieldMessageID)
			}
			if _, exists := b.mutation.MessageTs(); exists {
				s.SetIgnore(caseevidence.FieldMessageTs)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CaseEvidence.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CaseEvidenceUpsertBulk) Ignore() *CaseEvidenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CaseEvidenceUpsertBulk) DoNothing() *CaseEvidenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CaseEvidenceCreateBulk.OnConflict
// documentation for more info.
func (u *CaseEvidenceUpsertBulk) Update(set func(*CaseEvidenceUpsert)) *CaseEvidenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CaseEvidenceUpsert{UpdateSet: update})
	}))
	return u
}

// SetPosition sets the "position" field.
func (u *CaseEvidenceUpsertBulk) SetPosition(v int) *CaseEvidenceUpsertBulk {
	return u.Update(func(s *CaseEvidenceUpsert) {
		s.SetPosition(v)
	})
}

// AddPosition adds v to the "position" field.
func (u *CaseEvidenceUpsertBulk) AddPosition(v int) *CaseEvidenceUpsertBulk {
	return u.Update(func(s *CaseEvidenceUpsert) {
		s.AddPosition(v)
	})
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *CaseEvidenceUpsertBulk) UpdatePosition() *CaseEvidenceUpsertBulk {
	return u.Update(func(s *CaseEvidenceUpsert) {
		s.UpdatePosition()
	})
}

// Exec executes the query.
func (u *CaseEvidenceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CaseEvidenceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CaseEvidenceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CaseEvidenceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
