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
	"github.com/casemine/casemine/ent/caseevidence"
	"github.com/casemine/casemine/ent/supportcase"
)

// SupportCaseCreate is the builder for creating a SupportCase entity.
type SupportCaseCreate struct {
	config
	mutation *SupportCaseMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetGroupID sets the "group_id" field.
func (_c *SupportCaseCreate) SetGroupID(v string) *SupportCaseCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SupportCaseCreate) SetStatus(v supportcase.Status) *SupportCaseCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SupportCaseCreate) SetNillableStatus(v *supportcase.Status) *SupportCaseCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetProblemTitle sets the "problem_title" field.
func (_c *SupportCaseCreate) SetProblemTitle(v string) *SupportCaseCreate {
	_c.mutation.SetProblemTitle(v)
	return _c
}

// SetProblemSummary sets the "problem_summary" field.
func (_c *SupportCaseCreate) SetProblemSummary(v string) *SupportCaseCreate {
	_c.mutation.SetProblemSummary(v)
	return _c
}

// SetSolutionSummary sets the "solution_summary" field.
func (_c *SupportCaseCreate) SetSolutionSummary(v string) *SupportCaseCreate {
	_c.mutation.SetSolutionSummary(v)
	return _c
}

// SetNillableSolutionSummary sets the "solution_summary" field if the given value is not nil.
func (_c *SupportCaseCreate) SetNillableSolutionSummary(v *string) *SupportCaseCreate {
	if v != nil {
		_c.SetSolutionSummary(*v)
	}
	return _c
}

// SetTags sets the "tags" field.
func (_c *SupportCaseCreate) SetTags(v []string) *SupportCaseCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetDedupEmbedding sets the "dedup_embedding" field.
func (_c *SupportCaseCreate) SetDedupEmbedding(v []float32) *SupportCaseCreate {
	_c.mutation.SetDedupEmbedding(v)
	return _c
}

// SetInIndex sets the "in_index" field.
func (_c *SupportCaseCreate) SetInIndex(v bool) *SupportCaseCreate {
	_c.mutation.SetInIndex(v)
	return _c
}

// SetNillableInIndex sets the "in_index" field if the given value is not nil.
func (_c *SupportCaseCreate) SetNillableInIndex(v *bool) *SupportCaseCreate {
	if v != nil {
		_c.SetInIndex(*v)
	}
	return _c
}

// SetClosedEmoji sets the "closed_emoji" field.
func (_c *SupportCaseCreate) SetClosedEmoji(v string) *SupportCaseCreate {
	_c.mutation.SetClosedEmoji(v)
	return _c
}

// SetNillableClosedEmoji sets the "closed_emoji" field if the given value is not nil.
func (_c *SupportCaseCreate) SetNillableClosedEmoji(v *string) *SupportCaseCreate {
	if v != nil {
		_c.SetClosedEmoji(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SupportCaseCreate) SetCreatedAt(v time.Time) *SupportCaseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SupportCaseCreate) SetNillableCreatedAt(v *time.Time) *SupportCaseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SupportCaseCreate) SetUpdatedAt(v time.Time) *SupportCaseCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SupportCaseCreate) SetNillableUpdatedAt(v *time.Time) *SupportCaseCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SupportCaseCreate) SetID(v string) *SupportCaseCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddEvidenceIDs adds the "evidence" edge to the CaseEvidence entity by IDs.
func (_c *SupportCaseCreate) AddEvidenceIDs(ids ...int) *SupportCaseCreate {
	_c.mutation.AddEvidenceIDs(ids...)
	return _c
}

// AddEvidence adds the "evidence" edges to the CaseEvidence entity.
func (_c *SupportCaseCreate) AddEvidence(v ...*CaseEvidence) *SupportCaseCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEvidenceIDs(ids...)
}

// Mutation returns the SupportCaseMutation object of the builder.
func (_c *SupportCaseCreate) Mutation() *SupportCaseMutation {
	return _c.mutation
}

// Save creates the SupportCase in the database.
func (_c *SupportCaseCreate) Save(ctx context.Context) (*SupportCase, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SupportCaseCreate) SaveX(ctx context.Context) *SupportCase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SupportCaseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SupportCaseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SupportCaseCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := supportcase.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.SolutionSummary(); !ok {
		v := supportcase.DefaultSolutionSummary
		_c.mutation.SetSolutionSummary(v)
	}
	if _, ok := _c.mutation.InIndex(); !ok {
		v := supportcase.DefaultInIndex
		_c.mutation.SetInIndex(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := supportcase.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := supportcase.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SupportCaseCreate) check() error {
	if _, ok := _c.mutation.GroupID(); !ok {
		return &ValidationError{Name: "group_id", err: errors.New(`ent: missing required field "SupportCase.group_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SupportCase.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := supportcase.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SupportCase.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProblemTitle(); !ok {
		return &ValidationError{Name: "problem_title", err: errors.New(`ent: missing required field "SupportCase.problem_title"`)}
	}
	if _, ok := _c.mutation.ProblemSummary(); !ok {
		return &ValidationError{Name: "problem_summary", err: errors.New(`ent: missing required field "SupportCase.problem_summary"`)}
	}
	if _, ok := _c.mutation.SolutionSummary(); !ok {
		return &ValidationError{Name: "solution_summary", err: errors.New(`ent: missing required field "SupportCase.solution_summary"`)}
	}
	if _, ok := _c.mutation.InIndex(); !ok {
		return &ValidationError{Name: "in_index", err: errors.New(`ent: missing required field "SupportCase.in_index"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SupportCase.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SupportCase.updated_at"`)}
	}
	return nil
}

func (_c *SupportCaseCreate) sqlSave(ctx context.Context) (*SupportCase, error) {
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
			return nil, fmt.Errorf("unexpected SupportCase.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SupportCaseCreate) createSpec() (*SupportCase, *sqlgraph.CreateSpec) {
	var (
		_node = &SupportCase{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(supportcase.Table, sqlgraph.NewFieldSpec(supportcase.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.GroupID(); ok {
		_spec.SetField(supportcase.FieldGroupID, field.TypeString, value)
		_node.GroupID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(supportcase.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ProblemTitle(); ok {
		_spec.SetField(supportcase.FieldProblemTitle, field.TypeString, value)
		_node.ProblemTitle = value
	}
	if value, ok := _c.mutation.ProblemSummary(); ok {
		_spec.SetField(supportcase.FieldProblemSummary, field.TypeString, value)
		_node.ProblemSummary = value
	}
	if value, ok := _c.mutation.SolutionSummary(); ok {
		_spec.SetField(supportcase.FieldSolutionSummary, field.TypeString, value)
		_node.SolutionSummary = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(supportcase.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.DedupEmbedding(); ok {
		_spec.SetField(supportcase.FieldDedupEmbedding, field.TypeJSON, value)
		_node.DedupEmbedding = value
	}
	if value, ok := _c.mutation.InIndex(); ok {
		_spec.SetField(supportcase.FieldInIndex, field.TypeBool, value)
		_node.InIndex = value
	}
	if value, ok := _c.mutation.ClosedEmoji(); ok {
		_spec.SetField(supportcase.FieldClosedEmoji, field.TypeString, value)
		_node.ClosedEmoji = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(supportcase.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(supportcase.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.EvidenceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   supportcase.EvidenceTable,
			Columns: []string{supportcase.EvidenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(caseevidence.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SupportCase.Create().
//		SetGroupID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SupportCaseUpsert) {
//			SetGroupID(v+v).
//		}).
//		Exec(ctx)
func (_c *SupportCaseCreate) OnConflict(opts ...sql.ConflictOption) *SupportCaseUpsertOne {
	_c.conflict = opts
	return &SupportCaseUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SupportCase.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SupportCaseCreate) OnConflictColumns(columns ...string) *SupportCaseUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SupportCaseUpsertOne{
		create: _c,
	}
}

type (
	// SupportCaseUpsertOne is the builder for "upsert"-ing
	//  one SupportCase node.
	SupportCaseUpsertOne struct {
		create *SupportCaseCreate
	}

	// SupportCaseUpsert is the "OnConflict" setter.
	SupportCaseUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *SupportCaseUpsert) SetStatus(v supportcase.Status) *SupportCaseUpsert {
	u.Set(supportcase.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SupportCaseUpsert) UpdateStatus() *SupportCaseUpsert {
	u.SetExcluded(supportcase.FieldStatus)
	return u
}

// SetProblemTitle sets the "problem_title" field.
func (u *SupportCaseUpsert) SetProblemTitle(v string) *SupportCaseUpsert {
	u.Set(supportcase.FieldProblemTitle, v)
	return u
}

// UpdateProblemTitle sets the "problem_title" field to the value that was provided on create.
func (u *SupportCaseUpsert) UpdateProblemTitle() *SupportCaseUpsert {
	u.SetExcluded(supportcase.FieldProblemTitle)
	return u
}

// SetProblemSummary sets the "problem_summary" field.
func (u *SupportCaseUpsert) SetProblemSummary(v string) *SupportCaseUpsert {
	u.Set(supportcase.FieldProblemSummary, v)
	return u
}

// UpdateProblemSummary sets the "problem_summary" field to the value that was provided on create.
func (u *SupportCaseUpsert) UpdateProblemSummary() *SupportCaseUpsert {
	u.SetExcluded(supportcase.FieldProblemSummary)
	return u
}

// SetSolutionSummary sets the "solution_summary" field.
func (u *SupportCaseUpsert) SetSolutionSummary(v string) *SupportCaseUpsert {
	u.Set(supportcase.FieldSolutionSummary, v)
	return u
}

// UpdateSolutionSummary sets the "solution_summary" field to the value that was provided on create.
func (u *SupportCaseUpsert) UpdateSolutionSummary() *SupportCaseUpsert {
	u.SetExcluded(supportcase.FieldSolutionSummary)
	return u
}

// SetTags sets the "tags" field.
func (u *SupportCaseUpsert) SetTags(v []string) *SupportCaseUpsert {
	u.Set(supportcase.FieldTags, v)
	return u
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *SupportCaseUpsert) UpdateTags() *SupportCaseUpsert {
	u.SetExcluded(supportcase.FieldTags)
	return u
}

// ClearTags clears the value of the "tags" field.
func (u *SupportCaseUpsert) ClearTags() *SupportCaseUpsert {
	u.SetNull(supportcase.FieldTags)
	return u
}

// SetDedupEmbedding sets the "dedup_embedding" field.
func (u *SupportCaseUpsert) SetDedupEmbedding(v []float32) *SupportCaseUpsert {
	u.Set(supportcase.FieldDedupEmbedding, v)
	return u
}

// UpdateDedupEmbedding sets the "dedup_embedding" field to the value that was provided on create.
func (u *SupportCaseUpsert) UpdateDedupEmbedding() *SupportCaseUpsert {
	u.SetExcluded(supportcase.FieldDedupEmbedding)
	return u
}

// ClearDedupEmbedding clears the value of the "dedup_embedding" field.
func (u *SupportCaseUpsert) ClearDedupEmbedding() *SupportCaseUpsert {
	u.SetNull(supportcase.FieldDedupEmbedding)
	return u
}

// SetInIndex sets the "in_index" field.
func (u *SupportCaseUpsert) SetInIndex(v bool) *SupportCaseUpsert {
	u.Set(supportcase.FieldInIndex, v)
	return u
}

// UpdateInIndex sets the "in_index" field to the value that was provided on create.
func (u *SupportCaseUpsert) UpdateInIndex() *SupportCaseUpsert {
	u.SetExcluded(supportcase.FieldInIndex)
	return u
}

// SetClosedEmoji sets the "closed_emoji" field.
func (u *SupportCaseUpsert) SetClosedEmoji(v string) *SupportCaseUpsert {
	u.Set(supportcase.FieldClosedEmoji, v)
	return u
}

// UpdateClosedEmoji sets the "closed_emoji" field to the value that was provided on create.
func (u *SupportCaseUpsert) UpdateClosedEmoji() *SupportCaseUpsert {
	u.SetExcluded(supportcase.FieldClosedEmoji)
	return u
}

// ClearClosedEmoji clears the value of the "closed_emoji" field.
func (u *SupportCaseUpsert) ClearClosedEmoji() *SupportCaseUpsert {
	u.SetNull(supportcase.FieldClosedEmoji)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *SupportCaseUpsert) SetCreatedAt(v time.Time) *SupportCaseUpsert {
	u.Set(supportcase.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *SupportCaseUpsert) UpdateCreatedAt() *SupportCaseUpsert {
	u.SetExcluded(supportcase.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SupportCaseUpsert) SetUpdatedAt(v time.Time) *SupportCaseUpsert {
	u.Set(supportcase.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SupportCaseUpsert) UpdateUpdatedAt() *SupportCaseUpsert {
	u.SetExcluded(supportcase.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SupportCase.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(supportcase.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SupportCaseUpsertOne) UpdateNewValues() *SupportCaseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(supportcase.FieldID)
		}
		if _, exists := u.create.mutation.GroupID(); exists {
			s.SetIgnore(supportcase.FieldGroupID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SupportCase.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SupportCaseUpsertOne) Ignore() *SupportCaseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SupportCaseUpsertOne) DoNothing() *SupportCaseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SupportCaseCreate.OnConflict
// documentation for more info.
func (u *SupportCaseUpsertOne) Update(set func(*SupportCaseUpsert)) *SupportCaseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SupportCaseUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *SupportCaseUpsertOne) SetStatus(v supportcase.Status) *SupportCaseUpsertOne {
	return u.Update(func(s *SupportCaseUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SupportCaseUpsertOne) UpdateStatus() *SupportCaseUpsertOne {
	return u.Update(func(s *SupportCaseUpsert) {
		s.UpdateStatus()
	})
}

// SetProblemTitle sets the "problem_title" field.
func (u *SupportCaseUpsertOne) SetProblemTitle(v string) *SupportCaseUpsertOne {
	return u.Update(func(s *SupportCaseUpsert) {
		s.SetProblemTitle(v)
	})
}

// UpdateProblemTitle sets the "problem_title" field to the value that was provided on create.
func (u *SupportCaseUpsertOne) UpdateProblemTitle() *SupportCaseUpsertOne {
	return u.Update(func(s *SupportCaseUpsert) {
		s.UpdateProblemTitle()
	})
}

// SetProblemSummary sets the "problem_summary" field.
func (u *SupportCaseUpsertOne) SetProblemSummary(v string) *SupportCaseUpsertOne {
	return u.Update(func(s *SupportCaseUpsert) {
		s.SetProblemSummary(v)
	})
}

// UpdateProblemSummary sets the "problem_summary" field to the value that was provided on create.
func (u *SupportCaseUpsertOne) UpdateProblemSummary() *SupportCaseUpsertOne {
	return u.Update(func(s *SupportCaseUpsert) {
		s.UpdateProblemSummary()
	})
}

// SetSolutionSummary sets the "solution_summary" field.
func (u *SupportCaseUpsertOne) SetSolutionSummary(v string) *SupportCaseUpsertOne {
	return u.Update(func(s *SupportCaseUpsert) {
		s.SetSolutionSummary(v)
	})
}

// UpdateSolutionSummary sets the "solution_summary" field to the value that was provided on create.
func (u *SupportCaseUpsertOne) UpdateSolutionSummary() *SupportCaseUpsertOne {
	return u.Update(func(s *SupportCaseUpsert) {
		s.UpdateSolutionSummary()
	})
}

// SetTags sets the "tags" field.
func (u *SupportCaseUpsertOne) SetTags(v []string) *SupportCaseUpsertOne {
	return u.Update(func(s *SupportCaseUpsert) {
		s.SetTags(v)
	})
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *SupportCaseUpsertOne) UpdateTags() *SupportCaseUpsertOne {
	return u.Update(func(s *SupportCaseUpsert) {
		s.UpdateTags()
	})
}

// ClearTags clears the value of the "tags" field.
func (u *SupportCaseUpsertOne) ClearTags() *SupportCaseUpsertOne {
	return u.Update(func(s *SupportCaseUpsert) {
		s.ClearTags()
	})
}

// SetDedupEmbedding sets the "dedup_embedding" field.
func (u *SupportCaseUpsertOne) SetDedupEmbedding(v []float32) *SupportCaseUpsertOne {
	return u.Update(func(s *SupportCaseUpsert) {
		s.SetDedupEmbedding(v)
	})
}

// UpdateDedupEmbedding sets the "dedup_embedding" field to the value that was provided on create.
func (u *SupportCaseUpsertOne) UpdateDedupEmbedding() *SupportCaseUpsertOne {
	return u.Update(func(s *SupportCaseUpsert) {
		s.UpdateDedupEmbedding()
	})
}

// ClearDedupEmbedding clears the value of the "dedup_embedding" field.
func (u *SupportCaseUpsertOne) ClearDedupEmbedding() *SupportCaseUpsertOne {
	return u.Update(func(s *SupportCaseUpsert) {
		s.ClearDedupEmbedding()
	})
}

// SetInIndex sets the "in_index" field.
func (u *SupportCaseUpsertOne) SetInIndex(v bool) *SupportCaseUpsertOne {
	return u.Update(func(s *SupportCaseUpsert) {
		s.SetInIndex(v)
	})
}

// UpdateInIndex sets the "in_index" field to the value that was provided on create.
func (u *SupportCaseUpsertOne) UpdateInIndex() *SupportCaseUpsertOne {
	return u.Update(func(s *SupportCaseUpsert) {
		s.UpdateInIndex()
	})
}

// SetClosedEmoji sets the "closed_emoji" field.
func (u *SupportCaseUpsertOne) SetClosedEmoji(v string) *SupportCaseUpsertOne {
	return u.Update(func(s *SupportCaseUpsert) {
		s.SetClosedEmoji(v)
	})
}

// UpdateClosedEmoji sets the "closed_emoji" field to the value that was provided on create.
func (u *SupportCaseUpsertOne) UpdateClosedEmoji() *SupportCaseUpsertOne {
	return u.Update(func(s *SupportCaseUpsert) {
		s.UpdateClosedEmoji()
	})
}

// ClearClosedEmoji clears the value of the "closed_emoji" field.
func (u *SupportCaseUpsertOne) ClearClosedEmoji() *SupportCaseUpsertOne {
	return u.Update(func(s *SupportCaseUpsert) {
		s.ClearClosedEmoji()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *SupportCaseUpsertOne) SetCreatedAt(v time.Time) *SupportCaseUpsertOne {
	return u.Update(func(s *SupportCaseUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *SupportCaseUpsertOne) UpdateCreatedAt() *SupportCaseUpsertOne {
	return u.Update(func(s *SupportCaseUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SupportCaseUpsertOne) SetUpdatedAt(v time.Time) *SupportCaseUpsertOne {
	return u.Update(func(s *SupportCaseUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SupportCaseUpsertOne) UpdateUpdatedAt() *SupportCaseUpsertOne {
	return u.Update(func(s *SupportCaseUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SupportCaseUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SupportCaseCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SupportCaseUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SupportCaseUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SupportCaseUpsertOne.ID is not supported by MySQL driver. Use SupportCaseUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SupportCaseUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SupportCaseCreateBulk is the builder for creating many SupportCase entities in bulk.
type SupportCaseCreateBulk struct {
	config
	err      error
	builders []*SupportCaseCreate
	conflict []sql.ConflictOption
}

// Save creates the SupportCase entities in the database.
func (_c *SupportCaseCreateBulk) Save(ctx context.Context) ([]*SupportCase, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SupportCase, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SupportCaseMutation)
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
func (_c *SupportCaseCreateBulk) SaveX(ctx context.Context) []*SupportCase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SupportCaseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SupportCaseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SupportCase.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SupportCaseUpsert) {
//			SetGroupID(v+v).
//		}).
//		Exec(ctx)
func (_c *SupportCaseCreateBulk) OnConflict(opts ...sql.ConflictOption) *SupportCaseUpsertBulk {
	_c.conflict = opts
	return &SupportCaseUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SupportCase.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SupportCaseCreateBulk) OnConflictColumns(columns ...string) *SupportCaseUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SupportCaseUpsertBulk{
		create: _c,
	}
}

// SupportCaseUpsertBulk is the builder for "upsert"-ing
// a bulk of SupportCase nodes.
type SupportCaseUpsertBulk struct {
	create *SupportCaseCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SupportCase.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(supportcase.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SupportCaseUpsertBulk) UpdateNewValues() *SupportCaseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(supportcase.FieldID)
			}
			if _, exists := b.mutation.GroupID(); exists {
				s.SetIgnore(supportcase.FieldGroupID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SupportCase.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SupportCaseUpsertBulk) Ignore() *SupportCaseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SupportCaseUpsertBulk) DoNothing() *SupportCaseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SupportCaseCreateBulk.OnConflict
// documentation for more info.
func (u *SupportCaseUpsertBulk) Update(set func(*SupportCaseUpsert)) *SupportCaseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SupportCaseUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *SupportCaseUpsertBulk) SetStatus(v supportcase.Status) *SupportCaseUpsertBulk {
	return u.Update(func(s *SupportCaseUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SupportCaseUpsertBulk) UpdateStatus() *SupportCaseUpsertBulk {
	return u.Update(func(s *SupportCaseUpsert) {
		s.UpdateStatus()
	})
}

// SetProblemTitle sets the "problem_title" field.
func (u *SupportCaseUpsertBulk) SetProblemTitle(v string) *SupportCaseUpsertBulk {
	return u.Update(func(s *SupportCaseUpsert) {
		s.SetProblemTitle(v)
	})
}

// UpdateProblemTitle sets the "problem_title" field to the value that was provided on create.
func (u *SupportCaseUpsertBulk) UpdateProblemTitle() *SupportCaseUpsertBulk {
	return u.Update(func(s *SupportCaseUpsert) {
		s.UpdateProblemTitle()
	})
}

// SetProblemSummary sets the "problem_summary" field.
func (u *SupportCaseUpsertBulk) SetProblemSummary(v string) *SupportCaseUpsertBulk {
	return u.Update(func(s *SupportCaseUpsert) {
		s.SetProblemSummary(v)
	})
}

// UpdateProblemSummary sets the "problem_summary" field to the value that was provided on create.
func (u *SupportCaseUpsertBulk) UpdateProblemSummary() *SupportCaseUpsertBulk {
	return u.Update(func(s *SupportCaseUpsert) {
		s.UpdateProblemSummary()
	})
}

// SetSolutionSummary sets the "solution_summary" field.
func (u *SupportCaseUpsertBulk) SetSolutionSummary(v string) *SupportCaseUpsertBulk {
	return u.Update(func(s *SupportCaseUpsert) {
		s.SetSolutionSummary(v)
	})
}

// UpdateSolutionSummary sets the "solution_summary" field to the value that was provided on create.
func (u *SupportCaseUpsertBulk) UpdateSolutionSummary() *SupportCaseUpsertBulk {
	return u.Update(func(s *SupportCaseUpsert) {
		s.UpdateSolutionSummary()
	})
}

// SetTags sets the "tags" field.
func (u *SupportCaseUpsertBulk) SetTags(v []string) *SupportCaseUpsertBulk {
	return u.Update(func(s *SupportCaseUpsert) {
		s.SetTags(v)
	})
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *SupportCaseUpsertBulk) UpdateTags() *SupportCaseUpsertBulk {
	return u.Update(func(s *SupportCaseUpsert) {
		s.UpdateTags()
	})
}

// ClearTags clears the value of the "tags" field.
func (u *SupportCaseUpsertBulk) ClearTags() *SupportCaseUpsertBulk {
	return u.Update(func(s *SupportCaseUpsert) {
		s.ClearTags()
	})
}

// SetDedupEmbedding sets the "dedup_embedding" field.
func (u *SupportCaseUpsertBulk) SetDedupEmbedding(v []float32) *SupportCaseUpsertBulk {
	return u.Update(func(s *SupportCaseUpsert) {
		s.SetDedupEmbedding(v)
	})
}

// UpdateDedupEmbedding sets the "dedup_embedding" field to the value that was provided on create.
func (u *SupportCaseUpsertBulk) UpdateDedupEmbedding() *SupportCaseUpsertBulk {
	return u.Update(func(s *SupportCaseUpsert) {
		s.UpdateDedupEmbedding()
	})
}

// ClearDedupEmbedding clears the value of the "dedup_embedding" field.
func (u *SupportCaseUpsertBulk) ClearDedupEmbedding() *SupportCaseUpsertBulk {
	return u.Update(func(s *SupportCaseUpsert) {
		s.ClearDedupEmbedding()
	})
}

// SetInIndex sets the "in_index" field.
func (u *SupportCaseUpsertBulk) SetInIndex(v bool) *SupportCaseUpsertBulk {
	return u.Update(func(s *SupportCaseUpsert) {
		s.SetInIndex(v)
	})
}

// UpdateInIndex sets the "in_index" field to the value that was provided on create.
func (u *SupportCaseUpsertBulk) UpdateInIndex() *SupportCaseUpsertBulk {
	return u.Update(func(s *SupportCaseUpsert) {
		s.UpdateInIndex()
	})
}

// SetClosedEmoji sets the "closed_emoji" field.
func (u *SupportCaseUpsertBulk) SetClosedEmoji(v string) *SupportCaseUpsertBulk {
	return u.Update(func(s *SupportCaseUpsert) {
		s.SetClosedEmoji(v)
	})
}

// UpdateClosedEmoji sets the "closed_emoji" field to the value that was provided on create.
func (u *SupportCaseUpsertBulk) UpdateClosedEmoji() *SupportCaseUpsertBulk {
	return u.Update(func(s *SupportCaseUpsert) {
		s.UpdateClosedEmoji()
	})
}

// ClearClosedEmoji clears the value of the "closed_emoji" field.
func (u *SupportCaseUpsertBulk) ClearClosedEmoji() *SupportCaseUpsertBulk {
	return u.Update(func(s *SupportCaseUpsert) {
		s.ClearClosedEmoji()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *SupportCaseUpsertBulk) SetCreatedAt(v time.Time) *SupportCaseUpsertBulk {
	return u.Update(func(s *SupportCaseUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *SupportCaseUpsertBulk) UpdateCreatedAt() *SupportCaseUpsertBulk {
	return u.Update(func(s *SupportCaseUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SupportCaseUpsertBulk) SetUpdatedAt(v time.Time) *SupportCaseUpsertBulk {
	return u.Update(func(s *SupportCaseUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SupportCaseUpsertBulk) UpdateUpdatedAt() *SupportCaseUpsertBulk {
	return u.Update(func(s *SupportCaseUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SupportCaseUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SupportCaseCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SupportCaseCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SupportCaseUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
