// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/casemine/casemine/ent/caseevidence"
	"github.com/casemine/casemine/ent/predicate"
	"github.com/casemine/casemine/ent/supportcase"
)

// SupportCaseUpdate is the builder for updating SupportCase entities.
type SupportCaseUpdate struct {
	config
	hooks    []Hook
	mutation *SupportCaseMutation
}

// Where appends a list predicates to the SupportCaseUpdate builder.
func (_u *SupportCaseUpdate) Where(ps ...predicate.SupportCase) *SupportCaseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SupportCaseUpdate) SetStatus(v supportcase.Status) *SupportCaseUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SupportCaseUpdate) SetNillableStatus(v *supportcase.Status) *SupportCaseUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProblemTitle sets the "problem_title" field.
func (_u *SupportCaseUpdate) SetProblemTitle(v string) *SupportCaseUpdate {
	_u.mutation.SetProblemTitle(v)
	return _u
}

// SetNillableProblemTitle sets the "problem_title" field if the given value is not nil.
func (_u *SupportCaseUpdate) SetNillableProblemTitle(v *string) *SupportCaseUpdate {
	if v != nil {
		_u.SetProblemTitle(*v)
	}
	return _u
}

// SetProblemSummary sets the "problem_summary" field.
func (_u *SupportCaseUpdate) SetProblemSummary(v string) *SupportCaseUpdate {
	_u.mutation.SetProblemSummary(v)
	return _u
}

// SetNillableProblemSummary sets the "problem_summary" field if the given value is not nil.
func (_u *SupportCaseUpdate) SetNillableProblemSummary(v *string) *SupportCaseUpdate {
	if v != nil {
		_u.SetProblemSummary(*v)
	}
	return _u
}

// SetSolutionSummary sets the "solution_summary" field.
func (_u *SupportCaseUpdate) SetSolutionSummary(v string) *SupportCaseUpdate {
	_u.mutation.SetSolutionSummary(v)
	return _u
}

// SetNillableSolutionSummary sets the "solution_summary" field if the given value is not nil.
func (_u *SupportCaseUpdate) SetNillableSolutionSummary(v *string) *SupportCaseUpdate {
	if v != nil {
		_u.SetSolutionSummary(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *SupportCaseUpdate) SetTags(v []string) *SupportCaseUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *SupportCaseUpdate) AppendTags(v []string) *SupportCaseUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *SupportCaseUpdate) ClearTags() *SupportCaseUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetDedupEmbedding sets the "dedup_embedding" field.
func (_u *SupportCaseUpdate) SetDedupEmbedding(v []float32) *SupportCaseUpdate {
	_u.mutation.SetDedupEmbedding(v)
	return _u
}

// AppendDedupEmbedding appends value to the "dedup_embedding" field.
func (_u *SupportCaseUpdate) AppendDedupEmbedding(v []float32) *SupportCaseUpdate {
	_u.mutation.AppendDedupEmbedding(v)
	return _u
}

// ClearDedupEmbedding clears the value of the "dedup_embedding" field.
func (_u *SupportCaseUpdate) ClearDedupEmbedding() *SupportCaseUpdate {
	_u.mutation.ClearDedupEmbedding()
	return _u
}

// SetInIndex sets the "in_index" field.
func (_u *SupportCaseUpdate) SetInIndex(v bool) *SupportCaseUpdate {
	_u.mutation.SetInIndex(v)
	return _u
}

// SetNillableInIndex sets the "in_index" field if the given value is not nil.
func (_u *SupportCaseUpdate) SetNillableInIndex(v *bool) *SupportCaseUpdate {
	if v != nil {
		_u.SetInIndex(*v)
	}
	return _u
}

// SetClosedEmoji sets the "closed_emoji" field.
func (_u *SupportCaseUpdate) SetClosedEmoji(v string) *SupportCaseUpdate {
	_u.mutation.SetClosedEmoji(v)
	return _u
}

// SetNillableClosedEmoji sets the "closed_emoji" field if the given value is not nil.
func (_u *SupportCaseUpdate) SetNillableClosedEmoji(v *string) *SupportCaseUpdate {
	if v != nil {
		_u.SetClosedEmoji(*v)
	}
	return _u
}

// ClearClosedEmoji clears the value of the "closed_emoji" field.
func (_u *SupportCaseUpdate) ClearClosedEmoji() *SupportCaseUpdate {
	_u.mutation.ClearClosedEmoji()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SupportCaseUpdate) SetCreatedAt(v time.Time) *SupportCaseUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SupportCaseUpdate) SetNillableCreatedAt(v *time.Time) *SupportCaseUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SupportCaseUpdate) SetUpdatedAt(v time.Time) *SupportCaseUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddEvidenceIDs adds the "evidence" edge to the CaseEvidence entity by IDs.
func (_u *SupportCaseUpdate) AddEvidenceIDs(ids ...int) *SupportCaseUpdate {
	_u.mutation.AddEvidenceIDs(ids...)
	return _u
}

// AddEvidence adds the "evidence" edges to the CaseEvidence entity.
func (_u *SupportCaseUpdate) AddEvidence(v ...*CaseEvidence) *SupportCaseUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvidenceIDs(ids...)
}

// Mutation returns the SupportCaseMutation object of the builder.
func (_u *SupportCaseUpdate) Mutation() *SupportCaseMutation {
	return _u.mutation
}

// ClearEvidence clears all "evidence" edges to the CaseEvidence entity.
func (_u *SupportCaseUpdate) ClearEvidence() *SupportCaseUpdate {
	_u.mutation.ClearEvidence()
	return _u
}

// RemoveEvidenceIDs removes the "evidence" edge to CaseEvidence entities by IDs.
func (_u *SupportCaseUpdate) RemoveEvidenceIDs(ids ...int) *SupportCaseUpdate {
	_u.mutation.RemoveEvidenceIDs(ids...)
	return _u
}

// RemoveEvidence removes "evidence" edges to CaseEvidence entities.
func (_u *SupportCaseUpdate) RemoveEvidence(v ...*CaseEvidence) *SupportCaseUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvidenceIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SupportCaseUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SupportCaseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SupportCaseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SupportCaseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SupportCaseUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := supportcase.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SupportCaseUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := supportcase.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SupportCase.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SupportCaseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(supportcase.Table, supportcase.Columns, sqlgraph.NewFieldSpec(supportcase.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(supportcase.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProblemTitle(); ok {
		_spec.SetField(supportcase.FieldProblemTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProblemSummary(); ok {
		_spec.SetField(supportcase.FieldProblemSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.SolutionSummary(); ok {
		_spec.SetField(supportcase.FieldSolutionSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(supportcase.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, supportcase.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(supportcase.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.DedupEmbedding(); ok {
		_spec.SetField(supportcase.FieldDedupEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDedupEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, supportcase.FieldDedupEmbedding, value)
		})
	}
	if _u.mutation.DedupEmbeddingCleared() {
		_spec.ClearField(supportcase.FieldDedupEmbedding, field.TypeJSON)
	}
	if value, ok := _u.mutation.InIndex(); ok {
		_spec.SetField(supportcase.FieldInIndex, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ClosedEmoji(); ok {
		_spec.SetField(supportcase.FieldClosedEmoji, field.TypeString, value)
	}
	if _u.mutation.ClosedEmojiCleared() {
		_spec.ClearField(supportcase.FieldClosedEmoji, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(supportcase.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(supportcase.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EvidenceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvidenceIDs(); len(nodes) > 0 && !_u.mutation.EvidenceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvidenceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{supportcase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SupportCaseUpdateOne is the builder for updating a single SupportCase entity.
type SupportCaseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SupportCaseMutation
}

// SetStatus sets the "status" field.
func (_u *SupportCaseUpdateOne) SetStatus(v supportcase.Status) *SupportCaseUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SupportCaseUpdateOne) SetNillableStatus(v *supportcase.Status) *SupportCaseUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProblemTitle sets the "problem_title" field.
func (_u *SupportCaseUpdateOne) SetProblemTitle(v string) *SupportCaseUpdateOne {
	_u.mutation.SetProblemTitle(v)
	return _u
}

// SetNillableProblemTitle sets the "problem_title" field if the given value is not nil.
func (_u *SupportCaseUpdateOne) SetNillableProblemTitle(v *string) *SupportCaseUpdateOne {
	if v != nil {
		_u.SetProblemTitle(*v)
	}
	return _u
}

// SetProblemSummary sets the "problem_summary" field.
func (_u *SupportCaseUpdateOne) SetProblemSummary(v string) *SupportCaseUpdateOne {
	_u.mutation.SetProblemSummary(v)
	return _u
}

// SetNillableProblemSummary sets the "problem_summary" field if the given value is not nil.
func (_u *SupportCaseUpdateOne) SetNillableProblemSummary(v *string) *SupportCaseUpdateOne {
	if v != nil {
		_u.SetProblemSummary(*v)
	}
	return _u
}

// SetSolutionSummary sets the "solution_summary" field.
func (_u *SupportCaseUpdateOne) SetSolutionSummary(v string) *SupportCaseUpdateOne {
	_u.mutation.SetSolutionSummary(v)
	return _u
}

// SetNillableSolutionSummary sets the "solution_summary" field if the given value is not nil.
func (_u *SupportCaseUpdateOne) SetNillableSolutionSummary(v *string) *SupportCaseUpdateOne {
	if v != nil {
		_u.SetSolutionSummary(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *SupportCaseUpdateOne) SetTags(v []string) *SupportCaseUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *SupportCaseUpdateOne) AppendTags(v []string) *SupportCaseUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *SupportCaseUpdateOne) ClearTags() *SupportCaseUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetDedupEmbedding sets the "dedup_embedding" field.
func (_u *SupportCaseUpdateOne) SetDedupEmbedding(v []float32) *SupportCaseUpdateOne {
	_u.mutation.SetDedupEmbedding(v)
	return _u
}

// AppendDedupEmbedding appends value to the "dedup_embedding" field.
func (_u *SupportCaseUpdateOne) AppendDedupEmbedding(v []float32) *SupportCaseUpdateOne {
	_u.mutation.AppendDedupEmbedding(v)
	return _u
}

// ClearDedupEmbedding clears the value of the "dedup_embedding" field.
func (_u *SupportCaseUpdateOne) ClearDedupEmbedding() *SupportCaseUpdateOne {
	_u.mutation.ClearDedupEmbedding()
	return _u
}

// SetInIndex sets the "in_index" field.
func (_u *SupportCaseUpdateOne) SetInIndex(v bool) *SupportCaseUpdateOne {
	_u.mutation.SetInIndex(v)
	return _u
}

// SetNillableInIndex sets the "in_index" field if the given value is not nil.
func (_u *SupportCaseUpdateOne) SetNillableInIndex(v *bool) *SupportCaseUpdateOne {
	if v != nil {
		_u.SetInIndex(*v)
	}
	return _u
}

// SetClosedEmoji sets the "closed_emoji" field.
func (_u *SupportCaseUpdateOne) SetClosedEmoji(v string) *SupportCaseUpdateOne {
	_u.mutation.SetClosedEmoji(v)
	return _u
}

// SetNillableClosedEmoji sets the "closed_emoji" field if the given value is not nil.
func (_u *SupportCaseUpdateOne) SetNillableClosedEmoji(v *string) *SupportCaseUpdateOne {
	if v != nil {
		_u.SetClosedEmoji(*v)
	}
	return _u
}

// ClearClosedEmoji clears the value of the "closed_emoji" field.
func (_u *SupportCaseUpdateOne) ClearClosedEmoji() *SupportCaseUpdateOne {
	_u.mutation.ClearClosedEmoji()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SupportCaseUpdateOne) SetCreatedAt(v time.Time) *SupportCaseUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SupportCaseUpdateOne) SetNillableCreatedAt(v *time.Time) *SupportCaseUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SupportCaseUpdateOne) SetUpdatedAt(v time.Time) *SupportCaseUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddEvidenceIDs adds the "evidence" edge to the CaseEvidence entity by IDs.
func (_u *SupportCaseUpdateOne) AddEvidenceIDs(ids ...int) *SupportCaseUpdateOne {
	_u.mutation.AddEvidenceIDs(ids...)
	return _u
}

// AddEvidence adds the "evidence" edges to the CaseEvidence entity.
func (_u *SupportCaseUpdateOne) AddEvidence(v ...*CaseEvidence) *SupportCaseUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvidenceIDs(ids...)
}

// Mutation returns the SupportCaseMutation object of the builder.
func (_u *SupportCaseUpdateOne) Mutation() *SupportCaseMutation {
	return _u.mutation
}

// ClearEvidence clears all "evidence" edges to the CaseEvidence entity.
func (_u *SupportCaseUpdateOne) ClearEvidence() *SupportCaseUpdateOne {
	_u.mutation.ClearEvidence()
	return _u
}

// RemoveEvidenceIDs removes the "evidence" edge to CaseEvidence entities by IDs.
func (_u *SupportCaseUpdateOne) RemoveEvidenceIDs(ids ...int) *SupportCaseUpdateOne {
	_u.mutation.RemoveEvidenceIDs(ids...)
	return _u
}

// RemoveEvidence removes "evidence" edges to CaseEvidence entities.
func (_u *SupportCaseUpdateOne) RemoveEvidence(v ...*CaseEvidence) *SupportCaseUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvidenceIDs(ids...)
}

// Where appends a list predicates to the SupportCaseUpdate builder.
func (_u *SupportCaseUpdateOne) Where(ps ...predicate.SupportCase) *SupportCaseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SupportCaseUpdateOne) Select(field string, fields ...string) *SupportCaseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SupportCase entity.
func (_u *SupportCaseUpdateOne) Save(ctx context.Context) (*SupportCase, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SupportCaseUpdateOne) SaveX(ctx context.Context) *SupportCase {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SupportCaseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SupportCaseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SupportCaseUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := supportcase.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SupportCaseUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := supportcase.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SupportCase.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SupportCaseUpdateOne) sqlSave(ctx context.Context) (_node *SupportCase, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(supportcase.Table, supportcase.Columns, sqlgraph.NewFieldSpec(supportcase.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SupportCase.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, supportcase.FieldID)
		for _, f := range fields {
			if !supportcase.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != supportcase.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(supportcase.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProblemTitle(); ok {
		_spec.SetField(supportcase.FieldProblemTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProblemSummary(); ok {
		_spec.SetField(supportcase.FieldProblemSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.SolutionSummary(); ok {
		_spec.SetField(supportcase.FieldSolutionSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(supportcase.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, supportcase.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(supportcase.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.DedupEmbedding(); ok {
		_spec.SetField(supportcase.FieldDedupEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDedupEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, supportcase.FieldDedupEmbedding, value)
		})
	}
	if _u.mutation.DedupEmbeddingCleared() {
		_spec.ClearField(supportcase.FieldDedupEmbedding, field.TypeJSON)
	}
	if value, ok := _u.mutation.InIndex(); ok {
		_spec.SetField(supportcase.FieldInIndex, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ClosedEmoji(); ok {
		_spec.SetField(supportcase.FieldClosedEmoji, field.TypeString, value)
	}
	if _u.mutation.ClosedEmojiCleared() {
		_spec.ClearField(supportcase.FieldClosedEmoji, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(supportcase.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(supportcase.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EvidenceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvidenceIDs(); len(nodes) > 0 && !_u.mutation.EvidenceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvidenceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SupportCase{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{supportcase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
