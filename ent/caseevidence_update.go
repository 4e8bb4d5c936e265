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
	"github.com/casemine/casemine/ent/predicate"
)

// CaseEvidenceUpdate is the builder for updating CaseEvidence entities.
type CaseEvidenceUpdate struct {
	config
	hooks    []Hook
	mutation *CaseEvidenceMutation
}

// Where appends a list predicates to the CaseEvidenceUpdate builder.
func (_u *CaseEvidenceUpdate) Where(ps ...predicate.CaseEvidence) *CaseEvidenceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPosition sets the "position" field.
func (_u *CaseEvidenceUpdate) SetPosition(v int) *CaseEvidenceUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *CaseEvidenceUpdate) SetNillablePosition(v *int) *CaseEvidenceUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *CaseEvidenceUpdate) AddPosition(v int) *CaseEvidenceUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// Mutation returns the CaseEvidenceMutation object of the builder.
func (_u *CaseEvidenceUpdate) Mutation() *CaseEvidenceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CaseEvidenceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CaseEvidenceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CaseEvidenceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CaseEvidenceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CaseEvidenceUpdate) check() error {
	if _u.mutation.SupportCaseCleared() && len(_u.mutation.SupportCaseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CaseEvidence.support_case"`)
	}
	return nil
}

func (_u *CaseEvidenceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(caseevidence.Table, caseevidence.Columns, sqlgraph.NewFieldSpec(caseevidence.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(caseevidence.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(caseevidence.FieldPosition, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{caseevidence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CaseEvidenceUpdateOne is the builder for updating a single CaseEvidence entity.
type CaseEvidenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CaseEvidenceMutation
}

// SetPosition sets the "position" field.
func (_u *CaseEvidenceUpdateOne) SetPosition(v int) *CaseEvidenceUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *CaseEvidenceUpdateOne) SetNillablePosition(v *int) *CaseEvidenceUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *CaseEvidenceUpdateOne) AddPosition(v int) *CaseEvidenceUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// Mutation returns the CaseEvidenceMutation object of the builder.
func (_u *CaseEvidenceUpdateOne) Mutation() *CaseEvidenceMutation {
	return _u.mutation
}

// Where appends a list predicates to the CaseEvidenceUpdate builder.
func (_u *CaseEvidenceUpdateOne) Where(ps ...predicate.CaseEvidence) *CaseEvidenceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CaseEvidenceUpdateOne) Select(field string, fields ...string) *CaseEvidenceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CaseEvidence entity.
func (_u *CaseEvidenceUpdateOne) Save(ctx context.Context) (*CaseEvidence, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CaseEvidenceUpdateOne) SaveX(ctx context.Context) *CaseEvidence {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CaseEvidenceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CaseEvidenceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CaseEvidenceUpdateOne) check() error {
	if _u.mutation.SupportCaseCleared() && len(_u.mutation.SupportCaseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CaseEvidence.support_case"`)
	}
	return nil
}

func (_u *CaseEvidenceUpdateOne) sqlSave(ctx context.Context) (_node *CaseEvidence, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(caseevidence.Table, caseevidence.Columns, sqlgraph.NewFieldSpec(caseevidence.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CaseEvidence.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, caseevidence.FieldID)
		for _, f := range fields {
			if !caseevidence.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != caseevidence.FieldID {
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
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(caseevidence.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(caseevidence.FieldPosition, field.TypeInt, value)
	}
	_node = &CaseEvidence{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{caseevidence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
