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
	"github.com/casemine/casemine/ent/historytoken"
	"github.com/casemine/casemine/ent/predicate"
)

// HistoryTokenUpdate is the builder for updating HistoryToken entities.
type HistoryTokenUpdate struct {
	config
	hooks    []Hook
	mutation *HistoryTokenMutation
}

// Where appends a list predicates to the HistoryTokenUpdate builder.
func (_u *HistoryTokenUpdate) Where(ps ...predicate.HistoryToken) *HistoryTokenUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *HistoryTokenUpdate) SetExpiresAt(v time.Time) *HistoryTokenUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *HistoryTokenUpdate) SetNillableExpiresAt(v *time.Time) *HistoryTokenUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetConsumed sets the "consumed" field.
func (_u *HistoryTokenUpdate) SetConsumed(v bool) *HistoryTokenUpdate {
	_u.mutation.SetConsumed(v)
	return _u
}

// SetNillableConsumed sets the "consumed" field if the given value is not nil.
func (_u *HistoryTokenUpdate) SetNillableConsumed(v *bool) *HistoryTokenUpdate {
	if v != nil {
		_u.SetConsumed(*v)
	}
	return _u
}

// Mutation returns the HistoryTokenMutation object of the builder.
func (_u *HistoryTokenUpdate) Mutation() *HistoryTokenMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HistoryTokenUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HistoryTokenUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HistoryTokenUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HistoryTokenUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *HistoryTokenUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(historytoken.Table, historytoken.Columns, sqlgraph.NewFieldSpec(historytoken.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(historytoken.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Consumed(); ok {
		_spec.SetField(historytoken.FieldConsumed, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{historytoken.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HistoryTokenUpdateOne is the builder for updating a single HistoryToken entity.
type HistoryTokenUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HistoryTokenMutation
}

// SetExpiresAt sets the "expires_at" field.
func (_u *HistoryTokenUpdateOne) SetExpiresAt(v time.Time) *HistoryTokenUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *HistoryTokenUpdateOne) SetNillableExpiresAt(v *time.Time) *HistoryTokenUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetConsumed sets the "consumed" field.
func (_u *HistoryTokenUpdateOne) SetConsumed(v bool) *HistoryTokenUpdateOne {
	_u.mutation.SetConsumed(v)
	return _u
}

// SetNillableConsumed sets the "consumed" field if the given value is not nil.
func (_u *HistoryTokenUpdateOne) SetNillableConsumed(v *bool) *HistoryTokenUpdateOne {
	if v != nil {
		_u.SetConsumed(*v)
	}
	return _u
}

// Mutation returns the HistoryTokenMutation object of the builder.
func (_u *HistoryTokenUpdateOne) Mutation() *HistoryTokenMutation {
	return _u.mutation
}

// Where appends a list predicates to the HistoryTokenUpdate builder.
func (_u *HistoryTokenUpdateOne) Where(ps ...predicate.HistoryToken) *HistoryTokenUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HistoryTokenUpdateOne) Select(field string, fields ...string) *HistoryTokenUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HistoryToken entity.
func (_u *HistoryTokenUpdateOne) Save(ctx context.Context) (*HistoryToken, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HistoryTokenUpdateOne) SaveX(ctx context.Context) *HistoryToken {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HistoryTokenUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HistoryTokenUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *HistoryTokenUpdateOne) sqlSave(ctx context.Context) (_node *HistoryToken, err error) {
	_spec := sqlgraph.NewUpdateSpec(historytoken.Table, historytoken.Columns, sqlgraph.NewFieldSpec(historytoken.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HistoryToken.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, historytoken.FieldID)
		for _, f := range fields {
			if !historytoken.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != historytoken.FieldID {
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
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(historytoken.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Consumed(); ok {
		_spec.SetField(historytoken.FieldConsumed, field.TypeBool, value)
	}
	_node = &HistoryToken{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{historytoken.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
