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
	"github.com/casemine/casemine/ent/adminsession"
	"github.com/casemine/casemine/ent/predicate"
)

// AdminSessionUpdate is the builder for updating AdminSession entities.
type AdminSessionUpdate struct {
	config
	hooks    []Hook
	mutation *AdminSessionMutation
}

// Where appends a list predicates to the AdminSessionUpdate builder.
func (_u *AdminSessionUpdate) Where(ps ...predicate.AdminSession) *AdminSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetState sets the "state" field.
func (_u *AdminSessionUpdate) SetState(v adminsession.State) *AdminSessionUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *AdminSessionUpdate) SetNillableState(v *adminsession.State) *AdminSessionUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetPendingGroupID sets the "pending_group_id" field.
func (_u *AdminSessionUpdate) SetPendingGroupID(v string) *AdminSessionUpdate {
	_u.mutation.SetPendingGroupID(v)
	return _u
}

// SetNillablePendingGroupID sets the "pending_group_id" field if the given value is not nil.
func (_u *AdminSessionUpdate) SetNillablePendingGroupID(v *string) *AdminSessionUpdate {
	if v != nil {
		_u.SetPendingGroupID(*v)
	}
	return _u
}

// ClearPendingGroupID clears the value of the "pending_group_id" field.
func (_u *AdminSessionUpdate) ClearPendingGroupID() *AdminSessionUpdate {
	_u.mutation.ClearPendingGroupID()
	return _u
}

// SetPendingGroupName sets the "pending_group_name" field.
func (_u *AdminSessionUpdate) SetPendingGroupName(v string) *AdminSessionUpdate {
	_u.mutation.SetPendingGroupName(v)
	return _u
}

// SetNillablePendingGroupName sets the "pending_group_name" field if the given value is not nil.
func (_u *AdminSessionUpdate) SetNillablePendingGroupName(v *string) *AdminSessionUpdate {
	if v != nil {
		_u.SetPendingGroupName(*v)
	}
	return _u
}

// ClearPendingGroupName clears the value of the "pending_group_name" field.
func (_u *AdminSessionUpdate) ClearPendingGroupName() *AdminSessionUpdate {
	_u.mutation.ClearPendingGroupName()
	return _u
}

// SetPendingToken sets the "pending_token" field.
func (_u *AdminSessionUpdate) SetPendingToken(v string) *AdminSessionUpdate {
	_u.mutation.SetPendingToken(v)
	return _u
}

// SetNillablePendingToken sets the "pending_token" field if the given value is not nil.
func (_u *AdminSessionUpdate) SetNillablePendingToken(v *string) *AdminSessionUpdate {
	if v != nil {
		_u.SetPendingToken(*v)
	}
	return _u
}

// ClearPendingToken clears the value of the "pending_token" field.
func (_u *AdminSessionUpdate) ClearPendingToken() *AdminSessionUpdate {
	_u.mutation.ClearPendingToken()
	return _u
}

// SetLang sets the "lang" field.
func (_u *AdminSessionUpdate) SetLang(v adminsession.Lang) *AdminSessionUpdate {
	_u.mutation.SetLang(v)
	return _u
}

// SetNillableLang sets the "lang" field if the given value is not nil.
func (_u *AdminSessionUpdate) SetNillableLang(v *adminsession.Lang) *AdminSessionUpdate {
	if v != nil {
		_u.SetLang(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AdminSessionUpdate) SetUpdatedAt(v time.Time) *AdminSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AdminSessionMutation object of the builder.
func (_u *AdminSessionUpdate) Mutation() *AdminSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AdminSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdminSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AdminSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdminSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AdminSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := adminsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdminSessionUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := adminsession.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "AdminSession.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Lang(); ok {
		if err := adminsession.LangValidator(v); err != nil {
			return &ValidationError{Name: "lang", err: fmt.Errorf(`ent: validator failed for field "AdminSession.lang": %w`, err)}
		}
	}
	return nil
}

func (_u *AdminSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(adminsession.Table, adminsession.Columns, sqlgraph.NewFieldSpec(adminsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(adminsession.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PendingGroupID(); ok {
		_spec.SetField(adminsession.FieldPendingGroupID, field.TypeString, value)
	}
	if _u.mutation.PendingGroupIDCleared() {
		_spec.ClearField(adminsession.FieldPendingGroupID, field.TypeString)
	}
	if value, ok := _u.mutation.PendingGroupName(); ok {
		_spec.SetField(adminsession.FieldPendingGroupName, field.TypeString, value)
	}
	if _u.mutation.PendingGroupNameCleared() {
		_spec.ClearField(adminsession.FieldPendingGroupName, field.TypeString)
	}
	if value, ok := _u.mutation.PendingToken(); ok {
		_spec.SetField(adminsession.FieldPendingToken, field.TypeString, value)
	}
	if _u.mutation.PendingTokenCleared() {
		_spec.ClearField(adminsession.FieldPendingToken, field.TypeString)
	}
	if value, ok := _u.mutation.Lang(); ok {
		_spec.SetField(adminsession.FieldLang, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(adminsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{adminsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AdminSessionUpdateOne is the builder for updating a single AdminSession entity.
type AdminSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AdminSessionMutation
}

// SetState sets the "state" field.
func (_u *AdminSessionUpdateOne) SetState(v adminsession.State) *AdminSessionUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *AdminSessionUpdateOne) SetNillableState(v *adminsession.State) *AdminSessionUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetPendingGroupID sets the "pending_group_id" field.
func (_u *AdminSessionUpdateOne) SetPendingGroupID(v string) *AdminSessionUpdateOne {
	_u.mutation.SetPendingGroupID(v)
	return _u
}

// SetNillablePendingGroupID sets the "pending_group_id" field if the given value is not nil.
func (_u *AdminSessionUpdateOne) SetNillablePendingGroupID(v *string) *AdminSessionUpdateOne {
	if v != nil {
		_u.SetPendingGroupID(*v)
	}
	return _u
}

// ClearPendingGroupID clears the value of the "pending_group_id" field.
func (_u *AdminSessionUpdateOne) ClearPendingGroupID() *AdminSessionUpdateOne {
	_u.mutation.ClearPendingGroupID()
	return _u
}

// SetPendingGroupName sets the "pending_group_name" field.
func (_u *AdminSessionUpdateOne) SetPendingGroupName(v string) *AdminSessionUpdateOne {
	_u.mutation.SetPendingGroupName(v)
	return _u
}

// SetNillablePendingGroupName sets the "pending_group_name" field if the given value is not nil.
func (_u *AdminSessionUpdateOne) SetNillablePendingGroupName(v *string) *AdminSessionUpdateOne {
	if v != nil {
		_u.SetPendingGroupName(*v)
	}
	return _u
}

// ClearPendingGroupName clears the value of the "pending_group_name" field.
func (_u *AdminSessionUpdateOne) ClearPendingGroupName() *AdminSessionUpdateOne {
	_u.mutation.ClearPendingGroupName()
	return _u
}

// SetPendingToken sets the "pending_token" field.
func (_u *AdminSessionUpdateOne) SetPendingToken(v string) *AdminSessionUpdateOne {
	_u.mutation.SetPendingToken(v)
	return _u
}

// SetNillablePendingToken sets the "pending_token" field if the given value is not nil.
func (_u *AdminSessionUpdateOne) SetNillablePendingToken(v *string) *AdminSessionUpdateOne {
	if v != nil {
		_u.SetPendingToken(*v)
	}
	return _u
}

// ClearPendingToken clears the value of the "pending_token" field.
func (_u *AdminSessionUpdateOne) ClearPendingToken() *AdminSessionUpdateOne {
	_u.mutation.ClearPendingToken()
	return _u
}

// SetLang sets the "lang" field.
func (_u *AdminSessionUpdateOne) SetLang(v adminsession.Lang) *AdminSessionUpdateOne {
	_u.mutation.SetLang(v)
	return _u
}

// SetNillableLang sets the "lang" field if the given value is not nil.
func (_u *AdminSessionUpdateOne) SetNillableLang(v *adminsession.Lang) *AdminSessionUpdateOne {
	if v != nil {
		_u.SetLang(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AdminSessionUpdateOne) SetUpdatedAt(v time.Time) *AdminSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AdminSessionMutation object of the builder.
func (_u *AdminSessionUpdateOne) Mutation() *AdminSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the AdminSessionUpdate builder.
func (_u *AdminSessionUpdateOne) Where(ps ...predicate.AdminSession) *AdminSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AdminSessionUpdateOne) Select(field string, fields ...string) *AdminSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AdminSession entity.
func (_u *AdminSessionUpdateOne) Save(ctx context.Context) (*AdminSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdminSessionUpdateOne) SaveX(ctx context.Context) *AdminSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AdminSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdminSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AdminSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := adminsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdminSessionUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := adminsession.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "AdminSession.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Lang(); ok {
		if err := adminsession.LangValidator(v); err != nil {
			return &ValidationError{Name: "lang", err: fmt.Errorf(`ent: validator failed for field "AdminSession.lang": %w`, err)}
		}
	}
	return nil
}

func (_u *AdminSessionUpdateOne) sqlSave(ctx context.Context) (_node *AdminSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(adminsession.Table, adminsession.Columns, sqlgraph.NewFieldSpec(adminsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AdminSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, adminsession.FieldID)
		for _, f := range fields {
			if !adminsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != adminsession.FieldID {
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
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(adminsession.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PendingGroupID(); ok {
		_spec.SetField(adminsession.FieldPendingGroupID, field.TypeString, value)
	}
	if _u.mutation.PendingGroupIDCleared() {
		_spec.ClearField(adminsession.FieldPendingGroupID, field.TypeString)
	}
	if value, ok := _u.mutation.PendingGroupName(); ok {
		_spec.SetField(adminsession.FieldPendingGroupName, field.TypeString, value)
	}
	if _u.mutation.PendingGroupNameCleared() {
		_spec.ClearField(adminsession.FieldPendingGroupName, field.TypeString)
	}
	if value, ok := _u.mutation.PendingToken(); ok {
		_spec.SetField(adminsession.FieldPendingToken, field.TypeString, value)
	}
	if _u.mutation.PendingTokenCleared() {
		_spec.ClearField(adminsession.FieldPendingToken, field.TypeString)
	}
	if value, ok := _u.mutation.Lang(); ok {
		_spec.SetField(adminsession.FieldLang, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(adminsession.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &AdminSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{adminsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
