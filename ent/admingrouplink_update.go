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
	"github.com/casemine/casemine/ent/predicate"
)

// AdminGroupLinkUpdate is the builder for updating AdminGroupLink entities.
type AdminGroupLinkUpdate struct {
	config
	hooks    []Hook
	mutation *AdminGroupLinkMutation
}

// Where appends a list predicates to the AdminGroupLinkUpdate builder.
func (_u *AdminGroupLinkUpdate) Where(ps ...predicate.AdminGroupLink) *AdminGroupLinkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAdminID sets the "admin_id" field.
func (_u *AdminGroupLinkUpdate) SetAdminID(v string) *AdminGroupLinkUpdate {
	_u.mutation.SetAdminID(v)
	return _u
}

// SetNillableAdminID sets the "admin_id" field if the given value is not nil.
func (_u *AdminGroupLinkUpdate) SetNillableAdminID(v *string) *AdminGroupLinkUpdate {
	if v != nil {
		_u.SetAdminID(*v)
	}
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *AdminGroupLinkUpdate) SetGroupID(v string) *AdminGroupLinkUpdate {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *AdminGroupLinkUpdate) SetNillableGroupID(v *string) *AdminGroupLinkUpdate {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AdminGroupLinkUpdate) SetCreatedAt(v time.Time) *AdminGroupLinkUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AdminGroupLinkUpdate) SetNillableCreatedAt(v *time.Time) *AdminGroupLinkUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the AdminGroupLinkMutation object of the builder.
func (_u *AdminGroupLinkUpdate) Mutation() *AdminGroupLinkMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AdminGroupLinkUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdminGroupLinkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AdminGroupLinkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdminGroupLinkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AdminGroupLinkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(admingrouplink.Table, admingrouplink.Columns, sqlgraph.NewFieldSpec(admingrouplink.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AdminID(); ok {
		_spec.SetField(admingrouplink.FieldAdminID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(admingrouplink.FieldGroupID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(admingrouplink.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{admingrouplink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AdminGroupLinkUpdateOne is the builder for updating a single AdminGroupLink entity.
type AdminGroupLinkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AdminGroupLinkMutation
}

// SetAdminID sets the "admin_id" field.
func (_u *AdminGroupLinkUpdateOne) SetAdminID(v string) *AdminGroupLinkUpdateOne {
	_u.mutation.SetAdminID(v)
	return _u
}

// SetNillableAdminID sets the "admin_id" field if the given value is not nil.
func (_u *AdminGroupLinkUpdateOne) SetNillableAdminID(v *string) *AdminGroupLinkUpdateOne {
	if v != nil {
		_u.SetAdminID(*v)
	}
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *AdminGroupLinkUpdateOne) SetGroupID(v string) *AdminGroupLinkUpdateOne {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *AdminGroupLinkUpdateOne) SetNillableGroupID(v *string) *AdminGroupLinkUpdateOne {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AdminGroupLinkUpdateOne) SetCreatedAt(v time.Time) *AdminGroupLinkUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AdminGroupLinkUpdateOne) SetNillableCreatedAt(v *time.Time) *AdminGroupLinkUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the AdminGroupLinkMutation object of the builder.
func (_u *AdminGroupLinkUpdateOne) Mutation() *AdminGroupLinkMutation {
	return _u.mutation
}

// Where appends a list predicates to the AdminGroupLinkUpdate builder.
func (_u *AdminGroupLinkUpdateOne) Where(ps ...predicate.AdminGroupLink) *AdminGroupLinkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AdminGroupLinkUpdateOne) Select(field string, fields ...string) *AdminGroupLinkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AdminGroupLink entity.
func (_u *AdminGroupLinkUpdateOne) Save(ctx context.Context) (*AdminGroupLink, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdminGroupLinkUpdateOne) SaveX(ctx context.Context) *AdminGroupLink {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AdminGroupLinkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdminGroupLinkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AdminGroupLinkUpdateOne) sqlSave(ctx context.Context) (_node *AdminGroupLink, err error) {
	_spec := sqlgraph.NewUpdateSpec(admingrouplink.Table, admingrouplink.Columns, sqlgraph.NewFieldSpec(admingrouplink.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AdminGroupLink.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, admingrouplink.FieldID)
		for _, f := range fields {
			if !admingrouplink.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != admingrouplink.FieldID {
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
	if value, ok := _u.mutation.AdminID(); ok {
		_spec.SetField(admingrouplink.FieldAdminID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(admingrouplink.FieldGroupID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(admingrouplink.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &AdminGroupLink{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{admingrouplink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
