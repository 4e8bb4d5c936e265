// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/casemine/casemine/ent/admingrouplink"
	"github.com/casemine/casemine/ent/predicate"
)

// AdminGroupLinkDelete is the builder for deleting a AdminGroupLink entity.
type AdminGroupLinkDelete struct {
	config
	hooks    []Hook
	mutation *AdminGroupLinkMutation
}

// Where appends a list predicates to the AdminGroupLinkDelete builder.
func (_d *AdminGroupLinkDelete) Where(ps ...predicate.AdminGroupLink) *AdminGroupLinkDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AdminGroupLinkDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AdminGroupLinkDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AdminGroupLinkDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(admingrouplink.Table, sqlgraph.NewFieldSpec(admingrouplink.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AdminGroupLinkDeleteOne is the builder for deleting a single AdminGroupLink entity.
type AdminGroupLinkDeleteOne struct {
	_d *AdminGroupLinkDelete
}

// Where appends a list predicates to the AdminGroupLinkDelete builder.
func (_d *AdminGroupLinkDeleteOne) Where(ps ...predicate.AdminGroupLink) *AdminGroupLinkDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AdminGroupLinkDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{admingrouplink.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AdminGroupLinkDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
