// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/qrsafety/sds-pipeline/gen/ent/extractjob"
	"github.com/qrsafety/sds-pipeline/gen/ent/predicate"
)

// ExtractJobDelete is the builder for deleting a ExtractJob entity.
type ExtractJobDelete struct {
	config
	hooks    []Hook
	mutation *ExtractJobMutation
}

// Where appends a list predicates to the ExtractJobDelete builder.
func (ejd *ExtractJobDelete) Where(ps ...predicate.ExtractJob) *ExtractJobDelete {
	ejd.mutation.Where(ps...)
	return ejd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (ejd *ExtractJobDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, ejd.sqlExec, ejd.mutation, ejd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (ejd *ExtractJobDelete) ExecX(ctx context.Context) int {
	n, err := ejd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (ejd *ExtractJobDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(extractjob.Table, sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID))
	if ps := ejd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, ejd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	ejd.mutation.done = true
	return affected, err
}

// ExtractJobDeleteOne is the builder for deleting a single ExtractJob entity.
type ExtractJobDeleteOne struct {
	ejd *ExtractJobDelete
}

// Where appends a list predicates to the ExtractJobDelete builder.
func (ejdo *ExtractJobDeleteOne) Where(ps ...predicate.ExtractJob) *ExtractJobDeleteOne {
	ejdo.ejd.mutation.Where(ps...)
	return ejdo
}

// Exec executes the deletion query.
func (ejdo *ExtractJobDeleteOne) Exec(ctx context.Context) error {
	n, err := ejdo.ejd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{extractjob.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (ejdo *ExtractJobDeleteOne) ExecX(ctx context.Context) {
	if err := ejdo.Exec(ctx); err != nil {
		panic(err)
	}
}
