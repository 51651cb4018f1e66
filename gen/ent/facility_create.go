// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/qrsafety/sds-pipeline/gen/ent/extractjob"
	"github.com/qrsafety/sds-pipeline/gen/ent/facility"
	"github.com/qrsafety/sds-pipeline/gen/ent/sdsdocument"
)

// FacilityCreate is the builder for creating a Facility entity.
type FacilityCreate struct {
	config
	mutation *FacilityMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (fc *FacilityCreate) SetName(s string) *FacilityCreate {
	fc.mutation.SetName(s)
	return fc
}

// SetContactEmail sets the "contact_email" field.
func (fc *FacilityCreate) SetContactEmail(s string) *FacilityCreate {
	fc.mutation.SetContactEmail(s)
	return fc
}

// SetNillableContactEmail sets the "contact_email" field if the given value is not nil.
func (fc *FacilityCreate) SetNillableContactEmail(s *string) *FacilityCreate {
	if s != nil {
		fc.SetContactEmail(*s)
	}
	return fc
}

// SetAddress sets the "address" field.
func (fc *FacilityCreate) SetAddress(s string) *FacilityCreate {
	fc.mutation.SetAddress(s)
	return fc
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (fc *FacilityCreate) SetNillableAddress(s *string) *FacilityCreate {
	if s != nil {
		fc.SetAddress(*s)
	}
	return fc
}

// SetCreatedAt sets the "created_at" field.
func (fc *FacilityCreate) SetCreatedAt(t time.Time) *FacilityCreate {
	fc.mutation.SetCreatedAt(t)
	return fc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (fc *FacilityCreate) SetNillableCreatedAt(t *time.Time) *FacilityCreate {
	if t != nil {
		fc.SetCreatedAt(*t)
	}
	return fc
}

// SetUpdatedAt sets the "updated_at" field.
func (fc *FacilityCreate) SetUpdatedAt(t time.Time) *FacilityCreate {
	fc.mutation.SetUpdatedAt(t)
	return fc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (fc *FacilityCreate) SetNillableUpdatedAt(t *time.Time) *FacilityCreate {
	if t != nil {
		fc.SetUpdatedAt(*t)
	}
	return fc
}

// SetID sets the "id" field.
func (fc *FacilityCreate) SetID(u uuid.UUID) *FacilityCreate {
	fc.mutation.SetID(u)
	return fc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (fc *FacilityCreate) SetNillableID(u *uuid.UUID) *FacilityCreate {
	if u != nil {
		fc.SetID(*u)
	}
	return fc
}

// AddDocumentIDs adds the "documents" edge to the SDSDocument entity by IDs.
func (fc *FacilityCreate) AddDocumentIDs(ids ...uuid.UUID) *FacilityCreate {
	fc.mutation.AddDocumentIDs(ids...)
	return fc
}

// AddDocuments adds the "documents" edges to the SDSDocument entity.
func (fc *FacilityCreate) AddDocuments(s ...*SDSDocument) *FacilityCreate {
	ids := make([]uuid.UUID, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return fc.AddDocumentIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (fc *FacilityCreate) AddJobIDs(ids ...uuid.UUID) *FacilityCreate {
	fc.mutation.AddJobIDs(ids...)
	return fc
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (fc *FacilityCreate) AddJobs(e ...*ExtractJob) *FacilityCreate {
	ids := make([]uuid.UUID, len(e))
	for i := range e {
		ids[i] = e[i].ID
	}
	return fc.AddJobIDs(ids...)
}

// Mutation returns the FacilityMutation object of the builder.
func (fc *FacilityCreate) Mutation() *FacilityMutation {
	return fc.mutation
}

// Save creates the Facility in the database.
func (fc *FacilityCreate) Save(ctx context.Context) (*Facility, error) {
	fc.defaults()
	return withHooks(ctx, fc.sqlSave, fc.mutation, fc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (fc *FacilityCreate) SaveX(ctx context.Context) *Facility {
	v, err := fc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (fc *FacilityCreate) Exec(ctx context.Context) error {
	_, err := fc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (fc *FacilityCreate) ExecX(ctx context.Context) {
	if err := fc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (fc *FacilityCreate) defaults() {
	if _, ok := fc.mutation.CreatedAt(); !ok {
		v := facility.DefaultCreatedAt()
		fc.mutation.SetCreatedAt(v)
	}
	if _, ok := fc.mutation.UpdatedAt(); !ok {
		v := facility.DefaultUpdatedAt()
		fc.mutation.SetUpdatedAt(v)
	}
	if _, ok := fc.mutation.ID(); !ok {
		v := facility.DefaultID()
		fc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (fc *FacilityCreate) check() error {
	if _, ok := fc.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Facility.name"`)}
	}
	if v, ok := fc.mutation.Name(); ok {
		if err := facility.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Facility.name": %w`, err)}
		}
	}
	if _, ok := fc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Facility.created_at"`)}
	}
	if _, ok := fc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Facility.updated_at"`)}
	}
	return nil
}

func (fc *FacilityCreate) sqlSave(ctx context.Context) (*Facility, error) {
	if err := fc.check(); err != nil {
		return nil, err
	}
	_node, _spec := fc.createSpec()
	if err := sqlgraph.CreateNode(ctx, fc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	fc.mutation.id = &_node.ID
	fc.mutation.done = true
	return _node, nil
}

func (fc *FacilityCreate) createSpec() (*Facility, *sqlgraph.CreateSpec) {
	var (
		_node = &Facility{config: fc.config}
		_spec = sqlgraph.NewCreateSpec(facility.Table, sqlgraph.NewFieldSpec(facility.FieldID, field.TypeUUID))
	)
	if id, ok := fc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := fc.mutation.Name(); ok {
		_spec.SetField(facility.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := fc.mutation.ContactEmail(); ok {
		_spec.SetField(facility.FieldContactEmail, field.TypeString, value)
		_node.ContactEmail = &value
	}
	if value, ok := fc.mutation.Address(); ok {
		_spec.SetField(facility.FieldAddress, field.TypeString, value)
		_node.Address = &value
	}
	if value, ok := fc.mutation.CreatedAt(); ok {
		_spec.SetField(facility.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := fc.mutation.UpdatedAt(); ok {
		_spec.SetField(facility.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := fc.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   facility.DocumentsTable,
			Columns: []string{facility.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sdsdocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := fc.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   facility.JobsTable,
			Columns: []string{facility.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FacilityCreateBulk is the builder for creating many Facility entities in bulk.
type FacilityCreateBulk struct {
	config
	err      error
	builders []*FacilityCreate
}

// Save creates the Facility entities in the database.
func (fcb *FacilityCreateBulk) Save(ctx context.Context) ([]*Facility, error) {
	if fcb.err != nil {
		return nil, fcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(fcb.builders))
	nodes := make([]*Facility, len(fcb.builders))
	mutators := make([]Mutator, len(fcb.builders))
	for i := range fcb.builders {
		func(i int, root context.Context) {
			builder := fcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FacilityMutation)
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
					_, err = mutators[i+1].Mutate(root, fcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, fcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, fcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (fcb *FacilityCreateBulk) SaveX(ctx context.Context) []*Facility {
	v, err := fcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (fcb *FacilityCreateBulk) Exec(ctx context.Context) error {
	_, err := fcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (fcb *FacilityCreateBulk) ExecX(ctx context.Context) {
	if err := fcb.Exec(ctx); err != nil {
		panic(err)
	}
}
