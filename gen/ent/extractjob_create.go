// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
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

// ExtractJobCreate is the builder for creating a ExtractJob entity.
type ExtractJobCreate struct {
	config
	mutation *ExtractJobMutation
	hooks    []Hook
}

// SetFacilityID sets the "facility_id" field.
func (ejc *ExtractJobCreate) SetFacilityID(u uuid.UUID) *ExtractJobCreate {
	ejc.mutation.SetFacilityID(u)
	return ejc
}

// SetDocumentID sets the "document_id" field.
func (ejc *ExtractJobCreate) SetDocumentID(u uuid.UUID) *ExtractJobCreate {
	ejc.mutation.SetDocumentID(u)
	return ejc
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (ejc *ExtractJobCreate) SetNillableDocumentID(u *uuid.UUID) *ExtractJobCreate {
	if u != nil {
		ejc.SetDocumentID(*u)
	}
	return ejc
}

// SetSourceRef sets the "source_ref" field.
func (ejc *ExtractJobCreate) SetSourceRef(s string) *ExtractJobCreate {
	ejc.mutation.SetSourceRef(s)
	return ejc
}

// SetFormat sets the "format" field.
func (ejc *ExtractJobCreate) SetFormat(s string) *ExtractJobCreate {
	ejc.mutation.SetFormat(s)
	return ejc
}

// SetStartedAt sets the "started_at" field.
func (ejc *ExtractJobCreate) SetStartedAt(t time.Time) *ExtractJobCreate {
	ejc.mutation.SetStartedAt(t)
	return ejc
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (ejc *ExtractJobCreate) SetNillableStartedAt(t *time.Time) *ExtractJobCreate {
	if t != nil {
		ejc.SetStartedAt(*t)
	}
	return ejc
}

// SetFinishedAt sets the "finished_at" field.
func (ejc *ExtractJobCreate) SetFinishedAt(t time.Time) *ExtractJobCreate {
	ejc.mutation.SetFinishedAt(t)
	return ejc
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (ejc *ExtractJobCreate) SetNillableFinishedAt(t *time.Time) *ExtractJobCreate {
	if t != nil {
		ejc.SetFinishedAt(*t)
	}
	return ejc
}

// SetStatus sets the "status" field.
func (ejc *ExtractJobCreate) SetStatus(s string) *ExtractJobCreate {
	ejc.mutation.SetStatus(s)
	return ejc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ejc *ExtractJobCreate) SetNillableStatus(s *string) *ExtractJobCreate {
	if s != nil {
		ejc.SetStatus(*s)
	}
	return ejc
}

// SetErrorMessage sets the "error_message" field.
func (ejc *ExtractJobCreate) SetErrorMessage(s string) *ExtractJobCreate {
	ejc.mutation.SetErrorMessage(s)
	return ejc
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (ejc *ExtractJobCreate) SetNillableErrorMessage(s *string) *ExtractJobCreate {
	if s != nil {
		ejc.SetErrorMessage(*s)
	}
	return ejc
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (ejc *ExtractJobCreate) SetExtractionConfidence(f float32) *ExtractJobCreate {
	ejc.mutation.SetExtractionConfidence(f)
	return ejc
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (ejc *ExtractJobCreate) SetNillableExtractionConfidence(f *float32) *ExtractJobCreate {
	if f != nil {
		ejc.SetExtractionConfidence(*f)
	}
	return ejc
}

// SetNeedsReview sets the "needs_review" field.
func (ejc *ExtractJobCreate) SetNeedsReview(b bool) *ExtractJobCreate {
	ejc.mutation.SetNeedsReview(b)
	return ejc
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (ejc *ExtractJobCreate) SetNillableNeedsReview(b *bool) *ExtractJobCreate {
	if b != nil {
		ejc.SetNeedsReview(*b)
	}
	return ejc
}

// SetMethod sets the "method" field.
func (ejc *ExtractJobCreate) SetMethod(s string) *ExtractJobCreate {
	ejc.mutation.SetMethod(s)
	return ejc
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (ejc *ExtractJobCreate) SetNillableMethod(s *string) *ExtractJobCreate {
	if s != nil {
		ejc.SetMethod(*s)
	}
	return ejc
}

// SetRawText sets the "raw_text" field.
func (ejc *ExtractJobCreate) SetRawText(s string) *ExtractJobCreate {
	ejc.mutation.SetRawText(s)
	return ejc
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (ejc *ExtractJobCreate) SetNillableRawText(s *string) *ExtractJobCreate {
	if s != nil {
		ejc.SetRawText(*s)
	}
	return ejc
}

// SetExtractedJSON sets the "extracted_json" field.
func (ejc *ExtractJobCreate) SetExtractedJSON(jm json.RawMessage) *ExtractJobCreate {
	ejc.mutation.SetExtractedJSON(jm)
	return ejc
}

// SetModelName sets the "model_name" field.
func (ejc *ExtractJobCreate) SetModelName(s string) *ExtractJobCreate {
	ejc.mutation.SetModelName(s)
	return ejc
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (ejc *ExtractJobCreate) SetNillableModelName(s *string) *ExtractJobCreate {
	if s != nil {
		ejc.SetModelName(*s)
	}
	return ejc
}

// SetModelParams sets the "model_params" field.
func (ejc *ExtractJobCreate) SetModelParams(jm json.RawMessage) *ExtractJobCreate {
	ejc.mutation.SetModelParams(jm)
	return ejc
}

// SetID sets the "id" field.
func (ejc *ExtractJobCreate) SetID(u uuid.UUID) *ExtractJobCreate {
	ejc.mutation.SetID(u)
	return ejc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (ejc *ExtractJobCreate) SetNillableID(u *uuid.UUID) *ExtractJobCreate {
	if u != nil {
		ejc.SetID(*u)
	}
	return ejc
}

// SetFacility sets the "facility" edge to the Facility entity.
func (ejc *ExtractJobCreate) SetFacility(f *Facility) *ExtractJobCreate {
	return ejc.SetFacilityID(f.ID)
}

// SetDocument sets the "document" edge to the SDSDocument entity.
func (ejc *ExtractJobCreate) SetDocument(s *SDSDocument) *ExtractJobCreate {
	return ejc.SetDocumentID(s.ID)
}

// Mutation returns the ExtractJobMutation object of the builder.
func (ejc *ExtractJobCreate) Mutation() *ExtractJobMutation {
	return ejc.mutation
}

// Save creates the ExtractJob in the database.
func (ejc *ExtractJobCreate) Save(ctx context.Context) (*ExtractJob, error) {
	ejc.defaults()
	return withHooks(ctx, ejc.sqlSave, ejc.mutation, ejc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ejc *ExtractJobCreate) SaveX(ctx context.Context) *ExtractJob {
	v, err := ejc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ejc *ExtractJobCreate) Exec(ctx context.Context) error {
	_, err := ejc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ejc *ExtractJobCreate) ExecX(ctx context.Context) {
	if err := ejc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ejc *ExtractJobCreate) defaults() {
	if _, ok := ejc.mutation.StartedAt(); !ok {
		v := extractjob.DefaultStartedAt()
		ejc.mutation.SetStartedAt(v)
	}
	if _, ok := ejc.mutation.NeedsReview(); !ok {
		v := extractjob.DefaultNeedsReview
		ejc.mutation.SetNeedsReview(v)
	}
	if _, ok := ejc.mutation.ID(); !ok {
		v := extractjob.DefaultID()
		ejc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ejc *ExtractJobCreate) check() error {
	if _, ok := ejc.mutation.FacilityID(); !ok {
		return &ValidationError{Name: "facility_id", err: errors.New(`ent: missing required field "ExtractJob.facility_id"`)}
	}
	if _, ok := ejc.mutation.SourceRef(); !ok {
		return &ValidationError{Name: "source_ref", err: errors.New(`ent: missing required field "ExtractJob.source_ref"`)}
	}
	if v, ok := ejc.mutation.SourceRef(); ok {
		if err := extractjob.SourceRefValidator(v); err != nil {
			return &ValidationError{Name: "source_ref", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.source_ref": %w`, err)}
		}
	}
	if _, ok := ejc.mutation.Format(); !ok {
		return &ValidationError{Name: "format", err: errors.New(`ent: missing required field "ExtractJob.format"`)}
	}
	if v, ok := ejc.mutation.Format(); ok {
		if err := extractjob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.format": %w`, err)}
		}
	}
	if _, ok := ejc.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ExtractJob.started_at"`)}
	}
	if v, ok := ejc.mutation.Status(); ok {
		if err := extractjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.status": %w`, err)}
		}
	}
	if _, ok := ejc.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "ExtractJob.needs_review"`)}
	}
	if len(ejc.mutation.FacilityIDs()) == 0 {
		return &ValidationError{Name: "facility", err: errors.New(`ent: missing required edge "ExtractJob.facility"`)}
	}
	return nil
}

func (ejc *ExtractJobCreate) sqlSave(ctx context.Context) (*ExtractJob, error) {
	if err := ejc.check(); err != nil {
		return nil, err
	}
	_node, _spec := ejc.createSpec()
	if err := sqlgraph.CreateNode(ctx, ejc.driver, _spec); err != nil {
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
	ejc.mutation.id = &_node.ID
	ejc.mutation.done = true
	return _node, nil
}

func (ejc *ExtractJobCreate) createSpec() (*ExtractJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractJob{config: ejc.config}
		_spec = sqlgraph.NewCreateSpec(extractjob.Table, sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID))
	)
	if id, ok := ejc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := ejc.mutation.SourceRef(); ok {
		_spec.SetField(extractjob.FieldSourceRef, field.TypeString, value)
		_node.SourceRef = value
	}
	if value, ok := ejc.mutation.Format(); ok {
		_spec.SetField(extractjob.FieldFormat, field.TypeString, value)
		_node.Format = value
	}
	if value, ok := ejc.mutation.StartedAt(); ok {
		_spec.SetField(extractjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := ejc.mutation.FinishedAt(); ok {
		_spec.SetField(extractjob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := ejc.mutation.Status(); ok {
		_spec.SetField(extractjob.FieldStatus, field.TypeString, value)
		_node.Status = &value
	}
	if value, ok := ejc.mutation.ErrorMessage(); ok {
		_spec.SetField(extractjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := ejc.mutation.ExtractionConfidence(); ok {
		_spec.SetField(extractjob.FieldExtractionConfidence, field.TypeFloat32, value)
		_node.ExtractionConfidence = &value
	}
	if value, ok := ejc.mutation.NeedsReview(); ok {
		_spec.SetField(extractjob.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	if value, ok := ejc.mutation.Method(); ok {
		_spec.SetField(extractjob.FieldMethod, field.TypeString, value)
		_node.Method = &value
	}
	if value, ok := ejc.mutation.RawText(); ok {
		_spec.SetField(extractjob.FieldRawText, field.TypeString, value)
		_node.RawText = &value
	}
	if value, ok := ejc.mutation.ExtractedJSON(); ok {
		_spec.SetField(extractjob.FieldExtractedJSON, field.TypeJSON, value)
		_node.ExtractedJSON = value
	}
	if value, ok := ejc.mutation.ModelName(); ok {
		_spec.SetField(extractjob.FieldModelName, field.TypeString, value)
		_node.ModelName = &value
	}
	if value, ok := ejc.mutation.ModelParams(); ok {
		_spec.SetField(extractjob.FieldModelParams, field.TypeJSON, value)
		_node.ModelParams = value
	}
	if nodes := ejc.mutation.FacilityIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractjob.FacilityTable,
			Columns: []string{extractjob.FacilityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(facility.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.FacilityID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := ejc.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractjob.DocumentTable,
			Columns: []string{extractjob.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sdsdocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DocumentID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExtractJobCreateBulk is the builder for creating many ExtractJob entities in bulk.
type ExtractJobCreateBulk struct {
	config
	err      error
	builders []*ExtractJobCreate
}

// Save creates the ExtractJob entities in the database.
func (ejcb *ExtractJobCreateBulk) Save(ctx context.Context) ([]*ExtractJob, error) {
	if ejcb.err != nil {
		return nil, ejcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ejcb.builders))
	nodes := make([]*ExtractJob, len(ejcb.builders))
	mutators := make([]Mutator, len(ejcb.builders))
	for i := range ejcb.builders {
		func(i int, root context.Context) {
			builder := ejcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractJobMutation)
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
					_, err = mutators[i+1].Mutate(root, ejcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ejcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, ejcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ejcb *ExtractJobCreateBulk) SaveX(ctx context.Context) []*ExtractJob {
	v, err := ejcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ejcb *ExtractJobCreateBulk) Exec(ctx context.Context) error {
	_, err := ejcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ejcb *ExtractJobCreateBulk) ExecX(ctx context.Context) {
	if err := ejcb.Exec(ctx); err != nil {
		panic(err)
	}
}
