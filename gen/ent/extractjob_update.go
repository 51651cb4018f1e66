// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/qrsafety/sds-pipeline/gen/ent/extractjob"
	"github.com/qrsafety/sds-pipeline/gen/ent/facility"
	"github.com/qrsafety/sds-pipeline/gen/ent/predicate"
	"github.com/qrsafety/sds-pipeline/gen/ent/sdsdocument"
)

// ExtractJobUpdate is the builder for updating ExtractJob entities.
type ExtractJobUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractJobMutation
}

// Where appends a list predicates to the ExtractJobUpdate builder.
func (eju *ExtractJobUpdate) Where(ps ...predicate.ExtractJob) *ExtractJobUpdate {
	eju.mutation.Where(ps...)
	return eju
}

// SetFacilityID sets the "facility_id" field.
func (eju *ExtractJobUpdate) SetFacilityID(u uuid.UUID) *ExtractJobUpdate {
	eju.mutation.SetFacilityID(u)
	return eju
}

// SetNillableFacilityID sets the "facility_id" field if the given value is not nil.
func (eju *ExtractJobUpdate) SetNillableFacilityID(u *uuid.UUID) *ExtractJobUpdate {
	if u != nil {
		eju.SetFacilityID(*u)
	}
	return eju
}

// SetDocumentID sets the "document_id" field.
func (eju *ExtractJobUpdate) SetDocumentID(u uuid.UUID) *ExtractJobUpdate {
	eju.mutation.SetDocumentID(u)
	return eju
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (eju *ExtractJobUpdate) SetNillableDocumentID(u *uuid.UUID) *ExtractJobUpdate {
	if u != nil {
		eju.SetDocumentID(*u)
	}
	return eju
}

// ClearDocumentID clears the value of the "document_id" field.
func (eju *ExtractJobUpdate) ClearDocumentID() *ExtractJobUpdate {
	eju.mutation.ClearDocumentID()
	return eju
}

// SetSourceRef sets the "source_ref" field.
func (eju *ExtractJobUpdate) SetSourceRef(s string) *ExtractJobUpdate {
	eju.mutation.SetSourceRef(s)
	return eju
}

// SetNillableSourceRef sets the "source_ref" field if the given value is not nil.
func (eju *ExtractJobUpdate) SetNillableSourceRef(s *string) *ExtractJobUpdate {
	if s != nil {
		eju.SetSourceRef(*s)
	}
	return eju
}

// SetFormat sets the "format" field.
func (eju *ExtractJobUpdate) SetFormat(s string) *ExtractJobUpdate {
	eju.mutation.SetFormat(s)
	return eju
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (eju *ExtractJobUpdate) SetNillableFormat(s *string) *ExtractJobUpdate {
	if s != nil {
		eju.SetFormat(*s)
	}
	return eju
}

// SetStartedAt sets the "started_at" field.
func (eju *ExtractJobUpdate) SetStartedAt(t time.Time) *ExtractJobUpdate {
	eju.mutation.SetStartedAt(t)
	return eju
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (eju *ExtractJobUpdate) SetNillableStartedAt(t *time.Time) *ExtractJobUpdate {
	if t != nil {
		eju.SetStartedAt(*t)
	}
	return eju
}

// SetFinishedAt sets the "finished_at" field.
func (eju *ExtractJobUpdate) SetFinishedAt(t time.Time) *ExtractJobUpdate {
	eju.mutation.SetFinishedAt(t)
	return eju
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (eju *ExtractJobUpdate) SetNillableFinishedAt(t *time.Time) *ExtractJobUpdate {
	if t != nil {
		eju.SetFinishedAt(*t)
	}
	return eju
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (eju *ExtractJobUpdate) ClearFinishedAt() *ExtractJobUpdate {
	eju.mutation.ClearFinishedAt()
	return eju
}

// SetStatus sets the "status" field.
func (eju *ExtractJobUpdate) SetStatus(s string) *ExtractJobUpdate {
	eju.mutation.SetStatus(s)
	return eju
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (eju *ExtractJobUpdate) SetNillableStatus(s *string) *ExtractJobUpdate {
	if s != nil {
		eju.SetStatus(*s)
	}
	return eju
}

// ClearStatus clears the value of the "status" field.
func (eju *ExtractJobUpdate) ClearStatus() *ExtractJobUpdate {
	eju.mutation.ClearStatus()
	return eju
}

// SetErrorMessage sets the "error_message" field.
func (eju *ExtractJobUpdate) SetErrorMessage(s string) *ExtractJobUpdate {
	eju.mutation.SetErrorMessage(s)
	return eju
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (eju *ExtractJobUpdate) SetNillableErrorMessage(s *string) *ExtractJobUpdate {
	if s != nil {
		eju.SetErrorMessage(*s)
	}
	return eju
}

// ClearErrorMessage clears the value of the "error_message" field.
func (eju *ExtractJobUpdate) ClearErrorMessage() *ExtractJobUpdate {
	eju.mutation.ClearErrorMessage()
	return eju
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (eju *ExtractJobUpdate) SetExtractionConfidence(f float32) *ExtractJobUpdate {
	eju.mutation.ResetExtractionConfidence()
	eju.mutation.SetExtractionConfidence(f)
	return eju
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (eju *ExtractJobUpdate) SetNillableExtractionConfidence(f *float32) *ExtractJobUpdate {
	if f != nil {
		eju.SetExtractionConfidence(*f)
	}
	return eju
}

// AddExtractionConfidence adds f to the "extraction_confidence" field.
func (eju *ExtractJobUpdate) AddExtractionConfidence(f float32) *ExtractJobUpdate {
	eju.mutation.AddExtractionConfidence(f)
	return eju
}

// ClearExtractionConfidence clears the value of the "extraction_confidence" field.
func (eju *ExtractJobUpdate) ClearExtractionConfidence() *ExtractJobUpdate {
	eju.mutation.ClearExtractionConfidence()
	return eju
}

// SetNeedsReview sets the "needs_review" field.
func (eju *ExtractJobUpdate) SetNeedsReview(b bool) *ExtractJobUpdate {
	eju.mutation.SetNeedsReview(b)
	return eju
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (eju *ExtractJobUpdate) SetNillableNeedsReview(b *bool) *ExtractJobUpdate {
	if b != nil {
		eju.SetNeedsReview(*b)
	}
	return eju
}

// SetMethod sets the "method" field.
func (eju *ExtractJobUpdate) SetMethod(s string) *ExtractJobUpdate {
	eju.mutation.SetMethod(s)
	return eju
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (eju *ExtractJobUpdate) SetNillableMethod(s *string) *ExtractJobUpdate {
	if s != nil {
		eju.SetMethod(*s)
	}
	return eju
}

// ClearMethod clears the value of the "method" field.
func (eju *ExtractJobUpdate) ClearMethod() *ExtractJobUpdate {
	eju.mutation.ClearMethod()
	return eju
}

// SetRawText sets the "raw_text" field.
func (eju *ExtractJobUpdate) SetRawText(s string) *ExtractJobUpdate {
	eju.mutation.SetRawText(s)
	return eju
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (eju *ExtractJobUpdate) SetNillableRawText(s *string) *ExtractJobUpdate {
	if s != nil {
		eju.SetRawText(*s)
	}
	return eju
}

// ClearRawText clears the value of the "raw_text" field.
func (eju *ExtractJobUpdate) ClearRawText() *ExtractJobUpdate {
	eju.mutation.ClearRawText()
	return eju
}

// SetExtractedJSON sets the "extracted_json" field.
func (eju *ExtractJobUpdate) SetExtractedJSON(jm json.RawMessage) *ExtractJobUpdate {
	eju.mutation.SetExtractedJSON(jm)
	return eju
}

// AppendExtractedJSON appends jm to the "extracted_json" field.
func (eju *ExtractJobUpdate) AppendExtractedJSON(jm json.RawMessage) *ExtractJobUpdate {
	eju.mutation.AppendExtractedJSON(jm)
	return eju
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (eju *ExtractJobUpdate) ClearExtractedJSON() *ExtractJobUpdate {
	eju.mutation.ClearExtractedJSON()
	return eju
}

// SetModelName sets the "model_name" field.
func (eju *ExtractJobUpdate) SetModelName(s string) *ExtractJobUpdate {
	eju.mutation.SetModelName(s)
	return eju
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (eju *ExtractJobUpdate) SetNillableModelName(s *string) *ExtractJobUpdate {
	if s != nil {
		eju.SetModelName(*s)
	}
	return eju
}

// ClearModelName clears the value of the "model_name" field.
func (eju *ExtractJobUpdate) ClearModelName() *ExtractJobUpdate {
	eju.mutation.ClearModelName()
	return eju
}

// SetModelParams sets the "model_params" field.
func (eju *ExtractJobUpdate) SetModelParams(jm json.RawMessage) *ExtractJobUpdate {
	eju.mutation.SetModelParams(jm)
	return eju
}

// AppendModelParams appends jm to the "model_params" field.
func (eju *ExtractJobUpdate) AppendModelParams(jm json.RawMessage) *ExtractJobUpdate {
	eju.mutation.AppendModelParams(jm)
	return eju
}

// ClearModelParams clears the value of the "model_params" field.
func (eju *ExtractJobUpdate) ClearModelParams() *ExtractJobUpdate {
	eju.mutation.ClearModelParams()
	return eju
}

// SetFacility sets the "facility" edge to the Facility entity.
func (eju *ExtractJobUpdate) SetFacility(f *Facility) *ExtractJobUpdate {
	return eju.SetFacilityID(f.ID)
}

// SetDocument sets the "document" edge to the SDSDocument entity.
func (eju *ExtractJobUpdate) SetDocument(s *SDSDocument) *ExtractJobUpdate {
	return eju.SetDocumentID(s.ID)
}

// Mutation returns the ExtractJobMutation object of the builder.
func (eju *ExtractJobUpdate) Mutation() *ExtractJobMutation {
	return eju.mutation
}

// ClearFacility clears the "facility" edge to the Facility entity.
func (eju *ExtractJobUpdate) ClearFacility() *ExtractJobUpdate {
	eju.mutation.ClearFacility()
	return eju
}

// ClearDocument clears the "document" edge to the SDSDocument entity.
func (eju *ExtractJobUpdate) ClearDocument() *ExtractJobUpdate {
	eju.mutation.ClearDocument()
	return eju
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (eju *ExtractJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, eju.sqlSave, eju.mutation, eju.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (eju *ExtractJobUpdate) SaveX(ctx context.Context) int {
	affected, err := eju.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (eju *ExtractJobUpdate) Exec(ctx context.Context) error {
	_, err := eju.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (eju *ExtractJobUpdate) ExecX(ctx context.Context) {
	if err := eju.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (eju *ExtractJobUpdate) check() error {
	if v, ok := eju.mutation.SourceRef(); ok {
		if err := extractjob.SourceRefValidator(v); err != nil {
			return &ValidationError{Name: "source_ref", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.source_ref": %w`, err)}
		}
	}
	if v, ok := eju.mutation.Format(); ok {
		if err := extractjob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.format": %w`, err)}
		}
	}
	if v, ok := eju.mutation.Status(); ok {
		if err := extractjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.status": %w`, err)}
		}
	}
	if eju.mutation.FacilityCleared() && len(eju.mutation.FacilityIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractJob.facility"`)
	}
	return nil
}

func (eju *ExtractJobUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := eju.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractjob.Table, extractjob.Columns, sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID))
	if ps := eju.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := eju.mutation.SourceRef(); ok {
		_spec.SetField(extractjob.FieldSourceRef, field.TypeString, value)
	}
	if value, ok := eju.mutation.Format(); ok {
		_spec.SetField(extractjob.FieldFormat, field.TypeString, value)
	}
	if value, ok := eju.mutation.StartedAt(); ok {
		_spec.SetField(extractjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := eju.mutation.FinishedAt(); ok {
		_spec.SetField(extractjob.FieldFinishedAt, field.TypeTime, value)
	}
	if eju.mutation.FinishedAtCleared() {
		_spec.ClearField(extractjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := eju.mutation.Status(); ok {
		_spec.SetField(extractjob.FieldStatus, field.TypeString, value)
	}
	if eju.mutation.StatusCleared() {
		_spec.ClearField(extractjob.FieldStatus, field.TypeString)
	}
	if value, ok := eju.mutation.ErrorMessage(); ok {
		_spec.SetField(extractjob.FieldErrorMessage, field.TypeString, value)
	}
	if eju.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := eju.mutation.ExtractionConfidence(); ok {
		_spec.SetField(extractjob.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if value, ok := eju.mutation.AddedExtractionConfidence(); ok {
		_spec.AddField(extractjob.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if eju.mutation.ExtractionConfidenceCleared() {
		_spec.ClearField(extractjob.FieldExtractionConfidence, field.TypeFloat32)
	}
	if value, ok := eju.mutation.NeedsReview(); ok {
		_spec.SetField(extractjob.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := eju.mutation.Method(); ok {
		_spec.SetField(extractjob.FieldMethod, field.TypeString, value)
	}
	if eju.mutation.MethodCleared() {
		_spec.ClearField(extractjob.FieldMethod, field.TypeString)
	}
	if value, ok := eju.mutation.RawText(); ok {
		_spec.SetField(extractjob.FieldRawText, field.TypeString, value)
	}
	if eju.mutation.RawTextCleared() {
		_spec.ClearField(extractjob.FieldRawText, field.TypeString)
	}
	if value, ok := eju.mutation.ExtractedJSON(); ok {
		_spec.SetField(extractjob.FieldExtractedJSON, field.TypeJSON, value)
	}
	if value, ok := eju.mutation.AppendedExtractedJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractjob.FieldExtractedJSON, value)
		})
	}
	if eju.mutation.ExtractedJSONCleared() {
		_spec.ClearField(extractjob.FieldExtractedJSON, field.TypeJSON)
	}
	if value, ok := eju.mutation.ModelName(); ok {
		_spec.SetField(extractjob.FieldModelName, field.TypeString, value)
	}
	if eju.mutation.ModelNameCleared() {
		_spec.ClearField(extractjob.FieldModelName, field.TypeString)
	}
	if value, ok := eju.mutation.ModelParams(); ok {
		_spec.SetField(extractjob.FieldModelParams, field.TypeJSON, value)
	}
	if value, ok := eju.mutation.AppendedModelParams(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractjob.FieldModelParams, value)
		})
	}
	if eju.mutation.ModelParamsCleared() {
		_spec.ClearField(extractjob.FieldModelParams, field.TypeJSON)
	}
	if eju.mutation.FacilityCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := eju.mutation.FacilityIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if eju.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := eju.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, eju.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	eju.mutation.done = true
	return n, nil
}

// ExtractJobUpdateOne is the builder for updating a single ExtractJob entity.
type ExtractJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractJobMutation
}

// SetFacilityID sets the "facility_id" field.
func (ejuo *ExtractJobUpdateOne) SetFacilityID(u uuid.UUID) *ExtractJobUpdateOne {
	ejuo.mutation.SetFacilityID(u)
	return ejuo
}

// SetNillableFacilityID sets the "facility_id" field if the given value is not nil.
func (ejuo *ExtractJobUpdateOne) SetNillableFacilityID(u *uuid.UUID) *ExtractJobUpdateOne {
	if u != nil {
		ejuo.SetFacilityID(*u)
	}
	return ejuo
}

// SetDocumentID sets the "document_id" field.
func (ejuo *ExtractJobUpdateOne) SetDocumentID(u uuid.UUID) *ExtractJobUpdateOne {
	ejuo.mutation.SetDocumentID(u)
	return ejuo
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (ejuo *ExtractJobUpdateOne) SetNillableDocumentID(u *uuid.UUID) *ExtractJobUpdateOne {
	if u != nil {
		ejuo.SetDocumentID(*u)
	}
	return ejuo
}

// ClearDocumentID clears the value of the "document_id" field.
func (ejuo *ExtractJobUpdateOne) ClearDocumentID() *ExtractJobUpdateOne {
	ejuo.mutation.ClearDocumentID()
	return ejuo
}

// SetSourceRef sets the "source_ref" field.
func (ejuo *ExtractJobUpdateOne) SetSourceRef(s string) *ExtractJobUpdateOne {
	ejuo.mutation.SetSourceRef(s)
	return ejuo
}

// SetNillableSourceRef sets the "source_ref" field if the given value is not nil.
func (ejuo *ExtractJobUpdateOne) SetNillableSourceRef(s *string) *ExtractJobUpdateOne {
	if s != nil {
		ejuo.SetSourceRef(*s)
	}
	return ejuo
}

// SetFormat sets the "format" field.
func (ejuo *ExtractJobUpdateOne) SetFormat(s string) *ExtractJobUpdateOne {
	ejuo.mutation.SetFormat(s)
	return ejuo
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (ejuo *ExtractJobUpdateOne) SetNillableFormat(s *string) *ExtractJobUpdateOne {
	if s != nil {
		ejuo.SetFormat(*s)
	}
	return ejuo
}

// SetStartedAt sets the "started_at" field.
func (ejuo *ExtractJobUpdateOne) SetStartedAt(t time.Time) *ExtractJobUpdateOne {
	ejuo.mutation.SetStartedAt(t)
	return ejuo
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (ejuo *ExtractJobUpdateOne) SetNillableStartedAt(t *time.Time) *ExtractJobUpdateOne {
	if t != nil {
		ejuo.SetStartedAt(*t)
	}
	return ejuo
}

// SetFinishedAt sets the "finished_at" field.
func (ejuo *ExtractJobUpdateOne) SetFinishedAt(t time.Time) *ExtractJobUpdateOne {
	ejuo.mutation.SetFinishedAt(t)
	return ejuo
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (ejuo *ExtractJobUpdateOne) SetNillableFinishedAt(t *time.Time) *ExtractJobUpdateOne {
	if t != nil {
		ejuo.SetFinishedAt(*t)
	}
	return ejuo
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (ejuo *ExtractJobUpdateOne) ClearFinishedAt() *ExtractJobUpdateOne {
	ejuo.mutation.ClearFinishedAt()
	return ejuo
}

// SetStatus sets the "status" field.
func (ejuo *ExtractJobUpdateOne) SetStatus(s string) *ExtractJobUpdateOne {
	ejuo.mutation.SetStatus(s)
	return ejuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ejuo *ExtractJobUpdateOne) SetNillableStatus(s *string) *ExtractJobUpdateOne {
	if s != nil {
		ejuo.SetStatus(*s)
	}
	return ejuo
}

// ClearStatus clears the value of the "status" field.
func (ejuo *ExtractJobUpdateOne) ClearStatus() *ExtractJobUpdateOne {
	ejuo.mutation.ClearStatus()
	return ejuo
}

// SetErrorMessage sets the "error_message" field.
func (ejuo *ExtractJobUpdateOne) SetErrorMessage(s string) *ExtractJobUpdateOne {
	ejuo.mutation.SetErrorMessage(s)
	return ejuo
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (ejuo *ExtractJobUpdateOne) SetNillableErrorMessage(s *string) *ExtractJobUpdateOne {
	if s != nil {
		ejuo.SetErrorMessage(*s)
	}
	return ejuo
}

// ClearErrorMessage clears the value of the "error_message" field.
func (ejuo *ExtractJobUpdateOne) ClearErrorMessage() *ExtractJobUpdateOne {
	ejuo.mutation.ClearErrorMessage()
	return ejuo
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (ejuo *ExtractJobUpdateOne) SetExtractionConfidence(f float32) *ExtractJobUpdateOne {
	ejuo.mutation.ResetExtractionConfidence()
	ejuo.mutation.SetExtractionConfidence(f)
	return ejuo
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (ejuo *ExtractJobUpdateOne) SetNillableExtractionConfidence(f *float32) *ExtractJobUpdateOne {
	if f != nil {
		ejuo.SetExtractionConfidence(*f)
	}
	return ejuo
}

// AddExtractionConfidence adds f to the "extraction_confidence" field.
func (ejuo *ExtractJobUpdateOne) AddExtractionConfidence(f float32) *ExtractJobUpdateOne {
	ejuo.mutation.AddExtractionConfidence(f)
	return ejuo
}

// ClearExtractionConfidence clears the value of the "extraction_confidence" field.
func (ejuo *ExtractJobUpdateOne) ClearExtractionConfidence() *ExtractJobUpdateOne {
	ejuo.mutation.ClearExtractionConfidence()
	return ejuo
}

// SetNeedsReview sets the "needs_review" field.
func (ejuo *ExtractJobUpdateOne) SetNeedsReview(b bool) *ExtractJobUpdateOne {
	ejuo.mutation.SetNeedsReview(b)
	return ejuo
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (ejuo *ExtractJobUpdateOne) SetNillableNeedsReview(b *bool) *ExtractJobUpdateOne {
	if b != nil {
		ejuo.SetNeedsReview(*b)
	}
	return ejuo
}

// SetMethod sets the "method" field.
func (ejuo *ExtractJobUpdateOne) SetMethod(s string) *ExtractJobUpdateOne {
	ejuo.mutation.SetMethod(s)
	return ejuo
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (ejuo *ExtractJobUpdateOne) SetNillableMethod(s *string) *ExtractJobUpdateOne {
	if s != nil {
		ejuo.SetMethod(*s)
	}
	return ejuo
}

// ClearMethod clears the value of the "method" field.
func (ejuo *ExtractJobUpdateOne) ClearMethod() *ExtractJobUpdateOne {
	ejuo.mutation.ClearMethod()
	return ejuo
}

// SetRawText sets the "raw_text" field.
func (ejuo *ExtractJobUpdateOne) SetRawText(s string) *ExtractJobUpdateOne {
	ejuo.mutation.SetRawText(s)
	return ejuo
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (ejuo *ExtractJobUpdateOne) SetNillableRawText(s *string) *ExtractJobUpdateOne {
	if s != nil {
		ejuo.SetRawText(*s)
	}
	return ejuo
}

// ClearRawText clears the value of the "raw_text" field.
func (ejuo *ExtractJobUpdateOne) ClearRawText() *ExtractJobUpdateOne {
	ejuo.mutation.ClearRawText()
	return ejuo
}

// SetExtractedJSON sets the "extracted_json" field.
func (ejuo *ExtractJobUpdateOne) SetExtractedJSON(jm json.RawMessage) *ExtractJobUpdateOne {
	ejuo.mutation.SetExtractedJSON(jm)
	return ejuo
}

// AppendExtractedJSON appends jm to the "extracted_json" field.
func (ejuo *ExtractJobUpdateOne) AppendExtractedJSON(jm json.RawMessage) *ExtractJobUpdateOne {
	ejuo.mutation.AppendExtractedJSON(jm)
	return ejuo
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (ejuo *ExtractJobUpdateOne) ClearExtractedJSON() *ExtractJobUpdateOne {
	ejuo.mutation.ClearExtractedJSON()
	return ejuo
}

// SetModelName sets the "model_name" field.
func (ejuo *ExtractJobUpdateOne) SetModelName(s string) *ExtractJobUpdateOne {
	ejuo.mutation.SetModelName(s)
	return ejuo
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (ejuo *ExtractJobUpdateOne) SetNillableModelName(s *string) *ExtractJobUpdateOne {
	if s != nil {
		ejuo.SetModelName(*s)
	}
	return ejuo
}

// ClearModelName clears the value of the "model_name" field.
func (ejuo *ExtractJobUpdateOne) ClearModelName() *ExtractJobUpdateOne {
	ejuo.mutation.ClearModelName()
	return ejuo
}

// SetModelParams sets the "model_params" field.
func (ejuo *ExtractJobUpdateOne) SetModelParams(jm json.RawMessage) *ExtractJobUpdateOne {
	ejuo.mutation.SetModelParams(jm)
	return ejuo
}

// AppendModelParams appends jm to the "model_params" field.
func (ejuo *ExtractJobUpdateOne) AppendModelParams(jm json.RawMessage) *ExtractJobUpdateOne {
	ejuo.mutation.AppendModelParams(jm)
	return ejuo
}

// ClearModelParams clears the value of the "model_params" field.
func (ejuo *ExtractJobUpdateOne) ClearModelParams() *ExtractJobUpdateOne {
	ejuo.mutation.ClearModelParams()
	return ejuo
}

// SetFacility sets the "facility" edge to the Facility entity.
func (ejuo *ExtractJobUpdateOne) SetFacility(f *Facility) *ExtractJobUpdateOne {
	return ejuo.SetFacilityID(f.ID)
}

// SetDocument sets the "document" edge to the SDSDocument entity.
func (ejuo *ExtractJobUpdateOne) SetDocument(s *SDSDocument) *ExtractJobUpdateOne {
	return ejuo.SetDocumentID(s.ID)
}

// Mutation returns the ExtractJobMutation object of the builder.
func (ejuo *ExtractJobUpdateOne) Mutation() *ExtractJobMutation {
	return ejuo.mutation
}

// ClearFacility clears the "facility" edge to the Facility entity.
func (ejuo *ExtractJobUpdateOne) ClearFacility() *ExtractJobUpdateOne {
	ejuo.mutation.ClearFacility()
	return ejuo
}

// ClearDocument clears the "document" edge to the SDSDocument entity.
func (ejuo *ExtractJobUpdateOne) ClearDocument() *ExtractJobUpdateOne {
	ejuo.mutation.ClearDocument()
	return ejuo
}

// Where appends a list predicates to the ExtractJobUpdate builder.
func (ejuo *ExtractJobUpdateOne) Where(ps ...predicate.ExtractJob) *ExtractJobUpdateOne {
	ejuo.mutation.Where(ps...)
	return ejuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ejuo *ExtractJobUpdateOne) Select(field string, fields ...string) *ExtractJobUpdateOne {
	ejuo.fields = append([]string{field}, fields...)
	return ejuo
}

// Save executes the query and returns the updated ExtractJob entity.
func (ejuo *ExtractJobUpdateOne) Save(ctx context.Context) (*ExtractJob, error) {
	return withHooks(ctx, ejuo.sqlSave, ejuo.mutation, ejuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ejuo *ExtractJobUpdateOne) SaveX(ctx context.Context) *ExtractJob {
	node, err := ejuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ejuo *ExtractJobUpdateOne) Exec(ctx context.Context) error {
	_, err := ejuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ejuo *ExtractJobUpdateOne) ExecX(ctx context.Context) {
	if err := ejuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ejuo *ExtractJobUpdateOne) check() error {
	if v, ok := ejuo.mutation.SourceRef(); ok {
		if err := extractjob.SourceRefValidator(v); err != nil {
			return &ValidationError{Name: "source_ref", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.source_ref": %w`, err)}
		}
	}
	if v, ok := ejuo.mutation.Format(); ok {
		if err := extractjob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.format": %w`, err)}
		}
	}
	if v, ok := ejuo.mutation.Status(); ok {
		if err := extractjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.status": %w`, err)}
		}
	}
	if ejuo.mutation.FacilityCleared() && len(ejuo.mutation.FacilityIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractJob.facility"`)
	}
	return nil
}

func (ejuo *ExtractJobUpdateOne) sqlSave(ctx context.Context) (_node *ExtractJob, err error) {
	if err := ejuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractjob.Table, extractjob.Columns, sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID))
	id, ok := ejuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ejuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractjob.FieldID)
		for _, f := range fields {
			if !extractjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractjob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ejuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ejuo.mutation.SourceRef(); ok {
		_spec.SetField(extractjob.FieldSourceRef, field.TypeString, value)
	}
	if value, ok := ejuo.mutation.Format(); ok {
		_spec.SetField(extractjob.FieldFormat, field.TypeString, value)
	}
	if value, ok := ejuo.mutation.StartedAt(); ok {
		_spec.SetField(extractjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := ejuo.mutation.FinishedAt(); ok {
		_spec.SetField(extractjob.FieldFinishedAt, field.TypeTime, value)
	}
	if ejuo.mutation.FinishedAtCleared() {
		_spec.ClearField(extractjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := ejuo.mutation.Status(); ok {
		_spec.SetField(extractjob.FieldStatus, field.TypeString, value)
	}
	if ejuo.mutation.StatusCleared() {
		_spec.ClearField(extractjob.FieldStatus, field.TypeString)
	}
	if value, ok := ejuo.mutation.ErrorMessage(); ok {
		_spec.SetField(extractjob.FieldErrorMessage, field.TypeString, value)
	}
	if ejuo.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := ejuo.mutation.ExtractionConfidence(); ok {
		_spec.SetField(extractjob.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if value, ok := ejuo.mutation.AddedExtractionConfidence(); ok {
		_spec.AddField(extractjob.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if ejuo.mutation.ExtractionConfidenceCleared() {
		_spec.ClearField(extractjob.FieldExtractionConfidence, field.TypeFloat32)
	}
	if value, ok := ejuo.mutation.NeedsReview(); ok {
		_spec.SetField(extractjob.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := ejuo.mutation.Method(); ok {
		_spec.SetField(extractjob.FieldMethod, field.TypeString, value)
	}
	if ejuo.mutation.MethodCleared() {
		_spec.ClearField(extractjob.FieldMethod, field.TypeString)
	}
	if value, ok := ejuo.mutation.RawText(); ok {
		_spec.SetField(extractjob.FieldRawText, field.TypeString, value)
	}
	if ejuo.mutation.RawTextCleared() {
		_spec.ClearField(extractjob.FieldRawText, field.TypeString)
	}
	if value, ok := ejuo.mutation.ExtractedJSON(); ok {
		_spec.SetField(extractjob.FieldExtractedJSON, field.TypeJSON, value)
	}
	if value, ok := ejuo.mutation.AppendedExtractedJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractjob.FieldExtractedJSON, value)
		})
	}
	if ejuo.mutation.ExtractedJSONCleared() {
		_spec.ClearField(extractjob.FieldExtractedJSON, field.TypeJSON)
	}
	if value, ok := ejuo.mutation.ModelName(); ok {
		_spec.SetField(extractjob.FieldModelName, field.TypeString, value)
	}
	if ejuo.mutation.ModelNameCleared() {
		_spec.ClearField(extractjob.FieldModelName, field.TypeString)
	}
	if value, ok := ejuo.mutation.ModelParams(); ok {
		_spec.SetField(extractjob.FieldModelParams, field.TypeJSON, value)
	}
	if value, ok := ejuo.mutation.AppendedModelParams(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractjob.FieldModelParams, value)
		})
	}
	if ejuo.mutation.ModelParamsCleared() {
		_spec.ClearField(extractjob.FieldModelParams, field.TypeJSON)
	}
	if ejuo.mutation.FacilityCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ejuo.mutation.FacilityIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if ejuo.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ejuo.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExtractJob{config: ejuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ejuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ejuo.mutation.done = true
	return _node, nil
}
