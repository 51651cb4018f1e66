// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/qrsafety/sds-pipeline/gen/ent/extractjob"
	"github.com/qrsafety/sds-pipeline/gen/ent/facility"
	"github.com/qrsafety/sds-pipeline/gen/ent/predicate"
	"github.com/qrsafety/sds-pipeline/gen/ent/sdsdocument"
	"github.com/qrsafety/sds-pipeline/internal/entity"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeExtractJob  = "ExtractJob"
	TypeFacility    = "Facility"
	TypeSDSDocument = "SDSDocument"
)

// ExtractJobMutation represents an operation that mutates the ExtractJob nodes in the graph.
type ExtractJobMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	source_ref               *string
	format                   *string
	started_at               *time.Time
	finished_at              *time.Time
	status                   *string
	error_message            *string
	extraction_confidence    *float32
	addextraction_confidence *float32
	needs_review             *bool
	method                   *string
	raw_text                 *string
	extracted_json           *json.RawMessage
	appendextracted_json     json.RawMessage
	model_name               *string
	model_params             *json.RawMessage
	appendmodel_params       json.RawMessage
	clearedFields            map[string]struct{}
	facility                 *uuid.UUID
	clearedfacility          bool
	document                 *uuid.UUID
	cleareddocument          bool
	done                     bool
	oldValue                 func(context.Context) (*ExtractJob, error)
	predicates               []predicate.ExtractJob
}

var _ ent.Mutation = (*ExtractJobMutation)(nil)

// extractjobOption allows management of the mutation configuration using functional options.
type extractjobOption func(*ExtractJobMutation)

// newExtractJobMutation creates new mutation for the ExtractJob entity.
func newExtractJobMutation(c config, op Op, opts ...extractjobOption) *ExtractJobMutation {
	m := &ExtractJobMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractJobID sets the ID field of the mutation.
func withExtractJobID(id uuid.UUID) extractjobOption {
	return func(m *ExtractJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractJob
		)
		m.oldValue = func(ctx context.Context) (*ExtractJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractJob sets the old ExtractJob of the mutation.
func withExtractJob(node *ExtractJob) extractjobOption {
	return func(m *ExtractJobMutation) {
		m.oldValue = func(context.Context) (*ExtractJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractJob entities.
func (m *ExtractJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFacilityID sets the "facility_id" field.
func (m *ExtractJobMutation) SetFacilityID(u uuid.UUID) {
	m.facility = &u
}

// FacilityID returns the value of the "facility_id" field in the mutation.
func (m *ExtractJobMutation) FacilityID() (r uuid.UUID, exists bool) {
	v := m.facility
	if v == nil {
		return
	}
	return *v, true
}

// OldFacilityID returns the old "facility_id" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldFacilityID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFacilityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFacilityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFacilityID: %w", err)
	}
	return oldValue.FacilityID, nil
}

// ResetFacilityID resets all changes to the "facility_id" field.
func (m *ExtractJobMutation) ResetFacilityID() {
	m.facility = nil
}

// SetDocumentID sets the "document_id" field.
func (m *ExtractJobMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ExtractJobMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldDocumentID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ClearDocumentID clears the value of the "document_id" field.
func (m *ExtractJobMutation) ClearDocumentID() {
	m.document = nil
	m.clearedFields[extractjob.FieldDocumentID] = struct{}{}
}

// DocumentIDCleared returns if the "document_id" field was cleared in this mutation.
func (m *ExtractJobMutation) DocumentIDCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldDocumentID]
	return ok
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ExtractJobMutation) ResetDocumentID() {
	m.document = nil
	delete(m.clearedFields, extractjob.FieldDocumentID)
}

// SetSourceRef sets the "source_ref" field.
func (m *ExtractJobMutation) SetSourceRef(s string) {
	m.source_ref = &s
}

// SourceRef returns the value of the "source_ref" field in the mutation.
func (m *ExtractJobMutation) SourceRef() (r string, exists bool) {
	v := m.source_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceRef returns the old "source_ref" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldSourceRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceRef: %w", err)
	}
	return oldValue.SourceRef, nil
}

// ResetSourceRef resets all changes to the "source_ref" field.
func (m *ExtractJobMutation) ResetSourceRef() {
	m.source_ref = nil
}

// SetFormat sets the "format" field.
func (m *ExtractJobMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *ExtractJobMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *ExtractJobMutation) ResetFormat() {
	m.format = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ExtractJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExtractJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExtractJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ExtractJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ExtractJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ExtractJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[extractjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ExtractJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ExtractJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, extractjob.FieldFinishedAt)
}

// SetStatus sets the "status" field.
func (m *ExtractJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ExtractJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ClearStatus clears the value of the "status" field.
func (m *ExtractJobMutation) ClearStatus() {
	m.status = nil
	m.clearedFields[extractjob.FieldStatus] = struct{}{}
}

// StatusCleared returns if the "status" field was cleared in this mutation.
func (m *ExtractJobMutation) StatusCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldStatus]
	return ok
}

// ResetStatus resets all changes to the "status" field.
func (m *ExtractJobMutation) ResetStatus() {
	m.status = nil
	delete(m.clearedFields, extractjob.FieldStatus)
}

// SetErrorMessage sets the "error_message" field.
func (m *ExtractJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExtractJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExtractJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[extractjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExtractJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExtractJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, extractjob.FieldErrorMessage)
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (m *ExtractJobMutation) SetExtractionConfidence(f float32) {
	m.extraction_confidence = &f
	m.addextraction_confidence = nil
}

// ExtractionConfidence returns the value of the "extraction_confidence" field in the mutation.
func (m *ExtractJobMutation) ExtractionConfidence() (r float32, exists bool) {
	v := m.extraction_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionConfidence returns the old "extraction_confidence" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldExtractionConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionConfidence: %w", err)
	}
	return oldValue.ExtractionConfidence, nil
}

// AddExtractionConfidence adds f to the "extraction_confidence" field.
func (m *ExtractJobMutation) AddExtractionConfidence(f float32) {
	if m.addextraction_confidence != nil {
		*m.addextraction_confidence += f
	} else {
		m.addextraction_confidence = &f
	}
}

// AddedExtractionConfidence returns the value that was added to the "extraction_confidence" field in this mutation.
func (m *ExtractJobMutation) AddedExtractionConfidence() (r float32, exists bool) {
	v := m.addextraction_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearExtractionConfidence clears the value of the "extraction_confidence" field.
func (m *ExtractJobMutation) ClearExtractionConfidence() {
	m.extraction_confidence = nil
	m.addextraction_confidence = nil
	m.clearedFields[extractjob.FieldExtractionConfidence] = struct{}{}
}

// ExtractionConfidenceCleared returns if the "extraction_confidence" field was cleared in this mutation.
func (m *ExtractJobMutation) ExtractionConfidenceCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldExtractionConfidence]
	return ok
}

// ResetExtractionConfidence resets all changes to the "extraction_confidence" field.
func (m *ExtractJobMutation) ResetExtractionConfidence() {
	m.extraction_confidence = nil
	m.addextraction_confidence = nil
	delete(m.clearedFields, extractjob.FieldExtractionConfidence)
}

// SetNeedsReview sets the "needs_review" field.
func (m *ExtractJobMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *ExtractJobMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *ExtractJobMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetMethod sets the "method" field.
func (m *ExtractJobMutation) SetMethod(s string) {
	m.method = &s
}

// Method returns the value of the "method" field in the mutation.
func (m *ExtractJobMutation) Method() (r string, exists bool) {
	v := m.method
	if v == nil {
		return
	}
	return *v, true
}

// OldMethod returns the old "method" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldMethod(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMethod: %w", err)
	}
	return oldValue.Method, nil
}

// ClearMethod clears the value of the "method" field.
func (m *ExtractJobMutation) ClearMethod() {
	m.method = nil
	m.clearedFields[extractjob.FieldMethod] = struct{}{}
}

// MethodCleared returns if the "method" field was cleared in this mutation.
func (m *ExtractJobMutation) MethodCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldMethod]
	return ok
}

// ResetMethod resets all changes to the "method" field.
func (m *ExtractJobMutation) ResetMethod() {
	m.method = nil
	delete(m.clearedFields, extractjob.FieldMethod)
}

// SetRawText sets the "raw_text" field.
func (m *ExtractJobMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *ExtractJobMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldRawText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ClearRawText clears the value of the "raw_text" field.
func (m *ExtractJobMutation) ClearRawText() {
	m.raw_text = nil
	m.clearedFields[extractjob.FieldRawText] = struct{}{}
}

// RawTextCleared returns if the "raw_text" field was cleared in this mutation.
func (m *ExtractJobMutation) RawTextCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldRawText]
	return ok
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *ExtractJobMutation) ResetRawText() {
	m.raw_text = nil
	delete(m.clearedFields, extractjob.FieldRawText)
}

// SetExtractedJSON sets the "extracted_json" field.
func (m *ExtractJobMutation) SetExtractedJSON(jm json.RawMessage) {
	m.extracted_json = &jm
	m.appendextracted_json = nil
}

// ExtractedJSON returns the value of the "extracted_json" field in the mutation.
func (m *ExtractJobMutation) ExtractedJSON() (r json.RawMessage, exists bool) {
	v := m.extracted_json
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedJSON returns the old "extracted_json" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldExtractedJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedJSON: %w", err)
	}
	return oldValue.ExtractedJSON, nil
}

// AppendExtractedJSON adds jm to the "extracted_json" field.
func (m *ExtractJobMutation) AppendExtractedJSON(jm json.RawMessage) {
	m.appendextracted_json = append(m.appendextracted_json, jm...)
}

// AppendedExtractedJSON returns the list of values that were appended to the "extracted_json" field in this mutation.
func (m *ExtractJobMutation) AppendedExtractedJSON() (json.RawMessage, bool) {
	if len(m.appendextracted_json) == 0 {
		return nil, false
	}
	return m.appendextracted_json, true
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (m *ExtractJobMutation) ClearExtractedJSON() {
	m.extracted_json = nil
	m.appendextracted_json = nil
	m.clearedFields[extractjob.FieldExtractedJSON] = struct{}{}
}

// ExtractedJSONCleared returns if the "extracted_json" field was cleared in this mutation.
func (m *ExtractJobMutation) ExtractedJSONCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldExtractedJSON]
	return ok
}

// ResetExtractedJSON resets all changes to the "extracted_json" field.
func (m *ExtractJobMutation) ResetExtractedJSON() {
	m.extracted_json = nil
	m.appendextracted_json = nil
	delete(m.clearedFields, extractjob.FieldExtractedJSON)
}

// SetModelName sets the "model_name" field.
func (m *ExtractJobMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *ExtractJobMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldModelName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ClearModelName clears the value of the "model_name" field.
func (m *ExtractJobMutation) ClearModelName() {
	m.model_name = nil
	m.clearedFields[extractjob.FieldModelName] = struct{}{}
}

// ModelNameCleared returns if the "model_name" field was cleared in this mutation.
func (m *ExtractJobMutation) ModelNameCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldModelName]
	return ok
}

// ResetModelName resets all changes to the "model_name" field.
func (m *ExtractJobMutation) ResetModelName() {
	m.model_name = nil
	delete(m.clearedFields, extractjob.FieldModelName)
}

// SetModelParams sets the "model_params" field.
func (m *ExtractJobMutation) SetModelParams(jm json.RawMessage) {
	m.model_params = &jm
	m.appendmodel_params = nil
}

// ModelParams returns the value of the "model_params" field in the mutation.
func (m *ExtractJobMutation) ModelParams() (r json.RawMessage, exists bool) {
	v := m.model_params
	if v == nil {
		return
	}
	return *v, true
}

// OldModelParams returns the old "model_params" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldModelParams(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelParams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelParams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelParams: %w", err)
	}
	return oldValue.ModelParams, nil
}

// AppendModelParams adds jm to the "model_params" field.
func (m *ExtractJobMutation) AppendModelParams(jm json.RawMessage) {
	m.appendmodel_params = append(m.appendmodel_params, jm...)
}

// AppendedModelParams returns the list of values that were appended to the "model_params" field in this mutation.
func (m *ExtractJobMutation) AppendedModelParams() (json.RawMessage, bool) {
	if len(m.appendmodel_params) == 0 {
		return nil, false
	}
	return m.appendmodel_params, true
}

// ClearModelParams clears the value of the "model_params" field.
func (m *ExtractJobMutation) ClearModelParams() {
	m.model_params = nil
	m.appendmodel_params = nil
	m.clearedFields[extractjob.FieldModelParams] = struct{}{}
}

// ModelParamsCleared returns if the "model_params" field was cleared in this mutation.
func (m *ExtractJobMutation) ModelParamsCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldModelParams]
	return ok
}

// ResetModelParams resets all changes to the "model_params" field.
func (m *ExtractJobMutation) ResetModelParams() {
	m.model_params = nil
	m.appendmodel_params = nil
	delete(m.clearedFields, extractjob.FieldModelParams)
}

// ClearFacility clears the "facility" edge to the Facility entity.
func (m *ExtractJobMutation) ClearFacility() {
	m.clearedfacility = true
	m.clearedFields[extractjob.FieldFacilityID] = struct{}{}
}

// FacilityCleared reports if the "facility" edge to the Facility entity was cleared.
func (m *ExtractJobMutation) FacilityCleared() bool {
	return m.clearedfacility
}

// FacilityIDs returns the "facility" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FacilityID instead. It exists only for internal usage by the builders.
func (m *ExtractJobMutation) FacilityIDs() (ids []uuid.UUID) {
	if id := m.facility; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFacility resets all changes to the "facility" edge.
func (m *ExtractJobMutation) ResetFacility() {
	m.facility = nil
	m.clearedfacility = false
}

// ClearDocument clears the "document" edge to the SDSDocument entity.
func (m *ExtractJobMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[extractjob.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the SDSDocument entity was cleared.
func (m *ExtractJobMutation) DocumentCleared() bool {
	return m.DocumentIDCleared() || m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *ExtractJobMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *ExtractJobMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the ExtractJobMutation builder.
func (m *ExtractJobMutation) Where(ps ...predicate.ExtractJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractJob).
func (m *ExtractJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractJobMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.facility != nil {
		fields = append(fields, extractjob.FieldFacilityID)
	}
	if m.document != nil {
		fields = append(fields, extractjob.FieldDocumentID)
	}
	if m.source_ref != nil {
		fields = append(fields, extractjob.FieldSourceRef)
	}
	if m.format != nil {
		fields = append(fields, extractjob.FieldFormat)
	}
	if m.started_at != nil {
		fields = append(fields, extractjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, extractjob.FieldFinishedAt)
	}
	if m.status != nil {
		fields = append(fields, extractjob.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, extractjob.FieldErrorMessage)
	}
	if m.extraction_confidence != nil {
		fields = append(fields, extractjob.FieldExtractionConfidence)
	}
	if m.needs_review != nil {
		fields = append(fields, extractjob.FieldNeedsReview)
	}
	if m.method != nil {
		fields = append(fields, extractjob.FieldMethod)
	}
	if m.raw_text != nil {
		fields = append(fields, extractjob.FieldRawText)
	}
	if m.extracted_json != nil {
		fields = append(fields, extractjob.FieldExtractedJSON)
	}
	if m.model_name != nil {
		fields = append(fields, extractjob.FieldModelName)
	}
	if m.model_params != nil {
		fields = append(fields, extractjob.FieldModelParams)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractjob.FieldFacilityID:
		return m.FacilityID()
	case extractjob.FieldDocumentID:
		return m.DocumentID()
	case extractjob.FieldSourceRef:
		return m.SourceRef()
	case extractjob.FieldFormat:
		return m.Format()
	case extractjob.FieldStartedAt:
		return m.StartedAt()
	case extractjob.FieldFinishedAt:
		return m.FinishedAt()
	case extractjob.FieldStatus:
		return m.Status()
	case extractjob.FieldErrorMessage:
		return m.ErrorMessage()
	case extractjob.FieldExtractionConfidence:
		return m.ExtractionConfidence()
	case extractjob.FieldNeedsReview:
		return m.NeedsReview()
	case extractjob.FieldMethod:
		return m.Method()
	case extractjob.FieldRawText:
		return m.RawText()
	case extractjob.FieldExtractedJSON:
		return m.ExtractedJSON()
	case extractjob.FieldModelName:
		return m.ModelName()
	case extractjob.FieldModelParams:
		return m.ModelParams()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractjob.FieldFacilityID:
		return m.OldFacilityID(ctx)
	case extractjob.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case extractjob.FieldSourceRef:
		return m.OldSourceRef(ctx)
	case extractjob.FieldFormat:
		return m.OldFormat(ctx)
	case extractjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case extractjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case extractjob.FieldStatus:
		return m.OldStatus(ctx)
	case extractjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case extractjob.FieldExtractionConfidence:
		return m.OldExtractionConfidence(ctx)
	case extractjob.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case extractjob.FieldMethod:
		return m.OldMethod(ctx)
	case extractjob.FieldRawText:
		return m.OldRawText(ctx)
	case extractjob.FieldExtractedJSON:
		return m.OldExtractedJSON(ctx)
	case extractjob.FieldModelName:
		return m.OldModelName(ctx)
	case extractjob.FieldModelParams:
		return m.OldModelParams(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractjob.FieldFacilityID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFacilityID(v)
		return nil
	case extractjob.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case extractjob.FieldSourceRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceRef(v)
		return nil
	case extractjob.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case extractjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case extractjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case extractjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case extractjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case extractjob.FieldExtractionConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionConfidence(v)
		return nil
	case extractjob.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case extractjob.FieldMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMethod(v)
		return nil
	case extractjob.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case extractjob.FieldExtractedJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedJSON(v)
		return nil
	case extractjob.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case extractjob.FieldModelParams:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelParams(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractJobMutation) AddedFields() []string {
	var fields []string
	if m.addextraction_confidence != nil {
		fields = append(fields, extractjob.FieldExtractionConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractjob.FieldExtractionConfidence:
		return m.AddedExtractionConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractjob.FieldExtractionConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExtractionConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractjob.FieldDocumentID) {
		fields = append(fields, extractjob.FieldDocumentID)
	}
	if m.FieldCleared(extractjob.FieldFinishedAt) {
		fields = append(fields, extractjob.FieldFinishedAt)
	}
	if m.FieldCleared(extractjob.FieldStatus) {
		fields = append(fields, extractjob.FieldStatus)
	}
	if m.FieldCleared(extractjob.FieldErrorMessage) {
		fields = append(fields, extractjob.FieldErrorMessage)
	}
	if m.FieldCleared(extractjob.FieldExtractionConfidence) {
		fields = append(fields, extractjob.FieldExtractionConfidence)
	}
	if m.FieldCleared(extractjob.FieldMethod) {
		fields = append(fields, extractjob.FieldMethod)
	}
	if m.FieldCleared(extractjob.FieldRawText) {
		fields = append(fields, extractjob.FieldRawText)
	}
	if m.FieldCleared(extractjob.FieldExtractedJSON) {
		fields = append(fields, extractjob.FieldExtractedJSON)
	}
	if m.FieldCleared(extractjob.FieldModelName) {
		fields = append(fields, extractjob.FieldModelName)
	}
	if m.FieldCleared(extractjob.FieldModelParams) {
		fields = append(fields, extractjob.FieldModelParams)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractJobMutation) ClearField(name string) error {
	switch name {
	case extractjob.FieldDocumentID:
		m.ClearDocumentID()
		return nil
	case extractjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case extractjob.FieldStatus:
		m.ClearStatus()
		return nil
	case extractjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case extractjob.FieldExtractionConfidence:
		m.ClearExtractionConfidence()
		return nil
	case extractjob.FieldMethod:
		m.ClearMethod()
		return nil
	case extractjob.FieldRawText:
		m.ClearRawText()
		return nil
	case extractjob.FieldExtractedJSON:
		m.ClearExtractedJSON()
		return nil
	case extractjob.FieldModelName:
		m.ClearModelName()
		return nil
	case extractjob.FieldModelParams:
		m.ClearModelParams()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractJobMutation) ResetField(name string) error {
	switch name {
	case extractjob.FieldFacilityID:
		m.ResetFacilityID()
		return nil
	case extractjob.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case extractjob.FieldSourceRef:
		m.ResetSourceRef()
		return nil
	case extractjob.FieldFormat:
		m.ResetFormat()
		return nil
	case extractjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case extractjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case extractjob.FieldStatus:
		m.ResetStatus()
		return nil
	case extractjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case extractjob.FieldExtractionConfidence:
		m.ResetExtractionConfidence()
		return nil
	case extractjob.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case extractjob.FieldMethod:
		m.ResetMethod()
		return nil
	case extractjob.FieldRawText:
		m.ResetRawText()
		return nil
	case extractjob.FieldExtractedJSON:
		m.ResetExtractedJSON()
		return nil
	case extractjob.FieldModelName:
		m.ResetModelName()
		return nil
	case extractjob.FieldModelParams:
		m.ResetModelParams()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.facility != nil {
		edges = append(edges, extractjob.EdgeFacility)
	}
	if m.document != nil {
		edges = append(edges, extractjob.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractjob.EdgeFacility:
		if id := m.facility; id != nil {
			return []ent.Value{*id}
		}
	case extractjob.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedfacility {
		edges = append(edges, extractjob.EdgeFacility)
	}
	if m.cleareddocument {
		edges = append(edges, extractjob.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractJobMutation) EdgeCleared(name string) bool {
	switch name {
	case extractjob.EdgeFacility:
		return m.clearedfacility
	case extractjob.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractJobMutation) ClearEdge(name string) error {
	switch name {
	case extractjob.EdgeFacility:
		m.ClearFacility()
		return nil
	case extractjob.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractJobMutation) ResetEdge(name string) error {
	switch name {
	case extractjob.EdgeFacility:
		m.ResetFacility()
		return nil
	case extractjob.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob edge %s", name)
}

// FacilityMutation represents an operation that mutates the Facility nodes in the graph.
type FacilityMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	name             *string
	contact_email    *string
	address          *string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	documents        map[uuid.UUID]struct{}
	removeddocuments map[uuid.UUID]struct{}
	cleareddocuments bool
	jobs             map[uuid.UUID]struct{}
	removedjobs      map[uuid.UUID]struct{}
	clearedjobs      bool
	done             bool
	oldValue         func(context.Context) (*Facility, error)
	predicates       []predicate.Facility
}

var _ ent.Mutation = (*FacilityMutation)(nil)

// facilityOption allows management of the mutation configuration using functional options.
type facilityOption func(*FacilityMutation)

// newFacilityMutation creates new mutation for the Facility entity.
func newFacilityMutation(c config, op Op, opts ...facilityOption) *FacilityMutation {
	m := &FacilityMutation{
		config:        c,
		op:            op,
		typ:           TypeFacility,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFacilityID sets the ID field of the mutation.
func withFacilityID(id uuid.UUID) facilityOption {
	return func(m *FacilityMutation) {
		var (
			err   error
			once  sync.Once
			value *Facility
		)
		m.oldValue = func(ctx context.Context) (*Facility, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Facility.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFacility sets the old Facility of the mutation.
func withFacility(node *Facility) facilityOption {
	return func(m *FacilityMutation) {
		m.oldValue = func(context.Context) (*Facility, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FacilityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FacilityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Facility entities.
func (m *FacilityMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FacilityMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FacilityMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Facility.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *FacilityMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *FacilityMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Facility entity.
// If the Facility object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacilityMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *FacilityMutation) ResetName() {
	m.name = nil
}

// SetContactEmail sets the "contact_email" field.
func (m *FacilityMutation) SetContactEmail(s string) {
	m.contact_email = &s
}

// ContactEmail returns the value of the "contact_email" field in the mutation.
func (m *FacilityMutation) ContactEmail() (r string, exists bool) {
	v := m.contact_email
	if v == nil {
		return
	}
	return *v, true
}

// OldContactEmail returns the old "contact_email" field's value of the Facility entity.
// If the Facility object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacilityMutation) OldContactEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactEmail: %w", err)
	}
	return oldValue.ContactEmail, nil
}

// ClearContactEmail clears the value of the "contact_email" field.
func (m *FacilityMutation) ClearContactEmail() {
	m.contact_email = nil
	m.clearedFields[facility.FieldContactEmail] = struct{}{}
}

// ContactEmailCleared returns if the "contact_email" field was cleared in this mutation.
func (m *FacilityMutation) ContactEmailCleared() bool {
	_, ok := m.clearedFields[facility.FieldContactEmail]
	return ok
}

// ResetContactEmail resets all changes to the "contact_email" field.
func (m *FacilityMutation) ResetContactEmail() {
	m.contact_email = nil
	delete(m.clearedFields, facility.FieldContactEmail)
}

// SetAddress sets the "address" field.
func (m *FacilityMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *FacilityMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the Facility entity.
// If the Facility object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacilityMutation) OldAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ClearAddress clears the value of the "address" field.
func (m *FacilityMutation) ClearAddress() {
	m.address = nil
	m.clearedFields[facility.FieldAddress] = struct{}{}
}

// AddressCleared returns if the "address" field was cleared in this mutation.
func (m *FacilityMutation) AddressCleared() bool {
	_, ok := m.clearedFields[facility.FieldAddress]
	return ok
}

// ResetAddress resets all changes to the "address" field.
func (m *FacilityMutation) ResetAddress() {
	m.address = nil
	delete(m.clearedFields, facility.FieldAddress)
}

// SetCreatedAt sets the "created_at" field.
func (m *FacilityMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FacilityMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Facility entity.
// If the Facility object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacilityMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FacilityMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FacilityMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FacilityMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Facility entity.
// If the Facility object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacilityMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FacilityMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddDocumentIDs adds the "documents" edge to the SDSDocument entity by ids.
func (m *FacilityMutation) AddDocumentIDs(ids ...uuid.UUID) {
	if m.documents == nil {
		m.documents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.documents[ids[i]] = struct{}{}
	}
}

// ClearDocuments clears the "documents" edge to the SDSDocument entity.
func (m *FacilityMutation) ClearDocuments() {
	m.cleareddocuments = true
}

// DocumentsCleared reports if the "documents" edge to the SDSDocument entity was cleared.
func (m *FacilityMutation) DocumentsCleared() bool {
	return m.cleareddocuments
}

// RemoveDocumentIDs removes the "documents" edge to the SDSDocument entity by IDs.
func (m *FacilityMutation) RemoveDocumentIDs(ids ...uuid.UUID) {
	if m.removeddocuments == nil {
		m.removeddocuments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.documents, ids[i])
		m.removeddocuments[ids[i]] = struct{}{}
	}
}

// RemovedDocuments returns the removed IDs of the "documents" edge to the SDSDocument entity.
func (m *FacilityMutation) RemovedDocumentsIDs() (ids []uuid.UUID) {
	for id := range m.removeddocuments {
		ids = append(ids, id)
	}
	return
}

// DocumentsIDs returns the "documents" edge IDs in the mutation.
func (m *FacilityMutation) DocumentsIDs() (ids []uuid.UUID) {
	for id := range m.documents {
		ids = append(ids, id)
	}
	return
}

// ResetDocuments resets all changes to the "documents" edge.
func (m *FacilityMutation) ResetDocuments() {
	m.documents = nil
	m.cleareddocuments = false
	m.removeddocuments = nil
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by ids.
func (m *FacilityMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ExtractJob entity.
func (m *FacilityMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ExtractJob entity was cleared.
func (m *FacilityMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ExtractJob entity by IDs.
func (m *FacilityMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ExtractJob entity.
func (m *FacilityMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *FacilityMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *FacilityMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the FacilityMutation builder.
func (m *FacilityMutation) Where(ps ...predicate.Facility) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FacilityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FacilityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Facility, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FacilityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FacilityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Facility).
func (m *FacilityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FacilityMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, facility.FieldName)
	}
	if m.contact_email != nil {
		fields = append(fields, facility.FieldContactEmail)
	}
	if m.address != nil {
		fields = append(fields, facility.FieldAddress)
	}
	if m.created_at != nil {
		fields = append(fields, facility.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, facility.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FacilityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case facility.FieldName:
		return m.Name()
	case facility.FieldContactEmail:
		return m.ContactEmail()
	case facility.FieldAddress:
		return m.Address()
	case facility.FieldCreatedAt:
		return m.CreatedAt()
	case facility.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FacilityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case facility.FieldName:
		return m.OldName(ctx)
	case facility.FieldContactEmail:
		return m.OldContactEmail(ctx)
	case facility.FieldAddress:
		return m.OldAddress(ctx)
	case facility.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case facility.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Facility field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FacilityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case facility.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case facility.FieldContactEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactEmail(v)
		return nil
	case facility.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case facility.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case facility.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Facility field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FacilityMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FacilityMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FacilityMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Facility numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FacilityMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(facility.FieldContactEmail) {
		fields = append(fields, facility.FieldContactEmail)
	}
	if m.FieldCleared(facility.FieldAddress) {
		fields = append(fields, facility.FieldAddress)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FacilityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FacilityMutation) ClearField(name string) error {
	switch name {
	case facility.FieldContactEmail:
		m.ClearContactEmail()
		return nil
	case facility.FieldAddress:
		m.ClearAddress()
		return nil
	}
	return fmt.Errorf("unknown Facility nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FacilityMutation) ResetField(name string) error {
	switch name {
	case facility.FieldName:
		m.ResetName()
		return nil
	case facility.FieldContactEmail:
		m.ResetContactEmail()
		return nil
	case facility.FieldAddress:
		m.ResetAddress()
		return nil
	case facility.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case facility.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Facility field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FacilityMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.documents != nil {
		edges = append(edges, facility.EdgeDocuments)
	}
	if m.jobs != nil {
		edges = append(edges, facility.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FacilityMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case facility.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.documents))
		for id := range m.documents {
			ids = append(ids, id)
		}
		return ids
	case facility.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FacilityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removeddocuments != nil {
		edges = append(edges, facility.EdgeDocuments)
	}
	if m.removedjobs != nil {
		edges = append(edges, facility.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FacilityMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case facility.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.removeddocuments))
		for id := range m.removeddocuments {
			ids = append(ids, id)
		}
		return ids
	case facility.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FacilityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddocuments {
		edges = append(edges, facility.EdgeDocuments)
	}
	if m.clearedjobs {
		edges = append(edges, facility.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FacilityMutation) EdgeCleared(name string) bool {
	switch name {
	case facility.EdgeDocuments:
		return m.cleareddocuments
	case facility.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FacilityMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Facility unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FacilityMutation) ResetEdge(name string) error {
	switch name {
	case facility.EdgeDocuments:
		m.ResetDocuments()
		return nil
	case facility.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Facility edge %s", name)
}

// SDSDocumentMutation represents an operation that mutates the SDSDocument nodes in the graph.
type SDSDocumentMutation struct {
	config
	op                             Op
	typ                            string
	id                             *uuid.UUID
	product_name                   *string
	manufacturer                   *string
	cas_number                     *string
	source_url                     *string
	bucket_url                     *string
	content_hash                   *[]byte
	signal_word                    *string
	h_codes                        *[]entity.HazardCode
	appendh_codes                  []entity.HazardCode
	pictograms                     *[]string
	appendpictograms               []string
	ppe_requirements               *entity.PPERequirements
	hmis_codes                     **entity.Ratings
	nfpa_codes                     **entity.Ratings
	precautionary_statements       *[]string
	appendprecautionary_statements []string
	first_aid                      *entity.FirstAid
	handling_storage               *string
	physical_state                 *string
	flash_point                    *string
	extraction_quality_score       *int
	addextraction_quality_score    *int
	ai_confidence                  *float32
	addai_confidence               *float32
	extraction_status              *string
	is_readable                    *bool
	created_at                     *time.Time
	updated_at                     *time.Time
	clearedFields                  map[string]struct{}
	facility                       *uuid.UUID
	clearedfacility                bool
	jobs                           map[uuid.UUID]struct{}
	removedjobs                    map[uuid.UUID]struct{}
	clearedjobs                    bool
	done                           bool
	oldValue                       func(context.Context) (*SDSDocument, error)
	predicates                     []predicate.SDSDocument
}

var _ ent.Mutation = (*SDSDocumentMutation)(nil)

// sdsdocumentOption allows management of the mutation configuration using functional options.
type sdsdocumentOption func(*SDSDocumentMutation)

// newSDSDocumentMutation creates new mutation for the SDSDocument entity.
func newSDSDocumentMutation(c config, op Op, opts ...sdsdocumentOption) *SDSDocumentMutation {
	m := &SDSDocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeSDSDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSDSDocumentID sets the ID field of the mutation.
func withSDSDocumentID(id uuid.UUID) sdsdocumentOption {
	return func(m *SDSDocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *SDSDocument
		)
		m.oldValue = func(ctx context.Context) (*SDSDocument, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SDSDocument.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSDSDocument sets the old SDSDocument of the mutation.
func withSDSDocument(node *SDSDocument) sdsdocumentOption {
	return func(m *SDSDocumentMutation) {
		m.oldValue = func(context.Context) (*SDSDocument, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SDSDocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SDSDocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SDSDocument entities.
func (m *SDSDocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SDSDocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SDSDocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SDSDocument.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFacilityID sets the "facility_id" field.
func (m *SDSDocumentMutation) SetFacilityID(u uuid.UUID) {
	m.facility = &u
}

// FacilityID returns the value of the "facility_id" field in the mutation.
func (m *SDSDocumentMutation) FacilityID() (r uuid.UUID, exists bool) {
	v := m.facility
	if v == nil {
		return
	}
	return *v, true
}

// OldFacilityID returns the old "facility_id" field's value of the SDSDocument entity.
// If the SDSDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SDSDocumentMutation) OldFacilityID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFacilityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFacilityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFacilityID: %w", err)
	}
	return oldValue.FacilityID, nil
}

// ResetFacilityID resets all changes to the "facility_id" field.
func (m *SDSDocumentMutation) ResetFacilityID() {
	m.facility = nil
}

// SetProductName sets the "product_name" field.
func (m *SDSDocumentMutation) SetProductName(s string) {
	m.product_name = &s
}

// ProductName returns the value of the "product_name" field in the mutation.
func (m *SDSDocumentMutation) ProductName() (r string, exists bool) {
	v := m.product_name
	if v == nil {
		return
	}
	return *v, true
}

// OldProductName returns the old "product_name" field's value of the SDSDocument entity.
// If the SDSDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SDSDocumentMutation) OldProductName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProductName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProductName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProductName: %w", err)
	}
	return oldValue.ProductName, nil
}

// ResetProductName resets all changes to the "product_name" field.
func (m *SDSDocumentMutation) ResetProductName() {
	m.product_name = nil
}

// SetManufacturer sets the "manufacturer" field.
func (m *SDSDocumentMutation) SetManufacturer(s string) {
	m.manufacturer = &s
}

// Manufacturer returns the value of the "manufacturer" field in the mutation.
func (m *SDSDocumentMutation) Manufacturer() (r string, exists bool) {
	v := m.manufacturer
	if v == nil {
		return
	}
	return *v, true
}

// OldManufacturer returns the old "manufacturer" field's value of the SDSDocument entity.
// If the SDSDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SDSDocumentMutation) OldManufacturer(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldManufacturer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldManufacturer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldManufacturer: %w", err)
	}
	return oldValue.Manufacturer, nil
}

// ClearManufacturer clears the value of the "manufacturer" field.
func (m *SDSDocumentMutation) ClearManufacturer() {
	m.manufacturer = nil
	m.clearedFields[sdsdocument.FieldManufacturer] = struct{}{}
}

// ManufacturerCleared returns if the "manufacturer" field was cleared in this mutation.
func (m *SDSDocumentMutation) ManufacturerCleared() bool {
	_, ok := m.clearedFields[sdsdocument.FieldManufacturer]
	return ok
}

// ResetManufacturer resets all changes to the "manufacturer" field.
func (m *SDSDocumentMutation) ResetManufacturer() {
	m.manufacturer = nil
	delete(m.clearedFields, sdsdocument.FieldManufacturer)
}

// SetCasNumber sets the "cas_number" field.
func (m *SDSDocumentMutation) SetCasNumber(s string) {
	m.cas_number = &s
}

// CasNumber returns the value of the "cas_number" field in the mutation.
func (m *SDSDocumentMutation) CasNumber() (r string, exists bool) {
	v := m.cas_number
	if v == nil {
		return
	}
	return *v, true
}

// OldCasNumber returns the old "cas_number" field's value of the SDSDocument entity.
// If the SDSDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SDSDocumentMutation) OldCasNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCasNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCasNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCasNumber: %w", err)
	}
	return oldValue.CasNumber, nil
}

// ClearCasNumber clears the value of the "cas_number" field.
func (m *SDSDocumentMutation) ClearCasNumber() {
	m.cas_number = nil
	m.clearedFields[sdsdocument.FieldCasNumber] = struct{}{}
}

// CasNumberCleared returns if the "cas_number" field was cleared in this mutation.
func (m *SDSDocumentMutation) CasNumberCleared() bool {
	_, ok := m.clearedFields[sdsdocument.FieldCasNumber]
	return ok
}

// ResetCasNumber resets all changes to the "cas_number" field.
func (m *SDSDocumentMutation) ResetCasNumber() {
	m.cas_number = nil
	delete(m.clearedFields, sdsdocument.FieldCasNumber)
}

// SetSourceURL sets the "source_url" field.
func (m *SDSDocumentMutation) SetSourceURL(s string) {
	m.source_url = &s
}

// SourceURL returns the value of the "source_url" field in the mutation.
func (m *SDSDocumentMutation) SourceURL() (r string, exists bool) {
	v := m.source_url
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceURL returns the old "source_url" field's value of the SDSDocument entity.
// If the SDSDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SDSDocumentMutation) OldSourceURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceURL: %w", err)
	}
	return oldValue.SourceURL, nil
}

// ClearSourceURL clears the value of the "source_url" field.
func (m *SDSDocumentMutation) ClearSourceURL() {
	m.source_url = nil
	m.clearedFields[sdsdocument.FieldSourceURL] = struct{}{}
}

// SourceURLCleared returns if the "source_url" field was cleared in this mutation.
func (m *SDSDocumentMutation) SourceURLCleared() bool {
	_, ok := m.clearedFields[sdsdocument.FieldSourceURL]
	return ok
}

// ResetSourceURL resets all changes to the "source_url" field.
func (m *SDSDocumentMutation) ResetSourceURL() {
	m.source_url = nil
	delete(m.clearedFields, sdsdocument.FieldSourceURL)
}

// SetBucketURL sets the "bucket_url" field.
func (m *SDSDocumentMutation) SetBucketURL(s string) {
	m.bucket_url = &s
}

// BucketURL returns the value of the "bucket_url" field in the mutation.
func (m *SDSDocumentMutation) BucketURL() (r string, exists bool) {
	v := m.bucket_url
	if v == nil {
		return
	}
	return *v, true
}

// OldBucketURL returns the old "bucket_url" field's value of the SDSDocument entity.
// If the SDSDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SDSDocumentMutation) OldBucketURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBucketURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBucketURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBucketURL: %w", err)
	}
	return oldValue.BucketURL, nil
}

// ClearBucketURL clears the value of the "bucket_url" field.
func (m *SDSDocumentMutation) ClearBucketURL() {
	m.bucket_url = nil
	m.clearedFields[sdsdocument.FieldBucketURL] = struct{}{}
}

// BucketURLCleared returns if the "bucket_url" field was cleared in this mutation.
func (m *SDSDocumentMutation) BucketURLCleared() bool {
	_, ok := m.clearedFields[sdsdocument.FieldBucketURL]
	return ok
}

// ResetBucketURL resets all changes to the "bucket_url" field.
func (m *SDSDocumentMutation) ResetBucketURL() {
	m.bucket_url = nil
	delete(m.clearedFields, sdsdocument.FieldBucketURL)
}

// SetContentHash sets the "content_hash" field.
func (m *SDSDocumentMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *SDSDocumentMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the SDSDocument entity.
// If the SDSDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SDSDocumentMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ClearContentHash clears the value of the "content_hash" field.
func (m *SDSDocumentMutation) ClearContentHash() {
	m.content_hash = nil
	m.clearedFields[sdsdocument.FieldContentHash] = struct{}{}
}

// ContentHashCleared returns if the "content_hash" field was cleared in this mutation.
func (m *SDSDocumentMutation) ContentHashCleared() bool {
	_, ok := m.clearedFields[sdsdocument.FieldContentHash]
	return ok
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *SDSDocumentMutation) ResetContentHash() {
	m.content_hash = nil
	delete(m.clearedFields, sdsdocument.FieldContentHash)
}

// SetSignalWord sets the "signal_word" field.
func (m *SDSDocumentMutation) SetSignalWord(s string) {
	m.signal_word = &s
}

// SignalWord returns the value of the "signal_word" field in the mutation.
func (m *SDSDocumentMutation) SignalWord() (r string, exists bool) {
	v := m.signal_word
	if v == nil {
		return
	}
	return *v, true
}

// OldSignalWord returns the old "signal_word" field's value of the SDSDocument entity.
// If the SDSDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SDSDocumentMutation) OldSignalWord(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignalWord is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignalWord requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignalWord: %w", err)
	}
	return oldValue.SignalWord, nil
}

// ClearSignalWord clears the value of the "signal_word" field.
func (m *SDSDocumentMutation) ClearSignalWord() {
	m.signal_word = nil
	m.clearedFields[sdsdocument.FieldSignalWord] = struct{}{}
}

// SignalWordCleared returns if the "signal_word" field was cleared in this mutation.
func (m *SDSDocumentMutation) SignalWordCleared() bool {
	_, ok := m.clearedFields[sdsdocument.FieldSignalWord]
	return ok
}

// ResetSignalWord resets all changes to the "signal_word" field.
func (m *SDSDocumentMutation) ResetSignalWord() {
	m.signal_word = nil
	delete(m.clearedFields, sdsdocument.FieldSignalWord)
}

// SetHCodes sets the "h_codes" field.
func (m *SDSDocumentMutation) SetHCodes(ec []entity.HazardCode) {
	m.h_codes = &ec
	m.appendh_codes = nil
}

// HCodes returns the value of the "h_codes" field in the mutation.
func (m *SDSDocumentMutation) HCodes() (r []entity.HazardCode, exists bool) {
	v := m.h_codes
	if v == nil {
		return
	}
	return *v, true
}

// OldHCodes returns the old "h_codes" field's value of the SDSDocument entity.
// If the SDSDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SDSDocumentMutation) OldHCodes(ctx context.Context) (v []entity.HazardCode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHCodes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHCodes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHCodes: %w", err)
	}
	return oldValue.HCodes, nil
}

// AppendHCodes adds ec to the "h_codes" field.
func (m *SDSDocumentMutation) AppendHCodes(ec []entity.HazardCode) {
	m.appendh_codes = append(m.appendh_codes, ec...)
}

// AppendedHCodes returns the list of values that were appended to the "h_codes" field in this mutation.
func (m *SDSDocumentMutation) AppendedHCodes() ([]entity.HazardCode, bool) {
	if len(m.appendh_codes) == 0 {
		return nil, false
	}
	return m.appendh_codes, true
}

// ClearHCodes clears the value of the "h_codes" field.
func (m *SDSDocumentMutation) ClearHCodes() {
	m.h_codes = nil
	m.appendh_codes = nil
	m.clearedFields[sdsdocument.FieldHCodes] = struct{}{}
}

// HCodesCleared returns if the "h_codes" field was cleared in this mutation.
func (m *SDSDocumentMutation) HCodesCleared() bool {
	_, ok := m.clearedFields[sdsdocument.FieldHCodes]
	return ok
}

// ResetHCodes resets all changes to the "h_codes" field.
func (m *SDSDocumentMutation) ResetHCodes() {
	m.h_codes = nil
	m.appendh_codes = nil
	delete(m.clearedFields, sdsdocument.FieldHCodes)
}

// SetPictograms sets the "pictograms" field.
func (m *SDSDocumentMutation) SetPictograms(s []string) {
	m.pictograms = &s
	m.appendpictograms = nil
}

// Pictograms returns the value of the "pictograms" field in the mutation.
func (m *SDSDocumentMutation) Pictograms() (r []string, exists bool) {
	v := m.pictograms
	if v == nil {
		return
	}
	return *v, true
}

// OldPictograms returns the old "pictograms" field's value of the SDSDocument entity.
// If the SDSDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SDSDocumentMutation) OldPictograms(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPictograms is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPictograms requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPictograms: %w", err)
	}
	return oldValue.Pictograms, nil
}

// AppendPictograms adds s to the "pictograms" field.
func (m *SDSDocumentMutation) AppendPictograms(s []string) {
	m.appendpictograms = append(m.appendpictograms, s...)
}

// AppendedPictograms returns the list of values that were appended to the "pictograms" field in this mutation.
func (m *SDSDocumentMutation) AppendedPictograms() ([]string, bool) {
	if len(m.appendpictograms) == 0 {
		return nil, false
	}
	return m.appendpictograms, true
}

// ClearPictograms clears the value of the "pictograms" field.
func (m *SDSDocumentMutation) ClearPictograms() {
	m.pictograms = nil
	m.appendpictograms = nil
	m.clearedFields[sdsdocument.FieldPictograms] = struct{}{}
}

// PictogramsCleared returns if the "pictograms" field was cleared in this mutation.
func (m *SDSDocumentMutation) PictogramsCleared() bool {
	_, ok := m.clearedFields[sdsdocument.FieldPictograms]
	return ok
}

// ResetPictograms resets all changes to the "pictograms" field.
func (m *SDSDocumentMutation) ResetPictograms() {
	m.pictograms = nil
	m.appendpictograms = nil
	delete(m.clearedFields, sdsdocument.FieldPictograms)
}

// SetPpeRequirements sets the "ppe_requirements" field.
func (m *SDSDocumentMutation) SetPpeRequirements(er entity.PPERequirements) {
	m.ppe_requirements = &er
}

// PpeRequirements returns the value of the "ppe_requirements" field in the mutation.
func (m *SDSDocumentMutation) PpeRequirements() (r entity.PPERequirements, exists bool) {
	v := m.ppe_requirements
	if v == nil {
		return
	}
	return *v, true
}

// OldPpeRequirements returns the old "ppe_requirements" field's value of the SDSDocument entity.
// If the SDSDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SDSDocumentMutation) OldPpeRequirements(ctx context.Context) (v entity.PPERequirements, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPpeRequirements is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPpeRequirements requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPpeRequirements: %w", err)
	}
	return oldValue.PpeRequirements, nil
}

// ClearPpeRequirements clears the value of the "ppe_requirements" field.
func (m *SDSDocumentMutation) ClearPpeRequirements() {
	m.ppe_requirements = nil
	m.clearedFields[sdsdocument.FieldPpeRequirements] = struct{}{}
}

// PpeRequirementsCleared returns if the "ppe_requirements" field was cleared in this mutation.
func (m *SDSDocumentMutation) PpeRequirementsCleared() bool {
	_, ok := m.clearedFields[sdsdocument.FieldPpeRequirements]
	return ok
}

// ResetPpeRequirements resets all changes to the "ppe_requirements" field.
func (m *SDSDocumentMutation) ResetPpeRequirements() {
	m.ppe_requirements = nil
	delete(m.clearedFields, sdsdocument.FieldPpeRequirements)
}

// SetHmisCodes sets the "hmis_codes" field.
func (m *SDSDocumentMutation) SetHmisCodes(e *entity.Ratings) {
	m.hmis_codes = &e
}

// HmisCodes returns the value of the "hmis_codes" field in the mutation.
func (m *SDSDocumentMutation) HmisCodes() (r *entity.Ratings, exists bool) {
	v := m.hmis_codes
	if v == nil {
		return
	}
	return *v, true
}

// OldHmisCodes returns the old "hmis_codes" field's value of the SDSDocument entity.
// If the SDSDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SDSDocumentMutation) OldHmisCodes(ctx context.Context) (v *entity.Ratings, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHmisCodes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHmisCodes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHmisCodes: %w", err)
	}
	return oldValue.HmisCodes, nil
}

// ClearHmisCodes clears the value of the "hmis_codes" field.
func (m *SDSDocumentMutation) ClearHmisCodes() {
	m.hmis_codes = nil
	m.clearedFields[sdsdocument.FieldHmisCodes] = struct{}{}
}

// HmisCodesCleared returns if the "hmis_codes" field was cleared in this mutation.
func (m *SDSDocumentMutation) HmisCodesCleared() bool {
	_, ok := m.clearedFields[sdsdocument.FieldHmisCodes]
	return ok
}

// ResetHmisCodes resets all changes to the "hmis_codes" field.
func (m *SDSDocumentMutation) ResetHmisCodes() {
	m.hmis_codes = nil
	delete(m.clearedFields, sdsdocument.FieldHmisCodes)
}

// SetNfpaCodes sets the "nfpa_codes" field.
func (m *SDSDocumentMutation) SetNfpaCodes(e *entity.Ratings) {
	m.nfpa_codes = &e
}

// NfpaCodes returns the value of the "nfpa_codes" field in the mutation.
func (m *SDSDocumentMutation) NfpaCodes() (r *entity.Ratings, exists bool) {
	v := m.nfpa_codes
	if v == nil {
		return
	}
	return *v, true
}

// OldNfpaCodes returns the old "nfpa_codes" field's value of the SDSDocument entity.
// If the SDSDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SDSDocumentMutation) OldNfpaCodes(ctx context.Context) (v *entity.Ratings, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNfpaCodes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNfpaCodes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNfpaCodes: %w", err)
	}
	return oldValue.NfpaCodes, nil
}

// ClearNfpaCodes clears the value of the "nfpa_codes" field.
func (m *SDSDocumentMutation) ClearNfpaCodes() {
	m.nfpa_codes = nil
	m.clearedFields[sdsdocument.FieldNfpaCodes] = struct{}{}
}

// NfpaCodesCleared returns if the "nfpa_codes" field was cleared in this mutation.
func (m *SDSDocumentMutation) NfpaCodesCleared() bool {
	_, ok := m.clearedFields[sdsdocument.FieldNfpaCodes]
	return ok
}

// ResetNfpaCodes resets all changes to the "nfpa_codes" field.
func (m *SDSDocumentMutation) ResetNfpaCodes() {
	m.nfpa_codes = nil
	delete(m.clearedFields, sdsdocument.FieldNfpaCodes)
}

// SetPrecautionaryStatements sets the "precautionary_statements" field.
func (m *SDSDocumentMutation) SetPrecautionaryStatements(s []string) {
	m.precautionary_statements = &s
	m.appendprecautionary_statements = nil
}

// PrecautionaryStatements returns the value of the "precautionary_statements" field in the mutation.
func (m *SDSDocumentMutation) PrecautionaryStatements() (r []string, exists bool) {
	v := m.precautionary_statements
	if v == nil {
		return
	}
	return *v, true
}

// OldPrecautionaryStatements returns the old "precautionary_statements" field's value of the SDSDocument entity.
// If the SDSDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SDSDocumentMutation) OldPrecautionaryStatements(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrecautionaryStatements is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrecautionaryStatements requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrecautionaryStatements: %w", err)
	}
	return oldValue.PrecautionaryStatements, nil
}

// AppendPrecautionaryStatements adds s to the "precautionary_statements" field.
func (m *SDSDocumentMutation) AppendPrecautionaryStatements(s []string) {
	m.appendprecautionary_statements = append(m.appendprecautionary_statements, s...)
}

// AppendedPrecautionaryStatements returns the list of values that were appended to the "precautionary_statements" field in this mutation.
func (m *SDSDocumentMutation) AppendedPrecautionaryStatements() ([]string, bool) {
	if len(m.appendprecautionary_statements) == 0 {
		return nil, false
	}
	return m.appendprecautionary_statements, true
}

// ClearPrecautionaryStatements clears the value of the "precautionary_statements" field.
func (m *SDSDocumentMutation) ClearPrecautionaryStatements() {
	m.precautionary_statements = nil
	m.appendprecautionary_statements = nil
	m.clearedFields[sdsdocument.FieldPrecautionaryStatements] = struct{}{}
}

// PrecautionaryStatementsCleared returns if the "precautionary_statements" field was cleared in this mutation.
func (m *SDSDocumentMutation) PrecautionaryStatementsCleared() bool {
	_, ok := m.clearedFields[sdsdocument.FieldPrecautionaryStatements]
	return ok
}

// ResetPrecautionaryStatements resets all changes to the "precautionary_statements" field.
func (m *SDSDocumentMutation) ResetPrecautionaryStatements() {
	m.precautionary_statements = nil
	m.appendprecautionary_statements = nil
	delete(m.clearedFields, sdsdocument.FieldPrecautionaryStatements)
}

// SetFirstAid sets the "first_aid" field.
func (m *SDSDocumentMutation) SetFirstAid(ea entity.FirstAid) {
	m.first_aid = &ea
}

// FirstAid returns the value of the "first_aid" field in the mutation.
func (m *SDSDocumentMutation) FirstAid() (r entity.FirstAid, exists bool) {
	v := m.first_aid
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstAid returns the old "first_aid" field's value of the SDSDocument entity.
// If the SDSDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SDSDocumentMutation) OldFirstAid(ctx context.Context) (v entity.FirstAid, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstAid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstAid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstAid: %w", err)
	}
	return oldValue.FirstAid, nil
}

// ClearFirstAid clears the value of the "first_aid" field.
func (m *SDSDocumentMutation) ClearFirstAid() {
	m.first_aid = nil
	m.clearedFields[sdsdocument.FieldFirstAid] = struct{}{}
}

// FirstAidCleared returns if the "first_aid" field was cleared in this mutation.
func (m *SDSDocumentMutation) FirstAidCleared() bool {
	_, ok := m.clearedFields[sdsdocument.FieldFirstAid]
	return ok
}

// ResetFirstAid resets all changes to the "first_aid" field.
func (m *SDSDocumentMutation) ResetFirstAid() {
	m.first_aid = nil
	delete(m.clearedFields, sdsdocument.FieldFirstAid)
}

// SetHandlingStorage sets the "handling_storage" field.
func (m *SDSDocumentMutation) SetHandlingStorage(s string) {
	m.handling_storage = &s
}

// HandlingStorage returns the value of the "handling_storage" field in the mutation.
func (m *SDSDocumentMutation) HandlingStorage() (r string, exists bool) {
	v := m.handling_storage
	if v == nil {
		return
	}
	return *v, true
}

// OldHandlingStorage returns the old "handling_storage" field's value of the SDSDocument entity.
// If the SDSDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SDSDocumentMutation) OldHandlingStorage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHandlingStorage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHandlingStorage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHandlingStorage: %w", err)
	}
	return oldValue.HandlingStorage, nil
}

// ClearHandlingStorage clears the value of the "handling_storage" field.
func (m *SDSDocumentMutation) ClearHandlingStorage() {
	m.handling_storage = nil
	m.clearedFields[sdsdocument.FieldHandlingStorage] = struct{}{}
}

// HandlingStorageCleared returns if the "handling_storage" field was cleared in this mutation.
func (m *SDSDocumentMutation) HandlingStorageCleared() bool {
	_, ok := m.clearedFields[sdsdocument.FieldHandlingStorage]
	return ok
}

// ResetHandlingStorage resets all changes to the "handling_storage" field.
func (m *SDSDocumentMutation) ResetHandlingStorage() {
	m.handling_storage = nil
	delete(m.clearedFields, sdsdocument.FieldHandlingStorage)
}

// SetPhysicalState sets the "physical_state" field.
func (m *SDSDocumentMutation) SetPhysicalState(s string) {
	m.physical_state = &s
}

// PhysicalState returns the value of the "physical_state" field in the mutation.
func (m *SDSDocumentMutation) PhysicalState() (r string, exists bool) {
	v := m.physical_state
	if v == nil {
		return
	}
	return *v, true
}

// OldPhysicalState returns the old "physical_state" field's value of the SDSDocument entity.
// If the SDSDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SDSDocumentMutation) OldPhysicalState(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhysicalState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhysicalState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhysicalState: %w", err)
	}
	return oldValue.PhysicalState, nil
}

// ClearPhysicalState clears the value of the "physical_state" field.
func (m *SDSDocumentMutation) ClearPhysicalState() {
	m.physical_state = nil
	m.clearedFields[sdsdocument.FieldPhysicalState] = struct{}{}
}

// PhysicalStateCleared returns if the "physical_state" field was cleared in this mutation.
func (m *SDSDocumentMutation) PhysicalStateCleared() bool {
	_, ok := m.clearedFields[sdsdocument.FieldPhysicalState]
	return ok
}

// ResetPhysicalState resets all changes to the "physical_state" field.
func (m *SDSDocumentMutation) ResetPhysicalState() {
	m.physical_state = nil
	delete(m.clearedFields, sdsdocument.FieldPhysicalState)
}

// SetFlashPoint sets the "flash_point" field.
func (m *SDSDocumentMutation) SetFlashPoint(s string) {
	m.flash_point = &s
}

// FlashPoint returns the value of the "flash_point" field in the mutation.
func (m *SDSDocumentMutation) FlashPoint() (r string, exists bool) {
	v := m.flash_point
	if v == nil {
		return
	}
	return *v, true
}

// OldFlashPoint returns the old "flash_point" field's value of the SDSDocument entity.
// If the SDSDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SDSDocumentMutation) OldFlashPoint(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlashPoint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlashPoint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlashPoint: %w", err)
	}
	return oldValue.FlashPoint, nil
}

// ClearFlashPoint clears the value of the "flash_point" field.
func (m *SDSDocumentMutation) ClearFlashPoint() {
	m.flash_point = nil
	m.clearedFields[sdsdocument.FieldFlashPoint] = struct{}{}
}

// FlashPointCleared returns if the "flash_point" field was cleared in this mutation.
func (m *SDSDocumentMutation) FlashPointCleared() bool {
	_, ok := m.clearedFields[sdsdocument.FieldFlashPoint]
	return ok
}

// ResetFlashPoint resets all changes to the "flash_point" field.
func (m *SDSDocumentMutation) ResetFlashPoint() {
	m.flash_point = nil
	delete(m.clearedFields, sdsdocument.FieldFlashPoint)
}

// SetExtractionQualityScore sets the "extraction_quality_score" field.
func (m *SDSDocumentMutation) SetExtractionQualityScore(i int) {
	m.extraction_quality_score = &i
	m.addextraction_quality_score = nil
}

// ExtractionQualityScore returns the value of the "extraction_quality_score" field in the mutation.
func (m *SDSDocumentMutation) ExtractionQualityScore() (r int, exists bool) {
	v := m.extraction_quality_score
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionQualityScore returns the old "extraction_quality_score" field's value of the SDSDocument entity.
// If the SDSDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SDSDocumentMutation) OldExtractionQualityScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionQualityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionQualityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionQualityScore: %w", err)
	}
	return oldValue.ExtractionQualityScore, nil
}

// AddExtractionQualityScore adds i to the "extraction_quality_score" field.
func (m *SDSDocumentMutation) AddExtractionQualityScore(i int) {
	if m.addextraction_quality_score != nil {
		*m.addextraction_quality_score += i
	} else {
		m.addextraction_quality_score = &i
	}
}

// AddedExtractionQualityScore returns the value that was added to the "extraction_quality_score" field in this mutation.
func (m *SDSDocumentMutation) AddedExtractionQualityScore() (r int, exists bool) {
	v := m.addextraction_quality_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetExtractionQualityScore resets all changes to the "extraction_quality_score" field.
func (m *SDSDocumentMutation) ResetExtractionQualityScore() {
	m.extraction_quality_score = nil
	m.addextraction_quality_score = nil
}

// SetAiConfidence sets the "ai_confidence" field.
func (m *SDSDocumentMutation) SetAiConfidence(f float32) {
	m.ai_confidence = &f
	m.addai_confidence = nil
}

// AiConfidence returns the value of the "ai_confidence" field in the mutation.
func (m *SDSDocumentMutation) AiConfidence() (r float32, exists bool) {
	v := m.ai_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldAiConfidence returns the old "ai_confidence" field's value of the SDSDocument entity.
// If the SDSDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SDSDocumentMutation) OldAiConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiConfidence: %w", err)
	}
	return oldValue.AiConfidence, nil
}

// AddAiConfidence adds f to the "ai_confidence" field.
func (m *SDSDocumentMutation) AddAiConfidence(f float32) {
	if m.addai_confidence != nil {
		*m.addai_confidence += f
	} else {
		m.addai_confidence = &f
	}
}

// AddedAiConfidence returns the value that was added to the "ai_confidence" field in this mutation.
func (m *SDSDocumentMutation) AddedAiConfidence() (r float32, exists bool) {
	v := m.addai_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearAiConfidence clears the value of the "ai_confidence" field.
func (m *SDSDocumentMutation) ClearAiConfidence() {
	m.ai_confidence = nil
	m.addai_confidence = nil
	m.clearedFields[sdsdocument.FieldAiConfidence] = struct{}{}
}

// AiConfidenceCleared returns if the "ai_confidence" field was cleared in this mutation.
func (m *SDSDocumentMutation) AiConfidenceCleared() bool {
	_, ok := m.clearedFields[sdsdocument.FieldAiConfidence]
	return ok
}

// ResetAiConfidence resets all changes to the "ai_confidence" field.
func (m *SDSDocumentMutation) ResetAiConfidence() {
	m.ai_confidence = nil
	m.addai_confidence = nil
	delete(m.clearedFields, sdsdocument.FieldAiConfidence)
}

// SetExtractionStatus sets the "extraction_status" field.
func (m *SDSDocumentMutation) SetExtractionStatus(s string) {
	m.extraction_status = &s
}

// ExtractionStatus returns the value of the "extraction_status" field in the mutation.
func (m *SDSDocumentMutation) ExtractionStatus() (r string, exists bool) {
	v := m.extraction_status
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionStatus returns the old "extraction_status" field's value of the SDSDocument entity.
// If the SDSDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SDSDocumentMutation) OldExtractionStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionStatus: %w", err)
	}
	return oldValue.ExtractionStatus, nil
}

// ResetExtractionStatus resets all changes to the "extraction_status" field.
func (m *SDSDocumentMutation) ResetExtractionStatus() {
	m.extraction_status = nil
}

// SetIsReadable sets the "is_readable" field.
func (m *SDSDocumentMutation) SetIsReadable(b bool) {
	m.is_readable = &b
}

// IsReadable returns the value of the "is_readable" field in the mutation.
func (m *SDSDocumentMutation) IsReadable() (r bool, exists bool) {
	v := m.is_readable
	if v == nil {
		return
	}
	return *v, true
}

// OldIsReadable returns the old "is_readable" field's value of the SDSDocument entity.
// If the SDSDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SDSDocumentMutation) OldIsReadable(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsReadable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsReadable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsReadable: %w", err)
	}
	return oldValue.IsReadable, nil
}

// ResetIsReadable resets all changes to the "is_readable" field.
func (m *SDSDocumentMutation) ResetIsReadable() {
	m.is_readable = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SDSDocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SDSDocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SDSDocument entity.
// If the SDSDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SDSDocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SDSDocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SDSDocumentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SDSDocumentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SDSDocument entity.
// If the SDSDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SDSDocumentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SDSDocumentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearFacility clears the "facility" edge to the Facility entity.
func (m *SDSDocumentMutation) ClearFacility() {
	m.clearedfacility = true
	m.clearedFields[sdsdocument.FieldFacilityID] = struct{}{}
}

// FacilityCleared reports if the "facility" edge to the Facility entity was cleared.
func (m *SDSDocumentMutation) FacilityCleared() bool {
	return m.clearedfacility
}

// FacilityIDs returns the "facility" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FacilityID instead. It exists only for internal usage by the builders.
func (m *SDSDocumentMutation) FacilityIDs() (ids []uuid.UUID) {
	if id := m.facility; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFacility resets all changes to the "facility" edge.
func (m *SDSDocumentMutation) ResetFacility() {
	m.facility = nil
	m.clearedfacility = false
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by ids.
func (m *SDSDocumentMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ExtractJob entity.
func (m *SDSDocumentMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ExtractJob entity was cleared.
func (m *SDSDocumentMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ExtractJob entity by IDs.
func (m *SDSDocumentMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ExtractJob entity.
func (m *SDSDocumentMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *SDSDocumentMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *SDSDocumentMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the SDSDocumentMutation builder.
func (m *SDSDocumentMutation) Where(ps ...predicate.SDSDocument) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SDSDocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SDSDocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SDSDocument, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SDSDocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SDSDocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SDSDocument).
func (m *SDSDocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SDSDocumentMutation) Fields() []string {
	fields := make([]string, 0, 24)
	if m.facility != nil {
		fields = append(fields, sdsdocument.FieldFacilityID)
	}
	if m.product_name != nil {
		fields = append(fields, sdsdocument.FieldProductName)
	}
	if m.manufacturer != nil {
		fields = append(fields, sdsdocument.FieldManufacturer)
	}
	if m.cas_number != nil {
		fields = append(fields, sdsdocument.FieldCasNumber)
	}
	if m.source_url != nil {
		fields = append(fields, sdsdocument.FieldSourceURL)
	}
	if m.bucket_url != nil {
		fields = append(fields, sdsdocument.FieldBucketURL)
	}
	if m.content_hash != nil {
		fields = append(fields, sdsdocument.FieldContentHash)
	}
	if m.signal_word != nil {
		fields = append(fields, sdsdocument.FieldSignalWord)
	}
	if m.h_codes != nil {
		fields = append(fields, sdsdocument.FieldHCodes)
	}
	if m.pictograms != nil {
		fields = append(fields, sdsdocument.FieldPictograms)
	}
	if m.ppe_requirements != nil {
		fields = append(fields, sdsdocument.FieldPpeRequirements)
	}
	if m.hmis_codes != nil {
		fields = append(fields, sdsdocument.FieldHmisCodes)
	}
	if m.nfpa_codes != nil {
		fields = append(fields, sdsdocument.FieldNfpaCodes)
	}
	if m.precautionary_statements != nil {
		fields = append(fields, sdsdocument.FieldPrecautionaryStatements)
	}
	if m.first_aid != nil {
		fields = append(fields, sdsdocument.FieldFirstAid)
	}
	if m.handling_storage != nil {
		fields = append(fields, sdsdocument.FieldHandlingStorage)
	}
	if m.physical_state != nil {
		fields = append(fields, sdsdocument.FieldPhysicalState)
	}
	if m.flash_point != nil {
		fields = append(fields, sdsdocument.FieldFlashPoint)
	}
	if m.extraction_quality_score != nil {
		fields = append(fields, sdsdocument.FieldExtractionQualityScore)
	}
	if m.ai_confidence != nil {
		fields = append(fields, sdsdocument.FieldAiConfidence)
	}
	if m.extraction_status != nil {
		fields = append(fields, sdsdocument.FieldExtractionStatus)
	}
	if m.is_readable != nil {
		fields = append(fields, sdsdocument.FieldIsReadable)
	}
	if m.created_at != nil {
		fields = append(fields, sdsdocument.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, sdsdocument.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SDSDocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sdsdocument.FieldFacilityID:
		return m.FacilityID()
	case sdsdocument.FieldProductName:
		return m.ProductName()
	case sdsdocument.FieldManufacturer:
		return m.Manufacturer()
	case sdsdocument.FieldCasNumber:
		return m.CasNumber()
	case sdsdocument.FieldSourceURL:
		return m.SourceURL()
	case sdsdocument.FieldBucketURL:
		return m.BucketURL()
	case sdsdocument.FieldContentHash:
		return m.ContentHash()
	case sdsdocument.FieldSignalWord:
		return m.SignalWord()
	case sdsdocument.FieldHCodes:
		return m.HCodes()
	case sdsdocument.FieldPictograms:
		return m.Pictograms()
	case sdsdocument.FieldPpeRequirements:
		return m.PpeRequirements()
	case sdsdocument.FieldHmisCodes:
		return m.HmisCodes()
	case sdsdocument.FieldNfpaCodes:
		return m.NfpaCodes()
	case sdsdocument.FieldPrecautionaryStatements:
		return m.PrecautionaryStatements()
	case sdsdocument.FieldFirstAid:
		return m.FirstAid()
	case sdsdocument.FieldHandlingStorage:
		return m.HandlingStorage()
	case sdsdocument.FieldPhysicalState:
		return m.PhysicalState()
	case sdsdocument.FieldFlashPoint:
		return m.FlashPoint()
	case sdsdocument.FieldExtractionQualityScore:
		return m.ExtractionQualityScore()
	case sdsdocument.FieldAiConfidence:
		return m.AiConfidence()
	case sdsdocument.FieldExtractionStatus:
		return m.ExtractionStatus()
	case sdsdocument.FieldIsReadable:
		return m.IsReadable()
	case sdsdocument.FieldCreatedAt:
		return m.CreatedAt()
	case sdsdocument.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SDSDocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sdsdocument.FieldFacilityID:
		return m.OldFacilityID(ctx)
	case sdsdocument.FieldProductName:
		return m.OldProductName(ctx)
	case sdsdocument.FieldManufacturer:
		return m.OldManufacturer(ctx)
	case sdsdocument.FieldCasNumber:
		return m.OldCasNumber(ctx)
	case sdsdocument.FieldSourceURL:
		return m.OldSourceURL(ctx)
	case sdsdocument.FieldBucketURL:
		return m.OldBucketURL(ctx)
	case sdsdocument.FieldContentHash:
		return m.OldContentHash(ctx)
	case sdsdocument.FieldSignalWord:
		return m.OldSignalWord(ctx)
	case sdsdocument.FieldHCodes:
		return m.OldHCodes(ctx)
	case sdsdocument.FieldPictograms:
		return m.OldPictograms(ctx)
	case sdsdocument.FieldPpeRequirements:
		return m.OldPpeRequirements(ctx)
	case sdsdocument.FieldHmisCodes:
		return m.OldHmisCodes(ctx)
	case sdsdocument.FieldNfpaCodes:
		return m.OldNfpaCodes(ctx)
	case sdsdocument.FieldPrecautionaryStatements:
		return m.OldPrecautionaryStatements(ctx)
	case sdsdocument.FieldFirstAid:
		return m.OldFirstAid(ctx)
	case sdsdocument.FieldHandlingStorage:
		return m.OldHandlingStorage(ctx)
	case sdsdocument.FieldPhysicalState:
		return m.OldPhysicalState(ctx)
	case sdsdocument.FieldFlashPoint:
		return m.OldFlashPoint(ctx)
	case sdsdocument.FieldExtractionQualityScore:
		return m.OldExtractionQualityScore(ctx)
	case sdsdocument.FieldAiConfidence:
		return m.OldAiConfidence(ctx)
	case sdsdocument.FieldExtractionStatus:
		return m.OldExtractionStatus(ctx)
	case sdsdocument.FieldIsReadable:
		return m.OldIsReadable(ctx)
	case sdsdocument.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case sdsdocument.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SDSDocument field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SDSDocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sdsdocument.FieldFacilityID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFacilityID(v)
		return nil
	case sdsdocument.FieldProductName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProductName(v)
		return nil
	case sdsdocument.FieldManufacturer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetManufacturer(v)
		return nil
	case sdsdocument.FieldCasNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCasNumber(v)
		return nil
	case sdsdocument.FieldSourceURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceURL(v)
		return nil
	case sdsdocument.FieldBucketURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBucketURL(v)
		return nil
	case sdsdocument.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case sdsdocument.FieldSignalWord:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignalWord(v)
		return nil
	case sdsdocument.FieldHCodes:
		v, ok := value.([]entity.HazardCode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHCodes(v)
		return nil
	case sdsdocument.FieldPictograms:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPictograms(v)
		return nil
	case sdsdocument.FieldPpeRequirements:
		v, ok := value.(entity.PPERequirements)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPpeRequirements(v)
		return nil
	case sdsdocument.FieldHmisCodes:
		v, ok := value.(*entity.Ratings)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHmisCodes(v)
		return nil
	case sdsdocument.FieldNfpaCodes:
		v, ok := value.(*entity.Ratings)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNfpaCodes(v)
		return nil
	case sdsdocument.FieldPrecautionaryStatements:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrecautionaryStatements(v)
		return nil
	case sdsdocument.FieldFirstAid:
		v, ok := value.(entity.FirstAid)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstAid(v)
		return nil
	case sdsdocument.FieldHandlingStorage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHandlingStorage(v)
		return nil
	case sdsdocument.FieldPhysicalState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhysicalState(v)
		return nil
	case sdsdocument.FieldFlashPoint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlashPoint(v)
		return nil
	case sdsdocument.FieldExtractionQualityScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionQualityScore(v)
		return nil
	case sdsdocument.FieldAiConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiConfidence(v)
		return nil
	case sdsdocument.FieldExtractionStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionStatus(v)
		return nil
	case sdsdocument.FieldIsReadable:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsReadable(v)
		return nil
	case sdsdocument.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case sdsdocument.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SDSDocument field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SDSDocumentMutation) AddedFields() []string {
	var fields []string
	if m.addextraction_quality_score != nil {
		fields = append(fields, sdsdocument.FieldExtractionQualityScore)
	}
	if m.addai_confidence != nil {
		fields = append(fields, sdsdocument.FieldAiConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SDSDocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sdsdocument.FieldExtractionQualityScore:
		return m.AddedExtractionQualityScore()
	case sdsdocument.FieldAiConfidence:
		return m.AddedAiConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SDSDocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sdsdocument.FieldExtractionQualityScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExtractionQualityScore(v)
		return nil
	case sdsdocument.FieldAiConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAiConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown SDSDocument numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SDSDocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sdsdocument.FieldManufacturer) {
		fields = append(fields, sdsdocument.FieldManufacturer)
	}
	if m.FieldCleared(sdsdocument.FieldCasNumber) {
		fields = append(fields, sdsdocument.FieldCasNumber)
	}
	if m.FieldCleared(sdsdocument.FieldSourceURL) {
		fields = append(fields, sdsdocument.FieldSourceURL)
	}
	if m.FieldCleared(sdsdocument.FieldBucketURL) {
		fields = append(fields, sdsdocument.FieldBucketURL)
	}
	if m.FieldCleared(sdsdocument.FieldContentHash) {
		fields = append(fields, sdsdocument.FieldContentHash)
	}
	if m.FieldCleared(sdsdocument.FieldSignalWord) {
		fields = append(fields, sdsdocument.FieldSignalWord)
	}
	if m.FieldCleared(sdsdocument.FieldHCodes) {
		fields = append(fields, sdsdocument.FieldHCodes)
	}
	if m.FieldCleared(sdsdocument.FieldPictograms) {
		fields = append(fields, sdsdocument.FieldPictograms)
	}
	if m.FieldCleared(sdsdocument.FieldPpeRequirements) {
		fields = append(fields, sdsdocument.FieldPpeRequirements)
	}
	if m.FieldCleared(sdsdocument.FieldHmisCodes) {
		fields = append(fields, sdsdocument.FieldHmisCodes)
	}
	if m.FieldCleared(sdsdocument.FieldNfpaCodes) {
		fields = append(fields, sdsdocument.FieldNfpaCodes)
	}
	if m.FieldCleared(sdsdocument.FieldPrecautionaryStatements) {
		fields = append(fields, sdsdocument.FieldPrecautionaryStatements)
	}
	if m.FieldCleared(sdsdocument.FieldFirstAid) {
		fields = append(fields, sdsdocument.FieldFirstAid)
	}
	if m.FieldCleared(sdsdocument.FieldHandlingStorage) {
		fields = append(fields, sdsdocument.FieldHandlingStorage)
	}
	if m.FieldCleared(sdsdocument.FieldPhysicalState) {
		fields = append(fields, sdsdocument.FieldPhysicalState)
	}
	if m.FieldCleared(sdsdocument.FieldFlashPoint) {
		fields = append(fields, sdsdocument.FieldFlashPoint)
	}
	if m.FieldCleared(sdsdocument.FieldAiConfidence) {
		fields = append(fields, sdsdocument.FieldAiConfidence)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SDSDocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SDSDocumentMutation) ClearField(name string) error {
	switch name {
	case sdsdocument.FieldManufacturer:
		m.ClearManufacturer()
		return nil
	case sdsdocument.FieldCasNumber:
		m.ClearCasNumber()
		return nil
	case sdsdocument.FieldSourceURL:
		m.ClearSourceURL()
		return nil
	case sdsdocument.FieldBucketURL:
		m.ClearBucketURL()
		return nil
	case sdsdocument.FieldContentHash:
		m.ClearContentHash()
		return nil
	case sdsdocument.FieldSignalWord:
		m.ClearSignalWord()
		return nil
	case sdsdocument.FieldHCodes:
		m.ClearHCodes()
		return nil
	case sdsdocument.FieldPictograms:
		m.ClearPictograms()
		return nil
	case sdsdocument.FieldPpeRequirements:
		m.ClearPpeRequirements()
		return nil
	case sdsdocument.FieldHmisCodes:
		m.ClearHmisCodes()
		return nil
	case sdsdocument.FieldNfpaCodes:
		m.ClearNfpaCodes()
		return nil
	case sdsdocument.FieldPrecautionaryStatements:
		m.ClearPrecautionaryStatements()
		return nil
	case sdsdocument.FieldFirstAid:
		m.ClearFirstAid()
		return nil
	case sdsdocument.FieldHandlingStorage:
		m.ClearHandlingStorage()
		return nil
	case sdsdocument.FieldPhysicalState:
		m.ClearPhysicalState()
		return nil
	case sdsdocument.FieldFlashPoint:
		m.ClearFlashPoint()
		return nil
	case sdsdocument.FieldAiConfidence:
		m.ClearAiConfidence()
		return nil
	}
	return fmt.Errorf("unknown SDSDocument nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SDSDocumentMutation) ResetField(name string) error {
	switch name {
	case sdsdocument.FieldFacilityID:
		m.ResetFacilityID()
		return nil
	case sdsdocument.FieldProductName:
		m.ResetProductName()
		return nil
	case sdsdocument.FieldManufacturer:
		m.ResetManufacturer()
		return nil
	case sdsdocument.FieldCasNumber:
		m.ResetCasNumber()
		return nil
	case sdsdocument.FieldSourceURL:
		m.ResetSourceURL()
		return nil
	case sdsdocument.FieldBucketURL:
		m.ResetBucketURL()
		return nil
	case sdsdocument.FieldContentHash:
		m.ResetContentHash()
		return nil
	case sdsdocument.FieldSignalWord:
		m.ResetSignalWord()
		return nil
	case sdsdocument.FieldHCodes:
		m.ResetHCodes()
		return nil
	case sdsdocument.FieldPictograms:
		m.ResetPictograms()
		return nil
	case sdsdocument.FieldPpeRequirements:
		m.ResetPpeRequirements()
		return nil
	case sdsdocument.FieldHmisCodes:
		m.ResetHmisCodes()
		return nil
	case sdsdocument.FieldNfpaCodes:
		m.ResetNfpaCodes()
		return nil
	case sdsdocument.FieldPrecautionaryStatements:
		m.ResetPrecautionaryStatements()
		return nil
	case sdsdocument.FieldFirstAid:
		m.ResetFirstAid()
		return nil
	case sdsdocument.FieldHandlingStorage:
		m.ResetHandlingStorage()
		return nil
	case sdsdocument.FieldPhysicalState:
		m.ResetPhysicalState()
		return nil
	case sdsdocument.FieldFlashPoint:
		m.ResetFlashPoint()
		return nil
	case sdsdocument.FieldExtractionQualityScore:
		m.ResetExtractionQualityScore()
		return nil
	case sdsdocument.FieldAiConfidence:
		m.ResetAiConfidence()
		return nil
	case sdsdocument.FieldExtractionStatus:
		m.ResetExtractionStatus()
		return nil
	case sdsdocument.FieldIsReadable:
		m.ResetIsReadable()
		return nil
	case sdsdocument.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case sdsdocument.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SDSDocument field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SDSDocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.facility != nil {
		edges = append(edges, sdsdocument.EdgeFacility)
	}
	if m.jobs != nil {
		edges = append(edges, sdsdocument.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SDSDocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sdsdocument.EdgeFacility:
		if id := m.facility; id != nil {
			return []ent.Value{*id}
		}
	case sdsdocument.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SDSDocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedjobs != nil {
		edges = append(edges, sdsdocument.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SDSDocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case sdsdocument.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SDSDocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedfacility {
		edges = append(edges, sdsdocument.EdgeFacility)
	}
	if m.clearedjobs {
		edges = append(edges, sdsdocument.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SDSDocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case sdsdocument.EdgeFacility:
		return m.clearedfacility
	case sdsdocument.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SDSDocumentMutation) ClearEdge(name string) error {
	switch name {
	case sdsdocument.EdgeFacility:
		m.ClearFacility()
		return nil
	}
	return fmt.Errorf("unknown SDSDocument unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SDSDocumentMutation) ResetEdge(name string) error {
	switch name {
	case sdsdocument.EdgeFacility:
		m.ResetFacility()
		return nil
	case sdsdocument.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown SDSDocument edge %s", name)
}
