// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
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
	"github.com/qrsafety/sds-pipeline/internal/entity"
)

// SDSDocumentUpdate is the builder for updating SDSDocument entities.
type SDSDocumentUpdate struct {
	config
	hooks    []Hook
	mutation *SDSDocumentMutation
}

// Where appends a list predicates to the SDSDocumentUpdate builder.
func (sdu *SDSDocumentUpdate) Where(ps ...predicate.SDSDocument) *SDSDocumentUpdate {
	sdu.mutation.Where(ps...)
	return sdu
}

// SetFacilityID sets the "facility_id" field.
func (sdu *SDSDocumentUpdate) SetFacilityID(u uuid.UUID) *SDSDocumentUpdate {
	sdu.mutation.SetFacilityID(u)
	return sdu
}

// SetNillableFacilityID sets the "facility_id" field if the given value is not nil.
func (sdu *SDSDocumentUpdate) SetNillableFacilityID(u *uuid.UUID) *SDSDocumentUpdate {
	if u != nil {
		sdu.SetFacilityID(*u)
	}
	return sdu
}

// SetProductName sets the "product_name" field.
func (sdu *SDSDocumentUpdate) SetProductName(s string) *SDSDocumentUpdate {
	sdu.mutation.SetProductName(s)
	return sdu
}

// SetNillableProductName sets the "product_name" field if the given value is not nil.
func (sdu *SDSDocumentUpdate) SetNillableProductName(s *string) *SDSDocumentUpdate {
	if s != nil {
		sdu.SetProductName(*s)
	}
	return sdu
}

// SetManufacturer sets the "manufacturer" field.
func (sdu *SDSDocumentUpdate) SetManufacturer(s string) *SDSDocumentUpdate {
	sdu.mutation.SetManufacturer(s)
	return sdu
}

// SetNillableManufacturer sets the "manufacturer" field if the given value is not nil.
func (sdu *SDSDocumentUpdate) SetNillableManufacturer(s *string) *SDSDocumentUpdate {
	if s != nil {
		sdu.SetManufacturer(*s)
	}
	return sdu
}

// ClearManufacturer clears the value of the "manufacturer" field.
func (sdu *SDSDocumentUpdate) ClearManufacturer() *SDSDocumentUpdate {
	sdu.mutation.ClearManufacturer()
	return sdu
}

// SetCasNumber sets the "cas_number" field.
func (sdu *SDSDocumentUpdate) SetCasNumber(s string) *SDSDocumentUpdate {
	sdu.mutation.SetCasNumber(s)
	return sdu
}

// SetNillableCasNumber sets the "cas_number" field if the given value is not nil.
func (sdu *SDSDocumentUpdate) SetNillableCasNumber(s *string) *SDSDocumentUpdate {
	if s != nil {
		sdu.SetCasNumber(*s)
	}
	return sdu
}

// ClearCasNumber clears the value of the "cas_number" field.
func (sdu *SDSDocumentUpdate) ClearCasNumber() *SDSDocumentUpdate {
	sdu.mutation.ClearCasNumber()
	return sdu
}

// SetSourceURL sets the "source_url" field.
func (sdu *SDSDocumentUpdate) SetSourceURL(s string) *SDSDocumentUpdate {
	sdu.mutation.SetSourceURL(s)
	return sdu
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (sdu *SDSDocumentUpdate) SetNillableSourceURL(s *string) *SDSDocumentUpdate {
	if s != nil {
		sdu.SetSourceURL(*s)
	}
	return sdu
}

// ClearSourceURL clears the value of the "source_url" field.
func (sdu *SDSDocumentUpdate) ClearSourceURL() *SDSDocumentUpdate {
	sdu.mutation.ClearSourceURL()
	return sdu
}

// SetBucketURL sets the "bucket_url" field.
func (sdu *SDSDocumentUpdate) SetBucketURL(s string) *SDSDocumentUpdate {
	sdu.mutation.SetBucketURL(s)
	return sdu
}

// SetNillableBucketURL sets the "bucket_url" field if the given value is not nil.
func (sdu *SDSDocumentUpdate) SetNillableBucketURL(s *string) *SDSDocumentUpdate {
	if s != nil {
		sdu.SetBucketURL(*s)
	}
	return sdu
}

// ClearBucketURL clears the value of the "bucket_url" field.
func (sdu *SDSDocumentUpdate) ClearBucketURL() *SDSDocumentUpdate {
	sdu.mutation.ClearBucketURL()
	return sdu
}

// SetContentHash sets the "content_hash" field.
func (sdu *SDSDocumentUpdate) SetContentHash(b []byte) *SDSDocumentUpdate {
	sdu.mutation.SetContentHash(b)
	return sdu
}

// ClearContentHash clears the value of the "content_hash" field.
func (sdu *SDSDocumentUpdate) ClearContentHash() *SDSDocumentUpdate {
	sdu.mutation.ClearContentHash()
	return sdu
}

// SetSignalWord sets the "signal_word" field.
func (sdu *SDSDocumentUpdate) SetSignalWord(s string) *SDSDocumentUpdate {
	sdu.mutation.SetSignalWord(s)
	return sdu
}

// SetNillableSignalWord sets the "signal_word" field if the given value is not nil.
func (sdu *SDSDocumentUpdate) SetNillableSignalWord(s *string) *SDSDocumentUpdate {
	if s != nil {
		sdu.SetSignalWord(*s)
	}
	return sdu
}

// ClearSignalWord clears the value of the "signal_word" field.
func (sdu *SDSDocumentUpdate) ClearSignalWord() *SDSDocumentUpdate {
	sdu.mutation.ClearSignalWord()
	return sdu
}

// SetHCodes sets the "h_codes" field.
func (sdu *SDSDocumentUpdate) SetHCodes(ec []entity.HazardCode) *SDSDocumentUpdate {
	sdu.mutation.SetHCodes(ec)
	return sdu
}

// AppendHCodes appends ec to the "h_codes" field.
func (sdu *SDSDocumentUpdate) AppendHCodes(ec []entity.HazardCode) *SDSDocumentUpdate {
	sdu.mutation.AppendHCodes(ec)
	return sdu
}

// ClearHCodes clears the value of the "h_codes" field.
func (sdu *SDSDocumentUpdate) ClearHCodes() *SDSDocumentUpdate {
	sdu.mutation.ClearHCodes()
	return sdu
}

// SetPictograms sets the "pictograms" field.
func (sdu *SDSDocumentUpdate) SetPictograms(s []string) *SDSDocumentUpdate {
	sdu.mutation.SetPictograms(s)
	return sdu
}

// AppendPictograms appends s to the "pictograms" field.
func (sdu *SDSDocumentUpdate) AppendPictograms(s []string) *SDSDocumentUpdate {
	sdu.mutation.AppendPictograms(s)
	return sdu
}

// ClearPictograms clears the value of the "pictograms" field.
func (sdu *SDSDocumentUpdate) ClearPictograms() *SDSDocumentUpdate {
	sdu.mutation.ClearPictograms()
	return sdu
}

// SetPpeRequirements sets the "ppe_requirements" field.
func (sdu *SDSDocumentUpdate) SetPpeRequirements(er entity.PPERequirements) *SDSDocumentUpdate {
	sdu.mutation.SetPpeRequirements(er)
	return sdu
}

// SetNillablePpeRequirements sets the "ppe_requirements" field if the given value is not nil.
func (sdu *SDSDocumentUpdate) SetNillablePpeRequirements(er *entity.PPERequirements) *SDSDocumentUpdate {
	if er != nil {
		sdu.SetPpeRequirements(*er)
	}
	return sdu
}

// ClearPpeRequirements clears the value of the "ppe_requirements" field.
func (sdu *SDSDocumentUpdate) ClearPpeRequirements() *SDSDocumentUpdate {
	sdu.mutation.ClearPpeRequirements()
	return sdu
}

// SetHmisCodes sets the "hmis_codes" field.
func (sdu *SDSDocumentUpdate) SetHmisCodes(e *entity.Ratings) *SDSDocumentUpdate {
	sdu.mutation.SetHmisCodes(e)
	return sdu
}

// ClearHmisCodes clears the value of the "hmis_codes" field.
func (sdu *SDSDocumentUpdate) ClearHmisCodes() *SDSDocumentUpdate {
	sdu.mutation.ClearHmisCodes()
	return sdu
}

// SetNfpaCodes sets the "nfpa_codes" field.
func (sdu *SDSDocumentUpdate) SetNfpaCodes(e *entity.Ratings) *SDSDocumentUpdate {
	sdu.mutation.SetNfpaCodes(e)
	return sdu
}

// ClearNfpaCodes clears the value of the "nfpa_codes" field.
func (sdu *SDSDocumentUpdate) ClearNfpaCodes() *SDSDocumentUpdate {
	sdu.mutation.ClearNfpaCodes()
	return sdu
}

// SetPrecautionaryStatements sets the "precautionary_statements" field.
func (sdu *SDSDocumentUpdate) SetPrecautionaryStatements(s []string) *SDSDocumentUpdate {
	sdu.mutation.SetPrecautionaryStatements(s)
	return sdu
}

// AppendPrecautionaryStatements appends s to the "precautionary_statements" field.
func (sdu *SDSDocumentUpdate) AppendPrecautionaryStatements(s []string) *SDSDocumentUpdate {
	sdu.mutation.AppendPrecautionaryStatements(s)
	return sdu
}

// ClearPrecautionaryStatements clears the value of the "precautionary_statements" field.
func (sdu *SDSDocumentUpdate) ClearPrecautionaryStatements() *SDSDocumentUpdate {
	sdu.mutation.ClearPrecautionaryStatements()
	return sdu
}

// SetFirstAid sets the "first_aid" field.
func (sdu *SDSDocumentUpdate) SetFirstAid(ea entity.FirstAid) *SDSDocumentUpdate {
	sdu.mutation.SetFirstAid(ea)
	return sdu
}

// SetNillableFirstAid sets the "first_aid" field if the given value is not nil.
func (sdu *SDSDocumentUpdate) SetNillableFirstAid(ea *entity.FirstAid) *SDSDocumentUpdate {
	if ea != nil {
		sdu.SetFirstAid(*ea)
	}
	return sdu
}

// ClearFirstAid clears the value of the "first_aid" field.
func (sdu *SDSDocumentUpdate) ClearFirstAid() *SDSDocumentUpdate {
	sdu.mutation.ClearFirstAid()
	return sdu
}

// SetHandlingStorage sets the "handling_storage" field.
func (sdu *SDSDocumentUpdate) SetHandlingStorage(s string) *SDSDocumentUpdate {
	sdu.mutation.SetHandlingStorage(s)
	return sdu
}

// SetNillableHandlingStorage sets the "handling_storage" field if the given value is not nil.
func (sdu *SDSDocumentUpdate) SetNillableHandlingStorage(s *string) *SDSDocumentUpdate {
	if s != nil {
		sdu.SetHandlingStorage(*s)
	}
	return sdu
}

// ClearHandlingStorage clears the value of the "handling_storage" field.
func (sdu *SDSDocumentUpdate) ClearHandlingStorage() *SDSDocumentUpdate {
	sdu.mutation.ClearHandlingStorage()
	return sdu
}

// SetPhysicalState sets the "physical_state" field.
func (sdu *SDSDocumentUpdate) SetPhysicalState(s string) *SDSDocumentUpdate {
	sdu.mutation.SetPhysicalState(s)
	return sdu
}

// SetNillablePhysicalState sets the "physical_state" field if the given value is not nil.
func (sdu *SDSDocumentUpdate) SetNillablePhysicalState(s *string) *SDSDocumentUpdate {
	if s != nil {
		sdu.SetPhysicalState(*s)
	}
	return sdu
}

// ClearPhysicalState clears the value of the "physical_state" field.
func (sdu *SDSDocumentUpdate) ClearPhysicalState() *SDSDocumentUpdate {
	sdu.mutation.ClearPhysicalState()
	return sdu
}

// SetFlashPoint sets the "flash_point" field.
func (sdu *SDSDocumentUpdate) SetFlashPoint(s string) *SDSDocumentUpdate {
	sdu.mutation.SetFlashPoint(s)
	return sdu
}

// SetNillableFlashPoint sets the "flash_point" field if the given value is not nil.
func (sdu *SDSDocumentUpdate) SetNillableFlashPoint(s *string) *SDSDocumentUpdate {
	if s != nil {
		sdu.SetFlashPoint(*s)
	}
	return sdu
}

// ClearFlashPoint clears the value of the "flash_point" field.
func (sdu *SDSDocumentUpdate) ClearFlashPoint() *SDSDocumentUpdate {
	sdu.mutation.ClearFlashPoint()
	return sdu
}

// SetExtractionQualityScore sets the "extraction_quality_score" field.
func (sdu *SDSDocumentUpdate) SetExtractionQualityScore(i int) *SDSDocumentUpdate {
	sdu.mutation.ResetExtractionQualityScore()
	sdu.mutation.SetExtractionQualityScore(i)
	return sdu
}

// SetNillableExtractionQualityScore sets the "extraction_quality_score" field if the given value is not nil.
func (sdu *SDSDocumentUpdate) SetNillableExtractionQualityScore(i *int) *SDSDocumentUpdate {
	if i != nil {
		sdu.SetExtractionQualityScore(*i)
	}
	return sdu
}

// AddExtractionQualityScore adds i to the "extraction_quality_score" field.
func (sdu *SDSDocumentUpdate) AddExtractionQualityScore(i int) *SDSDocumentUpdate {
	sdu.mutation.AddExtractionQualityScore(i)
	return sdu
}

// SetAiConfidence sets the "ai_confidence" field.
func (sdu *SDSDocumentUpdate) SetAiConfidence(f float32) *SDSDocumentUpdate {
	sdu.mutation.ResetAiConfidence()
	sdu.mutation.SetAiConfidence(f)
	return sdu
}

// SetNillableAiConfidence sets the "ai_confidence" field if the given value is not nil.
func (sdu *SDSDocumentUpdate) SetNillableAiConfidence(f *float32) *SDSDocumentUpdate {
	if f != nil {
		sdu.SetAiConfidence(*f)
	}
	return sdu
}

// AddAiConfidence adds f to the "ai_confidence" field.
func (sdu *SDSDocumentUpdate) AddAiConfidence(f float32) *SDSDocumentUpdate {
	sdu.mutation.AddAiConfidence(f)
	return sdu
}

// ClearAiConfidence clears the value of the "ai_confidence" field.
func (sdu *SDSDocumentUpdate) ClearAiConfidence() *SDSDocumentUpdate {
	sdu.mutation.ClearAiConfidence()
	return sdu
}

// SetExtractionStatus sets the "extraction_status" field.
func (sdu *SDSDocumentUpdate) SetExtractionStatus(s string) *SDSDocumentUpdate {
	sdu.mutation.SetExtractionStatus(s)
	return sdu
}

// SetNillableExtractionStatus sets the "extraction_status" field if the given value is not nil.
func (sdu *SDSDocumentUpdate) SetNillableExtractionStatus(s *string) *SDSDocumentUpdate {
	if s != nil {
		sdu.SetExtractionStatus(*s)
	}
	return sdu
}

// SetIsReadable sets the "is_readable" field.
func (sdu *SDSDocumentUpdate) SetIsReadable(b bool) *SDSDocumentUpdate {
	sdu.mutation.SetIsReadable(b)
	return sdu
}

// SetNillableIsReadable sets the "is_readable" field if the given value is not nil.
func (sdu *SDSDocumentUpdate) SetNillableIsReadable(b *bool) *SDSDocumentUpdate {
	if b != nil {
		sdu.SetIsReadable(*b)
	}
	return sdu
}

// SetCreatedAt sets the "created_at" field.
func (sdu *SDSDocumentUpdate) SetCreatedAt(t time.Time) *SDSDocumentUpdate {
	sdu.mutation.SetCreatedAt(t)
	return sdu
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (sdu *SDSDocumentUpdate) SetNillableCreatedAt(t *time.Time) *SDSDocumentUpdate {
	if t != nil {
		sdu.SetCreatedAt(*t)
	}
	return sdu
}

// SetUpdatedAt sets the "updated_at" field.
func (sdu *SDSDocumentUpdate) SetUpdatedAt(t time.Time) *SDSDocumentUpdate {
	sdu.mutation.SetUpdatedAt(t)
	return sdu
}

// SetFacility sets the "facility" edge to the Facility entity.
func (sdu *SDSDocumentUpdate) SetFacility(f *Facility) *SDSDocumentUpdate {
	return sdu.SetFacilityID(f.ID)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (sdu *SDSDocumentUpdate) AddJobIDs(ids ...uuid.UUID) *SDSDocumentUpdate {
	sdu.mutation.AddJobIDs(ids...)
	return sdu
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (sdu *SDSDocumentUpdate) AddJobs(e ...*ExtractJob) *SDSDocumentUpdate {
	ids := make([]uuid.UUID, len(e))
	for i := range e {
		ids[i] = e[i].ID
	}
	return sdu.AddJobIDs(ids...)
}

// Mutation returns the SDSDocumentMutation object of the builder.
func (sdu *SDSDocumentUpdate) Mutation() *SDSDocumentMutation {
	return sdu.mutation
}

// ClearFacility clears the "facility" edge to the Facility entity.
func (sdu *SDSDocumentUpdate) ClearFacility() *SDSDocumentUpdate {
	sdu.mutation.ClearFacility()
	return sdu
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (sdu *SDSDocumentUpdate) ClearJobs() *SDSDocumentUpdate {
	sdu.mutation.ClearJobs()
	return sdu
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (sdu *SDSDocumentUpdate) RemoveJobIDs(ids ...uuid.UUID) *SDSDocumentUpdate {
	sdu.mutation.RemoveJobIDs(ids...)
	return sdu
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (sdu *SDSDocumentUpdate) RemoveJobs(e ...*ExtractJob) *SDSDocumentUpdate {
	ids := make([]uuid.UUID, len(e))
	for i := range e {
		ids[i] = e[i].ID
	}
	return sdu.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (sdu *SDSDocumentUpdate) Save(ctx context.Context) (int, error) {
	sdu.defaults()
	return withHooks(ctx, sdu.sqlSave, sdu.mutation, sdu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (sdu *SDSDocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := sdu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (sdu *SDSDocumentUpdate) Exec(ctx context.Context) error {
	_, err := sdu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sdu *SDSDocumentUpdate) ExecX(ctx context.Context) {
	if err := sdu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (sdu *SDSDocumentUpdate) defaults() {
	if _, ok := sdu.mutation.UpdatedAt(); !ok {
		v := sdsdocument.UpdateDefaultUpdatedAt()
		sdu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sdu *SDSDocumentUpdate) check() error {
	if v, ok := sdu.mutation.ExtractionQualityScore(); ok {
		if err := sdsdocument.ExtractionQualityScoreValidator(v); err != nil {
			return &ValidationError{Name: "extraction_quality_score", err: fmt.Errorf(`ent: validator failed for field "SDSDocument.extraction_quality_score": %w`, err)}
		}
	}
	if v, ok := sdu.mutation.ExtractionStatus(); ok {
		if err := sdsdocument.ExtractionStatusValidator(v); err != nil {
			return &ValidationError{Name: "extraction_status", err: fmt.Errorf(`ent: validator failed for field "SDSDocument.extraction_status": %w`, err)}
		}
	}
	if sdu.mutation.FacilityCleared() && len(sdu.mutation.FacilityIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SDSDocument.facility"`)
	}
	return nil
}

func (sdu *SDSDocumentUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := sdu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(sdsdocument.Table, sdsdocument.Columns, sqlgraph.NewFieldSpec(sdsdocument.FieldID, field.TypeUUID))
	if ps := sdu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := sdu.mutation.ProductName(); ok {
		_spec.SetField(sdsdocument.FieldProductName, field.TypeString, value)
	}
	if value, ok := sdu.mutation.Manufacturer(); ok {
		_spec.SetField(sdsdocument.FieldManufacturer, field.TypeString, value)
	}
	if sdu.mutation.ManufacturerCleared() {
		_spec.ClearField(sdsdocument.FieldManufacturer, field.TypeString)
	}
	if value, ok := sdu.mutation.CasNumber(); ok {
		_spec.SetField(sdsdocument.FieldCasNumber, field.TypeString, value)
	}
	if sdu.mutation.CasNumberCleared() {
		_spec.ClearField(sdsdocument.FieldCasNumber, field.TypeString)
	}
	if value, ok := sdu.mutation.SourceURL(); ok {
		_spec.SetField(sdsdocument.FieldSourceURL, field.TypeString, value)
	}
	if sdu.mutation.SourceURLCleared() {
		_spec.ClearField(sdsdocument.FieldSourceURL, field.TypeString)
	}
	if value, ok := sdu.mutation.BucketURL(); ok {
		_spec.SetField(sdsdocument.FieldBucketURL, field.TypeString, value)
	}
	if sdu.mutation.BucketURLCleared() {
		_spec.ClearField(sdsdocument.FieldBucketURL, field.TypeString)
	}
	if value, ok := sdu.mutation.ContentHash(); ok {
		_spec.SetField(sdsdocument.FieldContentHash, field.TypeBytes, value)
	}
	if sdu.mutation.ContentHashCleared() {
		_spec.ClearField(sdsdocument.FieldContentHash, field.TypeBytes)
	}
	if value, ok := sdu.mutation.SignalWord(); ok {
		_spec.SetField(sdsdocument.FieldSignalWord, field.TypeString, value)
	}
	if sdu.mutation.SignalWordCleared() {
		_spec.ClearField(sdsdocument.FieldSignalWord, field.TypeString)
	}
	if value, ok := sdu.mutation.HCodes(); ok {
		_spec.SetField(sdsdocument.FieldHCodes, field.TypeJSON, value)
	}
	if value, ok := sdu.mutation.AppendedHCodes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sdsdocument.FieldHCodes, value)
		})
	}
	if sdu.mutation.HCodesCleared() {
		_spec.ClearField(sdsdocument.FieldHCodes, field.TypeJSON)
	}
	if value, ok := sdu.mutation.Pictograms(); ok {
		_spec.SetField(sdsdocument.FieldPictograms, field.TypeJSON, value)
	}
	if value, ok := sdu.mutation.AppendedPictograms(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sdsdocument.FieldPictograms, value)
		})
	}
	if sdu.mutation.PictogramsCleared() {
		_spec.ClearField(sdsdocument.FieldPictograms, field.TypeJSON)
	}
	if value, ok := sdu.mutation.PpeRequirements(); ok {
		_spec.SetField(sdsdocument.FieldPpeRequirements, field.TypeJSON, value)
	}
	if sdu.mutation.PpeRequirementsCleared() {
		_spec.ClearField(sdsdocument.FieldPpeRequirements, field.TypeJSON)
	}
	if value, ok := sdu.mutation.HmisCodes(); ok {
		_spec.SetField(sdsdocument.FieldHmisCodes, field.TypeJSON, value)
	}
	if sdu.mutation.HmisCodesCleared() {
		_spec.ClearField(sdsdocument.FieldHmisCodes, field.TypeJSON)
	}
	if value, ok := sdu.mutation.NfpaCodes(); ok {
		_spec.SetField(sdsdocument.FieldNfpaCodes, field.TypeJSON, value)
	}
	if sdu.mutation.NfpaCodesCleared() {
		_spec.ClearField(sdsdocument.FieldNfpaCodes, field.TypeJSON)
	}
	if value, ok := sdu.mutation.PrecautionaryStatements(); ok {
		_spec.SetField(sdsdocument.FieldPrecautionaryStatements, field.TypeJSON, value)
	}
	if value, ok := sdu.mutation.AppendedPrecautionaryStatements(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sdsdocument.FieldPrecautionaryStatements, value)
		})
	}
	if sdu.mutation.PrecautionaryStatementsCleared() {
		_spec.ClearField(sdsdocument.FieldPrecautionaryStatements, field.TypeJSON)
	}
	if value, ok := sdu.mutation.FirstAid(); ok {
		_spec.SetField(sdsdocument.FieldFirstAid, field.TypeJSON, value)
	}
	if sdu.mutation.FirstAidCleared() {
		_spec.ClearField(sdsdocument.FieldFirstAid, field.TypeJSON)
	}
	if value, ok := sdu.mutation.HandlingStorage(); ok {
		_spec.SetField(sdsdocument.FieldHandlingStorage, field.TypeString, value)
	}
	if sdu.mutation.HandlingStorageCleared() {
		_spec.ClearField(sdsdocument.FieldHandlingStorage, field.TypeString)
	}
	if value, ok := sdu.mutation.PhysicalState(); ok {
		_spec.SetField(sdsdocument.FieldPhysicalState, field.TypeString, value)
	}
	if sdu.mutation.PhysicalStateCleared() {
		_spec.ClearField(sdsdocument.FieldPhysicalState, field.TypeString)
	}
	if value, ok := sdu.mutation.FlashPoint(); ok {
		_spec.SetField(sdsdocument.FieldFlashPoint, field.TypeString, value)
	}
	if sdu.mutation.FlashPointCleared() {
		_spec.ClearField(sdsdocument.FieldFlashPoint, field.TypeString)
	}
	if value, ok := sdu.mutation.ExtractionQualityScore(); ok {
		_spec.SetField(sdsdocument.FieldExtractionQualityScore, field.TypeInt, value)
	}
	if value, ok := sdu.mutation.AddedExtractionQualityScore(); ok {
		_spec.AddField(sdsdocument.FieldExtractionQualityScore, field.TypeInt, value)
	}
	if value, ok := sdu.mutation.AiConfidence(); ok {
		_spec.SetField(sdsdocument.FieldAiConfidence, field.TypeFloat32, value)
	}
	if value, ok := sdu.mutation.AddedAiConfidence(); ok {
		_spec.AddField(sdsdocument.FieldAiConfidence, field.TypeFloat32, value)
	}
	if sdu.mutation.AiConfidenceCleared() {
		_spec.ClearField(sdsdocument.FieldAiConfidence, field.TypeFloat32)
	}
	if value, ok := sdu.mutation.ExtractionStatus(); ok {
		_spec.SetField(sdsdocument.FieldExtractionStatus, field.TypeString, value)
	}
	if value, ok := sdu.mutation.IsReadable(); ok {
		_spec.SetField(sdsdocument.FieldIsReadable, field.TypeBool, value)
	}
	if value, ok := sdu.mutation.CreatedAt(); ok {
		_spec.SetField(sdsdocument.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := sdu.mutation.UpdatedAt(); ok {
		_spec.SetField(sdsdocument.FieldUpdatedAt, field.TypeTime, value)
	}
	if sdu.mutation.FacilityCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sdsdocument.FacilityTable,
			Columns: []string{sdsdocument.FacilityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(facility.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := sdu.mutation.FacilityIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sdsdocument.FacilityTable,
			Columns: []string{sdsdocument.FacilityColumn},
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
	if sdu.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sdsdocument.JobsTable,
			Columns: []string{sdsdocument.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := sdu.mutation.RemovedJobsIDs(); len(nodes) > 0 && !sdu.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sdsdocument.JobsTable,
			Columns: []string{sdsdocument.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := sdu.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sdsdocument.JobsTable,
			Columns: []string{sdsdocument.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, sdu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sdsdocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	sdu.mutation.done = true
	return n, nil
}

// SDSDocumentUpdateOne is the builder for updating a single SDSDocument entity.
type SDSDocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SDSDocumentMutation
}

// SetFacilityID sets the "facility_id" field.
func (sduo *SDSDocumentUpdateOne) SetFacilityID(u uuid.UUID) *SDSDocumentUpdateOne {
	sduo.mutation.SetFacilityID(u)
	return sduo
}

// SetNillableFacilityID sets the "facility_id" field if the given value is not nil.
func (sduo *SDSDocumentUpdateOne) SetNillableFacilityID(u *uuid.UUID) *SDSDocumentUpdateOne {
	if u != nil {
		sduo.SetFacilityID(*u)
	}
	return sduo
}

// SetProductName sets the "product_name" field.
func (sduo *SDSDocumentUpdateOne) SetProductName(s string) *SDSDocumentUpdateOne {
	sduo.mutation.SetProductName(s)
	return sduo
}

// SetNillableProductName sets the "product_name" field if the given value is not nil.
func (sduo *SDSDocumentUpdateOne) SetNillableProductName(s *string) *SDSDocumentUpdateOne {
	if s != nil {
		sduo.SetProductName(*s)
	}
	return sduo
}

// SetManufacturer sets the "manufacturer" field.
func (sduo *SDSDocumentUpdateOne) SetManufacturer(s string) *SDSDocumentUpdateOne {
	sduo.mutation.SetManufacturer(s)
	return sduo
}

// SetNillableManufacturer sets the "manufacturer" field if the given value is not nil.
func (sduo *SDSDocumentUpdateOne) SetNillableManufacturer(s *string) *SDSDocumentUpdateOne {
	if s != nil {
		sduo.SetManufacturer(*s)
	}
	return sduo
}

// ClearManufacturer clears the value of the "manufacturer" field.
func (sduo *SDSDocumentUpdateOne) ClearManufacturer() *SDSDocumentUpdateOne {
	sduo.mutation.ClearManufacturer()
	return sduo
}

// SetCasNumber sets the "cas_number" field.
func (sduo *SDSDocumentUpdateOne) SetCasNumber(s string) *SDSDocumentUpdateOne {
	sduo.mutation.SetCasNumber(s)
	return sduo
}

// SetNillableCasNumber sets the "cas_number" field if the given value is not nil.
func (sduo *SDSDocumentUpdateOne) SetNillableCasNumber(s *string) *SDSDocumentUpdateOne {
	if s != nil {
		sduo.SetCasNumber(*s)
	}
	return sduo
}

// ClearCasNumber clears the value of the "cas_number" field.
func (sduo *SDSDocumentUpdateOne) ClearCasNumber() *SDSDocumentUpdateOne {
	sduo.mutation.ClearCasNumber()
	return sduo
}

// SetSourceURL sets the "source_url" field.
func (sduo *SDSDocumentUpdateOne) SetSourceURL(s string) *SDSDocumentUpdateOne {
	sduo.mutation.SetSourceURL(s)
	return sduo
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (sduo *SDSDocumentUpdateOne) SetNillableSourceURL(s *string) *SDSDocumentUpdateOne {
	if s != nil {
		sduo.SetSourceURL(*s)
	}
	return sduo
}

// ClearSourceURL clears the value of the "source_url" field.
func (sduo *SDSDocumentUpdateOne) ClearSourceURL() *SDSDocumentUpdateOne {
	sduo.mutation.ClearSourceURL()
	return sduo
}

// SetBucketURL sets the "bucket_url" field.
func (sduo *SDSDocumentUpdateOne) SetBucketURL(s string) *SDSDocumentUpdateOne {
	sduo.mutation.SetBucketURL(s)
	return sduo
}

// SetNillableBucketURL sets the "bucket_url" field if the given value is not nil.
func (sduo *SDSDocumentUpdateOne) SetNillableBucketURL(s *string) *SDSDocumentUpdateOne {
	if s != nil {
		sduo.SetBucketURL(*s)
	}
	return sduo
}

// ClearBucketURL clears the value of the "bucket_url" field.
func (sduo *SDSDocumentUpdateOne) ClearBucketURL() *SDSDocumentUpdateOne {
	sduo.mutation.ClearBucketURL()
	return sduo
}

// SetContentHash sets the "content_hash" field.
func (sduo *SDSDocumentUpdateOne) SetContentHash(b []byte) *SDSDocumentUpdateOne {
	sduo.mutation.SetContentHash(b)
	return sduo
}

// ClearContentHash clears the value of the "content_hash" field.
func (sduo *SDSDocumentUpdateOne) ClearContentHash() *SDSDocumentUpdateOne {
	sduo.mutation.ClearContentHash()
	return sduo
}

// SetSignalWord sets the "signal_word" field.
func (sduo *SDSDocumentUpdateOne) SetSignalWord(s string) *SDSDocumentUpdateOne {
	sduo.mutation.SetSignalWord(s)
	return sduo
}

// SetNillableSignalWord sets the "signal_word" field if the given value is not nil.
func (sduo *SDSDocumentUpdateOne) SetNillableSignalWord(s *string) *SDSDocumentUpdateOne {
	if s != nil {
		sduo.SetSignalWord(*s)
	}
	return sduo
}

// ClearSignalWord clears the value of the "signal_word" field.
func (sduo *SDSDocumentUpdateOne) ClearSignalWord() *SDSDocumentUpdateOne {
	sduo.mutation.ClearSignalWord()
	return sduo
}

// SetHCodes sets the "h_codes" field.
func (sduo *SDSDocumentUpdateOne) SetHCodes(ec []entity.HazardCode) *SDSDocumentUpdateOne {
	sduo.mutation.SetHCodes(ec)
	return sduo
}

// AppendHCodes appends ec to the "h_codes" field.
func (sduo *SDSDocumentUpdateOne) AppendHCodes(ec []entity.HazardCode) *SDSDocumentUpdateOne {
	sduo.mutation.AppendHCodes(ec)
	return sduo
}

// ClearHCodes clears the value of the "h_codes" field.
func (sduo *SDSDocumentUpdateOne) ClearHCodes() *SDSDocumentUpdateOne {
	sduo.mutation.ClearHCodes()
	return sduo
}

// SetPictograms sets the "pictograms" field.
func (sduo *SDSDocumentUpdateOne) SetPictograms(s []string) *SDSDocumentUpdateOne {
	sduo.mutation.SetPictograms(s)
	return sduo
}

// AppendPictograms appends s to the "pictograms" field.
func (sduo *SDSDocumentUpdateOne) AppendPictograms(s []string) *SDSDocumentUpdateOne {
	sduo.mutation.AppendPictograms(s)
	return sduo
}

// ClearPictograms clears the value of the "pictograms" field.
func (sduo *SDSDocumentUpdateOne) ClearPictograms() *SDSDocumentUpdateOne {
	sduo.mutation.ClearPictograms()
	return sduo
}

// SetPpeRequirements sets the "ppe_requirements" field.
func (sduo *SDSDocumentUpdateOne) SetPpeRequirements(er entity.PPERequirements) *SDSDocumentUpdateOne {
	sduo.mutation.SetPpeRequirements(er)
	return sduo
}

// SetNillablePpeRequirements sets the "ppe_requirements" field if the given value is not nil.
func (sduo *SDSDocumentUpdateOne) SetNillablePpeRequirements(er *entity.PPERequirements) *SDSDocumentUpdateOne {
	if er != nil {
		sduo.SetPpeRequirements(*er)
	}
	return sduo
}

// ClearPpeRequirements clears the value of the "ppe_requirements" field.
func (sduo *SDSDocumentUpdateOne) ClearPpeRequirements() *SDSDocumentUpdateOne {
	sduo.mutation.ClearPpeRequirements()
	return sduo
}

// SetHmisCodes sets the "hmis_codes" field.
func (sduo *SDSDocumentUpdateOne) SetHmisCodes(e *entity.Ratings) *SDSDocumentUpdateOne {
	sduo.mutation.SetHmisCodes(e)
	return sduo
}

// ClearHmisCodes clears the value of the "hmis_codes" field.
func (sduo *SDSDocumentUpdateOne) ClearHmisCodes() *SDSDocumentUpdateOne {
	sduo.mutation.ClearHmisCodes()
	return sduo
}

// SetNfpaCodes sets the "nfpa_codes" field.
func (sduo *SDSDocumentUpdateOne) SetNfpaCodes(e *entity.Ratings) *SDSDocumentUpdateOne {
	sduo.mutation.SetNfpaCodes(e)
	return sduo
}

// ClearNfpaCodes clears the value of the "nfpa_codes" field.
func (sduo *SDSDocumentUpdateOne) ClearNfpaCodes() *SDSDocumentUpdateOne {
	sduo.mutation.ClearNfpaCodes()
	return sduo
}

// SetPrecautionaryStatements sets the "precautionary_statements" field.
func (sduo *SDSDocumentUpdateOne) SetPrecautionaryStatements(s []string) *SDSDocumentUpdateOne {
	sduo.mutation.SetPrecautionaryStatements(s)
	return sduo
}

// AppendPrecautionaryStatements appends s to the "precautionary_statements" field.
func (sduo *SDSDocumentUpdateOne) AppendPrecautionaryStatements(s []string) *SDSDocumentUpdateOne {
	sduo.mutation.AppendPrecautionaryStatements(s)
	return sduo
}

// ClearPrecautionaryStatements clears the value of the "precautionary_statements" field.
func (sduo *SDSDocumentUpdateOne) ClearPrecautionaryStatements() *SDSDocumentUpdateOne {
	sduo.mutation.ClearPrecautionaryStatements()
	return sduo
}

// SetFirstAid sets the "first_aid" field.
func (sduo *SDSDocumentUpdateOne) SetFirstAid(ea entity.FirstAid) *SDSDocumentUpdateOne {
	sduo.mutation.SetFirstAid(ea)
	return sduo
}

// SetNillableFirstAid sets the "first_aid" field if the given value is not nil.
func (sduo *SDSDocumentUpdateOne) SetNillableFirstAid(ea *entity.FirstAid) *SDSDocumentUpdateOne {
	if ea != nil {
		sduo.SetFirstAid(*ea)
	}
	return sduo
}

// ClearFirstAid clears the value of the "first_aid" field.
func (sduo *SDSDocumentUpdateOne) ClearFirstAid() *SDSDocumentUpdateOne {
	sduo.mutation.ClearFirstAid()
	return sduo
}

// SetHandlingStorage sets the "handling_storage" field.
func (sduo *SDSDocumentUpdateOne) SetHandlingStorage(s string) *SDSDocumentUpdateOne {
	sduo.mutation.SetHandlingStorage(s)
	return sduo
}

// SetNillableHandlingStorage sets the "handling_storage" field if the given value is not nil.
func (sduo *SDSDocumentUpdateOne) SetNillableHandlingStorage(s *string) *SDSDocumentUpdateOne {
	if s != nil {
		sduo.SetHandlingStorage(*s)
	}
	return sduo
}

// ClearHandlingStorage clears the value of the "handling_storage" field.
func (sduo *SDSDocumentUpdateOne) ClearHandlingStorage() *SDSDocumentUpdateOne {
	sduo.mutation.ClearHandlingStorage()
	return sduo
}

// SetPhysicalState sets the "physical_state" field.
func (sduo *SDSDocumentUpdateOne) SetPhysicalState(s string) *SDSDocumentUpdateOne {
	sduo.mutation.SetPhysicalState(s)
	return sduo
}

// SetNillablePhysicalState sets the "physical_state" field if the given value is not nil.
func (sduo *SDSDocumentUpdateOne) SetNillablePhysicalState(s *string) *SDSDocumentUpdateOne {
	if s != nil {
		sduo.SetPhysicalState(*s)
	}
	return sduo
}

// ClearPhysicalState clears the value of the "physical_state" field.
func (sduo *SDSDocumentUpdateOne) ClearPhysicalState() *SDSDocumentUpdateOne {
	sduo.mutation.ClearPhysicalState()
	return sduo
}

// SetFlashPoint sets the "flash_point" field.
func (sduo *SDSDocumentUpdateOne) SetFlashPoint(s string) *SDSDocumentUpdateOne {
	sduo.mutation.SetFlashPoint(s)
	return sduo
}

// SetNillableFlashPoint sets the "flash_point" field if the given value is not nil.
func (sduo *SDSDocumentUpdateOne) SetNillableFlashPoint(s *string) *SDSDocumentUpdateOne {
	if s != nil {
		sduo.SetFlashPoint(*s)
	}
	return sduo
}

// ClearFlashPoint clears the value of the "flash_point" field.
func (sduo *SDSDocumentUpdateOne) ClearFlashPoint() *SDSDocumentUpdateOne {
	sduo.mutation.ClearFlashPoint()
	return sduo
}

// SetExtractionQualityScore sets the "extraction_quality_score" field.
func (sduo *SDSDocumentUpdateOne) SetExtractionQualityScore(i int) *SDSDocumentUpdateOne {
	sduo.mutation.ResetExtractionQualityScore()
	sduo.mutation.SetExtractionQualityScore(i)
	return sduo
}

// SetNillableExtractionQualityScore sets the "extraction_quality_score" field if the given value is not nil.
func (sduo *SDSDocumentUpdateOne) SetNillableExtractionQualityScore(i *int) *SDSDocumentUpdateOne {
	if i != nil {
		sduo.SetExtractionQualityScore(*i)
	}
	return sduo
}

// AddExtractionQualityScore adds i to the "extraction_quality_score" field.
func (sduo *SDSDocumentUpdateOne) AddExtractionQualityScore(i int) *SDSDocumentUpdateOne {
	sduo.mutation.AddExtractionQualityScore(i)
	return sduo
}

// SetAiConfidence sets the "ai_confidence" field.
func (sduo *SDSDocumentUpdateOne) SetAiConfidence(f float32) *SDSDocumentUpdateOne {
	sduo.mutation.ResetAiConfidence()
	sduo.mutation.SetAiConfidence(f)
	return sduo
}

// SetNillableAiConfidence sets the "ai_confidence" field if the given value is not nil.
func (sduo *SDSDocumentUpdateOne) SetNillableAiConfidence(f *float32) *SDSDocumentUpdateOne {
	if f != nil {
		sduo.SetAiConfidence(*f)
	}
	return sduo
}

// AddAiConfidence adds f to the "ai_confidence" field.
func (sduo *SDSDocumentUpdateOne) AddAiConfidence(f float32) *SDSDocumentUpdateOne {
	sduo.mutation.AddAiConfidence(f)
	return sduo
}

// ClearAiConfidence clears the value of the "ai_confidence" field.
func (sduo *SDSDocumentUpdateOne) ClearAiConfidence() *SDSDocumentUpdateOne {
	sduo.mutation.ClearAiConfidence()
	return sduo
}

// SetExtractionStatus sets the "extraction_status" field.
func (sduo *SDSDocumentUpdateOne) SetExtractionStatus(s string) *SDSDocumentUpdateOne {
	sduo.mutation.SetExtractionStatus(s)
	return sduo
}

// SetNillableExtractionStatus sets the "extraction_status" field if the given value is not nil.
func (sduo *SDSDocumentUpdateOne) SetNillableExtractionStatus(s *string) *SDSDocumentUpdateOne {
	if s != nil {
		sduo.SetExtractionStatus(*s)
	}
	return sduo
}

// SetIsReadable sets the "is_readable" field.
func (sduo *SDSDocumentUpdateOne) SetIsReadable(b bool) *SDSDocumentUpdateOne {
	sduo.mutation.SetIsReadable(b)
	return sduo
}

// SetNillableIsReadable sets the "is_readable" field if the given value is not nil.
func (sduo *SDSDocumentUpdateOne) SetNillableIsReadable(b *bool) *SDSDocumentUpdateOne {
	if b != nil {
		sduo.SetIsReadable(*b)
	}
	return sduo
}

// SetCreatedAt sets the "created_at" field.
func (sduo *SDSDocumentUpdateOne) SetCreatedAt(t time.Time) *SDSDocumentUpdateOne {
	sduo.mutation.SetCreatedAt(t)
	return sduo
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (sduo *SDSDocumentUpdateOne) SetNillableCreatedAt(t *time.Time) *SDSDocumentUpdateOne {
	if t != nil {
		sduo.SetCreatedAt(*t)
	}
	return sduo
}

// SetUpdatedAt sets the "updated_at" field.
func (sduo *SDSDocumentUpdateOne) SetUpdatedAt(t time.Time) *SDSDocumentUpdateOne {
	sduo.mutation.SetUpdatedAt(t)
	return sduo
}

// SetFacility sets the "facility" edge to the Facility entity.
func (sduo *SDSDocumentUpdateOne) SetFacility(f *Facility) *SDSDocumentUpdateOne {
	return sduo.SetFacilityID(f.ID)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (sduo *SDSDocumentUpdateOne) AddJobIDs(ids ...uuid.UUID) *SDSDocumentUpdateOne {
	sduo.mutation.AddJobIDs(ids...)
	return sduo
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (sduo *SDSDocumentUpdateOne) AddJobs(e ...*ExtractJob) *SDSDocumentUpdateOne {
	ids := make([]uuid.UUID, len(e))
	for i := range e {
		ids[i] = e[i].ID
	}
	return sduo.AddJobIDs(ids...)
}

// Mutation returns the SDSDocumentMutation object of the builder.
func (sduo *SDSDocumentUpdateOne) Mutation() *SDSDocumentMutation {
	return sduo.mutation
}

// ClearFacility clears the "facility" edge to the Facility entity.
func (sduo *SDSDocumentUpdateOne) ClearFacility() *SDSDocumentUpdateOne {
	sduo.mutation.ClearFacility()
	return sduo
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (sduo *SDSDocumentUpdateOne) ClearJobs() *SDSDocumentUpdateOne {
	sduo.mutation.ClearJobs()
	return sduo
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (sduo *SDSDocumentUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *SDSDocumentUpdateOne {
	sduo.mutation.RemoveJobIDs(ids...)
	return sduo
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (sduo *SDSDocumentUpdateOne) RemoveJobs(e ...*ExtractJob) *SDSDocumentUpdateOne {
	ids := make([]uuid.UUID, len(e))
	for i := range e {
		ids[i] = e[i].ID
	}
	return sduo.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the SDSDocumentUpdate builder.
func (sduo *SDSDocumentUpdateOne) Where(ps ...predicate.SDSDocument) *SDSDocumentUpdateOne {
	sduo.mutation.Where(ps...)
	return sduo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (sduo *SDSDocumentUpdateOne) Select(field string, fields ...string) *SDSDocumentUpdateOne {
	sduo.fields = append([]string{field}, fields...)
	return sduo
}

// Save executes the query and returns the updated SDSDocument entity.
func (sduo *SDSDocumentUpdateOne) Save(ctx context.Context) (*SDSDocument, error) {
	sduo.defaults()
	return withHooks(ctx, sduo.sqlSave, sduo.mutation, sduo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (sduo *SDSDocumentUpdateOne) SaveX(ctx context.Context) *SDSDocument {
	node, err := sduo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (sduo *SDSDocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := sduo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sduo *SDSDocumentUpdateOne) ExecX(ctx context.Context) {
	if err := sduo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (sduo *SDSDocumentUpdateOne) defaults() {
	if _, ok := sduo.mutation.UpdatedAt(); !ok {
		v := sdsdocument.UpdateDefaultUpdatedAt()
		sduo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sduo *SDSDocumentUpdateOne) check() error {
	if v, ok := sduo.mutation.ExtractionQualityScore(); ok {
		if err := sdsdocument.ExtractionQualityScoreValidator(v); err != nil {
			return &ValidationError{Name: "extraction_quality_score", err: fmt.Errorf(`ent: validator failed for field "SDSDocument.extraction_quality_score": %w`, err)}
		}
	}
	if v, ok := sduo.mutation.ExtractionStatus(); ok {
		if err := sdsdocument.ExtractionStatusValidator(v); err != nil {
			return &ValidationError{Name: "extraction_status", err: fmt.Errorf(`ent: validator failed for field "SDSDocument.extraction_status": %w`, err)}
		}
	}
	if sduo.mutation.FacilityCleared() && len(sduo.mutation.FacilityIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SDSDocument.facility"`)
	}
	return nil
}

func (sduo *SDSDocumentUpdateOne) sqlSave(ctx context.Context) (_node *SDSDocument, err error) {
	if err := sduo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sdsdocument.Table, sdsdocument.Columns, sqlgraph.NewFieldSpec(sdsdocument.FieldID, field.TypeUUID))
	id, ok := sduo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SDSDocument.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := sduo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sdsdocument.FieldID)
		for _, f := range fields {
			if !sdsdocument.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sdsdocument.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := sduo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := sduo.mutation.ProductName(); ok {
		_spec.SetField(sdsdocument.FieldProductName, field.TypeString, value)
	}
	if value, ok := sduo.mutation.Manufacturer(); ok {
		_spec.SetField(sdsdocument.FieldManufacturer, field.TypeString, value)
	}
	if sduo.mutation.ManufacturerCleared() {
		_spec.ClearField(sdsdocument.FieldManufacturer, field.TypeString)
	}
	if value, ok := sduo.mutation.CasNumber(); ok {
		_spec.SetField(sdsdocument.FieldCasNumber, field.TypeString, value)
	}
	if sduo.mutation.CasNumberCleared() {
		_spec.ClearField(sdsdocument.FieldCasNumber, field.TypeString)
	}
	if value, ok := sduo.mutation.SourceURL(); ok {
		_spec.SetField(sdsdocument.FieldSourceURL, field.TypeString, value)
	}
	if sduo.mutation.SourceURLCleared() {
		_spec.ClearField(sdsdocument.FieldSourceURL, field.TypeString)
	}
	if value, ok := sduo.mutation.BucketURL(); ok {
		_spec.SetField(sdsdocument.FieldBucketURL, field.TypeString, value)
	}
	if sduo.mutation.BucketURLCleared() {
		_spec.ClearField(sdsdocument.FieldBucketURL, field.TypeString)
	}
	if value, ok := sduo.mutation.ContentHash(); ok {
		_spec.SetField(sdsdocument.FieldContentHash, field.TypeBytes, value)
	}
	if sduo.mutation.ContentHashCleared() {
		_spec.ClearField(sdsdocument.FieldContentHash, field.TypeBytes)
	}
	if value, ok := sduo.mutation.SignalWord(); ok {
		_spec.SetField(sdsdocument.FieldSignalWord, field.TypeString, value)
	}
	if sduo.mutation.SignalWordCleared() {
		_spec.ClearField(sdsdocument.FieldSignalWord, field.TypeString)
	}
	if value, ok := sduo.mutation.HCodes(); ok {
		_spec.SetField(sdsdocument.FieldHCodes, field.TypeJSON, value)
	}
	if value, ok := sduo.mutation.AppendedHCodes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sdsdocument.FieldHCodes, value)
		})
	}
	if sduo.mutation.HCodesCleared() {
		_spec.ClearField(sdsdocument.FieldHCodes, field.TypeJSON)
	}
	if value, ok := sduo.mutation.Pictograms(); ok {
		_spec.SetField(sdsdocument.FieldPictograms, field.TypeJSON, value)
	}
	if value, ok := sduo.mutation.AppendedPictograms(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sdsdocument.FieldPictograms, value)
		})
	}
	if sduo.mutation.PictogramsCleared() {
		_spec.ClearField(sdsdocument.FieldPictograms, field.TypeJSON)
	}
	if value, ok := sduo.mutation.PpeRequirements(); ok {
		_spec.SetField(sdsdocument.FieldPpeRequirements, field.TypeJSON, value)
	}
	if sduo.mutation.PpeRequirementsCleared() {
		_spec.ClearField(sdsdocument.FieldPpeRequirements, field.TypeJSON)
	}
	if value, ok := sduo.mutation.HmisCodes(); ok {
		_spec.SetField(sdsdocument.FieldHmisCodes, field.TypeJSON, value)
	}
	if sduo.mutation.HmisCodesCleared() {
		_spec.ClearField(sdsdocument.FieldHmisCodes, field.TypeJSON)
	}
	if value, ok := sduo.mutation.NfpaCodes(); ok {
		_spec.SetField(sdsdocument.FieldNfpaCodes, field.TypeJSON, value)
	}
	if sduo.mutation.NfpaCodesCleared() {
		_spec.ClearField(sdsdocument.FieldNfpaCodes, field.TypeJSON)
	}
	if value, ok := sduo.mutation.PrecautionaryStatements(); ok {
		_spec.SetField(sdsdocument.FieldPrecautionaryStatements, field.TypeJSON, value)
	}
	if value, ok := sduo.mutation.AppendedPrecautionaryStatements(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sdsdocument.FieldPrecautionaryStatements, value)
		})
	}
	if sduo.mutation.PrecautionaryStatementsCleared() {
		_spec.ClearField(sdsdocument.FieldPrecautionaryStatements, field.TypeJSON)
	}
	if value, ok := sduo.mutation.FirstAid(); ok {
		_spec.SetField(sdsdocument.FieldFirstAid, field.TypeJSON, value)
	}
	if sduo.mutation.FirstAidCleared() {
		_spec.ClearField(sdsdocument.FieldFirstAid, field.TypeJSON)
	}
	if value, ok := sduo.mutation.HandlingStorage(); ok {
		_spec.SetField(sdsdocument.FieldHandlingStorage, field.TypeString, value)
	}
	if sduo.mutation.HandlingStorageCleared() {
		_spec.ClearField(sdsdocument.FieldHandlingStorage, field.TypeString)
	}
	if value, ok := sduo.mutation.PhysicalState(); ok {
		_spec.SetField(sdsdocument.FieldPhysicalState, field.TypeString, value)
	}
	if sduo.mutation.PhysicalStateCleared() {
		_spec.ClearField(sdsdocument.FieldPhysicalState, field.TypeString)
	}
	if value, ok := sduo.mutation.FlashPoint(); ok {
		_spec.SetField(sdsdocument.FieldFlashPoint, field.TypeString, value)
	}
	if sduo.mutation.FlashPointCleared() {
		_spec.ClearField(sdsdocument.FieldFlashPoint, field.TypeString)
	}
	if value, ok := sduo.mutation.ExtractionQualityScore(); ok {
		_spec.SetField(sdsdocument.FieldExtractionQualityScore, field.TypeInt, value)
	}
	if value, ok := sduo.mutation.AddedExtractionQualityScore(); ok {
		_spec.AddField(sdsdocument.FieldExtractionQualityScore, field.TypeInt, value)
	}
	if value, ok := sduo.mutation.AiConfidence(); ok {
		_spec.SetField(sdsdocument.FieldAiConfidence, field.TypeFloat32, value)
	}
	if value, ok := sduo.mutation.AddedAiConfidence(); ok {
		_spec.AddField(sdsdocument.FieldAiConfidence, field.TypeFloat32, value)
	}
	if sduo.mutation.AiConfidenceCleared() {
		_spec.ClearField(sdsdocument.FieldAiConfidence, field.TypeFloat32)
	}
	if value, ok := sduo.mutation.ExtractionStatus(); ok {
		_spec.SetField(sdsdocument.FieldExtractionStatus, field.TypeString, value)
	}
	if value, ok := sduo.mutation.IsReadable(); ok {
		_spec.SetField(sdsdocument.FieldIsReadable, field.TypeBool, value)
	}
	if value, ok := sduo.mutation.CreatedAt(); ok {
		_spec.SetField(sdsdocument.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := sduo.mutation.UpdatedAt(); ok {
		_spec.SetField(sdsdocument.FieldUpdatedAt, field.TypeTime, value)
	}
	if sduo.mutation.FacilityCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sdsdocument.FacilityTable,
			Columns: []string{sdsdocument.FacilityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(facility.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := sduo.mutation.FacilityIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sdsdocument.FacilityTable,
			Columns: []string{sdsdocument.FacilityColumn},
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
	if sduo.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sdsdocument.JobsTable,
			Columns: []string{sdsdocument.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := sduo.mutation.RemovedJobsIDs(); len(nodes) > 0 && !sduo.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sdsdocument.JobsTable,
			Columns: []string{sdsdocument.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := sduo.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sdsdocument.JobsTable,
			Columns: []string{sdsdocument.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SDSDocument{config: sduo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, sduo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sdsdocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	sduo.mutation.done = true
	return _node, nil
}
