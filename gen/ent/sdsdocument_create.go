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
	"github.com/qrsafety/sds-pipeline/internal/entity"
)

// SDSDocumentCreate is the builder for creating a SDSDocument entity.
type SDSDocumentCreate struct {
	config
	mutation *SDSDocumentMutation
	hooks    []Hook
}

// SetFacilityID sets the "facility_id" field.
func (sdc *SDSDocumentCreate) SetFacilityID(u uuid.UUID) *SDSDocumentCreate {
	sdc.mutation.SetFacilityID(u)
	return sdc
}

// SetProductName sets the "product_name" field.
func (sdc *SDSDocumentCreate) SetProductName(s string) *SDSDocumentCreate {
	sdc.mutation.SetProductName(s)
	return sdc
}

// SetNillableProductName sets the "product_name" field if the given value is not nil.
func (sdc *SDSDocumentCreate) SetNillableProductName(s *string) *SDSDocumentCreate {
	if s != nil {
		sdc.SetProductName(*s)
	}
	return sdc
}

// SetManufacturer sets the "manufacturer" field.
func (sdc *SDSDocumentCreate) SetManufacturer(s string) *SDSDocumentCreate {
	sdc.mutation.SetManufacturer(s)
	return sdc
}

// SetNillableManufacturer sets the "manufacturer" field if the given value is not nil.
func (sdc *SDSDocumentCreate) SetNillableManufacturer(s *string) *SDSDocumentCreate {
	if s != nil {
		sdc.SetManufacturer(*s)
	}
	return sdc
}

// SetCasNumber sets the "cas_number" field.
func (sdc *SDSDocumentCreate) SetCasNumber(s string) *SDSDocumentCreate {
	sdc.mutation.SetCasNumber(s)
	return sdc
}

// SetNillableCasNumber sets the "cas_number" field if the given value is not nil.
func (sdc *SDSDocumentCreate) SetNillableCasNumber(s *string) *SDSDocumentCreate {
	if s != nil {
		sdc.SetCasNumber(*s)
	}
	return sdc
}

// SetSourceURL sets the "source_url" field.
func (sdc *SDSDocumentCreate) SetSourceURL(s string) *SDSDocumentCreate {
	sdc.mutation.SetSourceURL(s)
	return sdc
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (sdc *SDSDocumentCreate) SetNillableSourceURL(s *string) *SDSDocumentCreate {
	if s != nil {
		sdc.SetSourceURL(*s)
	}
	return sdc
}

// SetBucketURL sets the "bucket_url" field.
func (sdc *SDSDocumentCreate) SetBucketURL(s string) *SDSDocumentCreate {
	sdc.mutation.SetBucketURL(s)
	return sdc
}

// SetNillableBucketURL sets the "bucket_url" field if the given value is not nil.
func (sdc *SDSDocumentCreate) SetNillableBucketURL(s *string) *SDSDocumentCreate {
	if s != nil {
		sdc.SetBucketURL(*s)
	}
	return sdc
}

// SetContentHash sets the "content_hash" field.
func (sdc *SDSDocumentCreate) SetContentHash(b []byte) *SDSDocumentCreate {
	sdc.mutation.SetContentHash(b)
	return sdc
}

// SetSignalWord sets the "signal_word" field.
func (sdc *SDSDocumentCreate) SetSignalWord(s string) *SDSDocumentCreate {
	sdc.mutation.SetSignalWord(s)
	return sdc
}

// SetNillableSignalWord sets the "signal_word" field if the given value is not nil.
func (sdc *SDSDocumentCreate) SetNillableSignalWord(s *string) *SDSDocumentCreate {
	if s != nil {
		sdc.SetSignalWord(*s)
	}
	return sdc
}

// SetHCodes sets the "h_codes" field.
func (sdc *SDSDocumentCreate) SetHCodes(ec []entity.HazardCode) *SDSDocumentCreate {
	sdc.mutation.SetHCodes(ec)
	return sdc
}

// SetPictograms sets the "pictograms" field.
func (sdc *SDSDocumentCreate) SetPictograms(s []string) *SDSDocumentCreate {
	sdc.mutation.SetPictograms(s)
	return sdc
}

// SetPpeRequirements sets the "ppe_requirements" field.
func (sdc *SDSDocumentCreate) SetPpeRequirements(er entity.PPERequirements) *SDSDocumentCreate {
	sdc.mutation.SetPpeRequirements(er)
	return sdc
}

// SetNillablePpeRequirements sets the "ppe_requirements" field if the given value is not nil.
func (sdc *SDSDocumentCreate) SetNillablePpeRequirements(er *entity.PPERequirements) *SDSDocumentCreate {
	if er != nil {
		sdc.SetPpeRequirements(*er)
	}
	return sdc
}

// SetHmisCodes sets the "hmis_codes" field.
func (sdc *SDSDocumentCreate) SetHmisCodes(e *entity.Ratings) *SDSDocumentCreate {
	sdc.mutation.SetHmisCodes(e)
	return sdc
}

// SetNfpaCodes sets the "nfpa_codes" field.
func (sdc *SDSDocumentCreate) SetNfpaCodes(e *entity.Ratings) *SDSDocumentCreate {
	sdc.mutation.SetNfpaCodes(e)
	return sdc
}

// SetPrecautionaryStatements sets the "precautionary_statements" field.
func (sdc *SDSDocumentCreate) SetPrecautionaryStatements(s []string) *SDSDocumentCreate {
	sdc.mutation.SetPrecautionaryStatements(s)
	return sdc
}

// SetFirstAid sets the "first_aid" field.
func (sdc *SDSDocumentCreate) SetFirstAid(ea entity.FirstAid) *SDSDocumentCreate {
	sdc.mutation.SetFirstAid(ea)
	return sdc
}

// SetNillableFirstAid sets the "first_aid" field if the given value is not nil.
func (sdc *SDSDocumentCreate) SetNillableFirstAid(ea *entity.FirstAid) *SDSDocumentCreate {
	if ea != nil {
		sdc.SetFirstAid(*ea)
	}
	return sdc
}

// SetHandlingStorage sets the "handling_storage" field.
func (sdc *SDSDocumentCreate) SetHandlingStorage(s string) *SDSDocumentCreate {
	sdc.mutation.SetHandlingStorage(s)
	return sdc
}

// SetNillableHandlingStorage sets the "handling_storage" field if the given value is not nil.
func (sdc *SDSDocumentCreate) SetNillableHandlingStorage(s *string) *SDSDocumentCreate {
	if s != nil {
		sdc.SetHandlingStorage(*s)
	}
	return sdc
}

// SetPhysicalState sets the "physical_state" field.
func (sdc *SDSDocumentCreate) SetPhysicalState(s string) *SDSDocumentCreate {
	sdc.mutation.SetPhysicalState(s)
	return sdc
}

// SetNillablePhysicalState sets the "physical_state" field if the given value is not nil.
func (sdc *SDSDocumentCreate) SetNillablePhysicalState(s *string) *SDSDocumentCreate {
	if s != nil {
		sdc.SetPhysicalState(*s)
	}
	return sdc
}

// SetFlashPoint sets the "flash_point" field.
func (sdc *SDSDocumentCreate) SetFlashPoint(s string) *SDSDocumentCreate {
	sdc.mutation.SetFlashPoint(s)
	return sdc
}

// SetNillableFlashPoint sets the "flash_point" field if the given value is not nil.
func (sdc *SDSDocumentCreate) SetNillableFlashPoint(s *string) *SDSDocumentCreate {
	if s != nil {
		sdc.SetFlashPoint(*s)
	}
	return sdc
}

// SetExtractionQualityScore sets the "extraction_quality_score" field.
func (sdc *SDSDocumentCreate) SetExtractionQualityScore(i int) *SDSDocumentCreate {
	sdc.mutation.SetExtractionQualityScore(i)
	return sdc
}

// SetNillableExtractionQualityScore sets the "extraction_quality_score" field if the given value is not nil.
func (sdc *SDSDocumentCreate) SetNillableExtractionQualityScore(i *int) *SDSDocumentCreate {
	if i != nil {
		sdc.SetExtractionQualityScore(*i)
	}
	return sdc
}

// SetAiConfidence sets the "ai_confidence" field.
func (sdc *SDSDocumentCreate) SetAiConfidence(f float32) *SDSDocumentCreate {
	sdc.mutation.SetAiConfidence(f)
	return sdc
}

// SetNillableAiConfidence sets the "ai_confidence" field if the given value is not nil.
func (sdc *SDSDocumentCreate) SetNillableAiConfidence(f *float32) *SDSDocumentCreate {
	if f != nil {
		sdc.SetAiConfidence(*f)
	}
	return sdc
}

// SetExtractionStatus sets the "extraction_status" field.
func (sdc *SDSDocumentCreate) SetExtractionStatus(s string) *SDSDocumentCreate {
	sdc.mutation.SetExtractionStatus(s)
	return sdc
}

// SetNillableExtractionStatus sets the "extraction_status" field if the given value is not nil.
func (sdc *SDSDocumentCreate) SetNillableExtractionStatus(s *string) *SDSDocumentCreate {
	if s != nil {
		sdc.SetExtractionStatus(*s)
	}
	return sdc
}

// SetIsReadable sets the "is_readable" field.
func (sdc *SDSDocumentCreate) SetIsReadable(b bool) *SDSDocumentCreate {
	sdc.mutation.SetIsReadable(b)
	return sdc
}

// SetNillableIsReadable sets the "is_readable" field if the given value is not nil.
func (sdc *SDSDocumentCreate) SetNillableIsReadable(b *bool) *SDSDocumentCreate {
	if b != nil {
		sdc.SetIsReadable(*b)
	}
	return sdc
}

// SetCreatedAt sets the "created_at" field.
func (sdc *SDSDocumentCreate) SetCreatedAt(t time.Time) *SDSDocumentCreate {
	sdc.mutation.SetCreatedAt(t)
	return sdc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (sdc *SDSDocumentCreate) SetNillableCreatedAt(t *time.Time) *SDSDocumentCreate {
	if t != nil {
		sdc.SetCreatedAt(*t)
	}
	return sdc
}

// SetUpdatedAt sets the "updated_at" field.
func (sdc *SDSDocumentCreate) SetUpdatedAt(t time.Time) *SDSDocumentCreate {
	sdc.mutation.SetUpdatedAt(t)
	return sdc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (sdc *SDSDocumentCreate) SetNillableUpdatedAt(t *time.Time) *SDSDocumentCreate {
	if t != nil {
		sdc.SetUpdatedAt(*t)
	}
	return sdc
}

// SetID sets the "id" field.
func (sdc *SDSDocumentCreate) SetID(u uuid.UUID) *SDSDocumentCreate {
	sdc.mutation.SetID(u)
	return sdc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (sdc *SDSDocumentCreate) SetNillableID(u *uuid.UUID) *SDSDocumentCreate {
	if u != nil {
		sdc.SetID(*u)
	}
	return sdc
}

// SetFacility sets the "facility" edge to the Facility entity.
func (sdc *SDSDocumentCreate) SetFacility(f *Facility) *SDSDocumentCreate {
	return sdc.SetFacilityID(f.ID)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (sdc *SDSDocumentCreate) AddJobIDs(ids ...uuid.UUID) *SDSDocumentCreate {
	sdc.mutation.AddJobIDs(ids...)
	return sdc
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (sdc *SDSDocumentCreate) AddJobs(e ...*ExtractJob) *SDSDocumentCreate {
	ids := make([]uuid.UUID, len(e))
	for i := range e {
		ids[i] = e[i].ID
	}
	return sdc.AddJobIDs(ids...)
}

// Mutation returns the SDSDocumentMutation object of the builder.
func (sdc *SDSDocumentCreate) Mutation() *SDSDocumentMutation {
	return sdc.mutation
}

// Save creates the SDSDocument in the database.
func (sdc *SDSDocumentCreate) Save(ctx context.Context) (*SDSDocument, error) {
	sdc.defaults()
	return withHooks(ctx, sdc.sqlSave, sdc.mutation, sdc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (sdc *SDSDocumentCreate) SaveX(ctx context.Context) *SDSDocument {
	v, err := sdc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sdc *SDSDocumentCreate) Exec(ctx context.Context) error {
	_, err := sdc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sdc *SDSDocumentCreate) ExecX(ctx context.Context) {
	if err := sdc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (sdc *SDSDocumentCreate) defaults() {
	if _, ok := sdc.mutation.ProductName(); !ok {
		v := sdsdocument.DefaultProductName
		sdc.mutation.SetProductName(v)
	}
	if _, ok := sdc.mutation.ExtractionQualityScore(); !ok {
		v := sdsdocument.DefaultExtractionQualityScore
		sdc.mutation.SetExtractionQualityScore(v)
	}
	if _, ok := sdc.mutation.ExtractionStatus(); !ok {
		v := sdsdocument.DefaultExtractionStatus
		sdc.mutation.SetExtractionStatus(v)
	}
	if _, ok := sdc.mutation.IsReadable(); !ok {
		v := sdsdocument.DefaultIsReadable
		sdc.mutation.SetIsReadable(v)
	}
	if _, ok := sdc.mutation.CreatedAt(); !ok {
		v := sdsdocument.DefaultCreatedAt()
		sdc.mutation.SetCreatedAt(v)
	}
	if _, ok := sdc.mutation.UpdatedAt(); !ok {
		v := sdsdocument.DefaultUpdatedAt()
		sdc.mutation.SetUpdatedAt(v)
	}
	if _, ok := sdc.mutation.ID(); !ok {
		v := sdsdocument.DefaultID()
		sdc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sdc *SDSDocumentCreate) check() error {
	if _, ok := sdc.mutation.FacilityID(); !ok {
		return &ValidationError{Name: "facility_id", err: errors.New(`ent: missing required field "SDSDocument.facility_id"`)}
	}
	if _, ok := sdc.mutation.ProductName(); !ok {
		return &ValidationError{Name: "product_name", err: errors.New(`ent: missing required field "SDSDocument.product_name"`)}
	}
	if _, ok := sdc.mutation.ExtractionQualityScore(); !ok {
		return &ValidationError{Name: "extraction_quality_score", err: errors.New(`ent: missing required field "SDSDocument.extraction_quality_score"`)}
	}
	if v, ok := sdc.mutation.ExtractionQualityScore(); ok {
		if err := sdsdocument.ExtractionQualityScoreValidator(v); err != nil {
			return &ValidationError{Name: "extraction_quality_score", err: fmt.Errorf(`ent: validator failed for field "SDSDocument.extraction_quality_score": %w`, err)}
		}
	}
	if _, ok := sdc.mutation.ExtractionStatus(); !ok {
		return &ValidationError{Name: "extraction_status", err: errors.New(`ent: missing required field "SDSDocument.extraction_status"`)}
	}
	if v, ok := sdc.mutation.ExtractionStatus(); ok {
		if err := sdsdocument.ExtractionStatusValidator(v); err != nil {
			return &ValidationError{Name: "extraction_status", err: fmt.Errorf(`ent: validator failed for field "SDSDocument.extraction_status": %w`, err)}
		}
	}
	if _, ok := sdc.mutation.IsReadable(); !ok {
		return &ValidationError{Name: "is_readable", err: errors.New(`ent: missing required field "SDSDocument.is_readable"`)}
	}
	if _, ok := sdc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SDSDocument.created_at"`)}
	}
	if _, ok := sdc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SDSDocument.updated_at"`)}
	}
	if len(sdc.mutation.FacilityIDs()) == 0 {
		return &ValidationError{Name: "facility", err: errors.New(`ent: missing required edge "SDSDocument.facility"`)}
	}
	return nil
}

func (sdc *SDSDocumentCreate) sqlSave(ctx context.Context) (*SDSDocument, error) {
	if err := sdc.check(); err != nil {
		return nil, err
	}
	_node, _spec := sdc.createSpec()
	if err := sqlgraph.CreateNode(ctx, sdc.driver, _spec); err != nil {
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
	sdc.mutation.id = &_node.ID
	sdc.mutation.done = true
	return _node, nil
}

func (sdc *SDSDocumentCreate) createSpec() (*SDSDocument, *sqlgraph.CreateSpec) {
	var (
		_node = &SDSDocument{config: sdc.config}
		_spec = sqlgraph.NewCreateSpec(sdsdocument.Table, sqlgraph.NewFieldSpec(sdsdocument.FieldID, field.TypeUUID))
	)
	if id, ok := sdc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := sdc.mutation.ProductName(); ok {
		_spec.SetField(sdsdocument.FieldProductName, field.TypeString, value)
		_node.ProductName = value
	}
	if value, ok := sdc.mutation.Manufacturer(); ok {
		_spec.SetField(sdsdocument.FieldManufacturer, field.TypeString, value)
		_node.Manufacturer = &value
	}
	if value, ok := sdc.mutation.CasNumber(); ok {
		_spec.SetField(sdsdocument.FieldCasNumber, field.TypeString, value)
		_node.CasNumber = &value
	}
	if value, ok := sdc.mutation.SourceURL(); ok {
		_spec.SetField(sdsdocument.FieldSourceURL, field.TypeString, value)
		_node.SourceURL = &value
	}
	if value, ok := sdc.mutation.BucketURL(); ok {
		_spec.SetField(sdsdocument.FieldBucketURL, field.TypeString, value)
		_node.BucketURL = &value
	}
	if value, ok := sdc.mutation.ContentHash(); ok {
		_spec.SetField(sdsdocument.FieldContentHash, field.TypeBytes, value)
		_node.ContentHash = value
	}
	if value, ok := sdc.mutation.SignalWord(); ok {
		_spec.SetField(sdsdocument.FieldSignalWord, field.TypeString, value)
		_node.SignalWord = &value
	}
	if value, ok := sdc.mutation.HCodes(); ok {
		_spec.SetField(sdsdocument.FieldHCodes, field.TypeJSON, value)
		_node.HCodes = value
	}
	if value, ok := sdc.mutation.Pictograms(); ok {
		_spec.SetField(sdsdocument.FieldPictograms, field.TypeJSON, value)
		_node.Pictograms = value
	}
	if value, ok := sdc.mutation.PpeRequirements(); ok {
		_spec.SetField(sdsdocument.FieldPpeRequirements, field.TypeJSON, value)
		_node.PpeRequirements = value
	}
	if value, ok := sdc.mutation.HmisCodes(); ok {
		_spec.SetField(sdsdocument.FieldHmisCodes, field.TypeJSON, value)
		_node.HmisCodes = value
	}
	if value, ok := sdc.mutation.NfpaCodes(); ok {
		_spec.SetField(sdsdocument.FieldNfpaCodes, field.TypeJSON, value)
		_node.NfpaCodes = value
	}
	if value, ok := sdc.mutation.PrecautionaryStatements(); ok {
		_spec.SetField(sdsdocument.FieldPrecautionaryStatements, field.TypeJSON, value)
		_node.PrecautionaryStatements = value
	}
	if value, ok := sdc.mutation.FirstAid(); ok {
		_spec.SetField(sdsdocument.FieldFirstAid, field.TypeJSON, value)
		_node.FirstAid = value
	}
	if value, ok := sdc.mutation.HandlingStorage(); ok {
		_spec.SetField(sdsdocument.FieldHandlingStorage, field.TypeString, value)
		_node.HandlingStorage = &value
	}
	if value, ok := sdc.mutation.PhysicalState(); ok {
		_spec.SetField(sdsdocument.FieldPhysicalState, field.TypeString, value)
		_node.PhysicalState = &value
	}
	if value, ok := sdc.mutation.FlashPoint(); ok {
		_spec.SetField(sdsdocument.FieldFlashPoint, field.TypeString, value)
		_node.FlashPoint = &value
	}
	if value, ok := sdc.mutation.ExtractionQualityScore(); ok {
		_spec.SetField(sdsdocument.FieldExtractionQualityScore, field.TypeInt, value)
		_node.ExtractionQualityScore = value
	}
	if value, ok := sdc.mutation.AiConfidence(); ok {
		_spec.SetField(sdsdocument.FieldAiConfidence, field.TypeFloat32, value)
		_node.AiConfidence = &value
	}
	if value, ok := sdc.mutation.ExtractionStatus(); ok {
		_spec.SetField(sdsdocument.FieldExtractionStatus, field.TypeString, value)
		_node.ExtractionStatus = value
	}
	if value, ok := sdc.mutation.IsReadable(); ok {
		_spec.SetField(sdsdocument.FieldIsReadable, field.TypeBool, value)
		_node.IsReadable = value
	}
	if value, ok := sdc.mutation.CreatedAt(); ok {
		_spec.SetField(sdsdocument.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := sdc.mutation.UpdatedAt(); ok {
		_spec.SetField(sdsdocument.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := sdc.mutation.FacilityIDs(); len(nodes) > 0 {
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
		_node.FacilityID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := sdc.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SDSDocumentCreateBulk is the builder for creating many SDSDocument entities in bulk.
type SDSDocumentCreateBulk struct {
	config
	err      error
	builders []*SDSDocumentCreate
}

// Save creates the SDSDocument entities in the database.
func (sdcb *SDSDocumentCreateBulk) Save(ctx context.Context) ([]*SDSDocument, error) {
	if sdcb.err != nil {
		return nil, sdcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(sdcb.builders))
	nodes := make([]*SDSDocument, len(sdcb.builders))
	mutators := make([]Mutator, len(sdcb.builders))
	for i := range sdcb.builders {
		func(i int, root context.Context) {
			builder := sdcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SDSDocumentMutation)
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
					_, err = mutators[i+1].Mutate(root, sdcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, sdcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, sdcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (sdcb *SDSDocumentCreateBulk) SaveX(ctx context.Context) []*SDSDocument {
	v, err := sdcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sdcb *SDSDocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := sdcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sdcb *SDSDocumentCreateBulk) ExecX(ctx context.Context) {
	if err := sdcb.Exec(ctx); err != nil {
		panic(err)
	}
}
