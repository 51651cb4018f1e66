// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/qrsafety/sds-pipeline/gen/ent/facility"
	"github.com/qrsafety/sds-pipeline/gen/ent/sdsdocument"
	"github.com/qrsafety/sds-pipeline/internal/entity"
)

// SDSDocument is the model entity for the SDSDocument schema.
type SDSDocument struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FacilityID holds the value of the "facility_id" field.
	FacilityID uuid.UUID `json:"facility_id,omitempty"`
	// ProductName holds the value of the "product_name" field.
	ProductName string `json:"product_name,omitempty"`
	// Manufacturer holds the value of the "manufacturer" field.
	Manufacturer *string `json:"manufacturer,omitempty"`
	// CasNumber holds the value of the "cas_number" field.
	CasNumber *string `json:"cas_number,omitempty"`
	// SourceURL holds the value of the "source_url" field.
	SourceURL *string `json:"source_url,omitempty"`
	// BucketURL holds the value of the "bucket_url" field.
	BucketURL *string `json:"bucket_url,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash []byte `json:"content_hash,omitempty"`
	// SignalWord holds the value of the "signal_word" field.
	SignalWord *string `json:"signal_word,omitempty"`
	// HCodes holds the value of the "h_codes" field.
	HCodes []entity.HazardCode `json:"h_codes,omitempty"`
	// Pictograms holds the value of the "pictograms" field.
	Pictograms []string `json:"pictograms,omitempty"`
	// PpeRequirements holds the value of the "ppe_requirements" field.
	PpeRequirements entity.PPERequirements `json:"ppe_requirements,omitempty"`
	// HmisCodes holds the value of the "hmis_codes" field.
	HmisCodes *entity.Ratings `json:"hmis_codes,omitempty"`
	// NfpaCodes holds the value of the "nfpa_codes" field.
	NfpaCodes *entity.Ratings `json:"nfpa_codes,omitempty"`
	// PrecautionaryStatements holds the value of the "precautionary_statements" field.
	PrecautionaryStatements []string `json:"precautionary_statements,omitempty"`
	// FirstAid holds the value of the "first_aid" field.
	FirstAid entity.FirstAid `json:"first_aid,omitempty"`
	// HandlingStorage holds the value of the "handling_storage" field.
	HandlingStorage *string `json:"handling_storage,omitempty"`
	// PhysicalState holds the value of the "physical_state" field.
	PhysicalState *string `json:"physical_state,omitempty"`
	// FlashPoint holds the value of the "flash_point" field.
	FlashPoint *string `json:"flash_point,omitempty"`
	// ExtractionQualityScore holds the value of the "extraction_quality_score" field.
	ExtractionQualityScore int `json:"extraction_quality_score,omitempty"`
	// AiConfidence holds the value of the "ai_confidence" field.
	AiConfidence *float32 `json:"ai_confidence,omitempty"`
	// ExtractionStatus holds the value of the "extraction_status" field.
	ExtractionStatus string `json:"extraction_status,omitempty"`
	// IsReadable holds the value of the "is_readable" field.
	IsReadable bool `json:"is_readable,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SDSDocumentQuery when eager-loading is set.
	Edges        SDSDocumentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SDSDocumentEdges holds the relations/edges for other nodes in the graph.
type SDSDocumentEdges struct {
	// Facility holds the value of the facility edge.
	Facility *Facility `json:"facility,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*ExtractJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// FacilityOrErr returns the Facility value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SDSDocumentEdges) FacilityOrErr() (*Facility, error) {
	if e.Facility != nil {
		return e.Facility, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: facility.Label}
	}
	return nil, &NotLoadedError{edge: "facility"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e SDSDocumentEdges) JobsOrErr() ([]*ExtractJob, error) {
	if e.loadedTypes[1] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SDSDocument) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sdsdocument.FieldContentHash, sdsdocument.FieldHCodes, sdsdocument.FieldPictograms, sdsdocument.FieldPpeRequirements, sdsdocument.FieldHmisCodes, sdsdocument.FieldNfpaCodes, sdsdocument.FieldPrecautionaryStatements, sdsdocument.FieldFirstAid:
			values[i] = new([]byte)
		case sdsdocument.FieldIsReadable:
			values[i] = new(sql.NullBool)
		case sdsdocument.FieldAiConfidence:
			values[i] = new(sql.NullFloat64)
		case sdsdocument.FieldExtractionQualityScore:
			values[i] = new(sql.NullInt64)
		case sdsdocument.FieldProductName, sdsdocument.FieldManufacturer, sdsdocument.FieldCasNumber, sdsdocument.FieldSourceURL, sdsdocument.FieldBucketURL, sdsdocument.FieldSignalWord, sdsdocument.FieldHandlingStorage, sdsdocument.FieldPhysicalState, sdsdocument.FieldFlashPoint, sdsdocument.FieldExtractionStatus:
			values[i] = new(sql.NullString)
		case sdsdocument.FieldCreatedAt, sdsdocument.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case sdsdocument.FieldID, sdsdocument.FieldFacilityID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SDSDocument fields.
func (sd *SDSDocument) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sdsdocument.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				sd.ID = *value
			}
		case sdsdocument.FieldFacilityID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field facility_id", values[i])
			} else if value != nil {
				sd.FacilityID = *value
			}
		case sdsdocument.FieldProductName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field product_name", values[i])
			} else if value.Valid {
				sd.ProductName = value.String
			}
		case sdsdocument.FieldManufacturer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field manufacturer", values[i])
			} else if value.Valid {
				sd.Manufacturer = new(string)
				*sd.Manufacturer = value.String
			}
		case sdsdocument.FieldCasNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cas_number", values[i])
			} else if value.Valid {
				sd.CasNumber = new(string)
				*sd.CasNumber = value.String
			}
		case sdsdocument.FieldSourceURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_url", values[i])
			} else if value.Valid {
				sd.SourceURL = new(string)
				*sd.SourceURL = value.String
			}
		case sdsdocument.FieldBucketURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bucket_url", values[i])
			} else if value.Valid {
				sd.BucketURL = new(string)
				*sd.BucketURL = value.String
			}
		case sdsdocument.FieldContentHash:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value != nil {
				sd.ContentHash = *value
			}
		case sdsdocument.FieldSignalWord:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field signal_word", values[i])
			} else if value.Valid {
				sd.SignalWord = new(string)
				*sd.SignalWord = value.String
			}
		case sdsdocument.FieldHCodes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field h_codes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &sd.HCodes); err != nil {
					return fmt.Errorf("unmarshal field h_codes: %w", err)
				}
			}
		case sdsdocument.FieldPictograms:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field pictograms", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &sd.Pictograms); err != nil {
					return fmt.Errorf("unmarshal field pictograms: %w", err)
				}
			}
		case sdsdocument.FieldPpeRequirements:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field ppe_requirements", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &sd.PpeRequirements); err != nil {
					return fmt.Errorf("unmarshal field ppe_requirements: %w", err)
				}
			}
		case sdsdocument.FieldHmisCodes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field hmis_codes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &sd.HmisCodes); err != nil {
					return fmt.Errorf("unmarshal field hmis_codes: %w", err)
				}
			}
		case sdsdocument.FieldNfpaCodes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field nfpa_codes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &sd.NfpaCodes); err != nil {
					return fmt.Errorf("unmarshal field nfpa_codes: %w", err)
				}
			}
		case sdsdocument.FieldPrecautionaryStatements:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field precautionary_statements", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &sd.PrecautionaryStatements); err != nil {
					return fmt.Errorf("unmarshal field precautionary_statements: %w", err)
				}
			}
		case sdsdocument.FieldFirstAid:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field first_aid", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &sd.FirstAid); err != nil {
					return fmt.Errorf("unmarshal field first_aid: %w", err)
				}
			}
		case sdsdocument.FieldHandlingStorage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field handling_storage", values[i])
			} else if value.Valid {
				sd.HandlingStorage = new(string)
				*sd.HandlingStorage = value.String
			}
		case sdsdocument.FieldPhysicalState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field physical_state", values[i])
			} else if value.Valid {
				sd.PhysicalState = new(string)
				*sd.PhysicalState = value.String
			}
		case sdsdocument.FieldFlashPoint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field flash_point", values[i])
			} else if value.Valid {
				sd.FlashPoint = new(string)
				*sd.FlashPoint = value.String
			}
		case sdsdocument.FieldExtractionQualityScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_quality_score", values[i])
			} else if value.Valid {
				sd.ExtractionQualityScore = int(value.Int64)
			}
		case sdsdocument.FieldAiConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ai_confidence", values[i])
			} else if value.Valid {
				sd.AiConfidence = new(float32)
				*sd.AiConfidence = float32(value.Float64)
			}
		case sdsdocument.FieldExtractionStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_status", values[i])
			} else if value.Valid {
				sd.ExtractionStatus = value.String
			}
		case sdsdocument.FieldIsReadable:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_readable", values[i])
			} else if value.Valid {
				sd.IsReadable = value.Bool
			}
		case sdsdocument.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				sd.CreatedAt = value.Time
			}
		case sdsdocument.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				sd.UpdatedAt = value.Time
			}
		default:
			sd.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SDSDocument.
// This includes values selected through modifiers, order, etc.
func (sd *SDSDocument) Value(name string) (ent.Value, error) {
	return sd.selectValues.Get(name)
}

// QueryFacility queries the "facility" edge of the SDSDocument entity.
func (sd *SDSDocument) QueryFacility() *FacilityQuery {
	return NewSDSDocumentClient(sd.config).QueryFacility(sd)
}

// QueryJobs queries the "jobs" edge of the SDSDocument entity.
func (sd *SDSDocument) QueryJobs() *ExtractJobQuery {
	return NewSDSDocumentClient(sd.config).QueryJobs(sd)
}

// Update returns a builder for updating this SDSDocument.
// Note that you need to call SDSDocument.Unwrap() before calling this method if this SDSDocument
// was returned from a transaction, and the transaction was committed or rolled back.
func (sd *SDSDocument) Update() *SDSDocumentUpdateOne {
	return NewSDSDocumentClient(sd.config).UpdateOne(sd)
}

// Unwrap unwraps the SDSDocument entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (sd *SDSDocument) Unwrap() *SDSDocument {
	_tx, ok := sd.config.driver.(*txDriver)
	if !ok {
		panic("ent: SDSDocument is not a transactional entity")
	}
	sd.config.driver = _tx.drv
	return sd
}

// String implements the fmt.Stringer.
func (sd *SDSDocument) String() string {
	var builder strings.Builder
	builder.WriteString("SDSDocument(")
	builder.WriteString(fmt.Sprintf("id=%v, ", sd.ID))
	builder.WriteString("facility_id=")
	builder.WriteString(fmt.Sprintf("%v", sd.FacilityID))
	builder.WriteString(", ")
	builder.WriteString("product_name=")
	builder.WriteString(sd.ProductName)
	builder.WriteString(", ")
	if v := sd.Manufacturer; v != nil {
		builder.WriteString("manufacturer=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := sd.CasNumber; v != nil {
		builder.WriteString("cas_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := sd.SourceURL; v != nil {
		builder.WriteString("source_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := sd.BucketURL; v != nil {
		builder.WriteString("bucket_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(fmt.Sprintf("%v", sd.ContentHash))
	builder.WriteString(", ")
	if v := sd.SignalWord; v != nil {
		builder.WriteString("signal_word=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("h_codes=")
	builder.WriteString(fmt.Sprintf("%v", sd.HCodes))
	builder.WriteString(", ")
	builder.WriteString("pictograms=")
	builder.WriteString(fmt.Sprintf("%v", sd.Pictograms))
	builder.WriteString(", ")
	builder.WriteString("ppe_requirements=")
	builder.WriteString(fmt.Sprintf("%v", sd.PpeRequirements))
	builder.WriteString(", ")
	builder.WriteString("hmis_codes=")
	builder.WriteString(fmt.Sprintf("%v", sd.HmisCodes))
	builder.WriteString(", ")
	builder.WriteString("nfpa_codes=")
	builder.WriteString(fmt.Sprintf("%v", sd.NfpaCodes))
	builder.WriteString(", ")
	builder.WriteString("precautionary_statements=")
	builder.WriteString(fmt.Sprintf("%v", sd.PrecautionaryStatements))
	builder.WriteString(", ")
	builder.WriteString("first_aid=")
	builder.WriteString(fmt.Sprintf("%v", sd.FirstAid))
	builder.WriteString(", ")
	if v := sd.HandlingStorage; v != nil {
		builder.WriteString("handling_storage=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := sd.PhysicalState; v != nil {
		builder.WriteString("physical_state=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := sd.FlashPoint; v != nil {
		builder.WriteString("flash_point=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("extraction_quality_score=")
	builder.WriteString(fmt.Sprintf("%v", sd.ExtractionQualityScore))
	builder.WriteString(", ")
	if v := sd.AiConfidence; v != nil {
		builder.WriteString("ai_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("extraction_status=")
	builder.WriteString(sd.ExtractionStatus)
	builder.WriteString(", ")
	builder.WriteString("is_readable=")
	builder.WriteString(fmt.Sprintf("%v", sd.IsReadable))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(sd.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(sd.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SDSDocuments is a parsable slice of SDSDocument.
type SDSDocuments []*SDSDocument
