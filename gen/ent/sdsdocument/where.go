// Code generated by ent, DO NOT EDIT.

package sdsdocument

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/qrsafety/sds-pipeline/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldLTE(FieldID, id))
}

// FacilityID applies equality check predicate on the "facility_id" field. It's identical to FacilityIDEQ.
func FacilityID(v uuid.UUID) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEQ(FieldFacilityID, v))
}

// ProductName applies equality check predicate on the "product_name" field. It's identical to ProductNameEQ.
func ProductName(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEQ(FieldProductName, v))
}

// Manufacturer applies equality check predicate on the "manufacturer" field. It's identical to ManufacturerEQ.
func Manufacturer(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEQ(FieldManufacturer, v))
}

// CasNumber applies equality check predicate on the "cas_number" field. It's identical to CasNumberEQ.
func CasNumber(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEQ(FieldCasNumber, v))
}

// SourceURL applies equality check predicate on the "source_url" field. It's identical to SourceURLEQ.
func SourceURL(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEQ(FieldSourceURL, v))
}

// BucketURL applies equality check predicate on the "bucket_url" field. It's identical to BucketURLEQ.
func BucketURL(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEQ(FieldBucketURL, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v []byte) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEQ(FieldContentHash, v))
}

// SignalWord applies equality check predicate on the "signal_word" field. It's identical to SignalWordEQ.
func SignalWord(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEQ(FieldSignalWord, v))
}

// HandlingStorage applies equality check predicate on the "handling_storage" field. It's identical to HandlingStorageEQ.
func HandlingStorage(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEQ(FieldHandlingStorage, v))
}

// PhysicalState applies equality check predicate on the "physical_state" field. It's identical to PhysicalStateEQ.
func PhysicalState(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEQ(FieldPhysicalState, v))
}

// FlashPoint applies equality check predicate on the "flash_point" field. It's identical to FlashPointEQ.
func FlashPoint(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEQ(FieldFlashPoint, v))
}

// ExtractionQualityScore applies equality check predicate on the "extraction_quality_score" field. It's identical to ExtractionQualityScoreEQ.
func ExtractionQualityScore(v int) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEQ(FieldExtractionQualityScore, v))
}

// AiConfidence applies equality check predicate on the "ai_confidence" field. It's identical to AiConfidenceEQ.
func AiConfidence(v float32) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEQ(FieldAiConfidence, v))
}

// ExtractionStatus applies equality check predicate on the "extraction_status" field. It's identical to ExtractionStatusEQ.
func ExtractionStatus(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEQ(FieldExtractionStatus, v))
}

// IsReadable applies equality check predicate on the "is_readable" field. It's identical to IsReadableEQ.
func IsReadable(v bool) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEQ(FieldIsReadable, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEQ(FieldUpdatedAt, v))
}

// FacilityIDEQ applies the EQ predicate on the "facility_id" field.
func FacilityIDEQ(v uuid.UUID) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEQ(FieldFacilityID, v))
}

// FacilityIDNEQ applies the NEQ predicate on the "facility_id" field.
func FacilityIDNEQ(v uuid.UUID) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNEQ(FieldFacilityID, v))
}

// FacilityIDIn applies the In predicate on the "facility_id" field.
func FacilityIDIn(vs ...uuid.UUID) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldIn(FieldFacilityID, vs...))
}

// FacilityIDNotIn applies the NotIn predicate on the "facility_id" field.
func FacilityIDNotIn(vs ...uuid.UUID) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNotIn(FieldFacilityID, vs...))
}

// ProductNameEQ applies the EQ predicate on the "product_name" field.
func ProductNameEQ(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEQ(FieldProductName, v))
}

// ProductNameNEQ applies the NEQ predicate on the "product_name" field.
func ProductNameNEQ(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNEQ(FieldProductName, v))
}

// ProductNameIn applies the In predicate on the "product_name" field.
func ProductNameIn(vs ...string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldIn(FieldProductName, vs...))
}

// ProductNameNotIn applies the NotIn predicate on the "product_name" field.
func ProductNameNotIn(vs ...string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNotIn(FieldProductName, vs...))
}

// ProductNameGT applies the GT predicate on the "product_name" field.
func ProductNameGT(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldGT(FieldProductName, v))
}

// ProductNameGTE applies the GTE predicate on the "product_name" field.
func ProductNameGTE(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldGTE(FieldProductName, v))
}

// ProductNameLT applies the LT predicate on the "product_name" field.
func ProductNameLT(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldLT(FieldProductName, v))
}

// ProductNameLTE applies the LTE predicate on the "product_name" field.
func ProductNameLTE(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldLTE(FieldProductName, v))
}

// ProductNameContains applies the Contains predicate on the "product_name" field.
func ProductNameContains(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldContains(FieldProductName, v))
}

// ProductNameHasPrefix applies the HasPrefix predicate on the "product_name" field.
func ProductNameHasPrefix(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldHasPrefix(FieldProductName, v))
}

// ProductNameHasSuffix applies the HasSuffix predicate on the "product_name" field.
func ProductNameHasSuffix(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldHasSuffix(FieldProductName, v))
}

// ProductNameEqualFold applies the EqualFold predicate on the "product_name" field.
func ProductNameEqualFold(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEqualFold(FieldProductName, v))
}

// ProductNameContainsFold applies the ContainsFold predicate on the "product_name" field.
func ProductNameContainsFold(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldContainsFold(FieldProductName, v))
}

// ManufacturerEQ applies the EQ predicate on the "manufacturer" field.
func ManufacturerEQ(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEQ(FieldManufacturer, v))
}

// ManufacturerNEQ applies the NEQ predicate on the "manufacturer" field.
func ManufacturerNEQ(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNEQ(FieldManufacturer, v))
}

// ManufacturerIn applies the In predicate on the "manufacturer" field.
func ManufacturerIn(vs ...string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldIn(FieldManufacturer, vs...))
}

// ManufacturerNotIn applies the NotIn predicate on the "manufacturer" field.
func ManufacturerNotIn(vs ...string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNotIn(FieldManufacturer, vs...))
}

// ManufacturerGT applies the GT predicate on the "manufacturer" field.
func ManufacturerGT(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldGT(FieldManufacturer, v))
}

// ManufacturerGTE applies the GTE predicate on the "manufacturer" field.
func ManufacturerGTE(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldGTE(FieldManufacturer, v))
}

// ManufacturerLT applies the LT predicate on the "manufacturer" field.
func ManufacturerLT(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldLT(FieldManufacturer, v))
}

// ManufacturerLTE applies the LTE predicate on the "manufacturer" field.
func ManufacturerLTE(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldLTE(FieldManufacturer, v))
}

// ManufacturerContains applies the Contains predicate on the "manufacturer" field.
func ManufacturerContains(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldContains(FieldManufacturer, v))
}

// ManufacturerHasPrefix applies the HasPrefix predicate on the "manufacturer" field.
func ManufacturerHasPrefix(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldHasPrefix(FieldManufacturer, v))
}

// ManufacturerHasSuffix applies the HasSuffix predicate on the "manufacturer" field.
func ManufacturerHasSuffix(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldHasSuffix(FieldManufacturer, v))
}

// ManufacturerIsNil applies the IsNil predicate on the "manufacturer" field.
func ManufacturerIsNil() predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldIsNull(FieldManufacturer))
}

// ManufacturerNotNil applies the NotNil predicate on the "manufacturer" field.
func ManufacturerNotNil() predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNotNull(FieldManufacturer))
}

// ManufacturerEqualFold applies the EqualFold predicate on the "manufacturer" field.
func ManufacturerEqualFold(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEqualFold(FieldManufacturer, v))
}

// ManufacturerContainsFold applies the ContainsFold predicate on the "manufacturer" field.
func ManufacturerContainsFold(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldContainsFold(FieldManufacturer, v))
}

// CasNumberEQ applies the EQ predicate on the "cas_number" field.
func CasNumberEQ(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEQ(FieldCasNumber, v))
}

// CasNumberNEQ applies the NEQ predicate on the "cas_number" field.
func CasNumberNEQ(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNEQ(FieldCasNumber, v))
}

// CasNumberIn applies the In predicate on the "cas_number" field.
func CasNumberIn(vs ...string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldIn(FieldCasNumber, vs...))
}

// CasNumberNotIn applies the NotIn predicate on the "cas_number" field.
func CasNumberNotIn(vs ...string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNotIn(FieldCasNumber, vs...))
}

// CasNumberGT applies the GT predicate on the "cas_number" field.
func CasNumberGT(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldGT(FieldCasNumber, v))
}

// CasNumberGTE applies the GTE predicate on the "cas_number" field.
func CasNumberGTE(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldGTE(FieldCasNumber, v))
}

// CasNumberLT applies the LT predicate on the "cas_number" field.
func CasNumberLT(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldLT(FieldCasNumber, v))
}

// CasNumberLTE applies the LTE predicate on the "cas_number" field.
func CasNumberLTE(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldLTE(FieldCasNumber, v))
}

// CasNumberContains applies the Contains predicate on the "cas_number" field.
func CasNumberContains(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldContains(FieldCasNumber, v))
}

// CasNumberHasPrefix applies the HasPrefix predicate on the "cas_number" field.
func CasNumberHasPrefix(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldHasPrefix(FieldCasNumber, v))
}

// CasNumberHasSuffix applies the HasSuffix predicate on the "cas_number" field.
func CasNumberHasSuffix(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldHasSuffix(FieldCasNumber, v))
}

// CasNumberIsNil applies the IsNil predicate on the "cas_number" field.
func CasNumberIsNil() predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldIsNull(FieldCasNumber))
}

// CasNumberNotNil applies the NotNil predicate on the "cas_number" field.
func CasNumberNotNil() predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNotNull(FieldCasNumber))
}

// CasNumberEqualFold applies the EqualFold predicate on the "cas_number" field.
func CasNumberEqualFold(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEqualFold(FieldCasNumber, v))
}

// CasNumberContainsFold applies the ContainsFold predicate on the "cas_number" field.
func CasNumberContainsFold(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldContainsFold(FieldCasNumber, v))
}

// SourceURLEQ applies the EQ predicate on the "source_url" field.
func SourceURLEQ(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEQ(FieldSourceURL, v))
}

// SourceURLNEQ applies the NEQ predicate on the "source_url" field.
func SourceURLNEQ(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNEQ(FieldSourceURL, v))
}

// SourceURLIn applies the In predicate on the "source_url" field.
func SourceURLIn(vs ...string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldIn(FieldSourceURL, vs...))
}

// SourceURLNotIn applies the NotIn predicate on the "source_url" field.
func SourceURLNotIn(vs ...string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNotIn(FieldSourceURL, vs...))
}

// SourceURLGT applies the GT predicate on the "source_url" field.
func SourceURLGT(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldGT(FieldSourceURL, v))
}

// SourceURLGTE applies the GTE predicate on the "source_url" field.
func SourceURLGTE(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldGTE(FieldSourceURL, v))
}

// SourceURLLT applies the LT predicate on the "source_url" field.
func SourceURLLT(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldLT(FieldSourceURL, v))
}

// SourceURLLTE applies the LTE predicate on the "source_url" field.
func SourceURLLTE(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldLTE(FieldSourceURL, v))
}

// SourceURLContains applies the Contains predicate on the "source_url" field.
func SourceURLContains(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldContains(FieldSourceURL, v))
}

// SourceURLHasPrefix applies the HasPrefix predicate on the "source_url" field.
func SourceURLHasPrefix(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldHasPrefix(FieldSourceURL, v))
}

// SourceURLHasSuffix applies the HasSuffix predicate on the "source_url" field.
func SourceURLHasSuffix(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldHasSuffix(FieldSourceURL, v))
}

// SourceURLIsNil applies the IsNil predicate on the "source_url" field.
func SourceURLIsNil() predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldIsNull(FieldSourceURL))
}

// SourceURLNotNil applies the NotNil predicate on the "source_url" field.
func SourceURLNotNil() predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNotNull(FieldSourceURL))
}

// SourceURLEqualFold applies the EqualFold predicate on the "source_url" field.
func SourceURLEqualFold(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEqualFold(FieldSourceURL, v))
}

// SourceURLContainsFold applies the ContainsFold predicate on the "source_url" field.
func SourceURLContainsFold(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldContainsFold(FieldSourceURL, v))
}

// BucketURLEQ applies the EQ predicate on the "bucket_url" field.
func BucketURLEQ(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEQ(FieldBucketURL, v))
}

// BucketURLNEQ applies the NEQ predicate on the "bucket_url" field.
func BucketURLNEQ(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNEQ(FieldBucketURL, v))
}

// BucketURLIn applies the In predicate on the "bucket_url" field.
func BucketURLIn(vs ...string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldIn(FieldBucketURL, vs...))
}

// BucketURLNotIn applies the NotIn predicate on the "bucket_url" field.
func BucketURLNotIn(vs ...string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNotIn(FieldBucketURL, vs...))
}

// BucketURLGT applies the GT predicate on the "bucket_url" field.
func BucketURLGT(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldGT(FieldBucketURL, v))
}

// BucketURLGTE applies the GTE predicate on the "bucket_url" field.
func BucketURLGTE(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldGTE(FieldBucketURL, v))
}

// BucketURLLT applies the LT predicate on the "bucket_url" field.
func BucketURLLT(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldLT(FieldBucketURL, v))
}

// BucketURLLTE applies the LTE predicate on the "bucket_url" field.
func BucketURLLTE(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldLTE(FieldBucketURL, v))
}

// BucketURLContains applies the Contains predicate on the "bucket_url" field.
func BucketURLContains(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldContains(FieldBucketURL, v))
}

// BucketURLHasPrefix applies the HasPrefix predicate on the "bucket_url" field.
func BucketURLHasPrefix(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldHasPrefix(FieldBucketURL, v))
}

// BucketURLHasSuffix applies the HasSuffix predicate on the "bucket_url" field.
func BucketURLHasSuffix(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldHasSuffix(FieldBucketURL, v))
}

// BucketURLIsNil applies the IsNil predicate on the "bucket_url" field.
func BucketURLIsNil() predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldIsNull(FieldBucketURL))
}

// BucketURLNotNil applies the NotNil predicate on the "bucket_url" field.
func BucketURLNotNil() predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNotNull(FieldBucketURL))
}

// BucketURLEqualFold applies the EqualFold predicate on the "bucket_url" field.
func BucketURLEqualFold(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEqualFold(FieldBucketURL, v))
}

// BucketURLContainsFold applies the ContainsFold predicate on the "bucket_url" field.
func BucketURLContainsFold(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldContainsFold(FieldBucketURL, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v []byte) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v []byte) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...[]byte) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...[]byte) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v []byte) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v []byte) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v []byte) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v []byte) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldLTE(FieldContentHash, v))
}

// ContentHashIsNil applies the IsNil predicate on the "content_hash" field.
func ContentHashIsNil() predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldIsNull(FieldContentHash))
}

// ContentHashNotNil applies the NotNil predicate on the "content_hash" field.
func ContentHashNotNil() predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNotNull(FieldContentHash))
}

// SignalWordEQ applies the EQ predicate on the "signal_word" field.
func SignalWordEQ(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEQ(FieldSignalWord, v))
}

// SignalWordNEQ applies the NEQ predicate on the "signal_word" field.
func SignalWordNEQ(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNEQ(FieldSignalWord, v))
}

// SignalWordIn applies the In predicate on the "signal_word" field.
func SignalWordIn(vs ...string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldIn(FieldSignalWord, vs...))
}

// SignalWordNotIn applies the NotIn predicate on the "signal_word" field.
func SignalWordNotIn(vs ...string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNotIn(FieldSignalWord, vs...))
}

// SignalWordGT applies the GT predicate on the "signal_word" field.
func SignalWordGT(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldGT(FieldSignalWord, v))
}

// SignalWordGTE applies the GTE predicate on the "signal_word" field.
func SignalWordGTE(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldGTE(FieldSignalWord, v))
}

// SignalWordLT applies the LT predicate on the "signal_word" field.
func SignalWordLT(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldLT(FieldSignalWord, v))
}

// SignalWordLTE applies the LTE predicate on the "signal_word" field.
func SignalWordLTE(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldLTE(FieldSignalWord, v))
}

// SignalWordContains applies the Contains predicate on the "signal_word" field.
func SignalWordContains(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldContains(FieldSignalWord, v))
}

// SignalWordHasPrefix applies the HasPrefix predicate on the "signal_word" field.
func SignalWordHasPrefix(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldHasPrefix(FieldSignalWord, v))
}

// SignalWordHasSuffix applies the HasSuffix predicate on the "signal_word" field.
func SignalWordHasSuffix(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldHasSuffix(FieldSignalWord, v))
}

// SignalWordIsNil applies the IsNil predicate on the "signal_word" field.
func SignalWordIsNil() predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldIsNull(FieldSignalWord))
}

// SignalWordNotNil applies the NotNil predicate on the "signal_word" field.
func SignalWordNotNil() predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNotNull(FieldSignalWord))
}

// SignalWordEqualFold applies the EqualFold predicate on the "signal_word" field.
func SignalWordEqualFold(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEqualFold(FieldSignalWord, v))
}

// SignalWordContainsFold applies the ContainsFold predicate on the "signal_word" field.
func SignalWordContainsFold(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldContainsFold(FieldSignalWord, v))
}

// HCodesIsNil applies the IsNil predicate on the "h_codes" field.
func HCodesIsNil() predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldIsNull(FieldHCodes))
}

// HCodesNotNil applies the NotNil predicate on the "h_codes" field.
func HCodesNotNil() predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNotNull(FieldHCodes))
}

// PictogramsIsNil applies the IsNil predicate on the "pictograms" field.
func PictogramsIsNil() predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldIsNull(FieldPictograms))
}

// PictogramsNotNil applies the NotNil predicate on the "pictograms" field.
func PictogramsNotNil() predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNotNull(FieldPictograms))
}

// PpeRequirementsIsNil applies the IsNil predicate on the "ppe_requirements" field.
func PpeRequirementsIsNil() predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldIsNull(FieldPpeRequirements))
}

// PpeRequirementsNotNil applies the NotNil predicate on the "ppe_requirements" field.
func PpeRequirementsNotNil() predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNotNull(FieldPpeRequirements))
}

// HmisCodesIsNil applies the IsNil predicate on the "hmis_codes" field.
func HmisCodesIsNil() predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldIsNull(FieldHmisCodes))
}

// HmisCodesNotNil applies the NotNil predicate on the "hmis_codes" field.
func HmisCodesNotNil() predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNotNull(FieldHmisCodes))
}

// NfpaCodesIsNil applies the IsNil predicate on the "nfpa_codes" field.
func NfpaCodesIsNil() predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldIsNull(FieldNfpaCodes))
}

// NfpaCodesNotNil applies the NotNil predicate on the "nfpa_codes" field.
func NfpaCodesNotNil() predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNotNull(FieldNfpaCodes))
}

// PrecautionaryStatementsIsNil applies the IsNil predicate on the "precautionary_statements" field.
func PrecautionaryStatementsIsNil() predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldIsNull(FieldPrecautionaryStatements))
}

// PrecautionaryStatementsNotNil applies the NotNil predicate on the "precautionary_statements" field.
func PrecautionaryStatementsNotNil() predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNotNull(FieldPrecautionaryStatements))
}

// FirstAidIsNil applies the IsNil predicate on the "first_aid" field.
func FirstAidIsNil() predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldIsNull(FieldFirstAid))
}

// FirstAidNotNil applies the NotNil predicate on the "first_aid" field.
func FirstAidNotNil() predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNotNull(FieldFirstAid))
}

// HandlingStorageEQ applies the EQ predicate on the "handling_storage" field.
func HandlingStorageEQ(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEQ(FieldHandlingStorage, v))
}

// HandlingStorageNEQ applies the NEQ predicate on the "handling_storage" field.
func HandlingStorageNEQ(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNEQ(FieldHandlingStorage, v))
}

// HandlingStorageIn applies the In predicate on the "handling_storage" field.
func HandlingStorageIn(vs ...string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldIn(FieldHandlingStorage, vs...))
}

// HandlingStorageNotIn applies the NotIn predicate on the "handling_storage" field.
func HandlingStorageNotIn(vs ...string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNotIn(FieldHandlingStorage, vs...))
}

// HandlingStorageGT applies the GT predicate on the "handling_storage" field.
func HandlingStorageGT(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldGT(FieldHandlingStorage, v))
}

// HandlingStorageGTE applies the GTE predicate on the "handling_storage" field.
func HandlingStorageGTE(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldGTE(FieldHandlingStorage, v))
}

// HandlingStorageLT applies the LT predicate on the "handling_storage" field.
func HandlingStorageLT(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldLT(FieldHandlingStorage, v))
}

// HandlingStorageLTE applies the LTE predicate on the "handling_storage" field.
func HandlingStorageLTE(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldLTE(FieldHandlingStorage, v))
}

// HandlingStorageContains applies the Contains predicate on the "handling_storage" field.
func HandlingStorageContains(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldContains(FieldHandlingStorage, v))
}

// HandlingStorageHasPrefix applies the HasPrefix predicate on the "handling_storage" field.
func HandlingStorageHasPrefix(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldHasPrefix(FieldHandlingStorage, v))
}

// HandlingStorageHasSuffix applies the HasSuffix predicate on the "handling_storage" field.
func HandlingStorageHasSuffix(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldHasSuffix(FieldHandlingStorage, v))
}

// HandlingStorageIsNil applies the IsNil predicate on the "handling_storage" field.
func HandlingStorageIsNil() predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldIsNull(FieldHandlingStorage))
}

// HandlingStorageNotNil applies the NotNil predicate on the "handling_storage" field.
func HandlingStorageNotNil() predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNotNull(FieldHandlingStorage))
}

// HandlingStorageEqualFold applies the EqualFold predicate on the "handling_storage" field.
func HandlingStorageEqualFold(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEqualFold(FieldHandlingStorage, v))
}

// HandlingStorageContainsFold applies the ContainsFold predicate on the "handling_storage" field.
func HandlingStorageContainsFold(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldContainsFold(FieldHandlingStorage, v))
}

// PhysicalStateEQ applies the EQ predicate on the "physical_state" field.
func PhysicalStateEQ(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEQ(FieldPhysicalState, v))
}

// PhysicalStateNEQ applies the NEQ predicate on the "physical_state" field.
func PhysicalStateNEQ(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNEQ(FieldPhysicalState, v))
}

// PhysicalStateIn applies the In predicate on the "physical_state" field.
func PhysicalStateIn(vs ...string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldIn(FieldPhysicalState, vs...))
}

// PhysicalStateNotIn applies the NotIn predicate on the "physical_state" field.
func PhysicalStateNotIn(vs ...string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNotIn(FieldPhysicalState, vs...))
}

// PhysicalStateGT applies the GT predicate on the "physical_state" field.
func PhysicalStateGT(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldGT(FieldPhysicalState, v))
}

// PhysicalStateGTE applies the GTE predicate on the "physical_state" field.
func PhysicalStateGTE(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldGTE(FieldPhysicalState, v))
}

// PhysicalStateLT applies the LT predicate on the "physical_state" field.
func PhysicalStateLT(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldLT(FieldPhysicalState, v))
}

// PhysicalStateLTE applies the LTE predicate on the "physical_state" field.
func PhysicalStateLTE(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldLTE(FieldPhysicalState, v))
}

// PhysicalStateContains applies the Contains predicate on the "physical_state" field.
func PhysicalStateContains(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldContains(FieldPhysicalState, v))
}

// PhysicalStateHasPrefix applies the HasPrefix predicate on the "physical_state" field.
func PhysicalStateHasPrefix(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldHasPrefix(FieldPhysicalState, v))
}

// PhysicalStateHasSuffix applies the HasSuffix predicate on the "physical_state" field.
func PhysicalStateHasSuffix(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldHasSuffix(FieldPhysicalState, v))
}

// PhysicalStateIsNil applies the IsNil predicate on the "physical_state" field.
func PhysicalStateIsNil() predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldIsNull(FieldPhysicalState))
}

// PhysicalStateNotNil applies the NotNil predicate on the "physical_state" field.
func PhysicalStateNotNil() predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNotNull(FieldPhysicalState))
}

// PhysicalStateEqualFold applies the EqualFold predicate on the "physical_state" field.
func PhysicalStateEqualFold(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEqualFold(FieldPhysicalState, v))
}

// PhysicalStateContainsFold applies the ContainsFold predicate on the "physical_state" field.
func PhysicalStateContainsFold(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldContainsFold(FieldPhysicalState, v))
}

// FlashPointEQ applies the EQ predicate on the "flash_point" field.
func FlashPointEQ(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEQ(FieldFlashPoint, v))
}

// FlashPointNEQ applies the NEQ predicate on the "flash_point" field.
func FlashPointNEQ(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNEQ(FieldFlashPoint, v))
}

// FlashPointIn applies the In predicate on the "flash_point" field.
func FlashPointIn(vs ...string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldIn(FieldFlashPoint, vs...))
}

// FlashPointNotIn applies the NotIn predicate on the "flash_point" field.
func FlashPointNotIn(vs ...string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNotIn(FieldFlashPoint, vs...))
}

// FlashPointGT applies the GT predicate on the "flash_point" field.
func FlashPointGT(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldGT(FieldFlashPoint, v))
}

// FlashPointGTE applies the GTE predicate on the "flash_point" field.
func FlashPointGTE(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldGTE(FieldFlashPoint, v))
}

// FlashPointLT applies the LT predicate on the "flash_point" field.
func FlashPointLT(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldLT(FieldFlashPoint, v))
}

// FlashPointLTE applies the LTE predicate on the "flash_point" field.
func FlashPointLTE(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldLTE(FieldFlashPoint, v))
}

// FlashPointContains applies the Contains predicate on the "flash_point" field.
func FlashPointContains(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldContains(FieldFlashPoint, v))
}

// FlashPointHasPrefix applies the HasPrefix predicate on the "flash_point" field.
func FlashPointHasPrefix(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldHasPrefix(FieldFlashPoint, v))
}

// FlashPointHasSuffix applies the HasSuffix predicate on the "flash_point" field.
func FlashPointHasSuffix(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldHasSuffix(FieldFlashPoint, v))
}

// FlashPointIsNil applies the IsNil predicate on the "flash_point" field.
func FlashPointIsNil() predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldIsNull(FieldFlashPoint))
}

// FlashPointNotNil applies the NotNil predicate on the "flash_point" field.
func FlashPointNotNil() predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNotNull(FieldFlashPoint))
}

// FlashPointEqualFold applies the EqualFold predicate on the "flash_point" field.
func FlashPointEqualFold(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEqualFold(FieldFlashPoint, v))
}

// FlashPointContainsFold applies the ContainsFold predicate on the "flash_point" field.
func FlashPointContainsFold(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldContainsFold(FieldFlashPoint, v))
}

// ExtractionQualityScoreEQ applies the EQ predicate on the "extraction_quality_score" field.
func ExtractionQualityScoreEQ(v int) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEQ(FieldExtractionQualityScore, v))
}

// ExtractionQualityScoreNEQ applies the NEQ predicate on the "extraction_quality_score" field.
func ExtractionQualityScoreNEQ(v int) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNEQ(FieldExtractionQualityScore, v))
}

// ExtractionQualityScoreIn applies the In predicate on the "extraction_quality_score" field.
func ExtractionQualityScoreIn(vs ...int) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldIn(FieldExtractionQualityScore, vs...))
}

// ExtractionQualityScoreNotIn applies the NotIn predicate on the "extraction_quality_score" field.
func ExtractionQualityScoreNotIn(vs ...int) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNotIn(FieldExtractionQualityScore, vs...))
}

// ExtractionQualityScoreGT applies the GT predicate on the "extraction_quality_score" field.
func ExtractionQualityScoreGT(v int) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldGT(FieldExtractionQualityScore, v))
}

// ExtractionQualityScoreGTE applies the GTE predicate on the "extraction_quality_score" field.
func ExtractionQualityScoreGTE(v int) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldGTE(FieldExtractionQualityScore, v))
}

// ExtractionQualityScoreLT applies the LT predicate on the "extraction_quality_score" field.
func ExtractionQualityScoreLT(v int) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldLT(FieldExtractionQualityScore, v))
}

// ExtractionQualityScoreLTE applies the LTE predicate on the "extraction_quality_score" field.
func ExtractionQualityScoreLTE(v int) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldLTE(FieldExtractionQualityScore, v))
}

// AiConfidenceEQ applies the EQ predicate on the "ai_confidence" field.
func AiConfidenceEQ(v float32) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEQ(FieldAiConfidence, v))
}

// AiConfidenceNEQ applies the NEQ predicate on the "ai_confidence" field.
func AiConfidenceNEQ(v float32) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNEQ(FieldAiConfidence, v))
}

// AiConfidenceIn applies the In predicate on the "ai_confidence" field.
func AiConfidenceIn(vs ...float32) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldIn(FieldAiConfidence, vs...))
}

// AiConfidenceNotIn applies the NotIn predicate on the "ai_confidence" field.
func AiConfidenceNotIn(vs ...float32) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNotIn(FieldAiConfidence, vs...))
}

// AiConfidenceGT applies the GT predicate on the "ai_confidence" field.
func AiConfidenceGT(v float32) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldGT(FieldAiConfidence, v))
}

// AiConfidenceGTE applies the GTE predicate on the "ai_confidence" field.
func AiConfidenceGTE(v float32) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldGTE(FieldAiConfidence, v))
}

// AiConfidenceLT applies the LT predicate on the "ai_confidence" field.
func AiConfidenceLT(v float32) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldLT(FieldAiConfidence, v))
}

// AiConfidenceLTE applies the LTE predicate on the "ai_confidence" field.
func AiConfidenceLTE(v float32) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldLTE(FieldAiConfidence, v))
}

// AiConfidenceIsNil applies the IsNil predicate on the "ai_confidence" field.
func AiConfidenceIsNil() predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldIsNull(FieldAiConfidence))
}

// AiConfidenceNotNil applies the NotNil predicate on the "ai_confidence" field.
func AiConfidenceNotNil() predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNotNull(FieldAiConfidence))
}

// ExtractionStatusEQ applies the EQ predicate on the "extraction_status" field.
func ExtractionStatusEQ(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEQ(FieldExtractionStatus, v))
}

// ExtractionStatusNEQ applies the NEQ predicate on the "extraction_status" field.
func ExtractionStatusNEQ(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNEQ(FieldExtractionStatus, v))
}

// ExtractionStatusIn applies the In predicate on the "extraction_status" field.
func ExtractionStatusIn(vs ...string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldIn(FieldExtractionStatus, vs...))
}

// ExtractionStatusNotIn applies the NotIn predicate on the "extraction_status" field.
func ExtractionStatusNotIn(vs ...string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNotIn(FieldExtractionStatus, vs...))
}

// ExtractionStatusGT applies the GT predicate on the "extraction_status" field.
func ExtractionStatusGT(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldGT(FieldExtractionStatus, v))
}

// ExtractionStatusGTE applies the GTE predicate on the "extraction_status" field.
func ExtractionStatusGTE(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldGTE(FieldExtractionStatus, v))
}

// ExtractionStatusLT applies the LT predicate on the "extraction_status" field.
func ExtractionStatusLT(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldLT(FieldExtractionStatus, v))
}

// ExtractionStatusLTE applies the LTE predicate on the "extraction_status" field.
func ExtractionStatusLTE(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldLTE(FieldExtractionStatus, v))
}

// ExtractionStatusContains applies the Contains predicate on the "extraction_status" field.
func ExtractionStatusContains(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldContains(FieldExtractionStatus, v))
}

// ExtractionStatusHasPrefix applies the HasPrefix predicate on the "extraction_status" field.
func ExtractionStatusHasPrefix(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldHasPrefix(FieldExtractionStatus, v))
}

// ExtractionStatusHasSuffix applies the HasSuffix predicate on the "extraction_status" field.
func ExtractionStatusHasSuffix(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldHasSuffix(FieldExtractionStatus, v))
}

// ExtractionStatusEqualFold applies the EqualFold predicate on the "extraction_status" field.
func ExtractionStatusEqualFold(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEqualFold(FieldExtractionStatus, v))
}

// ExtractionStatusContainsFold applies the ContainsFold predicate on the "extraction_status" field.
func ExtractionStatusContainsFold(v string) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldContainsFold(FieldExtractionStatus, v))
}

// IsReadableEQ applies the EQ predicate on the "is_readable" field.
func IsReadableEQ(v bool) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEQ(FieldIsReadable, v))
}

// IsReadableNEQ applies the NEQ predicate on the "is_readable" field.
func IsReadableNEQ(v bool) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNEQ(FieldIsReadable, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SDSDocument {
	return predicate.SDSDocument(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasFacility applies the HasEdge predicate on the "facility" edge.
func HasFacility() predicate.SDSDocument {
	return predicate.SDSDocument(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FacilityTable, FacilityColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFacilityWith applies the HasEdge predicate on the "facility" edge with a given conditions (other predicates).
func HasFacilityWith(preds ...predicate.Facility) predicate.SDSDocument {
	return predicate.SDSDocument(func(s *sql.Selector) {
		step := newFacilityStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.SDSDocument {
	return predicate.SDSDocument(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.ExtractJob) predicate.SDSDocument {
	return predicate.SDSDocument(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SDSDocument) predicate.SDSDocument {
	return predicate.SDSDocument(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SDSDocument) predicate.SDSDocument {
	return predicate.SDSDocument(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SDSDocument) predicate.SDSDocument {
	return predicate.SDSDocument(sql.NotPredicates(p))
}
