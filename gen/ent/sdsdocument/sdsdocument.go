// Code generated by ent, DO NOT EDIT.

package sdsdocument

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the sdsdocument type in the database.
	Label = "sds_document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFacilityID holds the string denoting the facility_id field in the database.
	FieldFacilityID = "facility_id"
	// FieldProductName holds the string denoting the product_name field in the database.
	FieldProductName = "product_name"
	// FieldManufacturer holds the string denoting the manufacturer field in the database.
	FieldManufacturer = "manufacturer"
	// FieldCasNumber holds the string denoting the cas_number field in the database.
	FieldCasNumber = "cas_number"
	// FieldSourceURL holds the string denoting the source_url field in the database.
	FieldSourceURL = "source_url"
	// FieldBucketURL holds the string denoting the bucket_url field in the database.
	FieldBucketURL = "bucket_url"
	// FieldContentHash holds the string denoting the content_hash field in the database.
	FieldContentHash = "content_hash"
	// FieldSignalWord holds the string denoting the signal_word field in the database.
	FieldSignalWord = "signal_word"
	// FieldHCodes holds the string denoting the h_codes field in the database.
	FieldHCodes = "h_codes"
	// FieldPictograms holds the string denoting the pictograms field in the database.
	FieldPictograms = "pictograms"
	// FieldPpeRequirements holds the string denoting the ppe_requirements field in the database.
	FieldPpeRequirements = "ppe_requirements"
	// FieldHmisCodes holds the string denoting the hmis_codes field in the database.
	FieldHmisCodes = "hmis_codes"
	// FieldNfpaCodes holds the string denoting the nfpa_codes field in the database.
	FieldNfpaCodes = "nfpa_codes"
	// FieldPrecautionaryStatements holds the string denoting the precautionary_statements field in the database.
	FieldPrecautionaryStatements = "precautionary_statements"
	// FieldFirstAid holds the string denoting the first_aid field in the database.
	FieldFirstAid = "first_aid"
	// FieldHandlingStorage holds the string denoting the handling_storage field in the database.
	FieldHandlingStorage = "handling_storage"
	// FieldPhysicalState holds the string denoting the physical_state field in the database.
	FieldPhysicalState = "physical_state"
	// FieldFlashPoint holds the string denoting the flash_point field in the database.
	FieldFlashPoint = "flash_point"
	// FieldExtractionQualityScore holds the string denoting the extraction_quality_score field in the database.
	FieldExtractionQualityScore = "extraction_quality_score"
	// FieldAiConfidence holds the string denoting the ai_confidence field in the database.
	FieldAiConfidence = "ai_confidence"
	// FieldExtractionStatus holds the string denoting the extraction_status field in the database.
	FieldExtractionStatus = "extraction_status"
	// FieldIsReadable holds the string denoting the is_readable field in the database.
	FieldIsReadable = "is_readable"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeFacility holds the string denoting the facility edge name in mutations.
	EdgeFacility = "facility"
	// EdgeJobs holds the string denoting the jobs edge name in mutations.
	EdgeJobs = "jobs"
	// Table holds the table name of the sdsdocument in the database.
	Table = "sds_documents"
	// FacilityTable is the table that holds the facility relation/edge.
	FacilityTable = "sds_documents"
	// FacilityInverseTable is the table name for the Facility entity.
	// It exists in this package in order to avoid circular dependency with the "facility" package.
	FacilityInverseTable = "facilities"
	// FacilityColumn is the table column denoting the facility relation/edge.
	FacilityColumn = "facility_id"
	// JobsTable is the table that holds the jobs relation/edge.
	JobsTable = "extract_jobs"
	// JobsInverseTable is the table name for the ExtractJob entity.
	// It exists in this package in order to avoid circular dependency with the "extractjob" package.
	JobsInverseTable = "extract_jobs"
	// JobsColumn is the table column denoting the jobs relation/edge.
	JobsColumn = "document_id"
)

// Columns holds all SQL columns for sdsdocument fields.
var Columns = []string{
	FieldID,
	FieldFacilityID,
	FieldProductName,
	FieldManufacturer,
	FieldCasNumber,
	FieldSourceURL,
	FieldBucketURL,
	FieldContentHash,
	FieldSignalWord,
	FieldHCodes,
	FieldPictograms,
	FieldPpeRequirements,
	FieldHmisCodes,
	FieldNfpaCodes,
	FieldPrecautionaryStatements,
	FieldFirstAid,
	FieldHandlingStorage,
	FieldPhysicalState,
	FieldFlashPoint,
	FieldExtractionQualityScore,
	FieldAiConfidence,
	FieldExtractionStatus,
	FieldIsReadable,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultProductName holds the default value on creation for the "product_name" field.
	DefaultProductName string
	// DefaultExtractionQualityScore holds the default value on creation for the "extraction_quality_score" field.
	DefaultExtractionQualityScore int
	// ExtractionQualityScoreValidator is a validator for the "extraction_quality_score" field. It is called by the builders before save.
	ExtractionQualityScoreValidator func(int) error
	// DefaultExtractionStatus holds the default value on creation for the "extraction_status" field.
	DefaultExtractionStatus string
	// ExtractionStatusValidator is a validator for the "extraction_status" field. It is called by the builders before save.
	ExtractionStatusValidator func(string) error
	// DefaultIsReadable holds the default value on creation for the "is_readable" field.
	DefaultIsReadable bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the SDSDocument queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFacilityID orders the results by the facility_id field.
func ByFacilityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFacilityID, opts...).ToFunc()
}

// ByProductName orders the results by the product_name field.
func ByProductName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProductName, opts...).ToFunc()
}

// ByManufacturer orders the results by the manufacturer field.
func ByManufacturer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldManufacturer, opts...).ToFunc()
}

// ByCasNumber orders the results by the cas_number field.
func ByCasNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCasNumber, opts...).ToFunc()
}

// BySourceURL orders the results by the source_url field.
func BySourceURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceURL, opts...).ToFunc()
}

// ByBucketURL orders the results by the bucket_url field.
func ByBucketURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBucketURL, opts...).ToFunc()
}

// BySignalWord orders the results by the signal_word field.
func BySignalWord(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSignalWord, opts...).ToFunc()
}

// ByHandlingStorage orders the results by the handling_storage field.
func ByHandlingStorage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHandlingStorage, opts...).ToFunc()
}

// ByPhysicalState orders the results by the physical_state field.
func ByPhysicalState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhysicalState, opts...).ToFunc()
}

// ByFlashPoint orders the results by the flash_point field.
func ByFlashPoint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlashPoint, opts...).ToFunc()
}

// ByExtractionQualityScore orders the results by the extraction_quality_score field.
func ByExtractionQualityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionQualityScore, opts...).ToFunc()
}

// ByAiConfidence orders the results by the ai_confidence field.
func ByAiConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAiConfidence, opts...).ToFunc()
}

// ByExtractionStatus orders the results by the extraction_status field.
func ByExtractionStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionStatus, opts...).ToFunc()
}

// ByIsReadable orders the results by the is_readable field.
func ByIsReadable(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsReadable, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByFacilityField orders the results by facility field.
func ByFacilityField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFacilityStep(), sql.OrderByField(field, opts...))
	}
}

// ByJobsCount orders the results by jobs count.
func ByJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newJobsStep(), opts...)
	}
}

// ByJobs orders the results by jobs terms.
func ByJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newFacilityStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FacilityInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FacilityTable, FacilityColumn),
	)
}
func newJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
	)
}
