// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/qrsafety/sds-pipeline/db/ent/schema"
	"github.com/qrsafety/sds-pipeline/gen/ent/extractjob"
	"github.com/qrsafety/sds-pipeline/gen/ent/facility"
	"github.com/qrsafety/sds-pipeline/gen/ent/sdsdocument"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	extractjobFields := schema.ExtractJob{}.Fields()
	_ = extractjobFields
	// extractjobDescSourceRef is the schema descriptor for source_ref field.
	extractjobDescSourceRef := extractjobFields[3].Descriptor()
	// extractjob.SourceRefValidator is a validator for the "source_ref" field. It is called by the builders before save.
	extractjob.SourceRefValidator = extractjobDescSourceRef.Validators[0].(func(string) error)
	// extractjobDescFormat is the schema descriptor for format field.
	extractjobDescFormat := extractjobFields[4].Descriptor()
	// extractjob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	extractjob.FormatValidator = func() func(string) error {
		validators := extractjobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractjobDescStartedAt is the schema descriptor for started_at field.
	extractjobDescStartedAt := extractjobFields[5].Descriptor()
	// extractjob.DefaultStartedAt holds the default value on creation for the started_at field.
	extractjob.DefaultStartedAt = extractjobDescStartedAt.Default.(func() time.Time)
	// extractjobDescStatus is the schema descriptor for status field.
	extractjobDescStatus := extractjobFields[7].Descriptor()
	// extractjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	extractjob.StatusValidator = extractjobDescStatus.Validators[0].(func(string) error)
	// extractjobDescNeedsReview is the schema descriptor for needs_review field.
	extractjobDescNeedsReview := extractjobFields[10].Descriptor()
	// extractjob.DefaultNeedsReview holds the default value on creation for the needs_review field.
	extractjob.DefaultNeedsReview = extractjobDescNeedsReview.Default.(bool)
	// extractjobDescID is the schema descriptor for id field.
	extractjobDescID := extractjobFields[0].Descriptor()
	// extractjob.DefaultID holds the default value on creation for the id field.
	extractjob.DefaultID = extractjobDescID.Default.(func() uuid.UUID)
	facilityFields := schema.Facility{}.Fields()
	_ = facilityFields
	// facilityDescName is the schema descriptor for name field.
	facilityDescName := facilityFields[1].Descriptor()
	// facility.NameValidator is a validator for the "name" field. It is called by the builders before save.
	facility.NameValidator = facilityDescName.Validators[0].(func(string) error)
	// facilityDescCreatedAt is the schema descriptor for created_at field.
	facilityDescCreatedAt := facilityFields[4].Descriptor()
	// facility.DefaultCreatedAt holds the default value on creation for the created_at field.
	facility.DefaultCreatedAt = facilityDescCreatedAt.Default.(func() time.Time)
	// facilityDescUpdatedAt is the schema descriptor for updated_at field.
	facilityDescUpdatedAt := facilityFields[5].Descriptor()
	// facility.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	facility.DefaultUpdatedAt = facilityDescUpdatedAt.Default.(func() time.Time)
	// facility.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	facility.UpdateDefaultUpdatedAt = facilityDescUpdatedAt.UpdateDefault.(func() time.Time)
	// facilityDescID is the schema descriptor for id field.
	facilityDescID := facilityFields[0].Descriptor()
	// facility.DefaultID holds the default value on creation for the id field.
	facility.DefaultID = facilityDescID.Default.(func() uuid.UUID)
	sdsdocumentFields := schema.SDSDocument{}.Fields()
	_ = sdsdocumentFields
	// sdsdocumentDescProductName is the schema descriptor for product_name field.
	sdsdocumentDescProductName := sdsdocumentFields[2].Descriptor()
	// sdsdocument.DefaultProductName holds the default value on creation for the product_name field.
	sdsdocument.DefaultProductName = sdsdocumentDescProductName.Default.(string)
	// sdsdocumentDescExtractionQualityScore is the schema descriptor for extraction_quality_score field.
	sdsdocumentDescExtractionQualityScore := sdsdocumentFields[19].Descriptor()
	// sdsdocument.DefaultExtractionQualityScore holds the default value on creation for the extraction_quality_score field.
	sdsdocument.DefaultExtractionQualityScore = sdsdocumentDescExtractionQualityScore.Default.(int)
	// sdsdocument.ExtractionQualityScoreValidator is a validator for the "extraction_quality_score" field. It is called by the builders before save.
	sdsdocument.ExtractionQualityScoreValidator = func() func(int) error {
		validators := sdsdocumentDescExtractionQualityScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(extraction_quality_score int) error {
			for _, fn := range fns {
				if err := fn(extraction_quality_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// sdsdocumentDescExtractionStatus is the schema descriptor for extraction_status field.
	sdsdocumentDescExtractionStatus := sdsdocumentFields[21].Descriptor()
	// sdsdocument.DefaultExtractionStatus holds the default value on creation for the extraction_status field.
	sdsdocument.DefaultExtractionStatus = sdsdocumentDescExtractionStatus.Default.(string)
	// sdsdocument.ExtractionStatusValidator is a validator for the "extraction_status" field. It is called by the builders before save.
	sdsdocument.ExtractionStatusValidator = sdsdocumentDescExtractionStatus.Validators[0].(func(string) error)
	// sdsdocumentDescIsReadable is the schema descriptor for is_readable field.
	sdsdocumentDescIsReadable := sdsdocumentFields[22].Descriptor()
	// sdsdocument.DefaultIsReadable holds the default value on creation for the is_readable field.
	sdsdocument.DefaultIsReadable = sdsdocumentDescIsReadable.Default.(bool)
	// sdsdocumentDescCreatedAt is the schema descriptor for created_at field.
	sdsdocumentDescCreatedAt := sdsdocumentFields[23].Descriptor()
	// sdsdocument.DefaultCreatedAt holds the default value on creation for the created_at field.
	sdsdocument.DefaultCreatedAt = sdsdocumentDescCreatedAt.Default.(func() time.Time)
	// sdsdocumentDescUpdatedAt is the schema descriptor for updated_at field.
	sdsdocumentDescUpdatedAt := sdsdocumentFields[24].Descriptor()
	// sdsdocument.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sdsdocument.DefaultUpdatedAt = sdsdocumentDescUpdatedAt.Default.(func() time.Time)
	// sdsdocument.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sdsdocument.UpdateDefaultUpdatedAt = sdsdocumentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// sdsdocumentDescID is the schema descriptor for id field.
	sdsdocumentDescID := sdsdocumentFields[0].Descriptor()
	// sdsdocument.DefaultID holds the default value on creation for the id field.
	sdsdocument.DefaultID = sdsdocumentDescID.Default.(func() uuid.UUID)
}
