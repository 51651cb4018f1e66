// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExtractJobsColumns holds the columns for the "extract_jobs" table.
	ExtractJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_ref", Type: field.TypeString},
		{Name: "format", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "extraction_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "method", Type: field.TypeString, Nullable: true},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "extracted_json", Type: field.TypeJSON, Nullable: true},
		{Name: "model_name", Type: field.TypeString, Nullable: true},
		{Name: "model_params", Type: field.TypeJSON, Nullable: true},
		{Name: "facility_id", Type: field.TypeUUID},
		{Name: "document_id", Type: field.TypeUUID, Nullable: true},
	}
	// ExtractJobsTable holds the schema information for the "extract_jobs" table.
	ExtractJobsTable = &schema.Table{
		Name:       "extract_jobs",
		Columns:    ExtractJobsColumns,
		PrimaryKey: []*schema.Column{ExtractJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extract_jobs_facilities_jobs",
				Columns:    []*schema.Column{ExtractJobsColumns[14]},
				RefColumns: []*schema.Column{FacilitiesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "extract_jobs_sds_documents_jobs",
				Columns:    []*schema.Column{ExtractJobsColumns[15]},
				RefColumns: []*schema.Column{SdsDocumentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractjob_facility_id_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobsColumns[14], ExtractJobsColumns[5], ExtractJobsColumns[3]},
			},
			{
				Name:    "extractjob_document_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobsColumns[15]},
			},
		},
	}
	// FacilitiesColumns holds the columns for the "facilities" table.
	FacilitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "contact_email", Type: field.TypeString, Nullable: true},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// FacilitiesTable holds the schema information for the "facilities" table.
	FacilitiesTable = &schema.Table{
		Name:       "facilities",
		Columns:    FacilitiesColumns,
		PrimaryKey: []*schema.Column{FacilitiesColumns[0]},
	}
	// SdsDocumentsColumns holds the columns for the "sds_documents" table.
	SdsDocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "product_name", Type: field.TypeString, Default: ""},
		{Name: "manufacturer", Type: field.TypeString, Nullable: true},
		{Name: "cas_number", Type: field.TypeString, Nullable: true},
		{Name: "source_url", Type: field.TypeString, Nullable: true},
		{Name: "bucket_url", Type: field.TypeString, Nullable: true},
		{Name: "content_hash", Type: field.TypeBytes, Nullable: true, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "signal_word", Type: field.TypeString, Nullable: true},
		{Name: "h_codes", Type: field.TypeJSON, Nullable: true},
		{Name: "pictograms", Type: field.TypeJSON, Nullable: true},
		{Name: "ppe_requirements", Type: field.TypeJSON, Nullable: true},
		{Name: "hmis_codes", Type: field.TypeJSON, Nullable: true},
		{Name: "nfpa_codes", Type: field.TypeJSON, Nullable: true},
		{Name: "precautionary_statements", Type: field.TypeJSON, Nullable: true},
		{Name: "first_aid", Type: field.TypeJSON, Nullable: true},
		{Name: "handling_storage", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "physical_state", Type: field.TypeString, Nullable: true},
		{Name: "flash_point", Type: field.TypeString, Nullable: true},
		{Name: "extraction_quality_score", Type: field.TypeInt, Default: 0},
		{Name: "ai_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "extraction_status", Type: field.TypeString, Default: "pending"},
		{Name: "is_readable", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "facility_id", Type: field.TypeUUID},
	}
	// SdsDocumentsTable holds the schema information for the "sds_documents" table.
	SdsDocumentsTable = &schema.Table{
		Name:       "sds_documents",
		Columns:    SdsDocumentsColumns,
		PrimaryKey: []*schema.Column{SdsDocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sds_documents_facilities_documents",
				Columns:    []*schema.Column{SdsDocumentsColumns[24]},
				RefColumns: []*schema.Column{FacilitiesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sdsdocument_facility_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{SdsDocumentsColumns[24], SdsDocumentsColumns[6]},
			},
			{
				Name:    "sdsdocument_facility_id_extraction_status",
				Unique:  false,
				Columns: []*schema.Column{SdsDocumentsColumns[24], SdsDocumentsColumns[20]},
			},
			{
				Name:    "sdsdocument_facility_id_product_name",
				Unique:  false,
				Columns: []*schema.Column{SdsDocumentsColumns[24], SdsDocumentsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExtractJobsTable,
		FacilitiesTable,
		SdsDocumentsTable,
	}
)

func init() {
	ExtractJobsTable.ForeignKeys[0].RefTable = FacilitiesTable
	ExtractJobsTable.ForeignKeys[1].RefTable = SdsDocumentsTable
	ExtractJobsTable.Annotation = &entsql.Annotation{
		Table: "extract_jobs",
	}
	FacilitiesTable.Annotation = &entsql.Annotation{
		Table: "facilities",
	}
	SdsDocumentsTable.ForeignKeys[0].RefTable = FacilitiesTable
	SdsDocumentsTable.Annotation = &entsql.Annotation{
		Table: "sds_documents",
	}
}
