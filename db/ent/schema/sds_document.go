package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/qrsafety/sds-pipeline/constants"
	"github.com/qrsafety/sds-pipeline/db/ent/schema/utils"
	"github.com/qrsafety/sds-pipeline/internal/entity"
)

type SDSDocument struct{ ent.Schema }

func (SDSDocument) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "sds_documents"},
	}
}

func (SDSDocument) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK so we can define composite indexes
		field.UUID("facility_id", uuid.UUID{}),
		// empty when extraction could not find a name; such rows stay
		// around so manual review can fill them in
		field.String("product_name").Default(""),
		field.String("manufacturer").Optional().Nillable(),
		field.String("cas_number").Optional().Nillable(),
		field.String("source_url").Optional().Nillable(),
		field.String("bucket_url").Optional().Nillable(),
		field.Bytes("content_hash").Optional().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.String("signal_word").Optional().Nillable(),
		field.JSON("h_codes", []entity.HazardCode{}).Optional(),
		field.JSON("pictograms", []string{}).Optional(),
		field.JSON("ppe_requirements", entity.PPERequirements{}).Optional(),
		field.JSON("hmis_codes", &entity.Ratings{}).Optional(),
		field.JSON("nfpa_codes", &entity.Ratings{}).Optional(),
		field.JSON("precautionary_statements", []string{}).Optional(),
		field.JSON("first_aid", entity.FirstAid{}).Optional(),
		field.String("handling_storage").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("physical_state").Optional().Nillable(),
		field.String("flash_point").Optional().Nillable(),
		field.Int("extraction_quality_score").Default(0).Min(0).Max(100),
		field.Float32("ai_confidence").Optional().Nillable(),
		field.String("extraction_status").
			Default(string(constants.StatusPending)).
			Validate(utils.EnumValidator(constants.ExtractionStatusStrings()...)),
		field.Bool("is_readable").Default(true),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (SDSDocument) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY documents -> ONE facility
		edge.From("facility", Facility.Type).
			Ref("documents").
			Field("facility_id").
			Required().
			Unique(),
		// ONE document -> MANY jobs
		edge.To("jobs", ExtractJob.Type),
	}
}

func (SDSDocument) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("facility_id", "content_hash").Unique(),
		index.Fields("facility_id", "extraction_status"),
		index.Fields("facility_id", "product_name"),
	}
}
