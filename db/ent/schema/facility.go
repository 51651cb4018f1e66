package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Facility struct{ ent.Schema }

func (Facility) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "facilities"},
	}
}

func (Facility) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		field.String("contact_email").Optional().Nillable(),
		field.String("address").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Facility) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("documents", SDSDocument.Type),
		edge.To("jobs", ExtractJob.Type),
	}
}
