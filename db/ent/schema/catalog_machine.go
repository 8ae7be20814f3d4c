package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// CatalogMachine is the already-imported catalog entry the pipeline compares
// against. Read-only from the pipeline's perspective; rows are written by the
// import path, never by the duplicate resolver.
type CatalogMachine struct{ ent.Schema }

func (CatalogMachine) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "catalog_machines"},
	}
}

func (CatalogMachine) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("manufacturer_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.String("machine_type").Optional().Nillable(),
		field.Strings("spec_tokens").Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (CatalogMachine) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("manufacturer", Manufacturer.Type).
			Ref("machines").
			Field("manufacturer_id").
			Required().
			Unique(),
	}
}

func (CatalogMachine) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("manufacturer_id", "name"),
		index.Fields("updated_at"),
	}
}
