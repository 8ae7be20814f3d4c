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

type Manufacturer struct {
	ent.Schema
}

func (Manufacturer) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "manufacturers"},
	}
}

func (Manufacturer) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").NotEmpty().Unique(),
		field.String("website").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Manufacturer) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE manufacturer -> MANY discovered urls
		edge.To("urls", DiscoveredURL.Type),
		// ONE manufacturer -> MANY catalog machines
		edge.To("machines", CatalogMachine.Type),
	}
}
