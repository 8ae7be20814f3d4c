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

	"github.com/machinehub/discovery-pipeline/constants"
	"github.com/machinehub/discovery-pipeline/db/ent/schema/utils"
)

type DiscoveredURL struct{ ent.Schema }

func (DiscoveredURL) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "discovered_url"},
	}
}

func (DiscoveredURL) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK so we can define a composite unique index
		field.UUID("manufacturer_id", uuid.UUID{}),
		field.String("url").NotEmpty(),
		field.String("category").Optional().Nillable(),

		// scrape state
		field.String("status").Default(string(constants.ScrapePending)).
			Validate(utils.EnumValidator(constants.ScrapeStatuses...)),
		field.Time("discovered_at").Default(time.Now),
		field.Time("scraped_at").Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),
		field.JSON("scraped_fields", map[string]any{}).Optional(),

		// duplicate state
		field.String("duplicate_status").Default(string(constants.DuplicatePending)).
			Validate(utils.EnumValidator(constants.DuplicateStatuses...)),
		field.UUID("existing_machine_id", uuid.UUID{}).Optional().Nillable(),
		field.Float("similarity_score").Optional().Nillable(),
		field.String("duplicate_reason").Optional().Nillable(),
		field.Time("checked_at").Optional().Nillable(),
		field.Time("check_started_at").Optional().Nillable(),

		// classification state
		field.String("ml_classification").Optional().Nillable().
			Validate(utils.EnumValidator(constants.Classifications...)),
		field.Float("ml_confidence").Optional().Nillable(),
		field.String("ml_reason").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("machine_type").Optional().Nillable(),
		field.Bool("should_auto_skip").Default(false),

		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (DiscoveredURL) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY urls -> ONE manufacturer
		edge.From("manufacturer", Manufacturer.Type).
			Ref("urls").
			Field("manufacturer_id").
			Required().
			Unique(),
	}
}

func (DiscoveredURL) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("manufacturer_id", "url").Unique(),
		index.Fields("manufacturer_id", "status"),
		index.Fields("manufacturer_id", "duplicate_status"),
		index.Fields("discovered_at"),
	}
}
