package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/evgenyd/docs-metadata-enhancer/constants"
	"github.com/evgenyd/docs-metadata-enhancer/db/ent/schema/utils"
)

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		field.String("source_path").NotEmpty(),
		field.String("format").NotEmpty().
			Validate(utils.EnumValidator(constants.FileFormats...)),
		field.String("status").Default(string(constants.DocStatusPending)).
			Validate(utils.EnumValidator(constants.DocStatuses...)),
		field.String("owner").Optional(),
		// finalized metadata object; fixed key set, see internal/llm
		field.JSON("metadata", json.RawMessage{}).Optional(),
		// field -> value -> QID mirror for fast re-sync
		field.JSON("meta_wikidata", map[string]map[string]string{}).Optional(),
		field.String("processing_error").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE document -> MANY relations; relations die with their document
		edge.To("relations", EntityRelation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("owner"),
	}
}
