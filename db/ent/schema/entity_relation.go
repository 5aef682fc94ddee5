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

	"github.com/evgenyd/docs-metadata-enhancer/constants"
	"github.com/evgenyd/docs-metadata-enhancer/db/ent/schema/utils"
)

// EntityRelation records one mention of a KnowledgeEntity inside a
// document's metadata. The composite unique index keeps re-runs of linking
// idempotent.
type EntityRelation struct{ ent.Schema }

func (EntityRelation) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "entity_relations"},
	}
}

func (EntityRelation) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("document_id", uuid.UUID{}),
		field.UUID("entity_id", uuid.UUID{}),
		field.String("field_category").NotEmpty().
			Validate(utils.EnumValidator(constants.MetadataFields...)),
		field.String("name").NotEmpty(),
		field.String("field_key").NotEmpty(),
		field.String("field_value").NotEmpty(),
		field.Float32("confidence").Default(1.0),
		field.String("context").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
	}
}

func (EntityRelation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("relations").
			Field("document_id").
			Unique().
			Required(),
		edge.From("entity", KnowledgeEntity.Type).
			Ref("relations").
			Field("entity_id").
			Unique().
			Required(),
	}
}

func (EntityRelation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "entity_id", "field_category", "field_key", "field_value").
			Unique(),
		index.Fields("document_id"),
		index.Fields("entity_id"),
	}
}
