package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// KnowledgeEntity is one canonical Wikidata record. The QID is the natural
// key; rows are created lazily on first successful link and refreshed in
// place when stale.
type KnowledgeEntity struct{ ent.Schema }

func (KnowledgeEntity) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "knowledge_entities"},
	}
}

func (KnowledgeEntity) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("qid").NotEmpty().Unique().Immutable(),
		field.String("label_ru").Optional(),
		field.String("label_en").Optional(),
		field.String("description_ru").Optional(),
		field.String("description_en").Optional(),
		// property id -> {label, values}, see internal/wikidata
		field.JSON("properties", json.RawMessage{}).Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (KnowledgeEntity) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("relations", EntityRelation.Type),
	}
}
