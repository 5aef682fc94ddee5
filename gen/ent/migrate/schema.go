// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "source_path", Type: field.TypeString},
		{Name: "format", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "owner", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "meta_wikidata", Type: field.TypeJSON, Nullable: true},
		{Name: "processing_error", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_status",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[4]},
			},
			{
				Name:    "document_owner",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[5]},
			},
		},
	}
	// EntityRelationsColumns holds the columns for the "entity_relations" table.
	EntityRelationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "field_category", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "field_key", Type: field.TypeString},
		{Name: "field_value", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeFloat32, Default: 1},
		{Name: "context", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
		{Name: "entity_id", Type: field.TypeUUID},
	}
	// EntityRelationsTable holds the schema information for the "entity_relations" table.
	EntityRelationsTable = &schema.Table{
		Name:       "entity_relations",
		Columns:    EntityRelationsColumns,
		PrimaryKey: []*schema.Column{EntityRelationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "entity_relations_documents_relations",
				Columns:    []*schema.Column{EntityRelationsColumns[8]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "entity_relations_knowledge_entities_relations",
				Columns:    []*schema.Column{EntityRelationsColumns[9]},
				RefColumns: []*schema.Column{KnowledgeEntitiesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "entityrelation_document_id_entity_id_field_category_field_key_field_value",
				Unique:  true,
				Columns: []*schema.Column{EntityRelationsColumns[8], EntityRelationsColumns[9], EntityRelationsColumns[1], EntityRelationsColumns[3], EntityRelationsColumns[4]},
			},
			{
				Name:    "entityrelation_document_id",
				Unique:  false,
				Columns: []*schema.Column{EntityRelationsColumns[8]},
			},
			{
				Name:    "entityrelation_entity_id",
				Unique:  false,
				Columns: []*schema.Column{EntityRelationsColumns[9]},
			},
		},
	}
	// KnowledgeEntitiesColumns holds the columns for the "knowledge_entities" table.
	KnowledgeEntitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "qid", Type: field.TypeString, Unique: true},
		{Name: "label_ru", Type: field.TypeString, Nullable: true},
		{Name: "label_en", Type: field.TypeString, Nullable: true},
		{Name: "description_ru", Type: field.TypeString, Nullable: true},
		{Name: "description_en", Type: field.TypeString, Nullable: true},
		{Name: "properties", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// KnowledgeEntitiesTable holds the schema information for the "knowledge_entities" table.
	KnowledgeEntitiesTable = &schema.Table{
		Name:       "knowledge_entities",
		Columns:    KnowledgeEntitiesColumns,
		PrimaryKey: []*schema.Column{KnowledgeEntitiesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		EntityRelationsTable,
		KnowledgeEntitiesTable,
	}
)

func init() {
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	EntityRelationsTable.ForeignKeys[0].RefTable = DocumentsTable
	EntityRelationsTable.ForeignKeys[1].RefTable = KnowledgeEntitiesTable
	EntityRelationsTable.Annotation = &entsql.Annotation{
		Table: "entity_relations",
	}
	KnowledgeEntitiesTable.Annotation = &entsql.Annotation{
		Table: "knowledge_entities",
	}
}
