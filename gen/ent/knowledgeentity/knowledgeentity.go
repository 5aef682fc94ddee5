// Code generated by ent, DO NOT EDIT.

package knowledgeentity

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the knowledgeentity type in the database.
	Label = "knowledge_entity"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldQid holds the string denoting the qid field in the database.
	FieldQid = "qid"
	// FieldLabelRu holds the string denoting the label_ru field in the database.
	FieldLabelRu = "label_ru"
	// FieldLabelEn holds the string denoting the label_en field in the database.
	FieldLabelEn = "label_en"
	// FieldDescriptionRu holds the string denoting the description_ru field in the database.
	FieldDescriptionRu = "description_ru"
	// FieldDescriptionEn holds the string denoting the description_en field in the database.
	FieldDescriptionEn = "description_en"
	// FieldProperties holds the string denoting the properties field in the database.
	FieldProperties = "properties"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeRelations holds the string denoting the relations edge name in mutations.
	EdgeRelations = "relations"
	// Table holds the table name of the knowledgeentity in the database.
	Table = "knowledge_entities"
	// RelationsTable is the table that holds the relations relation/edge.
	RelationsTable = "entity_relations"
	// RelationsInverseTable is the table name for the EntityRelation entity.
	// It exists in this package in order to avoid circular dependency with the "entityrelation" package.
	RelationsInverseTable = "entity_relations"
	// RelationsColumn is the table column denoting the relations relation/edge.
	RelationsColumn = "entity_id"
)

// Columns holds all SQL columns for knowledgeentity fields.
var Columns = []string{
	FieldID,
	FieldQid,
	FieldLabelRu,
	FieldLabelEn,
	FieldDescriptionRu,
	FieldDescriptionEn,
	FieldProperties,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// QidValidator is a validator for the "qid" field. It is called by the builders before save.
	QidValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the KnowledgeEntity queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByQid orders the results by the qid field.
func ByQid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQid, opts...).ToFunc()
}

// ByLabelRu orders the results by the label_ru field.
func ByLabelRu(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabelRu, opts...).ToFunc()
}

// ByLabelEn orders the results by the label_en field.
func ByLabelEn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabelEn, opts...).ToFunc()
}

// ByDescriptionRu orders the results by the description_ru field.
func ByDescriptionRu(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescriptionRu, opts...).ToFunc()
}

// ByDescriptionEn orders the results by the description_en field.
func ByDescriptionEn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescriptionEn, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByRelationsCount orders the results by relations count.
func ByRelationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRelationsStep(), opts...)
	}
}

// ByRelations orders the results by relations terms.
func ByRelations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRelationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newRelationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RelationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RelationsTable, RelationsColumn),
	)
}
