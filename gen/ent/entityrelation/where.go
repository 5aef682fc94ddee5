// Code generated by ent, DO NOT EDIT.

package entityrelation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/evgenyd/docs-metadata-enhancer/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldEQ(FieldDocumentID, v))
}

// EntityID applies equality check predicate on the "entity_id" field. It's identical to EntityIDEQ.
func EntityID(v uuid.UUID) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldEQ(FieldEntityID, v))
}

// FieldCategory applies equality check predicate on the "field_category" field. It's identical to FieldCategoryEQ.
func FieldCategory(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldEQ(FieldFieldCategory, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldEQ(FieldName, v))
}

// FieldKey applies equality check predicate on the "field_key" field. It's identical to FieldKeyEQ.
func FieldKey(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldEQ(FieldFieldKey, v))
}

// FieldValue applies equality check predicate on the "field_value" field. It's identical to FieldValueEQ.
func FieldValue(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldEQ(FieldFieldValue, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float32) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldEQ(FieldConfidence, v))
}

// Context applies equality check predicate on the "context" field. It's identical to ContextEQ.
func Context(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldEQ(FieldContext, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldEQ(FieldCreatedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldNotIn(FieldDocumentID, vs...))
}

// EntityIDEQ applies the EQ predicate on the "entity_id" field.
func EntityIDEQ(v uuid.UUID) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldEQ(FieldEntityID, v))
}

// EntityIDNEQ applies the NEQ predicate on the "entity_id" field.
func EntityIDNEQ(v uuid.UUID) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldNEQ(FieldEntityID, v))
}

// EntityIDIn applies the In predicate on the "entity_id" field.
func EntityIDIn(vs ...uuid.UUID) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldIn(FieldEntityID, vs...))
}

// EntityIDNotIn applies the NotIn predicate on the "entity_id" field.
func EntityIDNotIn(vs ...uuid.UUID) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldNotIn(FieldEntityID, vs...))
}

// FieldCategoryEQ applies the EQ predicate on the "field_category" field.
func FieldCategoryEQ(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldEQ(FieldFieldCategory, v))
}

// FieldCategoryNEQ applies the NEQ predicate on the "field_category" field.
func FieldCategoryNEQ(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldNEQ(FieldFieldCategory, v))
}

// FieldCategoryIn applies the In predicate on the "field_category" field.
func FieldCategoryIn(vs ...string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldIn(FieldFieldCategory, vs...))
}

// FieldCategoryNotIn applies the NotIn predicate on the "field_category" field.
func FieldCategoryNotIn(vs ...string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldNotIn(FieldFieldCategory, vs...))
}

// FieldCategoryGT applies the GT predicate on the "field_category" field.
func FieldCategoryGT(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldGT(FieldFieldCategory, v))
}

// FieldCategoryGTE applies the GTE predicate on the "field_category" field.
func FieldCategoryGTE(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldGTE(FieldFieldCategory, v))
}

// FieldCategoryLT applies the LT predicate on the "field_category" field.
func FieldCategoryLT(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldLT(FieldFieldCategory, v))
}

// FieldCategoryLTE applies the LTE predicate on the "field_category" field.
func FieldCategoryLTE(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldLTE(FieldFieldCategory, v))
}

// FieldCategoryContains applies the Contains predicate on the "field_category" field.
func FieldCategoryContains(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldContains(FieldFieldCategory, v))
}

// FieldCategoryHasPrefix applies the HasPrefix predicate on the "field_category" field.
func FieldCategoryHasPrefix(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldHasPrefix(FieldFieldCategory, v))
}

// FieldCategoryHasSuffix applies the HasSuffix predicate on the "field_category" field.
func FieldCategoryHasSuffix(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldHasSuffix(FieldFieldCategory, v))
}

// FieldCategoryEqualFold applies the EqualFold predicate on the "field_category" field.
func FieldCategoryEqualFold(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldEqualFold(FieldFieldCategory, v))
}

// FieldCategoryContainsFold applies the ContainsFold predicate on the "field_category" field.
func FieldCategoryContainsFold(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldContainsFold(FieldFieldCategory, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldContainsFold(FieldName, v))
}

// FieldKeyEQ applies the EQ predicate on the "field_key" field.
func FieldKeyEQ(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldEQ(FieldFieldKey, v))
}

// FieldKeyNEQ applies the NEQ predicate on the "field_key" field.
func FieldKeyNEQ(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldNEQ(FieldFieldKey, v))
}

// FieldKeyIn applies the In predicate on the "field_key" field.
func FieldKeyIn(vs ...string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldIn(FieldFieldKey, vs...))
}

// FieldKeyNotIn applies the NotIn predicate on the "field_key" field.
func FieldKeyNotIn(vs ...string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldNotIn(FieldFieldKey, vs...))
}

// FieldKeyGT applies the GT predicate on the "field_key" field.
func FieldKeyGT(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldGT(FieldFieldKey, v))
}

// FieldKeyGTE applies the GTE predicate on the "field_key" field.
func FieldKeyGTE(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldGTE(FieldFieldKey, v))
}

// FieldKeyLT applies the LT predicate on the "field_key" field.
func FieldKeyLT(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldLT(FieldFieldKey, v))
}

// FieldKeyLTE applies the LTE predicate on the "field_key" field.
func FieldKeyLTE(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldLTE(FieldFieldKey, v))
}

// FieldKeyContains applies the Contains predicate on the "field_key" field.
func FieldKeyContains(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldContains(FieldFieldKey, v))
}

// FieldKeyHasPrefix applies the HasPrefix predicate on the "field_key" field.
func FieldKeyHasPrefix(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldHasPrefix(FieldFieldKey, v))
}

// FieldKeyHasSuffix applies the HasSuffix predicate on the "field_key" field.
func FieldKeyHasSuffix(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldHasSuffix(FieldFieldKey, v))
}

// FieldKeyEqualFold applies the EqualFold predicate on the "field_key" field.
func FieldKeyEqualFold(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldEqualFold(FieldFieldKey, v))
}

// FieldKeyContainsFold applies the ContainsFold predicate on the "field_key" field.
func FieldKeyContainsFold(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldContainsFold(FieldFieldKey, v))
}

// FieldValueEQ applies the EQ predicate on the "field_value" field.
func FieldValueEQ(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldEQ(FieldFieldValue, v))
}

// FieldValueNEQ applies the NEQ predicate on the "field_value" field.
func FieldValueNEQ(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldNEQ(FieldFieldValue, v))
}

// FieldValueIn applies the In predicate on the "field_value" field.
func FieldValueIn(vs ...string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldIn(FieldFieldValue, vs...))
}

// FieldValueNotIn applies the NotIn predicate on the "field_value" field.
func FieldValueNotIn(vs ...string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldNotIn(FieldFieldValue, vs...))
}

// FieldValueGT applies the GT predicate on the "field_value" field.
func FieldValueGT(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldGT(FieldFieldValue, v))
}

// FieldValueGTE applies the GTE predicate on the "field_value" field.
func FieldValueGTE(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldGTE(FieldFieldValue, v))
}

// FieldValueLT applies the LT predicate on the "field_value" field.
func FieldValueLT(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldLT(FieldFieldValue, v))
}

// FieldValueLTE applies the LTE predicate on the "field_value" field.
func FieldValueLTE(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldLTE(FieldFieldValue, v))
}

// FieldValueContains applies the Contains predicate on the "field_value" field.
func FieldValueContains(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldContains(FieldFieldValue, v))
}

// FieldValueHasPrefix applies the HasPrefix predicate on the "field_value" field.
func FieldValueHasPrefix(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldHasPrefix(FieldFieldValue, v))
}

// FieldValueHasSuffix applies the HasSuffix predicate on the "field_value" field.
func FieldValueHasSuffix(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldHasSuffix(FieldFieldValue, v))
}

// FieldValueEqualFold applies the EqualFold predicate on the "field_value" field.
func FieldValueEqualFold(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldEqualFold(FieldFieldValue, v))
}

// FieldValueContainsFold applies the ContainsFold predicate on the "field_value" field.
func FieldValueContainsFold(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldContainsFold(FieldFieldValue, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float32) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float32) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float32) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float32) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float32) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float32) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float32) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float32) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldLTE(FieldConfidence, v))
}

// ContextEQ applies the EQ predicate on the "context" field.
func ContextEQ(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldEQ(FieldContext, v))
}

// ContextNEQ applies the NEQ predicate on the "context" field.
func ContextNEQ(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldNEQ(FieldContext, v))
}

// ContextIn applies the In predicate on the "context" field.
func ContextIn(vs ...string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldIn(FieldContext, vs...))
}

// ContextNotIn applies the NotIn predicate on the "context" field.
func ContextNotIn(vs ...string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldNotIn(FieldContext, vs...))
}

// ContextGT applies the GT predicate on the "context" field.
func ContextGT(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldGT(FieldContext, v))
}

// ContextGTE applies the GTE predicate on the "context" field.
func ContextGTE(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldGTE(FieldContext, v))
}

// ContextLT applies the LT predicate on the "context" field.
func ContextLT(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldLT(FieldContext, v))
}

// ContextLTE applies the LTE predicate on the "context" field.
func ContextLTE(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldLTE(FieldContext, v))
}

// ContextContains applies the Contains predicate on the "context" field.
func ContextContains(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldContains(FieldContext, v))
}

// ContextHasPrefix applies the HasPrefix predicate on the "context" field.
func ContextHasPrefix(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldHasPrefix(FieldContext, v))
}

// ContextHasSuffix applies the HasSuffix predicate on the "context" field.
func ContextHasSuffix(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldHasSuffix(FieldContext, v))
}

// ContextIsNil applies the IsNil predicate on the "context" field.
func ContextIsNil() predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldIsNull(FieldContext))
}

// ContextNotNil applies the NotNil predicate on the "context" field.
func ContextNotNil() predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldNotNull(FieldContext))
}

// ContextEqualFold applies the EqualFold predicate on the "context" field.
func ContextEqualFold(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldEqualFold(FieldContext, v))
}

// ContextContainsFold applies the ContainsFold predicate on the "context" field.
func ContextContainsFold(v string) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldContainsFold(FieldContext, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EntityRelation {
	return predicate.EntityRelation(sql.FieldLTE(FieldCreatedAt, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.EntityRelation {
	return predicate.EntityRelation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.EntityRelation {
	return predicate.EntityRelation(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEntity applies the HasEdge predicate on the "entity" edge.
func HasEntity() predicate.EntityRelation {
	return predicate.EntityRelation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EntityTable, EntityColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEntityWith applies the HasEdge predicate on the "entity" edge with a given conditions (other predicates).
func HasEntityWith(preds ...predicate.KnowledgeEntity) predicate.EntityRelation {
	return predicate.EntityRelation(func(s *sql.Selector) {
		step := newEntityStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EntityRelation) predicate.EntityRelation {
	return predicate.EntityRelation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EntityRelation) predicate.EntityRelation {
	return predicate.EntityRelation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EntityRelation) predicate.EntityRelation {
	return predicate.EntityRelation(sql.NotPredicates(p))
}
