// Code generated by ent, DO NOT EDIT.

package knowledgeentity

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/evgenyd/docs-metadata-enhancer/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldLTE(FieldID, id))
}

// Qid applies equality check predicate on the "qid" field. It's identical to QidEQ.
func Qid(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldEQ(FieldQid, v))
}

// LabelRu applies equality check predicate on the "label_ru" field. It's identical to LabelRuEQ.
func LabelRu(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldEQ(FieldLabelRu, v))
}

// LabelEn applies equality check predicate on the "label_en" field. It's identical to LabelEnEQ.
func LabelEn(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldEQ(FieldLabelEn, v))
}

// DescriptionRu applies equality check predicate on the "description_ru" field. It's identical to DescriptionRuEQ.
func DescriptionRu(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldEQ(FieldDescriptionRu, v))
}

// DescriptionEn applies equality check predicate on the "description_en" field. It's identical to DescriptionEnEQ.
func DescriptionEn(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldEQ(FieldDescriptionEn, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldEQ(FieldUpdatedAt, v))
}

// QidEQ applies the EQ predicate on the "qid" field.
func QidEQ(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldEQ(FieldQid, v))
}

// QidNEQ applies the NEQ predicate on the "qid" field.
func QidNEQ(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldNEQ(FieldQid, v))
}

// QidIn applies the In predicate on the "qid" field.
func QidIn(vs ...string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldIn(FieldQid, vs...))
}

// QidNotIn applies the NotIn predicate on the "qid" field.
func QidNotIn(vs ...string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldNotIn(FieldQid, vs...))
}

// QidGT applies the GT predicate on the "qid" field.
func QidGT(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldGT(FieldQid, v))
}

// QidGTE applies the GTE predicate on the "qid" field.
func QidGTE(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldGTE(FieldQid, v))
}

// QidLT applies the LT predicate on the "qid" field.
func QidLT(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldLT(FieldQid, v))
}

// QidLTE applies the LTE predicate on the "qid" field.
func QidLTE(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldLTE(FieldQid, v))
}

// QidContains applies the Contains predicate on the "qid" field.
func QidContains(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldContains(FieldQid, v))
}

// QidHasPrefix applies the HasPrefix predicate on the "qid" field.
func QidHasPrefix(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldHasPrefix(FieldQid, v))
}

// QidHasSuffix applies the HasSuffix predicate on the "qid" field.
func QidHasSuffix(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldHasSuffix(FieldQid, v))
}

// QidEqualFold applies the EqualFold predicate on the "qid" field.
func QidEqualFold(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldEqualFold(FieldQid, v))
}

// QidContainsFold applies the ContainsFold predicate on the "qid" field.
func QidContainsFold(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldContainsFold(FieldQid, v))
}

// LabelRuEQ applies the EQ predicate on the "label_ru" field.
func LabelRuEQ(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldEQ(FieldLabelRu, v))
}

// LabelRuNEQ applies the NEQ predicate on the "label_ru" field.
func LabelRuNEQ(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldNEQ(FieldLabelRu, v))
}

// LabelRuIn applies the In predicate on the "label_ru" field.
func LabelRuIn(vs ...string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldIn(FieldLabelRu, vs...))
}

// LabelRuNotIn applies the NotIn predicate on the "label_ru" field.
func LabelRuNotIn(vs ...string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldNotIn(FieldLabelRu, vs...))
}

// LabelRuGT applies the GT predicate on the "label_ru" field.
func LabelRuGT(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldGT(FieldLabelRu, v))
}

// LabelRuGTE applies the GTE predicate on the "label_ru" field.
func LabelRuGTE(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldGTE(FieldLabelRu, v))
}

// LabelRuLT applies the LT predicate on the "label_ru" field.
func LabelRuLT(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldLT(FieldLabelRu, v))
}

// LabelRuLTE applies the LTE predicate on the "label_ru" field.
func LabelRuLTE(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldLTE(FieldLabelRu, v))
}

// LabelRuContains applies the Contains predicate on the "label_ru" field.
func LabelRuContains(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldContains(FieldLabelRu, v))
}

// LabelRuHasPrefix applies the HasPrefix predicate on the "label_ru" field.
func LabelRuHasPrefix(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldHasPrefix(FieldLabelRu, v))
}

// LabelRuHasSuffix applies the HasSuffix predicate on the "label_ru" field.
func LabelRuHasSuffix(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldHasSuffix(FieldLabelRu, v))
}

// LabelRuIsNil applies the IsNil predicate on the "label_ru" field.
func LabelRuIsNil() predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldIsNull(FieldLabelRu))
}

// LabelRuNotNil applies the NotNil predicate on the "label_ru" field.
func LabelRuNotNil() predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldNotNull(FieldLabelRu))
}

// LabelRuEqualFold applies the EqualFold predicate on the "label_ru" field.
func LabelRuEqualFold(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldEqualFold(FieldLabelRu, v))
}

// LabelRuContainsFold applies the ContainsFold predicate on the "label_ru" field.
func LabelRuContainsFold(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldContainsFold(FieldLabelRu, v))
}

// LabelEnEQ applies the EQ predicate on the "label_en" field.
func LabelEnEQ(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldEQ(FieldLabelEn, v))
}

// LabelEnNEQ applies the NEQ predicate on the "label_en" field.
func LabelEnNEQ(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldNEQ(FieldLabelEn, v))
}

// LabelEnIn applies the In predicate on the "label_en" field.
func LabelEnIn(vs ...string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldIn(FieldLabelEn, vs...))
}

// LabelEnNotIn applies the NotIn predicate on the "label_en" field.
func LabelEnNotIn(vs ...string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldNotIn(FieldLabelEn, vs...))
}

// LabelEnGT applies the GT predicate on the "label_en" field.
func LabelEnGT(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldGT(FieldLabelEn, v))
}

// LabelEnGTE applies the GTE predicate on the "label_en" field.
func LabelEnGTE(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldGTE(FieldLabelEn, v))
}

// LabelEnLT applies the LT predicate on the "label_en" field.
func LabelEnLT(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldLT(FieldLabelEn, v))
}

// LabelEnLTE applies the LTE predicate on the "label_en" field.
func LabelEnLTE(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldLTE(FieldLabelEn, v))
}

// LabelEnContains applies the Contains predicate on the "label_en" field.
func LabelEnContains(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldContains(FieldLabelEn, v))
}

// LabelEnHasPrefix applies the HasPrefix predicate on the "label_en" field.
func LabelEnHasPrefix(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldHasPrefix(FieldLabelEn, v))
}

// LabelEnHasSuffix applies the HasSuffix predicate on the "label_en" field.
func LabelEnHasSuffix(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldHasSuffix(FieldLabelEn, v))
}

// LabelEnIsNil applies the IsNil predicate on the "label_en" field.
func LabelEnIsNil() predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldIsNull(FieldLabelEn))
}

// LabelEnNotNil applies the NotNil predicate on the "label_en" field.
func LabelEnNotNil() predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldNotNull(FieldLabelEn))
}

// LabelEnEqualFold applies the EqualFold predicate on the "label_en" field.
func LabelEnEqualFold(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldEqualFold(FieldLabelEn, v))
}

// LabelEnContainsFold applies the ContainsFold predicate on the "label_en" field.
func LabelEnContainsFold(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldContainsFold(FieldLabelEn, v))
}

// DescriptionRuEQ applies the EQ predicate on the "description_ru" field.
func DescriptionRuEQ(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldEQ(FieldDescriptionRu, v))
}

// DescriptionRuNEQ applies the NEQ predicate on the "description_ru" field.
func DescriptionRuNEQ(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldNEQ(FieldDescriptionRu, v))
}

// DescriptionRuIn applies the In predicate on the "description_ru" field.
func DescriptionRuIn(vs ...string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldIn(FieldDescriptionRu, vs...))
}

// DescriptionRuNotIn applies the NotIn predicate on the "description_ru" field.
func DescriptionRuNotIn(vs ...string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldNotIn(FieldDescriptionRu, vs...))
}

// DescriptionRuGT applies the GT predicate on the "description_ru" field.
func DescriptionRuGT(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldGT(FieldDescriptionRu, v))
}

// DescriptionRuGTE applies the GTE predicate on the "description_ru" field.
func DescriptionRuGTE(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldGTE(FieldDescriptionRu, v))
}

// DescriptionRuLT applies the LT predicate on the "description_ru" field.
func DescriptionRuLT(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldLT(FieldDescriptionRu, v))
}

// DescriptionRuLTE applies the LTE predicate on the "description_ru" field.
func DescriptionRuLTE(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldLTE(FieldDescriptionRu, v))
}

// DescriptionRuContains applies the Contains predicate on the "description_ru" field.
func DescriptionRuContains(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldContains(FieldDescriptionRu, v))
}

// DescriptionRuHasPrefix applies the HasPrefix predicate on the "description_ru" field.
func DescriptionRuHasPrefix(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldHasPrefix(FieldDescriptionRu, v))
}

// DescriptionRuHasSuffix applies the HasSuffix predicate on the "description_ru" field.
func DescriptionRuHasSuffix(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldHasSuffix(FieldDescriptionRu, v))
}

// DescriptionRuIsNil applies the IsNil predicate on the "description_ru" field.
func DescriptionRuIsNil() predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldIsNull(FieldDescriptionRu))
}

// DescriptionRuNotNil applies the NotNil predicate on the "description_ru" field.
func DescriptionRuNotNil() predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldNotNull(FieldDescriptionRu))
}

// DescriptionRuEqualFold applies the EqualFold predicate on the "description_ru" field.
func DescriptionRuEqualFold(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldEqualFold(FieldDescriptionRu, v))
}

// DescriptionRuContainsFold applies the ContainsFold predicate on the "description_ru" field.
func DescriptionRuContainsFold(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldContainsFold(FieldDescriptionRu, v))
}

// DescriptionEnEQ applies the EQ predicate on the "description_en" field.
func DescriptionEnEQ(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldEQ(FieldDescriptionEn, v))
}

// DescriptionEnNEQ applies the NEQ predicate on the "description_en" field.
func DescriptionEnNEQ(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldNEQ(FieldDescriptionEn, v))
}

// DescriptionEnIn applies the In predicate on the "description_en" field.
func DescriptionEnIn(vs ...string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldIn(FieldDescriptionEn, vs...))
}

// DescriptionEnNotIn applies the NotIn predicate on the "description_en" field.
func DescriptionEnNotIn(vs ...string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldNotIn(FieldDescriptionEn, vs...))
}

// DescriptionEnGT applies the GT predicate on the "description_en" field.
func DescriptionEnGT(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldGT(FieldDescriptionEn, v))
}

// DescriptionEnGTE applies the GTE predicate on the "description_en" field.
func DescriptionEnGTE(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldGTE(FieldDescriptionEn, v))
}

// DescriptionEnLT applies the LT predicate on the "description_en" field.
func DescriptionEnLT(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldLT(FieldDescriptionEn, v))
}

// DescriptionEnLTE applies the LTE predicate on the "description_en" field.
func DescriptionEnLTE(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldLTE(FieldDescriptionEn, v))
}

// DescriptionEnContains applies the Contains predicate on the "description_en" field.
func DescriptionEnContains(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldContains(FieldDescriptionEn, v))
}

// DescriptionEnHasPrefix applies the HasPrefix predicate on the "description_en" field.
func DescriptionEnHasPrefix(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldHasPrefix(FieldDescriptionEn, v))
}

// DescriptionEnHasSuffix applies the HasSuffix predicate on the "description_en" field.
func DescriptionEnHasSuffix(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldHasSuffix(FieldDescriptionEn, v))
}

// DescriptionEnIsNil applies the IsNil predicate on the "description_en" field.
func DescriptionEnIsNil() predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldIsNull(FieldDescriptionEn))
}

// DescriptionEnNotNil applies the NotNil predicate on the "description_en" field.
func DescriptionEnNotNil() predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldNotNull(FieldDescriptionEn))
}

// DescriptionEnEqualFold applies the EqualFold predicate on the "description_en" field.
func DescriptionEnEqualFold(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldEqualFold(FieldDescriptionEn, v))
}

// DescriptionEnContainsFold applies the ContainsFold predicate on the "description_en" field.
func DescriptionEnContainsFold(v string) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldContainsFold(FieldDescriptionEn, v))
}

// PropertiesIsNil applies the IsNil predicate on the "properties" field.
func PropertiesIsNil() predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldIsNull(FieldProperties))
}

// PropertiesNotNil applies the NotNil predicate on the "properties" field.
func PropertiesNotNil() predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldNotNull(FieldProperties))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasRelations applies the HasEdge predicate on the "relations" edge.
func HasRelations() predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RelationsTable, RelationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRelationsWith applies the HasEdge predicate on the "relations" edge with a given conditions (other predicates).
func HasRelationsWith(preds ...predicate.EntityRelation) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(func(s *sql.Selector) {
		step := newRelationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.KnowledgeEntity) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.KnowledgeEntity) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.KnowledgeEntity) predicate.KnowledgeEntity {
	return predicate.KnowledgeEntity(sql.NotPredicates(p))
}
