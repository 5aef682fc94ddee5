// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/evgenyd/docs-metadata-enhancer/gen/ent/knowledgeentity"
	"github.com/google/uuid"
)

// KnowledgeEntity is the model entity for the KnowledgeEntity schema.
type KnowledgeEntity struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Qid holds the value of the "qid" field.
	Qid string `json:"qid,omitempty"`
	// LabelRu holds the value of the "label_ru" field.
	LabelRu string `json:"label_ru,omitempty"`
	// LabelEn holds the value of the "label_en" field.
	LabelEn string `json:"label_en,omitempty"`
	// DescriptionRu holds the value of the "description_ru" field.
	DescriptionRu string `json:"description_ru,omitempty"`
	// DescriptionEn holds the value of the "description_en" field.
	DescriptionEn string `json:"description_en,omitempty"`
	// Properties holds the value of the "properties" field.
	Properties json.RawMessage `json:"properties,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the KnowledgeEntityQuery when eager-loading is set.
	Edges        KnowledgeEntityEdges `json:"edges"`
	selectValues sql.SelectValues
}

// KnowledgeEntityEdges holds the relations/edges for other nodes in the graph.
type KnowledgeEntityEdges struct {
	// Relations holds the value of the relations edge.
	Relations []*EntityRelation `json:"relations,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RelationsOrErr returns the Relations value or an error if the edge
// was not loaded in eager-loading.
func (e KnowledgeEntityEdges) RelationsOrErr() ([]*EntityRelation, error) {
	if e.loadedTypes[0] {
		return e.Relations, nil
	}
	return nil, &NotLoadedError{edge: "relations"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*KnowledgeEntity) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case knowledgeentity.FieldProperties:
			values[i] = new([]byte)
		case knowledgeentity.FieldQid, knowledgeentity.FieldLabelRu, knowledgeentity.FieldLabelEn, knowledgeentity.FieldDescriptionRu, knowledgeentity.FieldDescriptionEn:
			values[i] = new(sql.NullString)
		case knowledgeentity.FieldCreatedAt, knowledgeentity.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case knowledgeentity.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the KnowledgeEntity fields.
func (_m *KnowledgeEntity) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case knowledgeentity.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case knowledgeentity.FieldQid:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field qid", values[i])
			} else if value.Valid {
				_m.Qid = value.String
			}
		case knowledgeentity.FieldLabelRu:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field label_ru", values[i])
			} else if value.Valid {
				_m.LabelRu = value.String
			}
		case knowledgeentity.FieldLabelEn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field label_en", values[i])
			} else if value.Valid {
				_m.LabelEn = value.String
			}
		case knowledgeentity.FieldDescriptionRu:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description_ru", values[i])
			} else if value.Valid {
				_m.DescriptionRu = value.String
			}
		case knowledgeentity.FieldDescriptionEn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description_en", values[i])
			} else if value.Valid {
				_m.DescriptionEn = value.String
			}
		case knowledgeentity.FieldProperties:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field properties", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Properties); err != nil {
					return fmt.Errorf("unmarshal field properties: %w", err)
				}
			}
		case knowledgeentity.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case knowledgeentity.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the KnowledgeEntity.
// This includes values selected through modifiers, order, etc.
func (_m *KnowledgeEntity) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRelations queries the "relations" edge of the KnowledgeEntity entity.
func (_m *KnowledgeEntity) QueryRelations() *EntityRelationQuery {
	return NewKnowledgeEntityClient(_m.config).QueryRelations(_m)
}

// Update returns a builder for updating this KnowledgeEntity.
// Note that you need to call KnowledgeEntity.Unwrap() before calling this method if this KnowledgeEntity
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *KnowledgeEntity) Update() *KnowledgeEntityUpdateOne {
	return NewKnowledgeEntityClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the KnowledgeEntity entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *KnowledgeEntity) Unwrap() *KnowledgeEntity {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: KnowledgeEntity is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *KnowledgeEntity) String() string {
	var builder strings.Builder
	builder.WriteString("KnowledgeEntity(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("qid=")
	builder.WriteString(_m.Qid)
	builder.WriteString(", ")
	builder.WriteString("label_ru=")
	builder.WriteString(_m.LabelRu)
	builder.WriteString(", ")
	builder.WriteString("label_en=")
	builder.WriteString(_m.LabelEn)
	builder.WriteString(", ")
	builder.WriteString("description_ru=")
	builder.WriteString(_m.DescriptionRu)
	builder.WriteString(", ")
	builder.WriteString("description_en=")
	builder.WriteString(_m.DescriptionEn)
	builder.WriteString(", ")
	builder.WriteString("properties=")
	builder.WriteString(fmt.Sprintf("%v", _m.Properties))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// KnowledgeEntities is a parsable slice of KnowledgeEntity.
type KnowledgeEntities []*KnowledgeEntity
