// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/evgenyd/docs-metadata-enhancer/gen/ent/document"
	"github.com/evgenyd/docs-metadata-enhancer/gen/ent/entityrelation"
	"github.com/evgenyd/docs-metadata-enhancer/gen/ent/knowledgeentity"
	"github.com/google/uuid"
)

// EntityRelation is the model entity for the EntityRelation schema.
type EntityRelation struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// EntityID holds the value of the "entity_id" field.
	EntityID uuid.UUID `json:"entity_id,omitempty"`
	// FieldCategory holds the value of the "field_category" field.
	FieldCategory string `json:"field_category,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// FieldKey holds the value of the "field_key" field.
	FieldKey string `json:"field_key,omitempty"`
	// FieldValue holds the value of the "field_value" field.
	FieldValue string `json:"field_value,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float32 `json:"confidence,omitempty"`
	// Context holds the value of the "context" field.
	Context string `json:"context,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EntityRelationQuery when eager-loading is set.
	Edges        EntityRelationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EntityRelationEdges holds the relations/edges for other nodes in the graph.
type EntityRelationEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// Entity holds the value of the entity edge.
	Entity *KnowledgeEntity `json:"entity,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EntityRelationEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// EntityOrErr returns the Entity value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EntityRelationEdges) EntityOrErr() (*KnowledgeEntity, error) {
	if e.Entity != nil {
		return e.Entity, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: knowledgeentity.Label}
	}
	return nil, &NotLoadedError{edge: "entity"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EntityRelation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case entityrelation.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case entityrelation.FieldFieldCategory, entityrelation.FieldName, entityrelation.FieldFieldKey, entityrelation.FieldFieldValue, entityrelation.FieldContext:
			values[i] = new(sql.NullString)
		case entityrelation.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case entityrelation.FieldID, entityrelation.FieldDocumentID, entityrelation.FieldEntityID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EntityRelation fields.
func (_m *EntityRelation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case entityrelation.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case entityrelation.FieldDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value != nil {
				_m.DocumentID = *value
			}
		case entityrelation.FieldEntityID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field entity_id", values[i])
			} else if value != nil {
				_m.EntityID = *value
			}
		case entityrelation.FieldFieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field field_category", values[i])
			} else if value.Valid {
				_m.FieldCategory = value.String
			}
		case entityrelation.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case entityrelation.FieldFieldKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field field_key", values[i])
			} else if value.Valid {
				_m.FieldKey = value.String
			}
		case entityrelation.FieldFieldValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field field_value", values[i])
			} else if value.Valid {
				_m.FieldValue = value.String
			}
		case entityrelation.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = float32(value.Float64)
			}
		case entityrelation.FieldContext:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field context", values[i])
			} else if value.Valid {
				_m.Context = value.String
			}
		case entityrelation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EntityRelation.
// This includes values selected through modifiers, order, etc.
func (_m *EntityRelation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the EntityRelation entity.
func (_m *EntityRelation) QueryDocument() *DocumentQuery {
	return NewEntityRelationClient(_m.config).QueryDocument(_m)
}

// QueryEntity queries the "entity" edge of the EntityRelation entity.
func (_m *EntityRelation) QueryEntity() *KnowledgeEntityQuery {
	return NewEntityRelationClient(_m.config).QueryEntity(_m)
}

// Update returns a builder for updating this EntityRelation.
// Note that you need to call EntityRelation.Unwrap() before calling this method if this EntityRelation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EntityRelation) Update() *EntityRelationUpdateOne {
	return NewEntityRelationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EntityRelation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EntityRelation) Unwrap() *EntityRelation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EntityRelation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EntityRelation) String() string {
	var builder strings.Builder
	builder.WriteString("EntityRelation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("entity_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.EntityID))
	builder.WriteString(", ")
	builder.WriteString("field_category=")
	builder.WriteString(_m.FieldCategory)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("field_key=")
	builder.WriteString(_m.FieldKey)
	builder.WriteString(", ")
	builder.WriteString("field_value=")
	builder.WriteString(_m.FieldValue)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("context=")
	builder.WriteString(_m.Context)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EntityRelations is a parsable slice of EntityRelation.
type EntityRelations []*EntityRelation
