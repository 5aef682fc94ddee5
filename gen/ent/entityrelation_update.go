// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/evgenyd/docs-metadata-enhancer/gen/ent/document"
	"github.com/evgenyd/docs-metadata-enhancer/gen/ent/entityrelation"
	"github.com/evgenyd/docs-metadata-enhancer/gen/ent/knowledgeentity"
	"github.com/evgenyd/docs-metadata-enhancer/gen/ent/predicate"
	"github.com/google/uuid"
)

// EntityRelationUpdate is the builder for updating EntityRelation entities.
type EntityRelationUpdate struct {
	config
	hooks    []Hook
	mutation *EntityRelationMutation
}

// Where appends a list predicates to the EntityRelationUpdate builder.
func (_u *EntityRelationUpdate) Where(ps ...predicate.EntityRelation) *EntityRelationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *EntityRelationUpdate) SetDocumentID(v uuid.UUID) *EntityRelationUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *EntityRelationUpdate) SetNillableDocumentID(v *uuid.UUID) *EntityRelationUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetEntityID sets the "entity_id" field.
func (_u *EntityRelationUpdate) SetEntityID(v uuid.UUID) *EntityRelationUpdate {
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *EntityRelationUpdate) SetNillableEntityID(v *uuid.UUID) *EntityRelationUpdate {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// SetFieldCategory sets the "field_category" field.
func (_u *EntityRelationUpdate) SetFieldCategory(v string) *EntityRelationUpdate {
	_u.mutation.SetFieldCategory(v)
	return _u
}

// SetNillableFieldCategory sets the "field_category" field if the given value is not nil.
func (_u *EntityRelationUpdate) SetNillableFieldCategory(v *string) *EntityRelationUpdate {
	if v != nil {
		_u.SetFieldCategory(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *EntityRelationUpdate) SetName(v string) *EntityRelationUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EntityRelationUpdate) SetNillableName(v *string) *EntityRelationUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetFieldKey sets the "field_key" field.
func (_u *EntityRelationUpdate) SetFieldKey(v string) *EntityRelationUpdate {
	_u.mutation.SetFieldKey(v)
	return _u
}

// SetNillableFieldKey sets the "field_key" field if the given value is not nil.
func (_u *EntityRelationUpdate) SetNillableFieldKey(v *string) *EntityRelationUpdate {
	if v != nil {
		_u.SetFieldKey(*v)
	}
	return _u
}

// SetFieldValue sets the "field_value" field.
func (_u *EntityRelationUpdate) SetFieldValue(v string) *EntityRelationUpdate {
	_u.mutation.SetFieldValue(v)
	return _u
}

// SetNillableFieldValue sets the "field_value" field if the given value is not nil.
func (_u *EntityRelationUpdate) SetNillableFieldValue(v *string) *EntityRelationUpdate {
	if v != nil {
		_u.SetFieldValue(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *EntityRelationUpdate) SetConfidence(v float32) *EntityRelationUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *EntityRelationUpdate) SetNillableConfidence(v *float32) *EntityRelationUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *EntityRelationUpdate) AddConfidence(v float32) *EntityRelationUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetContext sets the "context" field.
func (_u *EntityRelationUpdate) SetContext(v string) *EntityRelationUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *EntityRelationUpdate) SetNillableContext(v *string) *EntityRelationUpdate {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *EntityRelationUpdate) ClearContext() *EntityRelationUpdate {
	_u.mutation.ClearContext()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *EntityRelationUpdate) SetCreatedAt(v time.Time) *EntityRelationUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *EntityRelationUpdate) SetNillableCreatedAt(v *time.Time) *EntityRelationUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *EntityRelationUpdate) SetDocument(v *Document) *EntityRelationUpdate {
	return _u.SetDocumentID(v.ID)
}

// SetEntity sets the "entity" edge to the KnowledgeEntity entity.
func (_u *EntityRelationUpdate) SetEntity(v *KnowledgeEntity) *EntityRelationUpdate {
	return _u.SetEntityID(v.ID)
}

// Mutation returns the EntityRelationMutation object of the builder.
func (_u *EntityRelationUpdate) Mutation() *EntityRelationMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *EntityRelationUpdate) ClearDocument() *EntityRelationUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// ClearEntity clears the "entity" edge to the KnowledgeEntity entity.
func (_u *EntityRelationUpdate) ClearEntity() *EntityRelationUpdate {
	_u.mutation.ClearEntity()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EntityRelationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityRelationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EntityRelationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityRelationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntityRelationUpdate) check() error {
	if v, ok := _u.mutation.FieldCategory(); ok {
		if err := entityrelation.FieldCategoryValidator(v); err != nil {
			return &ValidationError{Name: "field_category", err: fmt.Errorf(`ent: validator failed for field "EntityRelation.field_category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := entityrelation.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "EntityRelation.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldKey(); ok {
		if err := entityrelation.FieldKeyValidator(v); err != nil {
			return &ValidationError{Name: "field_key", err: fmt.Errorf(`ent: validator failed for field "EntityRelation.field_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldValue(); ok {
		if err := entityrelation.FieldValueValidator(v); err != nil {
			return &ValidationError{Name: "field_value", err: fmt.Errorf(`ent: validator failed for field "EntityRelation.field_value": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EntityRelation.document"`)
	}
	if _u.mutation.EntityCleared() && len(_u.mutation.EntityIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EntityRelation.entity"`)
	}
	return nil
}

func (_u *EntityRelationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entityrelation.Table, entityrelation.Columns, sqlgraph.NewFieldSpec(entityrelation.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FieldCategory(); ok {
		_spec.SetField(entityrelation.FieldFieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(entityrelation.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FieldKey(); ok {
		_spec.SetField(entityrelation.FieldFieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.FieldValue(); ok {
		_spec.SetField(entityrelation.FieldFieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(entityrelation.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(entityrelation.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(entityrelation.FieldContext, field.TypeString, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(entityrelation.FieldContext, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(entityrelation.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entityrelation.DocumentTable,
			Columns: []string{entityrelation.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entityrelation.DocumentTable,
			Columns: []string{entityrelation.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EntityCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entityrelation.EntityTable,
			Columns: []string{entityrelation.EntityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgeentity.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntityIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entityrelation.EntityTable,
			Columns: []string{entityrelation.EntityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgeentity.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entityrelation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EntityRelationUpdateOne is the builder for updating a single EntityRelation entity.
type EntityRelationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EntityRelationMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *EntityRelationUpdateOne) SetDocumentID(v uuid.UUID) *EntityRelationUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *EntityRelationUpdateOne) SetNillableDocumentID(v *uuid.UUID) *EntityRelationUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetEntityID sets the "entity_id" field.
func (_u *EntityRelationUpdateOne) SetEntityID(v uuid.UUID) *EntityRelationUpdateOne {
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *EntityRelationUpdateOne) SetNillableEntityID(v *uuid.UUID) *EntityRelationUpdateOne {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// SetFieldCategory sets the "field_category" field.
func (_u *EntityRelationUpdateOne) SetFieldCategory(v string) *EntityRelationUpdateOne {
	_u.mutation.SetFieldCategory(v)
	return _u
}

// SetNillableFieldCategory sets the "field_category" field if the given value is not nil.
func (_u *EntityRelationUpdateOne) SetNillableFieldCategory(v *string) *EntityRelationUpdateOne {
	if v != nil {
		_u.SetFieldCategory(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *EntityRelationUpdateOne) SetName(v string) *EntityRelationUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EntityRelationUpdateOne) SetNillableName(v *string) *EntityRelationUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetFieldKey sets the "field_key" field.
func (_u *EntityRelationUpdateOne) SetFieldKey(v string) *EntityRelationUpdateOne {
	_u.mutation.SetFieldKey(v)
	return _u
}

// SetNillableFieldKey sets the "field_key" field if the given value is not nil.
func (_u *EntityRelationUpdateOne) SetNillableFieldKey(v *string) *EntityRelationUpdateOne {
	if v != nil {
		_u.SetFieldKey(*v)
	}
	return _u
}

// SetFieldValue sets the "field_value" field.
func (_u *EntityRelationUpdateOne) SetFieldValue(v string) *EntityRelationUpdateOne {
	_u.mutation.SetFieldValue(v)
	return _u
}

// SetNillableFieldValue sets the "field_value" field if the given value is not nil.
func (_u *EntityRelationUpdateOne) SetNillableFieldValue(v *string) *EntityRelationUpdateOne {
	if v != nil {
		_u.SetFieldValue(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *EntityRelationUpdateOne) SetConfidence(v float32) *EntityRelationUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *EntityRelationUpdateOne) SetNillableConfidence(v *float32) *EntityRelationUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *EntityRelationUpdateOne) AddConfidence(v float32) *EntityRelationUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetContext sets the "context" field.
func (_u *EntityRelationUpdateOne) SetContext(v string) *EntityRelationUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *EntityRelationUpdateOne) SetNillableContext(v *string) *EntityRelationUpdateOne {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *EntityRelationUpdateOne) ClearContext() *EntityRelationUpdateOne {
	_u.mutation.ClearContext()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *EntityRelationUpdateOne) SetCreatedAt(v time.Time) *EntityRelationUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *EntityRelationUpdateOne) SetNillableCreatedAt(v *time.Time) *EntityRelationUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *EntityRelationUpdateOne) SetDocument(v *Document) *EntityRelationUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// SetEntity sets the "entity" edge to the KnowledgeEntity entity.
func (_u *EntityRelationUpdateOne) SetEntity(v *KnowledgeEntity) *EntityRelationUpdateOne {
	return _u.SetEntityID(v.ID)
}

// Mutation returns the EntityRelationMutation object of the builder.
func (_u *EntityRelationUpdateOne) Mutation() *EntityRelationMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *EntityRelationUpdateOne) ClearDocument() *EntityRelationUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// ClearEntity clears the "entity" edge to the KnowledgeEntity entity.
func (_u *EntityRelationUpdateOne) ClearEntity() *EntityRelationUpdateOne {
	_u.mutation.ClearEntity()
	return _u
}

// Where appends a list predicates to the EntityRelationUpdate builder.
func (_u *EntityRelationUpdateOne) Where(ps ...predicate.EntityRelation) *EntityRelationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EntityRelationUpdateOne) Select(field string, fields ...string) *EntityRelationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EntityRelation entity.
func (_u *EntityRelationUpdateOne) Save(ctx context.Context) (*EntityRelation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityRelationUpdateOne) SaveX(ctx context.Context) *EntityRelation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EntityRelationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityRelationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntityRelationUpdateOne) check() error {
	if v, ok := _u.mutation.FieldCategory(); ok {
		if err := entityrelation.FieldCategoryValidator(v); err != nil {
			return &ValidationError{Name: "field_category", err: fmt.Errorf(`ent: validator failed for field "EntityRelation.field_category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := entityrelation.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "EntityRelation.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldKey(); ok {
		if err := entityrelation.FieldKeyValidator(v); err != nil {
			return &ValidationError{Name: "field_key", err: fmt.Errorf(`ent: validator failed for field "EntityRelation.field_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldValue(); ok {
		if err := entityrelation.FieldValueValidator(v); err != nil {
			return &ValidationError{Name: "field_value", err: fmt.Errorf(`ent: validator failed for field "EntityRelation.field_value": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EntityRelation.document"`)
	}
	if _u.mutation.EntityCleared() && len(_u.mutation.EntityIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EntityRelation.entity"`)
	}
	return nil
}

func (_u *EntityRelationUpdateOne) sqlSave(ctx context.Context) (_node *EntityRelation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entityrelation.Table, entityrelation.Columns, sqlgraph.NewFieldSpec(entityrelation.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EntityRelation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, entityrelation.FieldID)
		for _, f := range fields {
			if !entityrelation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != entityrelation.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FieldCategory(); ok {
		_spec.SetField(entityrelation.FieldFieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(entityrelation.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FieldKey(); ok {
		_spec.SetField(entityrelation.FieldFieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.FieldValue(); ok {
		_spec.SetField(entityrelation.FieldFieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(entityrelation.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(entityrelation.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(entityrelation.FieldContext, field.TypeString, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(entityrelation.FieldContext, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(entityrelation.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entityrelation.DocumentTable,
			Columns: []string{entityrelation.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entityrelation.DocumentTable,
			Columns: []string{entityrelation.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EntityCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entityrelation.EntityTable,
			Columns: []string{entityrelation.EntityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgeentity.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntityIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entityrelation.EntityTable,
			Columns: []string{entityrelation.EntityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgeentity.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &EntityRelation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entityrelation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
