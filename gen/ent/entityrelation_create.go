// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/evgenyd/docs-metadata-enhancer/gen/ent/document"
	"github.com/evgenyd/docs-metadata-enhancer/gen/ent/entityrelation"
	"github.com/evgenyd/docs-metadata-enhancer/gen/ent/knowledgeentity"
	"github.com/google/uuid"
)

// EntityRelationCreate is the builder for creating a EntityRelation entity.
type EntityRelationCreate struct {
	config
	mutation *EntityRelationMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *EntityRelationCreate) SetDocumentID(v uuid.UUID) *EntityRelationCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetEntityID sets the "entity_id" field.
func (_c *EntityRelationCreate) SetEntityID(v uuid.UUID) *EntityRelationCreate {
	_c.mutation.SetEntityID(v)
	return _c
}

// SetFieldCategory sets the "field_category" field.
func (_c *EntityRelationCreate) SetFieldCategory(v string) *EntityRelationCreate {
	_c.mutation.SetFieldCategory(v)
	return _c
}

// SetName sets the "name" field.
func (_c *EntityRelationCreate) SetName(v string) *EntityRelationCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetFieldKey sets the "field_key" field.
func (_c *EntityRelationCreate) SetFieldKey(v string) *EntityRelationCreate {
	_c.mutation.SetFieldKey(v)
	return _c
}

// SetFieldValue sets the "field_value" field.
func (_c *EntityRelationCreate) SetFieldValue(v string) *EntityRelationCreate {
	_c.mutation.SetFieldValue(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *EntityRelationCreate) SetConfidence(v float32) *EntityRelationCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *EntityRelationCreate) SetNillableConfidence(v *float32) *EntityRelationCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetContext sets the "context" field.
func (_c *EntityRelationCreate) SetContext(v string) *EntityRelationCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_c *EntityRelationCreate) SetNillableContext(v *string) *EntityRelationCreate {
	if v != nil {
		_c.SetContext(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EntityRelationCreate) SetCreatedAt(v time.Time) *EntityRelationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EntityRelationCreate) SetNillableCreatedAt(v *time.Time) *EntityRelationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EntityRelationCreate) SetID(v uuid.UUID) *EntityRelationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EntityRelationCreate) SetNillableID(v *uuid.UUID) *EntityRelationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *EntityRelationCreate) SetDocument(v *Document) *EntityRelationCreate {
	return _c.SetDocumentID(v.ID)
}

// SetEntity sets the "entity" edge to the KnowledgeEntity entity.
func (_c *EntityRelationCreate) SetEntity(v *KnowledgeEntity) *EntityRelationCreate {
	return _c.SetEntityID(v.ID)
}

// Mutation returns the EntityRelationMutation object of the builder.
func (_c *EntityRelationCreate) Mutation() *EntityRelationMutation {
	return _c.mutation
}

// Save creates the EntityRelation in the database.
func (_c *EntityRelationCreate) Save(ctx context.Context) (*EntityRelation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EntityRelationCreate) SaveX(ctx context.Context) *EntityRelation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntityRelationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntityRelationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EntityRelationCreate) defaults() {
	if _, ok := _c.mutation.Confidence(); !ok {
		v := entityrelation.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := entityrelation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := entityrelation.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EntityRelationCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "EntityRelation.document_id"`)}
	}
	if _, ok := _c.mutation.EntityID(); !ok {
		return &ValidationError{Name: "entity_id", err: errors.New(`ent: missing required field "EntityRelation.entity_id"`)}
	}
	if _, ok := _c.mutation.FieldCategory(); !ok {
		return &ValidationError{Name: "field_category", err: errors.New(`ent: missing required field "EntityRelation.field_category"`)}
	}
	if v, ok := _c.mutation.FieldCategory(); ok {
		if err := entityrelation.FieldCategoryValidator(v); err != nil {
			return &ValidationError{Name: "field_category", err: fmt.Errorf(`ent: validator failed for field "EntityRelation.field_category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "EntityRelation.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := entityrelation.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "EntityRelation.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FieldKey(); !ok {
		return &ValidationError{Name: "field_key", err: errors.New(`ent: missing required field "EntityRelation.field_key"`)}
	}
	if v, ok := _c.mutation.FieldKey(); ok {
		if err := entityrelation.FieldKeyValidator(v); err != nil {
			return &ValidationError{Name: "field_key", err: fmt.Errorf(`ent: validator failed for field "EntityRelation.field_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FieldValue(); !ok {
		return &ValidationError{Name: "field_value", err: errors.New(`ent: missing required field "EntityRelation.field_value"`)}
	}
	if v, ok := _c.mutation.FieldValue(); ok {
		if err := entityrelation.FieldValueValidator(v); err != nil {
			return &ValidationError{Name: "field_value", err: fmt.Errorf(`ent: validator failed for field "EntityRelation.field_value": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "EntityRelation.confidence"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EntityRelation.created_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "EntityRelation.document"`)}
	}
	if len(_c.mutation.EntityIDs()) == 0 {
		return &ValidationError{Name: "entity", err: errors.New(`ent: missing required edge "EntityRelation.entity"`)}
	}
	return nil
}

func (_c *EntityRelationCreate) sqlSave(ctx context.Context) (*EntityRelation, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EntityRelationCreate) createSpec() (*EntityRelation, *sqlgraph.CreateSpec) {
	var (
		_node = &EntityRelation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(entityrelation.Table, sqlgraph.NewFieldSpec(entityrelation.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FieldCategory(); ok {
		_spec.SetField(entityrelation.FieldFieldCategory, field.TypeString, value)
		_node.FieldCategory = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(entityrelation.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.FieldKey(); ok {
		_spec.SetField(entityrelation.FieldFieldKey, field.TypeString, value)
		_node.FieldKey = value
	}
	if value, ok := _c.mutation.FieldValue(); ok {
		_spec.SetField(entityrelation.FieldFieldValue, field.TypeString, value)
		_node.FieldValue = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(entityrelation.FieldConfidence, field.TypeFloat32, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(entityrelation.FieldContext, field.TypeString, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(entityrelation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EntityIDs(); len(nodes) > 0 {
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
		_node.EntityID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EntityRelationCreateBulk is the builder for creating many EntityRelation entities in bulk.
type EntityRelationCreateBulk struct {
	config
	err      error
	builders []*EntityRelationCreate
}

// Save creates the EntityRelation entities in the database.
func (_c *EntityRelationCreateBulk) Save(ctx context.Context) ([]*EntityRelation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EntityRelation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EntityRelationMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *EntityRelationCreateBulk) SaveX(ctx context.Context) []*EntityRelation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntityRelationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntityRelationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
