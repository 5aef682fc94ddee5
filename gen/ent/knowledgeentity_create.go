// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/evgenyd/docs-metadata-enhancer/gen/ent/entityrelation"
	"github.com/evgenyd/docs-metadata-enhancer/gen/ent/knowledgeentity"
	"github.com/google/uuid"
)

// KnowledgeEntityCreate is the builder for creating a KnowledgeEntity entity.
type KnowledgeEntityCreate struct {
	config
	mutation *KnowledgeEntityMutation
	hooks    []Hook
}

// SetQid sets the "qid" field.
func (_c *KnowledgeEntityCreate) SetQid(v string) *KnowledgeEntityCreate {
	_c.mutation.SetQid(v)
	return _c
}

// SetLabelRu sets the "label_ru" field.
func (_c *KnowledgeEntityCreate) SetLabelRu(v string) *KnowledgeEntityCreate {
	_c.mutation.SetLabelRu(v)
	return _c
}

// SetNillableLabelRu sets the "label_ru" field if the given value is not nil.
func (_c *KnowledgeEntityCreate) SetNillableLabelRu(v *string) *KnowledgeEntityCreate {
	if v != nil {
		_c.SetLabelRu(*v)
	}
	return _c
}

// SetLabelEn sets the "label_en" field.
func (_c *KnowledgeEntityCreate) SetLabelEn(v string) *KnowledgeEntityCreate {
	_c.mutation.SetLabelEn(v)
	return _c
}

// SetNillableLabelEn sets the "label_en" field if the given value is not nil.
func (_c *KnowledgeEntityCreate) SetNillableLabelEn(v *string) *KnowledgeEntityCreate {
	if v != nil {
		_c.SetLabelEn(*v)
	}
	return _c
}

// SetDescriptionRu sets the "description_ru" field.
func (_c *KnowledgeEntityCreate) SetDescriptionRu(v string) *KnowledgeEntityCreate {
	_c.mutation.SetDescriptionRu(v)
	return _c
}

// SetNillableDescriptionRu sets the "description_ru" field if the given value is not nil.
func (_c *KnowledgeEntityCreate) SetNillableDescriptionRu(v *string) *KnowledgeEntityCreate {
	if v != nil {
		_c.SetDescriptionRu(*v)
	}
	return _c
}

// SetDescriptionEn sets the "description_en" field.
func (_c *KnowledgeEntityCreate) SetDescriptionEn(v string) *KnowledgeEntityCreate {
	_c.mutation.SetDescriptionEn(v)
	return _c
}

// SetNillableDescriptionEn sets the "description_en" field if the given value is not nil.
func (_c *KnowledgeEntityCreate) SetNillableDescriptionEn(v *string) *KnowledgeEntityCreate {
	if v != nil {
		_c.SetDescriptionEn(*v)
	}
	return _c
}

// SetProperties sets the "properties" field.
func (_c *KnowledgeEntityCreate) SetProperties(v json.RawMessage) *KnowledgeEntityCreate {
	_c.mutation.SetProperties(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *KnowledgeEntityCreate) SetCreatedAt(v time.Time) *KnowledgeEntityCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *KnowledgeEntityCreate) SetNillableCreatedAt(v *time.Time) *KnowledgeEntityCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *KnowledgeEntityCreate) SetUpdatedAt(v time.Time) *KnowledgeEntityCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *KnowledgeEntityCreate) SetNillableUpdatedAt(v *time.Time) *KnowledgeEntityCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *KnowledgeEntityCreate) SetID(v uuid.UUID) *KnowledgeEntityCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *KnowledgeEntityCreate) SetNillableID(v *uuid.UUID) *KnowledgeEntityCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddRelationIDs adds the "relations" edge to the EntityRelation entity by IDs.
func (_c *KnowledgeEntityCreate) AddRelationIDs(ids ...uuid.UUID) *KnowledgeEntityCreate {
	_c.mutation.AddRelationIDs(ids...)
	return _c
}

// AddRelations adds the "relations" edges to the EntityRelation entity.
func (_c *KnowledgeEntityCreate) AddRelations(v ...*EntityRelation) *KnowledgeEntityCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRelationIDs(ids...)
}

// Mutation returns the KnowledgeEntityMutation object of the builder.
func (_c *KnowledgeEntityCreate) Mutation() *KnowledgeEntityMutation {
	return _c.mutation
}

// Save creates the KnowledgeEntity in the database.
func (_c *KnowledgeEntityCreate) Save(ctx context.Context) (*KnowledgeEntity, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *KnowledgeEntityCreate) SaveX(ctx context.Context) *KnowledgeEntity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnowledgeEntityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnowledgeEntityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *KnowledgeEntityCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := knowledgeentity.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := knowledgeentity.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := knowledgeentity.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *KnowledgeEntityCreate) check() error {
	if _, ok := _c.mutation.Qid(); !ok {
		return &ValidationError{Name: "qid", err: errors.New(`ent: missing required field "KnowledgeEntity.qid"`)}
	}
	if v, ok := _c.mutation.Qid(); ok {
		if err := knowledgeentity.QidValidator(v); err != nil {
			return &ValidationError{Name: "qid", err: fmt.Errorf(`ent: validator failed for field "KnowledgeEntity.qid": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "KnowledgeEntity.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "KnowledgeEntity.updated_at"`)}
	}
	return nil
}

func (_c *KnowledgeEntityCreate) sqlSave(ctx context.Context) (*KnowledgeEntity, error) {
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

func (_c *KnowledgeEntityCreate) createSpec() (*KnowledgeEntity, *sqlgraph.CreateSpec) {
	var (
		_node = &KnowledgeEntity{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(knowledgeentity.Table, sqlgraph.NewFieldSpec(knowledgeentity.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Qid(); ok {
		_spec.SetField(knowledgeentity.FieldQid, field.TypeString, value)
		_node.Qid = value
	}
	if value, ok := _c.mutation.LabelRu(); ok {
		_spec.SetField(knowledgeentity.FieldLabelRu, field.TypeString, value)
		_node.LabelRu = value
	}
	if value, ok := _c.mutation.LabelEn(); ok {
		_spec.SetField(knowledgeentity.FieldLabelEn, field.TypeString, value)
		_node.LabelEn = value
	}
	if value, ok := _c.mutation.DescriptionRu(); ok {
		_spec.SetField(knowledgeentity.FieldDescriptionRu, field.TypeString, value)
		_node.DescriptionRu = value
	}
	if value, ok := _c.mutation.DescriptionEn(); ok {
		_spec.SetField(knowledgeentity.FieldDescriptionEn, field.TypeString, value)
		_node.DescriptionEn = value
	}
	if value, ok := _c.mutation.Properties(); ok {
		_spec.SetField(knowledgeentity.FieldProperties, field.TypeJSON, value)
		_node.Properties = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(knowledgeentity.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(knowledgeentity.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.RelationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   knowledgeentity.RelationsTable,
			Columns: []string{knowledgeentity.RelationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entityrelation.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// KnowledgeEntityCreateBulk is the builder for creating many KnowledgeEntity entities in bulk.
type KnowledgeEntityCreateBulk struct {
	config
	err      error
	builders []*KnowledgeEntityCreate
}

// Save creates the KnowledgeEntity entities in the database.
func (_c *KnowledgeEntityCreateBulk) Save(ctx context.Context) ([]*KnowledgeEntity, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*KnowledgeEntity, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*KnowledgeEntityMutation)
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
func (_c *KnowledgeEntityCreateBulk) SaveX(ctx context.Context) []*KnowledgeEntity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnowledgeEntityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnowledgeEntityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
