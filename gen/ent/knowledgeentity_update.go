// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/evgenyd/docs-metadata-enhancer/gen/ent/entityrelation"
	"github.com/evgenyd/docs-metadata-enhancer/gen/ent/knowledgeentity"
	"github.com/evgenyd/docs-metadata-enhancer/gen/ent/predicate"
	"github.com/google/uuid"
)

// KnowledgeEntityUpdate is the builder for updating KnowledgeEntity entities.
type KnowledgeEntityUpdate struct {
	config
	hooks    []Hook
	mutation *KnowledgeEntityMutation
}

// Where appends a list predicates to the KnowledgeEntityUpdate builder.
func (_u *KnowledgeEntityUpdate) Where(ps ...predicate.KnowledgeEntity) *KnowledgeEntityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLabelRu sets the "label_ru" field.
func (_u *KnowledgeEntityUpdate) SetLabelRu(v string) *KnowledgeEntityUpdate {
	_u.mutation.SetLabelRu(v)
	return _u
}

// SetNillableLabelRu sets the "label_ru" field if the given value is not nil.
func (_u *KnowledgeEntityUpdate) SetNillableLabelRu(v *string) *KnowledgeEntityUpdate {
	if v != nil {
		_u.SetLabelRu(*v)
	}
	return _u
}

// ClearLabelRu clears the value of the "label_ru" field.
func (_u *KnowledgeEntityUpdate) ClearLabelRu() *KnowledgeEntityUpdate {
	_u.mutation.ClearLabelRu()
	return _u
}

// SetLabelEn sets the "label_en" field.
func (_u *KnowledgeEntityUpdate) SetLabelEn(v string) *KnowledgeEntityUpdate {
	_u.mutation.SetLabelEn(v)
	return _u
}

// SetNillableLabelEn sets the "label_en" field if the given value is not nil.
func (_u *KnowledgeEntityUpdate) SetNillableLabelEn(v *string) *KnowledgeEntityUpdate {
	if v != nil {
		_u.SetLabelEn(*v)
	}
	return _u
}

// ClearLabelEn clears the value of the "label_en" field.
func (_u *KnowledgeEntityUpdate) ClearLabelEn() *KnowledgeEntityUpdate {
	_u.mutation.ClearLabelEn()
	return _u
}

// SetDescriptionRu sets the "description_ru" field.
func (_u *KnowledgeEntityUpdate) SetDescriptionRu(v string) *KnowledgeEntityUpdate {
	_u.mutation.SetDescriptionRu(v)
	return _u
}

// SetNillableDescriptionRu sets the "description_ru" field if the given value is not nil.
func (_u *KnowledgeEntityUpdate) SetNillableDescriptionRu(v *string) *KnowledgeEntityUpdate {
	if v != nil {
		_u.SetDescriptionRu(*v)
	}
	return _u
}

// ClearDescriptionRu clears the value of the "description_ru" field.
func (_u *KnowledgeEntityUpdate) ClearDescriptionRu() *KnowledgeEntityUpdate {
	_u.mutation.ClearDescriptionRu()
	return _u
}

// SetDescriptionEn sets the "description_en" field.
func (_u *KnowledgeEntityUpdate) SetDescriptionEn(v string) *KnowledgeEntityUpdate {
	_u.mutation.SetDescriptionEn(v)
	return _u
}

// SetNillableDescriptionEn sets the "description_en" field if the given value is not nil.
func (_u *KnowledgeEntityUpdate) SetNillableDescriptionEn(v *string) *KnowledgeEntityUpdate {
	if v != nil {
		_u.SetDescriptionEn(*v)
	}
	return _u
}

// ClearDescriptionEn clears the value of the "description_en" field.
func (_u *KnowledgeEntityUpdate) ClearDescriptionEn() *KnowledgeEntityUpdate {
	_u.mutation.ClearDescriptionEn()
	return _u
}

// SetProperties sets the "properties" field.
func (_u *KnowledgeEntityUpdate) SetProperties(v json.RawMessage) *KnowledgeEntityUpdate {
	_u.mutation.SetProperties(v)
	return _u
}

// AppendProperties appends value to the "properties" field.
func (_u *KnowledgeEntityUpdate) AppendProperties(v json.RawMessage) *KnowledgeEntityUpdate {
	_u.mutation.AppendProperties(v)
	return _u
}

// ClearProperties clears the value of the "properties" field.
func (_u *KnowledgeEntityUpdate) ClearProperties() *KnowledgeEntityUpdate {
	_u.mutation.ClearProperties()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *KnowledgeEntityUpdate) SetCreatedAt(v time.Time) *KnowledgeEntityUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *KnowledgeEntityUpdate) SetNillableCreatedAt(v *time.Time) *KnowledgeEntityUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *KnowledgeEntityUpdate) SetUpdatedAt(v time.Time) *KnowledgeEntityUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddRelationIDs adds the "relations" edge to the EntityRelation entity by IDs.
func (_u *KnowledgeEntityUpdate) AddRelationIDs(ids ...uuid.UUID) *KnowledgeEntityUpdate {
	_u.mutation.AddRelationIDs(ids...)
	return _u
}

// AddRelations adds the "relations" edges to the EntityRelation entity.
func (_u *KnowledgeEntityUpdate) AddRelations(v ...*EntityRelation) *KnowledgeEntityUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRelationIDs(ids...)
}

// Mutation returns the KnowledgeEntityMutation object of the builder.
func (_u *KnowledgeEntityUpdate) Mutation() *KnowledgeEntityMutation {
	return _u.mutation
}

// ClearRelations clears all "relations" edges to the EntityRelation entity.
func (_u *KnowledgeEntityUpdate) ClearRelations() *KnowledgeEntityUpdate {
	_u.mutation.ClearRelations()
	return _u
}

// RemoveRelationIDs removes the "relations" edge to EntityRelation entities by IDs.
func (_u *KnowledgeEntityUpdate) RemoveRelationIDs(ids ...uuid.UUID) *KnowledgeEntityUpdate {
	_u.mutation.RemoveRelationIDs(ids...)
	return _u
}

// RemoveRelations removes "relations" edges to EntityRelation entities.
func (_u *KnowledgeEntityUpdate) RemoveRelations(v ...*EntityRelation) *KnowledgeEntityUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRelationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *KnowledgeEntityUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnowledgeEntityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *KnowledgeEntityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnowledgeEntityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *KnowledgeEntityUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := knowledgeentity.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *KnowledgeEntityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(knowledgeentity.Table, knowledgeentity.Columns, sqlgraph.NewFieldSpec(knowledgeentity.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LabelRu(); ok {
		_spec.SetField(knowledgeentity.FieldLabelRu, field.TypeString, value)
	}
	if _u.mutation.LabelRuCleared() {
		_spec.ClearField(knowledgeentity.FieldLabelRu, field.TypeString)
	}
	if value, ok := _u.mutation.LabelEn(); ok {
		_spec.SetField(knowledgeentity.FieldLabelEn, field.TypeString, value)
	}
	if _u.mutation.LabelEnCleared() {
		_spec.ClearField(knowledgeentity.FieldLabelEn, field.TypeString)
	}
	if value, ok := _u.mutation.DescriptionRu(); ok {
		_spec.SetField(knowledgeentity.FieldDescriptionRu, field.TypeString, value)
	}
	if _u.mutation.DescriptionRuCleared() {
		_spec.ClearField(knowledgeentity.FieldDescriptionRu, field.TypeString)
	}
	if value, ok := _u.mutation.DescriptionEn(); ok {
		_spec.SetField(knowledgeentity.FieldDescriptionEn, field.TypeString, value)
	}
	if _u.mutation.DescriptionEnCleared() {
		_spec.ClearField(knowledgeentity.FieldDescriptionEn, field.TypeString)
	}
	if value, ok := _u.mutation.Properties(); ok {
		_spec.SetField(knowledgeentity.FieldProperties, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProperties(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, knowledgeentity.FieldProperties, value)
		})
	}
	if _u.mutation.PropertiesCleared() {
		_spec.ClearField(knowledgeentity.FieldProperties, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(knowledgeentity.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(knowledgeentity.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RelationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRelationsIDs(); len(nodes) > 0 && !_u.mutation.RelationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RelationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knowledgeentity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// KnowledgeEntityUpdateOne is the builder for updating a single KnowledgeEntity entity.
type KnowledgeEntityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *KnowledgeEntityMutation
}

// SetLabelRu sets the "label_ru" field.
func (_u *KnowledgeEntityUpdateOne) SetLabelRu(v string) *KnowledgeEntityUpdateOne {
	_u.mutation.SetLabelRu(v)
	return _u
}

// SetNillableLabelRu sets the "label_ru" field if the given value is not nil.
func (_u *KnowledgeEntityUpdateOne) SetNillableLabelRu(v *string) *KnowledgeEntityUpdateOne {
	if v != nil {
		_u.SetLabelRu(*v)
	}
	return _u
}

// ClearLabelRu clears the value of the "label_ru" field.
func (_u *KnowledgeEntityUpdateOne) ClearLabelRu() *KnowledgeEntityUpdateOne {
	_u.mutation.ClearLabelRu()
	return _u
}

// SetLabelEn sets the "label_en" field.
func (_u *KnowledgeEntityUpdateOne) SetLabelEn(v string) *KnowledgeEntityUpdateOne {
	_u.mutation.SetLabelEn(v)
	return _u
}

// SetNillableLabelEn sets the "label_en" field if the given value is not nil.
func (_u *KnowledgeEntityUpdateOne) SetNillableLabelEn(v *string) *KnowledgeEntityUpdateOne {
	if v != nil {
		_u.SetLabelEn(*v)
	}
	return _u
}

// ClearLabelEn clears the value of the "label_en" field.
func (_u *KnowledgeEntityUpdateOne) ClearLabelEn() *KnowledgeEntityUpdateOne {
	_u.mutation.ClearLabelEn()
	return _u
}

// SetDescriptionRu sets the "description_ru" field.
func (_u *KnowledgeEntityUpdateOne) SetDescriptionRu(v string) *KnowledgeEntityUpdateOne {
	_u.mutation.SetDescriptionRu(v)
	return _u
}

// SetNillableDescriptionRu sets the "description_ru" field if the given value is not nil.
func (_u *KnowledgeEntityUpdateOne) SetNillableDescriptionRu(v *string) *KnowledgeEntityUpdateOne {
	if v != nil {
		_u.SetDescriptionRu(*v)
	}
	return _u
}

// ClearDescriptionRu clears the value of the "description_ru" field.
func (_u *KnowledgeEntityUpdateOne) ClearDescriptionRu() *KnowledgeEntityUpdateOne {
	_u.mutation.ClearDescriptionRu()
	return _u
}

// SetDescriptionEn sets the "description_en" field.
func (_u *KnowledgeEntityUpdateOne) SetDescriptionEn(v string) *KnowledgeEntityUpdateOne {
	_u.mutation.SetDescriptionEn(v)
	return _u
}

// SetNillableDescriptionEn sets the "description_en" field if the given value is not nil.
func (_u *KnowledgeEntityUpdateOne) SetNillableDescriptionEn(v *string) *KnowledgeEntityUpdateOne {
	if v != nil {
		_u.SetDescriptionEn(*v)
	}
	return _u
}

// ClearDescriptionEn clears the value of the "description_en" field.
func (_u *KnowledgeEntityUpdateOne) ClearDescriptionEn() *KnowledgeEntityUpdateOne {
	_u.mutation.ClearDescriptionEn()
	return _u
}

// SetProperties sets the "properties" field.
func (_u *KnowledgeEntityUpdateOne) SetProperties(v json.RawMessage) *KnowledgeEntityUpdateOne {
	_u.mutation.SetProperties(v)
	return _u
}

// AppendProperties appends value to the "properties" field.
func (_u *KnowledgeEntityUpdateOne) AppendProperties(v json.RawMessage) *KnowledgeEntityUpdateOne {
	_u.mutation.AppendProperties(v)
	return _u
}

// ClearProperties clears the value of the "properties" field.
func (_u *KnowledgeEntityUpdateOne) ClearProperties() *KnowledgeEntityUpdateOne {
	_u.mutation.ClearProperties()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *KnowledgeEntityUpdateOne) SetCreatedAt(v time.Time) *KnowledgeEntityUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *KnowledgeEntityUpdateOne) SetNillableCreatedAt(v *time.Time) *KnowledgeEntityUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *KnowledgeEntityUpdateOne) SetUpdatedAt(v time.Time) *KnowledgeEntityUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddRelationIDs adds the "relations" edge to the EntityRelation entity by IDs.
func (_u *KnowledgeEntityUpdateOne) AddRelationIDs(ids ...uuid.UUID) *KnowledgeEntityUpdateOne {
	_u.mutation.AddRelationIDs(ids...)
	return _u
}

// AddRelations adds the "relations" edges to the EntityRelation entity.
func (_u *KnowledgeEntityUpdateOne) AddRelations(v ...*EntityRelation) *KnowledgeEntityUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRelationIDs(ids...)
}

// Mutation returns the KnowledgeEntityMutation object of the builder.
func (_u *KnowledgeEntityUpdateOne) Mutation() *KnowledgeEntityMutation {
	return _u.mutation
}

// ClearRelations clears all "relations" edges to the EntityRelation entity.
func (_u *KnowledgeEntityUpdateOne) ClearRelations() *KnowledgeEntityUpdateOne {
	_u.mutation.ClearRelations()
	return _u
}

// RemoveRelationIDs removes the "relations" edge to EntityRelation entities by IDs.
func (_u *KnowledgeEntityUpdateOne) RemoveRelationIDs(ids ...uuid.UUID) *KnowledgeEntityUpdateOne {
	_u.mutation.RemoveRelationIDs(ids...)
	return _u
}

// RemoveRelations removes "relations" edges to EntityRelation entities.
func (_u *KnowledgeEntityUpdateOne) RemoveRelations(v ...*EntityRelation) *KnowledgeEntityUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRelationIDs(ids...)
}

// Where appends a list predicates to the KnowledgeEntityUpdate builder.
func (_u *KnowledgeEntityUpdateOne) Where(ps ...predicate.KnowledgeEntity) *KnowledgeEntityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *KnowledgeEntityUpdateOne) Select(field string, fields ...string) *KnowledgeEntityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated KnowledgeEntity entity.
func (_u *KnowledgeEntityUpdateOne) Save(ctx context.Context) (*KnowledgeEntity, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnowledgeEntityUpdateOne) SaveX(ctx context.Context) *KnowledgeEntity {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *KnowledgeEntityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnowledgeEntityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *KnowledgeEntityUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := knowledgeentity.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *KnowledgeEntityUpdateOne) sqlSave(ctx context.Context) (_node *KnowledgeEntity, err error) {
	_spec := sqlgraph.NewUpdateSpec(knowledgeentity.Table, knowledgeentity.Columns, sqlgraph.NewFieldSpec(knowledgeentity.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "KnowledgeEntity.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, knowledgeentity.FieldID)
		for _, f := range fields {
			if !knowledgeentity.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != knowledgeentity.FieldID {
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
	if value, ok := _u.mutation.LabelRu(); ok {
		_spec.SetField(knowledgeentity.FieldLabelRu, field.TypeString, value)
	}
	if _u.mutation.LabelRuCleared() {
		_spec.ClearField(knowledgeentity.FieldLabelRu, field.TypeString)
	}
	if value, ok := _u.mutation.LabelEn(); ok {
		_spec.SetField(knowledgeentity.FieldLabelEn, field.TypeString, value)
	}
	if _u.mutation.LabelEnCleared() {
		_spec.ClearField(knowledgeentity.FieldLabelEn, field.TypeString)
	}
	if value, ok := _u.mutation.DescriptionRu(); ok {
		_spec.SetField(knowledgeentity.FieldDescriptionRu, field.TypeString, value)
	}
	if _u.mutation.DescriptionRuCleared() {
		_spec.ClearField(knowledgeentity.FieldDescriptionRu, field.TypeString)
	}
	if value, ok := _u.mutation.DescriptionEn(); ok {
		_spec.SetField(knowledgeentity.FieldDescriptionEn, field.TypeString, value)
	}
	if _u.mutation.DescriptionEnCleared() {
		_spec.ClearField(knowledgeentity.FieldDescriptionEn, field.TypeString)
	}
	if value, ok := _u.mutation.Properties(); ok {
		_spec.SetField(knowledgeentity.FieldProperties, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProperties(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, knowledgeentity.FieldProperties, value)
		})
	}
	if _u.mutation.PropertiesCleared() {
		_spec.ClearField(knowledgeentity.FieldProperties, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(knowledgeentity.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(knowledgeentity.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RelationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRelationsIDs(); len(nodes) > 0 && !_u.mutation.RelationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RelationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &KnowledgeEntity{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knowledgeentity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
