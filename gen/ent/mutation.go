// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/evgenyd/docs-metadata-enhancer/gen/ent/document"
	"github.com/evgenyd/docs-metadata-enhancer/gen/ent/entityrelation"
	"github.com/evgenyd/docs-metadata-enhancer/gen/ent/knowledgeentity"
	"github.com/evgenyd/docs-metadata-enhancer/gen/ent/predicate"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDocument        = "Document"
	TypeEntityRelation  = "EntityRelation"
	TypeKnowledgeEntity = "KnowledgeEntity"
)

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	name             *string
	source_path      *string
	format           *string
	status           *string
	owner            *string
	metadata         *json.RawMessage
	appendmetadata   json.RawMessage
	meta_wikidata    *map[string]map[string]string
	processing_error *string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	relations        map[uuid.UUID]struct{}
	removedrelations map[uuid.UUID]struct{}
	clearedrelations bool
	done             bool
	oldValue         func(context.Context) (*Document, error)
	predicates       []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *DocumentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *DocumentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *DocumentMutation) ResetName() {
	m.name = nil
}

// SetSourcePath sets the "source_path" field.
func (m *DocumentMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *DocumentMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *DocumentMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetFormat sets the "format" field.
func (m *DocumentMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *DocumentMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *DocumentMutation) ResetFormat() {
	m.format = nil
}

// SetStatus sets the "status" field.
func (m *DocumentMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *DocumentMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DocumentMutation) ResetStatus() {
	m.status = nil
}

// SetOwner sets the "owner" field.
func (m *DocumentMutation) SetOwner(s string) {
	m.owner = &s
}

// Owner returns the value of the "owner" field in the mutation.
func (m *DocumentMutation) Owner() (r string, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwner returns the old "owner" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldOwner(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwner: %w", err)
	}
	return oldValue.Owner, nil
}

// ClearOwner clears the value of the "owner" field.
func (m *DocumentMutation) ClearOwner() {
	m.owner = nil
	m.clearedFields[document.FieldOwner] = struct{}{}
}

// OwnerCleared returns if the "owner" field was cleared in this mutation.
func (m *DocumentMutation) OwnerCleared() bool {
	_, ok := m.clearedFields[document.FieldOwner]
	return ok
}

// ResetOwner resets all changes to the "owner" field.
func (m *DocumentMutation) ResetOwner() {
	m.owner = nil
	delete(m.clearedFields, document.FieldOwner)
}

// SetMetadata sets the "metadata" field.
func (m *DocumentMutation) SetMetadata(jm json.RawMessage) {
	m.metadata = &jm
	m.appendmetadata = nil
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *DocumentMutation) Metadata() (r json.RawMessage, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldMetadata(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// AppendMetadata adds jm to the "metadata" field.
func (m *DocumentMutation) AppendMetadata(jm json.RawMessage) {
	m.appendmetadata = append(m.appendmetadata, jm...)
}

// AppendedMetadata returns the list of values that were appended to the "metadata" field in this mutation.
func (m *DocumentMutation) AppendedMetadata() (json.RawMessage, bool) {
	if len(m.appendmetadata) == 0 {
		return nil, false
	}
	return m.appendmetadata, true
}

// ClearMetadata clears the value of the "metadata" field.
func (m *DocumentMutation) ClearMetadata() {
	m.metadata = nil
	m.appendmetadata = nil
	m.clearedFields[document.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *DocumentMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[document.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *DocumentMutation) ResetMetadata() {
	m.metadata = nil
	m.appendmetadata = nil
	delete(m.clearedFields, document.FieldMetadata)
}

// SetMetaWikidata sets the "meta_wikidata" field.
func (m *DocumentMutation) SetMetaWikidata(value map[string]map[string]string) {
	m.meta_wikidata = &value
}

// MetaWikidata returns the value of the "meta_wikidata" field in the mutation.
func (m *DocumentMutation) MetaWikidata() (r map[string]map[string]string, exists bool) {
	v := m.meta_wikidata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetaWikidata returns the old "meta_wikidata" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldMetaWikidata(ctx context.Context) (v map[string]map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetaWikidata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetaWikidata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetaWikidata: %w", err)
	}
	return oldValue.MetaWikidata, nil
}

// ClearMetaWikidata clears the value of the "meta_wikidata" field.
func (m *DocumentMutation) ClearMetaWikidata() {
	m.meta_wikidata = nil
	m.clearedFields[document.FieldMetaWikidata] = struct{}{}
}

// MetaWikidataCleared returns if the "meta_wikidata" field was cleared in this mutation.
func (m *DocumentMutation) MetaWikidataCleared() bool {
	_, ok := m.clearedFields[document.FieldMetaWikidata]
	return ok
}

// ResetMetaWikidata resets all changes to the "meta_wikidata" field.
func (m *DocumentMutation) ResetMetaWikidata() {
	m.meta_wikidata = nil
	delete(m.clearedFields, document.FieldMetaWikidata)
}

// SetProcessingError sets the "processing_error" field.
func (m *DocumentMutation) SetProcessingError(s string) {
	m.processing_error = &s
}

// ProcessingError returns the value of the "processing_error" field in the mutation.
func (m *DocumentMutation) ProcessingError() (r string, exists bool) {
	v := m.processing_error
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingError returns the old "processing_error" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldProcessingError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingError: %w", err)
	}
	return oldValue.ProcessingError, nil
}

// ClearProcessingError clears the value of the "processing_error" field.
func (m *DocumentMutation) ClearProcessingError() {
	m.processing_error = nil
	m.clearedFields[document.FieldProcessingError] = struct{}{}
}

// ProcessingErrorCleared returns if the "processing_error" field was cleared in this mutation.
func (m *DocumentMutation) ProcessingErrorCleared() bool {
	_, ok := m.clearedFields[document.FieldProcessingError]
	return ok
}

// ResetProcessingError resets all changes to the "processing_error" field.
func (m *DocumentMutation) ResetProcessingError() {
	m.processing_error = nil
	delete(m.clearedFields, document.FieldProcessingError)
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DocumentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DocumentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DocumentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddRelationIDs adds the "relations" edge to the EntityRelation entity by ids.
func (m *DocumentMutation) AddRelationIDs(ids ...uuid.UUID) {
	if m.relations == nil {
		m.relations = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.relations[ids[i]] = struct{}{}
	}
}

// ClearRelations clears the "relations" edge to the EntityRelation entity.
func (m *DocumentMutation) ClearRelations() {
	m.clearedrelations = true
}

// RelationsCleared reports if the "relations" edge to the EntityRelation entity was cleared.
func (m *DocumentMutation) RelationsCleared() bool {
	return m.clearedrelations
}

// RemoveRelationIDs removes the "relations" edge to the EntityRelation entity by IDs.
func (m *DocumentMutation) RemoveRelationIDs(ids ...uuid.UUID) {
	if m.removedrelations == nil {
		m.removedrelations = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.relations, ids[i])
		m.removedrelations[ids[i]] = struct{}{}
	}
}

// RemovedRelations returns the removed IDs of the "relations" edge to the EntityRelation entity.
func (m *DocumentMutation) RemovedRelationsIDs() (ids []uuid.UUID) {
	for id := range m.removedrelations {
		ids = append(ids, id)
	}
	return
}

// RelationsIDs returns the "relations" edge IDs in the mutation.
func (m *DocumentMutation) RelationsIDs() (ids []uuid.UUID) {
	for id := range m.relations {
		ids = append(ids, id)
	}
	return
}

// ResetRelations resets all changes to the "relations" edge.
func (m *DocumentMutation) ResetRelations() {
	m.relations = nil
	m.clearedrelations = false
	m.removedrelations = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.name != nil {
		fields = append(fields, document.FieldName)
	}
	if m.source_path != nil {
		fields = append(fields, document.FieldSourcePath)
	}
	if m.format != nil {
		fields = append(fields, document.FieldFormat)
	}
	if m.status != nil {
		fields = append(fields, document.FieldStatus)
	}
	if m.owner != nil {
		fields = append(fields, document.FieldOwner)
	}
	if m.metadata != nil {
		fields = append(fields, document.FieldMetadata)
	}
	if m.meta_wikidata != nil {
		fields = append(fields, document.FieldMetaWikidata)
	}
	if m.processing_error != nil {
		fields = append(fields, document.FieldProcessingError)
	}
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, document.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldName:
		return m.Name()
	case document.FieldSourcePath:
		return m.SourcePath()
	case document.FieldFormat:
		return m.Format()
	case document.FieldStatus:
		return m.Status()
	case document.FieldOwner:
		return m.Owner()
	case document.FieldMetadata:
		return m.Metadata()
	case document.FieldMetaWikidata:
		return m.MetaWikidata()
	case document.FieldProcessingError:
		return m.ProcessingError()
	case document.FieldCreatedAt:
		return m.CreatedAt()
	case document.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldName:
		return m.OldName(ctx)
	case document.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case document.FieldFormat:
		return m.OldFormat(ctx)
	case document.FieldStatus:
		return m.OldStatus(ctx)
	case document.FieldOwner:
		return m.OldOwner(ctx)
	case document.FieldMetadata:
		return m.OldMetadata(ctx)
	case document.FieldMetaWikidata:
		return m.OldMetaWikidata(ctx)
	case document.FieldProcessingError:
		return m.OldProcessingError(ctx)
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case document.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case document.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case document.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case document.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case document.FieldOwner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwner(v)
		return nil
	case document.FieldMetadata:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case document.FieldMetaWikidata:
		v, ok := value.(map[string]map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetaWikidata(v)
		return nil
	case document.FieldProcessingError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingError(v)
		return nil
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case document.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldOwner) {
		fields = append(fields, document.FieldOwner)
	}
	if m.FieldCleared(document.FieldMetadata) {
		fields = append(fields, document.FieldMetadata)
	}
	if m.FieldCleared(document.FieldMetaWikidata) {
		fields = append(fields, document.FieldMetaWikidata)
	}
	if m.FieldCleared(document.FieldProcessingError) {
		fields = append(fields, document.FieldProcessingError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldOwner:
		m.ClearOwner()
		return nil
	case document.FieldMetadata:
		m.ClearMetadata()
		return nil
	case document.FieldMetaWikidata:
		m.ClearMetaWikidata()
		return nil
	case document.FieldProcessingError:
		m.ClearProcessingError()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldName:
		m.ResetName()
		return nil
	case document.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case document.FieldFormat:
		m.ResetFormat()
		return nil
	case document.FieldStatus:
		m.ResetStatus()
		return nil
	case document.FieldOwner:
		m.ResetOwner()
		return nil
	case document.FieldMetadata:
		m.ResetMetadata()
		return nil
	case document.FieldMetaWikidata:
		m.ResetMetaWikidata()
		return nil
	case document.FieldProcessingError:
		m.ResetProcessingError()
		return nil
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case document.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.relations != nil {
		edges = append(edges, document.EdgeRelations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeRelations:
		ids := make([]ent.Value, 0, len(m.relations))
		for id := range m.relations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedrelations != nil {
		edges = append(edges, document.EdgeRelations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeRelations:
		ids := make([]ent.Value, 0, len(m.removedrelations))
		for id := range m.removedrelations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrelations {
		edges = append(edges, document.EdgeRelations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeRelations:
		return m.clearedrelations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeRelations:
		m.ResetRelations()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// EntityRelationMutation represents an operation that mutates the EntityRelation nodes in the graph.
type EntityRelationMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	field_category  *string
	name            *string
	field_key       *string
	field_value     *string
	confidence      *float32
	addconfidence   *float32
	context         *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	document        *uuid.UUID
	cleareddocument bool
	entity          *uuid.UUID
	clearedentity   bool
	done            bool
	oldValue        func(context.Context) (*EntityRelation, error)
	predicates      []predicate.EntityRelation
}

var _ ent.Mutation = (*EntityRelationMutation)(nil)

// entityrelationOption allows management of the mutation configuration using functional options.
type entityrelationOption func(*EntityRelationMutation)

// newEntityRelationMutation creates new mutation for the EntityRelation entity.
func newEntityRelationMutation(c config, op Op, opts ...entityrelationOption) *EntityRelationMutation {
	m := &EntityRelationMutation{
		config:        c,
		op:            op,
		typ:           TypeEntityRelation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEntityRelationID sets the ID field of the mutation.
func withEntityRelationID(id uuid.UUID) entityrelationOption {
	return func(m *EntityRelationMutation) {
		var (
			err   error
			once  sync.Once
			value *EntityRelation
		)
		m.oldValue = func(ctx context.Context) (*EntityRelation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EntityRelation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEntityRelation sets the old EntityRelation of the mutation.
func withEntityRelation(node *EntityRelation) entityrelationOption {
	return func(m *EntityRelationMutation) {
		m.oldValue = func(context.Context) (*EntityRelation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EntityRelationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EntityRelationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EntityRelation entities.
func (m *EntityRelationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EntityRelationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EntityRelationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EntityRelation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *EntityRelationMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *EntityRelationMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the EntityRelation entity.
// If the EntityRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityRelationMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *EntityRelationMutation) ResetDocumentID() {
	m.document = nil
}

// SetEntityID sets the "entity_id" field.
func (m *EntityRelationMutation) SetEntityID(u uuid.UUID) {
	m.entity = &u
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *EntityRelationMutation) EntityID() (r uuid.UUID, exists bool) {
	v := m.entity
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the EntityRelation entity.
// If the EntityRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityRelationMutation) OldEntityID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *EntityRelationMutation) ResetEntityID() {
	m.entity = nil
}

// SetFieldCategory sets the "field_category" field.
func (m *EntityRelationMutation) SetFieldCategory(s string) {
	m.field_category = &s
}

// FieldCategory returns the value of the "field_category" field in the mutation.
func (m *EntityRelationMutation) FieldCategory() (r string, exists bool) {
	v := m.field_category
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldCategory returns the old "field_category" field's value of the EntityRelation entity.
// If the EntityRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityRelationMutation) OldFieldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldCategory: %w", err)
	}
	return oldValue.FieldCategory, nil
}

// ResetFieldCategory resets all changes to the "field_category" field.
func (m *EntityRelationMutation) ResetFieldCategory() {
	m.field_category = nil
}

// SetName sets the "name" field.
func (m *EntityRelationMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *EntityRelationMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the EntityRelation entity.
// If the EntityRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityRelationMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *EntityRelationMutation) ResetName() {
	m.name = nil
}

// SetFieldKey sets the "field_key" field.
func (m *EntityRelationMutation) SetFieldKey(s string) {
	m.field_key = &s
}

// FieldKey returns the value of the "field_key" field in the mutation.
func (m *EntityRelationMutation) FieldKey() (r string, exists bool) {
	v := m.field_key
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldKey returns the old "field_key" field's value of the EntityRelation entity.
// If the EntityRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityRelationMutation) OldFieldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldKey: %w", err)
	}
	return oldValue.FieldKey, nil
}

// ResetFieldKey resets all changes to the "field_key" field.
func (m *EntityRelationMutation) ResetFieldKey() {
	m.field_key = nil
}

// SetFieldValue sets the "field_value" field.
func (m *EntityRelationMutation) SetFieldValue(s string) {
	m.field_value = &s
}

// FieldValue returns the value of the "field_value" field in the mutation.
func (m *EntityRelationMutation) FieldValue() (r string, exists bool) {
	v := m.field_value
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldValue returns the old "field_value" field's value of the EntityRelation entity.
// If the EntityRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityRelationMutation) OldFieldValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldValue: %w", err)
	}
	return oldValue.FieldValue, nil
}

// ResetFieldValue resets all changes to the "field_value" field.
func (m *EntityRelationMutation) ResetFieldValue() {
	m.field_value = nil
}

// SetConfidence sets the "confidence" field.
func (m *EntityRelationMutation) SetConfidence(f float32) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *EntityRelationMutation) Confidence() (r float32, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the EntityRelation entity.
// If the EntityRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityRelationMutation) OldConfidence(ctx context.Context) (v float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *EntityRelationMutation) AddConfidence(f float32) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *EntityRelationMutation) AddedConfidence() (r float32, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *EntityRelationMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetContext sets the "context" field.
func (m *EntityRelationMutation) SetContext(s string) {
	m.context = &s
}

// Context returns the value of the "context" field in the mutation.
func (m *EntityRelationMutation) Context() (r string, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the EntityRelation entity.
// If the EntityRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityRelationMutation) OldContext(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ClearContext clears the value of the "context" field.
func (m *EntityRelationMutation) ClearContext() {
	m.context = nil
	m.clearedFields[entityrelation.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *EntityRelationMutation) ContextCleared() bool {
	_, ok := m.clearedFields[entityrelation.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *EntityRelationMutation) ResetContext() {
	m.context = nil
	delete(m.clearedFields, entityrelation.FieldContext)
}

// SetCreatedAt sets the "created_at" field.
func (m *EntityRelationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EntityRelationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EntityRelation entity.
// If the EntityRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityRelationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EntityRelationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *EntityRelationMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[entityrelation.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *EntityRelationMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *EntityRelationMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *EntityRelationMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// ClearEntity clears the "entity" edge to the KnowledgeEntity entity.
func (m *EntityRelationMutation) ClearEntity() {
	m.clearedentity = true
	m.clearedFields[entityrelation.FieldEntityID] = struct{}{}
}

// EntityCleared reports if the "entity" edge to the KnowledgeEntity entity was cleared.
func (m *EntityRelationMutation) EntityCleared() bool {
	return m.clearedentity
}

// EntityIDs returns the "entity" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EntityID instead. It exists only for internal usage by the builders.
func (m *EntityRelationMutation) EntityIDs() (ids []uuid.UUID) {
	if id := m.entity; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEntity resets all changes to the "entity" edge.
func (m *EntityRelationMutation) ResetEntity() {
	m.entity = nil
	m.clearedentity = false
}

// Where appends a list predicates to the EntityRelationMutation builder.
func (m *EntityRelationMutation) Where(ps ...predicate.EntityRelation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EntityRelationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EntityRelationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EntityRelation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EntityRelationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EntityRelationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EntityRelation).
func (m *EntityRelationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EntityRelationMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.document != nil {
		fields = append(fields, entityrelation.FieldDocumentID)
	}
	if m.entity != nil {
		fields = append(fields, entityrelation.FieldEntityID)
	}
	if m.field_category != nil {
		fields = append(fields, entityrelation.FieldFieldCategory)
	}
	if m.name != nil {
		fields = append(fields, entityrelation.FieldName)
	}
	if m.field_key != nil {
		fields = append(fields, entityrelation.FieldFieldKey)
	}
	if m.field_value != nil {
		fields = append(fields, entityrelation.FieldFieldValue)
	}
	if m.confidence != nil {
		fields = append(fields, entityrelation.FieldConfidence)
	}
	if m.context != nil {
		fields = append(fields, entityrelation.FieldContext)
	}
	if m.created_at != nil {
		fields = append(fields, entityrelation.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EntityRelationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case entityrelation.FieldDocumentID:
		return m.DocumentID()
	case entityrelation.FieldEntityID:
		return m.EntityID()
	case entityrelation.FieldFieldCategory:
		return m.FieldCategory()
	case entityrelation.FieldName:
		return m.Name()
	case entityrelation.FieldFieldKey:
		return m.FieldKey()
	case entityrelation.FieldFieldValue:
		return m.FieldValue()
	case entityrelation.FieldConfidence:
		return m.Confidence()
	case entityrelation.FieldContext:
		return m.Context()
	case entityrelation.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EntityRelationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case entityrelation.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case entityrelation.FieldEntityID:
		return m.OldEntityID(ctx)
	case entityrelation.FieldFieldCategory:
		return m.OldFieldCategory(ctx)
	case entityrelation.FieldName:
		return m.OldName(ctx)
	case entityrelation.FieldFieldKey:
		return m.OldFieldKey(ctx)
	case entityrelation.FieldFieldValue:
		return m.OldFieldValue(ctx)
	case entityrelation.FieldConfidence:
		return m.OldConfidence(ctx)
	case entityrelation.FieldContext:
		return m.OldContext(ctx)
	case entityrelation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EntityRelation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityRelationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case entityrelation.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case entityrelation.FieldEntityID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case entityrelation.FieldFieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldCategory(v)
		return nil
	case entityrelation.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case entityrelation.FieldFieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldKey(v)
		return nil
	case entityrelation.FieldFieldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldValue(v)
		return nil
	case entityrelation.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case entityrelation.FieldContext:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case entityrelation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EntityRelation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EntityRelationMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, entityrelation.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EntityRelationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case entityrelation.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityRelationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case entityrelation.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown EntityRelation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EntityRelationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(entityrelation.FieldContext) {
		fields = append(fields, entityrelation.FieldContext)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EntityRelationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EntityRelationMutation) ClearField(name string) error {
	switch name {
	case entityrelation.FieldContext:
		m.ClearContext()
		return nil
	}
	return fmt.Errorf("unknown EntityRelation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EntityRelationMutation) ResetField(name string) error {
	switch name {
	case entityrelation.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case entityrelation.FieldEntityID:
		m.ResetEntityID()
		return nil
	case entityrelation.FieldFieldCategory:
		m.ResetFieldCategory()
		return nil
	case entityrelation.FieldName:
		m.ResetName()
		return nil
	case entityrelation.FieldFieldKey:
		m.ResetFieldKey()
		return nil
	case entityrelation.FieldFieldValue:
		m.ResetFieldValue()
		return nil
	case entityrelation.FieldConfidence:
		m.ResetConfidence()
		return nil
	case entityrelation.FieldContext:
		m.ResetContext()
		return nil
	case entityrelation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown EntityRelation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EntityRelationMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.document != nil {
		edges = append(edges, entityrelation.EdgeDocument)
	}
	if m.entity != nil {
		edges = append(edges, entityrelation.EdgeEntity)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EntityRelationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case entityrelation.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	case entityrelation.EdgeEntity:
		if id := m.entity; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EntityRelationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EntityRelationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EntityRelationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddocument {
		edges = append(edges, entityrelation.EdgeDocument)
	}
	if m.clearedentity {
		edges = append(edges, entityrelation.EdgeEntity)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EntityRelationMutation) EdgeCleared(name string) bool {
	switch name {
	case entityrelation.EdgeDocument:
		return m.cleareddocument
	case entityrelation.EdgeEntity:
		return m.clearedentity
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EntityRelationMutation) ClearEdge(name string) error {
	switch name {
	case entityrelation.EdgeDocument:
		m.ClearDocument()
		return nil
	case entityrelation.EdgeEntity:
		m.ClearEntity()
		return nil
	}
	return fmt.Errorf("unknown EntityRelation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EntityRelationMutation) ResetEdge(name string) error {
	switch name {
	case entityrelation.EdgeDocument:
		m.ResetDocument()
		return nil
	case entityrelation.EdgeEntity:
		m.ResetEntity()
		return nil
	}
	return fmt.Errorf("unknown EntityRelation edge %s", name)
}

// KnowledgeEntityMutation represents an operation that mutates the KnowledgeEntity nodes in the graph.
type KnowledgeEntityMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	qid              *string
	label_ru         *string
	label_en         *string
	description_ru   *string
	description_en   *string
	properties       *json.RawMessage
	appendproperties json.RawMessage
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	relations        map[uuid.UUID]struct{}
	removedrelations map[uuid.UUID]struct{}
	clearedrelations bool
	done             bool
	oldValue         func(context.Context) (*KnowledgeEntity, error)
	predicates       []predicate.KnowledgeEntity
}

var _ ent.Mutation = (*KnowledgeEntityMutation)(nil)

// knowledgeentityOption allows management of the mutation configuration using functional options.
type knowledgeentityOption func(*KnowledgeEntityMutation)

// newKnowledgeEntityMutation creates new mutation for the KnowledgeEntity entity.
func newKnowledgeEntityMutation(c config, op Op, opts ...knowledgeentityOption) *KnowledgeEntityMutation {
	m := &KnowledgeEntityMutation{
		config:        c,
		op:            op,
		typ:           TypeKnowledgeEntity,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withKnowledgeEntityID sets the ID field of the mutation.
func withKnowledgeEntityID(id uuid.UUID) knowledgeentityOption {
	return func(m *KnowledgeEntityMutation) {
		var (
			err   error
			once  sync.Once
			value *KnowledgeEntity
		)
		m.oldValue = func(ctx context.Context) (*KnowledgeEntity, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().KnowledgeEntity.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withKnowledgeEntity sets the old KnowledgeEntity of the mutation.
func withKnowledgeEntity(node *KnowledgeEntity) knowledgeentityOption {
	return func(m *KnowledgeEntityMutation) {
		m.oldValue = func(context.Context) (*KnowledgeEntity, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m KnowledgeEntityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m KnowledgeEntityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of KnowledgeEntity entities.
func (m *KnowledgeEntityMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *KnowledgeEntityMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *KnowledgeEntityMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().KnowledgeEntity.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQid sets the "qid" field.
func (m *KnowledgeEntityMutation) SetQid(s string) {
	m.qid = &s
}

// Qid returns the value of the "qid" field in the mutation.
func (m *KnowledgeEntityMutation) Qid() (r string, exists bool) {
	v := m.qid
	if v == nil {
		return
	}
	return *v, true
}

// OldQid returns the old "qid" field's value of the KnowledgeEntity entity.
// If the KnowledgeEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeEntityMutation) OldQid(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQid: %w", err)
	}
	return oldValue.Qid, nil
}

// ResetQid resets all changes to the "qid" field.
func (m *KnowledgeEntityMutation) ResetQid() {
	m.qid = nil
}

// SetLabelRu sets the "label_ru" field.
func (m *KnowledgeEntityMutation) SetLabelRu(s string) {
	m.label_ru = &s
}

// LabelRu returns the value of the "label_ru" field in the mutation.
func (m *KnowledgeEntityMutation) LabelRu() (r string, exists bool) {
	v := m.label_ru
	if v == nil {
		return
	}
	return *v, true
}

// OldLabelRu returns the old "label_ru" field's value of the KnowledgeEntity entity.
// If the KnowledgeEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeEntityMutation) OldLabelRu(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabelRu is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabelRu requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabelRu: %w", err)
	}
	return oldValue.LabelRu, nil
}

// ClearLabelRu clears the value of the "label_ru" field.
func (m *KnowledgeEntityMutation) ClearLabelRu() {
	m.label_ru = nil
	m.clearedFields[knowledgeentity.FieldLabelRu] = struct{}{}
}

// LabelRuCleared returns if the "label_ru" field was cleared in this mutation.
func (m *KnowledgeEntityMutation) LabelRuCleared() bool {
	_, ok := m.clearedFields[knowledgeentity.FieldLabelRu]
	return ok
}

// ResetLabelRu resets all changes to the "label_ru" field.
func (m *KnowledgeEntityMutation) ResetLabelRu() {
	m.label_ru = nil
	delete(m.clearedFields, knowledgeentity.FieldLabelRu)
}

// SetLabelEn sets the "label_en" field.
func (m *KnowledgeEntityMutation) SetLabelEn(s string) {
	m.label_en = &s
}

// LabelEn returns the value of the "label_en" field in the mutation.
func (m *KnowledgeEntityMutation) LabelEn() (r string, exists bool) {
	v := m.label_en
	if v == nil {
		return
	}
	return *v, true
}

// OldLabelEn returns the old "label_en" field's value of the KnowledgeEntity entity.
// If the KnowledgeEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeEntityMutation) OldLabelEn(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabelEn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabelEn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabelEn: %w", err)
	}
	return oldValue.LabelEn, nil
}

// ClearLabelEn clears the value of the "label_en" field.
func (m *KnowledgeEntityMutation) ClearLabelEn() {
	m.label_en = nil
	m.clearedFields[knowledgeentity.FieldLabelEn] = struct{}{}
}

// LabelEnCleared returns if the "label_en" field was cleared in this mutation.
func (m *KnowledgeEntityMutation) LabelEnCleared() bool {
	_, ok := m.clearedFields[knowledgeentity.FieldLabelEn]
	return ok
}

// ResetLabelEn resets all changes to the "label_en" field.
func (m *KnowledgeEntityMutation) ResetLabelEn() {
	m.label_en = nil
	delete(m.clearedFields, knowledgeentity.FieldLabelEn)
}

// SetDescriptionRu sets the "description_ru" field.
func (m *KnowledgeEntityMutation) SetDescriptionRu(s string) {
	m.description_ru = &s
}

// DescriptionRu returns the value of the "description_ru" field in the mutation.
func (m *KnowledgeEntityMutation) DescriptionRu() (r string, exists bool) {
	v := m.description_ru
	if v == nil {
		return
	}
	return *v, true
}

// OldDescriptionRu returns the old "description_ru" field's value of the KnowledgeEntity entity.
// If the KnowledgeEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeEntityMutation) OldDescriptionRu(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescriptionRu is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescriptionRu requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescriptionRu: %w", err)
	}
	return oldValue.DescriptionRu, nil
}

// ClearDescriptionRu clears the value of the "description_ru" field.
func (m *KnowledgeEntityMutation) ClearDescriptionRu() {
	m.description_ru = nil
	m.clearedFields[knowledgeentity.FieldDescriptionRu] = struct{}{}
}

// DescriptionRuCleared returns if the "description_ru" field was cleared in this mutation.
func (m *KnowledgeEntityMutation) DescriptionRuCleared() bool {
	_, ok := m.clearedFields[knowledgeentity.FieldDescriptionRu]
	return ok
}

// ResetDescriptionRu resets all changes to the "description_ru" field.
func (m *KnowledgeEntityMutation) ResetDescriptionRu() {
	m.description_ru = nil
	delete(m.clearedFields, knowledgeentity.FieldDescriptionRu)
}

// SetDescriptionEn sets the "description_en" field.
func (m *KnowledgeEntityMutation) SetDescriptionEn(s string) {
	m.description_en = &s
}

// DescriptionEn returns the value of the "description_en" field in the mutation.
func (m *KnowledgeEntityMutation) DescriptionEn() (r string, exists bool) {
	v := m.description_en
	if v == nil {
		return
	}
	return *v, true
}

// OldDescriptionEn returns the old "description_en" field's value of the KnowledgeEntity entity.
// If the KnowledgeEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeEntityMutation) OldDescriptionEn(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescriptionEn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescriptionEn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescriptionEn: %w", err)
	}
	return oldValue.DescriptionEn, nil
}

// ClearDescriptionEn clears the value of the "description_en" field.
func (m *KnowledgeEntityMutation) ClearDescriptionEn() {
	m.description_en = nil
	m.clearedFields[knowledgeentity.FieldDescriptionEn] = struct{}{}
}

// DescriptionEnCleared returns if the "description_en" field was cleared in this mutation.
func (m *KnowledgeEntityMutation) DescriptionEnCleared() bool {
	_, ok := m.clearedFields[knowledgeentity.FieldDescriptionEn]
	return ok
}

// ResetDescriptionEn resets all changes to the "description_en" field.
func (m *KnowledgeEntityMutation) ResetDescriptionEn() {
	m.description_en = nil
	delete(m.clearedFields, knowledgeentity.FieldDescriptionEn)
}

// SetProperties sets the "properties" field.
func (m *KnowledgeEntityMutation) SetProperties(jm json.RawMessage) {
	m.properties = &jm
	m.appendproperties = nil
}

// Properties returns the value of the "properties" field in the mutation.
func (m *KnowledgeEntityMutation) Properties() (r json.RawMessage, exists bool) {
	v := m.properties
	if v == nil {
		return
	}
	return *v, true
}

// OldProperties returns the old "properties" field's value of the KnowledgeEntity entity.
// If the KnowledgeEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeEntityMutation) OldProperties(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProperties is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProperties requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProperties: %w", err)
	}
	return oldValue.Properties, nil
}

// AppendProperties adds jm to the "properties" field.
func (m *KnowledgeEntityMutation) AppendProperties(jm json.RawMessage) {
	m.appendproperties = append(m.appendproperties, jm...)
}

// AppendedProperties returns the list of values that were appended to the "properties" field in this mutation.
func (m *KnowledgeEntityMutation) AppendedProperties() (json.RawMessage, bool) {
	if len(m.appendproperties) == 0 {
		return nil, false
	}
	return m.appendproperties, true
}

// ClearProperties clears the value of the "properties" field.
func (m *KnowledgeEntityMutation) ClearProperties() {
	m.properties = nil
	m.appendproperties = nil
	m.clearedFields[knowledgeentity.FieldProperties] = struct{}{}
}

// PropertiesCleared returns if the "properties" field was cleared in this mutation.
func (m *KnowledgeEntityMutation) PropertiesCleared() bool {
	_, ok := m.clearedFields[knowledgeentity.FieldProperties]
	return ok
}

// ResetProperties resets all changes to the "properties" field.
func (m *KnowledgeEntityMutation) ResetProperties() {
	m.properties = nil
	m.appendproperties = nil
	delete(m.clearedFields, knowledgeentity.FieldProperties)
}

// SetCreatedAt sets the "created_at" field.
func (m *KnowledgeEntityMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *KnowledgeEntityMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the KnowledgeEntity entity.
// If the KnowledgeEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeEntityMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *KnowledgeEntityMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *KnowledgeEntityMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *KnowledgeEntityMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the KnowledgeEntity entity.
// If the KnowledgeEntity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeEntityMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *KnowledgeEntityMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddRelationIDs adds the "relations" edge to the EntityRelation entity by ids.
func (m *KnowledgeEntityMutation) AddRelationIDs(ids ...uuid.UUID) {
	if m.relations == nil {
		m.relations = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.relations[ids[i]] = struct{}{}
	}
}

// ClearRelations clears the "relations" edge to the EntityRelation entity.
func (m *KnowledgeEntityMutation) ClearRelations() {
	m.clearedrelations = true
}

// RelationsCleared reports if the "relations" edge to the EntityRelation entity was cleared.
func (m *KnowledgeEntityMutation) RelationsCleared() bool {
	return m.clearedrelations
}

// RemoveRelationIDs removes the "relations" edge to the EntityRelation entity by IDs.
func (m *KnowledgeEntityMutation) RemoveRelationIDs(ids ...uuid.UUID) {
	if m.removedrelations == nil {
		m.removedrelations = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.relations, ids[i])
		m.removedrelations[ids[i]] = struct{}{}
	}
}

// RemovedRelations returns the removed IDs of the "relations" edge to the EntityRelation entity.
func (m *KnowledgeEntityMutation) RemovedRelationsIDs() (ids []uuid.UUID) {
	for id := range m.removedrelations {
		ids = append(ids, id)
	}
	return
}

// RelationsIDs returns the "relations" edge IDs in the mutation.
func (m *KnowledgeEntityMutation) RelationsIDs() (ids []uuid.UUID) {
	for id := range m.relations {
		ids = append(ids, id)
	}
	return
}

// ResetRelations resets all changes to the "relations" edge.
func (m *KnowledgeEntityMutation) ResetRelations() {
	m.relations = nil
	m.clearedrelations = false
	m.removedrelations = nil
}

// Where appends a list predicates to the KnowledgeEntityMutation builder.
func (m *KnowledgeEntityMutation) Where(ps ...predicate.KnowledgeEntity) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the KnowledgeEntityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *KnowledgeEntityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.KnowledgeEntity, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *KnowledgeEntityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *KnowledgeEntityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (KnowledgeEntity).
func (m *KnowledgeEntityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *KnowledgeEntityMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.qid != nil {
		fields = append(fields, knowledgeentity.FieldQid)
	}
	if m.label_ru != nil {
		fields = append(fields, knowledgeentity.FieldLabelRu)
	}
	if m.label_en != nil {
		fields = append(fields, knowledgeentity.FieldLabelEn)
	}
	if m.description_ru != nil {
		fields = append(fields, knowledgeentity.FieldDescriptionRu)
	}
	if m.description_en != nil {
		fields = append(fields, knowledgeentity.FieldDescriptionEn)
	}
	if m.properties != nil {
		fields = append(fields, knowledgeentity.FieldProperties)
	}
	if m.created_at != nil {
		fields = append(fields, knowledgeentity.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, knowledgeentity.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *KnowledgeEntityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case knowledgeentity.FieldQid:
		return m.Qid()
	case knowledgeentity.FieldLabelRu:
		return m.LabelRu()
	case knowledgeentity.FieldLabelEn:
		return m.LabelEn()
	case knowledgeentity.FieldDescriptionRu:
		return m.DescriptionRu()
	case knowledgeentity.FieldDescriptionEn:
		return m.DescriptionEn()
	case knowledgeentity.FieldProperties:
		return m.Properties()
	case knowledgeentity.FieldCreatedAt:
		return m.CreatedAt()
	case knowledgeentity.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *KnowledgeEntityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case knowledgeentity.FieldQid:
		return m.OldQid(ctx)
	case knowledgeentity.FieldLabelRu:
		return m.OldLabelRu(ctx)
	case knowledgeentity.FieldLabelEn:
		return m.OldLabelEn(ctx)
	case knowledgeentity.FieldDescriptionRu:
		return m.OldDescriptionRu(ctx)
	case knowledgeentity.FieldDescriptionEn:
		return m.OldDescriptionEn(ctx)
	case knowledgeentity.FieldProperties:
		return m.OldProperties(ctx)
	case knowledgeentity.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case knowledgeentity.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown KnowledgeEntity field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KnowledgeEntityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case knowledgeentity.FieldQid:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQid(v)
		return nil
	case knowledgeentity.FieldLabelRu:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabelRu(v)
		return nil
	case knowledgeentity.FieldLabelEn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabelEn(v)
		return nil
	case knowledgeentity.FieldDescriptionRu:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescriptionRu(v)
		return nil
	case knowledgeentity.FieldDescriptionEn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescriptionEn(v)
		return nil
	case knowledgeentity.FieldProperties:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProperties(v)
		return nil
	case knowledgeentity.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case knowledgeentity.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown KnowledgeEntity field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *KnowledgeEntityMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *KnowledgeEntityMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KnowledgeEntityMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown KnowledgeEntity numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *KnowledgeEntityMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(knowledgeentity.FieldLabelRu) {
		fields = append(fields, knowledgeentity.FieldLabelRu)
	}
	if m.FieldCleared(knowledgeentity.FieldLabelEn) {
		fields = append(fields, knowledgeentity.FieldLabelEn)
	}
	if m.FieldCleared(knowledgeentity.FieldDescriptionRu) {
		fields = append(fields, knowledgeentity.FieldDescriptionRu)
	}
	if m.FieldCleared(knowledgeentity.FieldDescriptionEn) {
		fields = append(fields, knowledgeentity.FieldDescriptionEn)
	}
	if m.FieldCleared(knowledgeentity.FieldProperties) {
		fields = append(fields, knowledgeentity.FieldProperties)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *KnowledgeEntityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *KnowledgeEntityMutation) ClearField(name string) error {
	switch name {
	case knowledgeentity.FieldLabelRu:
		m.ClearLabelRu()
		return nil
	case knowledgeentity.FieldLabelEn:
		m.ClearLabelEn()
		return nil
	case knowledgeentity.FieldDescriptionRu:
		m.ClearDescriptionRu()
		return nil
	case knowledgeentity.FieldDescriptionEn:
		m.ClearDescriptionEn()
		return nil
	case knowledgeentity.FieldProperties:
		m.ClearProperties()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeEntity nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *KnowledgeEntityMutation) ResetField(name string) error {
	switch name {
	case knowledgeentity.FieldQid:
		m.ResetQid()
		return nil
	case knowledgeentity.FieldLabelRu:
		m.ResetLabelRu()
		return nil
	case knowledgeentity.FieldLabelEn:
		m.ResetLabelEn()
		return nil
	case knowledgeentity.FieldDescriptionRu:
		m.ResetDescriptionRu()
		return nil
	case knowledgeentity.FieldDescriptionEn:
		m.ResetDescriptionEn()
		return nil
	case knowledgeentity.FieldProperties:
		m.ResetProperties()
		return nil
	case knowledgeentity.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case knowledgeentity.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeEntity field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *KnowledgeEntityMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.relations != nil {
		edges = append(edges, knowledgeentity.EdgeRelations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *KnowledgeEntityMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case knowledgeentity.EdgeRelations:
		ids := make([]ent.Value, 0, len(m.relations))
		for id := range m.relations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *KnowledgeEntityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedrelations != nil {
		edges = append(edges, knowledgeentity.EdgeRelations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *KnowledgeEntityMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case knowledgeentity.EdgeRelations:
		ids := make([]ent.Value, 0, len(m.removedrelations))
		for id := range m.removedrelations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *KnowledgeEntityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrelations {
		edges = append(edges, knowledgeentity.EdgeRelations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *KnowledgeEntityMutation) EdgeCleared(name string) bool {
	switch name {
	case knowledgeentity.EdgeRelations:
		return m.clearedrelations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *KnowledgeEntityMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown KnowledgeEntity unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *KnowledgeEntityMutation) ResetEdge(name string) error {
	switch name {
	case knowledgeentity.EdgeRelations:
		m.ResetRelations()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeEntity edge %s", name)
}
