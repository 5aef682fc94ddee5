// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/evgenyd/docs-metadata-enhancer/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/evgenyd/docs-metadata-enhancer/gen/ent/document"
	"github.com/evgenyd/docs-metadata-enhancer/gen/ent/entityrelation"
	"github.com/evgenyd/docs-metadata-enhancer/gen/ent/knowledgeentity"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Document is the client for interacting with the Document builders.
	Document *DocumentClient
	// EntityRelation is the client for interacting with the EntityRelation builders.
	EntityRelation *EntityRelationClient
	// KnowledgeEntity is the client for interacting with the KnowledgeEntity builders.
	KnowledgeEntity *KnowledgeEntityClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Document = NewDocumentClient(c.config)
	c.EntityRelation = NewEntityRelationClient(c.config)
	c.KnowledgeEntity = NewKnowledgeEntityClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		Document:        NewDocumentClient(cfg),
		EntityRelation:  NewEntityRelationClient(cfg),
		KnowledgeEntity: NewKnowledgeEntityClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		Document:        NewDocumentClient(cfg),
		EntityRelation:  NewEntityRelationClient(cfg),
		KnowledgeEntity: NewKnowledgeEntityClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Document.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.Document.Use(hooks...)
	c.EntityRelation.Use(hooks...)
	c.KnowledgeEntity.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Document.Intercept(interceptors...)
	c.EntityRelation.Intercept(interceptors...)
	c.KnowledgeEntity.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DocumentMutation:
		return c.Document.mutate(ctx, m)
	case *EntityRelationMutation:
		return c.EntityRelation.mutate(ctx, m)
	case *KnowledgeEntityMutation:
		return c.KnowledgeEntity.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DocumentClient is a client for the Document schema.
type DocumentClient struct {
	config
}

// NewDocumentClient returns a client for the Document from the given config.
func NewDocumentClient(c config) *DocumentClient {
	return &DocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `document.Hooks(f(g(h())))`.
func (c *DocumentClient) Use(hooks ...Hook) {
	c.hooks.Document = append(c.hooks.Document, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `document.Intercept(f(g(h())))`.
func (c *DocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Document = append(c.inters.Document, interceptors...)
}

// Create returns a builder for creating a Document entity.
func (c *DocumentClient) Create() *DocumentCreate {
	mutation := newDocumentMutation(c.config, OpCreate)
	return &DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Document entities.
func (c *DocumentClient) CreateBulk(builders ...*DocumentCreate) *DocumentCreateBulk {
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentClient) MapCreateBulk(slice any, setFunc func(*DocumentCreate, int)) *DocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentCreateBulk{err: fmt.Errorf("calling to DocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Document.
func (c *DocumentClient) Update() *DocumentUpdate {
	mutation := newDocumentMutation(c.config, OpUpdate)
	return &DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentClient) UpdateOne(_m *Document) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocument(_m))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentClient) UpdateOneID(id uuid.UUID) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocumentID(id))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Document.
func (c *DocumentClient) Delete() *DocumentDelete {
	mutation := newDocumentMutation(c.config, OpDelete)
	return &DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentClient) DeleteOne(_m *Document) *DocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentClient) DeleteOneID(id uuid.UUID) *DocumentDeleteOne {
	builder := c.Delete().Where(document.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentDeleteOne{builder}
}

// Query returns a query builder for Document.
func (c *DocumentClient) Query() *DocumentQuery {
	return &DocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a Document entity by its id.
func (c *DocumentClient) Get(ctx context.Context, id uuid.UUID) (*Document, error) {
	return c.Query().Where(document.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentClient) GetX(ctx context.Context, id uuid.UUID) *Document {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRelations queries the relations edge of a Document.
func (c *DocumentClient) QueryRelations(_m *Document) *EntityRelationQuery {
	query := (&EntityRelationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(entityrelation.Table, entityrelation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.RelationsTable, document.RelationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentClient) Hooks() []Hook {
	return c.hooks.Document
}

// Interceptors returns the client interceptors.
func (c *DocumentClient) Interceptors() []Interceptor {
	return c.inters.Document
}

func (c *DocumentClient) mutate(ctx context.Context, m *DocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Document mutation op: %q", m.Op())
	}
}

// EntityRelationClient is a client for the EntityRelation schema.
type EntityRelationClient struct {
	config
}

// NewEntityRelationClient returns a client for the EntityRelation from the given config.
func NewEntityRelationClient(c config) *EntityRelationClient {
	return &EntityRelationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `entityrelation.Hooks(f(g(h())))`.
func (c *EntityRelationClient) Use(hooks ...Hook) {
	c.hooks.EntityRelation = append(c.hooks.EntityRelation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `entityrelation.Intercept(f(g(h())))`.
func (c *EntityRelationClient) Intercept(interceptors ...Interceptor) {
	c.inters.EntityRelation = append(c.inters.EntityRelation, interceptors...)
}

// Create returns a builder for creating a EntityRelation entity.
func (c *EntityRelationClient) Create() *EntityRelationCreate {
	mutation := newEntityRelationMutation(c.config, OpCreate)
	return &EntityRelationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EntityRelation entities.
func (c *EntityRelationClient) CreateBulk(builders ...*EntityRelationCreate) *EntityRelationCreateBulk {
	return &EntityRelationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EntityRelationClient) MapCreateBulk(slice any, setFunc func(*EntityRelationCreate, int)) *EntityRelationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EntityRelationCreateBulk{err: fmt.Errorf("calling to EntityRelationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EntityRelationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EntityRelationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EntityRelation.
func (c *EntityRelationClient) Update() *EntityRelationUpdate {
	mutation := newEntityRelationMutation(c.config, OpUpdate)
	return &EntityRelationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EntityRelationClient) UpdateOne(_m *EntityRelation) *EntityRelationUpdateOne {
	mutation := newEntityRelationMutation(c.config, OpUpdateOne, withEntityRelation(_m))
	return &EntityRelationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EntityRelationClient) UpdateOneID(id uuid.UUID) *EntityRelationUpdateOne {
	mutation := newEntityRelationMutation(c.config, OpUpdateOne, withEntityRelationID(id))
	return &EntityRelationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EntityRelation.
func (c *EntityRelationClient) Delete() *EntityRelationDelete {
	mutation := newEntityRelationMutation(c.config, OpDelete)
	return &EntityRelationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EntityRelationClient) DeleteOne(_m *EntityRelation) *EntityRelationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EntityRelationClient) DeleteOneID(id uuid.UUID) *EntityRelationDeleteOne {
	builder := c.Delete().Where(entityrelation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EntityRelationDeleteOne{builder}
}

// Query returns a query builder for EntityRelation.
func (c *EntityRelationClient) Query() *EntityRelationQuery {
	return &EntityRelationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEntityRelation},
		inters: c.Interceptors(),
	}
}

// Get returns a EntityRelation entity by its id.
func (c *EntityRelationClient) Get(ctx context.Context, id uuid.UUID) (*EntityRelation, error) {
	return c.Query().Where(entityrelation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EntityRelationClient) GetX(ctx context.Context, id uuid.UUID) *EntityRelation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a EntityRelation.
func (c *EntityRelationClient) QueryDocument(_m *EntityRelation) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(entityrelation.Table, entityrelation.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, entityrelation.DocumentTable, entityrelation.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEntity queries the entity edge of a EntityRelation.
func (c *EntityRelationClient) QueryEntity(_m *EntityRelation) *KnowledgeEntityQuery {
	query := (&KnowledgeEntityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(entityrelation.Table, entityrelation.FieldID, id),
			sqlgraph.To(knowledgeentity.Table, knowledgeentity.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, entityrelation.EntityTable, entityrelation.EntityColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EntityRelationClient) Hooks() []Hook {
	return c.hooks.EntityRelation
}

// Interceptors returns the client interceptors.
func (c *EntityRelationClient) Interceptors() []Interceptor {
	return c.inters.EntityRelation
}

func (c *EntityRelationClient) mutate(ctx context.Context, m *EntityRelationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EntityRelationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EntityRelationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EntityRelationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EntityRelationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EntityRelation mutation op: %q", m.Op())
	}
}

// KnowledgeEntityClient is a client for the KnowledgeEntity schema.
type KnowledgeEntityClient struct {
	config
}

// NewKnowledgeEntityClient returns a client for the KnowledgeEntity from the given config.
func NewKnowledgeEntityClient(c config) *KnowledgeEntityClient {
	return &KnowledgeEntityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `knowledgeentity.Hooks(f(g(h())))`.
func (c *KnowledgeEntityClient) Use(hooks ...Hook) {
	c.hooks.KnowledgeEntity = append(c.hooks.KnowledgeEntity, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `knowledgeentity.Intercept(f(g(h())))`.
func (c *KnowledgeEntityClient) Intercept(interceptors ...Interceptor) {
	c.inters.KnowledgeEntity = append(c.inters.KnowledgeEntity, interceptors...)
}

// Create returns a builder for creating a KnowledgeEntity entity.
func (c *KnowledgeEntityClient) Create() *KnowledgeEntityCreate {
	mutation := newKnowledgeEntityMutation(c.config, OpCreate)
	return &KnowledgeEntityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of KnowledgeEntity entities.
func (c *KnowledgeEntityClient) CreateBulk(builders ...*KnowledgeEntityCreate) *KnowledgeEntityCreateBulk {
	return &KnowledgeEntityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *KnowledgeEntityClient) MapCreateBulk(slice any, setFunc func(*KnowledgeEntityCreate, int)) *KnowledgeEntityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &KnowledgeEntityCreateBulk{err: fmt.Errorf("calling to KnowledgeEntityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*KnowledgeEntityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &KnowledgeEntityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for KnowledgeEntity.
func (c *KnowledgeEntityClient) Update() *KnowledgeEntityUpdate {
	mutation := newKnowledgeEntityMutation(c.config, OpUpdate)
	return &KnowledgeEntityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *KnowledgeEntityClient) UpdateOne(_m *KnowledgeEntity) *KnowledgeEntityUpdateOne {
	mutation := newKnowledgeEntityMutation(c.config, OpUpdateOne, withKnowledgeEntity(_m))
	return &KnowledgeEntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *KnowledgeEntityClient) UpdateOneID(id uuid.UUID) *KnowledgeEntityUpdateOne {
	mutation := newKnowledgeEntityMutation(c.config, OpUpdateOne, withKnowledgeEntityID(id))
	return &KnowledgeEntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for KnowledgeEntity.
func (c *KnowledgeEntityClient) Delete() *KnowledgeEntityDelete {
	mutation := newKnowledgeEntityMutation(c.config, OpDelete)
	return &KnowledgeEntityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *KnowledgeEntityClient) DeleteOne(_m *KnowledgeEntity) *KnowledgeEntityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *KnowledgeEntityClient) DeleteOneID(id uuid.UUID) *KnowledgeEntityDeleteOne {
	builder := c.Delete().Where(knowledgeentity.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &KnowledgeEntityDeleteOne{builder}
}

// Query returns a query builder for KnowledgeEntity.
func (c *KnowledgeEntityClient) Query() *KnowledgeEntityQuery {
	return &KnowledgeEntityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeKnowledgeEntity},
		inters: c.Interceptors(),
	}
}

// Get returns a KnowledgeEntity entity by its id.
func (c *KnowledgeEntityClient) Get(ctx context.Context, id uuid.UUID) (*KnowledgeEntity, error) {
	return c.Query().Where(knowledgeentity.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *KnowledgeEntityClient) GetX(ctx context.Context, id uuid.UUID) *KnowledgeEntity {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRelations queries the relations edge of a KnowledgeEntity.
func (c *KnowledgeEntityClient) QueryRelations(_m *KnowledgeEntity) *EntityRelationQuery {
	query := (&EntityRelationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(knowledgeentity.Table, knowledgeentity.FieldID, id),
			sqlgraph.To(entityrelation.Table, entityrelation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, knowledgeentity.RelationsTable, knowledgeentity.RelationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *KnowledgeEntityClient) Hooks() []Hook {
	return c.hooks.KnowledgeEntity
}

// Interceptors returns the client interceptors.
func (c *KnowledgeEntityClient) Interceptors() []Interceptor {
	return c.inters.KnowledgeEntity
}

func (c *KnowledgeEntityClient) mutate(ctx context.Context, m *KnowledgeEntityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&KnowledgeEntityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&KnowledgeEntityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&KnowledgeEntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&KnowledgeEntityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown KnowledgeEntity mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Document, EntityRelation, KnowledgeEntity []ent.Hook
	}
	inters struct {
		Document, EntityRelation, KnowledgeEntity []ent.Interceptor
	}
)
