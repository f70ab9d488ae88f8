// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/clipforge/clipforge/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/clipforge/clipforge/ent/approvalrecord"
	"github.com/clipforge/clipforge/ent/artifactrecord"
	"github.com/clipforge/clipforge/ent/changeentry"
	"github.com/clipforge/clipforge/ent/lockmirror"
	"github.com/clipforge/clipforge/ent/project"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ApprovalRecord is the client for interacting with the ApprovalRecord builders.
	ApprovalRecord *ApprovalRecordClient
	// ArtifactRecord is the client for interacting with the ArtifactRecord builders.
	ArtifactRecord *ArtifactRecordClient
	// ChangeEntry is the client for interacting with the ChangeEntry builders.
	ChangeEntry *ChangeEntryClient
	// LockMirror is the client for interacting with the LockMirror builders.
	LockMirror *LockMirrorClient
	// Project is the client for interacting with the Project builders.
	Project *ProjectClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ApprovalRecord = NewApprovalRecordClient(c.config)
	c.ArtifactRecord = NewArtifactRecordClient(c.config)
	c.ChangeEntry = NewChangeEntryClient(c.config)
	c.LockMirror = NewLockMirrorClient(c.config)
	c.Project = NewProjectClient(c.config)
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
		ctx:            ctx,
		config:         cfg,
		ApprovalRecord: NewApprovalRecordClient(cfg),
		ArtifactRecord: NewArtifactRecordClient(cfg),
		ChangeEntry:    NewChangeEntryClient(cfg),
		LockMirror:     NewLockMirrorClient(cfg),
		Project:        NewProjectClient(cfg),
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
		ctx:            ctx,
		config:         cfg,
		ApprovalRecord: NewApprovalRecordClient(cfg),
		ArtifactRecord: NewArtifactRecordClient(cfg),
		ChangeEntry:    NewChangeEntryClient(cfg),
		LockMirror:     NewLockMirrorClient(cfg),
		Project:        NewProjectClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ApprovalRecord.
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
	c.ApprovalRecord.Use(hooks...)
	c.ArtifactRecord.Use(hooks...)
	c.ChangeEntry.Use(hooks...)
	c.LockMirror.Use(hooks...)
	c.Project.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ApprovalRecord.Intercept(interceptors...)
	c.ArtifactRecord.Intercept(interceptors...)
	c.ChangeEntry.Intercept(interceptors...)
	c.LockMirror.Intercept(interceptors...)
	c.Project.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ApprovalRecordMutation:
		return c.ApprovalRecord.mutate(ctx, m)
	case *ArtifactRecordMutation:
		return c.ArtifactRecord.mutate(ctx, m)
	case *ChangeEntryMutation:
		return c.ChangeEntry.mutate(ctx, m)
	case *LockMirrorMutation:
		return c.LockMirror.mutate(ctx, m)
	case *ProjectMutation:
		return c.Project.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ApprovalRecordClient is a client for the ApprovalRecord schema.
type ApprovalRecordClient struct {
	config
}

// NewApprovalRecordClient returns a client for the ApprovalRecord from the given config.
func NewApprovalRecordClient(c config) *ApprovalRecordClient {
	return &ApprovalRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `approvalrecord.Hooks(f(g(h())))`.
func (c *ApprovalRecordClient) Use(hooks ...Hook) {
	c.hooks.ApprovalRecord = append(c.hooks.ApprovalRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `approvalrecord.Intercept(f(g(h())))`.
func (c *ApprovalRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.ApprovalRecord = append(c.inters.ApprovalRecord, interceptors...)
}

// Create returns a builder for creating a ApprovalRecord entity.
func (c *ApprovalRecordClient) Create() *ApprovalRecordCreate {
	mutation := newApprovalRecordMutation(c.config, OpCreate)
	return &ApprovalRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ApprovalRecord entities.
func (c *ApprovalRecordClient) CreateBulk(builders ...*ApprovalRecordCreate) *ApprovalRecordCreateBulk {
	return &ApprovalRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ApprovalRecordClient) MapCreateBulk(slice any, setFunc func(*ApprovalRecordCreate, int)) *ApprovalRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ApprovalRecordCreateBulk{err: fmt.Errorf("calling to ApprovalRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ApprovalRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ApprovalRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ApprovalRecord.
func (c *ApprovalRecordClient) Update() *ApprovalRecordUpdate {
	mutation := newApprovalRecordMutation(c.config, OpUpdate)
	return &ApprovalRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ApprovalRecordClient) UpdateOne(_m *ApprovalRecord) *ApprovalRecordUpdateOne {
	mutation := newApprovalRecordMutation(c.config, OpUpdateOne, withApprovalRecord(_m))
	return &ApprovalRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ApprovalRecordClient) UpdateOneID(id string) *ApprovalRecordUpdateOne {
	mutation := newApprovalRecordMutation(c.config, OpUpdateOne, withApprovalRecordID(id))
	return &ApprovalRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ApprovalRecord.
func (c *ApprovalRecordClient) Delete() *ApprovalRecordDelete {
	mutation := newApprovalRecordMutation(c.config, OpDelete)
	return &ApprovalRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ApprovalRecordClient) DeleteOne(_m *ApprovalRecord) *ApprovalRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ApprovalRecordClient) DeleteOneID(id string) *ApprovalRecordDeleteOne {
	builder := c.Delete().Where(approvalrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ApprovalRecordDeleteOne{builder}
}

// Query returns a query builder for ApprovalRecord.
func (c *ApprovalRecordClient) Query() *ApprovalRecordQuery {
	return &ApprovalRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeApprovalRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a ApprovalRecord entity by its id.
func (c *ApprovalRecordClient) Get(ctx context.Context, id string) (*ApprovalRecord, error) {
	return c.Query().Where(approvalrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ApprovalRecordClient) GetX(ctx context.Context, id string) *ApprovalRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ApprovalRecordClient) Hooks() []Hook {
	return c.hooks.ApprovalRecord
}

// Interceptors returns the client interceptors.
func (c *ApprovalRecordClient) Interceptors() []Interceptor {
	return c.inters.ApprovalRecord
}

func (c *ApprovalRecordClient) mutate(ctx context.Context, m *ApprovalRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ApprovalRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ApprovalRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ApprovalRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ApprovalRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ApprovalRecord mutation op: %q", m.Op())
	}
}

// ArtifactRecordClient is a client for the ArtifactRecord schema.
type ArtifactRecordClient struct {
	config
}

// NewArtifactRecordClient returns a client for the ArtifactRecord from the given config.
func NewArtifactRecordClient(c config) *ArtifactRecordClient {
	return &ArtifactRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `artifactrecord.Hooks(f(g(h())))`.
func (c *ArtifactRecordClient) Use(hooks ...Hook) {
	c.hooks.ArtifactRecord = append(c.hooks.ArtifactRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `artifactrecord.Intercept(f(g(h())))`.
func (c *ArtifactRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.ArtifactRecord = append(c.inters.ArtifactRecord, interceptors...)
}

// Create returns a builder for creating a ArtifactRecord entity.
func (c *ArtifactRecordClient) Create() *ArtifactRecordCreate {
	mutation := newArtifactRecordMutation(c.config, OpCreate)
	return &ArtifactRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ArtifactRecord entities.
func (c *ArtifactRecordClient) CreateBulk(builders ...*ArtifactRecordCreate) *ArtifactRecordCreateBulk {
	return &ArtifactRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ArtifactRecordClient) MapCreateBulk(slice any, setFunc func(*ArtifactRecordCreate, int)) *ArtifactRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ArtifactRecordCreateBulk{err: fmt.Errorf("calling to ArtifactRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ArtifactRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ArtifactRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ArtifactRecord.
func (c *ArtifactRecordClient) Update() *ArtifactRecordUpdate {
	mutation := newArtifactRecordMutation(c.config, OpUpdate)
	return &ArtifactRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ArtifactRecordClient) UpdateOne(_m *ArtifactRecord) *ArtifactRecordUpdateOne {
	mutation := newArtifactRecordMutation(c.config, OpUpdateOne, withArtifactRecord(_m))
	return &ArtifactRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ArtifactRecordClient) UpdateOneID(id string) *ArtifactRecordUpdateOne {
	mutation := newArtifactRecordMutation(c.config, OpUpdateOne, withArtifactRecordID(id))
	return &ArtifactRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ArtifactRecord.
func (c *ArtifactRecordClient) Delete() *ArtifactRecordDelete {
	mutation := newArtifactRecordMutation(c.config, OpDelete)
	return &ArtifactRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ArtifactRecordClient) DeleteOne(_m *ArtifactRecord) *ArtifactRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ArtifactRecordClient) DeleteOneID(id string) *ArtifactRecordDeleteOne {
	builder := c.Delete().Where(artifactrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ArtifactRecordDeleteOne{builder}
}

// Query returns a query builder for ArtifactRecord.
func (c *ArtifactRecordClient) Query() *ArtifactRecordQuery {
	return &ArtifactRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeArtifactRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a ArtifactRecord entity by its id.
func (c *ArtifactRecordClient) Get(ctx context.Context, id string) (*ArtifactRecord, error) {
	return c.Query().Where(artifactrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ArtifactRecordClient) GetX(ctx context.Context, id string) *ArtifactRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ArtifactRecordClient) Hooks() []Hook {
	return c.hooks.ArtifactRecord
}

// Interceptors returns the client interceptors.
func (c *ArtifactRecordClient) Interceptors() []Interceptor {
	return c.inters.ArtifactRecord
}

func (c *ArtifactRecordClient) mutate(ctx context.Context, m *ArtifactRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ArtifactRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ArtifactRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ArtifactRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ArtifactRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ArtifactRecord mutation op: %q", m.Op())
	}
}

// ChangeEntryClient is a client for the ChangeEntry schema.
type ChangeEntryClient struct {
	config
}

// NewChangeEntryClient returns a client for the ChangeEntry from the given config.
func NewChangeEntryClient(c config) *ChangeEntryClient {
	return &ChangeEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `changeentry.Hooks(f(g(h())))`.
func (c *ChangeEntryClient) Use(hooks ...Hook) {
	c.hooks.ChangeEntry = append(c.hooks.ChangeEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `changeentry.Intercept(f(g(h())))`.
func (c *ChangeEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChangeEntry = append(c.inters.ChangeEntry, interceptors...)
}

// Create returns a builder for creating a ChangeEntry entity.
func (c *ChangeEntryClient) Create() *ChangeEntryCreate {
	mutation := newChangeEntryMutation(c.config, OpCreate)
	return &ChangeEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChangeEntry entities.
func (c *ChangeEntryClient) CreateBulk(builders ...*ChangeEntryCreate) *ChangeEntryCreateBulk {
	return &ChangeEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChangeEntryClient) MapCreateBulk(slice any, setFunc func(*ChangeEntryCreate, int)) *ChangeEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChangeEntryCreateBulk{err: fmt.Errorf("calling to ChangeEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChangeEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChangeEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChangeEntry.
func (c *ChangeEntryClient) Update() *ChangeEntryUpdate {
	mutation := newChangeEntryMutation(c.config, OpUpdate)
	return &ChangeEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChangeEntryClient) UpdateOne(_m *ChangeEntry) *ChangeEntryUpdateOne {
	mutation := newChangeEntryMutation(c.config, OpUpdateOne, withChangeEntry(_m))
	return &ChangeEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChangeEntryClient) UpdateOneID(id string) *ChangeEntryUpdateOne {
	mutation := newChangeEntryMutation(c.config, OpUpdateOne, withChangeEntryID(id))
	return &ChangeEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChangeEntry.
func (c *ChangeEntryClient) Delete() *ChangeEntryDelete {
	mutation := newChangeEntryMutation(c.config, OpDelete)
	return &ChangeEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChangeEntryClient) DeleteOne(_m *ChangeEntry) *ChangeEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChangeEntryClient) DeleteOneID(id string) *ChangeEntryDeleteOne {
	builder := c.Delete().Where(changeentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChangeEntryDeleteOne{builder}
}

// Query returns a query builder for ChangeEntry.
func (c *ChangeEntryClient) Query() *ChangeEntryQuery {
	return &ChangeEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChangeEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a ChangeEntry entity by its id.
func (c *ChangeEntryClient) Get(ctx context.Context, id string) (*ChangeEntry, error) {
	return c.Query().Where(changeentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChangeEntryClient) GetX(ctx context.Context, id string) *ChangeEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ChangeEntryClient) Hooks() []Hook {
	return c.hooks.ChangeEntry
}

// Interceptors returns the client interceptors.
func (c *ChangeEntryClient) Interceptors() []Interceptor {
	return c.inters.ChangeEntry
}

func (c *ChangeEntryClient) mutate(ctx context.Context, m *ChangeEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChangeEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChangeEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChangeEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChangeEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChangeEntry mutation op: %q", m.Op())
	}
}

// LockMirrorClient is a client for the LockMirror schema.
type LockMirrorClient struct {
	config
}

// NewLockMirrorClient returns a client for the LockMirror from the given config.
func NewLockMirrorClient(c config) *LockMirrorClient {
	return &LockMirrorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lockmirror.Hooks(f(g(h())))`.
func (c *LockMirrorClient) Use(hooks ...Hook) {
	c.hooks.LockMirror = append(c.hooks.LockMirror, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lockmirror.Intercept(f(g(h())))`.
func (c *LockMirrorClient) Intercept(interceptors ...Interceptor) {
	c.inters.LockMirror = append(c.inters.LockMirror, interceptors...)
}

// Create returns a builder for creating a LockMirror entity.
func (c *LockMirrorClient) Create() *LockMirrorCreate {
	mutation := newLockMirrorMutation(c.config, OpCreate)
	return &LockMirrorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LockMirror entities.
func (c *LockMirrorClient) CreateBulk(builders ...*LockMirrorCreate) *LockMirrorCreateBulk {
	return &LockMirrorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LockMirrorClient) MapCreateBulk(slice any, setFunc func(*LockMirrorCreate, int)) *LockMirrorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LockMirrorCreateBulk{err: fmt.Errorf("calling to LockMirrorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LockMirrorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LockMirrorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LockMirror.
func (c *LockMirrorClient) Update() *LockMirrorUpdate {
	mutation := newLockMirrorMutation(c.config, OpUpdate)
	return &LockMirrorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LockMirrorClient) UpdateOne(_m *LockMirror) *LockMirrorUpdateOne {
	mutation := newLockMirrorMutation(c.config, OpUpdateOne, withLockMirror(_m))
	return &LockMirrorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LockMirrorClient) UpdateOneID(id string) *LockMirrorUpdateOne {
	mutation := newLockMirrorMutation(c.config, OpUpdateOne, withLockMirrorID(id))
	return &LockMirrorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LockMirror.
func (c *LockMirrorClient) Delete() *LockMirrorDelete {
	mutation := newLockMirrorMutation(c.config, OpDelete)
	return &LockMirrorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LockMirrorClient) DeleteOne(_m *LockMirror) *LockMirrorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LockMirrorClient) DeleteOneID(id string) *LockMirrorDeleteOne {
	builder := c.Delete().Where(lockmirror.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LockMirrorDeleteOne{builder}
}

// Query returns a query builder for LockMirror.
func (c *LockMirrorClient) Query() *LockMirrorQuery {
	return &LockMirrorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLockMirror},
		inters: c.Interceptors(),
	}
}

// Get returns a LockMirror entity by its id.
func (c *LockMirrorClient) Get(ctx context.Context, id string) (*LockMirror, error) {
	return c.Query().Where(lockmirror.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LockMirrorClient) GetX(ctx context.Context, id string) *LockMirror {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LockMirrorClient) Hooks() []Hook {
	return c.hooks.LockMirror
}

// Interceptors returns the client interceptors.
func (c *LockMirrorClient) Interceptors() []Interceptor {
	return c.inters.LockMirror
}

func (c *LockMirrorClient) mutate(ctx context.Context, m *LockMirrorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LockMirrorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LockMirrorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LockMirrorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LockMirrorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LockMirror mutation op: %q", m.Op())
	}
}

// ProjectClient is a client for the Project schema.
type ProjectClient struct {
	config
}

// NewProjectClient returns a client for the Project from the given config.
func NewProjectClient(c config) *ProjectClient {
	return &ProjectClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `project.Hooks(f(g(h())))`.
func (c *ProjectClient) Use(hooks ...Hook) {
	c.hooks.Project = append(c.hooks.Project, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `project.Intercept(f(g(h())))`.
func (c *ProjectClient) Intercept(interceptors ...Interceptor) {
	c.inters.Project = append(c.inters.Project, interceptors...)
}

// Create returns a builder for creating a Project entity.
func (c *ProjectClient) Create() *ProjectCreate {
	mutation := newProjectMutation(c.config, OpCreate)
	return &ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Project entities.
func (c *ProjectClient) CreateBulk(builders ...*ProjectCreate) *ProjectCreateBulk {
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectClient) MapCreateBulk(slice any, setFunc func(*ProjectCreate, int)) *ProjectCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectCreateBulk{err: fmt.Errorf("calling to ProjectClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Project.
func (c *ProjectClient) Update() *ProjectUpdate {
	mutation := newProjectMutation(c.config, OpUpdate)
	return &ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectClient) UpdateOne(_m *Project) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProject(_m))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectClient) UpdateOneID(id string) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProjectID(id))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Project.
func (c *ProjectClient) Delete() *ProjectDelete {
	mutation := newProjectMutation(c.config, OpDelete)
	return &ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectClient) DeleteOne(_m *Project) *ProjectDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectClient) DeleteOneID(id string) *ProjectDeleteOne {
	builder := c.Delete().Where(project.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectDeleteOne{builder}
}

// Query returns a query builder for Project.
func (c *ProjectClient) Query() *ProjectQuery {
	return &ProjectQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProject},
		inters: c.Interceptors(),
	}
}

// Get returns a Project entity by its id.
func (c *ProjectClient) Get(ctx context.Context, id string) (*Project, error) {
	return c.Query().Where(project.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectClient) GetX(ctx context.Context, id string) *Project {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProjectClient) Hooks() []Hook {
	return c.hooks.Project
}

// Interceptors returns the client interceptors.
func (c *ProjectClient) Interceptors() []Interceptor {
	return c.inters.Project
}

func (c *ProjectClient) mutate(ctx context.Context, m *ProjectMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Project mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ApprovalRecord, ArtifactRecord, ChangeEntry, LockMirror, Project []ent.Hook
	}
	inters struct {
		ApprovalRecord, ArtifactRecord, ChangeEntry, LockMirror,
		Project []ent.Interceptor
	}
)
