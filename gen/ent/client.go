// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/machinehub/discovery-pipeline/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/machinehub/discovery-pipeline/gen/ent/catalogmachine"
	"github.com/machinehub/discovery-pipeline/gen/ent/discoveredurl"
	"github.com/machinehub/discovery-pipeline/gen/ent/manufacturer"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CatalogMachine is the client for interacting with the CatalogMachine builders.
	CatalogMachine *CatalogMachineClient
	// DiscoveredURL is the client for interacting with the DiscoveredURL builders.
	DiscoveredURL *DiscoveredURLClient
	// Manufacturer is the client for interacting with the Manufacturer builders.
	Manufacturer *ManufacturerClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CatalogMachine = NewCatalogMachineClient(c.config)
	c.DiscoveredURL = NewDiscoveredURLClient(c.config)
	c.Manufacturer = NewManufacturerClient(c.config)
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
		CatalogMachine: NewCatalogMachineClient(cfg),
		DiscoveredURL:  NewDiscoveredURLClient(cfg),
		Manufacturer:   NewManufacturerClient(cfg),
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
		CatalogMachine: NewCatalogMachineClient(cfg),
		DiscoveredURL:  NewDiscoveredURLClient(cfg),
		Manufacturer:   NewManufacturerClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CatalogMachine.
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
	c.CatalogMachine.Use(hooks...)
	c.DiscoveredURL.Use(hooks...)
	c.Manufacturer.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.CatalogMachine.Intercept(interceptors...)
	c.DiscoveredURL.Intercept(interceptors...)
	c.Manufacturer.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CatalogMachineMutation:
		return c.CatalogMachine.mutate(ctx, m)
	case *DiscoveredURLMutation:
		return c.DiscoveredURL.mutate(ctx, m)
	case *ManufacturerMutation:
		return c.Manufacturer.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CatalogMachineClient is a client for the CatalogMachine schema.
type CatalogMachineClient struct {
	config
}

// NewCatalogMachineClient returns a client for the CatalogMachine from the given config.
func NewCatalogMachineClient(c config) *CatalogMachineClient {
	return &CatalogMachineClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `catalogmachine.Hooks(f(g(h())))`.
func (c *CatalogMachineClient) Use(hooks ...Hook) {
	c.hooks.CatalogMachine = append(c.hooks.CatalogMachine, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `catalogmachine.Intercept(f(g(h())))`.
func (c *CatalogMachineClient) Intercept(interceptors ...Interceptor) {
	c.inters.CatalogMachine = append(c.inters.CatalogMachine, interceptors...)
}

// Create returns a builder for creating a CatalogMachine entity.
func (c *CatalogMachineClient) Create() *CatalogMachineCreate {
	mutation := newCatalogMachineMutation(c.config, OpCreate)
	return &CatalogMachineCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CatalogMachine entities.
func (c *CatalogMachineClient) CreateBulk(builders ...*CatalogMachineCreate) *CatalogMachineCreateBulk {
	return &CatalogMachineCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CatalogMachineClient) MapCreateBulk(slice any, setFunc func(*CatalogMachineCreate, int)) *CatalogMachineCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CatalogMachineCreateBulk{err: fmt.Errorf("calling to CatalogMachineClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CatalogMachineCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CatalogMachineCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CatalogMachine.
func (c *CatalogMachineClient) Update() *CatalogMachineUpdate {
	mutation := newCatalogMachineMutation(c.config, OpUpdate)
	return &CatalogMachineUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CatalogMachineClient) UpdateOne(_m *CatalogMachine) *CatalogMachineUpdateOne {
	mutation := newCatalogMachineMutation(c.config, OpUpdateOne, withCatalogMachine(_m))
	return &CatalogMachineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CatalogMachineClient) UpdateOneID(id uuid.UUID) *CatalogMachineUpdateOne {
	mutation := newCatalogMachineMutation(c.config, OpUpdateOne, withCatalogMachineID(id))
	return &CatalogMachineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CatalogMachine.
func (c *CatalogMachineClient) Delete() *CatalogMachineDelete {
	mutation := newCatalogMachineMutation(c.config, OpDelete)
	return &CatalogMachineDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CatalogMachineClient) DeleteOne(_m *CatalogMachine) *CatalogMachineDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CatalogMachineClient) DeleteOneID(id uuid.UUID) *CatalogMachineDeleteOne {
	builder := c.Delete().Where(catalogmachine.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CatalogMachineDeleteOne{builder}
}

// Query returns a query builder for CatalogMachine.
func (c *CatalogMachineClient) Query() *CatalogMachineQuery {
	return &CatalogMachineQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCatalogMachine},
		inters: c.Interceptors(),
	}
}

// Get returns a CatalogMachine entity by its id.
func (c *CatalogMachineClient) Get(ctx context.Context, id uuid.UUID) (*CatalogMachine, error) {
	return c.Query().Where(catalogmachine.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CatalogMachineClient) GetX(ctx context.Context, id uuid.UUID) *CatalogMachine {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryManufacturer queries the manufacturer edge of a CatalogMachine.
func (c *CatalogMachineClient) QueryManufacturer(_m *CatalogMachine) *ManufacturerQuery {
	query := (&ManufacturerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(catalogmachine.Table, catalogmachine.FieldID, id),
			sqlgraph.To(manufacturer.Table, manufacturer.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, catalogmachine.ManufacturerTable, catalogmachine.ManufacturerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CatalogMachineClient) Hooks() []Hook {
	return c.hooks.CatalogMachine
}

// Interceptors returns the client interceptors.
func (c *CatalogMachineClient) Interceptors() []Interceptor {
	return c.inters.CatalogMachine
}

func (c *CatalogMachineClient) mutate(ctx context.Context, m *CatalogMachineMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CatalogMachineCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CatalogMachineUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CatalogMachineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CatalogMachineDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CatalogMachine mutation op: %q", m.Op())
	}
}

// DiscoveredURLClient is a client for the DiscoveredURL schema.
type DiscoveredURLClient struct {
	config
}

// NewDiscoveredURLClient returns a client for the DiscoveredURL from the given config.
func NewDiscoveredURLClient(c config) *DiscoveredURLClient {
	return &DiscoveredURLClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `discoveredurl.Hooks(f(g(h())))`.
func (c *DiscoveredURLClient) Use(hooks ...Hook) {
	c.hooks.DiscoveredURL = append(c.hooks.DiscoveredURL, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `discoveredurl.Intercept(f(g(h())))`.
func (c *DiscoveredURLClient) Intercept(interceptors ...Interceptor) {
	c.inters.DiscoveredURL = append(c.inters.DiscoveredURL, interceptors...)
}

// Create returns a builder for creating a DiscoveredURL entity.
func (c *DiscoveredURLClient) Create() *DiscoveredURLCreate {
	mutation := newDiscoveredURLMutation(c.config, OpCreate)
	return &DiscoveredURLCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DiscoveredURL entities.
func (c *DiscoveredURLClient) CreateBulk(builders ...*DiscoveredURLCreate) *DiscoveredURLCreateBulk {
	return &DiscoveredURLCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DiscoveredURLClient) MapCreateBulk(slice any, setFunc func(*DiscoveredURLCreate, int)) *DiscoveredURLCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DiscoveredURLCreateBulk{err: fmt.Errorf("calling to DiscoveredURLClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DiscoveredURLCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DiscoveredURLCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DiscoveredURL.
func (c *DiscoveredURLClient) Update() *DiscoveredURLUpdate {
	mutation := newDiscoveredURLMutation(c.config, OpUpdate)
	return &DiscoveredURLUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DiscoveredURLClient) UpdateOne(_m *DiscoveredURL) *DiscoveredURLUpdateOne {
	mutation := newDiscoveredURLMutation(c.config, OpUpdateOne, withDiscoveredURL(_m))
	return &DiscoveredURLUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DiscoveredURLClient) UpdateOneID(id uuid.UUID) *DiscoveredURLUpdateOne {
	mutation := newDiscoveredURLMutation(c.config, OpUpdateOne, withDiscoveredURLID(id))
	return &DiscoveredURLUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DiscoveredURL.
func (c *DiscoveredURLClient) Delete() *DiscoveredURLDelete {
	mutation := newDiscoveredURLMutation(c.config, OpDelete)
	return &DiscoveredURLDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DiscoveredURLClient) DeleteOne(_m *DiscoveredURL) *DiscoveredURLDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DiscoveredURLClient) DeleteOneID(id uuid.UUID) *DiscoveredURLDeleteOne {
	builder := c.Delete().Where(discoveredurl.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DiscoveredURLDeleteOne{builder}
}

// Query returns a query builder for DiscoveredURL.
func (c *DiscoveredURLClient) Query() *DiscoveredURLQuery {
	return &DiscoveredURLQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDiscoveredURL},
		inters: c.Interceptors(),
	}
}

// Get returns a DiscoveredURL entity by its id.
func (c *DiscoveredURLClient) Get(ctx context.Context, id uuid.UUID) (*DiscoveredURL, error) {
	return c.Query().Where(discoveredurl.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DiscoveredURLClient) GetX(ctx context.Context, id uuid.UUID) *DiscoveredURL {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryManufacturer queries the manufacturer edge of a DiscoveredURL.
func (c *DiscoveredURLClient) QueryManufacturer(_m *DiscoveredURL) *ManufacturerQuery {
	query := (&ManufacturerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(discoveredurl.Table, discoveredurl.FieldID, id),
			sqlgraph.To(manufacturer.Table, manufacturer.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, discoveredurl.ManufacturerTable, discoveredurl.ManufacturerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DiscoveredURLClient) Hooks() []Hook {
	return c.hooks.DiscoveredURL
}

// Interceptors returns the client interceptors.
func (c *DiscoveredURLClient) Interceptors() []Interceptor {
	return c.inters.DiscoveredURL
}

func (c *DiscoveredURLClient) mutate(ctx context.Context, m *DiscoveredURLMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DiscoveredURLCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DiscoveredURLUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DiscoveredURLUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DiscoveredURLDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DiscoveredURL mutation op: %q", m.Op())
	}
}

// ManufacturerClient is a client for the Manufacturer schema.
type ManufacturerClient struct {
	config
}

// NewManufacturerClient returns a client for the Manufacturer from the given config.
func NewManufacturerClient(c config) *ManufacturerClient {
	return &ManufacturerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `manufacturer.Hooks(f(g(h())))`.
func (c *ManufacturerClient) Use(hooks ...Hook) {
	c.hooks.Manufacturer = append(c.hooks.Manufacturer, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `manufacturer.Intercept(f(g(h())))`.
func (c *ManufacturerClient) Intercept(interceptors ...Interceptor) {
	c.inters.Manufacturer = append(c.inters.Manufacturer, interceptors...)
}

// Create returns a builder for creating a Manufacturer entity.
func (c *ManufacturerClient) Create() *ManufacturerCreate {
	mutation := newManufacturerMutation(c.config, OpCreate)
	return &ManufacturerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Manufacturer entities.
func (c *ManufacturerClient) CreateBulk(builders ...*ManufacturerCreate) *ManufacturerCreateBulk {
	return &ManufacturerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ManufacturerClient) MapCreateBulk(slice any, setFunc func(*ManufacturerCreate, int)) *ManufacturerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ManufacturerCreateBulk{err: fmt.Errorf("calling to ManufacturerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ManufacturerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ManufacturerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Manufacturer.
func (c *ManufacturerClient) Update() *ManufacturerUpdate {
	mutation := newManufacturerMutation(c.config, OpUpdate)
	return &ManufacturerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ManufacturerClient) UpdateOne(_m *Manufacturer) *ManufacturerUpdateOne {
	mutation := newManufacturerMutation(c.config, OpUpdateOne, withManufacturer(_m))
	return &ManufacturerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ManufacturerClient) UpdateOneID(id uuid.UUID) *ManufacturerUpdateOne {
	mutation := newManufacturerMutation(c.config, OpUpdateOne, withManufacturerID(id))
	return &ManufacturerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Manufacturer.
func (c *ManufacturerClient) Delete() *ManufacturerDelete {
	mutation := newManufacturerMutation(c.config, OpDelete)
	return &ManufacturerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ManufacturerClient) DeleteOne(_m *Manufacturer) *ManufacturerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ManufacturerClient) DeleteOneID(id uuid.UUID) *ManufacturerDeleteOne {
	builder := c.Delete().Where(manufacturer.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ManufacturerDeleteOne{builder}
}

// Query returns a query builder for Manufacturer.
func (c *ManufacturerClient) Query() *ManufacturerQuery {
	return &ManufacturerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeManufacturer},
		inters: c.Interceptors(),
	}
}

// Get returns a Manufacturer entity by its id.
func (c *ManufacturerClient) Get(ctx context.Context, id uuid.UUID) (*Manufacturer, error) {
	return c.Query().Where(manufacturer.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ManufacturerClient) GetX(ctx context.Context, id uuid.UUID) *Manufacturer {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUrls queries the urls edge of a Manufacturer.
func (c *ManufacturerClient) QueryUrls(_m *Manufacturer) *DiscoveredURLQuery {
	query := (&DiscoveredURLClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(manufacturer.Table, manufacturer.FieldID, id),
			sqlgraph.To(discoveredurl.Table, discoveredurl.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, manufacturer.UrlsTable, manufacturer.UrlsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMachines queries the machines edge of a Manufacturer.
func (c *ManufacturerClient) QueryMachines(_m *Manufacturer) *CatalogMachineQuery {
	query := (&CatalogMachineClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(manufacturer.Table, manufacturer.FieldID, id),
			sqlgraph.To(catalogmachine.Table, catalogmachine.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, manufacturer.MachinesTable, manufacturer.MachinesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ManufacturerClient) Hooks() []Hook {
	return c.hooks.Manufacturer
}

// Interceptors returns the client interceptors.
func (c *ManufacturerClient) Interceptors() []Interceptor {
	return c.inters.Manufacturer
}

func (c *ManufacturerClient) mutate(ctx context.Context, m *ManufacturerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ManufacturerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ManufacturerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ManufacturerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ManufacturerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Manufacturer mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CatalogMachine, DiscoveredURL, Manufacturer []ent.Hook
	}
	inters struct {
		CatalogMachine, DiscoveredURL, Manufacturer []ent.Interceptor
	}
)
