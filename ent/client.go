// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/casemine/casemine/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/casemine/casemine/ent/admingrouplink"
	"github.com/casemine/casemine/ent/adminsession"
	"github.com/casemine/casemine/ent/caseevidence"
	"github.com/casemine/casemine/ent/groupbuffer"
	"github.com/casemine/casemine/ent/historytoken"
	"github.com/casemine/casemine/ent/job"
	"github.com/casemine/casemine/ent/rawmessage"
	"github.com/casemine/casemine/ent/reaction"
	"github.com/casemine/casemine/ent/sentreply"
	"github.com/casemine/casemine/ent/supportcase"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AdminGroupLink is the client for interacting with the AdminGroupLink builders.
	AdminGroupLink *AdminGroupLinkClient
	// AdminSession is the client for interacting with the AdminSession builders.
	AdminSession *AdminSessionClient
	// CaseEvidence is the client for interacting with the CaseEvidence builders.
	CaseEvidence *CaseEvidenceClient
	// GroupBuffer is the client for interacting with the GroupBuffer builders.
	GroupBuffer *GroupBufferClient
	// HistoryToken is the client for interacting with the HistoryToken builders.
	HistoryToken *HistoryTokenClient
	// Job is the client for interacting with the Job builders.
	Job *JobClient
	// RawMessage is the client for interacting with the RawMessage builders.
	RawMessage *RawMessageClient
	// Reaction is the client for interacting with the Reaction builders.
	Reaction *ReactionClient
	// SentReply is the client for interacting with the SentReply builders.
	SentReply *SentReplyClient
	// SupportCase is the client for interacting with the SupportCase builders.
	SupportCase *SupportCaseClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AdminGroupLink = NewAdminGroupLinkClient(c.config)
	c.AdminSession = NewAdminSessionClient(c.config)
	c.CaseEvidence = NewCaseEvidenceClient(c.config)
	c.GroupBuffer = NewGroupBufferClient(c.config)
	c.HistoryToken = NewHistoryTokenClient(c.config)
	c.Job = NewJobClient(c.config)
	c.RawMessage = NewRawMessageClient(c.config)
	c.Reaction = NewReactionClient(c.config)
	c.SentReply = NewSentReplyClient(c.config)
	c.SupportCase = NewSupportCaseClient(c.config)
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
		AdminGroupLink: NewAdminGroupLinkClient(cfg),
		AdminSession:   NewAdminSessionClient(cfg),
		CaseEvidence:   NewCaseEvidenceClient(cfg),
		GroupBuffer:    NewGroupBufferClient(cfg),
		HistoryToken:   NewHistoryTokenClient(cfg),
		Job:            NewJobClient(cfg),
		RawMessage:     NewRawMessageClient(cfg),
		Reaction:       NewReactionClient(cfg),
		SentReply:      NewSentReplyClient(cfg),
		SupportCase:    NewSupportCaseClient(cfg),
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
		AdminGroupLink: NewAdminGroupLinkClient(cfg),
		AdminSession:   NewAdminSessionClient(cfg),
		CaseEvidence:   NewCaseEvidenceClient(cfg),
		GroupBuffer:    NewGroupBufferClient(cfg),
		HistoryToken:   NewHistoryTokenClient(cfg),
		Job:            NewJobClient(cfg),
		RawMessage:     NewRawMessageClient(cfg),
		Reaction:       NewReactionClient(cfg),
		SentReply:      NewSentReplyClient(cfg),
		SupportCase:    NewSupportCaseClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AdminGroupLink.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.AdminGroupLink, c.AdminSession, c.CaseEvidence, c.GroupBuffer, c.HistoryToken,
		c.Job, c.RawMessage, c.Reaction, c.SentReply, c.SupportCase,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AdminGroupLink, c.AdminSession, c.CaseEvidence, c.GroupBuffer, c.HistoryToken,
		c.Job, c.RawMessage, c.Reaction, c.SentReply, c.SupportCase,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AdminGroupLinkMutation:
		return c.AdminGroupLink.mutate(ctx, m)
	case *AdminSessionMutation:
		return c.AdminSession.mutate(ctx, m)
	case *CaseEvidenceMutation:
		return c.CaseEvidence.mutate(ctx, m)
	case *GroupBufferMutation:
		return c.GroupBuffer.mutate(ctx, m)
	case *HistoryTokenMutation:
		return c.HistoryToken.mutate(ctx, m)
	case *JobMutation:
		return c.Job.mutate(ctx, m)
	case *RawMessageMutation:
		return c.RawMessage.mutate(ctx, m)
	case *ReactionMutation:
		return c.Reaction.mutate(ctx, m)
	case *SentReplyMutation:
		return c.SentReply.mutate(ctx, m)
	case *SupportCaseMutation:
		return c.SupportCase.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AdminGroupLinkClient is a client for the AdminGroupLink schema.
type AdminGroupLinkClient struct {
	config
}

// NewAdminGroupLinkClient returns a client for the AdminGroupLink from the given config.
func NewAdminGroupLinkClient(c config) *AdminGroupLinkClient {
	return &AdminGroupLinkClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `admingrouplink.Hooks(f(g(h())))`.
func (c *AdminGroupLinkClient) Use(hooks ...Hook) {
	c.hooks.AdminGroupLink = append(c.hooks.AdminGroupLink, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `admingrouplink.Intercept(f(g(h())))`.
func (c *AdminGroupLinkClient) Intercept(interceptors ...Interceptor) {
	c.inters.AdminGroupLink = append(c.inters.AdminGroupLink, interceptors...)
}

// Create returns a builder for creating a AdminGroupLink entity.
func (c *AdminGroupLinkClient) Create() *AdminGroupLinkCreate {
	mutation := newAdminGroupLinkMutation(c.config, OpCreate)
	return &AdminGroupLinkCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AdminGroupLink entities.
func (c *AdminGroupLinkClient) CreateBulk(builders ...*AdminGroupLinkCreate) *AdminGroupLinkCreateBulk {
	return &AdminGroupLinkCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AdminGroupLinkClient) MapCreateBulk(slice any, setFunc func(*AdminGroupLinkCreate, int)) *AdminGroupLinkCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AdminGroupLinkCreateBulk{err: fmt.Errorf("calling to AdminGroupLinkClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AdminGroupLinkCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AdminGroupLinkCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AdminGroupLink.
func (c *AdminGroupLinkClient) Update() *AdminGroupLinkUpdate {
	mutation := newAdminGroupLinkMutation(c.config, OpUpdate)
	return &AdminGroupLinkUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AdminGroupLinkClient) UpdateOne(_m *AdminGroupLink) *AdminGroupLinkUpdateOne {
	mutation := newAdminGroupLinkMutation(c.config, OpUpdateOne, withAdminGroupLink(_m))
	return &AdminGroupLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AdminGroupLinkClient) UpdateOneID(id int) *AdminGroupLinkUpdateOne {
	mutation := newAdminGroupLinkMutation(c.config, OpUpdateOne, withAdminGroupLinkID(id))
	return &AdminGroupLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AdminGroupLink.
func (c *AdminGroupLinkClient) Delete() *AdminGroupLinkDelete {
	mutation := newAdminGroupLinkMutation(c.config, OpDelete)
	return &AdminGroupLinkDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AdminGroupLinkClient) DeleteOne(_m *AdminGroupLink) *AdminGroupLinkDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AdminGroupLinkClient) DeleteOneID(id int) *AdminGroupLinkDeleteOne {
	builder := c.Delete().Where(admingrouplink.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AdminGroupLinkDeleteOne{builder}
}

// Query returns a query builder for AdminGroupLink.
func (c *AdminGroupLinkClient) Query() *AdminGroupLinkQuery {
	return &AdminGroupLinkQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAdminGroupLink},
		inters: c.Interceptors(),
	}
}

// Get returns a AdminGroupLink entity by its id.
func (c *AdminGroupLinkClient) Get(ctx context.Context, id int) (*AdminGroupLink, error) {
	return c.Query().Where(admingrouplink.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AdminGroupLinkClient) GetX(ctx context.Context, id int) *AdminGroupLink {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AdminGroupLinkClient) Hooks() []Hook {
	return c.hooks.AdminGroupLink
}

// Interceptors returns the client interceptors.
func (c *AdminGroupLinkClient) Interceptors() []Interceptor {
	return c.inters.AdminGroupLink
}

func (c *AdminGroupLinkClient) mutate(ctx context.Context, m *AdminGroupLinkMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AdminGroupLinkCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AdminGroupLinkUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AdminGroupLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AdminGroupLinkDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AdminGroupLink mutation op: %q", m.Op())
	}
}

// AdminSessionClient is a client for the AdminSession schema.
type AdminSessionClient struct {
	config
}

// NewAdminSessionClient returns a client for the AdminSession from the given config.
func NewAdminSessionClient(c config) *AdminSessionClient {
	return &AdminSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `adminsession.Hooks(f(g(h())))`.
func (c *AdminSessionClient) Use(hooks ...Hook) {
	c.hooks.AdminSession = append(c.hooks.AdminSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `adminsession.Intercept(f(g(h())))`.
func (c *AdminSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AdminSession = append(c.inters.AdminSession, interceptors...)
}

// Create returns a builder for creating a AdminSession entity.
func (c *AdminSessionClient) Create() *AdminSessionCreate {
	mutation := newAdminSessionMutation(c.config, OpCreate)
	return &AdminSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AdminSession entities.
func (c *AdminSessionClient) CreateBulk(builders ...*AdminSessionCreate) *AdminSessionCreateBulk {
	return &AdminSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AdminSessionClient) MapCreateBulk(slice any, setFunc func(*AdminSessionCreate, int)) *AdminSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AdminSessionCreateBulk{err: fmt.Errorf("calling to AdminSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AdminSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AdminSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AdminSession.
func (c *AdminSessionClient) Update() *AdminSessionUpdate {
	mutation := newAdminSessionMutation(c.config, OpUpdate)
	return &AdminSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AdminSessionClient) UpdateOne(_m *AdminSession) *AdminSessionUpdateOne {
	mutation := newAdminSessionMutation(c.config, OpUpdateOne, withAdminSession(_m))
	return &AdminSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AdminSessionClient) UpdateOneID(id string) *AdminSessionUpdateOne {
	mutation := newAdminSessionMutation(c.config, OpUpdateOne, withAdminSessionID(id))
	return &AdminSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AdminSession.
func (c *AdminSessionClient) Delete() *AdminSessionDelete {
	mutation := newAdminSessionMutation(c.config, OpDelete)
	return &AdminSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AdminSessionClient) DeleteOne(_m *AdminSession) *AdminSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AdminSessionClient) DeleteOneID(id string) *AdminSessionDeleteOne {
	builder := c.Delete().Where(adminsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AdminSessionDeleteOne{builder}
}

// Query returns a query builder for AdminSession.
func (c *AdminSessionClient) Query() *AdminSessionQuery {
	return &AdminSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAdminSession},
		inters: c.Interceptors(),
	}
}

// Get returns a AdminSession entity by its id.
func (c *AdminSessionClient) Get(ctx context.Context, id string) (*AdminSession, error) {
	return c.Query().Where(adminsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AdminSessionClient) GetX(ctx context.Context, id string) *AdminSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AdminSessionClient) Hooks() []Hook {
	return c.hooks.AdminSession
}

// Interceptors returns the client interceptors.
func (c *AdminSessionClient) Interceptors() []Interceptor {
	return c.inters.AdminSession
}

func (c *AdminSessionClient) mutate(ctx context.Context, m *AdminSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AdminSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AdminSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AdminSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AdminSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AdminSession mutation op: %q", m.Op())
	}
}

// CaseEvidenceClient is a client for the CaseEvidence schema.
type CaseEvidenceClient struct {
	config
}

// NewCaseEvidenceClient returns a client for the CaseEvidence from the given config.
func NewCaseEvidenceClient(c config) *CaseEvidenceClient {
	return &CaseEvidenceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `caseevidence.Hooks(f(g(h())))`.
func (c *CaseEvidenceClient) Use(hooks ...Hook) {
	c.hooks.CaseEvidence = append(c.hooks.CaseEvidence, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `caseevidence.Intercept(f(g(h())))`.
func (c *CaseEvidenceClient) Intercept(interceptors ...Interceptor) {
	c.inters.CaseEvidence = append(c.inters.CaseEvidence, interceptors...)
}

// Create returns a builder for creating a CaseEvidence entity.
func (c *CaseEvidenceClient) Create() *CaseEvidenceCreate {
	mutation := newCaseEvidenceMutation(c.config, OpCreate)
	return &CaseEvidenceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CaseEvidence entities.
func (c *CaseEvidenceClient) CreateBulk(builders ...*CaseEvidenceCreate) *CaseEvidenceCreateBulk {
	return &CaseEvidenceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CaseEvidenceClient) MapCreateBulk(slice any, setFunc func(*CaseEvidenceCreate, int)) *CaseEvidenceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CaseEvidenceCreateBulk{err: fmt.Errorf("calling to CaseEvidenceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CaseEvidenceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CaseEvidenceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CaseEvidence.
func (c *CaseEvidenceClient) Update() *CaseEvidenceUpdate {
	mutation := newCaseEvidenceMutation(c.config, OpUpdate)
	return &CaseEvidenceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CaseEvidenceClient) UpdateOne(_m *CaseEvidence) *CaseEvidenceUpdateOne {
	mutation := newCaseEvidenceMutation(c.config, OpUpdateOne, withCaseEvidence(_m))
	return &CaseEvidenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CaseEvidenceClient) UpdateOneID(id int) *CaseEvidenceUpdateOne {
	mutation := newCaseEvidenceMutation(c.config, OpUpdateOne, withCaseEvidenceID(id))
	return &CaseEvidenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CaseEvidence.
func (c *CaseEvidenceClient) Delete() *CaseEvidenceDelete {
	mutation := newCaseEvidenceMutation(c.config, OpDelete)
	return &CaseEvidenceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CaseEvidenceClient) DeleteOne(_m *CaseEvidence) *CaseEvidenceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CaseEvidenceClient) DeleteOneID(id int) *CaseEvidenceDeleteOne {
	builder := c.Delete().Where(caseevidence.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CaseEvidenceDeleteOne{builder}
}

// Query returns a query builder for CaseEvidence.
func (c *CaseEvidenceClient) Query() *CaseEvidenceQuery {
	return &CaseEvidenceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCaseEvidence},
		inters: c.Interceptors(),
	}
}

// Get returns a CaseEvidence entity by its id.
func (c *CaseEvidenceClient) Get(ctx context.Context, id int) (*CaseEvidence, error) {
	return c.Query().Where(caseevidence.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CaseEvidenceClient) GetX(ctx context.Context, id int) *CaseEvidence {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySupportCase queries the support_case edge of a CaseEvidence.
func (c *CaseEvidenceClient) QuerySupportCase(_m *CaseEvidence) *SupportCaseQuery {
	query := (&SupportCaseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(caseevidence.Table, caseevidence.FieldID, id),
			sqlgraph.To(supportcase.Table, supportcase.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, caseevidence.SupportCaseTable, caseevidence.SupportCaseColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CaseEvidenceClient) Hooks() []Hook {
	return c.hooks.CaseEvidence
}

// Interceptors returns the client interceptors.
func (c *CaseEvidenceClient) Interceptors() []Interceptor {
	return c.inters.CaseEvidence
}

func (c *CaseEvidenceClient) mutate(ctx context.Context, m *CaseEvidenceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CaseEvidenceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CaseEvidenceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CaseEvidenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CaseEvidenceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CaseEvidence mutation op: %q", m.Op())
	}
}

// GroupBufferClient is a client for the GroupBuffer schema.
type GroupBufferClient struct {
	config
}

// NewGroupBufferClient returns a client for the GroupBuffer from the given config.
func NewGroupBufferClient(c config) *GroupBufferClient {
	return &GroupBufferClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `groupbuffer.Hooks(f(g(h())))`.
func (c *GroupBufferClient) Use(hooks ...Hook) {
	c.hooks.GroupBuffer = append(c.hooks.GroupBuffer, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `groupbuffer.Intercept(f(g(h())))`.
func (c *GroupBufferClient) Intercept(interceptors ...Interceptor) {
	c.inters.GroupBuffer = append(c.inters.GroupBuffer, interceptors...)
}

// Create returns a builder for creating a GroupBuffer entity.
func (c *GroupBufferClient) Create() *GroupBufferCreate {
	mutation := newGroupBufferMutation(c.config, OpCreate)
	return &GroupBufferCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GroupBuffer entities.
func (c *GroupBufferClient) CreateBulk(builders ...*GroupBufferCreate) *GroupBufferCreateBulk {
	return &GroupBufferCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GroupBufferClient) MapCreateBulk(slice any, setFunc func(*GroupBufferCreate, int)) *GroupBufferCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GroupBufferCreateBulk{err: fmt.Errorf("calling to GroupBufferClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GroupBufferCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GroupBufferCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GroupBuffer.
func (c *GroupBufferClient) Update() *GroupBufferUpdate {
	mutation := newGroupBufferMutation(c.config, OpUpdate)
	return &GroupBufferUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GroupBufferClient) UpdateOne(_m *GroupBuffer) *GroupBufferUpdateOne {
	mutation := newGroupBufferMutation(c.config, OpUpdateOne, withGroupBuffer(_m))
	return &GroupBufferUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GroupBufferClient) UpdateOneID(id string) *GroupBufferUpdateOne {
	mutation := newGroupBufferMutation(c.config, OpUpdateOne, withGroupBufferID(id))
	return &GroupBufferUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GroupBuffer.
func (c *GroupBufferClient) Delete() *GroupBufferDelete {
	mutation := newGroupBufferMutation(c.config, OpDelete)
	return &GroupBufferDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GroupBufferClient) DeleteOne(_m *GroupBuffer) *GroupBufferDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GroupBufferClient) DeleteOneID(id string) *GroupBufferDeleteOne {
	builder := c.Delete().Where(groupbuffer.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GroupBufferDeleteOne{builder}
}

// Query returns a query builder for GroupBuffer.
func (c *GroupBufferClient) Query() *GroupBufferQuery {
	return &GroupBufferQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGroupBuffer},
		inters: c.Interceptors(),
	}
}

// Get returns a GroupBuffer entity by its id.
func (c *GroupBufferClient) Get(ctx context.Context, id string) (*GroupBuffer, error) {
	return c.Query().Where(groupbuffer.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GroupBufferClient) GetX(ctx context.Context, id string) *GroupBuffer {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GroupBufferClient) Hooks() []Hook {
	return c.hooks.GroupBuffer
}

// Interceptors returns the client interceptors.
func (c *GroupBufferClient) Interceptors() []Interceptor {
	return c.inters.GroupBuffer
}

func (c *GroupBufferClient) mutate(ctx context.Context, m *GroupBufferMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GroupBufferCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GroupBufferUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GroupBufferUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GroupBufferDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GroupBuffer mutation op: %q", m.Op())
	}
}

// HistoryTokenClient is a client for the HistoryToken schema.
type HistoryTokenClient struct {
	config
}

// NewHistoryTokenClient returns a client for the HistoryToken from the given config.
func NewHistoryTokenClient(c config) *HistoryTokenClient {
	return &HistoryTokenClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `historytoken.Hooks(f(g(h())))`.
func (c *HistoryTokenClient) Use(hooks ...Hook) {
	c.hooks.HistoryToken = append(c.hooks.HistoryToken, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `historytoken.Intercept(f(g(h())))`.
func (c *HistoryTokenClient) Intercept(interceptors ...Interceptor) {
	c.inters.HistoryToken = append(c.inters.HistoryToken, interceptors...)
}

// Create returns a builder for creating a HistoryToken entity.
func (c *HistoryTokenClient) Create() *HistoryTokenCreate {
	mutation := newHistoryTokenMutation(c.config, OpCreate)
	return &HistoryTokenCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of HistoryToken entities.
func (c *HistoryTokenClient) CreateBulk(builders ...*HistoryTokenCreate) *HistoryTokenCreateBulk {
	return &HistoryTokenCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HistoryTokenClient) MapCreateBulk(slice any, setFunc func(*HistoryTokenCreate, int)) *HistoryTokenCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HistoryTokenCreateBulk{err: fmt.Errorf("calling to HistoryTokenClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HistoryTokenCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HistoryTokenCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for HistoryToken.
func (c *HistoryTokenClient) Update() *HistoryTokenUpdate {
	mutation := newHistoryTokenMutation(c.config, OpUpdate)
	return &HistoryTokenUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HistoryTokenClient) UpdateOne(_m *HistoryToken) *HistoryTokenUpdateOne {
	mutation := newHistoryTokenMutation(c.config, OpUpdateOne, withHistoryToken(_m))
	return &HistoryTokenUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HistoryTokenClient) UpdateOneID(id string) *HistoryTokenUpdateOne {
	mutation := newHistoryTokenMutation(c.config, OpUpdateOne, withHistoryTokenID(id))
	return &HistoryTokenUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for HistoryToken.
func (c *HistoryTokenClient) Delete() *HistoryTokenDelete {
	mutation := newHistoryTokenMutation(c.config, OpDelete)
	return &HistoryTokenDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HistoryTokenClient) DeleteOne(_m *HistoryToken) *HistoryTokenDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HistoryTokenClient) DeleteOneID(id string) *HistoryTokenDeleteOne {
	builder := c.Delete().Where(historytoken.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HistoryTokenDeleteOne{builder}
}

// Query returns a query builder for HistoryToken.
func (c *HistoryTokenClient) Query() *HistoryTokenQuery {
	return &HistoryTokenQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHistoryToken},
		inters: c.Interceptors(),
	}
}

// Get returns a HistoryToken entity by its id.
func (c *HistoryTokenClient) Get(ctx context.Context, id string) (*HistoryToken, error) {
	return c.Query().Where(historytoken.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HistoryTokenClient) GetX(ctx context.Context, id string) *HistoryToken {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *HistoryTokenClient) Hooks() []Hook {
	return c.hooks.HistoryToken
}

// Interceptors returns the client interceptors.
func (c *HistoryTokenClient) Interceptors() []Interceptor {
	return c.inters.HistoryToken
}

func (c *HistoryTokenClient) mutate(ctx context.Context, m *HistoryTokenMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HistoryTokenCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HistoryTokenUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HistoryTokenUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HistoryTokenDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown HistoryToken mutation op: %q", m.Op())
	}
}

// JobClient is a client for the Job schema.
type JobClient struct {
	config
}

// NewJobClient returns a client for the Job from the given config.
func NewJobClient(c config) *JobClient {
	return &JobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `job.Hooks(f(g(h())))`.
func (c *JobClient) Use(hooks ...Hook) {
	c.hooks.Job = append(c.hooks.Job, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `job.Intercept(f(g(h())))`.
func (c *JobClient) Intercept(interceptors ...Interceptor) {
	c.inters.Job = append(c.inters.Job, interceptors...)
}

// Create returns a builder for creating a Job entity.
func (c *JobClient) Create() *JobCreate {
	mutation := newJobMutation(c.config, OpCreate)
	return &JobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Job entities.
func (c *JobClient) CreateBulk(builders ...*JobCreate) *JobCreateBulk {
	return &JobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobClient) MapCreateBulk(slice any, setFunc func(*JobCreate, int)) *JobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobCreateBulk{err: fmt.Errorf("calling to JobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Job.
func (c *JobClient) Update() *JobUpdate {
	mutation := newJobMutation(c.config, OpUpdate)
	return &JobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobClient) UpdateOne(_m *Job) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJob(_m))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobClient) UpdateOneID(id string) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJobID(id))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Job.
func (c *JobClient) Delete() *JobDelete {
	mutation := newJobMutation(c.config, OpDelete)
	return &JobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobClient) DeleteOne(_m *Job) *JobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobClient) DeleteOneID(id string) *JobDeleteOne {
	builder := c.Delete().Where(job.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobDeleteOne{builder}
}

// Query returns a query builder for Job.
func (c *JobClient) Query() *JobQuery {
	return &JobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJob},
		inters: c.Interceptors(),
	}
}

// Get returns a Job entity by its id.
func (c *JobClient) Get(ctx context.Context, id string) (*Job, error) {
	return c.Query().Where(job.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobClient) GetX(ctx context.Context, id string) *Job {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *JobClient) Hooks() []Hook {
	return c.hooks.Job
}

// Interceptors returns the client interceptors.
func (c *JobClient) Interceptors() []Interceptor {
	return c.inters.Job
}

func (c *JobClient) mutate(ctx context.Context, m *JobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Job mutation op: %q", m.Op())
	}
}

// RawMessageClient is a client for the RawMessage schema.
type RawMessageClient struct {
	config
}

// NewRawMessageClient returns a client for the RawMessage from the given config.
func NewRawMessageClient(c config) *RawMessageClient {
	return &RawMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `rawmessage.Hooks(f(g(h())))`.
func (c *RawMessageClient) Use(hooks ...Hook) {
	c.hooks.RawMessage = append(c.hooks.RawMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `rawmessage.Intercept(f(g(h())))`.
func (c *RawMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.RawMessage = append(c.inters.RawMessage, interceptors...)
}

// Create returns a builder for creating a RawMessage entity.
func (c *RawMessageClient) Create() *RawMessageCreate {
	mutation := newRawMessageMutation(c.config, OpCreate)
	return &RawMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RawMessage entities.
func (c *RawMessageClient) CreateBulk(builders ...*RawMessageCreate) *RawMessageCreateBulk {
	return &RawMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RawMessageClient) MapCreateBulk(slice any, setFunc func(*RawMessageCreate, int)) *RawMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RawMessageCreateBulk{err: fmt.Errorf("calling to RawMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RawMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RawMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RawMessage.
func (c *RawMessageClient) Update() *RawMessageUpdate {
	mutation := newRawMessageMutation(c.config, OpUpdate)
	return &RawMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RawMessageClient) UpdateOne(_m *RawMessage) *RawMessageUpdateOne {
	mutation := newRawMessageMutation(c.config, OpUpdateOne, withRawMessage(_m))
	return &RawMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RawMessageClient) UpdateOneID(id string) *RawMessageUpdateOne {
	mutation := newRawMessageMutation(c.config, OpUpdateOne, withRawMessageID(id))
	return &RawMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RawMessage.
func (c *RawMessageClient) Delete() *RawMessageDelete {
	mutation := newRawMessageMutation(c.config, OpDelete)
	return &RawMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RawMessageClient) DeleteOne(_m *RawMessage) *RawMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RawMessageClient) DeleteOneID(id string) *RawMessageDeleteOne {
	builder := c.Delete().Where(rawmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RawMessageDeleteOne{builder}
}

// Query returns a query builder for RawMessage.
func (c *RawMessageClient) Query() *RawMessageQuery {
	return &RawMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRawMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a RawMessage entity by its id.
func (c *RawMessageClient) Get(ctx context.Context, id string) (*RawMessage, error) {
	return c.Query().Where(rawmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RawMessageClient) GetX(ctx context.Context, id string) *RawMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RawMessageClient) Hooks() []Hook {
	return c.hooks.RawMessage
}

// Interceptors returns the client interceptors.
func (c *RawMessageClient) Interceptors() []Interceptor {
	return c.inters.RawMessage
}

func (c *RawMessageClient) mutate(ctx context.Context, m *RawMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RawMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RawMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RawMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RawMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RawMessage mutation op: %q", m.Op())
	}
}

// ReactionClient is a client for the Reaction schema.
type ReactionClient struct {
	config
}

// NewReactionClient returns a client for the Reaction from the given config.
func NewReactionClient(c config) *ReactionClient {
	return &ReactionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reaction.Hooks(f(g(h())))`.
func (c *ReactionClient) Use(hooks ...Hook) {
	c.hooks.Reaction = append(c.hooks.Reaction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reaction.Intercept(f(g(h())))`.
func (c *ReactionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Reaction = append(c.inters.Reaction, interceptors...)
}

// Create returns a builder for creating a Reaction entity.
func (c *ReactionClient) Create() *ReactionCreate {
	mutation := newReactionMutation(c.config, OpCreate)
	return &ReactionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Reaction entities.
func (c *ReactionClient) CreateBulk(builders ...*ReactionCreate) *ReactionCreateBulk {
	return &ReactionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReactionClient) MapCreateBulk(slice any, setFunc func(*ReactionCreate, int)) *ReactionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReactionCreateBulk{err: fmt.Errorf("calling to ReactionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReactionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReactionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Reaction.
func (c *ReactionClient) Update() *ReactionUpdate {
	mutation := newReactionMutation(c.config, OpUpdate)
	return &ReactionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReactionClient) UpdateOne(_m *Reaction) *ReactionUpdateOne {
	mutation := newReactionMutation(c.config, OpUpdateOne, withReaction(_m))
	return &ReactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReactionClient) UpdateOneID(id int) *ReactionUpdateOne {
	mutation := newReactionMutation(c.config, OpUpdateOne, withReactionID(id))
	return &ReactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Reaction.
func (c *ReactionClient) Delete() *ReactionDelete {
	mutation := newReactionMutation(c.config, OpDelete)
	return &ReactionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReactionClient) DeleteOne(_m *Reaction) *ReactionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReactionClient) DeleteOneID(id int) *ReactionDeleteOne {
	builder := c.Delete().Where(reaction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReactionDeleteOne{builder}
}

// Query returns a query builder for Reaction.
func (c *ReactionClient) Query() *ReactionQuery {
	return &ReactionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReaction},
		inters: c.Interceptors(),
	}
}

// Get returns a Reaction entity by its id.
func (c *ReactionClient) Get(ctx context.Context, id int) (*Reaction, error) {
	return c.Query().Where(reaction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReactionClient) GetX(ctx context.Context, id int) *Reaction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReactionClient) Hooks() []Hook {
	return c.hooks.Reaction
}

// Interceptors returns the client interceptors.
func (c *ReactionClient) Interceptors() []Interceptor {
	return c.inters.Reaction
}

func (c *ReactionClient) mutate(ctx context.Context, m *ReactionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReactionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReactionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReactionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Reaction mutation op: %q", m.Op())
	}
}

// SentReplyClient is a client for the SentReply schema.
type SentReplyClient struct {
	config
}

// NewSentReplyClient returns a client for the SentReply from the given config.
func NewSentReplyClient(c config) *SentReplyClient {
	return &SentReplyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sentreply.Hooks(f(g(h())))`.
func (c *SentReplyClient) Use(hooks ...Hook) {
	c.hooks.SentReply = append(c.hooks.SentReply, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sentreply.Intercept(f(g(h())))`.
func (c *SentReplyClient) Intercept(interceptors ...Interceptor) {
	c.inters.SentReply = append(c.inters.SentReply, interceptors...)
}

// Create returns a builder for creating a SentReply entity.
func (c *SentReplyClient) Create() *SentReplyCreate {
	mutation := newSentReplyMutation(c.config, OpCreate)
	return &SentReplyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SentReply entities.
func (c *SentReplyClient) CreateBulk(builders ...*SentReplyCreate) *SentReplyCreateBulk {
	return &SentReplyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SentReplyClient) MapCreateBulk(slice any, setFunc func(*SentReplyCreate, int)) *SentReplyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SentReplyCreateBulk{err: fmt.Errorf("calling to SentReplyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SentReplyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SentReplyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SentReply.
func (c *SentReplyClient) Update() *SentReplyUpdate {
	mutation := newSentReplyMutation(c.config, OpUpdate)
	return &SentReplyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SentReplyClient) UpdateOne(_m *SentReply) *SentReplyUpdateOne {
	mutation := newSentReplyMutation(c.config, OpUpdateOne, withSentReply(_m))
	return &SentReplyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SentReplyClient) UpdateOneID(id int) *SentReplyUpdateOne {
	mutation := newSentReplyMutation(c.config, OpUpdateOne, withSentReplyID(id))
	return &SentReplyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SentReply.
func (c *SentReplyClient) Delete() *SentReplyDelete {
	mutation := newSentReplyMutation(c.config, OpDelete)
	return &SentReplyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SentReplyClient) DeleteOne(_m *SentReply) *SentReplyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SentReplyClient) DeleteOneID(id int) *SentReplyDeleteOne {
	builder := c.Delete().Where(sentreply.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SentReplyDeleteOne{builder}
}

// Query returns a query builder for SentReply.
func (c *SentReplyClient) Query() *SentReplyQuery {
	return &SentReplyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSentReply},
		inters: c.Interceptors(),
	}
}

// Get returns a SentReply entity by its id.
func (c *SentReplyClient) Get(ctx context.Context, id int) (*SentReply, error) {
	return c.Query().Where(sentreply.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SentReplyClient) GetX(ctx context.Context, id int) *SentReply {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SentReplyClient) Hooks() []Hook {
	return c.hooks.SentReply
}

// Interceptors returns the client interceptors.
func (c *SentReplyClient) Interceptors() []Interceptor {
	return c.inters.SentReply
}

func (c *SentReplyClient) mutate(ctx context.Context, m *SentReplyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SentReplyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SentReplyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SentReplyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SentReplyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SentReply mutation op: %q", m.Op())
	}
}

// SupportCaseClient is a client for the SupportCase schema.
type SupportCaseClient struct {
	config
}

// NewSupportCaseClient returns a client for the SupportCase from the given config.
func NewSupportCaseClient(c config) *SupportCaseClient {
	return &SupportCaseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `supportcase.Hooks(f(g(h())))`.
func (c *SupportCaseClient) Use(hooks ...Hook) {
	c.hooks.SupportCase = append(c.hooks.SupportCase, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `supportcase.Intercept(f(g(h())))`.
func (c *SupportCaseClient) Intercept(interceptors ...Interceptor) {
	c.inters.SupportCase = append(c.inters.SupportCase, interceptors...)
}

// Create returns a builder for creating a SupportCase entity.
func (c *SupportCaseClient) Create() *SupportCaseCreate {
	mutation := newSupportCaseMutation(c.config, OpCreate)
	return &SupportCaseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SupportCase entities.
func (c *SupportCaseClient) CreateBulk(builders ...*SupportCaseCreate) *SupportCaseCreateBulk {
	return &SupportCaseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SupportCaseClient) MapCreateBulk(slice any, setFunc func(*SupportCaseCreate, int)) *SupportCaseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SupportCaseCreateBulk{err: fmt.Errorf("calling to SupportCaseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SupportCaseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SupportCaseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SupportCase.
func (c *SupportCaseClient) Update() *SupportCaseUpdate {
	mutation := newSupportCaseMutation(c.config, OpUpdate)
	return &SupportCaseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SupportCaseClient) UpdateOne(_m *SupportCase) *SupportCaseUpdateOne {
	mutation := newSupportCaseMutation(c.config, OpUpdateOne, withSupportCase(_m))
	return &SupportCaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SupportCaseClient) UpdateOneID(id string) *SupportCaseUpdateOne {
	mutation := newSupportCaseMutation(c.config, OpUpdateOne, withSupportCaseID(id))
	return &SupportCaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SupportCase.
func (c *SupportCaseClient) Delete() *SupportCaseDelete {
	mutation := newSupportCaseMutation(c.config, OpDelete)
	return &SupportCaseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SupportCaseClient) DeleteOne(_m *SupportCase) *SupportCaseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SupportCaseClient) DeleteOneID(id string) *SupportCaseDeleteOne {
	builder := c.Delete().Where(supportcase.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SupportCaseDeleteOne{builder}
}

// Query returns a query builder for SupportCase.
func (c *SupportCaseClient) Query() *SupportCaseQuery {
	return &SupportCaseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSupportCase},
		inters: c.Interceptors(),
	}
}

// Get returns a SupportCase entity by its id.
func (c *SupportCaseClient) Get(ctx context.Context, id string) (*SupportCase, error) {
	return c.Query().Where(supportcase.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SupportCaseClient) GetX(ctx context.Context, id string) *SupportCase {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEvidence queries the evidence edge of a SupportCase.
func (c *SupportCaseClient) QueryEvidence(_m *SupportCase) *CaseEvidenceQuery {
	query := (&CaseEvidenceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(supportcase.Table, supportcase.FieldID, id),
			sqlgraph.To(caseevidence.Table, caseevidence.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, supportcase.EvidenceTable, supportcase.EvidenceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SupportCaseClient) Hooks() []Hook {
	return c.hooks.SupportCase
}

// Interceptors returns the client interceptors.
func (c *SupportCaseClient) Interceptors() []Interceptor {
	return c.inters.SupportCase
}

func (c *SupportCaseClient) mutate(ctx context.Context, m *SupportCaseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SupportCaseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SupportCaseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SupportCaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SupportCaseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SupportCase mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AdminGroupLink, AdminSession, CaseEvidence, GroupBuffer, HistoryToken, Job,
		RawMessage, Reaction, SentReply, SupportCase []ent.Hook
	}
	inters struct {
		AdminGroupLink, AdminSession, CaseEvidence, GroupBuffer, HistoryToken, Job,
		RawMessage, Reaction, SentReply, SupportCase []ent.Interceptor
	}
)
