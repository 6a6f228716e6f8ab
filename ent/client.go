// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/wuyifannppp/poco-agent/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/wuyifannppp/poco-agent/ent/agentmessage"
	"github.com/wuyifannppp/poco-agent/ent/agentrun"
	"github.com/wuyifannppp/poco-agent/ent/agentsession"
	"github.com/wuyifannppp/poco-agent/ent/mcppreset"
	"github.com/wuyifannppp/poco-agent/ent/project"
	"github.com/wuyifannppp/poco-agent/ent/skillpreset"
	"github.com/wuyifannppp/poco-agent/ent/toolexecution"
	"github.com/wuyifannppp/poco-agent/ent/usagelog"
	"github.com/wuyifannppp/poco-agent/ent/userenvvar"
	"github.com/wuyifannppp/poco-agent/ent/usermcpconfig"
	"github.com/wuyifannppp/poco-agent/ent/userskillinstall"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentMessage is the client for interacting with the AgentMessage builders.
	AgentMessage *AgentMessageClient
	// AgentRun is the client for interacting with the AgentRun builders.
	AgentRun *AgentRunClient
	// AgentSession is the client for interacting with the AgentSession builders.
	AgentSession *AgentSessionClient
	// McpPreset is the client for interacting with the McpPreset builders.
	McpPreset *McpPresetClient
	// Project is the client for interacting with the Project builders.
	Project *ProjectClient
	// SkillPreset is the client for interacting with the SkillPreset builders.
	SkillPreset *SkillPresetClient
	// ToolExecution is the client for interacting with the ToolExecution builders.
	ToolExecution *ToolExecutionClient
	// UsageLog is the client for interacting with the UsageLog builders.
	UsageLog *UsageLogClient
	// UserEnvVar is the client for interacting with the UserEnvVar builders.
	UserEnvVar *UserEnvVarClient
	// UserMcpConfig is the client for interacting with the UserMcpConfig builders.
	UserMcpConfig *UserMcpConfigClient
	// UserSkillInstall is the client for interacting with the UserSkillInstall builders.
	UserSkillInstall *UserSkillInstallClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentMessage = NewAgentMessageClient(c.config)
	c.AgentRun = NewAgentRunClient(c.config)
	c.AgentSession = NewAgentSessionClient(c.config)
	c.McpPreset = NewMcpPresetClient(c.config)
	c.Project = NewProjectClient(c.config)
	c.SkillPreset = NewSkillPresetClient(c.config)
	c.ToolExecution = NewToolExecutionClient(c.config)
	c.UsageLog = NewUsageLogClient(c.config)
	c.UserEnvVar = NewUserEnvVarClient(c.config)
	c.UserMcpConfig = NewUserMcpConfigClient(c.config)
	c.UserSkillInstall = NewUserSkillInstallClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		AgentMessage:     NewAgentMessageClient(cfg),
		AgentRun:         NewAgentRunClient(cfg),
		AgentSession:     NewAgentSessionClient(cfg),
		McpPreset:        NewMcpPresetClient(cfg),
		Project:          NewProjectClient(cfg),
		SkillPreset:      NewSkillPresetClient(cfg),
		ToolExecution:    NewToolExecutionClient(cfg),
		UsageLog:         NewUsageLogClient(cfg),
		UserEnvVar:       NewUserEnvVarClient(cfg),
		UserMcpConfig:    NewUserMcpConfigClient(cfg),
		UserSkillInstall: NewUserSkillInstallClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		AgentMessage:     NewAgentMessageClient(cfg),
		AgentRun:         NewAgentRunClient(cfg),
		AgentSession:     NewAgentSessionClient(cfg),
		McpPreset:        NewMcpPresetClient(cfg),
		Project:          NewProjectClient(cfg),
		SkillPreset:      NewSkillPresetClient(cfg),
		ToolExecution:    NewToolExecutionClient(cfg),
		UsageLog:         NewUsageLogClient(cfg),
		UserEnvVar:       NewUserEnvVarClient(cfg),
		UserMcpConfig:    NewUserMcpConfigClient(cfg),
		UserSkillInstall: NewUserSkillInstallClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentMessage.
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
		c.AgentMessage, c.AgentRun, c.AgentSession, c.McpPreset, c.Project,
		c.SkillPreset, c.ToolExecution, c.UsageLog, c.UserEnvVar, c.UserMcpConfig,
		c.UserSkillInstall,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AgentMessage, c.AgentRun, c.AgentSession, c.McpPreset, c.Project,
		c.SkillPreset, c.ToolExecution, c.UsageLog, c.UserEnvVar, c.UserMcpConfig,
		c.UserSkillInstall,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentMessageMutation:
		return c.AgentMessage.mutate(ctx, m)
	case *AgentRunMutation:
		return c.AgentRun.mutate(ctx, m)
	case *AgentSessionMutation:
		return c.AgentSession.mutate(ctx, m)
	case *McpPresetMutation:
		return c.McpPreset.mutate(ctx, m)
	case *ProjectMutation:
		return c.Project.mutate(ctx, m)
	case *SkillPresetMutation:
		return c.SkillPreset.mutate(ctx, m)
	case *ToolExecutionMutation:
		return c.ToolExecution.mutate(ctx, m)
	case *UsageLogMutation:
		return c.UsageLog.mutate(ctx, m)
	case *UserEnvVarMutation:
		return c.UserEnvVar.mutate(ctx, m)
	case *UserMcpConfigMutation:
		return c.UserMcpConfig.mutate(ctx, m)
	case *UserSkillInstallMutation:
		return c.UserSkillInstall.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentMessageClient is a client for the AgentMessage schema.
type AgentMessageClient struct {
	config
}

// NewAgentMessageClient returns a client for the AgentMessage from the given config.
func NewAgentMessageClient(c config) *AgentMessageClient {
	return &AgentMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentmessage.Hooks(f(g(h())))`.
func (c *AgentMessageClient) Use(hooks ...Hook) {
	c.hooks.AgentMessage = append(c.hooks.AgentMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentmessage.Intercept(f(g(h())))`.
func (c *AgentMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentMessage = append(c.inters.AgentMessage, interceptors...)
}

// Create returns a builder for creating a AgentMessage entity.
func (c *AgentMessageClient) Create() *AgentMessageCreate {
	mutation := newAgentMessageMutation(c.config, OpCreate)
	return &AgentMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentMessage entities.
func (c *AgentMessageClient) CreateBulk(builders ...*AgentMessageCreate) *AgentMessageCreateBulk {
	return &AgentMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentMessageClient) MapCreateBulk(slice any, setFunc func(*AgentMessageCreate, int)) *AgentMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentMessageCreateBulk{err: fmt.Errorf("calling to AgentMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentMessage.
func (c *AgentMessageClient) Update() *AgentMessageUpdate {
	mutation := newAgentMessageMutation(c.config, OpUpdate)
	return &AgentMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentMessageClient) UpdateOne(_m *AgentMessage) *AgentMessageUpdateOne {
	mutation := newAgentMessageMutation(c.config, OpUpdateOne, withAgentMessage(_m))
	return &AgentMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentMessageClient) UpdateOneID(id int) *AgentMessageUpdateOne {
	mutation := newAgentMessageMutation(c.config, OpUpdateOne, withAgentMessageID(id))
	return &AgentMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentMessage.
func (c *AgentMessageClient) Delete() *AgentMessageDelete {
	mutation := newAgentMessageMutation(c.config, OpDelete)
	return &AgentMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentMessageClient) DeleteOne(_m *AgentMessage) *AgentMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentMessageClient) DeleteOneID(id int) *AgentMessageDeleteOne {
	builder := c.Delete().Where(agentmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentMessageDeleteOne{builder}
}

// Query returns a query builder for AgentMessage.
func (c *AgentMessageClient) Query() *AgentMessageQuery {
	return &AgentMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentMessage entity by its id.
func (c *AgentMessageClient) Get(ctx context.Context, id int) (*AgentMessage, error) {
	return c.Query().Where(agentmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentMessageClient) GetX(ctx context.Context, id int) *AgentMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a AgentMessage.
func (c *AgentMessageClient) QuerySession(_m *AgentMessage) *AgentSessionQuery {
	query := (&AgentSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentmessage.Table, agentmessage.FieldID, id),
			sqlgraph.To(agentsession.Table, agentsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentmessage.SessionTable, agentmessage.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentMessageClient) Hooks() []Hook {
	return c.hooks.AgentMessage
}

// Interceptors returns the client interceptors.
func (c *AgentMessageClient) Interceptors() []Interceptor {
	return c.inters.AgentMessage
}

func (c *AgentMessageClient) mutate(ctx context.Context, m *AgentMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentMessage mutation op: %q", m.Op())
	}
}

// AgentRunClient is a client for the AgentRun schema.
type AgentRunClient struct {
	config
}

// NewAgentRunClient returns a client for the AgentRun from the given config.
func NewAgentRunClient(c config) *AgentRunClient {
	return &AgentRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentrun.Hooks(f(g(h())))`.
func (c *AgentRunClient) Use(hooks ...Hook) {
	c.hooks.AgentRun = append(c.hooks.AgentRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentrun.Intercept(f(g(h())))`.
func (c *AgentRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentRun = append(c.inters.AgentRun, interceptors...)
}

// Create returns a builder for creating a AgentRun entity.
func (c *AgentRunClient) Create() *AgentRunCreate {
	mutation := newAgentRunMutation(c.config, OpCreate)
	return &AgentRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentRun entities.
func (c *AgentRunClient) CreateBulk(builders ...*AgentRunCreate) *AgentRunCreateBulk {
	return &AgentRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentRunClient) MapCreateBulk(slice any, setFunc func(*AgentRunCreate, int)) *AgentRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentRunCreateBulk{err: fmt.Errorf("calling to AgentRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentRun.
func (c *AgentRunClient) Update() *AgentRunUpdate {
	mutation := newAgentRunMutation(c.config, OpUpdate)
	return &AgentRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentRunClient) UpdateOne(_m *AgentRun) *AgentRunUpdateOne {
	mutation := newAgentRunMutation(c.config, OpUpdateOne, withAgentRun(_m))
	return &AgentRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentRunClient) UpdateOneID(id string) *AgentRunUpdateOne {
	mutation := newAgentRunMutation(c.config, OpUpdateOne, withAgentRunID(id))
	return &AgentRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentRun.
func (c *AgentRunClient) Delete() *AgentRunDelete {
	mutation := newAgentRunMutation(c.config, OpDelete)
	return &AgentRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentRunClient) DeleteOne(_m *AgentRun) *AgentRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentRunClient) DeleteOneID(id string) *AgentRunDeleteOne {
	builder := c.Delete().Where(agentrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentRunDeleteOne{builder}
}

// Query returns a query builder for AgentRun.
func (c *AgentRunClient) Query() *AgentRunQuery {
	return &AgentRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentRun},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentRun entity by its id.
func (c *AgentRunClient) Get(ctx context.Context, id string) (*AgentRun, error) {
	return c.Query().Where(agentrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentRunClient) GetX(ctx context.Context, id string) *AgentRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a AgentRun.
func (c *AgentRunClient) QuerySession(_m *AgentRun) *AgentSessionQuery {
	query := (&AgentSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentrun.Table, agentrun.FieldID, id),
			sqlgraph.To(agentsession.Table, agentsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentrun.SessionTable, agentrun.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryToolExecutions queries the tool_executions edge of a AgentRun.
func (c *AgentRunClient) QueryToolExecutions(_m *AgentRun) *ToolExecutionQuery {
	query := (&ToolExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentrun.Table, agentrun.FieldID, id),
			sqlgraph.To(toolexecution.Table, toolexecution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentrun.ToolExecutionsTable, agentrun.ToolExecutionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryUsageLogs queries the usage_logs edge of a AgentRun.
func (c *AgentRunClient) QueryUsageLogs(_m *AgentRun) *UsageLogQuery {
	query := (&UsageLogClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentrun.Table, agentrun.FieldID, id),
			sqlgraph.To(usagelog.Table, usagelog.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentrun.UsageLogsTable, agentrun.UsageLogsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentRunClient) Hooks() []Hook {
	return c.hooks.AgentRun
}

// Interceptors returns the client interceptors.
func (c *AgentRunClient) Interceptors() []Interceptor {
	return c.inters.AgentRun
}

func (c *AgentRunClient) mutate(ctx context.Context, m *AgentRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentRun mutation op: %q", m.Op())
	}
}

// AgentSessionClient is a client for the AgentSession schema.
type AgentSessionClient struct {
	config
}

// NewAgentSessionClient returns a client for the AgentSession from the given config.
func NewAgentSessionClient(c config) *AgentSessionClient {
	return &AgentSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentsession.Hooks(f(g(h())))`.
func (c *AgentSessionClient) Use(hooks ...Hook) {
	c.hooks.AgentSession = append(c.hooks.AgentSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentsession.Intercept(f(g(h())))`.
func (c *AgentSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentSession = append(c.inters.AgentSession, interceptors...)
}

// Create returns a builder for creating a AgentSession entity.
func (c *AgentSessionClient) Create() *AgentSessionCreate {
	mutation := newAgentSessionMutation(c.config, OpCreate)
	return &AgentSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentSession entities.
func (c *AgentSessionClient) CreateBulk(builders ...*AgentSessionCreate) *AgentSessionCreateBulk {
	return &AgentSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentSessionClient) MapCreateBulk(slice any, setFunc func(*AgentSessionCreate, int)) *AgentSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentSessionCreateBulk{err: fmt.Errorf("calling to AgentSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentSession.
func (c *AgentSessionClient) Update() *AgentSessionUpdate {
	mutation := newAgentSessionMutation(c.config, OpUpdate)
	return &AgentSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentSessionClient) UpdateOne(_m *AgentSession) *AgentSessionUpdateOne {
	mutation := newAgentSessionMutation(c.config, OpUpdateOne, withAgentSession(_m))
	return &AgentSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentSessionClient) UpdateOneID(id string) *AgentSessionUpdateOne {
	mutation := newAgentSessionMutation(c.config, OpUpdateOne, withAgentSessionID(id))
	return &AgentSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentSession.
func (c *AgentSessionClient) Delete() *AgentSessionDelete {
	mutation := newAgentSessionMutation(c.config, OpDelete)
	return &AgentSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentSessionClient) DeleteOne(_m *AgentSession) *AgentSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentSessionClient) DeleteOneID(id string) *AgentSessionDeleteOne {
	builder := c.Delete().Where(agentsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentSessionDeleteOne{builder}
}

// Query returns a query builder for AgentSession.
func (c *AgentSessionClient) Query() *AgentSessionQuery {
	return &AgentSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentSession},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentSession entity by its id.
func (c *AgentSessionClient) Get(ctx context.Context, id string) (*AgentSession, error) {
	return c.Query().Where(agentsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentSessionClient) GetX(ctx context.Context, id string) *AgentSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a AgentSession.
func (c *AgentSessionClient) QueryProject(_m *AgentSession) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentsession.Table, agentsession.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentsession.ProjectTable, agentsession.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMessages queries the messages edge of a AgentSession.
func (c *AgentSessionClient) QueryMessages(_m *AgentSession) *AgentMessageQuery {
	query := (&AgentMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentsession.Table, agentsession.FieldID, id),
			sqlgraph.To(agentmessage.Table, agentmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentsession.MessagesTable, agentsession.MessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRuns queries the runs edge of a AgentSession.
func (c *AgentSessionClient) QueryRuns(_m *AgentSession) *AgentRunQuery {
	query := (&AgentRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentsession.Table, agentsession.FieldID, id),
			sqlgraph.To(agentrun.Table, agentrun.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentsession.RunsTable, agentsession.RunsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryToolExecutions queries the tool_executions edge of a AgentSession.
func (c *AgentSessionClient) QueryToolExecutions(_m *AgentSession) *ToolExecutionQuery {
	query := (&ToolExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentsession.Table, agentsession.FieldID, id),
			sqlgraph.To(toolexecution.Table, toolexecution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentsession.ToolExecutionsTable, agentsession.ToolExecutionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryUsageLogs queries the usage_logs edge of a AgentSession.
func (c *AgentSessionClient) QueryUsageLogs(_m *AgentSession) *UsageLogQuery {
	query := (&UsageLogClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentsession.Table, agentsession.FieldID, id),
			sqlgraph.To(usagelog.Table, usagelog.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentsession.UsageLogsTable, agentsession.UsageLogsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentSessionClient) Hooks() []Hook {
	return c.hooks.AgentSession
}

// Interceptors returns the client interceptors.
func (c *AgentSessionClient) Interceptors() []Interceptor {
	return c.inters.AgentSession
}

func (c *AgentSessionClient) mutate(ctx context.Context, m *AgentSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentSession mutation op: %q", m.Op())
	}
}

// McpPresetClient is a client for the McpPreset schema.
type McpPresetClient struct {
	config
}

// NewMcpPresetClient returns a client for the McpPreset from the given config.
func NewMcpPresetClient(c config) *McpPresetClient {
	return &McpPresetClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `mcppreset.Hooks(f(g(h())))`.
func (c *McpPresetClient) Use(hooks ...Hook) {
	c.hooks.McpPreset = append(c.hooks.McpPreset, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `mcppreset.Intercept(f(g(h())))`.
func (c *McpPresetClient) Intercept(interceptors ...Interceptor) {
	c.inters.McpPreset = append(c.inters.McpPreset, interceptors...)
}

// Create returns a builder for creating a McpPreset entity.
func (c *McpPresetClient) Create() *McpPresetCreate {
	mutation := newMcpPresetMutation(c.config, OpCreate)
	return &McpPresetCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of McpPreset entities.
func (c *McpPresetClient) CreateBulk(builders ...*McpPresetCreate) *McpPresetCreateBulk {
	return &McpPresetCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *McpPresetClient) MapCreateBulk(slice any, setFunc func(*McpPresetCreate, int)) *McpPresetCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &McpPresetCreateBulk{err: fmt.Errorf("calling to McpPresetClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*McpPresetCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &McpPresetCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for McpPreset.
func (c *McpPresetClient) Update() *McpPresetUpdate {
	mutation := newMcpPresetMutation(c.config, OpUpdate)
	return &McpPresetUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *McpPresetClient) UpdateOne(_m *McpPreset) *McpPresetUpdateOne {
	mutation := newMcpPresetMutation(c.config, OpUpdateOne, withMcpPreset(_m))
	return &McpPresetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *McpPresetClient) UpdateOneID(id int) *McpPresetUpdateOne {
	mutation := newMcpPresetMutation(c.config, OpUpdateOne, withMcpPresetID(id))
	return &McpPresetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for McpPreset.
func (c *McpPresetClient) Delete() *McpPresetDelete {
	mutation := newMcpPresetMutation(c.config, OpDelete)
	return &McpPresetDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *McpPresetClient) DeleteOne(_m *McpPreset) *McpPresetDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *McpPresetClient) DeleteOneID(id int) *McpPresetDeleteOne {
	builder := c.Delete().Where(mcppreset.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &McpPresetDeleteOne{builder}
}

// Query returns a query builder for McpPreset.
func (c *McpPresetClient) Query() *McpPresetQuery {
	return &McpPresetQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMcpPreset},
		inters: c.Interceptors(),
	}
}

// Get returns a McpPreset entity by its id.
func (c *McpPresetClient) Get(ctx context.Context, id int) (*McpPreset, error) {
	return c.Query().Where(mcppreset.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *McpPresetClient) GetX(ctx context.Context, id int) *McpPreset {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *McpPresetClient) Hooks() []Hook {
	return c.hooks.McpPreset
}

// Interceptors returns the client interceptors.
func (c *McpPresetClient) Interceptors() []Interceptor {
	return c.inters.McpPreset
}

func (c *McpPresetClient) mutate(ctx context.Context, m *McpPresetMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&McpPresetCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&McpPresetUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&McpPresetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&McpPresetDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown McpPreset mutation op: %q", m.Op())
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

// QuerySessions queries the sessions edge of a Project.
func (c *ProjectClient) QuerySessions(_m *Project) *AgentSessionQuery {
	query := (&AgentSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(agentsession.Table, agentsession.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.SessionsTable, project.SessionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
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

// SkillPresetClient is a client for the SkillPreset schema.
type SkillPresetClient struct {
	config
}

// NewSkillPresetClient returns a client for the SkillPreset from the given config.
func NewSkillPresetClient(c config) *SkillPresetClient {
	return &SkillPresetClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `skillpreset.Hooks(f(g(h())))`.
func (c *SkillPresetClient) Use(hooks ...Hook) {
	c.hooks.SkillPreset = append(c.hooks.SkillPreset, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `skillpreset.Intercept(f(g(h())))`.
func (c *SkillPresetClient) Intercept(interceptors ...Interceptor) {
	c.inters.SkillPreset = append(c.inters.SkillPreset, interceptors...)
}

// Create returns a builder for creating a SkillPreset entity.
func (c *SkillPresetClient) Create() *SkillPresetCreate {
	mutation := newSkillPresetMutation(c.config, OpCreate)
	return &SkillPresetCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SkillPreset entities.
func (c *SkillPresetClient) CreateBulk(builders ...*SkillPresetCreate) *SkillPresetCreateBulk {
	return &SkillPresetCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SkillPresetClient) MapCreateBulk(slice any, setFunc func(*SkillPresetCreate, int)) *SkillPresetCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SkillPresetCreateBulk{err: fmt.Errorf("calling to SkillPresetClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SkillPresetCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SkillPresetCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SkillPreset.
func (c *SkillPresetClient) Update() *SkillPresetUpdate {
	mutation := newSkillPresetMutation(c.config, OpUpdate)
	return &SkillPresetUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SkillPresetClient) UpdateOne(_m *SkillPreset) *SkillPresetUpdateOne {
	mutation := newSkillPresetMutation(c.config, OpUpdateOne, withSkillPreset(_m))
	return &SkillPresetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SkillPresetClient) UpdateOneID(id int) *SkillPresetUpdateOne {
	mutation := newSkillPresetMutation(c.config, OpUpdateOne, withSkillPresetID(id))
	return &SkillPresetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SkillPreset.
func (c *SkillPresetClient) Delete() *SkillPresetDelete {
	mutation := newSkillPresetMutation(c.config, OpDelete)
	return &SkillPresetDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SkillPresetClient) DeleteOne(_m *SkillPreset) *SkillPresetDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SkillPresetClient) DeleteOneID(id int) *SkillPresetDeleteOne {
	builder := c.Delete().Where(skillpreset.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SkillPresetDeleteOne{builder}
}

// Query returns a query builder for SkillPreset.
func (c *SkillPresetClient) Query() *SkillPresetQuery {
	return &SkillPresetQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSkillPreset},
		inters: c.Interceptors(),
	}
}

// Get returns a SkillPreset entity by its id.
func (c *SkillPresetClient) Get(ctx context.Context, id int) (*SkillPreset, error) {
	return c.Query().Where(skillpreset.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SkillPresetClient) GetX(ctx context.Context, id int) *SkillPreset {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SkillPresetClient) Hooks() []Hook {
	return c.hooks.SkillPreset
}

// Interceptors returns the client interceptors.
func (c *SkillPresetClient) Interceptors() []Interceptor {
	return c.inters.SkillPreset
}

func (c *SkillPresetClient) mutate(ctx context.Context, m *SkillPresetMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SkillPresetCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SkillPresetUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SkillPresetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SkillPresetDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SkillPreset mutation op: %q", m.Op())
	}
}

// ToolExecutionClient is a client for the ToolExecution schema.
type ToolExecutionClient struct {
	config
}

// NewToolExecutionClient returns a client for the ToolExecution from the given config.
func NewToolExecutionClient(c config) *ToolExecutionClient {
	return &ToolExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `toolexecution.Hooks(f(g(h())))`.
func (c *ToolExecutionClient) Use(hooks ...Hook) {
	c.hooks.ToolExecution = append(c.hooks.ToolExecution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `toolexecution.Intercept(f(g(h())))`.
func (c *ToolExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ToolExecution = append(c.inters.ToolExecution, interceptors...)
}

// Create returns a builder for creating a ToolExecution entity.
func (c *ToolExecutionClient) Create() *ToolExecutionCreate {
	mutation := newToolExecutionMutation(c.config, OpCreate)
	return &ToolExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ToolExecution entities.
func (c *ToolExecutionClient) CreateBulk(builders ...*ToolExecutionCreate) *ToolExecutionCreateBulk {
	return &ToolExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ToolExecutionClient) MapCreateBulk(slice any, setFunc func(*ToolExecutionCreate, int)) *ToolExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ToolExecutionCreateBulk{err: fmt.Errorf("calling to ToolExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ToolExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ToolExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ToolExecution.
func (c *ToolExecutionClient) Update() *ToolExecutionUpdate {
	mutation := newToolExecutionMutation(c.config, OpUpdate)
	return &ToolExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ToolExecutionClient) UpdateOne(_m *ToolExecution) *ToolExecutionUpdateOne {
	mutation := newToolExecutionMutation(c.config, OpUpdateOne, withToolExecution(_m))
	return &ToolExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ToolExecutionClient) UpdateOneID(id string) *ToolExecutionUpdateOne {
	mutation := newToolExecutionMutation(c.config, OpUpdateOne, withToolExecutionID(id))
	return &ToolExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ToolExecution.
func (c *ToolExecutionClient) Delete() *ToolExecutionDelete {
	mutation := newToolExecutionMutation(c.config, OpDelete)
	return &ToolExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ToolExecutionClient) DeleteOne(_m *ToolExecution) *ToolExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ToolExecutionClient) DeleteOneID(id string) *ToolExecutionDeleteOne {
	builder := c.Delete().Where(toolexecution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ToolExecutionDeleteOne{builder}
}

// Query returns a query builder for ToolExecution.
func (c *ToolExecutionClient) Query() *ToolExecutionQuery {
	return &ToolExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeToolExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a ToolExecution entity by its id.
func (c *ToolExecutionClient) Get(ctx context.Context, id string) (*ToolExecution, error) {
	return c.Query().Where(toolexecution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ToolExecutionClient) GetX(ctx context.Context, id string) *ToolExecution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a ToolExecution.
func (c *ToolExecutionClient) QuerySession(_m *ToolExecution) *AgentSessionQuery {
	query := (&AgentSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(toolexecution.Table, toolexecution.FieldID, id),
			sqlgraph.To(agentsession.Table, agentsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, toolexecution.SessionTable, toolexecution.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRun queries the run edge of a ToolExecution.
func (c *ToolExecutionClient) QueryRun(_m *ToolExecution) *AgentRunQuery {
	query := (&AgentRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(toolexecution.Table, toolexecution.FieldID, id),
			sqlgraph.To(agentrun.Table, agentrun.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, toolexecution.RunTable, toolexecution.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ToolExecutionClient) Hooks() []Hook {
	return c.hooks.ToolExecution
}

// Interceptors returns the client interceptors.
func (c *ToolExecutionClient) Interceptors() []Interceptor {
	return c.inters.ToolExecution
}

func (c *ToolExecutionClient) mutate(ctx context.Context, m *ToolExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ToolExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ToolExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ToolExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ToolExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ToolExecution mutation op: %q", m.Op())
	}
}

// UsageLogClient is a client for the UsageLog schema.
type UsageLogClient struct {
	config
}

// NewUsageLogClient returns a client for the UsageLog from the given config.
func NewUsageLogClient(c config) *UsageLogClient {
	return &UsageLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usagelog.Hooks(f(g(h())))`.
func (c *UsageLogClient) Use(hooks ...Hook) {
	c.hooks.UsageLog = append(c.hooks.UsageLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usagelog.Intercept(f(g(h())))`.
func (c *UsageLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.UsageLog = append(c.inters.UsageLog, interceptors...)
}

// Create returns a builder for creating a UsageLog entity.
func (c *UsageLogClient) Create() *UsageLogCreate {
	mutation := newUsageLogMutation(c.config, OpCreate)
	return &UsageLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UsageLog entities.
func (c *UsageLogClient) CreateBulk(builders ...*UsageLogCreate) *UsageLogCreateBulk {
	return &UsageLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UsageLogClient) MapCreateBulk(slice any, setFunc func(*UsageLogCreate, int)) *UsageLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UsageLogCreateBulk{err: fmt.Errorf("calling to UsageLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UsageLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UsageLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UsageLog.
func (c *UsageLogClient) Update() *UsageLogUpdate {
	mutation := newUsageLogMutation(c.config, OpUpdate)
	return &UsageLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UsageLogClient) UpdateOne(_m *UsageLog) *UsageLogUpdateOne {
	mutation := newUsageLogMutation(c.config, OpUpdateOne, withUsageLog(_m))
	return &UsageLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UsageLogClient) UpdateOneID(id string) *UsageLogUpdateOne {
	mutation := newUsageLogMutation(c.config, OpUpdateOne, withUsageLogID(id))
	return &UsageLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UsageLog.
func (c *UsageLogClient) Delete() *UsageLogDelete {
	mutation := newUsageLogMutation(c.config, OpDelete)
	return &UsageLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UsageLogClient) DeleteOne(_m *UsageLog) *UsageLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UsageLogClient) DeleteOneID(id string) *UsageLogDeleteOne {
	builder := c.Delete().Where(usagelog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UsageLogDeleteOne{builder}
}

// Query returns a query builder for UsageLog.
func (c *UsageLogClient) Query() *UsageLogQuery {
	return &UsageLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUsageLog},
		inters: c.Interceptors(),
	}
}

// Get returns a UsageLog entity by its id.
func (c *UsageLogClient) Get(ctx context.Context, id string) (*UsageLog, error) {
	return c.Query().Where(usagelog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UsageLogClient) GetX(ctx context.Context, id string) *UsageLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a UsageLog.
func (c *UsageLogClient) QuerySession(_m *UsageLog) *AgentSessionQuery {
	query := (&AgentSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(usagelog.Table, usagelog.FieldID, id),
			sqlgraph.To(agentsession.Table, agentsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, usagelog.SessionTable, usagelog.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRun queries the run edge of a UsageLog.
func (c *UsageLogClient) QueryRun(_m *UsageLog) *AgentRunQuery {
	query := (&AgentRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(usagelog.Table, usagelog.FieldID, id),
			sqlgraph.To(agentrun.Table, agentrun.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, usagelog.RunTable, usagelog.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UsageLogClient) Hooks() []Hook {
	return c.hooks.UsageLog
}

// Interceptors returns the client interceptors.
func (c *UsageLogClient) Interceptors() []Interceptor {
	return c.inters.UsageLog
}

func (c *UsageLogClient) mutate(ctx context.Context, m *UsageLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UsageLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UsageLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UsageLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UsageLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UsageLog mutation op: %q", m.Op())
	}
}

// UserEnvVarClient is a client for the UserEnvVar schema.
type UserEnvVarClient struct {
	config
}

// NewUserEnvVarClient returns a client for the UserEnvVar from the given config.
func NewUserEnvVarClient(c config) *UserEnvVarClient {
	return &UserEnvVarClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userenvvar.Hooks(f(g(h())))`.
func (c *UserEnvVarClient) Use(hooks ...Hook) {
	c.hooks.UserEnvVar = append(c.hooks.UserEnvVar, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userenvvar.Intercept(f(g(h())))`.
func (c *UserEnvVarClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserEnvVar = append(c.inters.UserEnvVar, interceptors...)
}

// Create returns a builder for creating a UserEnvVar entity.
func (c *UserEnvVarClient) Create() *UserEnvVarCreate {
	mutation := newUserEnvVarMutation(c.config, OpCreate)
	return &UserEnvVarCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserEnvVar entities.
func (c *UserEnvVarClient) CreateBulk(builders ...*UserEnvVarCreate) *UserEnvVarCreateBulk {
	return &UserEnvVarCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserEnvVarClient) MapCreateBulk(slice any, setFunc func(*UserEnvVarCreate, int)) *UserEnvVarCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserEnvVarCreateBulk{err: fmt.Errorf("calling to UserEnvVarClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserEnvVarCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserEnvVarCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserEnvVar.
func (c *UserEnvVarClient) Update() *UserEnvVarUpdate {
	mutation := newUserEnvVarMutation(c.config, OpUpdate)
	return &UserEnvVarUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserEnvVarClient) UpdateOne(_m *UserEnvVar) *UserEnvVarUpdateOne {
	mutation := newUserEnvVarMutation(c.config, OpUpdateOne, withUserEnvVar(_m))
	return &UserEnvVarUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserEnvVarClient) UpdateOneID(id string) *UserEnvVarUpdateOne {
	mutation := newUserEnvVarMutation(c.config, OpUpdateOne, withUserEnvVarID(id))
	return &UserEnvVarUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserEnvVar.
func (c *UserEnvVarClient) Delete() *UserEnvVarDelete {
	mutation := newUserEnvVarMutation(c.config, OpDelete)
	return &UserEnvVarDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserEnvVarClient) DeleteOne(_m *UserEnvVar) *UserEnvVarDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserEnvVarClient) DeleteOneID(id string) *UserEnvVarDeleteOne {
	builder := c.Delete().Where(userenvvar.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserEnvVarDeleteOne{builder}
}

// Query returns a query builder for UserEnvVar.
func (c *UserEnvVarClient) Query() *UserEnvVarQuery {
	return &UserEnvVarQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserEnvVar},
		inters: c.Interceptors(),
	}
}

// Get returns a UserEnvVar entity by its id.
func (c *UserEnvVarClient) Get(ctx context.Context, id string) (*UserEnvVar, error) {
	return c.Query().Where(userenvvar.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserEnvVarClient) GetX(ctx context.Context, id string) *UserEnvVar {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserEnvVarClient) Hooks() []Hook {
	return c.hooks.UserEnvVar
}

// Interceptors returns the client interceptors.
func (c *UserEnvVarClient) Interceptors() []Interceptor {
	return c.inters.UserEnvVar
}

func (c *UserEnvVarClient) mutate(ctx context.Context, m *UserEnvVarMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserEnvVarCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserEnvVarUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserEnvVarUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserEnvVarDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserEnvVar mutation op: %q", m.Op())
	}
}

// UserMcpConfigClient is a client for the UserMcpConfig schema.
type UserMcpConfigClient struct {
	config
}

// NewUserMcpConfigClient returns a client for the UserMcpConfig from the given config.
func NewUserMcpConfigClient(c config) *UserMcpConfigClient {
	return &UserMcpConfigClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usermcpconfig.Hooks(f(g(h())))`.
func (c *UserMcpConfigClient) Use(hooks ...Hook) {
	c.hooks.UserMcpConfig = append(c.hooks.UserMcpConfig, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usermcpconfig.Intercept(f(g(h())))`.
func (c *UserMcpConfigClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserMcpConfig = append(c.inters.UserMcpConfig, interceptors...)
}

// Create returns a builder for creating a UserMcpConfig entity.
func (c *UserMcpConfigClient) Create() *UserMcpConfigCreate {
	mutation := newUserMcpConfigMutation(c.config, OpCreate)
	return &UserMcpConfigCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserMcpConfig entities.
func (c *UserMcpConfigClient) CreateBulk(builders ...*UserMcpConfigCreate) *UserMcpConfigCreateBulk {
	return &UserMcpConfigCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserMcpConfigClient) MapCreateBulk(slice any, setFunc func(*UserMcpConfigCreate, int)) *UserMcpConfigCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserMcpConfigCreateBulk{err: fmt.Errorf("calling to UserMcpConfigClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserMcpConfigCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserMcpConfigCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserMcpConfig.
func (c *UserMcpConfigClient) Update() *UserMcpConfigUpdate {
	mutation := newUserMcpConfigMutation(c.config, OpUpdate)
	return &UserMcpConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserMcpConfigClient) UpdateOne(_m *UserMcpConfig) *UserMcpConfigUpdateOne {
	mutation := newUserMcpConfigMutation(c.config, OpUpdateOne, withUserMcpConfig(_m))
	return &UserMcpConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserMcpConfigClient) UpdateOneID(id string) *UserMcpConfigUpdateOne {
	mutation := newUserMcpConfigMutation(c.config, OpUpdateOne, withUserMcpConfigID(id))
	return &UserMcpConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserMcpConfig.
func (c *UserMcpConfigClient) Delete() *UserMcpConfigDelete {
	mutation := newUserMcpConfigMutation(c.config, OpDelete)
	return &UserMcpConfigDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserMcpConfigClient) DeleteOne(_m *UserMcpConfig) *UserMcpConfigDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserMcpConfigClient) DeleteOneID(id string) *UserMcpConfigDeleteOne {
	builder := c.Delete().Where(usermcpconfig.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserMcpConfigDeleteOne{builder}
}

// Query returns a query builder for UserMcpConfig.
func (c *UserMcpConfigClient) Query() *UserMcpConfigQuery {
	return &UserMcpConfigQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserMcpConfig},
		inters: c.Interceptors(),
	}
}

// Get returns a UserMcpConfig entity by its id.
func (c *UserMcpConfigClient) Get(ctx context.Context, id string) (*UserMcpConfig, error) {
	return c.Query().Where(usermcpconfig.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserMcpConfigClient) GetX(ctx context.Context, id string) *UserMcpConfig {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserMcpConfigClient) Hooks() []Hook {
	return c.hooks.UserMcpConfig
}

// Interceptors returns the client interceptors.
func (c *UserMcpConfigClient) Interceptors() []Interceptor {
	return c.inters.UserMcpConfig
}

func (c *UserMcpConfigClient) mutate(ctx context.Context, m *UserMcpConfigMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserMcpConfigCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserMcpConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserMcpConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserMcpConfigDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserMcpConfig mutation op: %q", m.Op())
	}
}

// UserSkillInstallClient is a client for the UserSkillInstall schema.
type UserSkillInstallClient struct {
	config
}

// NewUserSkillInstallClient returns a client for the UserSkillInstall from the given config.
func NewUserSkillInstallClient(c config) *UserSkillInstallClient {
	return &UserSkillInstallClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userskillinstall.Hooks(f(g(h())))`.
func (c *UserSkillInstallClient) Use(hooks ...Hook) {
	c.hooks.UserSkillInstall = append(c.hooks.UserSkillInstall, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userskillinstall.Intercept(f(g(h())))`.
func (c *UserSkillInstallClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserSkillInstall = append(c.inters.UserSkillInstall, interceptors...)
}

// Create returns a builder for creating a UserSkillInstall entity.
func (c *UserSkillInstallClient) Create() *UserSkillInstallCreate {
	mutation := newUserSkillInstallMutation(c.config, OpCreate)
	return &UserSkillInstallCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserSkillInstall entities.
func (c *UserSkillInstallClient) CreateBulk(builders ...*UserSkillInstallCreate) *UserSkillInstallCreateBulk {
	return &UserSkillInstallCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserSkillInstallClient) MapCreateBulk(slice any, setFunc func(*UserSkillInstallCreate, int)) *UserSkillInstallCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserSkillInstallCreateBulk{err: fmt.Errorf("calling to UserSkillInstallClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserSkillInstallCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserSkillInstallCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserSkillInstall.
func (c *UserSkillInstallClient) Update() *UserSkillInstallUpdate {
	mutation := newUserSkillInstallMutation(c.config, OpUpdate)
	return &UserSkillInstallUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserSkillInstallClient) UpdateOne(_m *UserSkillInstall) *UserSkillInstallUpdateOne {
	mutation := newUserSkillInstallMutation(c.config, OpUpdateOne, withUserSkillInstall(_m))
	return &UserSkillInstallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserSkillInstallClient) UpdateOneID(id string) *UserSkillInstallUpdateOne {
	mutation := newUserSkillInstallMutation(c.config, OpUpdateOne, withUserSkillInstallID(id))
	return &UserSkillInstallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserSkillInstall.
func (c *UserSkillInstallClient) Delete() *UserSkillInstallDelete {
	mutation := newUserSkillInstallMutation(c.config, OpDelete)
	return &UserSkillInstallDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserSkillInstallClient) DeleteOne(_m *UserSkillInstall) *UserSkillInstallDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserSkillInstallClient) DeleteOneID(id string) *UserSkillInstallDeleteOne {
	builder := c.Delete().Where(userskillinstall.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserSkillInstallDeleteOne{builder}
}

// Query returns a query builder for UserSkillInstall.
func (c *UserSkillInstallClient) Query() *UserSkillInstallQuery {
	return &UserSkillInstallQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserSkillInstall},
		inters: c.Interceptors(),
	}
}

// Get returns a UserSkillInstall entity by its id.
func (c *UserSkillInstallClient) Get(ctx context.Context, id string) (*UserSkillInstall, error) {
	return c.Query().Where(userskillinstall.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserSkillInstallClient) GetX(ctx context.Context, id string) *UserSkillInstall {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserSkillInstallClient) Hooks() []Hook {
	return c.hooks.UserSkillInstall
}

// Interceptors returns the client interceptors.
func (c *UserSkillInstallClient) Interceptors() []Interceptor {
	return c.inters.UserSkillInstall
}

func (c *UserSkillInstallClient) mutate(ctx context.Context, m *UserSkillInstallMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserSkillInstallCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserSkillInstallUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserSkillInstallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserSkillInstallDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserSkillInstall mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentMessage, AgentRun, AgentSession, McpPreset, Project, SkillPreset,
		ToolExecution, UsageLog, UserEnvVar, UserMcpConfig, UserSkillInstall []ent.Hook
	}
	inters struct {
		AgentMessage, AgentRun, AgentSession, McpPreset, Project, SkillPreset,
		ToolExecution, UsageLog, UserEnvVar, UserMcpConfig,
		UserSkillInstall []ent.Interceptor
	}
)
